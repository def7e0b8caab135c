package pathkit_test

import (
	"fmt"

	"github.com/gobeaver/pathkit"
)

func ExampleClassify() {
	for _, raw := range []string{
		"/data/file.txt",
		"swift://tenant/container/obj",
		"s3://bucket/key",
		`C:\data\file.txt`,
		"swift:/malformed",
	} {
		p := pathkit.Classify(raw)
		fmt.Printf("%s -> %s\n", raw, p.Variant())
	}
	// Output:
	// /data/file.txt -> posix
	// swift://tenant/container/obj -> swift
	// s3://bucket/key -> s3
	// C:\data\file.txt -> windows
	// swift:/malformed -> posix
}

func ExamplePath_Join() {
	p := pathkit.Classify("s3://bucket/base")
	fmt.Println(p.Join("nested", "obj.json"))
	// Output: s3://bucket/base/nested/obj.json
}

func ExampleParseByteSize() {
	n, _ := pathkit.ParseByteSize("10M")
	fmt.Println(n)
	// Output: 10485760
}

func ExampleToObjectKey() {
	fmt.Println(pathkit.ToObjectKey(".//poor//path//file"))
	// Output: poor/path/file
}
