package memory

import (
	"context"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/gobeaver/pathkit"
)

func put(t *testing.T, a *Adapter, raw, content string, opts ...pathkit.Option) {
	t.Helper()
	n, err := a.Write(context.Background(), pathkit.Classify(raw), strings.NewReader(content), opts...)
	if err != nil {
		t.Fatalf("write %s: %v", raw, err)
	}
	if n != int64(len(content)) {
		t.Fatalf("write %s returned %d bytes, want %d", raw, n, len(content))
	}
}

func TestWriteAndOpen(t *testing.T) {
	a := New()
	put(t, a, "/dir/file.txt", "hello")

	rc, err := a.Open(context.Background(), pathkit.Classify("/dir/file.txt"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Errorf("content = %q, want hello", data)
	}
}

func TestOpenMissing(t *testing.T) {
	a := New()
	_, err := a.Open(context.Background(), pathkit.Classify("/nope"))
	if !pathkit.IsNotExist(err) {
		t.Errorf("Open missing = %v, want ErrNotExist", err)
	}
}

func TestImplicitDirectories(t *testing.T) {
	ctx := context.Background()
	a := New()
	put(t, a, "swift://cont/a/b/file.txt", "x")

	// Parents of a stored file exist implicitly.
	for _, raw := range []string{"swift://cont/a", "swift://cont/a/b"} {
		ok, err := a.Exists(ctx, pathkit.Classify(raw))
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Errorf("implicit directory %s does not exist", raw)
		}
		info, err := a.Stat(ctx, pathkit.Classify(raw))
		if err != nil {
			t.Fatalf("Stat %s: %v", raw, err)
		}
		if !info.IsDir {
			t.Errorf("Stat(%s).IsDir = false", raw)
		}
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	a := New()
	put(t, a, "/root/a.txt", "a")
	put(t, a, "/root/sub/b.txt", "b")
	if err := a.CreateDir(ctx, pathkit.Classify("/root/empty")); err != nil {
		t.Fatal(err)
	}

	infos, err := a.List(ctx, pathkit.Classify("/root"))
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	sort.Strings(names)
	want := []string{"a.txt", "empty", "sub"}
	if len(names) != 3 || names[0] != want[0] || names[1] != want[1] || names[2] != want[2] {
		t.Fatalf("List names = %v, want %v", names, want)
	}

	for _, info := range infos {
		switch info.Name {
		case "a.txt":
			if info.IsDir {
				t.Error("a.txt listed as directory")
			}
		case "sub", "empty":
			if !info.IsDir {
				t.Errorf("%s not listed as directory", info.Name)
			}
		}
	}
}

func TestListOnFile(t *testing.T) {
	a := New()
	put(t, a, "/f", "x")
	_, err := a.List(context.Background(), pathkit.Classify("/f"))
	if err == nil {
		t.Error("List on a file should fail")
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	a := New()
	put(t, a, "/f", "x")

	if err := a.Delete(ctx, pathkit.Classify("/f")); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	ok, _ := a.Exists(ctx, pathkit.Classify("/f"))
	if ok {
		t.Error("file still exists after Delete")
	}
	if err := a.Delete(ctx, pathkit.Classify("/f")); !pathkit.IsNotExist(err) {
		t.Errorf("second Delete = %v, want ErrNotExist", err)
	}
}

func TestDeleteDirRemovesTree(t *testing.T) {
	ctx := context.Background()
	a := New()
	put(t, a, "/tree/a.txt", "a")
	put(t, a, "/tree/sub/b.txt", "b")
	if err := a.CreateDir(ctx, pathkit.Classify("/tree/empty")); err != nil {
		t.Fatal(err)
	}

	if err := a.DeleteDir(ctx, pathkit.Classify("/tree")); err != nil {
		t.Fatalf("DeleteDir: %v", err)
	}
	ok, _ := a.Exists(ctx, pathkit.Classify("/tree"))
	if ok {
		t.Error("tree still exists after DeleteDir")
	}
	if a.FileCount() != 0 {
		t.Errorf("FileCount = %d after DeleteDir, want 0", a.FileCount())
	}
}

func TestCreateDirOverFile(t *testing.T) {
	a := New()
	put(t, a, "/occupied", "x")
	err := a.CreateDir(context.Background(), pathkit.Classify("/occupied"))
	if !pathkit.IsDirectoryConflict(err) {
		t.Errorf("CreateDir over a file = %v, want ErrDirectoryConflict", err)
	}
}

func TestContentTypeStored(t *testing.T) {
	a := New()
	put(t, a, "/f.json", "{}", pathkit.WithContentType("application/json"))
	if ct := a.ContentType(pathkit.Classify("/f.json")); ct != "application/json" {
		t.Errorf("ContentType = %q, want application/json", ct)
	}
}

func TestSizeAccounting(t *testing.T) {
	ctx := context.Background()
	a := New()
	put(t, a, "/a", "12345")
	put(t, a, "/b", "123")
	if a.Size() != 8 {
		t.Errorf("Size = %d, want 8", a.Size())
	}

	// Overwrite replaces, not accumulates.
	put(t, a, "/a", "1")
	if a.Size() != 4 {
		t.Errorf("Size after overwrite = %d, want 4", a.Size())
	}

	if err := a.Delete(ctx, pathkit.Classify("/b")); err != nil {
		t.Fatal(err)
	}
	if a.Size() != 1 {
		t.Errorf("Size after delete = %d, want 1", a.Size())
	}

	a.Clear()
	if a.Size() != 0 || a.FileCount() != 0 {
		t.Error("Clear did not reset the store")
	}
}

func TestVariantAgnosticKeys(t *testing.T) {
	ctx := context.Background()
	a := New()
	put(t, a, "s3://bucket/key", "s3 data")
	put(t, a, "/local/key", "local data")

	if ok, _ := a.Exists(ctx, pathkit.Classify("s3://bucket/key")); !ok {
		t.Error("s3 keyed file missing")
	}
	if ok, _ := a.Exists(ctx, pathkit.Classify("/local/key")); !ok {
		t.Error("posix keyed file missing")
	}
}
