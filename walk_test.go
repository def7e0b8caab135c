package pathkit_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/gobeaver/pathkit"
	"github.com/gobeaver/pathkit/driver/memory"
)

func writeFile(t *testing.T, mem *memory.Adapter, raw, content string) {
	t.Helper()
	if _, err := mem.Write(context.Background(), pathkit.Classify(raw), strings.NewReader(content)); err != nil {
		t.Fatalf("seed %s: %v", raw, err)
	}
}

func makeDir(t *testing.T, mem *memory.Adapter, raw string) {
	t.Helper()
	if err := mem.CreateDir(context.Background(), pathkit.Classify(raw)); err != nil {
		t.Fatalf("seed dir %s: %v", raw, err)
	}
}

func manifestKeys(manifest []pathkit.ManifestEntry) []string {
	keys := make([]string, len(manifest))
	for i, e := range manifest {
		keys[i] = e.Key
	}
	sort.Strings(keys)
	return keys
}

func TestWalkDirectoryWithEmptySubdir(t *testing.T) {
	mem := memory.New()
	writeFile(t, mem, "swift://cont/data/file1.txt", "one")
	makeDir(t, mem, "swift://cont/data/empty")

	manifest, err := pathkit.Walk(context.Background(), mem,
		[]pathkit.Path{pathkit.Classify("swift://cont/data")})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(manifest) != 2 {
		t.Fatalf("manifest has %d entries, want 2: %v", len(manifest), manifest)
	}

	got := manifestKeys(manifest)
	want := []string{"data/empty", "data/file1.txt"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("manifest keys = %v, want %v", got, want)
		}
	}

	for _, e := range manifest {
		if e.Key == "data/empty" && !e.IsDir {
			t.Error("empty directory entry not marked IsDir")
		}
		if e.Key == "data/file1.txt" && e.IsDir {
			t.Error("file entry marked IsDir")
		}
	}
}

func TestWalkNestedTree(t *testing.T) {
	mem := memory.New()
	writeFile(t, mem, "/src/a.txt", "a")
	writeFile(t, mem, "/src/sub/b.txt", "b")
	writeFile(t, mem, "/src/sub/deep/c.txt", "c")

	manifest, err := pathkit.Walk(context.Background(), mem,
		[]pathkit.Path{pathkit.Classify("/src")})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	got := manifestKeys(manifest)
	want := []string{"src/a.txt", "src/sub/b.txt", "src/sub/deep/c.txt"}
	if len(got) != len(want) {
		t.Fatalf("manifest keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("manifest keys = %v, want %v", got, want)
			break
		}
	}
}

func TestWalkFileRoot(t *testing.T) {
	mem := memory.New()
	writeFile(t, mem, "/dir/report.json", "{}")

	manifest, err := pathkit.Walk(context.Background(), mem,
		[]pathkit.Path{pathkit.Classify("/dir/report.json")})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(manifest) != 1 {
		t.Fatalf("manifest has %d entries, want 1", len(manifest))
	}
	if manifest[0].Key != "report.json" {
		t.Errorf("file root key = %q, want basename", manifest[0].Key)
	}
}

func TestWalkMissingRootFailsWhole(t *testing.T) {
	mem := memory.New()
	writeFile(t, mem, "/good/a.txt", "a")

	manifest, err := pathkit.Walk(context.Background(), mem, []pathkit.Path{
		pathkit.Classify("/good"),
		pathkit.Classify("/missing"),
	})
	if manifest != nil {
		t.Errorf("partial manifest returned alongside error: %v", manifest)
	}
	if !pathkit.IsNotExist(err) {
		t.Fatalf("Walk error = %v, want ErrNotExist", err)
	}

	var pe *pathkit.PathError
	if !errors.As(err, &pe) {
		t.Fatalf("Walk error = %T, want *PathError", err)
	}
	if pe.Op != "walk" {
		t.Errorf("PathError.Op = %q, want walk", pe.Op)
	}
	if pe.Path != "/missing" {
		t.Errorf("PathError.Path = %q, want /missing", pe.Path)
	}
}

func TestWalkSelectorFiltersFilesOnly(t *testing.T) {
	mem := memory.New()
	writeFile(t, mem, "/src/keep.txt", "k")
	writeFile(t, mem, "/src/drop.log", "d")
	makeDir(t, mem, "/src/empty")

	manifest, err := pathkit.Walk(context.Background(), mem,
		[]pathkit.Path{pathkit.Classify("/src")},
		pathkit.WithSelector(pathkit.MustGlob("*.txt")))
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	got := manifestKeys(manifest)
	// Directory placeholders pass through unfiltered.
	want := []string{"src/empty", "src/keep.txt"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("manifest keys = %v, want %v", got, want)
	}
}

func TestWalkMultipleRoots(t *testing.T) {
	mem := memory.New()
	writeFile(t, mem, "/one/a.txt", "a")
	writeFile(t, mem, "/two/b.txt", "b")

	manifest, err := pathkit.Walk(context.Background(), mem, []pathkit.Path{
		pathkit.Classify("/one"),
		pathkit.Classify("/two"),
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	got := manifestKeys(manifest)
	want := []string{"one/a.txt", "two/b.txt"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("manifest keys = %v, want %v", got, want)
	}
}
