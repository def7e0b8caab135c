package pathkit

import (
	"testing"
)

func file(name string) *FileInfo {
	return &FileInfo{Name: name}
}

func TestGlobSelector(t *testing.T) {
	sel, err := Glob("*.txt")
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if !sel.Match(file("notes.txt")) {
		t.Error("*.txt should match notes.txt")
	}
	if sel.Match(file("notes.json")) {
		t.Error("*.txt should not match notes.json")
	}

	if _, err := Glob("[invalid"); err == nil {
		t.Error("Glob should reject an invalid pattern")
	}
}

func TestMustGlobPanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGlob did not panic on an invalid pattern")
		}
	}()
	MustGlob("[invalid")
}

func TestSelectorCombinators(t *testing.T) {
	txt := MustGlob("*.txt")
	hidden := FuncSelector(func(f *FileInfo) bool {
		return len(f.Name) > 0 && f.Name[0] == '.'
	})

	visible := And(txt, Not(hidden))
	if !visible.Match(file("a.txt")) {
		t.Error("a.txt should pass *.txt and not-hidden")
	}
	if visible.Match(file(".secret.txt")) {
		t.Error(".secret.txt should be rejected by Not(hidden)")
	}
	if visible.Match(file("a.json")) {
		t.Error("a.json should be rejected by *.txt")
	}
}
