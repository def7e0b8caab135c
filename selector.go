package pathkit

import (
	"github.com/gobwas/glob"
)

// Selector filters files during a walk. Directory placeholders for empty
// directories are not filtered; selectors see regular files only.
type Selector interface {
	// Match returns true if the file should be included in the manifest.
	Match(file *FileInfo) bool
}

// ============================================================================
// Built-in Selectors
// ============================================================================

type globSelector struct {
	g glob.Glob
}

// Glob creates a selector matching file base names against a glob
// pattern. Supports *, ?, [abc], {a,b} and ** via gobwas/glob syntax.
func Glob(pattern string) (Selector, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &globSelector{g: g}, nil
}

// MustGlob is like Glob but panics on an invalid pattern. Intended for
// package-level selectors built from literals.
func MustGlob(pattern string) Selector {
	s, err := Glob(pattern)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *globSelector) Match(file *FileInfo) bool {
	return s.g.Match(file.Name)
}

type funcSelector struct {
	fn func(*FileInfo) bool
}

// FuncSelector creates a selector from a custom function. This is the
// escape hatch for filtering logic not covered by built-ins.
func FuncSelector(fn func(*FileInfo) bool) Selector {
	return &funcSelector{fn: fn}
}

func (s *funcSelector) Match(file *FileInfo) bool { return s.fn(file) }

type andSelector struct {
	selectors []Selector
}

// And matches only if ALL selectors match.
func And(selectors ...Selector) Selector {
	return &andSelector{selectors: selectors}
}

func (s *andSelector) Match(file *FileInfo) bool {
	for _, sel := range s.selectors {
		if !sel.Match(file) {
			return false
		}
	}
	return true
}

type notSelector struct {
	selector Selector
}

// Not inverts a selector's match result.
func Not(selector Selector) Selector {
	return &notSelector{selector: selector}
}

func (s *notSelector) Match(file *FileInfo) bool {
	return !s.selector.Match(file)
}
