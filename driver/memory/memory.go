// Package memory implements an in-memory pathkit backend. It accepts
// paths of any variant, so tests can stand in for an object store by
// handing it swift:// or s3:// paths. Directories exist either
// explicitly (via CreateDir) or implicitly when a file lives below them.
package memory

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gobeaver/pathkit"
)

// memoryFile represents a file stored in memory
type memoryFile struct {
	content     []byte
	contentType string
	modTime     time.Time
}

// Adapter provides an in-memory implementation of pathkit.Backend
// Useful for testing
type Adapter struct {
	mu    sync.RWMutex
	files map[string]*memoryFile
	dirs  map[string]time.Time
	size  int64
}

// New creates a new in-memory backend adapter
func New() *Adapter {
	return &Adapter{
		files: make(map[string]*memoryFile),
		dirs:  make(map[string]time.Time),
	}
}

func key(p pathkit.Path) string {
	return pathkit.RemoveTrailingSlash(p.String())
}

// Exists implements pathkit.FileReader
func (a *Adapter) Exists(ctx context.Context, p pathkit.Path) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	k := key(p)

	a.mu.RLock()
	defer a.mu.RUnlock()

	if _, ok := a.files[k]; ok {
		return true, nil
	}
	return a.dirExistsLocked(k), nil
}

// dirExistsLocked reports whether k names an explicit or implicit
// directory. Must be called with the lock held.
func (a *Adapter) dirExistsLocked(k string) bool {
	if _, ok := a.dirs[k]; ok {
		return true
	}
	prefix := k + "/"
	for fk := range a.files {
		if strings.HasPrefix(fk, prefix) {
			return true
		}
	}
	for dk := range a.dirs {
		if strings.HasPrefix(dk, prefix) {
			return true
		}
	}
	return false
}

// Stat implements pathkit.FileReader
func (a *Adapter) Stat(ctx context.Context, p pathkit.Path) (*pathkit.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	k := key(p)

	a.mu.RLock()
	defer a.mu.RUnlock()

	if f, ok := a.files[k]; ok {
		return &pathkit.FileInfo{
			Name:    p.Base(),
			Path:    p,
			Size:    int64(len(f.content)),
			ModTime: f.modTime,
			IsDir:   false,
		}, nil
	}
	if a.dirExistsLocked(k) {
		return &pathkit.FileInfo{
			Name:    p.Base(),
			Path:    p,
			ModTime: a.dirs[k],
			IsDir:   true,
		}, nil
	}
	return nil, pathkit.NewPathError("stat", p.String(), pathkit.ErrNotExist)
}

// List implements pathkit.FileReader. Immediate children only, implicit
// directories included, sorted by name.
func (a *Adapter) List(ctx context.Context, p pathkit.Path) ([]pathkit.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	k := key(p)

	a.mu.RLock()
	defer a.mu.RUnlock()

	if _, ok := a.files[k]; ok {
		return nil, pathkit.NewPathError("list", p.String(), pathkit.ErrNotDir)
	}
	if !a.dirExistsLocked(k) {
		return nil, pathkit.NewPathError("list", p.String(), pathkit.ErrNotExist)
	}

	prefix := k + "/"
	seen := make(map[string]bool)
	var infos []pathkit.FileInfo

	for fk, f := range a.files {
		if !strings.HasPrefix(fk, prefix) {
			continue
		}
		rel := strings.TrimPrefix(fk, prefix)
		name, nested, _ := strings.Cut(rel, "/")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		if nested != "" {
			infos = append(infos, pathkit.FileInfo{
				Name:  name,
				Path:  p.Join(name),
				IsDir: true,
			})
			continue
		}
		infos = append(infos, pathkit.FileInfo{
			Name:    name,
			Path:    p.Join(name),
			Size:    int64(len(f.content)),
			ModTime: f.modTime,
			IsDir:   false,
		})
	}

	for dk, mod := range a.dirs {
		if !strings.HasPrefix(dk, prefix) {
			continue
		}
		rel := strings.TrimPrefix(dk, prefix)
		name, _, _ := strings.Cut(rel, "/")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		infos = append(infos, pathkit.FileInfo{
			Name:    name,
			Path:    p.Join(name),
			ModTime: mod,
			IsDir:   true,
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos, nil
}

// Open implements pathkit.FileReader. The returned reader holds a
// snapshot of the content, so later writes do not leak into it.
func (a *Adapter) Open(ctx context.Context, p pathkit.Path) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	k := key(p)

	a.mu.RLock()
	defer a.mu.RUnlock()

	f, ok := a.files[k]
	if !ok {
		return nil, pathkit.NewPathError("open", p.String(), pathkit.ErrNotExist)
	}
	return io.NopCloser(bytes.NewReader(f.content)), nil
}

// Write implements pathkit.FileWriter
func (a *Adapter) Write(ctx context.Context, p pathkit.Path, r io.Reader, opts ...pathkit.Option) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	o := pathkit.ApplyOptions(opts...)
	k := key(p)

	data, err := io.ReadAll(r)
	if err != nil {
		return 0, pathkit.NewPathError("write", p.String(), err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if old, ok := a.files[k]; ok {
		a.size -= int64(len(old.content))
	}
	a.files[k] = &memoryFile{
		content:     data,
		contentType: o.ContentType,
		modTime:     time.Now(),
	}
	a.size += int64(len(data))
	return int64(len(data)), nil
}

// Delete implements pathkit.FileWriter
func (a *Adapter) Delete(ctx context.Context, p pathkit.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	k := key(p)

	a.mu.Lock()
	defer a.mu.Unlock()

	f, ok := a.files[k]
	if !ok {
		return pathkit.NewPathError("delete", p.String(), pathkit.ErrNotExist)
	}
	a.size -= int64(len(f.content))
	delete(a.files, k)
	return nil
}

// CreateDir implements pathkit.FileWriter
func (a *Adapter) CreateDir(ctx context.Context, p pathkit.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	k := key(p)

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.files[k]; ok {
		return pathkit.NewPathError("mkdir", p.String(), pathkit.ErrDirectoryConflict)
	}
	a.dirs[k] = time.Now()
	return nil
}

// DeleteDir implements pathkit.FileWriter. Removes the directory and
// everything below it. Idempotent like the object store backends.
func (a *Adapter) DeleteDir(ctx context.Context, p pathkit.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	k := key(p)

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.files[k]; ok {
		return pathkit.NewPathError("rmdir", p.String(), pathkit.ErrNotDir)
	}

	prefix := k + "/"
	for fk, f := range a.files {
		if strings.HasPrefix(fk, prefix) {
			a.size -= int64(len(f.content))
			delete(a.files, fk)
		}
	}
	for dk := range a.dirs {
		if dk == k || strings.HasPrefix(dk, prefix) {
			delete(a.dirs, dk)
		}
	}
	return nil
}

// ContentType returns the stored content type for a file, or "" if the
// file does not exist.
func (a *Adapter) ContentType(p pathkit.Path) string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if f, ok := a.files[key(p)]; ok {
		return f.contentType
	}
	return ""
}

// Clear removes all files and directories. Useful for test cleanup.
func (a *Adapter) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.files = make(map[string]*memoryFile)
	a.dirs = make(map[string]time.Time)
	a.size = 0
}

// Size returns the current total size of all stored files
func (a *Adapter) Size() int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.size
}

// FileCount returns the number of files stored
func (a *Adapter) FileCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.files)
}

var _ pathkit.Backend = (*Adapter)(nil)
