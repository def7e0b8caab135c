// Package local implements the pathkit backend for the host filesystem.
// It serves both the Posix and Windows path variants; the variant only
// changes how path strings are joined, which the Path value itself owns.
package local

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/gobeaver/pathkit"
)

// Adapter provides a local filesystem implementation of pathkit.Backend
type Adapter struct{}

// New creates a new local filesystem adapter
func New() *Adapter {
	return &Adapter{}
}

// Exists implements pathkit.FileReader
func (a *Adapter) Exists(ctx context.Context, p pathkit.Path) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := os.Stat(p.String())
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, pathkit.NewPathError("exists", p.String(), err)
	}
	return true, nil
}

// Stat implements pathkit.FileReader
func (a *Adapter) Stat(ctx context.Context, p pathkit.Path) (*pathkit.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	info, err := os.Stat(p.String())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pathkit.NewPathError("stat", p.String(), pathkit.ErrNotExist)
		}
		return nil, pathkit.NewPathError("stat", p.String(), err)
	}
	return &pathkit.FileInfo{
		Name:    info.Name(),
		Path:    p,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		IsDir:   info.IsDir(),
	}, nil
}

// List implements pathkit.FileReader
func (a *Adapter) List(ctx context.Context, p pathkit.Path) ([]pathkit.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(p.String())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pathkit.NewPathError("list", p.String(), pathkit.ErrNotExist)
		}
		return nil, pathkit.NewPathError("list", p.String(), err)
	}

	infos := make([]pathkit.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			// Entry vanished between ReadDir and Info.
			continue
		}
		infos = append(infos, pathkit.FileInfo{
			Name:    entry.Name(),
			Path:    p.Join(entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			IsDir:   entry.IsDir(),
		})
	}
	return infos, nil
}

// Open implements pathkit.FileReader
func (a *Adapter) Open(ctx context.Context, p pathkit.Path) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(p.String())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pathkit.NewPathError("open", p.String(), pathkit.ErrNotExist)
		}
		return nil, pathkit.NewPathError("open", p.String(), err)
	}
	return f, nil
}

// Write implements pathkit.FileWriter
func (a *Adapter) Write(ctx context.Context, p pathkit.Path, r io.Reader, opts ...pathkit.Option) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	target := p.String()
	if err := pathkit.MakeDestDir(filepath.Dir(target)); err != nil {
		return 0, pathkit.NewPathError("write", target, err)
	}

	f, err := os.Create(target)
	if err != nil {
		return 0, pathkit.NewPathError("write", target, err)
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		return n, pathkit.NewPathError("write", target, err)
	}
	return n, nil
}

// Delete implements pathkit.FileWriter
func (a *Adapter) Delete(ctx context.Context, p pathkit.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(p.String()); err != nil {
		if os.IsNotExist(err) {
			return pathkit.NewPathError("delete", p.String(), pathkit.ErrNotExist)
		}
		return pathkit.NewPathError("delete", p.String(), err)
	}
	return nil
}

// CreateDir implements pathkit.FileWriter
func (a *Adapter) CreateDir(ctx context.Context, p pathkit.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := pathkit.MakeDestDir(p.String()); err != nil {
		if pathkit.IsDirectoryConflict(err) {
			return err
		}
		return pathkit.NewPathError("mkdir", p.String(), err)
	}
	return nil
}

// DeleteDir implements pathkit.FileWriter
func (a *Adapter) DeleteDir(ctx context.Context, p pathkit.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.RemoveAll(p.String()); err != nil {
		return pathkit.NewPathError("rmdir", p.String(), err)
	}
	return nil
}
