// Package swift implements the pathkit backend for OpenStack Swift.
// Paths have the form swift://container/key. Directory semantics follow
// the same placeholder convention as the S3 backend: a directory exists
// when any object carries its prefix, and empty directories are stored
// as zero-byte objects whose name ends with a slash.
package swift

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/ncw/swift/v2"

	"github.com/gobeaver/pathkit"
)

// Adapter provides a Swift implementation of pathkit.Backend
type Adapter struct {
	conn *swift.Connection
}

// New creates a new Swift backend adapter from an authenticated
// connection
func New(conn *swift.Connection) *Adapter {
	return &Adapter{conn: conn}
}

// location splits a Swift path into container and key.
func location(p pathkit.Path) (string, string) {
	return p.Container(), p.Key()
}

func dirPrefix(key string) string {
	if key == "" {
		return ""
	}
	return key + "/"
}

// Exists implements pathkit.FileReader
func (a *Adapter) Exists(ctx context.Context, p pathkit.Path) (bool, error) {
	container, key := location(p)

	if key == "" {
		_, _, err := a.conn.Container(ctx, container)
		if err != nil {
			if errors.Is(err, swift.ContainerNotFound) {
				return false, nil
			}
			return false, mapSwiftError("exists", p.String(), err)
		}
		return true, nil
	}

	_, _, err := a.conn.Object(ctx, container, key)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, swift.ObjectNotFound) {
		return false, mapSwiftError("exists", p.String(), err)
	}

	return a.prefixExists(ctx, container, dirPrefix(key))
}

// prefixExists reports whether any object lives under the given prefix.
func (a *Adapter) prefixExists(ctx context.Context, container, prefix string) (bool, error) {
	names, err := a.conn.ObjectNames(ctx, container, &swift.ObjectsOpts{
		Prefix: prefix,
		Limit:  1,
	})
	if err != nil {
		if errors.Is(err, swift.ContainerNotFound) {
			return false, nil
		}
		return false, mapSwiftError("exists", prefix, err)
	}
	return len(names) > 0, nil
}

// Stat implements pathkit.FileReader
func (a *Adapter) Stat(ctx context.Context, p pathkit.Path) (*pathkit.FileInfo, error) {
	container, key := location(p)

	if key != "" {
		obj, _, err := a.conn.Object(ctx, container, key)
		if err == nil {
			return &pathkit.FileInfo{
				Name:    p.Base(),
				Path:    p,
				Size:    obj.Bytes,
				ModTime: obj.LastModified,
				IsDir:   false,
			}, nil
		}
		if !errors.Is(err, swift.ObjectNotFound) {
			return nil, mapSwiftError("stat", p.String(), err)
		}
	}

	ok, err := a.prefixExists(ctx, container, dirPrefix(key))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, pathkit.NewPathError("stat", p.String(), pathkit.ErrNotExist)
	}
	return &pathkit.FileInfo{
		Name:  p.Base(),
		Path:  p,
		IsDir: true,
	}, nil
}

// List implements pathkit.FileReader. Listing with a delimiter makes
// Swift return pseudo-directory entries for common prefixes.
func (a *Adapter) List(ctx context.Context, p pathkit.Path) ([]pathkit.FileInfo, error) {
	container, key := location(p)
	prefix := dirPrefix(key)

	objects, err := a.conn.ObjectsAll(ctx, container, &swift.ObjectsOpts{
		Prefix:    prefix,
		Delimiter: '/',
	})
	if err != nil {
		return nil, mapSwiftError("list", p.String(), err)
	}

	infos := make([]pathkit.FileInfo, 0, len(objects))
	for _, obj := range objects {
		// Skip the directory's own placeholder object.
		if obj.Name == prefix {
			continue
		}
		name := strings.TrimSuffix(strings.TrimPrefix(obj.Name, prefix), "/")
		if name == "" || strings.Contains(name, "/") {
			continue
		}
		if obj.PseudoDirectory {
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
			Size:    obj.Bytes,
			ModTime: obj.LastModified,
			IsDir:   false,
		})
	}
	return infos, nil
}

// Open implements pathkit.FileReader
func (a *Adapter) Open(ctx context.Context, p pathkit.Path) (io.ReadCloser, error) {
	container, key := location(p)
	f, _, err := a.conn.ObjectOpen(ctx, container, key, false, nil)
	if err != nil {
		return nil, mapSwiftError("open", p.String(), err)
	}
	return f, nil
}

// Write implements pathkit.FileWriter
func (a *Adapter) Write(ctx context.Context, p pathkit.Path, r io.Reader, opts ...pathkit.Option) (int64, error) {
	o := pathkit.ApplyOptions(opts...)
	container, key := location(p)

	f, err := a.conn.ObjectCreate(ctx, container, key, false, "", o.ContentType, nil)
	if err != nil {
		return 0, mapSwiftError("write", p.String(), err)
	}

	n, err := io.Copy(f, r)
	if err != nil {
		_ = f.Close()
		return n, pathkit.NewPathError("write", p.String(), err)
	}
	// Close commits the upload.
	if err := f.Close(); err != nil {
		return n, mapSwiftError("write", p.String(), err)
	}
	return n, nil
}

// Delete implements pathkit.FileWriter
func (a *Adapter) Delete(ctx context.Context, p pathkit.Path) error {
	container, key := location(p)
	if err := a.conn.ObjectDelete(ctx, container, key); err != nil {
		return mapSwiftError("delete", p.String(), err)
	}
	return nil
}

// CreateDir implements pathkit.FileWriter by writing a zero-byte
// placeholder object.
func (a *Adapter) CreateDir(ctx context.Context, p pathkit.Path) error {
	container, key := location(p)
	err := a.conn.ObjectPutBytes(ctx, container, dirPrefix(key), nil, pathkit.MIMETypeDirectory)
	if err != nil {
		return mapSwiftError("mkdir", p.String(), err)
	}
	return nil
}

// DeleteDir implements pathkit.FileWriter by deleting every object under
// the prefix.
func (a *Adapter) DeleteDir(ctx context.Context, p pathkit.Path) error {
	container, key := location(p)
	names, err := a.conn.ObjectNamesAll(ctx, container, &swift.ObjectsOpts{
		Prefix: dirPrefix(key),
	})
	if err != nil {
		return mapSwiftError("rmdir", p.String(), err)
	}
	for _, name := range names {
		if err := a.conn.ObjectDelete(ctx, container, name); err != nil &&
			!errors.Is(err, swift.ObjectNotFound) {
			return mapSwiftError("rmdir", p.String(), err)
		}
	}
	return nil
}

// mapSwiftError maps client errors onto pathkit sentinels.
func mapSwiftError(op, path string, err error) error {
	if errors.Is(err, swift.ObjectNotFound) || errors.Is(err, swift.ContainerNotFound) {
		return pathkit.NewPathError(op, path, pathkit.ErrNotExist)
	}
	return pathkit.NewPathError(op, path, err)
}
