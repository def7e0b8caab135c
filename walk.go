package pathkit

import (
	"context"
)

// ManifestEntry maps an absolute source path to its backend-agnostic
// destination key. Keys use forward slashes and never begin or end with
// a separator. IsDir marks the placeholder entries emitted for empty
// directories, which carry no files to otherwise represent them at the
// destination.
type ManifestEntry struct {
	Source Path
	Key    string
	IsDir  bool
}

// Walk flattens roots into a transfer manifest: one entry per regular
// file plus one placeholder entry per genuinely empty directory,
// recursively. File roots map to their own basename; contents of
// directory roots are keyed relative to the root's parent, so the root's
// name is the first key segment.
//
// Every root is validated up front; a missing root aborts the whole walk
// with a PathError wrapping ErrNotExist before any manifest is produced.
// Traversal order is unspecified but the result is complete and
// deterministic with respect to contents.
func Walk(ctx context.Context, fs FileReader, roots []Path, opts ...Option) ([]ManifestEntry, error) {
	o := ApplyOptions(opts...)

	// All-or-nothing root validation: no partial manifest escapes when
	// any root is missing.
	infos := make([]*FileInfo, len(roots))
	for i, root := range roots {
		info, err := fs.Stat(ctx, root)
		if err != nil {
			if IsNotExist(err) {
				return nil, NewPathError("walk", root.String(), ErrNotExist)
			}
			return nil, NewPathError("walk", root.String(), err)
		}
		infos[i] = info
	}

	var manifest []ManifestEntry
	for i, root := range roots {
		info := infos[i]
		if !info.IsDir {
			if o.Selector != nil && !o.Selector.Match(info) {
				continue
			}
			manifest = append(manifest, ManifestEntry{Source: root, Key: root.Base()})
			continue
		}
		if err := walkDir(ctx, fs, root, root.Base(), o.Selector, &manifest); err != nil {
			return nil, err
		}
	}
	return manifest, nil
}

// walkDir enumerates dir recursively, appending file entries and, for an
// empty directory, a single placeholder entry for the directory itself.
func walkDir(ctx context.Context, fs FileReader, dir Path, prefix string, sel Selector, out *[]ManifestEntry) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	children, err := fs.List(ctx, dir)
	if err != nil {
		return NewPathError("walk", dir.String(), err)
	}

	if len(children) == 0 {
		*out = append(*out, ManifestEntry{Source: dir, Key: prefix, IsDir: true})
		return nil
	}

	for i := range children {
		child := &children[i]
		key := prefix + "/" + child.Name
		if child.IsDir {
			if err := walkDir(ctx, fs, child.Path, key, sel, out); err != nil {
				return err
			}
			continue
		}
		if sel != nil && !sel.Match(child) {
			continue
		}
		*out = append(*out, ManifestEntry{Source: child.Path, Key: key})
	}
	return nil
}
