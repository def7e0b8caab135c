package pathkit

import (
	"os"
)

// TempDir owns a uniquely named scratch directory and, when the working
// directory was switched into it, the caller's prior working directory.
// Close restores the working directory first and then removes the
// directory recursively; both happen exactly once regardless of how the
// owning scope exits.
type TempDir struct {
	path    string
	prevDir string
	chdir   bool
	closed  bool
}

// TempDirOption configures temporary directory acquisition
type TempDirOption func(*tempDirOptions)

type tempDirOptions struct {
	parent string
	chdir  bool
}

// WithParent creates the directory under parent instead of the platform
// default temp root
func WithParent(parent string) TempDirOption {
	return func(o *tempDirOptions) {
		o.parent = parent
	}
}

// WithChdir switches the process working directory into the new
// directory on acquire and restores it on Close. At most one TempDir
// with this option may be active per process at a time; the working
// directory is process-wide state.
func WithChdir(change bool) TempDirOption {
	return func(o *tempDirOptions) {
		o.chdir = change
	}
}

// NewTempDir creates a uniquely named temporary directory. The caller
// must Close it; prefer WithTempDir for scoped use.
func NewTempDir(opts ...TempDirOption) (*TempDir, error) {
	var o tempDirOptions
	for _, opt := range opts {
		opt(&o)
	}

	dir, err := os.MkdirTemp(o.parent, "pathkit-")
	if err != nil {
		return nil, err
	}
	t := &TempDir{path: dir}

	if o.chdir {
		prev, err := os.Getwd()
		if err != nil {
			_ = os.RemoveAll(dir)
			return nil, err
		}
		if err := os.Chdir(dir); err != nil {
			_ = os.RemoveAll(dir)
			return nil, err
		}
		t.prevDir = prev
		t.chdir = true
	}

	return t, nil
}

// Path returns the directory path.
func (t *TempDir) Path() string { return t.path }

// Close restores the prior working directory (if it was switched) and
// removes the directory and its contents. Restoration happens before
// removal; a directory cannot be removed while it is the working
// directory on some platforms. Close is idempotent, and a directory
// already gone at removal time is not an error.
func (t *TempDir) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	var restoreErr error
	if t.chdir {
		restoreErr = os.Chdir(t.prevDir)
	}
	removeErr := os.RemoveAll(t.path)

	if restoreErr != nil {
		return restoreErr
	}
	return removeErr
}

// WithTempDir runs body inside a scoped temporary directory, guaranteeing
// cleanup on every exit path. An error from body takes precedence over
// any cleanup error.
func WithTempDir(body func(dir string) error, opts ...TempDirOption) (err error) {
	t, err := NewTempDir(opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := t.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return body(t.Path())
}
