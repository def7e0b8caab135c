package pathkit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// MakeDestDir creates a local destination directory and any missing
// parents. A regular file sitting where the directory (or one of its
// parents) must go is reported as ErrDirectoryConflict so callers can
// react specifically instead of treating it as a generic filesystem
// error.
func MakeDestDir(dir string) error {
	err := os.MkdirAll(dir, 0o755)
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.ENOTDIR) || isFileInTheWay(err, dir) {
		return fmt.Errorf("%w: %s", ErrDirectoryConflict, dir)
	}
	return err
}

// isFileInTheWay reports whether the MkdirAll failure was caused by a
// regular file already occupying the target path.
func isFileInTheWay(err error, dir string) bool {
	if !errors.Is(err, fs.ErrExist) {
		return false
	}
	info, statErr := os.Stat(dir)
	return statErr == nil && !info.IsDir()
}
