package pathkit

import (
	"context"
	"io"
	"time"
)

// FileInfo represents file/directory metadata on a backend
type FileInfo struct {
	Name    string
	Path    Path
	Size    int64
	ModTime time.Time
	IsDir   bool
}

// ============================================================================
// Backend Interfaces (Interface Segregation)
// ============================================================================

// FileReader provides read-only access to a storage backend.
// Use this type in function signatures to enforce read-only at compile time.
type FileReader interface {
	// Exists checks whether a file or directory exists at p.
	Exists(ctx context.Context, p Path) (bool, error)

	// Stat returns metadata for the file or directory at p.
	Stat(ctx context.Context, p Path) (*FileInfo, error)

	// List returns the immediate children of the directory at p.
	List(ctx context.Context, p Path) ([]FileInfo, error)

	// Open returns a stream for reading file content.
	Open(ctx context.Context, p Path) (io.ReadCloser, error)
}

// FileWriter provides write operations on a storage backend.
type FileWriter interface {
	// Write writes content from r to p and returns the number of bytes
	// written.
	Write(ctx context.Context, p Path, r io.Reader, opts ...Option) (int64, error)

	// Delete removes a file.
	Delete(ctx context.Context, p Path) error

	// CreateDir creates a directory (and parents if needed). Object-store
	// backends materialize it as a zero-byte placeholder object so that
	// empty directories survive a round trip.
	CreateDir(ctx context.Context, p Path) error

	// DeleteDir removes a directory and all contents.
	DeleteDir(ctx context.Context, p Path) error
}

// Backend provides full read-write access to a storage backend.
type Backend interface {
	FileReader
	FileWriter
}
