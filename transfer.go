package pathkit

import (
	"context"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"sync"
	"time"
)

// Direction selects whether a batch copies toward the destination
// backend as an upload or a download. The mechanics are symmetric; the
// direction picks the progress rendering.
type Direction int

const (
	// DirectionUpload copies filesystem sources to an object store.
	DirectionUpload Direction = iota
	// DirectionDownload copies object-store sources to a filesystem.
	DirectionDownload
)

// String returns the direction's operation name.
func (d Direction) String() string {
	if d == DirectionDownload {
		return "download"
	}
	return "upload"
}

// BatchResult aggregates the outcome of one batch transfer.
type BatchResult struct {
	Succeeded int
	Failed    []ItemError
}

// Transfer engine defaults
const (
	defaultWorkerCount   = 5
	defaultRetryInterval = 5 * time.Second
	defaultRetryAttempts = 12
)

// Engine orchestrates batch transfers between a source and a destination
// backend. Manifest items are dispatched to a bounded worker pool; each
// outcome feeds a ProgressLogger, item failures are recovered locally so
// a single failure never aborts the batch, and newly written objects are
// polled for visibility before an item counts as done.
type Engine struct {
	source   Backend
	dest     Backend
	destRoot Path
	opts     []Option
	o        *Options
}

// NewEngine creates a transfer engine writing under destRoot on dest.
// Unset knobs fall back to package defaults.
func NewEngine(source, dest Backend, destRoot Path, opts ...Option) *Engine {
	o := ApplyOptions(opts...)
	if o.WorkerCount <= 0 {
		o.WorkerCount = defaultWorkerCount
	}
	if o.RetryInterval <= 0 {
		o.RetryInterval = defaultRetryInterval
	}
	if o.RetryAttempts <= 0 {
		o.RetryAttempts = defaultRetryAttempts
	}
	return &Engine{
		source:   source,
		dest:     dest,
		destRoot: destRoot,
		opts:     opts,
		o:        o,
	}
}

// Run processes the whole manifest and returns the aggregate result.
// When one or more items failed, the returned error is a *BatchError
// carrying every failing key with its cause; the result still reports
// the items that succeeded. The manifest must be fully assembled before
// Run starts; the batch is the unit of retry and progress accounting.
func (e *Engine) Run(ctx context.Context, manifest []ManifestEntry, direction Direction) (*BatchResult, error) {
	formatter := e.o.Formatter
	if formatter == nil {
		if direction == DirectionDownload {
			formatter = DownloadFormatter{}
		} else {
			formatter = UploadFormatter{}
		}
	}
	progress := NewProgressLogger(formatter, e.opts...)

	sem := make(chan struct{}, e.o.WorkerCount)
	var wg sync.WaitGroup
	for _, entry := range manifest {
		wg.Add(1)
		sem <- struct{}{}
		go func(entry ManifestEntry) {
			defer wg.Done()
			defer func() { <-sem }()
			n, err := e.transferOne(ctx, entry, direction)
			progress.Add(Result{Key: entry.Key, Bytes: n, Err: err})
		}(entry)
	}
	wg.Wait()

	result := &BatchResult{
		Succeeded: progress.Succeeded(),
		Failed:    progress.Failed(),
	}
	if err := progress.Close(); err != nil {
		return result, err
	}
	return result, nil
}

// transferOne moves a single manifest item and returns the bytes written.
func (e *Engine) transferOne(ctx context.Context, entry ManifestEntry, direction Direction) (int64, error) {
	op := direction.String()
	dest := e.destRoot.Join(entry.Key)

	if entry.IsDir {
		if err := e.dest.CreateDir(ctx, dest); err != nil {
			return 0, NewPathError(op, entry.Source.String(), err)
		}
		return 0, e.awaitVisible(ctx, op, dest)
	}

	rc, err := e.source.Open(ctx, entry.Source)
	if err != nil {
		return 0, NewPathError(op, entry.Source.String(), err)
	}
	defer rc.Close()

	var reader io.Reader = rc
	var hasher hash.Hash
	if e.o.Checksum != "" {
		h, err := NewHasher(e.o.Checksum)
		if err != nil {
			return 0, err
		}
		hasher = h
		reader = io.TeeReader(rc, h)
	}

	n, err := e.dest.Write(ctx, dest, reader, WithContentType(GuessContentType(entry.Key)))
	if err != nil {
		return 0, NewPathError(op, dest.String(), err)
	}

	if hasher != nil {
		if err := e.verifyChecksum(ctx, dest, hex.EncodeToString(hasher.Sum(nil))); err != nil {
			return n, err
		}
	}

	return n, e.awaitVisible(ctx, op, dest)
}

// awaitVisible polls an object-store destination until the written
// object shows up, using the engine's retry budget. Filesystem
// destinations are visible immediately and skip the poll.
func (e *Engine) awaitVisible(ctx context.Context, op string, dest Path) error {
	if !dest.Variant().IsObjectStore() {
		return nil
	}
	visible, err := WaitUntil(ctx, func() bool {
		ok, err := e.dest.Exists(ctx, dest)
		return err == nil && ok
	}, e.o.RetryInterval, e.o.RetryAttempts)
	if err != nil {
		return err
	}
	if !visible {
		return NewPathError(op, dest.String(),
			fmt.Errorf("object not visible after %d attempts", e.o.RetryAttempts))
	}
	return nil
}

// verifyChecksum reads the written object back and compares its digest
// against the digest computed while streaming the source.
func (e *Engine) verifyChecksum(ctx context.Context, dest Path, want string) error {
	rc, err := e.dest.Open(ctx, dest)
	if err != nil {
		return NewPathError("verify", dest.String(), err)
	}
	defer rc.Close()

	got, err := ComputeChecksum(rc, e.o.Checksum)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("checksum mismatch for %s: got %s, want %s", dest, got, want)
	}
	return nil
}
