package pathkit

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Result is the outcome of one manifest item: either a success carrying
// the bytes transferred, or a failure carrying the cause. Results are
// owned by the ProgressLogger for the duration of one batch.
type Result struct {
	Key   string
	Bytes int64
	Err   error
}

// Stats is a snapshot of a running batch handed to a Formatter.
type Stats struct {
	Succeeded int
	Failed    int
	Bytes     int64
	Elapsed   time.Duration
}

// Total returns the number of items processed so far.
func (s Stats) Total() int { return s.Succeeded + s.Failed }

// Formatter renders a progress summary line. Implementations customize
// only the message; aggregation (counting, bytes, elapsed time) is owned
// by the ProgressLogger. An empty message suppresses the log line.
type Formatter interface {
	ProgressMessage(stats Stats) string
}

// UploadFormatter renders upload progress.
type UploadFormatter struct{}

func (UploadFormatter) ProgressMessage(s Stats) string {
	if s.Total() == 0 {
		return ""
	}
	return fmt.Sprintf("uploaded %d object(s), %s, %d failed, elapsed %s",
		s.Succeeded, formatBytes(s.Bytes), s.Failed, s.Elapsed.Round(time.Millisecond))
}

// DownloadFormatter renders download progress.
type DownloadFormatter struct{}

func (DownloadFormatter) ProgressMessage(s Stats) string {
	if s.Total() == 0 {
		return ""
	}
	return fmt.Sprintf("downloaded %d object(s), %s, %d failed, elapsed %s",
		s.Succeeded, formatBytes(s.Bytes), s.Failed, s.Elapsed.Round(time.Millisecond))
}

// DeleteFormatter renders deletion progress.
type DeleteFormatter struct{}

func (DeleteFormatter) ProgressMessage(s Stats) string {
	if s.Total() == 0 {
		return ""
	}
	return fmt.Sprintf("deleted %d object(s), %d failed, elapsed %s",
		s.Succeeded, s.Failed, s.Elapsed.Round(time.Millisecond))
}

func formatBytes(n int64) string {
	const (
		kib = 1024
		mib = 1024 * kib
		gib = 1024 * mib
	)
	switch {
	case n >= gib:
		return fmt.Sprintf("%.2f GiB", float64(n)/gib)
	case n >= mib:
		return fmt.Sprintf("%.2f MiB", float64(n)/mib)
	case n >= kib:
		return fmt.Sprintf("%.2f KiB", float64(n)/kib)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// defaultProgressEvery is the item cadence for periodic progress lines.
const defaultProgressEvery = 50

// ProgressLogger is a scoped aggregator for batch results. Workers feed
// completed items through Add, which is safe to call concurrently; a
// summary line is emitted every ProgressEvery items. Close flushes the
// final summary and surfaces accumulated failures as a *BatchError, so a
// caller cannot silently miss partial failures.
type ProgressLogger struct {
	mu        sync.Mutex
	logger    *slog.Logger
	formatter Formatter
	every     int
	start     time.Time

	succeeded int
	bytes     int64
	failed    []ItemError
	closed    bool
}

// NewProgressLogger creates a progress logger for one batch. The
// formatter decides the message text; WithLogger and WithProgressEvery
// adjust the sink and cadence.
func NewProgressLogger(formatter Formatter, opts ...Option) *ProgressLogger {
	o := ApplyOptions(opts...)
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	every := o.ProgressEvery
	if every <= 0 {
		every = defaultProgressEvery
	}
	return &ProgressLogger{
		logger:    logger,
		formatter: formatter,
		every:     every,
		start:     time.Now(),
	}
}

// Add records the outcome of one completed item.
func (p *ProgressLogger) Add(r Result) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if r.Err != nil {
		p.failed = append(p.failed, ItemError{Key: r.Key, Err: r.Err})
	} else {
		p.succeeded++
		p.bytes += r.Bytes
	}

	if (p.succeeded+len(p.failed))%p.every == 0 {
		p.emit()
	}
}

// Succeeded returns the number of successful items recorded so far.
func (p *ProgressLogger) Succeeded() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.succeeded
}

// Failed returns a copy of the failures recorded so far.
func (p *ProgressLogger) Failed() []ItemError {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ItemError, len(p.failed))
	copy(out, p.failed)
	return out
}

// Close flushes the final summary line and returns a *BatchError if any
// recorded result was a failure. An empty batch closes cleanly and, when
// the formatted message is empty, emits nothing. Close is idempotent.
func (p *ProgressLogger) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	p.emit()

	if len(p.failed) > 0 {
		failed := make([]ItemError, len(p.failed))
		copy(failed, p.failed)
		return &BatchError{Failed: failed}
	}
	return nil
}

// emit logs the current summary. Callers hold p.mu.
func (p *ProgressLogger) emit() {
	msg := p.formatter.ProgressMessage(Stats{
		Succeeded: p.succeeded,
		Failed:    len(p.failed),
		Bytes:     p.bytes,
		Elapsed:   time.Since(p.start),
	})
	if msg != "" {
		p.logger.Info(msg)
	}
}
