package pathkit

import (
	"log/slog"
	"time"
)

// Option represents a configuration option
type Option func(*Options)

// Options contains all possible options for walks, transfers and writes
type Options struct {
	// ContentType specifies the MIME type of a written object
	ContentType string

	// WorkerCount bounds the number of concurrent transfer workers
	WorkerCount int

	// RetryInterval is the sleep between visibility polls
	RetryInterval time.Duration

	// RetryAttempts caps the number of visibility poll evaluations
	RetryAttempts int

	// ProgressEvery emits a progress line after every N completed items
	ProgressEvery int

	// Formatter overrides the progress message rendering
	Formatter Formatter

	// Logger receives progress lines; slog.Default() when nil
	Logger *slog.Logger

	// Selector filters files during a walk
	Selector Selector

	// Checksum enables post-transfer integrity verification using the
	// given algorithm
	Checksum ChecksumAlgorithm
}

// ApplyOptions collects options into a populated Options value
func ApplyOptions(options ...Option) *Options {
	o := &Options{}
	for _, opt := range options {
		opt(o)
	}
	return o
}

// WithContentType sets the content type of a written object
func WithContentType(contentType string) Option {
	return func(o *Options) {
		o.ContentType = contentType
	}
}

// WithWorkerCount bounds the number of concurrent transfer workers
func WithWorkerCount(n int) Option {
	return func(o *Options) {
		o.WorkerCount = n
	}
}

// WithRetryInterval sets the sleep between visibility polls
func WithRetryInterval(d time.Duration) Option {
	return func(o *Options) {
		o.RetryInterval = d
	}
}

// WithRetryAttempts caps the number of visibility poll evaluations
func WithRetryAttempts(n int) Option {
	return func(o *Options) {
		o.RetryAttempts = n
	}
}

// WithProgressEvery emits a progress line after every n completed items
func WithProgressEvery(n int) Option {
	return func(o *Options) {
		o.ProgressEvery = n
	}
}

// WithFormatter overrides the progress message rendering
func WithFormatter(f Formatter) Option {
	return func(o *Options) {
		o.Formatter = f
	}
}

// WithLogger sets the logger that receives progress lines
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithSelector filters files during a walk
func WithSelector(s Selector) Option {
	return func(o *Options) {
		o.Selector = s
	}
}

// WithChecksum enables post-transfer integrity verification
func WithChecksum(algorithm ChecksumAlgorithm) Option {
	return func(o *Options) {
		o.Checksum = algorithm
	}
}
