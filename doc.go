// Package pathkit provides a single path abstraction for addressing and
// moving resources across heterogeneous storage backends: the local
// filesystem (POSIX and Windows variants) and object stores (OpenStack
// Swift and Amazon S3).
//
// A caller writes one line against a generic [Path] value and the correct
// backend behavior is dispatched from the path's textual shape alone:
//
//	p := pathkit.Classify("swift://container/data")  // Swift variant
//	p := pathkit.Classify("s3://bucket/data")        // S3 variant
//	p := pathkit.Classify(`C:\data`)                 // Windows variant
//	p := pathkit.Classify("/var/data")               // Posix variant
//
// The variant set is closed and the tag is derived once at construction;
// every path operation (Join, Parent, Base) preserves it.
//
// # Storage Backends
//
// Backends implement the [Backend] interface and register themselves for
// a path variant. Importing a driver package is what makes its variant
// available:
//
//	import (
//	    _ "github.com/gobeaver/pathkit/driver/local"
//	    _ "github.com/gobeaver/pathkit/driver/s3"
//	    _ "github.com/gobeaver/pathkit/driver/swift"
//	)
//
// # Batch Transfers
//
// [Walk] flattens files and directories into a manifest of
// (source, destination-key) pairs, including placeholder entries for
// empty directories so they survive the trip into an object store.
// [Engine.Run] processes a manifest with a bounded worker pool,
// per-item progress accounting and partial-failure tolerance: one
// failing item never aborts the batch, and all failures surface together
// as a [BatchError] at the end.
//
//	manifest, err := pathkit.Walk(ctx, local, roots)
//	engine := pathkit.NewEngine(local, remote, destRoot,
//	    pathkit.WithWorkerCount(8),
//	)
//	result, err := engine.Run(ctx, manifest, pathkit.DirectionUpload)
//
// The package-level [Upload], [Download] and [DeleteTree] helpers wire
// the same pieces together from environment configuration.
//
// # Eventual Consistency
//
// Object-store writes are not always immediately visible to subsequent
// listings. [WaitUntil] is the generic poll-until-true primitive the
// engine uses to verify visibility of newly written objects:
//
//	ok, err := pathkit.WaitUntil(ctx, func() bool {
//	    exists, err := remote.Exists(ctx, obj)
//	    return err == nil && exists
//	}, 5*time.Second, 12)
//
// # Scoped Temporary Directories
//
// [WithTempDir] brackets work in a uniquely named scratch directory that
// is removed on every exit path, optionally switching the working
// directory in and out:
//
//	err := pathkit.WithTempDir(func(dir string) error {
//	    // stage files under dir
//	    return nil
//	}, pathkit.WithChdir(true))
//
// # Error Handling
//
// pathkit provides sentinel errors and helper functions:
//
//	_, err := pathkit.Walk(ctx, fs, roots)
//	if pathkit.IsNotExist(err) {
//	    // a walk root does not exist
//	}
//
//	var batchErr *pathkit.BatchError
//	if errors.As(err, &batchErr) {
//	    for _, item := range batchErr.Failed {
//	        fmt.Printf("%s: %v\n", item.Key, item.Err)
//	    }
//	}
//
// # Configuration
//
// pathkit can be configured via environment variables with the PATHKIT_
// prefix, or programmatically via the [Config] struct:
//
//	cfg := pathkit.Config{WorkerCount: 8, S3Region: "us-west-2"}
//	backend, err := pathkit.BackendFor(p, &cfg)
package pathkit
