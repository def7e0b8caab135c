package pathkit

import (
	"context"
	"sync"
)

// Upload walks sources (files and directories on one filesystem backend)
// and copies every file plus every empty directory to dest, an
// object-store path. Backends are resolved from the variant registry and
// tuned from environment config; explicit options win over config.
func Upload(ctx context.Context, sources []string, dest string, opts ...Option) (*BatchResult, error) {
	return runBatch(ctx, sources, dest, DirectionUpload, opts...)
}

// Download walks sources on an object-store backend and copies them to
// dest on the local filesystem.
func Download(ctx context.Context, sources []string, dest string, opts ...Option) (*BatchResult, error) {
	return runBatch(ctx, sources, dest, DirectionDownload, opts...)
}

func runBatch(ctx context.Context, sources []string, dest string, direction Direction, opts ...Option) (*BatchResult, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}

	srcPaths, err := classifyBatch(sources)
	if err != nil {
		return nil, err
	}
	destPath := Classify(dest)

	srcBackend, err := BackendFor(srcPaths[0], cfg)
	if err != nil {
		return nil, err
	}
	destBackend, err := BackendFor(destPath, cfg)
	if err != nil {
		return nil, err
	}

	all := append(cfg.transferOptions(), opts...)
	manifest, err := Walk(ctx, srcBackend, srcPaths, all...)
	if err != nil {
		return nil, err
	}

	engine := NewEngine(srcBackend, destBackend, destPath, all...)
	return engine.Run(ctx, manifest, direction)
}

// classifyBatch classifies raw inputs and enforces that they all share
// one backend variant; mixed backends within one batch are disallowed.
func classifyBatch(sources []string) ([]Path, error) {
	if len(sources) == 0 {
		return nil, ErrNotExist
	}
	paths := make([]Path, len(sources))
	for i, s := range sources {
		paths[i] = Classify(s)
		if paths[i].Variant() != paths[0].Variant() {
			return nil, ErrMixedVariants
		}
	}
	return paths, nil
}

// DeleteTree removes every file under root with per-item progress and
// partial-failure tolerance, then removes the remaining directory
// skeleton. Individual failures never abort the batch; they surface in
// aggregate as a *BatchError.
func DeleteTree(ctx context.Context, root string, opts ...Option) (*BatchResult, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	p := Classify(root)
	backend, err := BackendFor(p, cfg)
	if err != nil {
		return nil, err
	}

	all := append(cfg.transferOptions(), opts...)
	manifest, err := Walk(ctx, backend, []Path{p}, all...)
	if err != nil {
		return nil, err
	}

	o := ApplyOptions(all...)
	if o.WorkerCount <= 0 {
		o.WorkerCount = defaultWorkerCount
	}
	progress := NewProgressLogger(DeleteFormatter{}, all...)

	sem := make(chan struct{}, o.WorkerCount)
	var wg sync.WaitGroup
	for _, entry := range manifest {
		wg.Add(1)
		sem <- struct{}{}
		go func(entry ManifestEntry) {
			defer wg.Done()
			defer func() { <-sem }()
			var err error
			if entry.IsDir {
				err = backend.DeleteDir(ctx, entry.Source)
			} else {
				err = backend.Delete(ctx, entry.Source)
			}
			progress.Add(Result{Key: entry.Key, Err: err})
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

	// All items gone; drop the now-empty directory skeleton.
	if err := backend.DeleteDir(ctx, p); err != nil {
		return result, err
	}
	return result, nil
}
