package pipeline

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wristscale/pkg/catalog"
	"github.com/matzehuels/wristscale/pkg/errors"
	"github.com/matzehuels/wristscale/pkg/layout"
	"github.com/matzehuels/wristscale/pkg/observability"
	"github.com/matzehuels/wristscale/pkg/render/sink"
	"github.com/matzehuels/wristscale/pkg/source"
)

// Runner executes the pipeline against a shared working set.
//
// The Runner holds no per-request state. Multiple goroutines can safely
// use the same Runner with different options while another goroutine
// reloads the working set.
type Runner struct {
	Set    *catalog.WorkingSet
	Assets sink.AssetLoader
	Logger *log.Logger
}

// NewRunner creates a runner over set. A nil assets loader renders every
// image as a reference without loading it; a nil logger discards output.
func NewRunner(set *catalog.WorkingSet, assets sink.AssetLoader, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Set: set, Assets: assets, Logger: logger}
}

// Select resolves the left and right records for opts from the current
// working set, applying defaults for unknown IDs and the swap flag.
func (r *Runner) Select(opts Options) (*catalog.Dataset, catalog.Record, catalog.Record, error) {
	ds := r.Set.Load()
	if ds == nil {
		return nil, catalog.Record{}, catalog.Record{}, errors.New(errors.ErrCodeEmptySource, "no comparison data is available")
	}
	left, right, ok := ds.Pair(opts.Left, opts.Right)
	if !ok {
		return nil, catalog.Record{}, catalog.Record{}, errors.New(errors.ErrCodeEmptySource, "no comparison data is available")
	}
	if opts.Swap {
		left, right = right, left
	}
	return ds, left, right, nil
}

// Layout selects records and computes their geometry without rendering.
func (r *Runner) Layout(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}
	ds, left, right, err := r.Select(opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	g := layout.Compute(left, right, opts.Mode, opts.Width, opts.Height, opts.ViewportMm)
	elapsed := time.Since(start)
	observability.Render().OnLayoutComplete(ctx, string(g.Mode), elapsed)

	return &Result{
		DatasetID: ds.ID,
		Source:    ds.Source,
		Left:      left,
		Right:     right,
		Geometry:  g,
		Artifacts: make(map[string][]byte),
		Stats:     Stats{Records: ds.Len(), LayoutTime: elapsed},
	}, nil
}

// Execute runs the complete select → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)

	result, err := r.Layout(ctx, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("computed layout",
		"left", result.Left.ID,
		"right", result.Right.ID,
		"mode", result.Geometry.Mode,
		"px_per_mm", result.Geometry.PxPerMm,
		"duration", result.Stats.LayoutTime)

	// Each format loads assets on its own; report a failing image once.
	var mu sync.Mutex
	seen := make(map[string]bool)
	onFail := func(itemID, image string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if seen[itemID+"\x00"+image] {
			return
		}
		seen[itemID+"\x00"+image] = true
		result.AssetFailures = append(result.AssetFailures, AssetFailure{ItemID: itemID, Image: image, Err: err})
		logger.Error("failed to load image", "item", itemID, "image", image, "err", err)
	}

	start := time.Now()
	artifacts, err := Render(ctx, result.Geometry, result.Left, result.Right, opts, r.Assets, onFail)
	result.Stats.RenderTime = time.Since(start)
	observability.Render().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	result.Artifacts = artifacts

	logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)
	return result, nil
}

// Reload resolves a fresh dataset and swaps it into the working set. The
// swap happens only after resolution completes, so readers never observe
// a partially loaded dataset.
func (r *Runner) Reload(ctx context.Context, resolver *source.Resolver) source.Resolution {
	res := resolver.Resolve(ctx)
	prev := r.Set.Swap(res.Dataset)

	fields := []any{"source", res.Dataset.Source, "records", res.Dataset.Len(), "generation", res.Dataset.ID}
	if prev != nil {
		fields = append(fields, "previous", prev.ID)
	}
	r.logger(Options{}).Info("working set replaced", fields...)
	return res
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	if r.Logger != nil {
		return r.Logger
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}
