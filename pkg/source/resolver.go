package source

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wristscale/pkg/catalog"
	"github.com/matzehuels/wristscale/pkg/errors"
	"github.com/matzehuels/wristscale/pkg/observability"
)

// Attempt is the outcome of trying one source.
type Attempt struct {
	Source   string
	Valid    int
	Dropped  int
	Duration time.Duration
	Err      error
}

// OK reports whether the attempt produced at least one valid record.
func (a Attempt) OK() bool { return a.Err == nil && a.Valid > 0 }

// Resolution is the result of one resolve cycle.
type Resolution struct {
	Dataset      *catalog.Dataset
	Attempts     []Attempt
	UsedFallback bool
}

// Resolver tries sources in order and falls back to the embedded dataset.
type Resolver struct {
	Sources []Source
	// Offline skips every source and uses the fallback immediately.
	Offline bool
	Logger  *log.Logger
}

// NewResolver creates a resolver over sources. A nil logger discards output.
func NewResolver(sources []Source, offline bool, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Resolver{Sources: sources, Offline: offline, Logger: logger}
}

// Resolve returns the records of the first source yielding at least one
// valid record, or the fallback dataset. It never fails.
func (r *Resolver) Resolve(ctx context.Context) Resolution {
	logger := r.logger()
	hooks := observability.Source()

	if r.Offline {
		logger.Debug("offline, skipping sources", "count", len(r.Sources))
		return r.fallback(ctx, "offline", nil)
	}

	var attempts []Attempt
	for _, src := range r.Sources {
		name := src.Name()
		hooks.OnAttemptStart(ctx, name)
		start := time.Now()

		recs, att := attempt(ctx, src)
		att.Duration = time.Since(start)
		attempts = append(attempts, att)
		hooks.OnAttemptComplete(ctx, name, att.Valid, att.Duration, att.Err)

		if !att.OK() {
			logger.Warn("source unavailable", "source", name, "err", att.Err)
			continue
		}
		if att.Dropped > 0 {
			logger.Debug("excluded invalid records", "source", name, "dropped", att.Dropped)
		}
		logger.Info("loaded catalog", "source", name, "records", att.Valid)
		return Resolution{
			Dataset:  catalog.NewDataset(name, recs),
			Attempts: attempts,
		}
	}

	return r.fallback(ctx, "no source yielded valid records", attempts)
}

func (r *Resolver) fallback(ctx context.Context, reason string, attempts []Attempt) Resolution {
	observability.Source().OnFallback(ctx, reason)
	ds := catalog.NewDataset(catalog.FallbackSource, catalog.Fallback())
	r.logger().Info("using fallback catalog", "reason", reason, "records", ds.Len())
	return Resolution{Dataset: ds, Attempts: attempts, UsedFallback: true}
}

func (r *Resolver) logger() *log.Logger {
	if r.Logger == nil {
		return log.NewWithOptions(io.Discard, log.Options{})
	}
	return r.Logger
}

// attempt fetches, normalizes and filters one source. Failures are
// returned in the Attempt, classified as unavailable or empty.
func attempt(ctx context.Context, src Source) ([]catalog.Record, Attempt) {
	att := Attempt{Source: src.Name()}

	rows, err := src.Rows(ctx)
	if err != nil {
		att.Err = errors.Wrap(errors.ErrCodeSourceUnavailable, err, "source %s", att.Source)
		return nil, att
	}

	valid, dropped := catalog.FilterValid(catalog.NormalizeAll(rows))
	att.Valid, att.Dropped = len(valid), dropped
	if len(valid) == 0 {
		att.Err = errors.New(errors.ErrCodeEmptySource, "source %s: no valid records in %d rows", att.Source, len(rows))
		return nil, att
	}
	return valid, att
}
