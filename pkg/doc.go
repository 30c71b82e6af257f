// Package pkg provides the libraries behind wristscale, a tool that compares
// watch case sizes at true relative scale.
//
// # Overview
//
// Two watches are drawn on one canvas using a single pixels-per-millimeter
// factor, so their on-screen sizes relate exactly as their physical
// lug-to-lug widths do. The pkg directory is organized by stage:
//
//  1. [tabular], [io], [source] - read raw rows from CSV, JSON, YAML or MongoDB
//  2. [catalog] - normalize rows into records and hold the active dataset
//  3. [layout] - compute comparison geometry (pure, no I/O)
//  4. [render] - draw geometry as SVG, PNG or JSON
//  5. [pipeline] - orchestrate select → layout → render
//
// # Architecture
//
//	configured sources (csv → json → ...)
//	         ↓
//	    [source] resolver (first source with a valid record wins,
//	                       else the embedded fallback)
//	         ↓
//	    [catalog] working set (replaced atomically on reload)
//	         ↓
//	    [layout] Compute(left, right, mode, canvas, viewport)
//	         ↓
//	    [render/sink] SVG / PNG / JSON
//
// # Quick Start
//
//	res := source.NewResolver(srcs, false, logger).Resolve(ctx)
//	runner := pipeline.NewRunner(catalog.NewWorkingSet(res.Dataset), nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Left:  "bb54",
//	    Right: "speedy-pro",
//	    Mode:  layout.Overlapped,
//	})
//
// # Supporting Packages
//
//   - [errors]: code-based structured errors
//   - [httputil]: HTTP client used by sources and image loading
//   - [observability]: hooks for source, render and HTTP events
//   - [prefs]: preference store (file, Redis or memory) for the theme
//   - [watcher]: debounced file watching for live reload
//   - [fonts]: embedded fonts for raster labels
//   - [buildinfo]: version information set at build time
//
// [tabular]: github.com/matzehuels/wristscale/pkg/tabular
// [io]: github.com/matzehuels/wristscale/pkg/io
// [source]: github.com/matzehuels/wristscale/pkg/source
// [catalog]: github.com/matzehuels/wristscale/pkg/catalog
// [layout]: github.com/matzehuels/wristscale/pkg/layout
// [render]: github.com/matzehuels/wristscale/pkg/render
// [render/sink]: github.com/matzehuels/wristscale/pkg/render/sink
// [pipeline]: github.com/matzehuels/wristscale/pkg/pipeline
// [errors]: github.com/matzehuels/wristscale/pkg/errors
// [httputil]: github.com/matzehuels/wristscale/pkg/httputil
// [observability]: github.com/matzehuels/wristscale/pkg/observability
// [prefs]: github.com/matzehuels/wristscale/pkg/prefs
// [watcher]: github.com/matzehuels/wristscale/pkg/watcher
// [fonts]: github.com/matzehuels/wristscale/pkg/fonts
// [buildinfo]: github.com/matzehuels/wristscale/pkg/buildinfo
package pkg
