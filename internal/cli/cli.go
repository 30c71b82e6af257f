// Package cli implements the wristscale command-line interface.
//
// # Commands
//
//   - compare: render a side-by-side, touching or overlapped comparison
//   - list: show the active working set as a table
//   - pick: choose the pair and mode interactively
//   - serve: serve renders and the JSON API over HTTP
//   - theme: read, set or toggle the stored theme
//   - export: write the working set as JSON
//   - config: show the effective configuration
//
// All commands accept --verbose (-v), --config and --offline.
package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wristscale/pkg/catalog"
	"github.com/matzehuels/wristscale/pkg/httputil"
	"github.com/matzehuels/wristscale/pkg/pipeline"
	"github.com/matzehuels/wristscale/pkg/prefs"
	"github.com/matzehuels/wristscale/pkg/render/sink"
	"github.com/matzehuels/wristscale/pkg/source"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "wristscale"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	offline    bool
	cfg        Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Factories
// =============================================================================

// fetcher resolves relative locations against the configured data dir.
func (c *CLI) fetcher() *source.LocationFetcher {
	f := source.NewFetcher(httputil.NewClient(map[string]string{"User-Agent": appName}))
	f.Dir = c.cfg.DataDir
	return f
}

// newResolver builds a resolver over the configured sources.
func (c *CLI) newResolver() (*source.Resolver, error) {
	srcs, err := source.NewAll(c.cfg.Sources, c.fetcher())
	if err != nil {
		return nil, err
	}
	return source.NewResolver(srcs, c.offline || c.cfg.Offline, c.Logger), nil
}

// loadWorkingSet resolves the dataset once and reports where it came from.
func (c *CLI) loadWorkingSet(ctx context.Context) (*catalog.WorkingSet, *source.Resolver, error) {
	resolver, err := c.newResolver()
	if err != nil {
		return nil, nil, err
	}

	spinner := newSpinnerWithContext(ctx, "Loading watch data...")
	spinner.Start()
	res := resolver.Resolve(ctx)
	spinner.Stop()

	if ctx.Err() != nil {
		return nil, nil, ctx.Err()
	}
	printResolution(res)
	return catalog.NewWorkingSet(res.Dataset), resolver, nil
}

// newRunner creates a pipeline runner whose assets resolve like sources.
func (c *CLI) newRunner(set *catalog.WorkingSet) *pipeline.Runner {
	assets := sink.NewLocationAssets(httputil.NewClient(map[string]string{"User-Agent": appName}), c.cfg.DataDir)
	return pipeline.NewRunner(set, assets, c.Logger)
}

// openPrefs opens the configured preference store.
func (c *CLI) openPrefs(ctx context.Context) (prefs.Store, error) {
	return prefs.Open(ctx, c.cfg.Prefs)
}

// watchPaths lists the local files backing the configured sources.
func (c *CLI) watchPaths() []string {
	f := c.fetcher()
	var paths []string
	for _, spec := range c.cfg.Sources {
		if spec.IsLocalFile() {
			p, err := filepath.Abs(f.Path(spec.Location))
			if err != nil {
				continue
			}
			paths = append(paths, p)
		}
	}
	return paths
}

// =============================================================================
// Options Helpers
// =============================================================================

// layoutDefaults seeds render options from the config file. Flags override.
func (c *CLI) layoutDefaults(opts *pipeline.Options) {
	if opts.Width == 0 {
		opts.Width = c.cfg.Width
	}
	if opts.Height == 0 {
		opts.Height = c.cfg.Height
	}
	if opts.ViewportMm == 0 {
		opts.ViewportMm = c.cfg.ViewportMm
	}
	opts.Logger = c.Logger
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// outputPaths maps each format to its destination. A single format writes
// to output as given; several formats use output as the base name.
func outputPaths(output string, formats []string) map[string]string {
	if output == "" {
		output = "comparison"
	}
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 {
		if filepath.Ext(output) == "" && output != "-" {
			output += "." + formats[0]
		}
		paths[formats[0]] = output
		return paths
	}
	base := strings.TrimSuffix(output, filepath.Ext(output))
	for _, f := range formats {
		paths[f] = fmt.Sprintf("%s.%s", base, f)
	}
	return paths
}
