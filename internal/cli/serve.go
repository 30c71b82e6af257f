package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/wristscale/internal/server"
	"github.com/matzehuels/wristscale/pkg/buildinfo"
	"github.com/matzehuels/wristscale/pkg/pipeline"
	"github.com/matzehuels/wristscale/pkg/watcher"
)

// serveCommand creates the serve command, which exposes renders over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		watch    bool
		debounce = watcher.DefaultDebounce
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve comparisons and the JSON API over HTTP",
		Long: `Serve comparisons and the JSON API over HTTP.

Endpoints:
  GET  /render.svg, /render.png   ?left=&right=&mode=&swap=1&width=&height=&viewport=&theme=
  GET  /api/layout                geometry as JSON (same parameters)
  GET  /api/items                 active dataset
  POST /api/reload                reload sources
  GET  /api/theme, PUT /api/theme stored theme
  GET  /theme.css                 theme palette as CSS variables
  GET  /healthz

With --watch, local source files are watched and the dataset is reloaded
when they change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.cfg.Server.Addr
			}
			if !cmd.Flags().Changed("watch") {
				watch = c.cfg.Server.Watch
			}
			return c.runServe(cmd.Context(), addr, watch, debounce)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload when local source files change")
	cmd.Flags().DurationVar(&debounce, "debounce", debounce, "quiet period before a watched change triggers a reload")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, watch bool, debounce time.Duration) error {
	set, resolver, err := c.loadWorkingSet(ctx)
	if err != nil {
		return err
	}

	store, err := c.openPrefs(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	defaults := pipeline.Options{}
	c.layoutDefaults(&defaults)

	srv := server.New(server.Config{
		Runner:   c.newRunner(set),
		Resolver: resolver,
		Prefs:    store,
		Defaults: defaults,
		Logger:   c.Logger,
	})

	c.Logger.Info("starting server", "version", buildinfo.Version, "addr", addr, "watch", watch)
	printInfo("Serving on %s", StyleHighlight.Render("http://"+addr))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(ctx, addr)
	})
	if watch {
		paths := c.watchPaths()
		if len(paths) == 0 {
			c.Logger.Warn("--watch set but no local source files are configured")
		}
		g.Go(func() error {
			return watcher.Watch(ctx, paths, debounce, c.Logger, func() {
				res := srv.Reload(ctx)
				printResolution(res)
			})
		})
	}
	return g.Wait()
}
