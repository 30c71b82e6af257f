package cli

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wristscale/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at debug level along with the elapsed time since progress
// was created, rounded to the millisecond.
// Example output: "rendered svg,png (12ms)"
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// RegisterHooks routes source, render and HTTP events to the CLI logger at
// debug level.
func (c *CLI) RegisterHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetSourceHooks(h)
	observability.SetRenderHooks(h)
	observability.SetHTTPHooks(h)
}

type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnAttemptStart(_ context.Context, source string) {
	h.logger.Debug("trying source", "source", source)
}

func (h *logHooks) OnAttemptComplete(_ context.Context, source string, valid int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("source failed", "source", source, "elapsed", d.Round(time.Millisecond), "err", err)
		return
	}
	h.logger.Debug("source loaded", "source", source, "records", valid, "elapsed", d.Round(time.Millisecond))
}

func (h *logHooks) OnFallback(_ context.Context, reason string) {
	h.logger.Debug("using embedded dataset", "reason", reason)
}

func (h *logHooks) OnLayoutComplete(_ context.Context, mode string, d time.Duration) {
	h.logger.Debug("layout", "mode", mode, "elapsed", d.Round(time.Microsecond))
}

func (h *logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.logger.Debug("render", "formats", strings.Join(formats, ","), "elapsed", d.Round(time.Millisecond), "err", err)
}

func (h *logHooks) OnAssetLoadFailure(_ context.Context, itemID, image string, err error) {
	h.logger.Debug("asset failed", "item", itemID, "image", image, "err", err)
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path, "status", status, "elapsed", d.Round(time.Millisecond))
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}
