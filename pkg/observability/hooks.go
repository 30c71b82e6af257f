// Package observability provides hooks for metrics, tracing, and diagnostics.
//
// Hooks let a front end observe data-source resolution, layout/render
// passes and asset-load failures without the libraries depending on a
// specific backend. Defaults are no-ops.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSourceHooks(&mySourceHooks{})
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Source().OnAttemptStart(ctx, name)
//	// ... fetch, parse, normalize ...
//	observability.Source().OnAttemptComplete(ctx, name, valid, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Source Hooks
// =============================================================================

// SourceHooks receives events from the data source resolver.
type SourceHooks interface {
	// OnAttemptStart is called before a source is fetched.
	OnAttemptStart(ctx context.Context, source string)

	// OnAttemptComplete is called after a source attempt with the number of
	// valid records it produced and the failure, if any.
	OnAttemptComplete(ctx context.Context, source string, valid int, duration time.Duration, err error)

	// OnFallback is called when the embedded dataset is used.
	OnFallback(ctx context.Context, reason string)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the layout and render pipeline.
type RenderHooks interface {
	// OnLayoutComplete records one layout computation.
	OnLayoutComplete(ctx context.Context, mode string, duration time.Duration)

	// OnRenderComplete records one render pass over the requested formats.
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)

	// OnAssetLoadFailure records an item whose visual asset could not be
	// loaded and was replaced by the error fill.
	OnAssetLoadFailure(ctx context.Context, itemID, image string, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSourceHooks is a no-op implementation of SourceHooks.
type NoopSourceHooks struct{}

func (NoopSourceHooks) OnAttemptStart(context.Context, string)                                 {}
func (NoopSourceHooks) OnAttemptComplete(context.Context, string, int, time.Duration, error) {}
func (NoopSourceHooks) OnFallback(context.Context, string)                                     {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnLayoutComplete(context.Context, string, time.Duration)                {}
func (NoopRenderHooks) OnRenderComplete(context.Context, []string, time.Duration, error)        {}
func (NoopRenderHooks) OnAssetLoadFailure(context.Context, string, string, error)               {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sourceHooks SourceHooks = NoopSourceHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetSourceHooks registers custom source hooks.
// This should be called once at application startup before any resolution.
func SetSourceHooks(h SourceHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sourceHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Source returns the registered source hooks.
func Source() SourceHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sourceHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sourceHooks = NoopSourceHooks{}
	renderHooks = NoopRenderHooks{}
	httpHooks = NoopHTTPHooks{}
}
