// Package httputil provides the HTTP client used to fetch remote catalog
// data and item images.
//
// # Overview
//
// [Client] wraps an [net/http.Client] with a fixed timeout, default
// request headers and status-code classification:
//
//   - 200 responses return the body
//   - 404 responses return [ErrNotFound]
//   - transport failures and every other status return [ErrNetwork]
//
// Requests are made exactly once. A failed fetch is reported to the caller,
// which decides whether to move on to another source; nothing is cached
// between runs.
//
// Usage:
//
//	c := httputil.NewClient(nil)
//	data, err := c.GetBytes(ctx, "https://example.com/watches.csv")
//	if errors.Is(err, httputil.ErrNotFound) {
//	    // try the next source
//	}
//
// Every request reports to [observability.HTTP] hooks.
package httputil
