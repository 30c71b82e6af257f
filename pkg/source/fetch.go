package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/matzehuels/wristscale/pkg/errors"
	"github.com/matzehuels/wristscale/pkg/httputil"
)

// Fetcher loads raw bytes for a location.
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, location string) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, location string) ([]byte, error) {
	return f(ctx, location)
}

// LocationFetcher dispatches http(s) URLs to an HTTP client and everything
// else to the local filesystem. Relative paths resolve against Dir.
type LocationFetcher struct {
	Client *httputil.Client
	Dir    string
}

// NewFetcher returns a LocationFetcher using client, or a default client
// when client is nil. Relative paths resolve against the working directory.
func NewFetcher(client *httputil.Client) *LocationFetcher {
	if client == nil {
		client = httputil.NewClient(nil)
	}
	return &LocationFetcher{Client: client}
}

// Fetch reads location.
func (f *LocationFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if errors.IsHTTPURL(location) {
		return f.Client.GetBytes(ctx, location)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path(location))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", location, err)
	}
	return data, nil
}

// Path resolves a local location against Dir.
func (f *LocationFetcher) Path(location string) string {
	if f.Dir == "" || filepath.IsAbs(location) {
		return location
	}
	return filepath.Join(f.Dir, location)
}
