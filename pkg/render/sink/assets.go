package sink

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	_ "golang.org/x/image/webp"

	"github.com/matzehuels/wristscale/pkg/errors"
	"github.com/matzehuels/wristscale/pkg/httputil"
	"github.com/matzehuels/wristscale/pkg/layout"
	"github.com/matzehuels/wristscale/pkg/observability"
)

// AssetLoader resolves an image reference to a decoded image.
type AssetLoader interface {
	Load(ctx context.Context, ref string) (image.Image, error)
}

// FailureHandler is notified when an item's image cannot be used.
type FailureHandler func(itemID, ref string, err error)

// LocationAssets loads images from http(s) URLs or local paths. Relative
// paths resolve against Dir.
type LocationAssets struct {
	Client *httputil.Client
	Dir    string
}

// NewLocationAssets returns a loader using client, or a default client
// when client is nil.
func NewLocationAssets(client *httputil.Client, dir string) *LocationAssets {
	if client == nil {
		client = httputil.NewClient(nil)
	}
	return &LocationAssets{Client: client, Dir: dir}
}

// Load fetches and decodes ref.
func (l *LocationAssets) Load(ctx context.Context, ref string) (image.Image, error) {
	data, err := l.read(ctx, ref)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", ref, err)
	}
	return img, nil
}

func (l *LocationAssets) read(ctx context.Context, ref string) ([]byte, error) {
	if errors.IsHTTPURL(ref) {
		return l.Client.GetBytes(ctx, ref)
	}
	path := ref
	if l.Dir != "" && !filepath.IsAbs(ref) {
		path = filepath.Join(l.Dir, ref)
	}
	return os.ReadFile(path)
}

// itemAssets holds the per-item load outcome, indexed left then right.
type itemAssets struct {
	images [2]image.Image
	failed [2]bool
}

// loadAssets loads both items' images concurrently. Failures never abort
// the render; they are reported and marked for the error fill.
func loadAssets(ctx context.Context, g layout.Geometry, loader AssetLoader, onFail FailureHandler) itemAssets {
	var out itemAssets
	if loader == nil {
		return out
	}

	items := g.Items()
	errs := [2]error{}
	var eg errgroup.Group
	for i, it := range items {
		if it.Image == "" {
			continue
		}
		i, it := i, it
		eg.Go(func() error {
			img, err := loader.Load(ctx, it.Image)
			if err != nil {
				errs[i] = err
				return nil
			}
			out.images[i] = img
			return nil
		})
	}
	_ = eg.Wait()

	for i, err := range errs {
		if err == nil {
			continue
		}
		out.failed[i] = true
		observability.Render().OnAssetLoadFailure(ctx, items[i].ItemID, items[i].Image, err)
		if onFail != nil {
			onFail(items[i].ItemID, items[i].Image, err)
		}
	}
	return out
}
