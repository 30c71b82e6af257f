package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/wristscale/pkg/catalog"
	"github.com/matzehuels/wristscale/pkg/layout"
	"github.com/matzehuels/wristscale/pkg/render/sink"
	"github.com/matzehuels/wristscale/pkg/render/styles"
)

// Render generates output artifacts in the requested formats. Image load
// failures are reported to onFail and never fail the render.
func Render(ctx context.Context, g layout.Geometry, left, right catalog.Record, opts Options, assets sink.AssetLoader, onFail sink.FailureHandler) (map[string][]byte, error) {
	theme, err := styles.Lookup(opts.Theme)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(ctx, g, buildSVGOptions(theme, opts, assets, onFail)...)
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, g,
				sink.WithPNGTheme(theme),
				sink.WithPNGAssets(assets),
				sink.WithPNGFailureHandler(onFail),
				sink.WithScale(opts.Scale),
			)
		case FormatJSON:
			data, err = sink.RenderJSON(g, sink.WithJSONTheme(theme.Name), sink.WithJSONRecords(left, right))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func buildSVGOptions(theme styles.Theme, opts Options, assets sink.AssetLoader, onFail sink.FailureHandler) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithTheme(theme), sink.WithFailureHandler(onFail)}
	if assets != nil {
		svgOpts = append(svgOpts, sink.WithAssets(assets))
	}
	if opts.EmbedFont {
		svgOpts = append(svgOpts, sink.WithEmbeddedFont())
	}
	return svgOpts
}
