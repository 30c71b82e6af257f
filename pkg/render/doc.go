// Package render groups the output side of wristscale.
//
// # Overview
//
// Rendering is split in two subpackages:
//
//   - [sink]: SVG, PNG and JSON renderers for a [layout.Geometry]
//   - [styles]: the dark and light themes shared by every sink
//
// Sinks never change geometry. A theme switch or a failed image load
// affects only how an item is painted, never where it sits.
//
//	g := layout.Compute(left, right, layout.Touching, 800, 400, 200)
//	svg := sink.RenderSVG(ctx, g, sink.WithTheme(styles.MustLookup("light")))
//	png, err := sink.RenderPNG(ctx, g, sink.WithScale(2))
//
// [sink]: github.com/matzehuels/wristscale/pkg/render/sink
// [styles]: github.com/matzehuels/wristscale/pkg/render/styles
// [layout.Geometry]: github.com/matzehuels/wristscale/pkg/layout.Geometry
package render
