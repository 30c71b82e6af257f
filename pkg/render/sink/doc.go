// Package sink renders a [layout.Geometry] to SVG, PNG and JSON.
//
// Sinks are stateless adapters: they consume geometry computed elsewhere
// and never change it. Item images are resolved through an [AssetLoader].
// When an image cannot be loaded or decoded the item is drawn with the
// theme's error fill instead, the failure is reported to the configured
// [FailureHandler] and to [observability.Render], and rendering continues.
//
// Paint order follows z-order: items first (lower z first, so the back item
// in overlapped mode is drawn before the front one), then labels, which
// always sit above both items.
//
//	g := layout.Compute(left, right, layout.Overlapped, 800, 400, 200)
//	svg := sink.RenderSVG(g, left, right, sink.WithTheme(styles.MustLookup("light")))
//	png, err := sink.RenderPNG(ctx, g, sink.WithPNGAssets(loader))
//
// [layout.Geometry]: github.com/matzehuels/wristscale/pkg/layout.Geometry
package sink
