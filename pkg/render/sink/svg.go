package sink

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/matzehuels/wristscale/pkg/fonts"
	"github.com/matzehuels/wristscale/pkg/layout"
	"github.com/matzehuels/wristscale/pkg/render/styles"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme     styles.Theme
	loader    AssetLoader
	onFail    FailureHandler
	embedFont bool
}

// WithTheme sets the color theme (default dark).
func WithTheme(t styles.Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }

// WithAssets loads item images through l and inlines them as data URIs.
// Without it, images are referenced by their original location.
func WithAssets(l AssetLoader) SVGOption { return func(r *svgRenderer) { r.loader = l } }

// WithFailureHandler registers a callback for images that fail to load.
func WithFailureHandler(h FailureHandler) SVGOption { return func(r *svgRenderer) { r.onFail = h } }

// WithEmbeddedFont embeds the label font so output renders identically
// without the font installed.
func WithEmbeddedFont() SVGOption { return func(r *svgRenderer) { r.embedFont = true } }

// RenderSVG renders g as a standalone SVG document.
func RenderSVG(ctx context.Context, g layout.Geometry, opts ...SVGOption) []byte {
	r := svgRenderer{theme: styles.MustLookup(styles.Default)}
	for _, opt := range opts {
		opt(&r)
	}
	assets := loadAssets(ctx, g, r.loader, r.onFail)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		g.CanvasWidth, g.CanvasHeight, g.CanvasWidth, g.CanvasHeight)

	r.renderDefs(&buf)
	fmt.Fprintf(&buf, `  <rect class="container" x="0" y="0" width="%.1f" height="%.1f" rx="%.0f" ry="%.0f" fill="%s"/>`+"\n",
		g.CanvasWidth, g.CanvasHeight, styles.ContainerRadius, styles.ContainerRadius, r.theme.Container)

	for _, it := range g.PaintOrder() {
		r.renderItem(&buf, it, assets)
	}
	for _, l := range g.LabelOrder() {
		r.renderLabel(&buf, l)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n    <style>\n")
	if r.embedFont {
		fmt.Fprintf(buf, "      @font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }\n",
			fonts.FontFamily, fonts.RegularBase64())
	}
	fmt.Fprintf(buf, "      text { font-family: %s; }\n", fonts.FallbackFontFamily)
	fmt.Fprintf(buf, "      .name { fill: %s; }\n      .spec { fill: %s; }\n", r.theme.InfoName, r.theme.InfoSpec)
	buf.WriteString("    </style>\n  </defs>\n")
}

func (r *svgRenderer) renderItem(buf *bytes.Buffer, it layout.Item, assets itemAssets) {
	x, y, s := it.Left(), it.Top(), it.BoxSize
	idx := it.Side.Index()

	fmt.Fprintf(buf, `  <g class="item" id="item-%s" data-item="%s" opacity="%g">`+"\n",
		it.Side, styles.EscapeXML(it.ItemID), it.Opacity)

	switch {
	case assets.failed[idx]:
		fmt.Fprintf(buf, `    <rect class="watch-error" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="1" fill="%s"/>`+"\n",
			x, y, s, s, r.theme.WatchError)
	case it.Image != "":
		href := styles.EscapeXML(it.Image)
		if img := assets.images[idx]; img != nil {
			var pngBuf bytes.Buffer
			if err := png.Encode(&pngBuf, img); err == nil {
				href = "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBuf.Bytes())
			}
		}
		fmt.Fprintf(buf, `    <image x="%.2f" y="%.2f" width="%.2f" height="%.2f" href="%s" preserveAspectRatio="xMidYMid meet"/>`+"\n",
			x, y, s, s, href)
	default:
		fmt.Fprintf(buf, `    <rect class="box" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="1" fill="none" stroke="%s"/>`+"\n",
			x, y, s, s, r.theme.BoxStroke)
	}
	buf.WriteString("  </g>\n")
}

func (r *svgRenderer) renderLabel(buf *bytes.Buffer, l layout.Label) {
	anchor := textAnchor(l.Align)
	x := l.AnchorX()
	for _, line := range labelLines(l) {
		if line.Text == "" {
			continue
		}
		weight := ""
		if line.Bold {
			weight = ` font-weight="600"`
		}
		fmt.Fprintf(buf, `  <text class="%s" x="%.2f" y="%.2f" font-size="%g" text-anchor="%s"%s>%s</text>`+"\n",
			line.Kind, x, line.Baseline, line.FontSize, anchor, weight, styles.EscapeXML(line.Text))
	}
}
