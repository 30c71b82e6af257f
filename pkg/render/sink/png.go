package sink

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/wristscale/pkg/fonts"
	"github.com/matzehuels/wristscale/pkg/layout"
	"github.com/matzehuels/wristscale/pkg/render/styles"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	theme  styles.Theme
	loader AssetLoader
	onFail FailureHandler
	scale  float64
}

// WithPNGTheme sets the color theme (default dark).
func WithPNGTheme(t styles.Theme) PNGOption { return func(r *pngRenderer) { r.theme = t } }

// WithPNGAssets loads item images through l.
func WithPNGAssets(l AssetLoader) PNGOption { return func(r *pngRenderer) { r.loader = l } }

// WithPNGFailureHandler registers a callback for images that fail to load.
func WithPNGFailureHandler(h FailureHandler) PNGOption {
	return func(r *pngRenderer) { r.onFail = h }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// textMu serializes glyph rasterization; cached font faces are not safe
// for concurrent use.
var textMu sync.Mutex

// RenderPNG rasterizes g.
func RenderPNG(ctx context.Context, g layout.Geometry, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{theme: styles.MustLookup(styles.Default), scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if !(r.scale > 0) {
		r.scale = 1
	}

	w := int(math.Ceil(g.CanvasWidth * r.scale))
	h := int(math.Ceil(g.CanvasHeight * r.scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("png: empty canvas %dx%d", w, h)
	}

	assets := loadAssets(ctx, g, r.loader, r.onFail)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRoundedRect(img, img.Bounds(), styles.ContainerRadius*r.scale, styles.RGBA(r.theme.Container))

	for _, it := range g.PaintOrder() {
		r.drawItem(img, it, assets)
	}
	for _, l := range g.LabelOrder() {
		if err := r.drawLabel(img, l); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("png: encode: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pngRenderer) px(v float64) int { return int(math.Round(v * r.scale)) }

func (r *pngRenderer) drawItem(dst *image.RGBA, it layout.Item, assets itemAssets) {
	box := image.Rect(r.px(it.Left()), r.px(it.Top()), r.px(it.Right()), r.px(it.Top()+it.BoxSize))
	if box.Empty() {
		return
	}
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(clamp01(it.Opacity) * 255))})
	idx := it.Side.Index()

	switch src := assets.images[idx]; {
	case assets.failed[idx]:
		draw.DrawMask(dst, box, image.NewUniform(styles.RGBA(r.theme.WatchError)), image.Point{}, mask, image.Point{}, draw.Over)
	case src != nil:
		fit := containRect(src.Bounds(), box)
		scaled := image.NewRGBA(image.Rect(0, 0, fit.Dx(), fit.Dy()))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Src, nil)
		draw.DrawMask(dst, fit, scaled, image.Point{}, mask, image.Point{}, draw.Over)
	default:
		strokeRect(dst, box, max(1, r.px(1)), styles.RGBA(r.theme.BoxStroke), mask)
	}
}

func (r *pngRenderer) drawLabel(dst *image.RGBA, l layout.Label) error {
	textMu.Lock()
	defer textMu.Unlock()

	anchor := l.AnchorX() * r.scale
	for _, line := range labelLines(l) {
		if line.Text == "" {
			continue
		}
		face, err := fonts.Face(line.FontSize*r.scale, line.Bold)
		if err != nil {
			return fmt.Errorf("png: %w", err)
		}
		col := r.theme.InfoName
		if line.Kind == layout.LineSpec {
			col = r.theme.InfoSpec
		}

		width := float64(font.MeasureString(face, line.Text)) / 64
		x := anchor
		switch l.Align {
		case layout.AlignCenter:
			x -= width / 2
		case layout.AlignRight:
			x -= width
		}

		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(styles.RGBA(col)),
			Face: face,
			Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(line.Baseline * r.scale * 64)},
		}
		d.DrawString(line.Text)
	}
	return nil
}

// containRect returns the largest rectangle with src's aspect ratio that
// fits centered in box.
func containRect(src, box image.Rectangle) image.Rectangle {
	sw, sh := float64(src.Dx()), float64(src.Dy())
	if sw <= 0 || sh <= 0 {
		return box
	}
	k := math.Min(float64(box.Dx())/sw, float64(box.Dy())/sh)
	w, h := int(math.Round(sw*k)), int(math.Round(sh*k))
	x := box.Min.X + (box.Dx()-w)/2
	y := box.Min.Y + (box.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

func fillRoundedRect(dst *image.RGBA, rect image.Rectangle, radius float64, c color.RGBA) {
	rad := math.Min(radius, math.Min(float64(rect.Dx()), float64(rect.Dy()))/2)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if insideRounded(float64(x)+0.5, float64(y)+0.5, rect, rad) {
				dst.SetRGBA(x, y, c)
			}
		}
	}
}

func insideRounded(x, y float64, r image.Rectangle, rad float64) bool {
	minX, minY := float64(r.Min.X)+rad, float64(r.Min.Y)+rad
	maxX, maxY := float64(r.Max.X)-rad, float64(r.Max.Y)-rad
	dx := math.Max(0, math.Max(minX-x, x-maxX))
	dy := math.Max(0, math.Max(minY-y, y-maxY))
	return dx*dx+dy*dy <= rad*rad
}

func strokeRect(dst *image.RGBA, r image.Rectangle, width int, c color.RGBA, mask image.Image) {
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width),
		image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y+width, r.Min.X+width, r.Max.Y-width),
		image.Rect(r.Max.X-width, r.Min.Y+width, r.Max.X, r.Max.Y-width),
	}
	for _, e := range edges {
		draw.DrawMask(dst, e.Intersect(dst.Bounds()), src, image.Point{}, mask, image.Point{}, draw.Over)
	}
}

func clamp01(v float64) float64 { return math.Max(0, math.Min(1, v)) }
