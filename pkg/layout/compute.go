package layout

import (
	"math"

	"github.com/matzehuels/wristscale/pkg/catalog"
)

const (
	// DefaultViewportMm is the physical width the canvas represents.
	DefaultViewportMm = 200.0

	// NarrowBreakpoint is the canvas width below which the compact gap and
	// font sizes apply.
	NarrowBreakpoint = 600.0
)

const (
	wideGap        = 220.0
	narrowGapMax   = 200.0
	narrowGapRatio = 0.18

	topLabelWidth  = 200.0
	sideLabelWidth = 120.0
	labelLift      = 50.0
	overlapLift    = 30.0
	touchingInset  = 36.0
	labelZOffset   = 10

	backOpacity = 0.8

	// gridBits sets the touching-mode grid to canvasW/2^gridBits, rounded
	// down to a power of two.
	gridBits = 20
	// gridSpan bounds the grid multiples that still add exactly.
	gridSpan = 1 << 50
)

type fontSizes struct{ name, spec float64 }

var (
	wideFonts   = fontSizes{name: 12, spec: 11}
	narrowFonts = fontSizes{name: 9, spec: 8}
)

// Compute lays out left and right on a canvasW × canvasH canvas that
// represents viewportMm millimeters horizontally.
func Compute(left, right catalog.Record, mode Mode, canvasW, canvasH, viewportMm float64) Geometry {
	if !(viewportMm > 0) || math.IsInf(viewportMm, 0) {
		viewportMm = DefaultViewportMm
	}
	if !mode.Valid() {
		mode = SideBySide
	}

	g := Geometry{
		Mode:         mode,
		PxPerMm:      canvasW / viewportMm,
		CanvasWidth:  canvasW,
		CanvasHeight: canvasH,
		ViewportMm:   viewportMm,
		Narrow:       canvasW < NarrowBreakpoint,
	}
	c := placer{g: &g, cx: canvasW / 2, cy: canvasH / 2, gap: Gap(canvasW)}
	c.fonts = wideFonts
	if g.Narrow {
		c.fonts = narrowFonts
	}

	switch mode {
	case Touching:
		c.touching(left, right)
	case Overlapped:
		c.overlapped(left, right)
	default:
		c.sideBySide(left, right)
	}
	return g
}

// Gap returns the horizontal offset of each item from the canvas center in
// side-by-side mode. Overlapped mode reuses it for label placement.
func Gap(canvasW float64) float64 {
	if canvasW < NarrowBreakpoint {
		return math.Min(narrowGapMax, canvasW*narrowGapRatio)
	}
	return wideGap
}

type placer struct {
	g      *Geometry
	cx, cy float64
	gap    float64
	fonts  fontSizes
}

// widthPx is the square side length in side-by-side and overlapped modes.
func (p placer) widthPx(r catalog.Record) float64 {
	return r.Width.Or(0) * p.g.PxPerMm
}

// footprintPx is the square side length in touching mode.
func (p placer) footprintPx(r catalog.Record) float64 {
	return math.Max(r.Width.Or(0), r.Diameter.Or(0)) * p.g.PxPerMm
}

func (p placer) item(side Side, r catalog.Record, x, box float64, z int, opacity float64) Item {
	return Item{
		Side:    side,
		ItemID:  r.ID,
		Image:   r.Image,
		CenterX: x,
		CenterY: p.cy,
		BoxSize: box,
		ZIndex:  z,
		Opacity: opacity,
	}
}

func (p placer) label(r catalog.Record, x, y, width float64, align Align, itemZ int) Label {
	return Label{
		X:      x,
		Y:      y,
		Width:  width,
		Align:  align,
		ZIndex: itemZ + labelZOffset,
		Lines: []Line{
			{Text: r.Brand, Kind: LineName, FontSize: p.fonts.name, Bold: true},
			{Text: r.Model, Kind: LineName, FontSize: p.fonts.name, MarginTop: 2},
			{Text: SpecLine(r), Kind: LineSpec, FontSize: p.fonts.spec, MarginTop: 4},
		},
	}
}

func (p placer) sideBySide(left, right catalog.Record) {
	for _, s := range []struct {
		side Side
		rec  catalog.Record
		x    float64
		dest *Item
	}{
		{SideLeft, left, p.cx - p.gap, &p.g.Left},
		{SideRight, right, p.cx + p.gap, &p.g.Right},
	} {
		box := p.widthPx(s.rec)
		it := p.item(s.side, s.rec, s.x, box, 1, 1)
		it.Label = p.label(s.rec, s.x-topLabelWidth/2, p.cy-box/2-labelLift, topLabelWidth, AlignCenter, it.ZIndex)
		*s.dest = it
	}
}

// touching places the boxes edge to edge at the canvas center. Sizes and
// the center are snapped to a power-of-two grid so that rx-lx equals
// (lbox+rbox)/2 and the box edges meet without rounding.
func (p placer) touching(left, right catalog.Record) {
	unit := gridUnit(p.g.CanvasWidth)
	lbox, rbox := snap(p.footprintPx(left), unit), snap(p.footprintPx(right), unit)
	cx := snap(p.cx, unit)
	total := (lbox + rbox) / 2
	lx, rx := cx-total/2, cx+total/2

	l := p.item(SideLeft, left, lx, lbox, 1, 1)
	l.Label = p.label(left, lx+touchingInset-sideLabelWidth, p.cy-p.widthPx(left)/2-labelLift, sideLabelWidth, AlignRight, l.ZIndex)
	p.g.Left = l

	r := p.item(SideRight, right, rx, rbox, 1, 1)
	r.Label = p.label(right, rx-touchingInset, p.cy-p.widthPx(right)/2-labelLift, sideLabelWidth, AlignLeft, r.ZIndex)
	p.g.Right = r
}

func (p placer) overlapped(left, right catalog.Record) {
	l := p.item(SideLeft, left, p.cx, p.widthPx(left), 1, backOpacity)
	l.Label = p.label(left, p.cx-p.gap-sideLabelWidth, p.cy-overlapLift, sideLabelWidth, AlignRight, l.ZIndex)
	p.g.Left = l

	r := p.item(SideRight, right, p.cx, p.widthPx(right), 2, 1)
	r.Label = p.label(right, p.cx+p.gap, p.cy-overlapLift, sideLabelWidth, AlignLeft, r.ZIndex)
	p.g.Right = r
}

// gridUnit returns a power of two near canvasW/2^gridBits. Doubling the
// canvas doubles the unit exactly, so snapping stays linear in canvasW.
func gridUnit(canvasW float64) float64 {
	_, exp := math.Frexp(canvasW)
	return math.Ldexp(1, exp-1-gridBits)
}

// snap rounds v to the nearest multiple of unit. Values too large for the
// grid are returned unchanged.
func snap(v, unit float64) float64 {
	if math.IsNaN(v) || math.Abs(v/unit) >= gridSpan {
		return v
	}
	return math.Round(v/unit) * unit
}

// SpecLine formats the measurement line shown under an item's name.
func SpecLine(r catalog.Record) string {
	return "Lug-to-Lug: " + r.Width.String() + "mm"
}
