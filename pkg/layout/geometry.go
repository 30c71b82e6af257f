package layout

import "slices"

// Align is the horizontal text alignment inside a label box.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// LineKind distinguishes label lines so render surfaces can color them.
type LineKind string

const (
	LineName LineKind = "name"
	LineSpec LineKind = "spec"
)

// Line is one line of label text.
type Line struct {
	Text      string   `json:"text"`
	Kind      LineKind `json:"kind"`
	FontSize  float64  `json:"font_size"`
	MarginTop float64  `json:"margin_top"`
	Bold      bool     `json:"bold,omitempty"`
}

// Label is a text box anchored by its top-left corner.
type Label struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Align  Align   `json:"align"`
	ZIndex int     `json:"z_index"`
	Lines  []Line  `json:"lines"`
}

// AnchorX returns the x coordinate text is aligned to: the left edge, the
// center, or the right edge of the box.
func (l Label) AnchorX() float64 {
	switch l.Align {
	case AlignLeft:
		return l.X
	case AlignRight:
		return l.X + l.Width
	default:
		return l.X + l.Width/2
	}
}

// Side identifies which selection an item came from.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Index returns 0 for the left side and 1 for the right.
func (s Side) Index() int {
	if s == SideRight {
		return 1
	}
	return 0
}

// Item is one placed silhouette. The box is a square of side BoxSize
// centered on (CenterX, CenterY).
type Item struct {
	Side    Side    `json:"side"`
	ItemID  string  `json:"item_id"`
	Image   string  `json:"image,omitempty"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	BoxSize float64 `json:"box_size"`
	ZIndex  int     `json:"z_index"`
	Opacity float64 `json:"opacity"`
	Label   Label   `json:"label"`
}

// Left returns the x coordinate of the box's left edge.
func (it Item) Left() float64 { return it.CenterX - it.BoxSize/2 }

// Top returns the y coordinate of the box's top edge.
func (it Item) Top() float64 { return it.CenterY - it.BoxSize/2 }

// Right returns the x coordinate of the box's right edge.
func (it Item) Right() float64 { return it.CenterX + it.BoxSize/2 }

// Geometry is the complete output of one layout computation.
type Geometry struct {
	Mode         Mode    `json:"mode"`
	PxPerMm      float64 `json:"px_per_mm"`
	CanvasWidth  float64 `json:"canvas_width"`
	CanvasHeight float64 `json:"canvas_height"`
	ViewportMm   float64 `json:"viewport_mm"`
	Narrow       bool    `json:"narrow"`
	Left         Item    `json:"left"`
	Right        Item    `json:"right"`
}

// Items returns the left and right items.
func (g Geometry) Items() [2]Item { return [2]Item{g.Left, g.Right} }

// PaintOrder returns the items sorted by ascending z-order. Items with equal
// z-order keep left-then-right order.
func (g Geometry) PaintOrder() []Item {
	items := []Item{g.Left, g.Right}
	slices.SortStableFunc(items, func(a, b Item) int { return a.ZIndex - b.ZIndex })
	return items
}

// LabelOrder returns the labels sorted by ascending z-order.
func (g Geometry) LabelOrder() []Label {
	labels := []Label{g.Left.Label, g.Right.Label}
	slices.SortStableFunc(labels, func(a, b Label) int { return a.ZIndex - b.ZIndex })
	return labels
}
