package sink

import "github.com/matzehuels/wristscale/pkg/layout"

const (
	// lineHeight approximates CSS "normal" line height.
	lineHeight = 1.2
	// ascent is the baseline offset from the top of a line box, in ems.
	ascent = 0.9
)

type placedLine struct {
	layout.Line
	Baseline float64
}

// labelLines stacks a label's lines from its top edge and returns their
// baselines.
func labelLines(l layout.Label) []placedLine {
	out := make([]placedLine, len(l.Lines))
	y := l.Y
	for i, line := range l.Lines {
		y += line.MarginTop
		out[i] = placedLine{Line: line, Baseline: y + line.FontSize*ascent}
		y += line.FontSize * lineHeight
	}
	return out
}

func textAnchor(a layout.Align) string {
	switch a {
	case layout.AlignLeft:
		return "start"
	case layout.AlignRight:
		return "end"
	default:
		return "middle"
	}
}
