package sink

import (
	"encoding/json"

	"github.com/matzehuels/wristscale/pkg/catalog"
	"github.com/matzehuels/wristscale/pkg/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	theme   string
	records [2]*catalog.Record
}

// WithJSONTheme records the theme name in the output.
func WithJSONTheme(name string) JSONOption { return func(r *jsonRenderer) { r.theme = name } }

// WithJSONRecords attaches the compared records so the output carries
// their full measurements alongside the geometry.
func WithJSONRecords(left, right catalog.Record) JSONOption {
	return func(r *jsonRenderer) { r.records = [2]*catalog.Record{&left, &right} }
}

type jsonOutput struct {
	Theme    string           `json:"theme,omitempty"`
	Geometry layout.Geometry  `json:"geometry"`
	Items    []catalog.Record `json:"items,omitempty"`
}

// RenderJSON encodes g, with optional item summaries, as indented JSON.
func RenderJSON(g layout.Geometry, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	out := jsonOutput{Theme: r.theme, Geometry: g}
	if r.records[0] != nil {
		out.Items = []catalog.Record{*r.records[0], *r.records[1]}
	}
	return json.MarshalIndent(out, "", "  ")
}
