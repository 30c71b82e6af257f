package catalog

import (
	"regexp"
	"strings"

	"github.com/matzehuels/wristscale/pkg/tabular"
)

// Field aliases in priority order. The first present, non-blank alias wins.
var (
	DiameterFields   = []string{"diameter_mm", "diameter", "case_diameter_mm"}
	WidthFields      = []string{"l2l_mm", "lug_to_lug_mm", "lug_to_lug"}
	ThicknessFields  = []string{"thickness_mm", "thickness"}
	StrapWidthFields = []string{"lug_mm", "lug_width_mm", "lug_width"}
)

var whitespace = regexp.MustCompile(`\s+`)

// Normalize maps one input row to a Record. It is total: any row, including
// an empty one, produces a record with a non-empty ID. Validity is not
// checked here.
func Normalize(row tabular.Row) Record {
	brand := row["brand"]
	model := row["model"]

	id := strings.TrimSpace(row["id"])
	if id == "" {
		id = SynthesizeID(brand, model)
	}

	return Record{
		ID:         id,
		Brand:      brand,
		Model:      model,
		Reference:  row["reference"],
		Image:      strings.TrimSpace(row["image"]),
		Diameter:   measure(row, DiameterFields),
		Width:      measure(row, WidthFields),
		Thickness:  measure(row, ThicknessFields),
		StrapWidth: measure(row, StrapWidthFields),
	}
}

// NormalizeAll normalizes rows in order.
func NormalizeAll(rows []tabular.Row) []Record {
	recs := make([]Record, len(rows))
	for i, row := range rows {
		recs[i] = Normalize(row)
	}
	return recs
}

// SynthesizeID derives an ID from brand and model: lower-cased, with each
// whitespace run replaced by a hyphen. Distinct items sharing brand and
// model collide; callers tolerate duplicates.
func SynthesizeID(brand, model string) string {
	s := strings.ToLower(brand) + "-" + strings.ToLower(model)
	return whitespace.ReplaceAllString(s, "-")
}

func measure(row tabular.Row, aliases []string) Millimeters {
	v, ok := row.Lookup(aliases...)
	if !ok {
		return Millimeters{}
	}
	return ParseMM(v)
}
