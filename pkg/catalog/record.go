package catalog

import "fmt"

// Record is the canonical, immutable description of one comparable item.
// Width is the lug-to-lug length and doubles as the silhouette side.
type Record struct {
	ID         string      `json:"id"`
	Brand      string      `json:"brand"`
	Model      string      `json:"model"`
	Reference  string      `json:"reference"`
	Image      string      `json:"image,omitempty"`
	Diameter   Millimeters `json:"diameter_mm"`
	Width      Millimeters `json:"l2l_mm"`
	Thickness  Millimeters `json:"thickness_mm"`
	StrapWidth Millimeters `json:"lug_mm"`
}

// Valid reports whether the record can be compared: both width and
// diameter must be present and positive.
func (r Record) Valid() bool {
	return r.Width.Positive() && r.Diameter.Positive()
}

// Label is the display name used in selectors, e.g. "Tudor — Black Bay 54".
func (r Record) Label() string {
	return fmt.Sprintf("%s — %s", r.Brand, r.Model)
}

// FilterValid returns the valid records of recs in their original order
// along with the number of records dropped.
func FilterValid(recs []Record) (valid []Record, dropped int) {
	valid = make([]Record, 0, len(recs))
	for _, r := range recs {
		if r.Valid() {
			valid = append(valid, r)
		} else {
			dropped++
		}
	}
	return valid, dropped
}
