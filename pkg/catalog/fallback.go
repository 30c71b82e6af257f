package catalog

import (
	"fmt"
	"slices"
)

// FallbackSource names the embedded dataset in logs and dataset metadata.
const FallbackSource = "fallback"

var fallback = []Record{
	{ID: "explorer2-226570", Brand: "Rolex", Model: "Explorer II (226570)", Reference: "226570",
		Diameter: MM(42), Width: MM(50), Thickness: MM(12.5), StrapWidth: MM(21)},
	{ID: "speedy-pro", Brand: "Omega", Model: "Speedmaster Professional", Reference: "310.30.42.50.01.002",
		Diameter: MM(42), Width: MM(48.5), Thickness: MM(13.2), StrapWidth: MM(20)},
	{ID: "bb54", Brand: "Tudor", Model: "Black Bay 54", Reference: "79000",
		Diameter: MM(37), Width: MM(46), Thickness: MM(11.2), StrapWidth: MM(20)},
	{ID: "santos-medium", Brand: "Cartier", Model: "Santos Medium", Reference: "WSSA0029",
		Diameter: MM(35), Width: MM(42), Thickness: MM(8.8), StrapWidth: MM(20)},
}

func init() {
	if err := checkFallback(fallback); err != nil {
		panic(err)
	}
}

// checkFallback enforces the contract that the embedded dataset can always
// serve a comparison on its own.
func checkFallback(recs []Record) error {
	if len(recs) < 2 {
		return fmt.Errorf("catalog: fallback has %d records, need at least 2", len(recs))
	}
	for _, r := range recs {
		if !r.Valid() {
			return fmt.Errorf("catalog: fallback record %q lacks width or diameter", r.ID)
		}
	}
	return nil
}

// Fallback returns a copy of the embedded dataset.
func Fallback() []Record {
	return slices.Clone(fallback)
}
