package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/wristscale/pkg/catalog"
)

func TestReadRowsJSONArray(t *testing.T) {
	input := `[
	  {"brand": " Tudor ", "model": "Black Bay 54", "l2l_mm": 46.0, "diameter_mm": 37, "in_stock": true, "tags": ["a"]},
	  "not a mapping",
	  {"brand": "Omega", "diameter": null}
	]`
	rows, err := ReadRows(strings.NewReader(input), FormatJSON)
	if err != nil {
		t.Fatalf("ReadRows() error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	first := rows[0]
	tests := map[string]string{
		"brand":       "Tudor",
		"model":       "Black Bay 54",
		"l2l_mm":      "46.0",
		"diameter_mm": "37",
		"in_stock":    "true",
	}
	for k, want := range tests {
		if got := first[k]; got != want {
			t.Errorf("row[%q] = %q, want %q", k, got, want)
		}
	}
	if _, ok := first["tags"]; ok {
		t.Error("nested arrays should be ignored")
	}
	if v, ok := rows[1]["diameter"]; !ok || v != "" {
		t.Errorf("null value = %q, %v; want empty string", v, ok)
	}
}

func TestReadRowsYAML(t *testing.T) {
	input := `
records:
  - brand: Cartier
    model: Santos Medium
    l2l_mm: 41.9
    diameter_mm: 35.1
  - brand: Rolex
    model: Explorer II
    lug_to_lug: 50
`
	rows, err := ReadRows(strings.NewReader(input), FormatYAML)
	if err != nil {
		t.Fatalf("ReadRows() error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0]["l2l_mm"] != "41.9" {
		t.Errorf("l2l_mm = %q, want %q", rows[0]["l2l_mm"], "41.9")
	}
	if rows[1]["lug_to_lug"] != "50" {
		t.Errorf("lug_to_lug = %q, want %q", rows[1]["lug_to_lug"], "50")
	}
}

func TestReadRowsErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{"malformed json", `[{"brand": `, FormatJSON},
		{"scalar document", `42`, FormatJSON},
		{"object without records", `{"watches": []}`, FormatJSON},
		{"malformed yaml", "records: [a, b\n", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadRows(strings.NewReader(tt.input), tt.format); err == nil {
				t.Error("ReadRows() expected error")
			}
		})
	}
}

func TestReadRowsEmpty(t *testing.T) {
	rows, err := ReadRows(strings.NewReader("  \n"), FormatJSON)
	if err != nil || len(rows) != 0 {
		t.Errorf("ReadRows(blank) = %v, %v; want no rows", rows, err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"watches.json": FormatJSON,
		"watches.yaml": FormatYAML,
		"WATCHES.YML":  FormatYAML,
		"watches":      FormatJSON,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestExportRoundTrip(t *testing.T) {
	ds := catalog.NewDataset("fallback", catalog.Fallback())

	path := filepath.Join(t.TempDir(), "export.json")
	if err := ExportJSON(ds, path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}

	rows, err := ImportRows(path)
	if err != nil {
		t.Fatalf("ImportRows() error: %v", err)
	}
	got := catalog.NormalizeAll(rows)
	want := ds.Records()
	if len(got) != len(want) {
		t.Fatalf("round trip produced %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestWriteJSONHeader(t *testing.T) {
	ds := catalog.NewDataset("csv:watches.csv", catalog.Fallback())
	var buf bytes.Buffer
	if err := WriteJSON(ds, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"generation": "` + ds.ID.String() + `"`, `"source": "csv:watches.csv"`, `"l2l_mm"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s", want)
		}
	}
}

func TestImportRowsMissingFile(t *testing.T) {
	if _, err := ImportRows(filepath.Join(os.TempDir(), "does-not-exist-wristscale.json")); err == nil {
		t.Error("ImportRows() expected error for missing file")
	}
}
