package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/matzehuels/wristscale/pkg/catalog"
)

type document struct {
	Generation string           `json:"generation"`
	Source     string           `json:"source"`
	LoadedAt   time.Time        `json:"loaded_at"`
	Records    []catalog.Record `json:"records"`
}

// WriteJSON encodes a dataset as an indented JSON document and writes it to w.
func WriteJSON(ds *catalog.Dataset, w io.Writer) error {
	out := document{
		Generation: ds.ID.String(),
		Source:     ds.Source,
		LoadedAt:   ds.LoadedAt.UTC(),
		Records:    ds.Records(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a dataset to a JSON file at path.
func ExportJSON(ds *catalog.Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(ds, f)
}
