package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/wristscale/pkg/tabular"
)

// Format names a structured document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the document format from a file extension.
// Unknown extensions default to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ReadRows decodes a structured document from r into rows.
//
// Each element of the top-level array (or of the "records" array when the
// top level is an object) becomes one row. Elements that are not mappings
// are skipped. ReadRows does not close r.
func ReadRows(r io.Reader, format Format) ([]tabular.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var doc any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}

	items, err := recordList(doc)
	if err != nil {
		return nil, err
	}

	rows := make([]tabular.Row, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		row := make(tabular.Row, len(m))
		for k, v := range m {
			if s, ok := scalar(v); ok {
				row[strings.TrimSpace(k)] = strings.TrimSpace(s)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ImportRows reads a structured document at path, inferring its format
// from the extension.
func ImportRows(path string) ([]tabular.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadRows(f, FormatFromPath(path))
}

func recordList(doc any) ([]any, error) {
	switch v := doc.(type) {
	case []any:
		return v, nil
	case map[string]any:
		if recs, ok := v["records"].([]any); ok {
			return recs, nil
		}
		return nil, fmt.Errorf("document object has no \"records\" array")
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("document must be an array or an object, got %T", doc)
	}
}

func scalar(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", true
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	default:
		return "", false
	}
}
