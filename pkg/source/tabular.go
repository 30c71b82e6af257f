package source

import (
	"bytes"
	"context"

	wio "github.com/matzehuels/wristscale/pkg/io"
	"github.com/matzehuels/wristscale/pkg/tabular"
)

// Tabular reads comma-separated text with a header row.
type Tabular struct {
	Location string
	Fetch    Fetcher
}

func (t *Tabular) Name() string { return string(KindCSV) + ":" + t.Location }

func (t *Tabular) Rows(ctx context.Context) ([]tabular.Row, error) {
	data, err := t.Fetch.Fetch(ctx, t.Location)
	if err != nil {
		return nil, err
	}
	return tabular.Parse(string(data)), nil
}

// Structured reads a JSON or YAML document of mappings.
type Structured struct {
	Location string
	Format   wio.Format
	Fetch    Fetcher
}

func (s *Structured) Name() string { return string(s.Format) + ":" + s.Location }

func (s *Structured) Rows(ctx context.Context) ([]tabular.Row, error) {
	data, err := s.Fetch.Fetch(ctx, s.Location)
	if err != nil {
		return nil, err
	}
	return wio.ReadRows(bytes.NewReader(data), s.Format)
}
