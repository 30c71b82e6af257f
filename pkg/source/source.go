package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/matzehuels/wristscale/pkg/errors"
	wio "github.com/matzehuels/wristscale/pkg/io"
	"github.com/matzehuels/wristscale/pkg/tabular"
)

// Source produces raw catalog rows.
type Source interface {
	// Name identifies the source in logs and attempts, e.g. "csv:watches.csv".
	Name() string
	// Rows fetches and decodes the source content.
	Rows(ctx context.Context) ([]tabular.Row, error)
}

// Kind names a source type in configuration.
type Kind string

const (
	KindCSV   Kind = "csv"
	KindJSON  Kind = "json"
	KindYAML  Kind = "yaml"
	KindMongo Kind = "mongo"
)

// Spec describes one configured source.
type Spec struct {
	Kind       Kind   `toml:"kind" json:"kind"`
	Location   string `toml:"location" json:"location,omitempty"`
	URI        string `toml:"uri" json:"uri,omitempty"`
	Database   string `toml:"database" json:"database,omitempty"`
	Collection string `toml:"collection" json:"collection,omitempty"`
}

// DefaultSpecs returns the default source order: a CSV file next to the
// working directory, then a JSON file.
func DefaultSpecs() []Spec {
	return []Spec{
		{Kind: KindCSV, Location: "watches.csv"},
		{Kind: KindJSON, Location: "watches.json"},
	}
}

// String renders the spec the way its source will be named.
func (s Spec) String() string {
	if s.Kind == KindMongo {
		return fmt.Sprintf("%s:%s/%s", s.Kind, s.Database, s.Collection)
	}
	return fmt.Sprintf("%s:%s", s.Kind, s.Location)
}

// IsLocalFile reports whether the spec reads a file from disk.
func (s Spec) IsLocalFile() bool {
	return s.Kind != KindMongo && s.Location != "" && !errors.IsHTTPURL(s.Location)
}

// Validate checks that the fields required by the spec's kind are set.
func (s Spec) Validate() error {
	switch s.Kind {
	case KindCSV, KindJSON, KindYAML:
		if strings.TrimSpace(s.Location) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "source %s: location is required", s.Kind)
		}
		if strings.Contains(s.Location, "://") {
			if err := errors.ValidateURL(s.Location); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidConfig, err, "source %s", s)
			}
		}
	case KindMongo:
		if s.URI == "" || s.Database == "" || s.Collection == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "source mongo: uri, database and collection are required")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown source kind %q", s.Kind)
	}
	return nil
}

// New builds a source from its spec. fetch is used by file and URL based
// kinds; nil selects [NewFetcher] with default settings.
func New(s Spec, fetch Fetcher) (Source, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if fetch == nil {
		fetch = NewFetcher(nil)
	}
	switch s.Kind {
	case KindCSV:
		return &Tabular{Location: s.Location, Fetch: fetch}, nil
	case KindJSON:
		return &Structured{Location: s.Location, Format: wio.FormatJSON, Fetch: fetch}, nil
	case KindYAML:
		return &Structured{Location: s.Location, Format: wio.FormatYAML, Fetch: fetch}, nil
	default:
		return &Mongo{URI: s.URI, Database: s.Database, Collection: s.Collection}, nil
	}
}

// NewAll builds sources for every spec, in order.
func NewAll(specs []Spec, fetch Fetcher) ([]Source, error) {
	out := make([]Source, 0, len(specs))
	for _, s := range specs {
		src, err := New(s, fetch)
		if err != nil {
			return nil, err
		}
		out = append(out, src)
	}
	return out, nil
}
