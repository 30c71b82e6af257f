package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/wristscale/pkg/errors"
)

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{"csv", Spec{Kind: KindCSV, Location: "watches.csv"}, false},
		{"yaml url", Spec{Kind: KindYAML, Location: "https://example.com/w.yaml"}, false},
		{"csv without location", Spec{Kind: KindCSV}, true},
		{"ftp location", Spec{Kind: KindCSV, Location: "ftp://example.com/w.csv"}, true},
		{"mongo", Spec{Kind: KindMongo, URI: "mongodb://localhost", Database: "db", Collection: "watches"}, false},
		{"mongo without collection", Spec{Kind: KindMongo, URI: "mongodb://localhost", Database: "db"}, true},
		{"unknown kind", Spec{Kind: "xml", Location: "w.xml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Validate() code = %s, want INVALID_CONFIG", errors.GetCode(err))
			}
		})
	}
}

func TestNewNames(t *testing.T) {
	tests := []struct {
		spec Spec
		want string
	}{
		{Spec{Kind: KindCSV, Location: "watches.csv"}, "csv:watches.csv"},
		{Spec{Kind: KindJSON, Location: "watches.json"}, "json:watches.json"},
		{Spec{Kind: KindYAML, Location: "w.yml"}, "yaml:w.yml"},
		{Spec{Kind: KindMongo, URI: "mongodb://h", Database: "shop", Collection: "watches"}, "mongo:shop/watches"},
	}
	for _, tt := range tests {
		src, err := New(tt.spec, nil)
		if err != nil {
			t.Fatalf("New(%v) error: %v", tt.spec, err)
		}
		if got := src.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
		if got := tt.spec.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSpecIsLocalFile(t *testing.T) {
	if !(Spec{Kind: KindCSV, Location: "watches.csv"}).IsLocalFile() {
		t.Error("relative csv path should be local")
	}
	if (Spec{Kind: KindCSV, Location: "https://x.test/w.csv"}).IsLocalFile() {
		t.Error("URL should not be local")
	}
	if (Spec{Kind: KindMongo}).IsLocalFile() {
		t.Error("mongo should not be local")
	}
}

func TestDefaultSpecs(t *testing.T) {
	specs := DefaultSpecs()
	if len(specs) != 2 || specs[0].Kind != KindCSV || specs[1].Kind != KindJSON {
		t.Errorf("DefaultSpecs() = %v, want csv then json", specs)
	}
}

func TestLocationFetcher(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.csv"), []byte("x,y\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f := &LocationFetcher{Dir: dir}

	data, err := f.Fetch(context.Background(), "a.csv")
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if string(data) != "x,y\n1,2\n" {
		t.Errorf("Fetch() = %q", data)
	}

	if _, err := f.Fetch(context.Background(), "missing.csv"); err == nil {
		t.Error("Fetch(missing) expected error")
	}

	abs := filepath.Join(dir, "a.csv")
	if got := f.Path(abs); got != abs {
		t.Errorf("Path(%q) = %q, want unchanged", abs, got)
	}
}

func TestFetcherFunc(t *testing.T) {
	src := &Tabular{Location: "mem", Fetch: FetcherFunc(func(context.Context, string) ([]byte, error) {
		return []byte("brand,model,diameter_mm,l2l_mm\nA,B,40,48\n"), nil
	})}
	rows, err := src.Rows(context.Background())
	if err != nil {
		t.Fatalf("Rows() error: %v", err)
	}
	if len(rows) != 1 || rows[0]["l2l_mm"] != "48" {
		t.Errorf("Rows() = %v", rows)
	}
}
