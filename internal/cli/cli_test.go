package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/wristscale/pkg/catalog"
	"github.com/matzehuels/wristscale/pkg/errors"
	"github.com/matzehuels/wristscale/pkg/pipeline"
	"github.com/matzehuels/wristscale/pkg/prefs"
	"github.com/matzehuels/wristscale/pkg/source"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "png", []string{"png"}},
		{"multiple formats", "svg,png,json", []string{"svg", "png", "json"}},
		{"spaces and case", " SVG , png ,", []string{"svg", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		formats []string
		want    map[string]string
	}{
		{"default single", "", []string{"svg"}, map[string]string{"svg": "comparison.svg"}},
		{"explicit file", "out/cmp.svg", []string{"svg"}, map[string]string{"svg": "out/cmp.svg"}},
		{"no extension", "cmp", []string{"png"}, map[string]string{"png": "cmp.png"}},
		{"stdout", "-", []string{"svg"}, map[string]string{"svg": "-"}},
		{"base path", "cmp.svg", []string{"svg", "png"}, map[string]string{"svg": "cmp.svg", "png": "cmp.png"}},
		{"default base", "", []string{"svg", "json"}, map[string]string{"svg": "comparison.svg", "json": "comparison.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.output, tt.formats)
			if len(got) != len(tt.want) {
				t.Fatalf("outputPaths() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("outputPaths()[%s] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, _, err := loadConfig(path, false)
	if err != nil {
		t.Fatalf("loadConfig(implicit) error: %v", err)
	}
	if len(cfg.Sources) != 2 || cfg.Sources[0].Kind != source.KindCSV {
		t.Errorf("Sources = %v, want default csv then json", cfg.Sources)
	}
	if cfg.Server.Addr != defaultAddr {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, defaultAddr)
	}

	if _, _, err := loadConfig(path, true); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("loadConfig(explicit) = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
viewport_mm = 150
width = 1024
offline = true
colour = "blue"

[[sources]]
kind = "yaml"
location = "https://example.com/watches.yaml"

[[sources]]
kind = "mongo"
uri = "mongodb://localhost:27017"
database = "watches"
collection = "catalog"

[prefs]
backend = "redis"
redis_addr = "localhost:6379"

[server]
watch = true
`)

	cfg, unknown, err := loadConfig(path, true)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.ViewportMm != 150 || cfg.Width != 1024 || !cfg.Offline {
		t.Errorf("cfg = %+v, want viewport 150, width 1024, offline", cfg)
	}
	if len(cfg.Sources) != 2 || cfg.Sources[1].Kind != source.KindMongo {
		t.Errorf("Sources = %v, want yaml then mongo", cfg.Sources)
	}
	if cfg.Prefs.Backend != prefs.BackendRedis {
		t.Errorf("Prefs.Backend = %q, want redis", cfg.Prefs.Backend)
	}
	if !cfg.Server.Watch || cfg.Server.Addr != defaultAddr {
		t.Errorf("Server = %+v, want watch on default addr", cfg.Server)
	}
	if len(unknown) != 1 || unknown[0] != "colour" {
		t.Errorf("unknown keys = %v, want [colour]", unknown)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "width = ["},
		{"unknown kind", "[[sources]]\nkind = \"xml\"\nlocation = \"a.xml\"\n"},
		{"missing location", "[[sources]]\nkind = \"csv\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			writeFile(t, path, tt.content)
			if _, _, err := loadConfig(path, true); !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("loadConfig() = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := configDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", appName); dir != want {
		t.Errorf("configDir() = %q, want %q", dir, want)
	}
}

// =============================================================================
// Command tests
// =============================================================================

// runCLI executes the root command with args against a temporary config
// that keeps preferences inside dir.
func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	prevStatus := statusOut
	statusOut = io.Discard
	t.Cleanup(func() { statusOut = prevStatus })

	cfgPath := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		writeFile(t, cfgPath, "data_dir = "+quote(dir)+"\n\n[prefs]\nbackend = \"file\"\ndir = "+quote(filepath.Join(dir, "prefs"))+"\n")
	}

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCompareCommand(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "cmp")

	_, err := runCLI(t, dir, "--offline", "compare", "bb54", "speedy-pro",
		"--mode", "touching", "-f", "svg,png,json", "-o", base)
	if err != nil {
		t.Fatalf("compare error: %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(svg, []byte("<svg")) {
		t.Errorf("svg = %.40q", svg)
	}
	png, err := os.ReadFile(base + ".png")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("png output lacks PNG signature")
	}

	data, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Geometry struct {
			Mode string `json:"mode"`
			Left struct {
				ItemID string `json:"item_id"`
			} `json:"left"`
		} `json:"geometry"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Geometry.Mode != "touching" || doc.Geometry.Left.ItemID != "bb54" {
		t.Errorf("geometry = %+v, want touching with bb54 on the left", doc.Geometry)
	}
}

func TestCompareStdout(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, dir, "--offline", "compare", "--swap", "-o", "-")
	if err != nil {
		t.Fatalf("compare error: %v", err)
	}
	if !strings.HasPrefix(out, "<svg") {
		t.Errorf("stdout = %.40q, want svg", out)
	}
}

func TestCompareInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"mode", []string{"--mode", "stacked"}, errors.ErrCodeInvalidMode},
		{"format", []string{"-f", "pdf"}, errors.ErrCodeInvalidFormat},
		{"theme", []string{"--theme", "sepia"}, errors.ErrCodeInvalidTheme},
		{"viewport", []string{"--viewport=-1"}, errors.ErrCodeInvalidCanvas},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			args := append([]string{"--offline", "compare", "-o", filepath.Join(dir, "x")}, tt.args...)
			if _, err := runCLI(t, dir, args...); !errors.Is(err, tt.code) {
				t.Errorf("compare %v = %v, want %s", tt.args, err, tt.code)
			}
		})
	}
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "watches.csv"),
		"id,brand,model,diameter_mm,l2l_mm\nsinn-556,Sinn,556,38.5,46\n")

	out, err := runCLI(t, dir, "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	for _, want := range []string{"sinn-556", "38.5mm", "46mm", "1 watches"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestThemeCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "theme")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "dark" {
		t.Errorf("theme = %q, want dark", out)
	}

	if _, err := runCLI(t, dir, "theme", "toggle"); err != nil {
		t.Fatal(err)
	}
	out, _ = runCLI(t, dir, "theme")
	if strings.TrimSpace(out) != "light" {
		t.Errorf("theme after toggle = %q, want light", out)
	}

	if _, err := runCLI(t, dir, "theme", "set", "sepia"); !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("theme set sepia = %v, want INVALID_THEME", err)
	}
	if _, err := runCLI(t, dir, "theme", "set", "dark"); err != nil {
		t.Fatal(err)
	}
	out, _ = runCLI(t, dir, "theme")
	if strings.TrimSpace(out) != "dark" {
		t.Errorf("theme after set = %q, want dark", out)
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watches.json")
	if _, err := runCLI(t, dir, "--offline", "export", "-o", path); err != nil {
		t.Fatalf("export error: %v", err)
	}

	// The export is readable back as a json source.
	src, err := source.New(source.Spec{Kind: source.KindJSON, Location: path}, nil)
	if err != nil {
		t.Fatal(err)
	}
	res := source.NewResolver([]source.Source{src}, false, nil).Resolve(context.Background())
	if res.UsedFallback {
		t.Fatalf("exported file not readable: %+v", res.Attempts)
	}
	if res.Dataset.Len() != len(catalog.Fallback()) {
		t.Errorf("Len() = %d, want %d", res.Dataset.Len(), len(catalog.Fallback()))
	}
}

func TestConfigShow(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.toml"), "[prefs]\nbackend = \"memory\"\nredis_password = \"hunter2\"\n")

	out, err := runCLI(t, dir, "config", "show")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "hunter2") {
		t.Error("config show printed the redis password")
	}
	if !strings.Contains(out, `kind = "csv"`) {
		t.Errorf("config show missing default sources:\n%s", out)
	}
}

func TestLayoutDefaultsFromConfig(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.cfg.Width = 1024
	c.cfg.ViewportMm = 150

	opts := pipeline.Options{Width: 500}
	c.layoutDefaults(&opts)
	if opts.Width != 500 {
		t.Errorf("Width = %v, want flag value 500", opts.Width)
	}
	if opts.ViewportMm != 150 {
		t.Errorf("ViewportMm = %v, want config value 150", opts.ViewportMm)
	}
	if opts.Logger != c.Logger {
		t.Error("Logger not set from CLI")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
