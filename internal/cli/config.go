package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	werrors "github.com/matzehuels/wristscale/pkg/errors"
	"github.com/matzehuels/wristscale/pkg/prefs"
	"github.com/matzehuels/wristscale/pkg/source"
)

// defaultAddr is the listen address of serve when none is configured.
const defaultAddr = "127.0.0.1:8080"

// Config is the optional config.toml. Zero values mean "use the default".
type Config struct {
	ViewportMm float64 `toml:"viewport_mm"`
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Offline    bool    `toml:"offline"`

	// Sources are tried in order. Empty means [source.DefaultSpecs].
	Sources []source.Spec `toml:"sources"`

	// DataDir resolves relative source locations and image references.
	// Empty means the working directory.
	DataDir string `toml:"data_dir"`

	Prefs  prefs.Config `toml:"prefs"`
	Server ServerConfig `toml:"server"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr  string `toml:"addr"`
	Watch bool   `toml:"watch"`
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() Config {
	return Config{
		Sources: source.DefaultSpecs(),
		Prefs:   prefs.Config{Backend: prefs.BackendFile},
		Server:  ServerConfig{Addr: defaultAddr},
	}
}

// loadConfig reads the config file at path on top of the defaults. A missing
// file is not an error unless the path was given explicitly.
func loadConfig(path string, explicit bool) (Config, []string, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return defaultConfig(), nil, nil
		}
		return Config{}, nil, werrors.Wrap(werrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}

	if len(cfg.Sources) == 0 {
		cfg.Sources = source.DefaultSpecs()
	}
	for i, spec := range cfg.Sources {
		if err := spec.Validate(); err != nil {
			return Config{}, unknown, fmt.Errorf("config %s: sources[%d]: %w", path, i, err)
		}
	}
	if cfg.Prefs.Backend == "" {
		cfg.Prefs.Backend = prefs.BackendFile
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaultAddr
	}
	return cfg, unknown, nil
}

// writeConfig encodes cfg as TOML.
func writeConfig(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// configDir returns the config directory using XDG standard (~/.config/wristscale/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// defaultConfigPath returns the path of config.toml, or "" when no home
// directory can be determined.
func defaultConfigPath() string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}
