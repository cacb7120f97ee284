package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fnav/internal/ordering"
	"github.com/vvka-141/fnav/pkg/fnav"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// DisplayConfig mirrors fnav.DisplayOptions with the sort key kept as text.
type DisplayConfig struct {
	ShowHidden    bool   `yaml:"show_hidden"`
	ShowType      bool   `yaml:"show_type"`
	ShowExtension bool   `yaml:"show_extension"`
	ShowSize      bool   `yaml:"show_size"`
	ShowAccessed  bool   `yaml:"show_accessed"`
	ShowModified  bool   `yaml:"show_modified"`
	ShowCreated   bool   `yaml:"show_created"`
	SortBy        string `yaml:"sort_by"`
	Descending    bool   `yaml:"descending"`
	Pattern       string `yaml:"pattern,omitempty"`
}

type Config struct {
	StartPath string        `yaml:"start_path,omitempty"`
	EnvFiles  []string      `yaml:"env_files,omitempty"`
	Display   DisplayConfig `yaml:"display"`
}

const ConfigFileName = "fnav.yaml"

// Default returns the configuration used when no file is present.
func Default() *Config {
	opts := fnav.DefaultDisplayOptions()
	return &Config{
		StartPath: "~",
		Display: DisplayConfig{
			ShowHidden:    opts.ShowHidden,
			ShowType:      opts.ShowType,
			ShowExtension: opts.ShowExtension,
			ShowSize:      opts.ShowSize,
			ShowAccessed:  opts.ShowAccessed,
			ShowModified:  opts.ShowModified,
			ShowCreated:   opts.ShowCreated,
			SortBy:        opts.SortBy.String(),
			Descending:    opts.Descending,
		},
	}
}

// DefaultDir returns the per-user directory holding fnav.yaml.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, "fnav"), nil
}

// Load reads fnav.yaml from dir. Keys missing from the file keep their defaults.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", fnav.ErrInvalidConfig, configPath, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load with a missing file treated as the default configuration.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.Is(err, ErrConfigNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes cfg to dir/fnav.yaml, creating dir if needed.
func Save(dir string, cfg *Config) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0644)
}

// Marshal renders cfg as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// EnvFilePaths returns env_files with relative entries anchored at dir.
func (c *Config) EnvFilePaths(dir string) []string {
	paths := make([]string, 0, len(c.EnvFiles))
	for _, f := range c.EnvFiles {
		if !filepath.IsAbs(f) {
			f = filepath.Join(dir, f)
		}
		paths = append(paths, f)
	}
	return paths
}

// ToDisplayOptions validates the display section and converts it.
func (c *Config) ToDisplayOptions() (fnav.DisplayOptions, error) {
	d := c.Display
	key, err := fnav.ParseSortKey(d.SortBy)
	if err != nil {
		return fnav.DisplayOptions{}, err
	}
	if err := ordering.ValidatePattern(d.Pattern); err != nil {
		return fnav.DisplayOptions{}, err
	}
	return fnav.DisplayOptions{
		ShowHidden:    d.ShowHidden,
		ShowType:      d.ShowType,
		ShowExtension: d.ShowExtension,
		ShowSize:      d.ShowSize,
		ShowAccessed:  d.ShowAccessed,
		ShowModified:  d.ShowModified,
		ShowCreated:   d.ShowCreated,
		SortBy:        key,
		Descending:    d.Descending,
		Pattern:       d.Pattern,
	}, nil
}
