package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir     string `json:"base_dir"`
	ScenesDir   string `json:"scenes_dir"`
	TexturesDir string `json:"textures_dir"`
	OutputDir   string `json:"output_dir"`

	// Render settings
	Format      string  `json:"format"`
	RenderSize  int     `json:"render_size"`
	Supersample int     `json:"supersample"`
	FillRatio   float64 `json:"fill_ratio"`
	Background  string  `json:"background"`
	Workers     int     `json:"workers"`
}

// Output formats.
const (
	FormatWebP = "webp"
	FormatTGA  = "tga"
)

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.ScenesDir != "" {
		c.ScenesDir = flags.ScenesDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Relative paths resolve against the base dir
	c.ScenesDir = c.under(c.ScenesDir, "scenes")
	c.TexturesDir = c.under(c.TexturesDir, "textures")
	c.OutputDir = c.under(c.OutputDir, "renders")

	// Defaults for render settings
	if c.Format == "" {
		c.Format = FormatWebP
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

func (c *Config) under(path, def string) string {
	if path == "" {
		path = def
	}
	if c.BaseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.BaseDir, path)
}

// Validate reports settings that Resolve cannot repair.
func (c *Config) Validate() error {
	if c.Format != FormatWebP && c.Format != FormatTGA {
		return fmt.Errorf("config: unknown format %q (want %s or %s)", c.Format, FormatWebP, FormatTGA)
	}
	if c.FillRatio < 0 || c.FillRatio > 1 {
		return fmt.Errorf("config: fill_ratio %v outside [0, 1]", c.FillRatio)
	}
	return nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	ScenesDir   string
	OutputDir   string
	Format      string
	Size        int
	Supersample int
	Workers     int
}
