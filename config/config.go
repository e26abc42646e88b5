package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds runtime configuration for selection and app behavior.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Selection parameters
	MinDragPx   int `json:"min_drag_px"`  // shortest accepted gesture span per axis
	JPEGQuality int `json:"jpeg_quality"` // region artifact encode quality, 1-100

	// Display parameters
	MaxViewW         int `json:"max_view_w"` // page display box bounds
	MaxViewH         int `json:"max_view_h"`
	ResizeDebounceMs int `json:"resize_debounce_ms"`

	// Window geometry
	WindowW int `json:"window_w"`
	WindowH int `json:"window_h"`

	// Commit sink
	OutputDir string `json:"output_dir"`

	// Decoded page cache entries
	PageCacheSize int `json:"page_cache_size"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:            false,
		MinDragPx:        10,
		JPEGQuality:      92,
		MaxViewW:         760,
		MaxViewH:         900,
		ResizeDebounceMs: 80,
		WindowW:          820,
		WindowH:          1000,
		OutputDir:        "regions",
		PageCacheSize:    8,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.MinDragPx <= 0 {
		c.MinDragPx = 10
	}
	if c.JPEGQuality < 90 || c.JPEGQuality > 100 {
		// Artifacts are re-read later; keep the quality floor high.
		c.JPEGQuality = 92
	}
	if c.MaxViewW < 100 {
		c.MaxViewW = 760
	}
	if c.MaxViewH < 100 {
		c.MaxViewH = 900
	}
	if c.ResizeDebounceMs < 0 {
		c.ResizeDebounceMs = 80
	}
	if c.WindowW < 200 {
		c.WindowW = 820
	}
	if c.WindowH < 200 {
		c.WindowH = 1000
	}
	if c.OutputDir == "" {
		c.OutputDir = "regions"
	}
	if c.PageCacheSize <= 0 {
		c.PageCacheSize = 8
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the
// file does not exist it returns DefaultConfig(). On JSON error it returns
// defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format, creating
// parent directories as needed.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
