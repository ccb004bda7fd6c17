package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultThreshold     = 500
	DefaultCache         = "unbounded"
	DefaultCacheSize     = 1 << 20
	DefaultFastPan       = 100
	DefaultFastZoom      = 10
	DefaultFastThreshold = 50
)

var (
	ErrUnknownPreset = errors.New("config: unknown preset")
	ErrInvalid       = errors.New("config: invalid value")
)

type Config struct {
	Threshold int         `yaml:"threshold"`
	Workers   int         `yaml:"workers"`
	View      View        `yaml:"view"`
	Cache     CacheConfig `yaml:"cache"`
	Keys      KeyConfig   `yaml:"keys"`
	StatusBar bool        `yaml:"status_bar"`
}

// View is a logical window. The shorter grid side spans both ranges, so a
// square window renders square regardless of terminal aspect.
type View struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

type CacheConfig struct {
	Kind string `yaml:"kind"`
	Size int    `yaml:"size"`
}

// KeyConfig holds the multipliers applied while alt is held.
type KeyConfig struct {
	FastPan       int `yaml:"fast_pan"`
	FastZoom      int `yaml:"fast_zoom"`
	FastThreshold int `yaml:"fast_threshold"`
}

// FullView fits the whole set.
var FullView = View{XMin: -2.0, XMax: 0.47, YMin: -1.12, YMax: 1.12}

func DefaultConfig() *Config {
	return &Config{
		Threshold: DefaultThreshold,
		View:      FullView,
		Cache: CacheConfig{
			Kind: DefaultCache,
			Size: DefaultCacheSize,
		},
		Keys: KeyConfig{
			FastPan:       DefaultFastPan,
			FastZoom:      DefaultFastZoom,
			FastThreshold: DefaultFastThreshold,
		},
		StatusBar: true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Threshold < 0 {
		return fmt.Errorf("%w: threshold %d is negative", ErrInvalid, c.Threshold)
	}
	if c.View.XMin >= c.View.XMax || c.View.YMin >= c.View.YMax {
		return fmt.Errorf("%w: empty view %+v", ErrInvalid, c.View)
	}
	if c.Keys.FastPan < 1 || c.Keys.FastZoom < 1 || c.Keys.FastThreshold < 1 {
		return fmt.Errorf("%w: key multipliers must be at least 1", ErrInvalid)
	}
	return nil
}

// ApplyPreset replaces the view with the named preset.
func (c *Config) ApplyPreset(name string) error {
	v, ok := GetPreset(name)
	if !ok {
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	c.View = v
	return nil
}
