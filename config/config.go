package config

import (
	"io"

	"github.com/ccachego/ccache/ccerrors"
	"gopkg.in/yaml.v3"
)

// Config holds the CORE-relevant settings a driver supplies to
// materializer, store, and relpath.
type Config struct {
	// BaseDir is the build root used to relativize absolute paths.
	// Empty disables relativization.
	BaseDir string `yaml:"base_dir"`
	// CacheDir is the root of the content-addressed store.
	CacheDir string `yaml:"cache_dir"`
	// Levels is the fan-out depth passed to store.PathFor; must be in
	// [store.MinLevels, store.MaxLevels].
	Levels int `yaml:"levels"`
	// FileClone enables the materializer's reflink-clone attempt.
	FileClone bool `yaml:"file_clone"`
	// HardLink enables the materializer's hard-link attempt.
	HardLink bool `yaml:"hard_link"`
}

// overlay mirrors Config but with pointer fields, so a YAML document
// that omits a key leaves the corresponding Config field untouched
// rather than zeroing it.
type overlay struct {
	BaseDir   *string `yaml:"base_dir"`
	CacheDir  *string `yaml:"cache_dir"`
	Levels    *int    `yaml:"levels"`
	FileClone *bool   `yaml:"file_clone"`
	HardLink  *bool   `yaml:"hard_link"`
}

func (o overlay) applyTo(c *Config) {
	if o.BaseDir != nil {
		c.BaseDir = *o.BaseDir
	}
	if o.CacheDir != nil {
		c.CacheDir = *o.CacheDir
	}
	if o.Levels != nil {
		c.Levels = *o.Levels
	}
	if o.FileClone != nil {
		c.FileClone = *o.FileClone
	}
	if o.HardLink != nil {
		c.HardLink = *o.HardLink
	}
}

// Load builds a Config starting from WithDefaults (or the package
// default of Levels=2 if that option is not given), then overlays
// whatever YAML document WithReader supplies. A key absent from the
// YAML document leaves the default untouched.
func Load(opts ...Option) (Config, error) {
	o := &loadOptions{defaults: Config{Levels: 2}}
	for _, opt := range opts {
		opt(o)
	}

	cfg := o.defaults
	if o.reader != nil {
		var ov overlay
		dec := yaml.NewDecoder(o.reader)
		if err := dec.Decode(&ov); err != nil && err != io.EOF {
			return Config{}, ccerrors.NewParseError("config yaml", err)
		}
		ov.applyTo(&cfg)
	}

	if cfg.Levels < 1 || cfg.Levels > 8 {
		return Config{}, ccerrors.NewInvalidArgument("config: levels %d out of range [1,8]", cfg.Levels)
	}
	return cfg, nil
}
