package bento

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config holds engine-wide defaults that hosts can tune without
// recompiling, typically from a bento.toml next to the application.
type Config struct {
	Scrollbar ScrollbarConfig `toml:"scrollbar"`
	Debug     DebugConfig     `toml:"debug"`
}

// ScrollbarConfig sets the metrics of the scrollbar geometry the Walker
// reports to the host.
type ScrollbarConfig struct {
	// Thickness of the bar strip, in pixels.
	Thickness float32 `toml:"thickness"`
	// MinThumb is the minimum thumb length, so the thumb stays grabbable
	// for very long content.
	MinThumb float32 `toml:"min_thumb"`
}

// DebugConfig toggles development logging.
type DebugConfig struct {
	// Layout enables verbose per-pass layout logging.
	Layout bool `toml:"layout"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scrollbar: ScrollbarConfig{
			Thickness: 8,
			MinThumb:  24,
		},
	}
}

// LoadConfig reads a TOML config file over the defaults, so a partial file
// only overrides the keys it names.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}
