// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EngineConfig holds engine-tuning parameters that are not scene content:
// how the renderer is run, rather than what it renders. Scene-file parsing
// remains out of scope; DecodeEngineConfig only ever decodes a byte slice
// handed to it by the caller, never a file path or a socket.
type EngineConfig struct {
	// TileSize is the edge length, in pixels, of the square tiles handed out
	// by the BlockQueue to render workers.
	TileSize int `yaml:"tile_size"`
	// Workers overrides the number of render goroutines. Zero means use
	// runtime.NumCPU().
	Workers int `yaml:"workers"`
	// SamplesPerPixel overrides Scene.RenderOptions.RaysPerPixel when
	// positive, letting an operator trade quality for render time without
	// editing the scene file.
	SamplesPerPixel int `yaml:"samples_per_pixel"`
	// Filter selects the reconstruction kernel: "box", "tent", "gaussian",
	// or "mitchell" (default).
	Filter string `yaml:"filter"`
	// Seed overrides Scene.RenderOptions.Seed when non-zero.
	Seed int64 `yaml:"seed"`
}

// DefaultEngineConfig returns the configuration renderScene falls back to
// when no EngineConfig is supplied.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		TileSize: 16,
		Filter:   "mitchell",
	}
}

// Validate reports whether the config is usable.
func (c EngineConfig) Validate() error {
	if c.TileSize < 0 {
		return fmt.Errorf("EngineConfig.TileSize must be non-negative, got %d", c.TileSize)
	}
	if c.Workers < 0 {
		return fmt.Errorf("EngineConfig.Workers must be non-negative, got %d", c.Workers)
	}
	switch c.Filter {
	case "", "box", "tent", "gaussian", "mitchell":
	default:
		return fmt.Errorf("EngineConfig.Filter must be one of box, tent, gaussian, mitchell, got %q", c.Filter)
	}
	return nil
}

// reconFilter resolves the configured filter name to a ReconFilter, falling
// back to Mitchell-Netravali (the teacher's default reconstruction kernel)
// when Filter is unset.
func (c EngineConfig) reconFilter() ReconFilter {
	switch c.Filter {
	case "box":
		return BoxFilter()
	case "tent":
		return TentFilter()
	case "gaussian":
		return GaussianFilter()
	default:
		return MitchellNetravaliFilter()
	}
}

// DecodeEngineConfig parses an EngineConfig from YAML, filling any unset
// field from DefaultEngineConfig.
func DecodeEngineConfig(data []byte) (EngineConfig, error) {
	cfg := DefaultEngineConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, errors.Wrap(err, "decode EngineConfig")
	}
	if err := cfg.Validate(); err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}
