package scene

import (
	"fmt"
	"math"
)

// Config is the render configuration surface spec §6 names: image
// dimensions, sample count, recursion bound, photon-pass targets, RNG
// seed, and driver-level knobs (worker count, sampler choice) that the
// abstract spec leaves to "no CLI is specified".
type Config struct {
	ImageWidth      int    `yaml:"image_width"`
	ImageHeight     int    `yaml:"image_height"`
	SamplesPerPixel int    `yaml:"samples_per_pixel"`
	MaxDepth        int    `yaml:"max_depth"`
	MaxPhotons      int    `yaml:"max_photons"`
	MaxEstimate     int    `yaml:"max_estimate"`
	Seed            int64  `yaml:"seed"`
	Workers         int    `yaml:"workers"`
	Sampler         string `yaml:"sampler"` // "independent" or "multi_jittered"
}

// DefaultConfig returns a Config with spec-reasonable defaults; callers
// overlay YAML or flag-sourced values on top.
func DefaultConfig() Config {
	return Config{
		ImageWidth:      400,
		ImageHeight:     400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		MaxPhotons:      100000,
		MaxEstimate:     50,
		Seed:            1,
		Workers:         1,
		Sampler:         "independent",
	}
}

// Validate enforces spec §7's configuration-error taxonomy: negative
// dimensions, and a non-square samples-per-pixel when the multi-jittered
// sampler is selected.
func (c Config) Validate() error {
	if c.ImageWidth <= 0 || c.ImageHeight <= 0 {
		return fmt.Errorf("scene: image dimensions must be positive, got %dx%d", c.ImageWidth, c.ImageHeight)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("scene: samples_per_pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("scene: max_depth must be non-negative, got %d", c.MaxDepth)
	}
	if c.MaxPhotons < 0 {
		return fmt.Errorf("scene: max_photons must be non-negative, got %d", c.MaxPhotons)
	}
	if c.MaxEstimate <= 0 {
		return fmt.Errorf("scene: max_estimate must be positive, got %d", c.MaxEstimate)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("scene: workers must be positive, got %d", c.Workers)
	}
	if c.Sampler == "multi_jittered" {
		n := int(math.Sqrt(float64(c.SamplesPerPixel)))
		if n*n != c.SamplesPerPixel {
			return fmt.Errorf("scene: samples_per_pixel must be a perfect square for the multi-jittered sampler, got %d", c.SamplesPerPixel)
		}
	}
	return nil
}
