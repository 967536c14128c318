package config

import (
	"github.com/milk9111/platformer/player"
)

// Config is the full game configuration: window presentation, movement
// tuning, and camera behavior.
type Config struct {
	Window WindowConfig  `yaml:"window"`
	Tuning player.Tuning `yaml:"tuning"`
	Camera CameraConfig  `yaml:"camera"`
}

type WindowConfig struct {
	Title string  `yaml:"title"`
	Zoom  float64 `yaml:"zoom"`
}

type CameraConfig struct {
	// Smooth is the per-frame follow factor in (0, 1].
	Smooth float32 `yaml:"smooth"`
}

// Default returns the hardcoded configuration used when no file (embedded or
// on disk) can be parsed.
func Default() Config {
	return Config{
		Window: WindowConfig{Title: "platformer", Zoom: 3},
		Tuning: player.DefaultTuning(),
		Camera: CameraConfig{Smooth: 0.15},
	}
}
