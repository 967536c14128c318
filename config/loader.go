package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultYAML []byte

// Load reads the game configuration.
// Search order: customPath -> ./configs/game.yaml -> embedded default.
// Only an explicit customPath failing is an error; everything else falls
// through to the next source.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("read config %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if data, err := os.ReadFile("configs/game.yaml"); err == nil {
		if cfg, err := parse(data, "configs/game.yaml"); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(defaultYAML, "embedded defaults"); err == nil {
		return cfg, nil
	}
	return Default(), nil
}

func parse(data []byte, source string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", source, err)
	}
	return cfg, nil
}
