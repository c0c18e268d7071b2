// Package config loads the process-wide settings the field library depends
// on. Settings are loaded once and handed to declarations explicitly rather
// than read from a global.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds the externally supplied configuration.
type Settings struct {
	// MediaURL is the base URL prefixed to file path values in schema media
	// links.
	MediaURL string `env:"LANTHANUM_MEDIA_URL" envDefault:"/media/"`
}

// Load reads Settings from the environment.
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
