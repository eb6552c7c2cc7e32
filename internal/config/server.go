package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ServerSettings holds the HTTP server configuration, sourced from the
// environment.
type ServerSettings struct {
	Addr           string   `env:"NESTEGG_ADDR" envDefault:":8080"`
	Environment    string   `env:"NESTEGG_ENV" envDefault:"development"`
	AllowedOrigins []string `env:"NESTEGG_CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// LoadServerSettings parses ServerSettings from the process environment.
func LoadServerSettings() (ServerSettings, error) {
	settings, err := env.ParseAs[ServerSettings]()
	if err != nil {
		return ServerSettings{}, fmt.Errorf("failed to parse server settings: %w", err)
	}
	return settings, nil
}
