// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config stores all configuration of the backend, read by viper from
// environment variables.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Gemini GeminiConfig `mapstructure:"gemini"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// Load builds a Config from the environment: PORT, GOOGLE_GEMINI_API_KEY
// and GEMINI_MODEL, with defaults for everything but the API key. The
// key may legitimately stay empty here; the server does not call the
// provider, only the chat client requires it.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8000")
	v.SetDefault("gemini.model", "gemini-pro")

	bindings := map[string]string{
		"server.port":    "PORT",
		"gemini.api_key": "GOOGLE_GEMINI_API_KEY",
		"gemini.model":   "GEMINI_MODEL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
