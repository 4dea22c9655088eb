// Package config loads the tapedeckd daemon configuration from a YAML file
// and environment variables. Provider credentials follow the conventional
// SPOTIFY_* environment names; everything else has a working default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

const (
	// DefaultListenAddr is the loopback address the proxy serves on.
	DefaultListenAddr = "127.0.0.1:8000"

	configName = "tapedeckd"
	envPrefix  = "TAPEDECKD"
)

// ErrMissingCredentials is returned when the provider credentials are absent.
var ErrMissingCredentials = errors.New("missing Spotify credentials (SPOTIFY_CLIENT_ID, SPOTIFY_CLIENT_SECRET, SPOTIFY_REDIRECT_URI)")

// Config holds all daemon configuration.
type Config struct {
	Listen  string        `mapstructure:"listen"`
	Spotify SpotifyConfig `mapstructure:"spotify"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SpotifyConfig carries the provider credentials and token cache location.
type SpotifyConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURI  string `mapstructure:"redirect_uri"`
	TokenPath    string `mapstructure:"token_path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen: DefaultListenAddr,
		Spotify: SpotifyConfig{
			TokenPath: defaultTokenPath(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// defaultConfigDir returns the config directory for the current OS.
func defaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "tapedeck")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "tapedeck")
	}
}

// defaultTokenPath returns the default OAuth token cache file path.
func defaultTokenPath() string {
	return filepath.Join(defaultConfigDir(), "token.json")
}

// Load reads configuration from tapedeckd.yaml and the environment.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(defaultConfigDir())
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// Provider credentials keep their conventional names.
	_ = v.BindEnv("spotify.client_id", "SPOTIFY_CLIENT_ID")
	_ = v.BindEnv("spotify.client_secret", "SPOTIFY_CLIENT_SECRET")
	_ = v.BindEnv("spotify.redirect_uri", "SPOTIFY_REDIRECT_URI")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine; env and defaults cover everything.
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the daemon can actually start with this config.
func (c *Config) Validate() error {
	if c.Spotify.ClientID == "" || c.Spotify.ClientSecret == "" || c.Spotify.RedirectURI == "" {
		return ErrMissingCredentials
	}
	if c.Listen == "" {
		c.Listen = DefaultListenAddr
	}
	if c.Spotify.TokenPath == "" {
		c.Spotify.TokenPath = defaultTokenPath()
	}
	return nil
}

// EnsureTokenDir creates the directory holding the token cache file.
func (c *Config) EnsureTokenDir() error {
	return os.MkdirAll(filepath.Dir(c.Spotify.TokenPath), 0o755)
}
