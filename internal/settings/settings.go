// Package settings manages the control window's configuration through Fyne
// preferences.
package settings

import (
	"time"

	"fyne.io/fyne/v2"
)

// ThemeChoice selects the cassette color scheme.
type ThemeChoice string

const (
	ThemeAuto    ThemeChoice = "auto"
	ThemeDefault ThemeChoice = "default"
	ThemeRock    ThemeChoice = "rock"
	ThemeEDM     ThemeChoice = "edm"
	ThemeChill   ThemeChoice = "chill"
	ThemeJazz    ThemeChoice = "jazz"
)

// Settings keys for Fyne preferences
const (
	KeyBackendURL   = "backend_url"
	KeyPollInterval = "poll_interval_seconds"
	KeyLaunchDaemon = "launch_daemon"
	KeyTheme        = "theme_choice"
	KeyLanguage     = "app_language"
)

// Default values
const (
	DefaultBackendURL   = "http://127.0.0.1:8000"
	DefaultPollInterval = 2
	DefaultLaunchDaemon = true
	DefaultTheme        = ThemeAuto
	DefaultLanguage     = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBackendURL returns the proxy base URL
func (s *Settings) GetBackendURL() string {
	url := s.app.Preferences().String(KeyBackendURL)
	if url == "" {
		s.SetBackendURL(DefaultBackendURL)
		return DefaultBackendURL
	}
	return url
}

// SetBackendURL sets the proxy base URL
func (s *Settings) SetBackendURL(url string) {
	if url == "" {
		url = DefaultBackendURL
	}
	s.app.Preferences().SetString(KeyBackendURL, url)
}

// GetPollInterval returns how often the window refreshes playback state
func (s *Settings) GetPollInterval() time.Duration {
	seconds := s.app.Preferences().Int(KeyPollInterval)
	if seconds <= 0 {
		s.SetPollIntervalSeconds(DefaultPollInterval)
		return DefaultPollInterval * time.Second
	}
	return time.Duration(seconds) * time.Second
}

// SetPollIntervalSeconds sets the refresh interval in seconds
func (s *Settings) SetPollIntervalSeconds(seconds int) {
	if seconds < 1 {
		seconds = 1
	}
	if seconds > 30 {
		seconds = 30
	}
	s.app.Preferences().SetInt(KeyPollInterval, seconds)
}

// GetLaunchDaemon returns whether the window starts its own tapedeckd
func (s *Settings) GetLaunchDaemon() bool {
	return s.app.Preferences().BoolWithFallback(KeyLaunchDaemon, DefaultLaunchDaemon)
}

// SetLaunchDaemon sets whether the window starts its own tapedeckd
func (s *Settings) SetLaunchDaemon(launch bool) {
	s.app.Preferences().SetBool(KeyLaunchDaemon, launch)
}

// GetTheme returns the configured theme choice
func (s *Settings) GetTheme() ThemeChoice {
	choice := s.app.Preferences().String(KeyTheme)
	if choice == "" {
		s.SetTheme(DefaultTheme)
		return DefaultTheme
	}
	return ThemeChoice(choice)
}

// SetTheme sets the theme choice
func (s *Settings) SetTheme(choice ThemeChoice) {
	s.app.Preferences().SetString(KeyTheme, string(choice))
}

// GetThemeOptions returns available theme choices. "auto" follows the
// playing track's genre keywords.
func (s *Settings) GetThemeOptions() []ThemeChoice {
	return []ThemeChoice{ThemeAuto, ThemeDefault, ThemeRock, ThemeEDM, ThemeChill, ThemeJazz}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}
