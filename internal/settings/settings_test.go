package settings

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestBackendURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	url := settings.GetBackendURL()
	if url != DefaultBackendURL {
		t.Errorf("Expected default backend URL %s, got %s", DefaultBackendURL, url)
	}

	// Test setting custom value
	custom := "http://127.0.0.1:9111"
	settings.SetBackendURL(custom)
	if got := settings.GetBackendURL(); got != custom {
		t.Errorf("Expected backend URL %s, got %s", custom, got)
	}

	// Test empty URL defaults back
	settings.SetBackendURL("")
	if got := settings.GetBackendURL(); got != DefaultBackendURL {
		t.Errorf("Empty URL should default to %s, got %s", DefaultBackendURL, got)
	}
}

func TestPollInterval(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if interval := settings.GetPollInterval(); interval != DefaultPollInterval*time.Second {
		t.Errorf("Expected default interval %ds, got %v", DefaultPollInterval, interval)
	}

	// Test setting custom value
	settings.SetPollIntervalSeconds(5)
	if interval := settings.GetPollInterval(); interval != 5*time.Second {
		t.Errorf("Expected interval 5s, got %v", interval)
	}

	// Test boundary values
	settings.SetPollIntervalSeconds(0) // Should be clamped to 1
	if interval := settings.GetPollInterval(); interval != time.Second {
		t.Errorf("Interval should be clamped to minimum 1s, got %v", interval)
	}

	settings.SetPollIntervalSeconds(120) // Should be clamped to 30
	if interval := settings.GetPollInterval(); interval != 30*time.Second {
		t.Errorf("Interval should be clamped to maximum 30s, got %v", interval)
	}
}

func TestLaunchDaemon(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetLaunchDaemon() {
		t.Error("Expected daemon launch enabled by default")
	}

	settings.SetLaunchDaemon(false)
	if settings.GetLaunchDaemon() {
		t.Error("Expected daemon launch disabled after set")
	}
}

func TestTheme(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if theme := settings.GetTheme(); theme != DefaultTheme {
		t.Errorf("Expected default theme %s, got %s", DefaultTheme, theme)
	}

	// Test setting custom value
	settings.SetTheme(ThemeJazz)
	if theme := settings.GetTheme(); theme != ThemeJazz {
		t.Errorf("Expected theme %s, got %s", ThemeJazz, theme)
	}
}

func TestGetThemeOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetThemeOptions()
	expectedOptions := []ThemeChoice{ThemeAuto, ThemeDefault, ThemeRock, ThemeEDM, ThemeChill, ThemeJazz}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d theme options, got %d", len(expectedOptions), len(options))
	}
	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Theme option %d: expected %s, got %s", i, expected, options[i])
		}
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language 'ru', got %s", lang)
	}
}
