package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestServerURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	url := settings.GetServerURL()
	if url != DefaultServerURL {
		t.Errorf("Expected default server URL %s, got %s", DefaultServerURL, url)
	}

	// Test setting custom value
	customURL := "http://books.example.com:9000"
	settings.SetServerURL(customURL)

	if got := settings.GetServerURL(); got != customURL {
		t.Errorf("Expected server URL %s, got %s", customURL, got)
	}
}

func TestServerURLEnvOverride(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetServerURL("http://stored.example.com")
	t.Setenv(EnvServerURL, "http://env.example.com")

	if got := settings.GetServerURL(); got != "http://env.example.com" {
		t.Errorf("Expected env override to win, got %s", got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected language ru, got %s", got)
	}
}

func TestLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	for _, code := range []string{"system", "en", "ru"} {
		if _, exists := options[code]; !exists {
			t.Errorf("Expected language option %s to be available", code)
		}
	}
}
