package config

import (
	"os"

	"fyne.io/fyne/v2"
	"github.com/joho/godotenv"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL = "server_url"
	KeyLanguage  = "app_language"
)

// Environment variable overriding the configured server URL.
const EnvServerURL = "BOOKDESK_SERVER_URL"

// Default values
const (
	DefaultServerURL = "http://localhost:8000"
	DefaultLanguage  = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// LoadEnv loads a .env file from the working directory when present. Missing
// files are ignored; variables already set in the environment win.
func LoadEnv() {
	_ = godotenv.Load()
}

// GetServerURL returns the catalog backend base URL. The BOOKDESK_SERVER_URL
// environment variable takes precedence over the stored preference.
func (s *Settings) GetServerURL() string {
	if env := os.Getenv(EnvServerURL); env != "" {
		return env
	}
	url := s.app.Preferences().String(KeyServerURL)
	if url == "" {
		s.SetServerURL(DefaultServerURL)
		return DefaultServerURL
	}
	return url
}

// SetServerURL sets the catalog backend base URL
func (s *Settings) SetServerURL(url string) {
	s.app.Preferences().SetString(KeyServerURL, url)
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
