package ui

import "testing"

func TestLocalizationDefaultsToEnglish(t *testing.T) {
	l := NewLocalization()
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyBooks); got != "Books" {
		t.Errorf("Expected Books, got %q", got)
	}
}

func TestLocalizationSwitchesLanguage(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")
	if got := l.GetText(KeyBooks); got != "Книги" {
		t.Errorf("Expected Russian translation, got %q", got)
	}
}

func TestLocalizationIgnoresUnknownLanguage(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected unknown language to be ignored, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalizationSystemFallsBackToEnglish(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected system to resolve to en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalizationUnknownKeyReturnsKey(t *testing.T) {
	l := NewLocalization()
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key itself as fallback, got %q", got)
	}
}

func TestAllKeysHaveRussianTranslations(t *testing.T) {
	l := NewLocalization()
	for key := range l.texts["en"] {
		if _, ok := l.texts["ru"][key]; !ok {
			t.Errorf("Missing Russian translation for %q", key)
		}
	}
}
