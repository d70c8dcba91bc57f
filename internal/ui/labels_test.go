package ui

import (
	"testing"

	"github.com/ytget/url-prompt/internal/config"
)

func TestLabels_Defaults(t *testing.T) {
	l := NewLabels(config.Labels{})

	for key, expected := range DefaultTexts {
		if got := l.GetText(key); got != expected {
			t.Errorf("GetText(%q) = %q, expected %q", key, got, expected)
		}
	}
}

func TestLabels_Overrides(t *testing.T) {
	l := NewLabels(config.Labels{URLLabel: "Link:", ClearButton: "Reset"})

	if got := l.GetText(KeyURLLabel); got != "Link:" {
		t.Errorf("expected override for url label, got %q", got)
	}
	if got := l.GetText(KeyClearButton); got != "Reset" {
		t.Errorf("expected override for clear button, got %q", got)
	}
	if got := l.GetText(KeyFilenameLabel); got != "Enter filename:" {
		t.Errorf("expected default filename label, got %q", got)
	}
}

func TestLabels_UnknownKey(t *testing.T) {
	l := NewLabels(config.Labels{})

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("expected key fallback, got %q", got)
	}
}
