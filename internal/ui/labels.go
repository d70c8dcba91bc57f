package ui

import "github.com/ytget/url-prompt/internal/config"

// Text keys for window labels
const (
	KeyWindowTitle   = "window_title"
	KeyURLLabel      = "url_label"
	KeyFilenameLabel = "filename_label"
	KeyClearButton   = "clear_button"
	KeyConfirmButton = "confirm_button"
)

// DefaultTexts are used for every label the configuration leaves empty
var DefaultTexts = map[string]string{
	KeyWindowTitle:   "Downloader GUI",
	KeyURLLabel:      "Paste URL here:",
	KeyFilenameLabel: "Enter filename:",
	KeyClearButton:   "Clear all",
	KeyConfirmButton: "OK",
}

// Labels resolves user-visible strings
type Labels struct {
	texts map[string]string
}

// NewLabels creates a label table from configured overrides
func NewLabels(overrides config.Labels) *Labels {
	l := &Labels{texts: make(map[string]string, len(DefaultTexts))}
	for key, text := range DefaultTexts {
		l.texts[key] = text
	}

	l.override(KeyWindowTitle, overrides.WindowTitle)
	l.override(KeyURLLabel, overrides.URLLabel)
	l.override(KeyFilenameLabel, overrides.FilenameLabel)
	l.override(KeyClearButton, overrides.ClearButton)
	l.override(KeyConfirmButton, overrides.ConfirmButton)
	return l
}

// GetText returns the text for key, or the key itself when unknown
func (l *Labels) GetText(key string) string {
	if text, found := l.texts[key]; found {
		return text
	}
	return key
}

func (l *Labels) override(key, text string) {
	if text != "" {
		l.texts[key] = text
	}
}
