package platform

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/ytget/url-prompt/internal/validate"
)

// MaxClipboardURLLength bounds what we are willing to treat as a URL
const MaxClipboardURLLength = 2048

var (
	// ErrClipboardRead indicates an error reading from the clipboard
	ErrClipboardRead = errors.New("failed to read from clipboard")
	// ErrNoClipboardURL indicates the clipboard content is not a valid URL
	ErrNoClipboardURL = errors.New("clipboard does not contain a valid URL")
)

// clipboard access is swapped out in tests
var readClipboard = clipboard.ReadAll

// ExtractURL returns text trimmed if it is a single valid URL, or "".
func ExtractURL(text string) string {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > MaxClipboardURLLength || strings.ContainsAny(text, "\n\r") {
		return ""
	}
	if !validate.URL(text) {
		return ""
	}
	return text
}

// ReadClipboardURL reads the clipboard and returns its content when it holds a
// valid URL.
func ReadClipboardURL() (string, error) {
	text, err := readClipboard()
	if err != nil {
		return "", ErrClipboardRead
	}

	url := ExtractURL(text)
	if url == "" {
		return "", ErrNoClipboardURL
	}
	return url, nil
}
