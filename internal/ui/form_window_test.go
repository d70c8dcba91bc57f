package ui

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/url-prompt/internal/config"
	"github.com/ytget/url-prompt/internal/filename"
	"github.com/ytget/url-prompt/internal/form"
)

type submission struct {
	url      string
	filename string
}

func newTestWindow(t *testing.T, labels config.Labels) (*FormWindow, *[]submission) {
	t.Helper()
	test.NewApp()
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	got := &[]submission{}
	opts := form.Options{
		Resolver: filename.Resolver{
			Destination: "Downloads",
			Prefix:      "New download",
			Extension:   "zip",
			Separator:   "-",
		},
	}
	fw := NewFormWindow(w, NewLabels(labels), opts, form.ResultHandlerFunc(func(url, name string) {
		*got = append(*got, submission{url, name})
	}))
	return fw, got
}

func TestFormWindow_InitialState(t *testing.T) {
	fw, _ := newTestWindow(t, config.Labels{})

	assert.True(t, fw.confirmBtn.Disabled())
	assert.True(t, fw.clearBtn.Disabled())
	assert.False(t, fw.urlEntry.Disabled())
	assert.False(t, fw.filenameEntry.Disabled())
	assert.Equal(t, "Downloader GUI", fw.window.Title())
	assert.Equal(t, "OK", fw.confirmBtn.Text)
	assert.Equal(t, "Clear all", fw.clearBtn.Text)
}

func TestFormWindow_CustomLabels(t *testing.T) {
	fw, _ := newTestWindow(t, config.Labels{WindowTitle: "Fetch", ConfirmButton: "Go"})

	assert.Equal(t, "Fetch", fw.window.Title())
	assert.Equal(t, "Go", fw.confirmBtn.Text)
	assert.Equal(t, "Clear all", fw.clearBtn.Text)
	assert.Equal(t, "Paste URL here:", fw.urlEntry.PlaceHolder)
}

func TestFormWindow_TypingValidURLEnablesConfirm(t *testing.T) {
	fw, _ := newTestWindow(t, config.Labels{})

	test.Type(fw.urlEntry, "https://example.com")

	assert.False(t, fw.confirmBtn.Disabled())
	assert.False(t, fw.clearBtn.Disabled())
}

func TestFormWindow_InvalidURLKeepsConfirmDisabled(t *testing.T) {
	fw, got := newTestWindow(t, config.Labels{})

	test.Type(fw.urlEntry, "notaurl")
	test.Tap(fw.confirmBtn)

	assert.True(t, fw.confirmBtn.Disabled())
	assert.False(t, fw.clearBtn.Disabled())
	assert.Empty(t, *got)
}

func TestFormWindow_WhitespaceFilenameStillConfirms(t *testing.T) {
	fw, _ := newTestWindow(t, config.Labels{})

	fw.urlEntry.SetText("https://example.com")
	fw.filenameEntry.SetText("   ")

	assert.False(t, fw.confirmBtn.Disabled())
}

func TestFormWindow_ConfirmDeliversResolvedFilename(t *testing.T) {
	fw, got := newTestWindow(t, config.Labels{})

	fw.urlEntry.SetText("https://example.com")
	fw.filenameEntry.SetText("report")
	test.Tap(fw.confirmBtn)

	require.Len(t, *got, 1)
	assert.Equal(t, "https://example.com", (*got)[0].url)
	assert.Equal(t, filepath.Join("Downloads", "report.zip"), (*got)[0].filename)

	// re-enabled from content after the handler returns
	assert.False(t, fw.confirmBtn.Disabled())
	assert.False(t, fw.urlEntry.Disabled())
}

func TestFormWindow_InputsDisabledDuringHandler(t *testing.T) {
	test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	var fw *FormWindow
	var disabled [4]bool
	fw = NewFormWindow(w, NewLabels(config.Labels{}), form.Options{}, form.ResultHandlerFunc(func(string, string) {
		disabled = [4]bool{
			fw.urlEntry.Disabled(),
			fw.filenameEntry.Disabled(),
			fw.confirmBtn.Disabled(),
			fw.clearBtn.Disabled(),
		}
		// a second tap while the handler runs must not re-enter
		test.Tap(fw.confirmBtn)
	}))

	fw.urlEntry.SetText("https://example.com")
	test.Tap(fw.confirmBtn)

	assert.Equal(t, [4]bool{true, true, true, true}, disabled)
}

func TestFormWindow_EnterSubmitsOnlyWhenEnabled(t *testing.T) {
	fw, got := newTestWindow(t, config.Labels{})

	fw.urlEntry.SetText("notaurl")
	fw.urlEntry.OnSubmitted(fw.urlEntry.Text)
	assert.Empty(t, *got)

	fw.urlEntry.SetText("https://example.com")
	fw.filenameEntry.OnSubmitted(fw.filenameEntry.Text)
	assert.Len(t, *got, 1)
}

func TestFormWindow_ClearResetsForm(t *testing.T) {
	fw, _ := newTestWindow(t, config.Labels{})

	fw.urlEntry.SetText("https://example.com")
	fw.filenameEntry.SetText("report")
	test.Tap(fw.clearBtn)

	assert.Equal(t, "", fw.urlEntry.Text)
	assert.Equal(t, "", fw.filenameEntry.Text)
	assert.True(t, fw.confirmBtn.Disabled())
	assert.True(t, fw.clearBtn.Disabled())
	_, ok := fw.Model().URL()
	assert.False(t, ok)
}

func TestFormWindow_SetURL(t *testing.T) {
	fw, _ := newTestWindow(t, config.Labels{})

	fw.SetURL("https://example.com")

	assert.Equal(t, "https://example.com", fw.urlEntry.Text)
	assert.True(t, fw.Model().ConfirmEnabled())
}

func TestFormWindow_AfterConfirmRunsOnceFormIsReleased(t *testing.T) {
	fw, got := newTestWindow(t, config.Labels{})

	var calls int
	var enabledWhenCalled bool
	fw.SetAfterConfirm(func() {
		calls++
		enabledWhenCalled = fw.model.UIEnabled() && !fw.urlEntry.Disabled()
	})

	test.Tap(fw.confirmBtn)
	assert.Zero(t, calls, "disabled confirm must not trigger the hook")

	test.Type(fw.urlEntry, "https://example.com/a")
	test.Tap(fw.confirmBtn)

	require.Len(t, *got, 1)
	assert.Equal(t, 1, calls)
	assert.True(t, enabledWhenCalled)
}

func TestFormWindow_EnterRunsAfterConfirm(t *testing.T) {
	fw, got := newTestWindow(t, config.Labels{})

	var calls int
	fw.SetAfterConfirm(func() { calls++ })

	test.Type(fw.urlEntry, "https://example.com/a")
	fw.urlEntry.OnSubmitted(fw.urlEntry.Text)

	require.Len(t, *got, 1)
	assert.Equal(t, 1, calls)
}
