package cli

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/url-prompt/internal/config"
	"github.com/ytget/url-prompt/internal/platform"
	"github.com/ytget/url-prompt/internal/tui"
	"github.com/ytget/url-prompt/internal/ui"
)

// launch starts the front end selected in the configuration
func launch(s *session) error {
	if s.cfg.IsTUI() {
		return runTUI(s)
	}
	return runGUI(s)
}

func runGUI(s *session) error {
	a := app.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewFormTheme())

	w := a.NewWindow(AppName)
	w.Resize(windowSize(s.cfg.UI))

	fw := ui.NewFormWindow(w, ui.NewLabels(s.cfg.Labels), s.opts, s.results)
	if s.cfg.UI.CloseOnConfirm {
		fw.SetAfterConfirm(w.Close)
	}
	if url := s.prefillURL(); url != "" {
		fw.SetURL(url)
	}

	w.ShowAndRun()
	s.log.WithField("submissions", s.results.Count()).Debug("window closed")
	return nil
}

func runTUI(s *session) error {
	labels := ui.NewLabels(s.cfg.Labels)
	f := tui.New(tui.Labels{
		Title:         labels.GetText(ui.KeyWindowTitle),
		URLLabel:      labels.GetText(ui.KeyURLLabel),
		FilenameLabel: labels.GetText(ui.KeyFilenameLabel),
		ClearButton:   labels.GetText(ui.KeyClearButton),
		ConfirmButton: labels.GetText(ui.KeyConfirmButton),
	}, s.opts, s.results)
	f.SetQuitOnConfirm(s.cfg.UI.CloseOnConfirm)
	if url := s.prefillURL(); url != "" {
		f.SetURL(url)
	}

	// results go to stdout, so the form is drawn on stderr
	p := tea.NewProgram(f, tea.WithOutput(os.Stderr))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal form: %w", err)
	}
	s.log.WithField("submissions", s.results.Count()).Debug("terminal form closed")
	return nil
}

// prefillURL returns a clipboard URL when prefill is enabled
func (s *session) prefillURL() string {
	if !s.cfg.UI.PrefillFromClipboard {
		return ""
	}
	url, err := platform.ReadClipboardURL()
	if err != nil {
		s.log.WithError(err).Debug("clipboard prefill skipped")
		return ""
	}
	return url
}

func windowSize(c config.UI) fyne.Size {
	width, height := c.Width, c.Height
	if width == 0 {
		width = config.DefaultWidth
	}
	if height == 0 {
		height = config.DefaultHeight
	}
	return fyne.NewSize(float32(width), float32(height))
}
