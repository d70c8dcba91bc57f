package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/url-prompt/internal/form"
)

// Focus order
const (
	focusURL = iota
	focusFilename
	focusConfirm
	focusClear
	focusCount
)

// InputWidth is the visible width of both fields. Input length is unlimited.
const InputWidth = 48

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	labelStyle    = lipgloss.NewStyle().Width(18)
	buttonStyle   = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder())
	focusedStyle  = buttonStyle.BorderForeground(lipgloss.Color("33")).Bold(true)
	disabledStyle = buttonStyle.Foreground(lipgloss.Color("240")).BorderForeground(lipgloss.Color("240"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Labels are the strings the terminal form displays
type Labels struct {
	Title         string
	URLLabel      string
	FilenameLabel string
	ClearButton   string
	ConfirmButton string
}

// Form is a Bubble Tea model that implements form.View
type Form struct {
	labels Labels
	model  *form.Model

	url      textinput.Model
	filename textinput.Model
	focus    int

	inputsEnabled  bool
	confirmEnabled bool
	clearEnabled   bool

	quitOnConfirm bool
	submitted     bool
	quitting      bool
}

// New creates the terminal form and binds it to a new model
func New(labels Labels, opts form.Options, handler form.ResultHandler) *Form {
	mk := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = placeholder
		ti.CharLimit = 0
		ti.Width = InputWidth
		return ti
	}

	f := &Form{
		labels:        labels,
		url:           mk(labels.URLLabel),
		filename:      mk(labels.FilenameLabel),
		inputsEnabled: true,
	}
	f.model = form.New(opts, form.ResultHandlerFunc(func(url, name string) {
		f.submitted = true
		if handler != nil {
			handler.HandleResult(url, name)
		}
	}), f)
	f.setFocus(focusURL)
	return f
}

// SetQuitOnConfirm makes the program exit after the first confirmed submission
func (f *Form) SetQuitOnConfirm(quit bool) {
	f.quitOnConfirm = quit
}

// Submitted reports whether at least one submission was confirmed
func (f *Form) Submitted() bool {
	return f.submitted
}

// Model returns the state model behind the form
func (f *Form) Model() *form.Model {
	return f.model
}

// SetURL puts text into the URL field as if the user had pasted it
func (f *Form) SetURL(text string) {
	f.setURL(text)
}

func (f *Form) Init() tea.Cmd { return textinput.Blink }

func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, f.updateFocusedInput(msg)
	}

	switch key.String() {
	case "ctrl+c", "esc":
		f.quitting = true
		return f, tea.Quit
	case "tab", "down":
		f.setFocus((f.focus + 1) % focusCount)
		return f, nil
	case "shift+tab", "up":
		f.setFocus((f.focus + focusCount - 1) % focusCount)
		return f, nil
	case "ctrl+l":
		f.press(focusClear)
		return f, nil
	case "enter":
		switch f.focus {
		case focusClear:
			f.press(focusClear)
		default:
			f.press(focusConfirm)
			if f.quitOnConfirm && f.submitted {
				f.quitting = true
				return f, tea.Quit
			}
		}
		return f, nil
	}

	return f, f.updateFocusedInput(msg)
}

// press activates a button if it is enabled
func (f *Form) press(button int) {
	switch button {
	case focusConfirm:
		if f.confirmEnabled {
			f.model.Confirm()
		}
	case focusClear:
		if f.clearEnabled {
			f.model.Clear()
		}
	}
}

// updateFocusedInput forwards msg to the focused field and reports changes
func (f *Form) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if !f.inputsEnabled {
		return nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case focusURL:
		before := f.url.Value()
		f.url, cmd = f.url.Update(msg)
		if f.url.Value() != before {
			f.model.SetURLText(f.url.Value())
		}
	case focusFilename:
		before := f.filename.Value()
		f.filename, cmd = f.filename.Update(msg)
		if f.filename.Value() != before {
			f.model.SetFilenameText(f.filename.Value())
		}
	}
	return cmd
}

func (f *Form) setFocus(target int) {
	f.focus = target
	f.url.Blur()
	f.filename.Blur()
	if !f.inputsEnabled {
		return
	}
	switch target {
	case focusURL:
		f.url.Focus()
	case focusFilename:
		f.filename.Focus()
	}
}

func (f *Form) setURL(text string) {
	if f.url.Value() == text {
		return
	}
	f.url.SetValue(text)
	f.model.SetURLText(f.url.Value())
}

func (f *Form) setFilename(text string) {
	if f.filename.Value() == text {
		return
	}
	f.filename.SetValue(text)
	f.model.SetFilenameText(f.filename.Value())
}

// SetInputsEnabled implements form.View
func (f *Form) SetInputsEnabled(enabled bool) {
	f.inputsEnabled = enabled
	f.setFocus(f.focus)
}

// SetConfirmEnabled implements form.View
func (f *Form) SetConfirmEnabled(enabled bool) { f.confirmEnabled = enabled }

// SetClearEnabled implements form.View
func (f *Form) SetClearEnabled(enabled bool) { f.clearEnabled = enabled }

// ClearInputs implements form.View
func (f *Form) ClearInputs() {
	f.setURL("")
	f.setFilename("")
}

func (f *Form) View() string {
	if f.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(f.labels.Title) + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(f.labels.URLLabel), f.url.View()))
	b.WriteString(fmt.Sprintf("%s %s\n\n", labelStyle.Render(f.labels.FilenameLabel), f.filename.View()))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		f.renderButton(f.labels.ConfirmButton, focusConfirm, f.confirmEnabled),
		" ",
		f.renderButton(f.labels.ClearButton, focusClear, f.clearEnabled),
	))
	b.WriteString("\n" + helpStyle.Render("tab: next • enter: confirm • ctrl+l: clear • esc: quit") + "\n")
	return b.String()
}

func (f *Form) renderButton(text string, id int, enabled bool) string {
	switch {
	case !enabled:
		return disabledStyle.Render(text)
	case f.focus == id:
		return focusedStyle.Render(text)
	default:
		return buttonStyle.Render(text)
	}
}
