package form

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ytget/url-prompt/internal/filename"
	"github.com/ytget/url-prompt/internal/logging"
	"github.com/ytget/url-prompt/internal/model"
	"github.com/ytget/url-prompt/internal/validate"
)

// BlankFilenamePolicy decides when the filename field counts as empty.
type BlankFilenamePolicy int

const (
	// BlankIsEmpty treats whitespace-only input as an empty field
	BlankIsEmpty BlankFilenamePolicy = iota

	// BlankIsInput treats any raw input, whitespace included, as non-empty
	BlankIsInput
)

// String returns the policy name used in logs
func (p BlankFilenamePolicy) String() string {
	switch p {
	case BlankIsEmpty:
		return "blank-is-empty"
	case BlankIsInput:
		return "blank-is-input"
	default:
		return "unknown"
	}
}

// ErrConfirmWithoutURL is the panic value raised when Confirm runs without a
// validated URL.
const ErrConfirmWithoutURL = "form: confirm invoked without a validated URL"

// Options configures a Model.
type Options struct {
	Resolver          filename.Resolver
	FilenameValidator validate.FilenameValidator // nil accepts any non-empty name
	URLValidator      func(string) bool          // nil means validate.URL
	BlankPolicy       BlankFilenamePolicy
	Logger            logrus.FieldLogger
}

// Model holds the form state and derives button enablement from it.
type Model struct {
	view    View
	handler ResultHandler
	opts    Options
	log     logrus.FieldLogger

	rawURL      string
	rawFilename string

	url           string
	filename      string
	filenameEmpty bool
	uiEnabled     bool

	confirmEnabled bool
	clearEnabled   bool
}

// New creates a model bound to view and handler. A nil view is allowed for
// headless use. The view is assumed to start with both buttons disabled.
func New(opts Options, handler ResultHandler, view View) *Model {
	if view == nil {
		view = nopView{}
	}
	if opts.FilenameValidator == nil {
		opts.FilenameValidator = validate.AcceptNonEmpty
	}
	if opts.URLValidator == nil {
		opts.URLValidator = validate.URL
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	return &Model{
		view:          view,
		handler:       handler,
		opts:          opts,
		log:           log,
		filenameEmpty: true,
		uiEnabled:     true,
	}
}

// SetURLText handles a change of the URL field.
func (m *Model) SetURLText(text string) {
	m.rawURL = text

	trimmed := strings.TrimSpace(text)
	if trimmed != "" && m.opts.URLValidator(trimmed) {
		m.url = trimmed
	} else {
		m.url = ""
	}

	m.recompute()
}

// SetFilenameText handles a change of the filename field.
func (m *Model) SetFilenameText(text string) {
	m.rawFilename = text

	trimmed := strings.TrimSpace(text)
	switch m.opts.BlankPolicy {
	case BlankIsInput:
		m.filenameEmpty = text == ""
	default:
		m.filenameEmpty = trimmed == ""
	}

	if !m.filenameEmpty && trimmed != "" && m.opts.FilenameValidator.IsValid(trimmed) {
		m.filename = trimmed
	} else {
		m.filename = ""
	}

	m.recompute()
}

// Confirm resolves the filename and hands the pair to the result handler.
// Inputs stay disabled while the handler runs and are re-enabled on every
// exit path. Calls made while the UI is disabled are dropped.
func (m *Model) Confirm() {
	if !m.uiEnabled {
		m.log.Warn("confirm ignored while the form is disabled")
		return
	}
	if m.url == "" {
		panic(ErrConfirmWithoutURL)
	}

	m.SetUIEnabled(false)
	defer m.SetUIEnabled(true)

	resolved := m.ResolvedFilename()
	m.log.WithField("filename", resolved).Debug("confirming form")

	if m.handler != nil {
		m.handler.HandleResult(m.url, resolved)
	}
}

// Clear empties both fields through the view.
func (m *Model) Clear() {
	m.view.ClearInputs()

	// Views that skip no-op change notifications still leave us consistent.
	if m.rawURL != "" {
		m.SetURLText("")
	}
	if m.rawFilename != "" {
		m.SetFilenameText("")
	}
}

// SetUIEnabled enables or disables the whole form. Re-enabling recomputes
// the buttons from the current content instead of restoring old states.
func (m *Model) SetUIEnabled(enabled bool) {
	m.uiEnabled = enabled
	m.view.SetInputsEnabled(enabled)
	m.recompute()
}

// ResolvedFilename returns the final filename for the current content.
func (m *Model) ResolvedFilename() string {
	return m.opts.Resolver.Resolve(m.filename)
}

// ConfirmEnabled reports whether the confirm button is enabled.
func (m *Model) ConfirmEnabled() bool { return m.confirmEnabled }

// ClearEnabled reports whether the clear button is enabled.
func (m *Model) ClearEnabled() bool { return m.clearEnabled }

// UIEnabled reports whether the form accepts input.
func (m *Model) UIEnabled() bool { return m.uiEnabled }

// URL returns the validated URL, if any.
func (m *Model) URL() (string, bool) { return m.url, m.url != "" }

// Filename returns the validated user filename, if any.
func (m *Model) Filename() (string, bool) { return m.filename, m.filename != "" }

// State returns a snapshot of the form.
func (m *Model) State() model.FormState {
	return model.FormState{
		URL:                m.url,
		Filename:           m.filename,
		FilenameInputEmpty: m.filenameEmpty,
		UIEnabled:          m.uiEnabled,
		ConfirmEnabled:     m.confirmEnabled,
		ClearEnabled:       m.clearEnabled,
	}
}

// recompute derives both button states and pushes changes to the view.
func (m *Model) recompute() {
	confirm := false
	clearable := false
	if m.uiEnabled {
		confirm = m.State().ValidInputPresent()
		clearable = len(m.rawURL) > 0 || len(m.rawFilename) > 0
	}

	if confirm != m.confirmEnabled {
		m.confirmEnabled = confirm
		m.view.SetConfirmEnabled(confirm)
	}
	if clearable != m.clearEnabled {
		m.clearEnabled = clearable
		m.view.SetClearEnabled(clearable)
	}

	m.log.WithFields(logrus.Fields{
		"confirm": confirm,
		"clear":   clearable,
		"ui":      m.uiEnabled,
	}).Debug("enablement recomputed")
}
