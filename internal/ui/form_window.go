package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/url-prompt/internal/form"
	"github.com/ytget/url-prompt/internal/logging"
)

// FormWindow is the desktop rendering of the URL/filename form
type FormWindow struct {
	window fyne.Window
	labels *Labels
	model  *form.Model
	log    logrus.FieldLogger

	urlEntry      *widget.Entry
	filenameEntry *widget.Entry
	confirmBtn    *widget.Button
	clearBtn      *widget.Button

	afterConfirm func()
}

// NewFormWindow builds the form into window and binds it to a new model
func NewFormWindow(window fyne.Window, labels *Labels, opts form.Options, handler form.ResultHandler) *FormWindow {
	fw := &FormWindow{
		window: window,
		labels: labels,
		log:    opts.Logger,
	}
	if fw.log == nil {
		fw.log = logging.Discard()
	}

	fw.setupUI()
	fw.model = form.New(opts, handler, fw)
	return fw
}

// Model returns the state model behind the window
func (fw *FormWindow) Model() *form.Model {
	return fw.model
}

// SetAfterConfirm registers fn to run once a confirm has fully completed and
// the form is enabled again
func (fw *FormWindow) SetAfterConfirm(fn func()) {
	fw.afterConfirm = fn
}

// SetURL puts text into the URL field as if the user had pasted it
func (fw *FormWindow) SetURL(text string) {
	fw.urlEntry.SetText(text)
}

// setupUI creates and arranges all widgets
func (fw *FormWindow) setupUI() {
	fw.window.SetTitle(fw.labels.GetText(KeyWindowTitle))

	fw.urlEntry = widget.NewEntry()
	fw.urlEntry.SetPlaceHolder(fw.labels.GetText(KeyURLLabel))
	fw.urlEntry.OnChanged = func(text string) {
		fw.model.SetURLText(text)
	}
	fw.urlEntry.OnSubmitted = fw.onSubmitted

	fw.filenameEntry = widget.NewEntry()
	fw.filenameEntry.SetPlaceHolder(fw.labels.GetText(KeyFilenameLabel))
	fw.filenameEntry.OnChanged = func(text string) {
		fw.model.SetFilenameText(text)
	}
	fw.filenameEntry.OnSubmitted = fw.onSubmitted

	fw.confirmBtn = widget.NewButton(fw.labels.GetText(KeyConfirmButton), fw.onConfirm)
	fw.confirmBtn.Importance = widget.HighImportance
	fw.confirmBtn.Disable()

	fw.clearBtn = widget.NewButton(fw.labels.GetText(KeyClearButton), fw.onClear)
	fw.clearBtn.Disable()

	fields := container.New(layout.NewFormLayout(),
		widget.NewLabel(fw.labels.GetText(KeyURLLabel)), fw.urlEntry,
		widget.NewLabel(fw.labels.GetText(KeyFilenameLabel)), fw.filenameEntry,
	)

	content := container.NewBorder(
		nil,                            // top
		nil,                            // bottom
		nil,                            // left
		container.NewVBox(fw.clearBtn), // right
		container.NewVBox(fields, fw.confirmBtn),
	)

	fw.window.SetContent(container.NewPadded(content))
}

// onConfirm handles the confirm button tap
func (fw *FormWindow) onConfirm() {
	// a disabled button never fires; this also guards Enter in the entries
	if !fw.model.ConfirmEnabled() {
		return
	}
	fw.model.Confirm()
	if fw.afterConfirm != nil {
		fw.afterConfirm()
	}
}

// onSubmitted handles Enter pressed in either entry
func (fw *FormWindow) onSubmitted(string) {
	if fw.confirmBtn.Disabled() {
		fw.log.Debug("submit ignored: confirm is disabled")
		return
	}
	fw.onConfirm()
}

// onClear handles the clear button tap
func (fw *FormWindow) onClear() {
	fw.model.Clear()
}

// SetInputsEnabled implements form.View
func (fw *FormWindow) SetInputsEnabled(enabled bool) {
	setEnabled(fw.urlEntry, enabled)
	setEnabled(fw.filenameEntry, enabled)
}

// SetConfirmEnabled implements form.View
func (fw *FormWindow) SetConfirmEnabled(enabled bool) {
	setEnabled(fw.confirmBtn, enabled)
}

// SetClearEnabled implements form.View
func (fw *FormWindow) SetClearEnabled(enabled bool) {
	setEnabled(fw.clearBtn, enabled)
}

// ClearInputs implements form.View; the entries report back via OnChanged
func (fw *FormWindow) ClearInputs() {
	fw.urlEntry.SetText("")
	fw.filenameEntry.SetText("")
}

func setEnabled(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}
