package form

// View is the widget surface driven by a Model.
type View interface {
	// SetInputsEnabled enables or disables both text fields.
	SetInputsEnabled(enabled bool)
	SetConfirmEnabled(enabled bool)
	SetClearEnabled(enabled bool)

	// ClearInputs empties both text fields. Implementations report the new
	// text back through the model's Set*Text methods the same way a
	// keystroke would.
	ClearInputs()
}

// ResultHandler receives the confirmed URL and the resolved filename.
type ResultHandler interface {
	HandleResult(url, filename string)
}

// ResultHandlerFunc adapts a plain function to ResultHandler.
type ResultHandlerFunc func(url, filename string)

// HandleResult calls f(url, filename).
func (f ResultHandlerFunc) HandleResult(url, filename string) {
	f(url, filename)
}

type nopView struct{}

func (nopView) SetInputsEnabled(bool) {}
func (nopView) SetConfirmEnabled(bool) {}
func (nopView) SetClearEnabled(bool)  {}
func (nopView) ClearInputs()          {}
