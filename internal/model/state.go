package model

// FormState is a snapshot of the form. Empty URL or Filename means absent.
type FormState struct {
	URL                string // validated URL
	Filename           string // trimmed, validated filename
	FilenameInputEmpty bool
	UIEnabled          bool
	ConfirmEnabled     bool
	ClearEnabled       bool
}

// HasURL returns true if a validated URL is present
func (s FormState) HasURL() bool {
	return s.URL != ""
}

// HasFilename returns true if a validated filename is present
func (s FormState) HasFilename() bool {
	return s.Filename != ""
}

// ValidInputPresent reports whether the content alone would allow confirming.
func (s FormState) ValidInputPresent() bool {
	return s.HasURL() && (s.FilenameInputEmpty || s.HasFilename())
}
