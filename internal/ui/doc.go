package ui

// Package ui contains the Fyne-based desktop window for the form. It forwards
// entry changes and button taps to form.Model and applies the enable/disable
// instructions it gets back. All visible strings come from Labels.
