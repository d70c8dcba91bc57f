package tui

// Package tui renders the same form in a terminal with Bubble Tea. It drives
// a form.Model exactly like the desktop window does.
