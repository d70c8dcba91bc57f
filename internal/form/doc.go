package form

// Package form implements the toolkit-independent state model behind the
// URL/filename form. Views forward raw text and clicks to a Model and receive
// enable/disable instructions back through the View interface. The model is
// single-threaded: call it only from the event loop that owns the view.
