package result

// Package result provides the stock result handler: every confirmed pair is
// stamped as a model.Submission and written to an output stream as plain
// text, JSON or YAML so that scripts can consume it.
