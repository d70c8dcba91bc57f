package logging

// Package logging configures the logrus logger shared by the app. Logs go to
// stderr by default so stdout stays free for submissions.
