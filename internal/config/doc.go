package config

// Package config loads the YAML configuration. Values are read once at start
// and never reloaded or written back.
