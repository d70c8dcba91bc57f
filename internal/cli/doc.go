package cli

// Package cli wires configuration, logging and the result writer into the
// url-prompt command and starts the selected front end.
