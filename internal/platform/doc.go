package platform

// Package platform contains OS integration glue: home directory expansion for
// configured paths and reading a URL from the system clipboard.
