package validate

// Package validate holds the pure predicates the form uses to decide whether
// a URL or a filename is acceptable. Nothing here touches the network or the
// filesystem.
