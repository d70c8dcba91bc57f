package filename

// Package filename turns the optional user-provided name into the final
// output path: timestamp fallback, extension and destination directory.
