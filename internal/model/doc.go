package model

// Package model defines the plain data records shared across the app: the
// form state snapshot the views render from, and the submission record the
// result handlers emit. Structures carry no behaviour beyond small helpers.
