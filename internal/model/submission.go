package model

import (
	"fmt"
	"time"
)

// Submission is one confirmed (url, filename) pair
type Submission struct {
	ID          string    `json:"id" yaml:"id"`
	URL         string    `json:"url" yaml:"url"`
	Filename    string    `json:"filename" yaml:"filename"`
	SubmittedAt time.Time `json:"submitted_at" yaml:"submitted_at"`
}

// String renders the submission the way the plain text output does
func (s Submission) String() string {
	return fmt.Sprintf("Url: %s, filename: %s", s.URL, s.Filename)
}
