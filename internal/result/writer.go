package result

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ytget/url-prompt/internal/logging"
	"github.com/ytget/url-prompt/internal/model"
)

// Format selects how submissions are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// YAMLDocumentSeparator precedes every YAML submission after the first.
const YAMLDocumentSeparator = "---\n"

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", name)
	}
}

// Writer is a form.ResultHandler that serializes submissions to out.
type Writer struct {
	out    io.Writer
	format Format
	log    logrus.FieldLogger

	mu      sync.Mutex
	written int
	last    *model.Submission

	// overridable in tests
	now   func() time.Time
	newID func() string
}

// NewWriter creates a writer for the given format.
func NewWriter(out io.Writer, format Format, log logrus.FieldLogger) *Writer {
	if log == nil {
		log = logging.Discard()
	}
	return &Writer{
		out:    out,
		format: format,
		log:    log,
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
	}
}

// HandleResult records and writes one confirmed pair. Write failures are
// logged; the form keeps working.
func (w *Writer) HandleResult(url, filename string) {
	sub := model.Submission{
		ID:          w.newID(),
		URL:         url,
		Filename:    filename,
		SubmittedAt: w.now(),
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	entry := w.log.WithFields(logrus.Fields{
		"id":       sub.ID,
		"url":      logging.SanitizeURL(url),
		"filename": filename,
	})

	if err := w.write(sub); err != nil {
		entry.WithError(err).Error("failed to write submission")
		return
	}

	w.written++
	w.last = &sub
	entry.Info("submission written")
}

// Count returns how many submissions were written successfully.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}

// Last returns the most recent successfully written submission.
func (w *Writer) Last() (model.Submission, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.last == nil {
		return model.Submission{}, false
	}
	return *w.last, true
}

func (w *Writer) write(sub model.Submission) error {
	switch w.format {
	case FormatJSON:
		data, err := json.Marshal(sub)
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		_, err = fmt.Fprintf(w.out, "%s\n", data)
		return err
	case FormatYAML:
		data, err := yaml.Marshal(sub)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		if w.written > 0 {
			if _, err := io.WriteString(w.out, YAMLDocumentSeparator); err != nil {
				return err
			}
		}
		_, err = w.out.Write(data)
		return err
	default:
		_, err := fmt.Fprintln(w.out, sub.String())
		return err
	}
}
