package result

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ytget/url-prompt/internal/model"
)

var fixedTime = time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)

func newTestWriter(buf *bytes.Buffer, format Format) *Writer {
	w := NewWriter(buf, format, nil)
	w.now = func() time.Time { return fixedTime }
	n := 0
	w.newID = func() string {
		n++
		return "id-" + string(rune('0'+n))
	}
	return w
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected Format
		wantErr  bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
	}
	for _, test := range tests {
		f, err := ParseFormat(test.in)
		if test.wantErr {
			assert.Error(t, err, "ParseFormat(%q)", test.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, test.expected, f)
	}
}

func TestWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	w := newTestWriter(&buf, FormatText)

	w.HandleResult("https://example.com", "Downloads/report.zip")

	assert.Equal(t, "Url: https://example.com, filename: Downloads/report.zip\n", buf.String())
	assert.Equal(t, 1, w.Count())
}

func TestWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	w := newTestWriter(&buf, FormatJSON)

	w.HandleResult("https://example.com", "a")
	w.HandleResult("https://example.org", "b")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var sub model.Submission
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &sub))
	assert.Equal(t, "id-2", sub.ID)
	assert.Equal(t, "https://example.org", sub.URL)
	assert.Equal(t, "b", sub.Filename)
	assert.True(t, sub.SubmittedAt.Equal(fixedTime))
}

func TestWriter_YAML(t *testing.T) {
	var buf bytes.Buffer
	w := newTestWriter(&buf, FormatYAML)

	w.HandleResult("https://example.com", "a")
	w.HandleResult("https://example.org", "b")

	dec := yaml.NewDecoder(strings.NewReader(buf.String()))
	var docs []model.Submission
	for {
		var sub model.Submission
		if err := dec.Decode(&sub); err != nil {
			break
		}
		docs = append(docs, sub)
	}

	require.Len(t, docs, 2)
	assert.Equal(t, "https://example.com", docs[0].URL)
	assert.Equal(t, "b", docs[1].Filename)
}

func TestWriter_DefaultIDIsUUID(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, FormatJSON, nil)

	w.HandleResult("https://example.com", "a")

	last, ok := w.Last()
	require.True(t, ok)
	assert.Len(t, last.ID, 36)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriter_WriteErrorIsSwallowed(t *testing.T) {
	w := NewWriter(failingWriter{}, FormatText, nil)

	assert.NotPanics(t, func() { w.HandleResult("https://example.com", "a") })
	assert.Equal(t, 0, w.Count())
	_, ok := w.Last()
	assert.False(t, ok)
}
