package filename

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Defaults used when no configuration overrides them.
const (
	DefaultPrefix    = "New download"
	DefaultSeparator = "-"
	DateLayout       = "2006-01-02"
)

// Resolver computes the resolved filename at confirm time.
type Resolver struct {
	Destination string // joined in front of the name when non-empty
	Prefix      string // prepended to generated names when non-empty
	Extension   string // appended as ".<ext>" when non-empty
	Separator   string // between hour, minute and second of generated names

	// Now returns the current local time; nil means time.Now.
	Now func() time.Time
}

// Timestamp formats t as "YYYY-MM-DD HH<sep>MM<sep>SS".
func Timestamp(t time.Time, sep string) string {
	return fmt.Sprintf("%s %02d%s%02d%s%02d", t.Format(DateLayout), t.Hour(), sep, t.Minute(), sep, t.Second())
}

// DefaultBase returns a fresh generated base name for the current moment.
func (r Resolver) DefaultBase() string {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	stamp := Timestamp(now(), r.Separator)
	if r.Prefix == "" {
		return stamp
	}
	return r.Prefix + " " + stamp
}

// Resolve returns the full output path for name, generating a base name when
// name is empty. The joined result is cleaned: an absolute name is joined like
// a relative one, and ".." and trailing separators are resolved lexically.
func (r Resolver) Resolve(name string) string {
	base := name
	if base == "" {
		base = r.DefaultBase()
	}

	if ext := strings.TrimPrefix(r.Extension, "."); ext != "" {
		base = base + "." + ext
	}

	if r.Destination == "" {
		return base
	}
	return filepath.Join(r.Destination, base)
}
