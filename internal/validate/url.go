package validate

import (
	"net"
	"strings"

	"github.com/fredbi/uri"
	"golang.org/x/net/idna"
)

// Host label limits (RFC 1035)
const (
	MaxLabelLength = 63
	MinTLDLength   = 2
)

// AllowedSchemes lists the URL schemes accepted by URL.
var AllowedSchemes = map[string]bool{
	"ftp":    true,
	"ftps":   true,
	"git":    true,
	"http":   true,
	"https":  true,
	"irc":    true,
	"rtmp":   true,
	"rtmps":  true,
	"rtsp":   true,
	"sftp":   true,
	"ssh":    true,
	"telnet": true,
}

// URL reports whether s is a syntactically valid absolute URL with a known
// scheme and a routable-looking host. The input is expected to be trimmed.
func URL(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return false
	}

	parsed, err := uri.Parse(s)
	if err != nil {
		return false
	}

	if !AllowedSchemes[strings.ToLower(parsed.Scheme())] {
		return false
	}

	authority := parsed.Authority()
	if authority == nil {
		return false
	}

	return validHost(authority.Host())
}

// validHost accepts IP literals and fully qualified domain names.
func validHost(host string) bool {
	if host == "" {
		return false
	}

	literal := strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	if net.ParseIP(literal) != nil {
		return true
	}

	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return false
	}

	labels := strings.Split(strings.TrimSuffix(ascii, "."), ".")
	if len(labels) < 2 {
		return false
	}

	for _, label := range labels {
		if !validLabel(label) {
			return false
		}
	}

	return validTLD(labels[len(labels)-1])
}

func validLabel(label string) bool {
	if label == "" || len(label) > MaxLabelLength {
		return false
	}
	if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
		return false
	}
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		default:
			return false
		}
	}
	return true
}

// validTLD requires an alphabetic top-level label or a punycode one.
func validTLD(tld string) bool {
	if strings.HasPrefix(strings.ToLower(tld), "xn--") {
		return true
	}
	if len(tld) < MinTLDLength {
		return false
	}
	for _, r := range tld {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
