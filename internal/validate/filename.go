package validate

import (
	"fmt"
	"strings"
	"unicode"
)

// FilenamePolicy names a built-in filename validator.
type FilenamePolicy string

const (
	// PolicyAny accepts every non-empty name
	PolicyAny FilenamePolicy = "any"

	// PolicyPortable accepts names that are safe on every major OS
	PolicyPortable FilenamePolicy = "portable"
)

// Characters rejected by the portable policy in addition to control characters.
const PortableReservedChars = `/\<>:"|?*`

// Device names reserved on Windows regardless of extension.
var reservedDeviceNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// FilenameValidator decides whether a user-provided filename is acceptable.
type FilenameValidator interface {
	IsValid(name string) bool
}

// FilenameValidatorFunc adapts a plain function to FilenameValidator.
type FilenameValidatorFunc func(name string) bool

// IsValid calls f(name).
func (f FilenameValidatorFunc) IsValid(name string) bool {
	return f(name)
}

// AcceptNonEmpty is the default policy: any non-empty name is fine.
var AcceptNonEmpty FilenameValidator = FilenameValidatorFunc(func(name string) bool {
	return len(name) > 0
})

// Portable rejects names that would be unsafe or surprising as a single path
// element on Linux, macOS or Windows.
var Portable FilenameValidator = FilenameValidatorFunc(portableName)

func portableName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, PortableReservedChars) {
		return false
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}
	if strings.HasSuffix(name, ".") || strings.HasSuffix(name, " ") {
		return false
	}

	stem := name
	if idx := strings.Index(stem, "."); idx >= 0 {
		stem = stem[:idx]
	}
	return !reservedDeviceNames[strings.ToUpper(stem)]
}

// ParseFilenamePolicy maps a policy name to its validator.
func ParseFilenamePolicy(name string) (FilenameValidator, error) {
	switch FilenamePolicy(strings.ToLower(strings.TrimSpace(name))) {
	case "", PolicyAny:
		return AcceptNonEmpty, nil
	case PolicyPortable:
		return Portable, nil
	default:
		return nil, fmt.Errorf("unknown filename policy %q", name)
	}
}
