package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ytget/url-prompt/internal/filename"
	"github.com/ytget/url-prompt/internal/form"
	"github.com/ytget/url-prompt/internal/platform"
	"github.com/ytget/url-prompt/internal/result"
	"github.com/ytget/url-prompt/internal/validate"
)

// Front ends
const (
	FrontendGUI = "gui"
	FrontendTUI = "tui"
)

// Default values
const (
	CurrentVersion     = 1
	DefaultDestination = "Downloads"
	DefaultWidth       = 520
	DefaultHeight      = 160
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// Validation errors
var (
	ErrUnsupportedVersion = errors.New("unsupported config version")
	ErrInvalidFrontend    = errors.New("invalid ui.frontend")
	ErrInvalidWindowSize  = errors.New("invalid window size")
)

// Config mirrors the YAML schema. Missing keys keep the values from Default.
type Config struct {
	Version     int      `yaml:"version"`
	Destination string   `yaml:"destination"`
	Filename    Filename `yaml:"filename"`
	Output      Output   `yaml:"output"`
	UI          UI       `yaml:"ui"`
	Labels      Labels   `yaml:"labels"`
	Logging     Logging  `yaml:"logging"`
}

type Filename struct {
	Prefix             string `yaml:"prefix"`
	Extension          string `yaml:"extension"` // no leading dot needed
	TimestampSeparator string `yaml:"timestamp_separator"`
	Policy             string `yaml:"policy"`         // any | portable
	BlankIsEmpty       bool   `yaml:"blank_is_empty"` // whitespace-only input counts as empty
}

type Output struct {
	Format string `yaml:"format"` // text | json | yaml
}

type UI struct {
	Frontend             string `yaml:"frontend"` // gui | tui
	CloseOnConfirm       bool   `yaml:"close_on_confirm"`
	PrefillFromClipboard bool   `yaml:"prefill_from_clipboard"`
	Width                int    `yaml:"width"`
	Height               int    `yaml:"height"`
}

// Labels holds the user-visible strings. Empty values fall back to defaults.
type Labels struct {
	WindowTitle   string `yaml:"window_title"`
	URLLabel      string `yaml:"url_label"`
	FilenameLabel string `yaml:"filename_label"`
	ClearButton   string `yaml:"clear_button"`
	ConfirmButton string `yaml:"confirm_button"`
}

type Logging struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // text|json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version:     CurrentVersion,
		Destination: DefaultDestination,
		Filename: Filename{
			Prefix:             filename.DefaultPrefix,
			TimestampSeparator: filename.DefaultSeparator,
			Policy:             string(validate.PolicyAny),
			BlankIsEmpty:       true,
		},
		Output: Output{Format: string(result.FormatText)},
		UI: UI{
			Frontend: FrontendGUI,
			Width:    DefaultWidth,
			Height:   DefaultHeight,
		},
		Logging: Logging{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if strings.TrimSpace(path) == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks enum fields and sizes.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, c.Version)
	}
	if _, err := validate.ParseFilenamePolicy(c.Filename.Policy); err != nil {
		return err
	}
	if _, err := result.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	switch strings.ToLower(c.UI.Frontend) {
	case "", FrontendGUI, FrontendTUI:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFrontend, c.UI.Frontend)
	}
	if c.UI.Width < 0 || c.UI.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidWindowSize, c.UI.Width, c.UI.Height)
	}
	return nil
}

// Resolver builds the filename resolver. A "~" in the destination expands to
// the home directory.
func (c *Config) Resolver() (filename.Resolver, error) {
	dest, err := platform.ExpandHome(c.Destination)
	if err != nil {
		return filename.Resolver{}, err
	}
	return filename.Resolver{
		Destination: dest,
		Prefix:      c.Filename.Prefix,
		Extension:   c.Filename.Extension,
		Separator:   c.Filename.TimestampSeparator,
	}, nil
}

// BlankPolicy returns the form policy for whitespace-only filenames.
func (c *Config) BlankPolicy() form.BlankFilenamePolicy {
	if c.Filename.BlankIsEmpty {
		return form.BlankIsEmpty
	}
	return form.BlankIsInput
}

// FormOptions assembles everything the form model needs except the logger.
func (c *Config) FormOptions() (form.Options, error) {
	resolver, err := c.Resolver()
	if err != nil {
		return form.Options{}, err
	}
	validator, err := validate.ParseFilenamePolicy(c.Filename.Policy)
	if err != nil {
		return form.Options{}, err
	}
	return form.Options{
		Resolver:          resolver,
		FilenameValidator: validator,
		BlankPolicy:       c.BlankPolicy(),
	}, nil
}

// IsTUI reports whether the terminal front end is selected.
func (c *Config) IsTUI() bool {
	return strings.EqualFold(c.UI.Frontend, FrontendTUI)
}
