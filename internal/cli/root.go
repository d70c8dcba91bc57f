package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ytget/url-prompt/internal/config"
	"github.com/ytget/url-prompt/internal/form"
	"github.com/ytget/url-prompt/internal/logging"
	"github.com/ytget/url-prompt/internal/result"
)

const (
	AppName = "url-prompt"
	AppID   = "com.ytget.url-prompt"
)

// flags holds raw command line values. Only flags the user actually set
// override the configuration file.
type flags struct {
	configPath     string
	destination    string
	prefix         string
	extension      string
	separator      string
	policy         string
	output         string
	logLevel       string
	logFormat      string
	tui            bool
	closeOnConfirm bool
	paste          bool
	blankIsInput   bool
}

// session is everything a front end needs to run
type session struct {
	cfg     *config.Config
	log     *logrus.Logger
	opts    form.Options
	results *result.Writer
}

// frontend starts the form and blocks until it is closed
type frontend func(s *session) error

// Execute runs the command and returns the process exit code
func Execute(version string) int {
	if err := NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand builds the url-prompt command tree
func NewRootCommand(version string) *cobra.Command {
	return newRootCommand(version, launch)
}

func newRootCommand(version string, run frontend) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   AppName,
		Short: "Ask for a URL and a filename, then print them",
		Long: `url-prompt opens a small form with a URL field and an optional filename
field. Both are validated while you type. Confirming prints the URL and the
resolved file path to standard output.

Examples:
  # Open the desktop form
  url-prompt

  # Use the terminal form and print JSON
  url-prompt --tui --output json

  # Save into ~/Videos with a .mp4 extension and exit after one submission
  url-prompt --dest ~/Videos --ext mp4 --once`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			s, err := newSession(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			s.log.WithFields(logrus.Fields{
				"version":  version,
				"frontend": cfg.UI.Frontend,
			}).Debug("starting")
			return run(s)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "Path to YAML config file")
	fl.StringVarP(&f.destination, "dest", "d", "", "Destination directory joined to the filename")
	fl.StringVar(&f.prefix, "prefix", "", "Prefix of the generated default filename")
	fl.StringVar(&f.extension, "ext", "", "Extension appended to every filename")
	fl.StringVar(&f.separator, "separator", "", "Separator between hour, minute and second in the default filename")
	fl.StringVar(&f.policy, "filename-policy", "", "Filename policy (any, portable)")
	fl.BoolVar(&f.blankIsInput, "blank-is-input", false, "Treat a whitespace-only filename as typed input")
	fl.StringVarP(&f.output, "output", "o", "", "Output format (text, json, yaml)")
	fl.BoolVar(&f.tui, "tui", false, "Use the terminal form instead of the desktop window")
	fl.BoolVar(&f.closeOnConfirm, "once", false, "Close the form after the first submission")
	fl.BoolVar(&f.paste, "paste", false, "Prefill the URL field from the clipboard")
	fl.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fl.StringVar(&f.logFormat, "log-format", "", "Log format (text, json)")

	cmd.AddCommand(newVersionCommand(version))
	return cmd
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", AppName, version)
		},
	}
}

// resolveConfig loads the config file and applies the flags the user set
func resolveConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("dest") {
		cfg.Destination = f.destination
	}
	if changed("prefix") {
		cfg.Filename.Prefix = f.prefix
	}
	if changed("ext") {
		cfg.Filename.Extension = f.extension
	}
	if changed("separator") {
		cfg.Filename.TimestampSeparator = f.separator
	}
	if changed("filename-policy") {
		cfg.Filename.Policy = f.policy
	}
	if changed("blank-is-input") {
		cfg.Filename.BlankIsEmpty = !f.blankIsInput
	}
	if changed("output") {
		cfg.Output.Format = f.output
	}
	if changed("tui") {
		cfg.UI.Frontend = config.FrontendGUI
		if f.tui {
			cfg.UI.Frontend = config.FrontendTUI
		}
	}
	if changed("once") {
		cfg.UI.CloseOnConfirm = f.closeOnConfirm
	}
	if changed("paste") {
		cfg.UI.PrefillFromClipboard = f.paste
	}
	if changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if changed("log-format") {
		cfg.Logging.Format = f.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func newSession(cfg *config.Config, stdout, stderr io.Writer) (*session, error) {
	log, err := logging.New(cfg.Logging.Level, cfg.Logging.Format, stderr)
	if err != nil {
		return nil, err
	}

	opts, err := cfg.FormOptions()
	if err != nil {
		return nil, err
	}
	opts.Logger = log

	format, err := result.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:     cfg,
		log:     log,
		opts:    opts,
		results: result.NewWriter(stdout, format, log),
	}, nil
}
