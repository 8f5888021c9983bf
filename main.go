package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/takoeight0821/inzertion/config"
	"github.com/takoeight0821/inzertion/diag"
	"github.com/takoeight0821/inzertion/driver"
)

// errHadDiagnostics signals that diagnostics were already printed; main only sets the exit status.
var errHadDiagnostics = errors.New("source has errors")

type options struct {
	configPath string
	format     string
	noColor    bool
}

// settings merges the config file with the command-line flags.
type settings struct {
	cfg    *config.Config
	format driver.Format
	color  bool
	out    io.Writer
	errOut io.Writer
}

func (o *options) load(cmd *cobra.Command) (*settings, error) {
	cfg, err := config.LoadDefault(o.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("format") {
		cfg.Output.Format = o.format
	}
	format, err := driver.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	return &settings{
		cfg:    cfg,
		format: format,
		color:  cfg.Output.Color && !o.noColor,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}, nil
}

func (s *settings) newRunner() *driver.Runner {
	return driver.NewRunner(diag.NewLog(s.errOut, s.color))
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "izr",
		Short:         "Scan and parse InZertion scripts",
		Long:          "izr runs the InZertion front end: it prints the tokens or the syntax tree of a script.\nWithout a subcommand it starts an interactive prompt.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return RunPrompt(s)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: $"+config.EnvVar+" or $XDG_CONFIG_HOME/inzertion/config.toml)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", string(driver.SExpr), "output format: sexpr or yaml")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored diagnostics")

	root.AddCommand(&cobra.Command{
		Use:   "scan FILE",
		Short: "Print the tokens of a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return ScanFile(s, args[0])
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "parse FILE",
		Short: "Print the statements of a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return ParseFile(s, args[0])
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Parse lines interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return RunPrompt(s)
		},
	})

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errHadDiagnostics) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
