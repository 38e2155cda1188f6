package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oleg578/csvkit"
	"github.com/oleg578/csvkit/internal/config"
	"github.com/oleg578/csvkit/internal/logging"
)

// app carries the resolved settings shared by every subcommand.
type app struct {
	// Global flags
	configPath string
	envFile    string
	verbose    bool
	delimiter  string
	quote      string
	noQuotes   bool
	trim       bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "csvkit",
		Short: "Tokenize delimited text files and look values up by key",
		Long: `csvkit splits delimited text one line at a time.

Fields may be quoted (a doubled quote inside quotes is a literal quote) and
surrounding whitespace may be trimmed. Settings come from --config (YAML or
TOML), then CSVKIT_* environment variables, then command-line flags.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (.yaml, .yml or .toml)")
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file with CSVKIT_* overrides")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVarP(&a.delimiter, "delimiter", "d", ",", `field delimiter (use \t for tab)`)
	flags.StringVarP(&a.quote, "quote", "q", `"`, "quote character")
	flags.BoolVar(&a.noQuotes, "no-quotes", false, "treat quote characters as ordinary text")
	flags.BoolVarP(&a.trim, "trim", "t", false, "trim whitespace around fields")

	root.AddCommand(
		a.newParseCmd(),
		a.newCountCmd(),
		a.newColumnsCmd(),
		a.newLookupCmd(),
	)
	return root
}

// setup resolves configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(a.envFile); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("delimiter") {
		cfg.Parser.Delimiter = a.delimiter
	}
	if flags.Changed("quote") {
		cfg.Parser.Quote = a.quote
	}
	if flags.Changed("no-quotes") {
		cfg.Parser.QuotedFields = !a.noQuotes
	}
	if flags.Changed("trim") {
		cfg.Parser.TrimSpace = a.trim
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.LoggingOptions())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration resolved",
		zap.String("config", a.configPath),
		zap.String("delimiter", cfg.Parser.Delimiter),
		zap.Bool("quoted_fields", cfg.Parser.QuotedFields),
		zap.Bool("trim_space", cfg.Parser.TrimSpace))
	return nil
}

// parserConfig returns the resolved tokenizer settings with the command logger attached.
func (a *app) parserConfig() csvkit.Config {
	cfg := a.cfg.ParserConfig()
	cfg.Logger = a.logger
	return cfg
}

// readRows loads every row of path ("-" for stdin).
func (a *app) readRows(cmd *cobra.Command, path string) ([][]string, error) {
	src := cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}
	rows, err := csvkit.NewReader(src, a.parserConfig()).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// writeRows emits rows to stdout using the configured delimiter and quote.
func (a *app) writeRows(cmd *cobra.Command, rows [][]string) error {
	w := csvkit.NewConfigWriter(cmd.OutOrStdout(), a.parserConfig())
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Flush()
}
