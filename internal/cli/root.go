// Package cli wires esvalidate's cobra root command: file/--string input
// selection, the --dump-tokens debug printer, --verbose logging, the
// --serve TCP mode, and the no-argument REPL fallback. It owns no parsing
// logic itself — every RunE body is a thin driver around the esvalidate,
// lexer, server, and repl packages, calling validate(source) and printing
// the result.
package cli

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	esvalidate "github.com/esvalidate/esvalidate"
	"github.com/esvalidate/esvalidate/internal/config"
	"github.com/esvalidate/esvalidate/internal/diag"
	"github.com/esvalidate/esvalidate/internal/server"
	"github.com/esvalidate/esvalidate/repl"
)

const (
	version = "v1.0.0"
	banner  = "esvalidate — a hand-written ECMAScript-like syntax validator"
	line    = "----------------------------------------------------------------"
	prompt  = "esvalidate> "
)

var (
	greenColor = color.New(color.FgGreen)
	redColor   = color.New(color.FgRed)

	stringSource string
	dumpTokens   bool
	verbose      bool
	serveAddr    string
	configPath   string
)

var rootCmd = &cobra.Command{
	Use:          "esvalidate [path]",
	Short:        "Validate the syntax of an ECMAScript-like source file",
	Long: `esvalidate reports whether a source text conforms to an ECMAScript-like
grammar. It builds no AST and evaluates nothing; its sole output is an
accept/reject verdict plus, on rejection, a single diagnostic naming the
error kind, its line/column position, and a human-readable message.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runRoot,
}

// Execute runs the root command, registering flags first. Source,
// config and validation errors have already been reported to stderr by the
// RunE body; cobra's own argument and flag errors (SilenceErrors is set) and
// errors from the --serve and REPL modes are returned without being
// printed. main only uses the error to decide the process exit code.
func Execute() error {
	rootCmd.Flags().StringVarP(&stringSource, "string", "s", "", "validate the given literal source string instead of a file")
	rootCmd.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "print every token the tokenizer emits before validating")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log phase transitions (lexing/parsing/diagnostic) at debug level")
	rootCmd.Flags().StringVar(&serveAddr, "serve", "", "run a TCP validation server on the given address (e.g. :8080) instead of validating once")
	rootCmd.Flags().StringVar(&configPath, "config", ".esvalidate.yaml", "path to the optional YAML configuration file")
	return rootCmd.Execute()
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", configPath, err)
		return err
	}
	color.NoColor = !cfg.Color

	log := newLogger()

	if serveAddr != "" {
		srv := server.New(log, cfg.MaxRecursionDepth)
		return srv.ListenAndServe(serveAddr)
	}

	if stringSource == "" && len(args) == 0 {
		r := repl.New(banner, version, line, prompt, cfg.MaxRecursionDepth)
		return r.Start(os.Stdout)
	}
	if stringSource != "" && len(args) == 1 {
		fmt.Fprintln(os.Stderr, "Error: pass either a file path or -s, not both")
		return fmt.Errorf("conflicting source arguments")
	}

	name, src, err := resolveSource(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	log.WithField("source", name).Debug("lexing started")
	if dumpTokens {
		tokens, d := esvalidate.Tokens(src)
		for _, tok := range tokens {
			repr.Println(tok)
		}
		if d != nil {
			return reportDiagnostic(log, d)
		}
	}

	log.WithField("source", name).Debug("parsing started")
	verr := esvalidate.ValidateWithDepthLimit(name, src, cfg.MaxRecursionDepth)
	if verr != nil {
		d, ok := verr.(*diag.Diagnostic)
		if !ok {
			return reportDiagnostic(log, diag.New(diag.OUT_OF_MEMORY, diag.Position{Line: 1, Column: 1}, "%v", verr))
		}
		return reportDiagnostic(log, d)
	}

	greenColor.Fprintln(os.Stdout, "✓ Syntax is valid")
	return nil
}

// resolveSource picks the source bytes and a display name from either
// -s or the positional file argument.
func resolveSource(args []string) (name string, src []byte, err error) {
	if stringSource != "" {
		return "<string>", []byte(stringSource), nil
	}
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return path, data, nil
}

// reportDiagnostic prints the cross-prefixed verdict line to stdout and
// the "Error at line L, column C: <message>" line to stderr, logs the
// diagnostic at debug level, and returns a non-nil error so Execute's
// caller exits 1.
func reportDiagnostic(log *logrus.Logger, d *diag.Diagnostic) error {
	log.WithError(d).Debug("diagnostic emitted")
	redColor.Fprintln(os.Stdout, "✗ Syntax error detected")
	fmt.Fprintf(os.Stderr, "Error at line %d, column %d: %s\n", d.Position.Line, d.Position.Column, d.Message)
	return d
}
