// Package repl implements an interactive Read-Validate-Print loop for
// esvalidate: a banner/prompt/history shape built on chzyer/readline plus
// fatih/color output, validating each line and printing accept/reject.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	esvalidate "github.com/esvalidate/esvalidate"
)

var (
	blueColor   = color.New(color.FgBlue)
	greenColor  = color.New(color.FgGreen)
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a validate-REPL instance: banner text, prompt, and the
// recursion-depth cap handed to each validation.
type Repl struct {
	Banner   string
	Version  string
	Line     string
	Prompt   string
	MaxDepth int
}

// New creates a Repl with the given display strings and recursion cap.
func New(banner, version, line, prompt string, maxDepth int) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt, MaxDepth: maxDepth}
}

// PrintBanner writes the startup banner to writer.
func (r *Repl) PrintBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "esvalidate "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Enter a source fragment and press enter to validate it.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop, reading lines via readline and writing
// accept/reject verdicts to writer. It returns when the user exits or
// input ends.
func (r *Repl) Start(writer io.Writer) error {
	r.PrintBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(writer, "Good bye!")
			return nil
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(writer, "Good bye!")
			return nil
		}

		rl.SaveHistory(line)
		r.validateLine(writer, line)
	}
}

// validateLine validates one line of input and prints the verdict,
// recovering from any panic so a single malformed line never kills the
// session.
func (r *Repl) validateLine(writer io.Writer, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", rec)
		}
	}()

	err := esvalidate.ValidateWithDepthLimit("<repl>", []byte(line), r.MaxDepth)
	if err == nil {
		greenColor.Fprintf(writer, "✓ Syntax is valid\n")
		return
	}
	redColor.Fprintf(writer, "✗ Syntax error detected\n")
	redColor.Fprintf(writer, "%s\n", err.Error())
}
