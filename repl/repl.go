// Package repl evaluates expressions one line at a time and prints the
// results.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/fatih/color"
	"github.com/kr/pretty"

	"go.creack.net/calc/display"
	"go.creack.net/calc/evaluator"
	"go.creack.net/calc/lexer"
	"go.creack.net/calc/parser"
)

// DefaultPrompt is printed before each line in interactive sessions.
const DefaultPrompt = ">> "

// ErrFailed is returned by Run in non-interactive sessions when at least one
// line failed to evaluate.
var ErrFailed = errors.New("one or more expressions failed")

// Options tweaks what a Session prints.
type Options struct {
	Precision int    // Decimals in results, negative for the shortest form.
	Prompt    string // Defaults to DefaultPrompt.
	Tokens    bool   // Print the token stream before the result.
	Tree      bool   // Pretty print the expression tree before the result.
	Color     bool   // Print errors in red.
	Verbose   bool   // Trace pipeline stages to stderr.
}

// Session evaluates expressions and writes results to stdout, errors to
// stderr. Lines are independent, nothing is carried over.
type Session struct {
	opts Options

	stdout io.Writer
	stderr io.Writer

	logger   *log.Logger
	errColor *color.Color
}

// New creates a session writing to the given writers.
func New(stdout, stderr io.Writer, opts Options) *Session {
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}
	logOut := io.Discard
	if opts.Verbose {
		logOut = stderr
	}
	errColor := color.New(color.FgRed)
	if opts.Color {
		errColor.EnableColor()
	} else {
		errColor.DisableColor()
	}
	return &Session{
		opts:     opts,
		stdout:   stdout,
		stderr:   stderr,
		logger:   log.New(logOut, "calc: ", 0),
		errColor: errColor,
	}
}

// Eval evaluates a single expression and prints its value.
func (s *Session) Eval(line string) (float64, error) {
	tokens, err := lexer.Tokenize(line)
	if err != nil {
		return 0, err
	}
	s.logger.Printf("tokenized %q into %d tokens", line, len(tokens))
	if s.opts.Tokens {
		for _, tok := range tokens {
			fmt.Fprintln(s.stdout, tok)
		}
	}

	expr, err := parser.Parse(tokens)
	if err != nil {
		return 0, err
	}
	s.logger.Printf("parsed %s", expr.Dump())
	if s.opts.Tree {
		pretty.Fprintf(s.stdout, "%# v\n", expr)
	}

	value, err := evaluator.Evaluate(expr)
	if err != nil {
		return 0, err
	}
	s.logger.Printf("evaluated to %v", value)

	fmt.Fprintln(s.stdout, display.Value(value, s.opts.Precision))
	return value, nil
}

// Report prints err to stderr.
func (s *Session) Report(err error) {
	s.errColor.Fprintf(s.stderr, "error: %s\n", err)
}

// Run evaluates r line by line until end of input or a quit command ("q",
// "quit" or "exit"). Failed lines are reported and skipped.
func (s *Session) Run(r io.Reader, interactive bool) error {
	scanner := bufio.NewScanner(r)
	failed := false
	for {
		if interactive {
			fmt.Fprint(s.stdout, s.opts.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "q", "quit", "exit":
			return s.finish(failed, interactive)
		}
		if _, err := s.Eval(line); err != nil {
			s.Report(err)
			failed = true
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if interactive {
		fmt.Fprintln(s.stdout, "\nExiting...")
	}
	return s.finish(failed, interactive)
}

func (s *Session) finish(failed, interactive bool) error {
	if failed && !interactive {
		return ErrFailed
	}
	return nil
}
