package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.creack.net/calc/repl"
)

// precisionEnv overrides the default of --precision.
const precisionEnv = "CALC_PRECISION"

func defaultPrecision() int {
	v := strings.TrimSpace(os.Getenv(precisionEnv))
	if v == "" {
		return -1
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Ignoring invalid %s %q: %s.", precisionEnv, v, err)
		return -1
	}
	return n
}

// reportedError marks errors the session already printed.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newRootCmd() *cobra.Command {
	var (
		opts    repl.Options
		expr    string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `calc evaluates arithmetic expressions made of numbers, + - * /, and parentheses.

Arguments are joined with spaces and evaluated once. Without an expression,
lines are read from stdin, with a prompt when stdin is a terminal. Enter q to quit.`,
		Example: `  calc "2 + 3 * 4"
  calc -e "-3 + 5"
  echo "(2 + 3) * 4" | calc`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Color = !noColor && isTerminal(cmd.ErrOrStderr())
			session := repl.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)

			if expr == "" {
				expr = strings.Join(args, " ")
			}
			if strings.TrimSpace(expr) != "" {
				if _, err := session.Eval(expr); err != nil {
					session.Report(err)
					return reportedError{err}
				}
				return nil
			}

			in := cmd.InOrStdin()
			if err := session.Run(in, isTerminal(in)); err != nil {
				if errors.Is(err, repl.ErrFailed) {
					return reportedError{err}
				}
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&expr, "expr", "e", "", "expression to evaluate, useful when it starts with '-'")
	flags.IntVarP(&opts.Precision, "precision", "p", defaultPrecision(), "decimals in results, negative for the shortest exact form (env "+precisionEnv+")")
	flags.BoolVar(&opts.Tokens, "tokens", false, "print the token stream")
	flags.BoolVar(&opts.Tree, "tree", false, "print the expression tree")
	flags.BoolVar(&noColor, "no-color", false, "disable colored errors")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "trace evaluation stages to stderr")

	return cmd
}

// run executes the command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	if args == nil {
		args = []string{} // Keep cobra from falling back to os.Args.
	}
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(stderr, "calc: %s\n", err)
		}
		return 1
	}
	return 0
}

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
