package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/reugn/go-datexpr/datexpr"
	"github.com/reugn/go-datexpr/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// errRejected is returned by a command when at least one of its arguments
// is not a valid expression.
var errRejected = errors.New("expression rejected")

// app carries the state shared by the subcommands once the root command
// has loaded its configuration.
type app struct {
	cnf    *Configuration
	parser *datexpr.Parser
	out    io.Writer
	errOut io.Writer
}

// newCLI creates the root command and its subcommands.
func newCLI(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	var layout, logLevel string

	rootCmd := &cobra.Command{
		Use:           "datexpr",
		Short:         "Complete partial date expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&layout, "layout", "", "Go time layout of the printed timestamps")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cnf, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("layout") {
			cnf.Layout = layout
		}
		if cmd.Flags().Changed("log-level") {
			cnf.LogLevel = logLevel
		}
		if err := cnf.validate(); err != nil {
			return err
		}
		a.cnf = cnf
		a.parser = datexpr.NewParserWithOptions(datexpr.ParserOptions{
			Logger: newLogger(cnf, errOut),
		})
		return nil
	}

	rootCmd.AddCommand(
		a.completeCommand("floor", "Print the first instant of each expression", datexpr.Down),
		a.completeCommand("ceil", "Print the last instant of each expression", datexpr.Up),
		a.rangeCommand(),
		a.checkCommand(),
	)
	return rootCmd
}

// newLogger builds the logrus backed logger described by the configuration.
// The level is validated beforehand.
func newLogger(cnf *Configuration, w io.Writer) logger.Logger {
	level, _ := logger.ParseLevel(cnf.LogLevel)
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logger.LogrusLevel(level))
	if strings.EqualFold(cnf.LogFormat, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger.NewLogrusLogger(l)
}

func (a *app) completeCommand(use, short string, direction datexpr.Direction) *cobra.Command {
	return &cobra.Command{
		Use:   use + " EXPRESSION...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.each(args, func(e *datexpr.Expression) {
				fmt.Fprintln(a.out, a.format(e.Complete(direction)))
			})
		},
	}
}

func (a *app) rangeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "range EXPRESSION...",
		Short: "Print the first and the last instant of each expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.each(args, func(e *datexpr.Expression) {
				fmt.Fprintf(a.out, "%s\t%s\n",
					a.format(e.Complete(datexpr.Down)), a.format(e.Complete(datexpr.Up)))
			})
		},
	}
}

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check EXPRESSION...",
		Short: "Report whether each expression is valid",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			rejected := 0
			for _, arg := range args {
				e, err := a.parser.Parse(arg)
				if err != nil {
					rejected++
					fmt.Fprintf(a.out, "invalid\t%s\n", err)
					continue
				}
				fmt.Fprintf(a.out, "valid\t%s\n", e.Granularity())
			}
			return rejectedCount(rejected, len(args))
		},
	}
}

// each parses every argument and hands the valid ones to fn. Rejected
// arguments are reported on the error stream.
func (a *app) each(args []string, fn func(*datexpr.Expression)) error {
	rejected := 0
	for _, arg := range args {
		e, err := a.parser.Parse(arg)
		if err != nil {
			rejected++
			fmt.Fprintf(a.errOut, "%q: %s\n", arg, err)
			continue
		}
		fn(e)
	}
	return rejectedCount(rejected, len(args))
}

func rejectedCount(rejected, total int) error {
	if rejected > 0 {
		return fmt.Errorf("%w: %d of %d", errRejected, rejected, total)
	}
	return nil
}

func (a *app) format(ts datexpr.Timestamp) string {
	return ts.Time(time.UTC).Format(a.cnf.Layout)
}
