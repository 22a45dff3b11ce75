package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Command is a cobra command that renders errors of its Runner
type Command struct {
	*cobra.Command
	runner Runner
}

// Runner runs a command
type Runner interface {
	RunE(cmd *cobra.Command, args []string) error
}

// exit is replaced in tests
var (
	osExit = os.Exit
	exit   = osExit
)

// New wraps cmd so errors returned by run are explained, printed and exit with code 1
func New(cmd *cobra.Command, run Runner) *Command {
	build := &Command{
		cmd,
		run,
	}
	build.Command.Run = func(cmd *cobra.Command, args []string) {
		if err := run.RunE(cmd, args); err != nil {
			PrintError(cmd.OutOrStdout(), err)
			exit(1)
		}
	}

	return build
}

// PrintError renders err as an error box
func PrintError(w io.Writer, err error) {
	if cliErr, ok := Explain(err).(*CliError); ok {
		fmt.Fprintln(w, cliErr.RichError()+"\n")
		return
	}
	fmt.Fprintln(w, ErrorBox(err.Error(), ""))
}

// RunnerFunc is a function used as Runner
type RunnerFunc func(cmd *cobra.Command, args []string) error

// RunE calls f
func (f RunnerFunc) RunE(cmd *cobra.Command, args []string) error {
	return f(cmd, args)
}
