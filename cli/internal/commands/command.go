package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/kuchuk-borom-debbarma/htmltool/core"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ExitInvalidPattern is the process status used when a glob pattern cannot
// be parsed (-1 on POSIX).
const ExitInvalidPattern = 255

type Command interface {
	// return the name of the command such as append-version
	Command() string
	// description
	Description() string
	// Register the command flags
	BindFlags(flags *pflag.FlagSet)
	// Validate if the required args are present
	ValidateArgs(flags *pflag.FlagSet, args []string) error
	// Execute the command, writing the per-file report to out
	Execute(out io.Writer, args []string) error
}

var commandRegistry = make(map[string]Command)

func registerCommand(command Command) {
	commandRegistry[command.Command()] = command
}

func GetCommand(name string) (Command, bool) {
	cmd, ok := commandRegistry[name]
	return cmd, ok
}

func ListCommands() []string {
	keys := make([]string, 0, len(commandRegistry))
	for k := range commandRegistry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ExitError is returned by CommandRunner once the failure has been reported.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by the command tree to a process status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

type CommandRunner struct {
	Out io.Writer
	Err io.Writer
}

func (r CommandRunner) Run(command Command, flags *pflag.FlagSet, args []string) error {
	out, errOut := r.Out, r.Err
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	err := command.ValidateArgs(flags, args)
	if err != nil {
		fmt.Fprintln(errOut, "[ERROR]: Invalid Arguments ", err)
		return &ExitError{Code: 1, Err: err}
	}
	err = command.Execute(out, args)
	if errors.Is(err, core.ErrInvalidPattern) {
		fmt.Fprintln(errOut, "[ERROR]:", err)
		return &ExitError{Code: ExitInvalidPattern, Err: err}
	}
	if err != nil {
		fmt.Fprintln(errOut, "[ERROR]: Execution failed:", err)
		return &ExitError{Code: 1, Err: err}
	}
	return nil
}

// NewRootCommand builds the command tree from the registered commands.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "htmltool",
		Short:         "Edit html files: replace values, version asset URLs, inline resources",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	for _, name := range ListCommands() {
		command, _ := GetCommand(name)
		sub := &cobra.Command{
			Use:   name,
			Short: command.Description(),
			Args:  cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				runner := CommandRunner{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
				return runner.Run(command, cmd.Flags(), args)
			},
		}
		command.BindFlags(sub.Flags())
		root.AddCommand(sub)
	}
	return root
}
