package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kuchuk-borom-debbarma/htmltool/cli/internal/commands"
	"github.com/kuchuk-borom-debbarma/htmltool/cli/internal/util/arg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const logLevelEnv = "HTMLTOOL_LOG_LEVEL"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(rawArgs []string, stdout, stderr io.Writer) int {
	root := newRoot(stdout, stderr)
	root.SetArgs(routeHelp(root, rawArgs))

	if err := root.Execute(); err != nil {
		// CommandRunner has already reported its own failures
		if _, reported := err.(*commands.ExitError); !reported {
			fmt.Fprintln(stderr, "[ERROR]:", err)
		}
		return commands.ExitCode(err)
	}
	return 0
}

func newRoot(stdout, stderr io.Writer) *cobra.Command {
	root := commands.NewRootCommand()
	root.SetOut(stdout)
	root.SetErr(stderr)

	var logLevel string
	var verbose bool
	root.PersistentFlags().StringVar(&logLevel, "log-level", os.Getenv(logLevelEnv), "Log level: trace, debug, info, warn, error (env "+logLevelEnv+")")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Shorthand for --log-level debug")
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if verbose && !cmd.Flags().Changed("log-level") {
			logLevel = zerolog.DebugLevel.String()
		}
		return setupLogging(stderr, logLevel)
	}
	return root
}

// routeHelp turns any help token (-?, /?, -help, /help, --help) into a help
// request for the command named first, or for the tool itself. Values of
// flags that take one are never help tokens, so "--new-value -help" sets the
// value instead.
func routeHelp(root *cobra.Command, rawArgs []string) []string {
	table := arg.Parse(maskFlagValues(root, rawArgs))
	if !table.HelpRequested() {
		return rawArgs
	}

	if name, ok := table.At(0); ok {
		if _, known := commands.GetCommand(name); known {
			return []string{"help", name}
		}
	}
	return []string{"help"}
}

// maskFlagValues blanks the values of "--flag value" pairs and everything
// after "--". Indices are kept so positions still line up with rawArgs.
func maskFlagValues(root *cobra.Command, rawArgs []string) []string {
	cmd := root
	if len(rawArgs) > 0 {
		if found, _, err := root.Find(rawArgs[:1]); err == nil && found != nil {
			cmd = found
		}
	}

	masked := make([]string, len(rawArgs))
	copy(masked, rawArgs)
	for i := 0; i < len(masked); i++ {
		a := masked[i]
		if a == "--" {
			for j := i; j < len(masked); j++ {
				masked[j] = ""
			}
			break
		}
		if !strings.HasPrefix(a, "-") || strings.Contains(a, "=") {
			continue
		}
		if f := lookupFlag(root, cmd, a); f != nil && f.NoOptDefVal == "" && i+1 < len(masked) {
			i++
			masked[i] = ""
		}
	}
	return masked
}

func lookupFlag(root, cmd *cobra.Command, token string) *pflag.Flag {
	sets := []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags(), root.PersistentFlags()}
	switch {
	case strings.HasPrefix(token, "--"):
		name := token[2:]
		for _, fs := range sets {
			if f := fs.Lookup(name); f != nil {
				return f
			}
		}
	case len(token) == 2:
		// ShorthandLookup panics on names longer than one character
		for _, fs := range sets {
			if f := fs.ShorthandLookup(token[1:]); f != nil {
				return f
			}
		}
	}
	return nil
}

func setupLogging(w io.Writer, level string) error {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()

	lvl := zerolog.WarnLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
