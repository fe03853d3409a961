package commands

import (
	"fmt"
	"io"

	"github.com/kuchuk-borom-debbarma/htmltool/core"
	"github.com/spf13/pflag"
)

type AppendVersionCommand struct {
	files fileFlags
}

func init() {
	registerCommand(&AppendVersionCommand{})
}

func (c *AppendVersionCommand) Command() string {
	return "append-version"
}

func (c *AppendVersionCommand) Description() string {
	return "Append version to style / script URLs"
}

func (c *AppendVersionCommand) BindFlags(flags *pflag.FlagSet) {
	c.files.bind(flags)
}

func (c *AppendVersionCommand) ValidateArgs(_ *pflag.FlagSet, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	return nil
}

func (c *AppendVersionCommand) Execute(out io.Writer, _ []string) error {
	if _, err := core.AppendVersion(c.files.fileSet(), out); err != nil {
		return fmt.Errorf("append-version failed: %w", err)
	}
	return nil
}
