package commands

import (
	"fmt"
	"io"

	"github.com/kuchuk-borom-debbarma/htmltool/core"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

type InlineResourcesCommand struct {
	files            fileFlags
	resourcePatterns []string
}

func init() {
	registerCommand(&InlineResourcesCommand{})
}

func (c *InlineResourcesCommand) Command() string {
	return "inline-resources"
}

func (c *InlineResourcesCommand) Description() string {
	return "Inline scripts, styles, and images"
}

func (c *InlineResourcesCommand) BindFlags(flags *pflag.FlagSet) {
	c.files.bind(flags)
	flags.StringSliceVar(&c.resourcePatterns, "resource-patterns", nil, "Files to inline (comma-separated, repeatable, or trailing arguments)")
}

func (c *InlineResourcesCommand) ValidateArgs(_ *pflag.FlagSet, args []string) error {
	if len(c.resourcePatterns)+len(args) < 1 {
		return fmt.Errorf("missing required flag: --resource-patterns")
	}
	return nil
}

func (c *InlineResourcesCommand) Execute(out io.Writer, args []string) error {
	patterns := append(append([]string{}, c.resourcePatterns...), args...)
	log.Debug().Strs("patterns", patterns).Msg("Resource patterns")

	if _, err := core.InlineResources(c.files.fileSet(), patterns, out); err != nil {
		return fmt.Errorf("inline-resources failed: %w", err)
	}
	return nil
}
