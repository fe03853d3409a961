package commands

import (
	"fmt"
	"io"

	"github.com/kuchuk-borom-debbarma/htmltool/core"
	"github.com/spf13/pflag"
)

type replaceValueCmd struct {
	files    fileFlags
	xpath    string
	newValue string
}

func (*replaceValueCmd) Command() string {
	return "replace-value"
}

func (*replaceValueCmd) Description() string {
	return "Replace element/attribute values in an html file"
}

func (c *replaceValueCmd) BindFlags(flags *pflag.FlagSet) {
	c.files.bind(flags)
	flags.StringVar(&c.xpath, "xpath", "", "XPath to the elements/attributes to replace")
	flags.StringVar(&c.newValue, "new-value", "", "New value for the elements/attributes")
}

func (c *replaceValueCmd) ValidateArgs(flags *pflag.FlagSet, args []string) error {
	if c.xpath == "" {
		return fmt.Errorf("missing required flag: --xpath")
	}
	// an empty new value is allowed, but it must be given explicitly
	if !flags.Changed("new-value") {
		return fmt.Errorf("missing required flag: --new-value")
	}
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	return nil
}

func (c *replaceValueCmd) Execute(out io.Writer, _ []string) error {
	_, err := core.ReplaceValue(c.files.fileSet(), c.xpath, c.newValue, out)
	return err
}

func init() {
	registerCommand(&replaceValueCmd{})
}
