package core

import (
	"io"

	"github.com/kuchuk-borom-debbarma/htmltool/core/internal/assetref"
	"github.com/kuchuk-borom-debbarma/htmltool/core/internal/edit"
)

// FileSet selects the HTML files an edit runs on.
type FileSet = edit.FileSet

// Result reports how many nodes were updated in one file.
type Result = edit.Result

// ErrInvalidPattern is returned when FileSet.Pattern is not a valid glob.
var ErrInvalidPattern = edit.ErrInvalidPattern

// ReplaceValue sets every node matched by the XPath query to newValue.
// Every loaded file is saved, even when nothing matched.
func ReplaceValue(files FileSet, xpath, newValue string, out io.Writer) ([]Result, error) {
	return edit.Driver{Out: out}.ProcessFiles(files, edit.ReplaceValue{Query: xpath, NewValue: newValue})
}

// AppendVersion stamps src, href and poster references to local files with a
// content-derived v= query parameter.
func AppendVersion(files FileSet, out io.Writer) ([]Result, error) {
	return edit.Driver{Out: out}.ProcessFiles(files, edit.AppendVersion{})
}

// InlineResources embeds local scripts, stylesheets and other referenced files.
func InlineResources(files FileSet, resourcePatterns []string, out io.Writer) ([]Result, error) {
	return edit.Driver{Out: out}.ProcessFiles(files, edit.InlineResources{ResourcePatterns: resourcePatterns})
}

// StampVersion merges marker into the query string of an asset reference.
func StampVersion(reference, marker string) string {
	return assetref.Stamp(reference, marker)
}
