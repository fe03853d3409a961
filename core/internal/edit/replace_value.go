package edit

import (
	"github.com/kuchuk-borom-debbarma/htmltool/core/internal/document"
)

// ReplaceValue sets the value of every node matched by Query to NewValue.
// Matches count as updates even when the value was already NewValue, and the
// document is saved even when nothing matched.
type ReplaceValue struct {
	Query    string
	NewValue string
}

func (ReplaceValue) Name() string { return "replace-value" }

func (ReplaceValue) SaveAlways() bool { return true }

func (op ReplaceValue) Apply(doc *document.Document, _ string) (int, error) {
	nodes, err := doc.Select(op.Query)
	if err != nil {
		return 0, err
	}

	for _, n := range nodes {
		n.SetValue(op.NewValue)
	}
	return len(nodes), nil
}
