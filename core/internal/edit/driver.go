// Package edit runs document edit operations over a set of HTML files.
package edit

import (
	"fmt"
	"io"

	"github.com/kuchuk-borom-debbarma/htmltool/core/internal/document"
	"github.com/rs/zerolog/log"
)

// Operation edits one loaded document and returns how many nodes it updated.
type Operation interface {
	Name() string
	Apply(doc *document.Document, file string) (int, error)
	// SaveAlways reports whether the document is saved even when Apply
	// updated nothing.
	SaveAlways() bool
}

// Result is the outcome for a single file.
type Result struct {
	File    string
	Changed int
	Saved   bool
}

// Driver applies an operation to files one at a time.
type Driver struct {
	Out io.Writer
}

// ProcessFiles runs op on every file of files, in order. Each file is loaded,
// edited, saved if needed and reported before the next one is opened. The
// first failure stops the run; results gathered so far are returned with it.
func (d Driver) ProcessFiles(files FileSet, op Operation) ([]Result, error) {
	var results []Result

	if files.IsEmpty() {
		log.Warn().Str("operation", op.Name()).Msg("No file or file pattern given, nothing to do")
		return results, nil
	}

	err := files.Resolve(func(path string) error {
		res, err := d.processFile(path, op)
		if err != nil {
			return err
		}
		results = append(results, res)
		return nil
	})
	return results, err
}

func (d Driver) processFile(path string, op Operation) (Result, error) {
	res := Result{File: path}
	log.Debug().Str("operation", op.Name()).Str("file", path).Msg("Processing file")

	doc, err := document.Load(path)
	if err != nil {
		return res, err
	}

	res.Changed, err = op.Apply(doc, path)
	if err != nil {
		return res, fmt.Errorf("%s failed on %s: %w", op.Name(), path, err)
	}

	if res.Changed > 0 || op.SaveAlways() {
		if err := doc.Save(path); err != nil {
			return res, err
		}
		res.Saved = true
	}

	if d.Out != nil {
		fmt.Fprintf(d.Out, "Updated %d nodes in '%s'\n", res.Changed, path)
	}
	return res, nil
}
