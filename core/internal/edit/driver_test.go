package edit

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessFiles_ReportsEachFile(t *testing.T) {
	root := t.TempDir()
	a := writeFile(t, root, "a.html", `<p class="x">1</p><p class="x">2</p>`)
	b := writeFile(t, root, "sub/b.html", `<p>3</p>`)

	var out bytes.Buffer
	results, err := Driver{Out: &out}.ProcessFiles(
		FileSet{Pattern: "**/*.html", RootDirectory: root},
		ReplaceValue{Query: "//p[@class='x']", NewValue: "y"},
	)
	require.NoError(t, err)
	require.Len(t, results, 2)

	byFile := map[string]Result{}
	for _, r := range results {
		byFile[r.File] = r
	}
	assert.Equal(t, Result{File: a, Changed: 2, Saved: true}, byFile[a])
	assert.Equal(t, Result{File: b, Changed: 0, Saved: true}, byFile[b])

	assert.Contains(t, out.String(), fmt.Sprintf("Updated 2 nodes in '%s'\n", a))
	assert.Contains(t, out.String(), fmt.Sprintf("Updated 0 nodes in '%s'\n", b))
}

func TestProcessFiles_EmptyFileSet(t *testing.T) {
	var out bytes.Buffer
	results, err := Driver{Out: &out}.ProcessFiles(FileSet{}, AppendVersion{})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, out.String())
}

func TestProcessFiles_InvalidPatternAfterSingleFile(t *testing.T) {
	root := t.TempDir()
	single := writeFile(t, root, "index.html", `<title>t</title>`)

	var out bytes.Buffer
	results, err := Driver{Out: &out}.ProcessFiles(
		FileSet{SingleFile: single, Pattern: "{a,b", RootDirectory: root},
		ReplaceValue{Query: "//title", NewValue: "new"},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPattern))
	require.Len(t, results, 1)
	assert.Equal(t, single, results[0].File)
	assert.Contains(t, readFile(t, single), "<title>new</title>")
}

func TestProcessFiles_MissingSingleFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.html")

	_, err := Driver{}.ProcessFiles(FileSet{SingleFile: missing}, AppendVersion{})
	assert.Error(t, err)
}

func TestProcessFiles_InvalidQuery(t *testing.T) {
	single := writeFile(t, t.TempDir(), "index.html", `<p>x</p>`)

	_, err := Driver{}.ProcessFiles(FileSet{SingleFile: single}, ReplaceValue{Query: "//p[", NewValue: "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "replace-value failed on")
	// nothing is written when the query fails
	assert.Equal(t, `<p>x</p>`, readFile(t, single))
}
