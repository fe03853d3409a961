package edit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"
)

// ErrInvalidPattern is returned when a file pattern cannot be parsed.
var ErrInvalidPattern = errors.New("invalid glob pattern")

// FileSet names the files an operation runs on: an explicit file, every
// file under RootDirectory matching Pattern, or both.
type FileSet struct {
	SingleFile    string
	Pattern       string
	RootDirectory string // defaults to the working directory
}

// IsEmpty reports whether the set names no file at all.
func (fs FileSet) IsEmpty() bool {
	return fs.SingleFile == "" && fs.Pattern == ""
}

// Resolve calls visit for the single file first and then for every match of
// the pattern, in walk order. The pattern is validated only after the single
// file has been visited. An error from visit stops the iteration.
func (fs FileSet) Resolve(visit func(path string) error) error {
	if fs.SingleFile != "" {
		if err := visit(fs.SingleFile); err != nil {
			return err
		}
	}

	if fs.Pattern == "" {
		return nil
	}

	if !doublestar.ValidatePattern(fs.Pattern) {
		return fmt.Errorf("%w: '%s'", ErrInvalidPattern, fs.Pattern)
	}

	root := fs.RootDirectory
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current working directory: %w", err)
		}
		root = cwd
	}

	matches, err := doublestar.Glob(os.DirFS(root), fs.Pattern, doublestar.WithFilesOnly())
	if err != nil {
		if errors.Is(err, doublestar.ErrBadPattern) {
			return fmt.Errorf("%w: '%s'", ErrInvalidPattern, fs.Pattern)
		}
		return fmt.Errorf("failed to match '%s' under %s: %w", fs.Pattern, root, err)
	}
	log.Debug().Str("pattern", fs.Pattern).Str("root", root).Int("matches", len(matches)).Msg("Resolved file pattern")

	for _, m := range matches {
		if err := visit(filepath.Join(root, filepath.FromSlash(m))); err != nil {
			return err
		}
	}
	return nil
}
