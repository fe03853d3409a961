package arg

import (
	"strings"
	"unicode"
)

var helpArguments = []string{"-?", "/?", "-help", "/help", "--help"}

// Table indexes a raw argument vector by flag name and by position.
// It is built once by Parse and never mutated afterwards.
type Table struct {
	named         map[string]string
	positional    map[int]string
	helpRequested bool
}

// Parse builds a Table from rawArgs in a single left to right pass.
//
// Rules, per argument at index i:
//   - "" is skipped.
//   - an argument made only of spaces is stored verbatim at position i.
//   - leading whitespace is trimmed; if nothing remains the argument is skipped.
//   - a help token (-?, /?, -help, /help, --help, any case) sets HelpRequested
//     and is not stored anywhere.
//   - "-x", "/x", "-x:v" and "-x=v" lose their marker and are stored by name
//     (x → v, or x → "" without a separator) and at position i.
//   - anything else is stored at position i.
func Parse(rawArgs []string) *Table {
	t := &Table{
		named:      make(map[string]string),
		positional: make(map[int]string),
	}

	for i, arg := range rawArgs {
		if arg == "" {
			continue
		}

		if onlySpaces(arg) {
			t.positional[i] = arg
			continue
		}

		arg = strings.TrimLeftFunc(arg, unicode.IsSpace)
		if arg == "" {
			continue
		}

		if isHelpArgument(arg) {
			t.helpRequested = true
			continue
		}

		if arg[0] == '-' || arg[0] == '/' {
			arg = arg[1:]

			name, value := arg, ""
			if sep := strings.IndexAny(arg, ":="); sep >= 0 {
				name = strings.TrimSpace(arg[:sep])
				value = arg[sep+1:]
			}
			// last write wins
			t.named[normalizeName(name)] = value
		}

		t.positional[i] = arg
	}

	return t
}

// HelpRequested reports whether any help token was seen.
func (t *Table) HelpRequested() bool {
	return t.helpRequested
}

// Has reports whether a flag with the given name was present. Names are
// compared case-insensitively.
func (t *Table) Has(name string) bool {
	_, ok := t.named[normalizeName(name)]
	return ok
}

// Get returns the value of the named flag.
func (t *Table) Get(name string) (string, bool) {
	v, ok := t.named[normalizeName(name)]
	return v, ok
}

// At returns the argument found at the given index of the original vector.
func (t *Table) At(position int) (string, bool) {
	v, ok := t.positional[position]
	return v, ok
}

// Named returns a copy of the name table. Keys are lower-cased.
func (t *Table) Named() map[string]string {
	out := make(map[string]string, len(t.named))
	for k, v := range t.named {
		out[k] = v
	}
	return out
}

// Positional returns a copy of the position table.
func (t *Table) Positional() map[int]string {
	out := make(map[int]string, len(t.positional))
	for k, v := range t.positional {
		out[k] = v
	}
	return out
}

func normalizeName(name string) string {
	return strings.ToLower(name)
}

func onlySpaces(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			return false
		}
	}
	return true
}

func isHelpArgument(arg string) bool {
	for _, h := range helpArguments {
		if strings.EqualFold(arg, h) {
			return true
		}
	}
	return false
}
