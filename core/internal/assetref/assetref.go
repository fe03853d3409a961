// Package assetref splits URL-like asset references found in HTML attributes
// and stamps them with a content-derived version marker.
package assetref

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"
)

// MarkerLength is the number of hex characters in a version marker.
const MarkerLength = 6

// Reference is an asset reference split into its components.
// Query keeps its leading '?' and Fragment its leading '#'; an empty
// string means the component is absent.
type Reference struct {
	Path     string
	Query    string
	Fragment string
}

// Split decomposes ref. Only a '?' that occurs before any '#' starts a
// query: in "a.js#x?y=1" everything from '#' on is the fragment.
func Split(ref string) Reference {
	hashIdx := strings.IndexByte(ref, '#')
	queryIdx := strings.IndexByte(ref, '?')
	if hashIdx >= 0 && queryIdx > hashIdx {
		queryIdx = -1
	}

	switch {
	case queryIdx >= 0 && hashIdx >= 0:
		return Reference{Path: ref[:queryIdx], Query: ref[queryIdx:hashIdx], Fragment: ref[hashIdx:]}
	case queryIdx >= 0:
		return Reference{Path: ref[:queryIdx], Query: ref[queryIdx:]}
	case hashIdx >= 0:
		return Reference{Path: ref[:hashIdx], Fragment: ref[hashIdx:]}
	default:
		return Reference{Path: ref}
	}
}

// String reassembles the reference.
func (r Reference) String() string {
	return r.Path + r.Query + r.Fragment
}

// WithVersion returns a copy of r whose query carries v=marker. An existing
// "&v=" parameter is replaced in place, then a leading "?v=", otherwise the
// parameter is appended.
func (r Reference) WithVersion(marker string) Reference {
	if r.Query == "" {
		r.Query = "?v=" + marker
		return r
	}

	idx := strings.Index(r.Query, "&v=")
	if idx < 0 {
		idx = strings.Index(r.Query, "?v=")
	}
	if idx < 0 {
		r.Query += "&v=" + marker
		return r
	}

	prefix := "&v="
	if idx == 0 {
		prefix = "?v="
	}

	tail := ""
	if end := strings.IndexByte(r.Query[idx+1:], '&'); end >= 0 {
		tail = r.Query[idx+1+end:]
	}
	r.Query = r.Query[:idx] + prefix + marker + tail
	return r
}

// Stamp merges marker into the query string of ref, keeping the fragment.
//
//	Stamp("a.js", "abc123")          == "a.js?v=abc123"
//	Stamp("a.js?x=1", "abc123")      == "a.js?x=1&v=abc123"
//	Stamp("a.js?v=old#frag", "new1") == "a.js?v=new1#frag"
func Stamp(ref, marker string) string {
	return Split(ref).WithVersion(marker).String()
}

// IsProtocolRelative reports whether ref is an absolute protocol-relative
// URL that must be left untouched. Callers check it before Stamp.
func IsProtocolRelative(ref string) bool {
	return strings.Contains(ref, "://") && strings.HasPrefix(ref, "//")
}

// Marker derives the version marker of an asset: the first MarkerLength
// lowercase hex characters of its SHA-512 digest.
func Marker(data []byte) string {
	sum := sha512.Sum512(data)
	return hex.EncodeToString(sum[:MarkerLength/2])
}
