// Package document loads HTML files, selects nodes with XPath and writes the
// result back in the encoding the file was read with.
package document

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	fileUtil "github.com/kuchuk-borom-debbarma/htmltool/core/internal/util/file"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

const utf8Name = "utf-8"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is a parsed HTML tree plus what is needed to save it the way it
// was read.
type Document struct {
	root     *html.Node
	encoding encoding.Encoding // nil for UTF-8
	name     string
	bom      bool
	fragment bool
}

// Load reads and parses the file at path. The source encoding is detected
// from a BOM, a <meta charset> declaration or the content itself.
func Load(path string) (*Document, error) {
	data, err := fileUtil.ReadBytes(path)
	if err != nil {
		return nil, err
	}

	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	log.Debug().Str("file", path).Str("encoding", doc.name).Msg("Loaded document")
	return doc, nil
}

// Parse parses UTF-8 encoded HTML from r. Input without an html, head or
// body tag is parsed as a fragment and saved without the document wrapper
// a full parse would add.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read html: %w", err)
	}

	doctype, full := scanStructure(data)
	if full {
		root, err := html.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse html: %w", err)
		}
		return &Document{root: root, name: utf8Name}, nil
	}

	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(bytes.NewReader(data), context)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html fragment: %w", err)
	}

	root := &html.Node{Type: html.DocumentNode}
	if doctype != nil {
		root.AppendChild(doctype)
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return &Document{root: root, name: utf8Name, fragment: true}, nil
}

// scanStructure reports whether data has an explicit html, head or body
// tag, and returns its doctype if there is one. Fragment parsing drops the
// doctype, so it is kept aside and put back in front of the fragment.
func scanStructure(data []byte) (doctype *html.Node, full bool) {
	z := html.NewTokenizer(bytes.NewReader(data))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return doctype, false
		case html.DoctypeToken:
			if doctype == nil {
				doctype = &html.Node{Type: html.DoctypeNode, Data: z.Token().Data}
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Html, atom.Head, atom.Body:
				return nil, true
			}
		}
	}
}

func decode(data []byte) (*Document, error) {
	bom := bytes.HasPrefix(data, utf8BOM)
	if bom {
		data = data[len(utf8BOM):]
	}

	var enc encoding.Encoding
	name := utf8Name
	if !bom {
		e, detected, certain := charset.DetermineEncoding(data, "")
		// An uncertain guess on valid UTF-8 is usually plain ASCII.
		if detected != utf8Name && (certain || !utf8.Valid(data)) {
			decoded, err := e.NewDecoder().Bytes(data)
			if err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", detected, err)
			}
			data, enc, name = decoded, e, detected
		}
	}

	doc, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	doc.encoding, doc.name, doc.bom = enc, name, bom
	return doc, nil
}

// IsFragment reports whether the document was parsed without an html
// element and is rendered as such.
func (d *Document) IsFragment() bool {
	return d.fragment
}

// Encoding returns the name of the encoding the document is saved with.
func (d *Document) Encoding() string {
	return d.name
}

// Select evaluates an XPath query and returns every node it matched, in
// document order. The nodes are collected before Select returns, so callers
// are free to modify the tree while walking the result.
func (d *Document) Select(query string) ([]Node, error) {
	expr, err := xpath.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("invalid xpath %q: %w", query, err)
	}

	var nodes []Node
	iter := expr.Select(htmlquery.CreateXPathNavigator(d.root))
	for iter.MoveNext() {
		nav, ok := iter.Current().(*htmlquery.NodeNavigator)
		if !ok {
			continue
		}
		nodes = append(nodes, fromNavigator(nav))
	}
	return nodes, nil
}

// Render writes the document as UTF-8 HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// Save writes the document to path in its original encoding.
func (d *Document) Save(path string) error {
	var buf bytes.Buffer
	if d.bom {
		buf.Write(utf8BOM)
	}
	if err := d.Render(&buf); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}

	out := buf.Bytes()
	if d.encoding != nil {
		encoded, err := encoding.ReplaceUnsupported(d.encoding.NewEncoder()).Bytes(out)
		if err != nil {
			return fmt.Errorf("failed to encode %s as %s: %w", path, d.name, err)
		}
		out = encoded
	}

	if err := fileUtil.WriteBytes(path, out); err != nil {
		return err
	}
	log.Debug().Str("file", path).Str("encoding", d.name).Msg("Saved document")
	return nil
}
