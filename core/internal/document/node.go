package document

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type Kind int

const (
	KindElement Kind = iota
	KindAttribute
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindAttribute:
		return "attribute"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Node is a selected part of a document whose value can be read and replaced.
type Node interface {
	Kind() Kind
	Value() string
	SetValue(value string)
	// Element returns the element the node belongs to: the element itself,
	// the owner of an attribute or the parent of a text node. It is nil for
	// text outside of any element.
	Element() *Element
}

func fromNavigator(nav *htmlquery.NodeNavigator) Node {
	n := nav.Current()
	switch nav.NodeType() {
	case xpath.AttributeNode:
		return &Attribute{owner: n, key: nav.LocalName()}
	case xpath.TextNode, xpath.CommentNode:
		return &Text{n: n}
	default:
		return &Element{n: n}
	}
}

// Element is an element node. Its value is its inner text.
type Element struct {
	n *html.Node
}

func (e *Element) Kind() Kind { return KindElement }

func (e *Element) Value() string { return htmlquery.InnerText(e.n) }

func (e *Element) SetValue(value string) { e.SetInnerText(value) }

func (e *Element) Element() *Element { return e }

func (e *Element) Name() string { return e.n.Data }

// Is reports whether the element has the given tag name, ignoring case.
func (e *Element) Is(name string) bool {
	return e.n.Type == html.ElementNode && strings.EqualFold(e.n.Data, name)
}

// Rename changes the tag name of the element.
func (e *Element) Rename(name string) {
	e.n.Data = name
	e.n.DataAtom = atom.Lookup([]byte(name))
}

// Attribute returns the value of the first attribute named key.
func (e *Element) Attribute(key string) (string, bool) {
	for _, a := range e.n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

// RemoveAttribute deletes every attribute named key.
func (e *Element) RemoveAttribute(key string) {
	kept := e.n.Attr[:0]
	for _, a := range e.n.Attr {
		if !strings.EqualFold(a.Key, key) {
			kept = append(kept, a)
		}
	}
	e.n.Attr = kept
}

// SetInnerText replaces all children of the element with a single text node.
// Text inside script and style elements is rendered without escaping.
func (e *Element) SetInnerText(text string) {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		c = next
	}
	e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Attribute is an attribute of an element, addressed by its key.
type Attribute struct {
	owner *html.Node
	key   string
}

func (a *Attribute) Kind() Kind { return KindAttribute }

func (a *Attribute) Name() string { return a.key }

func (a *Attribute) Value() string {
	if i := a.index(); i >= 0 {
		return a.owner.Attr[i].Val
	}
	return ""
}

// SetValue updates the attribute, adding it back if it was removed.
func (a *Attribute) SetValue(value string) {
	if i := a.index(); i >= 0 {
		a.owner.Attr[i].Val = value
		return
	}
	a.owner.Attr = append(a.owner.Attr, html.Attribute{Key: a.key, Val: value})
}

func (a *Attribute) Element() *Element { return &Element{n: a.owner} }

func (a *Attribute) index() int {
	for i, attr := range a.owner.Attr {
		if attr.Key == a.key {
			return i
		}
	}
	return -1
}

// Text is a text or comment node.
type Text struct {
	n *html.Node
}

func (t *Text) Kind() Kind { return KindText }

func (t *Text) Value() string { return t.n.Data }

func (t *Text) SetValue(value string) { t.n.Data = value }

func (t *Text) Element() *Element {
	if p := t.n.Parent; p != nil && p.Type == html.ElementNode {
		return &Element{n: p}
	}
	return nil
}
