package ast

import (
	"bytes"
	"maps"
	"slices"
	"strings"
)

// Node is the base interface for all AST nodes.
type Node interface {
	// String returns a compact markup representation of the node.
	String() string
	node()
}

// Document is the result of parsing one markup text. Declaration and Root
// are nil when the input holds no declaration or no element respectively.
type Document struct {
	Declaration *Declaration
	Root        *Element
}

func (d *Document) node() {}

// String returns a compact markup representation of the node.
func (d *Document) String() string {
	var out bytes.Buffer
	if d.Declaration != nil {
		out.WriteString(d.Declaration.String())
	}
	if d.Root != nil {
		out.WriteString(d.Root.String())
	}
	return out.String()
}

// Declaration is the leading <?xml ...?> header, reduced to its attributes.
type Declaration struct {
	Attributes map[string]string
}

func (d *Declaration) node() {}

// String returns a compact markup representation of the node.
func (d *Declaration) String() string {
	var out bytes.Buffer
	out.WriteString("<?xml")
	writeAttributes(&out, d.Attributes)
	out.WriteString("?>")
	return out.String()
}

// Element is a single tag node.
//
// Content is nil only for self-closing tags. An element that was opened and
// closed explicitly always has non-nil Content, empty if it held no text.
// Content is the concatenation of every direct text segment, so text that
// surrounds child elements is not interleaved with Children.
type Element struct {
	Name       string
	Attributes map[string]string
	Children   []*Element
	Content    *string
}

// NewElement returns a self-closing element with empty attributes and children.
func NewElement(name string) *Element {
	return &Element{
		Name:       name,
		Attributes: map[string]string{},
		Children:   []*Element{},
	}
}

// StringPtr returns a pointer to s, for filling Element.Content.
func StringPtr(s string) *string { return &s }

func (e *Element) node() {}

// SelfClosing reports whether the element was written as <name/>.
func (e *Element) SelfClosing() bool { return e.Content == nil }

// Text returns the element content, or "" for self-closing elements.
func (e *Element) Text() string {
	if e.Content == nil {
		return ""
	}
	return *e.Content
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attributes[name]
	return v, ok
}

// Child returns the first direct child with the given name, or nil.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns every direct child with the given name, in document
// order.
func (e *Element) ChildrenNamed(name string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits e and its descendants depth-first in document order. If fn
// returns false the children of that element are skipped.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// String returns a compact markup representation of the node.
func (e *Element) String() string {
	var out bytes.Buffer
	e.writeTo(&out)
	return out.String()
}

func (e *Element) writeTo(out *bytes.Buffer) {
	out.WriteString("<")
	out.WriteString(e.Name)
	writeAttributes(out, e.Attributes)
	if e.Content == nil && len(e.Children) == 0 {
		out.WriteString("/>")
		return
	}
	out.WriteString(">")
	out.WriteString(e.Text())
	for _, c := range e.Children {
		c.writeTo(out)
	}
	out.WriteString("</")
	out.WriteString(e.Name)
	out.WriteString(">")
}

func writeAttributes(out *bytes.Buffer, attrs map[string]string) {
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		out.WriteString(" ")
		out.WriteString(k)
		out.WriteString("=")
		out.WriteString(QuoteAttr(attrs[k]))
	}
}

// QuoteAttr wraps an attribute value in double quotes, or in single quotes
// when the value itself contains a double quote.
func QuoteAttr(v string) string {
	if strings.ContainsRune(v, '"') {
		return "'" + v + "'"
	}
	return `"` + v + `"`
}
