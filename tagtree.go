package tagtree

import (
	"bytes"
	"io"

	"github.com/KimNorgaard/go-tagtree/ast"
	"github.com/KimNorgaard/go-tagtree/internal/formatter"
	"github.com/KimNorgaard/go-tagtree/internal/parser"
)

// Parse parses the markup in input and returns its document tree.
//
// Malformed input yields a nil document and an errors.ParseErrors value
// describing the first problem found. Empty input, or input holding only
// whitespace, comments and a declaration, is not an error: the returned
// document simply has a nil Root.
func Parse(input string, opts ...Option) (*ast.Document, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	p := parser.New(input, parser.Config{
		MaxDepth:    o.maxDepth,
		StrictClose: o.strictClose,
	})
	doc := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, errs
	}
	return doc, nil
}

// ParseBytes is like Parse but takes the markup as a byte slice.
func ParseBytes(data []byte, opts ...Option) (*ast.Document, error) {
	return Parse(string(data), opts...)
}

// Marshal returns the markup encoding of node, which must be a document,
// a declaration or an element.
func Marshal(node ast.Node, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Format(&buf, node, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Format writes the markup encoding of node to w. Comments and the original
// whitespace are not preserved; attributes are written in key order.
func Format(w io.Writer, node ast.Node, opts ...Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}
	return formatter.New(w, o.indent).Format(node)
}
