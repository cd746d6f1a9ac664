package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	tagtree "github.com/KimNorgaard/go-tagtree"
	"github.com/KimNorgaard/go-tagtree/ast"
)

type documentView struct {
	Declaration *declarationView `json:"declaration,omitempty" yaml:"declaration,omitempty"`
	Root        *elementView     `json:"root,omitempty" yaml:"root,omitempty"`
}

type declarationView struct {
	Attributes map[string]string `json:"attributes" yaml:"attributes"`
}

// elementView keeps a nil content out of the output so self-closing
// elements can be told apart from empty ones.
type elementView struct {
	Name       string            `json:"name" yaml:"name"`
	Attributes map[string]string `json:"attributes" yaml:"attributes"`
	Children   []*elementView    `json:"children" yaml:"children"`
	Content    *string           `json:"content,omitempty" yaml:"content,omitempty"`
}

func newDocumentView(doc *ast.Document) *documentView {
	v := &documentView{}
	if doc.Declaration != nil {
		v.Declaration = &declarationView{Attributes: nonNil(doc.Declaration.Attributes)}
	}
	if doc.Root != nil {
		v.Root = newElementView(doc.Root)
	}
	return v
}

func newElementView(e *ast.Element) *elementView {
	v := &elementView{
		Name:       e.Name,
		Attributes: nonNil(e.Attributes),
		Children:   make([]*elementView, 0, len(e.Children)),
		Content:    e.Content,
	}
	for _, c := range e.Children {
		v.Children = append(v.Children, newElementView(c))
	}
	return v
}

func nonNil(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func writeDocument(w io.Writer, doc *ast.Document, cfg Config) error {
	switch cfg.Output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", strings.Repeat(" ", cfg.Indent))
		return enc.Encode(newDocumentView(doc))
	case outputYAML:
		enc := yaml.NewEncoder(w)
		if cfg.Indent >= 2 {
			enc.SetIndent(cfg.Indent)
		}
		if err := enc.Encode(newDocumentView(doc)); err != nil {
			return err
		}
		return enc.Close()
	case outputXML:
		if err := tagtree.Format(w, doc, tagtree.Indent(cfg.Indent)); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	default:
		return fmt.Errorf("unknown output format %q", cfg.Output)
	}
}
