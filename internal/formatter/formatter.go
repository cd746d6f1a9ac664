package formatter

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/KimNorgaard/go-tagtree/ast"
)

const (
	defaultIndent = 2
)

// Formatter writes an AST back out as markup.
//
// Indentation is only inserted where the parser discards it again: after a
// tag, inside elements whose content is empty. Elements carrying text keep
// their children inline so re-parsing yields the same content.
type Formatter struct {
	w      io.Writer
	indent string
	depth  int
}

// New returns a new formatter that writes to w. A nil indentSpaces selects
// the default indentation; zero produces compact output.
func New(w io.Writer, indentSpaces *int) *Formatter {
	spaces := defaultIndent
	if indentSpaces != nil {
		spaces = *indentSpaces
	}
	var indentStr string
	if spaces > 0 {
		indentStr = strings.Repeat(" ", spaces)
	}
	return &Formatter{w: w, indent: indentStr}
}

// Format writes the markup representation of node to the writer.
func (f *Formatter) Format(node ast.Node) error {
	switch n := node.(type) {
	case *ast.Document:
		return f.writeDocument(n)
	case *ast.Declaration:
		return f.writeDeclaration(n)
	case *ast.Element:
		return f.writeElement(n)
	default:
		return fmt.Errorf("tagtree: unsupported node type for formatting: %T", n)
	}
}

func (f *Formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *Formatter) writeIndent() error {
	if f.indent == "" {
		return nil
	}
	return f.write(strings.Repeat(f.indent, f.depth))
}

func (f *Formatter) newline() error {
	if f.indent == "" {
		return nil
	}
	if err := f.write("\n"); err != nil {
		return err
	}
	return f.writeIndent()
}

func (f *Formatter) writeDocument(d *ast.Document) error {
	if d.Declaration != nil {
		if err := f.writeDeclaration(d.Declaration); err != nil {
			return err
		}
		if d.Root != nil {
			if err := f.newline(); err != nil {
				return err
			}
		}
	}
	if d.Root != nil {
		return f.writeElement(d.Root)
	}
	return nil
}

func (f *Formatter) writeDeclaration(d *ast.Declaration) error {
	if err := f.write("<?xml"); err != nil {
		return err
	}
	if err := f.writeAttributes(d.Attributes); err != nil {
		return err
	}
	return f.write("?>")
}

func (f *Formatter) writeElement(e *ast.Element) error {
	if e.Name == "" {
		return fmt.Errorf("tagtree: element without a name")
	}
	if err := f.write("<" + e.Name); err != nil {
		return err
	}
	if err := f.writeAttributes(e.Attributes); err != nil {
		return err
	}
	if e.SelfClosing() && len(e.Children) == 0 {
		return f.write("/>")
	}
	if err := f.write(">" + e.Text()); err != nil {
		return err
	}

	indented := f.indent != "" && e.Text() == "" && len(e.Children) > 0
	if indented {
		f.depth++
	}
	for _, c := range e.Children {
		if indented {
			if err := f.newline(); err != nil {
				return err
			}
		}
		if err := f.writeElement(c); err != nil {
			return err
		}
	}
	if indented {
		f.depth--
		if err := f.newline(); err != nil {
			return err
		}
	}
	return f.write("</" + e.Name + ">")
}

func (f *Formatter) writeAttributes(attrs map[string]string) error {
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		v := attrs[k]
		if strings.ContainsRune(v, '"') && strings.ContainsRune(v, '\'') {
			return fmt.Errorf("tagtree: value of attribute %q contains both quote characters", k)
		}
		if err := f.write(" " + k + "=" + ast.QuoteAttr(v)); err != nil {
			return err
		}
	}
	return nil
}
