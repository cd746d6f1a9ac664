package parser

import (
	"fmt"
	"strings"

	"github.com/KimNorgaard/go-tagtree/ast"
	"github.com/KimNorgaard/go-tagtree/errors"
	"github.com/KimNorgaard/go-tagtree/internal/scanner"
	"github.com/KimNorgaard/go-tagtree/internal/token"
)

const byteOrderMark = "\uFEFF"

// Config controls how strictly the parser treats its input.
type Config struct {
	// MaxDepth limits element nesting. Zero means no limit.
	MaxDepth int
	// StrictClose requires every closing tag to repeat the name of the
	// element it closes. When false the name is read and discarded.
	StrictClose bool
}

// Parser holds the state of the parser.
type Parser struct {
	s      *scanner.Scanner
	cfg    Config
	errors errors.ParseErrors
	depth  int
}

// New creates a new parser over input.
func New(input string, cfg Config) *Parser {
	return &Parser{s: scanner.New(input), cfg: cfg}
}

// Errors returns the errors encountered during parsing. The parser stops at
// the first error, so the slice holds at most one entry.
func (p *Parser) Errors() errors.ParseErrors {
	return p.errors
}

// Parse parses the input and returns the document. It returns nil if an
// error was recorded.
//
// Whitespace and comments before the root element are skipped. At most one
// declaration is accepted and only before the root. Anything after the
// root element is ignored.
func (p *Parser) Parse() *ast.Document {
	doc := &ast.Document{}
	if p.s.HasPrefix(byteOrderMark) {
		p.s.Advance(len(byteOrderMark))
	}

	for {
		p.s.SkipWhitespace()
		switch token.Classify(p.s.Rest()) {
		case token.EOF:
			return doc
		case token.Comment:
			if !p.skipComment() {
				return nil
			}
		case token.Declaration:
			if doc.Declaration != nil {
				p.errorf(p.s.Offset(), "unexpected second declaration")
				return nil
			}
			doc.Declaration = p.parseDeclaration()
			if doc.Declaration == nil {
				return nil
			}
		case token.OpenTag:
			doc.Root = p.parseElement()
			if doc.Root == nil {
				return nil
			}
			return doc
		case token.CloseTag:
			p.errorf(p.s.Offset(), "unexpected closing tag before root element")
			return nil
		default:
			p.errorf(p.s.Offset(), "unexpected text before root element")
			return nil
		}
	}
}

// The contract for all parse functions is that they are entered with the
// cursor on the first character of the construct and return with the
// cursor after it and after any whitespace that follows it. A nil or false
// result means an error has been recorded.

func (p *Parser) parseDeclaration() *ast.Declaration {
	start := p.s.Offset()
	p.s.Advance(len("<?"))
	p.s.ReadName() // the target, normally "xml", is not kept

	attrs, term, ok := p.parseAttributes(start)
	if !ok {
		return nil
	}
	if term != "?>" {
		p.errorf(p.s.Offset(), fmt.Sprintf("declaration must end with '?>', got %q", term))
		return nil
	}
	p.s.Advance(len(term))
	p.s.SkipWhitespace()
	return &ast.Declaration{Attributes: attrs}
}

func (p *Parser) parseElement() *ast.Element {
	start := p.s.Offset()

	p.depth++
	defer func() { p.depth-- }()
	if p.cfg.MaxDepth > 0 && p.depth > p.cfg.MaxDepth {
		p.errorf(start, fmt.Sprintf("maximum nesting depth of %d exceeded", p.cfg.MaxDepth))
		return nil
	}

	p.s.Advance(len("<"))
	name := p.s.ReadName()
	if name == "" {
		p.errorf(p.s.Offset(), "expected element name after '<', got "+describe(p.s.Peek()))
		return nil
	}

	attrs, term, ok := p.parseAttributes(start)
	if !ok {
		return nil
	}

	el := &ast.Element{Name: name, Attributes: attrs, Children: []*ast.Element{}}
	switch term {
	case "/>":
		p.s.Advance(len(term))
		p.s.SkipWhitespace()
		return el
	case ">":
		p.s.Advance(len(term))
		p.s.SkipWhitespace()
	default:
		p.errorf(p.s.Offset(), fmt.Sprintf("unexpected %q in tag <%s>", term, name))
		return nil
	}

	var content strings.Builder
	for {
		switch token.Classify(p.s.Rest()) {
		case token.EOF:
			p.errorf(start, fmt.Sprintf("element <%s> is not closed", name))
			return nil
		case token.Comment:
			if !p.skipComment() {
				return nil
			}
		case token.CloseTag:
			if !p.parseCloseTag(name) {
				return nil
			}
			text := content.String()
			el.Content = &text
			return el
		case token.Declaration:
			p.errorf(p.s.Offset(), fmt.Sprintf("unexpected declaration inside <%s>", name))
			return nil
		case token.OpenTag:
			child := p.parseElement()
			if child == nil {
				return nil
			}
			el.Children = append(el.Children, child)
		default:
			content.WriteString(p.s.ReadUntil(isMarkupStart))
		}
	}
}

// parseAttributes reads name=value pairs until a tag terminator and returns
// the terminator without consuming it. start is the offset of the tag,
// used to report unterminated tags.
func (p *Parser) parseAttributes(start int) (map[string]string, string, bool) {
	attrs := map[string]string{}
	for {
		p.s.SkipWhitespace()
		if p.s.EOF() {
			p.errorf(start, "unterminated tag")
			return nil, "", false
		}
		if term := terminator(p.s.Rest()); term != "" {
			return attrs, term, true
		}

		name := p.s.ReadName()
		if name == "" {
			p.errorf(p.s.Offset(), "unexpected "+describe(p.s.Peek())+" in tag")
			return nil, "", false
		}

		p.s.SkipWhitespace()
		if p.s.Peek() != '=' {
			p.errorf(p.s.Offset(), fmt.Sprintf("expected '=' after attribute %q, got %s", name, describe(p.s.Peek())))
			return nil, "", false
		}
		p.s.Advance(len("="))
		p.s.SkipWhitespace()

		value, ok := p.parseValue()
		if !ok {
			return nil, "", false
		}
		attrs[name] = value
	}
}

func (p *Parser) parseValue() (string, bool) {
	if r := p.s.Peek(); r == '"' || r == '\'' {
		start := p.s.Offset()
		value, ok := p.s.ReadQuoted()
		if !ok {
			p.errorf(start, "unterminated quoted attribute value")
			return "", false
		}
		return value, true
	}
	return p.s.ReadUntil(endsUnquotedValue), true
}

func (p *Parser) parseCloseTag(open string) bool {
	start := p.s.Offset()
	p.s.Advance(len("</"))
	name := p.s.ReadName()
	p.s.SkipWhitespace()

	if p.s.Peek() != '>' {
		if p.s.EOF() {
			p.errorf(start, "unterminated closing tag")
		} else {
			p.errorf(p.s.Offset(), fmt.Sprintf("expected '>' in closing tag, got %s", describe(p.s.Peek())))
		}
		return false
	}
	if p.cfg.StrictClose && name != open {
		p.errorf(start, fmt.Sprintf("closing tag </%s> does not match <%s>", name, open))
		return false
	}
	p.s.Advance(len(">"))
	p.s.SkipWhitespace()
	return true
}

func (p *Parser) skipComment() bool {
	start := p.s.Offset()
	if !p.s.SkipComment() {
		p.errorf(start, "unterminated comment")
		return false
	}
	p.s.SkipWhitespace()
	return true
}

func (p *Parser) errorf(offset int, msg string) {
	line, col := p.s.Position(offset)
	p.errors = append(p.errors, errors.ParseError{
		Message: msg,
		Line:    line,
		Column:  col,
		Offset:  offset,
	})
}

// terminator returns the tag terminator rest starts with, if any.
func terminator(rest string) string {
	switch {
	case strings.HasPrefix(rest, "?>"):
		return "?>"
	case strings.HasPrefix(rest, "/>"):
		return "/>"
	case strings.HasPrefix(rest, ">"):
		return ">"
	}
	return ""
}

func endsUnquotedValue(rest string) bool {
	return scanner.IsWhitespace(rest[0]) || terminator(rest) != ""
}

func isMarkupStart(rest string) bool {
	return rest[0] == '<'
}

func describe(r rune) string {
	if r == scanner.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", r)
}
