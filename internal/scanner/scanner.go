package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// EOF is returned by Peek and At past the end of the input.
const EOF rune = -1

// Scanner holds a cursor over markup source. It knows nothing about the
// tree being built; every method stops at the end of the input.
type Scanner struct {
	input string
	pos   int // current byte offset into input
}

// New creates and returns a new Scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{input: input}
}

// Offset returns the byte offset of the cursor.
func (s *Scanner) Offset() int { return s.pos }

// EOF reports whether the whole input has been consumed.
func (s *Scanner) EOF() bool { return s.pos >= len(s.input) }

// Rest returns the unconsumed input.
func (s *Scanner) Rest() string { return s.input[s.pos:] }

// Peek returns the rune under the cursor without consuming it.
func (s *Scanner) Peek() rune {
	return s.At(0)
}

// At returns the rune offset runes ahead of the cursor without consuming
// anything.
func (s *Scanner) At(offset int) rune {
	i := s.pos
	for ; offset > 0 && i < len(s.input); offset-- {
		_, size := utf8.DecodeRuneInString(s.input[i:])
		i += size
	}
	if i >= len(s.input) {
		return EOF
	}
	r, _ := utf8.DecodeRuneInString(s.input[i:])
	return r
}

// HasPrefix reports whether the unconsumed input starts with prefix.
func (s *Scanner) HasPrefix(prefix string) bool {
	return strings.HasPrefix(s.input[s.pos:], prefix)
}

// Advance consumes n bytes, clamped to the end of the input.
func (s *Scanner) Advance(n int) {
	s.pos = min(s.pos+n, len(s.input))
}

// SkipWhitespace consumes a run of spaces, tabs, newlines and carriage returns.
func (s *Scanner) SkipWhitespace() {
	for s.pos < len(s.input) && IsWhitespace(s.input[s.pos]) {
		s.pos++
	}
}

// ReadUntil consumes and returns input up to the first position where stop
// reports true for the remaining input, or up to the end of the input.
func (s *Scanner) ReadUntil(stop func(rest string) bool) string {
	start := s.pos
	for s.pos < len(s.input) && !stop(s.input[s.pos:]) {
		_, size := utf8.DecodeRuneInString(s.input[s.pos:])
		s.pos += size
	}
	return s.input[start:s.pos]
}

// ReadName skips leading whitespace and consumes a run of name characters.
// It returns an empty string when no name character is present.
func (s *Scanner) ReadName() string {
	s.SkipWhitespace()
	start := s.pos
	for s.pos < len(s.input) {
		r, size := utf8.DecodeRuneInString(s.input[s.pos:])
		if !IsNameChar(r) {
			break
		}
		s.pos += size
	}
	return s.input[start:s.pos]
}

// ReadQuoted consumes a value delimited by matching single or double quotes
// and returns the text between them. No escape processing is done. It
// returns false without consuming anything if the cursor is not on a quote,
// and false with the cursor at the end of input if the closing quote is
// missing.
func (s *Scanner) ReadQuoted() (string, bool) {
	if s.pos >= len(s.input) {
		return "", false
	}
	q := s.input[s.pos]
	if q != '"' && q != '\'' {
		return "", false
	}
	end := strings.IndexByte(s.input[s.pos+1:], q)
	if end < 0 {
		s.pos = len(s.input)
		return "", false
	}
	value := s.input[s.pos+1 : s.pos+1+end]
	s.pos += end + 2
	return value, true
}

// SkipComment consumes a comment starting at the cursor, including any
// newlines inside it. It returns false with the cursor at the end of input
// if the comment is not terminated.
func (s *Scanner) SkipComment() bool {
	if !s.HasPrefix("<!--") {
		return false
	}
	end := strings.Index(s.input[s.pos+4:], "-->")
	if end < 0 {
		s.pos = len(s.input)
		return false
	}
	s.pos += 4 + end + 3
	return true
}

// Position converts a byte offset into a 1-based line and column. Columns
// count runes.
func (s *Scanner) Position(offset int) (line, column int) {
	offset = min(max(offset, 0), len(s.input))
	before := s.input[:offset]
	line = strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	column = utf8.RuneCountInString(before[lineStart:]) + 1
	return line, column
}

// IsWhitespace reports whether b is one of the four whitespace bytes the
// markup recognizes.
func IsWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// IsNameChar reports whether r may appear in an element or attribute name.
func IsNameChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == ':' || r == '.' || r == '-' || r == '_'
}
