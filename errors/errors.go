package errors

import "fmt"

// ParseError represents a single error that occurred during parsing.
// It includes the position of the error.
type ParseError struct {
	Message string
	Line    int
	Column  int
	Offset  int // byte offset into the input
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// ParseErrors is a slice of ParseError that implements the error interface.
// The parser stops at the first problem, so in practice it holds one entry.
type ParseErrors []ParseError

func (p ParseErrors) Error() string {
	if len(p) == 0 {
		return ""
	}
	return fmt.Sprintf("tagtree: parsing error at line %d, column %d: %s", p[0].Line, p[0].Column, p[0].Message)
}
