package parser

import "fmt"

// ParseError describes why a line was rejected. Rejected lines produce no
// transactions; the error only surfaces through diagnostics.
type ParseError struct {
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("column %d: %s", e.Column, e.Message)
}

func newParseError(tok Token, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Column:  tok.Column,
		Message: fmt.Sprintf(format, args...),
	}
}
