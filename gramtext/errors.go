package gramtext

import (
	"fmt"

	"github.com/mitchellh/colorstring"
)

// ParseError reports a graph-string or grammar-file syntax problem with
// enough context to point an author at the exact spot.
type ParseError struct {
	Line     int
	Column   int
	Fragment string
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gramtext: %s (line %d, column %d): %q", e.Message, e.Line, e.Column, e.Fragment)
}

// Pretty renders a terminal-colorized, human-facing rendition of the
// error for a CLI's diagnostic output.
func (e *ParseError) Pretty() string {
	return colorstring.Color(fmt.Sprintf(
		"[red]parse error:[reset] %s\n  [yellow]line %d, column %d[reset]: %s",
		e.Message, e.Line, e.Column, e.Fragment,
	))
}

func newParseError(tok token, message string) *ParseError {
	return &ParseError{Line: tok.line, Column: tok.col, Fragment: tok.val, Message: message}
}

// mismatchError reports a node or edge restated with an incompatible tag.
type mismatchError struct {
	what   string // "vertex" or "edge"
	id     string
	oldTag *string
	newTag *string
}

func (e *mismatchError) Error() string {
	return fmt.Sprintf("gramtext: %s %q given tag %s, already had %s", e.what, e.id, tagString(e.newTag), tagString(e.oldTag))
}

func tagString(t *string) string {
	if t == nil {
		return "<none>"
	}
	return *t
}
