package regexlib

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a compilation failure.
type ErrorKind string

const (
	// UnsupportedSymbol indicates a character outside the pattern alphabet.
	UnsupportedSymbol ErrorKind = "unsupported-symbol"
	// MalformedRegex indicates unbalanced parentheses or a missing operand.
	MalformedRegex ErrorKind = "malformed-regex"
	// EmptyPattern indicates the pattern has no symbols at all.
	EmptyPattern ErrorKind = "empty-pattern"
	// LimitExceeded indicates the pattern or its automaton is above the configured bound.
	LimitExceeded ErrorKind = "limit-exceeded"
)

// Kinds lists every error kind in a stable order.
var Kinds = []ErrorKind{UnsupportedSymbol, MalformedRegex, EmptyPattern, LimitExceeded}

// Error is returned by Compile. Offset is the byte offset in the pattern
// where the problem was detected, or -1 when it applies to the whole pattern.
type Error struct {
	Kind   ErrorKind
	Msg    string
	Offset int
	Symbol rune
}

func (e *Error) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Msg)
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// KindOf returns the kind of err, or "" when err did not come from Compile.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func malformed(off int, format string, args ...any) *Error {
	return &Error{Kind: MalformedRegex, Offset: off, Msg: fmt.Sprintf(format, args...)}
}

func unsupported(off int, r rune) *Error {
	msg := fmt.Sprintf("symbol %q is not alphanumeric or one of ()|*", r)
	if r == EndMarker {
		msg = fmt.Sprintf("symbol %q is reserved for the end marker", r)
	}
	return &Error{Kind: UnsupportedSymbol, Offset: off, Symbol: r, Msg: msg}
}
