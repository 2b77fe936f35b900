package mathcore

import (
	"fmt"
	"html"
	"strconv"
)

// ErrKind tags the taxonomy of conversion errors, grouped by the part
// of the grammar that raises them: structural, lexical-in-context,
// environment, positional, script, text, numeric, macro, resource,
// internal.
type ErrKind uint8

const (
	// Structural.
	ErrUnclosedGroup ErrKind = iota
	ErrUnmatchedClose
	ErrExpectedArgumentGotClose
	ErrExpectedArgumentGotEOI
	ErrExpectedDelimiter

	// Lexical-in-context.
	ErrDisallowedChar
	ErrUnknownCommand
	ErrUnknownEnvironment
	ErrUnknownColor

	// Environment.
	ErrMismatchedEnvironment

	// Positional.
	ErrCannotBeUsedHere

	// Script.
	ErrBoundFollowedByBound
	ErrDuplicateSubOrSup

	// Text.
	ErrExpectedText
	ErrNotValidInTextMode

	// Numeric/spec.
	ErrExpectedLength
	ErrExpectedNumber
	ErrExpectedColSpec
	ErrExpectedRelation

	// Macro.
	ErrInvalidMacroName
	ErrInvalidParameterNumber
	ErrMacroParameterOutsideCustomCommand
	ErrExpectedParamNumberGotEOI

	// Resource.
	ErrHardLimitExceeded

	// Internal: reserved for assertion-like conditions that should not
	// occur in correctly-written code.
	ErrInternal
)

func (k ErrKind) String() string {
	switch k {
	case ErrUnclosedGroup:
		return "UnclosedGroup"
	case ErrUnmatchedClose:
		return "UnmatchedClose"
	case ErrExpectedArgumentGotClose:
		return "ExpectedArgumentGotClose"
	case ErrExpectedArgumentGotEOI:
		return "ExpectedArgumentGotEOI"
	case ErrExpectedDelimiter:
		return "ExpectedDelimiter"
	case ErrDisallowedChar:
		return "DisallowedChar"
	case ErrUnknownCommand:
		return "UnknownCommand"
	case ErrUnknownEnvironment:
		return "UnknownEnvironment"
	case ErrUnknownColor:
		return "UnknownColor"
	case ErrMismatchedEnvironment:
		return "MismatchedEnvironment"
	case ErrCannotBeUsedHere:
		return "CannotBeUsedHere"
	case ErrBoundFollowedByBound:
		return "BoundFollowedByBound"
	case ErrDuplicateSubOrSup:
		return "DuplicateSubOrSup"
	case ErrExpectedText:
		return "ExpectedText"
	case ErrNotValidInTextMode:
		return "NotValidInTextMode"
	case ErrExpectedLength:
		return "ExpectedLength"
	case ErrExpectedNumber:
		return "ExpectedNumber"
	case ErrExpectedColSpec:
		return "ExpectedColSpec"
	case ErrExpectedRelation:
		return "ExpectedRelation"
	case ErrInvalidMacroName:
		return "InvalidMacroName"
	case ErrInvalidParameterNumber:
		return "InvalidParameterNumber"
	case ErrMacroParameterOutsideCustomCommand:
		return "MacroParameterOutsideCustomCommand"
	case ErrExpectedParamNumberGotEOI:
		return "ExpectedParamNumberGotEOI"
	case ErrHardLimitExceeded:
		return "HardLimitExceeded"
	case ErrInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Span is a half-open byte range [Start, End) into the source string.
// Both ends always lie on UTF-8 codepoint boundaries. Callers crossing
// into a UTF-16 or other code-unit host must translate these offsets
// themselves.
type Span struct {
	Start, End int
}

// Error is the public error type every conversion entry point returns
// on failure: a kind from the taxonomy plus the byte span of the
// offending token (not of the enclosing construct).
type Error struct {
	Kind ErrKind
	Span Span
	// What/Where/Expected/Got carry the taxonomy's case-specific
	// payloads (CannotBeUsedHere{what,where}, MismatchedEnvironment{...}).
	What     string
	Where    string
	Expected string
	Got      string
}

func newError(kind ErrKind, span Span) *Error {
	return &Error{Kind: kind, Span: span}
}

func (e *Error) withWhat(what string) *Error {
	e.What = what
	return e
}

func (e *Error) withWhere(where string) *Error {
	e.Where = where
	return e
}

func (e *Error) withExpected(expected string) *Error {
	e.Expected = expected
	return e
}

func (e *Error) withGot(got string) *Error {
	e.Got = got
	return e
}

// Error implements the standard error interface with a one-line text
// message.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrCannotBeUsedHere:
		return fmt.Sprintf("%s cannot be used here (%s) at byte %d", e.What, e.Where, e.Span.Start)
	case ErrMismatchedEnvironment:
		return fmt.Sprintf("mismatched environment: expected \\end{%s}, got \\end{%s} at byte %d", e.Expected, e.Got, e.Span.Start)
	case ErrUnknownCommand:
		return fmt.Sprintf("unknown command \\%s at byte %d", e.What, e.Span.Start)
	case ErrUnknownEnvironment:
		return fmt.Sprintf("unknown environment %q at byte %d", e.What, e.Span.Start)
	case ErrUnknownColor:
		return fmt.Sprintf("unknown color %q at byte %d", e.What, e.Span.Start)
	case ErrDisallowedChar:
		return fmt.Sprintf("disallowed character %q at byte %d", e.What, e.Span.Start)
	case ErrExpectedDelimiter:
		return fmt.Sprintf("expected a delimiter (%s) at byte %d", e.Where, e.Span.Start)
	case ErrExpectedText:
		return fmt.Sprintf("expected text (%s) at byte %d", e.Where, e.Span.Start)
	default:
		return fmt.Sprintf("%s at byte %d", k2msg(e.Kind), e.Span.Start)
	}
}

func k2msg(k ErrKind) string {
	switch k {
	case ErrUnclosedGroup:
		return "unclosed group"
	case ErrUnmatchedClose:
		return "unmatched closing token"
	case ErrExpectedArgumentGotClose:
		return "expected an argument, got a closing token"
	case ErrExpectedArgumentGotEOI:
		return "expected an argument, got end of input"
	case ErrNotValidInTextMode:
		return "not valid in text mode"
	case ErrBoundFollowedByBound:
		return "a subscript/superscript/prime cannot be followed by another bound"
	case ErrDuplicateSubOrSup:
		return "duplicate subscript or superscript"
	case ErrExpectedLength:
		return "expected a length specification"
	case ErrExpectedNumber:
		return "expected a number"
	case ErrExpectedColSpec:
		return "expected a column specification"
	case ErrExpectedRelation:
		return "expected a relation after \\not"
	case ErrInvalidMacroName:
		return "invalid macro name"
	case ErrInvalidParameterNumber:
		return "invalid parameter number"
	case ErrMacroParameterOutsideCustomCommand:
		return "macro parameter used outside a custom command body"
	case ErrExpectedParamNumberGotEOI:
		return "expected a parameter number, got end of input"
	case ErrHardLimitExceeded:
		return "hard limit on parser work exceeded"
	case ErrInternal:
		return "internal error"
	default:
		return k.String()
	}
}

// ToHTML renders the error as an HTML snippet: the source wrapped in
// <code>, with a title= tooltip carrying the message and the byte
// offset, tagged <p> for Block display or <span> for Inline, with an
// overridable CSS class.
func (e *Error) ToHTML(source string, display Display, class string) string {
	if class == "" {
		class = "math-core-error"
	}
	tag := "span"
	if display == DisplayBlock {
		tag = "p"
	}
	title := fmt.Sprintf("%s (byte offset %d)", e.Error(), e.Span.Start)
	return fmt.Sprintf(
		`<%s class=%q><code title=%q>%s</code></%s>`,
		tag, class, title, html.EscapeString(source), tag,
	)
}

func spanOf(start, end int) Span { return Span{Start: start, End: end} }

// quoteRune renders a rune for inclusion in an error message the same
// way strconv.QuoteRune would, used by DisallowedChar.
func quoteRune(r rune) string {
	return strconv.QuoteRune(r)
}
