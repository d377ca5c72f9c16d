// Package tomlerr defines the error model returned by the parser: a typed
// Kind plus the byte span it occurred at, ported from
// original_source/src/error.rs's ErrorKind/Error pair.
package tomlerr

import (
	"fmt"
	"strconv"

	"github.com/tomlgo/tomlgo/internal/value"
)

// Kind discriminates the class of parse error. Field values live on Error
// itself rather than as enum payloads, since Go has no sum-type variant
// storage — this mirrors how the teacher's cue/scanner reports a message
// string alongside a position rather than a typed error enum, adapted here
// to keep the original's richer machine-readable Kind distinction.
type Kind int

const (
	UnexpectedEOF Kind = iota
	FileTooLarge
	InvalidCharInString
	InvalidEscape
	InvalidHexEscape
	InvalidEscapeValue
	Unexpected
	UnterminatedString
	InvalidNumber
	OutOfRange
	Wanted
	DuplicateTable
	DuplicateKey
	RedefineAsArray
	MultilineStringKey
	DottedKeyInvalidType
	UnquotedString
	MissingField
	Custom
)

func (k Kind) tag() string {
	switch k {
	case UnexpectedEOF:
		return "unexpected-eof"
	case FileTooLarge:
		return "file-too-large"
	case InvalidCharInString:
		return "invalid-char-in-string"
	case InvalidEscape:
		return "invalid-escape"
	case InvalidHexEscape:
		return "invalid-hex-escape"
	case InvalidEscapeValue:
		return "invalid-escape-value"
	case Unexpected:
		return "unexpected"
	case UnterminatedString:
		return "unterminated-string"
	case InvalidNumber:
		return "invalid-number"
	case OutOfRange:
		return "out-of-range"
	case Wanted:
		return "wanted"
	case DuplicateTable:
		return "duplicate-table"
	case DuplicateKey:
		return "duplicate-key"
	case RedefineAsArray:
		return "redefine-as-array"
	case MultilineStringKey:
		return "multiline-string-key"
	case DottedKeyInvalidType:
		return "dotted-key-invalid-type"
	case UnquotedString:
		return "unquoted-string"
	case MissingField:
		return "missing-field"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by the parser. Exactly one Kind
// applies per value; the fields below are populated according to which Kind
// is set, mirroring the payload each ErrorKind variant carried in the
// original enum.
type Error struct {
	Kind Kind
	Span value.Span

	// Char carries the offending rune for InvalidCharInString/InvalidEscape/
	// InvalidHexEscape/Unexpected.
	Char rune
	// CodePoint carries the rejected value for InvalidEscapeValue.
	CodePoint uint32
	// Name carries the field/type name for OutOfRange/MissingField, or the
	// duplicate key/table name for DuplicateKey/DuplicateTable.
	Name string
	// First carries the span of the original definition for
	// DuplicateKey/DuplicateTable/DottedKeyInvalidType.
	First value.Span
	// Expected/Found carry the two token descriptions for Wanted.
	Expected string
	Found    string
	// Message carries the text for Custom.
	Message string

	// Line/Col are 1-based and filled in lazily by Resolve; zero until then.
	Line int
	Col  int
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedEOF:
		return "unexpected eof encountered"
	case FileTooLarge:
		return "file is too large (maximum 512MiB)"
	case InvalidCharInString:
		return fmt.Sprintf("invalid character in string: `%c`", e.Char)
	case InvalidEscape:
		return fmt.Sprintf("invalid escape character in string: `%s`", escapeForDisplay(e.Char))
	case InvalidHexEscape:
		return fmt.Sprintf("invalid hex escape character in string: `%c`", e.Char)
	case InvalidEscapeValue:
		return fmt.Sprintf("invalid escape value: `%d`", e.CodePoint)
	case Unexpected:
		return fmt.Sprintf("unexpected character found: `%c`", e.Char)
	case UnterminatedString:
		return "unterminated string"
	case InvalidNumber:
		return "invalid number"
	case OutOfRange:
		return fmt.Sprintf("out of range of '%s'", e.Name)
	case Wanted:
		return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
	case DuplicateTable:
		return fmt.Sprintf("redefinition of table `%s`", e.Name)
	case DuplicateKey:
		return fmt.Sprintf("duplicate key: `%s`", e.Name)
	case RedefineAsArray:
		return "table redefined as array"
	case MultilineStringKey:
		return "multiline strings are not allowed for key"
	case DottedKeyInvalidType:
		return "dotted key attempted to extend non-table type"
	case UnquotedString:
		return "invalid TOML value, did you mean to use a quoted string?"
	case MissingField:
		return fmt.Sprintf("missing field `%s`", e.Name)
	case Custom:
		return e.Message
	default:
		return e.Kind.tag()
	}
}

func escapeForDisplay(r rune) string {
	if strconv.IsPrint(r) && r != ' ' {
		return string(r)
	}
	return strconv.QuoteRune(r)[1 : len(strconv.QuoteRune(r))-1]
}

// NewWanted, NewUnexpected and friends build an Error with its Kind-specific
// payload already populated; callers still need to set Span (e.g. via
// Parser.setError) before the Error is complete.

func NewWanted(expected, found string) Error { return Error{Kind: Wanted, Expected: expected, Found: found} }

func NewUnexpected(r rune) Error { return Error{Kind: Unexpected, Char: r} }

func NewInvalidCharInString(r rune) Error { return Error{Kind: InvalidCharInString, Char: r} }

func NewInvalidEscape(r rune) Error { return Error{Kind: InvalidEscape, Char: r} }

func NewInvalidHexEscape(r rune) Error { return Error{Kind: InvalidHexEscape, Char: r} }

func NewInvalidEscapeValue(v uint32) Error { return Error{Kind: InvalidEscapeValue, CodePoint: v} }

func NewDuplicateTable(name string, first value.Span) Error {
	return Error{Kind: DuplicateTable, Name: name, First: first}
}

func NewDuplicateKey(name string, first value.Span) Error {
	return Error{Kind: DuplicateKey, Name: name, First: first}
}

func NewDottedKeyInvalidType(first value.Span) Error {
	return Error{Kind: DottedKeyInvalidType, First: first}
}

func NewMissingField(name string) Error { return Error{Kind: MissingField, Name: name} }

func NewOutOfRange(name string) Error { return Error{Kind: OutOfRange, Name: name} }

func NewCustom(msg string) Error { return Error{Kind: Custom, Message: msg} }

func NewUnterminatedString() Error { return Error{Kind: UnterminatedString} }

func NewInvalidNumber() Error { return Error{Kind: InvalidNumber} }

func NewRedefineAsArray() Error { return Error{Kind: RedefineAsArray} }

func NewMultilineStringKey() Error { return Error{Kind: MultilineStringKey} }

func NewUnquotedString() Error { return Error{Kind: UnquotedString} }

func NewUnexpectedEOF() Error { return Error{Kind: UnexpectedEOF} }

func NewFileTooLarge() Error { return Error{Kind: FileTooLarge} }

// Resolve computes 1-based Line/Col for e.Span.Start by scanning src once.
// Grounded on original_source/src/parser.rs's to_linecol: a single linear
// scan performed lazily, only when a caller actually wants positional
// diagnostics, rather than maintained incrementally during the hot parse
// loop.
func (e *Error) Resolve(src []byte) {
	line, col := 1, 1
	limit := int(e.Span.Start)
	if limit > len(src) {
		limit = len(src)
	}
	for _, b := range src[:limit] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	e.Line = line
	e.Col = col
}
