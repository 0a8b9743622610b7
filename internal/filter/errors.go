package filter

import (
	"errors"
	"fmt"
)

// Sentinel errors for scheme construction and value assembly.
var (
	// ErrUnknownType indicates an unrecognized type name.
	ErrUnknownType = errors.New("unknown type name")

	// ErrInvalidFieldName indicates a field name that is not a dotted
	// identifier path.
	ErrInvalidFieldName = errors.New("invalid field name")

	// ErrElementType indicates an array or map element whose type
	// disagrees with the container's element type.
	ErrElementType = errors.New("element type mismatch")
)

// LexError reports a malformed token. Pos is the byte offset into the
// source where the bad token starts.
type LexError struct {
	Msg string
	Pos int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at offset %d: %s", e.Pos, e.Msg)
}

// ParseError reports a failed parse. Pos and Len identify the offending
// span in the source; Len is at least 1. Err, when non-nil, carries the
// underlying condition (a LexError or UnknownFieldError) for errors.As.
type ParseError struct {
	Msg string
	Pos int
	Len int
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnknownFieldError reports a reference to a field the scheme does not
// declare.
type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Name)
}

// FieldRedefinitionError reports a duplicate field name during scheme
// construction.
type FieldRedefinitionError struct {
	Name string
}

func (e *FieldRedefinitionError) Error() string {
	return fmt.Sprintf("field %q is already defined", e.Name)
}

// FieldValueTypeMismatchError reports an attempt to store a value whose
// type disagrees with the field's declared type. The field's slot is
// left unchanged.
type FieldValueTypeMismatchError struct {
	Field string
	Want  Type
	Got   Type
}

func (e *FieldValueTypeMismatchError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("field %q expects %s, got no value", e.Field, e.Want)
	}
	return fmt.Sprintf("field %q expects %s, got %s", e.Field, e.Want, e.Got)
}

// SchemeMismatchError reports executing a filter against an execution
// context bound to a different scheme instance. Schemes compare by
// identity, not contents.
type SchemeMismatchError struct{}

func (e *SchemeMismatchError) Error() string {
	return "filter and execution context are bound to different schemes"
}

// MissingValueError reports that execution read a field no value was
// set for.
type MissingValueError struct {
	Field string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("no value set for field %q", e.Field)
}
