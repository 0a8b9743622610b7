package filter

import (
	"fmt"
	"strings"
)

/*
 * Scheme: the ordered field registry filters parse against.
 *
 * Declaration order assigns slot indices, which compiled filters and
 * execution contexts share for O(1) value lookup. Schemes compare by
 * identity: a filter compiled against one scheme refuses to execute
 * against contexts of another, even when the field lists are identical.
 * Build the scheme fully before parsing; it must not change afterwards.
 */

// FieldDef declares one field: a dotted name and its type.
type FieldDef struct {
	Name string
	Type Type
}

// Field is a scheme-resolved field reference as it appears in an AST:
// the declared name, its slot index and its type.
type Field struct {
	Name string
	Slot int
	Type Type
}

// Scheme is the set of fields a filter may reference, each with a fixed
// type. The zero value is an empty scheme ready for AddField.
type Scheme struct {
	fields  []FieldDef
	index   map[string]int
	regexes MatcherCompiler
}

// NewScheme builds a scheme from field definitions, keeping their order.
func NewScheme(fields ...FieldDef) (*Scheme, error) {
	s := &Scheme{}
	for _, f := range fields {
		if err := s.AddField(f.Name, f.Type); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddField appends a field declaration. It fails with
// FieldRedefinitionError when the name is already declared and with
// ErrInvalidFieldName when the name is not a dotted identifier path or
// collides with an expression keyword. Not safe to call concurrently
// with Parse.
func (s *Scheme) AddField(name string, t Type) error {
	if !validFieldName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidFieldName, name)
	}
	if _, dup := s.index[name]; dup {
		return &FieldRedefinitionError{Name: name}
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[name] = len(s.fields)
	s.fields = append(s.fields, FieldDef{Name: name, Type: t})
	return nil
}

// SetMatcherCompiler replaces the regex engine used to compile matches
// patterns. The default delegates to the standard library regexp
// package.
func (s *Scheme) SetMatcherCompiler(c MatcherCompiler) {
	s.regexes = c
}

// FieldCount returns the number of declared fields.
func (s *Scheme) FieldCount() int { return len(s.fields) }

// FieldType returns the declared type of the named field.
func (s *Scheme) FieldType(name string) (Type, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i].Type, true
}

// Fields returns the declared fields in slot order as a copy.
func (s *Scheme) Fields() []FieldDef {
	return append([]FieldDef(nil), s.fields...)
}

// fieldByName resolves a field reference to its slot and type.
func (s *Scheme) fieldByName(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return Field{Name: name, Slot: i, Type: s.fields[i].Type}, true
}

// fieldName returns the name of the field at the given slot.
func (s *Scheme) fieldName(slot int) string {
	return s.fields[slot].Name
}

func (s *Scheme) matcherCompiler() MatcherCompiler {
	if s.regexes == nil {
		return stdMatcherCompiler{}
	}
	return s.regexes
}

// validFieldName reports whether name is a dotted path of identifier
// segments. Each segment starts with a letter or underscore, continues
// with letters, digits or underscores, and must not equal an expression
// keyword such as "and" or "in".
func validFieldName(name string) bool {
	if name == "" {
		return false
	}
	for _, seg := range strings.Split(name, ".") {
		if !validIdent(seg) || isKeyword(seg) {
			return false
		}
	}
	return true
}

func validIdent(seg string) bool {
	for i, r := range seg {
		switch {
		case r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z'):
		case i > 0 && '0' <= r && r <= '9':
		default:
			return false
		}
	}
	return seg != ""
}
