package filter

import (
	"bytes"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

/*
 * Type system and runtime value model.
 *
 * Six value domains: Bool, Int, Bytes, IP, Array(T), Map(T). Types are
 * comparable Go values, so structural equality is plain ==, including
 * nested forms like Array(Array(Int)). Values are a closed tagged union
 * with exactly one variant per domain; the executor dispatches on the
 * variant with a fixed type switch and nothing else.
 *
 * Array and Map parameterize over a single element type. Maps carry
 * string keys and preserve insertion order so iteration and printing
 * stay deterministic.
 */

// Type identifies the shape of a field or literal value. Types compare
// with ==: ArrayOf and MapOf return equal Types for equal element types.
type Type interface {
	String() string
	isType()
}

type scalarType uint8

const (
	scalarBool scalarType = iota
	scalarInt
	scalarBytes
	scalarIP
)

// Scalar field types. Use ArrayOf and MapOf for the container types.
var (
	TypeBool  Type = scalarBool
	TypeInt   Type = scalarInt
	TypeBytes Type = scalarBytes
	TypeIP    Type = scalarIP
)

func (t scalarType) String() string {
	switch t {
	case scalarBool:
		return "Bool"
	case scalarInt:
		return "Int"
	case scalarBytes:
		return "Bytes"
	case scalarIP:
		return "IP"
	default:
		return "Unknown"
	}
}

func (scalarType) isType() {}

type arrayType struct {
	elem Type
}

func (t arrayType) String() string { return "Array(" + t.elem.String() + ")" }
func (arrayType) isType()          {}

type mapType struct {
	elem Type
}

func (t mapType) String() string { return "Map(" + t.elem.String() + ")" }
func (mapType) isType()          {}

// ArrayOf returns the type of homogeneous arrays with the given element
// type.
func ArrayOf(elem Type) Type { return arrayType{elem} }

// MapOf returns the type of string-keyed maps with the given element
// type.
func MapOf(elem Type) Type { return mapType{elem} }

// IsArray reports whether t is an Array type.
func IsArray(t Type) bool {
	_, ok := t.(arrayType)
	return ok
}

// IsMap reports whether t is a Map type.
func IsMap(t Type) bool {
	_, ok := t.(mapType)
	return ok
}

// ElemType returns the element type of an Array or Map type. The second
// result is false for scalar types.
func ElemType(t Type) (Type, bool) {
	switch t := t.(type) {
	case arrayType:
		return t.elem, true
	case mapType:
		return t.elem, true
	default:
		return nil, false
	}
}

// baseType strips Array and Map wrappers down to the underlying scalar
// type. Comparisons against container fields apply element-wise, so
// operator legality and literal typing are decided against the base.
func baseType(t Type) Type {
	for {
		elem, ok := ElemType(t)
		if !ok {
			return t
		}
		t = elem
	}
}

// ParseType parses a type name as written in configuration and storage:
// bool, int, bytes, ip, array(T) and map(T) with arbitrary nesting.
// Names are case-insensitive.
func ParseType(name string) (Type, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	switch s {
	case "bool":
		return TypeBool, nil
	case "int":
		return TypeInt, nil
	case "bytes":
		return TypeBytes, nil
	case "ip":
		return TypeIP, nil
	}
	if inner, ok := wrappedName(s, "array"); ok {
		elem, err := ParseType(inner)
		if err != nil {
			return nil, err
		}
		return ArrayOf(elem), nil
	}
	if inner, ok := wrappedName(s, "map"); ok {
		elem, err := ParseType(inner)
		if err != nil {
			return nil, err
		}
		return MapOf(elem), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// wrappedName extracts T from "prefix(T)".
func wrappedName(s, prefix string) (string, bool) {
	if strings.HasPrefix(s, prefix+"(") && strings.HasSuffix(s, ")") {
		return s[len(prefix)+1 : len(s)-1], true
	}
	return "", false
}

// Value is a typed runtime value. Implementations form a closed set:
// BoolValue, IntValue, BytesValue, IPValue, ArrayValue and *MapValue.
type Value interface {
	Type() Type
	String() string
	isValue()
}

// BoolValue is a boolean field value.
type BoolValue bool

func (v BoolValue) Type() Type { return TypeBool }
func (v BoolValue) String() string {
	if v {
		return "true"
	}
	return "false"
}
func (BoolValue) isValue() {}

// IntValue is a signed 64-bit integer field value.
type IntValue int64

func (v IntValue) Type() Type     { return TypeInt }
func (v IntValue) String() string { return strconv.FormatInt(int64(v), 10) }
func (IntValue) isValue()         {}

// BytesValue is a byte-string field value. Contents are arbitrary bytes,
// not necessarily valid UTF-8.
type BytesValue []byte

func (v BytesValue) Type() Type     { return TypeBytes }
func (v BytesValue) String() string { return escapeBytes(v) }
func (BytesValue) isValue()         {}

// IPValue is an IPv4 or IPv6 address field value.
type IPValue netip.Addr

func (v IPValue) Type() Type     { return TypeIP }
func (v IPValue) String() string { return netip.Addr(v).String() }
func (IPValue) isValue()         {}

// ArrayValue is a homogeneous sequence. Elem fixes the element type even
// when Items is empty.
type ArrayValue struct {
	Elem  Type
	Items []Value
}

func (v ArrayValue) Type() Type { return ArrayOf(v.Elem) }
func (v ArrayValue) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range v.Items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(item.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
func (ArrayValue) isValue() {}

// MapValue is a string-keyed collection of values sharing one element
// type. Entries iterate in insertion order. The zero value is not
// usable; construct with NewMap.
type MapValue struct {
	Elem    Type
	keys    []string
	entries map[string]Value
}

// NewMap returns an empty map value with the given element type.
func NewMap(elem Type) *MapValue {
	return &MapValue{Elem: elem, entries: make(map[string]Value)}
}

func (v *MapValue) Type() Type { return MapOf(v.Elem) }

func (v *MapValue) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range v.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(escapeBytes([]byte(k)))
		sb.WriteString(": ")
		sb.WriteString(v.entries[k].String())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (*MapValue) isValue() {}

// Set stores val under key, replacing any previous entry. Fails when val
// does not conform to the map's element type.
func (v *MapValue) Set(key string, val Value) error {
	if !valueMatches(v.Elem, val) {
		return fmt.Errorf("%w: map element %q is %s, want %s",
			ErrElementType, key, val.Type(), v.Elem)
	}
	if _, exists := v.entries[key]; !exists {
		v.keys = append(v.keys, key)
	}
	v.entries[key] = val
	return nil
}

// Get returns the value stored under key.
func (v *MapValue) Get(key string) (Value, bool) {
	val, ok := v.entries[key]
	return val, ok
}

// Len returns the number of entries.
func (v *MapValue) Len() int { return len(v.keys) }

// Keys returns the keys in insertion order. The slice is shared with the
// map and must not be modified.
func (v *MapValue) Keys() []string { return v.keys }

// Values returns the values in insertion order.
func (v *MapValue) Values() []Value {
	out := make([]Value, len(v.keys))
	for i, k := range v.keys {
		out[i] = v.entries[k]
	}
	return out
}

// valueMatches reports whether v conforms to t, descending into array
// and map elements. A conforming container matches both its declared
// element type and every element recursively.
func valueMatches(t Type, v Value) bool {
	switch t := t.(type) {
	case arrayType:
		av, ok := v.(ArrayValue)
		if !ok || av.Elem != t.elem {
			return false
		}
		for _, item := range av.Items {
			if !valueMatches(t.elem, item) {
				return false
			}
		}
		return true
	case mapType:
		mv, ok := v.(*MapValue)
		if !ok || mv.Elem != t.elem {
			return false
		}
		for _, item := range mv.entries {
			if !valueMatches(t.elem, item) {
				return false
			}
		}
		return true
	default:
		return v.Type() == t
	}
}

// valueEqual reports deep equality: byte-exact for Bytes, bit-exact for
// IP, exact for Bool and Int, element-wise for containers.
func valueEqual(a, b Value) bool {
	switch av := a.(type) {
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av == bv
	case IntValue:
		bv, ok := b.(IntValue)
		return ok && av == bv
	case BytesValue:
		bv, ok := b.(BytesValue)
		return ok && bytes.Equal(av, bv)
	case IPValue:
		bv, ok := b.(IPValue)
		return ok && netip.Addr(av) == netip.Addr(bv)
	case ArrayValue:
		bv, ok := b.(ArrayValue)
		if !ok || av.Elem != bv.Elem || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !valueEqual(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case *MapValue:
		bv, ok := b.(*MapValue)
		if !ok || av.Elem != bv.Elem || av.Len() != bv.Len() {
			return false
		}
		for k, x := range av.entries {
			y, ok := bv.entries[k]
			if !ok || !valueEqual(x, y) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// escapeBytes renders b as a double-quoted literal. Quotes, backslashes
// and common control characters get two-character escapes; other
// non-printable bytes become \xHH. The output re-lexes to the same
// bytes.
func escapeBytes(b []byte) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range b {
		switch {
		case c == '"':
			sb.WriteString(`\"`)
		case c == '\\':
			sb.WriteString(`\\`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c < 0x20 || c >= 0x7f:
			fmt.Fprintf(&sb, `\x%02x`, c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
