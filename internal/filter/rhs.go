package filter

import (
	"net/netip"
	"strconv"
	"strings"
)

/*
 * Right-hand sides of comparisons.
 *
 * Five literal shapes: a scalar, a regex source, and three membership
 * set forms specialized by scalar domain (integers with ranges, IP
 * addresses with CIDR prefixes and ranges, byte strings). The parser
 * guarantees the shape is legal for the operator and the field's type;
 * the compiler lowers sets into range sets or hashed lookups.
 */

// Rhs is the right-hand side literal of a comparison.
type Rhs interface {
	String() string
	isRhs()
}

// RhsScalar holds a single Bool, Int, Bytes or IP literal.
type RhsScalar struct {
	Value Value
}

func (r *RhsScalar) String() string { return r.Value.String() }
func (*RhsScalar) isRhs()           {}

// RhsRegex holds the source of a regex literal together with the
// matcher compiled from it at parse time.
type RhsRegex struct {
	Source  string
	matcher Matcher
}

func (r *RhsRegex) String() string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(r.Source); i++ {
		if r.Source[i] == '"' {
			sb.WriteString(`\"`)
		} else {
			sb.WriteByte(r.Source[i])
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func (*RhsRegex) isRhs() {}

// IntSetMember is one member of an integer membership set: a single
// value (Lo == Hi, IsRange false) or an inclusive range.
type IntSetMember struct {
	Lo, Hi  int64
	IsRange bool
}

// RhsIntSet is the membership set of an Int comparison, in source
// order.
type RhsIntSet struct {
	Members []IntSetMember
}

func (r *RhsIntSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range r.Members {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(m.Lo, 10))
		if m.IsRange {
			sb.WriteString("..")
			sb.WriteString(strconv.FormatInt(m.Hi, 10))
		}
	}
	sb.WriteByte('}')
	return sb.String()
}

func (*RhsIntSet) isRhs() {}

// IPSetMember is one member of an IP membership set: a single address,
// a CIDR prefix, or an inclusive address range within one family.
type IPSetMember struct {
	Addr     netip.Addr   // single address
	Prefix   netip.Prefix // when IsPrefix
	Lo, Hi   netip.Addr   // when IsRange
	IsPrefix bool
	IsRange  bool
}

// RhsIPSet is the membership set of an IP comparison, in source order.
type RhsIPSet struct {
	Members []IPSetMember
}

func (r *RhsIPSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range r.Members {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch {
		case m.IsPrefix:
			sb.WriteString(m.Prefix.String())
		case m.IsRange:
			sb.WriteString(m.Lo.String())
			sb.WriteString("..")
			sb.WriteString(m.Hi.String())
		default:
			sb.WriteString(m.Addr.String())
		}
	}
	sb.WriteByte('}')
	return sb.String()
}

func (*RhsIPSet) isRhs() {}

// RhsBytesSet is the membership set of a Bytes comparison, in source
// order.
type RhsBytesSet struct {
	Members [][]byte
}

func (r *RhsBytesSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range r.Members {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(escapeBytes(m))
	}
	sb.WriteByte('}')
	return sb.String()
}

func (*RhsBytesSet) isRhs() {}
