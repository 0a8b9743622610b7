package filter

import "strings"

/*
 * AST produced by the parser.
 *
 * Three node kinds: combining nodes (and/or/xor over two or more
 * children), negation, and comparison leaves. Parsing flattens chains
 * of one connective, so a && b && c is a single CombinedExpr with three
 * items. Every node is owned by its parent; nothing is shared and
 * nothing mutates after parsing.
 *
 * String renders the canonical form: symbolic operators, minimal
 * parentheses preserving structure, decimal integers, escaped string
 * literals. Reparsing the canonical form yields a structurally equal
 * tree.
 */

// Expr is one node of a parsed filter expression.
type Expr interface {
	String() string
	isExpr()
}

// CombiningOp joins the children of a CombinedExpr.
type CombiningOp int

const (
	CombineAnd CombiningOp = iota
	CombineOr
	CombineXor
)

func (op CombiningOp) String() string {
	switch op {
	case CombineAnd:
		return "&&"
	case CombineOr:
		return "||"
	case CombineXor:
		return "^^"
	default:
		return "?"
	}
}

// ComparisonOp is the operator of a comparison leaf.
type ComparisonOp int

const (
	OpEq ComparisonOp = iota
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpContains
	OpMatches
	OpIn
	OpBitAnd
)

func (op ComparisonOp) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpContains:
		return "contains"
	case OpMatches:
		return "matches"
	case OpIn:
		return "in"
	case OpBitAnd:
		return "&"
	default:
		return "?"
	}
}

// isOrdering reports whether op compares by order rather than identity
// or membership.
func (op ComparisonOp) isOrdering() bool {
	switch op {
	case OpLt, OpLe, OpGt, OpGe:
		return true
	default:
		return false
	}
}

// CombinedExpr joins two or more subexpressions with one logical
// connective.
type CombinedExpr struct {
	Op    CombiningOp
	Items []Expr
}

func (e *CombinedExpr) String() string {
	var sb strings.Builder
	for i, item := range e.Items {
		if i > 0 {
			sb.WriteByte(' ')
			sb.WriteString(e.Op.String())
			sb.WriteByte(' ')
		}
		// Nested combined children keep their parentheses so the
		// printed form reparses to the same structure.
		if _, nested := item.(*CombinedExpr); nested {
			sb.WriteByte('(')
			sb.WriteString(item.String())
			sb.WriteByte(')')
		} else {
			sb.WriteString(item.String())
		}
	}
	return sb.String()
}

func (*CombinedExpr) isExpr() {}

// NotExpr negates its inner expression.
type NotExpr struct {
	Inner Expr
}

func (e *NotExpr) String() string {
	if _, nested := e.Inner.(*CombinedExpr); nested {
		return "not (" + e.Inner.String() + ")"
	}
	return "not " + e.Inner.String()
}

func (*NotExpr) isExpr() {}

// ComparisonExpr is a leaf: one field, one operator, one literal.
type ComparisonExpr struct {
	Field Field
	Op    ComparisonOp
	Rhs   Rhs
}

func (e *ComparisonExpr) String() string {
	return e.Field.Name + " " + e.Op.String() + " " + e.Rhs.String()
}

func (*ComparisonExpr) isExpr() {}

// Ast is a parsed filter expression bound to the scheme it was parsed
// against. Compile it once and execute the compiled form many times.
type Ast struct {
	scheme *Scheme
	root   Expr
}

// Root returns the expression tree.
func (a *Ast) Root() Expr { return a.root }

// Scheme returns the scheme the expression was parsed against.
func (a *Ast) Scheme() *Scheme { return a.scheme }

// String renders the canonical source form of the expression.
func (a *Ast) String() string { return a.root.String() }
