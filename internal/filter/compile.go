package filter

import (
	"fmt"
	"net/netip"

	"github.com/solatis/sieve/internal/bytesearch"
	"github.com/solatis/sieve/internal/rangeset"
)

/*
 * Compiler: lowers a parsed AST into an executable Filter.
 *
 * Depth-first structural lowering. Field references become fixed slot
 * indices. Membership sets become merged range sets (integers, and IP
 * addresses with CIDR prefixes expanded to their address ranges) or
 * hashed lookups (byte strings). Substring needles are preprocessed
 * into searchers; regex matchers were compiled at parse time and carry
 * over. Logical nodes stay as-is, short-circuiting is decided at
 * execution time.
 *
 * Compilation cannot fail: the parser enforced every legality rule, and
 * Ast values only come out of Parse.
 */

type nodeKind int

const (
	nodeAnd nodeKind = iota
	nodeOr
	nodeXor
	nodeNot
	nodeCompare
)

// compiledNode is one node of the executable tree. nodeNot stores its
// operand in children[0].
type compiledNode struct {
	kind     nodeKind
	children []compiledNode
	cmp      *compiledComparison
}

// compiledComparison is a comparison leaf with its evaluator state
// prebuilt. Only the fields for its operator are populated.
type compiledComparison struct {
	slot int
	name string
	op   ComparisonOp

	lit      Value                     // equality and ordering
	mask     int64                     // bitwise mask test
	searcher *bytesearch.Searcher      // contains
	matcher  Matcher                   // matches
	ints     *rangeset.Set[int64]      // in, Int fields
	addrs    *rangeset.Set[netip.Addr] // in, IP fields
	strs     map[string]struct{}       // in, Bytes fields
}

// Filter is the compiled, executable form of a filter expression.
// Filters are immutable and safe to share: any number of goroutines may
// execute one concurrently, each against its own ExecutionContext.
type Filter struct {
	scheme *Scheme
	root   compiledNode
}

// Compile lowers the AST into an executable Filter bound to the same
// scheme.
func (a *Ast) Compile() *Filter {
	return &Filter{scheme: a.scheme, root: compileExpr(a.root)}
}

// Scheme returns the scheme the filter was compiled against.
func (f *Filter) Scheme() *Scheme { return f.scheme }

func compileExpr(e Expr) compiledNode {
	switch e := e.(type) {
	case *CombinedExpr:
		var kind nodeKind
		switch e.Op {
		case CombineAnd:
			kind = nodeAnd
		case CombineOr:
			kind = nodeOr
		default:
			kind = nodeXor
		}
		children := make([]compiledNode, len(e.Items))
		for i, item := range e.Items {
			children[i] = compileExpr(item)
		}
		return compiledNode{kind: kind, children: children}
	case *NotExpr:
		return compiledNode{kind: nodeNot, children: []compiledNode{compileExpr(e.Inner)}}
	case *ComparisonExpr:
		return compiledNode{kind: nodeCompare, cmp: compileComparison(e)}
	default:
		// The Expr set is closed; Parse produces nothing else.
		panic(fmt.Sprintf("filter: unknown expression node %T", e))
	}
}

func compileComparison(e *ComparisonExpr) *compiledComparison {
	c := &compiledComparison{slot: e.Field.Slot, name: e.Field.Name, op: e.Op}
	switch rhs := e.Rhs.(type) {
	case *RhsScalar:
		switch e.Op {
		case OpContains:
			c.searcher = bytesearch.New([]byte(rhs.Value.(BytesValue)))
		case OpBitAnd:
			c.mask = int64(rhs.Value.(IntValue))
		default:
			c.lit = rhs.Value
		}
	case *RhsRegex:
		c.matcher = rhs.matcher
	case *RhsIntSet:
		set := rangeset.Ints()
		for _, m := range rhs.Members {
			set.Insert(m.Lo, m.Hi)
		}
		c.ints = set
	case *RhsIPSet:
		set := rangeset.Addrs()
		for _, m := range rhs.Members {
			switch {
			case m.IsPrefix:
				lo, hi := prefixRange(m.Prefix)
				set.Insert(lo, hi)
			case m.IsRange:
				set.Insert(m.Lo, m.Hi)
			default:
				set.Add(m.Addr)
			}
		}
		c.addrs = set
	case *RhsBytesSet:
		c.strs = make(map[string]struct{}, len(rhs.Members))
		for _, m := range rhs.Members {
			c.strs[string(m)] = struct{}{}
		}
	}
	return c
}

// prefixRange expands a CIDR prefix to its first and last covered
// addresses.
func prefixRange(p netip.Prefix) (lo, hi netip.Addr) {
	p = p.Masked()
	lo = p.Addr()
	if lo.Is4() {
		a := lo.As4()
		for i := p.Bits(); i < 32; i++ {
			a[i/8] |= 1 << (7 - i%8)
		}
		return lo, netip.AddrFrom4(a)
	}
	a := lo.As16()
	for i := p.Bits(); i < 128; i++ {
		a[i/8] |= 1 << (7 - i%8)
	}
	return lo, netip.AddrFrom16(a)
}
