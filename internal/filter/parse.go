package filter

import (
	"errors"
	"fmt"
)

/*
 * Recursive-descent parser with one token of lookahead.
 *
 * Precedence, loosest first: or < xor < and < not < comparison.
 * Adjacent terms with no connective conjoin implicitly, so
 * "a == 1 b == 2" parses like "a == 1 && b == 2". Chains of one
 * connective flatten into a single combined node; parentheses preserve
 * nesting.
 *
 * The parser resolves every field against the scheme and enforces
 * operator legality per field type:
 *
 *   Bool:      == !=
 *   Int:       == != < <= > >= in &
 *   Bytes:     == != < <= > >= contains matches in
 *   IP:        == != < <= > >= in
 *   Array(T):  the operators of T except ordering, element-wise
 *   Map(T):    the operators of T except ordering, element-wise
 *
 * Element-wise lifting recurses through nesting: a comparison against
 * Array(Array(Int)) literals is typed against Int. Ordering on Bool,
 * Array and Map is rejected here so execution never sees an
 * incomparable pair.
 *
 * Filter source is attacker-controlled, so input length, nesting depth
 * and set size are all bounded; exceeding a bound is an ordinary parse
 * error, never a panic.
 */

// Resource limits applied to filter source.
const (
	// MaxExpressionLength caps filter source length in bytes.
	MaxExpressionLength = 8 * 1024

	// MaxExpressionDepth caps nesting of parentheses and negations.
	MaxExpressionDepth = 32

	// MaxSetMembers caps the member count of one membership set.
	MaxSetMembers = 1024
)

type parser struct {
	scheme *Scheme
	lex    *lexer
	tok    token
	depth  int
}

// Parse builds an AST from filter source, resolving and type-checking
// every field reference against the scheme. All failures return a
// *ParseError; lex-level failures and unknown fields are wrapped inside
// it and reachable with errors.As.
func (s *Scheme) Parse(src string) (*Ast, error) {
	if len(src) > MaxExpressionLength {
		return nil, &ParseError{
			Msg: fmt.Sprintf("expression longer than %d bytes", MaxExpressionLength),
			Pos: MaxExpressionLength,
			Len: 1,
		}
	}

	p := &parser{scheme: s, lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.kind == tokEOF {
		return nil, p.errorf(p.tok, nil, "empty expression")
	}
	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errorf(p.tok, nil, "unexpected %s", p.tok.describe())
	}
	return &Ast{scheme: s, root: root}, nil
}

// advance pulls the next token, converting lex failures into parse
// errors that wrap the original LexError.
func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		var lexErr *LexError
		if errors.As(err, &lexErr) {
			return &ParseError{Msg: lexErr.Msg, Pos: lexErr.Pos, Len: 1, Err: lexErr}
		}
		return err
	}
	p.tok = tok
	return nil
}

// errorf builds a ParseError spanning tok, wrapping cause when non-nil.
func (p *parser) errorf(tok token, cause error, format string, args ...any) error {
	length := tok.end - tok.pos
	if length < 1 {
		length = 1
	}
	return &ParseError{
		Msg: fmt.Sprintf(format, args...),
		Pos: tok.pos,
		Len: length,
		Err: cause,
	}
}

func (p *parser) parseOr() (Expr, error) {
	first, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	items := []Expr{first}
	for p.tok.kind == tokOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	if len(items) == 1 {
		return items[0], nil
	}
	return &CombinedExpr{Op: CombineOr, Items: items}, nil
}

func (p *parser) parseXor() (Expr, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	items := []Expr{first}
	for p.tok.kind == tokXor {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	if len(items) == 1 {
		return items[0], nil
	}
	return &CombinedExpr{Op: CombineXor, Items: items}, nil
}

func (p *parser) parseAnd() (Expr, error) {
	first, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	items := []Expr{first}
	for {
		switch {
		case p.tok.kind == tokAnd:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case startsUnary(p.tok.kind):
			// implicit conjunction: "a == 1 b == 2"
		default:
			if len(items) == 1 {
				return items[0], nil
			}
			return &CombinedExpr{Op: CombineAnd, Items: items}, nil
		}
		next, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
}

func startsUnary(k tokenKind) bool {
	switch k {
	case tokNot, tokLParen, tokField:
		return true
	default:
		return false
	}
}

func (p *parser) parseUnary() (Expr, error) {
	if p.depth >= MaxExpressionDepth {
		return nil, p.errorf(p.tok, nil, "expression nests deeper than %d levels", MaxExpressionDepth)
	}
	p.depth++
	defer func() { p.depth-- }()

	switch p.tok.kind {
	case tokNot:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &NotExpr{Inner: inner}, nil
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, p.errorf(p.tok, nil, `expected ")", found %s`, p.tok.describe())
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil
	case tokField:
		return p.parseComparison()
	default:
		return nil, p.errorf(p.tok, nil, "expected a comparison, found %s", p.tok.describe())
	}
}

func (p *parser) parseComparison() (Expr, error) {
	fieldTok := p.tok
	field, ok := p.scheme.fieldByName(fieldTok.text)
	if !ok {
		cause := &UnknownFieldError{Name: fieldTok.text}
		return nil, p.errorf(fieldTok, cause, "unknown field %q", fieldTok.text)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	opTok := p.tok
	op, ok := comparisonOpForToken(opTok.kind)
	if !ok {
		return nil, p.errorf(opTok, nil, "expected a comparison operator, found %s", opTok.describe())
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	base := baseType(field.Type)

	var rhs Rhs
	var err error
	switch op {
	case OpEq, OpNe:
		rhs, err = p.parseScalarRhs(base, field)
	case OpLt, OpLe, OpGt, OpGe:
		if base != field.Type || !typeOrdered(base) {
			return nil, p.errorf(opTok, nil, "ordering operator %q is not supported for type %s", op, field.Type)
		}
		rhs, err = p.parseScalarRhs(base, field)
	case OpContains:
		if base != TypeBytes {
			return nil, p.errorf(opTok, nil, `"contains" requires a Bytes field, not %s`, field.Type)
		}
		rhs, err = p.parseScalarRhs(base, field)
	case OpMatches:
		if base != TypeBytes {
			return nil, p.errorf(opTok, nil, `"matches" requires a Bytes field, not %s`, field.Type)
		}
		rhs, err = p.parseRegexRhs()
	case OpBitAnd:
		if base != TypeInt {
			return nil, p.errorf(opTok, nil, `"&" requires an Int field, not %s`, field.Type)
		}
		rhs, err = p.parseScalarRhs(base, field)
	case OpIn:
		switch base {
		case TypeInt, TypeBytes, TypeIP:
		default:
			return nil, p.errorf(opTok, nil, `"in" is not supported for type %s`, field.Type)
		}
		if p.tok.kind == tokLBrace {
			rhs, err = p.parseBracedSet(base)
		} else {
			rhs, err = p.parseBareMember(base)
		}
	}
	if err != nil {
		return nil, err
	}
	return &ComparisonExpr{Field: field, Op: op, Rhs: rhs}, nil
}

// parseScalarRhs parses a single literal matching the field's base
// type.
func (p *parser) parseScalarRhs(base Type, field Field) (Rhs, error) {
	tok := p.tok
	var v Value
	switch base {
	case TypeBool:
		switch tok.kind {
		case tokTrue:
			v = BoolValue(true)
		case tokFalse:
			v = BoolValue(false)
		default:
			return nil, p.errorf(tok, nil, "expected boolean literal for field %q of type %s, found %s",
				field.Name, field.Type, tok.describe())
		}
	case TypeInt:
		if tok.kind != tokInt {
			return nil, p.errorf(tok, nil, "expected integer literal for field %q of type %s, found %s",
				field.Name, field.Type, tok.describe())
		}
		v = IntValue(tok.num)
	case TypeBytes:
		if tok.kind != tokString {
			return nil, p.errorf(tok, nil, "expected string literal for field %q of type %s, found %s",
				field.Name, field.Type, tok.describe())
		}
		v = BytesValue(tok.str)
	default: // TypeIP
		if tok.kind != tokIP {
			return nil, p.errorf(tok, nil, "expected IP literal for field %q of type %s, found %s",
				field.Name, field.Type, tok.describe())
		}
		v = IPValue(tok.addr)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &RhsScalar{Value: v}, nil
}

// parseRegexRhs parses a regex literal and compiles it through the
// scheme's matcher compiler, so invalid patterns fail here rather than
// at compile time.
func (p *parser) parseRegexRhs() (Rhs, error) {
	tok := p.tok
	if tok.kind != tokRegex {
		return nil, p.errorf(tok, nil, "expected regex literal, found %s", tok.describe())
	}
	m, err := p.scheme.matcherCompiler().Compile(tok.text)
	if err != nil {
		return nil, p.errorf(tok, nil, "invalid regex: %v", err)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &RhsRegex{Source: tok.text, matcher: m}, nil
}

// parseBracedSet parses "{ member+ }" for the given base type.
func (p *parser) parseBracedSet(base Type) (Rhs, error) {
	open := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}

	switch base {
	case TypeInt:
		var members []IntSetMember
		for p.tok.kind != tokRBrace {
			if p.tok.kind == tokEOF {
				return nil, p.errorf(open, nil, `unterminated set: expected "}"`)
			}
			if len(members) >= MaxSetMembers {
				return nil, p.errorf(p.tok, nil, "set has more than %d members", MaxSetMembers)
			}
			m, err := p.parseIntMember()
			if err != nil {
				return nil, err
			}
			members = append(members, m)
		}
		if len(members) == 0 {
			return nil, p.errorf(open, nil, "set must contain at least one member")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &RhsIntSet{Members: members}, nil

	case TypeBytes:
		var members [][]byte
		for p.tok.kind != tokRBrace {
			if p.tok.kind == tokEOF {
				return nil, p.errorf(open, nil, `unterminated set: expected "}"`)
			}
			if len(members) >= MaxSetMembers {
				return nil, p.errorf(p.tok, nil, "set has more than %d members", MaxSetMembers)
			}
			m, err := p.parseBytesMember()
			if err != nil {
				return nil, err
			}
			members = append(members, m)
		}
		if len(members) == 0 {
			return nil, p.errorf(open, nil, "set must contain at least one member")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &RhsBytesSet{Members: members}, nil

	default: // TypeIP
		var members []IPSetMember
		for p.tok.kind != tokRBrace {
			if p.tok.kind == tokEOF {
				return nil, p.errorf(open, nil, `unterminated set: expected "}"`)
			}
			if len(members) >= MaxSetMembers {
				return nil, p.errorf(p.tok, nil, "set has more than %d members", MaxSetMembers)
			}
			m, err := p.parseIPMember()
			if err != nil {
				return nil, err
			}
			members = append(members, m)
		}
		if len(members) == 0 {
			return nil, p.errorf(open, nil, "set must contain at least one member")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &RhsIPSet{Members: members}, nil
	}
}

// parseBareMember parses an "in" right-hand side without braces — a
// single scalar, range or CIDR — as a one-member set.
func (p *parser) parseBareMember(base Type) (Rhs, error) {
	switch base {
	case TypeInt:
		m, err := p.parseIntMember()
		if err != nil {
			return nil, err
		}
		return &RhsIntSet{Members: []IntSetMember{m}}, nil
	case TypeBytes:
		m, err := p.parseBytesMember()
		if err != nil {
			return nil, err
		}
		return &RhsBytesSet{Members: [][]byte{m}}, nil
	default: // TypeIP
		m, err := p.parseIPMember()
		if err != nil {
			return nil, err
		}
		return &RhsIPSet{Members: []IPSetMember{m}}, nil
	}
}

func (p *parser) parseIntMember() (IntSetMember, error) {
	tok := p.tok
	if tok.kind != tokInt {
		return IntSetMember{}, p.errorf(tok, nil, "expected integer set member, found %s", tok.describe())
	}
	lo := tok.num
	if err := p.advance(); err != nil {
		return IntSetMember{}, err
	}
	if p.tok.kind != tokDotDot {
		return IntSetMember{Lo: lo, Hi: lo}, nil
	}
	if err := p.advance(); err != nil {
		return IntSetMember{}, err
	}
	hiTok := p.tok
	if hiTok.kind != tokInt {
		return IntSetMember{}, p.errorf(hiTok, nil, "expected integer range upper bound, found %s", hiTok.describe())
	}
	if hiTok.num < lo {
		return IntSetMember{}, p.errorf(hiTok, nil, "range bounds are inverted: %d..%d", lo, hiTok.num)
	}
	if err := p.advance(); err != nil {
		return IntSetMember{}, err
	}
	return IntSetMember{Lo: lo, Hi: hiTok.num, IsRange: true}, nil
}

func (p *parser) parseBytesMember() ([]byte, error) {
	tok := p.tok
	if tok.kind != tokString {
		return nil, p.errorf(tok, nil, "expected string set member, found %s", tok.describe())
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return tok.str, nil
}

func (p *parser) parseIPMember() (IPSetMember, error) {
	tok := p.tok
	switch tok.kind {
	case tokCIDR:
		if err := p.advance(); err != nil {
			return IPSetMember{}, err
		}
		return IPSetMember{Prefix: tok.pfx, IsPrefix: true}, nil
	case tokIP:
		lo := tok.addr
		if err := p.advance(); err != nil {
			return IPSetMember{}, err
		}
		if p.tok.kind != tokDotDot {
			return IPSetMember{Addr: lo}, nil
		}
		if err := p.advance(); err != nil {
			return IPSetMember{}, err
		}
		hiTok := p.tok
		if hiTok.kind != tokIP {
			return IPSetMember{}, p.errorf(hiTok, nil, "expected IP range upper bound, found %s", hiTok.describe())
		}
		hi := hiTok.addr
		if lo.BitLen() != hi.BitLen() {
			return IPSetMember{}, p.errorf(hiTok, nil, "range endpoints must be in the same address family")
		}
		if lo.Compare(hi) > 0 {
			return IPSetMember{}, p.errorf(hiTok, nil, "range bounds are inverted: %s..%s", lo, hi)
		}
		if err := p.advance(); err != nil {
			return IPSetMember{}, err
		}
		return IPSetMember{Lo: lo, Hi: hi, IsRange: true}, nil
	default:
		return IPSetMember{}, p.errorf(tok, nil, "expected IP set member, found %s", tok.describe())
	}
}

func comparisonOpForToken(k tokenKind) (ComparisonOp, bool) {
	switch k {
	case tokEq:
		return OpEq, true
	case tokNe:
		return OpNe, true
	case tokLt:
		return OpLt, true
	case tokLe:
		return OpLe, true
	case tokGt:
		return OpGt, true
	case tokGe:
		return OpGe, true
	case tokContains:
		return OpContains, true
	case tokMatches:
		return OpMatches, true
	case tokIn:
		return OpIn, true
	case tokBitAnd:
		return OpBitAnd, true
	default:
		return 0, false
	}
}
