package filter

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

/*
 * Lexer: turns filter source into a token stream.
 *
 * The lexer is lazy: the parser pulls one token at a time and lexing
 * resumes where it stopped. It never consults the scheme. One piece of
 * mode state exists: after "matches" or "~" the next quoted literal is
 * lexed as regex source, where \" escapes the quote and every other
 * backslash sequence passes through to the regex engine untouched.
 *
 * Numeric-looking text (digits, hex letters, dots, colons) is scanned
 * greedily and then classified as an integer (decimal, 0x hex or 0
 * octal), a float, or an IPv4/IPv6 address; an address directly
 * followed by a slash extends into a CIDR token. A ".." always
 * terminates the scan, so range bounds lex as separate tokens around a
 * ".." token.
 */

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokField
	tokInt
	tokFloat
	tokString
	tokRegex
	tokIP
	tokCIDR
	tokTrue
	tokFalse
	tokAnd      // "&&" or "and"
	tokOr       // "||" or "or"
	tokXor      // "^^" or "xor"
	tokNot      // "not"
	tokIn       // "in"
	tokContains // "contains"
	tokMatches  // "matches" or "~"
	tokEq       // "==" or "eq"
	tokNe       // "!=" or "ne"
	tokLt       // "<" or "lt"
	tokLe       // "<=" or "le"
	tokGt       // ">" or "gt"
	tokGe       // ">=" or "ge"
	tokBitAnd   // "&"
	tokLParen
	tokRParen
	tokLBrace
	tokRBrace
	tokDotDot // ".."
)

// token is one lexed unit with its source span. pos and end are byte
// offsets; end points one past the last byte.
type token struct {
	kind tokenKind
	pos  int
	end  int
	text string       // tokField name, tokRegex source
	num  int64        // tokInt
	flt  float64      // tokFloat
	str  []byte       // tokString, decoded
	addr netip.Addr   // tokIP
	pfx  netip.Prefix // tokCIDR
}

type lexer struct {
	src       string
	pos       int
	regexNext bool
}

func newLexer(src string) *lexer {
	return &lexer{src: src}
}

// next returns the following token, or a LexError. Past the end of
// input it keeps returning tokEOF.
func (l *lexer) next() (token, error) {
	l.skipSpace()
	start := l.pos
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: start, end: start}, nil
	}

	wantRegex := l.regexNext
	l.regexNext = false

	c := l.src[l.pos]
	switch {
	case c == '"':
		if wantRegex {
			return l.lexRegex()
		}
		return l.lexString()
	case isIdentStart(c):
		return l.lexIdent()
	case isDigit(c):
		return l.lexNumeric(start)
	case c == '-' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1]):
		return l.lexNumeric(start)
	case c == ':' && l.pos+1 < len(l.src) && l.src[l.pos+1] == ':':
		return l.lexNumeric(start)
	}

	switch c {
	case '(':
		l.pos++
		return token{kind: tokLParen, pos: start, end: l.pos}, nil
	case ')':
		l.pos++
		return token{kind: tokRParen, pos: start, end: l.pos}, nil
	case '{':
		l.pos++
		return token{kind: tokLBrace, pos: start, end: l.pos}, nil
	case '}':
		l.pos++
		return token{kind: tokRBrace, pos: start, end: l.pos}, nil
	case '~':
		l.pos++
		l.regexNext = true
		return token{kind: tokMatches, pos: start, end: l.pos}, nil
	case '=':
		if l.peek(1) == '=' {
			l.pos += 2
			return token{kind: tokEq, pos: start, end: l.pos}, nil
		}
		return token{}, &LexError{Msg: `incomplete operator "=", expected "=="`, Pos: start}
	case '!':
		if l.peek(1) == '=' {
			l.pos += 2
			return token{kind: tokNe, pos: start, end: l.pos}, nil
		}
		return token{}, &LexError{Msg: `incomplete operator "!", expected "!="`, Pos: start}
	case '<':
		if l.peek(1) == '=' {
			l.pos += 2
			return token{kind: tokLe, pos: start, end: l.pos}, nil
		}
		l.pos++
		return token{kind: tokLt, pos: start, end: l.pos}, nil
	case '>':
		if l.peek(1) == '=' {
			l.pos += 2
			return token{kind: tokGe, pos: start, end: l.pos}, nil
		}
		l.pos++
		return token{kind: tokGt, pos: start, end: l.pos}, nil
	case '&':
		if l.peek(1) == '&' {
			l.pos += 2
			return token{kind: tokAnd, pos: start, end: l.pos}, nil
		}
		l.pos++
		return token{kind: tokBitAnd, pos: start, end: l.pos}, nil
	case '|':
		if l.peek(1) == '|' {
			l.pos += 2
			return token{kind: tokOr, pos: start, end: l.pos}, nil
		}
		return token{}, &LexError{Msg: `incomplete operator "|", expected "||"`, Pos: start}
	case '^':
		if l.peek(1) == '^' {
			l.pos += 2
			return token{kind: tokXor, pos: start, end: l.pos}, nil
		}
		return token{}, &LexError{Msg: `incomplete operator "^", expected "^^"`, Pos: start}
	case '.':
		if l.peek(1) == '.' {
			l.pos += 2
			return token{kind: tokDotDot, pos: start, end: l.pos}, nil
		}
	}
	return token{}, &LexError{Msg: fmt.Sprintf("unexpected character %q", rune(c)), Pos: start}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

// peek returns the byte at the given offset from the current position,
// or 0 past the end of input.
func (l *lexer) peek(ahead int) byte {
	if l.pos+ahead >= len(l.src) {
		return 0
	}
	return l.src[l.pos+ahead]
}

// lexIdent scans a dotted identifier and classifies bare keywords.
// Dots are consumed only when another segment follows, so "port" in
// "80..port" never swallows the range operator.
func (l *lexer) lexIdent() (token, error) {
	start := l.pos
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if isIdentChar(c) {
			l.pos++
			continue
		}
		if c == '.' && l.pos+1 < len(l.src) && isIdentStart(l.src[l.pos+1]) {
			l.pos++
			continue
		}
		break
	}
	text := l.src[start:l.pos]
	// A run of hex digits followed by ":" is the head of an IPv6
	// literal, like fe80::1, not a field name.
	if l.pos < len(l.src) && l.src[l.pos] == ':' && isHexText(text) {
		l.pos = start
		return l.lexNumeric(start)
	}
	if !strings.ContainsRune(text, '.') {
		if kind, ok := keywordKind(text); ok {
			if kind == tokMatches {
				l.regexNext = true
			}
			return token{kind: kind, pos: start, end: l.pos, text: text}, nil
		}
	}
	return token{kind: tokField, pos: start, end: l.pos, text: text}, nil
}

// lexNumeric scans a run of numeric characters and classifies it.
// Entered on a digit, a minus sign before a digit, or a leading "::".
func (l *lexer) lexNumeric(start int) (token, error) {
	if l.src[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '.' {
			if l.pos+1 < len(l.src) && l.src[l.pos+1] == '.' {
				break
			}
			l.pos++
			continue
		}
		if isDigit(c) || isHexLetter(c) || c == ':' || c == 'x' || c == 'X' {
			l.pos++
			continue
		}
		break
	}

	tok, err := classifyNumeric(l.src[start:l.pos], start, l.pos)
	if err != nil || tok.kind != tokIP {
		return tok, err
	}

	// A slash directly after an address extends it into a CIDR prefix.
	if l.pos < len(l.src) && l.src[l.pos] == '/' {
		l.pos++
		bitsStart := l.pos
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
		text := l.src[start:l.pos]
		if l.pos == bitsStart {
			return token{}, &LexError{Msg: fmt.Sprintf("invalid CIDR prefix %q: missing bit count", text), Pos: start}
		}
		pfx, perr := netip.ParsePrefix(text)
		if perr != nil {
			return token{}, &LexError{Msg: fmt.Sprintf("invalid CIDR prefix %q", text), Pos: start}
		}
		return token{kind: tokCIDR, pos: start, end: l.pos, pfx: pfx}, nil
	}
	return tok, nil
}

// classifyNumeric decides what a scanned numeric run is. Colons mean
// IPv6, three dots mean IPv4, one dot means float, no dots mean
// integer. Anything else is malformed.
func classifyNumeric(text string, start, end int) (token, error) {
	if strings.ContainsRune(text, ':') {
		addr, err := netip.ParseAddr(text)
		if err != nil {
			return token{}, &LexError{Msg: fmt.Sprintf("invalid IP address %q", text), Pos: start}
		}
		return token{kind: tokIP, pos: start, end: end, addr: addr}, nil
	}
	switch strings.Count(text, ".") {
	case 0:
		n, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return token{}, &LexError{Msg: fmt.Sprintf("invalid integer literal %q", text), Pos: start}
		}
		return token{kind: tokInt, pos: start, end: end, num: n}, nil
	case 1:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token{}, &LexError{Msg: fmt.Sprintf("invalid numeric literal %q", text), Pos: start}
		}
		return token{kind: tokFloat, pos: start, end: end, flt: f}, nil
	case 3:
		addr, err := netip.ParseAddr(text)
		if err != nil {
			return token{}, &LexError{Msg: fmt.Sprintf("invalid IP address %q", text), Pos: start}
		}
		return token{kind: tokIP, pos: start, end: end, addr: addr}, nil
	default:
		return token{}, &LexError{Msg: fmt.Sprintf("invalid numeric literal %q", text), Pos: start}
	}
}

// lexString scans a quoted byte-string literal, decoding escapes:
// \" \\ \n \r \t and \xHH.
func (l *lexer) lexString() (token, error) {
	start := l.pos
	l.pos++
	var out []byte
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case '"':
			l.pos++
			return token{kind: tokString, pos: start, end: l.pos, str: out}, nil
		case '\\':
			if l.pos+1 >= len(l.src) {
				return token{}, &LexError{Msg: "unterminated string literal", Pos: start}
			}
			switch esc := l.src[l.pos+1]; esc {
			case '"', '\\':
				out = append(out, esc)
				l.pos += 2
			case 'n':
				out = append(out, '\n')
				l.pos += 2
			case 'r':
				out = append(out, '\r')
				l.pos += 2
			case 't':
				out = append(out, '\t')
				l.pos += 2
			case 'x':
				if l.pos+3 >= len(l.src) {
					return token{}, &LexError{Msg: `invalid escape sequence: \x needs two hex digits`, Pos: l.pos}
				}
				hi, ok1 := hexDigit(l.src[l.pos+2])
				lo, ok2 := hexDigit(l.src[l.pos+3])
				if !ok1 || !ok2 {
					return token{}, &LexError{Msg: `invalid escape sequence: \x needs two hex digits`, Pos: l.pos}
				}
				out = append(out, hi<<4|lo)
				l.pos += 4
			default:
				return token{}, &LexError{Msg: fmt.Sprintf(`invalid escape sequence \%c`, esc), Pos: l.pos}
			}
		default:
			out = append(out, c)
			l.pos++
		}
	}
	return token{}, &LexError{Msg: "unterminated string literal", Pos: start}
}

// lexRegex scans a quoted regex literal. Only the quote may be escaped;
// every other backslash sequence reaches the regex engine verbatim.
func (l *lexer) lexRegex() (token, error) {
	start := l.pos
	l.pos++
	var out strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case '"':
			l.pos++
			return token{kind: tokRegex, pos: start, end: l.pos, text: out.String()}, nil
		case '\\':
			if l.pos+1 >= len(l.src) {
				return token{}, &LexError{Msg: "unterminated regex literal", Pos: start}
			}
			if next := l.src[l.pos+1]; next == '"' {
				out.WriteByte('"')
			} else {
				out.WriteByte('\\')
				out.WriteByte(next)
			}
			l.pos += 2
		default:
			out.WriteByte(c)
			l.pos++
		}
	}
	return token{}, &LexError{Msg: "unterminated regex literal", Pos: start}
}

func keywordKind(text string) (tokenKind, bool) {
	switch text {
	case "and":
		return tokAnd, true
	case "or":
		return tokOr, true
	case "xor":
		return tokXor, true
	case "not":
		return tokNot, true
	case "in":
		return tokIn, true
	case "contains":
		return tokContains, true
	case "matches":
		return tokMatches, true
	case "true":
		return tokTrue, true
	case "false":
		return tokFalse, true
	case "eq":
		return tokEq, true
	case "ne":
		return tokNe, true
	case "lt":
		return tokLt, true
	case "le":
		return tokLe, true
	case "gt":
		return tokGt, true
	case "ge":
		return tokGe, true
	default:
		return tokEOF, false
	}
}

// isKeyword reports whether text is reserved by the expression syntax.
func isKeyword(text string) bool {
	_, ok := keywordKind(text)
	return ok
}

func isDigit(c byte) bool     { return c >= '0' && c <= '9' }
func isHexLetter(c byte) bool { return (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') }

func isHexText(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) && !isHexLetter(s[i]) {
			return false
		}
	}
	return len(s) > 0
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// describe names a token for parse error messages.
func (t token) describe() string {
	switch t.kind {
	case tokEOF:
		return "end of expression"
	case tokField:
		return fmt.Sprintf("field %q", t.text)
	case tokInt:
		return "integer literal"
	case tokFloat:
		return "float literal"
	case tokString:
		return "string literal"
	case tokRegex:
		return "regex literal"
	case tokIP:
		return "IP literal"
	case tokCIDR:
		return "CIDR literal"
	case tokTrue, tokFalse:
		return "boolean literal"
	case tokAnd:
		return `"&&"`
	case tokOr:
		return `"||"`
	case tokXor:
		return `"^^"`
	case tokNot:
		return `"not"`
	case tokIn:
		return `"in"`
	case tokContains:
		return `"contains"`
	case tokMatches:
		return `"matches"`
	case tokEq:
		return `"=="`
	case tokNe:
		return `"!="`
	case tokLt:
		return `"<"`
	case tokLe:
		return `"<="`
	case tokGt:
		return `">"`
	case tokGe:
		return `">="`
	case tokBitAnd:
		return `"&"`
	case tokLParen:
		return `"("`
	case tokRParen:
		return `")"`
	case tokLBrace:
		return `"{"`
	case tokRBrace:
		return `"}"`
	case tokDotDot:
		return `".."`
	default:
		return "unknown token"
	}
}
