package filter

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func testScheme(t *testing.T) *Scheme {
	t.Helper()
	s, err := NewScheme(
		FieldDef{Name: "http.method", Type: TypeBytes},
		FieldDef{Name: "http.ua", Type: TypeBytes},
		FieldDef{Name: "port", Type: TypeInt},
		FieldDef{Name: "flags", Type: TypeInt},
		FieldDef{Name: "ip.src", Type: TypeIP},
		FieldDef{Name: "ssl", Type: TypeBool},
		FieldDef{Name: "http.headers", Type: MapOf(TypeBytes)},
		FieldDef{Name: "tcp.ports", Type: ArrayOf(TypeInt)},
		FieldDef{Name: "matrix", Type: ArrayOf(ArrayOf(TypeInt))},
	)
	if err != nil {
		t.Fatalf("NewScheme() error = %v", err)
	}
	return s
}

func TestSchemeRedefinition(t *testing.T) {
	s, err := NewScheme(FieldDef{Name: "port", Type: TypeInt})
	if err != nil {
		t.Fatalf("NewScheme() error = %v", err)
	}
	err = s.AddField("port", TypeBytes)
	var redef *FieldRedefinitionError
	if !errors.As(err, &redef) {
		t.Fatalf("AddField() error = %v, want FieldRedefinitionError", err)
	}
	if redef.Name != "port" {
		t.Errorf("Name = %q, want %q", redef.Name, "port")
	}
}

func TestSchemeFieldNames(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"port", true},
		{"http.request.uri.path", true},
		{"_private", true},
		{"x2", true},
		{"", false},
		{"2x", false},
		{"a..b", false},
		{".a", false},
		{"a.", false},
		{"a-b", false},
		{"in", false},
		{"not", false},
		{"a.in", false},
		{"ingress", true}, // keyword prefix is fine
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Scheme{}
			err := s.AddField(tt.name, TypeInt)
			if (err == nil) != tt.valid {
				t.Errorf("AddField(%q) error = %v, want valid=%v", tt.name, err, tt.valid)
			}
		})
	}
}

func TestParseCanonical(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"simple equality", `http.method == "GET"`, `http.method == "GET"`},
		{"word operator", `port eq 80`, `port == 80`},
		{"hex canonicalizes to decimal", `port == 0x50`, `port == 80`},
		{"negated comparison", `not port == 80`, `not port == 80`},
		{"double negation", `not not port == 80`, `not not port == 80`},
		{"and chain flattens", `port == 80 && port == 443 && ssl == true`, `port == 80 && port == 443 && ssl == true`},
		{"implicit conjunction", `port == 80 ssl == true`, `port == 80 && ssl == true`},
		{"precedence and over or", `port == 80 && ssl == true || http.method == "GET"`, `(port == 80 && ssl == true) || http.method == "GET"`},
		{"xor between or and and", `port == 80 || ssl == true ^^ port == 443`, `port == 80 || (ssl == true ^^ port == 443)`},
		{"word xor", `ssl == true xor port == 443`, `ssl == true ^^ port == 443`},
		{"parens preserved", `(port == 80 || port == 443) && ssl == true`, `(port == 80 || port == 443) && ssl == true`},
		{"redundant parens collapse", `(port == 80)`, `port == 80`},
		{"negated group", `not (port == 80 || ssl == true)`, `not (port == 80 || ssl == true)`},
		{"int set", `port in {80 443}`, `port in {80 443}`},
		{"int set with range", `port in {80..90 100}`, `port in {80..90 100}`},
		{"bare int range", `port in 80..90`, `port in {80..90}`},
		{"negative range", `port in {-5..-1}`, `port in {-5..-1}`},
		{"bytes set", `http.method in {"GET" "POST"}`, `http.method in {"GET" "POST"}`},
		{"ip set", `ip.src in {10.0.0.0/8 192.168.0.1 10.1.0.0..10.2.0.0}`, `ip.src in {10.0.0.0/8 192.168.0.1 10.1.0.0..10.2.0.0}`},
		{"bare cidr", `ip.src in 10.0.0.0/8`, `ip.src in {10.0.0.0/8}`},
		{"ipv6 set", `ip.src in {2001:db8::/32 ::1}`, `ip.src in {2001:db8::/32 ::1}`},
		{"ipv6 with hex-letter head", `ip.src == fe80::1`, `ip.src == fe80::1`},
		{"ipv6 set with hex-letter heads", `ip.src in {fe80::/10 abcd::1..abcd::ff}`, `ip.src in {fe80::/10 abcd::1..abcd::ff}`},
		{"contains", `http.ua contains "bot"`, `http.ua contains "bot"`},
		{"matches", `http.ua matches "(?i)bot"`, `http.ua matches "(?i)bot"`},
		{"tilde prints as matches", `http.ua ~ "bot"`, `http.ua matches "bot"`},
		{"bitwise mask", `flags & 2`, `flags & 2`},
		{"bool literal", `ssl == true`, `ssl == true`},
		{"bool false", `ssl != false`, `ssl != false`},
		{"ordering on bytes", `http.method >= "GET"`, `http.method >= "GET"`},
		{"ordering on ip", `ip.src > 10.0.0.0`, `ip.src > 10.0.0.0`},
		{"map field elementwise", `http.headers == "close"`, `http.headers == "close"`},
		{"array field elementwise in", `tcp.ports in {80 443}`, `tcp.ports in {80 443}`},
		{"nested array elementwise", `matrix == 5`, `matrix == 5`},
		{"string escapes print canonically", `http.method == "a\x41\n"`, `http.method == "aA\n"`},
	}

	s := testScheme(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ast, err := s.Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.src, err)
			}
			if got := ast.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantPos int
		wantMsg string
	}{
		{"unknown field", `foo == 1`, 0, "unknown field"},
		{"ordering on bool", `ssl < true`, 4, "ordering operator"},
		{"ordering on array", `tcp.ports < 80`, 10, "ordering operator"},
		{"ordering on map", `http.headers < "x"`, 13, "ordering operator"},
		{"contains on int", `port contains "x"`, 5, `"contains" requires a Bytes field`},
		{"matches on int", `port matches "x"`, 5, `"matches" requires a Bytes field`},
		{"mask on bytes", `http.method & 1`, 12, `"&" requires an Int field`},
		{"in on bool", `ssl in {80}`, 4, `"in" is not supported for type Bool`},
		{"int field string literal", `port == "80"`, 8, "expected integer literal"},
		{"bytes field int literal", `http.method == 80`, 15, "expected string literal"},
		{"ip field int literal", `ip.src == 80`, 10, "expected IP literal"},
		{"bool field int literal", `ssl == 1`, 7, "expected boolean literal"},
		{"float literal", `port == 1.5`, 8, "found float literal"},
		{"ip literal for int", `port == 10.0.0.1`, 8, "expected integer literal"},
		{"empty set", `port in {}`, 8, "at least one member"},
		{"unterminated set", `port in {80`, 8, `expected "}"`},
		{"mixed member in int set", `port in {80 "x"}`, 12, "expected integer set member"},
		{"cidr in int set", `port in {10.0.0.0/8}`, 9, "expected integer set member"},
		{"inverted int range", `port in {90..80}`, 13, "inverted"},
		{"inverted ip range", `ip.src in {10.0.0.2..10.0.0.1}`, 21, "inverted"},
		{"mixed family range", `ip.src in {10.0.0.1..::1}`, 21, "same address family"},
		{"invalid regex", `http.ua matches "("`, 16, "invalid regex"},
		{"bare field", `ssl`, 3, "expected a comparison operator"},
		{"operator without rhs field", `port && port == 80`, 5, "expected a comparison operator"},
		{"trailing garbage", `port == 80 )`, 11, `unexpected ")"`},
		{"missing close paren", `(port == 80`, 11, `expected ")"`},
		{"empty expression", ``, 0, "empty expression"},
		{"whitespace only", `   `, 3, "empty expression"},
		{"lex error surfaces", `port == 80 |`, 11, `expected "||"`},
	}

	s := testScheme(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Parse(tt.src)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.src)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("error type = %T, want *ParseError", err)
			}
			if parseErr.Pos != tt.wantPos {
				t.Errorf("Pos = %d, want %d (msg %q)", parseErr.Pos, tt.wantPos, parseErr.Msg)
			}
			if !strings.Contains(parseErr.Msg, tt.wantMsg) {
				t.Errorf("Msg = %q, want substring %q", parseErr.Msg, tt.wantMsg)
			}
		})
	}
}

// An undeclared field fails at parse time with a typed error.
func TestParseUnknownField(t *testing.T) {
	s := testScheme(t)
	_, err := s.Parse(`foo == 1`)

	var unknown *UnknownFieldError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want UnknownFieldError in chain", err)
	}
	if unknown.Name != "foo" {
		t.Errorf("Name = %q, want %q", unknown.Name, "foo")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if parseErr.Pos != 0 || parseErr.Len != 3 {
		t.Errorf("span = [%d,%d), want [0,3)", parseErr.Pos, parseErr.Pos+parseErr.Len)
	}
}

func TestParseWrapsLexError(t *testing.T) {
	s := testScheme(t)
	_, err := s.Parse(`port == "unterminated`)

	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("error = %v, want LexError in chain", err)
	}
	if lexErr.Pos != 8 {
		t.Errorf("Pos = %d, want 8", lexErr.Pos)
	}
}

func TestParseLimits(t *testing.T) {
	s := testScheme(t)

	t.Run("expression too long", func(t *testing.T) {
		src := "port == 80 " + strings.Repeat(" ", MaxExpressionLength)
		_, err := s.Parse(src)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("error = %v, want *ParseError", err)
		}
		if !strings.Contains(parseErr.Msg, "longer than") {
			t.Errorf("Msg = %q, want length complaint", parseErr.Msg)
		}
	})

	t.Run("nesting too deep", func(t *testing.T) {
		depth := MaxExpressionDepth + 1
		src := strings.Repeat("(", depth) + "port == 80" + strings.Repeat(")", depth)
		_, err := s.Parse(src)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("error = %v, want *ParseError", err)
		}
		if !strings.Contains(parseErr.Msg, "nests deeper") {
			t.Errorf("Msg = %q, want depth complaint", parseErr.Msg)
		}
	})

	t.Run("nesting within limit", func(t *testing.T) {
		depth := MaxExpressionDepth - 2
		src := strings.Repeat("(", depth) + "port == 80" + strings.Repeat(")", depth)
		if _, err := s.Parse(src); err != nil {
			t.Fatalf("Parse() error = %v, want success", err)
		}
	})

	t.Run("set too large", func(t *testing.T) {
		var sb strings.Builder
		sb.WriteString("port in {")
		for i := 0; i <= MaxSetMembers; i++ {
			fmt.Fprintf(&sb, "%d ", i)
		}
		sb.WriteString("}")
		_, err := s.Parse(sb.String())
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("error = %v, want *ParseError", err)
		}
		if !strings.Contains(parseErr.Msg, "members") {
			t.Errorf("Msg = %q, want member-count complaint", parseErr.Msg)
		}
	})
}

// exprEqual compares trees structurally, ignoring compiled matcher
// state.
func exprEqual(a, b Expr) bool {
	switch a := a.(type) {
	case *CombinedExpr:
		bc, ok := b.(*CombinedExpr)
		if !ok || a.Op != bc.Op || len(a.Items) != len(bc.Items) {
			return false
		}
		for i := range a.Items {
			if !exprEqual(a.Items[i], bc.Items[i]) {
				return false
			}
		}
		return true
	case *NotExpr:
		bn, ok := b.(*NotExpr)
		return ok && exprEqual(a.Inner, bn.Inner)
	case *ComparisonExpr:
		bc, ok := b.(*ComparisonExpr)
		if !ok || a.Field != bc.Field || a.Op != bc.Op {
			return false
		}
		return rhsEqual(a.Rhs, bc.Rhs)
	default:
		return false
	}
}

func rhsEqual(a, b Rhs) bool {
	switch a := a.(type) {
	case *RhsScalar:
		bs, ok := b.(*RhsScalar)
		return ok && valueEqual(a.Value, bs.Value)
	case *RhsRegex:
		br, ok := b.(*RhsRegex)
		return ok && a.Source == br.Source
	case *RhsIntSet:
		bs, ok := b.(*RhsIntSet)
		if !ok || len(a.Members) != len(bs.Members) {
			return false
		}
		for i := range a.Members {
			if a.Members[i] != bs.Members[i] {
				return false
			}
		}
		return true
	case *RhsIPSet:
		bs, ok := b.(*RhsIPSet)
		if !ok || len(a.Members) != len(bs.Members) {
			return false
		}
		for i := range a.Members {
			if a.Members[i] != bs.Members[i] {
				return false
			}
		}
		return true
	case *RhsBytesSet:
		bs, ok := b.(*RhsBytesSet)
		if !ok || len(a.Members) != len(bs.Members) {
			return false
		}
		for i := range a.Members {
			if !bytes.Equal(a.Members[i], bs.Members[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func randomComparison(r *rand.Rand) string {
	switch r.Intn(9) {
	case 0:
		return fmt.Sprintf("port == %d", r.Intn(1000))
	case 1:
		lo := r.Intn(500)
		return fmt.Sprintf("port in {%d %d..%d}", r.Intn(1000), lo, lo+r.Intn(500))
	case 2:
		return fmt.Sprintf("http.method == %q", []string{"GET", "POST", "PUT"}[r.Intn(3)])
	case 3:
		return fmt.Sprintf("ip.src in {10.0.%d.0/24 192.168.0.%d}", r.Intn(256), r.Intn(256))
	case 4:
		return fmt.Sprintf("http.ua contains %q", []string{"bot", "crawler", ""}[r.Intn(3)])
	case 5:
		return `http.ua matches "(?i)bot.*"`
	case 6:
		return fmt.Sprintf("flags & %d", 1+r.Intn(255))
	case 7:
		return fmt.Sprintf("ssl == %v", r.Intn(2) == 0)
	case 8:
		ops := []string{"<", "<=", ">", ">="}
		return fmt.Sprintf("port %s %d", ops[r.Intn(4)], r.Intn(1000))
	default:
		return "port == 0"
	}
}

func randomExpr(r *rand.Rand, depth int) string {
	if depth <= 0 || r.Intn(3) == 0 {
		return randomComparison(r)
	}
	switch r.Intn(5) {
	case 0:
		return randomExpr(r, depth-1) + " && " + randomExpr(r, depth-1)
	case 1:
		return randomExpr(r, depth-1) + " || " + randomExpr(r, depth-1)
	case 2:
		return randomExpr(r, depth-1) + " ^^ " + randomExpr(r, depth-1)
	case 3:
		return "not (" + randomExpr(r, depth-1) + ")"
	default:
		return "(" + randomExpr(r, depth-1) + ")"
	}
}

// Reparsing the canonical printed form yields a structurally equal
// tree, and printing is stable from then on.
func TestParsePrintRoundTrip(t *testing.T) {
	s := testScheme(t)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("parse(print(ast)) is structurally equal", prop.ForAll(
		func(seed int64) bool {
			src := randomExpr(rand.New(rand.NewSource(seed)), 4)
			ast1, err := s.Parse(src)
			if err != nil {
				return false
			}
			printed := ast1.String()
			ast2, err := s.Parse(printed)
			if err != nil {
				return false
			}
			return exprEqual(ast1.Root(), ast2.Root()) && printed == ast2.String()
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
