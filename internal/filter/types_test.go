package filter

import (
	"net/netip"
	"testing"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"bool", TypeBool, false},
		{"int", TypeInt, false},
		{"bytes", TypeBytes, false},
		{"ip", TypeIP, false},
		{"Bytes", TypeBytes, false},
		{"  int  ", TypeInt, false},
		{"array(int)", ArrayOf(TypeInt), false},
		{"map(bytes)", MapOf(TypeBytes), false},
		{"array(array(ip))", ArrayOf(ArrayOf(TypeIP)), false},
		{"Array(Map(Int))", ArrayOf(MapOf(TypeInt)), false},
		{"array( bytes )", ArrayOf(TypeBytes), false},
		{"string", nil, true},
		{"array", nil, true},
		{"array()", nil, true},
		{"array(int", nil, true},
		{"", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseType(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTypeEquality(t *testing.T) {
	if ArrayOf(TypeInt) != ArrayOf(TypeInt) {
		t.Error("equal array types should compare equal")
	}
	if ArrayOf(TypeInt) == ArrayOf(TypeBytes) {
		t.Error("different element types should compare unequal")
	}
	if MapOf(TypeInt) == ArrayOf(TypeInt) {
		t.Error("map and array types should compare unequal")
	}
	if ArrayOf(ArrayOf(TypeIP)) != ArrayOf(ArrayOf(TypeIP)) {
		t.Error("nested array types should compare equal")
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		t    Type
		want string
	}{
		{TypeBool, "Bool"},
		{TypeInt, "Int"},
		{TypeBytes, "Bytes"},
		{TypeIP, "IP"},
		{ArrayOf(TypeBytes), "Array(Bytes)"},
		{MapOf(ArrayOf(TypeInt)), "Map(Array(Int))"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestValueMatches(t *testing.T) {
	mixed := ArrayValue{Elem: TypeInt, Items: []Value{IntValue(1), BytesValue("x")}}

	goodMap := NewMap(TypeBytes)
	if err := goodMap.Set("k", BytesValue("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	tests := []struct {
		name string
		t    Type
		v    Value
		want bool
	}{
		{"bool matches", TypeBool, BoolValue(true), true},
		{"int matches", TypeInt, IntValue(1), true},
		{"int does not match bytes", TypeBytes, IntValue(1), false},
		{"ip matches", TypeIP, IPValue(netip.MustParseAddr("::1")), true},
		{"array matches", ArrayOf(TypeInt), ArrayValue{Elem: TypeInt, Items: []Value{IntValue(1)}}, true},
		{"empty array matches", ArrayOf(TypeInt), ArrayValue{Elem: TypeInt}, true},
		{"array elem type recorded wrong", ArrayOf(TypeInt), ArrayValue{Elem: TypeBytes}, false},
		{"array with mismatched element", ArrayOf(TypeInt), mixed, false},
		{"scalar is not array", ArrayOf(TypeInt), IntValue(1), false},
		{"map matches", MapOf(TypeBytes), goodMap, true},
		{"map wrong elem", MapOf(TypeInt), goodMap, false},
		{"nested array", ArrayOf(ArrayOf(TypeInt)), ArrayValue{
			Elem:  ArrayOf(TypeInt),
			Items: []Value{ArrayValue{Elem: TypeInt, Items: []Value{IntValue(1)}}},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := valueMatches(tt.t, tt.v); got != tt.want {
				t.Errorf("valueMatches(%v, %v) = %v, want %v", tt.t, tt.v, got, tt.want)
			}
		})
	}
}

func TestMapValueRejectsWrongElement(t *testing.T) {
	m := NewMap(TypeInt)
	if err := m.Set("ok", IntValue(1)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := m.Set("bad", BytesValue("x")); err == nil {
		t.Fatal("Set() with wrong element type should fail")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after rejected Set", m.Len())
	}
}

func TestMapValueInsertionOrder(t *testing.T) {
	m := NewMap(TypeInt)
	for i, k := range []string{"z", "a", "m"} {
		if err := m.Set(k, IntValue(int64(i))); err != nil {
			t.Fatalf("Set(%q) error = %v", k, err)
		}
	}
	keys := m.Keys()
	want := []string{"z", "a", "m"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", keys, want)
		}
	}

	// Overwrite keeps the original position.
	if err := m.Set("a", IntValue(9)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := m.Keys()[1]; got != "a" {
		t.Errorf("Keys()[1] = %q, want %q after overwrite", got, "a")
	}
	if v, _ := m.Get("a"); !valueEqual(v, IntValue(9)) {
		t.Errorf("Get(a) = %v, want 9", v)
	}
}

func TestValueEqual(t *testing.T) {
	a1 := ArrayValue{Elem: TypeInt, Items: []Value{IntValue(1), IntValue(2)}}
	a2 := ArrayValue{Elem: TypeInt, Items: []Value{IntValue(1), IntValue(2)}}
	a3 := ArrayValue{Elem: TypeInt, Items: []Value{IntValue(2), IntValue(1)}}

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal ints", IntValue(5), IntValue(5), true},
		{"unequal ints", IntValue(5), IntValue(6), false},
		{"equal bytes", BytesValue("abc"), BytesValue("abc"), true},
		{"bytes vs int", BytesValue("5"), IntValue(5), false},
		{"equal ips", IPValue(netip.MustParseAddr("10.0.0.1")), IPValue(netip.MustParseAddr("10.0.0.1")), true},
		{"v4 vs v4-mapped v6", IPValue(netip.MustParseAddr("10.0.0.1")), IPValue(netip.MustParseAddr("::ffff:10.0.0.1")), false},
		{"equal arrays", a1, a2, true},
		{"order matters in arrays", a1, a3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := valueEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("valueEqual() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEscapeBytes(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{[]byte("plain"), `"plain"`},
		{[]byte(`say "hi"`), `"say \"hi\""`},
		{[]byte("a\\b"), `"a\\b"`},
		{[]byte("line\nbreak"), `"line\nbreak"`},
		{[]byte{0x00, 0xff}, `"\x00\xff"`},
		{[]byte{}, `""`},
	}
	for _, tt := range tests {
		if got := escapeBytes(tt.in); got != tt.want {
			t.Errorf("escapeBytes(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestOrderValues(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Value
		want    int
		ordered bool
	}{
		{"int less", IntValue(1), IntValue(2), -1, true},
		{"int equal", IntValue(2), IntValue(2), 0, true},
		{"int greater", IntValue(3), IntValue(2), 1, true},
		{"bytes lexicographic", BytesValue("abc"), BytesValue("abd"), -1, true},
		{"bytes prefix orders first", BytesValue("ab"), BytesValue("abc"), -1, true},
		{"ip v4", IPValue(netip.MustParseAddr("10.0.0.1")), IPValue(netip.MustParseAddr("10.0.0.2")), -1, true},
		{"v4 sorts before v6", IPValue(netip.MustParseAddr("255.255.255.255")), IPValue(netip.MustParseAddr("::1")), -1, true},
		{"bool unordered", BoolValue(true), BoolValue(false), 0, false},
		{"mixed variants unordered", IntValue(1), BytesValue("1"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := orderValues(tt.a, tt.b)
			if ok != tt.ordered {
				t.Fatalf("ordered = %v, want %v", ok, tt.ordered)
			}
			if ok && sign(got) != tt.want {
				t.Errorf("orderValues() = %d, want sign %d", got, tt.want)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
