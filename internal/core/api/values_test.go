package api

import (
	"bytes"
	"errors"
	"net/netip"
	"strings"
	"testing"

	"github.com/solatis/sieve/internal/core/config"
	"github.com/solatis/sieve/internal/filter"
	"github.com/solatis/sieve/internal/types"
)

func testScheme(t *testing.T) *filter.Scheme {
	t.Helper()
	scheme, err := BuildScheme([]config.SchemaField{
		{Name: "http.method", Type: "bytes"},
		{Name: "port", Type: "int"},
		{Name: "ip.src", Type: "ip"},
		{Name: "tcp.syn", Type: "bool"},
		{Name: "http.headers", Type: "map(bytes)"},
		{Name: "ports", Type: "array(int)"},
	})
	if err != nil {
		t.Fatalf("BuildScheme failed: %v", err)
	}
	return scheme
}

func TestDecodeValues(t *testing.T) {
	scheme := testScheme(t)

	doc := `{
		"http.method": "GET",
		"port": 443,
		"ip.src": "10.1.2.3",
		"tcp.syn": true,
		"http.headers": {"host": "example.com"},
		"ports": [80, 443]
	}`

	ectx, err := DecodeValues(scheme, []byte(doc))
	if err != nil {
		t.Fatalf("DecodeValues failed: %v", err)
	}

	v, ok := ectx.FieldValue("http.method")
	if !ok {
		t.Fatal("http.method not set")
	}
	if !bytes.Equal([]byte(v.(filter.BytesValue)), []byte("GET")) {
		t.Errorf("http.method = %s, want GET", v)
	}

	v, _ = ectx.FieldValue("port")
	if v.(filter.IntValue) != 443 {
		t.Errorf("port = %s, want 443", v)
	}

	v, _ = ectx.FieldValue("ip.src")
	if netip.Addr(v.(filter.IPValue)) != netip.MustParseAddr("10.1.2.3") {
		t.Errorf("ip.src = %s, want 10.1.2.3", v)
	}

	v, _ = ectx.FieldValue("tcp.syn")
	if v.(filter.BoolValue) != true {
		t.Errorf("tcp.syn = %s, want true", v)
	}

	v, _ = ectx.FieldValue("http.headers")
	host, ok := v.(*filter.MapValue).Get("host")
	if !ok || !bytes.Equal([]byte(host.(filter.BytesValue)), []byte("example.com")) {
		t.Errorf("http.headers[host] = %v, want example.com", host)
	}

	v, _ = ectx.FieldValue("ports")
	items := v.(filter.ArrayValue).Items
	if len(items) != 2 || items[0].(filter.IntValue) != 80 || items[1].(filter.IntValue) != 443 {
		t.Errorf("ports = %s, want [80, 443]", v)
	}
}

func TestDecodeValuesAbsentFieldsStayUnset(t *testing.T) {
	scheme := testScheme(t)

	ectx, err := DecodeValues(scheme, []byte(`{"port": 80}`))
	if err != nil {
		t.Fatalf("DecodeValues failed: %v", err)
	}
	if _, ok := ectx.FieldValue("http.method"); ok {
		t.Error("http.method should be unset")
	}
	if _, ok := ectx.FieldValue("port"); !ok {
		t.Error("port should be set")
	}
}

func TestDecodeValuesErrors(t *testing.T) {
	scheme := testScheme(t)

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"malformed JSON", `{"port": `, "invalid values JSON"},
		{"trailing garbage", `{"port": 80}xyz`, "trailing data after document"},
		{"second document", `{"port": 80} {"port": 81}`, "trailing data after document"},
		{"unknown field", `{"foo": 1}`, `unknown field "foo"`},
		{"string for int", `{"port": "443"}`, "expected Int, got JSON string"},
		{"float for int", `{"port": 4.5}`, "expected a 64-bit integer"},
		{"number for bytes", `{"http.method": 7}`, "expected Bytes, got JSON number"},
		{"bad ip", `{"ip.src": "300.1.2.3"}`, "invalid IP address"},
		{"number for bool", `{"tcp.syn": 1}`, "expected Bool, got JSON number"},
		{"array for map", `{"http.headers": ["host"]}`, "expected Map(Bytes), got JSON array"},
		{"mixed element types", `{"ports": [80, "x"]}`, "element 1"},
		{"null scalar", `{"port": null}`, "expected Int, got JSON null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeValues(scheme, []byte(tt.doc))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestDecodeValuesUnknownField(t *testing.T) {
	scheme := testScheme(t)

	_, err := DecodeValues(scheme, []byte(`{"nope": true}`))
	var unknown *filter.UnknownFieldError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownFieldError, got %v", err)
	}
	if unknown.Name != "nope" {
		t.Errorf("unknown field = %q, want nope", unknown.Name)
	}
}

func TestDecodeValuesTooLarge(t *testing.T) {
	scheme := testScheme(t)

	doc := `{"http.method": "` + strings.Repeat("a", types.MaxValuesSize) + `"}`
	_, err := DecodeValues(scheme, []byte(doc))
	if !errors.Is(err, types.ErrValuesTooLarge) {
		t.Fatalf("expected ErrValuesTooLarge, got %v", err)
	}
}

func TestDecodeValuesDrivesExecution(t *testing.T) {
	scheme := testScheme(t)

	ast, err := scheme.Parse(`http.method != "POST" && port in {80 443}`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	compiled := ast.Compile()

	tests := []struct {
		doc  string
		want bool
	}{
		{`{"http.method": "GET", "port": 443}`, true},
		{`{"http.method": "GET", "port": 8080}`, false},
		{`{"http.method": "POST", "port": 443}`, false},
	}
	for _, tt := range tests {
		ectx, err := DecodeValues(scheme, []byte(tt.doc))
		if err != nil {
			t.Fatalf("DecodeValues(%s) failed: %v", tt.doc, err)
		}
		got, err := compiled.Execute(ectx)
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if got != tt.want {
			t.Errorf("Execute with %s = %v, want %v", tt.doc, got, tt.want)
		}
	}
}
