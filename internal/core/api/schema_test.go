package api

import (
	"errors"
	"testing"

	"github.com/solatis/sieve/internal/core/config"
	"github.com/solatis/sieve/internal/filter"
)

func TestBuildScheme(t *testing.T) {
	tests := []struct {
		name    string
		fields  []config.SchemaField
		wantErr bool
	}{
		{
			name: "scalar fields",
			fields: []config.SchemaField{
				{Name: "http.method", Type: "bytes"},
				{Name: "port", Type: "int"},
				{Name: "ip.src", Type: "ip"},
				{Name: "tcp.syn", Type: "bool"},
			},
		},
		{
			name: "container fields",
			fields: []config.SchemaField{
				{Name: "http.headers", Type: "map(bytes)"},
				{Name: "ports", Type: "array(int)"},
				{Name: "matrix", Type: "array(array(int))"},
			},
		},
		{
			name:    "unknown type",
			fields:  []config.SchemaField{{Name: "x", Type: "float"}},
			wantErr: true,
		},
		{
			name: "duplicate name",
			fields: []config.SchemaField{
				{Name: "port", Type: "int"},
				{Name: "port", Type: "int"},
			},
			wantErr: true,
		},
		{
			name:    "invalid field name",
			fields:  []config.SchemaField{{Name: "not", Type: "int"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheme, err := BuildScheme(tt.fields)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildScheme failed: %v", err)
			}
			if scheme.FieldCount() != len(tt.fields) {
				t.Errorf("field count = %d, want %d", scheme.FieldCount(), len(tt.fields))
			}
		})
	}
}

func TestBuildSchemeDuplicateError(t *testing.T) {
	_, err := BuildScheme([]config.SchemaField{
		{Name: "port", Type: "int"},
		{Name: "port", Type: "bytes"},
	})
	var redef *filter.FieldRedefinitionError
	if !errors.As(err, &redef) {
		t.Fatalf("expected FieldRedefinitionError, got %v", err)
	}
	if redef.Name != "port" {
		t.Errorf("redefined field = %q, want port", redef.Name)
	}
}

func TestSchemaFingerprint(t *testing.T) {
	build := func(fields ...config.SchemaField) string {
		t.Helper()
		scheme, err := BuildScheme(fields)
		if err != nil {
			t.Fatalf("BuildScheme failed: %v", err)
		}
		return SchemaFingerprint(scheme)
	}

	a := build(
		config.SchemaField{Name: "http.method", Type: "bytes"},
		config.SchemaField{Name: "port", Type: "int"},
	)
	same := build(
		config.SchemaField{Name: "http.method", Type: "bytes"},
		config.SchemaField{Name: "port", Type: "int"},
	)
	reordered := build(
		config.SchemaField{Name: "port", Type: "int"},
		config.SchemaField{Name: "http.method", Type: "bytes"},
	)
	retyped := build(
		config.SchemaField{Name: "http.method", Type: "bytes"},
		config.SchemaField{Name: "port", Type: "bytes"},
	)

	if a != same {
		t.Error("identical schemas produced different fingerprints")
	}
	// Order defines slot indices, so reordering is a different schema.
	if a == reordered {
		t.Error("reordered schema produced identical fingerprint")
	}
	if a == retyped {
		t.Error("retyped schema produced identical fingerprint")
	}
	if len(a) != 64 {
		t.Errorf("fingerprint length = %d, want 64 hex chars", len(a))
	}
}
