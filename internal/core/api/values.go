package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/netip"
	"sort"

	"github.com/solatis/sieve/internal/filter"
	"github.com/solatis/sieve/internal/types"
)

/*
 * The host-binding boundary: callers supply field values as a JSON
 * object keyed by schema field name, and this file converts them into
 * typed engine values.
 *
 * JSON shapes per declared type:
 *
 *   bool     JSON boolean
 *   int      JSON number without a fractional part
 *   bytes    JSON string (UTF-8 bytes taken verbatim)
 *   ip       JSON string in IPv4 or IPv6 notation
 *   array(T) JSON array of T shapes
 *   map(T)   JSON object whose values are T shapes
 *
 * Anything else rejects the request; a bad value never half-populates
 * the context because conversion completes before any slot is set.
 */

// DecodeValues parses a JSON values document and returns an execution
// context populated with the converted values. Unknown keys and type
// mismatches fail; fields absent from the document stay unset, which
// Execute reports as a missing value if the filter reads them.
func DecodeValues(scheme *filter.Scheme, raw []byte) (*filter.ExecutionContext, error) {
	if len(raw) > types.MaxValuesSize {
		return nil, types.ErrValuesTooLarge
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid values JSON: %w", err)
	}
	if err := dec.Decode(new(json.RawMessage)); err != io.EOF {
		return nil, fmt.Errorf("invalid values JSON: trailing data after document")
	}

	// Convert everything before touching the context so a failure leaves
	// nothing half-set.
	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)

	converted := make(map[string]filter.Value, len(doc))
	for _, name := range names {
		t, ok := scheme.FieldType(name)
		if !ok {
			return nil, &filter.UnknownFieldError{Name: name}
		}
		v, err := convertValue(t, doc[name])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		converted[name] = v
	}

	ectx := filter.NewExecutionContext(scheme)
	for _, name := range names {
		if err := ectx.SetFieldValue(name, converted[name]); err != nil {
			return nil, err
		}
	}
	return ectx, nil
}

// convertValue converts one decoded JSON value to the declared type.
func convertValue(t filter.Type, x any) (filter.Value, error) {
	if elem, ok := filter.ElemType(t); ok {
		switch {
		case filter.IsArray(t):
			items, ok := x.([]any)
			if !ok {
				return nil, typeError(t, x)
			}
			av := filter.ArrayValue{Elem: elem, Items: make([]filter.Value, len(items))}
			for i, item := range items {
				v, err := convertValue(elem, item)
				if err != nil {
					return nil, fmt.Errorf("element %d: %w", i, err)
				}
				av.Items[i] = v
			}
			return av, nil
		default: // Map(T)
			obj, ok := x.(map[string]any)
			if !ok {
				return nil, typeError(t, x)
			}
			keys := make([]string, 0, len(obj))
			for k := range obj {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			mv := filter.NewMap(elem)
			for _, k := range keys {
				v, err := convertValue(elem, obj[k])
				if err != nil {
					return nil, fmt.Errorf("key %q: %w", k, err)
				}
				if err := mv.Set(k, v); err != nil {
					return nil, err
				}
			}
			return mv, nil
		}
	}

	switch t {
	case filter.TypeBool:
		b, ok := x.(bool)
		if !ok {
			return nil, typeError(t, x)
		}
		return filter.BoolValue(b), nil
	case filter.TypeInt:
		num, ok := x.(json.Number)
		if !ok {
			return nil, typeError(t, x)
		}
		n, err := num.Int64()
		if err != nil {
			return nil, fmt.Errorf("expected a 64-bit integer, got %s", num)
		}
		return filter.IntValue(n), nil
	case filter.TypeBytes:
		s, ok := x.(string)
		if !ok {
			return nil, typeError(t, x)
		}
		return filter.BytesValue(s), nil
	case filter.TypeIP:
		s, ok := x.(string)
		if !ok {
			return nil, typeError(t, x)
		}
		addr, err := netip.ParseAddr(s)
		if err != nil {
			return nil, fmt.Errorf("invalid IP address %q", s)
		}
		return filter.IPValue(addr), nil
	default:
		return nil, typeError(t, x)
	}
}

// typeError describes a JSON shape mismatch in schema terms.
func typeError(t filter.Type, x any) error {
	return fmt.Errorf("expected %s, got JSON %s", t, jsonKind(x))
}

// jsonKind names the JSON shape of a decoded value for error messages.
func jsonKind(x any) string {
	switch x.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "value"
	}
}
