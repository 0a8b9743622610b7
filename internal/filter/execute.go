package filter

import "net/netip"

/*
 * Execution: a compiled filter against one context of field values.
 *
 * The context is an array of optional values, one slot per scheme
 * field, type-checked on assignment. Execution walks the compiled tree:
 * and/or short-circuit left to right, xor evaluates all children, not
 * negates. Comparison leaves fetch their slot value; reading an unset
 * slot is an error, never a silent false.
 *
 * Array and map values evaluate element-wise: a comparison holds when
 * any element satisfies it, descending recursively through nested
 * containers.
 */

// ExecutionContext holds one optional value per field of its scheme.
// A context belongs to one evaluation at a time; reuse it through Reset
// but do not share it across goroutines.
type ExecutionContext struct {
	scheme *Scheme
	values []Value
}

// NewExecutionContext returns a context bound to scheme with every slot
// unset.
func NewExecutionContext(scheme *Scheme) *ExecutionContext {
	return &ExecutionContext{
		scheme: scheme,
		values: make([]Value, scheme.FieldCount()),
	}
}

// Scheme returns the scheme this context is bound to.
func (c *ExecutionContext) Scheme() *Scheme { return c.scheme }

// SetFieldValue stores a value for the named field. It fails with
// UnknownFieldError when the scheme does not declare the field and with
// FieldValueTypeMismatchError when the value's type disagrees with the
// declared type, including element types of arrays and maps. The slot
// keeps its previous contents on failure.
func (c *ExecutionContext) SetFieldValue(name string, v Value) error {
	f, ok := c.scheme.fieldByName(name)
	if !ok {
		return &UnknownFieldError{Name: name}
	}
	if v == nil {
		return &FieldValueTypeMismatchError{Field: name, Want: f.Type}
	}
	if !valueMatches(f.Type, v) {
		return &FieldValueTypeMismatchError{Field: name, Want: f.Type, Got: v.Type()}
	}
	c.values[f.Slot] = v
	return nil
}

// FieldValue returns the value currently set for the named field.
func (c *ExecutionContext) FieldValue(name string) (Value, bool) {
	f, ok := c.scheme.fieldByName(name)
	if !ok || c.values[f.Slot] == nil {
		return nil, false
	}
	return c.values[f.Slot], true
}

// Reset clears every slot so the context can be reused.
func (c *ExecutionContext) Reset() {
	for i := range c.values {
		c.values[i] = nil
	}
}

// Execute evaluates the filter against ctx. It fails with
// SchemeMismatchError when ctx was built from a different scheme
// instance, and with MissingValueError when a comparison reads a field
// no value was set for. Short-circuiting applies: comparisons skipped
// by && or || are never read.
func (f *Filter) Execute(ctx *ExecutionContext) (bool, error) {
	if ctx.scheme != f.scheme {
		return false, &SchemeMismatchError{}
	}
	return evalNode(&f.root, ctx)
}

func evalNode(n *compiledNode, ctx *ExecutionContext) (bool, error) {
	switch n.kind {
	case nodeAnd:
		for i := range n.children {
			ok, err := evalNode(&n.children[i], ctx)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	case nodeOr:
		for i := range n.children {
			ok, err := evalNode(&n.children[i], ctx)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	case nodeXor:
		result := false
		for i := range n.children {
			ok, err := evalNode(&n.children[i], ctx)
			if err != nil {
				return false, err
			}
			result = result != ok
		}
		return result, nil
	case nodeNot:
		ok, err := evalNode(&n.children[0], ctx)
		if err != nil {
			return false, err
		}
		return !ok, nil
	default: // nodeCompare
		v := ctx.values[n.cmp.slot]
		if v == nil {
			return false, &MissingValueError{Field: n.cmp.name}
		}
		return n.cmp.eval(v), nil
	}
}

// eval applies the comparison to one value, descending element-wise
// into arrays and maps: any matching element satisfies the comparison.
func (c *compiledComparison) eval(v Value) bool {
	switch v := v.(type) {
	case ArrayValue:
		for _, item := range v.Items {
			if c.eval(item) {
				return true
			}
		}
		return false
	case *MapValue:
		for _, k := range v.keys {
			if c.eval(v.entries[k]) {
				return true
			}
		}
		return false
	}

	switch c.op {
	case OpEq:
		return valueEqual(v, c.lit)
	case OpNe:
		return !valueEqual(v, c.lit)
	case OpLt:
		ord, ok := orderValues(v, c.lit)
		return ok && ord < 0
	case OpLe:
		ord, ok := orderValues(v, c.lit)
		return ok && ord <= 0
	case OpGt:
		ord, ok := orderValues(v, c.lit)
		return ok && ord > 0
	case OpGe:
		ord, ok := orderValues(v, c.lit)
		return ok && ord >= 0
	case OpContains:
		b, ok := v.(BytesValue)
		return ok && c.searcher.In(b)
	case OpMatches:
		b, ok := v.(BytesValue)
		return ok && c.matcher.IsMatch(b)
	case OpIn:
		switch v := v.(type) {
		case IntValue:
			return c.ints.Contains(int64(v))
		case IPValue:
			return c.addrs.Contains(netip.Addr(v))
		case BytesValue:
			_, ok := c.strs[string(v)]
			return ok
		default:
			return false
		}
	case OpBitAnd:
		n, ok := v.(IntValue)
		return ok && int64(n)&c.mask != 0
	default:
		return false
	}
}
