package filter

import (
	"bytes"
	"cmp"
	"net/netip"
)

/*
 * Strict partial ordering over runtime values.
 *
 * Int orders by signed value, Bytes lexicographically byte by byte, IP
 * by the netip ordering (every IPv4 address before every IPv6 address,
 * then by address bytes). Bool, Array and Map have no defined order.
 * The parser consults typeOrdered to reject ordering operators on
 * unordered fields, so the executor never sees an incomparable pair.
 */

// typeOrdered reports whether values of t have a defined total order.
func typeOrdered(t Type) bool {
	switch t {
	case TypeInt, TypeBytes, TypeIP:
		return true
	default:
		return false
	}
}

// orderValues compares two values of the same scalar domain. The result
// is negative, zero or positive like the cmp package. The second result
// is false when the domain is unordered or the variants differ.
func orderValues(a, b Value) (int, bool) {
	switch av := a.(type) {
	case IntValue:
		bv, ok := b.(IntValue)
		if !ok {
			return 0, false
		}
		return cmp.Compare(int64(av), int64(bv)), true
	case BytesValue:
		bv, ok := b.(BytesValue)
		if !ok {
			return 0, false
		}
		return bytes.Compare(av, bv), true
	case IPValue:
		bv, ok := b.(IPValue)
		if !ok {
			return 0, false
		}
		return netip.Addr(av).Compare(netip.Addr(bv)), true
	default:
		return 0, false
	}
}
