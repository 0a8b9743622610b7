package rangeset

import (
	"cmp"
	"math"
	"net/netip"
)

// Ints returns an empty set of signed 64-bit integers.
func Ints() *Set[int64] {
	return New(cmp.Compare[int64], func(a int64) (int64, bool) {
		if a == math.MaxInt64 {
			return 0, false
		}
		return a + 1, true
	})
}

// Addrs returns an empty set of IP addresses. The netip ordering sorts
// every IPv4 address before every IPv6 address, and Next never crosses
// from one family into the other, so ranges stay within a single family.
func Addrs() *Set[netip.Addr] {
	return New(netip.Addr.Compare, func(a netip.Addr) (netip.Addr, bool) {
		succ := a.Next()
		return succ, succ.IsValid()
	})
}
