// Package bytesearch provides a reusable byte-substring searcher.
//
// A Searcher is built once per needle and reused against many haystacks,
// which is the access pattern of compiled "contains" comparisons: the needle
// is fixed at filter compile time while haystacks arrive per request.
// Implements Boyer-Moore-Horspool with a 256-entry skip table.
package bytesearch

// Searcher holds the preprocessed search state for one fixed needle.
// Safe for concurrent use: all state is written during New and only read
// afterwards.
type Searcher struct {
	needle []byte
	skip   [256]int
}

// New builds a Searcher for the given needle. The needle bytes are copied,
// so the caller may reuse its buffer.
func New(needle []byte) *Searcher {
	s := &Searcher{needle: append([]byte(nil), needle...)}
	for i := range s.skip {
		s.skip[i] = len(s.needle)
	}
	// Last needle byte is excluded: a mismatch there must shift by the
	// distance to the previous occurrence, not zero.
	for i := 0; i < len(s.needle)-1; i++ {
		s.skip[s.needle[i]] = len(s.needle) - 1 - i
	}
	return s
}

// Needle returns the needle this searcher was built for.
func (s *Searcher) Needle() []byte {
	return s.needle
}

// Index returns the byte offset of the first occurrence of the needle in
// haystack, or -1 if the needle does not occur. An empty needle occurs at
// offset 0 in every haystack. A needle longer than the haystack never
// occurs.
func (s *Searcher) Index(haystack []byte) int {
	n := len(s.needle)
	if n == 0 {
		return 0
	}
	if n > len(haystack) {
		return -1
	}

	last := n - 1
	pos := 0
	for pos+last < len(haystack) {
		if haystack[pos+last] == s.needle[last] && matchAt(haystack, s.needle, pos) {
			return pos
		}
		pos += s.skip[haystack[pos+last]]
	}
	return -1
}

// In reports whether the needle occurs anywhere in haystack.
func (s *Searcher) In(haystack []byte) bool {
	return s.Index(haystack) >= 0
}

// matchAt reports whether needle occurs in haystack starting at pos.
// The last byte has already been compared by the caller.
func matchAt(haystack, needle []byte, pos int) bool {
	for i := 0; i < len(needle)-1; i++ {
		if haystack[pos+i] != needle[i] {
			return false
		}
	}
	return true
}
