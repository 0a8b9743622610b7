// Package rangeset implements ordered value sets stored as sorted,
// non-overlapping inclusive ranges.
//
// Membership sets in comparisons mix single values with ranges; storing
// them as merged ranges keeps lookups at O(log n) regardless of how wide
// the ranges are. Adjacent ranges are coalesced using the type's successor
// function, so inserting 1..3 and 4..6 yields the single range 1..6.
package rangeset

import "sort"

// Range is an inclusive interval. Lo is never greater than Hi.
type Range[T any] struct {
	Lo, Hi T
}

// Set is a collection of non-overlapping, non-adjacent inclusive ranges,
// sorted ascending. The zero value is not usable; construct with New,
// Ints or Addrs. Sets are built once and then only read, so Insert favors
// simplicity and Contains favors speed.
type Set[T any] struct {
	cmp    func(a, b T) int
	next   func(a T) (T, bool)
	ranges []Range[T]
}

// New returns an empty set over an ordering given by cmp (negative,
// zero or positive as in the cmp package) and a successor function next,
// which reports false when its argument has no successor.
func New[T any](cmp func(a, b T) int, next func(a T) (T, bool)) *Set[T] {
	return &Set[T]{cmp: cmp, next: next}
}

// Add inserts a single value.
func (s *Set[T]) Add(v T) {
	s.Insert(v, v)
}

// Insert adds the inclusive range lo..hi, merging it with any existing
// ranges it overlaps or is adjacent to. Inverted bounds are swapped.
func (s *Set[T]) Insert(lo, hi T) {
	if s.cmp(lo, hi) > 0 {
		lo, hi = hi, lo
	}
	merged := Range[T]{Lo: lo, Hi: hi}

	out := make([]Range[T], 0, len(s.ranges)+1)
	i := 0
	for i < len(s.ranges) && s.separated(s.ranges[i].Hi, merged.Lo) {
		out = append(out, s.ranges[i])
		i++
	}
	for i < len(s.ranges) && !s.separated(merged.Hi, s.ranges[i].Lo) {
		if s.cmp(s.ranges[i].Lo, merged.Lo) < 0 {
			merged.Lo = s.ranges[i].Lo
		}
		if s.cmp(s.ranges[i].Hi, merged.Hi) > 0 {
			merged.Hi = s.ranges[i].Hi
		}
		i++
	}
	out = append(out, merged)
	out = append(out, s.ranges[i:]...)
	s.ranges = out
}

// Contains reports whether v falls inside any range in the set.
func (s *Set[T]) Contains(v T) bool {
	i := sort.Search(len(s.ranges), func(i int) bool {
		return s.cmp(s.ranges[i].Hi, v) >= 0
	})
	return i < len(s.ranges) && s.cmp(s.ranges[i].Lo, v) <= 0
}

// Len returns the number of stored ranges after merging.
func (s *Set[T]) Len() int {
	return len(s.ranges)
}

// Empty reports whether the set holds no values.
func (s *Set[T]) Empty() bool {
	return len(s.ranges) == 0
}

// Ranges returns the merged ranges in ascending order. The returned slice
// is shared with the set and must not be modified.
func (s *Set[T]) Ranges() []Range[T] {
	return s.ranges
}

// separated reports whether hi lies strictly before lo with at least one
// representable value between them. Ranges separated this way must not
// merge; anything closer overlaps or is adjacent.
func (s *Set[T]) separated(hi, lo T) bool {
	if s.cmp(hi, lo) >= 0 {
		return false
	}
	succ, ok := s.next(hi)
	if !ok {
		return false
	}
	return s.cmp(succ, lo) < 0
}
