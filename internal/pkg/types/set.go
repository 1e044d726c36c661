package types

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Set is a generic hash set for comparable types.
//
// A Set is meant to be built once with NewSet and then only queried, which
// makes it safe to share between goroutines without locking. No method
// mutates the receiver.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the provided elements. Duplicates collapse.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	for _, d := range data {
		set[d] = struct{}{}
	}
	return set
}

// Contains reports whether v is a member of the set. A nil Set contains nothing.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// ToIter returns an iterator over all elements in the set.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}

// Sorted returns the elements of s in ascending order.
//
// Useful for logging and diagnostics where a stable ordering matters.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(s.ToIter())
}
