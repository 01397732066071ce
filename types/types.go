package types

import (
	"cmp"
	"sort"
)

// Comparator returns a negative number when e1 orders before e2, zero when
// they are equal and a positive number otherwise. It must be a total order.
type Comparator[T any] func(e1, e2 T) int

// Natural is the order of T's own < operator.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Array is a slice together with the order its elements are sorted by.
type Array[T any] struct {
	Data []T
	Cmp  Comparator[T]
}

// Upper returns the index of the first element of Data[:n] that orders after
// x, or n if there is none. Data[:n] must be sorted.
func (s *Array[T]) Upper(n int, x T) int {
	return sort.Search(n, func(j int) bool { return s.Cmp(s.Data[j], x) > 0 })
}
