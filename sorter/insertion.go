package sorter

import (
	"cmp"

	"github.com/kabu1204/go-sorter/types"
)

// InsertionSort grows a sorted prefix one element at a time.
//
// In naive mode the next element is swapped backwards until it is no longer
// smaller than its left neighbour. Otherwise its place in the prefix is found
// by binary search and the element is moved there with a single rotation.
// The search lands after any elements equal to the one being placed, so both
// modes are stable.
type InsertionSort[T any] struct {
	naive bool
	cmp   types.Comparator[T]
}

// NewInsertionSort returns an insertion sort over T's own order; naive
// selects backward swaps over binary search and rotation.
func NewInsertionSort[T cmp.Ordered](naive bool) *InsertionSort[T] {
	return NewInsertionSortFunc(naive, types.Natural[T]())
}

// NewInsertionSortFunc is NewInsertionSort over the order cmp.
func NewInsertionSortFunc[T any](naive bool, cmp types.Comparator[T]) *InsertionSort[T] {
	return &InsertionSort[T]{naive: naive, cmp: cmp}
}

// Naive reports whether the sorter uses backward swaps instead of binary
// search and rotation.
func (is *InsertionSort[T]) Naive() bool { return is.naive }

func (is *InsertionSort[T]) Sort(s []T) {
	arr := &types.Array[T]{Data: s, Cmp: is.cmp}
	for u := 1; u < len(s); u++ {
		if is.naive {
			for i := u; i > 0 && arr.Less(i, i-1); i-- {
				arr.Swap(i, i-1)
			}
			continue
		}
		arr.RotateRight(arr.Upper(u, s[u]), u)
	}
}
