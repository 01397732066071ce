package sorter

import (
	"cmp"

	"github.com/kabu1204/go-sorter/types"
)

// SelectionSort swaps the leftmost minimum of the unsorted suffix into place,
// one position at a time. It always makes n(n-1)/2 comparisons and at most
// n-1 swaps. It is not stable: a swap can carry an element past others equal
// to it.
type SelectionSort[T any] struct {
	cmp types.Comparator[T]
}

// NewSelectionSort returns a selection sort over T's own order.
func NewSelectionSort[T cmp.Ordered]() *SelectionSort[T] {
	return NewSelectionSortFunc(types.Natural[T]())
}

// NewSelectionSortFunc returns a selection sort over the order cmp.
func NewSelectionSortFunc[T any](cmp types.Comparator[T]) *SelectionSort[T] {
	return &SelectionSort[T]{cmp: cmp}
}

func (ss *SelectionSort[T]) Sort(s []T) {
	for p := 0; p < len(s)-1; p++ {
		m := p
		for i := p + 1; i < len(s); i++ {
			if ss.cmp(s[i], s[m]) < 0 {
				m = i
			}
		}
		if m != p {
			s[p], s[m] = s[m], s[p]
		}
	}
}
