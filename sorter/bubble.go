package sorter

import (
	"cmp"

	"github.com/kabu1204/go-sorter/types"
)

// BubbleSort sweeps the slice left to right swapping adjacent elements that
// are out of order, until a sweep makes no swap. Equal elements are never
// swapped, so it is stable.
type BubbleSort[T any] struct {
	cmp types.Comparator[T]
}

// NewBubbleSort returns a bubble sort over T's own order.
func NewBubbleSort[T cmp.Ordered]() *BubbleSort[T] {
	return NewBubbleSortFunc(types.Natural[T]())
}

// NewBubbleSortFunc returns a bubble sort over the order cmp.
func NewBubbleSortFunc[T any](cmp types.Comparator[T]) *BubbleSort[T] {
	return &BubbleSort[T]{cmp: cmp}
}

func (b *BubbleSort[T]) Sort(s []T) {
	b.SortPasses(s)
}

// SortPasses sorts s and returns how many sweeps it took. Sorted input,
// including empty and single-element slices, takes exactly one.
func (b *BubbleSort[T]) SortPasses(s []T) int {
	passes := 0
	sorted := false
	for !sorted {
		sorted = true
		passes++
		for i := 1; i < len(s); i++ {
			if b.cmp(s[i-1], s[i]) > 0 {
				s[i-1], s[i] = s[i], s[i-1]
				sorted = false
			}
		}
	}
	return passes
}
