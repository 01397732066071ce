// Package sorter provides classic in-place comparison sorts behind a single
// Sorter contract.
//
// Every sorter orders a slice in place by the total order it was built with:
// the element type's own order for the NewXxx constructors, or the given
// comparator for the NewXxxFunc ones. A comparator that is not a total order
// leaves the slice in an unspecified permutation.
//
// Sorters carry only construction-time configuration, so one value may sort
// disjoint slices from several goroutines at once.
package sorter

import (
	"cmp"

	"github.com/kabu1204/go-sorter/types"
)

// Sorter sorts slices of T in place by a fixed total order.
type Sorter[T any] interface {
	// Sort orders s non-decreasingly in place. Empty and single-element
	// slices are left as they are.
	Sort(s []T)
}

// Named is a sorter registered under a stable name.
type Named[T any] struct {
	Name   string
	Stable bool
	Sorter Sorter[T]
}

// Algorithms returns every sorter for T's own order.
func Algorithms[T cmp.Ordered]() []Named[T] {
	return AlgorithmsFunc(types.Natural[T]())
}

// AlgorithmsFunc returns every sorter for the order cmp.
func AlgorithmsFunc[T any](cmp types.Comparator[T]) []Named[T] {
	return []Named[T]{
		{Name: "bubble", Stable: true, Sorter: NewBubbleSortFunc(cmp)},
		{Name: "insertion-naive", Stable: true, Sorter: NewInsertionSortFunc(true, cmp)},
		{Name: "insertion", Stable: true, Sorter: NewInsertionSortFunc(false, cmp)},
		{Name: "selection", Stable: false, Sorter: NewSelectionSortFunc(cmp)},
	}
}

// Lookup returns the sorter registered under name.
func Lookup[T any](all []Named[T], name string) (Sorter[T], bool) {
	for _, n := range all {
		if n.Name == name {
			return n.Sorter, true
		}
	}
	return nil, false
}

var (
	_ Sorter[int] = (*BubbleSort[int])(nil)
	_ Sorter[int] = (*InsertionSort[int])(nil)
	_ Sorter[int] = (*SelectionSort[int])(nil)
)
