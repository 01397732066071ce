package types

type Iterator[T any] interface {
	Next() (T, bool)
	Len() int
}

type sliceIterator[T any] struct {
	index int
	slice []T
}

func (s *Array[T]) Iterator() *sliceIterator[T] {
	return &sliceIterator[T]{
		index: -1,
		slice: s.Data,
	}
}

func (it *sliceIterator[T]) hasNext() bool {
	return it.index < len(it.slice)-1
}

func (it *sliceIterator[T]) Next() (T, bool) {
	if it.hasNext() {
		it.index++
		return it.slice[it.index], true
	}
	var zero T
	return zero, false
}

func (it *sliceIterator[T]) Len() int {
	return len(it.slice)
}
