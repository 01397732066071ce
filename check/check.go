// Package check holds the oracles sorter implementations are tested against:
// sortedness, permutation preservation, stability and comparison counts.
package check

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/kabu1204/go-sorter/types"
)

// IsSorted reports whether s is non-decreasing under cmp.
func IsSorted[T any](s []T, cmp types.Comparator[T]) bool {
	return sort.IsSorted(&types.Array[T]{Data: s, Cmp: cmp})
}

// IsPermutation reports whether after holds exactly the elements of before,
// with the same multiplicities.
func IsPermutation[T comparable](before, after []T) bool {
	if len(before) != len(after) {
		return false
	}
	counts := &hashmap.HashMap{}
	for _, e := range before {
		k := key(e)
		var bucket []tally[T]
		if b, ok := counts.Get(k); ok {
			bucket = b.([]tally[T])
		}
		counts.Set(k, add(bucket, e))
	}
	for _, e := range after {
		k := key(e)
		b, ok := counts.Get(k)
		if !ok {
			return false
		}
		bucket, ok := take(b.([]tally[T]), e)
		if !ok {
			return false
		}
		counts.Set(k, bucket)
	}
	return true
}

// tally counts one distinct value. Values whose keys collide share a bucket
// and are told apart with ==.
type tally[T comparable] struct {
	v T
	n int
}

func add[T comparable](bucket []tally[T], e T) []tally[T] {
	for i := range bucket {
		if bucket[i].v == e {
			bucket[i].n++
			return bucket
		}
	}
	return append(bucket, tally[T]{v: e, n: 1})
}

func take[T comparable](bucket []tally[T], e T) ([]tally[T], bool) {
	for i := range bucket {
		if bucket[i].v == e {
			if bucket[i].n == 0 {
				return bucket, false
			}
			bucket[i].n--
			return bucket, true
		}
	}
	return bucket, false
}

// key renders e as a string, a key type hashmap can hash. Distinct values
// may render alike, e.g. through a GoString method.
func key[T comparable](e T) string {
	return fmt.Sprintf("%T:%#v", e, e)
}

// Reference returns the stable sorted copy of s: ordered by cmp, with equal
// elements kept in their input order. s is not modified.
func Reference[T any](s []T, cmp types.Comparator[T]) []T {
	mp := treemap.NewWith(utils.Comparator(func(a, b interface{}) int {
		return cmp(a.(T), b.(T))
	}))
	var it types.Iterator[T] = (&types.Array[T]{Data: s, Cmp: cmp}).Iterator()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		if group, found := mp.Get(e); found {
			mp.Put(e, append(group.([]T), e))
		} else {
			mp.Put(e, []T{e})
		}
	}
	out := make([]T, 0, it.Len())
	groups := mp.Iterator()
	for groups.Next() {
		out = append(out, groups.Value().([]T)...)
	}
	return out
}

// IsStableSort reports whether after is before sorted by cmp with every run
// of equal elements left in input order.
func IsStableSort[T comparable](before, after []T, cmp types.Comparator[T]) bool {
	want := Reference(before, cmp)
	if len(want) != len(after) {
		return false
	}
	for i := range want {
		if want[i] != after[i] {
			return false
		}
	}
	return true
}

// Counter counts the comparisons made through a comparator returned by
// Counting. It is safe for concurrent use.
type Counter struct {
	n int64
}

func (c *Counter) Load() int64 { return atomic.LoadInt64(&c.n) }
func (c *Counter) Reset()      { atomic.StoreInt64(&c.n, 0) }

// Counting wraps cmp so that every call is counted.
func Counting[T any](cmp types.Comparator[T]) (*Counter, types.Comparator[T]) {
	c := &Counter{}
	return c, func(e1, e2 T) int {
		atomic.AddInt64(&c.n, 1)
		return cmp(e1, e2)
	}
}
