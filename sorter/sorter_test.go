package sorter

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabu1204/go-sorter/check"
	"github.com/kabu1204/go-sorter/types"
)

// tagged compares by Key only; Tag tells equal keys apart.
type tagged struct {
	Key int
	Tag string
}

func byKey(a, b tagged) int { return a.Key - b.Key }

func TestSortsReversed(t *testing.T) {
	for _, a := range Algorithms[int]() {
		t.Run(a.Name, func(t *testing.T) {
			s := []int{5, 4, 3, 2, 1}
			a.Sorter.Sort(s)
			assert.Equal(t, []int{1, 2, 3, 4, 5}, s)
		})
	}
}

func TestSortsBoundaries(t *testing.T) {
	for _, a := range Algorithms[int]() {
		t.Run(a.Name, func(t *testing.T) {
			empty := []int{}
			a.Sorter.Sort(empty)
			assert.Empty(t, empty)

			var nilSlice []int
			a.Sorter.Sort(nilSlice)
			assert.Nil(t, nilSlice)

			single := []int{1}
			a.Sorter.Sort(single)
			assert.Equal(t, []int{1}, single)
		})
	}
}

func TestSortsAlreadySorted(t *testing.T) {
	for _, a := range Algorithms[int]() {
		t.Run(a.Name, func(t *testing.T) {
			s := []int{1, 2, 3, 4, 5}
			a.Sorter.Sort(s)
			assert.Equal(t, []int{1, 2, 3, 4, 5}, s)
		})
	}
}

func TestSortsRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 31, 64, 100, 257}
	for _, a := range Algorithms[int]() {
		t.Run(a.Name, func(t *testing.T) {
			for _, n := range sizes {
				before := make([]int, n)
				for i := range before {
					before[i] = rng.Intn(n/2+1) - n/4
				}
				s := slices.Clone(before)
				a.Sorter.Sort(s)
				require.Truef(t, check.IsSorted(s, types.Natural[int]()), "n=%d: %v", n, s)
				require.Truef(t, check.IsPermutation(before, s), "n=%d: %v is not a permutation of %v", n, s, before)

				want := slices.Clone(before)
				slices.Sort(want)
				require.Equal(t, want, s)
			}
		})
	}
}

func TestSortIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, a := range Algorithms[float64]() {
		t.Run(a.Name, func(t *testing.T) {
			s := make([]float64, 50)
			for i := range s {
				s[i] = rng.Float64() * 100
			}
			a.Sorter.Sort(s)
			once := slices.Clone(s)
			a.Sorter.Sort(s)
			assert.Equal(t, once, s)
		})
	}
}

func TestSortsStrings(t *testing.T) {
	for _, a := range Algorithms[string]() {
		t.Run(a.Name, func(t *testing.T) {
			s := []string{"pear", "apple", "fig", "banana", "apple"}
			a.Sorter.Sort(s)
			assert.Equal(t, []string{"apple", "apple", "banana", "fig", "pear"}, s)
		})
	}
}

func TestStability(t *testing.T) {
	in := []tagged{{2, "a"}, {2, "b"}, {1, "c"}, {1, "d"}}
	want := []tagged{{1, "c"}, {1, "d"}, {2, "a"}, {2, "b"}}
	for _, a := range AlgorithmsFunc(byKey) {
		if !a.Stable {
			continue
		}
		t.Run(a.Name, func(t *testing.T) {
			s := slices.Clone(in)
			a.Sorter.Sort(s)
			assert.Equal(t, want, s)
		})
	}
}

func TestStabilityRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, a := range AlgorithmsFunc(byKey) {
		t.Run(a.Name, func(t *testing.T) {
			for round := 0; round < 20; round++ {
				before := make([]tagged, 40)
				for i := range before {
					before[i] = tagged{Key: rng.Intn(5), Tag: string(rune('A' + i))}
				}
				s := slices.Clone(before)
				a.Sorter.Sort(s)
				require.True(t, check.IsSorted(s, byKey))
				require.True(t, check.IsPermutation(before, s))
				if a.Stable {
					require.Truef(t, check.IsStableSort(before, s, byKey), "unstable result %v", s)
				}
			}
		})
	}
}

// Selection sort swaps the leftmost minimum to the front, carrying (2,a)
// past (2,b).
func TestSelectionSortIsNotStable(t *testing.T) {
	s := []tagged{{2, "a"}, {2, "b"}, {1, "c"}}
	NewSelectionSortFunc(byKey).Sort(s)
	assert.Equal(t, []tagged{{1, "c"}, {2, "b"}, {2, "a"}}, s)
	assert.False(t, check.IsStableSort([]tagged{{2, "a"}, {2, "b"}, {1, "c"}}, s, byKey))
}

func TestSelectionSortPicksLeftmostMinimum(t *testing.T) {
	s := []tagged{{3, "a"}, {1, "b"}, {1, "c"}}
	NewSelectionSortFunc(byKey).Sort(s)
	assert.Equal(t, tagged{1, "b"}, s[0])
}

func TestLookup(t *testing.T) {
	all := Algorithms[int]()
	for _, name := range []string{"bubble", "insertion-naive", "insertion", "selection"} {
		s, ok := Lookup(all, name)
		require.Truef(t, ok, "missing %q", name)
		require.NotNil(t, s)
	}
	_, ok := Lookup(all, "quick")
	assert.False(t, ok)
}
