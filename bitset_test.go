package hisparsebitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScenarioFromSliceThenIter(t *testing.T) {
	s := FromSlice(Config64, []int{1, 2, 3})
	require.Equal(t, []int{1, 2, 3}, collect(t, s))
}

func TestScenarioIntersection(t *testing.T) {
	a := FromSlice(Config64, []int{1, 2, 3, 4})
	b := FromSlice(Config64, []int{3, 4, 5, 6})
	require.Equal(t, []int{3, 4}, collect(t, And(a, b)))
}

func TestScenarioReduceOr(t *testing.T) {
	a := FromSlice(Config64, []int{1, 2, 3})
	b := FromSlice(Config64, []int{3, 4, 5})
	c := FromSlice(Config64, []int{5, 6, 7})
	red, err := ReduceOp(OrOp{}, []LevelMasks{a, b, c})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, collect(t, red))
}

func TestScenarioCursorRoundTrip(t *testing.T) {
	s := FromSlice(Config64, []int{1, 2, 3, 4})
	it := s.Iter()

	first, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 1, first)
	second, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 2, second)

	cur := it.Cursor()

	resumed := NewIndexIter(s)
	resumed.MoveTo(cur)

	var rest []int
	resumed.Traverse(func(i int) bool {
		rest = append(rest, i)
		return true
	})
	require.Equal(t, []int{3, 4}, rest)
}

func TestScenarioRemoveAcrossLevel1Blocks(t *testing.T) {
	x := New(Config64)
	x.Insert(100)
	x.Insert(5720)
	x.Insert(219347)

	require.True(t, x.Remove(5720))
	require.False(t, x.Contains(5720))
	require.True(t, x.Contains(100))
	require.True(t, x.Contains(219347))
}

func TestScenarioXorOfIdenticalSetsIsEmpty(t *testing.T) {
	x := FromSlice(Config64, []int{10, 10000, 1000000})
	y := FromSlice(Config64, []int{10, 10000, 1000000})

	require.Empty(t, collect(t, Xor(x, y)))
}

func TestInsertPanicsOutOfRange(t *testing.T) {
	s := New(Config64)
	defer func() {
		if recover() == nil {
			t.Fatal("expected Insert to panic for an out-of-range index")
		}
	}()
	s.Insert(s.MaxCapacity())
}

func TestRemoveOutOfRangeIsSilentFalse(t *testing.T) {
	s := New(Config64)
	require.False(t, s.Remove(s.MaxCapacity()+1000))
}

func TestInsertRemoveIdempotence(t *testing.T) {
	s := New(Config64)
	s.Insert(42)
	s.Insert(42)
	require.True(t, s.Contains(42))
	require.Equal(t, 1, s.LenBlocks())

	require.True(t, s.Remove(42))
	require.False(t, s.Remove(42))
	require.False(t, s.Contains(42))
}

func TestEqual(t *testing.T) {
	a := FromSlice(Config64, []int{1, 2, 3})
	b := FromSlice(Config64, []int{1, 2, 3})
	c := FromSlice(Config64, []int{1, 2})

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestFromIterUsesRangeOverFunc(t *testing.T) {
	seq := func(yield func(int) bool) {
		for _, v := range []int{5, 1, 3, 1} {
			if !yield(v) {
				return
			}
		}
	}
	s := FromIter(Config64, seq)
	require.Equal(t, []int{1, 3, 5}, collect(t, s))
}
