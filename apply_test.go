package hisparsebitset

import (
	"testing"

	"github.com/arbory/hisparsebitset/internal/bitblock"
	"github.com/stretchr/testify/require"
)

// countingLevelMasks wraps a LevelMasks and counts Level1Mask calls, used to
// verify CanDiscardSubtree actually skips querying the other operand.
type countingLevelMasks struct {
	LevelMasks
	calls *int
}

func (c countingLevelMasks) Level1Mask(a int) bitblock.Block {
	*c.calls++
	return c.LevelMasks.Level1Mask(a)
}

func collect(t *testing.T, src LevelMasks) []int {
	t.Helper()
	var out []int
	NewIndexIter(src).Traverse(func(i int) bool {
		out = append(out, i)
		return true
	})
	return out
}

func TestApplyAnd(t *testing.T) {
	a := FromSlice(Config64, []int{1, 2, 3, 1000})
	b := FromSlice(Config64, []int{2, 3, 4, 1000})

	got := collect(t, And(a, b))
	require.Equal(t, []int{2, 3, 1000}, got)
}

func TestApplyOr(t *testing.T) {
	a := FromSlice(Config64, []int{1, 2})
	b := FromSlice(Config64, []int{2, 3})

	got := collect(t, Or(a, b))
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestApplyXor(t *testing.T) {
	a := FromSlice(Config64, []int{1, 2, 3})
	b := FromSlice(Config64, []int{2, 3, 4})

	got := collect(t, Xor(a, b))
	require.Equal(t, []int{1, 4}, got)
}

func TestApplySub(t *testing.T) {
	a := FromSlice(Config64, []int{1, 2, 3})
	b := FromSlice(Config64, []int{2})

	got := collect(t, Sub(a, b))
	require.Equal(t, []int{1, 3}, got)
}

func TestApplyAgainstDisjointSets(t *testing.T) {
	a := FromSlice(Config64, []int{1, 2})
	b := FromSlice(Config64, []int{100000, 100001})

	require.Empty(t, collect(t, And(a, b)))
	require.Equal(t, []int{1, 2, 100000, 100001}, collect(t, Or(a, b)))
}

func TestApplyOverMaterializesToSameSet(t *testing.T) {
	a := FromSlice(Config64, []int{1, 2, 3, 10000})
	b := FromSlice(Config64, []int{2, 3, 10000, 20000})

	lazy := Or(a, b)
	materialized := FromLevelMasks(Config64, lazy)

	require.Equal(t, collect(t, lazy), collect(t, materialized))
}

func TestAndDiscardsSubtreeWithoutQueryingOtherOperand(t *testing.T) {
	a := FromSlice(Config64, []int{4096}) // only in root slot a=1; root slot 0 is empty
	bCalls := 0
	b := countingLevelMasks{LevelMasks: FromSlice(Config64, []int{1}), calls: &bCalls} // member in root slot 0

	and := And(a, b)
	mask := and.Level1Mask(0)

	require.True(t, mask.IsZero())
	require.Equal(t, 0, bCalls, "AndOp.CanDiscardSubtree should skip querying b once a's mask is already empty")
}

func TestApplyTrustedHierarchy(t *testing.T) {
	a := FromSlice(Config64, []int{1, 2, 3})
	b := FromSlice(Config64, []int{2, 3, 4})

	if !And(a, b).TrustedHierarchy() {
		t.Errorf("And over trusted operands should be TrustedHierarchy")
	}
	if !Or(a, b).TrustedHierarchy() {
		t.Errorf("Or over trusted operands should be TrustedHierarchy")
	}
	if Xor(a, b).TrustedHierarchy() {
		t.Errorf("Xor can emit empty data blocks under a set hierarchy bit (S6), so it must not claim TrustedHierarchy")
	}
	if Sub(a, b).TrustedHierarchy() {
		t.Errorf("Sub can fully subtract a Data block under a set hierarchy bit, so it must not claim TrustedHierarchy")
	}
}

func TestApplyNestedExpression(t *testing.T) {
	a := FromSlice(Config64, []int{1, 2, 3})
	b := FromSlice(Config64, []int{2, 3, 4})
	c := FromSlice(Config64, []int{3, 4, 5})

	// (a | b) & c == {3, 4}
	got := collect(t, And(Or(a, b), c))
	require.Equal(t, []int{3, 4}, got)
}
