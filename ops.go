package hisparsebitset

import "github.com/arbory/hisparsebitset/internal/bitblock"

// Op is the small interface Apply and Reduce drive a binary/n-ary set
// operation through. It mirrors how oriumgames-bevi's AccessMeta.Conflicts
// dispatches a handful of fixed pairwise mask combinators (read/write
// conflict checks) rather than building a generic combinator framework: Op
// has exactly four implementations below, not an open-ended registry.
type Op interface {
	// HierarchyOp combines two higher-level (Level0/Level1) masks into the
	// mask that should drive further descent.
	HierarchyOp(a, b bitblock.Block) bitblock.Block
	// DataOp combines two Data masks into the result's Data mask.
	DataOp(a, b bitblock.Block) bitblock.Block
	// CanDiscardSubtree reports whether an empty mask on the left (first)
	// operand at a given hierarchy level proves the corresponding result
	// subtree is empty, letting Apply/Reduce skip querying the remaining
	// operand(s) there.
	// True for And/Sub, false for Or/Xor (an empty left side doesn't make
	// a-xor-b or a-or-b empty if the right side isn't).
	CanDiscardSubtree() bool
	// HierarchyOperandsContainResult reports whether a set bit in HierarchyOp's
	// output is guaranteed to correspond to a non-empty DataOp result below
	// it, i.e. whether the operation preserves TRUSTED_HIERARCHY when both
	// operands already have it. True for And and Or: their hierarchy_op is
	// AND/OR of two over trusted operands, so a set hierarchy bit always
	// traces back to at least one side's genuinely non-empty data. False for
	// Xor and Sub: hierarchy_op is a coarse over-approximation (OR, or the
	// left operand alone) that a same-valued or fully-subtracted Data block
	// can resolve to an empty DataOp result despite - see S6 (x^x is empty
	// but both operands' hierarchy bits are set).
	HierarchyOperandsContainResult() bool
}

// AndOp computes set intersection.
type AndOp struct{}

func (AndOp) HierarchyOp(a, b bitblock.Block) bitblock.Block {
	return bitblock.Combine(a, b, func(x, y uint64) uint64 { return x & y })
}

func (AndOp) DataOp(a, b bitblock.Block) bitblock.Block {
	return bitblock.Combine(a, b, func(x, y uint64) uint64 { return x & y })
}

func (AndOp) CanDiscardSubtree() bool { return true }
func (AndOp) HierarchyOperandsContainResult() bool { return true }

// OrOp computes set union.
type OrOp struct{}

func (OrOp) HierarchyOp(a, b bitblock.Block) bitblock.Block {
	return bitblock.Combine(a, b, func(x, y uint64) uint64 { return x | y })
}

func (OrOp) DataOp(a, b bitblock.Block) bitblock.Block {
	return bitblock.Combine(a, b, func(x, y uint64) uint64 { return x | y })
}

func (OrOp) CanDiscardSubtree() bool { return false }
func (OrOp) HierarchyOperandsContainResult() bool { return true }

// XorOp computes symmetric difference.
type XorOp struct{}

// HierarchyOp uses OR rather than XOR: a result bit can come from either
// operand alone, so the driving mask for descent must be the union - XOR-ing
// the hierarchy masks would wrongly hide subtrees present in exactly one
// operand whenever both happen to have the same higher-level bit set for
// unrelated reasons at a lower fan-out.
func (XorOp) HierarchyOp(a, b bitblock.Block) bitblock.Block {
	return bitblock.Combine(a, b, func(x, y uint64) uint64 { return x | y })
}

func (XorOp) DataOp(a, b bitblock.Block) bitblock.Block {
	return bitblock.Combine(a, b, func(x, y uint64) uint64 { return x ^ y })
}

func (XorOp) CanDiscardSubtree() bool { return false }
func (XorOp) HierarchyOperandsContainResult() bool { return false }

// SubOp computes set difference (a minus b).
type SubOp struct{}

// HierarchyOp is a's mask alone: a result bit requires presence in a
// regardless of b, so a's hierarchy mask alone bounds where results can be.
func (SubOp) HierarchyOp(a, _ bitblock.Block) bitblock.Block {
	return a.Clone()
}

func (SubOp) DataOp(a, b bitblock.Block) bitblock.Block {
	return bitblock.Combine(a, b, func(x, y uint64) uint64 { return x &^ y })
}

func (SubOp) CanDiscardSubtree() bool { return true }
func (SubOp) HierarchyOperandsContainResult() bool { return false }
