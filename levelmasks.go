package hisparsebitset

import "github.com/arbory/hisparsebitset/internal/bitblock"

// LevelMasks is the abstract contract exposing per-level masks. Both
// concrete bitsets (*BitSet) and lazy composites (*Apply, *Reduce) implement
// it, so set-algebraic operators can be composed over either without caring
// which.
//
// Absent subtrees resolve to an all-zero mask rather than requiring the
// caller to check bounds first: Level1Mask(a)/DataMask(a, c) are only
// meaningful for a/c values actually present in the parent mask, but calling
// them for an absent slot is always safe and returns zero.
type LevelMasks interface {
	// Config returns the level-width configuration all sources participating
	// in one expression must share.
	Config() Config
	// TrustedHierarchy reports whether a set bit in a higher-level mask is
	// guaranteed to correspond to a non-empty subtree underneath it.
	TrustedHierarchy() bool
	Level0Mask() bitblock.Block
	Level1Mask(level0Index int) bitblock.Block
	DataMask(level0Index, level1Index int) bitblock.Block
}

// level1BlockData is the per-root-slot cache an IterSource hands back from
// InitLevel1BlockData and later accepts in DataMaskFromBlockData. Concrete
// sources box their own cache shape in it (see *BitSet, *Apply, *Reduce);
// none of this module's code needs to know what is inside another source's
// cache.
type level1BlockData = any

// iterState is an IterSource's per-iterator scratch value, created by
// NewIterState and threaded through every InitLevel1BlockData call for the
// lifetime of one BlockIter/IndexIter.
type iterState = any

// IterSource is the iteration-extended variant of LevelMasks: it exposes a
// two-phase access pattern so a BlockIter can cache whatever accelerates
// repeated DataMask queries under the currently active Level0 slot, instead
// of re-deriving it on every Data block.
type IterSource interface {
	LevelMasks

	// NewIterState returns fresh per-iterator scratch. Trivial sources (like
	// *BitSet) return nil.
	NewIterState() iterState

	// InitLevel1BlockData computes and caches whatever derived state
	// accelerates subsequent DataMask queries under root slot a, returning
	// the Level1 mask and a hint of whether the subtree is non-empty.
	// Must not be relied upon to be called in increasing a order, but in
	// practice a BlockIter only ever calls it that way.
	InitLevel1BlockData(state iterState, a int) (mask bitblock.Block, nonEmpty bool, data level1BlockData)

	// DataMaskFromBlockData is the fast path for Data masks, using the cache
	// InitLevel1BlockData produced for the currently active root slot. Must
	// not be called for a root slot whose InitLevel1BlockData reported
	// nonEmpty=false, unless the source tolerates empty subtrees (Apply/
	// Reduce over Xor/Sub do; see ops.go).
	DataMaskFromBlockData(data level1BlockData, c int) bitblock.Block
}
