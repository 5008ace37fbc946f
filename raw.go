package hisparsebitset

import "github.com/arbory/hisparsebitset/internal/bitblock"

// rawBitSet is the owning three-level hierarchy: level0 is a single block
// (the root mask plus one Level1-pool index per set bit), level1 and data
// are pools of blocks threaded with freelists. Grounded on
// original_source/src/raw.rs.
//
// TRUSTED_HIERARCHY holds throughout: level0.mask bit a set always implies
// level1.blocks[level0.indices[a]] is non-empty, and likewise one level down
// for data blocks. insert/remove maintain this by construction - remove
// walks back up clearing each level's bit the instant its child becomes
// empty.
type rawBitSet struct {
	cfg    Config
	level0 block
	level1 *level
	data   *level
	diag   Diagnostics
}

func newRawBitSet(cfg Config) *rawBitSet {
	return &rawBitSet{
		cfg:    cfg,
		level0: newBlock(cfg.Level0Width),
		level1: newLevel(cfg.Level1Width, cfg.DataWidth),
		data:   newLevel(cfg.DataWidth, 0),
		diag:   NopDiagnostics{},
	}
}

// split decomposes a flat index into its (level0, level1, data) coordinates.
func (r *rawBitSet) split(i int) (a, c, d int) {
	d = i % r.cfg.DataWidth
	rest := i / r.cfg.DataWidth
	c = rest % r.cfg.Level1Width
	a = rest / r.cfg.Level1Width
	return
}

// insert adds i to the set, growing the hierarchy as needed. Returns true if
// i was not already present.
func (r *rawBitSet) insert(i int) bool {
	a, c, d := r.split(i)

	l1Idx := r.level0.getOrInsert(a, func() uint32 {
		idx, fromFreelist := r.level1.insertBlock()
		r.diag.BlockAllocated("level1", idx, fromFreelist)
		return idx
	})
	l1Block := &r.level1.blocks[l1Idx]

	dIdx := l1Block.getOrInsert(c, func() uint32 {
		idx, fromFreelist := r.data.insertBlock()
		r.diag.BlockAllocated("data", idx, fromFreelist)
		return idx
	})
	dBlock := &r.data.blocks[dIdx]

	return !dBlock.mask.SetBit(d, true)
}

// remove deletes i from the set, collapsing now-empty blocks back onto
// their pool's freelist and clearing parent bits as it unwinds. Returns
// true if i was present.
func (r *rawBitSet) remove(i int) bool {
	a, c, d := r.split(i)

	if !r.level0.mask.GetBit(a) {
		return false
	}
	l1Idx := r.level0.getOrZero(a)
	l1Block := &r.level1.blocks[l1Idx]

	if !l1Block.mask.GetBit(c) {
		return false
	}
	dIdx := l1Block.getOrZero(c)
	dBlock := &r.data.blocks[dIdx]

	if !dBlock.mask.SetBit(d, false) {
		return false
	}

	if dBlock.isEmpty() {
		r.data.removeEmptyBlockUnchecked(dIdx)
		r.diag.BlockFreed("data", dIdx)
		l1Block.removeUnchecked(c)

		if l1Block.isEmpty() {
			r.level1.removeEmptyBlockUnchecked(l1Idx)
			r.diag.BlockFreed("level1", l1Idx)
			r.level0.removeUnchecked(a)
		}
	}
	return true
}

// contains reports whether i is a member.
func (r *rawBitSet) contains(i int) bool {
	a, c, d := r.split(i)

	if !r.level0.mask.GetBit(a) {
		return false
	}
	l1Block := &r.level1.blocks[r.level0.getOrZero(a)]

	if !l1Block.mask.GetBit(c) {
		return false
	}
	dBlock := &r.data.blocks[l1Block.getOrZero(c)]

	return dBlock.mask.GetBit(d)
}

func (r *rawBitSet) isEmpty() bool {
	return r.level0.isEmpty()
}

// blockCount returns the number of live (non-sentinel) data blocks, used by
// BitSet.LenBlocks.
func (r *rawBitSet) blockCount() int {
	n := 0
	r.level0.mask.BitsIter().Traverse(func(a int) bool {
		l1Block := &r.level1.blocks[r.level0.getOrZero(a)]
		l1Block.mask.BitsIter().Traverse(func(c int) bool {
			n++
			return true
		})
		return true
	})
	return n
}

// buildFromLevelMasks walks src's data blocks in ascending order via
// BlockIter and push_block's each one straight into a fresh rawBitSet,
// caching the parent Level1 block index across consecutive Data blocks that
// share it. Ascending order guarantees each (a, c) pair is visited at most
// once, so every Data block can be appended directly rather than replayed
// bit by bit through insert - the bulk-build path spec.md §4.3 describes.
// Empty blocks (possible from a lazy, non-TrustedHierarchy source) are
// already skipped by BlockIter itself.
func buildFromLevelMasks(cfg Config, src LevelMasks) *rawBitSet {
	out := newRawBitSet(cfg)

	haveA, lastA := false, -1
	var l1Idx uint32

	NewBlockIter(src).Traverse(func(db DataBlock) bool {
		a, c, _ := out.split(db.StartIndex) // StartIndex is always d == 0

		if !haveA || a != lastA {
			l1Idx = out.level0.getOrInsert(a, func() uint32 {
				idx, fromFreelist := out.level1.insertBlock()
				out.diag.BlockAllocated("level1", idx, fromFreelist)
				return idx
			})
			lastA, haveA = a, true
		}

		dIdx := out.data.pushBlock(block{mask: db.Bits.Clone()})
		out.diag.BlockAllocated("data", dIdx, false)
		out.level1.blocks[l1Idx].insertUnchecked(c, dIdx)

		return true
	})

	return out
}

// --- LevelMasks / IterSource ---

func (r *rawBitSet) Config() Config {
	return r.cfg
}

func (r *rawBitSet) TrustedHierarchy() bool {
	return true
}

func (r *rawBitSet) Level0Mask() bitblock.Block {
	return r.level0.mask
}

func (r *rawBitSet) Level1Mask(a int) bitblock.Block {
	return r.level1.blocks[r.level0.getOrZero(a)].mask
}

func (r *rawBitSet) DataMask(a, c int) bitblock.Block {
	l1Idx := r.level0.getOrZero(a)
	dIdx := r.level1.blocks[l1Idx].getOrZero(c)
	return r.data.blocks[dIdx].mask
}

func (r *rawBitSet) NewIterState() iterState {
	return nil
}

func (r *rawBitSet) InitLevel1BlockData(_ iterState, a int) (bitblock.Block, bool, level1BlockData) {
	l1Idx := r.level0.getOrZero(a)
	l1Block := &r.level1.blocks[l1Idx]
	return l1Block.mask, !l1Block.isEmpty(), l1Idx
}

func (r *rawBitSet) DataMaskFromBlockData(data level1BlockData, c int) bitblock.Block {
	l1Idx := data.(uint32)
	dIdx := r.level1.blocks[l1Idx].getOrZero(c)
	return r.data.blocks[dIdx].mask
}
