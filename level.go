package hisparsebitset

// level is an append-allocated pool of blocks with a freelist threaded
// through empty blocks, grounded on original_source/src/level.rs. Slot 0 is
// a permanent sentinel "empty" block: it is never freed, and every dangling
// child index (mask bit clear) points to it, so "read the mask of a missing
// subtree" is an unchecked indexed load that always resolves to an
// all-zeros mask.
//
// The freelist head defaults to nullIndex (empty). A freed block's first
// mask word is overwritten with the previous freelist head - the same
// "reinterpret the freed cell's storage as a link" arena trick
// oriumgames-bevi/internal/scheduler.BitSet does NOT need (it never frees
// words, only grows), but which is the natural generalization of its
// exponential-growth pool allocator to a structure that also shrinks.
type level struct {
	blocks     []block
	freeHead   uint32
	blockWidth int
	indexWidth int // 0 for data-level pools (indices array is unused)
}

func newLevel(blockWidth, indexWidth int) *level {
	l := &level{
		blockWidth: blockWidth,
		indexWidth: indexWidth,
		freeHead:   nullIndex,
	}
	l.blocks = append(l.blocks, l.zeroBlock()) // slot 0: permanent empty sentinel
	return l
}

func (l *level) zeroBlock() block {
	if l.indexWidth == 0 {
		return newDataBlock(l.blockWidth)
	}
	return newBlock(l.blockWidth)
}

// insertBlock allocates a fresh, zeroed block and returns its pool index
// plus whether the slot came from the freelist rather than growing the
// pool, reusing a freelist slot if one is available.
func (l *level) insertBlock() (uint32, bool) {
	if l.freeHead != nullIndex {
		idx := l.freeHead
		l.freeHead = uint32(l.blocks[idx].mask.FirstWord())
		l.blocks[idx] = l.zeroBlock()
		return idx, true
	}
	l.blocks = append(l.blocks, l.zeroBlock())
	return uint32(len(l.blocks) - 1), false
}

// pushBlock appends b verbatim and returns its pool index. Used by
// buildFromLevelMasks's bulk-build path, which only ever appends in the
// source's ascending order and never needs freelist recycling.
func (l *level) pushBlock(b block) uint32 {
	l.blocks = append(l.blocks, b)
	return uint32(len(l.blocks) - 1)
}

// removeEmptyBlockUnchecked requires blocks[idx] to be empty. It threads the
// block onto the freelist.
func (l *level) removeEmptyBlockUnchecked(idx uint32) {
	l.blocks[idx].mask.SetFirstWord(uint64(l.freeHead))
	l.freeHead = idx
}

// fromBlocksUnchecked rebuilds a level directly from a pre-validated block
// slice - the only extension point a future serialization package would
// need (see SPEC_FULL.md §6); unused by this module itself.
func fromBlocksUnchecked(blockWidth, indexWidth int, blocks []block) *level {
	return &level{blockWidth: blockWidth, indexWidth: indexWidth, freeHead: nullIndex, blocks: blocks}
}
