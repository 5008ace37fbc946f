package hisparsebitset

import "github.com/arbory/hisparsebitset/internal/bitblock"

// DataBlock is one (start index, bits) pair emitted by BlockIter: Bits' bit
// k is set iff StartIndex+k is a member of the set BlockIter was built
// over.
type DataBlock struct {
	StartIndex int
	Bits       bitblock.Block
}

// passthroughIterSource adapts a plain LevelMasks (one with no accelerated
// per-root-slot cache of its own) to IterSource, so BlockIter never needs a
// separate code path for non-IterSource sources. Its "cache" is simply the
// root slot index itself, which is all DataMask(a, c) needs.
type passthroughIterSource struct {
	LevelMasks
}

func (p passthroughIterSource) NewIterState() iterState { return nil }

func (p passthroughIterSource) InitLevel1BlockData(_ iterState, a int) (bitblock.Block, bool, level1BlockData) {
	mask := p.Level1Mask(a)
	return mask, !mask.IsZero(), a
}

func (p passthroughIterSource) DataMaskFromBlockData(data level1BlockData, c int) bitblock.Block {
	return p.DataMask(data.(int), c)
}

func asIterSource(src LevelMasks) IterSource {
	if is, ok := src.(IterSource); ok {
		return is
	}
	return passthroughIterSource{src}
}

// BlockIter walks any LevelMasks source depth-first, emitting one DataBlock
// per non-empty Data block in ascending index order. Grounded on
// original_source/src/iter/caching.rs: it caches the active root slot's
// Level1BlockData across every Data block visited under that slot, instead
// of re-deriving it per Data block.
type BlockIter struct {
	src   IterSource
	cfg   Config
	state iterState

	started bool
	level0Q *bitblock.BitQueue
	curA    int
	curC    int
	level1Q *bitblock.BitQueue
	curData level1BlockData
}

// NewBlockIter returns a BlockIter over src starting from the beginning.
func NewBlockIter(src LevelMasks) *BlockIter {
	is := asIterSource(src)
	return &BlockIter{
		src:   is,
		cfg:   src.Config(),
		state: is.NewIterState(),
	}
}

func (it *BlockIter) ensureLevel0Queue() {
	if !it.started {
		it.level0Q = it.src.Level0Mask().BitsIter()
		it.started = true
	}
}

// advanceToNextLevel1 walks level0Q until it finds a root slot whose
// Level1BlockData reports a non-empty subtree, or the source is exhausted.
// Returns false once there are no more root slots to try.
func (it *BlockIter) advanceToNextLevel1() bool {
	for {
		a, ok := it.level0Q.Next()
		if !ok {
			it.level1Q = nil
			return false
		}
		mask, nonEmpty, data := it.src.InitLevel1BlockData(it.state, a)
		if !nonEmpty {
			continue
		}
		it.curA = a
		it.curData = data
		it.level1Q = mask.BitsIter()
		return true
	}
}

// Next returns the next non-empty DataBlock, or (nil, false) once the
// source is exhausted.
func (it *BlockIter) Next() (*DataBlock, bool) {
	it.ensureLevel0Queue()

	for {
		if it.level1Q == nil {
			if !it.advanceToNextLevel1() {
				return nil, false
			}
		}

		c, ok := it.level1Q.Next()
		if !ok {
			it.level1Q = nil
			continue
		}

		bits := it.src.DataMaskFromBlockData(it.curData, c)
		if bits.IsZero() {
			// Hierarchy said non-empty but the actual Data mask came back
			// empty - possible for lazy Or/Xor/Sub trees that aren't
			// TrustedHierarchy. Skip and keep scanning.
			continue
		}

		it.curC = c
		start := it.curA*it.cfg.Level1Width*it.cfg.DataWidth + c*it.cfg.DataWidth
		return &DataBlock{StartIndex: start, Bits: bits}, true
	}
}

// Traverse visits every DataBlock in ascending order, calling f for each.
// f returns false to stop early.
func (it *BlockIter) Traverse(f func(DataBlock) bool) {
	for {
		db, ok := it.Next()
		if !ok || !f(*db) {
			return
		}
	}
}

// Cursor captures a resume point for the NEXT, not-yet-emitted block: the
// block just returned by Next is not re-emitted after MoveTo. Call
// immediately after Next returns a block.
func (it *BlockIter) Cursor() BlockCursor {
	level1Next := uint32(0)
	if it.level1Q != nil {
		level1Next = uint32(it.level1Q.Current())
	}
	return BlockCursor{Level0Index: uint32(it.curA), Level1NextIndex: level1Next}
}

// currentCursor captures a resume point for the block most recently
// returned by Next ITSELF (inclusive) - used by IndexIter to re-fetch the
// same Data block when resuming mid-way through it.
func (it *BlockIter) currentCursor() BlockCursor {
	return BlockCursor{Level0Index: uint32(it.curA), Level1NextIndex: uint32(it.curC)}
}

// MoveTo resumes iteration from a previously captured cursor, discarding
// anything already produced before it.
func (it *BlockIter) MoveTo(c BlockCursor) {
	it.started = true
	it.level0Q = it.src.Level0Mask().BitsIter()
	it.level0Q.ZeroFirstN(int(c.Level0Index))

	a, ok := it.level0Q.Next()
	if !ok {
		it.level1Q = nil
		return
	}
	mask, nonEmpty, data := it.src.InitLevel1BlockData(it.state, a)
	it.curA = a
	it.curData = data
	if !nonEmpty {
		it.level1Q = nil
		return
	}
	it.level1Q = mask.BitsIter()
	// Only zero the leading c* bits when we actually landed on the cursor's
	// own root slot. If a had to advance past c.Level0Index (its slot was
	// emptied by a Remove between capture and resume), a's Level1 queue
	// starts fresh - none of its bits were already emitted.
	if a == int(c.Level0Index) {
		it.level1Q.ZeroFirstN(int(c.Level1NextIndex))
	}
}

// IndexIter flattens a BlockIter's DataBlocks into individual set indices,
// in ascending order.
type IndexIter struct {
	blocks  *BlockIter
	cur     *DataBlock
	bitsQ   *bitblock.BitQueue
}

// NewIndexIter returns an IndexIter over src starting from the beginning.
func NewIndexIter(src LevelMasks) *IndexIter {
	return &IndexIter{blocks: NewBlockIter(src)}
}

// Next returns the next set index, or (0, false) once exhausted.
func (it *IndexIter) Next() (int, bool) {
	for {
		if it.bitsQ == nil {
			db, ok := it.blocks.Next()
			if !ok {
				return 0, false
			}
			it.cur = db
			it.bitsQ = db.Bits.BitsIter()
		}
		k, ok := it.bitsQ.Next()
		if !ok {
			it.bitsQ = nil
			continue
		}
		return it.cur.StartIndex + k, true
	}
}

// Traverse visits every set index in ascending order, calling f for each.
// f returns false to stop early.
func (it *IndexIter) Traverse(f func(int) bool) {
	for {
		i, ok := it.Next()
		if !ok || !f(i) {
			return
		}
	}
}

// Cursor captures a resume point for the index just produced. If the
// current Data block still has unconsumed bits, the cursor points back at
// that SAME block (via BlockIter.currentCursor) plus a DataNextIndex
// offset into it, rather than at the next block - the block containing
// the cursor's remaining, not-yet-emitted members must be re-derived
// rather than skipped on resume.
func (it *IndexIter) Cursor() IndexCursor {
	if it.bitsQ != nil {
		return IndexCursor{BlockCursor: it.blocks.currentCursor(), DataNextIndex: uint32(it.bitsQ.Current())}
	}
	return IndexCursor{BlockCursor: it.blocks.Cursor(), DataNextIndex: 0}
}

// MoveTo resumes iteration from a previously captured cursor.
func (it *IndexIter) MoveTo(c IndexCursor) {
	it.blocks.MoveTo(c.BlockCursor)
	it.bitsQ = nil
	if it.blocks.level1Q == nil {
		return
	}
	// Re-derive the current block at the cursor's block position so
	// DataNextIndex can mask its leading bits out.
	db, ok := it.blocks.Next()
	if !ok {
		return
	}
	it.cur = db
	q := db.Bits.BitsIter()
	// Only mask when the re-derived block is the cursor's own block. If that
	// block was emptied since the cursor was taken, Next has landed on a
	// later block, none of whose bits were emitted yet.
	cfg := it.blocks.cfg
	cursorStart := (int(c.Level0Index)*cfg.Level1Width + int(c.Level1NextIndex)) * cfg.DataWidth
	if db.StartIndex == cursorStart {
		q.ZeroFirstN(int(c.DataNextIndex))
	}
	it.bitsQ = q
}
