package hisparsebitset

import "github.com/arbory/hisparsebitset/internal/bitblock"

// nullIndex marks an empty Level freelist. Index 0 cannot serve for that,
// since it is always the permanent sentinel "empty" block (which is also
// what an unoccupied child slot holds) and can therefore never be a
// legitimate freelist head.
const nullIndex uint32 = ^uint32(0)

// block is a hierarchy node: a bitblock.Block mask plus one child index per
// mask bit, indexing into the next level's pool. mask bit k set implies
// indices[k] refers to a live child; mask bit k clear implies indices[k] is
// the zero sentinel.
type block struct {
	mask    bitblock.Block
	indices []uint32
}

func newBlock(maskWidth int) block {
	return block{
		mask:    bitblock.New(maskWidth),
		indices: make([]uint32, maskWidth),
	}
}

// getOrZero reads indices[k] unchecked. Safe for absent children because
// pool slot 0 is the permanent empty block: an absent child simply resolves
// to that empty block instead of requiring a branch.
func (b *block) getOrZero(k int) uint32 {
	return b.indices[k]
}

// getOrInsert returns indices[k] if mask bit k is set, otherwise allocates a
// new child slot via alloc, stores it, and returns it.
func (b *block) getOrInsert(k int, alloc func() uint32) uint32 {
	if b.mask.GetBit(k) {
		return b.indices[k]
	}
	idx := alloc()
	b.mask.SetBit(k, true)
	b.indices[k] = idx
	return idx
}

// insertUnchecked requires mask bit k to be clear; it sets the mask and
// stores idx.
func (b *block) insertUnchecked(k int, idx uint32) {
	b.mask.SetBit(k, true)
	b.indices[k] = idx
}

// removeUnchecked requires mask bit k to be set; it clears the mask bit and
// zeroes the index slot.
func (b *block) removeUnchecked(k int) {
	b.mask.SetBit(k, false)
	b.indices[k] = 0
}

func (b *block) isEmpty() bool {
	return b.mask.IsZero()
}

func (b *block) clone() block {
	cp := block{mask: b.mask.Clone(), indices: make([]uint32, len(b.indices))}
	copy(cp.indices, b.indices)
	return cp
}

// newDataBlock builds a data-level block: a block whose indices array has
// zero elements, since only its mask carries membership.
func newDataBlock(maskWidth int) block {
	return block{mask: bitblock.New(maskWidth)}
}
