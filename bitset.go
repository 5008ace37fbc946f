// Package hisparsebitset implements a hierarchical sparse bitset: a 3-level
// structure (Level0 root mask, Level1 pool, Data pool) over fixed-width
// bit blocks, plus a lazy set algebra (Apply, Reduce) that combines any
// number of such sets under And/Or/Xor/Sub without materializing a result.
//
// The module is single-threaded and synchronous throughout: no goroutines,
// channels, or blocking calls appear anywhere in it. Besides RawBitSet's own
// pool growth, the lazy operations and iterators also allocate per query:
// combined masks, BitQueue snapshots, per-root-slot block data and Reduce's
// cache slots are all fresh values.
package hisparsebitset

import (
	"iter"

	"github.com/arbory/hisparsebitset/internal/bitblock"
)

// BitSet is an owning hierarchical sparse bitset: the concrete storage that
// Apply/Reduce trees are ultimately built from.
type BitSet struct {
	raw *rawBitSet
}

// New returns an empty BitSet laid out per cfg. cfg must already be valid -
// construct it via NewConfig or one of the Config* presets.
func New(cfg Config) *BitSet {
	return &BitSet{raw: newRawBitSet(cfg)}
}

// NewWithDiagnostics is New, additionally reporting every block allocation
// and free through diag.
func NewWithDiagnostics(cfg Config, diag Diagnostics) *BitSet {
	b := New(cfg)
	b.raw.diag = diag
	return b
}

// Insert adds i to the set. Panics with *OutOfRangeError if i is outside
// [0, MaxCapacity()), matching the teacher's own panic-on-invariant-
// violation style for programmer errors rather than threading an error
// return through the hot insert path.
func (b *BitSet) Insert(i int) {
	if i < 0 || i >= b.raw.cfg.MaxCapacity() {
		panic(&OutOfRangeError{Index: i, Max: b.raw.cfg.MaxCapacity()})
	}
	b.raw.insert(i)
}

// Remove deletes i from the set. Returns false if i was not present - this
// is a normal outcome, not an error.
func (b *BitSet) Remove(i int) bool {
	if i < 0 || i >= b.raw.cfg.MaxCapacity() {
		return false
	}
	return b.raw.remove(i)
}

// Contains reports whether i is a member.
func (b *BitSet) Contains(i int) bool {
	if i < 0 || i >= b.raw.cfg.MaxCapacity() {
		return false
	}
	return b.raw.contains(i)
}

// IsEmpty reports whether the set has no members.
func (b *BitSet) IsEmpty() bool {
	return b.raw.isEmpty()
}

// LenBlocks returns the number of live Data blocks backing the set -
// useful for gauging fragmentation, not a count of members.
func (b *BitSet) LenBlocks() int {
	return b.raw.blockCount()
}

// MaxCapacity returns the largest index (exclusive) this BitSet's Config
// can address.
func (b *BitSet) MaxCapacity() int {
	return b.raw.cfg.MaxCapacity()
}

// Equal reports whether b and other contain exactly the same indices.
// other must share b's Config.
func (b *BitSet) Equal(other LevelMasks) bool {
	ai, oi := NewIndexIter(b), NewIndexIter(other)
	for {
		av, aok := ai.Next()
		ov, ook := oi.Next()
		if aok != ook || av != ov {
			return false
		}
		if !aok {
			return true
		}
	}
}

// FromIter builds a BitSet from a go1.24+ range-over-func index sequence.
func FromIter(cfg Config, seq iter.Seq[int]) *BitSet {
	b := New(cfg)
	for i := range seq {
		b.Insert(i)
	}
	return b
}

// FromSlice builds a BitSet containing exactly the indices in xs.
func FromSlice(cfg Config, xs []int) *BitSet {
	b := New(cfg)
	for _, i := range xs {
		b.Insert(i)
	}
	return b
}

// FromLevelMasks materializes any LevelMasks source (typically a lazy
// *Apply or *Reduce tree) into an owning BitSet with the same members.
func FromLevelMasks(cfg Config, src LevelMasks) *BitSet {
	return &BitSet{raw: buildFromLevelMasks(cfg, src)}
}

// BlockIter returns a fresh BlockIter over b.
func (b *BitSet) BlockIter() *BlockIter {
	return NewBlockIter(b)
}

// Iter returns a fresh IndexIter over b.
func (b *BitSet) Iter() *IndexIter {
	return NewIndexIter(b)
}

// --- LevelMasks / IterSource, delegating to the owning raw hierarchy ---

func (b *BitSet) Config() Config {
	return b.raw.Config()
}

func (b *BitSet) TrustedHierarchy() bool {
	return b.raw.TrustedHierarchy()
}

func (b *BitSet) Level0Mask() bitblock.Block {
	return b.raw.Level0Mask()
}

func (b *BitSet) Level1Mask(a int) bitblock.Block {
	return b.raw.Level1Mask(a)
}

func (b *BitSet) DataMask(a, c int) bitblock.Block {
	return b.raw.DataMask(a, c)
}

func (b *BitSet) NewIterState() iterState {
	return b.raw.NewIterState()
}

func (b *BitSet) InitLevel1BlockData(state iterState, a int) (bitblock.Block, bool, level1BlockData) {
	return b.raw.InitLevel1BlockData(state, a)
}

func (b *BitSet) DataMaskFromBlockData(data level1BlockData, c int) bitblock.Block {
	return b.raw.DataMaskFromBlockData(data, c)
}
