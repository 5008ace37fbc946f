package bitblock

import "math/bits"

// BitQueue is a destructive snapshot iterator over a Block's set bits: each
// Next pops the lowest remaining set bit and clears it from the queue's own
// copy of the words (the source Block is untouched - see Block.BitsIter).
//
// The least-significant-bit isolation (w & -w, then trailing-zero count)
// mirrors oriumgames-bevi/internal/scheduler.BitSet.ForEach and NextSet,
// generalized from a single growable []uint64 to a fixed-width snapshot and
// rewritten in terms of math/bits.TrailingZeros64 instead of a manual
// shift-count loop.
type BitQueue struct {
	words []uint64
}

// Empty returns a BitQueue with no bits set, sized to width bits.
func Empty(width int) *BitQueue {
	return &BitQueue{words: make([]uint64, width/64)}
}

// Filled returns a BitQueue with every bit set, sized to width bits.
func Filled(width int) *BitQueue {
	q := &BitQueue{words: make([]uint64, width/64)}
	for i := range q.words {
		q.words[i] = ^uint64(0)
	}
	return q
}

// Next pops and returns the lowest remaining set bit's index. Returns
// (0, false) once the queue is exhausted.
func (q *BitQueue) Next() (int, bool) {
	for wi, w := range q.words {
		if w == 0 {
			continue
		}
		pos := bits.TrailingZeros64(w)
		q.words[wi] = w & (w - 1) // clear lowest set bit
		return wi*64 + pos, true
	}
	return 0, false
}

// Current returns the index of the bit Next would return without consuming
// it, or the queue's width if it is exhausted.
func (q *BitQueue) Current() int {
	for wi, w := range q.words {
		if w != 0 {
			return wi*64 + bits.TrailingZeros64(w)
		}
	}
	return len(q.words) * 64
}

// ZeroFirstN clears bits [0, k) without otherwise touching iteration state.
// Used to seek a queue to resume from a cursor.
func (q *BitQueue) ZeroFirstN(k int) {
	if k <= 0 {
		return
	}
	full := k / 64
	for i := 0; i < full && i < len(q.words); i++ {
		q.words[i] = 0
	}
	if full >= len(q.words) {
		return
	}
	rem := uint(k & 63)
	if rem != 0 {
		q.words[full] &^= (uint64(1) << rem) - 1
	}
}

// MaskOut ANDs the remaining bits with mask in place. Part of the BitQueue
// contract alongside ZeroFirstN/Traverse; this module's caching BlockIter
// doesn't need it (it re-snapshots a fresh BitQueue per root slot instead of
// filtering one in place), but it's required surface for any resumable
// iterator built directly over BitQueue, per original_source/bit_queue.rs.
func (q *BitQueue) MaskOut(mask Block) {
	for i := range q.words {
		q.words[i] &= mask.words[i]
	}
}

// Traverse visits remaining bits in ascending order, calling f(index) for
// each. f returns false to stop early; Traverse then returns false. Matches
// oriumgames-bevi/internal/scheduler.BitSet.ForEach's early-exit contract.
func (q *BitQueue) Traverse(f func(index int) bool) bool {
	for wi, w := range q.words {
		for w != 0 {
			lsb := w & -w
			pos := bits.TrailingZeros64(lsb)
			if !f(wi*64 + pos) {
				q.words[wi] = w ^ lsb
				return false
			}
			w ^= lsb
		}
		q.words[wi] = 0
	}
	return true
}
