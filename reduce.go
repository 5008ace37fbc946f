package hisparsebitset

import "github.com/arbory/hisparsebitset/internal/bitblock"

// Reduce is the lazy n-ary fold of op across sets, left to right. Like
// Apply, it never materializes storage. Grounded on
// original_source/src/reduce.rs; unlike the Rust source's "cheaply
// re-cloneable iterator" requirement, sets here is a plain slice, which Go
// can re-index as many times as needed for free - see DESIGN.md.
type Reduce struct {
	op     Op
	sets   []LevelMasks
	policy CachePolicy
}

// ReduceOp returns the lazy fold op(sets[0], sets[1], ..., sets[n-1]). All
// sets must share a Config. Returns ErrEmptyReduce if sets is empty - a
// fold has no identity element to fall back on here (unlike a generic
// monoidal reduce, And/Or/Xor/Sub don't have a canonical "empty" LevelMasks
// to return instead). Defaults to FixedCachePolicy, matching
// original_source's DefaultCache = cache::FixedCache<32>.
func ReduceOp(op Op, sets []LevelMasks) (*Reduce, error) {
	return ReduceWithCache(op, sets, FixedCachePolicy)
}

// ReduceWithCache is ReduceOp with an explicit CachePolicy.
func ReduceWithCache(op Op, sets []LevelMasks, policy CachePolicy) (*Reduce, error) {
	if len(sets) == 0 {
		return nil, ErrEmptyReduce
	}
	return &Reduce{op: op, sets: sets, policy: policy}, nil
}

func (r *Reduce) Config() Config {
	return r.sets[0].Config()
}

func (r *Reduce) TrustedHierarchy() bool {
	if !r.op.HierarchyOperandsContainResult() {
		return false
	}
	for _, s := range r.sets {
		if !s.TrustedHierarchy() {
			return false
		}
	}
	return true
}

func (r *Reduce) Level0Mask() bitblock.Block {
	mask := r.sets[0].Level0Mask()
	for _, s := range r.sets[1:] {
		if r.op.CanDiscardSubtree() && mask.IsZero() {
			return mask
		}
		mask = r.op.HierarchyOp(mask, s.Level0Mask())
	}
	return mask
}

func (r *Reduce) Level1Mask(a int) bitblock.Block {
	mask := r.sets[0].Level1Mask(a)
	for _, s := range r.sets[1:] {
		if r.op.CanDiscardSubtree() && mask.IsZero() {
			return mask
		}
		mask = r.op.HierarchyOp(mask, s.Level1Mask(a))
	}
	return mask
}

func (r *Reduce) DataMask(a, c int) bitblock.Block {
	mask := r.sets[0].DataMask(a, c)
	for _, s := range r.sets[1:] {
		mask = r.op.DataOp(mask, s.DataMask(a, c))
	}
	return mask
}

type reduceIterState struct {
	sub []iterState
}

func (r *Reduce) NewIterState() iterState {
	sub := make([]iterState, len(r.sets))
	for i, s := range r.sets {
		if is, ok := s.(IterSource); ok {
			sub[i] = is.NewIterState()
		}
	}
	return &reduceIterState{sub: sub}
}

// reduceBlockData is what InitLevel1BlockData hands DataMaskFromBlockData:
// the root slot (so non-IterSource operands can fall back to a plain
// DataMask(a, c) call) plus each operand's own cached block data, kept in
// a policy-selected reduceCacheSlots.
type reduceBlockData struct {
	a     int
	slots reduceCacheSlots
}

func (r *Reduce) InitLevel1BlockData(state iterState, a int) (bitblock.Block, bool, level1BlockData) {
	st := state.(*reduceIterState)
	slots := newReduceCacheSlots(r.policy, len(r.sets))

	var mask bitblock.Block
	for i, s := range r.sets {
		// Earlier sources already proved the subtree empty - stop deriving
		// Level1BlockData for the remaining sources entirely.
		if i > 0 && r.op.CanDiscardSubtree() && mask.IsZero() {
			break
		}
		var m bitblock.Block
		if is, ok := s.(IterSource); ok {
			mm, _, d := is.InitLevel1BlockData(st.sub[i], a)
			m = mm
			slots.set(i, d)
		} else {
			m = s.Level1Mask(a)
		}
		if i == 0 {
			mask = m
		} else {
			mask = r.op.HierarchyOp(mask, m)
		}
	}

	return mask, !mask.IsZero(), &reduceBlockData{a: a, slots: slots}
}

func (r *Reduce) DataMaskFromBlockData(data level1BlockData, c int) bitblock.Block {
	d := data.(*reduceBlockData)

	var mask bitblock.Block
	for i, s := range r.sets {
		var m bitblock.Block
		if is, ok := s.(IterSource); ok {
			if cached, ok := d.slots.get(i); ok {
				m = is.DataMaskFromBlockData(cached, c)
			} else {
				m = s.DataMask(d.a, c)
			}
		} else {
			m = s.DataMask(d.a, c)
		}
		if i == 0 {
			mask = m
		} else {
			mask = r.op.DataOp(mask, m)
		}
	}
	return mask
}
