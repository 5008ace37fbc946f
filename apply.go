package hisparsebitset

import "github.com/arbory/hisparsebitset/internal/bitblock"

// Apply is the lazy pairwise combination of two LevelMasks sources under an
// Op. It never materializes storage: every mask query recomputes its answer
// from s1 and s2 on demand. Grounded on original_source/src/apply.rs.
type Apply struct {
	op     Op
	s1, s2 LevelMasks
}

// ApplyOp returns the lazy combination op(s1, s2). s1 and s2 must share a
// Config.
func ApplyOp(op Op, s1, s2 LevelMasks) *Apply {
	return &Apply{op: op, s1: s1, s2: s2}
}

func And(a, b LevelMasks) *Apply { return ApplyOp(AndOp{}, a, b) }
func Or(a, b LevelMasks) *Apply  { return ApplyOp(OrOp{}, a, b) }
func Xor(a, b LevelMasks) *Apply { return ApplyOp(XorOp{}, a, b) }
func Sub(a, b LevelMasks) *Apply { return ApplyOp(SubOp{}, a, b) }

func (p *Apply) Config() Config {
	return p.s1.Config()
}

func (p *Apply) TrustedHierarchy() bool {
	return p.op.HierarchyOperandsContainResult() && p.s1.TrustedHierarchy() && p.s2.TrustedHierarchy()
}

func (p *Apply) Level0Mask() bitblock.Block {
	m1 := p.s1.Level0Mask()
	if p.op.CanDiscardSubtree() && m1.IsZero() {
		return m1
	}
	return p.op.HierarchyOp(m1, p.s2.Level0Mask())
}

func (p *Apply) Level1Mask(a int) bitblock.Block {
	m1 := p.s1.Level1Mask(a)
	if p.op.CanDiscardSubtree() && m1.IsZero() {
		return m1
	}
	return p.op.HierarchyOp(m1, p.s2.Level1Mask(a))
}

func (p *Apply) DataMask(a, c int) bitblock.Block {
	return p.op.DataOp(p.s1.DataMask(a, c), p.s2.DataMask(a, c))
}

// applyIterState pairs the two operands' own iterator states.
type applyIterState struct {
	s1, s2 iterState
}

func (p *Apply) NewIterState() iterState {
	s1, ok1 := p.s1.(IterSource)
	s2, ok2 := p.s2.(IterSource)
	state := &applyIterState{}
	if ok1 {
		state.s1 = s1.NewIterState()
	}
	if ok2 {
		state.s2 = s2.NewIterState()
	}
	return state
}

// applyBlockData caches each operand's own per-root-slot block data, or
// (when an operand is a bare LevelMasks, not an IterSource) nothing - the
// slow path just recomputes DataMask(a, c) directly.
type applyBlockData struct {
	a      int
	d1, d2 level1BlockData
}

func (p *Apply) InitLevel1BlockData(state iterState, a int) (bitblock.Block, bool, level1BlockData) {
	st := state.(*applyIterState)
	data := &applyBlockData{a: a}

	var m1 bitblock.Block
	if s1, ok := p.s1.(IterSource); ok {
		mask, _, d := s1.InitLevel1BlockData(st.s1, a)
		m1, data.d1 = mask, d
	} else {
		m1 = p.s1.Level1Mask(a)
	}

	// s1 alone already proves the subtree empty - skip deriving s2's
	// Level1BlockData (and the traversal work that implies) entirely.
	if p.op.CanDiscardSubtree() && m1.IsZero() {
		return m1, false, data
	}

	var m2 bitblock.Block
	if s2, ok := p.s2.(IterSource); ok {
		mask, _, d := s2.InitLevel1BlockData(st.s2, a)
		m2, data.d2 = mask, d
	} else {
		m2 = p.s2.Level1Mask(a)
	}

	mask := p.op.HierarchyOp(m1, m2)
	return mask, !mask.IsZero(), data
}

func (p *Apply) DataMaskFromBlockData(data level1BlockData, c int) bitblock.Block {
	d := data.(*applyBlockData)

	var m1, m2 bitblock.Block
	if s1, ok := p.s1.(IterSource); ok {
		m1 = s1.DataMaskFromBlockData(d.d1, c)
	} else {
		m1 = p.s1.DataMask(d.a, c)
	}
	if s2, ok := p.s2.(IterSource); ok {
		m2 = s2.DataMaskFromBlockData(d.d2, c)
	} else {
		m2 = p.s2.DataMask(d.a, c)
	}
	return p.op.DataOp(m1, m2)
}
