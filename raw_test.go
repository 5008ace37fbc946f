package hisparsebitset

import "testing"

func TestRawInsertContainsRemove(t *testing.T) {
	r := newRawBitSet(Config64)

	indices := []int{0, 1, 63, 64, 65, 4095, 200000}
	for _, i := range indices {
		if !r.insert(i) {
			t.Fatalf("insert(%d) returned false on first insert", i)
		}
	}
	for _, i := range indices {
		if !r.contains(i) {
			t.Errorf("contains(%d) = false, want true", i)
		}
	}

	// Re-inserting an already-present index reports false.
	if r.insert(indices[0]) {
		t.Errorf("insert(%d) a second time returned true, want false", indices[0])
	}

	for _, i := range indices {
		if !r.remove(i) {
			t.Errorf("remove(%d) returned false, want true", i)
		}
	}
	for _, i := range indices {
		if r.contains(i) {
			t.Errorf("contains(%d) = true after remove, want false", i)
		}
	}
	if !r.isEmpty() {
		t.Error("expected raw set to be empty after removing every inserted index")
	}
}

func TestRawRemoveAbsentIsNoop(t *testing.T) {
	r := newRawBitSet(Config64)
	if r.remove(5) {
		t.Error("remove on empty set returned true")
	}
	r.insert(100)
	if r.remove(200) {
		t.Error("remove of absent index returned true")
	}
	if !r.contains(100) {
		t.Error("unrelated member was disturbed by a no-op remove")
	}
}

func TestRawFreelistRecyclesBlocks(t *testing.T) {
	r := newRawBitSet(Config64)

	// Force allocation of a Level1 and Data block, then free them both by
	// removing the only member, then allocate again at a different index
	// that maps to the same Level0 slot. The recycled block must start
	// out zeroed.
	a := 0
	d0Width, l1Width := r.cfg.DataWidth, r.cfg.Level1Width
	i1 := a*l1Width*d0Width + 0*d0Width + 1
	i2 := a*l1Width*d0Width + 0*d0Width + 2

	r.insert(i1)
	r.remove(i1)
	if r.contains(i1) {
		t.Fatalf("contains(%d) = true after remove", i1)
	}

	r.insert(i2)
	if !r.contains(i2) {
		t.Errorf("contains(%d) = false after insert into recycled block", i2)
	}
	if r.contains(i1) {
		t.Errorf("recycled block leaked the old member %d", i1)
	}
}

func TestRawBlockCount(t *testing.T) {
	r := newRawBitSet(Config64)
	if r.blockCount() != 0 {
		t.Fatalf("blockCount() = %d on empty set, want 0", r.blockCount())
	}
	r.insert(0)
	r.insert(1)
	if got := r.blockCount(); got != 1 {
		t.Errorf("blockCount() = %d, want 1 for two indices in the same data block", got)
	}
	r.insert(r.cfg.DataWidth * r.cfg.Level1Width) // forces a new level0 slot
	if got := r.blockCount(); got != 2 {
		t.Errorf("blockCount() = %d, want 2", got)
	}
}
