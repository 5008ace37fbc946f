package hisparsebitset

// BlockCursor locates a resume point inside a BlockIter: the Level0 slot
// currently being walked, and the Level1 index the next emitted block
// should start scanning from. The zero value means "start of iteration" -
// there is no dedicated untouched sentinel beyond Go's own zero values,
// since index 0 is always scanned first and re-scanning an already-empty
// prefix is harmless.
type BlockCursor struct {
	Level0Index     uint32
	Level1NextIndex uint32
}

// IndexCursor extends BlockCursor with the Data-level position inside the
// block the cursor stopped mid-way through, for IndexIter.
type IndexCursor struct {
	BlockCursor
	DataNextIndex uint32
}
