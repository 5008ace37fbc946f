package hisparsebitset

// Diagnostics observes block pool allocation and freeing events. It is
// purely instrumentation - nothing in this package consults a Diagnostics
// to make a decision - so a nil-safe no-op implementation is always enough
// when the caller doesn't care.
//
// Adapted from oriumgames-bevi's own Diagnostics interface (SystemStart/
// SystemEnd/EventEmit around scheduler execution); this module is
// synchronous and has no system/stage concept, so the hooks instead cover
// the one thing worth observing here: how the hierarchy's pools grow and
// shrink.
type Diagnostics interface {
	// BlockAllocated fires when a Level1 or Data block is taken from a pool,
	// either by growing the pool (fromFreelist=false) or recycling a freed
	// slot (fromFreelist=true).
	BlockAllocated(level string, index uint32, fromFreelist bool)
	// BlockFreed fires when a now-empty Level1 or Data block is returned to
	// its pool's freelist.
	BlockFreed(level string, index uint32)
}

// NopDiagnostics discards every event. It is the zero-cost default: BitSet
// never requires one to be set, so most callers never construct a
// Diagnostics at all.
type NopDiagnostics struct{}

func (NopDiagnostics) BlockAllocated(string, uint32, bool) {}
func (NopDiagnostics) BlockFreed(string, uint32)           {}

// LogDiagnostics logs every event through a logger interface, matching the
// teacher's own LogDiagnostics shape (a minimal Printf-only logger
// dependency rather than a concrete logging package import).
type LogDiagnostics struct {
	log interface{ Printf(string, ...any) }
}

// NewLogDiagnostics returns a Diagnostics that logs to log.
func NewLogDiagnostics(log interface{ Printf(string, ...any) }) *LogDiagnostics {
	return &LogDiagnostics{log: log}
}

func (d *LogDiagnostics) BlockAllocated(level string, index uint32, fromFreelist bool) {
	if fromFreelist {
		d.log.Printf("%s block %d recycled from freelist", level, index)
	} else {
		d.log.Printf("%s block %d allocated (pool grown)", level, index)
	}
}

func (d *LogDiagnostics) BlockFreed(level string, index uint32) {
	d.log.Printf("%s block %d freed", level, index)
}
