package hisparsebitset

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyReduce is returned by ReduceOp/ReduceWithCache when asked to fold
// zero sources: And/Or/Xor/Sub have no canonical identity LevelMasks to
// return in that case, so the caller must handle it explicitly rather than
// silently get back something that behaves like an empty set for the wrong
// reason.
var ErrEmptyReduce = errors.New("hisparsebitset: reduce over zero sets")

// OutOfRangeError is panicked by Insert when asked to add an index at or
// beyond the configuration's MaxCapacity, matching the teacher's own
// panic-on-invariant-violation style for programmer errors (see
// oriumgames-bevi's scheduler.go, which panics on an invalid system
// signature rather than returning an error).
type OutOfRangeError struct {
	Index int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("hisparsebitset: index %d out of range [0, %d)", e.Index, e.Max)
}
