package texdecode

import "sync/atomic"

// OperationContext is a cancellation and progress handle for a single
// decode operation, modeled after the teacher package's opState: plain
// atomics rather than a context.Context, since a decode has no deadline
// semantics of its own, only a caller-driven cancel.
type OperationContext struct {
	cancel atomic.Uint32

	totalUnits atomic.Uint32
	doneUnits  atomic.Uint32
}

// NewOperationContext returns a fresh, non-cancelled context.
func NewOperationContext() *OperationContext {
	return &OperationContext{}
}

// Cancel requests that any operation using this context stop at its next
// cooperative check point. Safe to call from any goroutine, any number of
// times.
func (c *OperationContext) Cancel() {
	if c == nil {
		return
	}
	c.cancel.Store(1)
}

// Cancelled reports whether Cancel has been called.
func (c *OperationContext) Cancelled() bool {
	if c == nil {
		return false
	}
	return c.cancel.Load() != 0
}

func (c *OperationContext) setTotal(n int) {
	if c == nil {
		return
	}
	c.totalUnits.Store(uint32(n))
	c.doneUnits.Store(0)
}

func (c *OperationContext) advance(n int) {
	if c == nil {
		return
	}
	c.doneUnits.Add(uint32(n))
}

// Progress returns completed units over total units, or 0 if no total has
// been set yet. Monotonically non-decreasing for the lifetime of a single
// operation, per the progress-monotonicity invariant.
func (c *OperationContext) Progress() float32 {
	if c == nil {
		return 0
	}
	total := c.totalUnits.Load()
	if total == 0 {
		return 0
	}
	done := c.doneUnits.Load()
	if done > total {
		done = total
	}
	return float32(done) / float32(total)
}
