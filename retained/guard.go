package retained

import (
	"sync"
	"sync/atomic"
)

// guard is the critical section around the widget tree and the
// focus/active state. Input polling and rendering may run on different
// goroutines; both go through GUI entry points, which hold the guard for
// the whole call.
//
// The guard is not reentrant. Code running inside an entry point (control
// callbacks included) uses the unguarded Widget helpers instead of calling
// back into GUI entry points.
type guard struct {
	mu   sync.Mutex
	held atomic.Bool
}

// enter acquires the guard and returns the matching leave function.
//
//	defer g.guard.enter()()
func (c *guard) enter() func() {
	c.mu.Lock()
	c.held.Store(true)
	return c.leave
}

func (c *guard) leave() {
	c.held.Store(false)
	c.mu.Unlock()
}

// assertHeld panics in guidebug builds when a mutating helper runs outside
// an entry point.
func (c *guard) assertHeld(op string) {
	if debugAsserts && !c.held.Load() {
		panic("tinygui: " + op + " called outside the GUI guard")
	}
}
