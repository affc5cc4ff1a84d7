package retained

import (
	"fmt"
	"sync"
)

// Allocator accounts for widget storage. The core charges Descriptor.Size
// bytes when an instance is created and releases them when it is removed.
// Color override tables are charged the same way on first use.
type Allocator interface {
	Alloc(size int) error
	Free(size int)
}

type unlimited struct{}

func (unlimited) Alloc(int) error { return nil }
func (unlimited) Free(int)        {}

// Unlimited returns an allocator that never refuses.
func Unlimited() Allocator {
	return unlimited{}
}

// Budget is an allocator with a fixed byte budget, modelling the static
// heap of a small target.
type Budget struct {
	mu    sync.Mutex
	limit int
	used  int
}

// NewBudget returns an allocator that refuses requests once limit bytes
// are in use.
func NewBudget(limit int) *Budget {
	return &Budget{limit: limit}
}

// Alloc reserves size bytes.
func (b *Budget) Alloc(size int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if size < 0 || b.used+size > b.limit {
		return fmt.Errorf("%w: need %d, %d of %d in use", ErrNoMemory, size, b.used, b.limit)
	}
	b.used += size
	return nil
}

// Free releases size bytes.
func (b *Budget) Free(size int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.used -= size
	if b.used < 0 {
		b.used = 0
	}
}

// Used returns the number of bytes in use.
func (b *Budget) Used() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.used
}

// Available returns the number of bytes left.
func (b *Budget) Available() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.limit - b.used
}
