package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrPreloadTimeout is returned when preload does not complete before the context ends
var ErrPreloadTimeout = errors.New("preload timed out")

// Barrier releases once N completions have been reported, or on the first failure
type Barrier struct {
	mu        sync.Mutex
	remaining int
	err       error
	ready     chan struct{}
	once      sync.Once
}

// NewBarrier creates a barrier waiting for n completions; n <= 0 is ready immediately
func NewBarrier(n int) *Barrier {
	b := &Barrier{
		remaining: n,
		ready:     make(chan struct{}),
	}
	if n <= 0 {
		b.release()
	}
	return b
}

// Done reports one completion; a non-nil err releases the barrier with that error
// Calls past the expected count are ignored
func (b *Barrier) Done(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.remaining <= 0 {
		return
	}
	b.remaining--

	if err != nil && b.err == nil {
		b.err = err
		b.release()
		return
	}
	if b.remaining == 0 {
		b.release()
	}
}

// Ready is closed when the barrier releases
func (b *Barrier) Ready() <-chan struct{} {
	return b.ready
}

// Err returns the first reported failure
func (b *Barrier) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Wait blocks until release or ctx end
func (b *Barrier) Wait(ctx context.Context) error {
	select {
	case <-b.ready:
		return b.Err()
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrPreloadTimeout, ctx.Err())
	}
}

func (b *Barrier) release() {
	b.once.Do(func() { close(b.ready) })
}

// Preload runs each job on its own goroutine and waits for all of them through one barrier
func Preload(ctx context.Context, jobs ...func() error) error {
	b := NewBarrier(len(jobs))
	for _, job := range jobs {
		job := job
		go func() {
			b.Done(job())
		}()
	}
	return b.Wait(ctx)
}
