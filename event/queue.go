// @focus: #event { queue }
package event

import (
	"sync/atomic"
)

// slot is one reusable cell of the ring
// next is fixed at construction, state is the only field both sides touch concurrently
type slot[T any] struct {
	next  *slot[T]
	state atomic.Uint32
	data  T
}

// Queue is a fixed-capacity lock-free SPSC ring of slots
// Thread-Safety:
//   - Write: single producer (window pump goroutine)
//   - Read: single consumer (frame loop)
//   - Slot state tag prevents reading partial writes and overwriting unread slots
//
// Overflow: new item dropped when full, counted in Dropped
type Queue[T any] struct {
	slots []slot[T]
	write *slot[T] // Producer-owned cursor
	read  *slot[T] // Consumer-owned cursor

	dropped atomic.Uint64
}

// NewQueue creates a ring of capacity slots, all writable
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		panic("event: queue capacity must be >= 1")
	}
	q := &Queue[T]{
		slots: make([]slot[T], capacity),
	}
	q.link()
	return q
}

// link arranges slots into a single cycle and rewinds both cursors
func (q *Queue[T]) link() {
	n := len(q.slots)
	for i := 0; i < n; i++ {
		q.slots[i].next = &q.slots[(i+1)%n]
		q.slots[i].state.Store(uint32(StateReadEnd))
	}
	q.write = &q.slots[0]
	q.read = &q.slots[0]
}

// Write copies v into the slot under the write cursor and advances it
// Producer only. Returns false and drops v if that slot is not yet consumed
func (q *Queue[T]) Write(v T) bool {
	s := q.write
	if !SlotState(s.state.Load()).Writable() {
		q.dropped.Add(1)
		return false
	}

	s.state.Store(uint32(StateUnknown))
	s.state.Store(uint32(StateWriteStart))
	s.data = v
	s.state.Store(uint32(StateUnknown))
	s.state.Store(uint32(StateWriteEnd)) // MUST be after copy

	q.write = s.next
	return true
}

// Read copies the slot under the read cursor into out and advances it
// Consumer only. Returns false if no completed write is pending
func (q *Queue[T]) Read(out *T) bool {
	s := q.read
	if !SlotState(s.state.Load()).Readable() {
		return false
	}

	s.state.Store(uint32(StateUnknown))
	s.state.Store(uint32(StateReadStart))
	*out = s.data
	s.state.Store(uint32(StateUnknown))
	s.state.Store(uint32(StateReadEnd)) // MUST be after copy

	q.read = s.next
	return true
}

// Reset returns the queue to its freshly constructed state
// Caller guarantees neither producer nor consumer is active
func (q *Queue[T]) Reset() {
	var zero T
	for i := range q.slots {
		q.slots[i].data = zero
	}
	q.link()
	q.dropped.Store(0)
}

// Cap returns the fixed slot count
func (q *Queue[T]) Cap() int {
	return len(q.slots)
}

// Dropped returns the number of writes rejected because the ring was full
// Safe from any goroutine
func (q *Queue[T]) Dropped() uint64 {
	return q.dropped.Load()
}

// state exposes a slot tag for tests
func (q *Queue[T]) state(i int) SlotState {
	return SlotState(q.slots[i].state.Load())
}
