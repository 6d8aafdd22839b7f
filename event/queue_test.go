package event

import (
	"testing"
)

// TestQueueBasic tests basic write and read operations
func TestQueueBasic(t *testing.T) {
	q := NewMessageQueue(8)

	msgs := []Message{
		{Window: 1, Code: CodeLButtonDown, LParam: MakeLParam(10, 20)},
		{Window: 1, Code: CodeMouseMove, LParam: MakeLParam(15, 25)},
		{Window: 1, Code: CodeLButtonUp, LParam: MakeLParam(15, 25)},
	}
	for i, m := range msgs {
		if !q.Write(m) {
			t.Fatalf("Write %d rejected on empty queue", i)
		}
	}

	var got Message
	for i, want := range msgs {
		if !q.Read(&got) {
			t.Fatalf("Read %d reported empty", i)
		}
		if got != want {
			t.Errorf("Message %d mismatch: got %v, want %v", i, got, want)
		}
	}

	if q.Read(&got) {
		t.Errorf("Expected empty queue after draining, got %v", got)
	}
}

// TestQueueInitialState tests that every slot starts writable with cursors on slot 0
func TestQueueInitialState(t *testing.T) {
	q := NewQueue[int](4)

	if q.Cap() != 4 {
		t.Errorf("Expected capacity 4, got %d", q.Cap())
	}
	for i := 0; i < q.Cap(); i++ {
		if s := q.state(i); s != StateReadEnd {
			t.Errorf("Slot %d: expected %v, got %v", i, StateReadEnd, s)
		}
	}

	var v int
	if q.Read(&v) {
		t.Error("Read succeeded on fresh queue")
	}
}

// TestQueueSlotStates tests the rest states left behind by write and read
func TestQueueSlotStates(t *testing.T) {
	q := NewQueue[int](2)

	q.Write(7)
	if s := q.state(0); s != StateWriteEnd {
		t.Errorf("After write: expected %v, got %v", StateWriteEnd, s)
	}
	if s := q.state(1); s != StateReadEnd {
		t.Errorf("Untouched slot: expected %v, got %v", StateReadEnd, s)
	}

	var v int
	q.Read(&v)
	if s := q.state(0); s != StateReadEnd {
		t.Errorf("After read: expected %v, got %v", StateReadEnd, s)
	}
}

// TestQueueCapacityBoundary tests that the N+1th write fails without corrupting the first N
func TestQueueCapacityBoundary(t *testing.T) {
	const n = 16
	q := NewQueue[int](n)

	for i := 0; i < n; i++ {
		if !q.Write(i) {
			t.Fatalf("Write %d rejected below capacity", i)
		}
	}
	if q.Write(n) {
		t.Fatal("Write beyond capacity accepted")
	}
	if q.Dropped() != 1 {
		t.Errorf("Expected 1 dropped, got %d", q.Dropped())
	}

	var v int
	for i := 0; i < n; i++ {
		if !q.Read(&v) {
			t.Fatalf("Read %d reported empty", i)
		}
		if v != i {
			t.Errorf("Read %d: got %d", i, v)
		}
	}
	if q.Read(&v) {
		t.Errorf("Dropped item surfaced: %d", v)
	}
}

// TestQueueOverflow1025 tests 1025 back-to-back writes on a 1024 ring
func TestQueueOverflow1025(t *testing.T) {
	q := NewMessageQueue(1024)

	accepted := 0
	var last bool
	for i := 0; i < 1025; i++ {
		last = q.Write(Message{Code: CodeChar, WParam: uintptr(i)})
		if last {
			accepted++
		}
	}

	if accepted != 1024 {
		t.Errorf("Expected 1024 accepted, got %d", accepted)
	}
	if last {
		t.Error("Expected 1025th write to fail")
	}

	drained := 0
	Drain(q, func(m Message) {
		if m.WParam != uintptr(drained) {
			t.Errorf("Order broken at %d: got %d", drained, m.WParam)
		}
		drained++
	})
	if drained != 1024 {
		t.Errorf("Expected 1024 drained, got %d", drained)
	}
}

// TestQueueCyclicReuse tests that a drained ring accepts a full ring again, repeatedly
func TestQueueCyclicReuse(t *testing.T) {
	const n = 8
	q := NewQueue[int](n)

	var v int
	for round := 0; round < 5; round++ {
		for i := 0; i < n; i++ {
			if !q.Write(round*n + i) {
				t.Fatalf("Round %d: write %d rejected", round, i)
			}
		}
		for i := 0; i < n; i++ {
			if !q.Read(&v) || v != round*n+i {
				t.Fatalf("Round %d: read %d got %d", round, i, v)
			}
		}
	}
	if q.Dropped() != 0 {
		t.Errorf("Expected no drops, got %d", q.Dropped())
	}
}

// TestQueueInterleaved tests wrap-around with partial fill/drain
func TestQueueInterleaved(t *testing.T) {
	q := NewQueue[int](3)

	var v int
	next := 0
	want := 0
	for step := 0; step < 50; step++ {
		for k := 0; k < 2; k++ {
			if q.Write(next) {
				next++
			}
		}
		if q.Read(&v) {
			if v != want {
				t.Fatalf("Step %d: got %d, want %d", step, v, want)
			}
			want++
		}
	}
}

// TestQueueReset tests that Reset restores a fresh queue
func TestQueueReset(t *testing.T) {
	q := NewQueue[int](4)

	for i := 0; i < 6; i++ {
		q.Write(i)
	}
	var v int
	q.Read(&v)

	q.Reset()

	if q.Dropped() != 0 {
		t.Errorf("Expected dropped reset to 0, got %d", q.Dropped())
	}
	if q.Read(&v) {
		t.Errorf("Expected empty queue after reset, got %d", v)
	}
	for i := 0; i < q.Cap(); i++ {
		if s := q.state(i); s != StateReadEnd {
			t.Errorf("Slot %d: expected %v after reset, got %v", i, StateReadEnd, s)
		}
		if q.slots[i].data != 0 {
			t.Errorf("Slot %d payload not cleared: %d", i, q.slots[i].data)
		}
	}
	for i := 0; i < q.Cap(); i++ {
		if !q.Write(100 + i) {
			t.Fatalf("Write %d rejected after reset", i)
		}
	}
	q.Read(&v)
	if v != 100 {
		t.Errorf("Expected first read 100 after reset, got %d", v)
	}
}

// TestNewQueuePanicsOnZero tests constructor validation
func TestNewQueuePanicsOnZero(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for zero capacity")
		}
	}()
	NewQueue[int](0)
}

// TestSlotStateString tests state names and claim predicates
func TestSlotStateString(t *testing.T) {
	tests := []struct {
		state    SlotState
		name     string
		writable bool
		readable bool
	}{
		{StateUnknown, "Unknown", false, false},
		{StateWriteStart, "WriteStart", false, false},
		{StateWriteEnd, "WriteEnd", false, true},
		{StateReadStart, "ReadStart", false, false},
		{StateReadEnd, "ReadEnd", true, false},
		{SlotState(0xFF), "Invalid", true, true},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.name {
			t.Errorf("String(%d) = %q, want %q", tt.state, got, tt.name)
		}
		if got := tt.state.Writable(); got != tt.writable {
			t.Errorf("%s.Writable() = %v", tt.name, got)
		}
		if got := tt.state.Readable(); got != tt.readable {
			t.Errorf("%s.Readable() = %v", tt.name, got)
		}
	}
}
