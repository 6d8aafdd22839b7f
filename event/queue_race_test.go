package event

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// stressIterations returns the write/read pair count for concurrent tests
func stressIterations(t *testing.T) int {
	switch {
	case testing.Short():
		return 100_000
	case raceEnabled:
		return 1_000_000
	default:
		return 10_000_000
	}
}

// produce writes item(i) for i in [from, to], retrying on a full ring
// Returns early once stop is set so a failed consumer cannot leave it spinning
func produce[T any](q *Queue[T], stop *atomic.Bool, from, to int, item func(i int) T, after func(i int)) {
	for i := from; i <= to; i++ {
		for !q.Write(item(i)) {
			if stop.Load() {
				return
			}
			runtime.Gosched()
		}
		if after != nil {
			after(i)
		}
	}
}

func TestProduceStopsWhenConsumerQuits(t *testing.T) {
	q := NewQueue[int](4)
	var stop atomic.Bool

	done := make(chan struct{})
	go func() {
		defer close(done)
		produce(q, &stop, 1, 1000, func(i int) int { return i }, nil)
	}()

	// No consumer: the ring fills and the producer retries until stopped
	time.Sleep(10 * time.Millisecond)
	stop.Store(true)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Producer kept spinning after stop")
	}
	if q.Dropped() == 0 {
		t.Error("Expected retried writes to be counted as drops")
	}
}

// TestQueueConcurrentNoLoss runs one producer and one consumer goroutine with producer retry
// Every item must arrive exactly once, in order
func TestQueueConcurrentNoLoss(t *testing.T) {
	n := stressIterations(t)
	q := NewQueue[uint64](1024)

	var wg sync.WaitGroup
	wg.Add(2)

	var stop atomic.Bool

	go func() {
		defer wg.Done()
		produce(q, &stop, 0, n-1, func(i int) uint64 { return uint64(i) }, nil)
	}()

	var failure string
	go func() {
		defer wg.Done()
		defer stop.Store(true)
		var v uint64
		for want := uint64(0); want < uint64(n); {
			if !q.Read(&v) {
				runtime.Gosched()
				continue
			}
			if v != want {
				failure = "out of order or duplicated item"
				t.Errorf("Expected %d, got %d", want, v)
				return
			}
			want++
		}
	}()

	wg.Wait()
	if failure != "" {
		return
	}

	var v uint64
	if q.Read(&v) {
		t.Errorf("Extra item after %d reads: %d", n, v)
	}
}

// TestQueueConcurrentDropAccounting runs the producer without retry
// Received items stay strictly increasing and received + dropped == written
func TestQueueConcurrentDropAccounting(t *testing.T) {
	n := stressIterations(t) / 10
	q := NewQueue[uint64](64)

	done := make(chan struct{})
	received := 0
	var last int64 = -1
	var orderErr error

	go func() {
		defer close(done)
		var v uint64
		for {
			if q.Read(&v) {
				if v == ^uint64(0) {
					return
				}
				if int64(v) <= last && orderErr == nil {
					orderErr = errOrder{prev: last, got: int64(v)}
				}
				last = int64(v)
				received++
				continue
			}
			runtime.Gosched()
		}
	}()

	for i := 0; i < n; i++ {
		q.Write(uint64(i))
	}
	droppedData := q.Dropped()

	// Sentinel must get through
	for !q.Write(^uint64(0)) {
		runtime.Gosched()
	}
	<-done

	if orderErr != nil {
		t.Fatal(orderErr)
	}
	if uint64(received)+droppedData != uint64(n) {
		t.Errorf("received %d + dropped %d != written %d", received, droppedData, n)
	}
}

type errOrder struct {
	prev, got int64
}

func (e errOrder) Error() string {
	return fmt.Sprintf("items out of order: %d followed %d", e.got, e.prev)
}

// wide is a payload large enough that a torn copy is observable
type wide struct {
	words [16]uint64
}

func newWide(seq uint64) wide {
	var w wide
	for i := range w.words {
		w.words[i] = seq
	}
	return w
}

func (w wide) consistent() bool {
	for _, x := range w.words {
		if x != w.words[0] {
			return false
		}
	}
	return true
}

// TestQueueNoTornPayload forces scheduler delays on both sides and verifies no slot
// is exposed before its payload copy completes
func TestQueueNoTornPayload(t *testing.T) {
	n := stressIterations(t) / 20
	q := NewQueue[wide](32)

	var wg sync.WaitGroup
	wg.Add(2)

	var stop atomic.Bool

	go func() {
		defer wg.Done()
		produce(q, &stop, 1, n, func(i int) wide { return newWide(uint64(i)) }, func(i int) {
			if i%97 == 0 {
				time.Sleep(time.Microsecond)
			}
		})
	}()

	go func() {
		defer wg.Done()
		defer stop.Store(true)
		var v wide
		for want := uint64(1); want <= uint64(n); {
			if !q.Read(&v) {
				runtime.Gosched()
				continue
			}
			if !v.consistent() {
				t.Errorf("Torn payload at %d: %v", want, v.words)
				return
			}
			if v.words[0] != want {
				t.Errorf("Expected %d, got %d", want, v.words[0])
				return
			}
			if want%89 == 0 {
				runtime.Gosched()
			}
			want++
		}
	}()

	wg.Wait()
}

// BenchmarkQueueWriteRead measures an uncontended write/read pair
func BenchmarkQueueWriteRead(b *testing.B) {
	q := NewMessageQueue(1024)
	m := Message{Code: CodeMouseMove, LParam: MakeLParam(1, 2)}
	var out Message
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q.Write(m)
		q.Read(&out)
	}
}
