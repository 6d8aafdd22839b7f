// Package clock provides the monotonic performance counter used for frame timing
package clock

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrUnavailable is returned when the platform counter cannot be queried
var ErrUnavailable = errors.New("clock: performance counter unavailable")

// Counter is a monotonic tick source
// Frequency is ticks per second, Now is the current tick count
type Counter interface {
	Frequency() (int64, error)
	Now() (int64, error)
}

// System returns the platform performance counter
func System() Counter {
	return systemCounter{}
}

// Seconds converts a tick delta to seconds at the given frequency
func Seconds(delta, frequency int64) float32 {
	if frequency <= 0 {
		return 0
	}
	return float32(delta) / float32(frequency)
}

// Mock provides a controllable counter for testing
type Mock struct {
	mu   sync.Mutex
	freq int64
	now  int64
	fail bool
}

// NewMock creates a mock counter at tick 0 with the given frequency
func NewMock(frequency int64) *Mock {
	return &Mock{freq: frequency}
}

// Frequency returns the configured frequency or ErrUnavailable when failing
func (m *Mock) Frequency() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return 0, ErrUnavailable
	}
	return m.freq, nil
}

// Now returns the current mocked tick
func (m *Mock) Now() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return 0, ErrUnavailable
	}
	return m.now, nil
}

// Advance moves the counter forward by ticks
func (m *Mock) Advance(ticks int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now += ticks
}

// SetFailing makes subsequent queries return ErrUnavailable
func (m *Mock) SetFailing(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = fail
}
