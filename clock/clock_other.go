//go:build !unix && !windows

package clock

import "time"

var epoch = time.Now()

// systemCounter falls back to the runtime monotonic clock
type systemCounter struct{}

func (systemCounter) Frequency() (int64, error) {
	return int64(time.Second), nil
}

func (systemCounter) Now() (int64, error) {
	return int64(time.Since(epoch)), nil
}
