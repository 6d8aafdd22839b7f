//go:build unix

package clock

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// systemCounter reads CLOCK_MONOTONIC in nanoseconds
type systemCounter struct{}

func (systemCounter) Frequency() (int64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, errors.Wrap(ErrUnavailable, err.Error())
	}
	return 1_000_000_000, nil
}

func (systemCounter) Now() (int64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, errors.Wrap(ErrUnavailable, err.Error())
	}
	return ts.Nano(), nil
}
