//go:build windows

package clock

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	kernel32                      = windows.NewLazySystemDLL("kernel32.dll")
	procQueryPerformanceFrequency = kernel32.NewProc("QueryPerformanceFrequency")
	procQueryPerformanceCounter   = kernel32.NewProc("QueryPerformanceCounter")
)

// systemCounter reads QueryPerformanceCounter
type systemCounter struct{}

func (systemCounter) Frequency() (int64, error) {
	var f int64
	r, _, err := procQueryPerformanceFrequency.Call(uintptr(unsafe.Pointer(&f)))
	if r == 0 {
		return 0, errors.Wrap(ErrUnavailable, err.Error())
	}
	return f, nil
}

func (systemCounter) Now() (int64, error) {
	var c int64
	r, _, err := procQueryPerformanceCounter.Call(uintptr(unsafe.Pointer(&c)))
	if r == 0 {
		return 0, errors.Wrap(ErrUnavailable, err.Error())
	}
	return c, nil
}
