//go:build windows

package win32

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	shcore = windows.NewLazySystemDLL("shcore.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procSetThreadDpiAwarenessContext = user32.NewProc("SetThreadDpiAwarenessContext")
	procSetProcessDPIAware           = user32.NewProc("SetProcessDPIAware")
	procMonitorFromWindow            = user32.NewProc("MonitorFromWindow")
	procGetDC                        = user32.NewProc("GetDC")
	procReleaseDC                    = user32.NewProc("ReleaseDC")
	procSetProcessDpiAwareness       = shcore.NewProc("SetProcessDpiAwareness")
	procGetDpiForMonitor             = shcore.NewProc("GetDpiForMonitor")
	procGetDeviceCaps                = gdi32.NewProc("GetDeviceCaps")
)

const (
	// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2
	dpiAwarenessPerMonitorV2 = ^uintptr(3)

	processPerMonitorDPIAware = 2
	mdtEffectiveDPI           = 0
	monitorDefaultToNearest   = 2
	logPixelsX                = 88
)

// ErrDPIUnsupported is returned when no DPI awareness API is available
var ErrDPIUnsupported = errors.New("win32: no DPI awareness API")

// EnableDPIAwareness opts the process into per-monitor DPI scaling without a manifest
// Tries the newest API first: thread context (Windows 10 1607), shcore (8.1), then system-wide
func EnableDPIAwareness() error {
	if procSetThreadDpiAwarenessContext.Find() == nil {
		if r, _, _ := procSetThreadDpiAwarenessContext.Call(dpiAwarenessPerMonitorV2); r != 0 {
			return nil
		}
	}
	if procSetProcessDpiAwareness.Find() == nil {
		if r, _, _ := procSetProcessDpiAwareness.Call(processPerMonitorDPIAware); r == 0 {
			return nil
		}
	}
	if procSetProcessDPIAware.Find() == nil {
		procSetProcessDPIAware.Call()
		return nil
	}
	return ErrDPIUnsupported
}

// DPIScaleForMonitor returns the scale factor of a monitor handle; 1.0 at 96 DPI
func DPIScaleForMonitor(monitor uintptr) float32 {
	if procGetDpiForMonitor.Find() == nil {
		var x, y uint32
		r, _, _ := procGetDpiForMonitor.Call(monitor, mdtEffectiveDPI,
			uintptr(unsafe.Pointer(&x)), uintptr(unsafe.Pointer(&y)))
		if r == 0 {
			return dpiScale(x)
		}
	}

	dc, _, _ := procGetDC.Call(0)
	if dc == 0 {
		return 1
	}
	defer procReleaseDC.Call(0, dc)
	x, _, _ := procGetDeviceCaps.Call(dc, logPixelsX)
	return dpiScale(uint32(x))
}

// DPIScaleForWindow returns the scale factor of the monitor nearest to hwnd
func DPIScaleForWindow(hwnd windows.HWND) float32 {
	monitor, _, _ := procMonitorFromWindow.Call(uintptr(hwnd), monitorDefaultToNearest)
	return DPIScaleForMonitor(monitor)
}
