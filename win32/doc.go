// Package win32 binds the input relay to a native Win32 window.
//
// The application keeps its own window class and message loop on a locked OS thread and
// forwards every message to relay.Backend.WndProc through Message. Directives come back
// as private messages on the same queue, so capture, cursor and IME calls run on the
// thread that owns the window.
package win32
