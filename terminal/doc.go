// @focus: #sys { term }
// Package terminal runs a tcell screen as the window side of the input relay.
//
// Features:
//   - Pump goroutine translating tcell key, mouse, resize and focus events into platform messages
//   - Directives delivered through the screen's own event queue as interrupt events
//   - Synthetic key releases, since terminals report presses only
//   - Caret style and position standing in for pointer shape and IME placement
//
// Coordinates are character cells.
package terminal
