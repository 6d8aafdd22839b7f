// Package relay moves window input from the window-owning goroutine to the frame loop
//
// The window goroutine (pump) calls WndProc for every platform message. Input messages are
// copied into a lock-free SPSC ring and never touch shared state there. The frame goroutine
// calls NewFrame once per iteration; it drains the ring into input.IO and sends directives
// (capture, pointer position, cursor shape, IME position) back through the window's own
// message FIFO so the OS calls run on the goroutine that owns the window.
package relay

import (
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/inputrelay/clock"
	"github.com/lixenwraith/inputrelay/config"
	"github.com/lixenwraith/inputrelay/event"
	"github.com/lixenwraith/inputrelay/gamepad"
	"github.com/lixenwraith/inputrelay/input"
	"github.com/lixenwraith/inputrelay/parameter"
)

// PlatformName is reported through IO.BackendPlatformName
const PlatformName = "inputrelay"

var (
	// ErrTimerUnavailable is returned by Init when the performance counter cannot be read
	ErrTimerUnavailable = errors.New("relay: platform timer unavailable")

	// ErrAlreadyInitialized is returned by Init on a bound backend
	ErrAlreadyInitialized = errors.New("relay: backend already initialized")
)

// Stats are diagnostic counters, safe to read from any goroutine
type Stats struct {
	Dropped    uint64 // Messages rejected because the ring was full
	Drained    uint64 // Messages applied to IO
	Directives uint64 // Directives accepted by the window
}

// Backend is one relay instance bound to at most one window at a time
type Backend struct {
	cfg   config.Config
	io    *input.IO
	clock clock.Counter
	pad   gamepad.Source
	log   zerolog.Logger

	queue *event.MessageQueue
	bind  atomic.Pointer[binding]

	// Frame goroutine only
	ticksPerSecond    int64
	time              int64
	focused           bool
	lastCursor        input.Cursor
	hasGamepad        bool
	wantUpdateGamepad bool
	lastDropped       uint64
	prevImeFn         func(x, y int)

	// Shared with the window goroutine
	updateCursor  atomic.Bool
	appliedCursor atomic.Int32

	drained    atomic.Uint64
	directives atomic.Uint64
}

// Option configures a Backend
type Option func(*Backend)

// WithClock replaces the platform performance counter
func WithClock(c clock.Counter) Option {
	return func(b *Backend) { b.clock = c }
}

// WithGamepad replaces the platform controller source; ignored when the config disables gamepads
func WithGamepad(s gamepad.Source) Option {
	return func(b *Backend) { b.pad = s }
}

// WithLogger sets the structured logger
func WithLogger(l zerolog.Logger) Option {
	return func(b *Backend) { b.log = l }
}

// New creates an unbound backend writing into io
func New(io *input.IO, cfg config.Config, opts ...Option) *Backend {
	b := &Backend{
		cfg:   cfg,
		io:    io,
		clock: clock.System(),
		pad:   systemGamepad(),
		log:   zerolog.Nop(),
		queue: event.NewMessageQueue(parameter.MessageQueueSize),
	}
	for _, opt := range opts {
		opt(b)
	}
	if !cfg.Gamepad {
		b.pad = nil
	}

	// Codes below the private range are ordinary platform messages
	if cfg.DirectiveBase < parameter.DirectiveBase || cfg.DirectiveBase > 0xFFFF-parameter.DirectiveCount {
		b.log.Warn().
			Uint32("directive_base", cfg.DirectiveBase).
			Uint32("default", parameter.DirectiveBase).
			Msg("directive base outside private range, using default")
		b.cfg.DirectiveBase = parameter.DirectiveBase
	}

	b.resetState()
	return b
}

// resetState puts frame-goroutine state in its pre-Init form
func (b *Backend) resetState() {
	b.ticksPerSecond = 0
	b.time = 0
	b.focused = true
	b.lastCursor = input.CursorCount
	b.hasGamepad = false
	b.wantUpdateGamepad = true
	b.lastDropped = 0
	b.updateCursor.Store(false)
	b.appliedCursor.Store(int32(input.CursorArrow))
}

// Init binds the backend to w and advertises capabilities on IO
// Fails without side effects if the performance counter cannot be read
func (b *Backend) Init(w Window) error {
	if b.bind.Load() != nil {
		return ErrAlreadyInitialized
	}

	freq, err := b.clock.Frequency()
	if err != nil {
		return errors.Wrapf(ErrTimerUnavailable, "frequency: %v", err)
	}
	now, err := b.clock.Now()
	if err != nil {
		return errors.Wrapf(ErrTimerUnavailable, "counter: %v", err)
	}
	b.ticksPerSecond = freq
	b.time = now

	io := b.io
	io.BackendFlags |= input.BackendHasMouseCursors
	io.BackendFlags |= input.BackendHasSetMousePos
	io.BackendPlatformName = PlatformName

	io.ImeWindowHandle = w.Handle()
	b.prevImeFn = io.ImeSetInputScreenPosFn
	io.ImeSetInputScreenPosFn = b.SetIMEPosition

	setKeyMap(io)

	b.bind.Store(&binding{window: w, handle: w.Handle()})

	b.log.Info().
		Uint64("window", uint64(w.Handle())).
		Int64("ticks_per_second", freq).
		Int("queue_capacity", b.queue.Cap()).
		Msg("relay initialized")
	return nil
}

// setKeyMap points the UI key identifiers at platform key codes
func setKeyMap(io *input.IO) {
	io.KeyMap[input.KeyTab] = event.VKTab
	io.KeyMap[input.KeyLeftArrow] = event.VKLeft
	io.KeyMap[input.KeyRightArrow] = event.VKRight
	io.KeyMap[input.KeyUpArrow] = event.VKUp
	io.KeyMap[input.KeyDownArrow] = event.VKDown
	io.KeyMap[input.KeyPageUp] = event.VKPrior
	io.KeyMap[input.KeyPageDown] = event.VKNext
	io.KeyMap[input.KeyHome] = event.VKHome
	io.KeyMap[input.KeyEnd] = event.VKEnd
	io.KeyMap[input.KeyInsert] = event.VKInsert
	io.KeyMap[input.KeyDelete] = event.VKDelete
	io.KeyMap[input.KeyBackspace] = event.VKBack
	io.KeyMap[input.KeySpace] = event.VKSpace
	io.KeyMap[input.KeyEnter] = event.VKReturn
	io.KeyMap[input.KeyEscape] = event.VKEscape
	io.KeyMap[input.KeyKeyPadEnter] = event.VKReturn
	io.KeyMap[input.KeyA] = event.VKA
	io.KeyMap[input.KeyC] = event.VKC
	io.KeyMap[input.KeyV] = event.VKV
	io.KeyMap[input.KeyX] = event.VKX
	io.KeyMap[input.KeyY] = event.VKY
	io.KeyMap[input.KeyZ] = event.VKZ
}

// Shutdown unbinds the window, restores the IME hook and clears all relay state
// Idempotent. The pump must have stopped forwarding messages before the call
func (b *Backend) Shutdown() {
	bd := b.bind.Swap(nil)
	if bd == nil {
		return
	}

	b.io.ImeWindowHandle = 0
	b.io.ImeSetInputScreenPosFn = b.prevImeFn
	b.prevImeFn = nil

	b.queue.Reset()
	b.resetState()

	b.log.Info().Uint64("window", uint64(bd.handle)).Msg("relay shut down")
}

// NewFrame applies all pending input to IO
// Call exactly once per frame on the frame goroutine, before reading IO
func (b *Backend) NewFrame() {
	bd := b.bind.Load()
	if bd == nil {
		b.log.Warn().Msg("NewFrame on uninitialized relay")
		return
	}
	io := b.io

	// Time step
	if now, err := b.clock.Now(); err == nil {
		io.DeltaTime = clock.Seconds(now-b.time, b.ticksPerSecond)
		b.time = now
	}

	// Display size every frame to follow resizes; best effort against a concurrent resize
	w, h := bd.window.ClientSize()
	io.DisplaySize = input.Vec2{X: float32(w), Y: float32(h)}

	io.KeySuper = false
	b.updateMousePos()
	b.drain()

	// Cursor shape only on change
	cursor := io.MouseCursor
	if io.MouseDrawCursor {
		cursor = input.CursorNone
	}
	if b.lastCursor != cursor {
		b.lastCursor = cursor
		b.updateMouseCursor(cursor)
	}

	b.updateGamepad()
	b.reportDrops()
}

// updateMousePos forwards an application request to move the OS pointer
func (b *Backend) updateMousePos() {
	if !b.io.WantSetMousePos {
		return
	}
	b.post(DirectiveSetMousePos, 0, event.MakeLParam(int(b.io.MousePos.X), int(b.io.MousePos.Y)))
}

// updateMouseCursor publishes the requested shape to the window goroutine
func (b *Backend) updateMouseCursor(c input.Cursor) {
	if b.io.ConfigFlags&input.ConfigNoMouseCursorChange != 0 {
		b.updateCursor.Store(false)
		return
	}
	b.updateCursor.Store(true)
	b.post(DirectiveSetMouseCursor, encodeCursor(c), 0)
}

// updateGamepad polls the controller; capabilities are re-queried only after a device change
func (b *Backend) updateGamepad() {
	if b.pad == nil {
		return
	}
	io := b.io
	io.NavInputs = [input.NavInputCount]float32{}
	if io.ConfigFlags&input.ConfigNavEnableGamepad == 0 {
		return
	}

	if b.wantUpdateGamepad {
		b.hasGamepad = b.pad.Connected(0)
		b.wantUpdateGamepad = false
		b.log.Debug().Bool("connected", b.hasGamepad).Msg("gamepad capabilities refreshed")
	}

	io.BackendFlags &^= input.BackendHasGamepad
	if !b.hasGamepad {
		return
	}
	if p, ok := b.pad.State(0); ok {
		io.BackendFlags |= input.BackendHasGamepad
		gamepad.Map(p, &io.NavInputs)
	}
}

// reportDrops logs once per frame in which the ring rejected messages
func (b *Backend) reportDrops() {
	d := b.queue.Dropped()
	if d <= b.lastDropped {
		return
	}
	b.log.Warn().
		Uint64("dropped", d-b.lastDropped).
		Uint64("total", d).
		Msg("message queue full, input dropped")
	b.lastDropped = d
}

// Focused reports the focus flag; frame goroutine only
func (b *Backend) Focused() bool {
	return b.focused
}

// Stats returns diagnostic counters
func (b *Backend) Stats() Stats {
	return Stats{
		Dropped:    b.queue.Dropped(),
		Drained:    b.drained.Load(),
		Directives: b.directives.Load(),
	}
}
