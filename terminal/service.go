package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/inputrelay/core"
	"github.com/lixenwraith/inputrelay/event"
	"github.com/lixenwraith/inputrelay/parameter"
	"github.com/lixenwraith/inputrelay/service"
)

// Handler receives every translated message on the pump goroutine; relay.Backend.WndProc fits
type Handler func(m event.Message) bool

// ErrNoHandler is returned by Start when no handler was set
var ErrNoHandler = errors.New("terminal: no message handler")

// quit ends the poll loop when posted through the event FIFO
type quit struct{}

// TerminalService owns the screen and runs the pump goroutine
type TerminalService struct {
	screen  tcell.Screen
	window  *Window
	handler Handler
	log     zerolog.Logger

	releaseDelay time.Duration

	// Pending synthetic key release; at most one is live since each key flushes the last
	timerMu      sync.Mutex
	releaseTimer *time.Timer
	timersOff    bool

	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
	stopped bool
}

// NewService creates a new terminal service
func NewService() *TerminalService {
	return &TerminalService{
		log:          zerolog.Nop(),
		releaseDelay: parameter.KeyReleaseDelay,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}
}

// Name implements Service
func (s *TerminalService) Name() string {
	return "terminal"
}

// Dependencies implements Service
func (s *TerminalService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: tcell.Screen (optional, defaults to tcell.NewScreen())
// args[1]: zerolog.Logger (optional)
func (s *TerminalService) Init(args ...any) error {
	var screen tcell.Screen
	if len(args) > 0 {
		if sc, ok := args[0].(tcell.Screen); ok {
			screen = sc
		}
	}
	if len(args) > 1 {
		if l, ok := args[1].(zerolog.Logger); ok {
			s.log = l
		}
	}

	if screen == nil {
		sc, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "terminal screen")
		}
		screen = sc
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "terminal init")
	}

	// Motion reporting without a button keeps hover position current
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	s.screen = screen
	s.window = NewWindow(screen)
	core.RegisterCrashCleanup(screen.Fini)

	w, h := screen.Size()
	s.log.Debug().Int("width", w).Int("height", h).Uint64("window", uint64(s.window.Handle())).Msg("terminal initialized")
	return nil
}

// SetHandler sets the message receiver; call before Start
func (s *TerminalService) SetHandler(h Handler) {
	s.handler = h
}

// Start implements Service - launches the pump goroutine
func (s *TerminalService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}
	if s.handler == nil {
		return ErrNoHandler
	}
	if s.screen == nil {
		return errors.New("terminal: start before init")
	}
	s.running = true

	go s.pollLoop()
	return nil
}

// pollLoop translates terminal events and hands them to the handler until stopped
func (s *TerminalService) pollLoop() {
	defer close(s.doneCh)

	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	tr := newTranslator(s.window.Handle())
	tr.schedule = s.scheduleRelease

	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if in, ok := ev.(*tcell.EventInterrupt); ok {
			if _, ok := in.Data().(quit); ok {
				return
			}
		}

		for _, m := range tr.translate(ev) {
			s.handler(m)
		}
	}
}

// scheduleRelease arms the synthetic key release for gen, replacing any pending one
func (s *TerminalService) scheduleRelease(gen uint64) {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	if s.timersOff {
		return
	}
	if s.releaseTimer != nil {
		s.releaseTimer.Stop()
	}
	s.releaseTimer = time.AfterFunc(s.releaseDelay, func() {
		_ = s.screen.PostEvent(tcell.NewEventInterrupt(keyRelease{gen: gen}))
	})
}

// stopTimers cancels the pending release and refuses new ones
func (s *TerminalService) stopTimers() {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	s.timersOff = true
	if s.releaseTimer != nil {
		s.releaseTimer.Stop()
	}
}

// Stop implements Service - stops the pump and restores the terminal
// Idempotent. After Stop returns no further messages reach the handler
func (s *TerminalService) Stop() error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	running := s.running
	s.running = false
	s.mu.Unlock()

	if running {
		close(s.stopCh)
		// Unblock PollEvent; a full queue is drained by the pump until it sees stopCh
		if err := s.screen.PostEvent(tcell.NewEventInterrupt(quit{})); err != nil {
			s.log.Debug().Err(err).Msg("quit post failed, waiting for pump")
		}

		select {
		case <-s.doneCh:
		case <-time.After(parameter.PumpShutdownTimeout):
			s.log.Warn().Dur("timeout", parameter.PumpShutdownTimeout).Msg("terminal pump did not stop in time")
		}
	}

	s.stopTimers()
	if s.screen != nil {
		s.screen.Fini()
	}
	return nil
}

// Window returns the relay window; nil before Init
func (s *TerminalService) Window() *Window {
	return s.window
}

// Done is closed when the pump goroutine exits
func (s *TerminalService) Done() <-chan struct{} {
	return s.doneCh
}

var _ service.Service = (*TerminalService)(nil)
