// Command relay-demo drives the input relay from a terminal and shows the resulting input state
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/inputrelay/config"
	"github.com/lixenwraith/inputrelay/core"
	"github.com/lixenwraith/inputrelay/input"
	"github.com/lixenwraith/inputrelay/parameter"
	"github.com/lixenwraith/inputrelay/relay"
	"github.com/lixenwraith/inputrelay/service"
	"github.com/lixenwraith/inputrelay/terminal"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	configPath := flag.String("config", "", "TOML config file (defaults when empty or missing)")
	debug := flag.Bool("debug", false, "Write a log file under "+logDir)
	flag.Parse()

	if err := run(*configPath, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "relay-demo: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, debug bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, logFile := setupLogging(debug, cfg.Level())
	if logFile != nil {
		defer logFile.Close()
	}

	term := terminal.NewService()
	if err := term.Init(nil, logger); err != nil {
		return err
	}

	io := input.NewIO()
	io.ConfigFlags |= input.ConfigNavEnableKeyboard | input.ConfigNavEnableGamepad
	b := relay.New(io, cfg, relay.WithLogger(logger))
	if err := b.Init(term.Window()); err != nil {
		stopServices(logger, term)
		return err
	}
	term.SetHandler(b.WndProc)
	if err := term.Start(); err != nil {
		stopServices(logger, term)
		b.Shutdown()
		return err
	}
	logger.Info().Str("platform", io.BackendPlatformName).Msg("relay running")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(core.GoErr(func() error {
		return frameLoop(ctx, term, b, io, logger)
	}))
	err = g.Wait()

	shutdownRelay(logger, term, b)

	stats := b.Stats()
	logger.Info().Uint64("drained", stats.Drained).Uint64("dropped", stats.Dropped).Uint64("directives", stats.Directives).Msg("relay stopped")
	return err
}

// frameLoop runs NewFrame, update and render at the frame interval until quit
func frameLoop(ctx context.Context, term *terminal.TerminalService, b *relay.Backend, io *input.IO, log zerolog.Logger) error {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	screen := term.Window().Screen()
	v := newView()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-term.Done():
			log.Warn().Msg("terminal pump exited")
			return nil
		case <-ticker.C:
		}

		b.NewFrame()
		if wantQuit(io) {
			log.Info().Msg("quit requested")
			return nil
		}

		v.update(io)
		v.draw(screen, io, b.Focused(), b.Stats())
		screen.Show()
	}
}

// pump is a service whose goroutine feeds the relay
type pump interface {
	service.Service
	Done() <-chan struct{}
}

// shutdownRelay stops the pump, then releases the relay
// The relay resets its ring on shutdown, so it is left bound if the pump is still running
func shutdownRelay(log zerolog.Logger, p pump, b interface{ Shutdown() }) bool {
	stopServices(log, p)
	select {
	case <-p.Done():
		b.Shutdown()
		return true
	default:
		log.Warn().Str("service", p.Name()).Msg("pump still running, relay left bound")
		return false
	}
}

// stopServices stops in reverse start order, logging failures
func stopServices(log zerolog.Logger, svcs ...service.Service) {
	for i := len(svcs) - 1; i >= 0; i-- {
		if err := svcs[i].Stop(); err != nil {
			log.Error().Err(err).Str("service", svcs[i].Name()).Msg("stop failed")
		}
	}
}
