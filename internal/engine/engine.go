// Package engine wires the event dispatcher and the state controller
// into a fixed-rate driver loop.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lmorandi/reverie/internal/config"
	"github.com/lmorandi/reverie/internal/event"
	"github.com/lmorandi/reverie/internal/event/events"
	"github.com/lmorandi/reverie/internal/logging"
	"github.com/lmorandi/reverie/internal/state"
)

// ErrAlreadyRunning is returned when Run is called on a running engine.
var ErrAlreadyRunning = errors.New("engine is already running")

// Engine drives the two cores. Each tick processes queued events first,
// then updates and renders the current state, so state logic run this
// tick always sees events published before it. That ordering is part of
// the engine contract.
type Engine struct {
	cfg        config.Config
	dispatcher *event.Dispatcher
	states     *state.Controller
	logger     *logging.Logger

	// budget is read by the tick loop and written by config reloads.
	budget  atomic.Int32
	running atomic.Bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDispatcher supplies an externally constructed dispatcher.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(e *Engine) {
		if d != nil {
			e.dispatcher = d
		}
	}
}

// WithController supplies an externally constructed state controller.
func WithController(c *state.Controller) Option {
	return func(e *Engine) {
		if c != nil {
			e.states = c
		}
	}
}

// New creates an Engine. Unless supplied via options, the dispatcher and
// controller are built from the configuration.
func New(cfg config.Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:    cfg,
		logger: logging.Null,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.dispatcher == nil {
		e.dispatcher = event.New(
			event.WithQueueCapacity(cfg.QueueCapacity),
			event.WithLogger(e.logger.WithComponent("dispatcher")),
			event.WithDebug(cfg.Debug),
		)
	}
	if e.states == nil {
		e.states = state.NewController(
			state.WithLogger(e.logger.WithComponent("state")),
		)
	}
	e.budget.Store(int32(cfg.EventBudget))
	return e
}

// Dispatcher returns the engine's event dispatcher.
func (e *Engine) Dispatcher() *event.Dispatcher { return e.dispatcher }

// States returns the engine's state controller.
func (e *Engine) States() *state.Controller { return e.states }

// Run ticks the engine at the configured rate until the context is done.
func (e *Engine) Run(ctx context.Context) error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer e.running.Store(false)

	interval := time.Second / time.Duration(e.cfg.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.logger.Info("engine running at %d ticks/s", e.cfg.TickRate)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			e.logger.Info("engine stopped")
			return nil
		case now := <-ticker.C:
			e.Tick(now.Sub(last))
			last = now
		}
	}
}

// IsRunning reports whether Run is active.
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}

// Tick runs one frame: drain queued events within the budget, update the
// current state, render it. A state transition applied during the tick is
// announced with a StateChanged event. A fault escaping the tick is
// recovered and republished as an Error event.
func (e *Engine) Tick(dt time.Duration) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("tick fault: %v", r)
			e.dispatcher.PublishImmediate(events.NewError(
				"ENGINE_TICK", fmt.Sprintf("%v", r), "engine",
			))
		}
	}()

	before := e.states.CurrentStateName()

	e.dispatcher.ProcessEvents(int(e.budget.Load()))
	e.states.Update(dt)
	e.states.Render()

	if after := e.states.CurrentStateName(); after != before {
		e.dispatcher.PublishImmediate(events.NewStateChanged(before, after, "controller"))
	}
}

// HandleInput forwards a line of player input to the current state.
func (e *Engine) HandleInput(input string) {
	e.states.HandleInput(input)
}

// ApplyConfig applies the reloadable subset of a freshly loaded
// configuration: queue capacity, debug logging, and log level. Tick rate
// changes require a restart.
func (e *Engine) ApplyConfig(cfg config.Config) {
	e.dispatcher.SetQueueCapacity(cfg.QueueCapacity)
	e.dispatcher.SetDebug(cfg.Debug)
	e.logger.SetLevel(logging.ParseLevel(cfg.LogLevel))
	e.budget.Store(int32(cfg.EventBudget))
}
