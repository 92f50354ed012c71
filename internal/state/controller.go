package state

import (
	"runtime/debug"
	"time"

	"github.com/lmorandi/reverie/internal/logging"
)

// pendingKind identifies the deferred operation waiting for the next
// Update call. Holding kind and target together in one slot makes "at
// most one pending operation" structural.
type pendingKind uint8

const (
	pendingNone pendingKind = iota
	pendingChange
	pendingPush
	pendingPop
)

// pendingOp is the single deferred-transition slot.
type pendingOp struct {
	kind pendingKind
	next Handler
}

// Controller owns the current behavioral mode and a stack of suspended
// modes. Transitions requested through ChangeState, PushState, and
// PopState are applied at the start of the next Update call.
type Controller struct {
	current Handler
	pending pendingOp
	stack   []Handler

	logger *logging.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger for transition and fault reporting.
func WithLogger(l *logging.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController creates a Controller with no current state.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		logger: logging.Null,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetInitialState installs the first state and enters it immediately.
// Unlike later transitions this one is not deferred. It is a logged
// no-op if a current state already exists or the argument is nil.
func (c *Controller) SetInitialState(h Handler) {
	if c.current != nil {
		c.logger.Warn("set initial state: current state %s already set", c.current.Name())
		return
	}
	if h == nil {
		c.logger.Error("set initial state: nil state")
		return
	}

	c.logger.Info("initial state: %s", h.Name())
	c.current = h
	c.current.Enter()
}

// ChangeState requests a replacement of the current state. The swap is
// applied on the next Update call; the current state's Exit and the new
// state's Enter never run while the requester is still executing. The
// request is rejected if the current state's transition guard refuses.
func (c *Controller) ChangeState(h Handler) {
	if h == nil {
		c.logger.Error("change state: nil state")
		return
	}

	if c.current != nil {
		if guard, ok := c.current.(TransitionGuard); ok && !guard.CanTransition() {
			c.logger.Info("change state to %s rejected: %s does not allow transition", h.Name(), c.current.Name())
			return
		}
		c.logger.Debug("change state requested: %s -> %s", c.current.Name(), h.Name())
	} else {
		c.logger.Debug("change state requested: None -> %s", h.Name())
	}

	c.pending = pendingOp{kind: pendingChange, next: h}
}

// PushState requests an overlay. On application the current state is
// suspended onto the stack without Exit, then the overlay becomes
// current and is entered.
func (c *Controller) PushState(h Handler) {
	if h == nil {
		c.logger.Error("push state: nil state")
		return
	}

	c.logger.Debug("push state requested: %s", h.Name())
	c.pending = pendingOp{kind: pendingPush, next: h}
}

// PopState requests removal of the current state. On application the
// current state is exited and discarded and the top of the stack resumes
// without re-entering. A pop with an empty stack is a logged no-op.
func (c *Controller) PopState() {
	if len(c.stack) == 0 {
		c.logger.Warn("pop state: stack is empty")
		return
	}

	c.logger.Debug("pop state requested")
	c.pending = pendingOp{kind: pendingPop}
}

// Update applies at most one pending transition, then updates the current
// state. A state that implements AutoAdvancer and returns a non-nil next
// state gets a change scheduled for the following tick. Faults inside the
// state's update are recovered and logged; the controller stays usable.
func (c *Controller) Update(dt time.Duration) {
	c.applyPending()

	if c.current == nil {
		return
	}

	c.safeCall("update", func() {
		c.current.Update(dt)

		if adv, ok := c.current.(AutoAdvancer); ok {
			if next := adv.Next(); next != nil {
				c.logger.Debug("state %s requested auto transition to %s", c.current.Name(), next.Name())
				c.ChangeState(next)
			}
		}
	})
}

// Render forwards to the current state only. No current state is a
// silent no-op.
func (c *Controller) Render() {
	if c.current == nil {
		return
	}
	c.safeCall("render", c.current.Render)
}

// HandleInput forwards player input to the current state only.
func (c *Controller) HandleInput(input string) {
	if c.current == nil {
		c.logger.Warn("input with no current state: %q", input)
		return
	}
	c.safeCall("input", func() {
		c.current.HandleInput(input)
	})
}

// CurrentStateName returns the current state's name, or "None".
func (c *Controller) CurrentStateName() string {
	if c.current == nil {
		return "None"
	}
	return c.current.Name()
}

// HasCurrentState reports whether a state is installed.
func (c *Controller) HasCurrentState() bool {
	return c.current != nil
}

// StackDepth returns the number of suspended states.
func (c *Controller) StackDepth() int {
	return len(c.stack)
}

// applyPending executes the deferred operation, if any.
func (c *Controller) applyPending() {
	op := c.pending
	c.pending = pendingOp{}

	switch op.kind {
	case pendingChange:
		c.performChange(op.next)
	case pendingPush:
		c.performPush(op.next)
	case pendingPop:
		c.performPop()
	}
}

// performChange exits and discards the current state, then enters the
// replacement.
func (c *Controller) performChange(next Handler) {
	c.exitCurrent()

	c.current = next
	c.logger.Info("state: %s", next.Name())
	c.current.Enter()
}

// performPush suspends the current state without exiting it, then enters
// the overlay.
func (c *Controller) performPush(next Handler) {
	if c.current != nil {
		c.logger.Debug("suspending state %s", c.current.Name())
		c.stack = append(c.stack, c.current)
	}

	c.current = next
	c.logger.Info("state overlay: %s (stack depth %d)", next.Name(), len(c.stack))
	c.current.Enter()
}

// performPop exits the current state and resumes the top of the stack.
// The resumed state is not re-entered; it was never exited.
func (c *Controller) performPop() {
	if len(c.stack) == 0 {
		c.logger.Error("pop state: stack is empty at apply time")
		return
	}

	c.exitCurrent()

	top := len(c.stack) - 1
	c.current = c.stack[top]
	c.stack[top] = nil
	c.stack = c.stack[:top]
	c.logger.Info("state resumed: %s (stack depth %d)", c.current.Name(), len(c.stack))
}

// exitCurrent exits and releases the current state.
func (c *Controller) exitCurrent() {
	if c.current == nil {
		return
	}

	c.logger.Debug("exiting state %s", c.current.Name())
	c.safeCall("exit", c.current.Exit)
	c.current = nil
}

// safeCall runs one lifecycle hook with panic recovery, logging the
// fault with the state name and operation.
func (c *Controller) safeCall(op string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			name := "None"
			if c.current != nil {
				name = c.current.Name()
			}
			c.logger.Error("state %s %s fault: %v\n%s", name, op, r, debug.Stack())
		}
	}()
	fn()
}
