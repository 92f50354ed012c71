package state

import "time"

// Handler defines the interface for behavioral modes. The Controller
// exclusively owns every handler it holds and is the only caller of the
// lifecycle hooks.
type Handler interface {
	// Name returns the unique mode identifier, used for logging and
	// the Controller's CurrentStateName query.
	Name() string

	// Enter is called when the handler becomes current.
	Enter()

	// HandleInput processes a line of player input.
	HandleInput(input string)

	// Update advances mode logic by the elapsed tick duration.
	Update(dt time.Duration)

	// Render emits the handler's current presentation.
	Render()

	// Exit is called before the handler is discarded. It is not called
	// when the handler is suspended by a push.
	Exit()
}

// TransitionGuard is implemented by handlers that may refuse to be
// replaced. Handlers without it always allow transitions.
type TransitionGuard interface {
	CanTransition() bool
}

// AutoAdvancer is implemented by handlers that request their own
// replacement. A non-nil Next result after an Update causes the
// Controller to schedule a change for the following tick.
type AutoAdvancer interface {
	Next() Handler
}
