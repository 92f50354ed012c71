// Package state implements the behavioral-mode state machine.
//
// A Handler is one mode of the engine (exploring, dialogue, a pause
// overlay). The Controller owns exactly one current handler plus a LIFO
// stack of suspended handlers, and applies transitions deferred: a
// ChangeState, PushState, or PopState made during a tick takes effect at
// the start of the next Update call, never while the requesting code is
// still running inside the current handler.
//
// Enter is called exactly once when a handler becomes current through
// SetInitialState, ChangeState, or PushState. PopState resumes the
// suspended handler without calling Enter again; it was never exited.
//
// The Controller holds no locks. Update, ChangeState, PushState, and
// PopState must be called from a single logical thread of control -
// the driver loop and its synchronous callees.
package state
