// Package event implements the publish/subscribe core of the engine.
//
// The Dispatcher owns a subscriber registry keyed by event type and a
// bounded FIFO queue of pending events. Producers either dispatch
// synchronously with PublishImmediate or enqueue with Publish; the driver
// loop drains the queue once per tick with ProcessEvents. Backpressure is
// drop-on-full: a publish against a full queue is logged and discarded,
// never blocked or retried.
//
// # Delivery
//
// One dispatch delivers an event to every active subscriber of its type,
// in ascending priority order (stable for equal priorities). The registry
// lock is released before any callback runs, so callbacks may freely
// subscribe, unsubscribe, or publish. A callback that returns an error or
// panics is logged and does not stop delivery to later subscribers.
//
// # Concurrency
//
// Subscribe, Unsubscribe, Publish, and PublishImmediate are safe for
// concurrent use. Two independent locks guard the registry and the queue;
// neither is held while a callback executes. ProcessEvents rejects
// re-entrant calls from inside a callback and returns 0.
package event
