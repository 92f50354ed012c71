package events

import "github.com/lmorandi/reverie/internal/event"

// LocationChanged is published when the player moves between locations.
type LocationChanged struct {
	event.Base

	FromLocation string
	ToLocation   string

	// Transition is "walk", "door", or "teleport".
	Transition string
}

// NewLocationChanged creates a LocationChanged event.
func NewLocationChanged(from, to, transition string) *LocationChanged {
	return &LocationChanged{
		Base:         event.NewBase(),
		FromLocation: from,
		ToLocation:   to,
		Transition:   transition,
	}
}

// Type returns the event type tag.
func (e *LocationChanged) Type() string { return TypeLocationChanged }

// Priority implements event.Event.
func (e *LocationChanged) Priority() int { return 2 }

// ObjectExamined is published when the player examines an object in the
// current location.
type ObjectExamined struct {
	event.Base

	ObjectID   string
	ObjectName string
	LocationID string

	// FirstTime reports whether this is the first examination.
	FirstTime bool
}

// NewObjectExamined creates an ObjectExamined event.
func NewObjectExamined(objectID, objectName, locationID string, firstTime bool) *ObjectExamined {
	return &ObjectExamined{
		Base:       event.NewBase(),
		ObjectID:   objectID,
		ObjectName: objectName,
		LocationID: locationID,
		FirstTime:  firstTime,
	}
}

// Type returns the event type tag.
func (e *ObjectExamined) Type() string { return TypeObjectExamined }

// PuzzleSolved is published when the player solves a puzzle.
type PuzzleSolved struct {
	event.Base

	PuzzleID   string
	PuzzleName string
	Solution   string
	Attempts   int
}

// NewPuzzleSolved creates a PuzzleSolved event.
func NewPuzzleSolved(puzzleID, puzzleName, solution string, attempts int) *PuzzleSolved {
	return &PuzzleSolved{
		Base:       event.NewBase(),
		PuzzleID:   puzzleID,
		PuzzleName: puzzleName,
		Solution:   solution,
		Attempts:   attempts,
	}
}

// Type returns the event type tag.
func (e *PuzzleSolved) Type() string { return TypePuzzleSolved }

// Priority implements event.Event.
func (e *PuzzleSolved) Priority() int { return 4 }
