package events

import "github.com/lmorandi/reverie/internal/event"

// DialogueStarted is published when a conversation with a character
// begins. The state layer reacts by switching into its dialogue mode.
type DialogueStarted struct {
	event.Base

	CharacterID   string
	CharacterName string
	DialogueID    string
}

// NewDialogueStarted creates a DialogueStarted event.
func NewDialogueStarted(characterID, characterName, dialogueID string) *DialogueStarted {
	return &DialogueStarted{
		Base:          event.NewBase(),
		CharacterID:   characterID,
		CharacterName: characterName,
		DialogueID:    dialogueID,
	}
}

// Type returns the event type tag.
func (e *DialogueStarted) Type() string { return TypeDialogueStarted }

// Priority implements event.Event.
func (e *DialogueStarted) Priority() int { return event.PriorityHigh }

// DialogueChoice is published when the player picks a dialogue option.
type DialogueChoice struct {
	event.Base

	DialogueID string
	ChoiceID   string
	ChoiceText string

	// Requirements lists preconditions the choice depended on.
	Requirements []string
}

// NewDialogueChoice creates a DialogueChoice event.
func NewDialogueChoice(dialogueID, choiceID, choiceText string) *DialogueChoice {
	return &DialogueChoice{
		Base:       event.NewBase(),
		DialogueID: dialogueID,
		ChoiceID:   choiceID,
		ChoiceText: choiceText,
	}
}

// Type returns the event type tag.
func (e *DialogueChoice) Type() string { return TypeDialogueChoice }

// DialogueEnded is published when a conversation finishes.
type DialogueEnded struct {
	event.Base

	CharacterID string
	DialogueID  string

	// Reason is "completed", "interrupted", or "choice_exit".
	Reason string
}

// NewDialogueEnded creates a DialogueEnded event.
func NewDialogueEnded(characterID, dialogueID, reason string) *DialogueEnded {
	return &DialogueEnded{
		Base:        event.NewBase(),
		CharacterID: characterID,
		DialogueID:  dialogueID,
		Reason:      reason,
	}
}

// Type returns the event type tag.
func (e *DialogueEnded) Type() string { return TypeDialogueEnded }
