package events

import "github.com/lmorandi/reverie/internal/event"

// AttributeChanged is published when one of the player's attributes
// (observation, communication, action, empathy) changes value.
type AttributeChanged struct {
	event.Base

	// Attribute is the attribute name, e.g. "observation".
	Attribute string

	// OldValue and NewValue bracket the change.
	OldValue int
	NewValue int

	// Reason records what caused the change, e.g. "dialogue_choice".
	Reason string
}

// NewAttributeChanged creates an AttributeChanged event.
func NewAttributeChanged(attribute string, oldValue, newValue int, reason string) *AttributeChanged {
	return &AttributeChanged{
		Base:      event.NewBase(),
		Attribute: attribute,
		OldValue:  oldValue,
		NewValue:  newValue,
		Reason:    reason,
	}
}

// Type returns the event type tag.
func (e *AttributeChanged) Type() string { return TypeAttributeChanged }

// Delta returns the change in value.
func (e *AttributeChanged) Delta() int { return e.NewValue - e.OldValue }

// Improved reports whether the attribute went up.
func (e *AttributeChanged) Improved() bool { return e.NewValue > e.OldValue }

// ItemAcquired is published when the player gains an item.
type ItemAcquired struct {
	event.Base

	ItemID   string
	ItemName string

	// ItemType is "memento", "clue", or "story".
	ItemType string

	// Source records how the item was obtained, e.g. "examination".
	Source string
}

// NewItemAcquired creates an ItemAcquired event.
func NewItemAcquired(itemID, itemName, itemType, source string) *ItemAcquired {
	return &ItemAcquired{
		Base:     event.NewBase(),
		ItemID:   itemID,
		ItemName: itemName,
		ItemType: itemType,
		Source:   source,
	}
}

// Type returns the event type tag.
func (e *ItemAcquired) Type() string { return TypeItemAcquired }

// Priority implements event.Event.
func (e *ItemAcquired) Priority() int { return event.PriorityElevated }

// ItemLost is published when the player loses an item.
type ItemLost struct {
	event.Base

	ItemID   string
	ItemName string

	// Reason is "used", "traded", or "story_requirement".
	Reason string
}

// NewItemLost creates an ItemLost event.
func NewItemLost(itemID, itemName, reason string) *ItemLost {
	return &ItemLost{
		Base:     event.NewBase(),
		ItemID:   itemID,
		ItemName: itemName,
		Reason:   reason,
	}
}

// Type returns the event type tag.
func (e *ItemLost) Type() string { return TypeItemLost }

// InsightGained is published when the player uncovers a new insight or clue.
type InsightGained struct {
	event.Base

	InsightID   string
	Description string

	// Category is "character", "location", "story", or "mystery".
	Category string

	// Trigger records what produced the insight, e.g. "examination".
	Trigger string
}

// NewInsightGained creates an InsightGained event.
func NewInsightGained(insightID, description, category, trigger string) *InsightGained {
	return &InsightGained{
		Base:        event.NewBase(),
		InsightID:   insightID,
		Description: description,
		Category:    category,
		Trigger:     trigger,
	}
}

// Type returns the event type tag.
func (e *InsightGained) Type() string { return TypeInsightGained }

// Priority implements event.Event.
func (e *InsightGained) Priority() int { return event.PriorityElevated }
