package events

// Event type tags. The tag is the dispatch key; keep them stable, saves
// and subscriber registrations reference them by value.
const (
	TypeAttributeChanged = "AttributeChanged"
	TypeItemAcquired     = "ItemAcquired"
	TypeItemLost         = "ItemLost"
	TypeLocationChanged  = "LocationChanged"
	TypeObjectExamined   = "ObjectExamined"
	TypeDialogueStarted  = "DialogueStarted"
	TypeDialogueChoice   = "DialogueChoice"
	TypeDialogueEnded    = "DialogueEnded"
	TypeInsightGained    = "InsightGained"
	TypePuzzleSolved     = "PuzzleSolved"
	TypeStateChanged     = "StateChanged"
	TypeGameSaved        = "GameSaved"
	TypeError            = "Error"
	TypeConfigReloaded   = "ConfigReloaded"
)
