package dialogue

import "github.com/KirkDiggler/rpg-sim/internal/entities"

// StartInput defines the request for opening a conversation
type StartInput struct {
	PlayerID int
	NPCID    int
}

// StartOutput defines the response for opening a conversation
type StartOutput struct {
	NPC *entities.NPC
	// Tree is the NPC's dialogue subtree, nil when it has none
	Tree any
}

// AdvanceInput defines the request for walking the dialogue document
type AdvanceInput struct {
	// DialogueID is a dotted path such as "Guard.greeting.options"
	DialogueID string
	// Choice, when set, selects one more step below DialogueID
	Choice string
}

// AdvanceOutput defines the response for walking the dialogue document
type AdvanceOutput struct {
	Node any
}

// EndInput defines the request for closing a conversation
type EndInput struct {
	PlayerID int
}

// EndOutput defines the response for closing a conversation
type EndOutput struct {
	Ended bool
}

// IsActiveInput defines the request for checking a player is in conversation
type IsActiveInput struct {
	PlayerID int
}

// IsActiveOutput defines the response for checking a player is in conversation
type IsActiveOutput struct {
	Active bool
	NPCID  int
}

// TreeInput defines the request for an NPC's dialogue subtree
type TreeInput struct {
	NPCID int
}

// TreeOutput defines the response for an NPC's dialogue subtree
type TreeOutput struct {
	Tree any
}

// AssignQuestInput defines the request for taking a quest from an NPC
type AssignQuestInput struct {
	PlayerID int
	NPCID    int
}

// AssignQuestOutput defines the response for taking a quest from an NPC
type AssignQuestOutput struct {
	// Assigned is false when the NPC offers no quest
	Assigned bool
	QuestID  int
}
