package quest

import (
	"github.com/KirkDiggler/rpg-sim/internal/assets"
	"github.com/KirkDiggler/rpg-sim/internal/entities"
)

// LoadInput defines the request for a quest definition
type LoadInput struct {
	Quest assets.Ref
}

// LoadOutput defines the response for a quest definition
type LoadOutput struct {
	Quest *entities.Quest
}

// AssignInput defines the request for starting a quest
type AssignInput struct {
	PlayerID int
	Quest    assets.Ref
}

// AssignOutput defines the response for starting a quest
type AssignOutput struct {
	Quest    *entities.Quest
	Progress entities.QuestProgress
}

// TrackProgressInput defines the request for advancing a quest by one step
type TrackProgressInput struct {
	PlayerID int
	Quest    assets.Ref
}

// TrackProgressOutput defines the response for advancing a quest
type TrackProgressOutput struct {
	Progress entities.QuestProgress
}

// CompleteInput defines the request for completing a quest
type CompleteInput struct {
	PlayerID int
	Quest    assets.Ref
}

// CompleteOutput defines the response for completing a quest
type CompleteOutput struct {
	Player       *entities.Player
	Rewards      entities.QuestRewards
	LevelsGained int
}

// RewardInput defines the request for granting a quest's rewards
type RewardInput struct {
	PlayerID int
	Quest    assets.Ref
}

// RewardOutput defines the response for granting a quest's rewards
type RewardOutput struct {
	Player       *entities.Player
	Rewards      entities.QuestRewards
	LevelsGained int
}

// ObjectivesInput defines the request for a quest's objectives
type ObjectivesInput struct {
	Quest assets.Ref
}

// ObjectivesOutput defines the response for a quest's objectives
type ObjectivesOutput struct {
	Objectives []string
}

// ValidateStateInput defines the request for checking a player has a quest
type ValidateStateInput struct {
	PlayerID int
	Quest    assets.Ref
}

// ValidateStateOutput defines the response for checking a player has a quest
type ValidateStateOutput struct {
	Valid bool
}

// CheckCompletionInput defines the request for checking a quest is complete
type CheckCompletionInput struct {
	PlayerID int
	Quest    assets.Ref
}

// CheckCompletionOutput defines the response for checking a quest is complete
type CheckCompletionOutput struct {
	Completed bool
}
