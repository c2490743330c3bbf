package player

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-sim/internal/entities"
)

// Mutation edits a loaded player in place. Returning an error aborts the
// save and is passed back to the caller.
type Mutation func(p *entities.Player) error

// CreateInput defines the request for creating a player
type CreateInput struct {
	// PlayerID is optional; the next free ID is used when nil
	PlayerID    *int
	DisplayName string
	Username    string
	// Stats override the defaults key by key
	Stats entities.Stats
}

// CreateOutput defines the response for creating a player
type CreateOutput struct {
	Player *entities.Player
}

// GetInput defines the request for loading a player
type GetInput struct {
	PlayerID int
}

// GetOutput defines the response for loading a player
type GetOutput struct {
	Player *entities.Player
}

// SaveInput defines the request for saving a whole player record
type SaveInput struct {
	Player *entities.Player
}

// SaveOutput defines the response for saving a player
type SaveOutput struct {
	Player *entities.Player
}

// ListInput defines the request for listing players
type ListInput struct{}

// ListOutput defines the response for listing players
type ListOutput struct {
	PlayerIDs []int
}

// SpawnInput defines the request for spawning a player into the world
type SpawnInput struct {
	PlayerID int
}

// SpawnOutput defines the response for spawning a player
type SpawnOutput struct {
	Player *entities.Player
}

// MutateInput defines the request for a locked load-mutate-save cycle
type MutateInput struct {
	PlayerID int
	Mutation Mutation
}

// MutateOutput defines the response for a mutation
type MutateOutput struct {
	Player *entities.Player
}

// ApplyExperienceInput defines the request for granting experience
type ApplyExperienceInput struct {
	PlayerID int
	Amount   int
}

// ApplyExperienceOutput defines the response for granting experience
type ApplyExperienceOutput struct {
	Player       *entities.Player
	LevelsGained int
	LeveledUp    bool
}

// LevelUpInput defines the request for a single level-up stat bump
type LevelUpInput struct {
	PlayerID int
}

// LevelUpOutput defines the response for a level-up
type LevelUpOutput struct {
	Player *entities.Player
}

// UpdateStatsInput defines the request for recomputing derived stats
type UpdateStatsInput struct {
	PlayerID int
}

// UpdateStatsOutput defines the response for recomputing derived stats
type UpdateStatsOutput struct {
	Player *entities.Player
}

// PositionUpdate holds the position fields to overwrite. Nil fields are kept.
type PositionUpdate struct {
	MapID *int
	X     *float64
	Y     *float64
	Z     *float64
}

// UpdatePositionInput defines the request for moving a player
type UpdatePositionInput struct {
	PlayerID int
	Position PositionUpdate
}

// UpdatePositionOutput defines the response for moving a player
type UpdatePositionOutput struct {
	Player *entities.Player
}

// RespawnInput defines the request for respawning a player
type RespawnInput struct {
	PlayerID int
}

// RespawnOutput defines the response for respawning a player
type RespawnOutput struct {
	Player *entities.Player
}

// IsAliveInput defines the request for a liveness check
type IsAliveInput struct {
	PlayerID int
}

// IsAliveOutput defines the response for a liveness check
type IsAliveOutput struct {
	Alive bool
}

// ApplyDamageInput defines the request for damaging a player
type ApplyDamageInput struct {
	PlayerID int
	Amount   int
	// Source is the attacker, carried on the published event
	Source core.Entity
}

// ApplyDamageOutput defines the response for damaging a player
type ApplyDamageOutput struct {
	Player *entities.Player
	HP     int
}
