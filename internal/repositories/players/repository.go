// Package players provides the interface for player record persistence
package players

//go:generate mockgen -destination=mock/mock_repository.go -package=playersmock github.com/KirkDiggler/rpg-sim/internal/repositories/players Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sim/internal/entities"
)

// Repository defines the interface for player persistence
type Repository interface {
	// Get retrieves a player by ID
	// Returns errors.NotFound if the player doesn't exist
	// Returns errors.Malformed if the stored record cannot be decoded
	// Returns errors.IO for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save writes the whole player record, replacing any previous one
	// Returns errors.InvalidArgument for a nil player or negative ID
	// Returns errors.IO for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// List returns every stored player ID in ascending order
	// Returns errors.IO for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// GetInput defines the input for getting a player
type GetInput struct {
	PlayerID int
}

// GetOutput defines the output for getting a player
type GetOutput struct {
	Player *entities.Player
}

// SaveInput defines the input for saving a player
type SaveInput struct {
	Player *entities.Player
}

// SaveOutput defines the output for saving a player
type SaveOutput struct {
	Player *entities.Player
}

// ListInput defines the input for listing players
type ListInput struct{}

// ListOutput defines the output for listing players
type ListOutput struct {
	PlayerIDs []int
}

func validateSave(input SaveInput) error {
	if input.Player == nil {
		return errInvalid(errPlayerNil)
	}
	if input.Player.PlayerID < 0 {
		return errInvalid(errPlayerIDNegative)
	}
	return nil
}
