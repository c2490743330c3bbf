// Package dungeons holds the registry of generated dungeon instances
package dungeons

import (
	"context"

	"github.com/KirkDiggler/rpg-sim/internal/entities"
)

// Repository defines the storage interface for dungeon instances
type Repository interface {
	// Save stores or replaces an instance
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves an instance by ID
	// Returns errors.NotFound once the instance has been removed
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes an instance
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// List returns live instances in generation order
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// SaveInput defines the request for saving an instance
type SaveInput struct {
	Dungeon *entities.Dungeon
}

// SaveOutput defines the response for saving an instance
type SaveOutput struct {
	Dungeon *entities.Dungeon
}

// GetInput defines the request for getting an instance
type GetInput struct {
	InstanceID string
}

// GetOutput defines the response for getting an instance
type GetOutput struct {
	Dungeon *entities.Dungeon
}

// DeleteInput defines the request for deleting an instance
type DeleteInput struct {
	InstanceID string
}

// DeleteOutput defines the response for deleting an instance
type DeleteOutput struct {
	Success bool
}

// ListInput defines the request for listing instances
type ListInput struct{}

// ListOutput defines the response for listing instances
type ListOutput struct {
	Dungeons []*entities.Dungeon
}
