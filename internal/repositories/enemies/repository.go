// Package enemies holds the registry of live enemy instances
package enemies

import (
	"context"

	"github.com/KirkDiggler/rpg-sim/internal/entities"
)

// Repository defines the storage interface for enemy instances
type Repository interface {
	// Save stores or replaces an instance
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves an instance by ID
	// Returns errors.NotFound once the instance has been removed
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes an instance
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// List returns live instances in spawn order
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// SaveInput defines the request for saving an instance
type SaveInput struct {
	Enemy *entities.Enemy
}

// SaveOutput defines the response for saving an instance
type SaveOutput struct {
	Enemy *entities.Enemy
}

// GetInput defines the request for getting an instance
type GetInput struct {
	InstanceID string
}

// GetOutput defines the response for getting an instance
type GetOutput struct {
	Enemy *entities.Enemy
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
	Enemies []*entities.Enemy
}
