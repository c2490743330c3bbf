package dungeons

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.Dungeon
	order []string
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.Dungeon),
	}
}

// Save stores an instance
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Dungeon == nil {
		return nil, errors.InvalidArgument("dungeon is required")
	}
	if input.Dungeon.InstanceID == "" {
		return nil, errors.InvalidArgument("instance ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Dungeon.InstanceID]; !exists {
		r.order = append(r.order, input.Dungeon.InstanceID)
	}
	r.store[input.Dungeon.InstanceID] = input.Dungeon.Clone()

	return &SaveOutput{Dungeon: input.Dungeon}, nil
}

// Get retrieves a copy of an instance
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.InstanceID == "" {
		return nil, errors.InvalidArgument("instance ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	dungeon, exists := r.store[input.InstanceID]
	if !exists {
		return nil, errors.NotFoundf("dungeon instance %s not found", input.InstanceID)
	}

	return &GetOutput{Dungeon: dungeon.Clone()}, nil
}

// Delete removes an instance
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.InstanceID == "" {
		return nil, errors.InvalidArgument("instance ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.InstanceID]; !exists {
		return nil, errors.NotFoundf("dungeon instance %s not found", input.InstanceID)
	}

	delete(r.store, input.InstanceID)
	for i, id := range r.order {
		if id == input.InstanceID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return &DeleteOutput{Success: true}, nil
}

// List returns copies of every instance in generation order
func (r *InMemoryRepository) List(_ context.Context, _ *ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Dungeon, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.store[id].Clone())
	}

	return &ListOutput{Dungeons: out}, nil
}

var _ Repository = (*InMemoryRepository)(nil)
