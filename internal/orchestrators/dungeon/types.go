package dungeon

import "github.com/KirkDiggler/rpg-sim/internal/entities"

// GenerateInput defines the request for generating a dungeon instance
type GenerateInput struct {
	// DungeonID falls back to the first definition when unknown
	DungeonID int
	// Seed drives the room shuffle; zero draws a fresh seed
	Seed int64
}

// GenerateOutput defines the response for generating a dungeon instance
type GenerateOutput struct {
	Dungeon *entities.Dungeon
}

// RegenerateInput defines the request for replacing a dungeon's instances
type RegenerateInput struct {
	DungeonID int
}

// RegenerateOutput defines the response for replacing a dungeon's instances
type RegenerateOutput struct {
	Dungeon *entities.Dungeon
	// Removed counts the instances discarded first
	Removed int
}

// SpawnRoomsInput defines the request for instancing the rooms of a dungeon
type SpawnRoomsInput struct {
	InstanceID string
}

// SpawnRoomsOutput defines the response for instancing rooms
type SpawnRoomsOutput struct {
	Rooms []entities.Room
}

// ResetInput defines the request for reshuffling an instance
type ResetInput struct {
	InstanceID string
}

// ResetOutput defines the response for reshuffling an instance
type ResetOutput struct {
	Success bool
	Dungeon *entities.Dungeon
}

// GetInput defines the request for loading an instance
type GetInput struct {
	InstanceID string
}

// GetOutput defines the response for loading an instance
type GetOutput struct {
	Dungeon *entities.Dungeon
}

// RandomizeRoomOrderInput defines the request for shuffling rooms
type RandomizeRoomOrderInput struct {
	Rooms []entities.Room
	// Seed makes the shuffle reproducible; zero uses the session roller
	Seed int64
}

// RandomizeRoomOrderOutput defines the response for shuffling rooms
type RandomizeRoomOrderOutput struct {
	Rooms []entities.Room
}

// ValidateLayoutInput defines the request for checking a layout
type ValidateLayoutInput struct {
	Dungeon *entities.Dungeon
}

// ValidateLayoutOutput defines the response for checking a layout
type ValidateLayoutOutput struct {
	Valid bool
}

// GenerateSeedInput defines the request for a fresh seed
type GenerateSeedInput struct{}

// GenerateSeedOutput defines the response for a fresh seed
type GenerateSeedOutput struct {
	Seed int64
}
