package world

import "github.com/KirkDiggler/rpg-sim/internal/entities"

// LoadMapInput defines the request for loading a map into the cache
type LoadMapInput struct {
	MapID int
}

// LoadMapOutput defines the response for loading a map
type LoadMapOutput struct {
	Map *entities.LoadedMap
}

// UnloadMapInput defines the request for dropping a cached map
type UnloadMapInput struct {
	MapID int
}

// UnloadMapOutput defines the response for dropping a cached map
type UnloadMapOutput struct {
	// Success is true even when the map was not loaded
	Success bool
}

// SyncMapStateInput defines the request for reading a cached map
type SyncMapStateInput struct {
	MapID int
}

// SyncMapStateOutput defines the response for reading a cached map
type SyncMapStateOutput struct {
	Map    *entities.LoadedMap
	Loaded bool
}

// UpdateWorldTimeInput defines the request for advancing the world clock
type UpdateWorldTimeInput struct{}

// UpdateWorldTimeOutput defines the response for advancing the world clock
type UpdateWorldTimeOutput struct {
	// Time is unix milliseconds
	Time int64
}

// SnapshotInput defines the request for the whole world state
type SnapshotInput struct{}

// SnapshotOutput defines the response for the whole world state
type SnapshotOutput struct {
	Maps map[int]*entities.LoadedMap
	Time int64
}

// SpawnZonesInput defines the request for the spawn zones of a map
type SpawnZonesInput struct {
	MapID int
}

// SpawnZonesOutput defines the response for spawn zones
type SpawnZonesOutput struct {
	Zones []entities.SpawnZone
}

// IsPlayerInZoneInput defines the request for a zone membership check
type IsPlayerInZoneInput struct {
	PlayerID int
	ZoneID   string
}

// IsPlayerInZoneOutput defines the response for a zone membership check
type IsPlayerInZoneOutput struct {
	InZone bool
}
