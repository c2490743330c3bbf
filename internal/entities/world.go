package entities

import "fmt"

// GameMap is an entry of PLAY/maps.json.
type GameMap struct {
	MapID      int    `json:"mapID"`
	MapName    string `json:"mapName,omitempty"`
	Dimensions any    `json:"dimensions,omitempty"`
}

// LoadedMap is a map held in the world cache.
type LoadedMap struct {
	GameMap
	LoadedAt int64 `json:"loadedAt"`
}

// SpawnZone is a region of a map where players may appear.
type SpawnZone struct {
	ZoneID string `json:"zoneID"`
	MapID  int    `json:"mapID"`
	Bounds any    `json:"bounds,omitempty"`
}

// SpawnZoneID names the single whole-map spawn zone of mapID.
func SpawnZoneID(mapID int) string {
	return fmt.Sprintf("map_%d_spawn", mapID)
}
