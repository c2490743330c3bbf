// Package network carries game state over websocket packets. The server is
// not authoritative: packets only mirror state held by the orchestrators.
package network

import (
	"encoding/json"
)

// Packet types
const (
	TypeSyncPlayer = "syncPlayer"
	TypeSyncEnemy  = "syncEnemy"
	TypeSyncWorld  = "syncWorld"
)

// Packet is the unit exchanged with clients.
type Packet struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
	// Timestamp is unix milliseconds
	Timestamp int64 `json:"timestamp"`
}

// SyncPlayerRequest is the payload of an inbound syncPlayer packet.
type SyncPlayerRequest struct {
	PlayerID int `json:"playerID"`
}

// SyncEnemyRequest is the payload of an inbound syncEnemy packet.
type SyncEnemyRequest struct {
	InstanceID string `json:"instanceID"`
}

// Decode unmarshals the payload into v.
func (p *Packet) Decode(v any) error {
	if len(p.Payload) == 0 {
		return nil
	}
	return json.Unmarshal(p.Payload, v)
}
