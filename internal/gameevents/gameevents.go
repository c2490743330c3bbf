// Package gameevents names the events published on the rpg-toolkit event bus
// and provides the entity references they carry.
package gameevents

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types
const (
	PlayerCreated       = "player.created"
	PlayerDamaged       = "player.damaged"
	PlayerLevelUp       = "player.level_up"
	PlayerRespawned     = "player.respawned"
	PlayerMoved         = "player.moved"
	SkillCast           = "skill.cast"
	StatusEffectApplied = "status_effect.applied"
	StatusEffectExpired = "status_effect.expired"
	ItemAdded           = "item.added"
	ItemRemoved         = "item.removed"
	ItemEquipped        = "item.equipped"
	ItemUnequipped      = "item.unequipped"
	EnemySpawned        = "enemy.spawned"
	EnemyDespawned      = "enemy.despawned"
	EnemyDamaged        = "enemy.damaged"
	EnemyDefeated       = "enemy.defeated"
	EnemyStateChanged   = "enemy.state_changed"
	QuestAssigned       = "quest.assigned"
	QuestProgressed     = "quest.progressed"
	QuestCompleted      = "quest.completed"
	DialogueStarted     = "dialogue.started"
	DialogueEnded       = "dialogue.ended"
	DungeonGenerated    = "dungeon.generated"
	DungeonReset        = "dungeon.reset"
	MapLoaded           = "map.loaded"
	MapUnloaded         = "map.unloaded"
	SimulationTick      = "simulation.tick"
)

// Event context keys
const (
	KeyDamage   = "damage"
	KeyHP       = "hp"
	KeyLevel    = "level"
	KeyItem     = "item"
	KeyQuantity = "quantity"
	KeySlot     = "slot"
	KeySkill    = "skill"
	KeyState    = "state"
	KeyCritical = "critical"
	KeyTick     = "tick"
	KeyEffect   = "effect"
)

// Entity types
const (
	TypePlayer  = "player"
	TypeEnemy   = "enemy"
	TypeNPC     = "npc"
	TypeQuest   = "quest"
	TypeDungeon = "dungeon"
	TypeMap     = "map"
	TypeWorld   = "world"
)

// Ref is a lightweight core.Entity naming a game object.
type Ref struct {
	ID   string
	Type string
}

// GetID returns the entity ID
func (r *Ref) GetID() string { return r.ID }

// GetType returns the entity type
func (r *Ref) GetType() string { return r.Type }

// Player references a player record.
func Player(playerID int) core.Entity {
	return &Ref{ID: strconv.Itoa(playerID), Type: TypePlayer}
}

// Enemy references an enemy instance.
func Enemy(instanceID string) core.Entity {
	return &Ref{ID: instanceID, Type: TypeEnemy}
}

// NPC references an NPC definition.
func NPC(npcID int) core.Entity {
	return &Ref{ID: strconv.Itoa(npcID), Type: TypeNPC}
}

// Quest references a quest definition.
func Quest(questID int) core.Entity {
	return &Ref{ID: strconv.Itoa(questID), Type: TypeQuest}
}

// Dungeon references a dungeon instance.
func Dungeon(instanceID string) core.Entity {
	return &Ref{ID: instanceID, Type: TypeDungeon}
}

// Map references a game map.
func Map(mapID int) core.Entity {
	return &Ref{ID: strconv.Itoa(mapID), Type: TypeMap}
}

// World references the world clock.
func World() core.Entity {
	return &Ref{ID: "world", Type: TypeWorld}
}

// PlayerID extracts the player ID from a player entity.
func PlayerID(e core.Entity) (int, bool) {
	if e == nil || e.GetType() != TypePlayer {
		return 0, false
	}
	id, err := strconv.Atoi(e.GetID())
	return id, err == nil
}

// Publish builds a game event carrying data in its context and publishes it.
// A nil bus is a no-op. Handler failures are logged, never returned: the
// action that produced the event has already been persisted.
func Publish(ctx context.Context, bus events.EventBus, eventType string, source, target core.Entity, data map[string]any) {
	if bus == nil {
		return
	}
	event := events.NewGameEvent(eventType, source, target)
	for k, v := range data {
		event.Context().Set(k, v)
	}
	if err := bus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "event handler failed", "event", eventType, "error", err)
	}
}

var _ core.Entity = (*Ref)(nil)
