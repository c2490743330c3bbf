package enemy

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-sim/internal/entities"
)

// SpawnInput defines the request for spawning an enemy instance
type SpawnInput struct {
	EnemyID int
	// Location overrides the template position field by field
	Location *entities.EnemyPosition
}

// SpawnOutput defines the response for spawning an enemy instance
type SpawnOutput struct {
	Enemy *entities.Enemy
}

// DespawnInput defines the request for removing an enemy instance
type DespawnInput struct {
	InstanceID string
}

// DespawnOutput defines the response for removing an enemy instance
type DespawnOutput struct {
	Success bool
}

// GetInput defines the request for loading an enemy instance
type GetInput struct {
	InstanceID string
}

// GetOutput defines the response for loading an enemy instance
type GetOutput struct {
	Enemy *entities.Enemy
}

// ListInput defines the request for listing live enemy instances
type ListInput struct{}

// ListOutput defines the response for listing live enemy instances
type ListOutput struct {
	Enemies []*entities.Enemy
}

// UpdateAIInput defines the request for one AI step of an instance
type UpdateAIInput struct {
	InstanceID string
}

// UpdateAIOutput defines the response for one AI step
type UpdateAIOutput struct {
	// Enemy is the instance after the step, nil once removed
	Enemy        *entities.Enemy
	State        entities.AIState
	TargetPlayer *int
	// Damage dealt to the target this step
	Damage   int
	PlayerHP int
	Removed  bool
}

// TakeDamageInput defines the request for damaging an instance
type TakeDamageInput struct {
	InstanceID string
	Amount     int
	// Source is the attacker, carried on the published event
	Source core.Entity
}

// TakeDamageOutput defines the response for damaging an instance
type TakeDamageOutput struct {
	HP       int
	Defeated bool
	// Loot holds the death drops when Defeated
	Loot []string
}

// DropLootInput defines the request for an instance's death drops
type DropLootInput struct {
	InstanceID string
}

// DropLootOutput defines the response for an instance's death drops
type DropLootOutput struct {
	Items []string
}

// RollLootTableInput defines the request for a template's drop table
type RollLootTableInput struct {
	EnemyID int
}

// RollLootTableOutput defines the response for a template's drop table
type RollLootTableOutput struct {
	Items []string
	Gold  int
}

// FindNearestPlayerInput defines the request for target acquisition
type FindNearestPlayerInput struct {
	// Position of the searching enemy; nil matches players on any map
	Position *entities.EnemyPosition
}

// FindNearestPlayerOutput defines the response for target acquisition
type FindNearestPlayerOutput struct {
	PlayerID int
	Found    bool
	Distance float64
}
