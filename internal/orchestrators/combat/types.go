package combat

import (
	"github.com/KirkDiggler/rpg-sim/internal/assets"
	"github.com/KirkDiggler/rpg-sim/internal/engine"
	"github.com/KirkDiggler/rpg-sim/internal/entities"
)

// UseSkillInput defines the request for casting a skill
type UseSkillInput struct {
	PlayerID int
	Skill    assets.Ref
	// TargetID is the player hit by the skill; nil casts without a target
	TargetID *int
}

// UseSkillOutput defines the response for casting a skill
type UseSkillOutput struct {
	Skill  *entities.Skill
	Result *engine.CalculateDamageOutput
	// CooldownUntil is the unix ms expiry stamped on the caster
	CooldownUntil int64
	Caster        *entities.Player
	// TargetHP is set when a target took the damage
	TargetHP *int
}

// ResolveCombatInput defines the request for one player-versus-player exchange
type ResolveCombatInput struct {
	AttackerID int
	DefenderID int
}

// ResolveCombatOutput defines the response for a player-versus-player exchange
type ResolveCombatOutput struct {
	Result     *engine.CalculateDamageOutput
	DefenderHP int
}

// AttackEnemyInput defines the request for a player attacking an enemy instance
type AttackEnemyInput struct {
	PlayerID   int
	InstanceID string
	// Skill is optional and only contributes its damage multiplier
	Skill *entities.Skill
}

// AttackEnemyOutput defines the response for a player attacking an enemy instance
type AttackEnemyOutput struct {
	Result   *engine.CalculateDamageOutput
	EnemyHP  int
	Defeated bool
	Loot     []string
}

// ApplyStatusEffectInput defines the request for applying a status effect
type ApplyStatusEffectInput struct {
	PlayerID int
	Name     string
	// DurationMS defaults to entities.DefaultEffectMS
	DurationMS int64
	Data       map[string]any
}

// ApplyStatusEffectOutput defines the response for applying a status effect
type ApplyStatusEffectOutput struct {
	Player *entities.Player
	Effect entities.StatusEffect
}

// TickPlayerTimersInput defines the request for expiring a player's timers
type TickPlayerTimersInput struct {
	PlayerID int
	// DeltaMS is the tick length. Expiry is measured against the clock, so
	// it is only logged.
	DeltaMS int64
}

// TickPlayerTimersOutput defines the response for expiring a player's timers
type TickPlayerTimersOutput struct {
	Expired []entities.StatusEffect
	Player  *entities.Player
}

// SkillDataInput defines the request for a skill definition
type SkillDataInput struct {
	Skill assets.Ref
}

// SkillDataOutput defines the response for a skill definition
type SkillDataOutput struct {
	Skill *entities.Skill
}
