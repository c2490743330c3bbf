// Package engine holds the single authoritative set of combat and
// progression formulas. Player skills, PvP, player-vs-enemy attacks and
// enemy AI all resolve damage through Engine.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-sim/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/rpg-sim/internal/entities"
)

// Engine provides the randomised game rules
type Engine interface {
	// CalculateDamage resolves one hit of attacker against defender
	CalculateDamage(ctx context.Context, input *CalculateDamageInput) (*CalculateDamageOutput, error)

	// RollCrit reports whether a critical hit lands for the given stats
	RollCrit(stats entities.Stats) (bool, error)

	// RollBetween returns a uniform integer in [lo, hi]
	RollBetween(lo, hi int) (int, error)
}

// Combatant is a stat snapshot of one side of an attack.
type Combatant struct {
	Stats        entities.Stats
	DerivedStats entities.Stats
}

// PlayerCombatant snapshots a player.
func PlayerCombatant(p *entities.Player) Combatant {
	if p == nil {
		return Combatant{}
	}
	return Combatant{Stats: p.Stats, DerivedStats: p.DerivedStats}
}

// EnemyCombatant snapshots an enemy instance.
func EnemyCombatant(e *entities.Enemy) Combatant {
	if e == nil {
		return Combatant{}
	}
	return Combatant{Stats: e.Stats}
}

// AttackPower is ATKPOW from derived stats when they have been computed,
// otherwise from base stats.
func (c Combatant) AttackPower() int {
	if c.DerivedStats != nil {
		return c.DerivedStats.Get(entities.StatATKPOW)
	}
	return c.Stats.Get(entities.StatATKPOW)
}

// CalculateDamageInput defines the request for a damage calculation
type CalculateDamageInput struct {
	Attacker Combatant
	Defender Combatant
	// Skill is optional; without one the multiplier is 1
	Skill *entities.Skill
}

// CalculateDamageOutput breaks down a damage calculation
type CalculateDamageOutput struct {
	Damage     int
	Base       int
	Multiplier float64
	Variance   int
	Critical   bool
}
