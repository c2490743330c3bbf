package engine

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/roller"
)

// Config configures the engine
type Config struct {
	Roller dice.Roller
}

// Validate validates the configuration
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Roller == nil {
		vb.RequiredField("roller")
	}
	return vb.Build()
}

type engine struct {
	roller dice.Roller
}

// New creates an engine that draws randomness from cfg.Roller
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{roller: cfg.Roller}, nil
}

func (e *engine) CalculateDamage(_ context.Context, input *CalculateDamageInput) (*CalculateDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	multiplier := ParseMultiplier(input.Skill.EffectBonusText())
	base := BaseDamage(input.Attacker, input.Defender, multiplier)

	spread := VarianceSpread(base)
	variance, err := e.RollBetween(-spread, spread)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll damage variance")
	}
	dmg := base + variance
	if dmg < 0 {
		dmg = 0
	}

	crit, err := e.RollCrit(input.Attacker.Stats)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll crit")
	}
	if crit {
		dmg = ApplyCrit(dmg)
	}

	return &CalculateDamageOutput{
		Damage:     dmg,
		Base:       base,
		Multiplier: multiplier,
		Variance:   variance,
		Critical:   crit,
	}, nil
}

// RollCrit draws from [0, 100] and succeeds when the draw is at most CritChance.
func (e *engine) RollCrit(stats entities.Stats) (bool, error) {
	roll, err := e.RollBetween(0, 100)
	if err != nil {
		return false, err
	}
	return roll <= CritChance(stats), nil
}

func (e *engine) RollBetween(lo, hi int) (int, error) {
	return roller.Between(e.roller, lo, hi)
}
