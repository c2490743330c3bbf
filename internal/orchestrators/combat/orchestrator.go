// Package combat resolves skills, attacks and the timer state stored on
// player records. Damage always comes from the engine.
package combat

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sim/internal/assets"
	"github.com/KirkDiggler/rpg-sim/internal/engine"
	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/gameevents"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/enemy"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/player"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/clock"
)

// Service defines the interface for combat operations
type Service interface {
	// UseSkill returns errors.FailedPrecondition while the skill is cooling
	// down and errors.ResourceExhausted when stamina is short
	UseSkill(ctx context.Context, input *UseSkillInput) (*UseSkillOutput, error)
	ResolveCombat(ctx context.Context, input *ResolveCombatInput) (*ResolveCombatOutput, error)
	AttackEnemy(ctx context.Context, input *AttackEnemyInput) (*AttackEnemyOutput, error)
	ApplyStatusEffect(ctx context.Context, input *ApplyStatusEffectInput) (*ApplyStatusEffectOutput, error)
	TickPlayerTimers(ctx context.Context, input *TickPlayerTimersInput) (*TickPlayerTimersOutput, error)
	SkillData(ctx context.Context, input *SkillDataInput) (*SkillDataOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	PlayerService player.Service
	EnemyService  enemy.Service
	Catalog       assets.Catalog
	Engine        engine.Engine
	Clock         clock.Clock
	EventBus      events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerService == nil {
		vb.RequiredField("PlayerService")
	}
	if c.EnemyService == nil {
		vb.RequiredField("EnemyService")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	players player.Service
	enemies enemy.Service
	catalog assets.Catalog
	engine  engine.Engine
	clock   clock.Clock
	bus     events.EventBus
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		players: cfg.PlayerService,
		enemies: cfg.EnemyService,
		catalog: cfg.Catalog,
		engine:  cfg.Engine,
		clock:   cfg.Clock,
		bus:     cfg.EventBus,
	}, nil
}

func (o *orchestrator) UseSkill(ctx context.Context, input *UseSkillInput) (*UseSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	skill, err := o.catalog.Skill(ctx, input.Skill)
	if err != nil {
		return nil, err
	}
	name := skill.SkillName
	if name == "" {
		name = input.Skill.String()
	}

	// a missing target still resolves, against an empty defender
	defender := engine.Combatant{}
	hasTarget := false
	if input.TargetID != nil {
		targetOut, err := o.players.Get(ctx, &player.GetInput{PlayerID: *input.TargetID})
		switch {
		case err == nil:
			defender = engine.PlayerCombatant(targetOut.Player)
			hasTarget = true
		case errors.IsNotFound(err):
			slog.DebugContext(ctx, "skill target missing", "player_id", input.PlayerID, "target_id", *input.TargetID)
		default:
			return nil, errors.Wrapf(err, "failed to load target %d", *input.TargetID)
		}
	}

	now := clock.UnixMilli(o.clock)
	var (
		result *engine.CalculateDamageOutput
		until  int64
	)
	casterOut, err := o.players.Mutate(ctx, &player.MutateInput{
		PlayerID: input.PlayerID,
		Mutation: func(p *entities.Player) error {
			if p.OnCooldown(name, now) {
				return errors.FailedPreconditionf("%s is on cooldown for %dms", name, p.Cooldowns[name]-now).
					WithMeta("skill", name)
			}
			if skill.IsActive() {
				cost := skill.Cost()
				if have := p.Stats.Get(entities.StatSTA); have < cost {
					return errors.ResourceExhaustedf("%s needs %d stamina, have %d", name, cost, have).
						WithMeta("skill", name)
				}
			}

			var err error
			result, err = o.engine.CalculateDamage(ctx, &engine.CalculateDamageInput{
				Attacker: engine.PlayerCombatant(p),
				Defender: defender,
				Skill:    skill,
			})
			if err != nil {
				return err
			}

			if skill.IsActive() {
				p.Stats.Add(entities.StatSTA, -skill.Cost())
			}
			until = now + engine.CooldownMillis(p.Stats)
			p.Cooldowns[name] = until
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "player %d failed to use %s", input.PlayerID, name)
	}

	out := &UseSkillOutput{
		Skill:         skill,
		Result:        result,
		CooldownUntil: until,
		Caster:        casterOut.Player,
	}

	if hasTarget {
		dmgOut, err := o.players.ApplyDamage(ctx, &player.ApplyDamageInput{
			PlayerID: *input.TargetID,
			Amount:   result.Damage,
			Source:   gameevents.Player(input.PlayerID),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to apply %s to player %d", name, *input.TargetID)
		}
		out.TargetHP = &dmgOut.HP
	}

	slog.InfoContext(ctx, "skill used",
		"player_id", input.PlayerID,
		"skill", name,
		"damage", result.Damage,
		"critical", result.Critical)

	target := gameevents.Player(input.PlayerID)
	if input.TargetID != nil {
		target = gameevents.Player(*input.TargetID)
	}
	gameevents.Publish(ctx, o.bus, gameevents.SkillCast, gameevents.Player(input.PlayerID), target,
		map[string]any{
			gameevents.KeySkill:    name,
			gameevents.KeyDamage:   result.Damage,
			gameevents.KeyCritical: result.Critical,
		})

	return out, nil
}

func (o *orchestrator) ResolveCombat(ctx context.Context, input *ResolveCombatInput) (*ResolveCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	attacker, err := o.players.Get(ctx, &player.GetInput{PlayerID: input.AttackerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load attacker %d", input.AttackerID)
	}
	defender, err := o.players.Get(ctx, &player.GetInput{PlayerID: input.DefenderID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load defender %d", input.DefenderID)
	}

	result, err := o.engine.CalculateDamage(ctx, &engine.CalculateDamageInput{
		Attacker: engine.PlayerCombatant(attacker.Player),
		Defender: engine.PlayerCombatant(defender.Player),
	})
	if err != nil {
		return nil, err
	}

	dmgOut, err := o.players.ApplyDamage(ctx, &player.ApplyDamageInput{
		PlayerID: input.DefenderID,
		Amount:   result.Damage,
		Source:   gameevents.Player(input.AttackerID),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to damage defender %d", input.DefenderID)
	}

	return &ResolveCombatOutput{Result: result, DefenderHP: dmgOut.HP}, nil
}

func (o *orchestrator) AttackEnemy(ctx context.Context, input *AttackEnemyInput) (*AttackEnemyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	attacker, err := o.players.Get(ctx, &player.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load attacker %d", input.PlayerID)
	}
	target, err := o.enemies.Get(ctx, &enemy.GetInput{InstanceID: input.InstanceID})
	if err != nil {
		return nil, err
	}

	result, err := o.engine.CalculateDamage(ctx, &engine.CalculateDamageInput{
		Attacker: engine.PlayerCombatant(attacker.Player),
		Defender: engine.EnemyCombatant(target.Enemy),
		Skill:    input.Skill,
	})
	if err != nil {
		return nil, err
	}

	dmgOut, err := o.enemies.TakeDamage(ctx, &enemy.TakeDamageInput{
		InstanceID: input.InstanceID,
		Amount:     result.Damage,
		Source:     gameevents.Player(input.PlayerID),
	})
	if err != nil {
		return nil, err
	}

	return &AttackEnemyOutput{
		Result:   result,
		EnemyHP:  dmgOut.HP,
		Defeated: dmgOut.Defeated,
		Loot:     dmgOut.Loot,
	}, nil
}

func (o *orchestrator) ApplyStatusEffect(ctx context.Context, input *ApplyStatusEffectInput) (*ApplyStatusEffectOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("effect name is required")
	}

	effect := entities.StatusEffect{
		Name:       input.Name,
		DurationMS: input.DurationMS,
		AppliedAt:  clock.UnixMilli(o.clock),
		Data:       input.Data,
	}
	out, err := o.players.Mutate(ctx, &player.MutateInput{
		PlayerID: input.PlayerID,
		Mutation: func(p *entities.Player) error {
			p.StatusEffects = append(p.StatusEffects, effect)
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to apply %s to player %d", input.Name, input.PlayerID)
	}

	gameevents.Publish(ctx, o.bus, gameevents.StatusEffectApplied, gameevents.Player(input.PlayerID), nil,
		map[string]any{gameevents.KeyEffect: input.Name})

	return &ApplyStatusEffectOutput{Player: out.Player, Effect: effect}, nil
}

func (o *orchestrator) TickPlayerTimers(ctx context.Context, input *TickPlayerTimersInput) (*TickPlayerTimersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	now := clock.UnixMilli(o.clock)
	var expired []entities.StatusEffect
	out, err := o.players.Mutate(ctx, &player.MutateInput{
		PlayerID: input.PlayerID,
		Mutation: func(p *entities.Player) error {
			expired = p.ExpireStatusEffects(now)
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to tick timers for player %d", input.PlayerID)
	}

	for _, e := range expired {
		slog.DebugContext(ctx, "status effect expired", "player_id", input.PlayerID, "effect", e.Name, "delta_ms", input.DeltaMS)
		gameevents.Publish(ctx, o.bus, gameevents.StatusEffectExpired, gameevents.Player(input.PlayerID), nil,
			map[string]any{gameevents.KeyEffect: e.Name})
	}

	return &TickPlayerTimersOutput{Expired: expired, Player: out.Player}, nil
}

func (o *orchestrator) SkillData(ctx context.Context, input *SkillDataInput) (*SkillDataOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	skill, err := o.catalog.Skill(ctx, input.Skill)
	if err != nil {
		return nil, err
	}
	return &SkillDataOutput{Skill: skill}, nil
}
