// Package enemy owns the live enemy instances of a session: spawning,
// damage, loot and the per-tick AI state machine.
package enemy

//go:generate mockgen -destination=mock/mock_service.go -package=enemymock github.com/KirkDiggler/rpg-sim/internal/orchestrators/enemy Service

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/KirkDiggler/rpg-toolkit/tools/spatial"

	"github.com/KirkDiggler/rpg-sim/internal/assets"
	"github.com/KirkDiggler/rpg-sim/internal/engine"
	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/gameevents"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/player"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/keylock"
	"github.com/KirkDiggler/rpg-sim/internal/repositories/enemies"
)

// AI tuning
const (
	FleeHealthFraction = 0.3
	FleeChance         = 30
)

// Service defines the interface for enemy operations
type Service interface {
	Spawn(ctx context.Context, input *SpawnInput) (*SpawnOutput, error)
	Despawn(ctx context.Context, input *DespawnInput) (*DespawnOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// UpdateAI runs one state machine step. Removed instances return errors.NotFound
	// and nothing else happens.
	UpdateAI(ctx context.Context, input *UpdateAIInput) (*UpdateAIOutput, error)

	// TakeDamage removes the instance when its HP reaches zero
	TakeDamage(ctx context.Context, input *TakeDamageInput) (*TakeDamageOutput, error)
	DropLoot(ctx context.Context, input *DropLootInput) (*DropLootOutput, error)
	RollLootTable(ctx context.Context, input *RollLootTableInput) (*RollLootTableOutput, error)
	FindNearestPlayer(ctx context.Context, input *FindNearestPlayerInput) (*FindNearestPlayerOutput, error)
}

// Config holds the dependencies for the enemy orchestrator
type Config struct {
	EnemyRepo     enemies.Repository
	PlayerService player.Service
	Catalog       assets.Catalog
	Engine        engine.Engine
	IDGenerator   idgen.Generator
	EventBus      events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EnemyRepo == nil {
		vb.RequiredField("EnemyRepo")
	}
	if c.PlayerService == nil {
		vb.RequiredField("PlayerService")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	enemyRepo enemies.Repository
	players   player.Service
	catalog   assets.Catalog
	engine    engine.Engine
	idGen     idgen.Generator
	bus       events.EventBus
	locks     *keylock.Map[string]
}

// NewOrchestrator creates a new enemy orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		enemyRepo: cfg.EnemyRepo,
		players:   cfg.PlayerService,
		catalog:   cfg.Catalog,
		engine:    cfg.Engine,
		idGen:     cfg.IDGenerator,
		bus:       cfg.EventBus,
		locks:     keylock.New[string](),
	}, nil
}

func (o *orchestrator) Spawn(ctx context.Context, input *SpawnInput) (*SpawnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	tpl, err := o.catalog.Enemy(ctx, input.EnemyID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to spawn enemy %d", input.EnemyID)
	}

	e := entities.NewEnemy(tpl, o.idGen.Generate(), input.Location)
	if _, err := o.enemyRepo.Save(ctx, &enemies.SaveInput{Enemy: e}); err != nil {
		return nil, errors.Wrapf(err, "failed to register enemy %d", input.EnemyID)
	}

	slog.InfoContext(ctx, "enemy spawned",
		"enemy_id", e.EnemyID,
		"enemy_name", e.EnemyName,
		"instance_id", e.InstanceID,
		"hp", e.HP())
	gameevents.Publish(ctx, o.bus, gameevents.EnemySpawned, gameevents.Enemy(e.InstanceID), nil, nil)

	return &SpawnOutput{Enemy: e}, nil
}

func (o *orchestrator) Despawn(ctx context.Context, input *DespawnInput) (*DespawnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	unlock := o.locks.Lock(input.InstanceID)
	defer unlock()

	if _, err := o.enemyRepo.Delete(ctx, &enemies.DeleteInput{InstanceID: input.InstanceID}); err != nil {
		if errors.IsNotFound(err) {
			return &DespawnOutput{Success: false}, nil
		}
		return nil, err
	}

	gameevents.Publish(ctx, o.bus, gameevents.EnemyDespawned, gameevents.Enemy(input.InstanceID), nil, nil)
	return &DespawnOutput{Success: true}, nil
}

func (o *orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.enemyRepo.Get(ctx, &enemies.GetInput{InstanceID: input.InstanceID})
	if err != nil {
		return nil, err
	}
	return &GetOutput{Enemy: out.Enemy}, nil
}

func (o *orchestrator) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	out, err := o.enemyRepo.List(ctx, &enemies.ListInput{})
	if err != nil {
		return nil, err
	}
	return &ListOutput{Enemies: out.Enemies}, nil
}

func (o *orchestrator) UpdateAI(ctx context.Context, input *UpdateAIInput) (*UpdateAIOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	unlock := o.locks.Lock(input.InstanceID)
	defer unlock()

	getOut, err := o.enemyRepo.Get(ctx, &enemies.GetInput{InstanceID: input.InstanceID})
	if err != nil {
		return nil, err
	}
	e := getOut.Enemy
	prev := e.State

	nearest, err := o.FindNearestPlayer(ctx, &FindNearestPlayerInput{Position: e.Position})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find a target for %s", e.InstanceID)
	}
	if !nearest.Found {
		e.State = entities.AIStateIdle
		e.TargetPlayer = nil
		return o.finishStep(ctx, e, prev, &UpdateAIOutput{})
	}
	target := nearest.PlayerID
	e.TargetPlayer = &target

	if e.HP() <= 0 {
		return o.defeat(ctx, e, prev)
	}

	if e.HealthFraction() < FleeHealthFraction {
		roll, err := o.engine.RollBetween(1, 100)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll flee check")
		}
		if roll <= FleeChance {
			e.State = entities.AIStateFlee
			return o.finishStep(ctx, e, prev, &UpdateAIOutput{})
		}
	}

	e.State = entities.AIStateEngage
	dmgOut, err := o.attack(ctx, e, target)
	if err != nil {
		return nil, err
	}
	return o.finishStep(ctx, e, prev, dmgOut)
}

// attack applies one hit from e to the target player.
func (o *orchestrator) attack(ctx context.Context, e *entities.Enemy, playerID int) (*UpdateAIOutput, error) {
	getOut, err := o.players.Get(ctx, &player.GetInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load target player %d", playerID)
	}

	damage := 0
	result, err := o.engine.CalculateDamage(ctx, &engine.CalculateDamageInput{
		Attacker: engine.EnemyCombatant(e),
		Defender: engine.PlayerCombatant(getOut.Player),
	})
	if err != nil {
		damage = e.Stats.GetOr(entities.StatSTR, 1)
		slog.WarnContext(ctx, "enemy damage roll failed, using strength",
			"instance_id", e.InstanceID,
			"player_id", playerID,
			"damage", damage,
			"error", err)
	} else {
		damage = result.Damage
	}

	applied, err := o.players.ApplyDamage(ctx, &player.ApplyDamageInput{
		PlayerID: playerID,
		Amount:   damage,
		Source:   gameevents.Enemy(e.InstanceID),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to damage player %d", playerID)
	}

	slog.DebugContext(ctx, "enemy attacked",
		"instance_id", e.InstanceID,
		"player_id", playerID,
		"damage", damage,
		"player_hp", applied.HP)

	return &UpdateAIOutput{Damage: damage, PlayerHP: applied.HP}, nil
}

func (o *orchestrator) finishStep(ctx context.Context, e *entities.Enemy, prev entities.AIState, out *UpdateAIOutput) (*UpdateAIOutput, error) {
	if _, err := o.enemyRepo.Save(ctx, &enemies.SaveInput{Enemy: e}); err != nil {
		return nil, errors.Wrapf(err, "failed to save enemy %s", e.InstanceID)
	}
	if prev != e.State {
		gameevents.Publish(ctx, o.bus, gameevents.EnemyStateChanged, gameevents.Enemy(e.InstanceID), nil,
			map[string]any{gameevents.KeyState: string(e.State)})
	}

	out.Enemy = e
	out.State = e.State
	out.TargetPlayer = e.TargetPlayer
	return out, nil
}

// defeat marks e dead and removes it from the registry. Callers hold its lock.
func (o *orchestrator) defeat(ctx context.Context, e *entities.Enemy, prev entities.AIState) (*UpdateAIOutput, error) {
	e.State = entities.AIStateDead
	if _, err := o.enemyRepo.Delete(ctx, &enemies.DeleteInput{InstanceID: e.InstanceID}); err != nil {
		return nil, errors.Wrapf(err, "failed to remove enemy %s", e.InstanceID)
	}

	slog.InfoContext(ctx, "enemy defeated", "instance_id", e.InstanceID, "enemy_name", e.EnemyName)
	if prev != e.State {
		gameevents.Publish(ctx, o.bus, gameevents.EnemyStateChanged, gameevents.Enemy(e.InstanceID), nil,
			map[string]any{gameevents.KeyState: string(e.State)})
	}
	gameevents.Publish(ctx, o.bus, gameevents.EnemyDefeated, gameevents.Enemy(e.InstanceID), nil,
		map[string]any{gameevents.KeyItem: e.Loot()})

	return &UpdateAIOutput{State: e.State, TargetPlayer: e.TargetPlayer, Removed: true}, nil
}

func (o *orchestrator) TakeDamage(ctx context.Context, input *TakeDamageInput) (*TakeDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgumentf("damage cannot be negative, got %d", input.Amount)
	}

	unlock := o.locks.Lock(input.InstanceID)
	defer unlock()

	getOut, err := o.enemyRepo.Get(ctx, &enemies.GetInput{InstanceID: input.InstanceID})
	if err != nil {
		return nil, err
	}
	e := getOut.Enemy
	hp := e.TakeDamage(input.Amount)

	gameevents.Publish(ctx, o.bus, gameevents.EnemyDamaged, input.Source, gameevents.Enemy(e.InstanceID),
		map[string]any{gameevents.KeyDamage: input.Amount, gameevents.KeyHP: hp})

	if hp <= 0 {
		if _, err := o.defeat(ctx, e, e.State); err != nil {
			return nil, err
		}
		return &TakeDamageOutput{HP: 0, Defeated: true, Loot: e.Loot()}, nil
	}

	if _, err := o.enemyRepo.Save(ctx, &enemies.SaveInput{Enemy: e}); err != nil {
		return nil, errors.Wrapf(err, "failed to save enemy %s", e.InstanceID)
	}
	return &TakeDamageOutput{HP: hp}, nil
}

func (o *orchestrator) DropLoot(ctx context.Context, input *DropLootInput) (*DropLootOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.enemyRepo.Get(ctx, &enemies.GetInput{InstanceID: input.InstanceID})
	if err != nil {
		return nil, err
	}
	return &DropLootOutput{Items: out.Enemy.Loot()}, nil
}

func (o *orchestrator) RollLootTable(ctx context.Context, input *RollLootTableInput) (*RollLootTableOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	tpl, err := o.catalog.Enemy(ctx, input.EnemyID)
	if err != nil {
		return nil, err
	}

	out := &RollLootTableOutput{Items: tpl.Loot()}
	if tpl.DeathDrops != nil {
		out.Gold = tpl.DeathDrops.Gold
	}
	return out, nil
}

// FindNearestPlayer picks the closest living player on the searcher's map.
// Ties go to the lowest player ID. When nobody alive shares the map, the
// lowest-ID living player anywhere is returned.
func (o *orchestrator) FindNearestPlayer(ctx context.Context, input *FindNearestPlayerInput) (*FindNearestPlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	listOut, err := o.players.List(ctx, &player.ListInput{})
	if err != nil {
		return nil, err
	}

	from, mapID, anyMap := searchPoint(input.Position)
	best := &FindNearestPlayerOutput{}
	fallback := &FindNearestPlayerOutput{}
	for _, id := range listOut.PlayerIDs {
		getOut, err := o.players.Get(ctx, &player.GetInput{PlayerID: id})
		if err != nil {
			slog.WarnContext(ctx, "skipping unreadable player", "player_id", id, "error", err)
			continue
		}
		p := getOut.Player
		if !p.IsAlive() {
			continue
		}

		var to spatial.Position
		pMap := 0
		if p.Position != nil {
			to = spatial.Position{X: p.Position.X, Y: p.Position.Y}
			pMap = p.Position.MapID
		}
		d := distance(from, to)
		if !anyMap && pMap != mapID {
			if !fallback.Found || id < fallback.PlayerID {
				fallback = &FindNearestPlayerOutput{PlayerID: id, Found: true, Distance: d}
			}
			continue
		}

		if !best.Found || d < best.Distance || (d == best.Distance && id < best.PlayerID) {
			best = &FindNearestPlayerOutput{PlayerID: id, Found: true, Distance: d}
		}
	}

	if !best.Found {
		return fallback, nil
	}
	return best, nil
}

func searchPoint(pos *entities.EnemyPosition) (spatial.Position, int, bool) {
	if pos == nil {
		return spatial.Position{}, 0, true
	}
	if pos.Coords != nil {
		return spatial.Position{X: pos.Coords.X, Y: pos.Coords.Y}, pos.MapID, false
	}
	return spatial.Position{X: pos.X, Y: pos.Y}, pos.MapID, false
}

func distance(a, b spatial.Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
