// Package simulation drives the fixed-step game loop: one player attack,
// one AI step per spawned enemy and a timer decay per tick.
package simulation

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sim/internal/assets"
	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/gameevents"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/enemy"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/player"
)

// Defaults applied when the config leaves a field zero
const (
	DefaultMaxTicks = 200
	// SpawnOffsetX places enemies without a position to the player's right
	SpawnOffsetX = 50
)

// Service defines the interface for the simulation driver
type Service interface {
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)
}

// Config holds the dependencies for the simulation driver
type Config struct {
	PlayerService player.Service
	EnemyService  enemy.Service
	CombatService combat.Service
	Catalog       assets.Catalog
	EventBus      events.EventBus

	PlayerID  int
	MaxTicks  int
	TickDelay time.Duration
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
	if c.CombatService == nil {
		vb.RequiredField("CombatService")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	errors.ValidateMin("PlayerID", c.PlayerID, 0, vb)
	errors.ValidateMin("MaxTicks", c.MaxTicks, 0, vb)
	if c.TickDelay < 0 {
		vb.Field("TickDelay", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	players  player.Service
	enemies  enemy.Service
	combat   combat.Service
	catalog  assets.Catalog
	bus      events.EventBus
	playerID int
	maxTicks int
	delay    time.Duration
}

// NewOrchestrator creates a new simulation driver with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxTicks := cfg.MaxTicks
	if maxTicks == 0 {
		maxTicks = DefaultMaxTicks
	}

	return &orchestrator{
		players:  cfg.PlayerService,
		enemies:  cfg.EnemyService,
		combat:   cfg.CombatService,
		catalog:  cfg.Catalog,
		bus:      cfg.EventBus,
		playerID: cfg.PlayerID,
		maxTicks: maxTicks,
		delay:    cfg.TickDelay,
	}, nil
}

func (o *orchestrator) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	spawnOut, err := o.players.Spawn(ctx, &player.SpawnInput{PlayerID: o.playerID})
	if err != nil {
		return nil, errors.Wrap(err, "no player to spawn")
	}

	spawned, err := o.spawnEnemies(ctx, spawnOut.Player)
	if err != nil {
		return nil, err
	}

	out := &RunOutput{Spawned: spawned}
	for out.Ticks < o.maxTicks {
		tick := out.Ticks
		if _, err := o.players.Get(ctx, &player.GetInput{PlayerID: o.playerID}); err != nil {
			slog.WarnContext(ctx, "player unavailable, stopping",
				"tick", tick,
				"player_id", o.playerID,
				"error", err)
			break
		}

		o.attackFirstEnemy(ctx, tick, spawned)
		o.runAI(ctx, tick, spawned)

		if _, err := o.combat.TickPlayerTimers(ctx, &combat.TickPlayerTimersInput{
			PlayerID: o.playerID,
			DeltaMS:  o.delay.Milliseconds(),
		}); err != nil {
			slog.WarnContext(ctx, "timer decay failed",
				"tick", tick,
				"player_id", o.playerID,
				"error", err)
		}

		out.Ticks++
		hp := 0
		if getOut, err := o.players.Get(ctx, &player.GetInput{PlayerID: o.playerID}); err == nil {
			hp = getOut.Player.Stats.Get(entities.StatHP)
		}
		gameevents.Publish(ctx, o.bus, gameevents.SimulationTick, gameevents.Player(o.playerID), nil,
			map[string]any{gameevents.KeyTick: tick, gameevents.KeyHP: hp})

		if hp <= 0 {
			slog.InfoContext(ctx, "player has died", "tick", tick, "player_id", o.playerID)
			out.PlayerDied = true
			break
		}

		if err := sleep(ctx, o.delay); err != nil {
			return out, err
		}
	}

	slog.InfoContext(ctx, "simulation finished",
		"ticks", out.Ticks,
		"player_died", out.PlayerDied)
	return out, nil
}

// spawnEnemies creates one instance per enemy definition, placed at its
// explicit coordinates or beside the player.
func (o *orchestrator) spawnEnemies(ctx context.Context, p *entities.Player) ([]string, error) {
	templates, err := o.catalog.Enemies(ctx)
	if err != nil && !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to load enemy definitions")
	}

	var origin entities.Position
	if p.Position != nil {
		origin = *p.Position
	}

	spawned := make([]string, 0, len(templates))
	for i := range templates {
		loc := spawnLocation(templates[i].Position, origin)
		out, err := o.enemies.Spawn(ctx, &enemy.SpawnInput{EnemyID: templates[i].EnemyID, Location: loc})
		if err != nil {
			slog.WarnContext(ctx, "failed to spawn enemy",
				"enemy_id", templates[i].EnemyID,
				"error", err)
			continue
		}
		slog.InfoContext(ctx, "spawned enemy",
			"enemy_name", out.Enemy.EnemyName,
			"instance_id", out.Enemy.InstanceID,
			"x", loc.X,
			"y", loc.Y)
		spawned = append(spawned, out.Enemy.InstanceID)
	}
	return spawned, nil
}

func spawnLocation(pos *entities.EnemyPosition, origin entities.Position) *entities.EnemyPosition {
	mapID := origin.MapID
	var x, y float64
	if pos != nil {
		if pos.MapID != 0 {
			mapID = pos.MapID
		}
		x, y = pos.X, pos.Y
		if pos.Coords != nil {
			x, y = pos.Coords.X, pos.Coords.Y
		}
	}
	if x == 0 {
		x = origin.X + SpawnOffsetX
	}
	if y == 0 {
		y = origin.Y
	}
	return &entities.EnemyPosition{
		MapID:  mapID,
		X:      x,
		Y:      y,
		Coords: &entities.Coords{X: x, Y: y},
	}
}

// attackFirstEnemy makes one attack against the first spawned instance
// that is still alive.
func (o *orchestrator) attackFirstEnemy(ctx context.Context, tick int, spawned []string) {
	for _, id := range spawned {
		out, err := o.combat.AttackEnemy(ctx, &combat.AttackEnemyInput{PlayerID: o.playerID, InstanceID: id})
		if errors.IsNotFound(err) {
			continue
		}
		if err != nil {
			slog.WarnContext(ctx, "player attack failed",
				"tick", tick,
				"player_id", o.playerID,
				"instance_id", id,
				"error", err)
			return
		}
		slog.DebugContext(ctx, "player attacked",
			"tick", tick,
			"instance_id", id,
			"damage", out.Result.Damage,
			"enemy_hp", out.EnemyHP)
		return
	}
}

func (o *orchestrator) runAI(ctx context.Context, tick int, spawned []string) {
	for _, id := range spawned {
		out, err := o.enemies.UpdateAI(ctx, &enemy.UpdateAIInput{InstanceID: id})
		if errors.IsNotFound(err) {
			continue
		}
		if err != nil {
			slog.WarnContext(ctx, "enemy AI step failed",
				"tick", tick,
				"player_id", o.playerID,
				"instance_id", id,
				"error", err)
			continue
		}
		if out.Damage > 0 {
			slog.DebugContext(ctx, "enemy attacked",
				"tick", tick,
				"instance_id", id,
				"damage", out.Damage,
				"player_hp", out.PlayerHP)
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
