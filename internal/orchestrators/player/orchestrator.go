// Package player implements the player orchestrator: creation, loading and
// every mutation of a player record.
//
// All writes go through Mutate, which holds a per-player lock for the whole
// load-mutate-save cycle. Compound operations elsewhere build a single
// Mutation rather than calling several writers in a row.
package player

//go:generate mockgen -destination=mock/mock_service.go -package=playermock github.com/KirkDiggler/rpg-sim/internal/orchestrators/player Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sim/internal/assets"
	"github.com/KirkDiggler/rpg-sim/internal/engine"
	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/gameevents"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/keylock"
	"github.com/KirkDiggler/rpg-sim/internal/repositories/players"
)

// DefaultStats are given to newly created players.
var DefaultStats = entities.Stats{
	entities.StatHP:     100,
	entities.StatSTA:    10,
	entities.StatSTR:    1,
	entities.StatDEX:    1,
	entities.StatAGI:    1,
	entities.StatVIT:    1,
	entities.StatINT:    1,
	entities.StatMIND:   1,
	entities.StatLUK:    1,
	entities.StatATKPOW: 0,
	entities.StatDEF:    0,
	entities.StatCRT:    0,
	entities.StatEVA:    0,
	entities.StatLVL:    1,
	entities.StatEXP:    0,
}

// Service defines the interface for player operations
type Service interface {
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
	Spawn(ctx context.Context, input *SpawnInput) (*SpawnOutput, error)

	// Mutate is the single write path for player records
	Mutate(ctx context.Context, input *MutateInput) (*MutateOutput, error)

	ApplyExperience(ctx context.Context, input *ApplyExperienceInput) (*ApplyExperienceOutput, error)
	LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error)
	UpdateStats(ctx context.Context, input *UpdateStatsInput) (*UpdateStatsOutput, error)
	UpdatePosition(ctx context.Context, input *UpdatePositionInput) (*UpdatePositionOutput, error)
	Respawn(ctx context.Context, input *RespawnInput) (*RespawnOutput, error)
	IsAlive(ctx context.Context, input *IsAliveInput) (*IsAliveOutput, error)
	ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error)
}

// Config holds the dependencies for the player orchestrator
type Config struct {
	PlayerRepo players.Repository
	Catalog    assets.Catalog
	// EventBus is optional
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo players.Repository
	catalog    assets.Catalog
	bus        events.EventBus

	locks    *keylock.Map[int]
	createMu sync.Mutex
}

// NewOrchestrator creates a new player orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		playerRepo: cfg.PlayerRepo,
		catalog:    cfg.Catalog,
		bus:        cfg.EventBus,
		locks:      keylock.New[int](),
	}, nil
}

func (o *orchestrator) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.createMu.Lock()
	defer o.createMu.Unlock()

	listOut, err := o.playerRepo.List(ctx, players.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list players")
	}

	playerID := 0
	for _, id := range listOut.PlayerIDs {
		if input.PlayerID != nil && id == *input.PlayerID {
			return nil, errors.AlreadyExistsf("player %d already exists", id)
		}
		if id >= playerID {
			playerID = id + 1
		}
	}
	if input.PlayerID != nil {
		playerID = *input.PlayerID
	}

	p := &entities.Player{
		PlayerID:    playerID,
		DisplayName: input.DisplayName,
		Username:    input.Username,
		Stats:       DefaultStats.Merge(nil),
		Position:    &entities.Position{MapID: 1},
	}
	for k, v := range input.Stats {
		p.Stats[k] = v
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if _, err := o.playerRepo.Save(ctx, players.SaveInput{Player: p}); err != nil {
		return nil, errors.Wrapf(err, "failed to create player %d", playerID)
	}

	slog.InfoContext(ctx, "player created", "player_id", playerID, "display_name", p.DisplayName)
	gameevents.Publish(ctx, o.bus, gameevents.PlayerCreated, gameevents.Player(playerID), nil, nil)

	return &CreateOutput{Player: p}, nil
}

func (o *orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.playerRepo.Get(ctx, players.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	return &GetOutput{Player: out.Player}, nil
}

func (o *orchestrator) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if err := input.Player.Validate(); err != nil {
		return nil, err
	}

	unlock := o.locks.Lock(input.Player.PlayerID)
	defer unlock()

	if _, err := o.playerRepo.Save(ctx, players.SaveInput{Player: input.Player}); err != nil {
		return nil, err
	}
	return &SaveOutput{Player: input.Player}, nil
}

func (o *orchestrator) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	out, err := o.playerRepo.List(ctx, players.ListInput{})
	if err != nil {
		return nil, err
	}
	return &ListOutput{PlayerIDs: out.PlayerIDs}, nil
}

func (o *orchestrator) Spawn(ctx context.Context, input *SpawnInput) (*SpawnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.Mutate(ctx, &MutateInput{
		PlayerID: input.PlayerID,
		Mutation: func(p *entities.Player) error {
			if p.Position == nil {
				p.Position = &entities.Position{}
			}
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to spawn player %d", input.PlayerID)
	}

	slog.InfoContext(ctx, "player spawned",
		"player_id", input.PlayerID,
		"display_name", out.Player.DisplayName,
		"map_id", out.Player.Position.MapID)

	return &SpawnOutput{Player: out.Player}, nil
}

func (o *orchestrator) Mutate(ctx context.Context, input *MutateInput) (*MutateOutput, error) {
	if input == nil || input.Mutation == nil {
		return nil, errors.InvalidArgument("mutation is required")
	}

	unlock := o.locks.Lock(input.PlayerID)
	defer unlock()

	getOut, err := o.playerRepo.Get(ctx, players.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}
	p := getOut.Player
	p.Normalize()

	if err := input.Mutation(p); err != nil {
		return nil, err
	}

	if _, err := o.playerRepo.Save(ctx, players.SaveInput{Player: p}); err != nil {
		return nil, err
	}

	return &MutateOutput{Player: p}, nil
}

func (o *orchestrator) ApplyExperience(ctx context.Context, input *ApplyExperienceInput) (*ApplyExperienceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var gained int
	out, err := o.Mutate(ctx, &MutateInput{
		PlayerID: input.PlayerID,
		Mutation: func(p *entities.Player) error {
			gained = p.ApplyExperience(input.Amount)
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to apply experience to player %d", input.PlayerID)
	}

	if gained > 0 {
		level := out.Player.Level()
		slog.InfoContext(ctx, "player leveled up", "player_id", input.PlayerID, "level", level, "levels_gained", gained)
		gameevents.Publish(ctx, o.bus, gameevents.PlayerLevelUp, gameevents.Player(input.PlayerID), nil,
			map[string]any{gameevents.KeyLevel: level})
	}

	return &ApplyExperienceOutput{Player: out.Player, LevelsGained: gained, LeveledUp: gained > 0}, nil
}

func (o *orchestrator) LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.Mutate(ctx, &MutateInput{
		PlayerID: input.PlayerID,
		Mutation: func(p *entities.Player) error {
			p.LevelUp()
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to level up player %d", input.PlayerID)
	}
	return &LevelUpOutput{Player: out.Player}, nil
}

func (o *orchestrator) UpdateStats(ctx context.Context, input *UpdateStatsInput) (*UpdateStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	items, err := o.catalog.Items(ctx)
	if err != nil && !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to load item catalog")
	}

	out, err := o.Mutate(ctx, &MutateInput{
		PlayerID: input.PlayerID,
		Mutation: func(p *entities.Player) error {
			p.DerivedStats = engine.CalculateDerivedStats(p.Stats, p.Inventory.Equipment, items)
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update stats for player %d", input.PlayerID)
	}
	return &UpdateStatsOutput{Player: out.Player}, nil
}

func (o *orchestrator) UpdatePosition(ctx context.Context, input *UpdatePositionInput) (*UpdatePositionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.Mutate(ctx, &MutateInput{
		PlayerID: input.PlayerID,
		Mutation: func(p *entities.Player) error {
			if p.Position == nil {
				p.Position = &entities.Position{}
			}
			u := input.Position
			if u.MapID != nil {
				p.Position.MapID = *u.MapID
			}
			if u.X != nil {
				p.Position.X = *u.X
			}
			if u.Y != nil {
				p.Position.Y = *u.Y
			}
			if u.Z != nil {
				p.Position.Z = *u.Z
			}
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to move player %d", input.PlayerID)
	}

	gameevents.Publish(ctx, o.bus, gameevents.PlayerMoved, gameevents.Player(input.PlayerID),
		gameevents.Map(out.Player.Position.MapID), nil)

	return &UpdatePositionOutput{Player: out.Player}, nil
}

func (o *orchestrator) Respawn(ctx context.Context, input *RespawnInput) (*RespawnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.Mutate(ctx, &MutateInput{
		PlayerID: input.PlayerID,
		Mutation: func(p *entities.Player) error {
			if p.HP() < 1 {
				p.Stats[entities.StatHP] = 1
			}
			if p.Position == nil {
				p.Position = &entities.Position{MapID: 0}
			}
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to respawn player %d", input.PlayerID)
	}

	slog.InfoContext(ctx, "player respawned", "player_id", input.PlayerID, "hp", out.Player.HP())
	gameevents.Publish(ctx, o.bus, gameevents.PlayerRespawned, gameevents.Player(input.PlayerID), nil,
		map[string]any{gameevents.KeyHP: out.Player.HP()})

	return &RespawnOutput{Player: out.Player}, nil
}

func (o *orchestrator) IsAlive(ctx context.Context, input *IsAliveInput) (*IsAliveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.playerRepo.Get(ctx, players.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &IsAliveOutput{Alive: false}, nil
		}
		return nil, err
	}
	return &IsAliveOutput{Alive: out.Player.IsAlive()}, nil
}

func (o *orchestrator) ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgumentf("damage cannot be negative, got %d", input.Amount)
	}

	var hp int
	out, err := o.Mutate(ctx, &MutateInput{
		PlayerID: input.PlayerID,
		Mutation: func(p *entities.Player) error {
			hp = p.TakeDamage(input.Amount)
			return nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to damage player %d", input.PlayerID)
	}

	gameevents.Publish(ctx, o.bus, gameevents.PlayerDamaged, input.Source, gameevents.Player(input.PlayerID),
		map[string]any{gameevents.KeyDamage: input.Amount, gameevents.KeyHP: hp})

	return &ApplyDamageOutput{Player: out.Player, HP: hp}, nil
}
