// Package dungeon generates dungeon instances from the dungeon definitions
// and keeps them in the session registry.
package dungeon

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sim/internal/assets"
	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/gameevents"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/roller"
	"github.com/KirkDiggler/rpg-sim/internal/repositories/dungeons"
)

// MaxSeed bounds generated seeds to [1, MaxSeed].
const MaxSeed = 1_000_000_000

// Room keys added by SpawnRooms
const (
	RoomKeySpawnedAt  = "spawnedAt"
	RoomKeyInstanceID = "roomInstanceID"
)

// Service defines the interface for dungeon operations
type Service interface {
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
	// Regenerate discards every instance of the dungeon and generates a new one
	Regenerate(ctx context.Context, input *RegenerateInput) (*RegenerateOutput, error)
	SpawnRooms(ctx context.Context, input *SpawnRoomsInput) (*SpawnRoomsOutput, error)
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	RandomizeRoomOrder(ctx context.Context, input *RandomizeRoomOrderInput) (*RandomizeRoomOrderOutput, error)
	ValidateLayout(ctx context.Context, input *ValidateLayoutInput) (*ValidateLayoutOutput, error)
	GenerateSeed(ctx context.Context, input *GenerateSeedInput) (*GenerateSeedOutput, error)
}

// Config holds the dependencies for the dungeon orchestrator
type Config struct {
	DungeonRepo dungeons.Repository
	Catalog     assets.Catalog
	// Roller draws seeds and unseeded shuffles
	Roller      dice.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock
	EventBus    events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DungeonRepo == nil {
		vb.RequiredField("DungeonRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	repo    dungeons.Repository
	catalog assets.Catalog
	roller  dice.Roller
	idGen   idgen.Generator
	clock   clock.Clock
	bus     events.EventBus
}

// NewOrchestrator creates a new dungeon orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:    cfg.DungeonRepo,
		catalog: cfg.Catalog,
		roller:  cfg.Roller,
		idGen:   cfg.IDGenerator,
		clock:   cfg.Clock,
		bus:     cfg.EventBus,
	}, nil
}

func (o *orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	def, err := o.catalog.Dungeon(ctx, input.DungeonID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to generate dungeon %d", input.DungeonID)
	}

	seed := input.Seed
	if seed == 0 {
		if seed, err = o.drawSeed(); err != nil {
			return nil, err
		}
	}

	layout := def.Clone()
	layout.Seed = seed
	layout.InstanceID = o.idGen.Generate()
	if layout.Rooms, err = shuffle(roller.NewSeeded(seed), layout.Rooms); err != nil {
		return nil, errors.Wrap(err, "failed to shuffle rooms")
	}

	if _, err := o.repo.Save(ctx, &dungeons.SaveInput{Dungeon: layout}); err != nil {
		return nil, errors.Wrapf(err, "failed to register dungeon %s", layout.InstanceID)
	}

	slog.InfoContext(ctx, "dungeon generated",
		"dungeon_id", layout.DungeonID,
		"instance_id", layout.InstanceID,
		"seed", seed,
		"rooms", len(layout.Rooms))
	gameevents.Publish(ctx, o.bus, gameevents.DungeonGenerated, gameevents.Dungeon(layout.InstanceID), nil, nil)

	return &GenerateOutput{Dungeon: layout}, nil
}

func (o *orchestrator) Regenerate(ctx context.Context, input *RegenerateInput) (*RegenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	listOut, err := o.repo.List(ctx, &dungeons.ListInput{})
	if err != nil {
		return nil, err
	}

	removed := 0
	for _, d := range listOut.Dungeons {
		if d.DungeonID != input.DungeonID {
			continue
		}
		if _, err := o.repo.Delete(ctx, &dungeons.DeleteInput{InstanceID: d.InstanceID}); err != nil && !errors.IsNotFound(err) {
			return nil, err
		}
		removed++
	}

	genOut, err := o.Generate(ctx, &GenerateInput{DungeonID: input.DungeonID})
	if err != nil {
		return nil, err
	}
	return &RegenerateOutput{Dungeon: genOut.Dungeon, Removed: removed}, nil
}

func (o *orchestrator) SpawnRooms(ctx context.Context, input *SpawnRoomsInput) (*SpawnRoomsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	getOut, err := o.repo.Get(ctx, &dungeons.GetInput{InstanceID: input.InstanceID})
	if err != nil {
		return nil, err
	}

	now := clock.UnixMilli(o.clock)
	rooms := make([]entities.Room, len(getOut.Dungeon.Rooms))
	for i, r := range getOut.Dungeon.Rooms {
		room := r.Clone()
		if room == nil {
			room = entities.Room{}
		}
		room[RoomKeySpawnedAt] = now
		room[RoomKeyInstanceID] = o.idGen.Generate()
		rooms[i] = room
	}

	return &SpawnRoomsOutput{Rooms: rooms}, nil
}

func (o *orchestrator) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	getOut, err := o.repo.Get(ctx, &dungeons.GetInput{InstanceID: input.InstanceID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &ResetOutput{Success: false}, nil
		}
		return nil, err
	}

	d := getOut.Dungeon
	if d.Rooms, err = shuffle(o.roller, d.Rooms); err != nil {
		return nil, errors.Wrap(err, "failed to shuffle rooms")
	}
	if _, err := o.repo.Save(ctx, &dungeons.SaveInput{Dungeon: d}); err != nil {
		return nil, err
	}

	gameevents.Publish(ctx, o.bus, gameevents.DungeonReset, gameevents.Dungeon(d.InstanceID), nil, nil)
	return &ResetOutput{Success: true, Dungeon: d}, nil
}

func (o *orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.repo.Get(ctx, &dungeons.GetInput{InstanceID: input.InstanceID})
	if err != nil {
		return nil, err
	}
	return &GetOutput{Dungeon: out.Dungeon}, nil
}

func (o *orchestrator) RandomizeRoomOrder(_ context.Context, input *RandomizeRoomOrderInput) (*RandomizeRoomOrderOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var r dice.Roller = o.roller
	if input.Seed != 0 {
		r = roller.NewSeeded(input.Seed)
	}

	rooms, err := shuffle(r, input.Rooms)
	if err != nil {
		return nil, errors.Wrap(err, "failed to shuffle rooms")
	}
	return &RandomizeRoomOrderOutput{Rooms: rooms}, nil
}

func (o *orchestrator) ValidateLayout(_ context.Context, input *ValidateLayoutInput) (*ValidateLayoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return &ValidateLayoutOutput{Valid: input.Dungeon != nil && len(input.Dungeon.Rooms) > 0}, nil
}

func (o *orchestrator) GenerateSeed(_ context.Context, _ *GenerateSeedInput) (*GenerateSeedOutput, error) {
	seed, err := o.drawSeed()
	if err != nil {
		return nil, err
	}
	return &GenerateSeedOutput{Seed: seed}, nil
}

func (o *orchestrator) drawSeed() (int64, error) {
	face, err := o.roller.Roll(MaxSeed)
	if err != nil {
		return 0, errors.Wrap(err, "failed to draw dungeon seed")
	}
	return int64(face), nil
}

// shuffle returns a Fisher-Yates permutation of a copy of rooms.
func shuffle(r dice.Roller, rooms []entities.Room) ([]entities.Room, error) {
	out := make([]entities.Room, len(rooms))
	copy(out, rooms)
	for i := len(out) - 1; i > 0; i-- {
		j, err := roller.Between(r, 0, i)
		if err != nil {
			return nil, err
		}
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
