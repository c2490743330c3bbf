// Package world keeps the loaded-map cache and the world clock.
package world

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sim/internal/assets"
	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/gameevents"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/player"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/clock"
)

// Service defines the interface for world state operations
type Service interface {
	LoadMap(ctx context.Context, input *LoadMapInput) (*LoadMapOutput, error)
	UnloadMap(ctx context.Context, input *UnloadMapInput) (*UnloadMapOutput, error)
	SyncMapState(ctx context.Context, input *SyncMapStateInput) (*SyncMapStateOutput, error)
	UpdateWorldTime(ctx context.Context, input *UpdateWorldTimeInput) (*UpdateWorldTimeOutput, error)
	Snapshot(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error)
	SpawnZones(ctx context.Context, input *SpawnZonesInput) (*SpawnZonesOutput, error)
	IsPlayerInZone(ctx context.Context, input *IsPlayerInZoneInput) (*IsPlayerInZoneOutput, error)
}

// Config holds the dependencies for the world orchestrator
type Config struct {
	Catalog       assets.Catalog
	PlayerService player.Service
	Clock         clock.Clock
	EventBus      events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.PlayerService == nil {
		vb.RequiredField("PlayerService")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog assets.Catalog
	players player.Service
	clock   clock.Clock
	bus     events.EventBus

	mu   sync.RWMutex
	maps map[int]*entities.LoadedMap
	time int64
}

// NewOrchestrator creates a new world orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalog: cfg.Catalog,
		players: cfg.PlayerService,
		clock:   cfg.Clock,
		bus:     cfg.EventBus,
		maps:    make(map[int]*entities.LoadedMap),
		time:    clock.UnixMilli(cfg.Clock),
	}, nil
}

func (o *orchestrator) LoadMap(ctx context.Context, input *LoadMapInput) (*LoadMapOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	m, err := o.catalog.Map(ctx, input.MapID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load map %d", input.MapID)
	}

	loaded := &entities.LoadedMap{GameMap: *m, LoadedAt: clock.UnixMilli(o.clock)}
	o.mu.Lock()
	o.maps[input.MapID] = loaded
	o.mu.Unlock()

	slog.DebugContext(ctx, "map loaded", "map_id", input.MapID)
	gameevents.Publish(ctx, o.bus, gameevents.MapLoaded, gameevents.Map(input.MapID), nil, nil)

	out := *loaded
	return &LoadMapOutput{Map: &out}, nil
}

func (o *orchestrator) UnloadMap(ctx context.Context, input *UnloadMapInput) (*UnloadMapOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	_, ok := o.maps[input.MapID]
	delete(o.maps, input.MapID)
	o.mu.Unlock()

	if ok {
		gameevents.Publish(ctx, o.bus, gameevents.MapUnloaded, gameevents.Map(input.MapID), nil, nil)
	}
	return &UnloadMapOutput{Success: true}, nil
}

func (o *orchestrator) SyncMapState(_ context.Context, input *SyncMapStateInput) (*SyncMapStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.RLock()
	defer o.mu.RUnlock()
	m, ok := o.maps[input.MapID]
	if !ok {
		return &SyncMapStateOutput{}, nil
	}
	out := *m
	return &SyncMapStateOutput{Map: &out, Loaded: true}, nil
}

func (o *orchestrator) UpdateWorldTime(_ context.Context, input *UpdateWorldTimeInput) (*UpdateWorldTimeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	now := clock.UnixMilli(o.clock)
	o.mu.Lock()
	o.time = now
	o.mu.Unlock()
	return &UpdateWorldTimeOutput{Time: now}, nil
}

func (o *orchestrator) Snapshot(_ context.Context, _ *SnapshotInput) (*SnapshotOutput, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	maps := make(map[int]*entities.LoadedMap, len(o.maps))
	for id, m := range o.maps {
		cp := *m
		maps[id] = &cp
	}
	return &SnapshotOutput{Maps: maps, Time: o.time}, nil
}

// SpawnZones treats the whole map as a single zone.
func (o *orchestrator) SpawnZones(ctx context.Context, input *SpawnZonesInput) (*SpawnZonesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	m, err := o.catalog.Map(ctx, input.MapID)
	if err != nil {
		if errors.IsNotFound(err) {
			return &SpawnZonesOutput{Zones: []entities.SpawnZone{}}, nil
		}
		return nil, err
	}

	return &SpawnZonesOutput{Zones: []entities.SpawnZone{{
		ZoneID: entities.SpawnZoneID(m.MapID),
		MapID:  m.MapID,
		Bounds: m.Dimensions,
	}}}, nil
}

func (o *orchestrator) IsPlayerInZone(ctx context.Context, input *IsPlayerInZoneInput) (*IsPlayerInZoneOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	getOut, err := o.players.Get(ctx, &player.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &IsPlayerInZoneOutput{InZone: false}, nil
		}
		return nil, err
	}
	if getOut.Player.Position == nil {
		return &IsPlayerInZoneOutput{InZone: false}, nil
	}

	zonesOut, err := o.SpawnZones(ctx, &SpawnZonesInput{MapID: getOut.Player.Position.MapID})
	if err != nil {
		return nil, err
	}
	for _, z := range zonesOut.Zones {
		if z.ZoneID == input.ZoneID {
			return &IsPlayerInZoneOutput{InZone: true}, nil
		}
	}
	return &IsPlayerInZoneOutput{InZone: false}, nil
}
