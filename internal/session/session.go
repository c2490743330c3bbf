// Package session assembles one game context: the asset catalog, the player
// store, the instance registries, the event bus and every orchestrator.
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sim/internal/assets"
	"github.com/KirkDiggler/rpg-sim/internal/config"
	"github.com/KirkDiggler/rpg-sim/internal/engine"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/gameevents"
	"github.com/KirkDiggler/rpg-sim/internal/network"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/dialogue"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/enemy"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/inventory"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/player"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/quest"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/simulation"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/world"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/roller"
	redisclient "github.com/KirkDiggler/rpg-sim/internal/redis"
	"github.com/KirkDiggler/rpg-sim/internal/repositories/dungeons"
	"github.com/KirkDiggler/rpg-sim/internal/repositories/enemies"
	"github.com/KirkDiggler/rpg-sim/internal/repositories/players"
)

// loggedEvents are echoed to the debug log as they are published.
var loggedEvents = []string{
	gameevents.PlayerCreated,
	gameevents.PlayerDamaged,
	gameevents.PlayerLevelUp,
	gameevents.PlayerRespawned,
	gameevents.SkillCast,
	gameevents.ItemAdded,
	gameevents.ItemEquipped,
	gameevents.EnemySpawned,
	gameevents.EnemyDamaged,
	gameevents.EnemyDefeated,
	gameevents.EnemyStateChanged,
	gameevents.QuestCompleted,
	gameevents.DungeonGenerated,
	gameevents.MapLoaded,
}

// Options overrides the session's sources of time, randomness and identity.
// Zero fields get production defaults.
type Options struct {
	Clock       clock.Clock
	Roller      dice.Roller
	IDGenerator idgen.Generator
	// PlayerRepo replaces the store selected by the config
	PlayerRepo players.Repository
}

// Session owns every component of one running game.
type Session struct {
	Config  *config.Config
	Catalog *assets.FileCatalog
	Bus     events.EventBus
	Clock   clock.Clock
	Roller  dice.Roller

	Players    player.Service
	Inventory  inventory.Service
	Combat     combat.Service
	Enemies    enemy.Service
	Quests     quest.Service
	Dialogue   dialogue.Service
	Dungeons   dungeon.Service
	World      world.Service
	Simulation simulation.Service
	Dispatcher *network.Dispatcher

	closers []func() error
}

// New builds a session from cfg.
func New(ctx context.Context, cfg *config.Config, opts *Options) (*Session, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if opts == nil {
		opts = &Options{}
	}

	s := &Session{
		Config: cfg,
		Bus:    events.NewBus(),
		Clock:  opts.Clock,
		Roller: opts.Roller,
	}
	if s.Clock == nil {
		s.Clock = clock.New()
	}
	if s.Roller == nil {
		seed := cfg.Simulation.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.Roller = roller.NewSeeded(seed)
		slog.InfoContext(ctx, "session roller seeded", "seed", seed)
	}
	idGen := opts.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("")
	}

	var err error
	s.Catalog, err = assets.NewFileCatalog(&assets.Config{Root: cfg.AssetsDir})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open assets")
	}

	playerRepo := opts.PlayerRepo
	if playerRepo == nil {
		if playerRepo, err = s.playerStore(ctx); err != nil {
			return nil, err
		}
	}

	eng, err := engine.New(&engine.Config{Roller: s.Roller})
	if err != nil {
		return nil, err
	}

	if err := s.buildOrchestrators(playerRepo, eng, idGen); err != nil {
		_ = s.Close()
		return nil, err
	}

	for _, eventType := range loggedEvents {
		s.Bus.SubscribeFunc(eventType, 100, logEvent)
	}

	return s, nil
}

func (s *Session) playerStore(ctx context.Context) (players.Repository, error) {
	switch s.Config.Store.Backend {
	case config.BackendRedis:
		client, err := redisclient.Connect(ctx, s.Config.Store.RedisAddr, nil)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, client.Close)
		return players.NewRedis(&players.RedisConfig{Client: client})
	default:
		return players.NewFile(&players.FileConfig{Dir: s.Catalog.PlayersDir()})
	}
}

func (s *Session) buildOrchestrators(playerRepo players.Repository, eng engine.Engine, idGen idgen.Generator) error {
	var err error
	if s.Players, err = player.NewOrchestrator(&player.Config{
		PlayerRepo: playerRepo,
		Catalog:    s.Catalog,
		EventBus:   s.Bus,
	}); err != nil {
		return errors.Wrap(err, "failed to create player service")
	}

	if s.Inventory, err = inventory.NewOrchestrator(&inventory.Config{
		PlayerService: s.Players,
		Catalog:       s.Catalog,
		EventBus:      s.Bus,
	}); err != nil {
		return errors.Wrap(err, "failed to create inventory service")
	}

	if s.Enemies, err = enemy.NewOrchestrator(&enemy.Config{
		EnemyRepo:     enemies.NewInMemory(),
		PlayerService: s.Players,
		Catalog:       s.Catalog,
		Engine:        eng,
		IDGenerator:   idGen,
		EventBus:      s.Bus,
	}); err != nil {
		return errors.Wrap(err, "failed to create enemy service")
	}

	if s.Combat, err = combat.NewOrchestrator(&combat.Config{
		PlayerService: s.Players,
		EnemyService:  s.Enemies,
		Catalog:       s.Catalog,
		Engine:        eng,
		Clock:         s.Clock,
		EventBus:      s.Bus,
	}); err != nil {
		return errors.Wrap(err, "failed to create combat service")
	}

	if s.Quests, err = quest.NewOrchestrator(&quest.Config{
		PlayerService: s.Players,
		Catalog:       s.Catalog,
		EventBus:      s.Bus,
	}); err != nil {
		return errors.Wrap(err, "failed to create quest service")
	}

	if s.Dialogue, err = dialogue.NewOrchestrator(&dialogue.Config{
		Catalog:      s.Catalog,
		QuestService: s.Quests,
		EventBus:     s.Bus,
	}); err != nil {
		return errors.Wrap(err, "failed to create dialogue service")
	}

	if s.Dungeons, err = dungeon.NewOrchestrator(&dungeon.Config{
		DungeonRepo: dungeons.NewInMemory(),
		Catalog:     s.Catalog,
		Roller:      s.Roller,
		IDGenerator: idGen,
		Clock:       s.Clock,
		EventBus:    s.Bus,
	}); err != nil {
		return errors.Wrap(err, "failed to create dungeon service")
	}

	if s.World, err = world.NewOrchestrator(&world.Config{
		Catalog:       s.Catalog,
		PlayerService: s.Players,
		Clock:         s.Clock,
		EventBus:      s.Bus,
	}); err != nil {
		return errors.Wrap(err, "failed to create world service")
	}

	if s.Simulation, err = simulation.NewOrchestrator(&simulation.Config{
		PlayerService: s.Players,
		EnemyService:  s.Enemies,
		CombatService: s.Combat,
		Catalog:       s.Catalog,
		EventBus:      s.Bus,
		PlayerID:      s.Config.Simulation.PlayerID,
		MaxTicks:      s.Config.Simulation.MaxTicks,
		TickDelay:     s.Config.TickDelay(),
	}); err != nil {
		return errors.Wrap(err, "failed to create simulation")
	}

	if s.Dispatcher, err = network.NewDispatcher(&network.DispatcherConfig{
		PlayerService: s.Players,
		EnemyService:  s.Enemies,
		WorldService:  s.World,
		Clock:         s.Clock,
	}); err != nil {
		return errors.Wrap(err, "failed to create packet dispatcher")
	}

	return nil
}

// Close releases external connections.
func (s *Session) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	s.closers = nil
	return first
}

func logEvent(ctx context.Context, e events.Event) error {
	attrs := []any{"event", e.Type()}
	if src := e.Source(); src != nil {
		attrs = append(attrs, "source", src.GetType()+":"+src.GetID())
	}
	if tgt := e.Target(); tgt != nil {
		attrs = append(attrs, "target", tgt.GetType()+":"+tgt.GetID())
	}
	slog.DebugContext(ctx, "game event", attrs...)
	return nil
}
