package simulation_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sim/internal/engine"
	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/gameevents"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/enemy"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/player"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/simulation"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/roller"
	"github.com/KirkDiggler/rpg-sim/internal/repositories/enemies"
	"github.com/KirkDiggler/rpg-sim/internal/repositories/players"
	"github.com/KirkDiggler/rpg-sim/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx     context.Context
	bus     events.EventBus
	players player.Service
	enemies enemy.Service
	combat  combat.Service
	cfg     *simulation.Config
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()
}

func goblin(stats entities.Stats) entities.EnemyTemplate {
	return entities.EnemyTemplate{
		EnemyID:   1,
		EnemyName: "Goblin",
		Stats:     stats,
	}
}

// build wires real services over a temp assets dir.
func (s *OrchestratorTestSuite) build(hero *entities.Player, templates ...entities.EnemyTemplate) {
	a := testutils.Assets{Enemies: templates}
	if hero != nil {
		a.Players = []*entities.Player{hero}
	}
	catalog := testutils.CreateTestCatalog(s.T(), a)

	repo, err := players.NewFile(&players.FileConfig{Dir: catalog.PlayersDir()})
	s.Require().NoError(err)

	s.players, err = player.NewOrchestrator(&player.Config{PlayerRepo: repo, Catalog: catalog, EventBus: s.bus})
	s.Require().NoError(err)

	eng, err := engine.New(&engine.Config{Roller: roller.Fixed(2)})
	s.Require().NoError(err)

	s.enemies, err = enemy.NewOrchestrator(&enemy.Config{
		EnemyRepo:     enemies.NewInMemory(),
		PlayerService: s.players,
		Catalog:       catalog,
		Engine:        eng,
		IDGenerator:   idgen.NewSequential("enemy"),
		EventBus:      s.bus,
	})
	s.Require().NoError(err)

	s.combat, err = combat.NewOrchestrator(&combat.Config{
		PlayerService: s.players,
		EnemyService:  s.enemies,
		Catalog:       catalog,
		Engine:        eng,
		Clock:         clock.New(),
		EventBus:      s.bus,
	})
	s.Require().NoError(err)

	s.cfg = &simulation.Config{
		PlayerService: s.players,
		EnemyService:  s.enemies,
		CombatService: s.combat,
		Catalog:       catalog,
		EventBus:      s.bus,
	}
}

func (s *OrchestratorTestSuite) run() (*simulation.RunOutput, error) {
	svc, err := simulation.NewOrchestrator(s.cfg)
	s.Require().NoError(err)
	return svc.Run(s.ctx, &simulation.RunInput{})
}

func (s *OrchestratorTestSuite) hp() int {
	out, err := s.players.Get(s.ctx, &player.GetInput{PlayerID: 0})
	s.Require().NoError(err)
	return out.Player.HP()
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := simulation.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = simulation.NewOrchestrator(&simulation.Config{MaxTicks: -1})
	s.Require().Error(err)
	s.Contains(err.Error(), "MaxTicks")
}

func (s *OrchestratorTestSuite) TestEnemyGrindsPlayerDown() {
	hero := testutils.CreateTestPlayer(0)
	hero.Stats[entities.StatSTR] = 0
	s.build(hero, goblin(entities.Stats{entities.StatHP: 100, entities.StatSTR: 10, entities.StatATKPOW: 0}))

	var hpByTick []int
	s.bus.SubscribeFunc(gameevents.SimulationTick, 0, func(_ context.Context, e events.Event) error {
		hp, _ := e.Context().Get(gameevents.KeyHP)
		hpByTick = append(hpByTick, hp.(int))
		return nil
	})

	out, err := s.run()
	s.Require().NoError(err)
	s.True(out.PlayerDied)
	s.Equal(10, out.Ticks)
	s.Len(out.Spawned, 1)
	s.Equal([]int{90, 80, 70, 60, 50, 40, 30, 20, 10, 0}, hpByTick)
	s.Equal(0, s.hp())
}

func (s *OrchestratorTestSuite) TestEnemyEngagesPlayerAwayFromStartMap() {
	cases := map[string]*entities.Position{
		"player on map 2":         {MapID: 2},
		"player without position": nil,
	}
	for name, pos := range cases {
		s.Run(name, func() {
			hero := testutils.CreateTestPlayer(0)
			hero.Stats[entities.StatSTR] = 0
			hero.Position = pos
			s.build(hero, goblin(entities.Stats{entities.StatHP: 100, entities.StatSTR: 10, entities.StatATKPOW: 0}))
			s.cfg.MaxTicks = 20

			out, err := s.run()
			s.Require().NoError(err)
			s.True(out.PlayerDied)
			s.Equal(10, out.Ticks)
			s.Equal(0, s.hp())
		})
	}
}

func (s *OrchestratorTestSuite) TestPlayerClearsEnemies() {
	hero := testutils.CreateTestPlayer(0)
	hero.Stats[entities.StatSTR] = 40
	s.build(hero, goblin(entities.Stats{entities.StatHP: 30, entities.StatSTR: 10}))
	s.cfg.MaxTicks = 5

	out, err := s.run()
	s.Require().NoError(err)
	s.False(out.PlayerDied)
	s.Equal(5, out.Ticks)
	s.Equal(100, s.hp())

	listOut, err := s.enemies.List(s.ctx, &enemy.ListInput{})
	s.Require().NoError(err)
	s.Empty(listOut.Enemies)
}

func (s *OrchestratorTestSuite) TestEnemySpawnsBesidePlayer() {
	hero := testutils.CreateTestPlayer(0)
	hero.Position = &entities.Position{MapID: 1, X: 10, Y: 4}
	s.build(hero,
		goblin(entities.Stats{entities.StatHP: 100}),
		entities.EnemyTemplate{
			EnemyID:   2,
			EnemyName: "Wolf",
			Stats:     entities.Stats{entities.StatHP: 100},
			Position:  &entities.EnemyPosition{MapID: 3, X: 1, Y: 1, Coords: &entities.Coords{X: 7, Y: 8}},
		})
	s.cfg.MaxTicks = 1

	out, err := s.run()
	s.Require().NoError(err)
	s.Require().Len(out.Spawned, 2)

	first, err := s.enemies.Get(s.ctx, &enemy.GetInput{InstanceID: out.Spawned[0]})
	s.Require().NoError(err)
	s.Equal(1, first.Enemy.Position.MapID)
	s.Equal(60.0, first.Enemy.Position.X)
	s.Equal(4.0, first.Enemy.Position.Y)

	second, err := s.enemies.Get(s.ctx, &enemy.GetInput{InstanceID: out.Spawned[1]})
	s.Require().NoError(err)
	s.Equal(3, second.Enemy.Position.MapID)
	s.Equal(7.0, second.Enemy.Position.Coords.X)
	s.Equal(8.0, second.Enemy.Position.Coords.Y)
}

func (s *OrchestratorTestSuite) TestMissingPlayerAborts() {
	s.build(nil, goblin(entities.Stats{entities.StatHP: 10}))

	_, err := s.run()
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCancelDuringDelay() {
	s.build(testutils.CreateTestPlayer(0))
	s.cfg.TickDelay = time.Hour

	ctx, cancel := context.WithCancel(s.ctx)
	time.AfterFunc(20*time.Millisecond, cancel)

	svc, err := simulation.NewOrchestrator(s.cfg)
	s.Require().NoError(err)
	out, err := svc.Run(ctx, &simulation.RunInput{})
	s.ErrorIs(err, context.Canceled)
	s.Equal(1, out.Ticks)
}
