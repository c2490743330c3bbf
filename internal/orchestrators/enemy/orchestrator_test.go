package enemy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sim/internal/engine"
	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/enemy"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/player"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/roller"
	"github.com/KirkDiggler/rpg-sim/internal/repositories/enemies"
	"github.com/KirkDiggler/rpg-sim/internal/repositories/players"
	"github.com/KirkDiggler/rpg-sim/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx     context.Context
	players player.Service
	svc     enemy.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.build(testutils.CreateTestPlayer(0))
}

// build wires the orchestrator over a fresh assets dir holding roster.
func (s *OrchestratorTestSuite) build(roster ...*entities.Player) {
	catalog := testutils.CreateTestCatalog(s.T(), testutils.Assets{
		Enemies: []entities.EnemyTemplate{
			{
				EnemyID:    1,
				EnemyName:  "Goblin",
				Stats:      entities.Stats{entities.StatHP: 30, entities.StatSTR: 10},
				Position:   &entities.EnemyPosition{MapID: 1, X: 5, Y: 5},
				DeathDrops: &entities.Drops{Items: []string{"Goblin Ear"}, Gold: 3},
			},
		},
		Players: roster,
	})

	repo, err := players.NewFile(&players.FileConfig{Dir: catalog.PlayersDir()})
	s.Require().NoError(err)

	s.players, err = player.NewOrchestrator(&player.Config{PlayerRepo: repo, Catalog: catalog})
	s.Require().NoError(err)

	eng, err := engine.New(&engine.Config{Roller: roller.Fixed(2)})
	s.Require().NoError(err)

	s.svc, err = enemy.NewOrchestrator(&enemy.Config{
		EnemyRepo:     enemies.NewInMemory(),
		PlayerService: s.players,
		Catalog:       catalog,
		Engine:        eng,
		IDGenerator:   idgen.NewSequential("enemy"),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) spawn() *entities.Enemy {
	out, err := s.svc.Spawn(s.ctx, &enemy.SpawnInput{EnemyID: 1})
	s.Require().NoError(err)
	return out.Enemy
}

func (s *OrchestratorTestSuite) playerHP(id int) int {
	out, err := s.players.Get(s.ctx, &player.GetInput{PlayerID: id})
	s.Require().NoError(err)
	return out.Player.HP()
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := enemy.NewOrchestrator(&enemy.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSpawnMergesLocation() {
	out, err := s.svc.Spawn(s.ctx, &enemy.SpawnInput{
		EnemyID:  1,
		Location: &entities.EnemyPosition{X: 40},
	})
	s.Require().NoError(err)

	e := out.Enemy
	s.Equal("enemy_1", e.InstanceID)
	s.Equal(entities.AIStateIdle, e.State)
	s.Nil(e.TargetPlayer)
	s.Equal(30, e.MaxHP)
	s.Equal(1, e.Position.MapID)
	s.Equal(40.0, e.Position.X)
	s.Equal(5.0, e.Position.Y)

	listOut, err := s.svc.List(s.ctx, &enemy.ListInput{})
	s.Require().NoError(err)
	s.Len(listOut.Enemies, 1)
}

func (s *OrchestratorTestSuite) TestSpawnUnknownTemplate() {
	_, err := s.svc.Spawn(s.ctx, &enemy.SpawnInput{EnemyID: 9})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestUpdateAIEngagesAndDamagesTarget() {
	e := s.spawn()

	out, err := s.svc.UpdateAI(s.ctx, &enemy.UpdateAIInput{InstanceID: e.InstanceID})
	s.Require().NoError(err)
	s.Equal(entities.AIStateEngage, out.State)
	s.Require().NotNil(out.TargetPlayer)
	s.Equal(0, *out.TargetPlayer)
	s.Equal(10, out.Damage)
	s.Equal(90, out.PlayerHP)
	s.Equal(90, s.playerHP(0))

	got, err := s.svc.Get(s.ctx, &enemy.GetInput{InstanceID: e.InstanceID})
	s.Require().NoError(err)
	s.Equal(entities.AIStateEngage, got.Enemy.State)
}

func (s *OrchestratorTestSuite) TestUpdateAIWithoutPlayersIdles() {
	s.build()
	e := s.spawn()

	out, err := s.svc.UpdateAI(s.ctx, &enemy.UpdateAIInput{InstanceID: e.InstanceID})
	s.Require().NoError(err)
	s.Equal(entities.AIStateIdle, out.State)
	s.Nil(out.TargetPlayer)
	s.Zero(out.Damage)
}

func (s *OrchestratorTestSuite) TestUpdateAIFleesAtLowHealth() {
	e := s.spawn()
	_, err := s.svc.TakeDamage(s.ctx, &enemy.TakeDamageInput{InstanceID: e.InstanceID, Amount: 24})
	s.Require().NoError(err)

	// Fixed(2) rolls 2 on the 1..100 flee check
	out, err := s.svc.UpdateAI(s.ctx, &enemy.UpdateAIInput{InstanceID: e.InstanceID})
	s.Require().NoError(err)
	s.Equal(entities.AIStateFlee, out.State)
	s.Zero(out.Damage)
	s.Equal(100, s.playerHP(0))
}

func (s *OrchestratorTestSuite) TestDeathRemovesInstanceAndStopsAI() {
	e := s.spawn()

	out, err := s.svc.TakeDamage(s.ctx, &enemy.TakeDamageInput{InstanceID: e.InstanceID, Amount: 45})
	s.Require().NoError(err)
	s.True(out.Defeated)
	s.Equal(0, out.HP)
	s.Equal([]string{"Goblin Ear"}, out.Loot)

	_, err = s.svc.Get(s.ctx, &enemy.GetInput{InstanceID: e.InstanceID})
	s.True(errors.IsNotFound(err))

	_, err = s.svc.UpdateAI(s.ctx, &enemy.UpdateAIInput{InstanceID: e.InstanceID})
	s.True(errors.IsNotFound(err))
	s.Equal(100, s.playerHP(0))

	despawn, err := s.svc.Despawn(s.ctx, &enemy.DespawnInput{InstanceID: e.InstanceID})
	s.Require().NoError(err)
	s.False(despawn.Success)
}

func (s *OrchestratorTestSuite) TestLoot() {
	e := s.spawn()

	drop, err := s.svc.DropLoot(s.ctx, &enemy.DropLootInput{InstanceID: e.InstanceID})
	s.Require().NoError(err)
	s.Equal([]string{"Goblin Ear"}, drop.Items)

	table, err := s.svc.RollLootTable(s.ctx, &enemy.RollLootTableInput{EnemyID: 1})
	s.Require().NoError(err)
	s.Equal([]string{"Goblin Ear"}, table.Items)
	s.Equal(3, table.Gold)
}

func (s *OrchestratorTestSuite) TestFindNearestPlayer() {
	far := testutils.CreateTestPlayer(1)
	far.Position = &entities.Position{MapID: 1, X: 100, Y: 0}
	near := testutils.CreateTestPlayer(2)
	near.Position = &entities.Position{MapID: 1, X: 3, Y: 4}
	otherMap := testutils.CreateTestPlayer(3)
	otherMap.Position = &entities.Position{MapID: 2, X: 0, Y: 0}
	dead := testutils.CreateTestPlayer(4)
	dead.Position = &entities.Position{MapID: 1, X: 0, Y: 0}
	dead.Stats[entities.StatHP] = 0
	s.build(far, near, otherMap, dead)

	out, err := s.svc.FindNearestPlayer(s.ctx, &enemy.FindNearestPlayerInput{
		Position: &entities.EnemyPosition{MapID: 1},
	})
	s.Require().NoError(err)
	s.True(out.Found)
	s.Equal(2, out.PlayerID)
	s.InDelta(5.0, out.Distance, 1e-9)

	out, err = s.svc.FindNearestPlayer(s.ctx, &enemy.FindNearestPlayerInput{
		Position: &entities.EnemyPosition{MapID: 1, X: 1, Coords: &entities.Coords{X: 99}},
	})
	s.Require().NoError(err)
	s.Equal(1, out.PlayerID)

	out, err = s.svc.FindNearestPlayer(s.ctx, &enemy.FindNearestPlayerInput{
		Position: &entities.EnemyPosition{MapID: 7},
	})
	s.Require().NoError(err)
	s.True(out.Found)
	s.Equal(1, out.PlayerID)
}

func (s *OrchestratorTestSuite) TestFindNearestPlayerOnlyDeadPlayers() {
	dead := testutils.CreateTestPlayer(1)
	dead.Stats[entities.StatHP] = 0
	s.build(dead)

	out, err := s.svc.FindNearestPlayer(s.ctx, &enemy.FindNearestPlayerInput{
		Position: &entities.EnemyPosition{MapID: 1},
	})
	s.Require().NoError(err)
	s.False(out.Found)
}

func (s *OrchestratorTestSuite) TestFindNearestPlayerOffMap() {
	lone := testutils.CreateTestPlayer(5)
	lone.Position = &entities.Position{MapID: 2, X: 40, Y: 0}
	noPos := testutils.CreateTestPlayer(9)
	noPos.Position = nil
	s.build(lone, noPos)

	out, err := s.svc.FindNearestPlayer(s.ctx, &enemy.FindNearestPlayerInput{
		Position: &entities.EnemyPosition{MapID: 1},
	})
	s.Require().NoError(err)
	s.True(out.Found)
	s.Equal(5, out.PlayerID)
}
