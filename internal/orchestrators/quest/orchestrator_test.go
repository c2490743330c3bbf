package quest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sim/internal/assets"
	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	playermock "github.com/KirkDiggler/rpg-sim/internal/orchestrators/player/mock"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/quest"
	"github.com/KirkDiggler/rpg-sim/internal/testutils"
	"github.com/KirkDiggler/rpg-sim/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockPlayers *playermock.MockService
	svc         quest.Service
	ctx         context.Context
	player      *entities.Player
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPlayers = playermock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	catalog := testutils.CreateTestCatalog(s.T(), testutils.Assets{
		Quests: []entities.Quest{
			{
				QuestID:    4,
				QuestName:  "Rat Problem",
				Objectives: []string{"kill 5 rats", "report to the guard"},
				Rewards:    &entities.QuestRewards{EXP: 350, Items: []string{"Potion", "Potion"}, Gold: 12},
			},
			{QuestID: 5, QuestName: "Errand"},
		},
	})

	svc, err := quest.NewOrchestrator(&quest.Config{PlayerService: s.mockPlayers, Catalog: catalog})
	s.Require().NoError(err)
	s.svc = svc

	s.player = testutils.CreateTestPlayer(1)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestLoadByIDOrName() {
	out, err := s.svc.Load(s.ctx, &quest.LoadInput{Quest: assets.ByID(5)})
	s.Require().NoError(err)
	s.Equal("Errand", out.Quest.QuestName)

	out, err = s.svc.Load(s.ctx, &quest.LoadInput{Quest: assets.ByName("Rat Problem")})
	s.Require().NoError(err)
	s.Equal(4, out.Quest.QuestID)

	_, err = s.svc.Load(s.ctx, &quest.LoadInput{Quest: assets.ByID(99)})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestAssignResetsProgress() {
	s.player.Quests.Side["q_4"] = &entities.QuestProgress{Progress: 3, Completed: true}
	var saved *entities.Player
	mocks.ExpectMutation(s.ctx, s.mockPlayers, s.player, &saved)

	_, err := s.svc.Assign(s.ctx, &quest.AssignInput{PlayerID: 1, Quest: assets.ByID(4)})
	s.Require().NoError(err)
	s.Equal(&entities.QuestProgress{}, saved.Quests.Side["q_4"])
}

func (s *OrchestratorTestSuite) TestTrackProgressCreatesEntry() {
	var saved *entities.Player
	mocks.ExpectMutation(s.ctx, s.mockPlayers, s.player, &saved)

	out, err := s.svc.TrackProgress(s.ctx, &quest.TrackProgressInput{PlayerID: 1, Quest: assets.ByID(4)})
	s.Require().NoError(err)
	s.Equal(1, out.Progress.Progress)
	s.Equal(1, saved.Quests.Side["q_4"].Progress)
}

func (s *OrchestratorTestSuite) TestCompleteFlagsAndRewardsInOneWrite() {
	var saved *entities.Player
	mocks.ExpectMutation(s.ctx, s.mockPlayers, s.player, &saved).Times(1)

	out, err := s.svc.Complete(s.ctx, &quest.CompleteInput{PlayerID: 1, Quest: assets.ByName("Rat Problem")})
	s.Require().NoError(err)
	s.Equal(2, out.LevelsGained)

	s.True(saved.Quests.Side["q_4"].Completed)
	s.Equal(3, saved.Stats[entities.StatLVL])
	s.Equal(50, saved.Stats[entities.StatEXP])
	s.Equal(2, saved.Inventory.Items["Potion"])
	s.Equal(12, saved.Inventory.Gold)
}

func (s *OrchestratorTestSuite) TestRewardDoesNotComplete() {
	var saved *entities.Player
	mocks.ExpectMutation(s.ctx, s.mockPlayers, s.player, &saved)

	_, err := s.svc.Reward(s.ctx, &quest.RewardInput{PlayerID: 1, Quest: assets.ByID(5)})
	s.Require().NoError(err)
	s.NotContains(saved.Quests.Side, "q_5")
	s.Equal(1, saved.Stats[entities.StatLVL])
}

func (s *OrchestratorTestSuite) TestObjectives() {
	out, err := s.svc.Objectives(s.ctx, &quest.ObjectivesInput{Quest: assets.ByID(4)})
	s.Require().NoError(err)
	s.Equal([]string{"kill 5 rats", "report to the guard"}, out.Objectives)
}

func (s *OrchestratorTestSuite) TestStateChecks() {
	s.player.Quests.Side["q_4"] = &entities.QuestProgress{Progress: 2}
	mocks.ExpectGet(s.ctx, s.mockPlayers, s.player).Times(4)

	valid, err := s.svc.ValidateState(s.ctx, &quest.ValidateStateInput{PlayerID: 1, Quest: assets.ByID(4)})
	s.Require().NoError(err)
	s.True(valid.Valid)

	valid, err = s.svc.ValidateState(s.ctx, &quest.ValidateStateInput{PlayerID: 1, Quest: assets.ByID(5)})
	s.Require().NoError(err)
	s.False(valid.Valid)

	done, err := s.svc.CheckCompletion(s.ctx, &quest.CheckCompletionInput{PlayerID: 1, Quest: assets.ByID(4)})
	s.Require().NoError(err)
	s.False(done.Completed)

	done, err = s.svc.CheckCompletion(s.ctx, &quest.CheckCompletionInput{PlayerID: 1, Quest: assets.ByID(5)})
	s.Require().NoError(err)
	s.False(done.Completed)
}
