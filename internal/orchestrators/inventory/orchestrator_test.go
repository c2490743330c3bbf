package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sim/internal/assets"
	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/inventory"
	playermock "github.com/KirkDiggler/rpg-sim/internal/orchestrators/player/mock"
	"github.com/KirkDiggler/rpg-sim/internal/testutils"
	"github.com/KirkDiggler/rpg-sim/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockPlayers *playermock.MockService
	svc         inventory.Service
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
		Items: []entities.Item{
			{ItemID: 1, ItemName: "Sword", Slot: "weapon", ItemStats: map[string]int{entities.StatATKPOW: 4}, Mods: []int{10}},
			{ItemID: 2, ItemName: "Axe", Slot: "weapon", ItemReqs: &entities.ItemReqs{Level: 3}},
			{ItemID: 3, ItemName: "Potion"},
		},
		Mods: []entities.Mod{
			{ModID: 10, ModName: "Sharp", ModStats: map[string]int{entities.StatATKPOW: 2, entities.StatCRT: 5}},
		},
	})

	svc, err := inventory.NewOrchestrator(&inventory.Config{
		PlayerService: s.mockPlayers,
		Catalog:       catalog,
	})
	s.Require().NoError(err)
	s.svc = svc

	s.player = testutils.CreateTestPlayer(1)
	s.player.Inventory.Items = map[string]int{"1": 1, "2": 1, "3": 5}
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestLoadItem() {
	out, err := s.svc.LoadItem(s.ctx, &inventory.LoadItemInput{Item: assets.ByName("Axe")})
	s.Require().NoError(err)
	s.Equal(2, out.Item.ItemID)

	_, err = s.svc.LoadItem(s.ctx, &inventory.LoadItemInput{Item: assets.ByID(42)})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestAddItemDefaultsToOne() {
	var saved *entities.Player
	mocks.ExpectMutation(s.ctx, s.mockPlayers, s.player, &saved)

	out, err := s.svc.AddItem(s.ctx, &inventory.AddItemInput{PlayerID: 1, ItemKey: "3"})
	s.Require().NoError(err)
	s.Equal(6, out.Quantity)
	s.Equal(6, saved.Inventory.Items["3"])
}

func (s *OrchestratorTestSuite) TestRemoveItemRefusesOverdraw() {
	var saved *entities.Player
	mocks.ExpectMutation(s.ctx, s.mockPlayers, s.player, &saved)

	out, err := s.svc.RemoveItem(s.ctx, &inventory.RemoveItemInput{PlayerID: 1, ItemKey: "3", Quantity: 6})
	s.Require().NoError(err)
	s.False(out.Removed)
	s.Nil(saved)
}

func (s *OrchestratorTestSuite) TestRemoveItemDeletesEmptiedStack() {
	var saved *entities.Player
	mocks.ExpectMutation(s.ctx, s.mockPlayers, s.player, &saved)

	out, err := s.svc.RemoveItem(s.ctx, &inventory.RemoveItemInput{PlayerID: 1, ItemKey: "3", Quantity: 5})
	s.Require().NoError(err)
	s.True(out.Removed)
	s.Equal(0, out.Quantity)
	s.NotContains(saved.Inventory.Items, "3")
}

func (s *OrchestratorTestSuite) TestEquipConsumesStackAndReturnsDisplaced() {
	s.player.Inventory.Equipment["weapon"] = map[string]any{"itemID": float64(2), "itemName": "Axe"}
	s.player.Inventory.Items = map[string]int{"1": 1}

	var saved *entities.Player
	mocks.ExpectMutation(s.ctx, s.mockPlayers, s.player, &saved)

	out, err := s.svc.Equip(s.ctx, &inventory.EquipInput{PlayerID: 1, Item: assets.ByID(1)})
	s.Require().NoError(err)
	s.Equal("weapon", out.Slot)
	s.Equal("2", out.Displaced)
	s.NotContains(saved.Inventory.Items, "1")
	s.Equal(1, saved.Inventory.Items["2"])

	id, ok := entities.EquippedItemID(saved.Inventory.Equipment["weapon"])
	s.True(ok)
	s.Equal(1, id)
}

func (s *OrchestratorTestSuite) TestEquipNeedsSlot() {
	_, err := s.svc.Equip(s.ctx, &inventory.EquipInput{PlayerID: 1, Item: assets.ByID(3)})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUnequip() {
	s.player.Inventory.Equipment["weapon"] = entities.Item{ItemID: 1, ItemName: "Sword"}
	var saved *entities.Player
	mocks.ExpectMutation(s.ctx, s.mockPlayers, s.player, &saved)

	out, err := s.svc.Unequip(s.ctx, &inventory.UnequipInput{PlayerID: 1, Slot: "weapon"})
	s.Require().NoError(err)
	s.Equal("1", out.ItemKey)
	s.Equal(2, saved.Inventory.Items["1"])
	s.NotContains(saved.Inventory.Equipment, "weapon")
}

func (s *OrchestratorTestSuite) TestUnequipEmptySlot() {
	mocks.ExpectMutation(s.ctx, s.mockPlayers, s.player, nil)

	_, err := s.svc.Unequip(s.ctx, &inventory.UnequipInput{PlayerID: 1, Slot: "head"})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestModdedItemStats() {
	base, err := s.svc.ItemStats(s.ctx, &inventory.ItemStatsInput{Item: assets.ByID(1)})
	s.Require().NoError(err)
	s.Equal(4, base.Stats[entities.StatATKPOW])

	out, err := s.svc.ModdedItemStats(s.ctx, &inventory.ModdedItemStatsInput{Item: assets.ByID(1)})
	s.Require().NoError(err)
	s.Equal(6, out.Stats[entities.StatATKPOW])
	s.Equal(5, out.Stats[entities.StatCRT])
	s.Empty(out.Missing)

	out, err = s.svc.ModdedItemStats(s.ctx, &inventory.ModdedItemStatsInput{Item: assets.ByID(1), ModIDs: []int{99}})
	s.Require().NoError(err)
	s.Equal([]int{99}, out.Missing)
	s.Equal(4, out.Stats[entities.StatATKPOW])
}

func (s *OrchestratorTestSuite) TestCheckRequirements() {
	out, err := s.svc.CheckRequirements(s.ctx, &inventory.CheckRequirementsInput{PlayerID: 1, Item: assets.ByID(1)})
	s.Require().NoError(err)
	s.True(out.Met)

	mocks.ExpectGet(s.ctx, s.mockPlayers, s.player)
	out, err = s.svc.CheckRequirements(s.ctx, &inventory.CheckRequirementsInput{PlayerID: 1, Item: assets.ByName("Axe")})
	s.Require().NoError(err)
	s.False(out.Met)
	s.Equal(3, out.RequiredLevel)
}
