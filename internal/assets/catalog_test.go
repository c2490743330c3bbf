package assets_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sim/internal/assets"
	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/testutils"
)

type CatalogTestSuite struct {
	suite.Suite
	ctx     context.Context
	catalog *assets.FileCatalog
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.catalog = testutils.CreateTestCatalog(s.T(), testutils.Assets{
		Items: []entities.Item{
			{ItemID: 1, ItemName: "Sword", Slot: "weapon"},
			{ItemID: 2, ItemName: "Potion"},
		},
		Skills: []entities.Skill{
			{SkillName: "Slash", PassiveActive: "Active"},
			{SkillName: "Toughness", PassiveActive: "Passive"},
		},
		Quests: []entities.Quest{
			{QuestID: 7, QuestName: "Rat Problem", RelatedNPCs: []string{"Guard"}},
		},
		NPCs: []entities.NPC{{NPCID: 3, NPCName: "Guard"}},
		Dungeons: []entities.Dungeon{
			{DungeonID: 1, Rooms: []entities.Room{{"name": "hall"}}},
			{DungeonID: 2, Rooms: []entities.Room{{"name": "crypt"}}},
		},
		Maps: []entities.GameMap{{MapID: 1, MapName: "Town"}},
	})
}

func (s *CatalogTestSuite) TestConfigRequiresRoot() {
	_, err := assets.NewFileCatalog(&assets.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestItemByIDAndName() {
	item, err := s.catalog.Item(s.ctx, assets.ByID(2))
	s.Require().NoError(err)
	s.Equal("Potion", item.ItemName)

	item, err = s.catalog.Item(s.ctx, assets.ParseRef("Sword"))
	s.Require().NoError(err)
	s.Equal(1, item.ItemID)

	_, err = s.catalog.Item(s.ctx, assets.ByName("Axe"))
	s.True(errors.IsNotFound(err))
	s.Equal("Axe", errors.GetMeta(err)["item"])
}

func (s *CatalogTestSuite) TestSkillByIndexOrName() {
	skill, err := s.catalog.Skill(s.ctx, assets.ByID(1))
	s.Require().NoError(err)
	s.Equal("Toughness", skill.SkillName)

	skill, err = s.catalog.Skill(s.ctx, assets.ByName("Slash"))
	s.Require().NoError(err)
	s.True(skill.IsActive())

	_, err = s.catalog.Skill(s.ctx, assets.ByID(5))
	s.True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestQuestAndNPC() {
	quest, err := s.catalog.Quest(s.ctx, assets.ByName("Rat Problem"))
	s.Require().NoError(err)
	s.Equal(7, quest.QuestID)

	npc, err := s.catalog.NPC(s.ctx, 3)
	s.Require().NoError(err)
	s.Equal("Guard", npc.NPCName)
}

func (s *CatalogTestSuite) TestDungeonFallsBackToFirst() {
	d, err := s.catalog.Dungeon(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal("crypt", d.Rooms[0]["name"])

	d, err = s.catalog.Dungeon(s.ctx, 99)
	s.Require().NoError(err)
	s.Equal(1, d.DungeonID)
}

func (s *CatalogTestSuite) TestMissingFileIsNotFound() {
	_, err := s.catalog.Enemies(s.ctx)
	s.True(errors.IsNotFound(err))
}

func (s *CatalogTestSuite) TestCorruptFileIsMalformed() {
	path := filepath.Join(s.catalog.Root(), filepath.FromSlash(assets.MapsFile))
	s.Require().NoError(os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := s.catalog.Maps(s.ctx)
	s.True(errors.IsMalformed(err))
}

func (s *CatalogTestSuite) TestPlayersDir() {
	s.Equal(filepath.Join(s.catalog.Root(), "PLAY", "players"), s.catalog.PlayersDir())
}

func TestParseRef(t *testing.T) {
	ref := assets.ParseRef("12")
	id, ok := ref.ID()
	if !ok || id != 12 {
		t.Fatalf("expected id ref 12, got %v %v", id, ok)
	}
	if ref.String() != "12" {
		t.Fatalf("unexpected key %q", ref.String())
	}
	if _, ok := assets.ParseRef("Sword").ID(); ok {
		t.Fatal("name ref reported as id")
	}
}
