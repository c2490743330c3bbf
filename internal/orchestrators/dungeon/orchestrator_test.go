package dungeon_test

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/orchestrators/dungeon"
	clockmock "github.com/KirkDiggler/rpg-sim/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sim/internal/pkg/roller"
	"github.com/KirkDiggler/rpg-sim/internal/repositories/dungeons"
	"github.com/KirkDiggler/rpg-sim/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *clockmock.MockClock
	repo      *dungeons.InMemoryRepository
	svc       dungeon.Service
	ctx       context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func rooms(n int) []entities.Room {
	out := make([]entities.Room, n)
	for i := range out {
		out[i] = entities.Room{"name": fmt.Sprintf("room-%d", i)}
	}
	return out
}

func names(rs []entities.Room) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r["name"].(string)
	}
	return out
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = clockmock.NewMockClock(s.ctrl)
	s.repo = dungeons.NewInMemory()
	s.ctx = context.Background()

	catalog := testutils.CreateTestCatalog(s.T(), testutils.Assets{
		Dungeons: []entities.Dungeon{
			{DungeonID: 1, DungeonName: "Crypt", Rooms: rooms(8)},
			{DungeonID: 2, DungeonName: "Empty"},
		},
	})

	svc, err := dungeon.NewOrchestrator(&dungeon.Config{
		DungeonRepo: s.repo,
		Catalog:     catalog,
		Roller:      roller.NewSeeded(99),
		IDGenerator: idgen.NewSequential("dungeon"),
		Clock:       s.mockClock,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestGenerateIsSeeded() {
	a, err := s.svc.Generate(s.ctx, &dungeon.GenerateInput{DungeonID: 1, Seed: 1234})
	s.Require().NoError(err)
	b, err := s.svc.Generate(s.ctx, &dungeon.GenerateInput{DungeonID: 1, Seed: 1234})
	s.Require().NoError(err)

	s.NotEqual(a.Dungeon.InstanceID, b.Dungeon.InstanceID)
	s.Equal(int64(1234), a.Dungeon.Seed)
	s.Equal(names(a.Dungeon.Rooms), names(b.Dungeon.Rooms))
	s.ElementsMatch(names(rooms(8)), names(a.Dungeon.Rooms))
}

func (s *OrchestratorTestSuite) TestGenerateDrawsSeedAndFallsBack() {
	out, err := s.svc.Generate(s.ctx, &dungeon.GenerateInput{DungeonID: 42})
	s.Require().NoError(err)
	s.Equal(1, out.Dungeon.DungeonID)
	s.GreaterOrEqual(out.Dungeon.Seed, int64(1))
	s.LessOrEqual(out.Dungeon.Seed, int64(dungeon.MaxSeed))

	got, err := s.svc.Get(s.ctx, &dungeon.GetInput{InstanceID: out.Dungeon.InstanceID})
	s.Require().NoError(err)
	s.Equal(out.Dungeon.Rooms, got.Dungeon.Rooms)
}

func (s *OrchestratorTestSuite) TestRandomizeRoomOrderIsPermutation() {
	input := rooms(12)
	out, err := s.svc.RandomizeRoomOrder(s.ctx, &dungeon.RandomizeRoomOrderInput{Rooms: input, Seed: 5})
	s.Require().NoError(err)

	s.Len(out.Rooms, 12)
	got := names(out.Rooms)
	want := names(input)
	sort.Strings(got)
	sort.Strings(want)
	s.Equal(want, got)
	s.Equal("room-0", input[0]["name"], "input is left untouched")
}

func (s *OrchestratorTestSuite) TestRegenerateReplacesInstances() {
	_, err := s.svc.Generate(s.ctx, &dungeon.GenerateInput{DungeonID: 1, Seed: 3})
	s.Require().NoError(err)
	_, err = s.svc.Generate(s.ctx, &dungeon.GenerateInput{DungeonID: 1, Seed: 4})
	s.Require().NoError(err)
	other, err := s.svc.Generate(s.ctx, &dungeon.GenerateInput{DungeonID: 2, Seed: 4})
	s.Require().NoError(err)

	out, err := s.svc.Regenerate(s.ctx, &dungeon.RegenerateInput{DungeonID: 1})
	s.Require().NoError(err)
	s.Equal(2, out.Removed)

	listOut, err := s.repo.List(s.ctx, &dungeons.ListInput{})
	s.Require().NoError(err)
	s.Len(listOut.Dungeons, 2)

	_, err = s.svc.Get(s.ctx, &dungeon.GetInput{InstanceID: other.Dungeon.InstanceID})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestSpawnRooms() {
	s.mockClock.EXPECT().Now().Return(time.UnixMilli(5000))
	gen, err := s.svc.Generate(s.ctx, &dungeon.GenerateInput{DungeonID: 1, Seed: 8})
	s.Require().NoError(err)

	out, err := s.svc.SpawnRooms(s.ctx, &dungeon.SpawnRoomsInput{InstanceID: gen.Dungeon.InstanceID})
	s.Require().NoError(err)
	s.Require().Len(out.Rooms, 8)
	seen := map[any]bool{}
	for _, r := range out.Rooms {
		s.Equal(int64(5000), r[dungeon.RoomKeySpawnedAt])
		seen[r[dungeon.RoomKeyInstanceID]] = true
	}
	s.Len(seen, 8)

	stored, err := s.svc.Get(s.ctx, &dungeon.GetInput{InstanceID: gen.Dungeon.InstanceID})
	s.Require().NoError(err)
	s.NotContains(stored.Dungeon.Rooms[0], dungeon.RoomKeySpawnedAt)
}

func (s *OrchestratorTestSuite) TestReset() {
	gen, err := s.svc.Generate(s.ctx, &dungeon.GenerateInput{DungeonID: 1, Seed: 8})
	s.Require().NoError(err)

	out, err := s.svc.Reset(s.ctx, &dungeon.ResetInput{InstanceID: gen.Dungeon.InstanceID})
	s.Require().NoError(err)
	s.True(out.Success)
	s.ElementsMatch(names(gen.Dungeon.Rooms), names(out.Dungeon.Rooms))

	out, err = s.svc.Reset(s.ctx, &dungeon.ResetInput{InstanceID: "missing"})
	s.Require().NoError(err)
	s.False(out.Success)

	_, err = s.svc.Get(s.ctx, &dungeon.GetInput{InstanceID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestValidateLayout() {
	valid, err := s.svc.ValidateLayout(s.ctx, &dungeon.ValidateLayoutInput{Dungeon: &entities.Dungeon{Rooms: rooms(1)}})
	s.Require().NoError(err)
	s.True(valid.Valid)

	valid, err = s.svc.ValidateLayout(s.ctx, &dungeon.ValidateLayoutInput{Dungeon: &entities.Dungeon{}})
	s.Require().NoError(err)
	s.False(valid.Valid)
}

func (s *OrchestratorTestSuite) TestGenerateSeed() {
	out, err := s.svc.GenerateSeed(s.ctx, &dungeon.GenerateSeedInput{})
	s.Require().NoError(err)
	s.Positive(out.Seed)
}
