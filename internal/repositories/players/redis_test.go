package players_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/repositories/players"
	"github.com/KirkDiggler/rpg-sim/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    players.Repository
	cleanup func()
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := players.NewRedis(&players.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestSaveThenGet() {
	player := testutils.CreateTestPlayer(4)
	player.Cooldowns["Slash"] = 5000

	_, err := s.repo.Save(s.ctx, players.SaveInput{Player: player})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, players.GetInput{PlayerID: 4})
	s.Require().NoError(err)
	s.Equal(player.DisplayName, out.Player.DisplayName)
	s.Equal(int64(5000), out.Player.Cooldowns["Slash"])
	s.Equal(100, out.Player.Stats[entities.StatHP])
}

func (s *RedisRepositoryTestSuite) TestGetMissingIsNotFound() {
	_, err := s.repo.Get(s.ctx, players.GetInput{PlayerID: 9})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListIsSorted() {
	for _, id := range []int{5, 1, 3} {
		_, err := s.repo.Save(s.ctx, players.SaveInput{Player: testutils.CreateTestPlayer(id)})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, players.ListInput{})
	s.Require().NoError(err)
	s.Equal([]int{1, 3, 5}, out.PlayerIDs)
}

func TestRedisCorruptRecordIsMalformed(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClientWithContext(t, func(mr *miniredis.Miniredis) {
		_ = mr.Set("player:2", "{broken")
	})
	defer cleanup()

	repo, err := players.NewRedis(&players.RedisConfig{Client: client})
	if err != nil {
		t.Fatal(err)
	}

	_, err = repo.Get(context.Background(), players.GetInput{PlayerID: 2})
	if !errors.IsMalformed(err) {
		t.Fatalf("expected malformed error, got %v", err)
	}
}
