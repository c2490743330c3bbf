package enemies_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sim/internal/entities"
	"github.com/KirkDiggler/rpg-sim/internal/errors"
	"github.com/KirkDiggler/rpg-sim/internal/repositories/enemies"
)

type InMemoryTestSuite struct {
	suite.Suite
	repo *enemies.InMemoryRepository
	ctx  context.Context
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryTestSuite))
}

func (s *InMemoryTestSuite) SetupTest() {
	s.repo = enemies.NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemoryTestSuite) spawn(id string, hp int) {
	e := entities.NewEnemy(&entities.EnemyTemplate{Stats: entities.Stats{entities.StatHP: hp}}, id, nil)
	_, err := s.repo.Save(s.ctx, &enemies.SaveInput{Enemy: e})
	s.Require().NoError(err)
}

func (s *InMemoryTestSuite) TestListKeepsSpawnOrder() {
	s.spawn("c", 1)
	s.spawn("a", 1)
	s.spawn("b", 1)
	s.spawn("a", 5)

	out, err := s.repo.List(s.ctx, &enemies.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Enemies, 3)
	s.Equal("c", out.Enemies[0].InstanceID)
	s.Equal("a", out.Enemies[1].InstanceID)
	s.Equal(5, out.Enemies[1].HP())
	s.Equal("b", out.Enemies[2].InstanceID)
}

func (s *InMemoryTestSuite) TestGetReturnsCopy() {
	s.spawn("a", 10)

	out, err := s.repo.Get(s.ctx, &enemies.GetInput{InstanceID: "a"})
	s.Require().NoError(err)
	out.Enemy.Stats[entities.StatHP] = 0

	again, err := s.repo.Get(s.ctx, &enemies.GetInput{InstanceID: "a"})
	s.Require().NoError(err)
	s.Equal(10, again.Enemy.HP())
}

func (s *InMemoryTestSuite) TestDeleteRemovesInstance() {
	s.spawn("a", 10)
	s.spawn("b", 10)

	_, err := s.repo.Delete(s.ctx, &enemies.DeleteInput{InstanceID: "a"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, &enemies.GetInput{InstanceID: "a"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, &enemies.DeleteInput{InstanceID: "a"})
	s.True(errors.IsNotFound(err))

	out, err := s.repo.List(s.ctx, &enemies.ListInput{})
	s.Require().NoError(err)
	s.Len(out.Enemies, 1)
}

func (s *InMemoryTestSuite) TestSaveValidates() {
	_, err := s.repo.Save(s.ctx, &enemies.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, &enemies.SaveInput{Enemy: &entities.Enemy{}})
	s.True(errors.IsInvalidArgument(err))
}
