package player_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/statmaxer/statmaxer/internal/entities"
	"github.com/statmaxer/statmaxer/internal/errors"
	"github.com/statmaxer/statmaxer/internal/repositories/player"
	"github.com/statmaxer/statmaxer/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	cleanup   func()
	repo      player.Repository
	ctx       context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedisClientWithServer(s.T())
	s.miniRedis = mr
	s.cleanup = cleanup

	repo, err := player.NewRedis(&player.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestGetName() {
	s.Run("default when unset", func() {
		out, err := s.repo.GetName(s.ctx, player.GetNameInput{})
		s.Require().NoError(err)
		s.Equal(entities.DefaultPlayerName, out.Name)
	})

	s.Run("default when stored empty", func() {
		s.Require().NoError(s.miniRedis.Set("player:name", ""))

		out, err := s.repo.GetName(s.ctx, player.GetNameInput{})
		s.Require().NoError(err)
		s.Equal(entities.DefaultPlayerName, out.Name)
	})

	s.Run("stored name", func() {
		_, err := s.repo.SetName(s.ctx, player.SetNameInput{Name: "Shadow_Monarch"})
		s.Require().NoError(err)

		out, err := s.repo.GetName(s.ctx, player.GetNameInput{})
		s.Require().NoError(err)
		s.Equal("Shadow_Monarch", out.Name)
	})
}

func (s *RedisRepositoryTestSuite) TestSetName() {
	s.Run("trims whitespace", func() {
		_, err := s.repo.SetName(s.ctx, player.SetNameInput{Name: "  Arthur  "})
		s.Require().NoError(err)

		out, err := s.repo.GetName(s.ctx, player.GetNameInput{})
		s.Require().NoError(err)
		s.Equal("Arthur", out.Name)
	})

	s.Run("rejects empty name", func() {
		_, err := s.repo.SetName(s.ctx, player.SetNameInput{Name: "   "})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestPenalty() {
	s.Run("zero when unset", func() {
		out, err := s.repo.GetPenalty(s.ctx, player.GetPenaltyInput{})
		s.Require().NoError(err)
		s.Equal(0, out.Penalty)
	})

	s.Run("accumulates", func() {
		out, err := s.repo.AddPenalty(s.ctx, player.AddPenaltyInput{Amount: 5})
		s.Require().NoError(err)
		s.Equal(5, out.Penalty)

		out, err = s.repo.AddPenalty(s.ctx, player.AddPenaltyInput{Amount: 5})
		s.Require().NoError(err)
		s.Equal(10, out.Penalty)

		got, err := s.repo.GetPenalty(s.ctx, player.GetPenaltyInput{})
		s.Require().NoError(err)
		s.Equal(10, got.Penalty)
	})

	s.Run("rejects non-positive amounts", func() {
		_, err := s.repo.AddPenalty(s.ctx, player.AddPenaltyInput{Amount: 0})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))

		_, err = s.repo.AddPenalty(s.ctx, player.AddPenaltyInput{Amount: -5})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("negative stored value clamps to zero", func() {
		s.Require().NoError(s.miniRedis.Set("player:snooze_penalty", "-20"))

		out, err := s.repo.GetPenalty(s.ctx, player.GetPenaltyInput{})
		s.Require().NoError(err)
		s.Equal(0, out.Penalty)
	})
}

func (s *RedisRepositoryTestSuite) TestReset() {
	_, err := s.repo.SetName(s.ctx, player.SetNameInput{Name: "Arthur"})
	s.Require().NoError(err)
	_, err = s.repo.AddPenalty(s.ctx, player.AddPenaltyInput{Amount: 15})
	s.Require().NoError(err)

	_, err = s.repo.Reset(s.ctx, player.ResetInput{})
	s.Require().NoError(err)

	name, err := s.repo.GetName(s.ctx, player.GetNameInput{})
	s.Require().NoError(err)
	s.Equal(entities.DefaultPlayerName, name.Name)

	penalty, err := s.repo.GetPenalty(s.ctx, player.GetPenaltyInput{})
	s.Require().NoError(err)
	s.Equal(0, penalty.Penalty)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
