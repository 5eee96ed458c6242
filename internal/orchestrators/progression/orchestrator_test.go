package progression_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/statmaxer/statmaxer/internal/entities"
	"github.com/statmaxer/statmaxer/internal/errors"
	"github.com/statmaxer/statmaxer/internal/orchestrators/progression"
	"github.com/statmaxer/statmaxer/internal/pkg/clock"
	habitrepo "github.com/statmaxer/statmaxer/internal/repositories/habit"
	playerrepo "github.com/statmaxer/statmaxer/internal/repositories/player"
	"github.com/statmaxer/statmaxer/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	cleanup    func()
	clock      *clock.Manual
	habitRepo  habitrepo.Repository
	playerRepo playerrepo.Repository
	svc        progression.Service
	ctx        context.Context
	today      time.Time
}

func (s *OrchestratorTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	s.today = time.Date(2025, time.January, 15, 8, 0, 0, 0, time.UTC)
	s.clock = clock.NewManual(s.today)

	hr, err := habitrepo.NewRedis(&habitrepo.RedisConfig{Client: client, Clock: s.clock})
	s.Require().NoError(err)
	s.habitRepo = hr

	pr, err := playerrepo.NewRedis(&playerrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.playerRepo = pr

	svc, err := progression.New(&progression.Config{
		HabitRepo:  hr,
		PlayerRepo: pr,
		Clock:      s.clock,
	})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *OrchestratorTestSuite) createHabit(id string, xp int, completedOffsets ...int) *entities.Habit {
	h := testutils.HabitFixture(id)
	h.XPReward = xp
	testutils.LogDays(h, s.today, completedOffsets...)

	_, err := s.habitRepo.Create(s.ctx, habitrepo.CreateInput{Habit: h})
	s.Require().NoError(err)
	return h
}

func (s *OrchestratorTestSuite) TestGetHabitProgress() {
	s.Run("counts completed days toward the goal", func() {
		s.createHabit("habit_p", 10, 0, 1, 2, 3, 4)

		out, err := s.svc.GetHabitProgress(s.ctx, &progression.GetHabitProgressInput{HabitID: "habit_p"})
		s.Require().NoError(err)
		s.Equal(5, out.CompletedDays)
		s.InDelta(16.666, out.ProgressPercent, 0.01)
	})

	s.Run("zero values for a missing habit", func() {
		out, err := s.svc.GetHabitProgress(s.ctx, &progression.GetHabitProgressInput{HabitID: "habit_missing"})
		s.Require().NoError(err)
		s.Equal(0, out.CompletedDays)
		s.Equal(0.0, out.ProgressPercent)
	})

	s.Run("error on empty ID", func() {
		_, err := s.svc.GetHabitProgress(s.ctx, &progression.GetHabitProgressInput{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestGetTotalXP() {
	s.Run("sums completed days times reward", func() {
		s.createHabit("habit_a", 10, 0, 1, 2, 3, 4) // 50
		s.createHabit("habit_b", 20, 0, 1)          // 40

		out, err := s.svc.GetTotalXP(s.ctx, &progression.GetTotalXPInput{})
		s.Require().NoError(err)
		s.Equal(90, out.TotalXP)
	})

	s.Run("penalty deducted", func() {
		_, err := s.playerRepo.AddPenalty(s.ctx, playerrepo.AddPenaltyInput{Amount: 15})
		s.Require().NoError(err)

		out, err := s.svc.GetTotalXP(s.ctx, &progression.GetTotalXPInput{})
		s.Require().NoError(err)
		s.Equal(75, out.TotalXP)
	})

	s.Run("never below zero", func() {
		_, err := s.playerRepo.AddPenalty(s.ctx, playerrepo.AddPenaltyInput{Amount: 500})
		s.Require().NoError(err)

		out, err := s.svc.GetTotalXP(s.ctx, &progression.GetTotalXPInput{})
		s.Require().NoError(err)
		s.Equal(0, out.TotalXP)
	})
}

func (s *OrchestratorTestSuite) TestGetTotalXPEmptyStore() {
	out, err := s.svc.GetTotalXP(s.ctx, &progression.GetTotalXPInput{})
	s.Require().NoError(err)
	s.Equal(0, out.TotalXP)
}

func (s *OrchestratorTestSuite) TestGetLevel() {
	// 25 completed days x 10 XP = 250 total, squarely in level 2
	s.createHabit("habit_l", 10, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24)

	out, err := s.svc.GetLevel(s.ctx, &progression.GetLevelInput{})
	s.Require().NoError(err)
	s.Equal(2, out.Level)
	s.Equal(400, out.XPForNextLevel)
	s.Equal(50, out.ProgressPercent)
}

func (s *OrchestratorTestSuite) TestGetStreak() {
	s.Run("best run across habits, not a sum", func() {
		s.createHabit("habit_short", 10, 0, 1)
		s.createHabit("habit_long", 10, 0, 1, 2, 3)

		out, err := s.svc.GetStreak(s.ctx, &progression.GetStreakInput{})
		s.Require().NoError(err)
		s.Equal(4, out.Streak)
		s.Equal(progression.StreakMultiplier, out.Multiplier)
	})

	s.Run("multiplier stays base below threshold", func() {
		// Jump two days ahead: both streaks are now broken
		s.clock.SetNow(s.today.AddDate(0, 0, 2))

		out, err := s.svc.GetStreak(s.ctx, &progression.GetStreakInput{})
		s.Require().NoError(err)
		s.Equal(0, out.Streak)
		s.Equal(progression.BaseMultiplier, out.Multiplier)
	})
}

func (s *OrchestratorTestSuite) TestGetCategoryStats() {
	str := s.createHabit("habit_str", 20, 0, 1) // 40 strength

	intl := testutils.HabitFixture("habit_int")
	intl.Category = entities.CategoryIntelligence
	intl.XPReward = 15
	testutils.LogDays(intl, s.today, 0)
	_, err := s.habitRepo.Create(s.ctx, habitrepo.CreateInput{Habit: intl})
	s.Require().NoError(err)

	out, err := s.svc.GetCategoryStats(s.ctx, &progression.GetCategoryStatsInput{})
	s.Require().NoError(err)
	s.Equal(40, out.Stats[str.Category])
	s.Equal(15, out.Stats[entities.CategoryIntelligence])
	s.Equal(0, out.Stats[entities.CategoryDiscipline], "unrepresented category is present at zero")
	s.Len(out.Stats, 3)
}

func (s *OrchestratorTestSuite) TestGetStats() {
	s.createHabit("habit_1", 10, 0, 1, 2, 3, 4) // 50 XP earned, 5-day streak
	_, err := s.playerRepo.AddPenalty(s.ctx, playerrepo.AddPenaltyInput{Amount: 5})
	s.Require().NoError(err)
	_, err = s.playerRepo.SetName(s.ctx, playerrepo.SetNameInput{Name: "Arthur"})
	s.Require().NoError(err)

	out, err := s.svc.GetStats(s.ctx, &progression.GetStatsInput{})
	s.Require().NoError(err)

	s.Equal(45, out.TotalXP)
	s.Equal(1, out.Level)
	s.Equal(100, out.XPForNextLevel)
	s.Equal(45, out.LevelProgress)
	s.Equal(5, out.Streak)
	s.Equal(progression.StreakMultiplier, out.XPMultiplier)
	s.Equal(5, out.TotalCompleted)
	s.Equal(50, out.CategoryStats[entities.CategoryStrength], "penalty applies to the total, not categories")
	s.Equal(5, out.SnoozePenalty)
	s.Equal("Arthur", out.PlayerName)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
