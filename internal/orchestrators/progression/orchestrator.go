// Package progression implements the progression orchestrator: every
// game-facing number is derived here from the persisted habit collection
// and the snooze-penalty ledger. All operations are pure reads.
package progression

//go:generate mockgen -destination=mock/mock_service.go -package=progressionmock github.com/statmaxer/statmaxer/internal/orchestrators/progression Service

import (
	"context"
	"time"

	"github.com/statmaxer/statmaxer/internal/entities"
	"github.com/statmaxer/statmaxer/internal/errors"
	"github.com/statmaxer/statmaxer/internal/pkg/clock"
	habitrepo "github.com/statmaxer/statmaxer/internal/repositories/habit"
	playerrepo "github.com/statmaxer/statmaxer/internal/repositories/player"
)

// Service defines the interface for progression reads
type Service interface {
	// GetHabitProgress derives completed-day count and goal progress for
	// one habit; zero values for a missing habit
	GetHabitProgress(ctx context.Context, input *GetHabitProgressInput) (*GetHabitProgressOutput, error)

	// GetTotalXP sums completed days × reward across habits, minus the
	// snooze penalty, clamped at zero
	GetTotalXP(ctx context.Context, input *GetTotalXPInput) (*GetTotalXPOutput, error)

	// GetLevel derives the player level and level-band progress
	GetLevel(ctx context.Context, input *GetLevelInput) (*GetLevelOutput, error)

	// GetStreak reports the best current run across all habits and the
	// display multiplier
	GetStreak(ctx context.Context, input *GetStreakInput) (*GetStreakOutput, error)

	// GetCategoryStats sums earned XP per fixed category
	GetCategoryStats(ctx context.Context, input *GetCategoryStatsInput) (*GetCategoryStatsOutput, error)

	// GetStats derives the whole dashboard in one read
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)
}

// Config holds the dependencies for the progression orchestrator
type Config struct {
	HabitRepo  habitrepo.Repository
	PlayerRepo playerrepo.Repository
	Clock      clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.HabitRepo == nil {
		vb.RequiredField("HabitRepo")
	}
	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	habitRepo  habitrepo.Repository
	playerRepo playerrepo.Repository
	clock      clock.Clock
}

// New creates a new progression orchestrator with the provided dependencies
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		habitRepo:  cfg.HabitRepo,
		playerRepo: cfg.PlayerRepo,
		clock:      c,
	}, nil
}

func (o *orchestrator) GetHabitProgress(ctx context.Context, input *GetHabitProgressInput) (*GetHabitProgressOutput, error) {
	if input == nil || input.HabitID == "" {
		return nil, errors.InvalidArgument("habit ID is required")
	}

	got, err := o.habitRepo.Get(ctx, habitrepo.GetInput{ID: input.HabitID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &GetHabitProgressOutput{}, nil
		}
		return nil, errors.Wrap(err, "failed to load habit")
	}

	return &GetHabitProgressOutput{
		CompletedDays:   CompletedDays(got.Habit),
		ProgressPercent: ProgressPercent(got.Habit),
	}, nil
}

func (o *orchestrator) GetTotalXP(ctx context.Context, _ *GetTotalXPInput) (*GetTotalXPOutput, error) {
	habits, penalty, err := o.loadState(ctx)
	if err != nil {
		return nil, err
	}
	return &GetTotalXPOutput{TotalXP: totalXP(habits, penalty)}, nil
}

func (o *orchestrator) GetLevel(ctx context.Context, _ *GetLevelInput) (*GetLevelOutput, error) {
	habits, penalty, err := o.loadState(ctx)
	if err != nil {
		return nil, err
	}

	xp := totalXP(habits, penalty)
	level := LevelForXP(xp)
	return &GetLevelOutput{
		Level:           level,
		XPForNextLevel:  XPForLevel(level),
		ProgressPercent: LevelProgressPercent(xp),
	}, nil
}

func (o *orchestrator) GetStreak(ctx context.Context, _ *GetStreakInput) (*GetStreakOutput, error) {
	listed, err := o.habitRepo.List(ctx, habitrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list habits")
	}

	streak := bestStreak(listed.Habits, o.clock.Now())
	return &GetStreakOutput{
		Streak:     streak,
		Multiplier: MultiplierForStreak(streak),
	}, nil
}

func (o *orchestrator) GetCategoryStats(ctx context.Context, _ *GetCategoryStatsInput) (*GetCategoryStatsOutput, error) {
	listed, err := o.habitRepo.List(ctx, habitrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list habits")
	}
	return &GetCategoryStatsOutput{Stats: categoryStats(listed.Habits)}, nil
}

func (o *orchestrator) GetStats(ctx context.Context, _ *GetStatsInput) (*GetStatsOutput, error) {
	habits, penalty, err := o.loadState(ctx)
	if err != nil {
		return nil, err
	}

	name, err := o.playerRepo.GetName(ctx, playerrepo.GetNameInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read player name")
	}

	xp := totalXP(habits, penalty)
	level := LevelForXP(xp)
	streak := bestStreak(habits, o.clock.Now())

	totalCompleted := 0
	for _, h := range habits {
		totalCompleted += CompletedDays(h)
	}

	return &GetStatsOutput{
		TotalXP:        xp,
		Level:          level,
		XPForNextLevel: XPForLevel(level),
		LevelProgress:  LevelProgressPercent(xp),
		Streak:         streak,
		XPMultiplier:   MultiplierForStreak(streak),
		TotalCompleted: totalCompleted,
		CategoryStats:  categoryStats(habits),
		SnoozePenalty:  penalty,
		PlayerName:     name.Name,
	}, nil
}

func (o *orchestrator) loadState(ctx context.Context) ([]*entities.Habit, int, error) {
	listed, err := o.habitRepo.List(ctx, habitrepo.ListInput{})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list habits")
	}

	penalty, err := o.playerRepo.GetPenalty(ctx, playerrepo.GetPenaltyInput{})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to read snooze penalty")
	}

	return listed.Habits, penalty.Penalty, nil
}

// totalXP is the aggregate formula: Σ(completedDays × xpReward) minus
// the snooze penalty, never negative
func totalXP(habits []*entities.Habit, penalty int) int {
	earned := 0
	for _, h := range habits {
		earned += CompletedDays(h) * h.XPReward
	}

	xp := earned - penalty
	if xp < 0 {
		return 0
	}
	return xp
}

// bestStreak reports the maximum current streak across habits
func bestStreak(habits []*entities.Habit, today time.Time) int {
	best := 0
	for _, h := range habits {
		if s := StreakFrom(h, today); s > best {
			best = s
		}
	}
	return best
}

// categoryStats sums earned XP per fixed category. Every category is
// present in the result, zero when unrepresented.
func categoryStats(habits []*entities.Habit) map[entities.Category]int {
	stats := make(map[entities.Category]int, len(entities.Categories()))
	for _, c := range entities.Categories() {
		stats[c] = 0
	}

	for _, h := range habits {
		stats[h.Category] += CompletedDays(h) * h.XPReward
	}
	return stats
}
