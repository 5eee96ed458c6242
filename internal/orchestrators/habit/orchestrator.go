// Package habit implements the habit store orchestrator. It owns every
// mutation of the habit collection and player state, persists through the
// repositories, and publishes a change event after each mutation.
package habit

//go:generate mockgen -destination=mock/mock_service.go -package=habitmock github.com/statmaxer/statmaxer/internal/orchestrators/habit Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/statmaxer/statmaxer/internal/entities"
	"github.com/statmaxer/statmaxer/internal/errors"
	"github.com/statmaxer/statmaxer/internal/pkg/clock"
	"github.com/statmaxer/statmaxer/internal/pkg/idgen"
	habitrepo "github.com/statmaxer/statmaxer/internal/repositories/habit"
	playerrepo "github.com/statmaxer/statmaxer/internal/repositories/player"
)

// Service defines the interface for habit store operations
type Service interface {
	// AddHabit creates a habit with a fresh unique id
	AddHabit(ctx context.Context, input *AddHabitInput) (*AddHabitOutput, error)

	// DeleteHabit removes a habit; a missing id is a no-op
	DeleteHabit(ctx context.Context, input *DeleteHabitInput) (*DeleteHabitOutput, error)

	// ToggleDay flips a day's completion state in the current display month
	ToggleDay(ctx context.Context, input *ToggleDayInput) (*ToggleDayOutput, error)

	// IsDayChecked reads a day's completion state, false for missing habit or day
	IsDayChecked(ctx context.Context, input *IsDayCheckedInput) (*IsDayCheckedOutput, error)

	// IsTodayChecked reads today's completion state
	IsTodayChecked(ctx context.Context, input *IsTodayCheckedInput) (*IsTodayCheckedOutput, error)

	// ListHabits returns the collection in insertion order
	ListHabits(ctx context.Context, input *ListHabitsInput) (*ListHabitsOutput, error)

	// GetHabit returns a habit or nil when absent
	GetHabit(ctx context.Context, input *GetHabitInput) (*GetHabitOutput, error)

	// SetActive flips a habit's active flag
	SetActive(ctx context.Context, input *SetActiveInput) (*SetActiveOutput, error)

	// GetPlayerName reads the display name, defaulted when unset
	GetPlayerName(ctx context.Context, input *GetPlayerNameInput) (*GetPlayerNameOutput, error)

	// SetPlayerName stores the display name, coercing empty to the default
	SetPlayerName(ctx context.Context, input *SetPlayerNameInput) (*SetPlayerNameOutput, error)

	// ResetAll clears habits, player name, and the snooze-penalty ledger
	ResetAll(ctx context.Context, input *ResetAllInput) (*ResetAllOutput, error)

	// SeedDefaults populates an empty collection with the starter habits
	SeedDefaults(ctx context.Context, input *SeedDefaultsInput) (*SeedDefaultsOutput, error)
}

// Config holds the dependencies for the habit orchestrator
type Config struct {
	HabitRepo   habitrepo.Repository
	PlayerRepo  playerrepo.Repository
	IDGenerator idgen.Generator
	EventBus    events.EventBus
	Clock       clock.Clock
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
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	habitRepo  habitrepo.Repository
	playerRepo playerrepo.Repository
	idGen      idgen.Generator
	eventBus   events.EventBus
	clock      clock.Clock
}

// New creates a new habit orchestrator with the provided dependencies
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
		idGen:      cfg.IDGenerator,
		eventBus:   cfg.EventBus,
		clock:      c,
	}, nil
}

func (o *orchestrator) AddHabit(ctx context.Context, input *AddHabitInput) (*AddHabitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if !input.Category.IsValid() {
		vb.InvalidField("category", string(input.Category))
	}
	errors.ValidatePositive("xp_reward", input.XPReward, vb)
	errors.ValidatePositive("goal_value", input.GoalValue, vb)
	if input.AlarmTime != "" {
		if _, _, err := entities.ParseAlarmTime(input.AlarmTime); err != nil {
			vb.InvalidField("alarm_time", input.AlarmTime)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	h := &entities.Habit{
		ID:            o.idGen.Generate(),
		Name:          strings.TrimSpace(input.Name),
		Icon:          input.Icon,
		Category:      input.Category,
		XPReward:      input.XPReward,
		GoalValue:     input.GoalValue,
		AlarmTime:     input.AlarmTime,
		HardcoreAlarm: input.HardcoreAlarm,
		DailyLogs:     make(map[string]bool),
		IsActive:      true,
	}

	created, err := o.habitRepo.Create(ctx, habitrepo.CreateInput{Habit: h})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create habit")
	}

	o.publish(ctx, EventHabitCreated, created.Habit)

	return &AddHabitOutput{Habit: created.Habit}, nil
}

func (o *orchestrator) DeleteHabit(ctx context.Context, input *DeleteHabitInput) (*DeleteHabitOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("habit ID is required")
	}

	if _, err := o.habitRepo.Delete(ctx, habitrepo.DeleteInput{ID: input.ID}); err != nil {
		if errors.IsNotFound(err) {
			return &DeleteHabitOutput{Found: false}, nil
		}
		return nil, errors.Wrap(err, "failed to delete habit")
	}

	o.publish(ctx, EventHabitDeleted, &entities.Habit{ID: input.ID})

	return &DeleteHabitOutput{Found: true}, nil
}

func (o *orchestrator) ToggleDay(ctx context.Context, input *ToggleDayInput) (*ToggleDayOutput, error) {
	if input == nil || input.HabitID == "" {
		return nil, errors.InvalidArgument("habit ID is required")
	}
	if input.Day < 1 || input.Day > 31 {
		return nil, errors.InvalidArgumentf("day out of range: %d", input.Day)
	}

	got, err := o.habitRepo.Get(ctx, habitrepo.GetInput{ID: input.HabitID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &ToggleDayOutput{Found: false, Checked: false}, nil
		}
		return nil, errors.Wrap(err, "failed to load habit")
	}

	h := got.Habit
	if h.DailyLogs == nil {
		h.DailyLogs = make(map[string]bool)
	}

	now := o.clock.Now()
	key := entities.DayKeyFor(now.Year(), now.Month(), input.Day)
	newState := !h.DailyLogs[key]
	h.DailyLogs[key] = newState

	if _, err := o.habitRepo.Update(ctx, habitrepo.UpdateInput{Habit: h}); err != nil {
		return nil, errors.Wrap(err, "failed to persist toggled day")
	}

	o.publish(ctx, EventHabitUpdated, h)

	return &ToggleDayOutput{Found: true, Checked: newState}, nil
}

func (o *orchestrator) IsDayChecked(ctx context.Context, input *IsDayCheckedInput) (*IsDayCheckedOutput, error) {
	if input == nil || input.HabitID == "" {
		return nil, errors.InvalidArgument("habit ID is required")
	}

	got, err := o.habitRepo.Get(ctx, habitrepo.GetInput{ID: input.HabitID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &IsDayCheckedOutput{Checked: false}, nil
		}
		return nil, errors.Wrap(err, "failed to load habit")
	}

	now := o.clock.Now()
	key := entities.DayKeyFor(now.Year(), now.Month(), input.Day)
	return &IsDayCheckedOutput{Checked: got.Habit.IsLogged(key)}, nil
}

func (o *orchestrator) IsTodayChecked(ctx context.Context, input *IsTodayCheckedInput) (*IsTodayCheckedOutput, error) {
	if input == nil || input.HabitID == "" {
		return nil, errors.InvalidArgument("habit ID is required")
	}

	out, err := o.IsDayChecked(ctx, &IsDayCheckedInput{
		HabitID: input.HabitID,
		Day:     o.clock.Now().Day(),
	})
	if err != nil {
		return nil, err
	}
	return &IsTodayCheckedOutput{Checked: out.Checked}, nil
}

func (o *orchestrator) ListHabits(ctx context.Context, _ *ListHabitsInput) (*ListHabitsOutput, error) {
	out, err := o.habitRepo.List(ctx, habitrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list habits")
	}
	return &ListHabitsOutput{Habits: out.Habits}, nil
}

func (o *orchestrator) GetHabit(ctx context.Context, input *GetHabitInput) (*GetHabitOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("habit ID is required")
	}

	got, err := o.habitRepo.Get(ctx, habitrepo.GetInput{ID: input.ID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &GetHabitOutput{Habit: nil}, nil
		}
		return nil, errors.Wrap(err, "failed to load habit")
	}
	return &GetHabitOutput{Habit: got.Habit}, nil
}

func (o *orchestrator) SetActive(ctx context.Context, input *SetActiveInput) (*SetActiveOutput, error) {
	if input == nil || input.HabitID == "" {
		return nil, errors.InvalidArgument("habit ID is required")
	}

	got, err := o.habitRepo.Get(ctx, habitrepo.GetInput{ID: input.HabitID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &SetActiveOutput{Found: false}, nil
		}
		return nil, errors.Wrap(err, "failed to load habit")
	}

	h := got.Habit
	if h.IsActive == input.IsActive {
		return &SetActiveOutput{Found: true}, nil
	}

	h.IsActive = input.IsActive
	if _, err := o.habitRepo.Update(ctx, habitrepo.UpdateInput{Habit: h}); err != nil {
		return nil, errors.Wrap(err, "failed to persist active flag")
	}

	o.publish(ctx, EventHabitUpdated, h)

	return &SetActiveOutput{Found: true}, nil
}

func (o *orchestrator) GetPlayerName(ctx context.Context, _ *GetPlayerNameInput) (*GetPlayerNameOutput, error) {
	out, err := o.playerRepo.GetName(ctx, playerrepo.GetNameInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read player name")
	}
	return &GetPlayerNameOutput{Name: out.Name}, nil
}

func (o *orchestrator) SetPlayerName(ctx context.Context, input *SetPlayerNameInput) (*SetPlayerNameOutput, error) {
	name := entities.DefaultPlayerName
	if input != nil && strings.TrimSpace(input.Name) != "" {
		name = strings.TrimSpace(input.Name)
	}

	if _, err := o.playerRepo.SetName(ctx, playerrepo.SetNameInput{Name: name}); err != nil {
		return nil, errors.Wrap(err, "failed to store player name")
	}
	return &SetPlayerNameOutput{}, nil
}

func (o *orchestrator) ResetAll(ctx context.Context, _ *ResetAllInput) (*ResetAllOutput, error) {
	deleted, err := o.habitRepo.DeleteAll(ctx, habitrepo.DeleteAllInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear habits")
	}

	if _, err := o.playerRepo.Reset(ctx, playerrepo.ResetInput{}); err != nil {
		return nil, errors.Wrap(err, "failed to reset player state")
	}

	o.publish(ctx, EventStoreReset, nil)

	return &ResetAllOutput{HabitsDeleted: deleted.Deleted}, nil
}

func (o *orchestrator) SeedDefaults(ctx context.Context, _ *SeedDefaultsInput) (*SeedDefaultsOutput, error) {
	existing, err := o.habitRepo.List(ctx, habitrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list habits")
	}
	if len(existing.Habits) > 0 {
		return &SeedDefaultsOutput{Seeded: false, Habits: existing.Habits}, nil
	}

	seeded := make([]*entities.Habit, 0, len(defaultHabits))
	for _, s := range defaultHabits {
		out, err := o.AddHabit(ctx, &AddHabitInput{
			Name:          s.name,
			Icon:          s.icon,
			Category:      s.category,
			XPReward:      s.xp,
			GoalValue:     DefaultGoalDays,
			AlarmTime:     s.alarm,
			HardcoreAlarm: s.hardcore,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to seed habit %q", s.name)
		}
		seeded = append(seeded, out.Habit)
	}

	return &SeedDefaultsOutput{Seeded: true, Habits: seeded}, nil
}

// publish emits a store-change event. Publish failures degrade the
// signal, never the mutation that already persisted.
func (o *orchestrator) publish(ctx context.Context, eventType string, source core.Entity) {
	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, source, nil)); err != nil {
		slog.Warn("failed to publish store event", "type", eventType, "error", err)
	}
}
