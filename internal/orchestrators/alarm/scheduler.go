// Package alarm implements the alarm scheduler. It keeps one pending
// wake-up per eligible habit, re-arms for the next day after firing, and
// runs the snooze state machine with its hardcore-denial branch.
package alarm

//go:generate mockgen -destination=mock/mock_service.go -package=alarmmock github.com/statmaxer/statmaxer/internal/orchestrators/alarm Service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/statmaxer/statmaxer/internal/entities"
	"github.com/statmaxer/statmaxer/internal/errors"
	"github.com/statmaxer/statmaxer/internal/notifications"
	habitorch "github.com/statmaxer/statmaxer/internal/orchestrators/habit"
	"github.com/statmaxer/statmaxer/internal/pkg/clock"
	habitrepo "github.com/statmaxer/statmaxer/internal/repositories/habit"
	playerrepo "github.com/statmaxer/statmaxer/internal/repositories/player"
)

const (
	// SnoozePenaltyXP is deducted from the ledger on every snooze, and
	// on hardcore denials
	SnoozePenaltyXP = 5

	// SnoozeDelay is the one-off wake-up delay after an allowed snooze
	SnoozeDelay = 10 * time.Minute
)

// Service defines the interface for alarm scheduling
type Service interface {
	// ScheduleAll cancels every pending wake-up and re-arms one per
	// eligible habit. Idempotent: two passes with no state change leave
	// exactly one pending wake-up per eligible habit.
	ScheduleAll(ctx context.Context, input *ScheduleAllInput) (*ScheduleAllOutput, error)

	// Reschedule cancels a habit's wake-ups and re-evaluates it
	Reschedule(ctx context.Context, input *RescheduleInput) (*RescheduleOutput, error)

	// CancelAll discards every pending wake-up
	CancelAll(ctx context.Context, input *CancelAllInput) (*CancelAllOutput, error)

	// HandleAction applies a complete/snooze action delivered by the
	// notification host, possibly after a relaunch
	HandleAction(ctx context.Context, input *HandleActionInput) (*HandleActionOutput, error)

	// RequestPermission asks the host for the notification grant.
	// Scheduling proceeds regardless of the answer.
	RequestPermission(ctx context.Context, input *RequestPermissionInput) (*RequestPermissionOutput, error)
}

// Config holds the dependencies for the alarm scheduler
type Config struct {
	HabitRepo  habitrepo.Repository
	PlayerRepo playerrepo.Repository
	Store      habitorch.Service
	Bridge     notifications.Bridge
	Clock      clock.Clock
	Logger     *slog.Logger
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
	if c.Store == nil {
		vb.RequiredField("Store")
	}
	if c.Bridge == nil {
		vb.RequiredField("Bridge")
	}

	return vb.Build()
}

// Scheduler maintains the live mapping from habit id to its pending
// wake-up. Timer callbacks run on their own goroutines, so the timer
// maps sit behind a mutex.
type Scheduler struct {
	habitRepo  habitrepo.Repository
	playerRepo playerrepo.Repository
	store      habitorch.Service
	bridge     notifications.Bridge
	clock      clock.Clock
	logger     *slog.Logger

	mu      sync.Mutex
	alarms  map[string]clock.Timer // daily wake-up per habit
	snoozes map[string]clock.Timer // one-off snooze wake-ups, independent of the daily entry
}

// New creates a new alarm scheduler with the provided dependencies
func New(cfg *Config) (*Scheduler, error) {
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
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		habitRepo:  cfg.HabitRepo,
		playerRepo: cfg.PlayerRepo,
		store:      cfg.Store,
		bridge:     cfg.Bridge,
		clock:      c,
		logger:     logger,
		alarms:     make(map[string]clock.Timer),
		snoozes:    make(map[string]clock.Timer),
	}, nil
}

// Compile-time check that Scheduler implements Service
var _ Service = (*Scheduler)(nil)

// Subscribe wires the scheduler to store-change events: any habit
// mutation re-evaluates that habit, a reset cancels everything.
func (s *Scheduler) Subscribe(bus events.EventBus) {
	onHabitChange := func(ctx context.Context, e events.Event) error {
		src := e.Source()
		if src == nil {
			return nil
		}
		_, err := s.Reschedule(ctx, &RescheduleInput{HabitID: src.GetID()})
		return err
	}

	bus.SubscribeFunc(habitorch.EventHabitCreated, 0, onHabitChange)
	bus.SubscribeFunc(habitorch.EventHabitUpdated, 0, onHabitChange)
	bus.SubscribeFunc(habitorch.EventHabitDeleted, 0, onHabitChange)
	bus.SubscribeFunc(habitorch.EventStoreReset, 0, func(ctx context.Context, _ events.Event) error {
		_, err := s.CancelAll(ctx, &CancelAllInput{})
		return err
	})
}

// NextOccurrence returns the next wall-clock occurrence of an alarm time
// strictly in the future: today's if it has not passed yet, otherwise
// tomorrow's.
func NextOccurrence(now time.Time, alarmTime string) (time.Time, error) {
	hour, minute, err := entities.ParseAlarmTime(alarmTime)
	if err != nil {
		return time.Time{}, err
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next, nil
}

func (s *Scheduler) ScheduleAll(ctx context.Context, _ *ScheduleAllInput) (*ScheduleAllOutput, error) {
	s.cancelAllTimers()

	if err := s.bridge.CancelAllPending(ctx); err != nil {
		s.logger.Warn("failed to clear pending notifications", "error", err)
	}

	listed, err := s.habitRepo.List(ctx, habitrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list habits")
	}

	out := &ScheduleAllOutput{}
	for _, h := range listed.Habits {
		if !h.AlarmEligible() {
			continue
		}
		if err := s.arm(h); err != nil {
			// One bad alarm must not abort the rest of the pass
			s.logger.Error("failed to schedule alarm", "habit_id", h.ID, "habit", h.Name, "error", err)
			out.Failed++
			continue
		}
		out.Armed++
	}

	return out, nil
}

func (s *Scheduler) Reschedule(ctx context.Context, input *RescheduleInput) (*RescheduleOutput, error) {
	if input == nil || input.HabitID == "" {
		return nil, errors.InvalidArgument("habit ID is required")
	}

	s.cancelTimers(input.HabitID)

	got, err := s.habitRepo.Get(ctx, habitrepo.GetInput{ID: input.HabitID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &RescheduleOutput{Armed: false}, nil
		}
		return nil, errors.Wrap(err, "failed to load habit")
	}

	if !got.Habit.AlarmEligible() {
		return &RescheduleOutput{Armed: false}, nil
	}

	if err := s.arm(got.Habit); err != nil {
		return nil, errors.Wrapf(err, "failed to arm alarm for habit %s", input.HabitID)
	}
	return &RescheduleOutput{Armed: true}, nil
}

func (s *Scheduler) CancelAll(ctx context.Context, _ *CancelAllInput) (*CancelAllOutput, error) {
	cancelled := s.cancelAllTimers()

	if err := s.bridge.CancelAllPending(ctx); err != nil {
		s.logger.Warn("failed to clear pending notifications", "error", err)
	}

	return &CancelAllOutput{Cancelled: cancelled}, nil
}

func (s *Scheduler) HandleAction(ctx context.Context, input *HandleActionInput) (*HandleActionOutput, error) {
	if input == nil || input.HabitID == "" {
		return nil, errors.InvalidArgument("habit ID is required")
	}

	got, err := s.habitRepo.Get(ctx, habitrepo.GetInput{ID: input.HabitID})
	if err != nil {
		if errors.IsNotFound(err) {
			// Stale action, e.g. delivered after the habit was deleted
			return &HandleActionOutput{Found: false}, nil
		}
		return nil, errors.Wrap(err, "failed to load habit")
	}
	h := got.Habit

	switch input.Action {
	case notifications.ActionComplete:
		toggled, err := s.store.ToggleDay(ctx, &habitorch.ToggleDayInput{
			HabitID: h.ID,
			Day:     s.clock.Now().Day(),
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to toggle completion")
		}
		return &HandleActionOutput{Found: true, Checked: toggled.Checked}, nil

	case notifications.ActionSnooze:
		return s.handleSnooze(ctx, h)

	default:
		return nil, errors.InvalidArgumentf("unknown action: %q", input.Action)
	}
}

func (s *Scheduler) RequestPermission(ctx context.Context, _ *RequestPermissionInput) (*RequestPermissionOutput, error) {
	perm, err := s.bridge.RequestPermission(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to request notification permission")
	}
	if perm != notifications.PermissionGranted {
		s.logger.Info("notification permission not granted; alarms will fire silently")
	}
	return &RequestPermissionOutput{Granted: perm == notifications.PermissionGranted}, nil
}

// handleSnooze applies the penalty and either schedules the one-off
// snooze wake-up or, for hardcore alarms, refuses with a denial
// notification.
func (s *Scheduler) handleSnooze(ctx context.Context, h *entities.Habit) (*HandleActionOutput, error) {
	penalty, err := s.playerRepo.AddPenalty(ctx, playerrepo.AddPenaltyInput{Amount: SnoozePenaltyXP})
	if err != nil {
		return nil, errors.Wrap(err, "failed to apply snooze penalty")
	}

	if h.HardcoreAlarm {
		denial := &notifications.Notification{
			Title:   "💀 HARDCORE MODE",
			Body:    fmt.Sprintf("Snooze denied for %q! -%d XP penalty applied.", h.Name, SnoozePenaltyXP),
			Tag:     "hardcore-denial",
			Urgency: notifications.UrgencyNormal,
		}
		if err := s.bridge.Present(ctx, denial); err != nil {
			s.logger.Warn("failed to present denial notification", "habit_id", h.ID, "error", err)
		}
		return &HandleActionOutput{Found: true, Denied: true, Penalty: penalty.Penalty}, nil
	}

	s.mu.Lock()
	if t, ok := s.snoozes[h.ID]; ok {
		t.Stop()
	}
	habitID := h.ID
	s.snoozes[habitID] = s.clock.AfterFunc(SnoozeDelay, func() {
		s.snoozeFire(habitID)
	})
	s.mu.Unlock()

	return &HandleActionOutput{Found: true, Penalty: penalty.Penalty}, nil
}

// arm schedules the next daily wake-up for a habit, replacing any
// existing entry so the one-pending-per-habit invariant holds
func (s *Scheduler) arm(h *entities.Habit) error {
	now := s.clock.Now()
	next, err := NextOccurrence(now, h.AlarmTime)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.alarms[h.ID]; ok {
		t.Stop()
	}
	habitID := h.ID
	s.alarms[habitID] = s.clock.AfterFunc(next.Sub(now), func() {
		s.fire(habitID)
	})
	return nil
}

// fire presents the alarm notification and immediately re-arms for the
// following day, whether or not the user acts on it
func (s *Scheduler) fire(habitID string) {
	ctx := context.Background()

	s.mu.Lock()
	delete(s.alarms, habitID)
	s.mu.Unlock()

	got, err := s.habitRepo.Get(ctx, habitrepo.GetInput{ID: habitID})
	if err != nil {
		if !errors.IsNotFound(err) {
			s.logger.Error("failed to load habit at fire time", "habit_id", habitID, "error", err)
		}
		return
	}
	h := got.Habit
	if !h.AlarmEligible() {
		return
	}

	if err := s.arm(h); err != nil {
		s.logger.Error("failed to re-arm alarm", "habit_id", habitID, "error", err)
	}

	if err := s.bridge.Present(ctx, alarmNotification(h)); err != nil {
		s.logger.Warn("failed to present alarm notification", "habit_id", habitID, "error", err)
	}
}

// snoozeFire re-presents the alarm after the snooze delay. The daily
// wake-up is untouched; this is a one-off.
func (s *Scheduler) snoozeFire(habitID string) {
	ctx := context.Background()

	s.mu.Lock()
	delete(s.snoozes, habitID)
	s.mu.Unlock()

	got, err := s.habitRepo.Get(ctx, habitrepo.GetInput{ID: habitID})
	if err != nil {
		if !errors.IsNotFound(err) {
			s.logger.Error("failed to load habit at snooze fire time", "habit_id", habitID, "error", err)
		}
		return
	}
	if !got.Habit.AlarmEligible() {
		return
	}

	if err := s.bridge.Present(ctx, alarmNotification(got.Habit)); err != nil {
		s.logger.Warn("failed to present snoozed notification", "habit_id", habitID, "error", err)
	}
}

// cancelTimers discards both wake-ups for one habit
func (s *Scheduler) cancelTimers(habitID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.alarms[habitID]; ok {
		t.Stop()
		delete(s.alarms, habitID)
	}
	if t, ok := s.snoozes[habitID]; ok {
		t.Stop()
		delete(s.snoozes, habitID)
	}
}

// cancelAllTimers discards every wake-up and reports how many daily
// alarms were pending
func (s *Scheduler) cancelAllTimers() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cancelled := len(s.alarms)
	for id, t := range s.alarms {
		t.Stop()
		delete(s.alarms, id)
	}
	for id, t := range s.snoozes {
		t.Stop()
		delete(s.snoozes, id)
	}
	return cancelled
}

// PendingAlarms reports the number of habits holding a daily wake-up
func (s *Scheduler) PendingAlarms() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.alarms)
}

// PendingSnoozes reports the number of one-off snooze wake-ups
func (s *Scheduler) PendingSnoozes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.snoozes)
}

// alarmNotification builds the quest alert for a habit
func alarmNotification(h *entities.Habit) *notifications.Notification {
	body := fmt.Sprintf("Time to complete: %s", h.Name)
	urgency := notifications.UrgencyNormal
	actions := []notifications.Action{notifications.ActionComplete, notifications.ActionSnooze}

	if h.HardcoreAlarm {
		body += "\n💀 HARDCORE MODE - No snoozing!"
		urgency = notifications.UrgencyCritical
	}

	return &notifications.Notification{
		Title:   fmt.Sprintf("⚔️ Quest: %s", h.Name),
		Body:    body,
		Tag:     fmt.Sprintf("habit-%s", h.ID),
		Actions: actions,
		Urgency: urgency,
	}
}
