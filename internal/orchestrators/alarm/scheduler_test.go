package alarm_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/statmaxer/statmaxer/internal/entities"
	"github.com/statmaxer/statmaxer/internal/errors"
	"github.com/statmaxer/statmaxer/internal/notifications"
	notificationsmock "github.com/statmaxer/statmaxer/internal/notifications/mock"
	"github.com/statmaxer/statmaxer/internal/orchestrators/alarm"
	habitorch "github.com/statmaxer/statmaxer/internal/orchestrators/habit"
	"github.com/statmaxer/statmaxer/internal/pkg/clock"
	"github.com/statmaxer/statmaxer/internal/pkg/idgen"
	habitrepo "github.com/statmaxer/statmaxer/internal/repositories/habit"
	playerrepo "github.com/statmaxer/statmaxer/internal/repositories/player"
	"github.com/statmaxer/statmaxer/internal/testutils"
)

type SchedulerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	cleanup    func()
	clock      *clock.Manual
	bridge     *notificationsmock.MockBridge
	habitRepo  habitrepo.Repository
	playerRepo playerrepo.Repository
	store      habitorch.Service
	scheduler  *alarm.Scheduler
	ctx        context.Context
	now        time.Time
}

// noopBus satisfies events.EventBus; these tests drive the scheduler
// directly rather than through bus subscriptions
type noopBus struct{}

func (noopBus) Publish(_ context.Context, _ events.Event) error            { return nil }
func (noopBus) Subscribe(_ string, _ events.Handler) string                { return "sub-id" }
func (noopBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string { return "sub-id" }
func (noopBus) Unsubscribe(_ string) error                                 { return nil }
func (noopBus) Clear(_ string)                                             {}
func (noopBus) ClearAll()                                                  {}

func (s *SchedulerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	s.now = time.Date(2025, time.January, 15, 8, 0, 0, 0, time.UTC)
	s.clock = clock.NewManual(s.now)
	s.bridge = notificationsmock.NewMockBridge(s.ctrl)

	hr, err := habitrepo.NewRedis(&habitrepo.RedisConfig{Client: client, Clock: s.clock})
	s.Require().NoError(err)
	s.habitRepo = hr

	pr, err := playerrepo.NewRedis(&playerrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.playerRepo = pr

	store, err := habitorch.New(&habitorch.Config{
		HabitRepo:   hr,
		PlayerRepo:  pr,
		IDGenerator: idgen.NewSequential("habit"),
		EventBus:    noopBus{},
		Clock:       s.clock,
	})
	s.Require().NoError(err)
	s.store = store

	sched, err := alarm.New(&alarm.Config{
		HabitRepo:  hr,
		PlayerRepo: pr,
		Store:      store,
		Bridge:     s.bridge,
		Clock:      s.clock,
	})
	s.Require().NoError(err)
	s.scheduler = sched
	s.ctx = context.Background()
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func (s *SchedulerTestSuite) createHabit(id, alarmTime string, hardcore bool) *entities.Habit {
	h := testutils.HabitFixture(id)
	h.AlarmTime = alarmTime
	h.HardcoreAlarm = hardcore

	_, err := s.habitRepo.Create(s.ctx, habitrepo.CreateInput{Habit: h})
	s.Require().NoError(err)
	return h
}

func TestNextOccurrence(t *testing.T) {
	now := time.Date(2025, time.January, 15, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		alarmTime string
		expected  time.Time
		wantErr   bool
	}{
		{
			name:      "later today",
			alarmTime: "09:30",
			expected:  time.Date(2025, time.January, 15, 9, 30, 0, 0, time.UTC),
		},
		{
			name:      "already passed rolls to tomorrow",
			alarmTime: "06:00",
			expected:  time.Date(2025, time.January, 16, 6, 0, 0, 0, time.UTC),
		},
		{
			name:      "exactly now rolls to tomorrow",
			alarmTime: "08:00",
			expected:  time.Date(2025, time.January, 16, 8, 0, 0, 0, time.UTC),
		},
		{
			name:      "invalid format",
			alarmTime: "late",
			wantErr:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := alarm.NextOccurrence(now, tc.alarmTime)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !next.Equal(tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, next)
			}
		})
	}
}

func (s *SchedulerTestSuite) TestScheduleAll() {
	s.createHabit("habit_armed", "09:00", false)
	s.createHabit("habit_no_alarm", "", false)

	inactive := testutils.HabitFixture("habit_inactive")
	inactive.AlarmTime = "10:00"
	inactive.IsActive = false
	_, err := s.habitRepo.Create(s.ctx, habitrepo.CreateInput{Habit: inactive})
	s.Require().NoError(err)

	s.bridge.EXPECT().CancelAllPending(gomock.Any()).Return(nil).AnyTimes()

	out, err := s.scheduler.ScheduleAll(s.ctx, &alarm.ScheduleAllInput{})
	s.Require().NoError(err)
	s.Equal(1, out.Armed)
	s.Equal(0, out.Failed)
	s.Equal(1, s.scheduler.PendingAlarms())

	s.Run("idempotent", func() {
		out, err := s.scheduler.ScheduleAll(s.ctx, &alarm.ScheduleAllInput{})
		s.Require().NoError(err)
		s.Equal(1, out.Armed)
		s.Equal(1, s.scheduler.PendingAlarms(), "re-running leaves exactly one wake-up per eligible habit")
	})
}

func (s *SchedulerTestSuite) TestScheduleAllIsolatesFailures() {
	s.createHabit("habit_good", "09:00", false)

	// A corrupt alarm time can only come from hand-edited state, but it
	// must not take down the other alarms
	bad := testutils.HabitFixture("habit_bad")
	bad.AlarmTime = "99:99"
	_, err := s.habitRepo.Create(s.ctx, habitrepo.CreateInput{Habit: bad})
	s.Require().NoError(err)

	s.bridge.EXPECT().CancelAllPending(gomock.Any()).Return(nil)

	out, err := s.scheduler.ScheduleAll(s.ctx, &alarm.ScheduleAllInput{})
	s.Require().NoError(err)
	s.Equal(1, out.Armed)
	s.Equal(1, out.Failed)
	s.Equal(1, s.scheduler.PendingAlarms())
}

func (s *SchedulerTestSuite) TestFireRearmsForNextDay() {
	s.createHabit("habit_gym", "09:00", false)

	s.bridge.EXPECT().CancelAllPending(gomock.Any()).Return(nil)
	_, err := s.scheduler.ScheduleAll(s.ctx, &alarm.ScheduleAllInput{})
	s.Require().NoError(err)

	var presented *notifications.Notification
	s.bridge.EXPECT().
		Present(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, n *notifications.Notification) {
			presented = n
		}).
		Return(nil)

	s.clock.Advance(time.Hour) // 09:00

	s.Require().NotNil(presented)
	s.Equal("⚔️ Quest: Gym", presented.Title)
	s.Equal("Time to complete: Gym", presented.Body)
	s.Equal("habit-habit_gym", presented.Tag)
	s.Equal(notifications.UrgencyNormal, presented.Urgency)
	s.ElementsMatch([]notifications.Action{notifications.ActionComplete, notifications.ActionSnooze}, presented.Actions)

	s.Equal(1, s.scheduler.PendingAlarms(), "re-armed for tomorrow before presenting")

	s.Run("fires again the next day", func() {
		s.bridge.EXPECT().Present(gomock.Any(), gomock.Any()).Return(nil)
		s.clock.Advance(24 * time.Hour)
		s.Equal(1, s.scheduler.PendingAlarms())
	})
}

func (s *SchedulerTestSuite) TestFireHardcoreNotification() {
	s.createHabit("habit_wake", "09:00", true)

	s.bridge.EXPECT().CancelAllPending(gomock.Any()).Return(nil)
	_, err := s.scheduler.ScheduleAll(s.ctx, &alarm.ScheduleAllInput{})
	s.Require().NoError(err)

	var presented *notifications.Notification
	s.bridge.EXPECT().
		Present(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, n *notifications.Notification) {
			presented = n
		}).
		Return(nil)

	s.clock.Advance(time.Hour)

	s.Require().NotNil(presented)
	s.Equal("⚔️ Quest: Gym", presented.Title)
	s.Contains(presented.Body, "💀 HARDCORE MODE - No snoozing!")
	s.Equal(notifications.UrgencyCritical, presented.Urgency)
}

func (s *SchedulerTestSuite) TestFireSkipsDeactivatedHabit() {
	h := s.createHabit("habit_gym", "09:00", false)

	s.bridge.EXPECT().CancelAllPending(gomock.Any()).Return(nil)
	_, err := s.scheduler.ScheduleAll(s.ctx, &alarm.ScheduleAllInput{})
	s.Require().NoError(err)

	// Deactivate between arming and firing; no Present is expected
	h.IsActive = false
	_, err = s.habitRepo.Update(s.ctx, habitrepo.UpdateInput{Habit: h})
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)
	s.Equal(0, s.scheduler.PendingAlarms(), "not re-armed while inactive")
}

func (s *SchedulerTestSuite) TestReschedule() {
	h := s.createHabit("habit_gym", "09:00", false)

	s.Run("arms an eligible habit", func() {
		out, err := s.scheduler.Reschedule(s.ctx, &alarm.RescheduleInput{HabitID: h.ID})
		s.Require().NoError(err)
		s.True(out.Armed)
		s.Equal(1, s.scheduler.PendingAlarms())
	})

	s.Run("disarms after deactivation", func() {
		h.IsActive = false
		_, err := s.habitRepo.Update(s.ctx, habitrepo.UpdateInput{Habit: h})
		s.Require().NoError(err)

		out, err := s.scheduler.Reschedule(s.ctx, &alarm.RescheduleInput{HabitID: h.ID})
		s.Require().NoError(err)
		s.False(out.Armed)
		s.Equal(0, s.scheduler.PendingAlarms())
	})

	s.Run("missing habit reports unarmed", func() {
		out, err := s.scheduler.Reschedule(s.ctx, &alarm.RescheduleInput{HabitID: "habit_missing"})
		s.Require().NoError(err)
		s.False(out.Armed)
	})
}

func (s *SchedulerTestSuite) TestCancelAll() {
	s.createHabit("habit_a", "09:00", false)
	s.createHabit("habit_b", "10:00", false)

	s.bridge.EXPECT().CancelAllPending(gomock.Any()).Return(nil).Times(2)

	_, err := s.scheduler.ScheduleAll(s.ctx, &alarm.ScheduleAllInput{})
	s.Require().NoError(err)
	s.Equal(2, s.scheduler.PendingAlarms())

	out, err := s.scheduler.CancelAll(s.ctx, &alarm.CancelAllInput{})
	s.Require().NoError(err)
	s.Equal(2, out.Cancelled)
	s.Equal(0, s.scheduler.PendingAlarms())

	// Cancelled timers must not fire later
	s.clock.Advance(3 * time.Hour)
}

func (s *SchedulerTestSuite) TestHandleActionComplete() {
	h := s.createHabit("habit_gym", "09:00", false)

	out, err := s.scheduler.HandleAction(s.ctx, &alarm.HandleActionInput{
		HabitID: h.ID,
		Action:  notifications.ActionComplete,
	})
	s.Require().NoError(err)
	s.True(out.Found)
	s.True(out.Checked)

	checked, err := s.store.IsTodayChecked(s.ctx, &habitorch.IsTodayCheckedInput{HabitID: h.ID})
	s.Require().NoError(err)
	s.True(checked.Checked)

	s.Run("second complete toggles back off", func() {
		out, err := s.scheduler.HandleAction(s.ctx, &alarm.HandleActionInput{
			HabitID: h.ID,
			Action:  notifications.ActionComplete,
		})
		s.Require().NoError(err)
		s.True(out.Found)
		s.False(out.Checked)
	})
}

func (s *SchedulerTestSuite) TestHandleActionSnooze() {
	h := s.createHabit("habit_gym", "09:00", false)

	out, err := s.scheduler.HandleAction(s.ctx, &alarm.HandleActionInput{
		HabitID: h.ID,
		Action:  notifications.ActionSnooze,
	})
	s.Require().NoError(err)
	s.True(out.Found)
	s.False(out.Denied)
	s.Equal(alarm.SnoozePenaltyXP, out.Penalty)
	s.Equal(1, s.scheduler.PendingSnoozes())

	s.Run("re-presents after the snooze delay", func() {
		var presented *notifications.Notification
		s.bridge.EXPECT().
			Present(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, n *notifications.Notification) {
				presented = n
			}).
			Return(nil)

		s.clock.Advance(alarm.SnoozeDelay)

		s.Require().NotNil(presented)
		s.Equal("⚔️ Quest: Gym", presented.Title)
		s.Equal(0, s.scheduler.PendingSnoozes())
	})

	s.Run("penalty accumulates across snoozes", func() {
		out, err := s.scheduler.HandleAction(s.ctx, &alarm.HandleActionInput{
			HabitID: h.ID,
			Action:  notifications.ActionSnooze,
		})
		s.Require().NoError(err)
		s.Equal(2*alarm.SnoozePenaltyXP, out.Penalty)
	})
}

func (s *SchedulerTestSuite) TestHandleActionSnoozeHardcore() {
	h := s.createHabit("habit_wake", "06:00", true)
	h.Name = "Wake up 6AM"
	_, err := s.habitRepo.Update(s.ctx, habitrepo.UpdateInput{Habit: h})
	s.Require().NoError(err)

	var denial *notifications.Notification
	s.bridge.EXPECT().
		Present(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, n *notifications.Notification) {
			denial = n
		}).
		Return(nil)

	out, err := s.scheduler.HandleAction(s.ctx, &alarm.HandleActionInput{
		HabitID: h.ID,
		Action:  notifications.ActionSnooze,
	})
	s.Require().NoError(err)
	s.True(out.Found)
	s.True(out.Denied)
	s.Equal(alarm.SnoozePenaltyXP, out.Penalty, "the penalty still applies on denial")
	s.Equal(0, s.scheduler.PendingSnoozes(), "no snooze wake-up for a hardcore alarm")

	s.Require().NotNil(denial)
	s.Equal("💀 HARDCORE MODE", denial.Title)
	s.Equal(`Snooze denied for "Wake up 6AM"! -5 XP penalty applied.`, denial.Body)
	s.Equal("hardcore-denial", denial.Tag)

	penalty, err := s.playerRepo.GetPenalty(s.ctx, playerrepo.GetPenaltyInput{})
	s.Require().NoError(err)
	s.Equal(alarm.SnoozePenaltyXP, penalty.Penalty)
}

func (s *SchedulerTestSuite) TestHandleActionStaleHabit() {
	// Actions can be delivered after a relaunch for habits that no
	// longer exist; they must resolve quietly
	out, err := s.scheduler.HandleAction(s.ctx, &alarm.HandleActionInput{
		HabitID: "habit_gone",
		Action:  notifications.ActionComplete,
	})
	s.Require().NoError(err)
	s.False(out.Found)

	out, err = s.scheduler.HandleAction(s.ctx, &alarm.HandleActionInput{
		HabitID: "habit_gone",
		Action:  notifications.ActionSnooze,
	})
	s.Require().NoError(err)
	s.False(out.Found)
}

func (s *SchedulerTestSuite) TestHandleActionUnknown() {
	h := s.createHabit("habit_gym", "09:00", false)

	_, err := s.scheduler.HandleAction(s.ctx, &alarm.HandleActionInput{
		HabitID: h.ID,
		Action:  notifications.Action("dismiss"),
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SchedulerTestSuite) TestRequestPermission() {
	s.Run("granted", func() {
		s.bridge.EXPECT().RequestPermission(gomock.Any()).Return(notifications.PermissionGranted, nil)

		out, err := s.scheduler.RequestPermission(s.ctx, &alarm.RequestPermissionInput{})
		s.Require().NoError(err)
		s.True(out.Granted)
	})

	s.Run("denied still succeeds", func() {
		s.bridge.EXPECT().RequestPermission(gomock.Any()).Return(notifications.PermissionDenied, nil)

		out, err := s.scheduler.RequestPermission(s.ctx, &alarm.RequestPermissionInput{})
		s.Require().NoError(err)
		s.False(out.Granted)
	})
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

// End-to-end wiring through a real event bus: store mutations must keep
// the scheduler's wake-ups in step without any direct calls.
func TestSubscribeFollowsStoreEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	client, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()

	manual := clock.NewManual(time.Date(2025, time.January, 15, 8, 0, 0, 0, time.UTC))
	bus := events.NewBus()
	bridge := notificationsmock.NewMockBridge(ctrl)
	bridge.EXPECT().CancelAllPending(gomock.Any()).Return(nil).AnyTimes()

	hr, err := habitrepo.NewRedis(&habitrepo.RedisConfig{Client: client, Clock: manual})
	if err != nil {
		t.Fatal(err)
	}
	pr, err := playerrepo.NewRedis(&playerrepo.RedisConfig{Client: client})
	if err != nil {
		t.Fatal(err)
	}
	store, err := habitorch.New(&habitorch.Config{
		HabitRepo:   hr,
		PlayerRepo:  pr,
		IDGenerator: idgen.NewSequential("habit"),
		EventBus:    bus,
		Clock:       manual,
	})
	if err != nil {
		t.Fatal(err)
	}
	sched, err := alarm.New(&alarm.Config{
		HabitRepo:  hr,
		PlayerRepo: pr,
		Store:      store,
		Bridge:     bridge,
		Clock:      manual,
	})
	if err != nil {
		t.Fatal(err)
	}
	sched.Subscribe(bus)

	ctx := context.Background()

	added, err := store.AddHabit(ctx, &habitorch.AddHabitInput{
		Name:      "Gym",
		Icon:      "🏋️",
		Category:  entities.CategoryStrength,
		XPReward:  10,
		GoalValue: 30,
		AlarmTime: "09:00",
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := sched.PendingAlarms(); got != 1 {
		t.Fatalf("expected 1 pending alarm after create, got %d", got)
	}

	if _, err := store.SetActive(ctx, &habitorch.SetActiveInput{HabitID: added.Habit.ID, IsActive: false}); err != nil {
		t.Fatal(err)
	}
	if got := sched.PendingAlarms(); got != 0 {
		t.Fatalf("expected 0 pending alarms after deactivation, got %d", got)
	}

	if _, err := store.SetActive(ctx, &habitorch.SetActiveInput{HabitID: added.Habit.ID, IsActive: true}); err != nil {
		t.Fatal(err)
	}
	if got := sched.PendingAlarms(); got != 1 {
		t.Fatalf("expected 1 pending alarm after reactivation, got %d", got)
	}

	if _, err := store.ResetAll(ctx, &habitorch.ResetAllInput{}); err != nil {
		t.Fatal(err)
	}
	if got := sched.PendingAlarms(); got != 0 {
		t.Fatalf("expected 0 pending alarms after reset, got %d", got)
	}
}
