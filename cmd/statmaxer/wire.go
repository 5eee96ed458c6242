package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/joho/godotenv"

	"github.com/statmaxer/statmaxer/internal/notifications"
	"github.com/statmaxer/statmaxer/internal/orchestrators/alarm"
	habitorch "github.com/statmaxer/statmaxer/internal/orchestrators/habit"
	"github.com/statmaxer/statmaxer/internal/orchestrators/progression"
	"github.com/statmaxer/statmaxer/internal/pkg/idgen"
	redisclient "github.com/statmaxer/statmaxer/internal/redis"
	habitrepo "github.com/statmaxer/statmaxer/internal/repositories/habit"
	playerrepo "github.com/statmaxer/statmaxer/internal/repositories/player"
)

const defaultRedisAddr = "localhost:6379"

// app holds the wired engine components
type app struct {
	store       habitorch.Service
	progression progression.Service
	scheduler   *alarm.Scheduler
	logger      *slog.Logger
}

// newApp builds the engine from environment configuration. A .env file
// in the working directory is honored when present.
func newApp() (*app, error) {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	addr := os.Getenv("STATMAXER_REDIS_ADDR")
	if addr == "" {
		addr = defaultRedisAddr
	}

	client, err := redisclient.NewClient(addr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	habitRepo, err := habitrepo.NewRedis(&habitrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create habit repository: %w", err)
	}

	playerRepo, err := playerrepo.NewRedis(&playerrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create player repository: %w", err)
	}

	bus := events.NewBus()

	store, err := habitorch.New(&habitorch.Config{
		HabitRepo:   habitRepo,
		PlayerRepo:  playerRepo,
		IDGenerator: idgen.NewUUID("habit"),
		EventBus:    bus,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create habit store: %w", err)
	}

	prog, err := progression.New(&progression.Config{
		HabitRepo:  habitRepo,
		PlayerRepo: playerRepo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create progression engine: %w", err)
	}

	scheduler, err := alarm.New(&alarm.Config{
		HabitRepo:  habitRepo,
		PlayerRepo: playerRepo,
		Store:      store,
		Bridge:     notifications.NewConsole(logger),
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create alarm scheduler: %w", err)
	}

	scheduler.Subscribe(bus)

	return &app{
		store:       store,
		progression: prog,
		scheduler:   scheduler,
		logger:      logger,
	}, nil
}
