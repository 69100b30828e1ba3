package initializer

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mibanco/fintech/pkg/config"
	"github.com/mibanco/fintech/pkg/domain/events"
	"github.com/mibanco/fintech/pkg/eventbus"
	"github.com/mibanco/fintech/pkg/repository/memory"
)

// InitializeDependencies builds the logger, the in-memory registry and the
// event bus, and installs the logger as the slog default.
func InitializeDependencies(cfg *config.App) (*config.Deps, error) {
	if cfg == nil {
		return nil, errors.New("initializer: nil config")
	}
	logger := NewLogger(cfg.Log, os.Stdout)
	slog.SetDefault(logger)

	bus := eventbus.NewSimpleEventBus()
	bus.Subscribe(eventbus.All, auditEvents(logger))

	logger.Info("Dependencies initialized", "env", cfg.Env)
	return &config.Deps{
		Registry: memory.NewRegistry(),
		EventBus: bus,
		Logger:   logger,
		Config:   cfg,
	}, nil
}

// auditEvents logs the human-readable record of every published event.
func auditEvents(logger *slog.Logger) eventbus.HandlerFunc {
	return func(ctx context.Context, e events.Event) {
		logger.InfoContext(ctx, e.String(), "event_type", e.Type())
	}
}
