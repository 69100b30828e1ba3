package config

import (
	"log/slog"

	"github.com/mibanco/fintech/pkg/eventbus"
	"github.com/mibanco/fintech/pkg/repository"
)

// Deps holds all infrastructure dependencies for building the app and services.
type Deps struct {
	Registry repository.Registry
	EventBus eventbus.Bus
	Logger   *slog.Logger
	Config   *App
}
