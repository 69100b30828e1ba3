package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/mibanco/fintech/infra/initializer"
	"github.com/mibanco/fintech/pkg/config"
	productsvc "github.com/mibanco/fintech/pkg/service/product"
	"github.com/mibanco/fintech/webapi"
)

// @title Financial Products API
// @version 1.0.0
// @description Customers, savings and checking accounts, certificates of deposit and credit cards.
// @contact.name API Support
// @license.name MIT
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadEnvFile(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	fiberApp, err := newApp(cfg)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	slog.Default().Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)
	return fiberApp.Listen(addr)
}

// newApp wires the dependencies and the product service behind the HTTP
// routes.
func newApp(cfg *config.App) (*fiber.App, error) {
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	svc := productsvc.NewService(*deps)
	return webapi.SetupApp(svc, cfg), nil
}
