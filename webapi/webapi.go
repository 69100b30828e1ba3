// Package webapi exposes the financial products service over HTTP.
// It is organized into sub-packages:
// - customer: customer registration and contact data
// - product: product opening, money movement and interest
// - common: response envelopes, problem details and request validation
// - docs: the OpenAPI document served under /swagger
package webapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/mibanco/fintech/pkg/config"
	productsvc "github.com/mibanco/fintech/pkg/service/product"
	"github.com/mibanco/fintech/webapi/common"
	customerweb "github.com/mibanco/fintech/webapi/customer"
	_ "github.com/mibanco/fintech/webapi/docs"
	productweb "github.com/mibanco/fintech/webapi/product"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(svc *productsvc.Service, cfg *config.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
			return common.ErrorResponseJSON(c, status, "Request failed", err.Error())
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
		DeepLinking:     true,
		DocExpansion:    "list",
	}))

	if cfg != nil && cfg.RateLimit != nil && cfg.RateLimit.MaxRequests > 0 {
		// Uses X-Forwarded-For header when behind a proxy
		// Falls back to X-Real-IP or direct IP if needed
		fiberApp.Use(limiter.New(limiter.Config{
			Max:          cfg.RateLimit.MaxRequests,
			Expiration:   cfg.RateLimit.Window,
			KeyGenerator: clientKey,
			LimitReached: func(c *fiber.Ctx) error {
				return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
			},
		}))
	}
	fiberApp.Use(recover.New())
	if cfg != nil && cfg.Env != "test" {
		fiberApp.Use(logger.New())
	}

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Financial products API is running")
	})

	fiberApp.Get("/debug/routes", func(c *fiber.Ctx) error {
		var routeList []map[string]string
		for _, route := range fiberApp.GetRoutes(true) {
			if route.Path != "" {
				routeList = append(routeList, map[string]string{
					"method": route.Method,
					"path":   route.Path,
				})
			}
		}
		return c.JSON(routeList)
	})

	customerweb.Routes(fiberApp, svc)
	productweb.Routes(fiberApp, svc)
	return fiberApp
}

func clientKey(c *fiber.Ctx) string {
	if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
		// Take the first IP in the chain
		if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
			return strings.TrimSpace(forwardedFor[:commaIndex])
		}
		return strings.TrimSpace(forwardedFor)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
