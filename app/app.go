// Package app wires repositories, services, and routes into a Fiber app.
package app

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/fintrackhq/fintrack/config"
	goalrepo "github.com/fintrackhq/fintrack/infra/repository/goal"
	investmentrepo "github.com/fintrackhq/fintrack/infra/repository/investment"
	userrepo "github.com/fintrackhq/fintrack/infra/repository/user"
	authsvc "github.com/fintrackhq/fintrack/pkg/service/auth"
	goalsvc "github.com/fintrackhq/fintrack/pkg/service/goal"
	investmentsvc "github.com/fintrackhq/fintrack/pkg/service/investment"
	"github.com/fintrackhq/fintrack/webapi/auth"
	"github.com/fintrackhq/fintrack/webapi/goal"
	"github.com/fintrackhq/fintrack/webapi/investment"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

// New builds all services and returns the Fiber app.
func New(db *gorm.DB, cfg *config.AppConfig, logger *slog.Logger) *fiber.App {
	// Build services
	authService := authsvc.New(userrepo.New(db), logger)
	investmentService := investmentsvc.New(investmentrepo.New(db), logger)
	goalService := goalsvc.New(goalrepo.New(db), logger)

	production := cfg.Env == "production"
	sameSite := "Lax"
	if production {
		sameSite = "None"
	}
	store := session.New(session.Config{
		Expiration:     cfg.Session.Expiry,
		CookieHTTPOnly: true,
		CookieSecure:   production,
		CookieSameSite: sameSite,
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				status = e.Code
			}
			return c.Status(status).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowCredentials: true,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			// Use X-Forwarded-For if available (for load balancers/proxies),
			// then X-Real-IP, then the direct IP
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded",
			})
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("App is working! 🚀")
	})

	auth.Routes(app, authService, store, cfg)
	investment.Routes(app, investmentService, store)
	goal.Routes(app, goalService, store)
	return app
}
