package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	auth := app.Group("/auth")
	auth.Post("/login", h.Login)
	auth.Post("/users", h.Register)
	// Unlock endpoints are public: a bearer token attaches identity when
	// present but is never required.
	unlock := auth.Group("/unlock", h.OptionalAccess())
	unlock.Post("/request", h.RequestUnlock)
	unlock.Post("/verify", h.VerifyUnlock)
	auth.Post("/refresh", h.RequireRefresh(), h.Refresh)
	auth.Delete("/session", h.RequireRefresh(), h.Logout)
	auth.Get("/me", h.RequireAccess(), h.Me)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
}

// RegisterMetrics exposes the Prometheus registry on /metrics.
func RegisterMetrics(app *fiber.App, registry *prometheus.Registry) {
	app.Get("/metrics", adaptor.HTTPHandler(
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}
