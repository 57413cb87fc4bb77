package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/restaurant-service/internal/api/http/handlers"
	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Gallery        *handlers.GalleryHandler
	Foods          *handlers.FoodHandler
	Purchases      *handlers.PurchaseHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Welcome)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	app.Post("/jwt", cfg.Auth.IssueToken)
	app.Get("/logout", cfg.Auth.Logout)

	app.Get("/gallery", cfg.Gallery.List)
	app.Post("/gallery", cfg.Gallery.Create)

	app.Get("/food", cfg.Foods.TopFoods)
	app.Get("/food/:id", cfg.Foods.Get)
	app.Post("/food", cfg.Foods.Create)
	app.Put("/food/:id", cfg.Foods.Update)
	app.Delete("/food/:id", cfg.Foods.Delete)
	app.Get("/all-foods", cfg.Foods.Search)
	app.Get("/foods-count", cfg.Foods.Count)

	app.Get("/purchase", cfg.Purchases.List)
	app.Post("/purchase", cfg.Purchases.Create)
	app.Delete("/purchase/:id", cfg.Purchases.Delete)

	verify := cfg.AuthMiddleware.Handle
	app.Get("/myItem/:email", verify, cfg.Foods.MyItems)
	app.Get("/myOrder/:email", verify, cfg.Purchases.MyOrders)
	app.Get("/purchase/:id", verify, auth.RequireIdentity(), cfg.Purchases.Get)
}
