package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/restaurant-service/internal/api/http/handlers"
	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/config"
	"github.com/spec-kit/restaurant-service/internal/observability"
	"github.com/spec-kit/restaurant-service/internal/persistence"
	"github.com/spec-kit/restaurant-service/internal/repository"
	"github.com/spec-kit/restaurant-service/internal/service"
)

// NewApp assembles repositories, services, and handlers over store and returns
// a fiber app with every route registered.
func NewApp(cfg *config.Config, store persistence.Store, logger *zap.Logger, metrics *observability.Metrics) (*fiber.App, error) {
	tokens, err := auth.NewTokenCodec(cfg.Auth.AccessTokenSecret, cfg.Auth.TokenTTL())
	if err != nil {
		return nil, err
	}
	cookie := auth.NewSessionCookie(cfg.Auth.Production)
	authMiddleware := auth.NewAuthMiddleware(tokens, cookie.Name(), logger, metrics)

	names := cfg.Store.Collections
	galleryRepo := repository.NewGalleryRepository(store.Collection(names.Gallery))
	foodRepo := repository.NewFoodRepository(store.Collection(names.Foods))
	purchaseRepo := repository.NewPurchaseRepository(store.Collection(names.Purchase))

	galleryService := service.NewGalleryService(galleryRepo)
	foodService := service.NewFoodService(foodRepo)
	purchaseService := service.NewPurchaseService(purchaseRepo, foodRepo, logger, metrics)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Immutable:    true,
		UnescapePath: true,
	})
	RegisterMiddlewares(app, logger, metrics, MiddlewareConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Timeout:        cfg.App.RequestTimeout(),
	})
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store),
		Auth:           handlers.NewAuthHandler(tokens, cookie, metrics),
		Gallery:        handlers.NewGalleryHandler(galleryService),
		Foods:          handlers.NewFoodHandler(foodService, metrics),
		Purchases:      handlers.NewPurchaseHandler(purchaseService, metrics),
		AuthMiddleware: authMiddleware,
		Metrics:        metrics,
	})
	return app, nil
}
