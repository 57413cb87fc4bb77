package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/observability"
)

// parseDocument decodes the request body as a free-form document.
func parseDocument(c *fiber.Ctx) (domain.Document, error) {
	var doc domain.Document
	if err := c.BodyParser(&doc); err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if doc == nil {
		doc = domain.Document{}
	}
	return doc, nil
}

// authorizeOwner runs the ownership guard against the :email path parameter.
func authorizeOwner(c *fiber.Ctx, metrics *observability.Metrics) (string, error) {
	owner := c.Params("email")
	if _, err := auth.AuthorizeOwner(c, owner); err != nil {
		metrics.RecordAuthRejection("forbidden")
		return "", err
	}
	return owner, nil
}

func parseIntQuery(c *fiber.Ctx, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}
