package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/api/dto"
	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/observability"
)

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Issue(identity domain.Identity) (domain.Token, error)
}

// AuthHandler issues and clears the session cookie.
type AuthHandler struct {
	tokens  TokenIssuer
	cookie  *auth.SessionCookie
	metrics *observability.Metrics
}

// NewAuthHandler constructs handler.
func NewAuthHandler(tokens TokenIssuer, cookie *auth.SessionCookie, metrics *observability.Metrics) *AuthHandler {
	return &AuthHandler{tokens: tokens, cookie: cookie, metrics: metrics}
}

// IssueToken handles POST /jwt.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.Email) == "" {
		return fiber.NewError(http.StatusBadRequest, "email required")
	}

	token, err := h.tokens.Issue(domain.Identity{Email: req.Email})
	if err != nil {
		return err
	}
	h.cookie.Attach(c, token.Value)
	h.metrics.RecordTokenIssued()
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.cookie.Clear(c)
	return c.JSON(dto.SuccessResponse{Success: true})
}
