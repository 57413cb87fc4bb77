package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/observability"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util/errorutil"
)

type identityKey struct{}

// AuthMiddleware reads the token cookie, verifies it and stores the identity
// for downstream handlers. A request that fails here never reaches a handler.
type AuthMiddleware struct {
	tokens     TokenVerifier
	cookieName string
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens TokenVerifier, cookieName string, logger *zap.Logger, metrics *observability.Metrics) *AuthMiddleware {
	if cookieName == "" {
		cookieName = TokenCookieName
	}
	return &AuthMiddleware{tokens: tokens, cookieName: cookieName, logger: logger, metrics: metrics}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token := c.Cookies(m.cookieName)
	if token == "" {
		m.metrics.RecordAuthRejection("missing_token")
		m.logger.Debug("token cookie missing", zap.String("path", c.Path()))
		return apperrors.NewUnauthorized()
	}

	identity, err := m.tokens.Verify(token)
	if err != nil {
		m.metrics.RecordAuthRejection("invalid_token")
		m.logger.Warn("token verification failed", zap.String("path", c.Path()), zap.Error(err))
		return apperrors.NewUnauthorized()
	}

	c.Locals(identityKey{}, identity)
	return c.Next()
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (domain.Identity, bool) {
	identity, ok := c.Locals(identityKey{}).(domain.Identity)
	return identity, ok
}
