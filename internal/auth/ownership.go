package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/domain"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util/errorutil"
)

// CheckOwner allows access only when the authenticated email equals owner
// exactly. No case folding or trimming is applied.
func CheckOwner(identity domain.Identity, owner string) error {
	if identity.Email != owner {
		return apperrors.NewForbidden()
	}
	return nil
}

// AuthorizeOwner applies CheckOwner to the identity set by AuthMiddleware.
// It trusts that identity completely and must run after the middleware.
func AuthorizeOwner(c *fiber.Ctx, owner string) (domain.Identity, error) {
	identity, ok := IdentityFromContext(c)
	if !ok {
		return domain.Identity{}, apperrors.NewUnauthorized()
	}
	if err := CheckOwner(identity, owner); err != nil {
		return domain.Identity{}, err
	}
	return identity, nil
}

// RequireIdentity ensures AuthMiddleware stored an identity with an email.
func RequireIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok || identity.Email == "" {
			return apperrors.NewUnauthorized()
		}
		return c.Next()
	}
}
