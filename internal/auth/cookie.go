package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// TokenCookieName is the cookie carrying the access token.
const TokenCookieName = "token"

// SessionCookie writes and clears the token cookie. Secure and SameSite are
// derived from one flag: browsers drop SameSite=None cookies that are not
// Secure, and a clear only matches the issued cookie when both agree.
type SessionCookie struct {
	name     string
	secure   bool
	sameSite string
}

// NewSessionCookie returns the adapter for the given deployment mode.
func NewSessionCookie(production bool) *SessionCookie {
	sc := &SessionCookie{name: TokenCookieName, sameSite: fiber.CookieSameSiteStrictMode}
	if production {
		sc.secure = true
		sc.sameSite = fiber.CookieSameSiteNoneMode
	}
	return sc
}

// Name returns the cookie name.
func (s *SessionCookie) Name() string {
	return s.name
}

// Attach sets the token cookie on the response.
func (s *SessionCookie) Attach(c *fiber.Ctx, token string) {
	cookie := s.base()
	cookie.Value = token
	c.Cookie(cookie)
}

// Clear overwrites the token cookie with an empty, already-expired one using
// the same attributes as Attach.
func (s *SessionCookie) Clear(c *fiber.Ctx) {
	cookie := s.base()
	cookie.Value = ""
	cookie.Expires = time.Unix(0, 0)
	c.Cookie(cookie)
}

func (s *SessionCookie) base() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     s.name,
		Path:     "/",
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: s.sameSite,
	}
}
