package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookieFromRoute(t *testing.T, handler fiber.Handler) *http.Cookie {
	t.Helper()
	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)

	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestAttachDevelopmentMode(t *testing.T) {
	sc := NewSessionCookie(false)

	cookie := cookieFromRoute(t, func(c *fiber.Ctx) error {
		sc.Attach(c, "signed-token")
		return nil
	})

	assert.Equal(t, "token", cookie.Name)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func TestAttachProductionMode(t *testing.T) {
	sc := NewSessionCookie(true)

	cookie := cookieFromRoute(t, func(c *fiber.Ctx) error {
		sc.Attach(c, "signed-token")
		return nil
	})

	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}

func TestClearMatchesAttachAttributes(t *testing.T) {
	for _, production := range []bool{false, true} {
		sc := NewSessionCookie(production)

		set := cookieFromRoute(t, func(c *fiber.Ctx) error {
			sc.Attach(c, "signed-token")
			return nil
		})
		cleared := cookieFromRoute(t, func(c *fiber.Ctx) error {
			sc.Clear(c)
			return nil
		})

		assert.Equal(t, set.Name, cleared.Name)
		assert.Empty(t, cleared.Value)
		assert.Equal(t, set.Path, cleared.Path)
		assert.Equal(t, set.HttpOnly, cleared.HttpOnly)
		assert.Equal(t, set.Secure, cleared.Secure)
		assert.Equal(t, set.SameSite, cleared.SameSite)
		assert.True(t, cleared.Expires.Before(time.Now()), "cleared cookie must already be expired")
	}
}
