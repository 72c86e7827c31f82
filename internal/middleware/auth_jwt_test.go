package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduno_backend/internal/token"
)

const testSecret = "middleware-secret"

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(JWTOptional(testSecret))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  c.Locals("user_id"),
			"username": c.Locals("username"),
		})
	})
	return app
}

func TestJWTOptionalAnonymousPassesThrough(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/whoami", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTOptionalValidBearer(t *testing.T) {
	app := newTestApp()
	tok, err := token.Sign(testSecret, "64a000000000000000000001", "alice")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTOptionalBadBearerRejected(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTokenFromPrefersBody(t *testing.T) {
	app := fiber.New()
	var got string
	app.Get("/t", func(c *fiber.Ctx) error {
		got = TokenFrom(c, "body-token")
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/t", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	_, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "body-token", got)
}

func TestTokenFromFallsBackToHeader(t *testing.T) {
	app := fiber.New()
	var got string
	app.Get("/t", func(c *fiber.Ctx) error {
		got = TokenFrom(c, "")
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/t", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	_, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "header-token", got)
}
