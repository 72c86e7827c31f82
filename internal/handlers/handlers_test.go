package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduno_backend/configs"
	"eduno_backend/internal/middleware"
	"eduno_backend/internal/token"
)

const testSecret = "handlers-secret"

func claimsApp() *fiber.App {
	cfg := configs.Config{JWTSecret: testSecret}
	app := fiber.New()
	app.Use(middleware.JWTOptional(testSecret))
	app.Post("/whoami", func(c *fiber.Ctx) error {
		var body struct {
			Token string `json:"token"`
		}
		_ = c.BodyParser(&body)
		claims, err := claimsFrom(c, cfg, body.Token)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"userId": claims.UserID, "username": claims.Username})
	})
	return app
}

func TestClaimsFromReusesMiddlewareLocals(t *testing.T) {
	app := claimsApp()
	tok, err := token.Sign(testSecret, "64a000000000000000000001", "alice")
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestClaimsFromBodyToken(t *testing.T) {
	app := claimsApp()
	tok, err := token.Sign(testSecret, "64a000000000000000000002", "bob")
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/whoami", strings.NewReader(`{"token":"`+tok+`"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestClaimsFromMissingToken(t *testing.T) {
	app := claimsApp()

	req := httptest.NewRequest("POST", "/whoami", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestClaimsFromBadBodyToken(t *testing.T) {
	app := claimsApp()

	req := httptest.NewRequest("POST", "/whoami", strings.NewReader(`{"token":"garbage"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
