package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"eduno_backend/internal/token"
)

// JWTOptional parses an Authorization bearer header when present and puts
// the claims into Locals. Requests without a header pass through anonymous;
// a header that fails verification is rejected here.
func JWTOptional(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			return c.Next()
		}

		claims, err := token.Verify(secret, raw)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("username", claims.Username)
		return c.Next()
	}
}

// TokenFrom standardizes token transport: the JSON/form body token wins,
// then the bearer header. Empty string means the request is anonymous.
func TokenFrom(c *fiber.Ctx, bodyToken string) string {
	if bodyToken != "" {
		return bodyToken
	}
	return bearerToken(c)
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get("Authorization")
	if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return ""
	}
	return strings.TrimSpace(auth[7:])
}
