package handlers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"eduno_backend/configs"
	"eduno_backend/dto"
	"eduno_backend/internal/middleware"
	"eduno_backend/internal/token"
)

var validate = validator.New()

// reqCtx bounds every handler's store/media calls to one deadline.
func reqCtx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context(), 5*time.Second)
}

// claimsFrom resolves the request's identity. A body token is verified
// here; otherwise the Locals already populated by the optional-auth
// middleware are reused without a second parse.
func claimsFrom(c *fiber.Ctx, cfg configs.Config, bodyToken string) (*token.Claims, error) {
	if bodyToken == "" {
		if uid, ok := c.Locals("user_id").(string); ok && uid != "" {
			username, _ := c.Locals("username").(string)
			return &token.Claims{UserID: uid, Username: username}, nil
		}
	}

	raw := middleware.TokenFrom(c, bodyToken)
	if raw == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "No token provided")
	}
	claims, err := token.Verify(cfg.JWTSecret, raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}
	return claims, nil
}

// errJSON builds the uniform error body, attaching internal detail only in
// development mode.
func errJSON(cfg configs.Config, message string, err error) dto.ErrorResponse {
	out := dto.ErrorResponse{Message: message}
	if err != nil && cfg.IsDevelopment() {
		out.Error = err.Error()
	}
	return out
}

func failJSON(cfg configs.Config, message string, err error) dto.ErrorResponse {
	out := errJSON(cfg, message, err)
	f := false
	out.Success = &f
	return out
}
