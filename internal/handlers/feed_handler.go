package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eduno_backend/configs"
	"eduno_backend/dto"
	"eduno_backend/services"
)

// HomeHandler godoc
// @Summary      Home feed, newest first
// @Tags         feed
// @Accept       json
// @Produce      json
// @Param        data  body      dto.TokenDTO  true  "Auth token"
// @Success      200   {object}  dto.HomeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /home [post]
func HomeHandler(db *mongo.Database, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.TokenDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(failJSON(cfg, "invalid body", err))
		}
		claims, err := claimsFrom(c, cfg, body.Token)
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		resp, err := services.Homepage(ctx, db, claims.Username)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(failJSON(cfg, "User not found", nil))
			}
			return c.Status(fiber.StatusInternalServerError).JSON(failJSON(cfg, "Internal server error", err))
		}
		return c.JSON(resp)
	}
}
