package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eduno_backend/configs"
	"eduno_backend/dto"
	"eduno_backend/services"
)

// NotificationsHandler godoc
// @Summary      Fetch the caller's notifications, newest first
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        data  body      dto.TokenDTO  true  "Auth token"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /notification [post]
func NotificationsHandler(db *mongo.Database, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.TokenDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errJSON(cfg, "invalid body", err))
		}
		claims, err := claimsFrom(c, cfg, body.Token)
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		notifs, err := services.Notifications(ctx, db, claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(errJSON(cfg, "User not found", nil))
			}
			return c.Status(fiber.StatusInternalServerError).JSON(errJSON(cfg, "Internal server error", err))
		}

		return c.JSON(fiber.Map{
			"message": "Notifications fetched successfully",
			"body":    notifs,
		})
	}
}

// ClearNotificationsHandler godoc
// @Summary      Clear the caller's notification log
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        data  body      dto.TokenDTO  true  "Auth token"
// @Success      200   {object}  map[string]interface{}
// @Router       /clearnotifications [post]
func ClearNotificationsHandler(db *mongo.Database, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.TokenDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errJSON(cfg, "invalid body", err))
		}
		claims, err := claimsFrom(c, cfg, body.Token)
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		if err := services.ClearNotifications(ctx, db, claims.UserID); err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(errJSON(cfg, "User not found", nil))
			}
			return c.Status(fiber.StatusInternalServerError).JSON(errJSON(cfg, "Internal server error", err))
		}
		return c.JSON(fiber.Map{"message": "Notifications cleared successfully"})
	}
}
