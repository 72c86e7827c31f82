package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eduno_backend/configs"
	"eduno_backend/dto"
	"eduno_backend/services"
)

// FollowHandler godoc
// @Summary      Toggle follow / follow request
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        data  body      dto.FollowDTO  true  "Target user"
// @Success      200   {object}  dto.FollowResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /userfollow [post]
func FollowHandler(client *mongo.Client, db *mongo.Database, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.FollowDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(failJSON(cfg, "invalid body", err))
		}
		if err := validate.Struct(body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(failJSON(cfg, "Token and user ID are required", err))
		}

		claims, err := claimsFrom(c, cfg, body.Token)
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		resp, err := services.Follow(ctx, client, db, claims.Username, body.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSelfFollow):
				return c.Status(fiber.StatusBadRequest).JSON(failJSON(cfg, "You cannot follow yourself", nil))
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(failJSON(cfg, "User not found", nil))
			case errors.Is(err, services.ErrTargetNotFound):
				return c.Status(fiber.StatusNotFound).JSON(failJSON(cfg, "Target user not found", nil))
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(failJSON(cfg, "Internal server error", err))
			}
		}
		return c.JSON(resp)
	}
}

// AcceptRequestHandler godoc
// @Summary      Accept a pending follow request
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        data  body      dto.AcceptRequestDTO  true  "Requesting user"
// @Success      200   {object}  dto.AcceptRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /acceptrequest [post]
func AcceptRequestHandler(client *mongo.Client, db *mongo.Database, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.AcceptRequestDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errJSON(cfg, "invalid body", err))
		}
		if err := validate.Struct(body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errJSON(cfg, "All fields are required", err))
		}

		claims, err := claimsFrom(c, cfg, body.Token)
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		resp, err := services.AcceptFollowRequest(ctx, client, db, claims.Username, body.RequestingUserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoPendingRequest):
				return c.Status(fiber.StatusBadRequest).JSON(errJSON(cfg, "No pending follow request from this user", nil))
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(errJSON(cfg, "Current user not found", nil))
			case errors.Is(err, services.ErrTargetNotFound):
				return c.Status(fiber.StatusNotFound).JSON(errJSON(cfg, "Requesting user not found", nil))
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(errJSON(cfg, "Error processing follow request acceptance", err))
			}
		}
		return c.JSON(resp)
	}
}
