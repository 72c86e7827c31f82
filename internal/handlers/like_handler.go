package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eduno_backend/configs"
	"eduno_backend/dto"
	"eduno_backend/internal/repository"
	"eduno_backend/services"
)

// LikeHandler godoc
// @Summary      Toggle like on a post
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Param        data  body      dto.LikeDTO  true  "Post to toggle"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /userlike [post]
func LikeHandler(client *mongo.Client, db *mongo.Database, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LikeDTO
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

		post, err := services.ToggleLike(ctx, client, db, claims.Username, body.PostID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(errJSON(cfg, "No user found with this username", nil))
			case errors.Is(err, repository.ErrPostNotFound):
				return c.Status(fiber.StatusNotFound).JSON(errJSON(cfg, "No post found with this ID", nil))
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(errJSON(cfg, "Server error", err))
			}
		}

		return c.JSON(fiber.Map{
			"message": "Operation successful",
			"post":    post,
		})
	}
}
