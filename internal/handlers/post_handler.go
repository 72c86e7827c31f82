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

// GetPostHandler godoc
// @Summary      Fetch one post with author info
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        data  body      dto.GetPostDTO  true  "Post ID"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /post [post]
func GetPostHandler(db *mongo.Database, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.GetPostDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(failJSON(cfg, "invalid body", err))
		}
		if err := validate.Struct(body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(failJSON(cfg, "Post ID is required", err))
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		post, err := services.GetPost(ctx, db, body.PostID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(failJSON(cfg, "Post not found", nil))
			}
			return c.Status(fiber.StatusInternalServerError).JSON(failJSON(cfg, "Internal server error", err))
		}

		return c.JSON(fiber.Map{
			"success": true,
			"count":   1,
			"posts":   []any{post},
		})
	}
}

// DeletePostHandler godoc
// @Summary      Delete a post (owner or admin)
// @Tags         posts
// @Produce      json
// @Param        postId  path  string  true  "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{postId} [delete]
func DeletePostHandler(client *mongo.Client, db *mongo.Database, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.DeletePostDTO
		_ = c.BodyParser(&body)

		claims, err := claimsFrom(c, cfg, body.Token)
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		err = services.DeletePost(ctx, client, db, claims.Username, c.Params("postId"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPostForbidden):
				return c.Status(fiber.StatusForbidden).JSON(failJSON(cfg, "Not authorized to delete this post", nil))
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(failJSON(cfg, "User not found", nil))
			case errors.Is(err, repository.ErrPostNotFound):
				return c.Status(fiber.StatusNotFound).JSON(failJSON(cfg, "Post not found", nil))
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(failJSON(cfg, "Internal server error", err))
			}
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Post deleted successfully",
		})
	}
}
