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

// AddCommentHandler godoc
// @Summary      Comment on a post
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Param        data  body      dto.AddCommentDTO  true  "Comment"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /posts/comments [post]
func AddCommentHandler(db *mongo.Database, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.AddCommentDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(failJSON(cfg, "invalid body", err))
		}
		if err := validate.Struct(body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(failJSON(cfg, "Token, comment text, and post ID are required", err))
		}

		claims, err := claimsFrom(c, cfg, body.Token)
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		comment, err := services.AddComment(ctx, db, claims.Username, body.PostID, body.CommentText)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(failJSON(cfg, "User not found", nil))
			case errors.Is(err, repository.ErrPostNotFound):
				return c.Status(fiber.StatusNotFound).JSON(failJSON(cfg, "Post not found", nil))
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(failJSON(cfg, "Internal server error", err))
			}
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Comment added successfully",
			"comment": comment,
		})
	}
}

// DeleteCommentHandler godoc
// @Summary      Delete a comment
// @Tags         engagement
// @Produce      json
// @Param        postid     path  string  true  "Post ID"
// @Param        commentid  path  string  true  "Comment ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/commentsdelete/{postid}/{commentid} [delete]
func DeleteCommentHandler(db *mongo.Database, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.TokenDTO
		_ = c.BodyParser(&body) // DELETE may carry the token in the header only

		claims, err := claimsFrom(c, cfg, body.Token)
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		err = services.DeleteComment(ctx, db, claims.UserID, c.Params("postid"), c.Params("commentid"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCommentForbidden):
				return c.Status(fiber.StatusForbidden).JSON(failJSON(cfg, "Not authorized to delete this comment", nil))
			case errors.Is(err, services.ErrCommentNotFound):
				return c.Status(fiber.StatusNotFound).JSON(failJSON(cfg, "Comment not found", nil))
			case errors.Is(err, repository.ErrPostNotFound):
				return c.Status(fiber.StatusNotFound).JSON(failJSON(cfg, "Post not found", nil))
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(failJSON(cfg, "Internal server error", err))
			}
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Comment deleted successfully",
		})
	}
}

// ListCommentsHandler godoc
// @Summary      List a post's comments, newest first
// @Tags         engagement
// @Produce      json
// @Param        postid  query  string  true  "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /get/comments [get]
func ListCommentsHandler(db *mongo.Database, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID := c.Query("postid")
		if postID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(failJSON(cfg, "postid is required", nil))
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		comments, err := services.ListComments(ctx, db, postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(failJSON(cfg, "Post not found", nil))
			}
			return c.Status(fiber.StatusInternalServerError).JSON(failJSON(cfg, "Internal server error", err))
		}

		return c.JSON(fiber.Map{
			"success":  true,
			"comments": comments,
		})
	}
}
