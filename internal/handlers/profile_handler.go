package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eduno_backend/configs"
	"eduno_backend/dto"
	"eduno_backend/internal/middleware"
	"eduno_backend/services"
)

// ProfilePageHandler godoc
// @Summary      View a user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        data  body      dto.ProfilePageDTO  true  "Profile to view"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /profilepage [post]
func ProfilePageHandler(db *mongo.Database, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ProfilePageDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(failJSON(cfg, "invalid body", err))
		}
		if err := validate.Struct(body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(failJSON(cfg, "User ID is required", err))
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		// the token is optional here: anonymous viewers get the public page
		view, err := services.Profile(ctx, db, cfg.JWTSecret, body.UserID, middleware.TokenFrom(c, body.Token))
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(failJSON(cfg, "User not found", nil))
			}
			return c.Status(fiber.StatusInternalServerError).JSON(failJSON(cfg, "Internal server error", err))
		}

		return c.JSON(fiber.Map{
			"success":       true,
			"message":       "User profile fetched successfully",
			"body":          view.Page,
			"isOwnProfile":  view.IsOwnProfile,
			"isFollowing":   view.IsFollowing,
			"isPending":     view.IsPending,
			"currentUserId": view.CurrentUserID,
		})
	}
}

// UpdateProfileHandler godoc
// @Summary      Update profile fields
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        data  body      dto.UpdateProfileDTO  true  "Fields to change"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /updateprofile [post]
func UpdateProfileHandler(db *mongo.Database, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.UpdateProfileDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errJSON(cfg, "invalid body", err))
		}

		claims, err := claimsFrom(c, cfg, body.Token)
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		user, err := services.UpdateProfile(ctx, db, claims.Username, body)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNothingToUpdate):
				return c.Status(fiber.StatusBadRequest).JSON(errJSON(cfg, "Nothing to update", nil))
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(errJSON(cfg, "User not found", nil))
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(errJSON(cfg, "Internal server error", err))
			}
		}

		return c.JSON(fiber.Map{
			"message":  "Profile updated successfully",
			"fullname": user.Fullname,
			"dob":      user.DOB,
			"gender":   user.Gender,
			"bio":      user.Bio,
		})
	}
}

// AddDOBHandler godoc
// @Summary      Set date of birth
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        data  body      dto.AddDOBDTO  true  "Date of birth"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /addob [post]
func AddDOBHandler(db *mongo.Database, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.AddDOBDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errJSON(cfg, "invalid body", err))
		}
		if err := validate.Struct(body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errJSON(cfg, "Token and DOB are required", err))
		}

		claims, err := claimsFrom(c, cfg, body.Token)
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		user, err := services.SetDOB(ctx, db, claims.UserID, body.DOB)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidDOB):
				return c.Status(fiber.StatusBadRequest).JSON(errJSON(cfg, "Invalid date of birth", nil))
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(errJSON(cfg, "User not found", nil))
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(errJSON(cfg, "Internal server error", err))
			}
		}

		return c.JSON(fiber.Map{
			"message": "DOB added successfully",
			"user":    user,
		})
	}
}
