package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eduno_backend/configs"
	"eduno_backend/dto"
	"eduno_backend/services"
)

// RegisterHandler godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.RegisterDTO  true  "Credentials"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /register [post]
func RegisterHandler(db *mongo.Database, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.RegisterDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errJSON(cfg, "invalid body", err))
		}
		if err := validate.Struct(body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errJSON(cfg, "Please fill all required fields", err))
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		resp, err := services.Register(ctx, db, cfg.JWTSecret, body)
		if err != nil {
			if errors.Is(err, services.ErrUserExists) {
				return c.Status(fiber.StatusConflict).JSON(errJSON(cfg, "User already exists", nil))
			}
			return c.Status(fiber.StatusInternalServerError).JSON(errJSON(cfg, "Failed to create user", err))
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}

// LoginHandler godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.LoginDTO  true  "Credentials"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func LoginHandler(db *mongo.Database, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errJSON(cfg, "invalid body", err))
		}
		if err := validate.Struct(body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errJSON(cfg, "Username and password are required", err))
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		resp, err := services.Login(ctx, db, cfg.JWTSecret, body)
		if err != nil {
			if errors.Is(err, services.ErrBadCredentials) {
				return c.Status(fiber.StatusUnauthorized).JSON(errJSON(cfg, "Username or password is incorrect", nil))
			}
			return c.Status(fiber.StatusInternalServerError).JSON(errJSON(cfg, "Internal server error", err))
		}
		return c.JSON(resp)
	}
}

// GetUserIDHandler answers the client's "whose token is this" probe.
func GetUserIDHandler(cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.TokenDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errJSON(cfg, "invalid body", err))
		}
		claims, err := claimsFrom(c, cfg, body.Token)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": claims.UserID})
	}
}

// GetSelfHandler returns the caller's own bookkeeping lists.
func GetSelfHandler(db *mongo.Database, cfg configs.Config) fiber.Handler {
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

		user, err := services.Self(ctx, db, claims.Username)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(errJSON(cfg, "User not found", nil))
			}
			return c.Status(fiber.StatusInternalServerError).JSON(errJSON(cfg, "Internal server error", err))
		}

		return c.JSON(fiber.Map{
			"likedpost":  user.LikedPosts,
			"savedPosts": user.SavedPosts,
			"following":  user.Following,
			"userid":     user.ID,
		})
	}
}
