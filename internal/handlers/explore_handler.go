package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eduno_backend/configs"
	"eduno_backend/services"
)

// ExploreHandler godoc
// @Summary      List all users for discovery
// @Tags         feed
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /explore [get]
func ExploreHandler(db *mongo.Database, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqCtx(c)
		defer cancel()

		users, err := services.Explore(ctx, db)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(errJSON(cfg, "Internal server error", err))
		}
		return c.JSON(fiber.Map{"filteredUser": users})
	}
}
