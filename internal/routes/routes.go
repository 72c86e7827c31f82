package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eduno_backend/configs"
	"eduno_backend/internal/media"
)

// Deps bundles everything the route groups need.
type Deps struct {
	Client *mongo.Client
	DB     *mongo.Database
	Media  *media.Client
	Config configs.Config
}

// Register mounts every route group under /api.
func Register(app *fiber.App, d Deps) {
	api := app.Group("/api")

	AuthRoutes(api, d)
	UserRoutes(api, d)
	PostRoutes(api, d)
	FeedRoutes(api, d)
}
