package routes

import (
	"github.com/gofiber/fiber/v2"

	"eduno_backend/internal/handlers"
)

func FeedRoutes(api fiber.Router, d Deps) {
	api.Post("/home", handlers.HomeHandler(d.DB, d.Config))
	api.Get("/explore", handlers.ExploreHandler(d.DB, d.Config))
}
