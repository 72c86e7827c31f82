package routes

import (
	"github.com/gofiber/fiber/v2"

	"eduno_backend/internal/handlers"
)

func AuthRoutes(api fiber.Router, d Deps) {
	api.Post("/register", handlers.RegisterHandler(d.DB, d.Config))
	api.Post("/login", handlers.LoginHandler(d.DB, d.Config))
	api.Post("/getuserid", handlers.GetUserIDHandler(d.Config))
	api.Post("/user", handlers.GetSelfHandler(d.DB, d.Config))
}
