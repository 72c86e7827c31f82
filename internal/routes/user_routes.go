package routes

import (
	"github.com/gofiber/fiber/v2"

	"eduno_backend/internal/handlers"
)

func UserRoutes(api fiber.Router, d Deps) {
	api.Post("/userfollow", handlers.FollowHandler(d.Client, d.DB, d.Config))
	api.Post("/acceptrequest", handlers.AcceptRequestHandler(d.Client, d.DB, d.Config))

	api.Post("/profilepage", handlers.ProfilePageHandler(d.DB, d.Config))
	api.Post("/updateprofile", handlers.UpdateProfileHandler(d.DB, d.Config))
	api.Post("/addob", handlers.AddDOBHandler(d.DB, d.Config))

	api.Post("/profileupload", handlers.ProfileUploadHandler(d.DB, d.Media, d.Config))
	api.Post("/updateprofilepic", handlers.UpdateProfilePicHandler(d.DB, d.Media, d.Config))

	api.Post("/notification", handlers.NotificationsHandler(d.DB, d.Config))
	api.Post("/clearnotifications", handlers.ClearNotificationsHandler(d.DB, d.Config))
}
