package routes

import (
	"github.com/gofiber/fiber/v2"

	"eduno_backend/internal/handlers"
)

func PostRoutes(api fiber.Router, d Deps) {
	api.Post("/postupload", handlers.UploadPostHandler(d.DB, d.Media, d.Config))
	api.Post("/post", handlers.GetPostHandler(d.DB, d.Config))
	api.Delete("/posts/:postId", handlers.DeletePostHandler(d.Client, d.DB, d.Config))

	api.Post("/userlike", handlers.LikeHandler(d.Client, d.DB, d.Config))

	api.Post("/posts/comments", handlers.AddCommentHandler(d.DB, d.Config))
	api.Delete("/posts/commentsdelete/:postid/:commentid", handlers.DeleteCommentHandler(d.DB, d.Config))
	api.Get("/get/comments", handlers.ListCommentsHandler(d.DB, d.Config))
}
