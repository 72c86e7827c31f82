package handlers

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eduno_backend/configs"
	"eduno_backend/dto"
	"eduno_backend/internal/media"
	"eduno_backend/services"
)

const maxUploadBytes = 100 << 20

var allowedUploadExts = map[string]bool{
	".pdf":  true,
	".ppt":  true,
	".pptx": true,
	".xlsx": true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".zip":  true,
}

// UploadPostHandler godoc
// @Summary      Create a post from a multipart upload
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Param        token        formData  string  true   "Auth token"
// @Param        heading      formData  string  false  "Post heading"
// @Param        contentType  formData  string  false  "file or text"
// @Param        textContent  formData  string  false  "Text body for text posts"
// @Param        file         formData  file    false  "Attached document"
// @Param        thumbnail    formData  file    false  "Custom thumbnail image"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /postupload [post]
func UploadPostHandler(db *mongo.Database, mc *media.Client, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var fields dto.UploadFields
		if err := c.BodyParser(&fields); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(failJSON(cfg, "invalid form", err))
		}
		if err := validate.Struct(fields); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(failJSON(cfg, "contentType must be file or text", err))
		}

		claims, err := claimsFrom(c, cfg, fields.Token)
		if err != nil {
			return err
		}

		in := services.UploadInput{
			Heading:     fields.Heading,
			ContentType: fields.ContentType,
			TextContent: fields.TextContent,
		}
		if in.ContentType == "" {
			in.ContentType = "file"
		}

		if in.ContentType == "file" {
			fh, err := c.FormFile("file")
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(failJSON(cfg, "No file uploaded", nil))
			}
			if fh.Size > maxUploadBytes {
				return c.Status(fiber.StatusBadRequest).JSON(failJSON(cfg, "File exceeds the 100MB limit", nil))
			}
			ext := strings.ToLower(filepath.Ext(fh.Filename))
			if !allowedUploadExts[ext] {
				return c.Status(fiber.StatusBadRequest).JSON(failJSON(cfg, "File type not supported", nil))
			}

			in.FilePath = media.TempPath(fh.Filename)
			in.FileName = fh.Filename
			if err := c.SaveFile(fh, in.FilePath); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(failJSON(cfg, "Failed to store upload", err))
			}
			defer media.SafeRemove(in.FilePath)
		}

		if fh, err := c.FormFile("thumbnail"); err == nil {
			ext := strings.ToLower(filepath.Ext(fh.Filename))
			if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
				return c.Status(fiber.StatusBadRequest).JSON(failJSON(cfg, "Thumbnail must be an image", nil))
			}
			in.ThumbPath = media.TempPath(fh.Filename)
			in.ThumbName = fh.Filename
			if err := c.SaveFile(fh, in.ThumbPath); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(failJSON(cfg, "Failed to store thumbnail", err))
			}
			defer media.SafeRemove(in.ThumbPath)
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		post, err := services.CreatePost(ctx, db, mc, claims.Username, in)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoFile), errors.Is(err, services.ErrNoText):
				return c.Status(fiber.StatusBadRequest).JSON(failJSON(cfg, err.Error(), nil))
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(failJSON(cfg, "User not found", nil))
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(failJSON(cfg, "Failed to create post", err))
			}
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Post created successfully",
			"post":    post,
		})
	}
}
