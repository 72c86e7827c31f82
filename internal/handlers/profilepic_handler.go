package handlers

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eduno_backend/configs"
	"eduno_backend/internal/media"
	"eduno_backend/services"
)

var profilePicExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// ProfileUploadHandler godoc
// @Summary      Upload a profile picture during onboarding
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        token  formData  string  true   "Auth token"
// @Param        skip   formData  string  false  "Set to keep the default picture"
// @Param        file   formData  file    false  "Picture"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /profileupload [post]
func ProfileUploadHandler(db *mongo.Database, mc *media.Client, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFrom(c, cfg, c.FormValue("token"))
		if err != nil {
			return err
		}

		if c.FormValue("skip") == "true" {
			return c.JSON(fiber.Map{
				"message": "Profile picture skipped",
				"url":     services.DefaultProfilePic,
			})
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errJSON(cfg, "No file uploaded", nil))
		}
		if !profilePicExts[strings.ToLower(filepath.Ext(fh.Filename))] {
			return c.Status(fiber.StatusBadRequest).JSON(errJSON(cfg, "Profile picture must be an image", nil))
		}

		tmp := media.TempPath(fh.Filename)
		if err := c.SaveFile(fh, tmp); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(errJSON(cfg, "Failed to store upload", err))
		}
		defer media.SafeRemove(tmp)

		ctx, cancel := reqCtx(c)
		defer cancel()

		user, url, err := services.SetProfilePic(ctx, db, mc, claims.Username, tmp, fh.Filename)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(errJSON(cfg, "User not found", nil))
			}
			return c.Status(fiber.StatusInternalServerError).JSON(errJSON(cfg, "Failed to upload profile picture", err))
		}

		return c.JSON(fiber.Map{
			"message": "Profile picture uploaded successfully",
			"user":    user,
			"url":     url,
		})
	}
}

// UpdateProfilePicHandler godoc
// @Summary      Replace or reset the profile picture
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        token   formData  string  true   "Auth token"
// @Param        remove  formData  string  false  "Set to reset to the default picture"
// @Param        file    formData  file    false  "New picture"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /updateprofilepic [post]
func UpdateProfilePicHandler(db *mongo.Database, mc *media.Client, cfg configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := claimsFrom(c, cfg, c.FormValue("token"))
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		if c.FormValue("remove") == "true" {
			user, url, err := services.ResetProfilePic(ctx, db, mc, claims.Username)
			if err != nil {
				if errors.Is(err, services.ErrUserNotFound) {
					return c.Status(fiber.StatusNotFound).JSON(errJSON(cfg, "User not found", nil))
				}
				return c.Status(fiber.StatusInternalServerError).JSON(errJSON(cfg, "Failed to reset profile picture", err))
			}
			return c.JSON(fiber.Map{
				"success": true,
				"message": "Profile picture removed",
				"user":    user,
				"url":     url,
			})
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errJSON(cfg, "No file uploaded", nil))
		}
		if !profilePicExts[strings.ToLower(filepath.Ext(fh.Filename))] {
			return c.Status(fiber.StatusBadRequest).JSON(errJSON(cfg, "Profile picture must be an image", nil))
		}

		tmp := media.TempPath(fh.Filename)
		if err := c.SaveFile(fh, tmp); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(errJSON(cfg, "Failed to store upload", err))
		}
		defer media.SafeRemove(tmp)

		user, url, err := services.SetProfilePic(ctx, db, mc, claims.Username, tmp, fh.Filename)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(errJSON(cfg, "User not found", nil))
			}
			return c.Status(fiber.StatusInternalServerError).JSON(errJSON(cfg, "Failed to update profile picture", err))
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Profile picture updated",
			"user":    user,
			"url":     url,
		})
	}
}
