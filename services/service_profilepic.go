package services

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eduno_backend/internal/media"
	"eduno_backend/internal/repository"
	"eduno_backend/model"
)

const DefaultProfilePic = "https://i.pinimg.com/736x/dc/9c/61/dc9c614e3007080a5aff36aebb949474.jpg"

// SetProfilePic uploads a new picture, stores its 500x500 delivery URL and
// best-effort deletes the previous hosted asset.
func SetProfilePic(ctx context.Context, db *mongo.Database, mc *media.Client, username, localPath, originalName string) (*model.User, string, error) {
	user, err := repository.FindUserByUsername(ctx, db, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	up, err := mc.Upload(ctx, localPath, originalName, "/profile_pictures")
	if err != nil {
		return nil, "", err
	}
	url := mc.URL(up.FilePath, media.Transform{
		Height: 500, Width: 500, Crop: "maintain_ratio",
	})

	if user.ProfilePicFileID != "" {
		if err := mc.Delete(ctx, user.ProfilePicFileID); err != nil {
			log.Println("delete old profile pic:", err)
		}
	}

	updated, err := repository.UpdateUserFields(ctx, db, username, bson.M{
		"profilepic":         url,
		"profilepic_file_id": up.FileID,
	})
	if err != nil {
		return nil, "", err
	}
	updated.Password = ""
	return updated, url, nil
}

// ResetProfilePic drops back to the default picture, deleting any hosted
// asset the user had.
func ResetProfilePic(ctx context.Context, db *mongo.Database, mc *media.Client, username string) (*model.User, string, error) {
	user, err := repository.FindUserByUsername(ctx, db, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	if user.ProfilePicFileID != "" {
		if err := mc.Delete(ctx, user.ProfilePicFileID); err != nil {
			log.Println("delete old profile pic:", err)
		}
	}

	updated, err := repository.UpdateUserFields(ctx, db, username, bson.M{
		"profilepic":         DefaultProfilePic,
		"profilepic_file_id": "",
	})
	if err != nil {
		return nil, "", err
	}
	updated.Password = ""
	return updated, DefaultProfilePic, nil
}
