package services

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eduno_backend/internal/media"
	"eduno_backend/internal/repository"
	"eduno_backend/model"
)

var (
	ErrNoFile        = errors.New("no file uploaded")
	ErrNoText        = errors.New("text content is required")
	ErrPostForbidden = errors.New("unauthorized to delete this post")
)

// UploadInput carries the multipart pieces of a post upload. File paths
// point at request-scoped temp files; the handler owns their cleanup.
type UploadInput struct {
	Heading     string
	ContentType string // "file" | "text"
	TextContent string

	FilePath  string
	FileName  string
	ThumbPath string
	ThumbName string
}

var imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// CreatePost uploads any attached media, synthesizes a thumbnail when none
// was supplied, persists the post and appends it to the author's post list.
func CreatePost(ctx context.Context, db *mongo.Database, mc *media.Client, username string, in UploadInput) (*model.Post, error) {
	user, err := repository.FindUserByUsername(ctx, db, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	post := &model.Post{
		Heading:     in.Heading,
		ContentType: in.ContentType,
		UserID:      user.ID,
		Comments:    []model.Comment{},
		Likes:       []bson.ObjectID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	switch in.ContentType {
	case "text":
		if strings.TrimSpace(in.TextContent) == "" {
			return nil, ErrNoText
		}
		post.Content = in.TextContent
		post.FileType = "text"
		post.FileName = "text-content.txt"

		thumb, err := textThumbnail(ctx, mc, in)
		if err != nil {
			return nil, err
		}
		post.Thumbnail = thumb

	default: // "file"
		if in.FilePath == "" {
			return nil, ErrNoFile
		}
		ext := strings.ToLower(filepath.Ext(in.FileName))

		up, err := mc.Upload(ctx, in.FilePath, in.FileName, "/documents")
		if err != nil {
			return nil, err
		}
		post.FileURL = up.URL
		post.FileType = strings.TrimPrefix(ext, ".")
		post.FileName = in.FileName

		// zip archives are served as-is; everything else gets a flattened
		// jpg download rendition
		post.DownloadURL = up.URL
		if ext != ".zip" {
			post.DownloadURL = mc.URL(up.FilePath, media.Transform{Format: "jpg", Quality: 100})
		}

		thumb, err := fileThumbnail(ctx, mc, in, up, ext)
		if err != nil {
			return nil, err
		}
		post.Thumbnail = thumb
	}

	if err := repository.InsertPost(ctx, db, post); err != nil {
		return nil, err
	}
	if err := repository.AppendPostRef(ctx, db, user.ID, post.ID); err != nil {
		return nil, err
	}
	return post, nil
}

func fileThumbnail(ctx context.Context, mc *media.Client, in UploadInput, up *media.UploadResult, ext string) (string, error) {
	if in.ThumbPath != "" {
		t, err := mc.Upload(ctx, in.ThumbPath, in.ThumbName, "/thumbnails")
		if err != nil {
			return "", err
		}
		return t.URL, nil
	}
	if imageExts[ext] {
		return up.URL, nil
	}
	return mc.URL(up.FilePath, media.Transform{
		Height: 300, Width: 300, Crop: "at_max", Format: "jpg", Quality: 80,
		OverlayText:       ThumbnailLabel(ext),
		OverlayTextSize:   40,
		OverlayTextColor:  "ffffff",
		OverlayBackground: "00000080",
	}), nil
}

func textThumbnail(ctx context.Context, mc *media.Client, in UploadInput) (string, error) {
	if in.ThumbPath != "" {
		t, err := mc.Upload(ctx, in.ThumbPath, in.ThumbName, "/thumbnails")
		if err != nil {
			return "", err
		}
		return t.URL, nil
	}
	return mc.URL("/defaults/text-thumbnail.jpg", media.Transform{
		Height: 300, Width: 300,
		OverlayText:        FirstWords(in.TextContent, 10),
		OverlayTextSize:    24,
		OverlayTextColor:   "ffffff",
		OverlayBackground:  "00000080",
		OverlayTextPadding: 20,
	}), nil
}

// ThumbnailLabel is the overlay text on generated non-image thumbnails.
func ThumbnailLabel(ext string) string {
	if ext == ".zip" {
		return "ZIP Archive"
	}
	return strings.ToUpper(strings.TrimPrefix(ext, "."))
}

// FirstWords returns at most n whitespace-separated words of s.
func FirstWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// GetPost loads a single post with author display fields.
func GetPost(ctx context.Context, db *mongo.Database, postIDHex string) (*repository.PostWithAuthor, error) {
	postID, err := bson.ObjectIDFromHex(postIDHex)
	if err != nil {
		return nil, repository.ErrPostNotFound
	}
	return repository.FindPostWithAuthor(ctx, db, postID)
}

// DeletePost removes a post after an owner/admin check, cascading away the
// references other users hold to it.
func DeletePost(ctx context.Context, client *mongo.Client, db *mongo.Database, username, postIDHex string) error {
	user, err := repository.FindUserByUsername(ctx, db, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return err
	}

	postID, err := bson.ObjectIDFromHex(postIDHex)
	if err != nil {
		return repository.ErrPostNotFound
	}
	post, err := repository.FindPostByID(ctx, db, postID)
	if err != nil {
		return err
	}

	if !user.IsAdmin && post.UserID != user.ID {
		return ErrPostForbidden
	}

	return repository.WithTxn(ctx, client, func(ctx context.Context) error {
		return repository.DeletePostCascade(ctx, db, postID)
	})
}
