package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"eduno_backend/dto"
	"eduno_backend/internal/repository"
	"eduno_backend/model"
)

// Homepage loads every post newest-first and annotates each one relative
// to the viewer.
func Homepage(ctx context.Context, db *mongo.Database, username string) (*dto.HomeResponse, error) {
	viewer, err := repository.FindUserByUsername(ctx, db, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	posts, err := repository.FindPostsNewestFirst(ctx, db)
	if err != nil {
		return nil, err
	}

	return &dto.HomeResponse{
		Success: true,
		Posts:   BuildFeed(posts, viewer),
		IsAdmin: viewer.IsAdmin,
	}, nil
}

// BuildFeed transforms joined posts into viewer-annotated feed entries.
// Posts whose author no longer exists are dropped, matching the read-time
// tolerance for dangling references.
func BuildFeed(posts []repository.PostWithAuthor, viewer *model.User) []dto.FeedPost {
	out := make([]dto.FeedPost, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		if p.Author == nil {
			continue
		}

		likes := make([]string, 0, len(p.Likes))
		for _, id := range p.Likes {
			likes = append(likes, id.Hex())
		}

		comments := make([]dto.FeedComment, 0, len(p.Comments))
		for _, c := range p.Comments {
			author := &dto.FeedAuthor{
				ID:         c.User.ID.Hex(),
				Username:   c.User.Username,
				ProfilePic: optional(c.User.ProfilePic),
			}
			comments = append(comments, dto.FeedComment{
				ID:   c.ID.Hex(),
				Text: c.Text,
				User: author,
			})
		}

		out = append(out, dto.FeedPost{
			ID:          p.ID.Hex(),
			Heading:     p.Heading,
			Filename:    p.FileURL,
			PostMessage: p.Content,
			Thumbnail:   p.Thumbnail,
			User: dto.FeedAuthor{
				ID:         p.Author.ID.Hex(),
				Username:   p.Author.Username,
				ProfilePic: optional(p.Author.ProfilePic),
			},
			Comments:  comments,
			Likes:     likes,
			IsLiked:   p.LikedBy(viewer.ID),
			IsSaved:   viewer.HasSaved(p.ID),
			CanDelete: viewer.IsAdmin || p.UserID == viewer.ID,
			CreatedAt: p.CreatedAt,
		})
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
