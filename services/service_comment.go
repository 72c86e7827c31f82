package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eduno_backend/internal/repository"
	"eduno_backend/model"
)

var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrCommentForbidden = errors.New("not authorized to delete this comment")
)

// AddComment appends a comment with a denormalized author snapshot and
// notifies the post owner unless they wrote the comment themselves.
func AddComment(ctx context.Context, db *mongo.Database, username, postIDHex, text string) (*model.Comment, error) {
	user, err := repository.FindUserByUsername(ctx, db, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	postID, err := bson.ObjectIDFromHex(postIDHex)
	if err != nil {
		return nil, repository.ErrPostNotFound
	}
	post, err := repository.FindPostByID(ctx, db, postID)
	if err != nil {
		return nil, err
	}

	comment := model.Comment{
		ID: bson.NewObjectID(),
		User: model.CommentAuthor{
			ID:         user.ID,
			Username:   user.Username,
			ProfilePic: user.ProfilePic,
			Fullname:   user.Fullname,
		},
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	if err := repository.AddComment(ctx, db, post.ID, comment); err != nil {
		return nil, err
	}

	if post.UserID != user.ID {
		pid := post.ID
		err := repository.PushNotification(ctx, db, post.UserID, model.Notification{
			Type:      model.NotifComment,
			From:      user.ID,
			Post:      &pid,
			Message:   user.Username + " commented on your post",
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return nil, err
		}
	}

	return &comment, nil
}

// DeleteComment splices a comment out of its post. Only the comment author
// or the post owner may delete it.
func DeleteComment(ctx context.Context, db *mongo.Database, requesterIDHex, postIDHex, commentIDHex string) error {
	postID, err := bson.ObjectIDFromHex(postIDHex)
	if err != nil {
		return repository.ErrPostNotFound
	}
	commentID, err := bson.ObjectIDFromHex(commentIDHex)
	if err != nil {
		return ErrCommentNotFound
	}

	post, err := repository.FindPostByID(ctx, db, postID)
	if err != nil {
		return err
	}

	var comment *model.Comment
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			comment = &post.Comments[i]
			break
		}
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	if !CanDeleteComment(comment, post, requesterIDHex) {
		return ErrCommentForbidden
	}

	return repository.RemoveComment(ctx, db, postID, commentID)
}

// CanDeleteComment is the ownership rule: comment author or post owner.
func CanDeleteComment(c *model.Comment, p *model.Post, requesterIDHex string) bool {
	return c.User.ID.Hex() == requesterIDHex || p.UserID.Hex() == requesterIDHex
}

// ListComments returns a post's comments newest-first.
func ListComments(ctx context.Context, db *mongo.Database, postIDHex string) ([]model.Comment, error) {
	postID, err := bson.ObjectIDFromHex(postIDHex)
	if err != nil {
		return nil, repository.ErrPostNotFound
	}
	post, err := repository.FindPostByID(ctx, db, postID)
	if err != nil {
		return nil, err
	}
	return SortCommentsNewestFirst(post.Comments), nil
}

func SortCommentsNewestFirst(comments []model.Comment) []model.Comment {
	out := make([]model.Comment, len(comments))
	copy(out, comments)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
