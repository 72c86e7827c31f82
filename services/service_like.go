package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eduno_backend/internal/repository"
	"eduno_backend/model"
)

// LikeOutcome says which way a like call flips and whether the post's
// author hears about it.
type LikeOutcome struct {
	Remove       bool
	NotifyAuthor bool
}

// NextLikeState decides a single like call: a repeated like withdraws the
// earlier one, and authors are never notified about their own posts.
func NextLikeState(alreadyLiked, ownPost bool) LikeOutcome {
	return LikeOutcome{Remove: alreadyLiked, NotifyAuthor: !ownPost}
}

// ToggleLike flips the requester's membership in the post's like set. Both
// sides (post.likes and user.likedpost) move inside one transaction; the
// author's like notification is appended or withdrawn with them.
func ToggleLike(ctx context.Context, client *mongo.Client, db *mongo.Database, username, postIDHex string) (*repository.PostWithAuthor, error) {
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

	outcome := NextLikeState(post.LikedBy(user.ID), post.UserID == user.ID)

	err = repository.WithTxn(ctx, client, func(ctx context.Context) error {
		if outcome.Remove {
			if err := repository.RemoveLike(ctx, db, post.ID, user.ID); err != nil {
				return err
			}
			if outcome.NotifyAuthor {
				return repository.PullLikeNotification(ctx, db, post.UserID, user.ID, post.ID)
			}
			return nil
		}

		if err := repository.AddLike(ctx, db, post.ID, user.ID); err != nil {
			return err
		}
		if outcome.NotifyAuthor {
			pid := post.ID
			return repository.PushNotification(ctx, db, post.UserID, model.Notification{
				Type:      model.NotifLike,
				From:      user.ID,
				Post:      &pid,
				Message:   user.Username + " liked your post",
				CreatedAt: time.Now().UTC(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return repository.FindPostWithAuthor(ctx, db, post.ID)
}
