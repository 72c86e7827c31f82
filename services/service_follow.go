package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eduno_backend/dto"
	"eduno_backend/internal/repository"
	"eduno_backend/model"
)

var (
	ErrSelfFollow       = errors.New("you cannot follow yourself")
	ErrTargetNotFound   = errors.New("target user not found")
	ErrNoPendingRequest = errors.New("no pending follow request from this user")
)

// FollowAction is what one follow call will do given the current relation.
type FollowAction int

const (
	FollowActionFollow FollowAction = iota
	FollowActionUnfollow
	FollowActionRequest
	FollowActionCancelRequest
)

// FollowOutcome pairs the action with the relation state it leaves behind.
type FollowOutcome struct {
	Action      FollowAction
	IsFollowing bool
	IsPending   bool
	Message     string
}

// NextFollowState decides a single follow call. An existing follower always
// unfollows, even on a private account; otherwise private targets route new
// relations through a pending request and public ones follow directly.
func NextFollowState(targetPrivate, isFollowing, isPending bool) FollowOutcome {
	switch {
	case isFollowing:
		return FollowOutcome{Action: FollowActionUnfollow, Message: "user unfollowed"}
	case targetPrivate && isPending:
		return FollowOutcome{Action: FollowActionCancelRequest, Message: "Follow request canceled"}
	case targetPrivate:
		return FollowOutcome{Action: FollowActionRequest, IsPending: true, Message: "Follow request sent"}
	default:
		return FollowOutcome{Action: FollowActionFollow, IsFollowing: true, Message: "user followed"}
	}
}

// Follow toggles the relation between actor and target per NextFollowState.
// Both sides of a follow/unfollow move atomically; pending requests are a
// single-document write on the target.
func Follow(ctx context.Context, client *mongo.Client, db *mongo.Database, actorUsername string, targetIDHex string) (*dto.FollowResponse, error) {
	actor, err := repository.FindUserByUsername(ctx, db, actorUsername)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	targetID, err := bson.ObjectIDFromHex(targetIDHex)
	if err != nil {
		return nil, ErrTargetNotFound
	}
	target, err := repository.FindUserByID(ctx, db, targetID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}

	if actor.ID == target.ID {
		return nil, ErrSelfFollow
	}

	outcome := NextFollowState(target.IsPrivate, target.HasFollower(actor.ID), target.HasPendingFollow(actor.ID))

	switch outcome.Action {
	case FollowActionUnfollow:
		err = repository.WithTxn(ctx, client, func(ctx context.Context) error {
			return repository.RemoveFollowPair(ctx, db, target.ID, actor.ID)
		})
	case FollowActionCancelRequest:
		err = repository.RemovePendingFollow(ctx, db, target.ID, actor.ID)
	case FollowActionRequest:
		note := model.Notification{
			Type:      model.NotifFollowRequest,
			From:      actor.ID,
			Message:   actor.Username + " wants to follow you",
			CreatedAt: time.Now().UTC(),
		}
		err = repository.AddPendingFollow(ctx, db, target.ID, note)
	default:
		note := model.Notification{
			Type:      model.NotifFollow,
			From:      actor.ID,
			Message:   actor.Username + " started following you",
			CreatedAt: time.Now().UTC(),
		}
		err = repository.WithTxn(ctx, client, func(ctx context.Context) error {
			return repository.AddFollowPair(ctx, db, target.ID, note)
		})
	}
	if err != nil {
		return nil, err
	}

	return &dto.FollowResponse{
		Success:       true,
		Message:       outcome.Message,
		IsFollowing:   outcome.IsFollowing,
		IsPending:     outcome.IsPending,
		CurrentUserID: actor.ID.Hex(),
	}, nil
}

// AcceptFollowRequest moves a pending requester into the follower set and
// mirrors the relation, notifying both parties.
func AcceptFollowRequest(ctx context.Context, client *mongo.Client, db *mongo.Database, actorUsername, requesterIDHex string) (*dto.AcceptRequestResponse, error) {
	actor, err := repository.FindUserByUsername(ctx, db, actorUsername)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	requesterID, err := bson.ObjectIDFromHex(requesterIDHex)
	if err != nil {
		return nil, ErrTargetNotFound
	}
	requester, err := repository.FindUserByID(ctx, db, requesterID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}

	if !actor.HasPendingFollow(requester.ID) {
		return nil, ErrNoPendingRequest
	}

	now := time.Now().UTC()
	targetNote := model.Notification{
		Type:      model.NotifFollowAccept,
		From:      requester.ID,
		Message:   "You accepted " + requester.Username + "'s follow request",
		CreatedAt: now,
	}
	requesterNote := model.Notification{
		Type:      model.NotifFollowAccept,
		From:      actor.ID,
		Message:   actor.Username + " accepted your follow request",
		CreatedAt: now,
	}

	err = repository.WithTxn(ctx, client, func(ctx context.Context) error {
		return repository.AcceptFollow(ctx, db, actor.ID, requester.ID, targetNote, requesterNote)
	})
	if err != nil {
		return nil, err
	}

	return &dto.AcceptRequestResponse{
		Message:        "Follow request accepted successfully",
		FollowerCount:  len(actor.Followers) + 1,
		FollowingCount: len(requester.Following) + 1,
	}, nil
}
