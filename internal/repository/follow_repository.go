package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eduno_backend/model"
)

// AddPendingFollow records a follow request on a private account and
// notifies the target. Single-document write, no transaction needed.
func AddPendingFollow(ctx context.Context, db *mongo.Database, targetID bson.ObjectID, n model.Notification) error {
	_, err := Users(db).UpdateOne(ctx, bson.M{"_id": targetID}, bson.M{
		"$addToSet": bson.M{"pendingfollows": n.From},
		"$push":     bson.M{"notification": n},
	})
	return err
}

func RemovePendingFollow(ctx context.Context, db *mongo.Database, targetID, actorID bson.ObjectID) error {
	_, err := Users(db).UpdateOne(ctx, bson.M{"_id": targetID}, bson.M{
		"$pull": bson.M{"pendingfollows": actorID},
	})
	return err
}

// AddFollowPair writes both sides of a public follow. Callers run it inside
// WithTxn; the $addToSet operators keep repeats from duplicating entries.
func AddFollowPair(ctx context.Context, db *mongo.Database, targetID bson.ObjectID, n model.Notification) error {
	if _, err := Users(db).UpdateOne(ctx, bson.M{"_id": targetID}, bson.M{
		"$addToSet": bson.M{"followers": n.From},
		"$push":     bson.M{"notification": n},
	}); err != nil {
		return err
	}
	_, err := Users(db).UpdateOne(ctx, bson.M{"_id": n.From}, bson.M{
		"$addToSet": bson.M{"following": targetID},
	})
	return err
}

func RemoveFollowPair(ctx context.Context, db *mongo.Database, targetID, actorID bson.ObjectID) error {
	if _, err := Users(db).UpdateOne(ctx, bson.M{"_id": targetID}, bson.M{
		"$pull": bson.M{"followers": actorID},
	}); err != nil {
		return err
	}
	_, err := Users(db).UpdateOne(ctx, bson.M{"_id": actorID}, bson.M{
		"$pull": bson.M{"following": targetID},
	})
	return err
}

// AcceptFollow moves requesterID from the target's pending list into its
// followers and mirrors the relation on the requester, notifying both.
// Runs inside WithTxn.
func AcceptFollow(ctx context.Context, db *mongo.Database, targetID, requesterID bson.ObjectID, targetNote, requesterNote model.Notification) error {
	if _, err := Users(db).UpdateOne(ctx, bson.M{"_id": targetID}, bson.M{
		"$pull":     bson.M{"pendingfollows": requesterID},
		"$addToSet": bson.M{"followers": requesterID},
	}); err != nil {
		return err
	}
	if _, err := Users(db).UpdateOne(ctx, bson.M{"_id": targetID}, bson.M{
		"$push": bson.M{"notification": targetNote},
	}); err != nil {
		return err
	}
	_, err := Users(db).UpdateOne(ctx, bson.M{"_id": requesterID}, bson.M{
		"$addToSet": bson.M{"following": targetID},
		"$push":     bson.M{"notification": requesterNote},
	})
	return err
}
