package repository

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"eduno_backend/dto"
	"eduno_backend/model"
)

func Users(db *mongo.Database) *mongo.Collection { return db.Collection("users") }
func Posts(db *mongo.Database) *mongo.Collection { return db.Collection("posts") }

func FindUserByID(ctx context.Context, db *mongo.Database, id bson.ObjectID) (*model.User, error) {
	var u model.User
	if err := Users(db).FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func FindUserByUsername(ctx context.Context, db *mongo.Database, username string) (*model.User, error) {
	var u model.User
	if err := Users(db).FindOne(ctx, bson.M{"username": username}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// usernameFilter matches a username case-insensitively and exactly, with
// regex metacharacters escaped.
func usernameFilter(username string) bson.M {
	return bson.M{"username": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(username) + "$",
		"$options": "i",
	}}
}

// UsernameTaken matches case-insensitively so "Alice" cannot register next
// to an existing "alice" even in legacy data that predates lowercasing.
func UsernameTaken(ctx context.Context, db *mongo.Database, username string) (bool, error) {
	err := Users(db).FindOne(ctx, usernameFilter(username)).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

// InsertUser persists a new user. The unique username index is the last
// line of defense against a concurrent duplicate registration; code 11000
// is reported as dup, same as the like insert.
func InsertUser(ctx context.Context, db *mongo.Database, u *model.User) (dup bool, err error) {
	res, err := Users(db).InsertOne(ctx, u)
	if err == nil {
		u.ID = res.InsertedID.(bson.ObjectID)
		return false, nil
	}
	if isDuplicateKey(err) {
		return true, nil
	}
	return false, err
}

// isDuplicateKey reports the unique-index violation write error.
func isDuplicateKey(err error) bool {
	var we mongo.WriteException
	return errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000
}

func ListUsers(ctx context.Context, db *mongo.Database) ([]model.User, error) {
	cur, err := Users(db).Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindUserCards resolves a reference list into display info, preserving
// nothing about ordering; absent ids simply drop out.
func FindUserCards(ctx context.Context, db *mongo.Database, ids []bson.ObjectID) ([]dto.UserCard, error) {
	if len(ids) == 0 {
		return []dto.UserCard{}, nil
	}
	cur, err := Users(db).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}

	cards := make([]dto.UserCard, 0, len(users))
	for _, u := range users {
		cards = append(cards, dto.UserCard{
			UserID:     u.ID.Hex(),
			Username:   u.Username,
			Fullname:   u.Fullname,
			ProfilePic: u.ProfilePic,
		})
	}
	return cards, nil
}

// UpdateUserFields applies a partial $set keyed by username and returns the
// updated document.
func UpdateUserFields(ctx context.Context, db *mongo.Database, username string, fields bson.M) (*model.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u model.User
	err := Users(db).FindOneAndUpdate(ctx, bson.M{"username": username}, bson.M{"$set": fields}, opts).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func UpdateUserFieldsByID(ctx context.Context, db *mongo.Database, id bson.ObjectID, fields bson.M) (*model.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u model.User
	err := Users(db).FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func PushNotification(ctx context.Context, db *mongo.Database, userID bson.ObjectID, n model.Notification) error {
	_, err := Users(db).UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$push": bson.M{"notification": n}})
	return err
}

// PullLikeNotification removes the author's "liked your post" entry when the
// like is toggled off.
func PullLikeNotification(ctx context.Context, db *mongo.Database, authorID, fromID, postID bson.ObjectID) error {
	_, err := Users(db).UpdateOne(ctx, bson.M{"_id": authorID}, bson.M{"$pull": bson.M{
		"notification": bson.M{
			"type": model.NotifLike,
			"from": fromID,
			"post": postID,
		},
	}})
	return err
}

func ClearNotifications(ctx context.Context, db *mongo.Database, userID bson.ObjectID) error {
	_, err := Users(db).UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{"notification": []model.Notification{}}})
	return err
}
