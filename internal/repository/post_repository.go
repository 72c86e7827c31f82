package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"eduno_backend/model"
)

var ErrPostNotFound = errors.New("post not found")

// PostAuthor is the author projection joined onto a post.
type PostAuthor struct {
	ID         bson.ObjectID `bson:"_id" json:"_id"`
	Username   string        `bson:"username" json:"username"`
	Fullname   string        `bson:"fullname" json:"fullname"`
	ProfilePic string        `bson:"profilepic" json:"profilepic"`
}

type PostWithAuthor struct {
	model.Post `bson:",inline"`
	Author     *PostAuthor `bson:"author" json:"author"`
}

func InsertPost(ctx context.Context, db *mongo.Database, p *model.Post) error {
	res, err := Posts(db).InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

func FindPostByID(ctx context.Context, db *mongo.Database, id bson.ObjectID) (*model.Post, error) {
	var p model.Post
	if err := Posts(db).FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

func authorLookupStages() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "author",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$author", "preserveNullAndEmptyArrays": true}}},
	}
}

// FindPostWithAuthor loads a single post joined with its author's display
// fields.
func FindPostWithAuthor(ctx context.Context, db *mongo.Database, id bson.ObjectID) (*PostWithAuthor, error) {
	pipe := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
	}
	pipe = append(pipe, authorLookupStages()...)

	cur, err := Posts(db).Aggregate(ctx, pipe, options.Aggregate())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []PostWithAuthor
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrPostNotFound
	}
	return &items[0], nil
}

// FindPostsNewestFirst loads every post joined with author info, newest
// first, for the home feed.
func FindPostsNewestFirst(ctx context.Context, db *mongo.Database) ([]PostWithAuthor, error) {
	pipe := authorLookupStages()
	pipe = append(pipe, bson.D{{Key: "$sort", Value: bson.M{"created_at": -1}}})

	cur, err := Posts(db).Aggregate(ctx, pipe, options.Aggregate())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []PostWithAuthor
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AppendPostRef records a new post id on its author.
func AppendPostRef(ctx context.Context, db *mongo.Database, userID, postID bson.ObjectID) error {
	_, err := Users(db).UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$push": bson.M{"post": postID}})
	return err
}

// DeletePostCascade removes the post and prunes every reference other users
// hold to it. Runs inside WithTxn.
func DeletePostCascade(ctx context.Context, db *mongo.Database, postID bson.ObjectID) error {
	res, err := Posts(db).DeleteOne(ctx, bson.M{"_id": postID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrPostNotFound
	}
	_, err = Users(db).UpdateMany(ctx, bson.M{}, bson.M{"$pull": bson.M{
		"post":      postID,
		"likedpost": postID,
		"savedpost": postID,
	}})
	return err
}

// AddLike / RemoveLike are the two halves of the toggle; both touch the
// post's like set and the liker's likedpost list and run inside WithTxn.
func AddLike(ctx context.Context, db *mongo.Database, postID, userID bson.ObjectID) error {
	if _, err := Posts(db).UpdateOne(ctx, bson.M{"_id": postID}, bson.M{
		"$addToSet": bson.M{"likes": userID},
	}); err != nil {
		return err
	}
	_, err := Users(db).UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$addToSet": bson.M{"likedpost": postID},
	})
	return err
}

func RemoveLike(ctx context.Context, db *mongo.Database, postID, userID bson.ObjectID) error {
	if _, err := Posts(db).UpdateOne(ctx, bson.M{"_id": postID}, bson.M{
		"$pull": bson.M{"likes": userID},
	}); err != nil {
		return err
	}
	_, err := Users(db).UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$pull": bson.M{"likedpost": postID},
	})
	return err
}

func AddComment(ctx context.Context, db *mongo.Database, postID bson.ObjectID, c model.Comment) error {
	res, err := Posts(db).UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$push": bson.M{"comments": c}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrPostNotFound
	}
	return nil
}

func RemoveComment(ctx context.Context, db *mongo.Database, postID, commentID bson.ObjectID) error {
	_, err := Posts(db).UpdateOne(ctx, bson.M{"_id": postID}, bson.M{
		"$pull": bson.M{"comments": bson.M{"_id": commentID}},
	})
	return err
}
