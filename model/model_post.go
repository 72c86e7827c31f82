package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CommentAuthor is the denormalized author snapshot embedded with each
// comment, so listing comments never needs a second lookup.
type CommentAuthor struct {
	ID         bson.ObjectID `json:"_id" bson:"_id"`
	Username   string        `json:"username" bson:"username"`
	ProfilePic string        `json:"profilepic" bson:"profilepic"`
	Fullname   string        `json:"fullname" bson:"fullname"`
}

type Comment struct {
	ID        bson.ObjectID `json:"_id" bson:"_id"`
	User      CommentAuthor `json:"user" bson:"user"`
	Text      string        `json:"text" bson:"text"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}

type Post struct {
	ID          bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Heading     string        `json:"heading" bson:"heading"`
	Content     string        `json:"content,omitempty" bson:"content,omitempty"`
	FileURL     string        `json:"fileUrl,omitempty" bson:"file_url,omitempty"`
	DownloadURL string        `json:"downloadUrl,omitempty" bson:"download_url,omitempty"`
	Thumbnail   string        `json:"thumbnail" bson:"thumbnail"`
	FileType    string        `json:"fileType" bson:"file_type"`
	FileName    string        `json:"fileName" bson:"file_name"`
	ContentType string        `json:"contentType" bson:"content_type"`
	UserID      bson.ObjectID `json:"user" bson:"user_id"`

	Comments []Comment       `json:"comments" bson:"comments"`
	Likes    []bson.ObjectID `json:"likes" bson:"likes"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

func (p *Post) LikedBy(id bson.ObjectID) bool {
	return containsID(p.Likes, id)
}
