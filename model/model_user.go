package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID         bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username   string        `json:"username" bson:"username"`
	Fullname   string        `json:"fullname" bson:"fullname"`
	Bio        string        `json:"bio" bson:"bio"`
	ProfilePic string        `json:"profilepic" bson:"profilepic"`
	// ProfilePicFileID is the media-host id of the current picture, kept
	// so replacing it can delete the old asset.
	ProfilePicFileID string `json:"-" bson:"profilepic_file_id,omitempty"`
	Gender           string `json:"gender,omitempty" bson:"gender,omitempty"`
	DOB              string `json:"dob,omitempty" bson:"dob,omitempty"`
	Password         string `json:"-" bson:"password"`
	IsPrivate        bool   `json:"isPrivate" bson:"is_private"`
	IsAdmin          bool   `json:"isAdmin" bson:"is_admin"`

	Followers      []bson.ObjectID `json:"followers" bson:"followers"`
	Following      []bson.ObjectID `json:"following" bson:"following"`
	PendingFollows []bson.ObjectID `json:"pendingfollows" bson:"pendingfollows"`
	Posts          []bson.ObjectID `json:"post" bson:"post"`
	LikedPosts     []bson.ObjectID `json:"likedpost" bson:"likedpost"`
	SavedPosts     []bson.ObjectID `json:"savedpost" bson:"savedpost"`
	Notifications  []Notification  `json:"notification" bson:"notification"`
}

// HasFollower reports whether id is in the followers set.
func (u *User) HasFollower(id bson.ObjectID) bool {
	return containsID(u.Followers, id)
}

func (u *User) HasPendingFollow(id bson.ObjectID) bool {
	return containsID(u.PendingFollows, id)
}

func (u *User) HasSaved(id bson.ObjectID) bool {
	return containsID(u.SavedPosts, id)
}

func containsID(ids []bson.ObjectID, id bson.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
