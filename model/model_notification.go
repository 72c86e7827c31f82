package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	NotifFollow        = "follow"
	NotifFollowRequest = "follow_request"
	NotifFollowAccept  = "follow_accept"
	NotifLike          = "like"
	NotifComment       = "comment"
)

// Notification is the single tagged shape for every entry in a user's
// notification log. Post is nil for follow-type entries.
type Notification struct {
	Type      string         `json:"type" bson:"type"`
	From      bson.ObjectID  `json:"from,omitempty" bson:"from,omitempty"`
	Post      *bson.ObjectID `json:"post,omitempty" bson:"post,omitempty"`
	Message   string         `json:"message" bson:"message"`
	Read      bool           `json:"read" bson:"read"`
	CreatedAt time.Time      `json:"createdAt" bson:"created_at"`
}
