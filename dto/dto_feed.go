package dto

import (
	"time"
)

type FeedAuthor struct {
	ID         string  `json:"_id"`
	Username   string  `json:"username"`
	ProfilePic *string `json:"profilePic"`
}

type FeedComment struct {
	ID   string      `json:"_id"`
	Text string      `json:"text"`
	User *FeedAuthor `json:"user"`
}

// FeedPost is one home-timeline entry, annotated relative to the viewer.
type FeedPost struct {
	ID          string        `json:"_id"`
	Heading     string        `json:"heading"`
	Filename    string        `json:"filename"`
	PostMessage string        `json:"postmessage"`
	Thumbnail   string        `json:"thumbnail"`
	User        FeedAuthor    `json:"user"`
	Comments    []FeedComment `json:"comments"`
	Likes       []string      `json:"likes"`
	IsLiked     bool          `json:"isLiked"`
	IsSaved     bool          `json:"isSaved"`
	CanDelete   bool          `json:"canDelete"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type HomeResponse struct {
	Success bool       `json:"success"`
	Posts   []FeedPost `json:"posts"`
	IsAdmin bool       `json:"isAdmin"`
}

// ExploreUser is the public projection used by the explore listing.
type ExploreUser struct {
	Username   string `json:"username"`
	Fullname   string `json:"fullname"`
	ProfilePic string `json:"profilepic"`
	UserID     string `json:"userid"`
}
