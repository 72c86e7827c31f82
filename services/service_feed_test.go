package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"eduno_backend/internal/repository"
	"eduno_backend/model"
)

func feedFixture() (viewer *model.User, ownPost, otherPost repository.PostWithAuthor) {
	viewerID := bson.NewObjectID()
	otherID := bson.NewObjectID()

	ownPost = repository.PostWithAuthor{
		Post: model.Post{
			ID:        bson.NewObjectID(),
			Heading:   "my notes",
			UserID:    viewerID,
			Likes:     []bson.ObjectID{},
			Comments:  []model.Comment{},
			CreatedAt: time.Now().UTC(),
		},
		Author: &repository.PostAuthor{ID: viewerID, Username: "me", ProfilePic: "pic.jpg"},
	}
	otherPost = repository.PostWithAuthor{
		Post: model.Post{
			ID:       bson.NewObjectID(),
			Heading:  "their notes",
			UserID:   otherID,
			Likes:    []bson.ObjectID{viewerID},
			Comments: []model.Comment{},
		},
		Author: &repository.PostAuthor{ID: otherID, Username: "them"},
	}

	viewer = &model.User{
		ID:         viewerID,
		Username:   "me",
		LikedPosts: []bson.ObjectID{otherPost.ID},
		SavedPosts: []bson.ObjectID{ownPost.ID},
	}
	return
}

func TestBuildFeedViewerFlags(t *testing.T) {
	viewer, ownPost, otherPost := feedFixture()

	feed := BuildFeed([]repository.PostWithAuthor{ownPost, otherPost}, viewer)
	require.Len(t, feed, 2)

	own, other := feed[0], feed[1]

	assert.True(t, own.CanDelete, "owner can delete their post")
	assert.False(t, own.IsLiked)
	assert.True(t, own.IsSaved)

	assert.False(t, other.CanDelete)
	assert.True(t, other.IsLiked, "viewer id present in likes")
	assert.False(t, other.IsSaved)
	assert.Equal(t, []string{viewer.ID.Hex()}, other.Likes)
}

func TestBuildFeedAdminCanDeleteAnything(t *testing.T) {
	viewer, _, otherPost := feedFixture()
	viewer.IsAdmin = true

	feed := BuildFeed([]repository.PostWithAuthor{otherPost}, viewer)
	require.Len(t, feed, 1)
	assert.True(t, feed[0].CanDelete)
}

func TestBuildFeedDropsOrphanedPosts(t *testing.T) {
	viewer, ownPost, _ := feedFixture()
	orphan := repository.PostWithAuthor{
		Post:   model.Post{ID: bson.NewObjectID(), Heading: "no author"},
		Author: nil,
	}

	feed := BuildFeed([]repository.PostWithAuthor{orphan, ownPost}, viewer)
	require.Len(t, feed, 1)
	assert.Equal(t, "my notes", feed[0].Heading)
}

func TestBuildFeedOptionalProfilePic(t *testing.T) {
	viewer, ownPost, otherPost := feedFixture()

	feed := BuildFeed([]repository.PostWithAuthor{ownPost, otherPost}, viewer)
	require.Len(t, feed, 2)

	require.NotNil(t, feed[0].User.ProfilePic)
	assert.Equal(t, "pic.jpg", *feed[0].User.ProfilePic)
	assert.Nil(t, feed[1].User.ProfilePic, "empty pic serialises as null")
}
