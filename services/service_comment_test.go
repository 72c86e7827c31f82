package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"eduno_backend/model"
)

func TestSortCommentsNewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	comments := []model.Comment{
		{ID: bson.NewObjectID(), Text: "oldest", CreatedAt: base},
		{ID: bson.NewObjectID(), Text: "newest", CreatedAt: base.Add(2 * time.Hour)},
		{ID: bson.NewObjectID(), Text: "middle", CreatedAt: base.Add(time.Hour)},
	}

	got := SortCommentsNewestFirst(comments)

	assert.Equal(t, "newest", got[0].Text)
	assert.Equal(t, "middle", got[1].Text)
	assert.Equal(t, "oldest", got[2].Text)
	// input order untouched
	assert.Equal(t, "oldest", comments[0].Text)
}

func TestSortCommentsNewestFirstEmpty(t *testing.T) {
	assert.Empty(t, SortCommentsNewestFirst(nil))
}

func TestCanDeleteComment(t *testing.T) {
	author := bson.NewObjectID()
	owner := bson.NewObjectID()
	stranger := bson.NewObjectID()

	c := &model.Comment{ID: bson.NewObjectID(), User: model.CommentAuthor{ID: author}}
	p := &model.Post{ID: bson.NewObjectID(), UserID: owner}

	assert.True(t, CanDeleteComment(c, p, author.Hex()), "comment author may delete")
	assert.True(t, CanDeleteComment(c, p, owner.Hex()), "post owner may delete")
	assert.False(t, CanDeleteComment(c, p, stranger.Hex()), "anyone else may not")
}
