package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"eduno_backend/model"
)

func TestNextLikeState(t *testing.T) {
	tests := []struct {
		name         string
		alreadyLiked bool
		ownPost      bool
		want         LikeOutcome
	}{
		{"first like on someone's post", false, false, LikeOutcome{Remove: false, NotifyAuthor: true}},
		{"second like withdraws", true, false, LikeOutcome{Remove: true, NotifyAuthor: true}},
		{"self-like skips notification", false, true, LikeOutcome{Remove: false, NotifyAuthor: false}},
		{"self-unlike skips notification", true, true, LikeOutcome{Remove: true, NotifyAuthor: false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextLikeState(tt.alreadyLiked, tt.ownPost))
		})
	}
}

// A repeated call by the same user always flips back, so the like set can
// never accumulate duplicates for that user.
func TestNextLikeStateAlternates(t *testing.T) {
	first := NextLikeState(false, false)
	second := NextLikeState(!first.Remove, false)
	assert.False(t, first.Remove)
	assert.True(t, second.Remove)
}

func TestPostLikedBy(t *testing.T) {
	liker := bson.NewObjectID()
	other := bson.NewObjectID()
	p := &model.Post{Likes: []bson.ObjectID{liker}}

	assert.True(t, p.LikedBy(liker))
	assert.False(t, p.LikedBy(other))
}
