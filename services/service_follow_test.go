package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextFollowState(t *testing.T) {
	tests := []struct {
		name      string
		private   bool
		following bool
		pending   bool
		want      FollowOutcome
	}{
		{
			name: "public new follow",
			want: FollowOutcome{Action: FollowActionFollow, IsFollowing: true, Message: "user followed"},
		},
		{
			name:      "public unfollow",
			following: true,
			want:      FollowOutcome{Action: FollowActionUnfollow, Message: "user unfollowed"},
		},
		{
			name:    "private new request",
			private: true,
			want:    FollowOutcome{Action: FollowActionRequest, IsPending: true, Message: "Follow request sent"},
		},
		{
			name:    "private cancel request",
			private: true,
			pending: true,
			want:    FollowOutcome{Action: FollowActionCancelRequest, Message: "Follow request canceled"},
		},
		{
			name:      "private accepted follower unfollows",
			private:   true,
			following: true,
			want:      FollowOutcome{Action: FollowActionUnfollow, Message: "user unfollowed"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextFollowState(tt.private, tt.following, tt.pending))
		})
	}
}

// Two consecutive calls always return the relation to where it started,
// whichever branch the first call took.
func TestNextFollowStateDoubleCallRoundTrip(t *testing.T) {
	for _, private := range []bool{false, true} {
		first := NextFollowState(private, false, false)
		second := NextFollowState(private, first.IsFollowing, first.IsPending)
		assert.False(t, second.IsFollowing)
		assert.False(t, second.IsPending)
	}
}

// Only an accept can turn a private pending request into a follow; the
// follow call itself never does.
func TestNextFollowStatePendingNeverPromotes(t *testing.T) {
	out := NextFollowState(true, false, true)
	assert.False(t, out.IsFollowing)
	assert.Equal(t, FollowActionCancelRequest, out.Action)
}
