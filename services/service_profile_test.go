package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eduno_backend/model"
)

func TestParseDOB(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"iso date", "1999-12-31", "1999-12-31", false},
		{"rfc3339", "1999-12-31T00:00:00Z", "1999-12-31", false},
		{"us slashes", "12/31/1999", "1999-12-31", false},
		{"garbage", "yesterday", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDOB(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDOB)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortNotificationsNewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	notifs := []model.Notification{
		{Message: "first", CreatedAt: base},
		{Message: "third", CreatedAt: base.Add(2 * time.Minute)},
		{Message: "second", CreatedAt: base.Add(time.Minute)},
	}

	got := SortNotificationsNewestFirst(notifs)

	assert.Equal(t, "third", got[0].Message)
	assert.Equal(t, "second", got[1].Message)
	assert.Equal(t, "first", got[2].Message)
	assert.Equal(t, "first", notifs[0].Message)
}
