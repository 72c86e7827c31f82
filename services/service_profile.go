package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eduno_backend/dto"
	"eduno_backend/internal/repository"
	"eduno_backend/internal/token"
	"eduno_backend/model"
)

var ErrNothingToUpdate = errors.New("nothing to update")

type ProfilePage struct {
	User      *model.User    `json:"user"`
	Followers []dto.UserCard `json:"followers"`
	Following []dto.UserCard `json:"following"`
}

type ProfileView struct {
	Page          ProfilePage
	IsOwnProfile  bool
	IsFollowing   bool
	IsPending     bool
	CurrentUserID string
}

// Profile returns a user's public profile with resolved follower/following
// display info. A bad or missing token degrades to the anonymous view
// instead of failing; the viewer-relative flags just stay false.
func Profile(ctx context.Context, db *mongo.Database, secret, userIDHex, rawToken string) (*ProfileView, error) {
	userID, err := bson.ObjectIDFromHex(userIDHex)
	if err != nil {
		return nil, ErrUserNotFound
	}
	user, err := repository.FindUserByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Password = ""

	followers, err := repository.FindUserCards(ctx, db, user.Followers)
	if err != nil {
		return nil, err
	}
	following, err := repository.FindUserCards(ctx, db, user.Following)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{
		Page: ProfilePage{User: user, Followers: followers, Following: following},
	}

	if rawToken != "" {
		if claims, err := token.Verify(secret, rawToken); err == nil {
			view.CurrentUserID = claims.UserID
			view.IsOwnProfile = claims.UserID == user.ID.Hex()
			if !view.IsOwnProfile {
				if viewerID, err := bson.ObjectIDFromHex(claims.UserID); err == nil {
					view.IsFollowing = user.HasFollower(viewerID)
					view.IsPending = user.HasPendingFollow(viewerID)
				}
			}
		}
	}
	return view, nil
}

// UpdateProfile applies only the supplied fields, located via the token's
// username claim.
func UpdateProfile(ctx context.Context, db *mongo.Database, username string, body dto.UpdateProfileDTO) (*model.User, error) {
	fields := bson.M{}
	if body.Fullname != "" {
		fields["fullname"] = body.Fullname
	}
	if body.Bio != "" {
		fields["bio"] = body.Bio
	}
	if body.DOB != "" {
		fields["dob"] = body.DOB
	}
	if body.Gender != "" {
		fields["gender"] = body.Gender
	}
	if len(fields) == 0 {
		return nil, ErrNothingToUpdate
	}

	user, err := repository.UpdateUserFields(ctx, db, username, fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// SetDOB validates and stores a date of birth keyed by the token's userId.
func SetDOB(ctx context.Context, db *mongo.Database, userIDHex, dob string) (*model.User, error) {
	parsed, err := ParseDOB(dob)
	if err != nil {
		return nil, err
	}
	userID, err := bson.ObjectIDFromHex(userIDHex)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := repository.UpdateUserFieldsByID(ctx, db, userID, bson.M{"dob": parsed})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}

var ErrInvalidDOB = errors.New("invalid DOB format")

var dobLayouts = []string{"2006-01-02", time.RFC3339, "01/02/2006"}

func ParseDOB(s string) (string, error) {
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", ErrInvalidDOB
}

// Notifications returns the log newest-first.
func Notifications(ctx context.Context, db *mongo.Database, userIDHex string) ([]model.Notification, error) {
	userID, err := bson.ObjectIDFromHex(userIDHex)
	if err != nil {
		return nil, ErrUserNotFound
	}
	user, err := repository.FindUserByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return SortNotificationsNewestFirst(user.Notifications), nil
}

func ClearNotifications(ctx context.Context, db *mongo.Database, userIDHex string) error {
	userID, err := bson.ObjectIDFromHex(userIDHex)
	if err != nil {
		return ErrUserNotFound
	}
	return repository.ClearNotifications(ctx, db, userID)
}

// SortNotificationsNewestFirst orders by entry recency; the log itself is
// append-only.
func SortNotificationsNewestFirst(notifs []model.Notification) []model.Notification {
	out := make([]model.Notification, len(notifs))
	copy(out, notifs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Self loads the caller's own document by username claim.
func Self(ctx context.Context, db *mongo.Database, username string) (*model.User, error) {
	user, err := repository.FindUserByUsername(ctx, db, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// Explore lists every user's public card.
func Explore(ctx context.Context, db *mongo.Database) ([]dto.ExploreUser, error) {
	users, err := repository.ListUsers(ctx, db)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExploreUser, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ExploreUser{
			Username:   u.Username,
			Fullname:   u.Fullname,
			ProfilePic: u.ProfilePic,
			UserID:     u.ID.Hex(),
		})
	}
	return out, nil
}
