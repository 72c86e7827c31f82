package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"eduno_backend/dto"
	"eduno_backend/internal/repository"
	"eduno_backend/internal/token"
	"eduno_backend/model"
)

var (
	ErrUserExists     = errors.New("user already exists")
	ErrBadCredentials = errors.New("username or password is incorrect")
	ErrUserNotFound   = errors.New("user not found")
)

// NormalizeUsername is the canonical stored form: trimmed and lowercased.
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Register creates a user and hands back a signed token. The username is
// stored lowercased so later lookups are exact matches; the unique index
// catches the race between the existence check and the insert.
func Register(ctx context.Context, db *mongo.Database, secret string, body dto.RegisterDTO) (*dto.RegisterResponse, error) {
	username := NormalizeUsername(body.Username)

	taken, err := repository.UsernameTaken(ctx, db, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:       username,
		Fullname:       body.Fullname,
		Password:       string(hashed),
		ProfilePic:     DefaultProfilePic,
		Followers:      []bson.ObjectID{},
		Following:      []bson.ObjectID{},
		PendingFollows: []bson.ObjectID{},
		Posts:          []bson.ObjectID{},
		LikedPosts:     []bson.ObjectID{},
		SavedPosts:     []bson.ObjectID{},
		Notifications:  []model.Notification{},
	}

	dup, err := repository.InsertUser(ctx, db, user)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrUserExists
	}

	usertoken, err := token.Sign(secret, user.ID.Hex(), user.Username)
	if err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		Message:   "User created successfully",
		UserToken: usertoken,
		User: dto.RegisteredUser{
			ID:       user.ID.Hex(),
			Username: user.Username,
			Fullname: user.Fullname,
		},
	}, nil
}

// Login checks credentials and issues a token. A missing user and a wrong
// password are indistinguishable to the caller.
func Login(ctx context.Context, db *mongo.Database, secret string, body dto.LoginDTO) (*dto.LoginResponse, error) {
	user, err := repository.FindUserByUsername(ctx, db, body.Username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)) != nil {
		return nil, ErrBadCredentials
	}

	tok, err := token.Sign(secret, user.ID.Hex(), user.Username)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "Login successful",
		Token:   tok,
		User: dto.LoginUser{
			ID:       user.ID.Hex(),
			Username: user.Username,
		},
	}, nil
}
