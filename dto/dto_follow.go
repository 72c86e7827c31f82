package dto

type FollowDTO struct {
	Token  string `json:"token" validate:"required"`
	UserID string `json:"userid" validate:"required"`
}

type FollowResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	IsFollowing   bool   `json:"isFollowing"`
	IsPending     bool   `json:"isPending"`
	CurrentUserID string `json:"currentUserId"`
}

type AcceptRequestDTO struct {
	Token            string `json:"token" validate:"required"`
	RequestingUserID string `json:"requestingUserId" validate:"required"`
}

type AcceptRequestResponse struct {
	Message        string `json:"message"`
	FollowerCount  int    `json:"followerCount"`
	FollowingCount int    `json:"followingCount"`
}
