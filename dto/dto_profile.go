package dto

type ProfilePageDTO struct {
	UserID string `json:"userid" validate:"required"`
	Token  string `json:"token"`
}

type UpdateProfileDTO struct {
	Token    string `json:"token" validate:"required"`
	Fullname string `json:"fullname"`
	Bio      string `json:"bio"`
	DOB      string `json:"dob"`
	Gender   string `json:"gender"`
}

type AddDOBDTO struct {
	Token string `json:"token" validate:"required"`
	DOB   string `json:"dob" validate:"required"`
}

// UserCard is the resolved display info for one follower/following entry.
type UserCard struct {
	UserID     string `json:"userid"`
	Username   string `json:"username"`
	Fullname   string `json:"fullname"`
	ProfilePic string `json:"profilepic"`
}
