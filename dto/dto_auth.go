package dto

type RegisterDTO struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Fullname string `json:"fullname" validate:"required,max=100"`
}

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenDTO covers the endpoints whose whole body is the bearer token.
type TokenDTO struct {
	Token string `json:"token"`
}

type RegisteredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

type RegisterResponse struct {
	Message   string         `json:"message"`
	UserToken string         `json:"usertoken"`
	User      RegisteredUser `json:"user"`
}

type LoginUser struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
}
