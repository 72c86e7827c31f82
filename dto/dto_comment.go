package dto

type AddCommentDTO struct {
	Token       string `json:"token" validate:"required"`
	CommentText string `json:"commenttext" validate:"required,min=1,max=2000"`
	PostID      string `json:"postid" validate:"required"`
}
