package dto

type GetPostDTO struct {
	PostID string `json:"postid" validate:"required"`
}

type LikeDTO struct {
	Token  string `json:"token" validate:"required"`
	PostID string `json:"postid" validate:"required"`
}

type DeletePostDTO struct {
	Token string `json:"token" validate:"required"`
}

// UploadFields are the non-file fields of the multipart post upload. The
// token may also arrive as a bearer header, so it is not required here.
type UploadFields struct {
	Token       string `form:"token"`
	Heading     string `form:"heading"`
	ContentType string `form:"contentType" validate:"omitempty,oneof=file text"`
	TextContent string `form:"textContent"`
}
