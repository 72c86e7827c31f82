package dto

// ErrorResponse is the uniform error body. Error carries internal detail
// and is only populated in development mode.
type ErrorResponse struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message" example:"invalid body"`
	Error   string `json:"error,omitempty"`
}
