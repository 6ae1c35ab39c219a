package models

// Pagination describes the position of a listing page.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int64 `json:"pages"`
}

// PostListResponse is the body of GET /blogs.
type PostListResponse struct {
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

// SignupResponse is the body of a successful POST /auth/signup.
type SignupResponse struct {
	Message string      `json:"message"`
	User    UserProfile `json:"user"`
}

// LoginResponse is the body of a successful POST /auth/login. The token is
// also set as an HTTP-only cookie.
type LoginResponse struct {
	Message string      `json:"message"`
	User    UserProfile `json:"user"`
	Token   string      `json:"token"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every error response. Error is a short
// machine-readable reason; Message is only set for validation failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
