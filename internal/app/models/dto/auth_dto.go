package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the issued access token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int64  `json:"expires_in"`
}

// RegisterUserRequest represents a user registration payload, shared by the
// admin, teacher and student registration endpoints.
type RegisterUserRequest struct {
	FullName    string  `json:"full_name" binding:"required,max=100"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=6"`
	DateOfBirth *string `json:"date_of_birth,omitempty" binding:"omitempty,datetime=2006-01-02"`
}
