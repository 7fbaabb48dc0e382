package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserInfo represents basic user information embedded in auth responses
type UserInfo struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role" example:"STUDENT" enums:"STUDENT,FACULTY,ADMIN"`
}

// LoginResponse represents the result of a login attempt. On failure Success
// is false and Message carries a generic reason; Token and User are omitted.
type LoginResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Token     string    `json:"token,omitempty"`
	TokenType string    `json:"tokenType,omitempty" example:"Bearer"`
	ExpiresIn int64     `json:"expiresIn,omitempty"`
	User      *UserInfo `json:"user,omitempty"`
}

// LogoutRequest represents a logout request
type LogoutRequest struct {
	Token string `json:"token" binding:"required"`
}

// ValidateTokenRequest represents a token validation request
type ValidateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// ValidateTokenResponse reports token validity. An invalid, expired or
// tampered token yields Valid false rather than an error.
type ValidateTokenResponse struct {
	Valid bool      `json:"valid"`
	User  *UserInfo `json:"user,omitempty"`
}
