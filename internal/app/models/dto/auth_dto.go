package dto

// LoginRequest represents the login form
type LoginRequest struct {
	Name     string `form:"name"`
	Password string `form:"password"`
}

// RegisterRequest represents the registration form
type RegisterRequest struct {
	Name     string `form:"name"`
	Password string `form:"password"`
	Role     string `form:"role"`
}
