package auth

// RegisterRequest contains the payload required for onboarding a new user.
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Handle          string `json:"handle" validate:"required"`
	Name            string `json:"name" validate:"required"`
}

// LoginRequest carries the credentials for an existing account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is the body returned by signup and login.
type TokenResponse struct {
	Token string `json:"token"`
}
