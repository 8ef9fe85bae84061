package auth

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginDTO is returned on success. ExpiresIn is in seconds.
type LoginDTO struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}
