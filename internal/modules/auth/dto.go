package auth

type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	// Ident may be a username or an email address.
	Ident    string `json:"ident" binding:"required"`
	Password string `json:"password" binding:"required"`
}
