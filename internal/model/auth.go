package model

// SignupRequest represents registration parameters
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SigninRequest represents login parameters
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the signed bearer token returned on signin
type TokenResponse struct {
	Token string `json:"token"`
}
