package auth

// LoginRequest carries the credentials posted to the authenticate endpoint.
type LoginRequest struct {
	Username   string `json:"username" validate:"required,min=1,max=50"`
	Password   string `json:"password" validate:"required,min=4,max=100"`
	RememberMe bool   `json:"rememberMe"`
}

// LoginResponse returns the signed bearer token.
type LoginResponse struct {
	IDToken string `json:"id_token"`
}

// RegisterRequest carries the fields needed to open a new account.
type RegisterRequest struct {
	Login    string `json:"login" validate:"required,min=1,max=50"`
	Password string `json:"password" validate:"required,min=4,max=100"`
}
