package models

// TokenResponse is returned on successful login
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"Bearer"`
}

// HealthResponse is the liveness probe body
type HealthResponse struct {
	Status string `json:"status" example:"Healthy"`
}
