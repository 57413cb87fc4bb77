package dto

// TokenRequest payload for POST /jwt.
type TokenRequest struct {
	Email string `json:"email"`
}

// SuccessResponse acknowledges cookie operations.
type SuccessResponse struct {
	Success bool `json:"success"`
}
