package dto

// CountResponse for GET /foods-count.
type CountResponse struct {
	Count int64 `json:"count"`
}
