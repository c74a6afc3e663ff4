package dto

// HealthResponse is returned by GET /api/health
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
