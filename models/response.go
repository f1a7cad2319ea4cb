package models

// WorksResponse is the response for GET /api/v1/works.
type WorksResponse struct {
	// Count is the number of works returned after filtering.
	Count int `json:"count"`

	// Works holds the matching records in their response order.
	Works []Work `json:"works"`
}

// HealthResponse is the response for GET /api/v1/health.
type HealthResponse struct {
	Status  string `json:"status"` // "healthy" or "degraded"
	Uptime  string `json:"uptime"`
	Works   int    `json:"works"`
	Dataset string `json:"dataset"`
	Version string `json:"version"`
}

// ErrorResponse is the uniform error body for API failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
