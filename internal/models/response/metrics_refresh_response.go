package response

import "time"

// MetricsRefreshResponse summarizes one metrics refresh run
type MetricsRefreshResponse struct {
	Message   string    `json:"message"`
	Processed int       `json:"processed"`
	Updated   int       `json:"updated"`
	Failed    int       `json:"failed"`
	Timestamp time.Time `json:"timestamp"`
}
