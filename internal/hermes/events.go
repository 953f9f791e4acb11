package hermes

import "time"

type EvaluationCompletedEvent struct {
	EvaluationID string    `json:"evaluation_id"`
	Source       string    `json:"source"`
	Alternatives int       `json:"alternatives"`
	Criteria     int       `json:"criteria"`
	Winner       string    `json:"winner"`
	WinnerScore  float64   `json:"winner_score"`
	Timestamp    time.Time `json:"timestamp"`
}

type EvaluationRejectedEvent struct {
	Source    string    `json:"source"`
	Kind      string    `json:"kind"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}
