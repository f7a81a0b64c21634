package models

// Sentiment is the polarity of a piece of user feedback.
type Sentiment string

// Sentiment constants. Values match the feedback.sentiment enum.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// RecordFeedbackRequest contains fields for recording user feedback.
type RecordFeedbackRequest struct {
	TaskID      string         `json:"task_id"`
	ExecutionID string         `json:"execution_id,omitempty"`
	UserID      string         `json:"user_id"`
	Sentiment   Sentiment      `json:"sentiment"`
	Rating      float64        `json:"rating"`
	Reason      string         `json:"reason,omitempty"`
	Context     map[string]any `json:"context,omitempty"`
}

// ProcedurePattern is the per-procedure aggregate computed from feedback.
type ProcedurePattern struct {
	ProcedureID string  `json:"procedure_id"`
	Samples     int     `json:"samples"`
	SuccessRate float64 `json:"success_rate"`
	Significant bool    `json:"significant"`
}

// PatternAnalysis groups feedback for a task by procedure id.
type PatternAnalysis struct {
	TaskID   string             `json:"task_id"`
	Samples  int                `json:"samples"`
	Patterns []ProcedurePattern `json:"patterns"`
}
