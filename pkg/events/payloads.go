package events

import "time"

// TaskCreatedPayload announces a newly submitted task.
type TaskCreatedPayload struct {
	Type      string    `json:"type"`
	TaskID    string    `json:"task_id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
}

// TaskStartedPayload announces that an execution began for a task.
type TaskStartedPayload struct {
	Type        string    `json:"type"`
	TaskID      string    `json:"task_id"`
	ExecutionID string    `json:"execution_id"`
	Strategy    string    `json:"strategy"`
	Model       string    `json:"model"`
	Timestamp   time.Time `json:"timestamp"`
}

// TaskCompletedPayload announces a successfully finished task.
type TaskCompletedPayload struct {
	Type        string    `json:"type"`
	TaskID      string    `json:"task_id"`
	ExecutionID string    `json:"execution_id"`
	Strategy    string    `json:"strategy"`
	TokensUsed  int       `json:"tokens_used"`
	Cost        float64   `json:"cost"`
	DurationMs  int64     `json:"duration_ms"`
	PRNumber    *int      `json:"pr_number,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// TaskFailedPayload announces a terminally failed task. The usage fields
// reflect what the failed execution consumed before giving up.
type TaskFailedPayload struct {
	Type        string    `json:"type"`
	TaskID      string    `json:"task_id"`
	ExecutionID string    `json:"execution_id"`
	Strategy    string    `json:"strategy"`
	TokensUsed  int       `json:"tokens_used"`
	Cost        float64   `json:"cost"`
	DurationMs  int64     `json:"duration_ms"`
	Errors      []string  `json:"errors,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// PullRequestCreatedPayload announces the PR opened for a completed task.
type PullRequestCreatedPayload struct {
	Type      string    `json:"type"`
	TaskID    string    `json:"task_id"`
	Number    int       `json:"number"`
	URL       string    `json:"url"`
	Timestamp time.Time `json:"timestamp"`
}
