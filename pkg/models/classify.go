package models

// ClassificationRequest is the outbound contract to the ML classifier.
type ClassificationRequest struct {
	TaskDescription string `json:"task_description"`
}

// ClassificationResponse is what the ML classifier returns for a description.
type ClassificationResponse struct {
	TaskType          TaskType   `json:"task_type"`
	Complexity        Complexity `json:"complexity"`
	Confidence        float64    `json:"confidence"`
	Reasoning         string     `json:"reasoning,omitempty"`
	ClassifierUsed    string     `json:"classifier_used,omitempty"`
	SuggestedStrategy string     `json:"suggested_strategy,omitempty"`
	EstimatedTokens   int        `json:"estimated_tokens,omitempty"`
}

// TrainingFeedback is one labelled outcome posted back to the classifier's
// training endpoint.
type TrainingFeedback struct {
	TaskDescription string     `json:"task_description"`
	TaskType        TaskType   `json:"task_type"`
	Complexity      Complexity `json:"complexity"`
	Success         bool       `json:"success"`
}
