package models

import "time"

// CreateABTestRequest contains fields for declaring a new A/B test.
// TrafficPercent is a pointer so an explicit 0 (all traffic to the control)
// stays distinguishable from unset (engine default).
type CreateABTestRequest struct {
	Name           string     `json:"name"`
	ModelA         string     `json:"model_a"`
	ModelB         string     `json:"model_b"`
	TaskType       TaskType   `json:"task_type,omitempty"`
	TrafficPercent *int       `json:"traffic_percent,omitempty"`
	MinSamples     int        `json:"min_samples,omitempty"`
	EndsAt         *time.Time `json:"ends_at,omitempty"`
}

// VariantStats aggregates the recorded outcomes for one variant of a test.
type VariantStats struct {
	Model         string   `json:"model"`
	Samples       int      `json:"samples"`
	Successes     int      `json:"successes"`
	SuccessRate   float64  `json:"success_rate"`
	AvgDurationMs float64  `json:"avg_duration_ms"`
	AvgTokens     float64  `json:"avg_tokens"`
	AvgCost       float64  `json:"avg_cost"`
	AvgQuality    *float64 `json:"avg_quality,omitempty"`
}

// ABTestResults is the aggregated view of a test, including the winner once
// statistical significance is reached.
type ABTestResults struct {
	TestID   string       `json:"test_id"`
	VariantA VariantStats `json:"variant_a"`
	VariantB VariantStats `json:"variant_b"`
	// ZScore is the two-proportion z statistic on the success-rate
	// difference; 0 until both variants reach the sample floor.
	ZScore      float64 `json:"z_score"`
	Significant bool    `json:"significant"`
	Winner      string  `json:"winner,omitempty"`
}
