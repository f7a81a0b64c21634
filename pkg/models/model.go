package models

import "time"

// ModelCapability is a bit flag describing what a model can do.
type ModelCapability uint8

// Capability flags.
const (
	CapCodeGeneration ModelCapability = 1 << iota
	CapChatCompletion
	CapAnalysis
	CapReview
	CapDocumentation
	CapTesting

	CapAll = CapCodeGeneration | CapChatCompletion | CapAnalysis |
		CapReview | CapDocumentation | CapTesting
)

// Has reports whether c includes every flag in want.
func (c ModelCapability) Has(want ModelCapability) bool {
	return c&want == want
}

// ModelInfo describes one model known to the registry.
type ModelInfo struct {
	Name         string          `json:"name"`
	Provider     string          `json:"provider"`
	DisplayName  string          `json:"display_name"`
	Capabilities ModelCapability `json:"capabilities"`
	Available    bool            `json:"available"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BucketStats is the success-rate aggregate for one (task type, complexity)
// pair.
type BucketStats struct {
	Executions int     `json:"executions"`
	Successes  int     `json:"successes"`
	AvgCost    float64 `json:"avg_cost"`
	// AvgDurationMs is kept in milliseconds so buckets serialize cleanly.
	AvgDurationMs float64 `json:"avg_duration_ms"`
}

// SuccessRate returns the bucket success rate, 0 when empty.
func (b BucketStats) SuccessRate() float64 {
	if b.Executions == 0 {
		return 0
	}
	return float64(b.Successes) / float64(b.Executions)
}

// ModelPerformanceMetrics is the rolling aggregate for one model.
type ModelPerformanceMetrics struct {
	Model         string                 `json:"model"`
	Executions    int                    `json:"executions"`
	Successes     int                    `json:"successes"`
	AvgTokens     float64                `json:"avg_tokens"`
	AvgCost       float64                `json:"avg_cost"`
	AvgDurationMs float64                `json:"avg_duration_ms"`
	AvgQuality    *float64               `json:"avg_quality,omitempty"`
	Buckets       map[string]BucketStats `json:"buckets"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// SuccessRate returns the overall success rate, 0 when no executions.
func (m *ModelPerformanceMetrics) SuccessRate() float64 {
	if m.Executions == 0 {
		return 0
	}
	return float64(m.Successes) / float64(m.Executions)
}

// BucketKey builds the map key for a (task type, complexity) bucket.
func BucketKey(taskType TaskType, complexity Complexity) string {
	return string(taskType) + "/" + string(complexity)
}

// ModelSelection is the ML model selector's decision for one request.
type ModelSelection struct {
	Model        string   `json:"model"`
	Reason       string   `json:"reason"`
	Confidence   float64  `json:"confidence"`
	IsABTest     bool     `json:"is_ab_test"`
	ABTestID     string   `json:"ab_test_id,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
}
