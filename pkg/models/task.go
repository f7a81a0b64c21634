package models

import (
	"time"

	"github.com/devflow-ai/devflow/ent"
)

// TaskType classifies what kind of coding work a task asks for.
type TaskType string

// Task type constants. Values match the coding_tasks.type enum.
const (
	TaskTypeBugFix        TaskType = "bug_fix"
	TaskTypeFeature       TaskType = "feature"
	TaskTypeRefactor      TaskType = "refactor"
	TaskTypeDocumentation TaskType = "documentation"
	TaskTypeTest          TaskType = "test"
	TaskTypeDeployment    TaskType = "deployment"
)

// Complexity grades how hard a task is expected to be.
type Complexity string

// Complexity constants. Values match the coding_tasks.complexity enum.
const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
	ComplexityEpic    Complexity = "epic"
)

// CreateTaskRequest contains fields for creating a new coding task.
type CreateTaskRequest struct {
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateTaskRequest contains the mutable task fields.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ExecuteTaskRequest optionally pins the execution strategy, bypassing
// classification.
type ExecuteTaskRequest struct {
	Strategy string `json:"strategy,omitempty"`
}

// TaskListParams contains filtering and pagination options for listing tasks.
type TaskListParams struct {
	UserID   string `json:"user_id,omitempty"`
	Search   string `json:"search,omitempty"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// TaskListResponse contains a paginated task list.
type TaskListResponse struct {
	Tasks      []*ent.CodingTask `json:"tasks"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

// Classification contains the resolved (type, complexity) pair applied to a
// task, whether it came from the ML classifier or the heuristic.
type Classification struct {
	TaskType   TaskType   `json:"task_type"`
	Complexity Complexity `json:"complexity"`
	Confidence float64    `json:"confidence"`
	Source     string     `json:"source"` // "ml" or "heuristic" or "manual"
}

// ExecutionSample is one finished execution fed into the performance tracker
// and the A/B engine.
type ExecutionSample struct {
	Model        string
	TaskType     TaskType
	Complexity   Complexity
	Success      bool
	TokensUsed   int
	Cost         float64
	Duration     time.Duration
	QualityScore *float64 // optional, in [1,10]
}
