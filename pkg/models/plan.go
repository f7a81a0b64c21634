package models

import (
	"fmt"
	"time"
)

// SubTask is a planner-produced work item inside a TaskPlan.
type SubTask struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	AffectedFiles []string `json:"affected_files"`
	// EstimatedComplexity is the planner's 1-10 difficulty estimate.
	EstimatedComplexity int      `json:"estimated_complexity"`
	DependsOn           []string `json:"depends_on,omitempty"`
}

// TaskPlan is the planner's decomposition of a task into subtasks.
type TaskPlan struct {
	SubTasks []SubTask `json:"subtasks"`
	Strategy string    `json:"strategy"`
}

// Validate checks that every dependency resolves to another subtask in the
// plan and that the dependency graph is acyclic.
func (p *TaskPlan) Validate() error {
	ids := make(map[string]bool, len(p.SubTasks))
	for _, st := range p.SubTasks {
		if st.ID == "" {
			return fmt.Errorf("subtask %q has no id", st.Title)
		}
		if ids[st.ID] {
			return fmt.Errorf("duplicate subtask id %q", st.ID)
		}
		ids[st.ID] = true
	}
	deps := make(map[string][]string, len(p.SubTasks))
	for _, st := range p.SubTasks {
		for _, dep := range st.DependsOn {
			if !ids[dep] {
				return fmt.Errorf("subtask %q depends on unknown id %q", st.ID, dep)
			}
			deps[st.ID] = append(deps[st.ID], dep)
		}
	}
	// Cycle check via coloring: 0 unvisited, 1 on stack, 2 done.
	color := make(map[string]int, len(p.SubTasks))
	var visit func(id string) error
	visit = func(id string) error {
		switch color[id] {
		case 1:
			return fmt.Errorf("dependency cycle through subtask %q", id)
		case 2:
			return nil
		}
		color[id] = 1
		for _, dep := range deps[id] {
			if err := visit(dep); err != nil {
				return err
			}
		}
		color[id] = 2
		return nil
	}
	for id := range ids {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}

// ReviewResult is the reviewer agent's structured verdict on a change set.
type ReviewResult struct {
	IsApproved bool     `json:"is_approved"`
	Issues     []string `json:"issues,omitempty"`
	// Severity grades the worst issue found, 1 (cosmetic) to 5 (blocking).
	Severity int `json:"severity"`
}

// AgentResult is the uniform output envelope from any agent.
type AgentResult struct {
	AgentName  string        `json:"agent_name"`
	Success    bool          `json:"success"`
	Changes    []CodeChange  `json:"changes,omitempty"`
	TokensUsed int           `json:"tokens_used"`
	Cost       float64       `json:"cost"`
	Duration   time.Duration `json:"duration"`
	// Output holds a serialized structured payload (plan, review) when the
	// agent produces one.
	Output string   `json:"output,omitempty"`
	Errors []string `json:"errors,omitempty"`
}
