package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/pkg/agent"
	"github.com/devflow-ai/devflow/pkg/models"
	"github.com/devflow-ai/devflow/pkg/validate"
)

// MultiAgent runs the Planner -> Coders -> Reviewer -> Validator -> Tester
// pipeline. Coders run in dependency waves; within a wave they execute in
// parallel bounded by maxParallel. Conflicting file edits are merged
// last-write-wins in completion order.
type MultiAgent struct {
	planner     *agent.Planner
	coder       *agent.Coder
	reviewer    *agent.Reviewer
	tester      *agent.Tester
	maxParallel int
}

// NewMultiAgent builds the strategy from its agents.
func NewMultiAgent(planner *agent.Planner, coder *agent.Coder, reviewer *agent.Reviewer, tester *agent.Tester, maxParallel int) *MultiAgent {
	if maxParallel <= 0 {
		maxParallel = 3
	}
	return &MultiAgent{
		planner:     planner,
		coder:       coder,
		reviewer:    reviewer,
		tester:      tester,
		maxParallel: maxParallel,
	}
}

// Name implements Strategy.
func (s *MultiAgent) Name() string { return NameMultiAgent }

// SupportsComplexity implements Strategy.
func (s *MultiAgent) SupportsComplexity() models.Complexity { return models.ComplexityComplex }

// Execute implements Strategy.
func (s *MultiAgent) Execute(ctx context.Context, task *ent.CodingTask, execCtx *models.TaskExecutionContext) *ExecutionResult {
	start := time.Now()
	result := &ExecutionResult{IterationsUsed: 1}

	finish := func(errs ...string) *ExecutionResult {
		result.Duration = time.Since(start)
		result.Errors = append(result.Errors, errs...)
		return result
	}
	account := func(r models.AgentResult) {
		result.TotalTokens += r.TokensUsed
		result.TotalCost += r.Cost
	}

	// Planner: fail-fast.
	planResult, plan := s.planner.Plan(ctx, task, execCtx)
	account(planResult)
	if ctx.Err() != nil {
		return finish("cancelled")
	}
	if !planResult.Success {
		return finish(append([]string{"planner failed"}, planResult.Errors...)...)
	}

	// Coders in dependency waves, completion order recorded for the merge.
	coderResults, coderErrs := s.runCoders(ctx, plan, execCtx, account)
	if ctx.Err() != nil {
		return finish("cancelled")
	}
	if len(coderErrs) > 0 {
		return finish(coderErrs...)
	}

	merged, conflicts := mergeLastWriteWins(coderResults)
	if len(conflicts) > 0 {
		slog.Info("Merged coder changes with conflicts",
			"task_id", task.ID, "conflicts", len(conflicts))
	}
	if len(merged) == 0 {
		return finish("coders produced no changes")
	}

	// Reviewer gate.
	reviewResult, review := s.reviewer.Review(ctx, merged)
	account(reviewResult)
	if ctx.Err() != nil {
		return finish("cancelled")
	}
	if !reviewResult.Success {
		return finish(append([]string{"reviewer failed"}, reviewResult.Errors...)...)
	}
	if !review.IsApproved {
		errs := append([]string{fmt.Sprintf("review rejected (severity %d)", review.Severity)}, review.Issues...)
		return finish(errs...)
	}

	// Validator gate.
	if v := validate.Validate(merged); !v.Success {
		return finish(v.Errors...)
	}

	// Tester: non-fatal.
	testResult := s.tester.GenerateTests(ctx, merged)
	account(testResult)
	if testResult.Success {
		merged = append(merged, testResult.Changes...)
	} else if ctx.Err() == nil {
		slog.Warn("Tester failed, shipping changes without generated tests",
			"task_id", task.ID, "errors", testResult.Errors)
	}
	if ctx.Err() != nil {
		return finish("cancelled")
	}

	result.Success = true
	result.Changes = merged
	result.Duration = time.Since(start)
	return result
}

// runCoders executes subtasks wave by wave. A subtask is eligible once all
// its dependencies completed successfully. Returns coder results in
// completion order.
func (s *MultiAgent) runCoders(ctx context.Context, plan *models.TaskPlan, execCtx *models.TaskExecutionContext, account func(models.AgentResult)) ([]models.AgentResult, []string) {
	done := make(map[string]bool, len(plan.SubTasks))
	ran := make(map[string]bool, len(plan.SubTasks))

	var mu sync.Mutex
	var completed []models.AgentResult
	var errs []string

	for len(done) < len(plan.SubTasks) {
		var wave []models.SubTask
		for _, st := range plan.SubTasks {
			if ran[st.ID] {
				continue
			}
			eligible := true
			for _, dep := range st.DependsOn {
				if !done[dep] {
					eligible = false
					break
				}
			}
			if eligible {
				wave = append(wave, st)
			}
		}
		if len(wave) == 0 {
			// Unreachable with a validated plan unless an earlier wave failed.
			return completed, append(errs, "no eligible subtasks remain")
		}

		g, waveCtx := errgroup.WithContext(ctx)
		g.SetLimit(s.maxParallel)
		for _, st := range wave {
			ran[st.ID] = true
			g.Go(func() error {
				r := s.coder.Implement(waveCtx, st, execCtx)

				mu.Lock()
				defer mu.Unlock()
				account(r)
				if r.Success {
					completed = append(completed, r)
					done[st.ID] = true
				} else {
					errs = append(errs, fmt.Sprintf("subtask %s failed: %v", st.ID, r.Errors))
				}
				return nil
			})
		}
		_ = g.Wait()

		if ctx.Err() != nil || len(errs) > 0 {
			return completed, errs
		}
	}

	return completed, errs
}
