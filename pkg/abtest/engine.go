// Package abtest runs controlled comparisons between two models. Assignment
// is a stable hash of the request id so a request always lands on the same
// variant; results are append-only rows aggregated on read.
package abtest

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"

	"github.com/devflow-ai/devflow/ent"
	entabtest "github.com/devflow-ai/devflow/ent/abtest"
	"github.com/devflow-ai/devflow/pkg/models"
)

// DefaultTrafficPercent is used when a test request leaves the traffic share
// unset.
const DefaultTrafficPercent = 10

const defaultMinSamples = 30

// Engine manages A/B test definitions and their recorded outcomes.
type Engine struct {
	db             *ent.Client
	defaultTraffic int
}

// NewEngine builds the engine. defaultTraffic outside (0,100] falls back to
// DefaultTrafficPercent.
func NewEngine(db *ent.Client, defaultTraffic int) *Engine {
	if defaultTraffic <= 0 || defaultTraffic > 100 {
		defaultTraffic = DefaultTrafficPercent
	}
	return &Engine{db: db, defaultTraffic: defaultTraffic}
}

// CreateTest declares a new active test.
func (e *Engine) CreateTest(ctx context.Context, req models.CreateABTestRequest) (*ent.ABTest, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("test name is required")
	}
	if req.ModelA == "" || req.ModelB == "" {
		return nil, fmt.Errorf("both models are required")
	}
	if req.ModelA == req.ModelB {
		return nil, fmt.Errorf("models must differ")
	}
	traffic := e.defaultTraffic
	if req.TrafficPercent != nil {
		if *req.TrafficPercent < 0 || *req.TrafficPercent > 100 {
			return nil, fmt.Errorf("traffic_percent must be in [0,100]")
		}
		// 0 is honored: all traffic sees the control, no B samples accrue.
		traffic = *req.TrafficPercent
	}
	minSamples := req.MinSamples
	if minSamples <= 0 {
		minSamples = defaultMinSamples
	}

	create := e.db.ABTest.Create().
		SetID(uuid.NewString()).
		SetName(req.Name).
		SetModelA(req.ModelA).
		SetModelB(req.ModelB).
		SetTaskType(string(req.TaskType)).
		SetTrafficPercent(traffic).
		SetMinSamples(minSamples)
	if req.EndsAt != nil {
		create.SetEndsAt(*req.EndsAt)
	}
	return create.Save(ctx)
}

// GetActiveTest returns the most recently started active test matching the
// task type (tests with an empty task type match everything), or nil when no
// test applies.
func (e *Engine) GetActiveTest(ctx context.Context, taskType models.TaskType) (*ent.ABTest, error) {
	test, err := e.db.ABTest.Query().
		Where(
			entabtest.StatusEQ(entabtest.StatusActive),
			entabtest.Or(
				entabtest.TaskTypeEQ(""),
				entabtest.TaskTypeEQ(string(taskType)),
			),
			entabtest.Or(
				entabtest.EndsAtIsNil(),
				entabtest.EndsAtGT(time.Now()),
			),
		).
		Order(ent.Desc(entabtest.FieldStartedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return test, nil
}

// SelectVariant assigns a request to a variant. The assignment is a pure
// function of (test id, request id), so repeated calls are sticky. inTest is
// false when the request falls outside the test's traffic share; such
// requests always see the control model.
func SelectVariant(test *ent.ABTest, requestID string) (model string, inTest bool) {
	h := fnv.New64a()
	h.Write([]byte(test.ID))
	h.Write([]byte(requestID))
	sum := h.Sum64()

	if sum%100 >= uint64(test.TrafficPercent) {
		return test.ModelA, false
	}
	if sum%2 == 0 {
		return test.ModelA, true
	}
	return test.ModelB, true
}

// RecordResult appends one outcome for a variant of a test.
func (e *Engine) RecordResult(ctx context.Context, testID, requestID string, sample models.ExecutionSample) error {
	create := e.db.ABTestResult.Create().
		SetID(uuid.NewString()).
		SetTestID(testID).
		SetRequestID(requestID).
		SetVariant(sample.Model).
		SetSuccess(sample.Success).
		SetDurationMs(sample.Duration.Milliseconds()).
		SetTokens(sample.TokensUsed).
		SetCost(sample.Cost)
	if sample.QualityScore != nil {
		create.SetQualityScore(*sample.QualityScore)
	}
	return create.Exec(ctx)
}

// GetResults aggregates a test's recorded outcomes and, when both variants
// have reached the sample floor, runs the significance test.
func (e *Engine) GetResults(ctx context.Context, testID string) (*models.ABTestResults, error) {
	test, err := e.db.ABTest.Get(ctx, testID)
	if err != nil {
		return nil, err
	}
	rows, err := test.QueryResults().All(ctx)
	if err != nil {
		return nil, err
	}
	return summarize(test, rows), nil
}

// EndTest marks a test completed. Variant selection stops immediately;
// recorded results stay queryable.
func (e *Engine) EndTest(ctx context.Context, testID string) error {
	return e.db.ABTest.UpdateOneID(testID).
		SetStatus(entabtest.StatusCompleted).
		Exec(ctx)
}
