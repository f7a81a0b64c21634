// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/devflow-ai/devflow/ent/abtest"
	"github.com/devflow-ai/devflow/ent/abtestresult"
	"github.com/devflow-ai/devflow/ent/codingtask"
	"github.com/devflow-ai/devflow/ent/feedback"
	"github.com/devflow-ai/devflow/ent/modelmetric"
	"github.com/devflow-ai/devflow/ent/schema"
	"github.com/devflow-ai/devflow/ent/taskexecution"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	abtestFields := schema.ABTest{}.Fields()
	_ = abtestFields
	// abtestDescMinSamples is the schema descriptor for min_samples field.
	abtestDescMinSamples := abtestFields[6].Descriptor()
	// abtest.DefaultMinSamples holds the default value on creation for the min_samples field.
	abtest.DefaultMinSamples = abtestDescMinSamples.Default.(int)
	// abtestDescStartedAt is the schema descriptor for started_at field.
	abtestDescStartedAt := abtestFields[8].Descriptor()
	// abtest.DefaultStartedAt holds the default value on creation for the started_at field.
	abtest.DefaultStartedAt = abtestDescStartedAt.Default.(func() time.Time)
	abtestresultFields := schema.ABTestResult{}.Fields()
	_ = abtestresultFields
	// abtestresultDescCreatedAt is the schema descriptor for created_at field.
	abtestresultDescCreatedAt := abtestresultFields[9].Descriptor()
	// abtestresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	abtestresult.DefaultCreatedAt = abtestresultDescCreatedAt.Default.(func() time.Time)
	codingtaskFields := schema.CodingTask{}.Fields()
	_ = codingtaskFields
	// codingtaskDescCreatedAt is the schema descriptor for created_at field.
	codingtaskDescCreatedAt := codingtaskFields[9].Descriptor()
	// codingtask.DefaultCreatedAt holds the default value on creation for the created_at field.
	codingtask.DefaultCreatedAt = codingtaskDescCreatedAt.Default.(func() time.Time)
	feedbackFields := schema.Feedback{}.Fields()
	_ = feedbackFields
	// feedbackDescCreatedAt is the schema descriptor for created_at field.
	feedbackDescCreatedAt := feedbackFields[8].Descriptor()
	// feedback.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedback.DefaultCreatedAt = feedbackDescCreatedAt.Default.(func() time.Time)
	modelmetricFields := schema.ModelMetric{}.Fields()
	_ = modelmetricFields
	// modelmetricDescExecutions is the schema descriptor for executions field.
	modelmetricDescExecutions := modelmetricFields[1].Descriptor()
	// modelmetric.DefaultExecutions holds the default value on creation for the executions field.
	modelmetric.DefaultExecutions = modelmetricDescExecutions.Default.(int)
	// modelmetricDescSuccesses is the schema descriptor for successes field.
	modelmetricDescSuccesses := modelmetricFields[2].Descriptor()
	// modelmetric.DefaultSuccesses holds the default value on creation for the successes field.
	modelmetric.DefaultSuccesses = modelmetricDescSuccesses.Default.(int)
	// modelmetricDescAvgTokens is the schema descriptor for avg_tokens field.
	modelmetricDescAvgTokens := modelmetricFields[3].Descriptor()
	// modelmetric.DefaultAvgTokens holds the default value on creation for the avg_tokens field.
	modelmetric.DefaultAvgTokens = modelmetricDescAvgTokens.Default.(float64)
	// modelmetricDescAvgCost is the schema descriptor for avg_cost field.
	modelmetricDescAvgCost := modelmetricFields[4].Descriptor()
	// modelmetric.DefaultAvgCost holds the default value on creation for the avg_cost field.
	modelmetric.DefaultAvgCost = modelmetricDescAvgCost.Default.(float64)
	// modelmetricDescAvgDurationMs is the schema descriptor for avg_duration_ms field.
	modelmetricDescAvgDurationMs := modelmetricFields[5].Descriptor()
	// modelmetric.DefaultAvgDurationMs holds the default value on creation for the avg_duration_ms field.
	modelmetric.DefaultAvgDurationMs = modelmetricDescAvgDurationMs.Default.(float64)
	// modelmetricDescUpdatedAt is the schema descriptor for updated_at field.
	modelmetricDescUpdatedAt := modelmetricFields[8].Descriptor()
	// modelmetric.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	modelmetric.DefaultUpdatedAt = modelmetricDescUpdatedAt.Default.(func() time.Time)
	// modelmetric.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	modelmetric.UpdateDefaultUpdatedAt = modelmetricDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskexecutionFields := schema.TaskExecution{}.Fields()
	_ = taskexecutionFields
	// taskexecutionDescStartedAt is the schema descriptor for started_at field.
	taskexecutionDescStartedAt := taskexecutionFields[4].Descriptor()
	// taskexecution.DefaultStartedAt holds the default value on creation for the started_at field.
	taskexecution.DefaultStartedAt = taskexecutionDescStartedAt.Default.(func() time.Time)
	// taskexecutionDescSuccess is the schema descriptor for success field.
	taskexecutionDescSuccess := taskexecutionFields[6].Descriptor()
	// taskexecution.DefaultSuccess holds the default value on creation for the success field.
	taskexecution.DefaultSuccess = taskexecutionDescSuccess.Default.(bool)
	// taskexecutionDescTokensUsed is the schema descriptor for tokens_used field.
	taskexecutionDescTokensUsed := taskexecutionFields[7].Descriptor()
	// taskexecution.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	taskexecution.DefaultTokensUsed = taskexecutionDescTokensUsed.Default.(int)
	// taskexecutionDescCost is the schema descriptor for cost field.
	taskexecutionDescCost := taskexecutionFields[8].Descriptor()
	// taskexecution.DefaultCost holds the default value on creation for the cost field.
	taskexecution.DefaultCost = taskexecutionDescCost.Default.(float64)
	// taskexecutionDescDurationMs is the schema descriptor for duration_ms field.
	taskexecutionDescDurationMs := taskexecutionFields[9].Descriptor()
	// taskexecution.DefaultDurationMs holds the default value on creation for the duration_ms field.
	taskexecution.DefaultDurationMs = taskexecutionDescDurationMs.Default.(int64)
	// taskexecutionDescIterations is the schema descriptor for iterations field.
	taskexecutionDescIterations := taskexecutionFields[10].Descriptor()
	// taskexecution.DefaultIterations holds the default value on creation for the iterations field.
	taskexecution.DefaultIterations = taskexecutionDescIterations.Default.(int)
}
