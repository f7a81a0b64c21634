// Code generated by ent, DO NOT EDIT.

package modelmetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/devflow-ai/devflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldContainsFold(FieldID, id))
}

// Executions applies equality check predicate on the "executions" field. It's identical to ExecutionsEQ.
func Executions(v int) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldEQ(FieldExecutions, v))
}

// Successes applies equality check predicate on the "successes" field. It's identical to SuccessesEQ.
func Successes(v int) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldEQ(FieldSuccesses, v))
}

// AvgTokens applies equality check predicate on the "avg_tokens" field. It's identical to AvgTokensEQ.
func AvgTokens(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldEQ(FieldAvgTokens, v))
}

// AvgCost applies equality check predicate on the "avg_cost" field. It's identical to AvgCostEQ.
func AvgCost(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldEQ(FieldAvgCost, v))
}

// AvgDurationMs applies equality check predicate on the "avg_duration_ms" field. It's identical to AvgDurationMsEQ.
func AvgDurationMs(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldEQ(FieldAvgDurationMs, v))
}

// AvgQuality applies equality check predicate on the "avg_quality" field. It's identical to AvgQualityEQ.
func AvgQuality(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldEQ(FieldAvgQuality, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExecutionsEQ applies the EQ predicate on the "executions" field.
func ExecutionsEQ(v int) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldEQ(FieldExecutions, v))
}

// ExecutionsNEQ applies the NEQ predicate on the "executions" field.
func ExecutionsNEQ(v int) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldNEQ(FieldExecutions, v))
}

// ExecutionsIn applies the In predicate on the "executions" field.
func ExecutionsIn(vs ...int) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldIn(FieldExecutions, vs...))
}

// ExecutionsNotIn applies the NotIn predicate on the "executions" field.
func ExecutionsNotIn(vs ...int) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldNotIn(FieldExecutions, vs...))
}

// ExecutionsGT applies the GT predicate on the "executions" field.
func ExecutionsGT(v int) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldGT(FieldExecutions, v))
}

// ExecutionsGTE applies the GTE predicate on the "executions" field.
func ExecutionsGTE(v int) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldGTE(FieldExecutions, v))
}

// ExecutionsLT applies the LT predicate on the "executions" field.
func ExecutionsLT(v int) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldLT(FieldExecutions, v))
}

// ExecutionsLTE applies the LTE predicate on the "executions" field.
func ExecutionsLTE(v int) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldLTE(FieldExecutions, v))
}

// SuccessesEQ applies the EQ predicate on the "successes" field.
func SuccessesEQ(v int) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldEQ(FieldSuccesses, v))
}

// SuccessesNEQ applies the NEQ predicate on the "successes" field.
func SuccessesNEQ(v int) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldNEQ(FieldSuccesses, v))
}

// SuccessesIn applies the In predicate on the "successes" field.
func SuccessesIn(vs ...int) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldIn(FieldSuccesses, vs...))
}

// SuccessesNotIn applies the NotIn predicate on the "successes" field.
func SuccessesNotIn(vs ...int) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldNotIn(FieldSuccesses, vs...))
}

// SuccessesGT applies the GT predicate on the "successes" field.
func SuccessesGT(v int) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldGT(FieldSuccesses, v))
}

// SuccessesGTE applies the GTE predicate on the "successes" field.
func SuccessesGTE(v int) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldGTE(FieldSuccesses, v))
}

// SuccessesLT applies the LT predicate on the "successes" field.
func SuccessesLT(v int) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldLT(FieldSuccesses, v))
}

// SuccessesLTE applies the LTE predicate on the "successes" field.
func SuccessesLTE(v int) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldLTE(FieldSuccesses, v))
}

// AvgTokensEQ applies the EQ predicate on the "avg_tokens" field.
func AvgTokensEQ(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldEQ(FieldAvgTokens, v))
}

// AvgTokensNEQ applies the NEQ predicate on the "avg_tokens" field.
func AvgTokensNEQ(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldNEQ(FieldAvgTokens, v))
}

// AvgTokensIn applies the In predicate on the "avg_tokens" field.
func AvgTokensIn(vs ...float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldIn(FieldAvgTokens, vs...))
}

// AvgTokensNotIn applies the NotIn predicate on the "avg_tokens" field.
func AvgTokensNotIn(vs ...float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldNotIn(FieldAvgTokens, vs...))
}

// AvgTokensGT applies the GT predicate on the "avg_tokens" field.
func AvgTokensGT(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldGT(FieldAvgTokens, v))
}

// AvgTokensGTE applies the GTE predicate on the "avg_tokens" field.
func AvgTokensGTE(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldGTE(FieldAvgTokens, v))
}

// AvgTokensLT applies the LT predicate on the "avg_tokens" field.
func AvgTokensLT(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldLT(FieldAvgTokens, v))
}

// AvgTokensLTE applies the LTE predicate on the "avg_tokens" field.
func AvgTokensLTE(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldLTE(FieldAvgTokens, v))
}

// AvgCostEQ applies the EQ predicate on the "avg_cost" field.
func AvgCostEQ(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldEQ(FieldAvgCost, v))
}

// AvgCostNEQ applies the NEQ predicate on the "avg_cost" field.
func AvgCostNEQ(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldNEQ(FieldAvgCost, v))
}

// AvgCostIn applies the In predicate on the "avg_cost" field.
func AvgCostIn(vs ...float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldIn(FieldAvgCost, vs...))
}

// AvgCostNotIn applies the NotIn predicate on the "avg_cost" field.
func AvgCostNotIn(vs ...float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldNotIn(FieldAvgCost, vs...))
}

// AvgCostGT applies the GT predicate on the "avg_cost" field.
func AvgCostGT(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldGT(FieldAvgCost, v))
}

// AvgCostGTE applies the GTE predicate on the "avg_cost" field.
func AvgCostGTE(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldGTE(FieldAvgCost, v))
}

// AvgCostLT applies the LT predicate on the "avg_cost" field.
func AvgCostLT(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldLT(FieldAvgCost, v))
}

// AvgCostLTE applies the LTE predicate on the "avg_cost" field.
func AvgCostLTE(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldLTE(FieldAvgCost, v))
}

// AvgDurationMsEQ applies the EQ predicate on the "avg_duration_ms" field.
func AvgDurationMsEQ(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldEQ(FieldAvgDurationMs, v))
}

// AvgDurationMsNEQ applies the NEQ predicate on the "avg_duration_ms" field.
func AvgDurationMsNEQ(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldNEQ(FieldAvgDurationMs, v))
}

// AvgDurationMsIn applies the In predicate on the "avg_duration_ms" field.
func AvgDurationMsIn(vs ...float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldIn(FieldAvgDurationMs, vs...))
}

// AvgDurationMsNotIn applies the NotIn predicate on the "avg_duration_ms" field.
func AvgDurationMsNotIn(vs ...float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldNotIn(FieldAvgDurationMs, vs...))
}

// AvgDurationMsGT applies the GT predicate on the "avg_duration_ms" field.
func AvgDurationMsGT(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldGT(FieldAvgDurationMs, v))
}

// AvgDurationMsGTE applies the GTE predicate on the "avg_duration_ms" field.
func AvgDurationMsGTE(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldGTE(FieldAvgDurationMs, v))
}

// AvgDurationMsLT applies the LT predicate on the "avg_duration_ms" field.
func AvgDurationMsLT(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldLT(FieldAvgDurationMs, v))
}

// AvgDurationMsLTE applies the LTE predicate on the "avg_duration_ms" field.
func AvgDurationMsLTE(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldLTE(FieldAvgDurationMs, v))
}

// AvgQualityEQ applies the EQ predicate on the "avg_quality" field.
func AvgQualityEQ(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldEQ(FieldAvgQuality, v))
}

// AvgQualityNEQ applies the NEQ predicate on the "avg_quality" field.
func AvgQualityNEQ(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldNEQ(FieldAvgQuality, v))
}

// AvgQualityIn applies the In predicate on the "avg_quality" field.
func AvgQualityIn(vs ...float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldIn(FieldAvgQuality, vs...))
}

// AvgQualityNotIn applies the NotIn predicate on the "avg_quality" field.
func AvgQualityNotIn(vs ...float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldNotIn(FieldAvgQuality, vs...))
}

// AvgQualityGT applies the GT predicate on the "avg_quality" field.
func AvgQualityGT(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldGT(FieldAvgQuality, v))
}

// AvgQualityGTE applies the GTE predicate on the "avg_quality" field.
func AvgQualityGTE(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldGTE(FieldAvgQuality, v))
}

// AvgQualityLT applies the LT predicate on the "avg_quality" field.
func AvgQualityLT(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldLT(FieldAvgQuality, v))
}

// AvgQualityLTE applies the LTE predicate on the "avg_quality" field.
func AvgQualityLTE(v float64) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldLTE(FieldAvgQuality, v))
}

// AvgQualityIsNil applies the IsNil predicate on the "avg_quality" field.
func AvgQualityIsNil() predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldIsNull(FieldAvgQuality))
}

// AvgQualityNotNil applies the NotNil predicate on the "avg_quality" field.
func AvgQualityNotNil() predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldNotNull(FieldAvgQuality))
}

// BucketsIsNil applies the IsNil predicate on the "buckets" field.
func BucketsIsNil() predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldIsNull(FieldBuckets))
}

// BucketsNotNil applies the NotNil predicate on the "buckets" field.
func BucketsNotNil() predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldNotNull(FieldBuckets))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ModelMetric {
	return predicate.ModelMetric(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModelMetric) predicate.ModelMetric {
	return predicate.ModelMetric(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModelMetric) predicate.ModelMetric {
	return predicate.ModelMetric(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModelMetric) predicate.ModelMetric {
	return predicate.ModelMetric(sql.NotPredicates(p))
}
