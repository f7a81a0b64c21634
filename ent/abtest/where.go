// Code generated by ent, DO NOT EDIT.

package abtest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/devflow-ai/devflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ABTest {
	return predicate.ABTest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ABTest {
	return predicate.ABTest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ABTest {
	return predicate.ABTest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ABTest {
	return predicate.ABTest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ABTest {
	return predicate.ABTest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ABTest {
	return predicate.ABTest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ABTest {
	return predicate.ABTest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ABTest {
	return predicate.ABTest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ABTest {
	return predicate.ABTest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ABTest {
	return predicate.ABTest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ABTest {
	return predicate.ABTest(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldEQ(FieldName, v))
}

// ModelA applies equality check predicate on the "model_a" field. It's identical to ModelAEQ.
func ModelA(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldEQ(FieldModelA, v))
}

// ModelB applies equality check predicate on the "model_b" field. It's identical to ModelBEQ.
func ModelB(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldEQ(FieldModelB, v))
}

// TaskType applies equality check predicate on the "task_type" field. It's identical to TaskTypeEQ.
func TaskType(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldEQ(FieldTaskType, v))
}

// TrafficPercent applies equality check predicate on the "traffic_percent" field. It's identical to TrafficPercentEQ.
func TrafficPercent(v int) predicate.ABTest {
	return predicate.ABTest(sql.FieldEQ(FieldTrafficPercent, v))
}

// MinSamples applies equality check predicate on the "min_samples" field. It's identical to MinSamplesEQ.
func MinSamples(v int) predicate.ABTest {
	return predicate.ABTest(sql.FieldEQ(FieldMinSamples, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ABTest {
	return predicate.ABTest(sql.FieldEQ(FieldStartedAt, v))
}

// EndsAt applies equality check predicate on the "ends_at" field. It's identical to EndsAtEQ.
func EndsAt(v time.Time) predicate.ABTest {
	return predicate.ABTest(sql.FieldEQ(FieldEndsAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ABTest {
	return predicate.ABTest(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ABTest {
	return predicate.ABTest(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldContainsFold(FieldName, v))
}

// ModelAEQ applies the EQ predicate on the "model_a" field.
func ModelAEQ(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldEQ(FieldModelA, v))
}

// ModelANEQ applies the NEQ predicate on the "model_a" field.
func ModelANEQ(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldNEQ(FieldModelA, v))
}

// ModelAIn applies the In predicate on the "model_a" field.
func ModelAIn(vs ...string) predicate.ABTest {
	return predicate.ABTest(sql.FieldIn(FieldModelA, vs...))
}

// ModelANotIn applies the NotIn predicate on the "model_a" field.
func ModelANotIn(vs ...string) predicate.ABTest {
	return predicate.ABTest(sql.FieldNotIn(FieldModelA, vs...))
}

// ModelAGT applies the GT predicate on the "model_a" field.
func ModelAGT(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldGT(FieldModelA, v))
}

// ModelAGTE applies the GTE predicate on the "model_a" field.
func ModelAGTE(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldGTE(FieldModelA, v))
}

// ModelALT applies the LT predicate on the "model_a" field.
func ModelALT(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldLT(FieldModelA, v))
}

// ModelALTE applies the LTE predicate on the "model_a" field.
func ModelALTE(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldLTE(FieldModelA, v))
}

// ModelAContains applies the Contains predicate on the "model_a" field.
func ModelAContains(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldContains(FieldModelA, v))
}

// ModelAHasPrefix applies the HasPrefix predicate on the "model_a" field.
func ModelAHasPrefix(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldHasPrefix(FieldModelA, v))
}

// ModelAHasSuffix applies the HasSuffix predicate on the "model_a" field.
func ModelAHasSuffix(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldHasSuffix(FieldModelA, v))
}

// ModelAEqualFold applies the EqualFold predicate on the "model_a" field.
func ModelAEqualFold(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldEqualFold(FieldModelA, v))
}

// ModelAContainsFold applies the ContainsFold predicate on the "model_a" field.
func ModelAContainsFold(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldContainsFold(FieldModelA, v))
}

// ModelBEQ applies the EQ predicate on the "model_b" field.
func ModelBEQ(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldEQ(FieldModelB, v))
}

// ModelBNEQ applies the NEQ predicate on the "model_b" field.
func ModelBNEQ(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldNEQ(FieldModelB, v))
}

// ModelBIn applies the In predicate on the "model_b" field.
func ModelBIn(vs ...string) predicate.ABTest {
	return predicate.ABTest(sql.FieldIn(FieldModelB, vs...))
}

// ModelBNotIn applies the NotIn predicate on the "model_b" field.
func ModelBNotIn(vs ...string) predicate.ABTest {
	return predicate.ABTest(sql.FieldNotIn(FieldModelB, vs...))
}

// ModelBGT applies the GT predicate on the "model_b" field.
func ModelBGT(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldGT(FieldModelB, v))
}

// ModelBGTE applies the GTE predicate on the "model_b" field.
func ModelBGTE(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldGTE(FieldModelB, v))
}

// ModelBLT applies the LT predicate on the "model_b" field.
func ModelBLT(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldLT(FieldModelB, v))
}

// ModelBLTE applies the LTE predicate on the "model_b" field.
func ModelBLTE(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldLTE(FieldModelB, v))
}

// ModelBContains applies the Contains predicate on the "model_b" field.
func ModelBContains(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldContains(FieldModelB, v))
}

// ModelBHasPrefix applies the HasPrefix predicate on the "model_b" field.
func ModelBHasPrefix(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldHasPrefix(FieldModelB, v))
}

// ModelBHasSuffix applies the HasSuffix predicate on the "model_b" field.
func ModelBHasSuffix(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldHasSuffix(FieldModelB, v))
}

// ModelBEqualFold applies the EqualFold predicate on the "model_b" field.
func ModelBEqualFold(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldEqualFold(FieldModelB, v))
}

// ModelBContainsFold applies the ContainsFold predicate on the "model_b" field.
func ModelBContainsFold(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldContainsFold(FieldModelB, v))
}

// TaskTypeEQ applies the EQ predicate on the "task_type" field.
func TaskTypeEQ(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldEQ(FieldTaskType, v))
}

// TaskTypeNEQ applies the NEQ predicate on the "task_type" field.
func TaskTypeNEQ(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldNEQ(FieldTaskType, v))
}

// TaskTypeIn applies the In predicate on the "task_type" field.
func TaskTypeIn(vs ...string) predicate.ABTest {
	return predicate.ABTest(sql.FieldIn(FieldTaskType, vs...))
}

// TaskTypeNotIn applies the NotIn predicate on the "task_type" field.
func TaskTypeNotIn(vs ...string) predicate.ABTest {
	return predicate.ABTest(sql.FieldNotIn(FieldTaskType, vs...))
}

// TaskTypeGT applies the GT predicate on the "task_type" field.
func TaskTypeGT(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldGT(FieldTaskType, v))
}

// TaskTypeGTE applies the GTE predicate on the "task_type" field.
func TaskTypeGTE(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldGTE(FieldTaskType, v))
}

// TaskTypeLT applies the LT predicate on the "task_type" field.
func TaskTypeLT(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldLT(FieldTaskType, v))
}

// TaskTypeLTE applies the LTE predicate on the "task_type" field.
func TaskTypeLTE(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldLTE(FieldTaskType, v))
}

// TaskTypeContains applies the Contains predicate on the "task_type" field.
func TaskTypeContains(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldContains(FieldTaskType, v))
}

// TaskTypeHasPrefix applies the HasPrefix predicate on the "task_type" field.
func TaskTypeHasPrefix(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldHasPrefix(FieldTaskType, v))
}

// TaskTypeHasSuffix applies the HasSuffix predicate on the "task_type" field.
func TaskTypeHasSuffix(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldHasSuffix(FieldTaskType, v))
}

// TaskTypeIsNil applies the IsNil predicate on the "task_type" field.
func TaskTypeIsNil() predicate.ABTest {
	return predicate.ABTest(sql.FieldIsNull(FieldTaskType))
}

// TaskTypeNotNil applies the NotNil predicate on the "task_type" field.
func TaskTypeNotNil() predicate.ABTest {
	return predicate.ABTest(sql.FieldNotNull(FieldTaskType))
}

// TaskTypeEqualFold applies the EqualFold predicate on the "task_type" field.
func TaskTypeEqualFold(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldEqualFold(FieldTaskType, v))
}

// TaskTypeContainsFold applies the ContainsFold predicate on the "task_type" field.
func TaskTypeContainsFold(v string) predicate.ABTest {
	return predicate.ABTest(sql.FieldContainsFold(FieldTaskType, v))
}

// TrafficPercentEQ applies the EQ predicate on the "traffic_percent" field.
func TrafficPercentEQ(v int) predicate.ABTest {
	return predicate.ABTest(sql.FieldEQ(FieldTrafficPercent, v))
}

// TrafficPercentNEQ applies the NEQ predicate on the "traffic_percent" field.
func TrafficPercentNEQ(v int) predicate.ABTest {
	return predicate.ABTest(sql.FieldNEQ(FieldTrafficPercent, v))
}

// TrafficPercentIn applies the In predicate on the "traffic_percent" field.
func TrafficPercentIn(vs ...int) predicate.ABTest {
	return predicate.ABTest(sql.FieldIn(FieldTrafficPercent, vs...))
}

// TrafficPercentNotIn applies the NotIn predicate on the "traffic_percent" field.
func TrafficPercentNotIn(vs ...int) predicate.ABTest {
	return predicate.ABTest(sql.FieldNotIn(FieldTrafficPercent, vs...))
}

// TrafficPercentGT applies the GT predicate on the "traffic_percent" field.
func TrafficPercentGT(v int) predicate.ABTest {
	return predicate.ABTest(sql.FieldGT(FieldTrafficPercent, v))
}

// TrafficPercentGTE applies the GTE predicate on the "traffic_percent" field.
func TrafficPercentGTE(v int) predicate.ABTest {
	return predicate.ABTest(sql.FieldGTE(FieldTrafficPercent, v))
}

// TrafficPercentLT applies the LT predicate on the "traffic_percent" field.
func TrafficPercentLT(v int) predicate.ABTest {
	return predicate.ABTest(sql.FieldLT(FieldTrafficPercent, v))
}

// TrafficPercentLTE applies the LTE predicate on the "traffic_percent" field.
func TrafficPercentLTE(v int) predicate.ABTest {
	return predicate.ABTest(sql.FieldLTE(FieldTrafficPercent, v))
}

// MinSamplesEQ applies the EQ predicate on the "min_samples" field.
func MinSamplesEQ(v int) predicate.ABTest {
	return predicate.ABTest(sql.FieldEQ(FieldMinSamples, v))
}

// MinSamplesNEQ applies the NEQ predicate on the "min_samples" field.
func MinSamplesNEQ(v int) predicate.ABTest {
	return predicate.ABTest(sql.FieldNEQ(FieldMinSamples, v))
}

// MinSamplesIn applies the In predicate on the "min_samples" field.
func MinSamplesIn(vs ...int) predicate.ABTest {
	return predicate.ABTest(sql.FieldIn(FieldMinSamples, vs...))
}

// MinSamplesNotIn applies the NotIn predicate on the "min_samples" field.
func MinSamplesNotIn(vs ...int) predicate.ABTest {
	return predicate.ABTest(sql.FieldNotIn(FieldMinSamples, vs...))
}

// MinSamplesGT applies the GT predicate on the "min_samples" field.
func MinSamplesGT(v int) predicate.ABTest {
	return predicate.ABTest(sql.FieldGT(FieldMinSamples, v))
}

// MinSamplesGTE applies the GTE predicate on the "min_samples" field.
func MinSamplesGTE(v int) predicate.ABTest {
	return predicate.ABTest(sql.FieldGTE(FieldMinSamples, v))
}

// MinSamplesLT applies the LT predicate on the "min_samples" field.
func MinSamplesLT(v int) predicate.ABTest {
	return predicate.ABTest(sql.FieldLT(FieldMinSamples, v))
}

// MinSamplesLTE applies the LTE predicate on the "min_samples" field.
func MinSamplesLTE(v int) predicate.ABTest {
	return predicate.ABTest(sql.FieldLTE(FieldMinSamples, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ABTest {
	return predicate.ABTest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ABTest {
	return predicate.ABTest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ABTest {
	return predicate.ABTest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ABTest {
	return predicate.ABTest(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ABTest {
	return predicate.ABTest(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ABTest {
	return predicate.ABTest(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ABTest {
	return predicate.ABTest(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ABTest {
	return predicate.ABTest(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ABTest {
	return predicate.ABTest(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ABTest {
	return predicate.ABTest(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ABTest {
	return predicate.ABTest(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ABTest {
	return predicate.ABTest(sql.FieldLTE(FieldStartedAt, v))
}

// EndsAtEQ applies the EQ predicate on the "ends_at" field.
func EndsAtEQ(v time.Time) predicate.ABTest {
	return predicate.ABTest(sql.FieldEQ(FieldEndsAt, v))
}

// EndsAtNEQ applies the NEQ predicate on the "ends_at" field.
func EndsAtNEQ(v time.Time) predicate.ABTest {
	return predicate.ABTest(sql.FieldNEQ(FieldEndsAt, v))
}

// EndsAtIn applies the In predicate on the "ends_at" field.
func EndsAtIn(vs ...time.Time) predicate.ABTest {
	return predicate.ABTest(sql.FieldIn(FieldEndsAt, vs...))
}

// EndsAtNotIn applies the NotIn predicate on the "ends_at" field.
func EndsAtNotIn(vs ...time.Time) predicate.ABTest {
	return predicate.ABTest(sql.FieldNotIn(FieldEndsAt, vs...))
}

// EndsAtGT applies the GT predicate on the "ends_at" field.
func EndsAtGT(v time.Time) predicate.ABTest {
	return predicate.ABTest(sql.FieldGT(FieldEndsAt, v))
}

// EndsAtGTE applies the GTE predicate on the "ends_at" field.
func EndsAtGTE(v time.Time) predicate.ABTest {
	return predicate.ABTest(sql.FieldGTE(FieldEndsAt, v))
}

// EndsAtLT applies the LT predicate on the "ends_at" field.
func EndsAtLT(v time.Time) predicate.ABTest {
	return predicate.ABTest(sql.FieldLT(FieldEndsAt, v))
}

// EndsAtLTE applies the LTE predicate on the "ends_at" field.
func EndsAtLTE(v time.Time) predicate.ABTest {
	return predicate.ABTest(sql.FieldLTE(FieldEndsAt, v))
}

// EndsAtIsNil applies the IsNil predicate on the "ends_at" field.
func EndsAtIsNil() predicate.ABTest {
	return predicate.ABTest(sql.FieldIsNull(FieldEndsAt))
}

// EndsAtNotNil applies the NotNil predicate on the "ends_at" field.
func EndsAtNotNil() predicate.ABTest {
	return predicate.ABTest(sql.FieldNotNull(FieldEndsAt))
}

// HasResults applies the HasEdge predicate on the "results" edge.
func HasResults() predicate.ABTest {
	return predicate.ABTest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultsWith applies the HasEdge predicate on the "results" edge with a given conditions (other predicates).
func HasResultsWith(preds ...predicate.ABTestResult) predicate.ABTest {
	return predicate.ABTest(func(s *sql.Selector) {
		step := newResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ABTest) predicate.ABTest {
	return predicate.ABTest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ABTest) predicate.ABTest {
	return predicate.ABTest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ABTest) predicate.ABTest {
	return predicate.ABTest(sql.NotPredicates(p))
}
