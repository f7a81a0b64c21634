// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devflow-ai/devflow/ent/modelmetric"
	"github.com/devflow-ai/devflow/ent/predicate"
)

// ModelMetricUpdate is the builder for updating ModelMetric entities.
type ModelMetricUpdate struct {
	config
	hooks    []Hook
	mutation *ModelMetricMutation
}

// Where appends a list predicates to the ModelMetricUpdate builder.
func (_u *ModelMetricUpdate) Where(ps ...predicate.ModelMetric) *ModelMetricUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExecutions sets the "executions" field.
func (_u *ModelMetricUpdate) SetExecutions(v int) *ModelMetricUpdate {
	_u.mutation.ResetExecutions()
	_u.mutation.SetExecutions(v)
	return _u
}

// SetNillableExecutions sets the "executions" field if the given value is not nil.
func (_u *ModelMetricUpdate) SetNillableExecutions(v *int) *ModelMetricUpdate {
	if v != nil {
		_u.SetExecutions(*v)
	}
	return _u
}

// AddExecutions adds value to the "executions" field.
func (_u *ModelMetricUpdate) AddExecutions(v int) *ModelMetricUpdate {
	_u.mutation.AddExecutions(v)
	return _u
}

// SetSuccesses sets the "successes" field.
func (_u *ModelMetricUpdate) SetSuccesses(v int) *ModelMetricUpdate {
	_u.mutation.ResetSuccesses()
	_u.mutation.SetSuccesses(v)
	return _u
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_u *ModelMetricUpdate) SetNillableSuccesses(v *int) *ModelMetricUpdate {
	if v != nil {
		_u.SetSuccesses(*v)
	}
	return _u
}

// AddSuccesses adds value to the "successes" field.
func (_u *ModelMetricUpdate) AddSuccesses(v int) *ModelMetricUpdate {
	_u.mutation.AddSuccesses(v)
	return _u
}

// SetAvgTokens sets the "avg_tokens" field.
func (_u *ModelMetricUpdate) SetAvgTokens(v float64) *ModelMetricUpdate {
	_u.mutation.ResetAvgTokens()
	_u.mutation.SetAvgTokens(v)
	return _u
}

// SetNillableAvgTokens sets the "avg_tokens" field if the given value is not nil.
func (_u *ModelMetricUpdate) SetNillableAvgTokens(v *float64) *ModelMetricUpdate {
	if v != nil {
		_u.SetAvgTokens(*v)
	}
	return _u
}

// AddAvgTokens adds value to the "avg_tokens" field.
func (_u *ModelMetricUpdate) AddAvgTokens(v float64) *ModelMetricUpdate {
	_u.mutation.AddAvgTokens(v)
	return _u
}

// SetAvgCost sets the "avg_cost" field.
func (_u *ModelMetricUpdate) SetAvgCost(v float64) *ModelMetricUpdate {
	_u.mutation.ResetAvgCost()
	_u.mutation.SetAvgCost(v)
	return _u
}

// SetNillableAvgCost sets the "avg_cost" field if the given value is not nil.
func (_u *ModelMetricUpdate) SetNillableAvgCost(v *float64) *ModelMetricUpdate {
	if v != nil {
		_u.SetAvgCost(*v)
	}
	return _u
}

// AddAvgCost adds value to the "avg_cost" field.
func (_u *ModelMetricUpdate) AddAvgCost(v float64) *ModelMetricUpdate {
	_u.mutation.AddAvgCost(v)
	return _u
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (_u *ModelMetricUpdate) SetAvgDurationMs(v float64) *ModelMetricUpdate {
	_u.mutation.ResetAvgDurationMs()
	_u.mutation.SetAvgDurationMs(v)
	return _u
}

// SetNillableAvgDurationMs sets the "avg_duration_ms" field if the given value is not nil.
func (_u *ModelMetricUpdate) SetNillableAvgDurationMs(v *float64) *ModelMetricUpdate {
	if v != nil {
		_u.SetAvgDurationMs(*v)
	}
	return _u
}

// AddAvgDurationMs adds value to the "avg_duration_ms" field.
func (_u *ModelMetricUpdate) AddAvgDurationMs(v float64) *ModelMetricUpdate {
	_u.mutation.AddAvgDurationMs(v)
	return _u
}

// SetAvgQuality sets the "avg_quality" field.
func (_u *ModelMetricUpdate) SetAvgQuality(v float64) *ModelMetricUpdate {
	_u.mutation.ResetAvgQuality()
	_u.mutation.SetAvgQuality(v)
	return _u
}

// SetNillableAvgQuality sets the "avg_quality" field if the given value is not nil.
func (_u *ModelMetricUpdate) SetNillableAvgQuality(v *float64) *ModelMetricUpdate {
	if v != nil {
		_u.SetAvgQuality(*v)
	}
	return _u
}

// AddAvgQuality adds value to the "avg_quality" field.
func (_u *ModelMetricUpdate) AddAvgQuality(v float64) *ModelMetricUpdate {
	_u.mutation.AddAvgQuality(v)
	return _u
}

// ClearAvgQuality clears the value of the "avg_quality" field.
func (_u *ModelMetricUpdate) ClearAvgQuality() *ModelMetricUpdate {
	_u.mutation.ClearAvgQuality()
	return _u
}

// SetBuckets sets the "buckets" field.
func (_u *ModelMetricUpdate) SetBuckets(v map[string]interface{}) *ModelMetricUpdate {
	_u.mutation.SetBuckets(v)
	return _u
}

// ClearBuckets clears the value of the "buckets" field.
func (_u *ModelMetricUpdate) ClearBuckets() *ModelMetricUpdate {
	_u.mutation.ClearBuckets()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModelMetricUpdate) SetUpdatedAt(v time.Time) *ModelMetricUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ModelMetricMutation object of the builder.
func (_u *ModelMetricUpdate) Mutation() *ModelMetricMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelMetricUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelMetricUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelMetricUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelMetricUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModelMetricUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := modelmetric.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ModelMetricUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(modelmetric.Table, modelmetric.Columns, sqlgraph.NewFieldSpec(modelmetric.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Executions(); ok {
		_spec.SetField(modelmetric.FieldExecutions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutions(); ok {
		_spec.AddField(modelmetric.FieldExecutions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Successes(); ok {
		_spec.SetField(modelmetric.FieldSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccesses(); ok {
		_spec.AddField(modelmetric.FieldSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgTokens(); ok {
		_spec.SetField(modelmetric.FieldAvgTokens, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTokens(); ok {
		_spec.AddField(modelmetric.FieldAvgTokens, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgCost(); ok {
		_spec.SetField(modelmetric.FieldAvgCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgCost(); ok {
		_spec.AddField(modelmetric.FieldAvgCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgDurationMs(); ok {
		_spec.SetField(modelmetric.FieldAvgDurationMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgDurationMs(); ok {
		_spec.AddField(modelmetric.FieldAvgDurationMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgQuality(); ok {
		_spec.SetField(modelmetric.FieldAvgQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgQuality(); ok {
		_spec.AddField(modelmetric.FieldAvgQuality, field.TypeFloat64, value)
	}
	if _u.mutation.AvgQualityCleared() {
		_spec.ClearField(modelmetric.FieldAvgQuality, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Buckets(); ok {
		_spec.SetField(modelmetric.FieldBuckets, field.TypeJSON, value)
	}
	if _u.mutation.BucketsCleared() {
		_spec.ClearField(modelmetric.FieldBuckets, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(modelmetric.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelmetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelMetricUpdateOne is the builder for updating a single ModelMetric entity.
type ModelMetricUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelMetricMutation
}

// SetExecutions sets the "executions" field.
func (_u *ModelMetricUpdateOne) SetExecutions(v int) *ModelMetricUpdateOne {
	_u.mutation.ResetExecutions()
	_u.mutation.SetExecutions(v)
	return _u
}

// SetNillableExecutions sets the "executions" field if the given value is not nil.
func (_u *ModelMetricUpdateOne) SetNillableExecutions(v *int) *ModelMetricUpdateOne {
	if v != nil {
		_u.SetExecutions(*v)
	}
	return _u
}

// AddExecutions adds value to the "executions" field.
func (_u *ModelMetricUpdateOne) AddExecutions(v int) *ModelMetricUpdateOne {
	_u.mutation.AddExecutions(v)
	return _u
}

// SetSuccesses sets the "successes" field.
func (_u *ModelMetricUpdateOne) SetSuccesses(v int) *ModelMetricUpdateOne {
	_u.mutation.ResetSuccesses()
	_u.mutation.SetSuccesses(v)
	return _u
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_u *ModelMetricUpdateOne) SetNillableSuccesses(v *int) *ModelMetricUpdateOne {
	if v != nil {
		_u.SetSuccesses(*v)
	}
	return _u
}

// AddSuccesses adds value to the "successes" field.
func (_u *ModelMetricUpdateOne) AddSuccesses(v int) *ModelMetricUpdateOne {
	_u.mutation.AddSuccesses(v)
	return _u
}

// SetAvgTokens sets the "avg_tokens" field.
func (_u *ModelMetricUpdateOne) SetAvgTokens(v float64) *ModelMetricUpdateOne {
	_u.mutation.ResetAvgTokens()
	_u.mutation.SetAvgTokens(v)
	return _u
}

// SetNillableAvgTokens sets the "avg_tokens" field if the given value is not nil.
func (_u *ModelMetricUpdateOne) SetNillableAvgTokens(v *float64) *ModelMetricUpdateOne {
	if v != nil {
		_u.SetAvgTokens(*v)
	}
	return _u
}

// AddAvgTokens adds value to the "avg_tokens" field.
func (_u *ModelMetricUpdateOne) AddAvgTokens(v float64) *ModelMetricUpdateOne {
	_u.mutation.AddAvgTokens(v)
	return _u
}

// SetAvgCost sets the "avg_cost" field.
func (_u *ModelMetricUpdateOne) SetAvgCost(v float64) *ModelMetricUpdateOne {
	_u.mutation.ResetAvgCost()
	_u.mutation.SetAvgCost(v)
	return _u
}

// SetNillableAvgCost sets the "avg_cost" field if the given value is not nil.
func (_u *ModelMetricUpdateOne) SetNillableAvgCost(v *float64) *ModelMetricUpdateOne {
	if v != nil {
		_u.SetAvgCost(*v)
	}
	return _u
}

// AddAvgCost adds value to the "avg_cost" field.
func (_u *ModelMetricUpdateOne) AddAvgCost(v float64) *ModelMetricUpdateOne {
	_u.mutation.AddAvgCost(v)
	return _u
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (_u *ModelMetricUpdateOne) SetAvgDurationMs(v float64) *ModelMetricUpdateOne {
	_u.mutation.ResetAvgDurationMs()
	_u.mutation.SetAvgDurationMs(v)
	return _u
}

// SetNillableAvgDurationMs sets the "avg_duration_ms" field if the given value is not nil.
func (_u *ModelMetricUpdateOne) SetNillableAvgDurationMs(v *float64) *ModelMetricUpdateOne {
	if v != nil {
		_u.SetAvgDurationMs(*v)
	}
	return _u
}

// AddAvgDurationMs adds value to the "avg_duration_ms" field.
func (_u *ModelMetricUpdateOne) AddAvgDurationMs(v float64) *ModelMetricUpdateOne {
	_u.mutation.AddAvgDurationMs(v)
	return _u
}

// SetAvgQuality sets the "avg_quality" field.
func (_u *ModelMetricUpdateOne) SetAvgQuality(v float64) *ModelMetricUpdateOne {
	_u.mutation.ResetAvgQuality()
	_u.mutation.SetAvgQuality(v)
	return _u
}

// SetNillableAvgQuality sets the "avg_quality" field if the given value is not nil.
func (_u *ModelMetricUpdateOne) SetNillableAvgQuality(v *float64) *ModelMetricUpdateOne {
	if v != nil {
		_u.SetAvgQuality(*v)
	}
	return _u
}

// AddAvgQuality adds value to the "avg_quality" field.
func (_u *ModelMetricUpdateOne) AddAvgQuality(v float64) *ModelMetricUpdateOne {
	_u.mutation.AddAvgQuality(v)
	return _u
}

// ClearAvgQuality clears the value of the "avg_quality" field.
func (_u *ModelMetricUpdateOne) ClearAvgQuality() *ModelMetricUpdateOne {
	_u.mutation.ClearAvgQuality()
	return _u
}

// SetBuckets sets the "buckets" field.
func (_u *ModelMetricUpdateOne) SetBuckets(v map[string]interface{}) *ModelMetricUpdateOne {
	_u.mutation.SetBuckets(v)
	return _u
}

// ClearBuckets clears the value of the "buckets" field.
func (_u *ModelMetricUpdateOne) ClearBuckets() *ModelMetricUpdateOne {
	_u.mutation.ClearBuckets()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ModelMetricUpdateOne) SetUpdatedAt(v time.Time) *ModelMetricUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ModelMetricMutation object of the builder.
func (_u *ModelMetricUpdateOne) Mutation() *ModelMetricMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModelMetricUpdate builder.
func (_u *ModelMetricUpdateOne) Where(ps ...predicate.ModelMetric) *ModelMetricUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelMetricUpdateOne) Select(field string, fields ...string) *ModelMetricUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModelMetric entity.
func (_u *ModelMetricUpdateOne) Save(ctx context.Context) (*ModelMetric, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelMetricUpdateOne) SaveX(ctx context.Context) *ModelMetric {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelMetricUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelMetricUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ModelMetricUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := modelmetric.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ModelMetricUpdateOne) sqlSave(ctx context.Context) (_node *ModelMetric, err error) {
	_spec := sqlgraph.NewUpdateSpec(modelmetric.Table, modelmetric.Columns, sqlgraph.NewFieldSpec(modelmetric.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModelMetric.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modelmetric.FieldID)
		for _, f := range fields {
			if !modelmetric.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modelmetric.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Executions(); ok {
		_spec.SetField(modelmetric.FieldExecutions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExecutions(); ok {
		_spec.AddField(modelmetric.FieldExecutions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Successes(); ok {
		_spec.SetField(modelmetric.FieldSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccesses(); ok {
		_spec.AddField(modelmetric.FieldSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgTokens(); ok {
		_spec.SetField(modelmetric.FieldAvgTokens, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTokens(); ok {
		_spec.AddField(modelmetric.FieldAvgTokens, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgCost(); ok {
		_spec.SetField(modelmetric.FieldAvgCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgCost(); ok {
		_spec.AddField(modelmetric.FieldAvgCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgDurationMs(); ok {
		_spec.SetField(modelmetric.FieldAvgDurationMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgDurationMs(); ok {
		_spec.AddField(modelmetric.FieldAvgDurationMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgQuality(); ok {
		_spec.SetField(modelmetric.FieldAvgQuality, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgQuality(); ok {
		_spec.AddField(modelmetric.FieldAvgQuality, field.TypeFloat64, value)
	}
	if _u.mutation.AvgQualityCleared() {
		_spec.ClearField(modelmetric.FieldAvgQuality, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Buckets(); ok {
		_spec.SetField(modelmetric.FieldBuckets, field.TypeJSON, value)
	}
	if _u.mutation.BucketsCleared() {
		_spec.ClearField(modelmetric.FieldBuckets, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(modelmetric.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ModelMetric{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelmetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
