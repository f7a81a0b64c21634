// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devflow-ai/devflow/ent/abtestresult"
	"github.com/devflow-ai/devflow/ent/predicate"
)

// ABTestResultUpdate is the builder for updating ABTestResult entities.
type ABTestResultUpdate struct {
	config
	hooks    []Hook
	mutation *ABTestResultMutation
}

// Where appends a list predicates to the ABTestResultUpdate builder.
func (_u *ABTestResultUpdate) Where(ps ...predicate.ABTestResult) *ABTestResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVariant sets the "variant" field.
func (_u *ABTestResultUpdate) SetVariant(v string) *ABTestResultUpdate {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *ABTestResultUpdate) SetNillableVariant(v *string) *ABTestResultUpdate {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ABTestResultUpdate) SetSuccess(v bool) *ABTestResultUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ABTestResultUpdate) SetNillableSuccess(v *bool) *ABTestResultUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ABTestResultUpdate) SetDurationMs(v int64) *ABTestResultUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ABTestResultUpdate) SetNillableDurationMs(v *int64) *ABTestResultUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ABTestResultUpdate) AddDurationMs(v int64) *ABTestResultUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *ABTestResultUpdate) SetTokens(v int) *ABTestResultUpdate {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *ABTestResultUpdate) SetNillableTokens(v *int) *ABTestResultUpdate {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *ABTestResultUpdate) AddTokens(v int) *ABTestResultUpdate {
	_u.mutation.AddTokens(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *ABTestResultUpdate) SetCost(v float64) *ABTestResultUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *ABTestResultUpdate) SetNillableCost(v *float64) *ABTestResultUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *ABTestResultUpdate) AddCost(v float64) *ABTestResultUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *ABTestResultUpdate) SetQualityScore(v float64) *ABTestResultUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *ABTestResultUpdate) SetNillableQualityScore(v *float64) *ABTestResultUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *ABTestResultUpdate) AddQualityScore(v float64) *ABTestResultUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *ABTestResultUpdate) ClearQualityScore() *ABTestResultUpdate {
	_u.mutation.ClearQualityScore()
	return _u
}

// Mutation returns the ABTestResultMutation object of the builder.
func (_u *ABTestResultUpdate) Mutation() *ABTestResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ABTestResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ABTestResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ABTestResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ABTestResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ABTestResultUpdate) check() error {
	if _u.mutation.TestCleared() && len(_u.mutation.TestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ABTestResult.test"`)
	}
	return nil
}

func (_u *ABTestResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(abtestresult.Table, abtestresult.Columns, sqlgraph.NewFieldSpec(abtestresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(abtestresult.FieldVariant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(abtestresult.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(abtestresult.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(abtestresult.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(abtestresult.FieldTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(abtestresult.FieldTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(abtestresult.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(abtestresult.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(abtestresult.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(abtestresult.FieldQualityScore, field.TypeFloat64, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(abtestresult.FieldQualityScore, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{abtestresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ABTestResultUpdateOne is the builder for updating a single ABTestResult entity.
type ABTestResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ABTestResultMutation
}

// SetVariant sets the "variant" field.
func (_u *ABTestResultUpdateOne) SetVariant(v string) *ABTestResultUpdateOne {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *ABTestResultUpdateOne) SetNillableVariant(v *string) *ABTestResultUpdateOne {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ABTestResultUpdateOne) SetSuccess(v bool) *ABTestResultUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ABTestResultUpdateOne) SetNillableSuccess(v *bool) *ABTestResultUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ABTestResultUpdateOne) SetDurationMs(v int64) *ABTestResultUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ABTestResultUpdateOne) SetNillableDurationMs(v *int64) *ABTestResultUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ABTestResultUpdateOne) AddDurationMs(v int64) *ABTestResultUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *ABTestResultUpdateOne) SetTokens(v int) *ABTestResultUpdateOne {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *ABTestResultUpdateOne) SetNillableTokens(v *int) *ABTestResultUpdateOne {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *ABTestResultUpdateOne) AddTokens(v int) *ABTestResultUpdateOne {
	_u.mutation.AddTokens(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *ABTestResultUpdateOne) SetCost(v float64) *ABTestResultUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *ABTestResultUpdateOne) SetNillableCost(v *float64) *ABTestResultUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *ABTestResultUpdateOne) AddCost(v float64) *ABTestResultUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *ABTestResultUpdateOne) SetQualityScore(v float64) *ABTestResultUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *ABTestResultUpdateOne) SetNillableQualityScore(v *float64) *ABTestResultUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *ABTestResultUpdateOne) AddQualityScore(v float64) *ABTestResultUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *ABTestResultUpdateOne) ClearQualityScore() *ABTestResultUpdateOne {
	_u.mutation.ClearQualityScore()
	return _u
}

// Mutation returns the ABTestResultMutation object of the builder.
func (_u *ABTestResultUpdateOne) Mutation() *ABTestResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the ABTestResultUpdate builder.
func (_u *ABTestResultUpdateOne) Where(ps ...predicate.ABTestResult) *ABTestResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ABTestResultUpdateOne) Select(field string, fields ...string) *ABTestResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ABTestResult entity.
func (_u *ABTestResultUpdateOne) Save(ctx context.Context) (*ABTestResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ABTestResultUpdateOne) SaveX(ctx context.Context) *ABTestResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ABTestResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ABTestResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ABTestResultUpdateOne) check() error {
	if _u.mutation.TestCleared() && len(_u.mutation.TestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ABTestResult.test"`)
	}
	return nil
}

func (_u *ABTestResultUpdateOne) sqlSave(ctx context.Context) (_node *ABTestResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(abtestresult.Table, abtestresult.Columns, sqlgraph.NewFieldSpec(abtestresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ABTestResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, abtestresult.FieldID)
		for _, f := range fields {
			if !abtestresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != abtestresult.FieldID {
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
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(abtestresult.FieldVariant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(abtestresult.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(abtestresult.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(abtestresult.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(abtestresult.FieldTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(abtestresult.FieldTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(abtestresult.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(abtestresult.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(abtestresult.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(abtestresult.FieldQualityScore, field.TypeFloat64, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(abtestresult.FieldQualityScore, field.TypeFloat64)
	}
	_node = &ABTestResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{abtestresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
