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
	"github.com/devflow-ai/devflow/ent/predicate"
	"github.com/devflow-ai/devflow/ent/taskexecution"
)

// TaskExecutionUpdate is the builder for updating TaskExecution entities.
type TaskExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *TaskExecutionMutation
}

// Where appends a list predicates to the TaskExecutionUpdate builder.
func (_u *TaskExecutionUpdate) Where(ps ...predicate.TaskExecution) *TaskExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *TaskExecutionUpdate) SetStrategy(v string) *TaskExecutionUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *TaskExecutionUpdate) SetNillableStrategy(v *string) *TaskExecutionUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *TaskExecutionUpdate) SetModel(v string) *TaskExecutionUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TaskExecutionUpdate) SetNillableModel(v *string) *TaskExecutionUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *TaskExecutionUpdate) ClearModel() *TaskExecutionUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *TaskExecutionUpdate) SetFinishedAt(v time.Time) *TaskExecutionUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *TaskExecutionUpdate) SetNillableFinishedAt(v *time.Time) *TaskExecutionUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *TaskExecutionUpdate) ClearFinishedAt() *TaskExecutionUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *TaskExecutionUpdate) SetSuccess(v bool) *TaskExecutionUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *TaskExecutionUpdate) SetNillableSuccess(v *bool) *TaskExecutionUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *TaskExecutionUpdate) SetTokensUsed(v int) *TaskExecutionUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *TaskExecutionUpdate) SetNillableTokensUsed(v *int) *TaskExecutionUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *TaskExecutionUpdate) AddTokensUsed(v int) *TaskExecutionUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *TaskExecutionUpdate) SetCost(v float64) *TaskExecutionUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *TaskExecutionUpdate) SetNillableCost(v *float64) *TaskExecutionUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *TaskExecutionUpdate) AddCost(v float64) *TaskExecutionUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TaskExecutionUpdate) SetDurationMs(v int64) *TaskExecutionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TaskExecutionUpdate) SetNillableDurationMs(v *int64) *TaskExecutionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TaskExecutionUpdate) AddDurationMs(v int64) *TaskExecutionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetIterations sets the "iterations" field.
func (_u *TaskExecutionUpdate) SetIterations(v int) *TaskExecutionUpdate {
	_u.mutation.ResetIterations()
	_u.mutation.SetIterations(v)
	return _u
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (_u *TaskExecutionUpdate) SetNillableIterations(v *int) *TaskExecutionUpdate {
	if v != nil {
		_u.SetIterations(*v)
	}
	return _u
}

// AddIterations adds value to the "iterations" field.
func (_u *TaskExecutionUpdate) AddIterations(v int) *TaskExecutionUpdate {
	_u.mutation.AddIterations(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskExecutionUpdate) SetErrorMessage(v string) *TaskExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskExecutionUpdate) SetNillableErrorMessage(v *string) *TaskExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskExecutionUpdate) ClearErrorMessage() *TaskExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the TaskExecutionMutation object of the builder.
func (_u *TaskExecutionUpdate) Mutation() *TaskExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskExecutionUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskExecution.task"`)
	}
	return nil
}

func (_u *TaskExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskexecution.Table, taskexecution.Columns, sqlgraph.NewFieldSpec(taskexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(taskexecution.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(taskexecution.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(taskexecution.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(taskexecution.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(taskexecution.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(taskexecution.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(taskexecution.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(taskexecution.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(taskexecution.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(taskexecution.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(taskexecution.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(taskexecution.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Iterations(); ok {
		_spec.SetField(taskexecution.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterations(); ok {
		_spec.AddField(taskexecution.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(taskexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(taskexecution.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskExecutionUpdateOne is the builder for updating a single TaskExecution entity.
type TaskExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskExecutionMutation
}

// SetStrategy sets the "strategy" field.
func (_u *TaskExecutionUpdateOne) SetStrategy(v string) *TaskExecutionUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *TaskExecutionUpdateOne) SetNillableStrategy(v *string) *TaskExecutionUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *TaskExecutionUpdateOne) SetModel(v string) *TaskExecutionUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TaskExecutionUpdateOne) SetNillableModel(v *string) *TaskExecutionUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *TaskExecutionUpdateOne) ClearModel() *TaskExecutionUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *TaskExecutionUpdateOne) SetFinishedAt(v time.Time) *TaskExecutionUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *TaskExecutionUpdateOne) SetNillableFinishedAt(v *time.Time) *TaskExecutionUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *TaskExecutionUpdateOne) ClearFinishedAt() *TaskExecutionUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *TaskExecutionUpdateOne) SetSuccess(v bool) *TaskExecutionUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *TaskExecutionUpdateOne) SetNillableSuccess(v *bool) *TaskExecutionUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *TaskExecutionUpdateOne) SetTokensUsed(v int) *TaskExecutionUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *TaskExecutionUpdateOne) SetNillableTokensUsed(v *int) *TaskExecutionUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *TaskExecutionUpdateOne) AddTokensUsed(v int) *TaskExecutionUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *TaskExecutionUpdateOne) SetCost(v float64) *TaskExecutionUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *TaskExecutionUpdateOne) SetNillableCost(v *float64) *TaskExecutionUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *TaskExecutionUpdateOne) AddCost(v float64) *TaskExecutionUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *TaskExecutionUpdateOne) SetDurationMs(v int64) *TaskExecutionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *TaskExecutionUpdateOne) SetNillableDurationMs(v *int64) *TaskExecutionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *TaskExecutionUpdateOne) AddDurationMs(v int64) *TaskExecutionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetIterations sets the "iterations" field.
func (_u *TaskExecutionUpdateOne) SetIterations(v int) *TaskExecutionUpdateOne {
	_u.mutation.ResetIterations()
	_u.mutation.SetIterations(v)
	return _u
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (_u *TaskExecutionUpdateOne) SetNillableIterations(v *int) *TaskExecutionUpdateOne {
	if v != nil {
		_u.SetIterations(*v)
	}
	return _u
}

// AddIterations adds value to the "iterations" field.
func (_u *TaskExecutionUpdateOne) AddIterations(v int) *TaskExecutionUpdateOne {
	_u.mutation.AddIterations(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskExecutionUpdateOne) SetErrorMessage(v string) *TaskExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskExecutionUpdateOne) SetNillableErrorMessage(v *string) *TaskExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskExecutionUpdateOne) ClearErrorMessage() *TaskExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the TaskExecutionMutation object of the builder.
func (_u *TaskExecutionUpdateOne) Mutation() *TaskExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskExecutionUpdate builder.
func (_u *TaskExecutionUpdateOne) Where(ps ...predicate.TaskExecution) *TaskExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskExecutionUpdateOne) Select(field string, fields ...string) *TaskExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskExecution entity.
func (_u *TaskExecutionUpdateOne) Save(ctx context.Context) (*TaskExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskExecutionUpdateOne) SaveX(ctx context.Context) *TaskExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskExecutionUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskExecution.task"`)
	}
	return nil
}

func (_u *TaskExecutionUpdateOne) sqlSave(ctx context.Context) (_node *TaskExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskexecution.Table, taskexecution.Columns, sqlgraph.NewFieldSpec(taskexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskexecution.FieldID)
		for _, f := range fields {
			if !taskexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskexecution.FieldID {
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
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(taskexecution.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(taskexecution.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(taskexecution.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(taskexecution.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(taskexecution.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(taskexecution.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(taskexecution.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(taskexecution.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(taskexecution.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(taskexecution.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(taskexecution.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(taskexecution.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Iterations(); ok {
		_spec.SetField(taskexecution.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterations(); ok {
		_spec.AddField(taskexecution.FieldIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(taskexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(taskexecution.FieldErrorMessage, field.TypeString)
	}
	_node = &TaskExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
