// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/devflow-ai/devflow/ent/codingtask"
	"github.com/devflow-ai/devflow/ent/taskexecution"
)

// TaskExecutionCreate is the builder for creating a TaskExecution entity.
type TaskExecutionCreate struct {
	config
	mutation *TaskExecutionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *TaskExecutionCreate) SetTaskID(v string) *TaskExecutionCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetStrategy sets the "strategy" field.
func (_c *TaskExecutionCreate) SetStrategy(v string) *TaskExecutionCreate {
	_c.mutation.SetStrategy(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *TaskExecutionCreate) SetModel(v string) *TaskExecutionCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *TaskExecutionCreate) SetNillableModel(v *string) *TaskExecutionCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskExecutionCreate) SetStartedAt(v time.Time) *TaskExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskExecutionCreate) SetNillableStartedAt(v *time.Time) *TaskExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *TaskExecutionCreate) SetFinishedAt(v time.Time) *TaskExecutionCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *TaskExecutionCreate) SetNillableFinishedAt(v *time.Time) *TaskExecutionCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *TaskExecutionCreate) SetSuccess(v bool) *TaskExecutionCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *TaskExecutionCreate) SetNillableSuccess(v *bool) *TaskExecutionCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *TaskExecutionCreate) SetTokensUsed(v int) *TaskExecutionCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *TaskExecutionCreate) SetNillableTokensUsed(v *int) *TaskExecutionCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *TaskExecutionCreate) SetCost(v float64) *TaskExecutionCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *TaskExecutionCreate) SetNillableCost(v *float64) *TaskExecutionCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *TaskExecutionCreate) SetDurationMs(v int64) *TaskExecutionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *TaskExecutionCreate) SetNillableDurationMs(v *int64) *TaskExecutionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetIterations sets the "iterations" field.
func (_c *TaskExecutionCreate) SetIterations(v int) *TaskExecutionCreate {
	_c.mutation.SetIterations(v)
	return _c
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (_c *TaskExecutionCreate) SetNillableIterations(v *int) *TaskExecutionCreate {
	if v != nil {
		_c.SetIterations(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TaskExecutionCreate) SetErrorMessage(v string) *TaskExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TaskExecutionCreate) SetNillableErrorMessage(v *string) *TaskExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskExecutionCreate) SetID(v string) *TaskExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the CodingTask entity.
func (_c *TaskExecutionCreate) SetTask(v *CodingTask) *TaskExecutionCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TaskExecutionMutation object of the builder.
func (_c *TaskExecutionCreate) Mutation() *TaskExecutionMutation {
	return _c.mutation
}

// Save creates the TaskExecution in the database.
func (_c *TaskExecutionCreate) Save(ctx context.Context) (*TaskExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskExecutionCreate) SaveX(ctx context.Context) *TaskExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskExecutionCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := taskexecution.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.Success(); !ok {
		v := taskexecution.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := taskexecution.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.Cost(); !ok {
		v := taskexecution.DefaultCost
		_c.mutation.SetCost(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := taskexecution.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.Iterations(); !ok {
		v := taskexecution.DefaultIterations
		_c.mutation.SetIterations(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskExecutionCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskExecution.task_id"`)}
	}
	if _, ok := _c.mutation.Strategy(); !ok {
		return &ValidationError{Name: "strategy", err: errors.New(`ent: missing required field "TaskExecution.strategy"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "TaskExecution.started_at"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "TaskExecution.success"`)}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "TaskExecution.tokens_used"`)}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "TaskExecution.cost"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "TaskExecution.duration_ms"`)}
	}
	if _, ok := _c.mutation.Iterations(); !ok {
		return &ValidationError{Name: "iterations", err: errors.New(`ent: missing required field "TaskExecution.iterations"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "TaskExecution.task"`)}
	}
	return nil
}

func (_c *TaskExecutionCreate) sqlSave(ctx context.Context) (*TaskExecution, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TaskExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskExecutionCreate) createSpec() (*TaskExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskexecution.Table, sqlgraph.NewFieldSpec(taskexecution.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Strategy(); ok {
		_spec.SetField(taskexecution.FieldStrategy, field.TypeString, value)
		_node.Strategy = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(taskexecution.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(taskexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(taskexecution.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(taskexecution.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(taskexecution.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(taskexecution.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(taskexecution.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Iterations(); ok {
		_spec.SetField(taskexecution.FieldIterations, field.TypeInt, value)
		_node.Iterations = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(taskexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskexecution.TaskTable,
			Columns: []string{taskexecution.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codingtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskExecution.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskExecutionUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskExecutionCreate) OnConflict(opts ...sql.ConflictOption) *TaskExecutionUpsertOne {
	_c.conflict = opts
	return &TaskExecutionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskExecutionCreate) OnConflictColumns(columns ...string) *TaskExecutionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskExecutionUpsertOne{
		create: _c,
	}
}

type (
	// TaskExecutionUpsertOne is the builder for "upsert"-ing
	//  one TaskExecution node.
	TaskExecutionUpsertOne struct {
		create *TaskExecutionCreate
	}

	// TaskExecutionUpsert is the "OnConflict" setter.
	TaskExecutionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStrategy sets the "strategy" field.
func (u *TaskExecutionUpsert) SetStrategy(v string) *TaskExecutionUpsert {
	u.Set(taskexecution.FieldStrategy, v)
	return u
}

// UpdateStrategy sets the "strategy" field to the value that was provided on create.
func (u *TaskExecutionUpsert) UpdateStrategy() *TaskExecutionUpsert {
	u.SetExcluded(taskexecution.FieldStrategy)
	return u
}

// SetModel sets the "model" field.
func (u *TaskExecutionUpsert) SetModel(v string) *TaskExecutionUpsert {
	u.Set(taskexecution.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *TaskExecutionUpsert) UpdateModel() *TaskExecutionUpsert {
	u.SetExcluded(taskexecution.FieldModel)
	return u
}

// ClearModel clears the value of the "model" field.
func (u *TaskExecutionUpsert) ClearModel() *TaskExecutionUpsert {
	u.SetNull(taskexecution.FieldModel)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *TaskExecutionUpsert) SetFinishedAt(v time.Time) *TaskExecutionUpsert {
	u.Set(taskexecution.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *TaskExecutionUpsert) UpdateFinishedAt() *TaskExecutionUpsert {
	u.SetExcluded(taskexecution.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *TaskExecutionUpsert) ClearFinishedAt() *TaskExecutionUpsert {
	u.SetNull(taskexecution.FieldFinishedAt)
	return u
}

// SetSuccess sets the "success" field.
func (u *TaskExecutionUpsert) SetSuccess(v bool) *TaskExecutionUpsert {
	u.Set(taskexecution.FieldSuccess, v)
	return u
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *TaskExecutionUpsert) UpdateSuccess() *TaskExecutionUpsert {
	u.SetExcluded(taskexecution.FieldSuccess)
	return u
}

// SetTokensUsed sets the "tokens_used" field.
func (u *TaskExecutionUpsert) SetTokensUsed(v int) *TaskExecutionUpsert {
	u.Set(taskexecution.FieldTokensUsed, v)
	return u
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *TaskExecutionUpsert) UpdateTokensUsed() *TaskExecutionUpsert {
	u.SetExcluded(taskexecution.FieldTokensUsed)
	return u
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *TaskExecutionUpsert) AddTokensUsed(v int) *TaskExecutionUpsert {
	u.Add(taskexecution.FieldTokensUsed, v)
	return u
}

// SetCost sets the "cost" field.
func (u *TaskExecutionUpsert) SetCost(v float64) *TaskExecutionUpsert {
	u.Set(taskexecution.FieldCost, v)
	return u
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *TaskExecutionUpsert) UpdateCost() *TaskExecutionUpsert {
	u.SetExcluded(taskexecution.FieldCost)
	return u
}

// AddCost adds v to the "cost" field.
func (u *TaskExecutionUpsert) AddCost(v float64) *TaskExecutionUpsert {
	u.Add(taskexecution.FieldCost, v)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *TaskExecutionUpsert) SetDurationMs(v int64) *TaskExecutionUpsert {
	u.Set(taskexecution.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *TaskExecutionUpsert) UpdateDurationMs() *TaskExecutionUpsert {
	u.SetExcluded(taskexecution.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *TaskExecutionUpsert) AddDurationMs(v int64) *TaskExecutionUpsert {
	u.Add(taskexecution.FieldDurationMs, v)
	return u
}

// SetIterations sets the "iterations" field.
func (u *TaskExecutionUpsert) SetIterations(v int) *TaskExecutionUpsert {
	u.Set(taskexecution.FieldIterations, v)
	return u
}

// UpdateIterations sets the "iterations" field to the value that was provided on create.
func (u *TaskExecutionUpsert) UpdateIterations() *TaskExecutionUpsert {
	u.SetExcluded(taskexecution.FieldIterations)
	return u
}

// AddIterations adds v to the "iterations" field.
func (u *TaskExecutionUpsert) AddIterations(v int) *TaskExecutionUpsert {
	u.Add(taskexecution.FieldIterations, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *TaskExecutionUpsert) SetErrorMessage(v string) *TaskExecutionUpsert {
	u.Set(taskexecution.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *TaskExecutionUpsert) UpdateErrorMessage() *TaskExecutionUpsert {
	u.SetExcluded(taskexecution.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *TaskExecutionUpsert) ClearErrorMessage() *TaskExecutionUpsert {
	u.SetNull(taskexecution.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TaskExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(taskexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskExecutionUpsertOne) UpdateNewValues() *TaskExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(taskexecution.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(taskexecution.FieldTaskID)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(taskexecution.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskExecution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskExecutionUpsertOne) Ignore() *TaskExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskExecutionUpsertOne) DoNothing() *TaskExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskExecutionCreate.OnConflict
// documentation for more info.
func (u *TaskExecutionUpsertOne) Update(set func(*TaskExecutionUpsert)) *TaskExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStrategy sets the "strategy" field.
func (u *TaskExecutionUpsertOne) SetStrategy(v string) *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.SetStrategy(v)
	})
}

// UpdateStrategy sets the "strategy" field to the value that was provided on create.
func (u *TaskExecutionUpsertOne) UpdateStrategy() *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.UpdateStrategy()
	})
}

// SetModel sets the "model" field.
func (u *TaskExecutionUpsertOne) SetModel(v string) *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *TaskExecutionUpsertOne) UpdateModel() *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *TaskExecutionUpsertOne) ClearModel() *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.ClearModel()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *TaskExecutionUpsertOne) SetFinishedAt(v time.Time) *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *TaskExecutionUpsertOne) UpdateFinishedAt() *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *TaskExecutionUpsertOne) ClearFinishedAt() *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.ClearFinishedAt()
	})
}

// SetSuccess sets the "success" field.
func (u *TaskExecutionUpsertOne) SetSuccess(v bool) *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *TaskExecutionUpsertOne) UpdateSuccess() *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.UpdateSuccess()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *TaskExecutionUpsertOne) SetTokensUsed(v int) *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *TaskExecutionUpsertOne) AddTokensUsed(v int) *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *TaskExecutionUpsertOne) UpdateTokensUsed() *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.UpdateTokensUsed()
	})
}

// SetCost sets the "cost" field.
func (u *TaskExecutionUpsertOne) SetCost(v float64) *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.SetCost(v)
	})
}

// AddCost adds v to the "cost" field.
func (u *TaskExecutionUpsertOne) AddCost(v float64) *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.AddCost(v)
	})
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *TaskExecutionUpsertOne) UpdateCost() *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.UpdateCost()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *TaskExecutionUpsertOne) SetDurationMs(v int64) *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *TaskExecutionUpsertOne) AddDurationMs(v int64) *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *TaskExecutionUpsertOne) UpdateDurationMs() *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.UpdateDurationMs()
	})
}

// SetIterations sets the "iterations" field.
func (u *TaskExecutionUpsertOne) SetIterations(v int) *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.SetIterations(v)
	})
}

// AddIterations adds v to the "iterations" field.
func (u *TaskExecutionUpsertOne) AddIterations(v int) *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.AddIterations(v)
	})
}

// UpdateIterations sets the "iterations" field to the value that was provided on create.
func (u *TaskExecutionUpsertOne) UpdateIterations() *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.UpdateIterations()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *TaskExecutionUpsertOne) SetErrorMessage(v string) *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *TaskExecutionUpsertOne) UpdateErrorMessage() *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *TaskExecutionUpsertOne) ClearErrorMessage() *TaskExecutionUpsertOne {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *TaskExecutionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskExecutionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskExecutionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskExecutionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskExecutionUpsertOne.ID is not supported by MySQL driver. Use TaskExecutionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskExecutionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskExecutionCreateBulk is the builder for creating many TaskExecution entities in bulk.
type TaskExecutionCreateBulk struct {
	config
	err      error
	builders []*TaskExecutionCreate
	conflict []sql.ConflictOption
}

// Save creates the TaskExecution entities in the database.
func (_c *TaskExecutionCreateBulk) Save(ctx context.Context) ([]*TaskExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskExecutionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskExecutionCreateBulk) SaveX(ctx context.Context) []*TaskExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskExecution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskExecutionUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskExecutionCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskExecutionUpsertBulk {
	_c.conflict = opts
	return &TaskExecutionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskExecutionCreateBulk) OnConflictColumns(columns ...string) *TaskExecutionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskExecutionUpsertBulk{
		create: _c,
	}
}

// TaskExecutionUpsertBulk is the builder for "upsert"-ing
// a bulk of TaskExecution nodes.
type TaskExecutionUpsertBulk struct {
	create *TaskExecutionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TaskExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(taskexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskExecutionUpsertBulk) UpdateNewValues() *TaskExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(taskexecution.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(taskexecution.FieldTaskID)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(taskexecution.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskExecution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskExecutionUpsertBulk) Ignore() *TaskExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskExecutionUpsertBulk) DoNothing() *TaskExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskExecutionCreateBulk.OnConflict
// documentation for more info.
func (u *TaskExecutionUpsertBulk) Update(set func(*TaskExecutionUpsert)) *TaskExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStrategy sets the "strategy" field.
func (u *TaskExecutionUpsertBulk) SetStrategy(v string) *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.SetStrategy(v)
	})
}

// UpdateStrategy sets the "strategy" field to the value that was provided on create.
func (u *TaskExecutionUpsertBulk) UpdateStrategy() *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.UpdateStrategy()
	})
}

// SetModel sets the "model" field.
func (u *TaskExecutionUpsertBulk) SetModel(v string) *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *TaskExecutionUpsertBulk) UpdateModel() *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *TaskExecutionUpsertBulk) ClearModel() *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.ClearModel()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *TaskExecutionUpsertBulk) SetFinishedAt(v time.Time) *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *TaskExecutionUpsertBulk) UpdateFinishedAt() *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *TaskExecutionUpsertBulk) ClearFinishedAt() *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.ClearFinishedAt()
	})
}

// SetSuccess sets the "success" field.
func (u *TaskExecutionUpsertBulk) SetSuccess(v bool) *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *TaskExecutionUpsertBulk) UpdateSuccess() *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.UpdateSuccess()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *TaskExecutionUpsertBulk) SetTokensUsed(v int) *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *TaskExecutionUpsertBulk) AddTokensUsed(v int) *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *TaskExecutionUpsertBulk) UpdateTokensUsed() *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.UpdateTokensUsed()
	})
}

// SetCost sets the "cost" field.
func (u *TaskExecutionUpsertBulk) SetCost(v float64) *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.SetCost(v)
	})
}

// AddCost adds v to the "cost" field.
func (u *TaskExecutionUpsertBulk) AddCost(v float64) *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.AddCost(v)
	})
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *TaskExecutionUpsertBulk) UpdateCost() *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.UpdateCost()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *TaskExecutionUpsertBulk) SetDurationMs(v int64) *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *TaskExecutionUpsertBulk) AddDurationMs(v int64) *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *TaskExecutionUpsertBulk) UpdateDurationMs() *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.UpdateDurationMs()
	})
}

// SetIterations sets the "iterations" field.
func (u *TaskExecutionUpsertBulk) SetIterations(v int) *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.SetIterations(v)
	})
}

// AddIterations adds v to the "iterations" field.
func (u *TaskExecutionUpsertBulk) AddIterations(v int) *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.AddIterations(v)
	})
}

// UpdateIterations sets the "iterations" field to the value that was provided on create.
func (u *TaskExecutionUpsertBulk) UpdateIterations() *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.UpdateIterations()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *TaskExecutionUpsertBulk) SetErrorMessage(v string) *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *TaskExecutionUpsertBulk) UpdateErrorMessage() *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *TaskExecutionUpsertBulk) ClearErrorMessage() *TaskExecutionUpsertBulk {
	return u.Update(func(s *TaskExecutionUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *TaskExecutionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskExecutionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskExecutionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskExecutionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
