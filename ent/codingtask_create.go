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
	"github.com/devflow-ai/devflow/ent/feedback"
	"github.com/devflow-ai/devflow/ent/taskexecution"
)

// CodingTaskCreate is the builder for creating a CodingTask entity.
type CodingTaskCreate struct {
	config
	mutation *CodingTaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *CodingTaskCreate) SetUserID(v string) *CodingTaskCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CodingTaskCreate) SetTitle(v string) *CodingTaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CodingTaskCreate) SetDescription(v string) *CodingTaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetType sets the "type" field.
func (_c *CodingTaskCreate) SetType(v codingtask.Type) *CodingTaskCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *CodingTaskCreate) SetNillableType(v *codingtask.Type) *CodingTaskCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetComplexity sets the "complexity" field.
func (_c *CodingTaskCreate) SetComplexity(v codingtask.Complexity) *CodingTaskCreate {
	_c.mutation.SetComplexity(v)
	return _c
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_c *CodingTaskCreate) SetNillableComplexity(v *codingtask.Complexity) *CodingTaskCreate {
	if v != nil {
		_c.SetComplexity(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CodingTaskCreate) SetStatus(v codingtask.Status) *CodingTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CodingTaskCreate) SetNillableStatus(v *codingtask.Status) *CodingTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPrNumber sets the "pr_number" field.
func (_c *CodingTaskCreate) SetPrNumber(v int) *CodingTaskCreate {
	_c.mutation.SetPrNumber(v)
	return _c
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_c *CodingTaskCreate) SetNillablePrNumber(v *int) *CodingTaskCreate {
	if v != nil {
		_c.SetPrNumber(*v)
	}
	return _c
}

// SetPrURL sets the "pr_url" field.
func (_c *CodingTaskCreate) SetPrURL(v string) *CodingTaskCreate {
	_c.mutation.SetPrURL(v)
	return _c
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_c *CodingTaskCreate) SetNillablePrURL(v *string) *CodingTaskCreate {
	if v != nil {
		_c.SetPrURL(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CodingTaskCreate) SetCreatedAt(v time.Time) *CodingTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CodingTaskCreate) SetNillableCreatedAt(v *time.Time) *CodingTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CodingTaskCreate) SetCompletedAt(v time.Time) *CodingTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CodingTaskCreate) SetNillableCompletedAt(v *time.Time) *CodingTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CodingTaskCreate) SetID(v string) *CodingTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddExecutionIDs adds the "executions" edge to the TaskExecution entity by IDs.
func (_c *CodingTaskCreate) AddExecutionIDs(ids ...string) *CodingTaskCreate {
	_c.mutation.AddExecutionIDs(ids...)
	return _c
}

// AddExecutions adds the "executions" edges to the TaskExecution entity.
func (_c *CodingTaskCreate) AddExecutions(v ...*TaskExecution) *CodingTaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExecutionIDs(ids...)
}

// AddFeedbackIDs adds the "feedback" edge to the Feedback entity by IDs.
func (_c *CodingTaskCreate) AddFeedbackIDs(ids ...string) *CodingTaskCreate {
	_c.mutation.AddFeedbackIDs(ids...)
	return _c
}

// AddFeedback adds the "feedback" edges to the Feedback entity.
func (_c *CodingTaskCreate) AddFeedback(v ...*Feedback) *CodingTaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFeedbackIDs(ids...)
}

// Mutation returns the CodingTaskMutation object of the builder.
func (_c *CodingTaskCreate) Mutation() *CodingTaskMutation {
	return _c.mutation
}

// Save creates the CodingTask in the database.
func (_c *CodingTaskCreate) Save(ctx context.Context) (*CodingTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CodingTaskCreate) SaveX(ctx context.Context) *CodingTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodingTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodingTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CodingTaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := codingtask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := codingtask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CodingTaskCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CodingTask.user_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "CodingTask.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "CodingTask.description"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := codingtask.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "CodingTask.type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Complexity(); ok {
		if err := codingtask.ComplexityValidator(v); err != nil {
			return &ValidationError{Name: "complexity", err: fmt.Errorf(`ent: validator failed for field "CodingTask.complexity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CodingTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := codingtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CodingTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CodingTask.created_at"`)}
	}
	return nil
}

func (_c *CodingTaskCreate) sqlSave(ctx context.Context) (*CodingTask, error) {
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
			return nil, fmt.Errorf("unexpected CodingTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CodingTaskCreate) createSpec() (*CodingTask, *sqlgraph.CreateSpec) {
	var (
		_node = &CodingTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(codingtask.Table, sqlgraph.NewFieldSpec(codingtask.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(codingtask.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(codingtask.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(codingtask.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(codingtask.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Complexity(); ok {
		_spec.SetField(codingtask.FieldComplexity, field.TypeEnum, value)
		_node.Complexity = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(codingtask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PrNumber(); ok {
		_spec.SetField(codingtask.FieldPrNumber, field.TypeInt, value)
		_node.PrNumber = &value
	}
	if value, ok := _c.mutation.PrURL(); ok {
		_spec.SetField(codingtask.FieldPrURL, field.TypeString, value)
		_node.PrURL = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(codingtask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(codingtask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   codingtask.ExecutionsTable,
			Columns: []string{codingtask.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FeedbackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   codingtask.FeedbackTable,
			Columns: []string{codingtask.FeedbackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CodingTask.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CodingTaskUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CodingTaskCreate) OnConflict(opts ...sql.ConflictOption) *CodingTaskUpsertOne {
	_c.conflict = opts
	return &CodingTaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CodingTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CodingTaskCreate) OnConflictColumns(columns ...string) *CodingTaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CodingTaskUpsertOne{
		create: _c,
	}
}

type (
	// CodingTaskUpsertOne is the builder for "upsert"-ing
	//  one CodingTask node.
	CodingTaskUpsertOne struct {
		create *CodingTaskCreate
	}

	// CodingTaskUpsert is the "OnConflict" setter.
	CodingTaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *CodingTaskUpsert) SetTitle(v string) *CodingTaskUpsert {
	u.Set(codingtask.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CodingTaskUpsert) UpdateTitle() *CodingTaskUpsert {
	u.SetExcluded(codingtask.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *CodingTaskUpsert) SetDescription(v string) *CodingTaskUpsert {
	u.Set(codingtask.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CodingTaskUpsert) UpdateDescription() *CodingTaskUpsert {
	u.SetExcluded(codingtask.FieldDescription)
	return u
}

// SetType sets the "type" field.
func (u *CodingTaskUpsert) SetType(v codingtask.Type) *CodingTaskUpsert {
	u.Set(codingtask.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *CodingTaskUpsert) UpdateType() *CodingTaskUpsert {
	u.SetExcluded(codingtask.FieldType)
	return u
}

// ClearType clears the value of the "type" field.
func (u *CodingTaskUpsert) ClearType() *CodingTaskUpsert {
	u.SetNull(codingtask.FieldType)
	return u
}

// SetComplexity sets the "complexity" field.
func (u *CodingTaskUpsert) SetComplexity(v codingtask.Complexity) *CodingTaskUpsert {
	u.Set(codingtask.FieldComplexity, v)
	return u
}

// UpdateComplexity sets the "complexity" field to the value that was provided on create.
func (u *CodingTaskUpsert) UpdateComplexity() *CodingTaskUpsert {
	u.SetExcluded(codingtask.FieldComplexity)
	return u
}

// ClearComplexity clears the value of the "complexity" field.
func (u *CodingTaskUpsert) ClearComplexity() *CodingTaskUpsert {
	u.SetNull(codingtask.FieldComplexity)
	return u
}

// SetStatus sets the "status" field.
func (u *CodingTaskUpsert) SetStatus(v codingtask.Status) *CodingTaskUpsert {
	u.Set(codingtask.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CodingTaskUpsert) UpdateStatus() *CodingTaskUpsert {
	u.SetExcluded(codingtask.FieldStatus)
	return u
}

// SetPrNumber sets the "pr_number" field.
func (u *CodingTaskUpsert) SetPrNumber(v int) *CodingTaskUpsert {
	u.Set(codingtask.FieldPrNumber, v)
	return u
}

// UpdatePrNumber sets the "pr_number" field to the value that was provided on create.
func (u *CodingTaskUpsert) UpdatePrNumber() *CodingTaskUpsert {
	u.SetExcluded(codingtask.FieldPrNumber)
	return u
}

// AddPrNumber adds v to the "pr_number" field.
func (u *CodingTaskUpsert) AddPrNumber(v int) *CodingTaskUpsert {
	u.Add(codingtask.FieldPrNumber, v)
	return u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (u *CodingTaskUpsert) ClearPrNumber() *CodingTaskUpsert {
	u.SetNull(codingtask.FieldPrNumber)
	return u
}

// SetPrURL sets the "pr_url" field.
func (u *CodingTaskUpsert) SetPrURL(v string) *CodingTaskUpsert {
	u.Set(codingtask.FieldPrURL, v)
	return u
}

// UpdatePrURL sets the "pr_url" field to the value that was provided on create.
func (u *CodingTaskUpsert) UpdatePrURL() *CodingTaskUpsert {
	u.SetExcluded(codingtask.FieldPrURL)
	return u
}

// ClearPrURL clears the value of the "pr_url" field.
func (u *CodingTaskUpsert) ClearPrURL() *CodingTaskUpsert {
	u.SetNull(codingtask.FieldPrURL)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *CodingTaskUpsert) SetCompletedAt(v time.Time) *CodingTaskUpsert {
	u.Set(codingtask.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CodingTaskUpsert) UpdateCompletedAt() *CodingTaskUpsert {
	u.SetExcluded(codingtask.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CodingTaskUpsert) ClearCompletedAt() *CodingTaskUpsert {
	u.SetNull(codingtask.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CodingTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(codingtask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CodingTaskUpsertOne) UpdateNewValues() *CodingTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(codingtask.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(codingtask.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(codingtask.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CodingTask.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CodingTaskUpsertOne) Ignore() *CodingTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CodingTaskUpsertOne) DoNothing() *CodingTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CodingTaskCreate.OnConflict
// documentation for more info.
func (u *CodingTaskUpsertOne) Update(set func(*CodingTaskUpsert)) *CodingTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CodingTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *CodingTaskUpsertOne) SetTitle(v string) *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CodingTaskUpsertOne) UpdateTitle() *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *CodingTaskUpsertOne) SetDescription(v string) *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CodingTaskUpsertOne) UpdateDescription() *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.UpdateDescription()
	})
}

// SetType sets the "type" field.
func (u *CodingTaskUpsertOne) SetType(v codingtask.Type) *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *CodingTaskUpsertOne) UpdateType() *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.UpdateType()
	})
}

// ClearType clears the value of the "type" field.
func (u *CodingTaskUpsertOne) ClearType() *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.ClearType()
	})
}

// SetComplexity sets the "complexity" field.
func (u *CodingTaskUpsertOne) SetComplexity(v codingtask.Complexity) *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.SetComplexity(v)
	})
}

// UpdateComplexity sets the "complexity" field to the value that was provided on create.
func (u *CodingTaskUpsertOne) UpdateComplexity() *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.UpdateComplexity()
	})
}

// ClearComplexity clears the value of the "complexity" field.
func (u *CodingTaskUpsertOne) ClearComplexity() *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.ClearComplexity()
	})
}

// SetStatus sets the "status" field.
func (u *CodingTaskUpsertOne) SetStatus(v codingtask.Status) *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CodingTaskUpsertOne) UpdateStatus() *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetPrNumber sets the "pr_number" field.
func (u *CodingTaskUpsertOne) SetPrNumber(v int) *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.SetPrNumber(v)
	})
}

// AddPrNumber adds v to the "pr_number" field.
func (u *CodingTaskUpsertOne) AddPrNumber(v int) *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.AddPrNumber(v)
	})
}

// UpdatePrNumber sets the "pr_number" field to the value that was provided on create.
func (u *CodingTaskUpsertOne) UpdatePrNumber() *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.UpdatePrNumber()
	})
}

// ClearPrNumber clears the value of the "pr_number" field.
func (u *CodingTaskUpsertOne) ClearPrNumber() *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.ClearPrNumber()
	})
}

// SetPrURL sets the "pr_url" field.
func (u *CodingTaskUpsertOne) SetPrURL(v string) *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.SetPrURL(v)
	})
}

// UpdatePrURL sets the "pr_url" field to the value that was provided on create.
func (u *CodingTaskUpsertOne) UpdatePrURL() *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.UpdatePrURL()
	})
}

// ClearPrURL clears the value of the "pr_url" field.
func (u *CodingTaskUpsertOne) ClearPrURL() *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.ClearPrURL()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CodingTaskUpsertOne) SetCompletedAt(v time.Time) *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CodingTaskUpsertOne) UpdateCompletedAt() *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CodingTaskUpsertOne) ClearCompletedAt() *CodingTaskUpsertOne {
	return u.Update(func(s *CodingTaskUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *CodingTaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CodingTaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CodingTaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CodingTaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CodingTaskUpsertOne.ID is not supported by MySQL driver. Use CodingTaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CodingTaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CodingTaskCreateBulk is the builder for creating many CodingTask entities in bulk.
type CodingTaskCreateBulk struct {
	config
	err      error
	builders []*CodingTaskCreate
	conflict []sql.ConflictOption
}

// Save creates the CodingTask entities in the database.
func (_c *CodingTaskCreateBulk) Save(ctx context.Context) ([]*CodingTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CodingTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CodingTaskMutation)
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
func (_c *CodingTaskCreateBulk) SaveX(ctx context.Context) []*CodingTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodingTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodingTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CodingTask.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CodingTaskUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CodingTaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *CodingTaskUpsertBulk {
	_c.conflict = opts
	return &CodingTaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CodingTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CodingTaskCreateBulk) OnConflictColumns(columns ...string) *CodingTaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CodingTaskUpsertBulk{
		create: _c,
	}
}

// CodingTaskUpsertBulk is the builder for "upsert"-ing
// a bulk of CodingTask nodes.
type CodingTaskUpsertBulk struct {
	create *CodingTaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CodingTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(codingtask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CodingTaskUpsertBulk) UpdateNewValues() *CodingTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(codingtask.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(codingtask.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(codingtask.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CodingTask.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CodingTaskUpsertBulk) Ignore() *CodingTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CodingTaskUpsertBulk) DoNothing() *CodingTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CodingTaskCreateBulk.OnConflict
// documentation for more info.
func (u *CodingTaskUpsertBulk) Update(set func(*CodingTaskUpsert)) *CodingTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CodingTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *CodingTaskUpsertBulk) SetTitle(v string) *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CodingTaskUpsertBulk) UpdateTitle() *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *CodingTaskUpsertBulk) SetDescription(v string) *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CodingTaskUpsertBulk) UpdateDescription() *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.UpdateDescription()
	})
}

// SetType sets the "type" field.
func (u *CodingTaskUpsertBulk) SetType(v codingtask.Type) *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *CodingTaskUpsertBulk) UpdateType() *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.UpdateType()
	})
}

// ClearType clears the value of the "type" field.
func (u *CodingTaskUpsertBulk) ClearType() *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.ClearType()
	})
}

// SetComplexity sets the "complexity" field.
func (u *CodingTaskUpsertBulk) SetComplexity(v codingtask.Complexity) *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.SetComplexity(v)
	})
}

// UpdateComplexity sets the "complexity" field to the value that was provided on create.
func (u *CodingTaskUpsertBulk) UpdateComplexity() *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.UpdateComplexity()
	})
}

// ClearComplexity clears the value of the "complexity" field.
func (u *CodingTaskUpsertBulk) ClearComplexity() *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.ClearComplexity()
	})
}

// SetStatus sets the "status" field.
func (u *CodingTaskUpsertBulk) SetStatus(v codingtask.Status) *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CodingTaskUpsertBulk) UpdateStatus() *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetPrNumber sets the "pr_number" field.
func (u *CodingTaskUpsertBulk) SetPrNumber(v int) *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.SetPrNumber(v)
	})
}

// AddPrNumber adds v to the "pr_number" field.
func (u *CodingTaskUpsertBulk) AddPrNumber(v int) *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.AddPrNumber(v)
	})
}

// UpdatePrNumber sets the "pr_number" field to the value that was provided on create.
func (u *CodingTaskUpsertBulk) UpdatePrNumber() *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.UpdatePrNumber()
	})
}

// ClearPrNumber clears the value of the "pr_number" field.
func (u *CodingTaskUpsertBulk) ClearPrNumber() *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.ClearPrNumber()
	})
}

// SetPrURL sets the "pr_url" field.
func (u *CodingTaskUpsertBulk) SetPrURL(v string) *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.SetPrURL(v)
	})
}

// UpdatePrURL sets the "pr_url" field to the value that was provided on create.
func (u *CodingTaskUpsertBulk) UpdatePrURL() *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.UpdatePrURL()
	})
}

// ClearPrURL clears the value of the "pr_url" field.
func (u *CodingTaskUpsertBulk) ClearPrURL() *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.ClearPrURL()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CodingTaskUpsertBulk) SetCompletedAt(v time.Time) *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CodingTaskUpsertBulk) UpdateCompletedAt() *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CodingTaskUpsertBulk) ClearCompletedAt() *CodingTaskUpsertBulk {
	return u.Update(func(s *CodingTaskUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *CodingTaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CodingTaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CodingTaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CodingTaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
