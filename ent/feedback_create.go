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
)

// FeedbackCreate is the builder for creating a Feedback entity.
type FeedbackCreate struct {
	config
	mutation *FeedbackMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *FeedbackCreate) SetTaskID(v string) *FeedbackCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetExecutionID sets the "execution_id" field.
func (_c *FeedbackCreate) SetExecutionID(v string) *FeedbackCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_c *FeedbackCreate) SetNillableExecutionID(v *string) *FeedbackCreate {
	if v != nil {
		_c.SetExecutionID(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *FeedbackCreate) SetUserID(v string) *FeedbackCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSentiment sets the "sentiment" field.
func (_c *FeedbackCreate) SetSentiment(v feedback.Sentiment) *FeedbackCreate {
	_c.mutation.SetSentiment(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *FeedbackCreate) SetRating(v float64) *FeedbackCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *FeedbackCreate) SetReason(v string) *FeedbackCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *FeedbackCreate) SetNillableReason(v *string) *FeedbackCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *FeedbackCreate) SetContext(v map[string]interface{}) *FeedbackCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FeedbackCreate) SetCreatedAt(v time.Time) *FeedbackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FeedbackCreate) SetNillableCreatedAt(v *time.Time) *FeedbackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FeedbackCreate) SetID(v string) *FeedbackCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the CodingTask entity.
func (_c *FeedbackCreate) SetTask(v *CodingTask) *FeedbackCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the FeedbackMutation object of the builder.
func (_c *FeedbackCreate) Mutation() *FeedbackMutation {
	return _c.mutation
}

// Save creates the Feedback in the database.
func (_c *FeedbackCreate) Save(ctx context.Context) (*Feedback, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeedbackCreate) SaveX(ctx context.Context) *Feedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeedbackCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := feedback.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeedbackCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Feedback.task_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Feedback.user_id"`)}
	}
	if _, ok := _c.mutation.Sentiment(); !ok {
		return &ValidationError{Name: "sentiment", err: errors.New(`ent: missing required field "Feedback.sentiment"`)}
	}
	if v, ok := _c.mutation.Sentiment(); ok {
		if err := feedback.SentimentValidator(v); err != nil {
			return &ValidationError{Name: "sentiment", err: fmt.Errorf(`ent: validator failed for field "Feedback.sentiment": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "Feedback.rating"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Feedback.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "Feedback.task"`)}
	}
	return nil
}

func (_c *FeedbackCreate) sqlSave(ctx context.Context) (*Feedback, error) {
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
			return nil, fmt.Errorf("unexpected Feedback.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FeedbackCreate) createSpec() (*Feedback, *sqlgraph.CreateSpec) {
	var (
		_node = &Feedback{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feedback.Table, sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(feedback.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = &value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(feedback.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Sentiment(); ok {
		_spec.SetField(feedback.FieldSentiment, field.TypeEnum, value)
		_node.Sentiment = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(feedback.FieldRating, field.TypeFloat64, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(feedback.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(feedback.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(feedback.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feedback.TaskTable,
			Columns: []string{feedback.TaskColumn},
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
//	client.Feedback.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FeedbackUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *FeedbackCreate) OnConflict(opts ...sql.ConflictOption) *FeedbackUpsertOne {
	_c.conflict = opts
	return &FeedbackUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Feedback.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FeedbackCreate) OnConflictColumns(columns ...string) *FeedbackUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FeedbackUpsertOne{
		create: _c,
	}
}

type (
	// FeedbackUpsertOne is the builder for "upsert"-ing
	//  one Feedback node.
	FeedbackUpsertOne struct {
		create *FeedbackCreate
	}

	// FeedbackUpsert is the "OnConflict" setter.
	FeedbackUpsert struct {
		*sql.UpdateSet
	}
)

// SetExecutionID sets the "execution_id" field.
func (u *FeedbackUpsert) SetExecutionID(v string) *FeedbackUpsert {
	u.Set(feedback.FieldExecutionID, v)
	return u
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *FeedbackUpsert) UpdateExecutionID() *FeedbackUpsert {
	u.SetExcluded(feedback.FieldExecutionID)
	return u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (u *FeedbackUpsert) ClearExecutionID() *FeedbackUpsert {
	u.SetNull(feedback.FieldExecutionID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *FeedbackUpsert) SetUserID(v string) *FeedbackUpsert {
	u.Set(feedback.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *FeedbackUpsert) UpdateUserID() *FeedbackUpsert {
	u.SetExcluded(feedback.FieldUserID)
	return u
}

// SetSentiment sets the "sentiment" field.
func (u *FeedbackUpsert) SetSentiment(v feedback.Sentiment) *FeedbackUpsert {
	u.Set(feedback.FieldSentiment, v)
	return u
}

// UpdateSentiment sets the "sentiment" field to the value that was provided on create.
func (u *FeedbackUpsert) UpdateSentiment() *FeedbackUpsert {
	u.SetExcluded(feedback.FieldSentiment)
	return u
}

// SetRating sets the "rating" field.
func (u *FeedbackUpsert) SetRating(v float64) *FeedbackUpsert {
	u.Set(feedback.FieldRating, v)
	return u
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *FeedbackUpsert) UpdateRating() *FeedbackUpsert {
	u.SetExcluded(feedback.FieldRating)
	return u
}

// AddRating adds v to the "rating" field.
func (u *FeedbackUpsert) AddRating(v float64) *FeedbackUpsert {
	u.Add(feedback.FieldRating, v)
	return u
}

// SetReason sets the "reason" field.
func (u *FeedbackUpsert) SetReason(v string) *FeedbackUpsert {
	u.Set(feedback.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *FeedbackUpsert) UpdateReason() *FeedbackUpsert {
	u.SetExcluded(feedback.FieldReason)
	return u
}

// ClearReason clears the value of the "reason" field.
func (u *FeedbackUpsert) ClearReason() *FeedbackUpsert {
	u.SetNull(feedback.FieldReason)
	return u
}

// SetContext sets the "context" field.
func (u *FeedbackUpsert) SetContext(v map[string]interface{}) *FeedbackUpsert {
	u.Set(feedback.FieldContext, v)
	return u
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *FeedbackUpsert) UpdateContext() *FeedbackUpsert {
	u.SetExcluded(feedback.FieldContext)
	return u
}

// ClearContext clears the value of the "context" field.
func (u *FeedbackUpsert) ClearContext() *FeedbackUpsert {
	u.SetNull(feedback.FieldContext)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Feedback.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(feedback.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FeedbackUpsertOne) UpdateNewValues() *FeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(feedback.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(feedback.FieldTaskID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(feedback.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Feedback.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FeedbackUpsertOne) Ignore() *FeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FeedbackUpsertOne) DoNothing() *FeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FeedbackCreate.OnConflict
// documentation for more info.
func (u *FeedbackUpsertOne) Update(set func(*FeedbackUpsert)) *FeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FeedbackUpsert{UpdateSet: update})
	}))
	return u
}

// SetExecutionID sets the "execution_id" field.
func (u *FeedbackUpsertOne) SetExecutionID(v string) *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetExecutionID(v)
	})
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *FeedbackUpsertOne) UpdateExecutionID() *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateExecutionID()
	})
}

// ClearExecutionID clears the value of the "execution_id" field.
func (u *FeedbackUpsertOne) ClearExecutionID() *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.ClearExecutionID()
	})
}

// SetUserID sets the "user_id" field.
func (u *FeedbackUpsertOne) SetUserID(v string) *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *FeedbackUpsertOne) UpdateUserID() *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateUserID()
	})
}

// SetSentiment sets the "sentiment" field.
func (u *FeedbackUpsertOne) SetSentiment(v feedback.Sentiment) *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetSentiment(v)
	})
}

// UpdateSentiment sets the "sentiment" field to the value that was provided on create.
func (u *FeedbackUpsertOne) UpdateSentiment() *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateSentiment()
	})
}

// SetRating sets the "rating" field.
func (u *FeedbackUpsertOne) SetRating(v float64) *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *FeedbackUpsertOne) AddRating(v float64) *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *FeedbackUpsertOne) UpdateRating() *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateRating()
	})
}

// SetReason sets the "reason" field.
func (u *FeedbackUpsertOne) SetReason(v string) *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *FeedbackUpsertOne) UpdateReason() *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *FeedbackUpsertOne) ClearReason() *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.ClearReason()
	})
}

// SetContext sets the "context" field.
func (u *FeedbackUpsertOne) SetContext(v map[string]interface{}) *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *FeedbackUpsertOne) UpdateContext() *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateContext()
	})
}

// ClearContext clears the value of the "context" field.
func (u *FeedbackUpsertOne) ClearContext() *FeedbackUpsertOne {
	return u.Update(func(s *FeedbackUpsert) {
		s.ClearContext()
	})
}

// Exec executes the query.
func (u *FeedbackUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FeedbackCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FeedbackUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FeedbackUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: FeedbackUpsertOne.ID is not supported by MySQL driver. Use FeedbackUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FeedbackUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FeedbackCreateBulk is the builder for creating many Feedback entities in bulk.
type FeedbackCreateBulk struct {
	config
	err      error
	builders []*FeedbackCreate
	conflict []sql.ConflictOption
}

// Save creates the Feedback entities in the database.
func (_c *FeedbackCreateBulk) Save(ctx context.Context) ([]*Feedback, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Feedback, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeedbackMutation)
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
func (_c *FeedbackCreateBulk) SaveX(ctx context.Context) []*Feedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Feedback.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FeedbackUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *FeedbackCreateBulk) OnConflict(opts ...sql.ConflictOption) *FeedbackUpsertBulk {
	_c.conflict = opts
	return &FeedbackUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Feedback.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FeedbackCreateBulk) OnConflictColumns(columns ...string) *FeedbackUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FeedbackUpsertBulk{
		create: _c,
	}
}

// FeedbackUpsertBulk is the builder for "upsert"-ing
// a bulk of Feedback nodes.
type FeedbackUpsertBulk struct {
	create *FeedbackCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Feedback.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(feedback.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FeedbackUpsertBulk) UpdateNewValues() *FeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(feedback.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(feedback.FieldTaskID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(feedback.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Feedback.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FeedbackUpsertBulk) Ignore() *FeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FeedbackUpsertBulk) DoNothing() *FeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FeedbackCreateBulk.OnConflict
// documentation for more info.
func (u *FeedbackUpsertBulk) Update(set func(*FeedbackUpsert)) *FeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FeedbackUpsert{UpdateSet: update})
	}))
	return u
}

// SetExecutionID sets the "execution_id" field.
func (u *FeedbackUpsertBulk) SetExecutionID(v string) *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetExecutionID(v)
	})
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *FeedbackUpsertBulk) UpdateExecutionID() *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateExecutionID()
	})
}

// ClearExecutionID clears the value of the "execution_id" field.
func (u *FeedbackUpsertBulk) ClearExecutionID() *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.ClearExecutionID()
	})
}

// SetUserID sets the "user_id" field.
func (u *FeedbackUpsertBulk) SetUserID(v string) *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *FeedbackUpsertBulk) UpdateUserID() *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateUserID()
	})
}

// SetSentiment sets the "sentiment" field.
func (u *FeedbackUpsertBulk) SetSentiment(v feedback.Sentiment) *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetSentiment(v)
	})
}

// UpdateSentiment sets the "sentiment" field to the value that was provided on create.
func (u *FeedbackUpsertBulk) UpdateSentiment() *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateSentiment()
	})
}

// SetRating sets the "rating" field.
func (u *FeedbackUpsertBulk) SetRating(v float64) *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *FeedbackUpsertBulk) AddRating(v float64) *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *FeedbackUpsertBulk) UpdateRating() *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateRating()
	})
}

// SetReason sets the "reason" field.
func (u *FeedbackUpsertBulk) SetReason(v string) *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *FeedbackUpsertBulk) UpdateReason() *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *FeedbackUpsertBulk) ClearReason() *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.ClearReason()
	})
}

// SetContext sets the "context" field.
func (u *FeedbackUpsertBulk) SetContext(v map[string]interface{}) *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *FeedbackUpsertBulk) UpdateContext() *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.UpdateContext()
	})
}

// ClearContext clears the value of the "context" field.
func (u *FeedbackUpsertBulk) ClearContext() *FeedbackUpsertBulk {
	return u.Update(func(s *FeedbackUpsert) {
		s.ClearContext()
	})
}

// Exec executes the query.
func (u *FeedbackUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FeedbackCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FeedbackCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FeedbackUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
