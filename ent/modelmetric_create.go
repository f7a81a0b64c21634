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
	"github.com/devflow-ai/devflow/ent/modelmetric"
)

// ModelMetricCreate is the builder for creating a ModelMetric entity.
type ModelMetricCreate struct {
	config
	mutation *ModelMetricMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetExecutions sets the "executions" field.
func (_c *ModelMetricCreate) SetExecutions(v int) *ModelMetricCreate {
	_c.mutation.SetExecutions(v)
	return _c
}

// SetNillableExecutions sets the "executions" field if the given value is not nil.
func (_c *ModelMetricCreate) SetNillableExecutions(v *int) *ModelMetricCreate {
	if v != nil {
		_c.SetExecutions(*v)
	}
	return _c
}

// SetSuccesses sets the "successes" field.
func (_c *ModelMetricCreate) SetSuccesses(v int) *ModelMetricCreate {
	_c.mutation.SetSuccesses(v)
	return _c
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_c *ModelMetricCreate) SetNillableSuccesses(v *int) *ModelMetricCreate {
	if v != nil {
		_c.SetSuccesses(*v)
	}
	return _c
}

// SetAvgTokens sets the "avg_tokens" field.
func (_c *ModelMetricCreate) SetAvgTokens(v float64) *ModelMetricCreate {
	_c.mutation.SetAvgTokens(v)
	return _c
}

// SetNillableAvgTokens sets the "avg_tokens" field if the given value is not nil.
func (_c *ModelMetricCreate) SetNillableAvgTokens(v *float64) *ModelMetricCreate {
	if v != nil {
		_c.SetAvgTokens(*v)
	}
	return _c
}

// SetAvgCost sets the "avg_cost" field.
func (_c *ModelMetricCreate) SetAvgCost(v float64) *ModelMetricCreate {
	_c.mutation.SetAvgCost(v)
	return _c
}

// SetNillableAvgCost sets the "avg_cost" field if the given value is not nil.
func (_c *ModelMetricCreate) SetNillableAvgCost(v *float64) *ModelMetricCreate {
	if v != nil {
		_c.SetAvgCost(*v)
	}
	return _c
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (_c *ModelMetricCreate) SetAvgDurationMs(v float64) *ModelMetricCreate {
	_c.mutation.SetAvgDurationMs(v)
	return _c
}

// SetNillableAvgDurationMs sets the "avg_duration_ms" field if the given value is not nil.
func (_c *ModelMetricCreate) SetNillableAvgDurationMs(v *float64) *ModelMetricCreate {
	if v != nil {
		_c.SetAvgDurationMs(*v)
	}
	return _c
}

// SetAvgQuality sets the "avg_quality" field.
func (_c *ModelMetricCreate) SetAvgQuality(v float64) *ModelMetricCreate {
	_c.mutation.SetAvgQuality(v)
	return _c
}

// SetNillableAvgQuality sets the "avg_quality" field if the given value is not nil.
func (_c *ModelMetricCreate) SetNillableAvgQuality(v *float64) *ModelMetricCreate {
	if v != nil {
		_c.SetAvgQuality(*v)
	}
	return _c
}

// SetBuckets sets the "buckets" field.
func (_c *ModelMetricCreate) SetBuckets(v map[string]interface{}) *ModelMetricCreate {
	_c.mutation.SetBuckets(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ModelMetricCreate) SetUpdatedAt(v time.Time) *ModelMetricCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ModelMetricCreate) SetNillableUpdatedAt(v *time.Time) *ModelMetricCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModelMetricCreate) SetID(v string) *ModelMetricCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ModelMetricMutation object of the builder.
func (_c *ModelMetricCreate) Mutation() *ModelMetricMutation {
	return _c.mutation
}

// Save creates the ModelMetric in the database.
func (_c *ModelMetricCreate) Save(ctx context.Context) (*ModelMetric, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelMetricCreate) SaveX(ctx context.Context) *ModelMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelMetricCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelMetricCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelMetricCreate) defaults() {
	if _, ok := _c.mutation.Executions(); !ok {
		v := modelmetric.DefaultExecutions
		_c.mutation.SetExecutions(v)
	}
	if _, ok := _c.mutation.Successes(); !ok {
		v := modelmetric.DefaultSuccesses
		_c.mutation.SetSuccesses(v)
	}
	if _, ok := _c.mutation.AvgTokens(); !ok {
		v := modelmetric.DefaultAvgTokens
		_c.mutation.SetAvgTokens(v)
	}
	if _, ok := _c.mutation.AvgCost(); !ok {
		v := modelmetric.DefaultAvgCost
		_c.mutation.SetAvgCost(v)
	}
	if _, ok := _c.mutation.AvgDurationMs(); !ok {
		v := modelmetric.DefaultAvgDurationMs
		_c.mutation.SetAvgDurationMs(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := modelmetric.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelMetricCreate) check() error {
	if _, ok := _c.mutation.Executions(); !ok {
		return &ValidationError{Name: "executions", err: errors.New(`ent: missing required field "ModelMetric.executions"`)}
	}
	if _, ok := _c.mutation.Successes(); !ok {
		return &ValidationError{Name: "successes", err: errors.New(`ent: missing required field "ModelMetric.successes"`)}
	}
	if _, ok := _c.mutation.AvgTokens(); !ok {
		return &ValidationError{Name: "avg_tokens", err: errors.New(`ent: missing required field "ModelMetric.avg_tokens"`)}
	}
	if _, ok := _c.mutation.AvgCost(); !ok {
		return &ValidationError{Name: "avg_cost", err: errors.New(`ent: missing required field "ModelMetric.avg_cost"`)}
	}
	if _, ok := _c.mutation.AvgDurationMs(); !ok {
		return &ValidationError{Name: "avg_duration_ms", err: errors.New(`ent: missing required field "ModelMetric.avg_duration_ms"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ModelMetric.updated_at"`)}
	}
	return nil
}

func (_c *ModelMetricCreate) sqlSave(ctx context.Context) (*ModelMetric, error) {
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
			return nil, fmt.Errorf("unexpected ModelMetric.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModelMetricCreate) createSpec() (*ModelMetric, *sqlgraph.CreateSpec) {
	var (
		_node = &ModelMetric{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modelmetric.Table, sqlgraph.NewFieldSpec(modelmetric.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Executions(); ok {
		_spec.SetField(modelmetric.FieldExecutions, field.TypeInt, value)
		_node.Executions = value
	}
	if value, ok := _c.mutation.Successes(); ok {
		_spec.SetField(modelmetric.FieldSuccesses, field.TypeInt, value)
		_node.Successes = value
	}
	if value, ok := _c.mutation.AvgTokens(); ok {
		_spec.SetField(modelmetric.FieldAvgTokens, field.TypeFloat64, value)
		_node.AvgTokens = value
	}
	if value, ok := _c.mutation.AvgCost(); ok {
		_spec.SetField(modelmetric.FieldAvgCost, field.TypeFloat64, value)
		_node.AvgCost = value
	}
	if value, ok := _c.mutation.AvgDurationMs(); ok {
		_spec.SetField(modelmetric.FieldAvgDurationMs, field.TypeFloat64, value)
		_node.AvgDurationMs = value
	}
	if value, ok := _c.mutation.AvgQuality(); ok {
		_spec.SetField(modelmetric.FieldAvgQuality, field.TypeFloat64, value)
		_node.AvgQuality = &value
	}
	if value, ok := _c.mutation.Buckets(); ok {
		_spec.SetField(modelmetric.FieldBuckets, field.TypeJSON, value)
		_node.Buckets = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(modelmetric.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ModelMetric.Create().
//		SetExecutions(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ModelMetricUpsert) {
//			SetExecutions(v+v).
//		}).
//		Exec(ctx)
func (_c *ModelMetricCreate) OnConflict(opts ...sql.ConflictOption) *ModelMetricUpsertOne {
	_c.conflict = opts
	return &ModelMetricUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ModelMetric.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ModelMetricCreate) OnConflictColumns(columns ...string) *ModelMetricUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ModelMetricUpsertOne{
		create: _c,
	}
}

type (
	// ModelMetricUpsertOne is the builder for "upsert"-ing
	//  one ModelMetric node.
	ModelMetricUpsertOne struct {
		create *ModelMetricCreate
	}

	// ModelMetricUpsert is the "OnConflict" setter.
	ModelMetricUpsert struct {
		*sql.UpdateSet
	}
)

// SetExecutions sets the "executions" field.
func (u *ModelMetricUpsert) SetExecutions(v int) *ModelMetricUpsert {
	u.Set(modelmetric.FieldExecutions, v)
	return u
}

// UpdateExecutions sets the "executions" field to the value that was provided on create.
func (u *ModelMetricUpsert) UpdateExecutions() *ModelMetricUpsert {
	u.SetExcluded(modelmetric.FieldExecutions)
	return u
}

// AddExecutions adds v to the "executions" field.
func (u *ModelMetricUpsert) AddExecutions(v int) *ModelMetricUpsert {
	u.Add(modelmetric.FieldExecutions, v)
	return u
}

// SetSuccesses sets the "successes" field.
func (u *ModelMetricUpsert) SetSuccesses(v int) *ModelMetricUpsert {
	u.Set(modelmetric.FieldSuccesses, v)
	return u
}

// UpdateSuccesses sets the "successes" field to the value that was provided on create.
func (u *ModelMetricUpsert) UpdateSuccesses() *ModelMetricUpsert {
	u.SetExcluded(modelmetric.FieldSuccesses)
	return u
}

// AddSuccesses adds v to the "successes" field.
func (u *ModelMetricUpsert) AddSuccesses(v int) *ModelMetricUpsert {
	u.Add(modelmetric.FieldSuccesses, v)
	return u
}

// SetAvgTokens sets the "avg_tokens" field.
func (u *ModelMetricUpsert) SetAvgTokens(v float64) *ModelMetricUpsert {
	u.Set(modelmetric.FieldAvgTokens, v)
	return u
}

// UpdateAvgTokens sets the "avg_tokens" field to the value that was provided on create.
func (u *ModelMetricUpsert) UpdateAvgTokens() *ModelMetricUpsert {
	u.SetExcluded(modelmetric.FieldAvgTokens)
	return u
}

// AddAvgTokens adds v to the "avg_tokens" field.
func (u *ModelMetricUpsert) AddAvgTokens(v float64) *ModelMetricUpsert {
	u.Add(modelmetric.FieldAvgTokens, v)
	return u
}

// SetAvgCost sets the "avg_cost" field.
func (u *ModelMetricUpsert) SetAvgCost(v float64) *ModelMetricUpsert {
	u.Set(modelmetric.FieldAvgCost, v)
	return u
}

// UpdateAvgCost sets the "avg_cost" field to the value that was provided on create.
func (u *ModelMetricUpsert) UpdateAvgCost() *ModelMetricUpsert {
	u.SetExcluded(modelmetric.FieldAvgCost)
	return u
}

// AddAvgCost adds v to the "avg_cost" field.
func (u *ModelMetricUpsert) AddAvgCost(v float64) *ModelMetricUpsert {
	u.Add(modelmetric.FieldAvgCost, v)
	return u
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (u *ModelMetricUpsert) SetAvgDurationMs(v float64) *ModelMetricUpsert {
	u.Set(modelmetric.FieldAvgDurationMs, v)
	return u
}

// UpdateAvgDurationMs sets the "avg_duration_ms" field to the value that was provided on create.
func (u *ModelMetricUpsert) UpdateAvgDurationMs() *ModelMetricUpsert {
	u.SetExcluded(modelmetric.FieldAvgDurationMs)
	return u
}

// AddAvgDurationMs adds v to the "avg_duration_ms" field.
func (u *ModelMetricUpsert) AddAvgDurationMs(v float64) *ModelMetricUpsert {
	u.Add(modelmetric.FieldAvgDurationMs, v)
	return u
}

// SetAvgQuality sets the "avg_quality" field.
func (u *ModelMetricUpsert) SetAvgQuality(v float64) *ModelMetricUpsert {
	u.Set(modelmetric.FieldAvgQuality, v)
	return u
}

// UpdateAvgQuality sets the "avg_quality" field to the value that was provided on create.
func (u *ModelMetricUpsert) UpdateAvgQuality() *ModelMetricUpsert {
	u.SetExcluded(modelmetric.FieldAvgQuality)
	return u
}

// AddAvgQuality adds v to the "avg_quality" field.
func (u *ModelMetricUpsert) AddAvgQuality(v float64) *ModelMetricUpsert {
	u.Add(modelmetric.FieldAvgQuality, v)
	return u
}

// ClearAvgQuality clears the value of the "avg_quality" field.
func (u *ModelMetricUpsert) ClearAvgQuality() *ModelMetricUpsert {
	u.SetNull(modelmetric.FieldAvgQuality)
	return u
}

// SetBuckets sets the "buckets" field.
func (u *ModelMetricUpsert) SetBuckets(v map[string]interface{}) *ModelMetricUpsert {
	u.Set(modelmetric.FieldBuckets, v)
	return u
}

// UpdateBuckets sets the "buckets" field to the value that was provided on create.
func (u *ModelMetricUpsert) UpdateBuckets() *ModelMetricUpsert {
	u.SetExcluded(modelmetric.FieldBuckets)
	return u
}

// ClearBuckets clears the value of the "buckets" field.
func (u *ModelMetricUpsert) ClearBuckets() *ModelMetricUpsert {
	u.SetNull(modelmetric.FieldBuckets)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ModelMetricUpsert) SetUpdatedAt(v time.Time) *ModelMetricUpsert {
	u.Set(modelmetric.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ModelMetricUpsert) UpdateUpdatedAt() *ModelMetricUpsert {
	u.SetExcluded(modelmetric.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ModelMetric.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(modelmetric.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ModelMetricUpsertOne) UpdateNewValues() *ModelMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(modelmetric.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ModelMetric.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ModelMetricUpsertOne) Ignore() *ModelMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ModelMetricUpsertOne) DoNothing() *ModelMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ModelMetricCreate.OnConflict
// documentation for more info.
func (u *ModelMetricUpsertOne) Update(set func(*ModelMetricUpsert)) *ModelMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ModelMetricUpsert{UpdateSet: update})
	}))
	return u
}

// SetExecutions sets the "executions" field.
func (u *ModelMetricUpsertOne) SetExecutions(v int) *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.SetExecutions(v)
	})
}

// AddExecutions adds v to the "executions" field.
func (u *ModelMetricUpsertOne) AddExecutions(v int) *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.AddExecutions(v)
	})
}

// UpdateExecutions sets the "executions" field to the value that was provided on create.
func (u *ModelMetricUpsertOne) UpdateExecutions() *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.UpdateExecutions()
	})
}

// SetSuccesses sets the "successes" field.
func (u *ModelMetricUpsertOne) SetSuccesses(v int) *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.SetSuccesses(v)
	})
}

// AddSuccesses adds v to the "successes" field.
func (u *ModelMetricUpsertOne) AddSuccesses(v int) *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.AddSuccesses(v)
	})
}

// UpdateSuccesses sets the "successes" field to the value that was provided on create.
func (u *ModelMetricUpsertOne) UpdateSuccesses() *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.UpdateSuccesses()
	})
}

// SetAvgTokens sets the "avg_tokens" field.
func (u *ModelMetricUpsertOne) SetAvgTokens(v float64) *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.SetAvgTokens(v)
	})
}

// AddAvgTokens adds v to the "avg_tokens" field.
func (u *ModelMetricUpsertOne) AddAvgTokens(v float64) *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.AddAvgTokens(v)
	})
}

// UpdateAvgTokens sets the "avg_tokens" field to the value that was provided on create.
func (u *ModelMetricUpsertOne) UpdateAvgTokens() *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.UpdateAvgTokens()
	})
}

// SetAvgCost sets the "avg_cost" field.
func (u *ModelMetricUpsertOne) SetAvgCost(v float64) *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.SetAvgCost(v)
	})
}

// AddAvgCost adds v to the "avg_cost" field.
func (u *ModelMetricUpsertOne) AddAvgCost(v float64) *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.AddAvgCost(v)
	})
}

// UpdateAvgCost sets the "avg_cost" field to the value that was provided on create.
func (u *ModelMetricUpsertOne) UpdateAvgCost() *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.UpdateAvgCost()
	})
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (u *ModelMetricUpsertOne) SetAvgDurationMs(v float64) *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.SetAvgDurationMs(v)
	})
}

// AddAvgDurationMs adds v to the "avg_duration_ms" field.
func (u *ModelMetricUpsertOne) AddAvgDurationMs(v float64) *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.AddAvgDurationMs(v)
	})
}

// UpdateAvgDurationMs sets the "avg_duration_ms" field to the value that was provided on create.
func (u *ModelMetricUpsertOne) UpdateAvgDurationMs() *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.UpdateAvgDurationMs()
	})
}

// SetAvgQuality sets the "avg_quality" field.
func (u *ModelMetricUpsertOne) SetAvgQuality(v float64) *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.SetAvgQuality(v)
	})
}

// AddAvgQuality adds v to the "avg_quality" field.
func (u *ModelMetricUpsertOne) AddAvgQuality(v float64) *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.AddAvgQuality(v)
	})
}

// UpdateAvgQuality sets the "avg_quality" field to the value that was provided on create.
func (u *ModelMetricUpsertOne) UpdateAvgQuality() *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.UpdateAvgQuality()
	})
}

// ClearAvgQuality clears the value of the "avg_quality" field.
func (u *ModelMetricUpsertOne) ClearAvgQuality() *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.ClearAvgQuality()
	})
}

// SetBuckets sets the "buckets" field.
func (u *ModelMetricUpsertOne) SetBuckets(v map[string]interface{}) *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.SetBuckets(v)
	})
}

// UpdateBuckets sets the "buckets" field to the value that was provided on create.
func (u *ModelMetricUpsertOne) UpdateBuckets() *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.UpdateBuckets()
	})
}

// ClearBuckets clears the value of the "buckets" field.
func (u *ModelMetricUpsertOne) ClearBuckets() *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.ClearBuckets()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ModelMetricUpsertOne) SetUpdatedAt(v time.Time) *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ModelMetricUpsertOne) UpdateUpdatedAt() *ModelMetricUpsertOne {
	return u.Update(func(s *ModelMetricUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ModelMetricUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ModelMetricCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ModelMetricUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ModelMetricUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ModelMetricUpsertOne.ID is not supported by MySQL driver. Use ModelMetricUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ModelMetricUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ModelMetricCreateBulk is the builder for creating many ModelMetric entities in bulk.
type ModelMetricCreateBulk struct {
	config
	err      error
	builders []*ModelMetricCreate
	conflict []sql.ConflictOption
}

// Save creates the ModelMetric entities in the database.
func (_c *ModelMetricCreateBulk) Save(ctx context.Context) ([]*ModelMetric, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModelMetric, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelMetricMutation)
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
func (_c *ModelMetricCreateBulk) SaveX(ctx context.Context) []*ModelMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelMetricCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelMetricCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ModelMetric.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ModelMetricUpsert) {
//			SetExecutions(v+v).
//		}).
//		Exec(ctx)
func (_c *ModelMetricCreateBulk) OnConflict(opts ...sql.ConflictOption) *ModelMetricUpsertBulk {
	_c.conflict = opts
	return &ModelMetricUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ModelMetric.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ModelMetricCreateBulk) OnConflictColumns(columns ...string) *ModelMetricUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ModelMetricUpsertBulk{
		create: _c,
	}
}

// ModelMetricUpsertBulk is the builder for "upsert"-ing
// a bulk of ModelMetric nodes.
type ModelMetricUpsertBulk struct {
	create *ModelMetricCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ModelMetric.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(modelmetric.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ModelMetricUpsertBulk) UpdateNewValues() *ModelMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(modelmetric.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ModelMetric.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ModelMetricUpsertBulk) Ignore() *ModelMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ModelMetricUpsertBulk) DoNothing() *ModelMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ModelMetricCreateBulk.OnConflict
// documentation for more info.
func (u *ModelMetricUpsertBulk) Update(set func(*ModelMetricUpsert)) *ModelMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ModelMetricUpsert{UpdateSet: update})
	}))
	return u
}

// SetExecutions sets the "executions" field.
func (u *ModelMetricUpsertBulk) SetExecutions(v int) *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.SetExecutions(v)
	})
}

// AddExecutions adds v to the "executions" field.
func (u *ModelMetricUpsertBulk) AddExecutions(v int) *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.AddExecutions(v)
	})
}

// UpdateExecutions sets the "executions" field to the value that was provided on create.
func (u *ModelMetricUpsertBulk) UpdateExecutions() *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.UpdateExecutions()
	})
}

// SetSuccesses sets the "successes" field.
func (u *ModelMetricUpsertBulk) SetSuccesses(v int) *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.SetSuccesses(v)
	})
}

// AddSuccesses adds v to the "successes" field.
func (u *ModelMetricUpsertBulk) AddSuccesses(v int) *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.AddSuccesses(v)
	})
}

// UpdateSuccesses sets the "successes" field to the value that was provided on create.
func (u *ModelMetricUpsertBulk) UpdateSuccesses() *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.UpdateSuccesses()
	})
}

// SetAvgTokens sets the "avg_tokens" field.
func (u *ModelMetricUpsertBulk) SetAvgTokens(v float64) *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.SetAvgTokens(v)
	})
}

// AddAvgTokens adds v to the "avg_tokens" field.
func (u *ModelMetricUpsertBulk) AddAvgTokens(v float64) *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.AddAvgTokens(v)
	})
}

// UpdateAvgTokens sets the "avg_tokens" field to the value that was provided on create.
func (u *ModelMetricUpsertBulk) UpdateAvgTokens() *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.UpdateAvgTokens()
	})
}

// SetAvgCost sets the "avg_cost" field.
func (u *ModelMetricUpsertBulk) SetAvgCost(v float64) *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.SetAvgCost(v)
	})
}

// AddAvgCost adds v to the "avg_cost" field.
func (u *ModelMetricUpsertBulk) AddAvgCost(v float64) *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.AddAvgCost(v)
	})
}

// UpdateAvgCost sets the "avg_cost" field to the value that was provided on create.
func (u *ModelMetricUpsertBulk) UpdateAvgCost() *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.UpdateAvgCost()
	})
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (u *ModelMetricUpsertBulk) SetAvgDurationMs(v float64) *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.SetAvgDurationMs(v)
	})
}

// AddAvgDurationMs adds v to the "avg_duration_ms" field.
func (u *ModelMetricUpsertBulk) AddAvgDurationMs(v float64) *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.AddAvgDurationMs(v)
	})
}

// UpdateAvgDurationMs sets the "avg_duration_ms" field to the value that was provided on create.
func (u *ModelMetricUpsertBulk) UpdateAvgDurationMs() *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.UpdateAvgDurationMs()
	})
}

// SetAvgQuality sets the "avg_quality" field.
func (u *ModelMetricUpsertBulk) SetAvgQuality(v float64) *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.SetAvgQuality(v)
	})
}

// AddAvgQuality adds v to the "avg_quality" field.
func (u *ModelMetricUpsertBulk) AddAvgQuality(v float64) *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.AddAvgQuality(v)
	})
}

// UpdateAvgQuality sets the "avg_quality" field to the value that was provided on create.
func (u *ModelMetricUpsertBulk) UpdateAvgQuality() *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.UpdateAvgQuality()
	})
}

// ClearAvgQuality clears the value of the "avg_quality" field.
func (u *ModelMetricUpsertBulk) ClearAvgQuality() *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.ClearAvgQuality()
	})
}

// SetBuckets sets the "buckets" field.
func (u *ModelMetricUpsertBulk) SetBuckets(v map[string]interface{}) *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.SetBuckets(v)
	})
}

// UpdateBuckets sets the "buckets" field to the value that was provided on create.
func (u *ModelMetricUpsertBulk) UpdateBuckets() *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.UpdateBuckets()
	})
}

// ClearBuckets clears the value of the "buckets" field.
func (u *ModelMetricUpsertBulk) ClearBuckets() *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.ClearBuckets()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ModelMetricUpsertBulk) SetUpdatedAt(v time.Time) *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ModelMetricUpsertBulk) UpdateUpdatedAt() *ModelMetricUpsertBulk {
	return u.Update(func(s *ModelMetricUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ModelMetricUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ModelMetricCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ModelMetricCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ModelMetricUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
