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
	"github.com/devflow-ai/devflow/ent/abtest"
	"github.com/devflow-ai/devflow/ent/abtestresult"
)

// ABTestCreate is the builder for creating a ABTest entity.
type ABTestCreate struct {
	config
	mutation *ABTestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *ABTestCreate) SetName(v string) *ABTestCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetModelA sets the "model_a" field.
func (_c *ABTestCreate) SetModelA(v string) *ABTestCreate {
	_c.mutation.SetModelA(v)
	return _c
}

// SetModelB sets the "model_b" field.
func (_c *ABTestCreate) SetModelB(v string) *ABTestCreate {
	_c.mutation.SetModelB(v)
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *ABTestCreate) SetTaskType(v string) *ABTestCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_c *ABTestCreate) SetNillableTaskType(v *string) *ABTestCreate {
	if v != nil {
		_c.SetTaskType(*v)
	}
	return _c
}

// SetTrafficPercent sets the "traffic_percent" field.
func (_c *ABTestCreate) SetTrafficPercent(v int) *ABTestCreate {
	_c.mutation.SetTrafficPercent(v)
	return _c
}

// SetMinSamples sets the "min_samples" field.
func (_c *ABTestCreate) SetMinSamples(v int) *ABTestCreate {
	_c.mutation.SetMinSamples(v)
	return _c
}

// SetNillableMinSamples sets the "min_samples" field if the given value is not nil.
func (_c *ABTestCreate) SetNillableMinSamples(v *int) *ABTestCreate {
	if v != nil {
		_c.SetMinSamples(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ABTestCreate) SetStatus(v abtest.Status) *ABTestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ABTestCreate) SetNillableStatus(v *abtest.Status) *ABTestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ABTestCreate) SetStartedAt(v time.Time) *ABTestCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ABTestCreate) SetNillableStartedAt(v *time.Time) *ABTestCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndsAt sets the "ends_at" field.
func (_c *ABTestCreate) SetEndsAt(v time.Time) *ABTestCreate {
	_c.mutation.SetEndsAt(v)
	return _c
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_c *ABTestCreate) SetNillableEndsAt(v *time.Time) *ABTestCreate {
	if v != nil {
		_c.SetEndsAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ABTestCreate) SetID(v string) *ABTestCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddResultIDs adds the "results" edge to the ABTestResult entity by IDs.
func (_c *ABTestCreate) AddResultIDs(ids ...string) *ABTestCreate {
	_c.mutation.AddResultIDs(ids...)
	return _c
}

// AddResults adds the "results" edges to the ABTestResult entity.
func (_c *ABTestCreate) AddResults(v ...*ABTestResult) *ABTestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResultIDs(ids...)
}

// Mutation returns the ABTestMutation object of the builder.
func (_c *ABTestCreate) Mutation() *ABTestMutation {
	return _c.mutation
}

// Save creates the ABTest in the database.
func (_c *ABTestCreate) Save(ctx context.Context) (*ABTest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ABTestCreate) SaveX(ctx context.Context) *ABTest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ABTestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ABTestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ABTestCreate) defaults() {
	if _, ok := _c.mutation.MinSamples(); !ok {
		v := abtest.DefaultMinSamples
		_c.mutation.SetMinSamples(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := abtest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := abtest.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ABTestCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ABTest.name"`)}
	}
	if _, ok := _c.mutation.ModelA(); !ok {
		return &ValidationError{Name: "model_a", err: errors.New(`ent: missing required field "ABTest.model_a"`)}
	}
	if _, ok := _c.mutation.ModelB(); !ok {
		return &ValidationError{Name: "model_b", err: errors.New(`ent: missing required field "ABTest.model_b"`)}
	}
	if _, ok := _c.mutation.TrafficPercent(); !ok {
		return &ValidationError{Name: "traffic_percent", err: errors.New(`ent: missing required field "ABTest.traffic_percent"`)}
	}
	if _, ok := _c.mutation.MinSamples(); !ok {
		return &ValidationError{Name: "min_samples", err: errors.New(`ent: missing required field "ABTest.min_samples"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ABTest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := abtest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ABTest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ABTest.started_at"`)}
	}
	return nil
}

func (_c *ABTestCreate) sqlSave(ctx context.Context) (*ABTest, error) {
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
			return nil, fmt.Errorf("unexpected ABTest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ABTestCreate) createSpec() (*ABTest, *sqlgraph.CreateSpec) {
	var (
		_node = &ABTest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(abtest.Table, sqlgraph.NewFieldSpec(abtest.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(abtest.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ModelA(); ok {
		_spec.SetField(abtest.FieldModelA, field.TypeString, value)
		_node.ModelA = value
	}
	if value, ok := _c.mutation.ModelB(); ok {
		_spec.SetField(abtest.FieldModelB, field.TypeString, value)
		_node.ModelB = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(abtest.FieldTaskType, field.TypeString, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.TrafficPercent(); ok {
		_spec.SetField(abtest.FieldTrafficPercent, field.TypeInt, value)
		_node.TrafficPercent = value
	}
	if value, ok := _c.mutation.MinSamples(); ok {
		_spec.SetField(abtest.FieldMinSamples, field.TypeInt, value)
		_node.MinSamples = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(abtest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(abtest.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndsAt(); ok {
		_spec.SetField(abtest.FieldEndsAt, field.TypeTime, value)
		_node.EndsAt = &value
	}
	if nodes := _c.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   abtest.ResultsTable,
			Columns: []string{abtest.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(abtestresult.FieldID, field.TypeString),
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
//	client.ABTest.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ABTestUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ABTestCreate) OnConflict(opts ...sql.ConflictOption) *ABTestUpsertOne {
	_c.conflict = opts
	return &ABTestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ABTest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ABTestCreate) OnConflictColumns(columns ...string) *ABTestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ABTestUpsertOne{
		create: _c,
	}
}

type (
	// ABTestUpsertOne is the builder for "upsert"-ing
	//  one ABTest node.
	ABTestUpsertOne struct {
		create *ABTestCreate
	}

	// ABTestUpsert is the "OnConflict" setter.
	ABTestUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *ABTestUpsert) SetName(v string) *ABTestUpsert {
	u.Set(abtest.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ABTestUpsert) UpdateName() *ABTestUpsert {
	u.SetExcluded(abtest.FieldName)
	return u
}

// SetModelA sets the "model_a" field.
func (u *ABTestUpsert) SetModelA(v string) *ABTestUpsert {
	u.Set(abtest.FieldModelA, v)
	return u
}

// UpdateModelA sets the "model_a" field to the value that was provided on create.
func (u *ABTestUpsert) UpdateModelA() *ABTestUpsert {
	u.SetExcluded(abtest.FieldModelA)
	return u
}

// SetModelB sets the "model_b" field.
func (u *ABTestUpsert) SetModelB(v string) *ABTestUpsert {
	u.Set(abtest.FieldModelB, v)
	return u
}

// UpdateModelB sets the "model_b" field to the value that was provided on create.
func (u *ABTestUpsert) UpdateModelB() *ABTestUpsert {
	u.SetExcluded(abtest.FieldModelB)
	return u
}

// SetTaskType sets the "task_type" field.
func (u *ABTestUpsert) SetTaskType(v string) *ABTestUpsert {
	u.Set(abtest.FieldTaskType, v)
	return u
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *ABTestUpsert) UpdateTaskType() *ABTestUpsert {
	u.SetExcluded(abtest.FieldTaskType)
	return u
}

// ClearTaskType clears the value of the "task_type" field.
func (u *ABTestUpsert) ClearTaskType() *ABTestUpsert {
	u.SetNull(abtest.FieldTaskType)
	return u
}

// SetTrafficPercent sets the "traffic_percent" field.
func (u *ABTestUpsert) SetTrafficPercent(v int) *ABTestUpsert {
	u.Set(abtest.FieldTrafficPercent, v)
	return u
}

// UpdateTrafficPercent sets the "traffic_percent" field to the value that was provided on create.
func (u *ABTestUpsert) UpdateTrafficPercent() *ABTestUpsert {
	u.SetExcluded(abtest.FieldTrafficPercent)
	return u
}

// AddTrafficPercent adds v to the "traffic_percent" field.
func (u *ABTestUpsert) AddTrafficPercent(v int) *ABTestUpsert {
	u.Add(abtest.FieldTrafficPercent, v)
	return u
}

// SetMinSamples sets the "min_samples" field.
func (u *ABTestUpsert) SetMinSamples(v int) *ABTestUpsert {
	u.Set(abtest.FieldMinSamples, v)
	return u
}

// UpdateMinSamples sets the "min_samples" field to the value that was provided on create.
func (u *ABTestUpsert) UpdateMinSamples() *ABTestUpsert {
	u.SetExcluded(abtest.FieldMinSamples)
	return u
}

// AddMinSamples adds v to the "min_samples" field.
func (u *ABTestUpsert) AddMinSamples(v int) *ABTestUpsert {
	u.Add(abtest.FieldMinSamples, v)
	return u
}

// SetStatus sets the "status" field.
func (u *ABTestUpsert) SetStatus(v abtest.Status) *ABTestUpsert {
	u.Set(abtest.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ABTestUpsert) UpdateStatus() *ABTestUpsert {
	u.SetExcluded(abtest.FieldStatus)
	return u
}

// SetEndsAt sets the "ends_at" field.
func (u *ABTestUpsert) SetEndsAt(v time.Time) *ABTestUpsert {
	u.Set(abtest.FieldEndsAt, v)
	return u
}

// UpdateEndsAt sets the "ends_at" field to the value that was provided on create.
func (u *ABTestUpsert) UpdateEndsAt() *ABTestUpsert {
	u.SetExcluded(abtest.FieldEndsAt)
	return u
}

// ClearEndsAt clears the value of the "ends_at" field.
func (u *ABTestUpsert) ClearEndsAt() *ABTestUpsert {
	u.SetNull(abtest.FieldEndsAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ABTest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(abtest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ABTestUpsertOne) UpdateNewValues() *ABTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(abtest.FieldID)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(abtest.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ABTest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ABTestUpsertOne) Ignore() *ABTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ABTestUpsertOne) DoNothing() *ABTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ABTestCreate.OnConflict
// documentation for more info.
func (u *ABTestUpsertOne) Update(set func(*ABTestUpsert)) *ABTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ABTestUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ABTestUpsertOne) SetName(v string) *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ABTestUpsertOne) UpdateName() *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.UpdateName()
	})
}

// SetModelA sets the "model_a" field.
func (u *ABTestUpsertOne) SetModelA(v string) *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.SetModelA(v)
	})
}

// UpdateModelA sets the "model_a" field to the value that was provided on create.
func (u *ABTestUpsertOne) UpdateModelA() *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.UpdateModelA()
	})
}

// SetModelB sets the "model_b" field.
func (u *ABTestUpsertOne) SetModelB(v string) *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.SetModelB(v)
	})
}

// UpdateModelB sets the "model_b" field to the value that was provided on create.
func (u *ABTestUpsertOne) UpdateModelB() *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.UpdateModelB()
	})
}

// SetTaskType sets the "task_type" field.
func (u *ABTestUpsertOne) SetTaskType(v string) *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *ABTestUpsertOne) UpdateTaskType() *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.UpdateTaskType()
	})
}

// ClearTaskType clears the value of the "task_type" field.
func (u *ABTestUpsertOne) ClearTaskType() *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.ClearTaskType()
	})
}

// SetTrafficPercent sets the "traffic_percent" field.
func (u *ABTestUpsertOne) SetTrafficPercent(v int) *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.SetTrafficPercent(v)
	})
}

// AddTrafficPercent adds v to the "traffic_percent" field.
func (u *ABTestUpsertOne) AddTrafficPercent(v int) *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.AddTrafficPercent(v)
	})
}

// UpdateTrafficPercent sets the "traffic_percent" field to the value that was provided on create.
func (u *ABTestUpsertOne) UpdateTrafficPercent() *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.UpdateTrafficPercent()
	})
}

// SetMinSamples sets the "min_samples" field.
func (u *ABTestUpsertOne) SetMinSamples(v int) *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.SetMinSamples(v)
	})
}

// AddMinSamples adds v to the "min_samples" field.
func (u *ABTestUpsertOne) AddMinSamples(v int) *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.AddMinSamples(v)
	})
}

// UpdateMinSamples sets the "min_samples" field to the value that was provided on create.
func (u *ABTestUpsertOne) UpdateMinSamples() *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.UpdateMinSamples()
	})
}

// SetStatus sets the "status" field.
func (u *ABTestUpsertOne) SetStatus(v abtest.Status) *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ABTestUpsertOne) UpdateStatus() *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.UpdateStatus()
	})
}

// SetEndsAt sets the "ends_at" field.
func (u *ABTestUpsertOne) SetEndsAt(v time.Time) *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.SetEndsAt(v)
	})
}

// UpdateEndsAt sets the "ends_at" field to the value that was provided on create.
func (u *ABTestUpsertOne) UpdateEndsAt() *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.UpdateEndsAt()
	})
}

// ClearEndsAt clears the value of the "ends_at" field.
func (u *ABTestUpsertOne) ClearEndsAt() *ABTestUpsertOne {
	return u.Update(func(s *ABTestUpsert) {
		s.ClearEndsAt()
	})
}

// Exec executes the query.
func (u *ABTestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ABTestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ABTestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ABTestUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ABTestUpsertOne.ID is not supported by MySQL driver. Use ABTestUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ABTestUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ABTestCreateBulk is the builder for creating many ABTest entities in bulk.
type ABTestCreateBulk struct {
	config
	err      error
	builders []*ABTestCreate
	conflict []sql.ConflictOption
}

// Save creates the ABTest entities in the database.
func (_c *ABTestCreateBulk) Save(ctx context.Context) ([]*ABTest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ABTest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ABTestMutation)
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
func (_c *ABTestCreateBulk) SaveX(ctx context.Context) []*ABTest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ABTestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ABTestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ABTest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ABTestUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ABTestCreateBulk) OnConflict(opts ...sql.ConflictOption) *ABTestUpsertBulk {
	_c.conflict = opts
	return &ABTestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ABTest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ABTestCreateBulk) OnConflictColumns(columns ...string) *ABTestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ABTestUpsertBulk{
		create: _c,
	}
}

// ABTestUpsertBulk is the builder for "upsert"-ing
// a bulk of ABTest nodes.
type ABTestUpsertBulk struct {
	create *ABTestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ABTest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(abtest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ABTestUpsertBulk) UpdateNewValues() *ABTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(abtest.FieldID)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(abtest.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ABTest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ABTestUpsertBulk) Ignore() *ABTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ABTestUpsertBulk) DoNothing() *ABTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ABTestCreateBulk.OnConflict
// documentation for more info.
func (u *ABTestUpsertBulk) Update(set func(*ABTestUpsert)) *ABTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ABTestUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ABTestUpsertBulk) SetName(v string) *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ABTestUpsertBulk) UpdateName() *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.UpdateName()
	})
}

// SetModelA sets the "model_a" field.
func (u *ABTestUpsertBulk) SetModelA(v string) *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.SetModelA(v)
	})
}

// UpdateModelA sets the "model_a" field to the value that was provided on create.
func (u *ABTestUpsertBulk) UpdateModelA() *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.UpdateModelA()
	})
}

// SetModelB sets the "model_b" field.
func (u *ABTestUpsertBulk) SetModelB(v string) *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.SetModelB(v)
	})
}

// UpdateModelB sets the "model_b" field to the value that was provided on create.
func (u *ABTestUpsertBulk) UpdateModelB() *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.UpdateModelB()
	})
}

// SetTaskType sets the "task_type" field.
func (u *ABTestUpsertBulk) SetTaskType(v string) *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *ABTestUpsertBulk) UpdateTaskType() *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.UpdateTaskType()
	})
}

// ClearTaskType clears the value of the "task_type" field.
func (u *ABTestUpsertBulk) ClearTaskType() *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.ClearTaskType()
	})
}

// SetTrafficPercent sets the "traffic_percent" field.
func (u *ABTestUpsertBulk) SetTrafficPercent(v int) *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.SetTrafficPercent(v)
	})
}

// AddTrafficPercent adds v to the "traffic_percent" field.
func (u *ABTestUpsertBulk) AddTrafficPercent(v int) *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.AddTrafficPercent(v)
	})
}

// UpdateTrafficPercent sets the "traffic_percent" field to the value that was provided on create.
func (u *ABTestUpsertBulk) UpdateTrafficPercent() *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.UpdateTrafficPercent()
	})
}

// SetMinSamples sets the "min_samples" field.
func (u *ABTestUpsertBulk) SetMinSamples(v int) *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.SetMinSamples(v)
	})
}

// AddMinSamples adds v to the "min_samples" field.
func (u *ABTestUpsertBulk) AddMinSamples(v int) *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.AddMinSamples(v)
	})
}

// UpdateMinSamples sets the "min_samples" field to the value that was provided on create.
func (u *ABTestUpsertBulk) UpdateMinSamples() *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.UpdateMinSamples()
	})
}

// SetStatus sets the "status" field.
func (u *ABTestUpsertBulk) SetStatus(v abtest.Status) *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ABTestUpsertBulk) UpdateStatus() *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.UpdateStatus()
	})
}

// SetEndsAt sets the "ends_at" field.
func (u *ABTestUpsertBulk) SetEndsAt(v time.Time) *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.SetEndsAt(v)
	})
}

// UpdateEndsAt sets the "ends_at" field to the value that was provided on create.
func (u *ABTestUpsertBulk) UpdateEndsAt() *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.UpdateEndsAt()
	})
}

// ClearEndsAt clears the value of the "ends_at" field.
func (u *ABTestUpsertBulk) ClearEndsAt() *ABTestUpsertBulk {
	return u.Update(func(s *ABTestUpsert) {
		s.ClearEndsAt()
	})
}

// Exec executes the query.
func (u *ABTestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ABTestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ABTestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ABTestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
