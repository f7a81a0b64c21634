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

// ABTestResultCreate is the builder for creating a ABTestResult entity.
type ABTestResultCreate struct {
	config
	mutation *ABTestResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTestID sets the "test_id" field.
func (_c *ABTestResultCreate) SetTestID(v string) *ABTestResultCreate {
	_c.mutation.SetTestID(v)
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *ABTestResultCreate) SetRequestID(v string) *ABTestResultCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetVariant sets the "variant" field.
func (_c *ABTestResultCreate) SetVariant(v string) *ABTestResultCreate {
	_c.mutation.SetVariant(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *ABTestResultCreate) SetSuccess(v bool) *ABTestResultCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ABTestResultCreate) SetDurationMs(v int64) *ABTestResultCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetTokens sets the "tokens" field.
func (_c *ABTestResultCreate) SetTokens(v int) *ABTestResultCreate {
	_c.mutation.SetTokens(v)
	return _c
}

// SetCost sets the "cost" field.
func (_c *ABTestResultCreate) SetCost(v float64) *ABTestResultCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetQualityScore sets the "quality_score" field.
func (_c *ABTestResultCreate) SetQualityScore(v float64) *ABTestResultCreate {
	_c.mutation.SetQualityScore(v)
	return _c
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_c *ABTestResultCreate) SetNillableQualityScore(v *float64) *ABTestResultCreate {
	if v != nil {
		_c.SetQualityScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ABTestResultCreate) SetCreatedAt(v time.Time) *ABTestResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ABTestResultCreate) SetNillableCreatedAt(v *time.Time) *ABTestResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ABTestResultCreate) SetID(v string) *ABTestResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTest sets the "test" edge to the ABTest entity.
func (_c *ABTestResultCreate) SetTest(v *ABTest) *ABTestResultCreate {
	return _c.SetTestID(v.ID)
}

// Mutation returns the ABTestResultMutation object of the builder.
func (_c *ABTestResultCreate) Mutation() *ABTestResultMutation {
	return _c.mutation
}

// Save creates the ABTestResult in the database.
func (_c *ABTestResultCreate) Save(ctx context.Context) (*ABTestResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ABTestResultCreate) SaveX(ctx context.Context) *ABTestResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ABTestResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ABTestResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ABTestResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := abtestresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ABTestResultCreate) check() error {
	if _, ok := _c.mutation.TestID(); !ok {
		return &ValidationError{Name: "test_id", err: errors.New(`ent: missing required field "ABTestResult.test_id"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "ABTestResult.request_id"`)}
	}
	if _, ok := _c.mutation.Variant(); !ok {
		return &ValidationError{Name: "variant", err: errors.New(`ent: missing required field "ABTestResult.variant"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "ABTestResult.success"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "ABTestResult.duration_ms"`)}
	}
	if _, ok := _c.mutation.Tokens(); !ok {
		return &ValidationError{Name: "tokens", err: errors.New(`ent: missing required field "ABTestResult.tokens"`)}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "ABTestResult.cost"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ABTestResult.created_at"`)}
	}
	if len(_c.mutation.TestIDs()) == 0 {
		return &ValidationError{Name: "test", err: errors.New(`ent: missing required edge "ABTestResult.test"`)}
	}
	return nil
}

func (_c *ABTestResultCreate) sqlSave(ctx context.Context) (*ABTestResult, error) {
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
			return nil, fmt.Errorf("unexpected ABTestResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ABTestResultCreate) createSpec() (*ABTestResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ABTestResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(abtestresult.Table, sqlgraph.NewFieldSpec(abtestresult.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(abtestresult.FieldRequestID, field.TypeString, value)
		_node.RequestID = value
	}
	if value, ok := _c.mutation.Variant(); ok {
		_spec.SetField(abtestresult.FieldVariant, field.TypeString, value)
		_node.Variant = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(abtestresult.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(abtestresult.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Tokens(); ok {
		_spec.SetField(abtestresult.FieldTokens, field.TypeInt, value)
		_node.Tokens = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(abtestresult.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.QualityScore(); ok {
		_spec.SetField(abtestresult.FieldQualityScore, field.TypeFloat64, value)
		_node.QualityScore = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(abtestresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   abtestresult.TestTable,
			Columns: []string{abtestresult.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(abtest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TestID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ABTestResult.Create().
//		SetTestID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ABTestResultUpsert) {
//			SetTestID(v+v).
//		}).
//		Exec(ctx)
func (_c *ABTestResultCreate) OnConflict(opts ...sql.ConflictOption) *ABTestResultUpsertOne {
	_c.conflict = opts
	return &ABTestResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ABTestResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ABTestResultCreate) OnConflictColumns(columns ...string) *ABTestResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ABTestResultUpsertOne{
		create: _c,
	}
}

type (
	// ABTestResultUpsertOne is the builder for "upsert"-ing
	//  one ABTestResult node.
	ABTestResultUpsertOne struct {
		create *ABTestResultCreate
	}

	// ABTestResultUpsert is the "OnConflict" setter.
	ABTestResultUpsert struct {
		*sql.UpdateSet
	}
)

// SetVariant sets the "variant" field.
func (u *ABTestResultUpsert) SetVariant(v string) *ABTestResultUpsert {
	u.Set(abtestresult.FieldVariant, v)
	return u
}

// UpdateVariant sets the "variant" field to the value that was provided on create.
func (u *ABTestResultUpsert) UpdateVariant() *ABTestResultUpsert {
	u.SetExcluded(abtestresult.FieldVariant)
	return u
}

// SetSuccess sets the "success" field.
func (u *ABTestResultUpsert) SetSuccess(v bool) *ABTestResultUpsert {
	u.Set(abtestresult.FieldSuccess, v)
	return u
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *ABTestResultUpsert) UpdateSuccess() *ABTestResultUpsert {
	u.SetExcluded(abtestresult.FieldSuccess)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *ABTestResultUpsert) SetDurationMs(v int64) *ABTestResultUpsert {
	u.Set(abtestresult.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ABTestResultUpsert) UpdateDurationMs() *ABTestResultUpsert {
	u.SetExcluded(abtestresult.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ABTestResultUpsert) AddDurationMs(v int64) *ABTestResultUpsert {
	u.Add(abtestresult.FieldDurationMs, v)
	return u
}

// SetTokens sets the "tokens" field.
func (u *ABTestResultUpsert) SetTokens(v int) *ABTestResultUpsert {
	u.Set(abtestresult.FieldTokens, v)
	return u
}

// UpdateTokens sets the "tokens" field to the value that was provided on create.
func (u *ABTestResultUpsert) UpdateTokens() *ABTestResultUpsert {
	u.SetExcluded(abtestresult.FieldTokens)
	return u
}

// AddTokens adds v to the "tokens" field.
func (u *ABTestResultUpsert) AddTokens(v int) *ABTestResultUpsert {
	u.Add(abtestresult.FieldTokens, v)
	return u
}

// SetCost sets the "cost" field.
func (u *ABTestResultUpsert) SetCost(v float64) *ABTestResultUpsert {
	u.Set(abtestresult.FieldCost, v)
	return u
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *ABTestResultUpsert) UpdateCost() *ABTestResultUpsert {
	u.SetExcluded(abtestresult.FieldCost)
	return u
}

// AddCost adds v to the "cost" field.
func (u *ABTestResultUpsert) AddCost(v float64) *ABTestResultUpsert {
	u.Add(abtestresult.FieldCost, v)
	return u
}

// SetQualityScore sets the "quality_score" field.
func (u *ABTestResultUpsert) SetQualityScore(v float64) *ABTestResultUpsert {
	u.Set(abtestresult.FieldQualityScore, v)
	return u
}

// UpdateQualityScore sets the "quality_score" field to the value that was provided on create.
func (u *ABTestResultUpsert) UpdateQualityScore() *ABTestResultUpsert {
	u.SetExcluded(abtestresult.FieldQualityScore)
	return u
}

// AddQualityScore adds v to the "quality_score" field.
func (u *ABTestResultUpsert) AddQualityScore(v float64) *ABTestResultUpsert {
	u.Add(abtestresult.FieldQualityScore, v)
	return u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (u *ABTestResultUpsert) ClearQualityScore() *ABTestResultUpsert {
	u.SetNull(abtestresult.FieldQualityScore)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ABTestResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(abtestresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ABTestResultUpsertOne) UpdateNewValues() *ABTestResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(abtestresult.FieldID)
		}
		if _, exists := u.create.mutation.TestID(); exists {
			s.SetIgnore(abtestresult.FieldTestID)
		}
		if _, exists := u.create.mutation.RequestID(); exists {
			s.SetIgnore(abtestresult.FieldRequestID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(abtestresult.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ABTestResult.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ABTestResultUpsertOne) Ignore() *ABTestResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ABTestResultUpsertOne) DoNothing() *ABTestResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ABTestResultCreate.OnConflict
// documentation for more info.
func (u *ABTestResultUpsertOne) Update(set func(*ABTestResultUpsert)) *ABTestResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ABTestResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetVariant sets the "variant" field.
func (u *ABTestResultUpsertOne) SetVariant(v string) *ABTestResultUpsertOne {
	return u.Update(func(s *ABTestResultUpsert) {
		s.SetVariant(v)
	})
}

// UpdateVariant sets the "variant" field to the value that was provided on create.
func (u *ABTestResultUpsertOne) UpdateVariant() *ABTestResultUpsertOne {
	return u.Update(func(s *ABTestResultUpsert) {
		s.UpdateVariant()
	})
}

// SetSuccess sets the "success" field.
func (u *ABTestResultUpsertOne) SetSuccess(v bool) *ABTestResultUpsertOne {
	return u.Update(func(s *ABTestResultUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *ABTestResultUpsertOne) UpdateSuccess() *ABTestResultUpsertOne {
	return u.Update(func(s *ABTestResultUpsert) {
		s.UpdateSuccess()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *ABTestResultUpsertOne) SetDurationMs(v int64) *ABTestResultUpsertOne {
	return u.Update(func(s *ABTestResultUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ABTestResultUpsertOne) AddDurationMs(v int64) *ABTestResultUpsertOne {
	return u.Update(func(s *ABTestResultUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ABTestResultUpsertOne) UpdateDurationMs() *ABTestResultUpsertOne {
	return u.Update(func(s *ABTestResultUpsert) {
		s.UpdateDurationMs()
	})
}

// SetTokens sets the "tokens" field.
func (u *ABTestResultUpsertOne) SetTokens(v int) *ABTestResultUpsertOne {
	return u.Update(func(s *ABTestResultUpsert) {
		s.SetTokens(v)
	})
}

// AddTokens adds v to the "tokens" field.
func (u *ABTestResultUpsertOne) AddTokens(v int) *ABTestResultUpsertOne {
	return u.Update(func(s *ABTestResultUpsert) {
		s.AddTokens(v)
	})
}

// UpdateTokens sets the "tokens" field to the value that was provided on create.
func (u *ABTestResultUpsertOne) UpdateTokens() *ABTestResultUpsertOne {
	return u.Update(func(s *ABTestResultUpsert) {
		s.UpdateTokens()
	})
}

// SetCost sets the "cost" field.
func (u *ABTestResultUpsertOne) SetCost(v float64) *ABTestResultUpsertOne {
	return u.Update(func(s *ABTestResultUpsert) {
		s.SetCost(v)
	})
}

// AddCost adds v to the "cost" field.
func (u *ABTestResultUpsertOne) AddCost(v float64) *ABTestResultUpsertOne {
	return u.Update(func(s *ABTestResultUpsert) {
		s.AddCost(v)
	})
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *ABTestResultUpsertOne) UpdateCost() *ABTestResultUpsertOne {
	return u.Update(func(s *ABTestResultUpsert) {
		s.UpdateCost()
	})
}

// SetQualityScore sets the "quality_score" field.
func (u *ABTestResultUpsertOne) SetQualityScore(v float64) *ABTestResultUpsertOne {
	return u.Update(func(s *ABTestResultUpsert) {
		s.SetQualityScore(v)
	})
}

// AddQualityScore adds v to the "quality_score" field.
func (u *ABTestResultUpsertOne) AddQualityScore(v float64) *ABTestResultUpsertOne {
	return u.Update(func(s *ABTestResultUpsert) {
		s.AddQualityScore(v)
	})
}

// UpdateQualityScore sets the "quality_score" field to the value that was provided on create.
func (u *ABTestResultUpsertOne) UpdateQualityScore() *ABTestResultUpsertOne {
	return u.Update(func(s *ABTestResultUpsert) {
		s.UpdateQualityScore()
	})
}

// ClearQualityScore clears the value of the "quality_score" field.
func (u *ABTestResultUpsertOne) ClearQualityScore() *ABTestResultUpsertOne {
	return u.Update(func(s *ABTestResultUpsert) {
		s.ClearQualityScore()
	})
}

// Exec executes the query.
func (u *ABTestResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ABTestResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ABTestResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ABTestResultUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ABTestResultUpsertOne.ID is not supported by MySQL driver. Use ABTestResultUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ABTestResultUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ABTestResultCreateBulk is the builder for creating many ABTestResult entities in bulk.
type ABTestResultCreateBulk struct {
	config
	err      error
	builders []*ABTestResultCreate
	conflict []sql.ConflictOption
}

// Save creates the ABTestResult entities in the database.
func (_c *ABTestResultCreateBulk) Save(ctx context.Context) ([]*ABTestResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ABTestResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ABTestResultMutation)
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
func (_c *ABTestResultCreateBulk) SaveX(ctx context.Context) []*ABTestResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ABTestResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ABTestResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ABTestResult.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ABTestResultUpsert) {
//			SetTestID(v+v).
//		}).
//		Exec(ctx)
func (_c *ABTestResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *ABTestResultUpsertBulk {
	_c.conflict = opts
	return &ABTestResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ABTestResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ABTestResultCreateBulk) OnConflictColumns(columns ...string) *ABTestResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ABTestResultUpsertBulk{
		create: _c,
	}
}

// ABTestResultUpsertBulk is the builder for "upsert"-ing
// a bulk of ABTestResult nodes.
type ABTestResultUpsertBulk struct {
	create *ABTestResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ABTestResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(abtestresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ABTestResultUpsertBulk) UpdateNewValues() *ABTestResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(abtestresult.FieldID)
			}
			if _, exists := b.mutation.TestID(); exists {
				s.SetIgnore(abtestresult.FieldTestID)
			}
			if _, exists := b.mutation.RequestID(); exists {
				s.SetIgnore(abtestresult.FieldRequestID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(abtestresult.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ABTestResult.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ABTestResultUpsertBulk) Ignore() *ABTestResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ABTestResultUpsertBulk) DoNothing() *ABTestResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ABTestResultCreateBulk.OnConflict
// documentation for more info.
func (u *ABTestResultUpsertBulk) Update(set func(*ABTestResultUpsert)) *ABTestResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ABTestResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetVariant sets the "variant" field.
func (u *ABTestResultUpsertBulk) SetVariant(v string) *ABTestResultUpsertBulk {
	return u.Update(func(s *ABTestResultUpsert) {
		s.SetVariant(v)
	})
}

// UpdateVariant sets the "variant" field to the value that was provided on create.
func (u *ABTestResultUpsertBulk) UpdateVariant() *ABTestResultUpsertBulk {
	return u.Update(func(s *ABTestResultUpsert) {
		s.UpdateVariant()
	})
}

// SetSuccess sets the "success" field.
func (u *ABTestResultUpsertBulk) SetSuccess(v bool) *ABTestResultUpsertBulk {
	return u.Update(func(s *ABTestResultUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *ABTestResultUpsertBulk) UpdateSuccess() *ABTestResultUpsertBulk {
	return u.Update(func(s *ABTestResultUpsert) {
		s.UpdateSuccess()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *ABTestResultUpsertBulk) SetDurationMs(v int64) *ABTestResultUpsertBulk {
	return u.Update(func(s *ABTestResultUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ABTestResultUpsertBulk) AddDurationMs(v int64) *ABTestResultUpsertBulk {
	return u.Update(func(s *ABTestResultUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ABTestResultUpsertBulk) UpdateDurationMs() *ABTestResultUpsertBulk {
	return u.Update(func(s *ABTestResultUpsert) {
		s.UpdateDurationMs()
	})
}

// SetTokens sets the "tokens" field.
func (u *ABTestResultUpsertBulk) SetTokens(v int) *ABTestResultUpsertBulk {
	return u.Update(func(s *ABTestResultUpsert) {
		s.SetTokens(v)
	})
}

// AddTokens adds v to the "tokens" field.
func (u *ABTestResultUpsertBulk) AddTokens(v int) *ABTestResultUpsertBulk {
	return u.Update(func(s *ABTestResultUpsert) {
		s.AddTokens(v)
	})
}

// UpdateTokens sets the "tokens" field to the value that was provided on create.
func (u *ABTestResultUpsertBulk) UpdateTokens() *ABTestResultUpsertBulk {
	return u.Update(func(s *ABTestResultUpsert) {
		s.UpdateTokens()
	})
}

// SetCost sets the "cost" field.
func (u *ABTestResultUpsertBulk) SetCost(v float64) *ABTestResultUpsertBulk {
	return u.Update(func(s *ABTestResultUpsert) {
		s.SetCost(v)
	})
}

// AddCost adds v to the "cost" field.
func (u *ABTestResultUpsertBulk) AddCost(v float64) *ABTestResultUpsertBulk {
	return u.Update(func(s *ABTestResultUpsert) {
		s.AddCost(v)
	})
}

// UpdateCost sets the "cost" field to the value that was provided on create.
func (u *ABTestResultUpsertBulk) UpdateCost() *ABTestResultUpsertBulk {
	return u.Update(func(s *ABTestResultUpsert) {
		s.UpdateCost()
	})
}

// SetQualityScore sets the "quality_score" field.
func (u *ABTestResultUpsertBulk) SetQualityScore(v float64) *ABTestResultUpsertBulk {
	return u.Update(func(s *ABTestResultUpsert) {
		s.SetQualityScore(v)
	})
}

// AddQualityScore adds v to the "quality_score" field.
func (u *ABTestResultUpsertBulk) AddQualityScore(v float64) *ABTestResultUpsertBulk {
	return u.Update(func(s *ABTestResultUpsert) {
		s.AddQualityScore(v)
	})
}

// UpdateQualityScore sets the "quality_score" field to the value that was provided on create.
func (u *ABTestResultUpsertBulk) UpdateQualityScore() *ABTestResultUpsertBulk {
	return u.Update(func(s *ABTestResultUpsert) {
		s.UpdateQualityScore()
	})
}

// ClearQualityScore clears the value of the "quality_score" field.
func (u *ABTestResultUpsertBulk) ClearQualityScore() *ABTestResultUpsertBulk {
	return u.Update(func(s *ABTestResultUpsert) {
		s.ClearQualityScore()
	})
}

// Exec executes the query.
func (u *ABTestResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ABTestResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ABTestResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ABTestResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
