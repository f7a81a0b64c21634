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
	"github.com/devflow-ai/devflow/ent/abtest"
	"github.com/devflow-ai/devflow/ent/abtestresult"
	"github.com/devflow-ai/devflow/ent/predicate"
)

// ABTestUpdate is the builder for updating ABTest entities.
type ABTestUpdate struct {
	config
	hooks    []Hook
	mutation *ABTestMutation
}

// Where appends a list predicates to the ABTestUpdate builder.
func (_u *ABTestUpdate) Where(ps ...predicate.ABTest) *ABTestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ABTestUpdate) SetName(v string) *ABTestUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ABTestUpdate) SetNillableName(v *string) *ABTestUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetModelA sets the "model_a" field.
func (_u *ABTestUpdate) SetModelA(v string) *ABTestUpdate {
	_u.mutation.SetModelA(v)
	return _u
}

// SetNillableModelA sets the "model_a" field if the given value is not nil.
func (_u *ABTestUpdate) SetNillableModelA(v *string) *ABTestUpdate {
	if v != nil {
		_u.SetModelA(*v)
	}
	return _u
}

// SetModelB sets the "model_b" field.
func (_u *ABTestUpdate) SetModelB(v string) *ABTestUpdate {
	_u.mutation.SetModelB(v)
	return _u
}

// SetNillableModelB sets the "model_b" field if the given value is not nil.
func (_u *ABTestUpdate) SetNillableModelB(v *string) *ABTestUpdate {
	if v != nil {
		_u.SetModelB(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *ABTestUpdate) SetTaskType(v string) *ABTestUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *ABTestUpdate) SetNillableTaskType(v *string) *ABTestUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// ClearTaskType clears the value of the "task_type" field.
func (_u *ABTestUpdate) ClearTaskType() *ABTestUpdate {
	_u.mutation.ClearTaskType()
	return _u
}

// SetTrafficPercent sets the "traffic_percent" field.
func (_u *ABTestUpdate) SetTrafficPercent(v int) *ABTestUpdate {
	_u.mutation.ResetTrafficPercent()
	_u.mutation.SetTrafficPercent(v)
	return _u
}

// SetNillableTrafficPercent sets the "traffic_percent" field if the given value is not nil.
func (_u *ABTestUpdate) SetNillableTrafficPercent(v *int) *ABTestUpdate {
	if v != nil {
		_u.SetTrafficPercent(*v)
	}
	return _u
}

// AddTrafficPercent adds value to the "traffic_percent" field.
func (_u *ABTestUpdate) AddTrafficPercent(v int) *ABTestUpdate {
	_u.mutation.AddTrafficPercent(v)
	return _u
}

// SetMinSamples sets the "min_samples" field.
func (_u *ABTestUpdate) SetMinSamples(v int) *ABTestUpdate {
	_u.mutation.ResetMinSamples()
	_u.mutation.SetMinSamples(v)
	return _u
}

// SetNillableMinSamples sets the "min_samples" field if the given value is not nil.
func (_u *ABTestUpdate) SetNillableMinSamples(v *int) *ABTestUpdate {
	if v != nil {
		_u.SetMinSamples(*v)
	}
	return _u
}

// AddMinSamples adds value to the "min_samples" field.
func (_u *ABTestUpdate) AddMinSamples(v int) *ABTestUpdate {
	_u.mutation.AddMinSamples(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ABTestUpdate) SetStatus(v abtest.Status) *ABTestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ABTestUpdate) SetNillableStatus(v *abtest.Status) *ABTestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *ABTestUpdate) SetEndsAt(v time.Time) *ABTestUpdate {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *ABTestUpdate) SetNillableEndsAt(v *time.Time) *ABTestUpdate {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// ClearEndsAt clears the value of the "ends_at" field.
func (_u *ABTestUpdate) ClearEndsAt() *ABTestUpdate {
	_u.mutation.ClearEndsAt()
	return _u
}

// AddResultIDs adds the "results" edge to the ABTestResult entity by IDs.
func (_u *ABTestUpdate) AddResultIDs(ids ...string) *ABTestUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ABTestResult entity.
func (_u *ABTestUpdate) AddResults(v ...*ABTestResult) *ABTestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the ABTestMutation object of the builder.
func (_u *ABTestUpdate) Mutation() *ABTestMutation {
	return _u.mutation
}

// ClearResults clears all "results" edges to the ABTestResult entity.
func (_u *ABTestUpdate) ClearResults() *ABTestUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ABTestResult entities by IDs.
func (_u *ABTestUpdate) RemoveResultIDs(ids ...string) *ABTestUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ABTestResult entities.
func (_u *ABTestUpdate) RemoveResults(v ...*ABTestResult) *ABTestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ABTestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ABTestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ABTestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ABTestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ABTestUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := abtest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ABTest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ABTestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(abtest.Table, abtest.Columns, sqlgraph.NewFieldSpec(abtest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(abtest.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelA(); ok {
		_spec.SetField(abtest.FieldModelA, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelB(); ok {
		_spec.SetField(abtest.FieldModelB, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(abtest.FieldTaskType, field.TypeString, value)
	}
	if _u.mutation.TaskTypeCleared() {
		_spec.ClearField(abtest.FieldTaskType, field.TypeString)
	}
	if value, ok := _u.mutation.TrafficPercent(); ok {
		_spec.SetField(abtest.FieldTrafficPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrafficPercent(); ok {
		_spec.AddField(abtest.FieldTrafficPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinSamples(); ok {
		_spec.SetField(abtest.FieldMinSamples, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinSamples(); ok {
		_spec.AddField(abtest.FieldMinSamples, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(abtest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(abtest.FieldEndsAt, field.TypeTime, value)
	}
	if _u.mutation.EndsAtCleared() {
		_spec.ClearField(abtest.FieldEndsAt, field.TypeTime)
	}
	if _u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{abtest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ABTestUpdateOne is the builder for updating a single ABTest entity.
type ABTestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ABTestMutation
}

// SetName sets the "name" field.
func (_u *ABTestUpdateOne) SetName(v string) *ABTestUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ABTestUpdateOne) SetNillableName(v *string) *ABTestUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetModelA sets the "model_a" field.
func (_u *ABTestUpdateOne) SetModelA(v string) *ABTestUpdateOne {
	_u.mutation.SetModelA(v)
	return _u
}

// SetNillableModelA sets the "model_a" field if the given value is not nil.
func (_u *ABTestUpdateOne) SetNillableModelA(v *string) *ABTestUpdateOne {
	if v != nil {
		_u.SetModelA(*v)
	}
	return _u
}

// SetModelB sets the "model_b" field.
func (_u *ABTestUpdateOne) SetModelB(v string) *ABTestUpdateOne {
	_u.mutation.SetModelB(v)
	return _u
}

// SetNillableModelB sets the "model_b" field if the given value is not nil.
func (_u *ABTestUpdateOne) SetNillableModelB(v *string) *ABTestUpdateOne {
	if v != nil {
		_u.SetModelB(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *ABTestUpdateOne) SetTaskType(v string) *ABTestUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *ABTestUpdateOne) SetNillableTaskType(v *string) *ABTestUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// ClearTaskType clears the value of the "task_type" field.
func (_u *ABTestUpdateOne) ClearTaskType() *ABTestUpdateOne {
	_u.mutation.ClearTaskType()
	return _u
}

// SetTrafficPercent sets the "traffic_percent" field.
func (_u *ABTestUpdateOne) SetTrafficPercent(v int) *ABTestUpdateOne {
	_u.mutation.ResetTrafficPercent()
	_u.mutation.SetTrafficPercent(v)
	return _u
}

// SetNillableTrafficPercent sets the "traffic_percent" field if the given value is not nil.
func (_u *ABTestUpdateOne) SetNillableTrafficPercent(v *int) *ABTestUpdateOne {
	if v != nil {
		_u.SetTrafficPercent(*v)
	}
	return _u
}

// AddTrafficPercent adds value to the "traffic_percent" field.
func (_u *ABTestUpdateOne) AddTrafficPercent(v int) *ABTestUpdateOne {
	_u.mutation.AddTrafficPercent(v)
	return _u
}

// SetMinSamples sets the "min_samples" field.
func (_u *ABTestUpdateOne) SetMinSamples(v int) *ABTestUpdateOne {
	_u.mutation.ResetMinSamples()
	_u.mutation.SetMinSamples(v)
	return _u
}

// SetNillableMinSamples sets the "min_samples" field if the given value is not nil.
func (_u *ABTestUpdateOne) SetNillableMinSamples(v *int) *ABTestUpdateOne {
	if v != nil {
		_u.SetMinSamples(*v)
	}
	return _u
}

// AddMinSamples adds value to the "min_samples" field.
func (_u *ABTestUpdateOne) AddMinSamples(v int) *ABTestUpdateOne {
	_u.mutation.AddMinSamples(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ABTestUpdateOne) SetStatus(v abtest.Status) *ABTestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ABTestUpdateOne) SetNillableStatus(v *abtest.Status) *ABTestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *ABTestUpdateOne) SetEndsAt(v time.Time) *ABTestUpdateOne {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *ABTestUpdateOne) SetNillableEndsAt(v *time.Time) *ABTestUpdateOne {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// ClearEndsAt clears the value of the "ends_at" field.
func (_u *ABTestUpdateOne) ClearEndsAt() *ABTestUpdateOne {
	_u.mutation.ClearEndsAt()
	return _u
}

// AddResultIDs adds the "results" edge to the ABTestResult entity by IDs.
func (_u *ABTestUpdateOne) AddResultIDs(ids ...string) *ABTestUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ABTestResult entity.
func (_u *ABTestUpdateOne) AddResults(v ...*ABTestResult) *ABTestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the ABTestMutation object of the builder.
func (_u *ABTestUpdateOne) Mutation() *ABTestMutation {
	return _u.mutation
}

// ClearResults clears all "results" edges to the ABTestResult entity.
func (_u *ABTestUpdateOne) ClearResults() *ABTestUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ABTestResult entities by IDs.
func (_u *ABTestUpdateOne) RemoveResultIDs(ids ...string) *ABTestUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ABTestResult entities.
func (_u *ABTestUpdateOne) RemoveResults(v ...*ABTestResult) *ABTestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Where appends a list predicates to the ABTestUpdate builder.
func (_u *ABTestUpdateOne) Where(ps ...predicate.ABTest) *ABTestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ABTestUpdateOne) Select(field string, fields ...string) *ABTestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ABTest entity.
func (_u *ABTestUpdateOne) Save(ctx context.Context) (*ABTest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ABTestUpdateOne) SaveX(ctx context.Context) *ABTest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ABTestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ABTestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ABTestUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := abtest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ABTest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ABTestUpdateOne) sqlSave(ctx context.Context) (_node *ABTest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(abtest.Table, abtest.Columns, sqlgraph.NewFieldSpec(abtest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ABTest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, abtest.FieldID)
		for _, f := range fields {
			if !abtest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != abtest.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(abtest.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelA(); ok {
		_spec.SetField(abtest.FieldModelA, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelB(); ok {
		_spec.SetField(abtest.FieldModelB, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(abtest.FieldTaskType, field.TypeString, value)
	}
	if _u.mutation.TaskTypeCleared() {
		_spec.ClearField(abtest.FieldTaskType, field.TypeString)
	}
	if value, ok := _u.mutation.TrafficPercent(); ok {
		_spec.SetField(abtest.FieldTrafficPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrafficPercent(); ok {
		_spec.AddField(abtest.FieldTrafficPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinSamples(); ok {
		_spec.SetField(abtest.FieldMinSamples, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinSamples(); ok {
		_spec.AddField(abtest.FieldMinSamples, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(abtest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(abtest.FieldEndsAt, field.TypeTime, value)
	}
	if _u.mutation.EndsAtCleared() {
		_spec.ClearField(abtest.FieldEndsAt, field.TypeTime)
	}
	if _u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ABTest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{abtest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
