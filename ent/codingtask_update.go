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
	"github.com/devflow-ai/devflow/ent/codingtask"
	"github.com/devflow-ai/devflow/ent/feedback"
	"github.com/devflow-ai/devflow/ent/predicate"
	"github.com/devflow-ai/devflow/ent/taskexecution"
)

// CodingTaskUpdate is the builder for updating CodingTask entities.
type CodingTaskUpdate struct {
	config
	hooks    []Hook
	mutation *CodingTaskMutation
}

// Where appends a list predicates to the CodingTaskUpdate builder.
func (_u *CodingTaskUpdate) Where(ps ...predicate.CodingTask) *CodingTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CodingTaskUpdate) SetTitle(v string) *CodingTaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CodingTaskUpdate) SetNillableTitle(v *string) *CodingTaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CodingTaskUpdate) SetDescription(v string) *CodingTaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CodingTaskUpdate) SetNillableDescription(v *string) *CodingTaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *CodingTaskUpdate) SetType(v codingtask.Type) *CodingTaskUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *CodingTaskUpdate) SetNillableType(v *codingtask.Type) *CodingTaskUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// ClearType clears the value of the "type" field.
func (_u *CodingTaskUpdate) ClearType() *CodingTaskUpdate {
	_u.mutation.ClearType()
	return _u
}

// SetComplexity sets the "complexity" field.
func (_u *CodingTaskUpdate) SetComplexity(v codingtask.Complexity) *CodingTaskUpdate {
	_u.mutation.SetComplexity(v)
	return _u
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_u *CodingTaskUpdate) SetNillableComplexity(v *codingtask.Complexity) *CodingTaskUpdate {
	if v != nil {
		_u.SetComplexity(*v)
	}
	return _u
}

// ClearComplexity clears the value of the "complexity" field.
func (_u *CodingTaskUpdate) ClearComplexity() *CodingTaskUpdate {
	_u.mutation.ClearComplexity()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CodingTaskUpdate) SetStatus(v codingtask.Status) *CodingTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CodingTaskUpdate) SetNillableStatus(v *codingtask.Status) *CodingTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *CodingTaskUpdate) SetPrNumber(v int) *CodingTaskUpdate {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *CodingTaskUpdate) SetNillablePrNumber(v *int) *CodingTaskUpdate {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *CodingTaskUpdate) AddPrNumber(v int) *CodingTaskUpdate {
	_u.mutation.AddPrNumber(v)
	return _u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (_u *CodingTaskUpdate) ClearPrNumber() *CodingTaskUpdate {
	_u.mutation.ClearPrNumber()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *CodingTaskUpdate) SetPrURL(v string) *CodingTaskUpdate {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *CodingTaskUpdate) SetNillablePrURL(v *string) *CodingTaskUpdate {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *CodingTaskUpdate) ClearPrURL() *CodingTaskUpdate {
	_u.mutation.ClearPrURL()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CodingTaskUpdate) SetCompletedAt(v time.Time) *CodingTaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CodingTaskUpdate) SetNillableCompletedAt(v *time.Time) *CodingTaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CodingTaskUpdate) ClearCompletedAt() *CodingTaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddExecutionIDs adds the "executions" edge to the TaskExecution entity by IDs.
func (_u *CodingTaskUpdate) AddExecutionIDs(ids ...string) *CodingTaskUpdate {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the TaskExecution entity.
func (_u *CodingTaskUpdate) AddExecutions(v ...*TaskExecution) *CodingTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// AddFeedbackIDs adds the "feedback" edge to the Feedback entity by IDs.
func (_u *CodingTaskUpdate) AddFeedbackIDs(ids ...string) *CodingTaskUpdate {
	_u.mutation.AddFeedbackIDs(ids...)
	return _u
}

// AddFeedback adds the "feedback" edges to the Feedback entity.
func (_u *CodingTaskUpdate) AddFeedback(v ...*Feedback) *CodingTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeedbackIDs(ids...)
}

// Mutation returns the CodingTaskMutation object of the builder.
func (_u *CodingTaskUpdate) Mutation() *CodingTaskMutation {
	return _u.mutation
}

// ClearExecutions clears all "executions" edges to the TaskExecution entity.
func (_u *CodingTaskUpdate) ClearExecutions() *CodingTaskUpdate {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to TaskExecution entities by IDs.
func (_u *CodingTaskUpdate) RemoveExecutionIDs(ids ...string) *CodingTaskUpdate {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to TaskExecution entities.
func (_u *CodingTaskUpdate) RemoveExecutions(v ...*TaskExecution) *CodingTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// ClearFeedback clears all "feedback" edges to the Feedback entity.
func (_u *CodingTaskUpdate) ClearFeedback() *CodingTaskUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// RemoveFeedbackIDs removes the "feedback" edge to Feedback entities by IDs.
func (_u *CodingTaskUpdate) RemoveFeedbackIDs(ids ...string) *CodingTaskUpdate {
	_u.mutation.RemoveFeedbackIDs(ids...)
	return _u
}

// RemoveFeedback removes "feedback" edges to Feedback entities.
func (_u *CodingTaskUpdate) RemoveFeedback(v ...*Feedback) *CodingTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeedbackIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CodingTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodingTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CodingTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodingTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CodingTaskUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := codingtask.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "CodingTask.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Complexity(); ok {
		if err := codingtask.ComplexityValidator(v); err != nil {
			return &ValidationError{Name: "complexity", err: fmt.Errorf(`ent: validator failed for field "CodingTask.complexity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := codingtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CodingTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CodingTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(codingtask.Table, codingtask.Columns, sqlgraph.NewFieldSpec(codingtask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(codingtask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(codingtask.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(codingtask.FieldType, field.TypeEnum, value)
	}
	if _u.mutation.TypeCleared() {
		_spec.ClearField(codingtask.FieldType, field.TypeEnum)
	}
	if value, ok := _u.mutation.Complexity(); ok {
		_spec.SetField(codingtask.FieldComplexity, field.TypeEnum, value)
	}
	if _u.mutation.ComplexityCleared() {
		_spec.ClearField(codingtask.FieldComplexity, field.TypeEnum)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(codingtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(codingtask.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(codingtask.FieldPrNumber, field.TypeInt, value)
	}
	if _u.mutation.PrNumberCleared() {
		_spec.ClearField(codingtask.FieldPrNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(codingtask.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(codingtask.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(codingtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(codingtask.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeedbackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeedbackIDs(); len(nodes) > 0 && !_u.mutation.FeedbackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedbackIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{codingtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CodingTaskUpdateOne is the builder for updating a single CodingTask entity.
type CodingTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CodingTaskMutation
}

// SetTitle sets the "title" field.
func (_u *CodingTaskUpdateOne) SetTitle(v string) *CodingTaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CodingTaskUpdateOne) SetNillableTitle(v *string) *CodingTaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CodingTaskUpdateOne) SetDescription(v string) *CodingTaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CodingTaskUpdateOne) SetNillableDescription(v *string) *CodingTaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *CodingTaskUpdateOne) SetType(v codingtask.Type) *CodingTaskUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *CodingTaskUpdateOne) SetNillableType(v *codingtask.Type) *CodingTaskUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// ClearType clears the value of the "type" field.
func (_u *CodingTaskUpdateOne) ClearType() *CodingTaskUpdateOne {
	_u.mutation.ClearType()
	return _u
}

// SetComplexity sets the "complexity" field.
func (_u *CodingTaskUpdateOne) SetComplexity(v codingtask.Complexity) *CodingTaskUpdateOne {
	_u.mutation.SetComplexity(v)
	return _u
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_u *CodingTaskUpdateOne) SetNillableComplexity(v *codingtask.Complexity) *CodingTaskUpdateOne {
	if v != nil {
		_u.SetComplexity(*v)
	}
	return _u
}

// ClearComplexity clears the value of the "complexity" field.
func (_u *CodingTaskUpdateOne) ClearComplexity() *CodingTaskUpdateOne {
	_u.mutation.ClearComplexity()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CodingTaskUpdateOne) SetStatus(v codingtask.Status) *CodingTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CodingTaskUpdateOne) SetNillableStatus(v *codingtask.Status) *CodingTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *CodingTaskUpdateOne) SetPrNumber(v int) *CodingTaskUpdateOne {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *CodingTaskUpdateOne) SetNillablePrNumber(v *int) *CodingTaskUpdateOne {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *CodingTaskUpdateOne) AddPrNumber(v int) *CodingTaskUpdateOne {
	_u.mutation.AddPrNumber(v)
	return _u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (_u *CodingTaskUpdateOne) ClearPrNumber() *CodingTaskUpdateOne {
	_u.mutation.ClearPrNumber()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *CodingTaskUpdateOne) SetPrURL(v string) *CodingTaskUpdateOne {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *CodingTaskUpdateOne) SetNillablePrURL(v *string) *CodingTaskUpdateOne {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *CodingTaskUpdateOne) ClearPrURL() *CodingTaskUpdateOne {
	_u.mutation.ClearPrURL()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CodingTaskUpdateOne) SetCompletedAt(v time.Time) *CodingTaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CodingTaskUpdateOne) SetNillableCompletedAt(v *time.Time) *CodingTaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CodingTaskUpdateOne) ClearCompletedAt() *CodingTaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddExecutionIDs adds the "executions" edge to the TaskExecution entity by IDs.
func (_u *CodingTaskUpdateOne) AddExecutionIDs(ids ...string) *CodingTaskUpdateOne {
	_u.mutation.AddExecutionIDs(ids...)
	return _u
}

// AddExecutions adds the "executions" edges to the TaskExecution entity.
func (_u *CodingTaskUpdateOne) AddExecutions(v ...*TaskExecution) *CodingTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionIDs(ids...)
}

// AddFeedbackIDs adds the "feedback" edge to the Feedback entity by IDs.
func (_u *CodingTaskUpdateOne) AddFeedbackIDs(ids ...string) *CodingTaskUpdateOne {
	_u.mutation.AddFeedbackIDs(ids...)
	return _u
}

// AddFeedback adds the "feedback" edges to the Feedback entity.
func (_u *CodingTaskUpdateOne) AddFeedback(v ...*Feedback) *CodingTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeedbackIDs(ids...)
}

// Mutation returns the CodingTaskMutation object of the builder.
func (_u *CodingTaskUpdateOne) Mutation() *CodingTaskMutation {
	return _u.mutation
}

// ClearExecutions clears all "executions" edges to the TaskExecution entity.
func (_u *CodingTaskUpdateOne) ClearExecutions() *CodingTaskUpdateOne {
	_u.mutation.ClearExecutions()
	return _u
}

// RemoveExecutionIDs removes the "executions" edge to TaskExecution entities by IDs.
func (_u *CodingTaskUpdateOne) RemoveExecutionIDs(ids ...string) *CodingTaskUpdateOne {
	_u.mutation.RemoveExecutionIDs(ids...)
	return _u
}

// RemoveExecutions removes "executions" edges to TaskExecution entities.
func (_u *CodingTaskUpdateOne) RemoveExecutions(v ...*TaskExecution) *CodingTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionIDs(ids...)
}

// ClearFeedback clears all "feedback" edges to the Feedback entity.
func (_u *CodingTaskUpdateOne) ClearFeedback() *CodingTaskUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// RemoveFeedbackIDs removes the "feedback" edge to Feedback entities by IDs.
func (_u *CodingTaskUpdateOne) RemoveFeedbackIDs(ids ...string) *CodingTaskUpdateOne {
	_u.mutation.RemoveFeedbackIDs(ids...)
	return _u
}

// RemoveFeedback removes "feedback" edges to Feedback entities.
func (_u *CodingTaskUpdateOne) RemoveFeedback(v ...*Feedback) *CodingTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeedbackIDs(ids...)
}

// Where appends a list predicates to the CodingTaskUpdate builder.
func (_u *CodingTaskUpdateOne) Where(ps ...predicate.CodingTask) *CodingTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CodingTaskUpdateOne) Select(field string, fields ...string) *CodingTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CodingTask entity.
func (_u *CodingTaskUpdateOne) Save(ctx context.Context) (*CodingTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodingTaskUpdateOne) SaveX(ctx context.Context) *CodingTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CodingTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodingTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CodingTaskUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := codingtask.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "CodingTask.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Complexity(); ok {
		if err := codingtask.ComplexityValidator(v); err != nil {
			return &ValidationError{Name: "complexity", err: fmt.Errorf(`ent: validator failed for field "CodingTask.complexity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := codingtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CodingTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CodingTaskUpdateOne) sqlSave(ctx context.Context) (_node *CodingTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(codingtask.Table, codingtask.Columns, sqlgraph.NewFieldSpec(codingtask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CodingTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, codingtask.FieldID)
		for _, f := range fields {
			if !codingtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != codingtask.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(codingtask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(codingtask.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(codingtask.FieldType, field.TypeEnum, value)
	}
	if _u.mutation.TypeCleared() {
		_spec.ClearField(codingtask.FieldType, field.TypeEnum)
	}
	if value, ok := _u.mutation.Complexity(); ok {
		_spec.SetField(codingtask.FieldComplexity, field.TypeEnum, value)
	}
	if _u.mutation.ComplexityCleared() {
		_spec.ClearField(codingtask.FieldComplexity, field.TypeEnum)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(codingtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(codingtask.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(codingtask.FieldPrNumber, field.TypeInt, value)
	}
	if _u.mutation.PrNumberCleared() {
		_spec.ClearField(codingtask.FieldPrNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(codingtask.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(codingtask.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(codingtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(codingtask.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeedbackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeedbackIDs(); len(nodes) > 0 && !_u.mutation.FeedbackCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedbackIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CodingTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{codingtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
