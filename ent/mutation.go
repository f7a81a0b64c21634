// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/devflow-ai/devflow/ent/abtest"
	"github.com/devflow-ai/devflow/ent/abtestresult"
	"github.com/devflow-ai/devflow/ent/codingtask"
	"github.com/devflow-ai/devflow/ent/feedback"
	"github.com/devflow-ai/devflow/ent/modelmetric"
	"github.com/devflow-ai/devflow/ent/predicate"
	"github.com/devflow-ai/devflow/ent/taskexecution"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeABTest        = "ABTest"
	TypeABTestResult  = "ABTestResult"
	TypeCodingTask    = "CodingTask"
	TypeFeedback      = "Feedback"
	TypeModelMetric   = "ModelMetric"
	TypeTaskExecution = "TaskExecution"
)

// ABTestMutation represents an operation that mutates the ABTest nodes in the graph.
type ABTestMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	model_a            *string
	model_b            *string
	task_type          *string
	traffic_percent    *int
	addtraffic_percent *int
	min_samples        *int
	addmin_samples     *int
	status             *abtest.Status
	started_at         *time.Time
	ends_at            *time.Time
	clearedFields      map[string]struct{}
	results            map[string]struct{}
	removedresults     map[string]struct{}
	clearedresults     bool
	done               bool
	oldValue           func(context.Context) (*ABTest, error)
	predicates         []predicate.ABTest
}

var _ ent.Mutation = (*ABTestMutation)(nil)

// abtestOption allows management of the mutation configuration using functional options.
type abtestOption func(*ABTestMutation)

// newABTestMutation creates new mutation for the ABTest entity.
func newABTestMutation(c config, op Op, opts ...abtestOption) *ABTestMutation {
	m := &ABTestMutation{
		config:        c,
		op:            op,
		typ:           TypeABTest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withABTestID sets the ID field of the mutation.
func withABTestID(id string) abtestOption {
	return func(m *ABTestMutation) {
		var (
			err   error
			once  sync.Once
			value *ABTest
		)
		m.oldValue = func(ctx context.Context) (*ABTest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ABTest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withABTest sets the old ABTest of the mutation.
func withABTest(node *ABTest) abtestOption {
	return func(m *ABTestMutation) {
		m.oldValue = func(context.Context) (*ABTest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ABTestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ABTestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ABTest entities.
func (m *ABTestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ABTestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ABTestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ABTest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ABTestMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ABTestMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ABTest entity.
// If the ABTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ABTestMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ABTestMutation) ResetName() {
	m.name = nil
}

// SetModelA sets the "model_a" field.
func (m *ABTestMutation) SetModelA(s string) {
	m.model_a = &s
}

// ModelA returns the value of the "model_a" field in the mutation.
func (m *ABTestMutation) ModelA() (r string, exists bool) {
	v := m.model_a
	if v == nil {
		return
	}
	return *v, true
}

// OldModelA returns the old "model_a" field's value of the ABTest entity.
// If the ABTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ABTestMutation) OldModelA(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelA is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelA requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelA: %w", err)
	}
	return oldValue.ModelA, nil
}

// ResetModelA resets all changes to the "model_a" field.
func (m *ABTestMutation) ResetModelA() {
	m.model_a = nil
}

// SetModelB sets the "model_b" field.
func (m *ABTestMutation) SetModelB(s string) {
	m.model_b = &s
}

// ModelB returns the value of the "model_b" field in the mutation.
func (m *ABTestMutation) ModelB() (r string, exists bool) {
	v := m.model_b
	if v == nil {
		return
	}
	return *v, true
}

// OldModelB returns the old "model_b" field's value of the ABTest entity.
// If the ABTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ABTestMutation) OldModelB(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelB: %w", err)
	}
	return oldValue.ModelB, nil
}

// ResetModelB resets all changes to the "model_b" field.
func (m *ABTestMutation) ResetModelB() {
	m.model_b = nil
}

// SetTaskType sets the "task_type" field.
func (m *ABTestMutation) SetTaskType(s string) {
	m.task_type = &s
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *ABTestMutation) TaskType() (r string, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the ABTest entity.
// If the ABTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ABTestMutation) OldTaskType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ClearTaskType clears the value of the "task_type" field.
func (m *ABTestMutation) ClearTaskType() {
	m.task_type = nil
	m.clearedFields[abtest.FieldTaskType] = struct{}{}
}

// TaskTypeCleared returns if the "task_type" field was cleared in this mutation.
func (m *ABTestMutation) TaskTypeCleared() bool {
	_, ok := m.clearedFields[abtest.FieldTaskType]
	return ok
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *ABTestMutation) ResetTaskType() {
	m.task_type = nil
	delete(m.clearedFields, abtest.FieldTaskType)
}

// SetTrafficPercent sets the "traffic_percent" field.
func (m *ABTestMutation) SetTrafficPercent(i int) {
	m.traffic_percent = &i
	m.addtraffic_percent = nil
}

// TrafficPercent returns the value of the "traffic_percent" field in the mutation.
func (m *ABTestMutation) TrafficPercent() (r int, exists bool) {
	v := m.traffic_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldTrafficPercent returns the old "traffic_percent" field's value of the ABTest entity.
// If the ABTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ABTestMutation) OldTrafficPercent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrafficPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrafficPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrafficPercent: %w", err)
	}
	return oldValue.TrafficPercent, nil
}

// AddTrafficPercent adds i to the "traffic_percent" field.
func (m *ABTestMutation) AddTrafficPercent(i int) {
	if m.addtraffic_percent != nil {
		*m.addtraffic_percent += i
	} else {
		m.addtraffic_percent = &i
	}
}

// AddedTrafficPercent returns the value that was added to the "traffic_percent" field in this mutation.
func (m *ABTestMutation) AddedTrafficPercent() (r int, exists bool) {
	v := m.addtraffic_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrafficPercent resets all changes to the "traffic_percent" field.
func (m *ABTestMutation) ResetTrafficPercent() {
	m.traffic_percent = nil
	m.addtraffic_percent = nil
}

// SetMinSamples sets the "min_samples" field.
func (m *ABTestMutation) SetMinSamples(i int) {
	m.min_samples = &i
	m.addmin_samples = nil
}

// MinSamples returns the value of the "min_samples" field in the mutation.
func (m *ABTestMutation) MinSamples() (r int, exists bool) {
	v := m.min_samples
	if v == nil {
		return
	}
	return *v, true
}

// OldMinSamples returns the old "min_samples" field's value of the ABTest entity.
// If the ABTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ABTestMutation) OldMinSamples(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinSamples is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinSamples requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinSamples: %w", err)
	}
	return oldValue.MinSamples, nil
}

// AddMinSamples adds i to the "min_samples" field.
func (m *ABTestMutation) AddMinSamples(i int) {
	if m.addmin_samples != nil {
		*m.addmin_samples += i
	} else {
		m.addmin_samples = &i
	}
}

// AddedMinSamples returns the value that was added to the "min_samples" field in this mutation.
func (m *ABTestMutation) AddedMinSamples() (r int, exists bool) {
	v := m.addmin_samples
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinSamples resets all changes to the "min_samples" field.
func (m *ABTestMutation) ResetMinSamples() {
	m.min_samples = nil
	m.addmin_samples = nil
}

// SetStatus sets the "status" field.
func (m *ABTestMutation) SetStatus(a abtest.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ABTestMutation) Status() (r abtest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ABTest entity.
// If the ABTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ABTestMutation) OldStatus(ctx context.Context) (v abtest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ABTestMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ABTestMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ABTestMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ABTest entity.
// If the ABTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ABTestMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ABTestMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndsAt sets the "ends_at" field.
func (m *ABTestMutation) SetEndsAt(t time.Time) {
	m.ends_at = &t
}

// EndsAt returns the value of the "ends_at" field in the mutation.
func (m *ABTestMutation) EndsAt() (r time.Time, exists bool) {
	v := m.ends_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndsAt returns the old "ends_at" field's value of the ABTest entity.
// If the ABTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ABTestMutation) OldEndsAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndsAt: %w", err)
	}
	return oldValue.EndsAt, nil
}

// ClearEndsAt clears the value of the "ends_at" field.
func (m *ABTestMutation) ClearEndsAt() {
	m.ends_at = nil
	m.clearedFields[abtest.FieldEndsAt] = struct{}{}
}

// EndsAtCleared returns if the "ends_at" field was cleared in this mutation.
func (m *ABTestMutation) EndsAtCleared() bool {
	_, ok := m.clearedFields[abtest.FieldEndsAt]
	return ok
}

// ResetEndsAt resets all changes to the "ends_at" field.
func (m *ABTestMutation) ResetEndsAt() {
	m.ends_at = nil
	delete(m.clearedFields, abtest.FieldEndsAt)
}

// AddResultIDs adds the "results" edge to the ABTestResult entity by ids.
func (m *ABTestMutation) AddResultIDs(ids ...string) {
	if m.results == nil {
		m.results = make(map[string]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the ABTestResult entity.
func (m *ABTestMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the ABTestResult entity was cleared.
func (m *ABTestMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the ABTestResult entity by IDs.
func (m *ABTestMutation) RemoveResultIDs(ids ...string) {
	if m.removedresults == nil {
		m.removedresults = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the ABTestResult entity.
func (m *ABTestMutation) RemovedResultsIDs() (ids []string) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *ABTestMutation) ResultsIDs() (ids []string) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *ABTestMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// Where appends a list predicates to the ABTestMutation builder.
func (m *ABTestMutation) Where(ps ...predicate.ABTest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ABTestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ABTestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ABTest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ABTestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ABTestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ABTest).
func (m *ABTestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ABTestMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, abtest.FieldName)
	}
	if m.model_a != nil {
		fields = append(fields, abtest.FieldModelA)
	}
	if m.model_b != nil {
		fields = append(fields, abtest.FieldModelB)
	}
	if m.task_type != nil {
		fields = append(fields, abtest.FieldTaskType)
	}
	if m.traffic_percent != nil {
		fields = append(fields, abtest.FieldTrafficPercent)
	}
	if m.min_samples != nil {
		fields = append(fields, abtest.FieldMinSamples)
	}
	if m.status != nil {
		fields = append(fields, abtest.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, abtest.FieldStartedAt)
	}
	if m.ends_at != nil {
		fields = append(fields, abtest.FieldEndsAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ABTestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case abtest.FieldName:
		return m.Name()
	case abtest.FieldModelA:
		return m.ModelA()
	case abtest.FieldModelB:
		return m.ModelB()
	case abtest.FieldTaskType:
		return m.TaskType()
	case abtest.FieldTrafficPercent:
		return m.TrafficPercent()
	case abtest.FieldMinSamples:
		return m.MinSamples()
	case abtest.FieldStatus:
		return m.Status()
	case abtest.FieldStartedAt:
		return m.StartedAt()
	case abtest.FieldEndsAt:
		return m.EndsAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ABTestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case abtest.FieldName:
		return m.OldName(ctx)
	case abtest.FieldModelA:
		return m.OldModelA(ctx)
	case abtest.FieldModelB:
		return m.OldModelB(ctx)
	case abtest.FieldTaskType:
		return m.OldTaskType(ctx)
	case abtest.FieldTrafficPercent:
		return m.OldTrafficPercent(ctx)
	case abtest.FieldMinSamples:
		return m.OldMinSamples(ctx)
	case abtest.FieldStatus:
		return m.OldStatus(ctx)
	case abtest.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case abtest.FieldEndsAt:
		return m.OldEndsAt(ctx)
	}
	return nil, fmt.Errorf("unknown ABTest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ABTestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case abtest.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case abtest.FieldModelA:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelA(v)
		return nil
	case abtest.FieldModelB:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelB(v)
		return nil
	case abtest.FieldTaskType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case abtest.FieldTrafficPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrafficPercent(v)
		return nil
	case abtest.FieldMinSamples:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinSamples(v)
		return nil
	case abtest.FieldStatus:
		v, ok := value.(abtest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case abtest.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case abtest.FieldEndsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndsAt(v)
		return nil
	}
	return fmt.Errorf("unknown ABTest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ABTestMutation) AddedFields() []string {
	var fields []string
	if m.addtraffic_percent != nil {
		fields = append(fields, abtest.FieldTrafficPercent)
	}
	if m.addmin_samples != nil {
		fields = append(fields, abtest.FieldMinSamples)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ABTestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case abtest.FieldTrafficPercent:
		return m.AddedTrafficPercent()
	case abtest.FieldMinSamples:
		return m.AddedMinSamples()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ABTestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case abtest.FieldTrafficPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrafficPercent(v)
		return nil
	case abtest.FieldMinSamples:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinSamples(v)
		return nil
	}
	return fmt.Errorf("unknown ABTest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ABTestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(abtest.FieldTaskType) {
		fields = append(fields, abtest.FieldTaskType)
	}
	if m.FieldCleared(abtest.FieldEndsAt) {
		fields = append(fields, abtest.FieldEndsAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ABTestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ABTestMutation) ClearField(name string) error {
	switch name {
	case abtest.FieldTaskType:
		m.ClearTaskType()
		return nil
	case abtest.FieldEndsAt:
		m.ClearEndsAt()
		return nil
	}
	return fmt.Errorf("unknown ABTest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ABTestMutation) ResetField(name string) error {
	switch name {
	case abtest.FieldName:
		m.ResetName()
		return nil
	case abtest.FieldModelA:
		m.ResetModelA()
		return nil
	case abtest.FieldModelB:
		m.ResetModelB()
		return nil
	case abtest.FieldTaskType:
		m.ResetTaskType()
		return nil
	case abtest.FieldTrafficPercent:
		m.ResetTrafficPercent()
		return nil
	case abtest.FieldMinSamples:
		m.ResetMinSamples()
		return nil
	case abtest.FieldStatus:
		m.ResetStatus()
		return nil
	case abtest.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case abtest.FieldEndsAt:
		m.ResetEndsAt()
		return nil
	}
	return fmt.Errorf("unknown ABTest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ABTestMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.results != nil {
		edges = append(edges, abtest.EdgeResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ABTestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case abtest.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ABTestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedresults != nil {
		edges = append(edges, abtest.EdgeResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ABTestMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case abtest.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ABTestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedresults {
		edges = append(edges, abtest.EdgeResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ABTestMutation) EdgeCleared(name string) bool {
	switch name {
	case abtest.EdgeResults:
		return m.clearedresults
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ABTestMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ABTest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ABTestMutation) ResetEdge(name string) error {
	switch name {
	case abtest.EdgeResults:
		m.ResetResults()
		return nil
	}
	return fmt.Errorf("unknown ABTest edge %s", name)
}

// ABTestResultMutation represents an operation that mutates the ABTestResult nodes in the graph.
type ABTestResultMutation struct {
	config
	op               Op
	typ              string
	id               *string
	request_id       *string
	variant          *string
	success          *bool
	duration_ms      *int64
	addduration_ms   *int64
	tokens           *int
	addtokens        *int
	cost             *float64
	addcost          *float64
	quality_score    *float64
	addquality_score *float64
	created_at       *time.Time
	clearedFields    map[string]struct{}
	test             *string
	clearedtest      bool
	done             bool
	oldValue         func(context.Context) (*ABTestResult, error)
	predicates       []predicate.ABTestResult
}

var _ ent.Mutation = (*ABTestResultMutation)(nil)

// abtestresultOption allows management of the mutation configuration using functional options.
type abtestresultOption func(*ABTestResultMutation)

// newABTestResultMutation creates new mutation for the ABTestResult entity.
func newABTestResultMutation(c config, op Op, opts ...abtestresultOption) *ABTestResultMutation {
	m := &ABTestResultMutation{
		config:        c,
		op:            op,
		typ:           TypeABTestResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withABTestResultID sets the ID field of the mutation.
func withABTestResultID(id string) abtestresultOption {
	return func(m *ABTestResultMutation) {
		var (
			err   error
			once  sync.Once
			value *ABTestResult
		)
		m.oldValue = func(ctx context.Context) (*ABTestResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ABTestResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withABTestResult sets the old ABTestResult of the mutation.
func withABTestResult(node *ABTestResult) abtestresultOption {
	return func(m *ABTestResultMutation) {
		m.oldValue = func(context.Context) (*ABTestResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ABTestResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ABTestResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ABTestResult entities.
func (m *ABTestResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ABTestResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ABTestResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ABTestResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTestID sets the "test_id" field.
func (m *ABTestResultMutation) SetTestID(s string) {
	m.test = &s
}

// TestID returns the value of the "test_id" field in the mutation.
func (m *ABTestResultMutation) TestID() (r string, exists bool) {
	v := m.test
	if v == nil {
		return
	}
	return *v, true
}

// OldTestID returns the old "test_id" field's value of the ABTestResult entity.
// If the ABTestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ABTestResultMutation) OldTestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestID: %w", err)
	}
	return oldValue.TestID, nil
}

// ResetTestID resets all changes to the "test_id" field.
func (m *ABTestResultMutation) ResetTestID() {
	m.test = nil
}

// SetRequestID sets the "request_id" field.
func (m *ABTestResultMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *ABTestResultMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the ABTestResult entity.
// If the ABTestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ABTestResultMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *ABTestResultMutation) ResetRequestID() {
	m.request_id = nil
}

// SetVariant sets the "variant" field.
func (m *ABTestResultMutation) SetVariant(s string) {
	m.variant = &s
}

// Variant returns the value of the "variant" field in the mutation.
func (m *ABTestResultMutation) Variant() (r string, exists bool) {
	v := m.variant
	if v == nil {
		return
	}
	return *v, true
}

// OldVariant returns the old "variant" field's value of the ABTestResult entity.
// If the ABTestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ABTestResultMutation) OldVariant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariant: %w", err)
	}
	return oldValue.Variant, nil
}

// ResetVariant resets all changes to the "variant" field.
func (m *ABTestResultMutation) ResetVariant() {
	m.variant = nil
}

// SetSuccess sets the "success" field.
func (m *ABTestResultMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *ABTestResultMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the ABTestResult entity.
// If the ABTestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ABTestResultMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *ABTestResultMutation) ResetSuccess() {
	m.success = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *ABTestResultMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ABTestResultMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ABTestResult entity.
// If the ABTestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ABTestResultMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ABTestResultMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ABTestResultMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ABTestResultMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetTokens sets the "tokens" field.
func (m *ABTestResultMutation) SetTokens(i int) {
	m.tokens = &i
	m.addtokens = nil
}

// Tokens returns the value of the "tokens" field in the mutation.
func (m *ABTestResultMutation) Tokens() (r int, exists bool) {
	v := m.tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTokens returns the old "tokens" field's value of the ABTestResult entity.
// If the ABTestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ABTestResultMutation) OldTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokens: %w", err)
	}
	return oldValue.Tokens, nil
}

// AddTokens adds i to the "tokens" field.
func (m *ABTestResultMutation) AddTokens(i int) {
	if m.addtokens != nil {
		*m.addtokens += i
	} else {
		m.addtokens = &i
	}
}

// AddedTokens returns the value that was added to the "tokens" field in this mutation.
func (m *ABTestResultMutation) AddedTokens() (r int, exists bool) {
	v := m.addtokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokens resets all changes to the "tokens" field.
func (m *ABTestResultMutation) ResetTokens() {
	m.tokens = nil
	m.addtokens = nil
}

// SetCost sets the "cost" field.
func (m *ABTestResultMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *ABTestResultMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the ABTestResult entity.
// If the ABTestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ABTestResultMutation) OldCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *ABTestResultMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *ABTestResultMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *ABTestResultMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetQualityScore sets the "quality_score" field.
func (m *ABTestResultMutation) SetQualityScore(f float64) {
	m.quality_score = &f
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *ABTestResultMutation) QualityScore() (r float64, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the ABTestResult entity.
// If the ABTestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ABTestResultMutation) OldQualityScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds f to the "quality_score" field.
func (m *ABTestResultMutation) AddQualityScore(f float64) {
	if m.addquality_score != nil {
		*m.addquality_score += f
	} else {
		m.addquality_score = &f
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *ABTestResultMutation) AddedQualityScore() (r float64, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearQualityScore clears the value of the "quality_score" field.
func (m *ABTestResultMutation) ClearQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	m.clearedFields[abtestresult.FieldQualityScore] = struct{}{}
}

// QualityScoreCleared returns if the "quality_score" field was cleared in this mutation.
func (m *ABTestResultMutation) QualityScoreCleared() bool {
	_, ok := m.clearedFields[abtestresult.FieldQualityScore]
	return ok
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *ABTestResultMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	delete(m.clearedFields, abtestresult.FieldQualityScore)
}

// SetCreatedAt sets the "created_at" field.
func (m *ABTestResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ABTestResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ABTestResult entity.
// If the ABTestResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ABTestResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ABTestResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTest clears the "test" edge to the ABTest entity.
func (m *ABTestResultMutation) ClearTest() {
	m.clearedtest = true
	m.clearedFields[abtestresult.FieldTestID] = struct{}{}
}

// TestCleared reports if the "test" edge to the ABTest entity was cleared.
func (m *ABTestResultMutation) TestCleared() bool {
	return m.clearedtest
}

// TestIDs returns the "test" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TestID instead. It exists only for internal usage by the builders.
func (m *ABTestResultMutation) TestIDs() (ids []string) {
	if id := m.test; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTest resets all changes to the "test" edge.
func (m *ABTestResultMutation) ResetTest() {
	m.test = nil
	m.clearedtest = false
}

// Where appends a list predicates to the ABTestResultMutation builder.
func (m *ABTestResultMutation) Where(ps ...predicate.ABTestResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ABTestResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ABTestResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ABTestResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ABTestResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ABTestResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ABTestResult).
func (m *ABTestResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ABTestResultMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.test != nil {
		fields = append(fields, abtestresult.FieldTestID)
	}
	if m.request_id != nil {
		fields = append(fields, abtestresult.FieldRequestID)
	}
	if m.variant != nil {
		fields = append(fields, abtestresult.FieldVariant)
	}
	if m.success != nil {
		fields = append(fields, abtestresult.FieldSuccess)
	}
	if m.duration_ms != nil {
		fields = append(fields, abtestresult.FieldDurationMs)
	}
	if m.tokens != nil {
		fields = append(fields, abtestresult.FieldTokens)
	}
	if m.cost != nil {
		fields = append(fields, abtestresult.FieldCost)
	}
	if m.quality_score != nil {
		fields = append(fields, abtestresult.FieldQualityScore)
	}
	if m.created_at != nil {
		fields = append(fields, abtestresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ABTestResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case abtestresult.FieldTestID:
		return m.TestID()
	case abtestresult.FieldRequestID:
		return m.RequestID()
	case abtestresult.FieldVariant:
		return m.Variant()
	case abtestresult.FieldSuccess:
		return m.Success()
	case abtestresult.FieldDurationMs:
		return m.DurationMs()
	case abtestresult.FieldTokens:
		return m.Tokens()
	case abtestresult.FieldCost:
		return m.Cost()
	case abtestresult.FieldQualityScore:
		return m.QualityScore()
	case abtestresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ABTestResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case abtestresult.FieldTestID:
		return m.OldTestID(ctx)
	case abtestresult.FieldRequestID:
		return m.OldRequestID(ctx)
	case abtestresult.FieldVariant:
		return m.OldVariant(ctx)
	case abtestresult.FieldSuccess:
		return m.OldSuccess(ctx)
	case abtestresult.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case abtestresult.FieldTokens:
		return m.OldTokens(ctx)
	case abtestresult.FieldCost:
		return m.OldCost(ctx)
	case abtestresult.FieldQualityScore:
		return m.OldQualityScore(ctx)
	case abtestresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ABTestResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ABTestResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case abtestresult.FieldTestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestID(v)
		return nil
	case abtestresult.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case abtestresult.FieldVariant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariant(v)
		return nil
	case abtestresult.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case abtestresult.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case abtestresult.FieldTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokens(v)
		return nil
	case abtestresult.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case abtestresult.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	case abtestresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ABTestResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ABTestResultMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, abtestresult.FieldDurationMs)
	}
	if m.addtokens != nil {
		fields = append(fields, abtestresult.FieldTokens)
	}
	if m.addcost != nil {
		fields = append(fields, abtestresult.FieldCost)
	}
	if m.addquality_score != nil {
		fields = append(fields, abtestresult.FieldQualityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ABTestResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case abtestresult.FieldDurationMs:
		return m.AddedDurationMs()
	case abtestresult.FieldTokens:
		return m.AddedTokens()
	case abtestresult.FieldCost:
		return m.AddedCost()
	case abtestresult.FieldQualityScore:
		return m.AddedQualityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ABTestResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case abtestresult.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case abtestresult.FieldTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokens(v)
		return nil
	case abtestresult.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	case abtestresult.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	}
	return fmt.Errorf("unknown ABTestResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ABTestResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(abtestresult.FieldQualityScore) {
		fields = append(fields, abtestresult.FieldQualityScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ABTestResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ABTestResultMutation) ClearField(name string) error {
	switch name {
	case abtestresult.FieldQualityScore:
		m.ClearQualityScore()
		return nil
	}
	return fmt.Errorf("unknown ABTestResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ABTestResultMutation) ResetField(name string) error {
	switch name {
	case abtestresult.FieldTestID:
		m.ResetTestID()
		return nil
	case abtestresult.FieldRequestID:
		m.ResetRequestID()
		return nil
	case abtestresult.FieldVariant:
		m.ResetVariant()
		return nil
	case abtestresult.FieldSuccess:
		m.ResetSuccess()
		return nil
	case abtestresult.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case abtestresult.FieldTokens:
		m.ResetTokens()
		return nil
	case abtestresult.FieldCost:
		m.ResetCost()
		return nil
	case abtestresult.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	case abtestresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ABTestResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ABTestResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.test != nil {
		edges = append(edges, abtestresult.EdgeTest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ABTestResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case abtestresult.EdgeTest:
		if id := m.test; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ABTestResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ABTestResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ABTestResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtest {
		edges = append(edges, abtestresult.EdgeTest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ABTestResultMutation) EdgeCleared(name string) bool {
	switch name {
	case abtestresult.EdgeTest:
		return m.clearedtest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ABTestResultMutation) ClearEdge(name string) error {
	switch name {
	case abtestresult.EdgeTest:
		m.ClearTest()
		return nil
	}
	return fmt.Errorf("unknown ABTestResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ABTestResultMutation) ResetEdge(name string) error {
	switch name {
	case abtestresult.EdgeTest:
		m.ResetTest()
		return nil
	}
	return fmt.Errorf("unknown ABTestResult edge %s", name)
}

// CodingTaskMutation represents an operation that mutates the CodingTask nodes in the graph.
type CodingTaskMutation struct {
	config
	op                Op
	typ               string
	id                *string
	user_id           *string
	title             *string
	description       *string
	_type             *codingtask.Type
	complexity        *codingtask.Complexity
	status            *codingtask.Status
	pr_number         *int
	addpr_number      *int
	pr_url            *string
	created_at        *time.Time
	completed_at      *time.Time
	clearedFields     map[string]struct{}
	executions        map[string]struct{}
	removedexecutions map[string]struct{}
	clearedexecutions bool
	feedback          map[string]struct{}
	removedfeedback   map[string]struct{}
	clearedfeedback   bool
	done              bool
	oldValue          func(context.Context) (*CodingTask, error)
	predicates        []predicate.CodingTask
}

var _ ent.Mutation = (*CodingTaskMutation)(nil)

// codingtaskOption allows management of the mutation configuration using functional options.
type codingtaskOption func(*CodingTaskMutation)

// newCodingTaskMutation creates new mutation for the CodingTask entity.
func newCodingTaskMutation(c config, op Op, opts ...codingtaskOption) *CodingTaskMutation {
	m := &CodingTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeCodingTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCodingTaskID sets the ID field of the mutation.
func withCodingTaskID(id string) codingtaskOption {
	return func(m *CodingTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *CodingTask
		)
		m.oldValue = func(ctx context.Context) (*CodingTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CodingTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCodingTask sets the old CodingTask of the mutation.
func withCodingTask(node *CodingTask) codingtaskOption {
	return func(m *CodingTaskMutation) {
		m.oldValue = func(context.Context) (*CodingTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CodingTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CodingTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CodingTask entities.
func (m *CodingTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CodingTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CodingTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CodingTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CodingTaskMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CodingTaskMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CodingTask entity.
// If the CodingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodingTaskMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CodingTaskMutation) ResetUserID() {
	m.user_id = nil
}

// SetTitle sets the "title" field.
func (m *CodingTaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CodingTaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CodingTask entity.
// If the CodingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodingTaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CodingTaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *CodingTaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CodingTaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the CodingTask entity.
// If the CodingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodingTaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *CodingTaskMutation) ResetDescription() {
	m.description = nil
}

// SetType sets the "type" field.
func (m *CodingTaskMutation) SetType(c codingtask.Type) {
	m._type = &c
}

// GetType returns the value of the "type" field in the mutation.
func (m *CodingTaskMutation) GetType() (r codingtask.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the CodingTask entity.
// If the CodingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodingTaskMutation) OldType(ctx context.Context) (v codingtask.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ClearType clears the value of the "type" field.
func (m *CodingTaskMutation) ClearType() {
	m._type = nil
	m.clearedFields[codingtask.FieldType] = struct{}{}
}

// TypeCleared returns if the "type" field was cleared in this mutation.
func (m *CodingTaskMutation) TypeCleared() bool {
	_, ok := m.clearedFields[codingtask.FieldType]
	return ok
}

// ResetType resets all changes to the "type" field.
func (m *CodingTaskMutation) ResetType() {
	m._type = nil
	delete(m.clearedFields, codingtask.FieldType)
}

// SetComplexity sets the "complexity" field.
func (m *CodingTaskMutation) SetComplexity(c codingtask.Complexity) {
	m.complexity = &c
}

// Complexity returns the value of the "complexity" field in the mutation.
func (m *CodingTaskMutation) Complexity() (r codingtask.Complexity, exists bool) {
	v := m.complexity
	if v == nil {
		return
	}
	return *v, true
}

// OldComplexity returns the old "complexity" field's value of the CodingTask entity.
// If the CodingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodingTaskMutation) OldComplexity(ctx context.Context) (v codingtask.Complexity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComplexity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComplexity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComplexity: %w", err)
	}
	return oldValue.Complexity, nil
}

// ClearComplexity clears the value of the "complexity" field.
func (m *CodingTaskMutation) ClearComplexity() {
	m.complexity = nil
	m.clearedFields[codingtask.FieldComplexity] = struct{}{}
}

// ComplexityCleared returns if the "complexity" field was cleared in this mutation.
func (m *CodingTaskMutation) ComplexityCleared() bool {
	_, ok := m.clearedFields[codingtask.FieldComplexity]
	return ok
}

// ResetComplexity resets all changes to the "complexity" field.
func (m *CodingTaskMutation) ResetComplexity() {
	m.complexity = nil
	delete(m.clearedFields, codingtask.FieldComplexity)
}

// SetStatus sets the "status" field.
func (m *CodingTaskMutation) SetStatus(c codingtask.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CodingTaskMutation) Status() (r codingtask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CodingTask entity.
// If the CodingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodingTaskMutation) OldStatus(ctx context.Context) (v codingtask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CodingTaskMutation) ResetStatus() {
	m.status = nil
}

// SetPrNumber sets the "pr_number" field.
func (m *CodingTaskMutation) SetPrNumber(i int) {
	m.pr_number = &i
	m.addpr_number = nil
}

// PrNumber returns the value of the "pr_number" field in the mutation.
func (m *CodingTaskMutation) PrNumber() (r int, exists bool) {
	v := m.pr_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPrNumber returns the old "pr_number" field's value of the CodingTask entity.
// If the CodingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodingTaskMutation) OldPrNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrNumber: %w", err)
	}
	return oldValue.PrNumber, nil
}

// AddPrNumber adds i to the "pr_number" field.
func (m *CodingTaskMutation) AddPrNumber(i int) {
	if m.addpr_number != nil {
		*m.addpr_number += i
	} else {
		m.addpr_number = &i
	}
}

// AddedPrNumber returns the value that was added to the "pr_number" field in this mutation.
func (m *CodingTaskMutation) AddedPrNumber() (r int, exists bool) {
	v := m.addpr_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearPrNumber clears the value of the "pr_number" field.
func (m *CodingTaskMutation) ClearPrNumber() {
	m.pr_number = nil
	m.addpr_number = nil
	m.clearedFields[codingtask.FieldPrNumber] = struct{}{}
}

// PrNumberCleared returns if the "pr_number" field was cleared in this mutation.
func (m *CodingTaskMutation) PrNumberCleared() bool {
	_, ok := m.clearedFields[codingtask.FieldPrNumber]
	return ok
}

// ResetPrNumber resets all changes to the "pr_number" field.
func (m *CodingTaskMutation) ResetPrNumber() {
	m.pr_number = nil
	m.addpr_number = nil
	delete(m.clearedFields, codingtask.FieldPrNumber)
}

// SetPrURL sets the "pr_url" field.
func (m *CodingTaskMutation) SetPrURL(s string) {
	m.pr_url = &s
}

// PrURL returns the value of the "pr_url" field in the mutation.
func (m *CodingTaskMutation) PrURL() (r string, exists bool) {
	v := m.pr_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPrURL returns the old "pr_url" field's value of the CodingTask entity.
// If the CodingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodingTaskMutation) OldPrURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrURL: %w", err)
	}
	return oldValue.PrURL, nil
}

// ClearPrURL clears the value of the "pr_url" field.
func (m *CodingTaskMutation) ClearPrURL() {
	m.pr_url = nil
	m.clearedFields[codingtask.FieldPrURL] = struct{}{}
}

// PrURLCleared returns if the "pr_url" field was cleared in this mutation.
func (m *CodingTaskMutation) PrURLCleared() bool {
	_, ok := m.clearedFields[codingtask.FieldPrURL]
	return ok
}

// ResetPrURL resets all changes to the "pr_url" field.
func (m *CodingTaskMutation) ResetPrURL() {
	m.pr_url = nil
	delete(m.clearedFields, codingtask.FieldPrURL)
}

// SetCreatedAt sets the "created_at" field.
func (m *CodingTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CodingTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CodingTask entity.
// If the CodingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodingTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CodingTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *CodingTaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *CodingTaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the CodingTask entity.
// If the CodingTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodingTaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *CodingTaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[codingtask.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *CodingTaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[codingtask.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *CodingTaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, codingtask.FieldCompletedAt)
}

// AddExecutionIDs adds the "executions" edge to the TaskExecution entity by ids.
func (m *CodingTaskMutation) AddExecutionIDs(ids ...string) {
	if m.executions == nil {
		m.executions = make(map[string]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the TaskExecution entity.
func (m *CodingTaskMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the TaskExecution entity was cleared.
func (m *CodingTaskMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the TaskExecution entity by IDs.
func (m *CodingTaskMutation) RemoveExecutionIDs(ids ...string) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the TaskExecution entity.
func (m *CodingTaskMutation) RemovedExecutionsIDs() (ids []string) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *CodingTaskMutation) ExecutionsIDs() (ids []string) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *CodingTaskMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// AddFeedbackIDs adds the "feedback" edge to the Feedback entity by ids.
func (m *CodingTaskMutation) AddFeedbackIDs(ids ...string) {
	if m.feedback == nil {
		m.feedback = make(map[string]struct{})
	}
	for i := range ids {
		m.feedback[ids[i]] = struct{}{}
	}
}

// ClearFeedback clears the "feedback" edge to the Feedback entity.
func (m *CodingTaskMutation) ClearFeedback() {
	m.clearedfeedback = true
}

// FeedbackCleared reports if the "feedback" edge to the Feedback entity was cleared.
func (m *CodingTaskMutation) FeedbackCleared() bool {
	return m.clearedfeedback
}

// RemoveFeedbackIDs removes the "feedback" edge to the Feedback entity by IDs.
func (m *CodingTaskMutation) RemoveFeedbackIDs(ids ...string) {
	if m.removedfeedback == nil {
		m.removedfeedback = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.feedback, ids[i])
		m.removedfeedback[ids[i]] = struct{}{}
	}
}

// RemovedFeedback returns the removed IDs of the "feedback" edge to the Feedback entity.
func (m *CodingTaskMutation) RemovedFeedbackIDs() (ids []string) {
	for id := range m.removedfeedback {
		ids = append(ids, id)
	}
	return
}

// FeedbackIDs returns the "feedback" edge IDs in the mutation.
func (m *CodingTaskMutation) FeedbackIDs() (ids []string) {
	for id := range m.feedback {
		ids = append(ids, id)
	}
	return
}

// ResetFeedback resets all changes to the "feedback" edge.
func (m *CodingTaskMutation) ResetFeedback() {
	m.feedback = nil
	m.clearedfeedback = false
	m.removedfeedback = nil
}

// Where appends a list predicates to the CodingTaskMutation builder.
func (m *CodingTaskMutation) Where(ps ...predicate.CodingTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CodingTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CodingTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CodingTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CodingTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CodingTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CodingTask).
func (m *CodingTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CodingTaskMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_id != nil {
		fields = append(fields, codingtask.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, codingtask.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, codingtask.FieldDescription)
	}
	if m._type != nil {
		fields = append(fields, codingtask.FieldType)
	}
	if m.complexity != nil {
		fields = append(fields, codingtask.FieldComplexity)
	}
	if m.status != nil {
		fields = append(fields, codingtask.FieldStatus)
	}
	if m.pr_number != nil {
		fields = append(fields, codingtask.FieldPrNumber)
	}
	if m.pr_url != nil {
		fields = append(fields, codingtask.FieldPrURL)
	}
	if m.created_at != nil {
		fields = append(fields, codingtask.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, codingtask.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CodingTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case codingtask.FieldUserID:
		return m.UserID()
	case codingtask.FieldTitle:
		return m.Title()
	case codingtask.FieldDescription:
		return m.Description()
	case codingtask.FieldType:
		return m.GetType()
	case codingtask.FieldComplexity:
		return m.Complexity()
	case codingtask.FieldStatus:
		return m.Status()
	case codingtask.FieldPrNumber:
		return m.PrNumber()
	case codingtask.FieldPrURL:
		return m.PrURL()
	case codingtask.FieldCreatedAt:
		return m.CreatedAt()
	case codingtask.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CodingTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case codingtask.FieldUserID:
		return m.OldUserID(ctx)
	case codingtask.FieldTitle:
		return m.OldTitle(ctx)
	case codingtask.FieldDescription:
		return m.OldDescription(ctx)
	case codingtask.FieldType:
		return m.OldType(ctx)
	case codingtask.FieldComplexity:
		return m.OldComplexity(ctx)
	case codingtask.FieldStatus:
		return m.OldStatus(ctx)
	case codingtask.FieldPrNumber:
		return m.OldPrNumber(ctx)
	case codingtask.FieldPrURL:
		return m.OldPrURL(ctx)
	case codingtask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case codingtask.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CodingTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CodingTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case codingtask.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case codingtask.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case codingtask.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case codingtask.FieldType:
		v, ok := value.(codingtask.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case codingtask.FieldComplexity:
		v, ok := value.(codingtask.Complexity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComplexity(v)
		return nil
	case codingtask.FieldStatus:
		v, ok := value.(codingtask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case codingtask.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrNumber(v)
		return nil
	case codingtask.FieldPrURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrURL(v)
		return nil
	case codingtask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case codingtask.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CodingTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CodingTaskMutation) AddedFields() []string {
	var fields []string
	if m.addpr_number != nil {
		fields = append(fields, codingtask.FieldPrNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CodingTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case codingtask.FieldPrNumber:
		return m.AddedPrNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CodingTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case codingtask.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrNumber(v)
		return nil
	}
	return fmt.Errorf("unknown CodingTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CodingTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(codingtask.FieldType) {
		fields = append(fields, codingtask.FieldType)
	}
	if m.FieldCleared(codingtask.FieldComplexity) {
		fields = append(fields, codingtask.FieldComplexity)
	}
	if m.FieldCleared(codingtask.FieldPrNumber) {
		fields = append(fields, codingtask.FieldPrNumber)
	}
	if m.FieldCleared(codingtask.FieldPrURL) {
		fields = append(fields, codingtask.FieldPrURL)
	}
	if m.FieldCleared(codingtask.FieldCompletedAt) {
		fields = append(fields, codingtask.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CodingTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CodingTaskMutation) ClearField(name string) error {
	switch name {
	case codingtask.FieldType:
		m.ClearType()
		return nil
	case codingtask.FieldComplexity:
		m.ClearComplexity()
		return nil
	case codingtask.FieldPrNumber:
		m.ClearPrNumber()
		return nil
	case codingtask.FieldPrURL:
		m.ClearPrURL()
		return nil
	case codingtask.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown CodingTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CodingTaskMutation) ResetField(name string) error {
	switch name {
	case codingtask.FieldUserID:
		m.ResetUserID()
		return nil
	case codingtask.FieldTitle:
		m.ResetTitle()
		return nil
	case codingtask.FieldDescription:
		m.ResetDescription()
		return nil
	case codingtask.FieldType:
		m.ResetType()
		return nil
	case codingtask.FieldComplexity:
		m.ResetComplexity()
		return nil
	case codingtask.FieldStatus:
		m.ResetStatus()
		return nil
	case codingtask.FieldPrNumber:
		m.ResetPrNumber()
		return nil
	case codingtask.FieldPrURL:
		m.ResetPrURL()
		return nil
	case codingtask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case codingtask.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown CodingTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CodingTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.executions != nil {
		edges = append(edges, codingtask.EdgeExecutions)
	}
	if m.feedback != nil {
		edges = append(edges, codingtask.EdgeFeedback)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CodingTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case codingtask.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	case codingtask.EdgeFeedback:
		ids := make([]ent.Value, 0, len(m.feedback))
		for id := range m.feedback {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CodingTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedexecutions != nil {
		edges = append(edges, codingtask.EdgeExecutions)
	}
	if m.removedfeedback != nil {
		edges = append(edges, codingtask.EdgeFeedback)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CodingTaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case codingtask.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	case codingtask.EdgeFeedback:
		ids := make([]ent.Value, 0, len(m.removedfeedback))
		for id := range m.removedfeedback {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CodingTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedexecutions {
		edges = append(edges, codingtask.EdgeExecutions)
	}
	if m.clearedfeedback {
		edges = append(edges, codingtask.EdgeFeedback)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CodingTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case codingtask.EdgeExecutions:
		return m.clearedexecutions
	case codingtask.EdgeFeedback:
		return m.clearedfeedback
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CodingTaskMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown CodingTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CodingTaskMutation) ResetEdge(name string) error {
	switch name {
	case codingtask.EdgeExecutions:
		m.ResetExecutions()
		return nil
	case codingtask.EdgeFeedback:
		m.ResetFeedback()
		return nil
	}
	return fmt.Errorf("unknown CodingTask edge %s", name)
}

// FeedbackMutation represents an operation that mutates the Feedback nodes in the graph.
type FeedbackMutation struct {
	config
	op            Op
	typ           string
	id            *string
	execution_id  *string
	user_id       *string
	sentiment     *feedback.Sentiment
	rating        *float64
	addrating     *float64
	reason        *string
	context       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*Feedback, error)
	predicates    []predicate.Feedback
}

var _ ent.Mutation = (*FeedbackMutation)(nil)

// feedbackOption allows management of the mutation configuration using functional options.
type feedbackOption func(*FeedbackMutation)

// newFeedbackMutation creates new mutation for the Feedback entity.
func newFeedbackMutation(c config, op Op, opts ...feedbackOption) *FeedbackMutation {
	m := &FeedbackMutation{
		config:        c,
		op:            op,
		typ:           TypeFeedback,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedbackID sets the ID field of the mutation.
func withFeedbackID(id string) feedbackOption {
	return func(m *FeedbackMutation) {
		var (
			err   error
			once  sync.Once
			value *Feedback
		)
		m.oldValue = func(ctx context.Context) (*Feedback, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Feedback.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeedback sets the old Feedback of the mutation.
func withFeedback(node *Feedback) feedbackOption {
	return func(m *FeedbackMutation) {
		m.oldValue = func(context.Context) (*Feedback, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedbackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedbackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Feedback entities.
func (m *FeedbackMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedbackMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedbackMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Feedback.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *FeedbackMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *FeedbackMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *FeedbackMutation) ResetTaskID() {
	m.task = nil
}

// SetExecutionID sets the "execution_id" field.
func (m *FeedbackMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *FeedbackMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldExecutionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ClearExecutionID clears the value of the "execution_id" field.
func (m *FeedbackMutation) ClearExecutionID() {
	m.execution_id = nil
	m.clearedFields[feedback.FieldExecutionID] = struct{}{}
}

// ExecutionIDCleared returns if the "execution_id" field was cleared in this mutation.
func (m *FeedbackMutation) ExecutionIDCleared() bool {
	_, ok := m.clearedFields[feedback.FieldExecutionID]
	return ok
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *FeedbackMutation) ResetExecutionID() {
	m.execution_id = nil
	delete(m.clearedFields, feedback.FieldExecutionID)
}

// SetUserID sets the "user_id" field.
func (m *FeedbackMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *FeedbackMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *FeedbackMutation) ResetUserID() {
	m.user_id = nil
}

// SetSentiment sets the "sentiment" field.
func (m *FeedbackMutation) SetSentiment(f feedback.Sentiment) {
	m.sentiment = &f
}

// Sentiment returns the value of the "sentiment" field in the mutation.
func (m *FeedbackMutation) Sentiment() (r feedback.Sentiment, exists bool) {
	v := m.sentiment
	if v == nil {
		return
	}
	return *v, true
}

// OldSentiment returns the old "sentiment" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldSentiment(ctx context.Context) (v feedback.Sentiment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentiment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentiment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentiment: %w", err)
	}
	return oldValue.Sentiment, nil
}

// ResetSentiment resets all changes to the "sentiment" field.
func (m *FeedbackMutation) ResetSentiment() {
	m.sentiment = nil
}

// SetRating sets the "rating" field.
func (m *FeedbackMutation) SetRating(f float64) {
	m.rating = &f
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *FeedbackMutation) Rating() (r float64, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldRating(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds f to the "rating" field.
func (m *FeedbackMutation) AddRating(f float64) {
	if m.addrating != nil {
		*m.addrating += f
	} else {
		m.addrating = &f
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *FeedbackMutation) AddedRating() (r float64, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *FeedbackMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetReason sets the "reason" field.
func (m *FeedbackMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *FeedbackMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *FeedbackMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[feedback.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *FeedbackMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[feedback.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *FeedbackMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, feedback.FieldReason)
}

// SetContext sets the "context" field.
func (m *FeedbackMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *FeedbackMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *FeedbackMutation) ClearContext() {
	m.context = nil
	m.clearedFields[feedback.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *FeedbackMutation) ContextCleared() bool {
	_, ok := m.clearedFields[feedback.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *FeedbackMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, feedback.FieldContext)
}

// SetCreatedAt sets the "created_at" field.
func (m *FeedbackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FeedbackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FeedbackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the CodingTask entity.
func (m *FeedbackMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[feedback.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the CodingTask entity was cleared.
func (m *FeedbackMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *FeedbackMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *FeedbackMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the FeedbackMutation builder.
func (m *FeedbackMutation) Where(ps ...predicate.Feedback) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedbackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedbackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Feedback, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedbackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedbackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Feedback).
func (m *FeedbackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedbackMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.task != nil {
		fields = append(fields, feedback.FieldTaskID)
	}
	if m.execution_id != nil {
		fields = append(fields, feedback.FieldExecutionID)
	}
	if m.user_id != nil {
		fields = append(fields, feedback.FieldUserID)
	}
	if m.sentiment != nil {
		fields = append(fields, feedback.FieldSentiment)
	}
	if m.rating != nil {
		fields = append(fields, feedback.FieldRating)
	}
	if m.reason != nil {
		fields = append(fields, feedback.FieldReason)
	}
	if m.context != nil {
		fields = append(fields, feedback.FieldContext)
	}
	if m.created_at != nil {
		fields = append(fields, feedback.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedbackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feedback.FieldTaskID:
		return m.TaskID()
	case feedback.FieldExecutionID:
		return m.ExecutionID()
	case feedback.FieldUserID:
		return m.UserID()
	case feedback.FieldSentiment:
		return m.Sentiment()
	case feedback.FieldRating:
		return m.Rating()
	case feedback.FieldReason:
		return m.Reason()
	case feedback.FieldContext:
		return m.Context()
	case feedback.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedbackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feedback.FieldTaskID:
		return m.OldTaskID(ctx)
	case feedback.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case feedback.FieldUserID:
		return m.OldUserID(ctx)
	case feedback.FieldSentiment:
		return m.OldSentiment(ctx)
	case feedback.FieldRating:
		return m.OldRating(ctx)
	case feedback.FieldReason:
		return m.OldReason(ctx)
	case feedback.FieldContext:
		return m.OldContext(ctx)
	case feedback.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Feedback field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feedback.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case feedback.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case feedback.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case feedback.FieldSentiment:
		v, ok := value.(feedback.Sentiment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentiment(v)
		return nil
	case feedback.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case feedback.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case feedback.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case feedback.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Feedback field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedbackMutation) AddedFields() []string {
	var fields []string
	if m.addrating != nil {
		fields = append(fields, feedback.FieldRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedbackMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case feedback.FieldRating:
		return m.AddedRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackMutation) AddField(name string, value ent.Value) error {
	switch name {
	case feedback.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	}
	return fmt.Errorf("unknown Feedback numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedbackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(feedback.FieldExecutionID) {
		fields = append(fields, feedback.FieldExecutionID)
	}
	if m.FieldCleared(feedback.FieldReason) {
		fields = append(fields, feedback.FieldReason)
	}
	if m.FieldCleared(feedback.FieldContext) {
		fields = append(fields, feedback.FieldContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedbackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedbackMutation) ClearField(name string) error {
	switch name {
	case feedback.FieldExecutionID:
		m.ClearExecutionID()
		return nil
	case feedback.FieldReason:
		m.ClearReason()
		return nil
	case feedback.FieldContext:
		m.ClearContext()
		return nil
	}
	return fmt.Errorf("unknown Feedback nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedbackMutation) ResetField(name string) error {
	switch name {
	case feedback.FieldTaskID:
		m.ResetTaskID()
		return nil
	case feedback.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case feedback.FieldUserID:
		m.ResetUserID()
		return nil
	case feedback.FieldSentiment:
		m.ResetSentiment()
		return nil
	case feedback.FieldRating:
		m.ResetRating()
		return nil
	case feedback.FieldReason:
		m.ResetReason()
		return nil
	case feedback.FieldContext:
		m.ResetContext()
		return nil
	case feedback.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Feedback field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedbackMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, feedback.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedbackMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case feedback.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedbackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedbackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedbackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, feedback.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedbackMutation) EdgeCleared(name string) bool {
	switch name {
	case feedback.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedbackMutation) ClearEdge(name string) error {
	switch name {
	case feedback.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Feedback unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedbackMutation) ResetEdge(name string) error {
	switch name {
	case feedback.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown Feedback edge %s", name)
}

// ModelMetricMutation represents an operation that mutates the ModelMetric nodes in the graph.
type ModelMetricMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	executions         *int
	addexecutions      *int
	successes          *int
	addsuccesses       *int
	avg_tokens         *float64
	addavg_tokens      *float64
	avg_cost           *float64
	addavg_cost        *float64
	avg_duration_ms    *float64
	addavg_duration_ms *float64
	avg_quality        *float64
	addavg_quality     *float64
	buckets            *map[string]interface{}
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ModelMetric, error)
	predicates         []predicate.ModelMetric
}

var _ ent.Mutation = (*ModelMetricMutation)(nil)

// modelmetricOption allows management of the mutation configuration using functional options.
type modelmetricOption func(*ModelMetricMutation)

// newModelMetricMutation creates new mutation for the ModelMetric entity.
func newModelMetricMutation(c config, op Op, opts ...modelmetricOption) *ModelMetricMutation {
	m := &ModelMetricMutation{
		config:        c,
		op:            op,
		typ:           TypeModelMetric,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelMetricID sets the ID field of the mutation.
func withModelMetricID(id string) modelmetricOption {
	return func(m *ModelMetricMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelMetric
		)
		m.oldValue = func(ctx context.Context) (*ModelMetric, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelMetric.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelMetric sets the old ModelMetric of the mutation.
func withModelMetric(node *ModelMetric) modelmetricOption {
	return func(m *ModelMetricMutation) {
		m.oldValue = func(context.Context) (*ModelMetric, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelMetricMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelMetricMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModelMetric entities.
func (m *ModelMetricMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelMetricMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelMetricMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelMetric.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutions sets the "executions" field.
func (m *ModelMetricMutation) SetExecutions(i int) {
	m.executions = &i
	m.addexecutions = nil
}

// Executions returns the value of the "executions" field in the mutation.
func (m *ModelMetricMutation) Executions() (r int, exists bool) {
	v := m.executions
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutions returns the old "executions" field's value of the ModelMetric entity.
// If the ModelMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelMetricMutation) OldExecutions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutions: %w", err)
	}
	return oldValue.Executions, nil
}

// AddExecutions adds i to the "executions" field.
func (m *ModelMetricMutation) AddExecutions(i int) {
	if m.addexecutions != nil {
		*m.addexecutions += i
	} else {
		m.addexecutions = &i
	}
}

// AddedExecutions returns the value that was added to the "executions" field in this mutation.
func (m *ModelMetricMutation) AddedExecutions() (r int, exists bool) {
	v := m.addexecutions
	if v == nil {
		return
	}
	return *v, true
}

// ResetExecutions resets all changes to the "executions" field.
func (m *ModelMetricMutation) ResetExecutions() {
	m.executions = nil
	m.addexecutions = nil
}

// SetSuccesses sets the "successes" field.
func (m *ModelMetricMutation) SetSuccesses(i int) {
	m.successes = &i
	m.addsuccesses = nil
}

// Successes returns the value of the "successes" field in the mutation.
func (m *ModelMetricMutation) Successes() (r int, exists bool) {
	v := m.successes
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccesses returns the old "successes" field's value of the ModelMetric entity.
// If the ModelMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelMetricMutation) OldSuccesses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccesses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccesses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccesses: %w", err)
	}
	return oldValue.Successes, nil
}

// AddSuccesses adds i to the "successes" field.
func (m *ModelMetricMutation) AddSuccesses(i int) {
	if m.addsuccesses != nil {
		*m.addsuccesses += i
	} else {
		m.addsuccesses = &i
	}
}

// AddedSuccesses returns the value that was added to the "successes" field in this mutation.
func (m *ModelMetricMutation) AddedSuccesses() (r int, exists bool) {
	v := m.addsuccesses
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccesses resets all changes to the "successes" field.
func (m *ModelMetricMutation) ResetSuccesses() {
	m.successes = nil
	m.addsuccesses = nil
}

// SetAvgTokens sets the "avg_tokens" field.
func (m *ModelMetricMutation) SetAvgTokens(f float64) {
	m.avg_tokens = &f
	m.addavg_tokens = nil
}

// AvgTokens returns the value of the "avg_tokens" field in the mutation.
func (m *ModelMetricMutation) AvgTokens() (r float64, exists bool) {
	v := m.avg_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgTokens returns the old "avg_tokens" field's value of the ModelMetric entity.
// If the ModelMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelMetricMutation) OldAvgTokens(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgTokens: %w", err)
	}
	return oldValue.AvgTokens, nil
}

// AddAvgTokens adds f to the "avg_tokens" field.
func (m *ModelMetricMutation) AddAvgTokens(f float64) {
	if m.addavg_tokens != nil {
		*m.addavg_tokens += f
	} else {
		m.addavg_tokens = &f
	}
}

// AddedAvgTokens returns the value that was added to the "avg_tokens" field in this mutation.
func (m *ModelMetricMutation) AddedAvgTokens() (r float64, exists bool) {
	v := m.addavg_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgTokens resets all changes to the "avg_tokens" field.
func (m *ModelMetricMutation) ResetAvgTokens() {
	m.avg_tokens = nil
	m.addavg_tokens = nil
}

// SetAvgCost sets the "avg_cost" field.
func (m *ModelMetricMutation) SetAvgCost(f float64) {
	m.avg_cost = &f
	m.addavg_cost = nil
}

// AvgCost returns the value of the "avg_cost" field in the mutation.
func (m *ModelMetricMutation) AvgCost() (r float64, exists bool) {
	v := m.avg_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgCost returns the old "avg_cost" field's value of the ModelMetric entity.
// If the ModelMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelMetricMutation) OldAvgCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgCost: %w", err)
	}
	return oldValue.AvgCost, nil
}

// AddAvgCost adds f to the "avg_cost" field.
func (m *ModelMetricMutation) AddAvgCost(f float64) {
	if m.addavg_cost != nil {
		*m.addavg_cost += f
	} else {
		m.addavg_cost = &f
	}
}

// AddedAvgCost returns the value that was added to the "avg_cost" field in this mutation.
func (m *ModelMetricMutation) AddedAvgCost() (r float64, exists bool) {
	v := m.addavg_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgCost resets all changes to the "avg_cost" field.
func (m *ModelMetricMutation) ResetAvgCost() {
	m.avg_cost = nil
	m.addavg_cost = nil
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (m *ModelMetricMutation) SetAvgDurationMs(f float64) {
	m.avg_duration_ms = &f
	m.addavg_duration_ms = nil
}

// AvgDurationMs returns the value of the "avg_duration_ms" field in the mutation.
func (m *ModelMetricMutation) AvgDurationMs() (r float64, exists bool) {
	v := m.avg_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgDurationMs returns the old "avg_duration_ms" field's value of the ModelMetric entity.
// If the ModelMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelMetricMutation) OldAvgDurationMs(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgDurationMs: %w", err)
	}
	return oldValue.AvgDurationMs, nil
}

// AddAvgDurationMs adds f to the "avg_duration_ms" field.
func (m *ModelMetricMutation) AddAvgDurationMs(f float64) {
	if m.addavg_duration_ms != nil {
		*m.addavg_duration_ms += f
	} else {
		m.addavg_duration_ms = &f
	}
}

// AddedAvgDurationMs returns the value that was added to the "avg_duration_ms" field in this mutation.
func (m *ModelMetricMutation) AddedAvgDurationMs() (r float64, exists bool) {
	v := m.addavg_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgDurationMs resets all changes to the "avg_duration_ms" field.
func (m *ModelMetricMutation) ResetAvgDurationMs() {
	m.avg_duration_ms = nil
	m.addavg_duration_ms = nil
}

// SetAvgQuality sets the "avg_quality" field.
func (m *ModelMetricMutation) SetAvgQuality(f float64) {
	m.avg_quality = &f
	m.addavg_quality = nil
}

// AvgQuality returns the value of the "avg_quality" field in the mutation.
func (m *ModelMetricMutation) AvgQuality() (r float64, exists bool) {
	v := m.avg_quality
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgQuality returns the old "avg_quality" field's value of the ModelMetric entity.
// If the ModelMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelMetricMutation) OldAvgQuality(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgQuality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgQuality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgQuality: %w", err)
	}
	return oldValue.AvgQuality, nil
}

// AddAvgQuality adds f to the "avg_quality" field.
func (m *ModelMetricMutation) AddAvgQuality(f float64) {
	if m.addavg_quality != nil {
		*m.addavg_quality += f
	} else {
		m.addavg_quality = &f
	}
}

// AddedAvgQuality returns the value that was added to the "avg_quality" field in this mutation.
func (m *ModelMetricMutation) AddedAvgQuality() (r float64, exists bool) {
	v := m.addavg_quality
	if v == nil {
		return
	}
	return *v, true
}

// ClearAvgQuality clears the value of the "avg_quality" field.
func (m *ModelMetricMutation) ClearAvgQuality() {
	m.avg_quality = nil
	m.addavg_quality = nil
	m.clearedFields[modelmetric.FieldAvgQuality] = struct{}{}
}

// AvgQualityCleared returns if the "avg_quality" field was cleared in this mutation.
func (m *ModelMetricMutation) AvgQualityCleared() bool {
	_, ok := m.clearedFields[modelmetric.FieldAvgQuality]
	return ok
}

// ResetAvgQuality resets all changes to the "avg_quality" field.
func (m *ModelMetricMutation) ResetAvgQuality() {
	m.avg_quality = nil
	m.addavg_quality = nil
	delete(m.clearedFields, modelmetric.FieldAvgQuality)
}

// SetBuckets sets the "buckets" field.
func (m *ModelMetricMutation) SetBuckets(value map[string]interface{}) {
	m.buckets = &value
}

// Buckets returns the value of the "buckets" field in the mutation.
func (m *ModelMetricMutation) Buckets() (r map[string]interface{}, exists bool) {
	v := m.buckets
	if v == nil {
		return
	}
	return *v, true
}

// OldBuckets returns the old "buckets" field's value of the ModelMetric entity.
// If the ModelMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelMetricMutation) OldBuckets(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuckets is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuckets requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuckets: %w", err)
	}
	return oldValue.Buckets, nil
}

// ClearBuckets clears the value of the "buckets" field.
func (m *ModelMetricMutation) ClearBuckets() {
	m.buckets = nil
	m.clearedFields[modelmetric.FieldBuckets] = struct{}{}
}

// BucketsCleared returns if the "buckets" field was cleared in this mutation.
func (m *ModelMetricMutation) BucketsCleared() bool {
	_, ok := m.clearedFields[modelmetric.FieldBuckets]
	return ok
}

// ResetBuckets resets all changes to the "buckets" field.
func (m *ModelMetricMutation) ResetBuckets() {
	m.buckets = nil
	delete(m.clearedFields, modelmetric.FieldBuckets)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ModelMetricMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ModelMetricMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ModelMetric entity.
// If the ModelMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelMetricMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ModelMetricMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ModelMetricMutation builder.
func (m *ModelMetricMutation) Where(ps ...predicate.ModelMetric) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelMetricMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelMetricMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelMetric, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelMetricMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelMetricMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelMetric).
func (m *ModelMetricMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelMetricMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.executions != nil {
		fields = append(fields, modelmetric.FieldExecutions)
	}
	if m.successes != nil {
		fields = append(fields, modelmetric.FieldSuccesses)
	}
	if m.avg_tokens != nil {
		fields = append(fields, modelmetric.FieldAvgTokens)
	}
	if m.avg_cost != nil {
		fields = append(fields, modelmetric.FieldAvgCost)
	}
	if m.avg_duration_ms != nil {
		fields = append(fields, modelmetric.FieldAvgDurationMs)
	}
	if m.avg_quality != nil {
		fields = append(fields, modelmetric.FieldAvgQuality)
	}
	if m.buckets != nil {
		fields = append(fields, modelmetric.FieldBuckets)
	}
	if m.updated_at != nil {
		fields = append(fields, modelmetric.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelMetricMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modelmetric.FieldExecutions:
		return m.Executions()
	case modelmetric.FieldSuccesses:
		return m.Successes()
	case modelmetric.FieldAvgTokens:
		return m.AvgTokens()
	case modelmetric.FieldAvgCost:
		return m.AvgCost()
	case modelmetric.FieldAvgDurationMs:
		return m.AvgDurationMs()
	case modelmetric.FieldAvgQuality:
		return m.AvgQuality()
	case modelmetric.FieldBuckets:
		return m.Buckets()
	case modelmetric.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelMetricMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modelmetric.FieldExecutions:
		return m.OldExecutions(ctx)
	case modelmetric.FieldSuccesses:
		return m.OldSuccesses(ctx)
	case modelmetric.FieldAvgTokens:
		return m.OldAvgTokens(ctx)
	case modelmetric.FieldAvgCost:
		return m.OldAvgCost(ctx)
	case modelmetric.FieldAvgDurationMs:
		return m.OldAvgDurationMs(ctx)
	case modelmetric.FieldAvgQuality:
		return m.OldAvgQuality(ctx)
	case modelmetric.FieldBuckets:
		return m.OldBuckets(ctx)
	case modelmetric.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ModelMetric field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelMetricMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modelmetric.FieldExecutions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutions(v)
		return nil
	case modelmetric.FieldSuccesses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccesses(v)
		return nil
	case modelmetric.FieldAvgTokens:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgTokens(v)
		return nil
	case modelmetric.FieldAvgCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgCost(v)
		return nil
	case modelmetric.FieldAvgDurationMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgDurationMs(v)
		return nil
	case modelmetric.FieldAvgQuality:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgQuality(v)
		return nil
	case modelmetric.FieldBuckets:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuckets(v)
		return nil
	case modelmetric.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ModelMetric field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelMetricMutation) AddedFields() []string {
	var fields []string
	if m.addexecutions != nil {
		fields = append(fields, modelmetric.FieldExecutions)
	}
	if m.addsuccesses != nil {
		fields = append(fields, modelmetric.FieldSuccesses)
	}
	if m.addavg_tokens != nil {
		fields = append(fields, modelmetric.FieldAvgTokens)
	}
	if m.addavg_cost != nil {
		fields = append(fields, modelmetric.FieldAvgCost)
	}
	if m.addavg_duration_ms != nil {
		fields = append(fields, modelmetric.FieldAvgDurationMs)
	}
	if m.addavg_quality != nil {
		fields = append(fields, modelmetric.FieldAvgQuality)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelMetricMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case modelmetric.FieldExecutions:
		return m.AddedExecutions()
	case modelmetric.FieldSuccesses:
		return m.AddedSuccesses()
	case modelmetric.FieldAvgTokens:
		return m.AddedAvgTokens()
	case modelmetric.FieldAvgCost:
		return m.AddedAvgCost()
	case modelmetric.FieldAvgDurationMs:
		return m.AddedAvgDurationMs()
	case modelmetric.FieldAvgQuality:
		return m.AddedAvgQuality()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelMetricMutation) AddField(name string, value ent.Value) error {
	switch name {
	case modelmetric.FieldExecutions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutions(v)
		return nil
	case modelmetric.FieldSuccesses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccesses(v)
		return nil
	case modelmetric.FieldAvgTokens:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgTokens(v)
		return nil
	case modelmetric.FieldAvgCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgCost(v)
		return nil
	case modelmetric.FieldAvgDurationMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgDurationMs(v)
		return nil
	case modelmetric.FieldAvgQuality:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgQuality(v)
		return nil
	}
	return fmt.Errorf("unknown ModelMetric numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelMetricMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(modelmetric.FieldAvgQuality) {
		fields = append(fields, modelmetric.FieldAvgQuality)
	}
	if m.FieldCleared(modelmetric.FieldBuckets) {
		fields = append(fields, modelmetric.FieldBuckets)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelMetricMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelMetricMutation) ClearField(name string) error {
	switch name {
	case modelmetric.FieldAvgQuality:
		m.ClearAvgQuality()
		return nil
	case modelmetric.FieldBuckets:
		m.ClearBuckets()
		return nil
	}
	return fmt.Errorf("unknown ModelMetric nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelMetricMutation) ResetField(name string) error {
	switch name {
	case modelmetric.FieldExecutions:
		m.ResetExecutions()
		return nil
	case modelmetric.FieldSuccesses:
		m.ResetSuccesses()
		return nil
	case modelmetric.FieldAvgTokens:
		m.ResetAvgTokens()
		return nil
	case modelmetric.FieldAvgCost:
		m.ResetAvgCost()
		return nil
	case modelmetric.FieldAvgDurationMs:
		m.ResetAvgDurationMs()
		return nil
	case modelmetric.FieldAvgQuality:
		m.ResetAvgQuality()
		return nil
	case modelmetric.FieldBuckets:
		m.ResetBuckets()
		return nil
	case modelmetric.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ModelMetric field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelMetricMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelMetricMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelMetricMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelMetricMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelMetricMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelMetricMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelMetricMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ModelMetric unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelMetricMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ModelMetric edge %s", name)
}

// TaskExecutionMutation represents an operation that mutates the TaskExecution nodes in the graph.
type TaskExecutionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	strategy       *string
	model          *string
	started_at     *time.Time
	finished_at    *time.Time
	success        *bool
	tokens_used    *int
	addtokens_used *int
	cost           *float64
	addcost        *float64
	duration_ms    *int64
	addduration_ms *int64
	iterations     *int
	additerations  *int
	error_message  *string
	clearedFields  map[string]struct{}
	task           *string
	clearedtask    bool
	done           bool
	oldValue       func(context.Context) (*TaskExecution, error)
	predicates     []predicate.TaskExecution
}

var _ ent.Mutation = (*TaskExecutionMutation)(nil)

// taskexecutionOption allows management of the mutation configuration using functional options.
type taskexecutionOption func(*TaskExecutionMutation)

// newTaskExecutionMutation creates new mutation for the TaskExecution entity.
func newTaskExecutionMutation(c config, op Op, opts ...taskexecutionOption) *TaskExecutionMutation {
	m := &TaskExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskExecutionID sets the ID field of the mutation.
func withTaskExecutionID(id string) taskexecutionOption {
	return func(m *TaskExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskExecution
		)
		m.oldValue = func(ctx context.Context) (*TaskExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskExecution sets the old TaskExecution of the mutation.
func withTaskExecution(node *TaskExecution) taskexecutionOption {
	return func(m *TaskExecutionMutation) {
		m.oldValue = func(context.Context) (*TaskExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskExecution entities.
func (m *TaskExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskExecutionMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskExecutionMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskExecutionMutation) ResetTaskID() {
	m.task = nil
}

// SetStrategy sets the "strategy" field.
func (m *TaskExecutionMutation) SetStrategy(s string) {
	m.strategy = &s
}

// Strategy returns the value of the "strategy" field in the mutation.
func (m *TaskExecutionMutation) Strategy() (r string, exists bool) {
	v := m.strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategy returns the old "strategy" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldStrategy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategy: %w", err)
	}
	return oldValue.Strategy, nil
}

// ResetStrategy resets all changes to the "strategy" field.
func (m *TaskExecutionMutation) ResetStrategy() {
	m.strategy = nil
}

// SetModel sets the "model" field.
func (m *TaskExecutionMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *TaskExecutionMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *TaskExecutionMutation) ClearModel() {
	m.model = nil
	m.clearedFields[taskexecution.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *TaskExecutionMutation) ModelCleared() bool {
	_, ok := m.clearedFields[taskexecution.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *TaskExecutionMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, taskexecution.FieldModel)
}

// SetStartedAt sets the "started_at" field.
func (m *TaskExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *TaskExecutionMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *TaskExecutionMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *TaskExecutionMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[taskexecution.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *TaskExecutionMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[taskexecution.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *TaskExecutionMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, taskexecution.FieldFinishedAt)
}

// SetSuccess sets the "success" field.
func (m *TaskExecutionMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *TaskExecutionMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *TaskExecutionMutation) ResetSuccess() {
	m.success = nil
}

// SetTokensUsed sets the "tokens_used" field.
func (m *TaskExecutionMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *TaskExecutionMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *TaskExecutionMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *TaskExecutionMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *TaskExecutionMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetCost sets the "cost" field.
func (m *TaskExecutionMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *TaskExecutionMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *TaskExecutionMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *TaskExecutionMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *TaskExecutionMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *TaskExecutionMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *TaskExecutionMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *TaskExecutionMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *TaskExecutionMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *TaskExecutionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetIterations sets the "iterations" field.
func (m *TaskExecutionMutation) SetIterations(i int) {
	m.iterations = &i
	m.additerations = nil
}

// Iterations returns the value of the "iterations" field in the mutation.
func (m *TaskExecutionMutation) Iterations() (r int, exists bool) {
	v := m.iterations
	if v == nil {
		return
	}
	return *v, true
}

// OldIterations returns the old "iterations" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldIterations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIterations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIterations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIterations: %w", err)
	}
	return oldValue.Iterations, nil
}

// AddIterations adds i to the "iterations" field.
func (m *TaskExecutionMutation) AddIterations(i int) {
	if m.additerations != nil {
		*m.additerations += i
	} else {
		m.additerations = &i
	}
}

// AddedIterations returns the value that was added to the "iterations" field in this mutation.
func (m *TaskExecutionMutation) AddedIterations() (r int, exists bool) {
	v := m.additerations
	if v == nil {
		return
	}
	return *v, true
}

// ResetIterations resets all changes to the "iterations" field.
func (m *TaskExecutionMutation) ResetIterations() {
	m.iterations = nil
	m.additerations = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the TaskExecution entity.
// If the TaskExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[taskexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[taskexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, taskexecution.FieldErrorMessage)
}

// ClearTask clears the "task" edge to the CodingTask entity.
func (m *TaskExecutionMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[taskexecution.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the CodingTask entity was cleared.
func (m *TaskExecutionMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskExecutionMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskExecutionMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TaskExecutionMutation builder.
func (m *TaskExecutionMutation) Where(ps ...predicate.TaskExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskExecution).
func (m *TaskExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskExecutionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.task != nil {
		fields = append(fields, taskexecution.FieldTaskID)
	}
	if m.strategy != nil {
		fields = append(fields, taskexecution.FieldStrategy)
	}
	if m.model != nil {
		fields = append(fields, taskexecution.FieldModel)
	}
	if m.started_at != nil {
		fields = append(fields, taskexecution.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, taskexecution.FieldFinishedAt)
	}
	if m.success != nil {
		fields = append(fields, taskexecution.FieldSuccess)
	}
	if m.tokens_used != nil {
		fields = append(fields, taskexecution.FieldTokensUsed)
	}
	if m.cost != nil {
		fields = append(fields, taskexecution.FieldCost)
	}
	if m.duration_ms != nil {
		fields = append(fields, taskexecution.FieldDurationMs)
	}
	if m.iterations != nil {
		fields = append(fields, taskexecution.FieldIterations)
	}
	if m.error_message != nil {
		fields = append(fields, taskexecution.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskexecution.FieldTaskID:
		return m.TaskID()
	case taskexecution.FieldStrategy:
		return m.Strategy()
	case taskexecution.FieldModel:
		return m.Model()
	case taskexecution.FieldStartedAt:
		return m.StartedAt()
	case taskexecution.FieldFinishedAt:
		return m.FinishedAt()
	case taskexecution.FieldSuccess:
		return m.Success()
	case taskexecution.FieldTokensUsed:
		return m.TokensUsed()
	case taskexecution.FieldCost:
		return m.Cost()
	case taskexecution.FieldDurationMs:
		return m.DurationMs()
	case taskexecution.FieldIterations:
		return m.Iterations()
	case taskexecution.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskexecution.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskexecution.FieldStrategy:
		return m.OldStrategy(ctx)
	case taskexecution.FieldModel:
		return m.OldModel(ctx)
	case taskexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case taskexecution.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case taskexecution.FieldSuccess:
		return m.OldSuccess(ctx)
	case taskexecution.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case taskexecution.FieldCost:
		return m.OldCost(ctx)
	case taskexecution.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case taskexecution.FieldIterations:
		return m.OldIterations(ctx)
	case taskexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown TaskExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskexecution.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskexecution.FieldStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategy(v)
		return nil
	case taskexecution.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case taskexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case taskexecution.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case taskexecution.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case taskexecution.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case taskexecution.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case taskexecution.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case taskexecution.FieldIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIterations(v)
		return nil
	case taskexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown TaskExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addtokens_used != nil {
		fields = append(fields, taskexecution.FieldTokensUsed)
	}
	if m.addcost != nil {
		fields = append(fields, taskexecution.FieldCost)
	}
	if m.addduration_ms != nil {
		fields = append(fields, taskexecution.FieldDurationMs)
	}
	if m.additerations != nil {
		fields = append(fields, taskexecution.FieldIterations)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskexecution.FieldTokensUsed:
		return m.AddedTokensUsed()
	case taskexecution.FieldCost:
		return m.AddedCost()
	case taskexecution.FieldDurationMs:
		return m.AddedDurationMs()
	case taskexecution.FieldIterations:
		return m.AddedIterations()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskexecution.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case taskexecution.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	case taskexecution.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case taskexecution.FieldIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIterations(v)
		return nil
	}
	return fmt.Errorf("unknown TaskExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskexecution.FieldModel) {
		fields = append(fields, taskexecution.FieldModel)
	}
	if m.FieldCleared(taskexecution.FieldFinishedAt) {
		fields = append(fields, taskexecution.FieldFinishedAt)
	}
	if m.FieldCleared(taskexecution.FieldErrorMessage) {
		fields = append(fields, taskexecution.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskExecutionMutation) ClearField(name string) error {
	switch name {
	case taskexecution.FieldModel:
		m.ClearModel()
		return nil
	case taskexecution.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case taskexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown TaskExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskExecutionMutation) ResetField(name string) error {
	switch name {
	case taskexecution.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskexecution.FieldStrategy:
		m.ResetStrategy()
		return nil
	case taskexecution.FieldModel:
		m.ResetModel()
		return nil
	case taskexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case taskexecution.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case taskexecution.FieldSuccess:
		m.ResetSuccess()
		return nil
	case taskexecution.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case taskexecution.FieldCost:
		m.ResetCost()
		return nil
	case taskexecution.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case taskexecution.FieldIterations:
		m.ResetIterations()
		return nil
	case taskexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown TaskExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, taskexecution.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskexecution.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, taskexecution.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case taskexecution.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskExecutionMutation) ClearEdge(name string) error {
	switch name {
	case taskexecution.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskExecutionMutation) ResetEdge(name string) error {
	switch name {
	case taskexecution.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TaskExecution edge %s", name)
}
