// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/devflow-ai/devflow/ent/abtest"
)

// ABTest is the model entity for the ABTest schema.
type ABTest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Control model; non-test traffic always sees this
	ModelA string `json:"model_a,omitempty"`
	// ModelB holds the value of the "model_b" field.
	ModelB string `json:"model_b,omitempty"`
	// Empty matches every task type
	TaskType string `json:"task_type,omitempty"`
	// Share of requests entering the test, 0-100
	TrafficPercent int `json:"traffic_percent,omitempty"`
	// MinSamples holds the value of the "min_samples" field.
	MinSamples int `json:"min_samples,omitempty"`
	// Status holds the value of the "status" field.
	Status abtest.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// EndsAt holds the value of the "ends_at" field.
	EndsAt *time.Time `json:"ends_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ABTestQuery when eager-loading is set.
	Edges        ABTestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ABTestEdges holds the relations/edges for other nodes in the graph.
type ABTestEdges struct {
	// Results holds the value of the results edge.
	Results []*ABTestResult `json:"results,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ResultsOrErr returns the Results value or an error if the edge
// was not loaded in eager-loading.
func (e ABTestEdges) ResultsOrErr() ([]*ABTestResult, error) {
	if e.loadedTypes[0] {
		return e.Results, nil
	}
	return nil, &NotLoadedError{edge: "results"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ABTest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case abtest.FieldTrafficPercent, abtest.FieldMinSamples:
			values[i] = new(sql.NullInt64)
		case abtest.FieldID, abtest.FieldName, abtest.FieldModelA, abtest.FieldModelB, abtest.FieldTaskType, abtest.FieldStatus:
			values[i] = new(sql.NullString)
		case abtest.FieldStartedAt, abtest.FieldEndsAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ABTest fields.
func (_m *ABTest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case abtest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case abtest.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case abtest.FieldModelA:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_a", values[i])
			} else if value.Valid {
				_m.ModelA = value.String
			}
		case abtest.FieldModelB:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_b", values[i])
			} else if value.Valid {
				_m.ModelB = value.String
			}
		case abtest.FieldTaskType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_type", values[i])
			} else if value.Valid {
				_m.TaskType = value.String
			}
		case abtest.FieldTrafficPercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field traffic_percent", values[i])
			} else if value.Valid {
				_m.TrafficPercent = int(value.Int64)
			}
		case abtest.FieldMinSamples:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_samples", values[i])
			} else if value.Valid {
				_m.MinSamples = int(value.Int64)
			}
		case abtest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = abtest.Status(value.String)
			}
		case abtest.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case abtest.FieldEndsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ends_at", values[i])
			} else if value.Valid {
				_m.EndsAt = new(time.Time)
				*_m.EndsAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ABTest.
// This includes values selected through modifiers, order, etc.
func (_m *ABTest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryResults queries the "results" edge of the ABTest entity.
func (_m *ABTest) QueryResults() *ABTestResultQuery {
	return NewABTestClient(_m.config).QueryResults(_m)
}

// Update returns a builder for updating this ABTest.
// Note that you need to call ABTest.Unwrap() before calling this method if this ABTest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ABTest) Update() *ABTestUpdateOne {
	return NewABTestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ABTest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ABTest) Unwrap() *ABTest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ABTest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ABTest) String() string {
	var builder strings.Builder
	builder.WriteString("ABTest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("model_a=")
	builder.WriteString(_m.ModelA)
	builder.WriteString(", ")
	builder.WriteString("model_b=")
	builder.WriteString(_m.ModelB)
	builder.WriteString(", ")
	builder.WriteString("task_type=")
	builder.WriteString(_m.TaskType)
	builder.WriteString(", ")
	builder.WriteString("traffic_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrafficPercent))
	builder.WriteString(", ")
	builder.WriteString("min_samples=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinSamples))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndsAt; v != nil {
		builder.WriteString("ends_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ABTests is a parsable slice of ABTest.
type ABTests []*ABTest
