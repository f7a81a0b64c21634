// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/devflow-ai/devflow/ent/modelmetric"
)

// ModelMetric is the model entity for the ModelMetric schema.
type ModelMetric struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Executions holds the value of the "executions" field.
	Executions int `json:"executions,omitempty"`
	// Successes holds the value of the "successes" field.
	Successes int `json:"successes,omitempty"`
	// AvgTokens holds the value of the "avg_tokens" field.
	AvgTokens float64 `json:"avg_tokens,omitempty"`
	// AvgCost holds the value of the "avg_cost" field.
	AvgCost float64 `json:"avg_cost,omitempty"`
	// AvgDurationMs holds the value of the "avg_duration_ms" field.
	AvgDurationMs float64 `json:"avg_duration_ms,omitempty"`
	// Mean quality score in [1,10]; nil when never rated
	AvgQuality *float64 `json:"avg_quality,omitempty"`
	// Per-(task type, complexity) success-rate buckets
	Buckets map[string]interface{} `json:"buckets,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ModelMetric) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case modelmetric.FieldBuckets:
			values[i] = new([]byte)
		case modelmetric.FieldAvgTokens, modelmetric.FieldAvgCost, modelmetric.FieldAvgDurationMs, modelmetric.FieldAvgQuality:
			values[i] = new(sql.NullFloat64)
		case modelmetric.FieldExecutions, modelmetric.FieldSuccesses:
			values[i] = new(sql.NullInt64)
		case modelmetric.FieldID:
			values[i] = new(sql.NullString)
		case modelmetric.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ModelMetric fields.
func (_m *ModelMetric) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case modelmetric.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case modelmetric.FieldExecutions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field executions", values[i])
			} else if value.Valid {
				_m.Executions = int(value.Int64)
			}
		case modelmetric.FieldSuccesses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field successes", values[i])
			} else if value.Valid {
				_m.Successes = int(value.Int64)
			}
		case modelmetric.FieldAvgTokens:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_tokens", values[i])
			} else if value.Valid {
				_m.AvgTokens = value.Float64
			}
		case modelmetric.FieldAvgCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_cost", values[i])
			} else if value.Valid {
				_m.AvgCost = value.Float64
			}
		case modelmetric.FieldAvgDurationMs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_duration_ms", values[i])
			} else if value.Valid {
				_m.AvgDurationMs = value.Float64
			}
		case modelmetric.FieldAvgQuality:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_quality", values[i])
			} else if value.Valid {
				_m.AvgQuality = new(float64)
				*_m.AvgQuality = value.Float64
			}
		case modelmetric.FieldBuckets:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field buckets", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Buckets); err != nil {
					return fmt.Errorf("unmarshal field buckets: %w", err)
				}
			}
		case modelmetric.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ModelMetric.
// This includes values selected through modifiers, order, etc.
func (_m *ModelMetric) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ModelMetric.
// Note that you need to call ModelMetric.Unwrap() before calling this method if this ModelMetric
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ModelMetric) Update() *ModelMetricUpdateOne {
	return NewModelMetricClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ModelMetric entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ModelMetric) Unwrap() *ModelMetric {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ModelMetric is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ModelMetric) String() string {
	var builder strings.Builder
	builder.WriteString("ModelMetric(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("executions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Executions))
	builder.WriteString(", ")
	builder.WriteString("successes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Successes))
	builder.WriteString(", ")
	builder.WriteString("avg_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgTokens))
	builder.WriteString(", ")
	builder.WriteString("avg_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgCost))
	builder.WriteString(", ")
	builder.WriteString("avg_duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgDurationMs))
	builder.WriteString(", ")
	if v := _m.AvgQuality; v != nil {
		builder.WriteString("avg_quality=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("buckets=")
	builder.WriteString(fmt.Sprintf("%v", _m.Buckets))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ModelMetrics is a parsable slice of ModelMetric.
type ModelMetrics []*ModelMetric
