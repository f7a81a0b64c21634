// Code generated by ent, DO NOT EDIT.

package modelmetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the modelmetric type in the database.
	Label = "model_metric"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "model_name"
	// FieldExecutions holds the string denoting the executions field in the database.
	FieldExecutions = "executions"
	// FieldSuccesses holds the string denoting the successes field in the database.
	FieldSuccesses = "successes"
	// FieldAvgTokens holds the string denoting the avg_tokens field in the database.
	FieldAvgTokens = "avg_tokens"
	// FieldAvgCost holds the string denoting the avg_cost field in the database.
	FieldAvgCost = "avg_cost"
	// FieldAvgDurationMs holds the string denoting the avg_duration_ms field in the database.
	FieldAvgDurationMs = "avg_duration_ms"
	// FieldAvgQuality holds the string denoting the avg_quality field in the database.
	FieldAvgQuality = "avg_quality"
	// FieldBuckets holds the string denoting the buckets field in the database.
	FieldBuckets = "buckets"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the modelmetric in the database.
	Table = "model_metrics"
)

// Columns holds all SQL columns for modelmetric fields.
var Columns = []string{
	FieldID,
	FieldExecutions,
	FieldSuccesses,
	FieldAvgTokens,
	FieldAvgCost,
	FieldAvgDurationMs,
	FieldAvgQuality,
	FieldBuckets,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultExecutions holds the default value on creation for the "executions" field.
	DefaultExecutions int
	// DefaultSuccesses holds the default value on creation for the "successes" field.
	DefaultSuccesses int
	// DefaultAvgTokens holds the default value on creation for the "avg_tokens" field.
	DefaultAvgTokens float64
	// DefaultAvgCost holds the default value on creation for the "avg_cost" field.
	DefaultAvgCost float64
	// DefaultAvgDurationMs holds the default value on creation for the "avg_duration_ms" field.
	DefaultAvgDurationMs float64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ModelMetric queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExecutions orders the results by the executions field.
func ByExecutions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutions, opts...).ToFunc()
}

// BySuccesses orders the results by the successes field.
func BySuccesses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccesses, opts...).ToFunc()
}

// ByAvgTokens orders the results by the avg_tokens field.
func ByAvgTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgTokens, opts...).ToFunc()
}

// ByAvgCost orders the results by the avg_cost field.
func ByAvgCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgCost, opts...).ToFunc()
}

// ByAvgDurationMs orders the results by the avg_duration_ms field.
func ByAvgDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgDurationMs, opts...).ToFunc()
}

// ByAvgQuality orders the results by the avg_quality field.
func ByAvgQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgQuality, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
