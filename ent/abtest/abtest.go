// Code generated by ent, DO NOT EDIT.

package abtest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the abtest type in the database.
	Label = "ab_test"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "test_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldModelA holds the string denoting the model_a field in the database.
	FieldModelA = "model_a"
	// FieldModelB holds the string denoting the model_b field in the database.
	FieldModelB = "model_b"
	// FieldTaskType holds the string denoting the task_type field in the database.
	FieldTaskType = "task_type"
	// FieldTrafficPercent holds the string denoting the traffic_percent field in the database.
	FieldTrafficPercent = "traffic_percent"
	// FieldMinSamples holds the string denoting the min_samples field in the database.
	FieldMinSamples = "min_samples"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndsAt holds the string denoting the ends_at field in the database.
	FieldEndsAt = "ends_at"
	// EdgeResults holds the string denoting the results edge name in mutations.
	EdgeResults = "results"
	// ABTestResultFieldID holds the string denoting the ID field of the ABTestResult.
	ABTestResultFieldID = "result_id"
	// Table holds the table name of the abtest in the database.
	Table = "ab_tests"
	// ResultsTable is the table that holds the results relation/edge.
	ResultsTable = "ab_test_results"
	// ResultsInverseTable is the table name for the ABTestResult entity.
	// It exists in this package in order to avoid circular dependency with the "abtestresult" package.
	ResultsInverseTable = "ab_test_results"
	// ResultsColumn is the table column denoting the results relation/edge.
	ResultsColumn = "test_id"
)

// Columns holds all SQL columns for abtest fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldModelA,
	FieldModelB,
	FieldTaskType,
	FieldTrafficPercent,
	FieldMinSamples,
	FieldStatus,
	FieldStartedAt,
	FieldEndsAt,
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
	// DefaultMinSamples holds the default value on creation for the "min_samples" field.
	DefaultMinSamples int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("abtest: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ABTest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByModelA orders the results by the model_a field.
func ByModelA(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelA, opts...).ToFunc()
}

// ByModelB orders the results by the model_b field.
func ByModelB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelB, opts...).ToFunc()
}

// ByTaskType orders the results by the task_type field.
func ByTaskType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskType, opts...).ToFunc()
}

// ByTrafficPercent orders the results by the traffic_percent field.
func ByTrafficPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrafficPercent, opts...).ToFunc()
}

// ByMinSamples orders the results by the min_samples field.
func ByMinSamples(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinSamples, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndsAt orders the results by the ends_at field.
func ByEndsAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndsAt, opts...).ToFunc()
}

// ByResultsCount orders the results by results count.
func ByResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newResultsStep(), opts...)
	}
}

// ByResults orders the results by results terms.
func ByResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResultsInverseTable, ABTestResultFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
	)
}
