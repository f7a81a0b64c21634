// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ABTest is the predicate function for abtest builders.
type ABTest func(*sql.Selector)

// ABTestResult is the predicate function for abtestresult builders.
type ABTestResult func(*sql.Selector)

// CodingTask is the predicate function for codingtask builders.
type CodingTask func(*sql.Selector)

// Feedback is the predicate function for feedback builders.
type Feedback func(*sql.Selector)

// ModelMetric is the predicate function for modelmetric builders.
type ModelMetric func(*sql.Selector)

// TaskExecution is the predicate function for taskexecution builders.
type TaskExecution func(*sql.Selector)
