// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AbTestsColumns holds the columns for the "ab_tests" table.
	AbTestsColumns = []*schema.Column{
		{Name: "test_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "model_a", Type: field.TypeString},
		{Name: "model_b", Type: field.TypeString},
		{Name: "task_type", Type: field.TypeString, Nullable: true},
		{Name: "traffic_percent", Type: field.TypeInt},
		{Name: "min_samples", Type: field.TypeInt, Default: 30},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "cancelled"}, Default: "active"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ends_at", Type: field.TypeTime, Nullable: true},
	}
	// AbTestsTable holds the schema information for the "ab_tests" table.
	AbTestsTable = &schema.Table{
		Name:       "ab_tests",
		Columns:    AbTestsColumns,
		PrimaryKey: []*schema.Column{AbTestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "abtest_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{AbTestsColumns[7], AbTestsColumns[8]},
			},
		},
	}
	// AbTestResultsColumns holds the columns for the "ab_test_results" table.
	AbTestResultsColumns = []*schema.Column{
		{Name: "result_id", Type: field.TypeString, Unique: true},
		{Name: "request_id", Type: field.TypeString},
		{Name: "variant", Type: field.TypeString},
		{Name: "success", Type: field.TypeBool},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "tokens", Type: field.TypeInt},
		{Name: "cost", Type: field.TypeFloat64},
		{Name: "quality_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "test_id", Type: field.TypeString},
	}
	// AbTestResultsTable holds the schema information for the "ab_test_results" table.
	AbTestResultsTable = &schema.Table{
		Name:       "ab_test_results",
		Columns:    AbTestResultsColumns,
		PrimaryKey: []*schema.Column{AbTestResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ab_test_results_ab_tests_results",
				Columns:    []*schema.Column{AbTestResultsColumns[9]},
				RefColumns: []*schema.Column{AbTestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "abtestresult_test_id_variant",
				Unique:  false,
				Columns: []*schema.Column{AbTestResultsColumns[9], AbTestResultsColumns[2]},
			},
		},
	}
	// CodingTasksColumns holds the columns for the "coding_tasks" table.
	CodingTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "type", Type: field.TypeEnum, Nullable: true, Enums: []string{"bug_fix", "feature", "refactor", "documentation", "test", "deployment"}},
		{Name: "complexity", Type: field.TypeEnum, Nullable: true, Enums: []string{"simple", "medium", "complex", "epic"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "classifying", "in_progress", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "pr_number", Type: field.TypeInt, Nullable: true},
		{Name: "pr_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// CodingTasksTable holds the schema information for the "coding_tasks" table.
	CodingTasksTable = &schema.Table{
		Name:       "coding_tasks",
		Columns:    CodingTasksColumns,
		PrimaryKey: []*schema.Column{CodingTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "codingtask_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CodingTasksColumns[1], CodingTasksColumns[9]},
			},
			{
				Name:    "codingtask_status",
				Unique:  false,
				Columns: []*schema.Column{CodingTasksColumns[6]},
			},
		},
	}
	// FeedbackColumns holds the columns for the "feedback" table.
	FeedbackColumns = []*schema.Column{
		{Name: "feedback_id", Type: field.TypeString, Unique: true},
		{Name: "execution_id", Type: field.TypeString, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "sentiment", Type: field.TypeEnum, Enums: []string{"positive", "negative", "neutral"}},
		{Name: "rating", Type: field.TypeFloat64},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// FeedbackTable holds the schema information for the "feedback" table.
	FeedbackTable = &schema.Table{
		Name:       "feedback",
		Columns:    FeedbackColumns,
		PrimaryKey: []*schema.Column{FeedbackColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "feedback_coding_tasks_feedback",
				Columns:    []*schema.Column{FeedbackColumns[8]},
				RefColumns: []*schema.Column{CodingTasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "feedback_task_id",
				Unique:  false,
				Columns: []*schema.Column{FeedbackColumns[8]},
			},
		},
	}
	// ModelMetricsColumns holds the columns for the "model_metrics" table.
	ModelMetricsColumns = []*schema.Column{
		{Name: "model_name", Type: field.TypeString, Unique: true},
		{Name: "executions", Type: field.TypeInt, Default: 0},
		{Name: "successes", Type: field.TypeInt, Default: 0},
		{Name: "avg_tokens", Type: field.TypeFloat64, Default: 0},
		{Name: "avg_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "avg_duration_ms", Type: field.TypeFloat64, Default: 0},
		{Name: "avg_quality", Type: field.TypeFloat64, Nullable: true},
		{Name: "buckets", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ModelMetricsTable holds the schema information for the "model_metrics" table.
	ModelMetricsTable = &schema.Table{
		Name:       "model_metrics",
		Columns:    ModelMetricsColumns,
		PrimaryKey: []*schema.Column{ModelMetricsColumns[0]},
	}
	// TaskExecutionsColumns holds the columns for the "task_executions" table.
	TaskExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "strategy", Type: field.TypeString},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "cost", Type: field.TypeFloat64, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "iterations", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "task_id", Type: field.TypeString},
	}
	// TaskExecutionsTable holds the schema information for the "task_executions" table.
	TaskExecutionsTable = &schema.Table{
		Name:       "task_executions",
		Columns:    TaskExecutionsColumns,
		PrimaryKey: []*schema.Column{TaskExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_executions_coding_tasks_executions",
				Columns:    []*schema.Column{TaskExecutionsColumns[11]},
				RefColumns: []*schema.Column{CodingTasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskexecution_task_id",
				Unique:  false,
				Columns: []*schema.Column{TaskExecutionsColumns[11]},
			},
			{
				Name:    "taskexecution_started_at",
				Unique:  false,
				Columns: []*schema.Column{TaskExecutionsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AbTestsTable,
		AbTestResultsTable,
		CodingTasksTable,
		FeedbackTable,
		ModelMetricsTable,
		TaskExecutionsTable,
	}
)

func init() {
	AbTestsTable.Annotation = &entsql.Annotation{
		Table: "ab_tests",
	}
	AbTestResultsTable.ForeignKeys[0].RefTable = AbTestsTable
	AbTestResultsTable.Annotation = &entsql.Annotation{
		Table: "ab_test_results",
	}
	CodingTasksTable.Annotation = &entsql.Annotation{
		Table: "coding_tasks",
	}
	FeedbackTable.ForeignKeys[0].RefTable = CodingTasksTable
	FeedbackTable.Annotation = &entsql.Annotation{
		Table: "feedback",
	}
	ModelMetricsTable.Annotation = &entsql.Annotation{
		Table: "model_metrics",
	}
	TaskExecutionsTable.ForeignKeys[0].RefTable = CodingTasksTable
	TaskExecutionsTable.Annotation = &entsql.Annotation{
		Table: "task_executions",
	}
}
