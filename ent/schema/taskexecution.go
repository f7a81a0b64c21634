package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskExecution holds the schema definition for the TaskExecution entity,
// one attempt at fulfilling a task via a strategy.
type TaskExecution struct {
	ent.Schema
}

// Annotations of the TaskExecution.
func (TaskExecution) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "task_executions"},
	}
}

// Fields of the TaskExecution.
func (TaskExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable().
			Comment("Back-reference to the owning task"),
		field.String("strategy").
			Comment("Strategy name resolved at queue time"),
		field.String("model").
			Optional().
			Comment("Model selected for the run"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.Bool("success").
			Default(false),
		field.Int("tokens_used").
			Default(0),
		field.Float("cost").
			Default(0),
		field.Int64("duration_ms").
			Default(0),
		field.Int("iterations").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the TaskExecution.
func (TaskExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", CodingTask.Type).
			Ref("executions").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TaskExecution.
func (TaskExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("started_at"),
	}
}
