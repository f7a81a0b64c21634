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

// CodingTask holds the schema definition for the CodingTask entity, the unit
// of work submitted by a user.
type CodingTask struct {
	ent.Schema
}

// Annotations of the CodingTask.
func (CodingTask) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "coding_tasks"},
	}
}

// Fields of the CodingTask.
func (CodingTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Owning user"),
		field.String("title"),
		field.Text("description"),
		field.Enum("type").
			Values("bug_fix", "feature", "refactor", "documentation", "test", "deployment").
			Optional().
			Comment("Set by classification; empty until classified"),
		field.Enum("complexity").
			Values("simple", "medium", "complex", "epic").
			Optional().
			Comment("Must be set before the task enters in_progress"),
		field.Enum("status").
			Values("pending", "classifying", "in_progress", "completed", "failed", "cancelled").
			Default("pending"),
		field.Int("pr_number").
			Optional().
			Nillable(),
		field.String("pr_url").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the CodingTask.
func (CodingTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("executions", TaskExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("feedback", Feedback.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the CodingTask.
func (CodingTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("status"),
	}
}
