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

// Feedback holds user feedback on a task or a specific execution.
// The table is append-only.
type Feedback struct {
	ent.Schema
}

// Annotations of the Feedback.
func (Feedback) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "feedback"},
	}
}

// Fields of the Feedback.
func (Feedback) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("feedback_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("execution_id").
			Optional().
			Nillable(),
		field.String("user_id"),
		field.Enum("sentiment").
			Values("positive", "negative", "neutral"),
		field.Float("rating").
			Comment("Normalized to [0,1]"),
		field.String("reason").
			Optional().
			Nillable(),
		field.JSON("context", map[string]interface{}{}).
			Optional().
			Comment("Free-form context, e.g. procedure_id for memory updates"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Feedback.
func (Feedback) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", CodingTask.Type).
			Ref("feedback").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Feedback.
func (Feedback) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
	}
}
