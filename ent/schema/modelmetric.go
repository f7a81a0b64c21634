package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// ModelMetric holds the persisted per-model performance aggregate.
// One row per model; the in-memory tracker writes through on every update so
// readers may snapshot atomically.
type ModelMetric struct {
	ent.Schema
}

// Annotations of the ModelMetric.
func (ModelMetric) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "model_metrics"},
	}
}

// Fields of the ModelMetric.
func (ModelMetric) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("model_name").
			Unique().
			Immutable(),
		field.Int("executions").
			Default(0),
		field.Int("successes").
			Default(0),
		field.Float("avg_tokens").
			Default(0),
		field.Float("avg_cost").
			Default(0),
		field.Float("avg_duration_ms").
			Default(0),
		field.Float("avg_quality").
			Optional().
			Nillable().
			Comment("Mean quality score in [1,10]; nil when never rated"),
		field.JSON("buckets", map[string]interface{}{}).
			Optional().
			Comment("Per-(task type, complexity) success-rate buckets"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
