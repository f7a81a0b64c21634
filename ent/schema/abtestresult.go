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

// ABTestResult holds one recorded outcome for an A/B test variant.
// The table is append-only.
type ABTestResult struct {
	ent.Schema
}

// Annotations of the ABTestResult.
func (ABTestResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ab_test_results"},
	}
}

// Fields of the ABTestResult.
func (ABTestResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("result_id").
			Unique().
			Immutable(),
		field.String("test_id").
			Immutable(),
		field.String("request_id").
			Immutable().
			Comment("The id the variant assignment was keyed on"),
		field.String("variant").
			Comment("Model name that served the request"),
		field.Bool("success"),
		field.Int64("duration_ms"),
		field.Int("tokens"),
		field.Float("cost"),
		field.Float("quality_score").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ABTestResult.
func (ABTestResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("test", ABTest.Type).
			Ref("results").
			Field("test_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ABTestResult.
func (ABTestResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("test_id", "variant"),
	}
}
