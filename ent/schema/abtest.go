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

// ABTest holds the schema definition for an A/B test comparing two models.
type ABTest struct {
	ent.Schema
}

// Annotations of the ABTest.
func (ABTest) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ab_tests"},
	}
}

// Fields of the ABTest.
func (ABTest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("test_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("model_a").
			Comment("Control model; non-test traffic always sees this"),
		field.String("model_b"),
		field.String("task_type").
			Optional().
			Comment("Empty matches every task type"),
		field.Int("traffic_percent").
			Comment("Share of requests entering the test, 0-100"),
		field.Int("min_samples").
			Default(30),
		field.Enum("status").
			Values("active", "completed", "cancelled").
			Default("active"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ends_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ABTest.
func (ABTest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("results", ABTestResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ABTest.
func (ABTest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
	}
}
