package abtest

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/pkg/models"
	"github.com/devflow-ai/devflow/test/util"
)

func activeTest(traffic int) *ent.ABTest {
	return &ent.ABTest{
		ID:             "test-1",
		Name:           "gpt-4o vs mini",
		ModelA:         "gpt-4o",
		ModelB:         "gpt-4o-mini",
		TrafficPercent: traffic,
		MinSamples:     30,
	}
}

func TestSelectVariant_Sticky(t *testing.T) {
	test := activeTest(50)

	model, inTest := SelectVariant(test, "req-42")
	for range 100 {
		m, in := SelectVariant(test, "req-42")
		assert.Equal(t, model, m)
		assert.Equal(t, inTest, in)
	}
}

func TestSelectVariant_ZeroTrafficAlwaysControl(t *testing.T) {
	test := activeTest(0)
	for i := range 200 {
		model, inTest := SelectVariant(test, fmt.Sprintf("req-%d", i))
		assert.Equal(t, "gpt-4o", model)
		assert.False(t, inTest)
	}
}

func TestSelectVariant_FullTrafficSplitsEvenly(t *testing.T) {
	test := activeTest(100)

	counts := map[string]int{}
	const n = 10000
	for i := range n {
		model, inTest := SelectVariant(test, fmt.Sprintf("req-%d", i))
		require.True(t, inTest)
		counts[model]++
	}

	assert.Equal(t, n, counts["gpt-4o"]+counts["gpt-4o-mini"])
	// Within 3% of a 50/50 split.
	assert.InDelta(t, n/2, counts["gpt-4o"], 0.03*n)
}

func TestSelectVariant_TrafficShareIsRespected(t *testing.T) {
	test := activeTest(10)

	var inTestCount int
	const n = 10000
	for i := range n {
		_, inTest := SelectVariant(test, fmt.Sprintf("req-%d", i))
		if inTest {
			inTestCount++
		}
	}
	// About 10% of requests enter the test.
	assert.InDelta(t, n/10, inTestCount, 0.03*n)
}

func TestSelectVariant_DiffersAcrossTests(t *testing.T) {
	a := activeTest(100)
	b := activeTest(100)
	b.ID = "test-2"

	// The assignment is keyed on (test, request); at least one of many
	// requests must land differently between the two tests.
	var differs bool
	for i := range 100 {
		reqID := fmt.Sprintf("req-%d", i)
		ma, _ := SelectVariant(a, reqID)
		mb, _ := SelectVariant(b, reqID)
		if ma != mb {
			differs = true
			break
		}
	}
	assert.True(t, differs)
}

func TestCreateTest_TrafficShare(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	e := NewEngine(client, 10)
	ctx := context.Background()

	// Unset traffic falls back to the engine default.
	defaulted, err := e.CreateTest(ctx, models.CreateABTestRequest{
		Name: "mini vs 4o", ModelA: "gpt-4o-mini", ModelB: "gpt-4o",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, defaulted.TrafficPercent)

	// An explicit 0 is honored: the whole request stream sees the control.
	zero := 0
	zeroed, err := e.CreateTest(ctx, models.CreateABTestRequest{
		Name: "dark launch", ModelA: "gpt-4o-mini", ModelB: "gpt-4o", TrafficPercent: &zero,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, zeroed.TrafficPercent)
	for i := range 100 {
		model, inTest := SelectVariant(zeroed, fmt.Sprintf("req-%d", i))
		assert.Equal(t, "gpt-4o-mini", model)
		assert.False(t, inTest)
	}

	over := 150
	_, err = e.CreateTest(ctx, models.CreateABTestRequest{
		Name: "bad", ModelA: "gpt-4o-mini", ModelB: "gpt-4o", TrafficPercent: &over,
	})
	assert.Error(t, err)
}

func resultRows(test *ent.ABTest, variant string, successes, failures int) []*ent.ABTestResult {
	var rows []*ent.ABTestResult
	for i := 0; i < successes+failures; i++ {
		rows = append(rows, &ent.ABTestResult{
			TestID:     test.ID,
			Variant:    variant,
			Success:    i < successes,
			DurationMs: 1000,
			Tokens:     500,
			Cost:       0.01,
		})
	}
	return rows
}

func TestSummarize_NoSignificanceBelowSampleFloor(t *testing.T) {
	test := activeTest(50)
	rows := append(
		resultRows(test, "gpt-4o", 20, 9),
		resultRows(test, "gpt-4o-mini", 10, 19)...,
	)

	res := summarize(test, rows)
	assert.Equal(t, 29, res.VariantA.Samples)
	assert.Zero(t, res.ZScore)
	assert.False(t, res.Significant)
	assert.Empty(t, res.Winner)
}

func TestSummarize_DeclaresWinner(t *testing.T) {
	test := activeTest(50)
	// 90% vs 50% over 50 samples each is decisive.
	rows := append(
		resultRows(test, "gpt-4o", 45, 5),
		resultRows(test, "gpt-4o-mini", 25, 25)...,
	)

	res := summarize(test, rows)
	assert.True(t, res.Significant)
	assert.Equal(t, "gpt-4o", res.Winner)
	assert.Greater(t, math.Abs(res.ZScore), zCritical)
	assert.InDelta(t, 0.9, res.VariantA.SuccessRate, 1e-9)
	assert.InDelta(t, 0.5, res.VariantB.SuccessRate, 1e-9)
}

func TestSummarize_CloseRatesNotSignificant(t *testing.T) {
	test := activeTest(50)
	rows := append(
		resultRows(test, "gpt-4o", 35, 15),
		resultRows(test, "gpt-4o-mini", 33, 17)...,
	)

	res := summarize(test, rows)
	assert.False(t, res.Significant)
	assert.Empty(t, res.Winner)
}

func TestSummarize_QualityAveragedWhenPresent(t *testing.T) {
	test := activeTest(50)
	q := 7.0
	rows := []*ent.ABTestResult{
		{TestID: test.ID, Variant: "gpt-4o", Success: true, QualityScore: &q},
		{TestID: test.ID, Variant: "gpt-4o", Success: true},
	}

	res := summarize(test, rows)
	require.NotNil(t, res.VariantA.AvgQuality)
	assert.InDelta(t, 7.0, *res.VariantA.AvgQuality, 1e-9)
	assert.Nil(t, res.VariantB.AvgQuality)
}

func TestTwoProportionZ(t *testing.T) {
	// Identical proportions give z = 0.
	assert.Zero(t, twoProportionZ(25, 50, 25, 50))
	// Degenerate pools give z = 0 rather than NaN.
	assert.Zero(t, twoProportionZ(50, 50, 50, 50))
	assert.Zero(t, twoProportionZ(0, 0, 10, 20))
	// Direction follows the first variant.
	assert.Positive(t, twoProportionZ(45, 50, 25, 50))
	assert.Negative(t, twoProportionZ(25, 50, 45, 50))
}
