package abtest

import (
	"math"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/pkg/models"
)

// zCritical is the two-sided 95% confidence threshold.
const zCritical = 1.96

// summarize aggregates result rows per variant and decides significance.
func summarize(test *ent.ABTest, rows []*ent.ABTestResult) *models.ABTestResults {
	a := variantStats(test.ModelA, rows)
	b := variantStats(test.ModelB, rows)

	out := &models.ABTestResults{
		TestID:   test.ID,
		VariantA: a,
		VariantB: b,
	}

	if a.Samples < test.MinSamples || b.Samples < test.MinSamples {
		return out
	}

	out.ZScore = twoProportionZ(a.Successes, a.Samples, b.Successes, b.Samples)
	if math.Abs(out.ZScore) > zCritical {
		out.Significant = true
		if a.SuccessRate >= b.SuccessRate {
			out.Winner = a.Model
		} else {
			out.Winner = b.Model
		}
	}
	return out
}

func variantStats(model string, rows []*ent.ABTestResult) models.VariantStats {
	s := models.VariantStats{Model: model}
	var qualitySum float64
	var qualityCount int
	for _, r := range rows {
		if r.Variant != model {
			continue
		}
		s.Samples++
		if r.Success {
			s.Successes++
		}
		s.AvgDurationMs += float64(r.DurationMs)
		s.AvgTokens += float64(r.Tokens)
		s.AvgCost += r.Cost
		if r.QualityScore != nil {
			qualitySum += *r.QualityScore
			qualityCount++
		}
	}
	if s.Samples > 0 {
		n := float64(s.Samples)
		s.SuccessRate = float64(s.Successes) / n
		s.AvgDurationMs /= n
		s.AvgTokens /= n
		s.AvgCost /= n
	}
	if qualityCount > 0 {
		q := qualitySum / float64(qualityCount)
		s.AvgQuality = &q
	}
	return s
}

// twoProportionZ is the pooled two-proportion z statistic for the
// success-rate difference between the variants.
func twoProportionZ(s1, n1, s2, n2 int) float64 {
	if n1 == 0 || n2 == 0 {
		return 0
	}
	p1 := float64(s1) / float64(n1)
	p2 := float64(s2) / float64(n2)
	pooled := float64(s1+s2) / float64(n1+n2)
	se := math.Sqrt(pooled * (1 - pooled) * (1/float64(n1) + 1/float64(n2)))
	if se == 0 {
		return 0
	}
	return (p1 - p2) / se
}
