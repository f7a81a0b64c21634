package selector

import (
	"strings"

	"github.com/devflow-ai/devflow/pkg/models"
)

// Keyword sets for the fallback classifier. Word-count thresholds take over
// when no keyword matches.
var (
	complexKeywords = []string{"architecture", "refactor", "rewrite", "migration", "complex"}
	simpleKeywords  = []string{"fix", "typo", "small", "minor", "quick", "simple"}
)

const (
	complexWordCount = 100
	simpleWordCount  = 20
)

// classifyHeuristic is the keyword and word-count fallback used when the ML
// classifier is unreachable.
func classifyHeuristic(title, description string) models.Classification {
	text := strings.ToLower(title + " " + description)
	words := len(strings.Fields(description))

	complexity := models.ComplexityMedium
	switch {
	case containsAny(text, complexKeywords) || words > complexWordCount:
		complexity = models.ComplexityComplex
	case containsAny(text, simpleKeywords) || words < simpleWordCount:
		complexity = models.ComplexitySimple
	}

	return models.Classification{
		TaskType:   guessTaskType(text),
		Complexity: complexity,
		Confidence: 0.5,
		Source:     "heuristic",
	}
}

func guessTaskType(text string) models.TaskType {
	switch {
	case strings.Contains(text, "refactor"):
		return models.TaskTypeRefactor
	case strings.Contains(text, "fix") || strings.Contains(text, "bug") || strings.Contains(text, "crash"):
		return models.TaskTypeBugFix
	case strings.Contains(text, "test"):
		return models.TaskTypeTest
	case strings.Contains(text, "document") || strings.Contains(text, "readme") || strings.Contains(text, "docs"):
		return models.TaskTypeDocumentation
	case strings.Contains(text, "deploy") || strings.Contains(text, "release"):
		return models.TaskTypeDeployment
	default:
		return models.TaskTypeFeature
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
