package strategy

import (
	"fmt"
	"log/slog"

	"github.com/devflow-ai/devflow/pkg/models"
)

// mergeLastWriteWins folds coder results into one change set. Results must
// be in completion order; when two subtasks touched the same path, the later
// completion wins and the conflict is logged.
func mergeLastWriteWins(results []models.AgentResult) ([]models.CodeChange, []string) {
	byPath := make(map[string]int)
	var merged []models.CodeChange
	var conflicts []string

	for _, r := range results {
		for _, ch := range r.Changes {
			if idx, seen := byPath[ch.FilePath]; seen {
				conflicts = append(conflicts, fmt.Sprintf(
					"%s: %s overwrote earlier change", ch.FilePath, r.AgentName))
				slog.Info("Resolved file conflict last-write-wins",
					"path", ch.FilePath, "winner", r.AgentName)
				merged[idx] = ch
				continue
			}
			byPath[ch.FilePath] = len(merged)
			merged = append(merged, ch)
		}
	}

	return merged, conflicts
}
