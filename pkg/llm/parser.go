package llm

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/devflow-ai/devflow/pkg/models"
)

// parseTimeout bounds the regex scan so pathological output cannot hang a
// strategy. On expiry the parser degrades to "no changes".
const parseTimeout = 2 * time.Second

var (
	fileDirectiveRe = regexp.MustCompile(`(?m)^FILE:[ \t]*(\S[^\r\n]*?)[ \t]*$`)
	fenceRe         = regexp.MustCompile("(?ms)^```([A-Za-z0-9+_.-]*)[ \t]*\r?\n(.*?)\r?\n?^```[ \t]*$")
)

// ParseChanges extracts code changes from LLM output. Each FILE: directive
// binds to the nearest subsequent fenced code block; the language comes from
// the fence tag, else from the file extension. Unmatched directives are
// reported as warnings and dropped, never errors.
func ParseChanges(output string) ([]models.CodeChange, []string) {
	type result struct {
		changes  []models.CodeChange
		warnings []string
	}

	done := make(chan result, 1)
	go func() {
		changes, warnings := scanChanges(output)
		done <- result{changes: changes, warnings: warnings}
	}()

	select {
	case r := <-done:
		return r.changes, r.warnings
	case <-time.After(parseTimeout):
		slog.Warn("Change parse timed out, dropping output", "output_bytes", len(output))
		return nil, []string{fmt.Sprintf("parse timed out after %s", parseTimeout)}
	}
}

func scanChanges(output string) ([]models.CodeChange, []string) {
	directives := fileDirectiveRe.FindAllStringSubmatchIndex(output, -1)
	if len(directives) == 0 {
		return nil, nil
	}
	fences := fenceRe.FindAllStringSubmatchIndex(output, -1)

	var changes []models.CodeChange
	var warnings []string

	nextFence := 0
	for _, d := range directives {
		path := output[d[2]:d[3]]

		// Advance past fences that start before this directive ends; they
		// belong to an earlier directive or to prose.
		for nextFence < len(fences) && fences[nextFence][0] < d[1] {
			nextFence++
		}
		if nextFence >= len(fences) {
			warnings = append(warnings, fmt.Sprintf("unmatched FILE directive for %q", path))
			slog.Warn("Dropping unmatched FILE directive", "path", path)
			continue
		}

		f := fences[nextFence]
		nextFence++

		lang := output[f[2]:f[3]]
		if lang == "" {
			lang = inferLanguage(path)
		}

		changes = append(changes, models.CodeChange{
			FilePath: path,
			Language: lang,
			Content:  output[f[4]:f[5]],
			Kind:     models.ChangeModify,
		})
	}

	return changes, warnings
}

var extLanguages = map[string]string{
	".go":   "go",
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".tsx":  "typescript",
	".java": "java",
	".rb":   "ruby",
	".rs":   "rust",
	".c":    "c",
	".h":    "c",
	".cpp":  "cpp",
	".cs":   "csharp",
	".md":   "markdown",
	".yaml": "yaml",
	".yml":  "yaml",
	".json": "json",
	".sh":   "bash",
	".sql":  "sql",
	".html": "html",
	".css":  "css",
}

func inferLanguage(path string) string {
	return extLanguages[strings.ToLower(filepath.Ext(path))]
}
