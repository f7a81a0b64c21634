// Package validate performs structural checks on proposed code changes
// before they are accepted into an execution result. Checks are best-effort
// and purely syntactic; semantic correctness is out of scope.
package validate

import (
	"fmt"
	"path"
	"strings"

	"github.com/devflow-ai/devflow/pkg/models"
)

// Result is the validator verdict for one change set.
type Result struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors,omitempty"`
}

// braceLanguages get a bracket-balance check. Other languages are path- and
// content-checked only.
var braceLanguages = map[string]bool{
	"go":         true,
	"java":       true,
	"javascript": true,
	"typescript": true,
	"c":          true,
	"cpp":        true,
	"csharp":     true,
	"rust":       true,
}

// Validate checks every change and collects all failures. Stateless and pure.
func Validate(changes []models.CodeChange) Result {
	var errs []string
	for i, ch := range changes {
		errs = append(errs, checkChange(i, ch)...)
	}
	return Result{Success: len(errs) == 0, Errors: errs}
}

func checkChange(i int, ch models.CodeChange) []string {
	var errs []string

	switch {
	case strings.TrimSpace(ch.FilePath) == "":
		errs = append(errs, fmt.Sprintf("change %d: empty file path", i))
	case !safePath(ch.FilePath):
		errs = append(errs, fmt.Sprintf("change %d: unsafe file path %q", i, ch.FilePath))
	}

	if ch.Kind == models.ChangeDelete {
		return errs
	}

	if strings.TrimSpace(ch.Content) == "" {
		errs = append(errs, fmt.Sprintf("change %d (%s): empty content", i, ch.FilePath))
		return errs
	}

	if strings.Contains(ch.Content, "```") {
		errs = append(errs, fmt.Sprintf("change %d (%s): markdown fence leaked into content", i, ch.FilePath))
	}

	if braceLanguages[strings.ToLower(ch.Language)] {
		if err := checkBalance(ch.Content); err != nil {
			errs = append(errs, fmt.Sprintf("change %d (%s): %v", i, ch.FilePath, err))
		}
	}

	return errs
}

// safePath rejects absolute paths and traversal outside the repository root.
func safePath(p string) bool {
	if strings.HasPrefix(p, "/") || strings.Contains(p, "\\") {
		return false
	}
	clean := path.Clean(p)
	return clean != ".." && !strings.HasPrefix(clean, "../")
}

// checkBalance verifies braces, brackets, and parentheses pair up, skipping
// string literals and line comments. Best-effort: it cannot see every
// language construct, so it only reports definite imbalances.
func checkBalance(content string) error {
	var stack []byte
	pairs := map[byte]byte{')': '(', ']': '[', '}': '{'}

	inString := byte(0)
	escaped := false
	inLineComment := false

	for i := 0; i < len(content); i++ {
		c := content[i]

		if inLineComment {
			if c == '\n' {
				inLineComment = false
			}
			continue
		}
		if inString != 0 {
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == inString || (inString == '`' && c == '`') {
				inString = 0
			}
			continue
		}

		switch c {
		case '"', '\'', '`':
			inString = c
		case '/':
			if i+1 < len(content) && content[i+1] == '/' {
				inLineComment = true
			}
		case '(', '[', '{':
			stack = append(stack, c)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != pairs[c] {
				return fmt.Errorf("unbalanced %q", string(c))
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		return fmt.Errorf("unbalanced %q", string(stack[len(stack)-1]))
	}
	return nil
}
