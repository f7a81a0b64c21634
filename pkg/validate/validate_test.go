package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/pkg/models"
)

func TestValidate_CleanChanges(t *testing.T) {
	result := Validate([]models.CodeChange{
		{
			FilePath: "pkg/auth/login.go",
			Language: "go",
			Content:  "package auth\n\nfunc Login() error {\n\treturn nil\n}\n",
			Kind:     models.ChangeModify,
		},
		{
			FilePath: "docs/README.md",
			Language: "markdown",
			Content:  "# Title\n",
			Kind:     models.ChangeCreate,
		},
	})

	assert.True(t, result.Success)
	assert.Empty(t, result.Errors)
}

func TestValidate_EmptySetSucceeds(t *testing.T) {
	assert.True(t, Validate(nil).Success)
}

func TestValidate_PathChecks(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "empty path", path: ""},
		{name: "absolute path", path: "/etc/passwd"},
		{name: "traversal", path: "../../secrets.txt"},
		{name: "hidden traversal", path: "pkg/../../escape.go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate([]models.CodeChange{{
				FilePath: tt.path,
				Content:  "x",
				Kind:     models.ChangeModify,
			}})
			assert.False(t, result.Success)
			require.Len(t, result.Errors, 1)
		})
	}
}

func TestValidate_EmptyContentRejectedUnlessDelete(t *testing.T) {
	result := Validate([]models.CodeChange{{
		FilePath: "a.go",
		Kind:     models.ChangeModify,
	}})
	assert.False(t, result.Success)

	result = Validate([]models.CodeChange{{
		FilePath: "a.go",
		Kind:     models.ChangeDelete,
	}})
	assert.True(t, result.Success)
}

func TestValidate_UnbalancedBrace(t *testing.T) {
	result := Validate([]models.CodeChange{{
		FilePath: "broken.go",
		Language: "go",
		Content:  "package main\n\nfunc main() {\n\tif true {\n}\n",
		Kind:     models.ChangeModify,
	}})

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "unbalanced")
}

func TestValidate_BracesInsideStringsIgnored(t *testing.T) {
	result := Validate([]models.CodeChange{{
		FilePath: "ok.go",
		Language: "go",
		Content:  "package main\n\nvar s = \"{ not a brace }\"\nvar t = \"}}}\"\n",
		Kind:     models.ChangeModify,
	}})

	assert.True(t, result.Success, "errors: %v", result.Errors)
}

func TestValidate_BracesInLineCommentsIgnored(t *testing.T) {
	result := Validate([]models.CodeChange{{
		FilePath: "ok.go",
		Language: "go",
		Content:  "package main\n\n// } stray close in comment\nfunc f() {}\n",
		Kind:     models.ChangeModify,
	}})

	assert.True(t, result.Success, "errors: %v", result.Errors)
}

func TestValidate_FenceLeakDetected(t *testing.T) {
	result := Validate([]models.CodeChange{{
		FilePath: "leak.py",
		Language: "python",
		Content:  "```python\nprint('oops')\n```\n",
		Kind:     models.ChangeModify,
	}})

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "fence")
}

func TestValidate_NonBraceLanguageSkipsBalance(t *testing.T) {
	result := Validate([]models.CodeChange{{
		FilePath: "notes.md",
		Language: "markdown",
		Content:  "Unmatched { brace in prose is fine",
		Kind:     models.ChangeModify,
	}})

	assert.True(t, result.Success)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	result := Validate([]models.CodeChange{
		{FilePath: "", Content: "x", Kind: models.ChangeModify},
		{FilePath: "b.go", Language: "go", Content: "func f() {", Kind: models.ChangeModify},
	})

	assert.False(t, result.Success)
	assert.Len(t, result.Errors, 2)
}
