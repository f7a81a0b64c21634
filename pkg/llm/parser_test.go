package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/pkg/models"
)

func TestParseChanges_SingleFile(t *testing.T) {
	output := "Here is the fix:\n\n" +
		"FILE: pkg/auth/login.go\n" +
		"```go\n" +
		"package auth\n\nfunc Login() {}\n" +
		"```\n"

	changes, warnings := ParseChanges(output)
	require.Empty(t, warnings)
	require.Len(t, changes, 1)
	assert.Equal(t, "pkg/auth/login.go", changes[0].FilePath)
	assert.Equal(t, "go", changes[0].Language)
	assert.Equal(t, "package auth\n\nfunc Login() {}", changes[0].Content)
	assert.Equal(t, models.ChangeModify, changes[0].Kind)
}

func TestParseChanges_MultipleFiles(t *testing.T) {
	output := "FILE: a.py\n" +
		"```python\nprint('a')\n```\n" +
		"Some commentary between blocks.\n" +
		"FILE: b.py\n" +
		"```python\nprint('b')\n```\n"

	changes, warnings := ParseChanges(output)
	require.Empty(t, warnings)
	require.Len(t, changes, 2)
	assert.Equal(t, "a.py", changes[0].FilePath)
	assert.Equal(t, "print('a')", changes[0].Content)
	assert.Equal(t, "b.py", changes[1].FilePath)
	assert.Equal(t, "print('b')", changes[1].Content)
}

func TestParseChanges_LanguageInferredFromExtension(t *testing.T) {
	output := "FILE: README.md\n" +
		"```\n# Title\n```\n"

	changes, warnings := ParseChanges(output)
	require.Empty(t, warnings)
	require.Len(t, changes, 1)
	assert.Equal(t, "markdown", changes[0].Language)
}

func TestParseChanges_UnmatchedDirectiveDropped(t *testing.T) {
	output := "FILE: present.go\n" +
		"```go\npackage main\n```\n" +
		"FILE: missing.go\n" +
		"No code block follows.\n"

	changes, warnings := ParseChanges(output)
	require.Len(t, changes, 1)
	assert.Equal(t, "present.go", changes[0].FilePath)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "missing.go")
}

func TestParseChanges_FenceBeforeDirectiveIgnored(t *testing.T) {
	output := "```go\npackage stray\n```\n" +
		"FILE: real.go\n" +
		"```go\npackage real\n```\n"

	changes, warnings := ParseChanges(output)
	require.Empty(t, warnings)
	require.Len(t, changes, 1)
	assert.Equal(t, "real.go", changes[0].FilePath)
	assert.Equal(t, "package real", changes[0].Content)
}

func TestParseChanges_NoDirectives(t *testing.T) {
	changes, warnings := ParseChanges("Just prose, no files here.\n```go\ncode\n```\n")
	assert.Empty(t, changes)
	assert.Empty(t, warnings)
}

func TestParseChanges_SharedFenceClaimedOnce(t *testing.T) {
	// Two directives, one block: the first claims it, the second is dropped.
	output := "FILE: one.go\n" +
		"FILE: two.go\n" +
		"```go\npackage shared\n```\n"

	changes, warnings := ParseChanges(output)
	require.Len(t, changes, 1)
	assert.Equal(t, "one.go", changes[0].FilePath)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "two.go")
}
