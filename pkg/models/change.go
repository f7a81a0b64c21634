package models

// ChangeKind says how a CodeChange applies to its file.
type ChangeKind string

// Change kind constants.
const (
	ChangeCreate ChangeKind = "create"
	ChangeModify ChangeKind = "modify"
	ChangeDelete ChangeKind = "delete"
)

// CodeChange is a proposed modification to a single file. Content holds the
// full new file body; it may be empty only for deletes.
type CodeChange struct {
	FilePath string     `json:"file_path"`
	Language string     `json:"language"`
	Content  string     `json:"content"`
	Kind     ChangeKind `json:"kind"`
}

// ContextFile is one repository file handed to a strategy as context.
type ContextFile struct {
	Path     string `json:"path"`
	Language string `json:"language"`
	Content  string `json:"content"`
}

// TaskExecutionContext carries the file set relevant to a run. The
// coordinator loads it before invoking the strategy.
type TaskExecutionContext struct {
	ExecutionID string        `json:"execution_id"`
	Model       string        `json:"model"`
	Files       []ContextFile `json:"files"`
}
