package events

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskChannel(t *testing.T) {
	assert.Equal(t, "task:task-1", TaskChannel("task-1"))
}

func TestInjectEventID(t *testing.T) {
	payload, err := json.Marshal(TaskCreatedPayload{
		Type:      EventTypeTaskCreated,
		TaskID:    "task-1",
		UserID:    "user-1",
		Title:     "Fix login crash",
		Timestamp: time.Now(),
	})
	require.NoError(t, err)

	out, err := injectEventID(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.EqualValues(t, 42, m["event_id"])
	assert.Equal(t, EventTypeTaskCreated, m["type"])
	assert.Equal(t, "task-1", m["task_id"])
}

func TestInjectEventID_InvalidJSON(t *testing.T) {
	_, err := injectEventID([]byte("{not json"), 1)
	assert.Error(t, err)
}

func TestTruncateIfNeeded(t *testing.T) {
	small := `{"type":"task.created"}`
	assert.Equal(t, small, truncateIfNeeded(small))

	big := `{"errors":"` + strings.Repeat("x", notifyPayloadLimit) + `"}`
	out := truncateIfNeeded(big)
	assert.LessOrEqual(t, len(out), notifyPayloadLimit)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, true, m["truncated"])
}
