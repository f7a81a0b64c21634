package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/ent"
	"github.com/devflow-ai/devflow/pkg/models"
	"github.com/devflow-ai/devflow/test/util"
)

type recordingMemory struct {
	outcomes map[string][]bool
	err      error
}

func (m *recordingMemory) RecordOutcome(_ context.Context, procedureID string, success bool) error {
	if m.err != nil {
		return m.err
	}
	if m.outcomes == nil {
		m.outcomes = make(map[string][]bool)
	}
	m.outcomes[procedureID] = append(m.outcomes[procedureID], success)
	return nil
}

type fakeRetrainer struct {
	calls int
	err   error
}

func (f *fakeRetrainer) TriggerRetrain(context.Context) error {
	f.calls++
	return f.err
}

func newFeedbackService(t *testing.T, memory ProcedureMemory, retrainer RetrainTrigger, minSamples int) (*FeedbackService, *ent.Client, *ent.CodingTask) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	task, err := client.CodingTask.Create().
		SetID("task-1").
		SetUserID("user-1").
		SetTitle("Fix login crash").
		SetDescription("crash on expired cookie").
		Save(context.Background())
	require.NoError(t, err)
	return NewFeedbackService(client, memory, retrainer, minSamples), client, task
}

func feedbackReq(taskID string, sentiment models.Sentiment, procedureID string) models.RecordFeedbackRequest {
	req := models.RecordFeedbackRequest{
		TaskID:    taskID,
		UserID:    "user-1",
		Sentiment: sentiment,
		Rating:    0.8,
	}
	if procedureID != "" {
		req.Context = map[string]any{"procedure_id": procedureID}
	}
	return req
}

func TestFeedbackService_Record(t *testing.T) {
	svc, client, task := newFeedbackService(t, nil, nil, 0)

	fb, err := svc.Record(context.Background(), models.RecordFeedbackRequest{
		TaskID:    task.ID,
		UserID:    "user-1",
		Sentiment: models.SentimentPositive,
		Rating:    0.9,
		Reason:    "changes were exactly right",
	})
	require.NoError(t, err)
	assert.Equal(t, task.ID, fb.TaskID)

	count, err := client.Feedback.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFeedbackService_RecordValidation(t *testing.T) {
	svc, _, task := newFeedbackService(t, nil, nil, 0)

	cases := []models.RecordFeedbackRequest{
		{UserID: "u", Sentiment: models.SentimentPositive, Rating: 0.5},
		{TaskID: task.ID, Sentiment: models.SentimentPositive, Rating: 0.5},
		{TaskID: task.ID, UserID: "u", Sentiment: "meh", Rating: 0.5},
		{TaskID: task.ID, UserID: "u", Sentiment: models.SentimentPositive, Rating: 1.5},
	}
	for _, req := range cases {
		_, err := svc.Record(context.Background(), req)
		assert.True(t, IsValidationError(err), "request %+v", req)
	}
}

func TestFeedbackService_RecordUnknownTask(t *testing.T) {
	svc, _, _ := newFeedbackService(t, nil, nil, 0)

	_, err := svc.Record(context.Background(), feedbackReq("missing", models.SentimentPositive, ""))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFeedbackService_RecordUpdatesProcedureMemory(t *testing.T) {
	memory := &recordingMemory{}
	svc, _, task := newFeedbackService(t, memory, nil, 0)

	_, err := svc.Record(context.Background(), feedbackReq(task.ID, models.SentimentPositive, "proc-1"))
	require.NoError(t, err)
	_, err = svc.Record(context.Background(), feedbackReq(task.ID, models.SentimentNegative, "proc-1"))
	require.NoError(t, err)

	assert.Equal(t, []bool{true, false}, memory.outcomes["proc-1"])
}

func TestFeedbackService_MemoryFailureIsNotFatal(t *testing.T) {
	memory := &recordingMemory{err: errors.New("memory store down")}
	svc, _, task := newFeedbackService(t, memory, nil, 0)

	_, err := svc.Record(context.Background(), feedbackReq(task.ID, models.SentimentPositive, "proc-1"))
	assert.NoError(t, err)
}

func TestFeedbackService_AnalyzePatterns(t *testing.T) {
	svc, _, task := newFeedbackService(t, nil, nil, 0)

	// proc-1: 4/5 positive (significant), proc-2: 2/4 positive (not).
	for i := range 5 {
		s := models.SentimentPositive
		if i == 4 {
			s = models.SentimentNegative
		}
		_, err := svc.Record(context.Background(), feedbackReq(task.ID, s, "proc-1"))
		require.NoError(t, err)
	}
	for i := range 4 {
		s := models.SentimentPositive
		if i%2 == 1 {
			s = models.SentimentNegative
		}
		_, err := svc.Record(context.Background(), feedbackReq(task.ID, s, "proc-2"))
		require.NoError(t, err)
	}
	// Feedback without a procedure id counts toward samples only.
	_, err := svc.Record(context.Background(), feedbackReq(task.ID, models.SentimentNeutral, ""))
	require.NoError(t, err)

	analysis, err := svc.AnalyzePatterns(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, analysis.Samples)
	require.Len(t, analysis.Patterns, 2)

	byID := map[string]models.ProcedurePattern{}
	for _, p := range analysis.Patterns {
		byID[p.ProcedureID] = p
	}
	assert.True(t, byID["proc-1"].Significant)
	assert.InDelta(t, 0.8, byID["proc-1"].SuccessRate, 1e-9)
	assert.False(t, byID["proc-2"].Significant)
	assert.InDelta(t, 0.5, byID["proc-2"].SuccessRate, 1e-9)
}

func TestFeedbackService_UpdateModelParameters(t *testing.T) {
	retrainer := &fakeRetrainer{}
	svc, _, task := newFeedbackService(t, nil, retrainer, 5)

	// Below the sample floor: no trigger even with a strong pattern.
	for range 3 {
		_, err := svc.Record(context.Background(), feedbackReq(task.ID, models.SentimentPositive, "proc-1"))
		require.NoError(t, err)
	}
	assert.False(t, svc.UpdateModelParameters(context.Background()))
	assert.Zero(t, retrainer.calls)

	for range 3 {
		_, err := svc.Record(context.Background(), feedbackReq(task.ID, models.SentimentPositive, "proc-1"))
		require.NoError(t, err)
	}
	assert.True(t, svc.UpdateModelParameters(context.Background()))
	assert.Equal(t, 1, retrainer.calls)
}

func TestFeedbackService_UpdateModelParametersNeedsSignificance(t *testing.T) {
	retrainer := &fakeRetrainer{}
	svc, _, task := newFeedbackService(t, nil, retrainer, 4)

	// Six samples at exactly 50%: large enough, not significant.
	for i := range 6 {
		s := models.SentimentPositive
		if i%2 == 1 {
			s = models.SentimentNegative
		}
		_, err := svc.Record(context.Background(), feedbackReq(task.ID, s, "proc-1"))
		require.NoError(t, err)
	}
	assert.False(t, svc.UpdateModelParameters(context.Background()))
	assert.Zero(t, retrainer.calls)
}

func TestFeedbackService_RetrainFailureIsLoggedOnly(t *testing.T) {
	retrainer := &fakeRetrainer{err: errors.New("classifier down")}
	svc, _, task := newFeedbackService(t, nil, retrainer, 2)

	for range 3 {
		_, err := svc.Record(context.Background(), feedbackReq(task.ID, models.SentimentPositive, "proc-1"))
		require.NoError(t, err)
	}
	assert.False(t, svc.UpdateModelParameters(context.Background()))
	assert.Equal(t, 1, retrainer.calls)
}
