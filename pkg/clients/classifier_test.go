package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devflow-ai/devflow/pkg/httpx"
	"github.com/devflow-ai/devflow/pkg/models"
)

func testHTTPClient(name string) *httpx.Client {
	return httpx.New(name, httpx.Policy{
		MaxAttempts: 2,
		BaseDelay:   time.Millisecond,
		CallTimeout: time.Second,
	})
}

func TestClassifier_Classify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/classify/", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req models.ClassificationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "fix the login bug", req.TaskDescription)

		_ = json.NewEncoder(w).Encode(models.ClassificationResponse{
			TaskType:   models.TaskTypeBugFix,
			Complexity: models.ComplexitySimple,
			Confidence: 0.93,
		})
	}))
	defer srv.Close()

	c := newClassifierWithClient(srv.URL, testHTTPClient("ml-classifier"))

	resp, err := c.Classify(context.Background(), "fix the login bug")
	require.NoError(t, err)
	assert.Equal(t, models.TaskTypeBugFix, resp.TaskType)
	assert.Equal(t, models.ComplexitySimple, resp.Complexity)
	assert.InDelta(t, 0.93, resp.Confidence, 1e-9)
}

func TestClassifier_ClassifyServiceDown(t *testing.T) {
	srv := httptest.NewServer(nil)
	srv.Close()

	c := newClassifierWithClient(srv.URL, testHTTPClient("ml-classifier"))

	_, err := c.Classify(context.Background(), "anything")
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrServiceUnavailable)
}

func TestClassifier_IsAvailable(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	c := newClassifierWithClient(srv.URL, testHTTPClient("ml-classifier"))

	assert.True(t, c.IsAvailable(context.Background()))

	healthy.Store(false)
	assert.False(t, c.IsAvailable(context.Background()))
}

func TestClassifier_SubmitTrainingFeedback(t *testing.T) {
	var got models.TrainingFeedback
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/training/feedback", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := newClassifierWithClient(srv.URL, testHTTPClient("ml-classifier"))

	err := c.SubmitTrainingFeedback(context.Background(), models.TrainingFeedback{
		TaskDescription: "add csv export",
		TaskType:        models.TaskTypeFeature,
		Complexity:      models.ComplexityMedium,
		Success:         true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.TaskTypeFeature, got.TaskType)
	assert.True(t, got.Success)
}

func TestGitHub_CreatePullRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pulls", r.URL.Path)

		var in CreatePullRequestInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "devflow-ai", in.Owner)
		assert.Equal(t, "main", in.Base)

		_ = json.NewEncoder(w).Encode(PullRequest{
			Number:  42,
			URL:     "https://api.github.com/repos/devflow-ai/app/pulls/42",
			HTMLURL: "https://github.com/devflow-ai/app/pull/42",
			State:   "open",
		})
	}))
	defer srv.Close()

	g := newGitHubWithClient(srv.URL, testHTTPClient("github"))

	pr, err := g.CreatePullRequest(context.Background(), CreatePullRequestInput{
		Owner: "devflow-ai",
		Repo:  "app",
		Title: "Fix login crash",
		Head:  "devflow/task-1",
		Base:  "main",
	})
	require.NoError(t, err)
	assert.Equal(t, 42, pr.Number)
	assert.Equal(t, "open", pr.State)
}

func TestGitHub_CreatePullRequestRetriesThenFails(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := newGitHubWithClient(srv.URL, httpx.New("github", httpx.Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		CallTimeout: time.Second,
	}))

	_, err := g.CreatePullRequest(context.Background(), CreatePullRequestInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrServiceUnavailable)
	assert.Equal(t, int32(3), calls.Load())
}
