// Package clients holds typed clients for the downstream services the
// orchestrator depends on: the ML classifier and the GitHub wrapper.
package clients

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/devflow-ai/devflow/pkg/config"
	"github.com/devflow-ai/devflow/pkg/httpx"
	"github.com/devflow-ai/devflow/pkg/models"
)

// Classifier talks to the ML classification service. The selector treats
// every error as a signal to fall back to the heuristic, so the retry policy
// here is deliberately tight.
type Classifier struct {
	baseURL string
	http    *httpx.Client
}

// NewClassifier builds the classifier client from configuration.
func NewClassifier(cfg config.ClassifierConfig) *Classifier {
	return &Classifier{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: httpx.New("ml-classifier", httpx.Policy{
			MaxAttempts: 2,
			BaseDelay:   50 * time.Millisecond,
			CallTimeout: cfg.Timeout(),
		}),
	}
}

// newClassifierWithClient is the test seam.
func newClassifierWithClient(baseURL string, hc *httpx.Client) *Classifier {
	return &Classifier{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Classify asks the service to label a task description.
func (c *Classifier) Classify(ctx context.Context, description string) (*models.ClassificationResponse, error) {
	req := models.ClassificationRequest{TaskDescription: description}
	var resp models.ClassificationResponse
	if err := c.http.PostJSON(ctx, c.baseURL+"/classify/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// IsAvailable probes the service health endpoint. It never returns an error;
// any failure reads as unavailable.
func (c *Classifier) IsAvailable(ctx context.Context) bool {
	if err := c.http.GetJSON(ctx, c.baseURL+"/health", nil); err != nil {
		slog.Debug("Classifier health probe failed", "error", err)
		return false
	}
	return true
}

// SubmitTrainingFeedback posts a labelled outcome for future retraining.
func (c *Classifier) SubmitTrainingFeedback(ctx context.Context, fb models.TrainingFeedback) error {
	return c.http.PostJSON(ctx, c.baseURL+"/training/feedback", fb, nil)
}

// TriggerRetrain asks the service to retrain its model.
func (c *Classifier) TriggerRetrain(ctx context.Context) error {
	return c.http.PostJSON(ctx, c.baseURL+"/training/retrain", nil, nil)
}
