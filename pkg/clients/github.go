package clients

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/devflow-ai/devflow/pkg/config"
	"github.com/devflow-ai/devflow/pkg/httpx"
)

// CreatePullRequestInput is the request to the GitHub wrapper service.
type CreatePullRequestInput struct {
	Owner   string `json:"owner"`
	Repo    string `json:"repo"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Head    string `json:"head"`
	Base    string `json:"base"`
	IsDraft bool   `json:"isDraft"`
}

// PullRequest is the wrapper service's view of a created PR.
type PullRequest struct {
	Number  int    `json:"number"`
	URL     string `json:"url"`
	HTMLURL string `json:"htmlUrl"`
	State   string `json:"state"`
}

// GitHub talks to the GitHub wrapper service. PR creation is a best-effort
// step after task completion, so callers log failures instead of failing the
// task.
type GitHub struct {
	baseURL string
	http    *httpx.Client
}

// NewGitHub builds the GitHub client from configuration.
func NewGitHub(cfg config.GitHubConfig) *GitHub {
	return &GitHub{
		baseURL: strings.TrimRight(cfg.ServiceURL, "/"),
		http: httpx.New("github", httpx.Policy{
			MaxAttempts: 3,
			BaseDelay:   200 * time.Millisecond,
			CallTimeout: cfg.Timeout(),
		}),
	}
}

// newGitHubWithClient is the test seam.
func newGitHubWithClient(baseURL string, hc *httpx.Client) *GitHub {
	return &GitHub{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// CreatePullRequest opens a pull request via the wrapper service.
func (g *GitHub) CreatePullRequest(ctx context.Context, in CreatePullRequestInput) (*PullRequest, error) {
	var pr PullRequest
	if err := g.http.PostJSON(ctx, g.baseURL+"/pulls", in, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

// IsAvailable probes the wrapper health endpoint. Never returns an error.
func (g *GitHub) IsAvailable(ctx context.Context) bool {
	if err := g.http.GetJSON(ctx, g.baseURL+"/health", nil); err != nil {
		slog.Debug("GitHub wrapper health probe failed", "error", err)
		return false
	}
	return true
}
