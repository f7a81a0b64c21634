package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		CallTimeout: time.Second,
	}
}

func TestClient_PostJSON_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"echo":"hello"}`))
	}))
	defer srv.Close()

	c := New("test", testPolicy())

	var out struct {
		Echo string `json:"echo"`
	}
	err := c.PostJSON(context.Background(), srv.URL, map[string]string{"msg": "hello"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "hello", out.Echo)
}

func TestClient_RetriesOn5xxThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New("test", testPolicy())

	var out struct {
		OK bool `json:"ok"`
	}
	err := c.GetJSON(context.Background(), srv.URL, &out)
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_NoRetryOn4xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad input"}`))
	}))
	defer srv.Close()

	c := New("test", testPolicy())

	err := c.GetJSON(context.Background(), srv.URL, nil)
	require.Error(t, err)

	var remote *RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusBadRequest, remote.Status)
	assert.Equal(t, int32(1), calls.Load(), "4xx must not be retried")
	assert.NotErrorIs(t, err, ErrServiceUnavailable)
}

func TestClient_ExhaustedRetriesBecomeServiceUnavailable(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New("test", testPolicy())

	err := c.GetJSON(context.Background(), srv.URL, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_TransportFailureBecomesServiceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New("test", testPolicy())

	err := c.GetJSON(context.Background(), srv.URL, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestClient_PerCallTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New("test", Policy{
		MaxAttempts: 1,
		BaseDelay:   time.Millisecond,
		CallTimeout: 20 * time.Millisecond,
	})

	err := c.GetJSON(context.Background(), srv.URL, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClient_CancellationPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New("test", testPolicy())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := c.GetJSON(ctx, srv.URL, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrServiceUnavailable)

	// A cancellation must not trip the breaker.
	assert.Equal(t, BreakerClosed, c.BreakerState())
}

func TestClient_BreakerOpensAndFailsFast(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New("test", Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		CallTimeout: time.Second,
		Breaker: BreakerConfig{
			FailureThreshold: 3,
			SuccessThreshold: 1,
			Cooldown:         time.Hour,
		},
	})

	err := c.GetJSON(context.Background(), srv.URL, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Equal(t, BreakerOpen, c.BreakerState())

	served := calls.Load()

	// Second logical call fails fast without touching the server.
	err = c.GetJSON(context.Background(), srv.URL, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Equal(t, served, calls.Load())
}

func TestBreaker_HalfOpenRecovery(t *testing.T) {
	b := NewBreaker("dep", BreakerConfig{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Cooldown:         10 * time.Millisecond,
	})

	failure := errors.New("boom")
	b.Mark(failure)
	b.Mark(failure)
	require.Equal(t, BreakerOpen, b.State())
	require.Error(t, b.Allow())

	time.Sleep(15 * time.Millisecond)

	// Cooldown elapsed: probe allowed, success closes the circuit.
	require.NoError(t, b.Allow())
	require.Equal(t, BreakerHalfOpen, b.State())
	b.Mark(nil)
	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreaker_FailedProbeReopens(t *testing.T) {
	b := NewBreaker("dep", BreakerConfig{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Cooldown:         10 * time.Millisecond,
	})

	b.Mark(errors.New("boom"))
	require.Equal(t, BreakerOpen, b.State())

	time.Sleep(15 * time.Millisecond)
	require.NoError(t, b.Allow())
	b.Mark(errors.New("still down"))
	assert.Equal(t, BreakerOpen, b.State())
}
