package llm

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
)

func testConfig(baseURL string) Config {
	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	return cfg
}

func TestHTTPClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.2", req.Model)
		assert.False(t, req.Stream)
		assert.Equal(t, "system prompt", req.System)
		assert.Equal(t, "user prompt", req.Prompt)

		resp := generateResponse{
			Model:    "llama3.2",
			Response: `{"strategies":[]}`,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewHTTPClient(testConfig(srv.URL), NoopObserver{})
	text, err := client.Generate(context.Background(), TaskAdvise, "system prompt", "user prompt")

	require.NoError(t, err)
	assert.Equal(t, `{"strategies":[]}`, text)
}

func TestHTTPClient_Generate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Tasks = map[Task]TaskConfig{
		TaskAdvise: {Temperature: 0.4, MaxTokens: 512, TimeoutMs: 50},
	}

	client := NewHTTPClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), TaskAdvise, "", "test")

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestHTTPClient_Generate_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1") // nothing listening
	cfg.Tasks = map[Task]TaskConfig{
		TaskAdvise: {Temperature: 0.4, MaxTokens: 512, TimeoutMs: 1000},
	}

	client := NewHTTPClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), TaskAdvise, "", "test")

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_Generate_ServerErrorMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("model crashed"))
	}))
	defer srv.Close()

	client := NewHTTPClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), TaskAdvise, "", "test")

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_Generate_ClientErrorIsPlain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("unknown model"))
	}))
	defer srv.Close()

	client := NewHTTPClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), TaskAdvise, "", "test")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "status 400")
}

func TestHTTPClient_Generate_ExactlyOneAttempt(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewHTTPClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), TaskAdvise, "", "test")

	assert.Error(t, err)
	assert.Equal(t, int32(1), attempts.Load(), "failed calls must not be retried")
}

func TestHTTPClient_Generate_DisabledWithoutEndpoint(t *testing.T) {
	client := NewHTTPClient(DefaultConfig(), NoopObserver{})
	_, err := client.Generate(context.Background(), TaskAdvise, "", "test")

	assert.ErrorIs(t, err, ErrDisabled)
}

func TestHTTPClient_Healthy_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(testConfig(srv.URL), NoopObserver{})
	assert.NoError(t, client.Healthy(context.Background()))
}

func TestHTTPClient_Healthy_Unreachable(t *testing.T) {
	client := NewHTTPClient(testConfig("http://127.0.0.1:1"), NoopObserver{})
	assert.ErrorIs(t, client.Healthy(context.Background()), ErrUnavailable)
}

func TestHTTPClient_ObserverSeesBothPhases(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := generateResponse{Model: "llama3.2", Response: "ok"}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	var started, finished CallEvent
	obs := &captureObserver{
		onStart:  func(e CallEvent) { started = e },
		onFinish: func(e CallEvent) { finished = e },
	}

	client := NewHTTPClient(testConfig(srv.URL), obs)
	_, err := client.Generate(context.Background(), TaskAdvise, "", "test")

	require.NoError(t, err)
	assert.Equal(t, TaskAdvise, started.Task)
	assert.Equal(t, "llama3.2", started.Model)
	assert.True(t, finished.Success)
	assert.GreaterOrEqual(t, finished.Duration, time.Duration(0))
}

func TestHTTPClient_ObserverTimeoutErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Tasks = map[Task]TaskConfig{
		TaskAdvise: {Temperature: 0.4, MaxTokens: 512, TimeoutMs: 50},
	}

	var finished CallEvent
	obs := &captureObserver{onFinish: func(e CallEvent) { finished = e }}
	client := NewHTTPClient(cfg, obs)

	_, err := client.Generate(context.Background(), TaskAdvise, "", "test")

	assert.ErrorIs(t, err, ErrTimeout)
	assert.False(t, finished.Success)
	assert.Equal(t, "TIMEOUT", finished.ErrorCode)
}

func TestDisabledClient(t *testing.T) {
	client := Disabled{}

	_, err := client.Generate(context.Background(), TaskAdvise, "", "test")
	assert.ErrorIs(t, err, ErrDisabled)
	assert.ErrorIs(t, client.Healthy(context.Background()), ErrDisabled)
}

type captureObserver struct {
	onStart  func(CallEvent)
	onFinish func(CallEvent)
}

func (o *captureObserver) CallStarted(e CallEvent) {
	if o.onStart != nil {
		o.onStart(e)
	}
}

func (o *captureObserver) CallFinished(e CallEvent) {
	if o.onFinish != nil {
		o.onFinish(e)
	}
}
