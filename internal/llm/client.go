package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Client provides access to the advisor model for text generation.
type Client interface {
	// Generate sends one system/user prompt pair and returns the raw text
	// response. Exactly one attempt is made per call; on any failure the
	// caller is expected to take its deterministic path instead.
	Generate(ctx context.Context, task Task, system, prompt string) (string, error)

	// Healthy reports whether the advisor endpoint is reachable.
	Healthy(ctx context.Context) error
}

var (
	_ Client = (*HTTPClient)(nil)
	_ Client = Disabled{}
)

// HTTPClient implements Client against an Ollama-compatible HTTP API.
type HTTPClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPClient creates a Client that talks to the configured endpoint.
func NewHTTPClient(cfg Config, observer Observer) *HTTPClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &HTTPClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// generateRequest is the JSON body sent to POST /api/generate.
type generateRequest struct {
	Model   string          `json:"model"`
	System  string          `json:"system,omitempty"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options,omitempty"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// generateResponse is the JSON body returned by POST /api/generate
// (non-streaming).
type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (c *HTTPClient) Generate(ctx context.Context, task Task, system, prompt string) (string, error) {
	if !c.cfg.Enabled() {
		return "", ErrDisabled
	}

	model := c.cfg.TaskModel(task)
	taskCfg := c.cfg.Tasks[task]
	start := time.Now()
	c.observer.CallStarted(CallEvent{Task: task, Model: model})

	timeoutMs := c.cfg.TaskTimeout(task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	body := generateRequest{
		Model:  model,
		System: system,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: taskCfg.Temperature,
			NumPredict:  taskCfg.MaxTokens,
		},
	}

	resp, err := c.doRequest(ctx, body)
	if err != nil {
		if ctx.Err() != nil {
			err = ErrTimeout
		} else if isConnectionError(err) {
			err = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		c.observer.CallFinished(CallEvent{
			Task:      task,
			Model:     model,
			Duration:  time.Since(start),
			Success:   false,
			ErrorCode: errorCode(err),
		})
		return "", err
	}

	c.observer.CallFinished(CallEvent{
		Task:     task,
		Model:    model,
		Duration: time.Since(start),
		Success:  true,
	})
	return resp.Response, nil
}

func (c *HTTPClient) doRequest(ctx context.Context, body generateRequest) (*generateResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.BaseURL + "/api/generate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, httpResp.StatusCode, string(respBody))
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("advisor endpoint returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp generateResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &resp, nil
}

func (c *HTTPClient) Healthy(ctx context.Context) error {
	if !c.cfg.Enabled() {
		return ErrDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	url := c.cfg.BaseURL + "/api/tags"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

// Disabled is the Client used when no advisor endpoint is configured.
// Every call reports ErrDisabled.
type Disabled struct{}

func (Disabled) Generate(context.Context, Task, string, string) (string, error) {
	return "", ErrDisabled
}

func (Disabled) Healthy(context.Context) error {
	return ErrDisabled
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.Is(err, ErrDisabled):
		return "DISABLED"
	default:
		return "UNKNOWN"
	}
}
