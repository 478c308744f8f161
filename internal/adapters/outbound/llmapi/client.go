// Package llmapi is a thin client for OpenAI-compatible chat completions APIs.
//
// Transport failures are classified into domain errors: rate limits,
// timeouts and connection failures become domain.TransientErr and every
// other non-2xx response becomes domain.UpstreamErr.
package llmapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/cleitonmarx/moneypilot/internal/common"
	"github.com/cleitonmarx/moneypilot/internal/domain"
)

const CHAT_COMPLETIONS_PATH = "chat/completions"

// Client performs chat completion requests.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a new client. The http client is copied so that the
// timeout applies to this client only; a non-positive timeout keeps the
// http client's own.
func NewClient(baseURL, apiKey string, httpClient *http.Client, timeout time.Duration) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	hc := *httpClient
	if timeout > 0 {
		hc.Timeout = timeout
	}
	return Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &hc,
	}
}

// ChatCompletions sends a non-streaming chat completion request.
func (c Client) ChatCompletions(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		return nil, domain.NewValidationErr("model is required")
	}
	if len(req.Messages) == 0 {
		return nil, domain.NewValidationErr("messages are required")
	}

	httpReq, err := c.newPostRequest(ctx, CHAT_COMPLETIONS_PATH, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, classifyTransportErr(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportErr(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyStatus(resp, respBody)
	}

	var out ChatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &out, nil
}

func (c Client) newPostRequest(ctx context.Context, path string, body any) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}

func classifyTransportErr(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return domain.NewTransientErr(domain.TransientKind_Timeout, fmt.Sprintf("LLM API request timed out: %v", err), err)
	}
	return domain.NewTransientErr(domain.TransientKind_Connection, fmt.Sprintf("LLM API connection failed: %v", err), err)
}

func classifyStatus(resp *http.Response, body []byte) error {
	detail := common.Preview(string(body), common.LOG_PREVIEW_LENGTH)
	var apiErr errorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
		detail = apiErr.Error.Message
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return domain.NewTransientErr(domain.TransientKind_RateLimit, fmt.Sprintf("LLM API rate limit exceeded: %s", detail), nil)
	case http.StatusRequestTimeout:
		return domain.NewTransientErr(domain.TransientKind_Timeout, fmt.Sprintf("LLM API request timed out: %s", detail), nil)
	default:
		return domain.NewUpstreamErr(resp.StatusCode, fmt.Sprintf("non-2xx response: %s: %s", resp.Status, detail))
	}
}
