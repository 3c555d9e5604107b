package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"reactivities/pkg/utils"
)

// apiEnvelope matches the response wrapper the activity service emits.
type apiEnvelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

// Client is the shared HTTP transport behind the ActivityAPI and UserAPI
// adapters. It holds the session token the user store sets after login and
// attaches it as a bearer credential on every request.
type Client struct {
	baseURL string
	httpc   *http.Client

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do issues one request and decodes the envelope's data payload into out
// (when out is non-nil). Transport failures surface as ErrRemoteUnavailable,
// failure responses as the matching sentinel or ErrServiceFailure.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: decoding %s %s: %v", utils.ErrServiceFailure, method, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return serviceError(resp.StatusCode, envelope.Message)
	}

	if out != nil && envelope.Data != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("%w: decoding %s %s: %v", utils.ErrServiceFailure, method, path, err)
		}
	}
	return nil
}

func serviceError(statusCode int, message string) error {
	switch statusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", utils.ErrActivityNotFound, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", utils.ErrInvalidCredentials, message)
	default:
		return fmt.Errorf("%w: %d %s", utils.ErrServiceFailure, statusCode, message)
	}
}
