package stash

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const defaultHTTPTimeout = 30 * time.Second

// ErrNotFound indicates the server answered the query but the named scene
// does not exist.
var ErrNotFound = errors.New("scene not found")

// QueryError carries the protocol-level error list of a GraphQL response.
type QueryError struct {
	Messages []string
}

func (e *QueryError) Error() string {
	if len(e.Messages) == 0 {
		return "graphql query failed"
	}
	return fmt.Sprintf("graphql query failed: %s", strings.Join(e.Messages, "; "))
}

// Client performs read-only GraphQL queries against a Stash-compatible
// server. All operations are idempotent and safe to retry.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

// NewClient builds a client for the given GraphQL endpoint. The API key is
// optional and sent as the ApiKey header when present.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: defaultHTTPTimeout},
	}
}

type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// query posts a GraphQL document and decodes the data payload into out.
// Transport failures, non-2xx statuses, and protocol error lists are all
// surfaced as errors.
func (c *Client) query(ctx context.Context, doc string, vars map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(request{Query: doc, Variables: vars})
	if err != nil {
		return fmt.Errorf("encode query: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("ApiKey", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("query %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("graphql endpoint error: %s (%s)", resp.Status, strings.TrimSpace(string(snippet)))
	}

	var envelope response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, entry := range envelope.Errors {
			messages = append(messages, entry.Message)
		}
		return &QueryError{Messages: messages}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}
