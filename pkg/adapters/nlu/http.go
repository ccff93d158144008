package nlu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/weikanglim/OrderBot/pkg/domain"
)

// Client recognizes intents by calling a remote classification service. The
// service accepts {"text": ...} and answers with a Recognition document
// ({"top_intent", "confidence", "entities"}).
type Client struct {
	endpoint   string
	key        string
	httpClient *http.Client
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithKey sets the subscription key sent with every request.
func WithKey(key string) ClientOption {
	return func(c *Client) {
		c.key = key
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a recognizer client for the given endpoint.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type recognizeRequest struct {
	Text string `json:"text"`
}

// Recognize posts the utterance to the remote service.
func (c *Client) Recognize(ctx context.Context, text string) (domain.Recognition, error) {
	body, err := json.Marshal(recognizeRequest{Text: text})
	if err != nil {
		return domain.Recognition{}, fmt.Errorf("failed to marshal recognize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.Recognition{}, fmt.Errorf("failed to build recognize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.key != "" {
		req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Recognition{}, fmt.Errorf("recognize request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Recognition{}, fmt.Errorf("recognizer returned status %d", resp.StatusCode)
	}

	var rec domain.Recognition
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return domain.Recognition{}, fmt.Errorf("failed to decode recognize response: %w", err)
	}
	return rec, nil
}
