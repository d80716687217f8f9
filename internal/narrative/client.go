// Package narrative turns the most recent game into free-form coaching
// prose via the Anthropic messages API. The call is best effort: a missing
// key yields a fixed placeholder and a failed call yields a short inline
// error, never an aborted run.
package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/skillet-labs/chessdash/internal/domains/entities"
)

const (
	defaultBaseUrl = "https://api.anthropic.com"
	defaultModel   = "claude-sonnet-4-20250514"

	apiVersion = "2023-06-01"
	maxTokens  = 1000

	// errorTextLimit caps how much of a failure message leaks into the
	// rendered document.
	errorTextLimit = 100
)

const placeholderText = "Analysis unavailable: no API key configured."

type Client struct {
	http    *http.Client
	baseUrl *url.URL
	apiKey  string
	model   string
}

func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	baseUrl, _ := url.Parse(defaultBaseUrl)
	return &Client{
		http:    &http.Client{Timeout: 60 * time.Second},
		baseUrl: baseUrl,
		apiKey:  apiKey,
		model:   model,
	}
}

// NewClientWithBaseUrl is used by tests to point the client at a stub
// server.
func NewClientWithBaseUrl(rawUrl, apiKey, model string) (*Client, error) {
	baseUrl, err := url.Parse(rawUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base url: %w", err)
	}
	client := NewClient(apiKey, model)
	client.baseUrl = baseUrl
	return client, nil
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// AnalyzeGame returns commentary on the given game. The returned string is
// always renderable; failures are folded into it.
func (client *Client) AnalyzeGame(ctx context.Context, game entities.Game, username string) string {
	if client.apiKey == "" {
		return placeholderText
	}
	text, err := client.complete(ctx, buildPrompt(game, username))
	if err != nil {
		msg := err.Error()
		if len(msg) > errorTextLimit {
			msg = msg[:errorTextLimit]
		}
		return fmt.Sprintf("Analysis error: %s", msg)
	}
	return text
}

func (client *Client) complete(ctx context.Context, prompt string) (string, error) {
	body := new(bytes.Buffer)
	err := json.NewEncoder(body).Encode(messagesRequest{
		Model:     client.model,
		MaxTokens: maxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode body: %w", err)
	}

	u := client.baseUrl.JoinPath("v1", "messages")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", client.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := client.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode body: %w", err)
	}
	if len(parsed.Content) == 0 {
		return "", fmt.Errorf("empty completion")
	}
	return parsed.Content[0].Text, nil
}
