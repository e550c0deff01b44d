package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to an Ollama-compatible model server over its
// non-streaming generate endpoint.
type Client struct {
	baseURL      string
	model        string
	temperature  float64
	maxTokens    int
	systemPrompt string
	http         *http.Client
}

// Reply is one model response. Thinking carries the model's reasoning
// trace when the server exposes one; it is shown in a separate panel.
type Reply struct {
	Response string
	Thinking string
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type generateResponse struct {
	Response string `json:"response"`
	Thinking string `json:"thinking"`
	Error    string `json:"error"`
}

// NewClient builds a client from cfg.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		model:        cfg.Model,
		temperature:  cfg.Temperature,
		maxTokens:    cfg.MaxTokens,
		systemPrompt: cfg.SystemPrompt,
		http:         &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

// Generate sends prompt to the model, prefixed with the system prompt,
// and returns the reply. Errors carry enough context to show in the
// transcript.
func (c *Client) Generate(ctx context.Context, prompt string) (Reply, error) {
	full := prompt
	if c.systemPrompt != "" {
		full = c.systemPrompt + "\n\nUser message: " + prompt
	}

	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: full,
		Stream: false,
		Options: generateOptions{
			Temperature: c.temperature,
			NumPredict:  c.maxTokens,
		},
	})
	if err != nil {
		return Reply{}, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return Reply{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Reply{}, fmt.Errorf("calling %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return Reply{}, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Reply{}, fmt.Errorf("model server returned %s: %s", resp.Status, snippet(data))
	}

	var out generateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return Reply{}, fmt.Errorf("decoding response: %w", err)
	}
	if out.Error != "" {
		return Reply{}, fmt.Errorf("model server error: %s", out.Error)
	}
	if out.Response == "" {
		out.Response = "(no response generated)"
	}
	return Reply{Response: out.Response, Thinking: out.Thinking}, nil
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
