package llm

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

const defaultOllamaURL = "http://localhost:11434"

// OllamaClient calls a local Ollama server's generate API.
type OllamaClient struct {
	BaseURL     string
	Model       string
	Temperature float32
	client      *http.Client
}

// NewOllamaClient creates an OllamaClient.
func NewOllamaClient(cfg Config) *OllamaClient {
	base := cfg.BaseURL
	if base == "" {
		base = defaultOllamaURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &OllamaClient{
		BaseURL:     strings.TrimSuffix(base, "/"),
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		client:      &http.Client{Timeout: timeout},
	}
}

// ollamaRequest is the request body for the Ollama generate API.
type ollamaRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

// ollamaResponse is the non-streaming response body from the Ollama generate API.
type ollamaResponse struct {
	Response      string        `json:"response"`
	Done          bool          `json:"done"`
	TotalDuration time.Duration `json:"total_duration"`
}

// Generate sends prompt to /api/generate and returns the full reply.
func (c *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := ollamaRequest{
		Model:   c.Model,
		Prompt:  prompt,
		Options: map[string]any{"temperature": c.Temperature},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/generate", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling Ollama API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Ollama API returned %d: %s", resp.StatusCode, string(body))
	}

	var ollamaResp ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&ollamaResp); err != nil {
		return "", fmt.Errorf("decoding Ollama response: %w", err)
	}
	return ollamaResp.Response, nil
}
