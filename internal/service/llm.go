package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pageza/mealprep-ai/backend/config"
)

const (
	DefaultModel       = "gpt-4o-mini"
	DefaultTemperature = 0.8
	DefaultMaxTokens   = 2500
)

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a request to the chat-completions API
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// LLMClient talks to an OpenAI-compatible chat-completions endpoint
type LLMClient struct {
	apiKey      string
	apiURL      string
	model       string
	temperature float64
	maxTokens   int
	client      *http.Client
}

// NewLLMClient creates an LLMClient from the loaded configuration
func NewLLMClient(cfg *config.Config) *LLMClient {
	timeout := cfg.OpenAITimeout
	if timeout == 0 {
		timeout = config.DefaultOpenAITimeout
	}

	apiURL := cfg.OpenAIAPIURL
	if apiURL == "" {
		apiURL = config.DefaultOpenAIAPIURL
	}

	return &LLMClient{
		apiKey:      cfg.OpenAIAPIKey,
		apiURL:      apiURL,
		model:       DefaultModel,
		temperature: DefaultTemperature,
		maxTokens:   DefaultMaxTokens,
		client:      &http.Client{Timeout: timeout},
	}
}

// Complete sends messages to the model and returns the first choice's content
func (c *LLMClient) Complete(ctx context.Context, messages []Message) (string, error) {
	reqBody := Request{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return result.Choices[0].Message.Content, nil
}
