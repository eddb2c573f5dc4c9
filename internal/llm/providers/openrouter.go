package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider implements the Provider interface against the
// OpenAI-compatible chat completions endpoint exposed by OpenRouter.
type OpenRouterProvider struct {
	baseURL string
	client  *http.Client
	config  *config.Config
	logger  logging.Logger
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewOpenRouterProvider creates a new OpenRouter provider instance
func NewOpenRouterProvider(cfg *config.Config) *OpenRouterProvider {
	baseURL := cfg.LLM.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	return &OpenRouterProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: cfg.LLM.Timeout,
		},
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Complete sends the prompt as a single user message and returns the reply
func (op *OpenRouterProvider) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: op.config.LLM.Model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   op.config.LLM.MaxTokens,
		Temperature: float64(op.config.LLM.Temperature),
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, op.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+op.config.LLM.APIKey)

	resp, err := op.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call OpenRouter API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read OpenRouter response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OpenRouter API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("failed to decode OpenRouter response: %w", err)
	}

	if completion.Error != nil {
		return "", fmt.Errorf("OpenRouter API error: %s", completion.Error.Message)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenRouter")
	}

	responseText := trimMarkdownFences(strings.TrimSpace(completion.Choices[0].Message.Content))
	if responseText == "" {
		return "", fmt.Errorf("no text content in OpenRouter response")
	}

	return responseText, nil
}

// IsHealthy verifies credentials by listing available models
func (op *OpenRouterProvider) IsHealthy(ctx context.Context) error {
	if op.config.LLM.APIKey == "" {
		return fmt.Errorf("OpenRouter API key not configured - set LLM_API_KEY environment variable")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(healthCtx, http.MethodGet, op.baseURL+"/models", nil)
	if err != nil {
		return fmt.Errorf("failed to create health check request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+op.config.LLM.APIKey)

	resp, err := op.client.Do(req)
	if err != nil {
		return fmt.Errorf("OpenRouter API health check failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("OpenRouter API health check returned status %d", resp.StatusCode)
	}

	return nil
}

// GetProviderName returns the name of the provider
func (op *OpenRouterProvider) GetProviderName() string {
	return "openrouter"
}
