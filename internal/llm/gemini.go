package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/closetarchive/archivist/internal/common"
)

const defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta"

// GeminiConfig configures one Gemini client.
type GeminiConfig struct {
	APIKey      string
	Model       string
	Endpoint    string // override for tests
	Temperature float64
	MaxTokens   int
}

// geminiClient implements Client against the Gemini generateContent API.
type geminiClient struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	endpoint    string
	temperature float64
	maxTokens   int
}

// NewGeminiClient creates a Gemini API client.
func NewGeminiClient(cfg GeminiConfig) (Client, error) {
	if cfg.APIKey == "" {
		return nil, common.ErrMissingAPIKey
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultGeminiEndpoint
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}

	return &geminiClient{
		apiKey:      cfg.APIKey,
		model:       model,
		endpoint:    strings.TrimSuffix(endpoint, "/"),
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// ModelID identifies the underlying model.
func (c *geminiClient) ModelID() string {
	return c.model
}

// Judge sends the combined judgment prompt, with the product photo inlined
// when present, and parses the model's JSON answer.
func (c *geminiClient) Judge(ctx context.Context, req Request) (Judgment, error) {
	parts := []map[string]any{
		{"text": buildJudgmentPrompt(req)},
	}
	if req.HasImage() {
		parts = append(parts, map[string]any{
			"inline_data": map[string]any{
				"mime_type": req.ImageMIME,
				"data":      base64.StdEncoding.EncodeToString(req.ImageData),
			},
		})
	}

	requestBody := map[string]any{
		"contents": []map[string]any{
			{"parts": parts},
		},
		"generationConfig": map[string]any{
			"temperature":     c.temperature,
			"maxOutputTokens": c.maxTokens,
		},
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return Judgment{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.endpoint, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(jsonBody)))
	if err != nil {
		return Judgment{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Judgment{}, &common.RetryableError{
			Err:       fmt.Errorf("request failed: %w", err),
			Retryable: true,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Judgment{}, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return Judgment{}, fmt.Errorf("%w: gemini API (status %d)", common.ErrRateLimit, resp.StatusCode)
	case resp.StatusCode >= http.StatusInternalServerError:
		return Judgment{}, &common.RetryableError{
			Err:       fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(body)),
			Retryable: true,
		}
	case resp.StatusCode != http.StatusOK:
		return Judgment{}, fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response geminiResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return Judgment{}, fmt.Errorf("failed to parse response: %w", err)
	}

	text := response.firstText()
	if text == "" {
		return Judgment{}, common.ErrNoModelResult
	}

	judgment, err := ParseJudgment(text)
	if err != nil {
		return Judgment{}, err
	}
	judgment.ModelID = c.model
	return judgment, nil
}

// geminiResponse represents the generateContent response structure.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

func (r geminiResponse) firstText() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return ""
	}
	return parts[0].Text
}
