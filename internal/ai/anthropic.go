package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const anthropicVersion = "2023-06-01"

type AnthropicProvider struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	Client    *http.Client
}

type anthropicMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// The messages API takes the system instruction as a top-level field,
// not as a message role.
type anthropicChatReq struct {
	Model     string         `json:"model"`
	MaxTokens int            `json:"max_tokens"`
	System    string         `json:"system,omitempty"`
	Messages  []anthropicMsg `json:"messages"`
}

type anthropicChatResp struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewAnthropicProvider(baseURL, apiKey, model string, timeout time.Duration) *AnthropicProvider {
	if baseURL == "" {
		baseURL = "https://api.anthropic.com/v1"
	}
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &AnthropicProvider{
		BaseURL:   baseURL,
		APIKey:    apiKey,
		Model:     model,
		MaxTokens: 1024,
		Client:    &http.Client{Timeout: timeout},
	}
}

func (p *AnthropicProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	if p.Client == nil {
		return "", errors.New("anthropic: http client is nil")
	}
	if strings.TrimSpace(p.APIKey) == "" {
		return "", errors.New("anthropic: api key is required")
	}
	model := strings.TrimSpace(p.Model)
	if model == "" {
		return "", errors.New("anthropic: model is required")
	}

	reqBody := anthropicChatReq{
		Model:     model,
		MaxTokens: p.MaxTokens,
	}
	for _, m := range messages {
		if m.Role == "system" {
			reqBody.System = m.Content
			continue
		}
		reqBody.Messages = append(reqBody.Messages, anthropicMsg{Role: m.Role, Content: m.Content})
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/messages", strings.TrimRight(p.BaseURL, "/"))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("anthropic: %s", msg)
	}

	var decoded anthropicChatResp
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	if decoded.Error != nil && decoded.Error.Message != "" {
		return "", errors.New(decoded.Error.Message)
	}

	var sb strings.Builder
	for _, block := range decoded.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New("anthropic: empty response")
	}
	return text, nil
}
