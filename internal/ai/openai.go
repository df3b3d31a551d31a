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

type OpenAIProvider struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	Client    *http.Client
}

type openAIMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatReq struct {
	Model     string      `json:"model"`
	MaxTokens int         `json:"max_tokens"`
	Messages  []openAIMsg `json:"messages"`
}

type openAIChatResp struct {
	Choices []struct {
		Message openAIMsg `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewOpenAIProvider(baseURL, apiKey, model string, timeout time.Duration) *OpenAIProvider {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &OpenAIProvider{
		BaseURL:   baseURL,
		APIKey:    apiKey,
		Model:     model,
		MaxTokens: 1024,
		Client:    &http.Client{Timeout: timeout},
	}
}

func (p *OpenAIProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	if p.Client == nil {
		return "", errors.New("openai: http client is nil")
	}
	if strings.TrimSpace(p.APIKey) == "" {
		return "", errors.New("openai: api key is required")
	}
	model := strings.TrimSpace(p.Model)
	if model == "" {
		return "", errors.New("openai: model is required")
	}

	reqBody := openAIChatReq{
		Model:     model,
		MaxTokens: p.MaxTokens,
		Messages: func() []openAIMsg {
			out := make([]openAIMsg, 0, len(messages))
			for _, m := range messages {
				out = append(out, openAIMsg{Role: m.Role, Content: m.Content})
			}
			return out
		}(),
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/chat/completions", strings.TrimRight(p.BaseURL, "/"))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

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
		return "", fmt.Errorf("openai: %s", msg)
	}

	var decoded openAIChatResp
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	if decoded.Error != nil && decoded.Error.Message != "" {
		return "", errors.New(decoded.Error.Message)
	}
	if len(decoded.Choices) == 0 {
		return "", errors.New("openai: empty response")
	}
	return decoded.Choices[0].Message.Content, nil
}
