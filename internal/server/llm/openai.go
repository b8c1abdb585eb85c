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

	"github.com/dmitrijs2005/moodlog/internal/common"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
)

// OpenAIConfig holds the settings of the chat completions endpoint.
type OpenAIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// OpenAIClient is a Generator backed by the OpenAI chat completions API
// with strict JSON schema output.
type OpenAIClient struct {
	config     OpenAIConfig
	httpClient *http.Client
}

func NewOpenAIClient(config OpenAIConfig) *OpenAIClient {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Timeout <= 0 {
		config.Timeout = 60 * time.Second
	}
	return &OpenAIClient{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []message      `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type       string     `json:"type"`
	JSONSchema jsonSchema `json:"json_schema"`
}

type jsonSchema struct {
	Name   string         `json:"name"`
	Strict bool           `json:"strict"`
	Schema map[string]any `json:"schema"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Generate sends prompt as the single user message and decodes the
// returned JSON object into out. Every failure wraps common.ErrGeneration.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string, schema Schema, out any) error {
	reqBody := chatRequest{
		Model:    c.config.Model,
		Messages: []message{{Role: "user", Content: prompt}},
		ResponseFormat: responseFormat{
			Type: "json_schema",
			JSONSchema: jsonSchema{
				Name:   schema.Name,
				Strict: true,
				Schema: schema.JSONSchema(),
			},
		},
	}

	resp, err := c.doRequest(ctx, reqBody)
	if err != nil {
		return err
	}

	if resp.Error != nil {
		return fmt.Errorf("%w: OpenAI API error: %s", common.ErrGeneration, resp.Error.Message)
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("%w: no response from OpenAI", common.ErrGeneration)
	}

	content := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("%w: response does not match schema %s: %v", common.ErrGeneration, schema.Name, err)
	}
	return nil
}

func (c *OpenAIClient) doRequest(ctx context.Context, reqBody chatRequest) (*chatResponse, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", common.ErrGeneration, err)
	}

	url := strings.TrimRight(c.config.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", common.ErrGeneration, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", common.ErrGeneration, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", common.ErrGeneration, err)
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		if httpResp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: API returned status %d: %s", common.ErrGeneration, httpResp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("%w: failed to decode response: %v", common.ErrGeneration, err)
	}
	if httpResp.StatusCode != http.StatusOK && resp.Error == nil {
		return nil, fmt.Errorf("%w: API returned status %d", common.ErrGeneration, httpResp.StatusCode)
	}

	return &resp, nil
}
