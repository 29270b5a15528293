package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements Client against any OpenAI-compatible endpoint.
// BaseURL overrides allow OpenRouter and self-hosted gateways to serve
// as the agent.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a client from configuration.
func NewOpenAIClient(cfg Config) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("agent API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		config.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
	}, nil
}

func (c *OpenAIClient) CallWithTools(ctx context.Context, req Request) (*Response, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:               c.model,
		Messages:            buildChatMessages(req),
		Tools:               buildChatTools(req.Tools),
		ToolChoice:          buildToolChoice(req.ToolChoice),
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, mapServiceError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, &ErrService{Err: fmt.Errorf("no choices in agent response")}
	}

	choice := resp.Choices[0]
	out := &Response{
		Content: choice.Message.Content,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
		Model:        resp.Model,
		FinishReason: string(choice.FinishReason),
	}

	if len(choice.Message.ToolCalls) > 0 {
		tc := choice.Message.ToolCalls[0]
		out.ToolCall = &ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: json.RawMessage(tc.Function.Arguments),
		}
	}

	return out, nil
}

func (c *OpenAIClient) ModelID() string {
	return c.model
}

func buildChatMessages(req Request) []openai.ChatCompletionMessage {
	var messages []openai.ChatCompletionMessage

	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}

	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	return messages
}

func buildChatTools(tools []Tool) []openai.Tool {
	out := make([]openai.Tool, len(tools))
	for i, t := range tools {
		out[i] = openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return out
}

// buildToolChoice maps a ToolChoice to the wire representation: the
// strings "auto"/"required", or a forced single-tool selector object.
func buildToolChoice(tc ToolChoice) any {
	switch tc.Mode {
	case ModeFunction:
		return openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: tc.Function},
		}
	case ModeRequired:
		return "required"
	default:
		return "auto"
	}
}

func mapServiceError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &ErrService{
			Status: apiErr.HTTPStatusCode,
			Body:   apiErr.Message,
			Err:    err,
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &ErrService{
			Status: reqErr.HTTPStatusCode,
			Body:   string(reqErr.Body),
			Err:    err,
		}
	}
	return &ErrService{Err: err}
}
