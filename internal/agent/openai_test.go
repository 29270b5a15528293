package agent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

func newTestOpenAIClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"

	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
		model:  "gpt-4o-mini",
	}
}

func TestOpenAIClient_ToolCall(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": "",
						"tool_calls": []map[string]any{
							{
								"id":   "call_1",
								"type": "function",
								"function": map[string]any{
									"name":      "provide_hint",
									"arguments": `{"hint":"Think about the base case.","reasoning":"stuck"}`,
								},
							},
						},
					},
					"finish_reason": "tool_calls",
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     50,
				"completion_tokens": 20,
				"total_tokens":      70,
			},
		})
	}

	c := newTestOpenAIClient(t, handler)
	resp, err := c.CallWithTools(context.Background(), Request{
		System:     "You are a study tutor.",
		Messages:   []Message{{Role: RoleUser, Content: "I need a hint."}},
		Tools:      []Tool{{Name: "provide_hint", Parameters: map[string]any{"type": "object"}}},
		ToolChoice: ChooseAuto(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ToolCall == nil {
		t.Fatal("expected a tool call")
	}
	if resp.ToolCall.Name != "provide_hint" {
		t.Errorf("tool name = %q, want provide_hint", resp.ToolCall.Name)
	}
	var args struct {
		Hint string `json:"hint"`
	}
	if err := json.Unmarshal(resp.ToolCall.Arguments, &args); err != nil {
		t.Fatalf("unmarshal arguments: %v", err)
	}
	if args.Hint != "Think about the base case." {
		t.Errorf("hint = %q", args.Hint)
	}
	if resp.Usage.TotalTokens != 70 {
		t.Errorf("total tokens = %d, want 70", resp.Usage.TotalTokens)
	}
}

func TestOpenAIClient_NoToolCall(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": "REASONING: You are close.\nMESSAGE: Try once more without a hint.",
					},
					"finish_reason": "stop",
				},
			},
		})
	}

	c := newTestOpenAIClient(t, handler)
	resp, err := c.CallWithTools(context.Background(), Request{
		Messages:   []Message{{Role: RoleUser, Content: "hint please"}},
		ToolChoice: ChooseAuto(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ToolCall != nil {
		t.Fatal("expected no tool call")
	}
	if resp.Content == "" {
		t.Fatal("expected decline content")
	}
}

func TestOpenAIClient_NonOKStatus(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "upstream unavailable", "type": "server_error"},
		})
	}

	c := newTestOpenAIClient(t, handler)
	_, err := c.CallWithTools(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	var svcErr *ErrService
	if !errors.As(err, &svcErr) {
		t.Fatalf("error type = %T, want *ErrService", err)
	}
	if svcErr.Status != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", svcErr.Status)
	}
}

func TestOpenAIClient_TimeoutEnforced(t *testing.T) {
	blocked := make(chan struct{})
	handler := func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}
	server := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(func() {
		close(blocked)
		server.Close()
	})

	c, err := NewOpenAIClient(Config{
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		BaseURL: server.URL + "/v1",
		Timeout: 50 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	start := time.Now()
	_, err = c.CallWithTools(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	if err == nil {
		t.Fatal("expected a timeout error")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("call returned after %v, timeout not applied", elapsed)
	}
}

func TestBuildToolChoice(t *testing.T) {
	if got := buildToolChoice(ChooseAuto()); got != "auto" {
		t.Errorf("auto choice = %v", got)
	}
	if got := buildToolChoice(ChooseRequired()); got != "required" {
		t.Errorf("required choice = %v", got)
	}
	forced, ok := buildToolChoice(ChooseFunction("decide_next_action")).(openai.ToolChoice)
	if !ok || forced.Function.Name != "decide_next_action" {
		t.Errorf("forced choice = %#v", forced)
	}
}

func TestBuildChatMessages_SystemFirst(t *testing.T) {
	msgs := buildChatMessages(Request{
		System: "sys",
		Messages: []Message{
			{Role: RoleUser, Content: "u"},
			{Role: RoleAssistant, Content: "a"},
		},
	})
	if len(msgs) != 3 {
		t.Fatalf("len = %d, want 3", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("first role = %q, want system", msgs[0].Role)
	}
	if msgs[2].Role != openai.ChatMessageRoleAssistant {
		t.Errorf("third role = %q, want assistant", msgs[2].Role)
	}
}
