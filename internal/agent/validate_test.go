package agent

import (
	"encoding/json"
	"errors"
	"testing"
)

var hintTool = Tool{
	Name:        "test_provide_hint",
	Description: "Provide a hint",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint":      map[string]any{"type": "string"},
			"reasoning": map[string]any{"type": "string"},
		},
		"required":             []any{"hint", "reasoning"},
		"additionalProperties": false,
	},
}

func TestDecodeArgs_Valid(t *testing.T) {
	var dst struct {
		Hint      string `json:"hint"`
		Reasoning string `json:"reasoning"`
	}
	raw := json.RawMessage(`{"hint":"Look at the exponent.","reasoning":"two misses"}`)
	if err := DecodeArgs(hintTool, raw, &dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dst.Hint != "Look at the exponent." {
		t.Errorf("hint = %q", dst.Hint)
	}
}

func TestDecodeArgs_InvalidJSON(t *testing.T) {
	var dst map[string]any
	err := DecodeArgs(hintTool, json.RawMessage(`{"hint": `), &dst)
	var invErr *ErrInvalidToolCall
	if !errors.As(err, &invErr) {
		t.Fatalf("error type = %T, want *ErrInvalidToolCall", err)
	}
	if invErr.Tool != hintTool.Name {
		t.Errorf("tool = %q, want %q", invErr.Tool, hintTool.Name)
	}
}

func TestDecodeArgs_MissingRequired(t *testing.T) {
	var dst map[string]any
	err := DecodeArgs(hintTool, json.RawMessage(`{"hint":"x"}`), &dst)
	var invErr *ErrInvalidToolCall
	if !errors.As(err, &invErr) {
		t.Fatalf("error type = %T, want *ErrInvalidToolCall", err)
	}
}

func TestDecodeArgs_UnknownField(t *testing.T) {
	var dst map[string]any
	err := DecodeArgs(hintTool, json.RawMessage(`{"hint":"x","reasoning":"y","extra":1}`), &dst)
	var invErr *ErrInvalidToolCall
	if !errors.As(err, &invErr) {
		t.Fatalf("error type = %T, want *ErrInvalidToolCall", err)
	}
}

func TestMockClient_FIFOAndCallCount(t *testing.T) {
	m := NewMockClient(
		MockResponse{Content: "first"},
		ToolCallResponse("test_provide_hint", map[string]any{"hint": "h", "reasoning": "r"}),
	)

	r1, err := m.CallWithTools(t.Context(), Request{})
	if err != nil || r1.Content != "first" {
		t.Fatalf("first call = %+v, %v", r1, err)
	}
	r2, err := m.CallWithTools(t.Context(), Request{})
	if err != nil || r2.ToolCall == nil || r2.ToolCall.Name != "test_provide_hint" {
		t.Fatalf("second call = %+v, %v", r2, err)
	}
	if _, err := m.CallWithTools(t.Context(), Request{}); err == nil {
		t.Fatal("expected error on empty queue")
	}
	if m.CallCount() != 3 {
		t.Errorf("call count = %d, want 3", m.CallCount())
	}
}
