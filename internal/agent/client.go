// Package agent is the protocol client for the tool-calling study agent.
// It speaks the OpenAI-compatible chat-completions contract: messages plus
// tool schemas plus a tool-choice mode, returning at most one tool call.
package agent

import (
	"context"
	"encoding/json"
)

// Client is the core abstraction for agent interaction. Callers send a
// structured request and receive either a tool call or free-text content.
//
// There are no retries at this layer: a failed call is fatal for the
// operation that issued it and is surfaced to the user.
type Client interface {
	// CallWithTools sends the request to the agent endpoint and returns
	// the parsed response. A non-2xx response or transport failure yields
	// *ErrService.
	CallWithTools(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this client is configured for.
	ModelID() string
}

// Request describes one agent call.
type Request struct {
	// System is the system prompt describing the tutoring context.
	System string

	// Messages is the conversation, usually a single user turn built by
	// a prompt builder.
	Messages []Message

	// Tools are the callable tool schemas offered to the agent.
	Tools []Tool

	// ToolChoice controls whether the agent must call a tool.
	ToolChoice ToolChoice

	// MaxTokens limits the response length. 0 means provider default.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Tool describes one callable tool: a name, a description and a JSON
// schema for its arguments.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// ToolChoiceMode selects how the agent may use the offered tools.
type ToolChoiceMode string

const (
	// ModeAuto lets the agent decide whether to call a tool. Used for
	// hint requests, where declining with free text is a valid outcome.
	ModeAuto ToolChoiceMode = "auto"

	// ModeRequired forces the agent to call some tool. Used for
	// decide_next_action, where a decision is mandatory.
	ModeRequired ToolChoiceMode = "required"

	// ModeFunction forces a specific tool by name.
	ModeFunction ToolChoiceMode = "function"
)

// ToolChoice is the tool-choice selector sent with a request.
type ToolChoice struct {
	Mode ToolChoiceMode

	// Function is the forced tool name when Mode is ModeFunction.
	Function string
}

// ChooseAuto lets the agent decide whether to call a tool.
func ChooseAuto() ToolChoice { return ToolChoice{Mode: ModeAuto} }

// ChooseRequired forces the agent to call a tool.
func ChooseRequired() ToolChoice { return ToolChoice{Mode: ModeRequired} }

// ChooseFunction forces the named tool.
func ChooseFunction(name string) ToolChoice {
	return ToolChoice{Mode: ModeFunction, Function: name}
}

// Response holds the agent's output for one call.
type Response struct {
	// Content is the assistant's free-text content. May be empty when a
	// tool call is present, and carries the decline message when the
	// agent chose not to call a tool under ModeAuto.
	Content string

	// ToolCall is the first tool call in the response, nil if none.
	ToolCall *ToolCall

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// FinishReason is the provider's stop reason, normalized to
	// "stop", "tool_calls" or "length".
	FinishReason string
}

// ToolCall is a single tool invocation emitted by the agent. Arguments
// arrive as an opaque JSON payload that must be decoded against the
// tool's schema.
type ToolCall struct {
	ID        string
	Name      string
	Arguments json.RawMessage
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
