package actionlog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPRecorder posts entries to an external persistence endpoint
// (POST <base>/ai-actions) with bearer auth.
type HTTPRecorder struct {
	endpoint string
	token    string
	client   *http.Client
}

// NewHTTPRecorder creates a recorder for the given base URL and token.
func NewHTTPRecorder(baseURL, token string) *HTTPRecorder {
	return &HTTPRecorder{
		endpoint: baseURL + "/ai-actions",
		token:    token,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// wireEntry is the JSON body of the persistence contract.
type wireEntry struct {
	DashboardID     string `json:"dashboard_id,omitempty"`
	SessionID       string `json:"session_id"`
	ActionType      string `json:"action_type"`
	RequestMessages string `json:"request_messages,omitempty"`
	ResponseData    string `json:"response_data,omitempty"`
	ToolCallData    string `json:"tool_call_data,omitempty"`
	Reasoning       string `json:"reasoning,omitempty"`
	QuestionID      string `json:"question_id,omitempty"`
	Topic           string `json:"topic,omitempty"`
	MasteryLevel    int    `json:"mastery_level,omitempty"`
	DurationMs      int64  `json:"duration_ms"`
}

func (r *HTTPRecorder) Record(ctx context.Context, e Entry) error {
	body, err := json.Marshal(wireEntry{
		DashboardID:     e.DashboardID,
		SessionID:       e.SessionID,
		ActionType:      string(e.Action),
		RequestMessages: e.RequestMessages,
		ResponseData:    e.ResponseData,
		ToolCallData:    e.ToolCallData,
		Reasoning:       e.Reasoning,
		QuestionID:      e.QuestionID,
		Topic:           e.Topic,
		MasteryLevel:    e.MasteryLevel,
		DurationMs:      e.Duration.Milliseconds(),
	})
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("post ai-action: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("post ai-action: status %d: %s", resp.StatusCode, text)
	}
	return nil
}
