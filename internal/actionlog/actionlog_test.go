package actionlog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRecorder collects entries and optionally fails.
type memRecorder struct {
	mu      sync.Mutex
	entries []Entry
	err     error
	done    chan struct{}
}

func (m *memRecorder) Record(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done != nil {
		defer close(m.done)
	}
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, e)
	return nil
}

func TestSubmit_NilRecorderIsNoop(t *testing.T) {
	Submit(nil, Entry{Action: ActionHint}) // must not panic
}

func TestSubmit_RecordsAsync(t *testing.T) {
	rec := &memRecorder{done: make(chan struct{})}
	Submit(rec, Entry{SessionID: "s1", Action: ActionNextStep})

	select {
	case <-rec.done:
	case <-time.After(2 * time.Second):
		t.Fatal("entry was not recorded")
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.entries) != 1 || rec.entries[0].SessionID != "s1" {
		t.Fatalf("entries = %+v", rec.entries)
	}
}

func TestSubmit_FailureDoesNotPropagate(t *testing.T) {
	rec := &memRecorder{err: errors.New("sink down"), done: make(chan struct{})}
	Submit(rec, Entry{Action: ActionEvaluate}) // must not panic
	<-rec.done
}

func TestHTTPRecorder_PostsWireFormat(t *testing.T) {
	var got wireEntry
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ai-actions" {
			t.Errorf("path = %q, want /ai-actions", r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	rec := NewHTTPRecorder(server.URL, "secret")
	err := rec.Record(context.Background(), Entry{
		DashboardID:  "d1",
		SessionID:    "s1",
		Action:       ActionDecide,
		Reasoning:    "all topics mastered",
		Topic:        "algebra",
		MasteryLevel: 85,
		Duration:     1500 * time.Millisecond,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "decide_next_action", got.ActionType)
	assert.Equal(t, "d1", got.DashboardID)
	assert.Equal(t, int64(1500), got.DurationMs)
	assert.Equal(t, 85, got.MasteryLevel)
}

func TestHTTPRecorder_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	rec := NewHTTPRecorder(server.URL, "")
	err := rec.Record(context.Background(), Entry{SessionID: "s1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestMulti_StopsAtFirstError(t *testing.T) {
	ok := &memRecorder{}
	bad := &memRecorder{err: errors.New("down")}
	after := &memRecorder{}

	m := Multi{ok, bad, after}
	if err := m.Record(context.Background(), Entry{}); err == nil {
		t.Fatal("expected error from failing recorder")
	}
	if len(ok.entries) != 1 {
		t.Errorf("first recorder entries = %d, want 1", len(ok.entries))
	}
	if len(after.entries) != 0 {
		t.Errorf("recorder after failure entries = %d, want 0", len(after.entries))
	}
}
