package store

import (
	"context"
	"testing"
	"time"

	"github.com/avikram/studyloop/internal/actionlog"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testAction(sessionID, actionType string) AIAction {
	return AIAction{
		SessionID:    sessionID,
		DashboardID:  "dash-1",
		ActionType:   actionType,
		ResponseData: "{}",
		Topic:        "algebra",
		MasteryLevel: 40,
		DurationMs:   120,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestActionAppendAndBySession(t *testing.T) {
	s := openTestStore(t)
	repo := s.Actions()
	ctx := context.Background()

	for _, at := range []string{"get_next_step", "evaluate_response", "provide_hint"} {
		if err := repo.Append(ctx, testAction("s1", at)); err != nil {
			t.Fatalf("append %s: %v", at, err)
		}
	}
	if err := repo.Append(ctx, testAction("s2", "get_next_step")); err != nil {
		t.Fatalf("append other session: %v", err)
	}

	got, err := repo.BySession(ctx, "s1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("actions = %d, want 3", len(got))
	}

	// Oldest first, sequences strictly increasing.
	for i := 1; i < len(got); i++ {
		if got[i].Sequence <= got[i-1].Sequence {
			t.Errorf("sequence not increasing: %d then %d", got[i-1].Sequence, got[i].Sequence)
		}
	}
	if got[0].ActionType != "get_next_step" {
		t.Errorf("first action = %q, want get_next_step", got[0].ActionType)
	}
	if got[0].Topic != "algebra" || got[0].MasteryLevel != 40 {
		t.Errorf("row = %+v", got[0])
	}
}

func TestActionByDashboard(t *testing.T) {
	s := openTestStore(t)
	repo := s.Actions()
	ctx := context.Background()

	a := testAction("s1", "get_next_step")
	a.DashboardID = "dash-A"
	if err := repo.Append(ctx, a); err != nil {
		t.Fatalf("append: %v", err)
	}
	b := testAction("s2", "get_next_step")
	b.DashboardID = "dash-B"
	if err := repo.Append(ctx, b); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.ByDashboard(ctx, "dash-A")
	if err != nil {
		t.Fatalf("by dashboard: %v", err)
	}
	if len(got) != 1 || got[0].SessionID != "s1" {
		t.Errorf("got = %+v, want one dash-A row", got)
	}
}

func TestActionListPagination(t *testing.T) {
	s := openTestStore(t)
	repo := s.Actions()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		if err := repo.Append(ctx, testAction("s1", "get_next_step")); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// First page: newest first, more remaining.
	page, hasMore, err := repo.List(ctx, 3, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page) != 3 {
		t.Fatalf("page size = %d, want 3", len(page))
	}
	if !hasMore {
		t.Error("hasMore = false, want true")
	}
	if page[0].Sequence <= page[1].Sequence {
		t.Errorf("not newest first: %d then %d", page[0].Sequence, page[1].Sequence)
	}

	// Last page: partial, no more.
	page, hasMore, err = repo.List(ctx, 3, 6)
	if err != nil {
		t.Fatalf("list last page: %v", err)
	}
	if len(page) != 1 {
		t.Errorf("last page size = %d, want 1", len(page))
	}
	if hasMore {
		t.Error("hasMore = true on last page")
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	if err := repo.AppendStart(ctx, "s1", []string{"algebra", "geometry"}); err != nil {
		t.Fatalf("append start: %v", err)
	}
	if err := repo.AppendEnd(ctx, "s1", 12, 9, "Solid progress on algebra."); err != nil {
		t.Fatalf("append end: %v", err)
	}

	got, err := repo.BySession(ctx, "s1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("events = %d, want 2", len(got))
	}
	if got[0].Action != SessionStart || len(got[0].Topics) != 2 {
		t.Errorf("start event = %+v", got[0])
	}
	if got[1].Action != SessionEnd || got[1].QuestionsServed != 12 || got[1].CorrectAnswers != 9 {
		t.Errorf("end event = %+v", got[1])
	}
	if got[1].Summary != "Solid progress on algebra." {
		t.Errorf("summary = %q", got[1].Summary)
	}
}

func TestRecorderAdapter(t *testing.T) {
	s := openTestStore(t)
	rec := NewRecorder(s.Actions())
	ctx := context.Background()

	err := rec.Record(ctx, actionlog.Entry{
		SessionID:    "s1",
		Action:       actionlog.ActionEvaluate,
		ResponseData: "ok",
		QuestionID:   "q-1",
		Topic:        "geometry",
		MasteryLevel: 55,
		Duration:     250 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	got, err := s.Actions().BySession(ctx, "s1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("actions = %d, want 1", len(got))
	}
	if got[0].ActionType != "evaluate_response" || got[0].DurationMs != 250 {
		t.Errorf("row = %+v", got[0])
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"ai_action_events", "session_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
