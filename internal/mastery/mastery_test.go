package mastery

import (
	"math"
	"testing"
	"time"
)

func TestCalculateLevel_Concrete(t *testing.T) {
	tests := []struct {
		correct  int
		answered int
		want     int
	}{
		{0, 0, 0},
		{1, 1, 52},
		{1, 2, 32},
		{2, 2, 64},
		{2, 3, 51},
		{4, 4, 88},
		{5, 5, 100},
		{4, 5, 80},
		{9, 10, 90},
	}

	for _, tt := range tests {
		got := CalculateLevel(tt.correct, tt.answered)
		if got != tt.want {
			t.Errorf("CalculateLevel(%d, %d) = %d, want %d", tt.correct, tt.answered, got, tt.want)
		}
	}
}

func TestCalculateLevel_Bounds(t *testing.T) {
	for answered := 0; answered <= 20; answered++ {
		for correct := 0; correct <= answered; correct++ {
			got := CalculateLevel(correct, answered)
			if got < 0 || got > 100 {
				t.Fatalf("CalculateLevel(%d, %d) = %d, out of [0,100]", correct, answered, got)
			}
		}
	}
}

func TestCalculateLevel_NonDecreasingInCorrect(t *testing.T) {
	for answered := 1; answered <= 12; answered++ {
		prev := -1
		for correct := 0; correct <= answered; correct++ {
			got := CalculateLevel(correct, answered)
			if got < prev {
				t.Fatalf("CalculateLevel(%d, %d) = %d < CalculateLevel(%d, %d) = %d",
					correct, answered, got, correct-1, answered, prev)
			}
			prev = got
		}
	}
}

func TestCalculateLevel_EarlyMasteryRamp(t *testing.T) {
	// Perfect accuracy reaches 100 only from the fifth answer on.
	for a := 1; a < 5; a++ {
		if got := CalculateLevel(a, a); got >= 100 {
			t.Errorf("CalculateLevel(%d, %d) = %d, want < 100", a, a, got)
		}
	}
	for a := 5; a <= 10; a++ {
		if got := CalculateLevel(a, a); got != 100 {
			t.Errorf("CalculateLevel(%d, %d) = %d, want 100", a, a, got)
		}
	}
}

func TestApplyUpdates_ClampsAndMatches(t *testing.T) {
	current := []TopicMastery{
		{Topic: "algebra", Level: 50},
		{Topic: "geometry", Level: 30},
	}

	got := ApplyUpdates(current, []Update{
		{Topic: "algebra", NewLevel: 150},
		{Topic: "geometry", NewLevel: -20},
		{Topic: "unknown", NewLevel: 60},
	})

	if got[0].Level != 100 {
		t.Errorf("algebra level = %d, want 100 (clamped)", got[0].Level)
	}
	if got[1].Level != 0 {
		t.Errorf("geometry level = %d, want 0 (clamped)", got[1].Level)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2 (unknown topic ignored)", len(got))
	}
}

func TestApplyUpdates_NaNKeepsExisting(t *testing.T) {
	current := []TopicMastery{{Topic: "algebra", Level: 42}}
	got := ApplyUpdates(current, []Update{{Topic: "algebra", NewLevel: math.NaN()}})
	if got[0].Level != 42 {
		t.Errorf("level = %d, want 42 (NaN falls back)", got[0].Level)
	}
}

func TestApplyUpdates_EmptyIsIdentity(t *testing.T) {
	current := []TopicMastery{
		{Topic: "a", Level: 10, QuestionsAnswered: 2, QuestionsCorrect: 1},
		{Topic: "b", Level: 90},
	}
	got := ApplyUpdates(current, nil)
	for i := range current {
		if got[i] != current[i] {
			t.Errorf("entry %d changed: got %+v, want %+v", i, got[i], current[i])
		}
	}
}

func TestApplyUpdates_Idempotent(t *testing.T) {
	current := []TopicMastery{{Topic: "a", Level: 10}, {Topic: "b", Level: 20}}
	updates := []Update{{Topic: "a", NewLevel: 55}, {Topic: "b", NewLevel: 75}}

	once := ApplyUpdates(current, updates)
	twice := ApplyUpdates(once, updates)
	for i := range once {
		if once[i].Level != twice[i].Level {
			t.Errorf("entry %d: once = %d, twice = %d", i, once[i].Level, twice[i].Level)
		}
	}
}

func TestApplyUpdates_DoesNotMutateInput(t *testing.T) {
	current := []TopicMastery{{Topic: "a", Level: 10}}
	ApplyUpdates(current, []Update{{Topic: "a", NewLevel: 99}})
	if current[0].Level != 10 {
		t.Errorf("input mutated: level = %d, want 10", current[0].Level)
	}
}

func TestRecordAnswer(t *testing.T) {
	now := time.Now()
	levels := []TopicMastery{
		{Topic: "a", Level: 37, QuestionsAnswered: 2, QuestionsCorrect: 1},
		{Topic: "b"},
	}

	got := RecordAnswer(levels, "a", true, now)

	a := got[0]
	if a.QuestionsAnswered != 3 || a.QuestionsCorrect != 2 {
		t.Errorf("counters = %d/%d, want 3/2", a.QuestionsCorrect, a.QuestionsAnswered)
	}
	if want := CalculateLevel(2, 3); a.Level != want {
		t.Errorf("level = %d, want %d", a.Level, want)
	}
	if a.LastAsked == nil || !a.LastAsked.Equal(now) {
		t.Errorf("LastAsked = %v, want %v", a.LastAsked, now)
	}
	if got[1] != levels[1] {
		t.Errorf("unrelated topic changed: %+v", got[1])
	}
}

func TestRecordAnswer_Incorrect(t *testing.T) {
	levels := NewLevels([]string{"a"})
	got := RecordAnswer(levels, "a", false, time.Now())
	if got[0].QuestionsAnswered != 1 || got[0].QuestionsCorrect != 0 {
		t.Errorf("counters = %d/%d, want 0/1", got[0].QuestionsCorrect, got[0].QuestionsAnswered)
	}
	if got[0].Level != 0 {
		t.Errorf("level = %d, want 0", got[0].Level)
	}
}

func TestIsMastered_Boundaries(t *testing.T) {
	tests := []struct {
		level int
		want  bool
	}{
		{0, false},
		{79, false},
		{80, true},
		{81, true},
		{100, true},
	}
	for _, tt := range tests {
		if got := IsMastered(tt.level); got != tt.want {
			t.Errorf("IsMastered(%d) = %t, want %t", tt.level, got, tt.want)
		}
	}
}

func TestAllMastered(t *testing.T) {
	if AllMastered(nil) {
		t.Error("AllMastered(nil) = true, want false")
	}
	if AllMastered([]TopicMastery{{Level: 80}, {Level: 79}}) {
		t.Error("AllMastered with one below threshold = true, want false")
	}
	if !AllMastered([]TopicMastery{{Level: 80}, {Level: 100}}) {
		t.Error("AllMastered with all above threshold = false, want true")
	}
}

func TestDifficultyFor_Boundaries(t *testing.T) {
	tests := []struct {
		level int
		want  Difficulty
	}{
		{0, DifficultyEasy},
		{40, DifficultyEasy},
		{41, DifficultyMedium},
		{70, DifficultyMedium},
		{71, DifficultyHard},
		{100, DifficultyHard},
	}
	for _, tt := range tests {
		if got := DifficultyFor(tt.level); got != tt.want {
			t.Errorf("DifficultyFor(%d) = %s, want %s", tt.level, got, tt.want)
		}
	}
}

func TestNewLevels(t *testing.T) {
	levels := NewLevels([]string{"a", "b"})
	if len(levels) != 2 {
		t.Fatalf("len = %d, want 2", len(levels))
	}
	for i, topic := range []string{"a", "b"} {
		if levels[i].Topic != topic || levels[i].Level != 0 {
			t.Errorf("levels[%d] = %+v, want topic %q at level 0", i, levels[i], topic)
		}
	}
}
