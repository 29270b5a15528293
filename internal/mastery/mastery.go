// Package mastery computes per-topic mastery levels from answer history.
// All functions are pure; the orchestrator owns the state they operate on.
package mastery

import (
	"math"
	"time"
)

// MasteredThreshold is the level at or above which a topic counts as mastered.
const MasteredThreshold = 80

// Difficulty is the question difficulty band suggested to the agent.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// TopicMastery tracks one topic's progress within a session.
type TopicMastery struct {
	// Topic is the unique topic name within the session.
	Topic string

	// Level is the current mastery level, 0-100.
	Level int

	// QuestionsAnswered counts answers recorded for this topic.
	QuestionsAnswered int

	// QuestionsCorrect counts correct answers. Never exceeds QuestionsAnswered.
	QuestionsCorrect int

	// LastAsked is when a question on this topic was last answered.
	LastAsked *time.Time
}

// Update is an agent-proposed mastery adjustment for one topic.
type Update struct {
	Topic     string
	NewLevel  float64
	Reasoning string
}

// CalculateLevel computes the mastery level from the answer tally.
// Early mastery is capped: with fewer than 5 answers the maximum
// attainable level ramps from 52 to 88, so a single lucky answer
// cannot show 100%.
func CalculateLevel(correct, answered int) int {
	if answered == 0 {
		return 0
	}

	accuracy := float64(correct) / float64(answered)

	maxPossible := 100.0
	if answered < 5 {
		maxPossible = 40 + float64(answered)*12
	}

	return int(math.Round(math.Min(100, accuracy*maxPossible)))
}

// ApplyUpdates merges agent-proposed level updates into the mastery list.
// Levels are clamped to [0,100]; NaN proposals keep the existing level.
// Updates for unknown topics are ignored. The input slice is not mutated.
func ApplyUpdates(current []TopicMastery, updates []Update) []TopicMastery {
	result := make([]TopicMastery, len(current))
	copy(result, current)

	for _, u := range updates {
		for i := range result {
			if result[i].Topic != u.Topic {
				continue
			}
			if !math.IsNaN(u.NewLevel) {
				result[i].Level = clampLevel(int(math.Round(u.NewLevel)))
			}
			break
		}
	}

	return result
}

// RecordAnswer updates the counters for the answered topic and recomputes
// its level from the tally. This is the authoritative update: it runs
// after ApplyUpdates and supersedes whatever level the agent proposed,
// so mastery always stays consistent with the answer history.
// The input slice is not mutated.
func RecordAnswer(levels []TopicMastery, topic string, correct bool, at time.Time) []TopicMastery {
	result := make([]TopicMastery, len(levels))
	copy(result, levels)

	for i := range result {
		if result[i].Topic != topic {
			continue
		}
		result[i].QuestionsAnswered++
		if correct {
			result[i].QuestionsCorrect++
		}
		result[i].Level = CalculateLevel(result[i].QuestionsCorrect, result[i].QuestionsAnswered)
		t := at
		result[i].LastAsked = &t
		break
	}

	return result
}

// IsMastered reports whether a level meets the mastery threshold.
func IsMastered(level int) bool {
	return level >= MasteredThreshold
}

// AllMastered reports whether every topic in the list is mastered.
// False for an empty list.
func AllMastered(levels []TopicMastery) bool {
	if len(levels) == 0 {
		return false
	}
	for _, m := range levels {
		if !IsMastered(m.Level) {
			return false
		}
	}
	return true
}

// DifficultyFor suggests a question difficulty band for a mastery level.
// Guidance for the agent's prompt only, never enforced.
func DifficultyFor(level int) Difficulty {
	switch {
	case level <= 40:
		return DifficultyEasy
	case level <= 70:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// NewLevels builds the initial mastery list for a session's topics,
// all starting at level 0.
func NewLevels(topics []string) []TopicMastery {
	levels := make([]TopicMastery, len(topics))
	for i, t := range topics {
		levels[i] = TopicMastery{Topic: t}
	}
	return levels
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}
