package assistant

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mpavlovic/fitlog/internal/workouts"
)

type Action string

const (
	ActionLogSet  Action = "log_set"
	ActionUnknown Action = "unknown"
)

// Intent is the structured form of one chat message, produced either by
// the local heuristics or by a language model. Never persisted.
type Intent struct {
	Action       Action           `json:"action"`
	ExerciseName string           `json:"exerciseName,omitempty"`
	SetType      workouts.SetType `json:"setType,omitempty"`
	Value        int              `json:"value,omitempty"`
	Reply        string           `json:"reply,omitempty"`
}

var (
	// "log 15 reps of push ups", "did 20 reps dips", ...
	repsHeuristicRegex = regexp.MustCompile(
		`(?i)^(?:log|add|do|did|record|track)\b.*?(\d+)\s*reps?\b(?:\s+(?:of|for))?\s+(.+?)\s*$`,
	)
	// "log 5 min plank", "add 1:30 min of wall sit", "did 2 min 15 sec plank"
	timedHeuristicRegex = regexp.MustCompile(
		`(?i)^(?:log|add|do|did|record|track)\b.*?(\d+)(?::(\d{1,2}))?\s*(?:min|mins|minutes?)\b(?:\s*(\d{1,2})\s*(?:sec|secs|seconds?)\b)?(?:\s+(?:of|for))?\s+(.+?)\s*$`,
	)

	nonAlnumSpaceRegex = regexp.MustCompile(`[^a-z0-9 ]+`)
)

// normalizeText lowercases, strips everything but letters, digits and
// spaces, and collapses whitespace runs.
func normalizeText(s string) string {
	s = strings.ToLower(s)
	s = nonAlnumSpaceRegex.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// foldName is the form used for exact-name comparison: normalized text
// with the remaining whitespace stripped entirely, so that "push ups"
// and "pushups" compare equal.
func foldName(s string) string {
	return strings.ReplaceAll(normalizeText(s), " ", "")
}

// clampValue coerces a parsed quantity to a positive integer.
func clampValue(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// ParseHeuristic tries to extract a log-set intent from the raw message
// with local regex patterns, avoiding a model round-trip for the common
// phrasings. Returns false when the message does not fit any pattern.
func ParseHeuristic(message string) (Intent, bool) {
	message = strings.TrimSpace(message)

	if m := timedHeuristicRegex.FindStringSubmatch(message); m != nil {
		minutes, err := strconv.Atoi(m[1])
		if err != nil {
			return Intent{}, false
		}
		seconds := 0
		secStr := m[2]
		if secStr == "" {
			secStr = m[3]
		}
		if secStr != "" {
			if seconds, err = strconv.Atoi(secStr); err != nil {
				return Intent{}, false
			}
		}
		return Intent{
			Action:       ActionLogSet,
			ExerciseName: strings.TrimSpace(m[4]),
			SetType:      workouts.SetTypeTimed,
			Value:        clampValue(minutes*60 + seconds),
		}, true
	}

	if m := repsHeuristicRegex.FindStringSubmatch(message); m != nil {
		reps, err := strconv.Atoi(m[1])
		if err != nil {
			return Intent{}, false
		}
		return Intent{
			Action:       ActionLogSet,
			ExerciseName: strings.TrimSpace(m[2]),
			SetType:      workouts.SetTypeReps,
			Value:        clampValue(reps),
		}, true
	}

	return Intent{}, false
}

// FindExactName returns the known exercise name whose folded form equals
// the query's folded form, or false when there is none.
func FindExactName(query string, knownNames []string) (string, bool) {
	folded := foldName(query)
	if folded == "" {
		return "", false
	}
	for _, name := range knownNames {
		if foldName(name) == folded {
			return name, true
		}
	}
	return "", false
}

// FindNormalizedName returns the known exercise name whose normalized form
// equals the query's normalized form, or false when there is none. Word
// boundaries are kept, so "pushups" does not match "Push Ups" here.
func FindNormalizedName(query string, knownNames []string) (string, bool) {
	normalized := normalizeText(query)
	if normalized == "" {
		return "", false
	}
	for _, name := range knownNames {
		if normalizeText(name) == normalized {
			return name, true
		}
	}
	return "", false
}
