package assistant

import (
	"math"
	"sort"
	"strings"

	"github.com/mpavlovic/fitlog/internal/workouts"
)

const maxSuggestions = 3

// MatchCandidate is one scored exercise name, ephemeral per matching
// attempt.
type MatchCandidate struct {
	ExerciseName string `json:"exerciseName"`
	Score        int    `json:"score"`
}

// Suggestion is a concrete loggable proposal offered back to the user.
type Suggestion struct {
	Label        string           `json:"label"`
	ExerciseName string           `json:"exerciseName"`
	SetType      workouts.SetType `json:"setType"`
	Value        int              `json:"value"`
}

// ExerciseScore rates how well a known exercise name matches the query,
// 0..100. Tiers: exact folded match, target extends the query, query
// extends the target, then token overlap. A mid-name fragment ("bench"
// inside "Incline Bench Press") deliberately only reaches the token
// overlap tier.
func ExerciseScore(query, target string) int {
	normQuery := normalizeText(query)
	normTarget := normalizeText(target)
	if normQuery == "" || normTarget == "" {
		return 0
	}

	if foldName(query) == foldName(target) {
		return 100
	}
	if strings.HasPrefix(normTarget, normQuery) {
		return 85
	}
	if strings.HasPrefix(normQuery, normTarget) {
		return 75
	}

	queryTokens := strings.Fields(normQuery)
	targetTokens := strings.Fields(normTarget)
	targetSet := make(map[string]struct{}, len(targetTokens))
	for _, token := range targetTokens {
		targetSet[token] = struct{}{}
	}
	shared := 0
	for _, token := range queryTokens {
		if _, ok := targetSet[token]; ok {
			shared++
		}
	}
	if shared == 0 {
		return 0
	}

	maxTokens := len(queryTokens)
	if len(targetTokens) > maxTokens {
		maxTokens = len(targetTokens)
	}

	return int(math.Round(70 * float64(shared) / float64(maxTokens)))
}

// TopCandidates scores every known name against the query and keeps the
// best three with a non-zero score, descending.
func TopCandidates(query string, knownNames []string) []MatchCandidate {
	var candidates []MatchCandidate
	for _, name := range knownNames {
		if score := ExerciseScore(query, name); score > 0 {
			candidates = append(candidates, MatchCandidate{
				ExerciseName: name,
				Score:        score,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	return candidates
}

// variationValue is the reduced quantity offered as an easier variation
// of the primary suggestion.
func variationValue(setType workouts.SetType, value int) int {
	switch setType {
	case workouts.SetTypeTimed:
		return clampValue(value - 5)
	default:
		return clampValue(value / 3)
	}
}

// BuildSuggestions turns the scored candidates into at most three
// loggable proposals: the primary at the requested value, the runner-up
// (when present) at the requested value, and a reduced variation of the
// primary.
func BuildSuggestions(candidates []MatchCandidate, setType workouts.SetType, value int) []Suggestion {
	if len(candidates) == 0 {
		return nil
	}
	value = clampValue(value)

	var names []string
	for _, c := range candidates {
		if len(names) == 2 {
			break
		}
		names = append(names, c.ExerciseName)
	}

	suggestions := []Suggestion{{
		Label:        "Log it",
		ExerciseName: names[0],
		SetType:      setType,
		Value:        value,
	}}
	if len(names) > 1 {
		suggestions = append(suggestions, Suggestion{
			Label:        "Log this instead",
			ExerciseName: names[1],
			SetType:      setType,
			Value:        value,
		})
	}
	suggestions = append(suggestions, Suggestion{
		Label:        "Log a lighter set",
		ExerciseName: names[0],
		SetType:      setType,
		Value:        variationValue(setType, value),
	})

	return suggestions
}
