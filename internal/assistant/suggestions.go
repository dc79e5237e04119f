package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mpavlovic/fitlog/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

const lastSuggestionsKey = "fitlog-assistant||last-suggestions"

// SuggestionStore keeps the previous assistant turn's unused
// suggestions, consulted only by the affirmation shortcut. A stored
// batch is consumed at most once.
type SuggestionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSuggestionStore(rdb *redis.Client, ttl time.Duration) *SuggestionStore {
	return &SuggestionStore{
		rdb: rdb,
		ttl: ttl,
	}
}

func (s *SuggestionStore) Set(ctx context.Context, suggestions []Suggestion) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "assistant.suggestions.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	suggestionsJson, err := json.Marshal(suggestions)
	if err != nil {
		return fmt.Errorf("marshal suggestions: %w", err)
	}

	return s.rdb.Set(ctx, lastSuggestionsKey, suggestionsJson, s.ttl).Err()
}

// Take returns the stored suggestions and removes them, so a second
// affirmation finds nothing.
func (s *SuggestionStore) Take(ctx context.Context) (_ []Suggestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "assistant.suggestions.take")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	suggestionsJson, err := s.rdb.GetDel(ctx, lastSuggestionsKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("getdel suggestions: %w", err)
	}

	var suggestions []Suggestion
	if err := json.Unmarshal([]byte(suggestionsJson), &suggestions); err != nil {
		return nil, fmt.Errorf("unmarshal suggestions: %w", err)
	}

	return suggestions, nil
}

// Clear drops any pending suggestions without returning them.
func (s *SuggestionStore) Clear(ctx context.Context) error {
	return s.rdb.Del(ctx, lastSuggestionsKey).Err()
}
