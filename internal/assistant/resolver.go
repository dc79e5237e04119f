package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mpavlovic/fitlog/internal/daykey"
	"github.com/mpavlovic/fitlog/internal/telemetry/tracing"
	"github.com/mpavlovic/fitlog/internal/workouts"

	openai "github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrAllModelsFailed = errors.New("all models failed")

//go:generate mockgen -source=$GOFILE -destination=resolver_mocks_test.go -package=assistant_test

type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// IntentResolver turns a chat message into a structured intent by
// calling the configured models strictly in order, stopping at the
// first one that returns a parseable response.
type IntentResolver struct {
	client chatClient
	models []string
}

func NewIntentResolver(client chatClient, models []string) *IntentResolver {
	return &IntentResolver{
		client: client,
		models: models,
	}
}

const intentPrompt = `You are a workout logging assistant. The user logs sets for day %s.
Known exercises: %s.

Reply with JSON only, no prose, in one of these two shapes:
{"action":"log_set","exerciseName":"<name from the message>","setType":"reps"|"timed","value":<positive integer, seconds for timed>}
{"action":"unknown","reply":"<short reply to the user>"}

Message: %s`

// ResolveIntent returns the parsed intent and the number of model
// attempts it took. Attempts beyond the first are fallbacks.
func (r *IntentResolver) ResolveIntent(
	ctx context.Context,
	message string,
	day daykey.DayKey,
	knownNames []string,
) (_ *Intent, attempts int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "assistant.resolver.resolve_intent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	prompt := fmt.Sprintf(intentPrompt, day, strings.Join(knownNames, ", "), message)

	for _, model := range r.models {
		attempts++
		resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0,
		})
		if err != nil {
			log.Warnf("model %s failed, trying next: %s", model, err)
			continue
		}
		if len(resp.Choices) == 0 {
			log.Warnf("model %s returned no choices, trying next", model)
			continue
		}

		intent, err := parseIntentResponse(resp.Choices[0].Message.Content)
		if err != nil {
			log.Warnf("model %s returned unparseable intent, trying next: %s", model, err)
			continue
		}

		span.SetAttributes(
			attribute.String("model", model),
			attribute.Int("attempts", attempts),
		)
		return intent, attempts, nil
	}

	return nil, attempts, ErrAllModelsFailed
}

func parseIntentResponse(content string) (*Intent, error) {
	content = strings.TrimSpace(content)
	// models occasionally fence their JSON
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var intent Intent
	if err := json.Unmarshal([]byte(content), &intent); err != nil {
		return nil, fmt.Errorf("unmarshal intent: %w", err)
	}

	switch intent.Action {
	case ActionLogSet:
		if intent.ExerciseName == "" {
			return nil, errors.New("log_set intent without exercise name")
		}
		if intent.SetType != workouts.SetTypeReps && intent.SetType != workouts.SetTypeTimed {
			return nil, fmt.Errorf("log_set intent with invalid set type %q", intent.SetType)
		}
		intent.Value = clampValue(intent.Value)
	case ActionUnknown:
		if intent.Reply == "" {
			intent.Reply = "Sorry, I did not get that."
		}
	default:
		return nil, fmt.Errorf("unknown intent action %q", intent.Action)
	}

	return &intent, nil
}
