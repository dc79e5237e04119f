package assistant

import (
	"context"
	"fmt"
	"io"

	"github.com/mpavlovic/fitlog/internal/telemetry/tracing"

	openai "github.com/sashabaranov/go-openai"
)

//go:generate mockgen -source=$GOFILE -destination=transcribe_mocks_test.go -package=assistant_test

type audioClient interface {
	CreateTranscription(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error)
}

// Transcriber converts a voice message into text before it enters the
// regular chat pipeline.
type Transcriber struct {
	client audioClient
	model  string
}

func NewTranscriber(client audioClient, model string) *Transcriber {
	return &Transcriber{
		client: client,
		model:  model,
	}
}

func (t *Transcriber) Transcribe(ctx context.Context, filename string, audio io.Reader) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "assistant.transcriber.transcribe")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: filename,
		Reader:   audio,
	})
	if err != nil {
		return "", fmt.Errorf("create transcription: %w", err)
	}

	return resp.Text, nil
}
