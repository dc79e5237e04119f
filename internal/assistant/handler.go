package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/mpavlovic/fitlog/internal/daykey"
	"github.com/mpavlovic/fitlog/internal/telemetry/metrics"
	"github.com/mpavlovic/fitlog/internal/telemetry/tracing"
	"github.com/mpavlovic/fitlog/pkg"
)

const maxVoiceMessageBytes = 25 << 20 // provider upload limit

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=assistant_test

type assistantService interface {
	HandleMessage(ctx context.Context, message, selectedDay string) (*Outcome, error)
}

type transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

type ChatRequest struct {
	Message     string `json:"message"`
	SelectedDay string `json:"selectedDay,omitempty"`
}

type ChatResponse struct {
	Transcript string `json:"transcript,omitempty"`
	*Outcome
}

type Handler struct {
	service     assistantService
	transcriber transcriber
	metrics     *metrics.Manager
}

func NewHandler(service assistantService, transcriber transcriber, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:     service,
		transcriber: transcriber,
		metrics:     metricsManager,
	}
}

func (handler *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.assistant.chat")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var chatReq ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&chatReq); err != nil {
		log.Tracef("assistant chat, unmarshal json params: %s", err)
		http.Error(w, "chat failed", http.StatusBadRequest)
		return
	}
	if chatReq.Message == "" {
		http.Error(w, "error, message empty", http.StatusBadRequest)
		return
	}

	handler.respond(ctx, w, chatReq, "")
}

func (handler *Handler) HandleVoice(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.assistant.voice")
	defer span.End()

	if err := r.ParseMultipartForm(maxVoiceMessageBytes); err != nil {
		log.Tracef("assistant voice, parse multipart form: %s", err)
		http.Error(w, "invalid voice message", http.StatusBadRequest)
		return
	}

	audioFile, audioHeader, err := r.FormFile("audio")
	if err != nil {
		http.Error(w, "error, audio file missing", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := audioFile.Close(); err != nil {
			log.Errorf("failed to close audio file: %s", err)
		}
	}()

	transcript, err := handler.transcriber.Transcribe(ctx, audioHeader.Filename, audioFile)
	if err != nil {
		log.Errorf("failed to transcribe voice message: %s", err)
		http.Error(w, "failed to transcribe voice message", http.StatusBadGateway)
		return
	}
	handler.metrics.CounterTranscriptions.Inc()

	if transcript == "" {
		http.Error(w, "error, empty transcript", http.StatusBadRequest)
		return
	}

	handler.respond(ctx, w, ChatRequest{
		Message:     transcript,
		SelectedDay: r.FormValue("selectedDay"),
	}, transcript)
}

func (handler *Handler) respond(ctx context.Context, w http.ResponseWriter, chatReq ChatRequest, transcript string) {
	outcome, err := handler.service.HandleMessage(ctx, chatReq.Message, chatReq.SelectedDay)
	if err != nil {
		if errors.Is(err, daykey.ErrInvalidDayKey) {
			http.Error(w, "error, invalid day", http.StatusBadRequest)
			return
		}
		log.Errorf("assistant turn failed: %s", err)
		http.Error(w, "assistant turn failed", http.StatusInternalServerError)
		return
	}

	chatRespJson, err := json.Marshal(ChatResponse{
		Transcript: transcript,
		Outcome:    outcome,
	})
	if err != nil {
		log.Errorf("failed to marshal assistant response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, chatRespJson, http.StatusOK)
}
