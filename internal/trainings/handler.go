package trainings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/mpavlovic/fitlog/internal/daykey"
	"github.com/mpavlovic/fitlog/internal/telemetry/tracing"
	"github.com/mpavlovic/fitlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=trainings_test

type trainingsService interface {
	AddTrainingStart(ctx context.Context, ts TrainingStart) (*Event, error)
	AddTrainingFinish(ctx context.Context, tf TrainingFinish) (*Event, error)
	AddTimerFinish(ctx context.Context, tf TimerFinish) (*Event, error)
	List(ctx context.Context, params ListParams) ([]*Event, int, error)
}

type ListEventsResponse struct {
	Events []*Event `json:"events"`
	Total  int      `json:"total"`
}

type Handler struct {
	service trainingsService
}

func NewHandler(service trainingsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleTrainingStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.start")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var trainingStart TrainingStart
	if err := json.NewDecoder(r.Body).Decode(&trainingStart); err != nil {
		log.Tracef("training start, unmarshal json params: %s", err)
		http.Error(w, "add training start failed", http.StatusBadRequest)
		return
	}

	event, err := handler.service.AddTrainingStart(ctx, trainingStart)
	if err != nil {
		log.Errorf("failed to add training start: %s", err)
		http.Error(w, "error, failed to add training start", http.StatusInternalServerError)
		return
	}

	handler.writeEvent(w, event, http.StatusCreated)
}

func (handler *Handler) HandleTrainingFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.finish")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var trainingFinish TrainingFinish
	if err := json.NewDecoder(r.Body).Decode(&trainingFinish); err != nil {
		log.Tracef("training finish, unmarshal json params: %s", err)
		http.Error(w, "add training finish failed", http.StatusBadRequest)
		return
	}

	event, err := handler.service.AddTrainingFinish(ctx, trainingFinish)
	if err != nil {
		log.Errorf("failed to add training finish: %s", err)
		http.Error(w, "error, failed to add training finish", http.StatusInternalServerError)
		return
	}

	handler.writeEvent(w, event, http.StatusCreated)
}

func (handler *Handler) HandleTimerFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.timer")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var timerFinish TimerFinish
	if err := json.NewDecoder(r.Body).Decode(&timerFinish); err != nil {
		log.Tracef("timer finish, unmarshal json params: %s", err)
		http.Error(w, "add timer finish failed", http.StatusBadRequest)
		return
	}
	if timerFinish.Seconds < 1 {
		http.Error(w, "error, timer seconds must be positive", http.StatusBadRequest)
		return
	}

	event, err := handler.service.AddTimerFinish(ctx, timerFinish)
	if err != nil {
		log.Errorf("failed to add timer finish: %s", err)
		http.Error(w, "error, failed to add timer finish", http.StatusInternalServerError)
		return
	}

	handler.writeEvent(w, event, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}
	if page < 1 || size < 1 {
		http.Error(w, "invalid page or size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	params := ListParams{
		Page: page,
		Size: size,
	}
	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		eventType := EventType(typeStr)
		if !eventType.IsValid() {
			http.Error(w, "invalid event type", http.StatusBadRequest)
			return
		}
		params.Type = &eventType
	}
	if dayStr := r.URL.Query().Get("day"); dayStr != "" {
		day, err := daykey.Parse(dayStr)
		if err != nil {
			if errors.Is(err, daykey.ErrInvalidDayKey) {
				http.Error(w, "error, invalid day", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		params.Day = &day
	}

	events, total, err := handler.service.List(ctx, params)
	if err != nil {
		log.Errorf("list training events error: %s", err)
		http.Error(w, "failed to get training events", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(ListEventsResponse{
		Events: events,
		Total:  total,
	})
	if err != nil {
		log.Errorf("marshal training events error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) writeEvent(w http.ResponseWriter, event *Event, status int) {
	eventJson, err := json.Marshal(event)
	if err != nil {
		log.Errorf("failed to marshal training event: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, eventJson, status)
}
