package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/mpavlovic/fitlog/internal/daykey"
	"github.com/mpavlovic/fitlog/internal/telemetry/metrics"
	"github.com/mpavlovic/fitlog/internal/telemetry/tracing"
	"github.com/mpavlovic/fitlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type setsRepo interface {
	Add(ctx context.Context, set Set) (*Set, error)
	Get(ctx context.Context, id string) (*Set, error)
	Update(ctx context.Context, set *Set) error
	Delete(ctx context.Context, id string) error
	ListForDay(ctx context.Context, key daykey.DayKey) ([]Set, error)
	CountForDay(ctx context.Context, key daykey.DayKey) (int, error)
}

type statsProvider interface {
	WeeklyStats(ctx context.Context, day daykey.DayKey) (*WeeklyStats, error)
	MonthlyStats(ctx context.Context, day daykey.DayKey) (*MonthlyStats, error)
}

type AddSetRequest struct {
	ExerciseID  string  `json:"exerciseId"`
	Type        SetType `json:"type"`
	Value       int     `json:"value"`
	SelectedDay string  `json:"selectedDay,omitempty"`
}

type AddSetResponse struct {
	Set
	CountToday int `json:"countToday"`
}

type ListSetsResponse struct {
	Day     daykey.DayKey `json:"day"`
	Weekday string        `json:"weekday"`
	Sets    []Set         `json:"sets"`
}

type DeleteSetResponse struct {
	DeletedID string `json:"deletedId"`
}

type UpdateSetResponse struct {
	UpdatedID string `json:"updatedId"`
}

type Handler struct {
	repo     setsRepo
	stats    statsProvider
	resolver *daykey.Resolver
	metrics  *metrics.Manager
}

func NewHandler(
	repo setsRepo,
	stats statsProvider,
	resolver *daykey.Resolver,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:     repo,
		stats:    stats,
		resolver: resolver,
		metrics:  metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var addReq AddSetRequest
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		log.Tracef("new set, unmarshal json params: %s", err)
		http.Error(w, "add set failed", http.StatusBadRequest)
		return
	}

	if addReq.ExerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	bucket, err := handler.resolver.ResolveDayBucket(addReq.SelectedDay)
	if err != nil {
		http.Error(w, "error, invalid day", http.StatusBadRequest)
		return
	}

	set := Set{
		ExerciseID: addReq.ExerciseID,
		Type:       addReq.Type,
		Value:      addReq.Value,
		DayKey:     bucket.Key,
	}
	if err := set.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	addedSet, err := handler.repo.Add(ctx, set)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "error, unknown exercise", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add new set for exercise [%s]: %s", addReq.ExerciseID, err)
		http.Error(w, "error, failed to add new set", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSetsLogged.WithLabelValues("manual").Inc()

	countToday, err := handler.repo.CountForDay(ctx, addedSet.DayKey)
	if err != nil {
		// just log the error, no need to return error to the client
		log.Errorf("failed to count sets for day %s: %s", addedSet.DayKey, err)
	}

	addedSetJson, err := json.Marshal(AddSetResponse{
		Set:        *addedSet,
		CountToday: countToday,
	})
	if err != nil {
		log.Errorf("failed to marshal new set: %s", err)
		http.Error(w, "error, failed to add new set", http.StatusInternalServerError)
		return
	}

	log.Debugf("new set added: %s", addedSetJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedSetJson, http.StatusCreated)
}

func (handler *Handler) HandleListForDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list_for_day")
	defer span.End()

	bucket, err := handler.resolver.ResolveDayBucket(r.URL.Query().Get("day"))
	if err != nil {
		http.Error(w, "error, invalid day", http.StatusBadRequest)
		return
	}

	sets, err := handler.repo.ListForDay(ctx, bucket.Key)
	if err != nil {
		log.Errorf("list sets for day %s error: %s", bucket.Key, err)
		http.Error(w, "failed to get sets", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(ListSetsResponse{
		Day:     bucket.Key,
		Weekday: bucket.Weekday.String(),
		Sets:    sets,
	})
	if err != nil {
		log.Errorf("marshal sets error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var set Set
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Errorf("update set, unmarshal json params: %s", err)
		http.Error(w, "update set failed", http.StatusBadRequest)
		return
	}

	if set.ID == "" {
		http.Error(w, "error, set id empty", http.StatusBadRequest)
		return
	}
	if err := set.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, err := daykey.Parse(string(set.DayKey)); err != nil {
		http.Error(w, "error, invalid day", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, &set); err != nil {
		if errors.Is(err, ErrSetNotFound) {
			http.Error(w, "set not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update set [%s]: %s", set.ID, err)
		http.Error(w, "error, failed to update set", http.StatusInternalServerError)
		return
	}

	updateRespJson, err := json.Marshal(UpdateSetResponse{
		UpdatedID: set.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrSetNotFound) {
			log.Debugf("set %s not found", id)
			http.Error(w, "set not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete set %s: %s", id, err)
		http.Error(w, "set not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteSetResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleWeeklyStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.weekly_stats")
	defer span.End()

	bucket, err := handler.resolver.ResolveDayBucket(r.URL.Query().Get("day"))
	if err != nil {
		http.Error(w, "error, invalid day", http.StatusBadRequest)
		return
	}

	stats, err := handler.stats.WeeklyStats(ctx, bucket.Key)
	if err != nil {
		log.Errorf("failed to get weekly stats for %s: %s", bucket.Key, err)
		http.Error(w, "failed to get weekly stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal weekly stats: %s", err)
		http.Error(w, "failed to marshal weekly stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}

func (handler *Handler) HandleMonthlyStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.monthly_stats")
	defer span.End()

	bucket, err := handler.resolver.ResolveDayBucket(r.URL.Query().Get("day"))
	if err != nil {
		http.Error(w, "error, invalid day", http.StatusBadRequest)
		return
	}

	stats, err := handler.stats.MonthlyStats(ctx, bucket.Key)
	if err != nil {
		log.Errorf("failed to get monthly stats for %s: %s", bucket.Key, err)
		http.Error(w, "failed to get monthly stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal monthly stats: %s", err)
		http.Error(w, "failed to marshal monthly stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}
