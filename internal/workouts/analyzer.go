package workouts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mpavlovic/fitlog/internal/daykey"
	"github.com/mpavlovic/fitlog/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const statsCacheExpireSeconds = 60

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=workouts_test

type setsLister interface {
	ListForRange(ctx context.Context, from, to daykey.DayKey) ([]Set, error)
}

// DayStats aggregates the sets of a single calendar day.
type DayStats struct {
	Day     daykey.DayKey `json:"day"`
	Weekday string        `json:"weekday"`
	Sets    int           `json:"sets"`
	Reps    int           `json:"reps"`
	Seconds int           `json:"seconds"`
}

// WeeklyStats covers the Monday-to-Sunday week containing a day,
// with one entry per day, zero days included.
type WeeklyStats struct {
	WeekStart daykey.DayKey `json:"weekStart"`
	Days      []DayStats    `json:"days"`
	TotalSets int           `json:"totalSets"`
}

// MonthlyStats covers the calendar month containing a day. Only days
// with at least one set are listed.
type MonthlyStats struct {
	From      daykey.DayKey `json:"from"`
	To        daykey.DayKey `json:"to"`
	Days      []DayStats    `json:"days"`
	TotalSets int           `json:"totalSets"`
	TotalReps int           `json:"totalReps"`
	TotalSecs int           `json:"totalSeconds"`
}

type Analyzer struct {
	repo  setsLister
	cache *freecache.Cache
}

func NewAnalyzer(repo setsLister) *Analyzer {
	megabyte := 1024 * 1024
	return &Analyzer{
		repo:  repo,
		cache: freecache.NewCache(10 * megabyte),
	}
}

func (a *Analyzer) WeeklyStats(ctx context.Context, day daykey.DayKey) (_ *WeeklyStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.weekly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	weekStart, err := daykey.WeekStart(day)
	if err != nil {
		return nil, fmt.Errorf("week start: %w", err)
	}
	span.SetAttributes(attribute.String("weekStart", string(weekStart)))

	cacheKey := fmt.Sprintf("weekly::%s", weekStart)
	if statsBytes, err := a.cache.Get([]byte(cacheKey)); err == nil {
		var stats WeeklyStats
		if err = json.Unmarshal(statsBytes, &stats); err == nil {
			log.Tracef("weekly stats for %s found in cache", weekStart)
			return &stats, nil
		}
		log.Errorf("failed to unmarshal cached weekly stats for %s: %s", weekStart, err)
	}

	weekEnd, err := daykey.AddDays(weekStart, 6)
	if err != nil {
		return nil, fmt.Errorf("week end: %w", err)
	}

	sets, err := a.repo.ListForRange(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	perDay := aggregatePerDay(sets)

	stats := &WeeklyStats{
		WeekStart: weekStart,
	}
	for offset := 0; offset < 7; offset++ {
		dk, err := daykey.AddDays(weekStart, offset)
		if err != nil {
			return nil, fmt.Errorf("week day %d: %w", offset, err)
		}
		dayStats := perDay[dk]
		dayStats.Day = dk
		dayStats.Weekday = daykey.Weekday(offset).String()
		stats.Days = append(stats.Days, dayStats)
		stats.TotalSets += dayStats.Sets
	}

	a.setCache(cacheKey, stats)

	return stats, nil
}

func (a *Analyzer) MonthlyStats(ctx context.Context, day daykey.DayKey) (_ *MonthlyStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.monthly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	from, to, err := daykey.MonthRange(day)
	if err != nil {
		return nil, fmt.Errorf("month range: %w", err)
	}
	span.SetAttributes(attribute.String("from", string(from)), attribute.String("to", string(to)))

	cacheKey := fmt.Sprintf("monthly::%s", from)
	if statsBytes, err := a.cache.Get([]byte(cacheKey)); err == nil {
		var stats MonthlyStats
		if err = json.Unmarshal(statsBytes, &stats); err == nil {
			log.Tracef("monthly stats for %s found in cache", from)
			return &stats, nil
		}
		log.Errorf("failed to unmarshal cached monthly stats for %s: %s", from, err)
	}

	sets, err := a.repo.ListForRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	stats := &MonthlyStats{
		From: from,
		To:   to,
	}

	perDay := aggregatePerDay(sets)
	for dk := from; dk <= to; {
		if dayStats, ok := perDay[dk]; ok {
			dayStats.Day = dk
			wd, err := daykey.WeekdayOf(dk)
			if err != nil {
				return nil, fmt.Errorf("weekday of %s: %w", dk, err)
			}
			dayStats.Weekday = wd.String()
			stats.Days = append(stats.Days, dayStats)
			stats.TotalSets += dayStats.Sets
			stats.TotalReps += dayStats.Reps
			stats.TotalSecs += dayStats.Seconds
		}
		next, err := daykey.AddDays(dk, 1)
		if err != nil {
			return nil, fmt.Errorf("next day after %s: %w", dk, err)
		}
		dk = next
	}

	a.setCache(cacheKey, stats)

	return stats, nil
}

func aggregatePerDay(sets []Set) map[daykey.DayKey]DayStats {
	perDay := make(map[daykey.DayKey]DayStats)
	for _, set := range sets {
		dayStats := perDay[set.DayKey]
		dayStats.Sets++
		switch set.Type {
		case SetTypeReps:
			dayStats.Reps += set.Value
		case SetTypeTimed:
			dayStats.Seconds += set.Value
		}
		perDay[set.DayKey] = dayStats
	}
	return perDay
}

func (a *Analyzer) setCache(cacheKey string, stats any) {
	statsBytes, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal stats for cache [%s]: %s", cacheKey, err)
		return
	}
	if err := a.cache.Set([]byte(cacheKey), statsBytes, statsCacheExpireSeconds); err != nil {
		log.Errorf("failed to write stats cache [%s]: %s", cacheKey, err)
	}
}
