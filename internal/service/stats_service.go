package service

import (
	"alcyxob/training-tracker/internal/domain"
	"alcyxob/training-tracker/internal/repository"
	"context"
	"math"
)

// StatsService derives progress metrics from the plan and the stored records.
type StatsService interface {
	ComputeStats(ctx context.Context) (*domain.Stats, error)
}

type statsService struct {
	records repository.WorkoutRecordRepository
	catalog PlanCatalog
}

// NewStatsService creates a new instance of statsService.
func NewStatsService(records repository.WorkoutRecordRepository, catalog PlanCatalog) StatsService {
	return &statsService{
		records: records,
		catalog: catalog,
	}
}

// ComputeStats fails only when the records cannot be listed; the aggregation itself is total.
func (s *statsService) ComputeStats(ctx context.Context) (*domain.Stats, error) {
	records, err := s.records.ListAll(ctx)
	if err != nil {
		return nil, storeFailure(err)
	}
	stats := ComputeStats(s.catalog.Weeks(), records)
	return &stats, nil
}

// ComputeStats aggregates completion metrics. Records with unparsable distances contribute
// no miles, and records whose key does not decode to a plan week feed no weekly bucket.
func ComputeStats(weeks []domain.PlanWeek, records map[string]domain.WorkoutRecord) domain.Stats {
	stats := domain.Stats{
		WeeklyActualMiles: make([]float64, len(weeks)),
	}

	for _, w := range weeks {
		stats.TotalPlannedMiles += w.TotalMiles
		for _, slot := range w.Workouts {
			if slot.Miles > 0 {
				stats.TotalWorkouts++
			}
		}
	}

	var completedMiles float64
	for key, rec := range records {
		if !rec.Completed {
			continue
		}
		stats.CompletedWorkouts++

		miles, ok := domain.ParseMiles(rec.ActualMiles)
		if !ok {
			continue
		}
		completedMiles += miles

		week, ok := domain.WeekFromKey(key)
		if !ok || week < 1 || week > len(weeks) {
			continue
		}
		stats.WeeklyActualMiles[week-1] += miles
	}

	stats.CompletedMiles = round1(completedMiles)
	stats.TotalPlannedMiles = round1(stats.TotalPlannedMiles)
	for i := range stats.WeeklyActualMiles {
		stats.WeeklyActualMiles[i] = round1(stats.WeeklyActualMiles[i])
	}
	if stats.TotalWorkouts > 0 {
		stats.CompletionPercentage = round1(float64(stats.CompletedWorkouts) / float64(stats.TotalWorkouts) * 100)
	}
	return stats
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
