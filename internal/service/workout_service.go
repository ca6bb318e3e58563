package service

import (
	"alcyxob/training-tracker/internal/domain"
	"alcyxob/training-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrStoreFailure    = errors.New("workout store failure")
	ErrWorkoutNotFound = errors.New("workout record not found")
	ErrInvalidSlot     = errors.New("week must be positive and day must not be empty")
)

// LogOutcome tags the result of a log call.
type LogOutcome string

const (
	LogSaved   LogOutcome = "saved"   // Record merged and persisted
	LogCleared LogOutcome = "cleared" // Input was empty, any stored record was deleted
	LogFailed  LogOutcome = "failed"  // Store error, returned together with ErrStoreFailure
)

// LogResult carries the outcome of LogWorkout. Record is nil unless Outcome is LogSaved.
type LogResult struct {
	Outcome LogOutcome
	Record  *domain.WorkoutRecord
}

// LogWorkoutInput is the user-entered completion data for one slot.
type LogWorkoutInput struct {
	Week        int
	Day         string
	Completed   bool
	Notes       string
	ActualMiles string // Text on purpose: malformed input degrades to "no distance"
	ActualPace  string
	Duration    string
	Enrichment  map[string]any // Optional normalized activity, stored opaquely
}

// EditWorkoutInput replaces the planned workout of one slot.
type EditWorkoutInput struct {
	Week               int
	Day                string
	OriginalWorkout    string
	OriginalMiles      *float64
	ModifiedWorkout    string
	ModifiedMiles      *float64
	ModifiedType       domain.DayType
	ModificationReason string
}

// PlanCatalog is the read-only view of the training plan the services need.
type PlanCatalog interface {
	Plan() domain.TrainingPlan
	Weeks() []domain.PlanWeek
}

// --- Service Interface ---
type WorkoutService interface {
	LogWorkout(ctx context.Context, in LogWorkoutInput) (*LogResult, error)
	EditWorkout(ctx context.Context, in EditWorkoutInput) (*domain.WorkoutRecord, error)
	RevertWorkout(ctx context.Context, week int, day string) (*domain.WorkoutRecord, error)
	GetAllRecords(ctx context.Context) (map[string]domain.WorkoutRecord, error)
	ResetAll(ctx context.Context) (int64, error)
	GetPlanView(ctx context.Context) ([]domain.WeekView, error)
}

// --- Service Implementation ---

// workoutService implements the WorkoutService interface.
type workoutService struct {
	records repository.WorkoutRecordRepository
	catalog PlanCatalog
	now     func() time.Time
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(records repository.WorkoutRecordRepository, catalog PlanCatalog) WorkoutService {
	return &workoutService{
		records: records,
		catalog: catalog,
		now:     time.Now,
	}
}

// LogWorkout merges completion data into the slot's record, or deletes the record when the
// incoming values are empty. Modification fields of an existing record are left untouched.
func (s *workoutService) LogWorkout(ctx context.Context, in LogWorkoutInput) (*LogResult, error) {
	if err := validateSlot(in.Week, in.Day); err != nil {
		return nil, err
	}
	key := domain.RecordKey(in.Week, in.Day)

	if domain.IsEmptyLog(in.Completed, in.Notes, in.ActualMiles) {
		err := s.records.Delete(ctx, key)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			log.Errorf("clear workout %s: %s", key, err)
			return &LogResult{Outcome: LogFailed}, storeFailure(err)
		}
		return &LogResult{Outcome: LogCleared}, nil
	}

	record, err := s.load(ctx, key)
	if err != nil {
		return &LogResult{Outcome: LogFailed}, err
	}

	record.Completed = in.Completed
	record.Notes = in.Notes
	record.ActualMiles = in.ActualMiles
	record.ActualPace = in.ActualPace
	record.Duration = in.Duration
	record.DateLogged = s.now().UTC().Format(time.RFC3339)
	if in.Enrichment != nil {
		record.Enrichment = in.Enrichment
	}

	if err := s.records.Put(ctx, key, record); err != nil {
		log.Errorf("save workout %s: %s", key, err)
		return &LogResult{Outcome: LogFailed}, storeFailure(err)
	}
	return &LogResult{Outcome: LogSaved, Record: record}, nil
}

// EditWorkout records a modification of the planned workout. Completion fields are kept,
// and applying the same edit twice yields the same state apart from the timestamp.
func (s *workoutService) EditWorkout(ctx context.Context, in EditWorkoutInput) (*domain.WorkoutRecord, error) {
	if err := validateSlot(in.Week, in.Day); err != nil {
		return nil, err
	}
	key := domain.RecordKey(in.Week, in.Day)

	record, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}

	record.IsModified = true
	record.OriginalWorkout = in.OriginalWorkout
	record.OriginalMiles = in.OriginalMiles
	record.ModifiedWorkout = in.ModifiedWorkout
	record.ModifiedMiles = in.ModifiedMiles
	record.ModifiedType = in.ModifiedType
	record.ModificationReason = in.ModificationReason
	record.ModifiedDate = s.now().UTC().Format(time.RFC3339)

	if err := s.records.Put(ctx, key, record); err != nil {
		log.Errorf("save modification %s: %s", key, err)
		return nil, storeFailure(err)
	}
	return record, nil
}

// RevertWorkout drops the modification of a slot and keeps its completion data.
func (s *workoutService) RevertWorkout(ctx context.Context, week int, day string) (*domain.WorkoutRecord, error) {
	if err := validateSlot(week, day); err != nil {
		return nil, err
	}
	key := domain.RecordKey(week, day)

	record, err := s.records.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, storeFailure(err)
	}

	record.ClearModification()
	if err := s.records.Put(ctx, key, record); err != nil {
		log.Errorf("save revert %s: %s", key, err)
		return nil, storeFailure(err)
	}
	return record, nil
}

func (s *workoutService) GetAllRecords(ctx context.Context) (map[string]domain.WorkoutRecord, error) {
	records, err := s.records.ListAll(ctx)
	if err != nil {
		return nil, storeFailure(err)
	}
	return records, nil
}

func (s *workoutService) ResetAll(ctx context.Context) (int64, error) {
	n, err := s.records.ClearAll(ctx)
	if err != nil {
		return 0, storeFailure(err)
	}
	log.Infof("reset removed %d workout records", n)
	return n, nil
}

// GetPlanView merges every plan slot with its stored record. A modified slot reports the
// modified description, distance and type as its effective values.
func (s *workoutService) GetPlanView(ctx context.Context) ([]domain.WeekView, error) {
	records, err := s.records.ListAll(ctx)
	if err != nil {
		return nil, storeFailure(err)
	}

	weeks := s.catalog.Weeks()
	views := make([]domain.WeekView, 0, len(weeks))
	for _, w := range weeks {
		wv := domain.WeekView{
			WeekNum:    w.WeekNum,
			Dates:      w.Dates,
			TotalMiles: w.TotalMiles,
			NumRuns:    w.NumRuns,
			Phase:      w.Phase,
			Workouts:   make([]domain.SlotView, 0, len(w.Workouts)),
		}
		for _, slot := range w.Workouts {
			key := domain.RecordKey(w.WeekNum, slot.Day)
			sv := domain.SlotView{
				WorkoutSlot:      slot,
				Week:             w.WeekNum,
				Key:              key,
				EffectiveWorkout: slot.Workout,
				EffectiveMiles:   slot.Miles,
				EffectiveDayType: slot.DayType,
			}
			if rec, ok := records[key]; ok {
				sv.Record = &rec
				if rec.IsModified {
					sv.EffectiveWorkout = rec.ModifiedWorkout
					if rec.ModifiedMiles != nil {
						sv.EffectiveMiles = *rec.ModifiedMiles
					}
					if rec.ModifiedType != "" {
						sv.EffectiveDayType = rec.ModifiedType
					}
				}
			}
			wv.Workouts = append(wv.Workouts, sv)
		}
		views = append(views, wv)
	}
	return views, nil
}

// load returns the stored record or a fresh empty one.
func (s *workoutService) load(ctx context.Context, key string) (*domain.WorkoutRecord, error) {
	record, err := s.records.Get(ctx, key)
	if err == nil {
		return record, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return &domain.WorkoutRecord{}, nil
	}
	log.Errorf("load workout %s: %s", key, err)
	return nil, storeFailure(err)
}

func validateSlot(week int, day string) error {
	if week < 1 || strings.TrimSpace(day) == "" {
		return ErrInvalidSlot
	}
	return nil
}

func storeFailure(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreFailure, err)
}
