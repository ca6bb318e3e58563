package service_test

import (
	"alcyxob/training-tracker/internal/domain"
	"alcyxob/training-tracker/internal/plan"
	"alcyxob/training-tracker/internal/repository"
	filestore "alcyxob/training-tracker/internal/repository/file"
	"alcyxob/training-tracker/internal/service"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newFileStore(t *testing.T) *filestore.Store {
	t.Helper()
	dir := t.TempDir()
	st, err := filestore.Open(filepath.Join(dir, "workouts.json"), filepath.Join(dir, "token.json"))
	require.NoError(t, err)
	return st
}

func floatPtr(v float64) *float64 { return &v }

func TestLogWorkout_SavesAndMerges(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	svc := service.NewWorkoutService(store, plan.NewCatalog())

	res, err := svc.LogWorkout(ctx, service.LogWorkoutInput{
		Week:        1,
		Day:         "Mon 12/1",
		Completed:   true,
		ActualMiles: "3.1",
		ActualPace:  "9:30",
		Duration:    "29:27",
		Notes:       "felt easy",
	})
	require.NoError(t, err)
	assert.Equal(t, service.LogSaved, res.Outcome)
	require.NotNil(t, res.Record)

	stored, err := store.Get(ctx, domain.RecordKey(1, "Mon 12/1"))
	require.NoError(t, err)
	assert.True(t, stored.Completed)
	assert.Equal(t, "3.1", stored.ActualMiles)
	assert.Equal(t, "9:30", stored.ActualPace)
	assert.Equal(t, "29:27", stored.Duration)
	assert.Equal(t, "felt easy", stored.Notes)
	_, err = time.Parse(time.RFC3339, stored.DateLogged)
	assert.NoError(t, err)
}

func TestLogWorkout_KeepsModificationFields(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	svc := service.NewWorkoutService(store, plan.NewCatalog())

	_, err := svc.EditWorkout(ctx, service.EditWorkoutInput{
		Week:               2,
		Day:                "Mon 12/8",
		OriginalWorkout:    "5 mi Easy",
		OriginalMiles:      floatPtr(5),
		ModifiedWorkout:    "3 mi Easy",
		ModifiedMiles:      floatPtr(3),
		ModifiedType:       "DAY 2",
		ModificationReason: "sore calf",
	})
	require.NoError(t, err)

	res, err := svc.LogWorkout(ctx, service.LogWorkoutInput{Week: 2, Day: "Mon 12/8", Completed: true, ActualMiles: "3"})
	require.NoError(t, err)
	assert.Equal(t, service.LogSaved, res.Outcome)

	stored, err := store.Get(ctx, domain.RecordKey(2, "Mon 12/8"))
	require.NoError(t, err)
	assert.True(t, stored.Completed)
	assert.True(t, stored.IsModified)
	assert.Equal(t, "3 mi Easy", stored.ModifiedWorkout)
	require.NotNil(t, stored.ModifiedMiles)
	assert.Equal(t, 3.0, *stored.ModifiedMiles)
	assert.Equal(t, "sore calf", stored.ModificationReason)
}

func TestLogWorkout_EmptyInputDeletes(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	svc := service.NewWorkoutService(store, plan.NewCatalog())

	_, err := svc.LogWorkout(ctx, service.LogWorkoutInput{Week: 3, Day: "Wed 12/17", Completed: true, ActualMiles: "5"})
	require.NoError(t, err)

	for _, miles := range []string{"", "0", "  "} {
		res, err := svc.LogWorkout(ctx, service.LogWorkoutInput{Week: 3, Day: "Wed 12/17", ActualMiles: miles})
		require.NoError(t, err)
		assert.Equal(t, service.LogCleared, res.Outcome)
		assert.Nil(t, res.Record)

		_, err = store.Get(ctx, domain.RecordKey(3, "Wed 12/17"))
		assert.ErrorIs(t, err, repository.ErrNotFound)
	}
}

func TestLogWorkout_EmptyInputWithoutRecordIsCleared(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockWorkoutRecordRepository(ctrl)
	svc := service.NewWorkoutService(repo, plan.NewCatalog())

	repo.EXPECT().Delete(gomock.Any(), "w4_dMon 12/22").Return(repository.ErrNotFound).Times(1)

	res, err := svc.LogWorkout(context.Background(), service.LogWorkoutInput{Week: 4, Day: "Mon 12/22"})
	require.NoError(t, err)
	assert.Equal(t, service.LogCleared, res.Outcome)
}

func TestLogWorkout_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockWorkoutRecordRepository(ctrl)
	svc := service.NewWorkoutService(repo, plan.NewCatalog())

	boom := errors.New("disk full")
	repo.EXPECT().Get(gomock.Any(), "w1_dMon 12/1").Return(nil, repository.ErrNotFound).Times(1)
	repo.EXPECT().Put(gomock.Any(), "w1_dMon 12/1", gomock.Any()).Return(boom).Times(1)

	res, err := svc.LogWorkout(context.Background(), service.LogWorkoutInput{Week: 1, Day: "Mon 12/1", Completed: true})
	assert.ErrorIs(t, err, service.ErrStoreFailure)
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, res)
	assert.Equal(t, service.LogFailed, res.Outcome)
	assert.Nil(t, res.Record)
}

func TestLogWorkout_DeleteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockWorkoutRecordRepository(ctrl)
	svc := service.NewWorkoutService(repo, plan.NewCatalog())

	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(repository.ErrStoreUnavailable).Times(1)

	res, err := svc.LogWorkout(context.Background(), service.LogWorkoutInput{Week: 1, Day: "Mon 12/1"})
	assert.ErrorIs(t, err, service.ErrStoreFailure)
	assert.Equal(t, service.LogFailed, res.Outcome)
}

func TestLogWorkout_InvalidSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockWorkoutRecordRepository(ctrl)
	svc := service.NewWorkoutService(repo, plan.NewCatalog())

	_, err := svc.LogWorkout(context.Background(), service.LogWorkoutInput{Week: 0, Day: "Mon 12/1", Completed: true})
	assert.ErrorIs(t, err, service.ErrInvalidSlot)

	_, err = svc.LogWorkout(context.Background(), service.LogWorkoutInput{Week: 1, Day: " ", Completed: true})
	assert.ErrorIs(t, err, service.ErrInvalidSlot)
}

func TestLogWorkout_AttachesEnrichment(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	svc := service.NewWorkoutService(store, plan.NewCatalog())

	enrichment := map[string]any{"id": float64(42), "name": "Morning Run"}
	_, err := svc.LogWorkout(ctx, service.LogWorkoutInput{Week: 1, Day: "Tue 12/2", Completed: true, Enrichment: enrichment})
	require.NoError(t, err)

	// A later log without enrichment keeps the attached activity.
	_, err = svc.LogWorkout(ctx, service.LogWorkoutInput{Week: 1, Day: "Tue 12/2", Completed: true, Notes: "edit"})
	require.NoError(t, err)

	stored, err := store.Get(ctx, domain.RecordKey(1, "Tue 12/2"))
	require.NoError(t, err)
	assert.Equal(t, enrichment, stored.Enrichment)
	assert.Equal(t, "edit", stored.Notes)
}

func TestEditWorkout_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	svc := service.NewWorkoutService(store, plan.NewCatalog())

	in := service.EditWorkoutInput{
		Week:               5,
		Day:                "Sun 1/4",
		OriginalWorkout:    "11 mi Long Run",
		OriginalMiles:      floatPtr(11),
		ModifiedWorkout:    "Cross-train 45 min",
		ModifiedMiles:      floatPtr(0),
		ModifiedType:       domain.DayTypeRest,
		ModificationReason: "travel",
	}

	first, err := svc.EditWorkout(ctx, in)
	require.NoError(t, err)
	second, err := svc.EditWorkout(ctx, in)
	require.NoError(t, err)

	first.ModifiedDate, second.ModifiedDate = "", ""
	assert.Equal(t, first, second)
	assert.True(t, second.IsModified)
	assert.False(t, second.Completed)
}

func TestEditWorkout_KeepsCompletion(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	svc := service.NewWorkoutService(store, plan.NewCatalog())

	_, err := svc.LogWorkout(ctx, service.LogWorkoutInput{Week: 6, Day: "Tue 1/6", Completed: true, ActualMiles: "4.2", Notes: "hills"})
	require.NoError(t, err)

	rec, err := svc.EditWorkout(ctx, service.EditWorkoutInput{Week: 6, Day: "Tue 1/6", ModifiedWorkout: "hill repeats", ModifiedMiles: floatPtr(4.5)})
	require.NoError(t, err)
	assert.True(t, rec.Completed)
	assert.Equal(t, "4.2", rec.ActualMiles)
	assert.Equal(t, "hills", rec.Notes)
	assert.NotEmpty(t, rec.ModifiedDate)
}

func TestRevertWorkout(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	svc := service.NewWorkoutService(store, plan.NewCatalog())

	_, err := svc.LogWorkout(ctx, service.LogWorkoutInput{Week: 7, Day: "Sun 1/18", Completed: true, ActualMiles: "6", Notes: "windy"})
	require.NoError(t, err)
	_, err = svc.EditWorkout(ctx, service.EditWorkoutInput{Week: 7, Day: "Sun 1/18", ModifiedWorkout: "5 mi", ModifiedMiles: floatPtr(5), ModificationReason: "wind"})
	require.NoError(t, err)

	rec, err := svc.RevertWorkout(ctx, 7, "Sun 1/18")
	require.NoError(t, err)
	assert.False(t, rec.IsModified)
	assert.Empty(t, rec.ModifiedWorkout)
	assert.Nil(t, rec.ModifiedMiles)
	assert.Empty(t, rec.ModificationReason)
	assert.True(t, rec.Completed)
	assert.Equal(t, "6", rec.ActualMiles)
	assert.Equal(t, "windy", rec.Notes)

	stored, err := store.Get(ctx, domain.RecordKey(7, "Sun 1/18"))
	require.NoError(t, err)
	assert.Equal(t, rec, stored)
}

func TestRevertWorkout_NotFound(t *testing.T) {
	svc := service.NewWorkoutService(newFileStore(t), plan.NewCatalog())

	_, err := svc.RevertWorkout(context.Background(), 1, "Mon 12/1")
	assert.ErrorIs(t, err, service.ErrWorkoutNotFound)
}

func TestRevertWorkout_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockWorkoutRecordRepository(ctrl)
	svc := service.NewWorkoutService(repo, plan.NewCatalog())

	repo.EXPECT().Get(gomock.Any(), "w1_dMon 12/1").Return(nil, repository.ErrStoreUnavailable).Times(1)

	_, err := svc.RevertWorkout(context.Background(), 1, "Mon 12/1")
	assert.ErrorIs(t, err, service.ErrStoreFailure)
	assert.NotErrorIs(t, err, service.ErrWorkoutNotFound)
}

func TestResetAll(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	svc := service.NewWorkoutService(store, plan.NewCatalog())

	for _, day := range []string{"Mon 12/1", "Tue 12/2", "Thu 12/4"} {
		_, err := svc.LogWorkout(ctx, service.LogWorkoutInput{Week: 1, Day: day, Completed: true})
		require.NoError(t, err)
	}

	n, err := svc.ResetAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	all, err := svc.GetAllRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetPlanView_EffectiveValues(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	catalog := plan.NewCatalog()
	svc := service.NewWorkoutService(store, catalog)

	week1, ok := catalog.Week(1)
	require.True(t, ok)
	slot := week1.Workouts[0]

	_, err := svc.EditWorkout(ctx, service.EditWorkoutInput{
		Week:            1,
		Day:             slot.Day,
		OriginalWorkout: slot.Workout,
		OriginalMiles:   floatPtr(slot.Miles),
		ModifiedWorkout: "Swapped for bike",
		ModifiedMiles:   floatPtr(0),
		ModifiedType:    domain.DayTypeRest,
	})
	require.NoError(t, err)

	views, err := svc.GetPlanView(ctx)
	require.NoError(t, err)
	require.Len(t, views, len(catalog.Weeks()))

	sv := views[0].Workouts[0]
	assert.Equal(t, domain.RecordKey(1, slot.Day), sv.Key)
	require.NotNil(t, sv.Record)
	assert.Equal(t, "Swapped for bike", sv.EffectiveWorkout)
	assert.Equal(t, 0.0, sv.EffectiveMiles)
	assert.Equal(t, domain.DayTypeRest, sv.EffectiveDayType)
	assert.Equal(t, slot.Workout, sv.Workout)

	untouched := views[0].Workouts[1]
	assert.Nil(t, untouched.Record)
	assert.Equal(t, untouched.Workout, untouched.EffectiveWorkout)
	assert.Equal(t, untouched.Miles, untouched.EffectiveMiles)
}

func TestGetPlanView_ShowsLoggedWorkout(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	catalog := plan.NewCatalog()
	svc := service.NewWorkoutService(store, catalog)

	_, err := svc.LogWorkout(ctx, service.LogWorkoutInput{Week: 2, Day: "Wed 12/10", Completed: true, ActualMiles: "6.2"})
	require.NoError(t, err)

	views, err := svc.GetPlanView(ctx)
	require.NoError(t, err)

	var found bool
	for _, sv := range views[1].Workouts {
		if sv.Day != "Wed 12/10" {
			assert.Nil(t, sv.Record, sv.Day)
			continue
		}
		found = true
		require.NotNil(t, sv.Record)
		assert.True(t, sv.Record.Completed)
		assert.Equal(t, "6.2", sv.Record.ActualMiles)
	}
	assert.True(t, found)
}
