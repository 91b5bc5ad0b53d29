package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/domain/enrollment"
	"github.com/pharris560/ace-attendance/internal/infrastructure/repository/memory"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
	"github.com/pharris560/ace-attendance/internal/shared/services/sanitize"
)

type classFixture struct {
	classRepo      class.Repository
	enrollmentRepo enrollment.Repository
	attendanceRepo attendance.Repository

	create *CreateClassUseCase
	get    *GetClassUseCase
	update *UpdateClassUseCase
	remove *DeleteClassUseCase
	list   *ListClassesUseCase
	stats  *GetClassStatsUseCase
}

func newClassFixture(t *testing.T) *classFixture {
	t.Helper()

	store := memory.NewStore()
	classRepo := memory.NewClassRepository(store)
	enrollmentRepo := memory.NewEnrollmentRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	sanitizer := sanitize.NewStrict()
	log := logger.NewLogger()

	return &classFixture{
		classRepo:      classRepo,
		enrollmentRepo: enrollmentRepo,
		attendanceRepo: attendanceRepo,
		create:         NewCreateClassUseCase(classRepo, sanitizer, log),
		get:            NewGetClassUseCase(classRepo, log),
		update:         NewUpdateClassUseCase(classRepo, sanitizer, log),
		remove:         NewDeleteClassUseCase(classRepo, log),
		list:           NewListClassesUseCase(classRepo, enrollmentRepo, attendanceRepo, log),
		stats:          NewGetClassStatsUseCase(classRepo, attendanceRepo, log),
	}
}

func (f *classFixture) seedClass(t *testing.T, ownerID, name string) *class.Class {
	t.Helper()
	c, err := f.create.Execute(context.Background(), CreateClassCommand{
		OwnerID:  ownerID,
		Name:     name,
		Capacity: 30,
	})
	require.NoError(t, err)
	return c
}

func (f *classFixture) seedRecord(t *testing.T, classID, studentID, date string, status attendance.Status) {
	t.Helper()
	record, err := attendance.New("usr_marker", classID, studentID, date, status)
	require.NoError(t, err)
	require.NoError(t, f.attendanceRepo.Create(context.Background(), record))
}

func TestCreateClassValidation(t *testing.T) {
	f := newClassFixture(t)
	ctx := context.Background()

	_, err := f.create.Execute(ctx, CreateClassCommand{OwnerID: "usr_1", Name: "", Capacity: 30})
	assert.True(t, errors.IsValidationError(err))

	_, err = f.create.Execute(ctx, CreateClassCommand{OwnerID: "usr_1", Name: "Math101", Capacity: 0})
	assert.True(t, errors.IsValidationError(err))

	_, err = f.create.Execute(ctx, CreateClassCommand{OwnerID: "usr_1", Name: "Math101", Capacity: -3})
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateClassOwnershipMergesIntoNotFound(t *testing.T) {
	f := newClassFixture(t)
	ctx := context.Background()
	created := f.seedClass(t, "usr_owner", "Math101")

	name := "Hijacked"
	_, err := f.update.Execute(ctx, UpdateClassCommand{
		ActingUserID: "usr_other",
		ClassID:      created.ID,
		Name:         &name,
	})
	assert.True(t, errors.IsNotFoundError(err))

	// The failed mutation left the class unchanged.
	reread, err := f.get.Execute(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Math101", reread.Name)
}

func TestUpdateClassStatusValidation(t *testing.T) {
	f := newClassFixture(t)
	ctx := context.Background()
	created := f.seedClass(t, "usr_owner", "Math101")

	bad := "cancelled"
	_, err := f.update.Execute(ctx, UpdateClassCommand{
		ActingUserID: "usr_owner",
		ClassID:      created.ID,
		Status:       &bad,
	})
	assert.True(t, errors.IsValidationError(err))

	good := "completed"
	updated, err := f.update.Execute(ctx, UpdateClassCommand{
		ActingUserID: "usr_owner",
		ClassID:      created.ID,
		Status:       &good,
	})
	require.NoError(t, err)
	assert.Equal(t, class.StatusCompleted, updated.Status)
}

func TestDeleteClassByNonOwnerLeavesIt(t *testing.T) {
	f := newClassFixture(t)
	ctx := context.Background()
	created := f.seedClass(t, "usr_owner", "Math101")

	err := f.remove.Execute(ctx, "usr_other", created.ID)
	assert.True(t, errors.IsNotFoundError(err))

	_, err = f.get.Execute(ctx, created.ID)
	assert.NoError(t, err)
}

func TestListClassesEnrichment(t *testing.T) {
	f := newClassFixture(t)
	ctx := context.Background()
	c1 := f.seedClass(t, "usr_owner", "Math101")
	c2 := f.seedClass(t, "usr_other", "Bio202")

	for _, studentID := range []string{"stu_1", "stu_2"} {
		e, err := enrollment.New(c1.ID, studentID)
		require.NoError(t, err)
		require.NoError(t, f.enrollmentRepo.Create(ctx, e))
	}
	f.seedRecord(t, c1.ID, "stu_1", "2024-01-10", attendance.StatusPresent)
	f.seedRecord(t, c1.ID, "stu_2", "2024-01-10", attendance.StatusTardy)

	// Listing is public: both owners' classes appear.
	all, err := f.list.Execute(ctx, ListClassesCommand{ActingUserID: "usr_owner"})
	require.NoError(t, err)
	require.Len(t, all, 2)

	byID := make(map[string]ClassSummary)
	for _, summary := range all {
		byID[summary.Class.ID] = summary
	}
	assert.Equal(t, int64(2), byID[c1.ID].EnrolledCount)
	assert.Equal(t, int64(1), byID[c1.ID].Stats.Present)
	assert.Equal(t, int64(1), byID[c1.ID].Stats.Tardy)
	assert.Equal(t, int64(0), byID[c2.ID].EnrolledCount)

	owned, err := f.list.Execute(ctx, ListClassesCommand{ActingUserID: "usr_owner", OwnedOnly: true})
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, c1.ID, owned[0].Class.ID)
}

func TestClassStatsRangeIsInclusive(t *testing.T) {
	f := newClassFixture(t)
	ctx := context.Background()
	created := f.seedClass(t, "usr_owner", "Math101")

	f.seedRecord(t, created.ID, "stu_1", "2024-01-09", attendance.StatusAbsent)
	f.seedRecord(t, created.ID, "stu_1", "2024-01-10", attendance.StatusPresent)
	f.seedRecord(t, created.ID, "stu_1", "2024-01-11", attendance.StatusExcused)
	f.seedRecord(t, created.ID, "stu_1", "2024-01-12", attendance.StatusTardy)

	result, err := f.stats.Execute(ctx, GetClassStatsCommand{
		ClassID:  created.ID,
		DateFrom: "2024-01-10",
		DateTo:   "2024-01-11",
	})
	require.NoError(t, err)

	// Both boundary dates count; the statuses sum to the matching rows.
	assert.Equal(t, int64(1), result.Stats.Present)
	assert.Equal(t, int64(1), result.Stats.Excused)
	assert.Equal(t, int64(0), result.Stats.Absent)
	assert.Equal(t, int64(0), result.Stats.Tardy)
	assert.Equal(t, int64(2), result.Total)
}

func TestClassStatsRejectsMalformedDates(t *testing.T) {
	f := newClassFixture(t)
	created := f.seedClass(t, "usr_owner", "Math101")

	_, err := f.stats.Execute(context.Background(), GetClassStatsCommand{
		ClassID:  created.ID,
		DateFrom: "01/10/2024",
	})
	assert.True(t, errors.IsValidationError(err))
}

func TestClassStatsUnknownClass(t *testing.T) {
	f := newClassFixture(t)

	_, err := f.stats.Execute(context.Background(), GetClassStatsCommand{ClassID: "cls_missing"})
	assert.True(t, errors.IsNotFoundError(err))
}
