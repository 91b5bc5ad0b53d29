package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classusecases "github.com/pharris560/ace-attendance/internal/application/class/usecases"
	enrollmentusecases "github.com/pharris560/ace-attendance/internal/application/enrollment/usecases"
	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/domain/enrollment"
	"github.com/pharris560/ace-attendance/internal/domain/student"
	"github.com/pharris560/ace-attendance/internal/domain/user"
	"github.com/pharris560/ace-attendance/internal/infrastructure/repository/memory"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
	"github.com/pharris560/ace-attendance/internal/shared/services/sanitize"
)

type attendanceFixture struct {
	userRepo       user.Repository
	classRepo      class.Repository
	studentRepo    student.Repository
	enrollmentRepo enrollment.Repository
	attendanceRepo attendance.Repository

	mark        *MarkAttendanceUseCase
	bulkMark    *BulkMarkAttendanceUseCase
	update      *UpdateAttendanceUseCase
	remove      *DeleteAttendanceUseCase
	listByClass *ListClassAttendanceUseCase
	listByStu   *ListStudentAttendanceUseCase

	enroll *enrollmentusecases.EnrollStudentUseCase
	stats  *classusecases.GetClassStatsUseCase
	delCls *classusecases.DeleteClassUseCase
}

func newAttendanceFixture(t *testing.T) *attendanceFixture {
	t.Helper()

	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	classRepo := memory.NewClassRepository(store)
	studentRepo := memory.NewStudentRepository(store)
	enrollmentRepo := memory.NewEnrollmentRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	sanitizer := sanitize.NewStrict()
	log := logger.NewLogger()

	mark := NewMarkAttendanceUseCase(classRepo, studentRepo, attendanceRepo, sanitizer, log)

	return &attendanceFixture{
		userRepo:       userRepo,
		classRepo:      classRepo,
		studentRepo:    studentRepo,
		enrollmentRepo: enrollmentRepo,
		attendanceRepo: attendanceRepo,
		mark:           mark,
		bulkMark:       NewBulkMarkAttendanceUseCase(mark, log),
		update:         NewUpdateAttendanceUseCase(attendanceRepo, sanitizer, log),
		remove:         NewDeleteAttendanceUseCase(attendanceRepo, log),
		listByClass:    NewListClassAttendanceUseCase(attendanceRepo, classRepo, studentRepo, userRepo, log),
		listByStu:      NewListStudentAttendanceUseCase(attendanceRepo, classRepo, studentRepo, userRepo, log),
		enroll:         enrollmentusecases.NewEnrollStudentUseCase(classRepo, studentRepo, enrollmentRepo, log),
		stats:          classusecases.NewGetClassStatsUseCase(classRepo, attendanceRepo, log),
		delCls:         classusecases.NewDeleteClassUseCase(classRepo, log),
	}
}

func (f *attendanceFixture) seedUser(t *testing.T, username string) *user.User {
	t.Helper()
	u, err := user.NewUser(username, "irrelevant-hash", "", "")
	require.NoError(t, err)
	require.NoError(t, f.userRepo.Create(context.Background(), u))
	return u
}

func (f *attendanceFixture) seedClass(t *testing.T, ownerID, name string) *class.Class {
	t.Helper()
	c, err := class.New(ownerID, name, "", 30, "")
	require.NoError(t, err)
	require.NoError(t, f.classRepo.Create(context.Background(), c))
	return c
}

func (f *attendanceFixture) seedStudent(t *testing.T, ownerID, number string) *student.Student {
	t.Helper()
	st, err := student.New(ownerID, number, "Ada", "Lovelace", "", "")
	require.NoError(t, err)
	require.NoError(t, f.studentRepo.Create(context.Background(), st))
	return st
}

// Register, create class and student, enroll, mark present, read stats.
func TestAttendanceLifecycle(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()

	alice := f.seedUser(t, "alice")
	math := f.seedClass(t, alice.ID, "Math101")
	stu := f.seedStudent(t, alice.ID, "STU001")

	_, err := f.enroll.Execute(ctx, enrollmentusecases.EnrollStudentCommand{
		ActingUserID: alice.ID, ClassID: math.ID, StudentID: stu.ID,
	})
	require.NoError(t, err)

	record, err := f.mark.Execute(ctx, MarkAttendanceCommand{
		MarkedBy:  alice.ID,
		ClassID:   math.ID,
		StudentID: stu.ID,
		Date:      "2024-01-10",
		Status:    "present",
	})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, record.MarkedBy)

	result, err := f.stats.Execute(ctx, classusecases.GetClassStatsCommand{ClassID: math.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Stats.Present)
	assert.Equal(t, int64(0), result.Stats.Absent)
	assert.Equal(t, int64(0), result.Stats.Tardy)
	assert.Equal(t, int64(0), result.Stats.Excused)
}

// Deleting the class erases its enrollments and attendance; nothing remains
// reachable by class or by student.
func TestClassDeletionCascades(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()

	alice := f.seedUser(t, "alice")
	math := f.seedClass(t, alice.ID, "Math101")
	stu := f.seedStudent(t, alice.ID, "STU001")

	_, err := f.enroll.Execute(ctx, enrollmentusecases.EnrollStudentCommand{
		ActingUserID: alice.ID, ClassID: math.ID, StudentID: stu.ID,
	})
	require.NoError(t, err)

	record, err := f.mark.Execute(ctx, MarkAttendanceCommand{
		MarkedBy: alice.ID, ClassID: math.ID, StudentID: stu.ID,
		Date: "2024-01-10", Status: "present",
	})
	require.NoError(t, err)

	require.NoError(t, f.delCls.Execute(ctx, alice.ID, math.ID))

	enrollments, err := f.enrollmentRepo.ListByClassID(ctx, math.ID)
	require.NoError(t, err)
	assert.Empty(t, enrollments)

	stored, err := f.attendanceRepo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	byStudent, err := f.listByStu.Execute(ctx, stu.ID)
	require.NoError(t, err)
	assert.Empty(t, byStudent)
}

func TestMarkAttendanceValidation(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()

	alice := f.seedUser(t, "alice")
	math := f.seedClass(t, alice.ID, "Math101")
	stu := f.seedStudent(t, alice.ID, "STU001")

	_, err := f.mark.Execute(ctx, MarkAttendanceCommand{
		MarkedBy: alice.ID, ClassID: math.ID, StudentID: stu.ID,
		Date: "2024-1-10", Status: "present",
	})
	assert.True(t, errors.IsValidationError(err), "unpadded date must be rejected")

	_, err = f.mark.Execute(ctx, MarkAttendanceCommand{
		MarkedBy: alice.ID, ClassID: math.ID, StudentID: stu.ID,
		Date: "2024-01-10", Status: "asleep",
	})
	assert.True(t, errors.IsValidationError(err))

	_, err = f.mark.Execute(ctx, MarkAttendanceCommand{
		MarkedBy: alice.ID, ClassID: "cls_missing", StudentID: stu.ID,
		Date: "2024-01-10", Status: "present",
	})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestBulkMarkIsPerRow(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()

	alice := f.seedUser(t, "alice")
	math := f.seedClass(t, alice.ID, "Math101")
	stu1 := f.seedStudent(t, alice.ID, "STU001")
	stu2 := f.seedStudent(t, alice.ID, "STU002")

	results := f.bulkMark.Execute(ctx, BulkMarkAttendanceCommand{
		MarkedBy: alice.ID,
		Items: []MarkAttendanceCommand{
			{ClassID: math.ID, StudentID: stu1.ID, Date: "2024-01-10", Status: "present"},
			{ClassID: math.ID, StudentID: "stu_missing", Date: "2024-01-10", Status: "present"},
			{ClassID: math.ID, StudentID: stu2.ID, Date: "2024-01-10", Status: "tardy"},
		},
	})
	require.Len(t, results, 3)

	assert.NotNil(t, results[0].Record)
	assert.Empty(t, results[0].Error)
	assert.Nil(t, results[1].Record)
	assert.NotEmpty(t, results[1].Error)
	// The failed middle row did not stop the last one.
	assert.NotNil(t, results[2].Record)

	result, err := f.stats.Execute(ctx, classusecases.GetClassStatsCommand{ClassID: math.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
}

func TestOnlyMarkerMayMutateRecord(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()

	alice := f.seedUser(t, "alice")
	bob := f.seedUser(t, "bob")
	math := f.seedClass(t, alice.ID, "Math101")
	stu := f.seedStudent(t, alice.ID, "STU001")

	record, err := f.mark.Execute(ctx, MarkAttendanceCommand{
		MarkedBy: alice.ID, ClassID: math.ID, StudentID: stu.ID,
		Date: "2024-01-10", Status: "present",
	})
	require.NoError(t, err)

	newStatus := "absent"
	_, err = f.update.Execute(ctx, UpdateAttendanceCommand{
		ActingUserID: bob.ID, RecordID: record.ID, Status: &newStatus,
	})
	assert.True(t, errors.IsNotFoundError(err))

	err = f.remove.Execute(ctx, bob.ID, record.ID)
	assert.True(t, errors.IsNotFoundError(err))

	// The record is unchanged and still mutable by its marker.
	updated, err := f.update.Execute(ctx, UpdateAttendanceCommand{
		ActingUserID: alice.ID, RecordID: record.ID, Status: &newStatus,
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsent, updated.Status)
}

func TestListClassAttendanceEnriched(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()

	alice := f.seedUser(t, "alice")
	math := f.seedClass(t, alice.ID, "Math101")
	stu := f.seedStudent(t, alice.ID, "STU001")

	_, err := f.mark.Execute(ctx, MarkAttendanceCommand{
		MarkedBy: alice.ID, ClassID: math.ID, StudentID: stu.ID,
		Date: "2024-01-10", Status: "present",
		Location: &attendance.Geolocation{Latitude: 40.7, Longitude: -74.0, Accuracy: 5},
	})
	require.NoError(t, err)

	enriched, err := f.listByClass.Execute(ctx, ListClassAttendanceCommand{ClassID: math.ID})
	require.NoError(t, err)
	require.Len(t, enriched, 1)

	assert.Equal(t, math.ID, enriched[0].Class.ID)
	assert.Equal(t, "STU001", enriched[0].Student.StudentNumber)
	assert.Equal(t, "alice", enriched[0].MarkedBy.Username)
	require.NotNil(t, enriched[0].Record.Location)
	assert.InDelta(t, 40.7, enriched[0].Record.Location.Latitude, 0.001)
}

func TestListClassAttendanceDateRange(t *testing.T) {
	f := newAttendanceFixture(t)
	ctx := context.Background()

	alice := f.seedUser(t, "alice")
	math := f.seedClass(t, alice.ID, "Math101")
	stu := f.seedStudent(t, alice.ID, "STU001")

	for _, date := range []string{"2024-01-09", "2024-01-10", "2024-01-11"} {
		_, err := f.mark.Execute(ctx, MarkAttendanceCommand{
			MarkedBy: alice.ID, ClassID: math.ID, StudentID: stu.ID,
			Date: date, Status: "present",
		})
		require.NoError(t, err)
	}

	enriched, err := f.listByClass.Execute(ctx, ListClassAttendanceCommand{
		ClassID: math.ID, DateFrom: "2024-01-10", DateTo: "2024-01-10",
	})
	require.NoError(t, err)
	require.Len(t, enriched, 1)
	assert.Equal(t, "2024-01-10", enriched[0].Record.Date)
}
