package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharris560/ace-attendance/internal/domain/attendance"
	"github.com/pharris560/ace-attendance/internal/domain/class"
	"github.com/pharris560/ace-attendance/internal/domain/enrollment"
	"github.com/pharris560/ace-attendance/internal/domain/student"
	"github.com/pharris560/ace-attendance/internal/infrastructure/repository/memory"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
	"github.com/pharris560/ace-attendance/internal/shared/logger"
)

type enrollmentFixture struct {
	classRepo      class.Repository
	studentRepo    student.Repository
	enrollmentRepo enrollment.Repository
	attendanceRepo attendance.Repository

	enroll   *EnrollStudentUseCase
	unenroll *UnenrollStudentUseCase
	roster   *GetClassRosterUseCase
}

func newEnrollmentFixture(t *testing.T) *enrollmentFixture {
	t.Helper()

	store := memory.NewStore()
	classRepo := memory.NewClassRepository(store)
	studentRepo := memory.NewStudentRepository(store)
	enrollmentRepo := memory.NewEnrollmentRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	log := logger.NewLogger()

	return &enrollmentFixture{
		classRepo:      classRepo,
		studentRepo:    studentRepo,
		enrollmentRepo: enrollmentRepo,
		attendanceRepo: attendanceRepo,
		enroll:         NewEnrollStudentUseCase(classRepo, studentRepo, enrollmentRepo, log),
		unenroll:       NewUnenrollStudentUseCase(classRepo, enrollmentRepo, log),
		roster:         NewGetClassRosterUseCase(classRepo, studentRepo, enrollmentRepo, attendanceRepo, log),
	}
}

func (f *enrollmentFixture) seedClass(t *testing.T, ownerID string) *class.Class {
	t.Helper()
	c, err := class.New(ownerID, "Math101", "", 30, "")
	require.NoError(t, err)
	require.NoError(t, f.classRepo.Create(context.Background(), c))
	return c
}

func (f *enrollmentFixture) seedStudent(t *testing.T, ownerID, number string) *student.Student {
	t.Helper()
	st, err := student.New(ownerID, number, "Ada", "", "", "")
	require.NoError(t, err)
	require.NoError(t, f.studentRepo.Create(context.Background(), st))
	return st
}

func TestEnrollAndDuplicateConflict(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	c := f.seedClass(t, "usr_owner")
	st := f.seedStudent(t, "usr_owner", "STU001")

	_, err := f.enroll.Execute(ctx, EnrollStudentCommand{
		ActingUserID: "usr_owner", ClassID: c.ID, StudentID: st.ID,
	})
	require.NoError(t, err)

	_, err = f.enroll.Execute(ctx, EnrollStudentCommand{
		ActingUserID: "usr_owner", ClassID: c.ID, StudentID: st.ID,
	})
	assert.True(t, errors.IsConflictError(err))
}

func TestEnrollRequiresClassOwnership(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	c := f.seedClass(t, "usr_owner")
	st := f.seedStudent(t, "usr_owner", "STU001")

	_, err := f.enroll.Execute(ctx, EnrollStudentCommand{
		ActingUserID: "usr_other", ClassID: c.ID, StudentID: st.ID,
	})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUnenrollThenReenroll(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	c := f.seedClass(t, "usr_owner")
	st := f.seedStudent(t, "usr_owner", "STU001")

	_, err := f.enroll.Execute(ctx, EnrollStudentCommand{
		ActingUserID: "usr_owner", ClassID: c.ID, StudentID: st.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.unenroll.Execute(ctx, UnenrollStudentCommand{
		ActingUserID: "usr_owner", ClassID: c.ID, StudentID: st.ID,
	}))

	// A second unenroll finds nothing.
	err = f.unenroll.Execute(ctx, UnenrollStudentCommand{
		ActingUserID: "usr_owner", ClassID: c.ID, StudentID: st.ID,
	})
	assert.True(t, errors.IsNotFoundError(err))

	// The slot is free again.
	_, err = f.enroll.Execute(ctx, EnrollStudentCommand{
		ActingUserID: "usr_owner", ClassID: c.ID, StudentID: st.ID,
	})
	assert.NoError(t, err)
}

func TestRosterLatestAttendanceLastWriteWins(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	c := f.seedClass(t, "usr_owner")
	st := f.seedStudent(t, "usr_owner", "STU001")

	_, err := f.enroll.Execute(ctx, EnrollStudentCommand{
		ActingUserID: "usr_owner", ClassID: c.ID, StudentID: st.ID,
	})
	require.NoError(t, err)

	early, err := attendance.New("usr_owner", c.ID, st.ID, "2024-01-10", attendance.StatusAbsent)
	require.NoError(t, err)
	require.NoError(t, f.attendanceRepo.Create(ctx, early))

	// Same date, marked later: this row wins the "latest" resolution.
	late, err := attendance.New("usr_owner", c.ID, st.ID, "2024-01-10", attendance.StatusPresent)
	require.NoError(t, err)
	late.MarkedAt = early.MarkedAt.Add(time.Second)
	require.NoError(t, f.attendanceRepo.Create(ctx, late))

	older, err := attendance.New("usr_owner", c.ID, st.ID, "2024-01-09", attendance.StatusTardy)
	require.NoError(t, err)
	require.NoError(t, f.attendanceRepo.Create(ctx, older))

	roster, err := f.roster.Execute(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	require.NotNil(t, roster[0].LatestAttendance)
	assert.Equal(t, late.ID, roster[0].LatestAttendance.ID)
	assert.Equal(t, attendance.StatusPresent, roster[0].LatestAttendance.Status)
}

func TestRosterOmitsStudentsWithoutAttendance(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	c := f.seedClass(t, "usr_owner")
	st := f.seedStudent(t, "usr_owner", "STU001")

	_, err := f.enroll.Execute(ctx, EnrollStudentCommand{
		ActingUserID: "usr_owner", ClassID: c.ID, StudentID: st.ID,
	})
	require.NoError(t, err)

	roster, err := f.roster.Execute(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Nil(t, roster[0].LatestAttendance)
}
