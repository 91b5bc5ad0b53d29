package memory

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
	"github.com/pharris560/ace-attendance/internal/domain/user"
	"github.com/pharris560/ace-attendance/internal/shared/errors"
)

func seedClassWithAttendance(t *testing.T, store *Store) (*class.Class, *student.Student, *enrollment.Enrollment, *attendance.Record) {
	t.Helper()
	ctx := context.Background()

	c, err := class.New("usr_owner", "Math101", "Ms. Reyes", 30, "MWF 09:00")
	require.NoError(t, err)
	require.NoError(t, NewClassRepository(store).Create(ctx, c))

	st, err := student.New("usr_owner", "STU001", "Ada", "Lovelace", "", "")
	require.NoError(t, err)
	require.NoError(t, NewStudentRepository(store).Create(ctx, st))

	e, err := enrollment.New(c.ID, st.ID)
	require.NoError(t, err)
	require.NoError(t, NewEnrollmentRepository(store).Create(ctx, e))

	rec, err := attendance.New("usr_owner", c.ID, st.ID, "2024-01-10", attendance.StatusPresent)
	require.NoError(t, err)
	require.NoError(t, NewAttendanceRepository(store).Create(ctx, rec))

	return c, st, e, rec
}

func TestClassRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	c, st, _, rec := seedClassWithAttendance(t, store)

	require.NoError(t, NewClassRepository(store).Delete(ctx, c.ID))

	enrollments, err := NewEnrollmentRepository(store).ListByClassID(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, enrollments)

	records, err := NewAttendanceRepository(store).ListByClassID(ctx, c.ID, "", "")
	require.NoError(t, err)
	assert.Empty(t, records)

	got, err := NewAttendanceRepository(store).GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// The student itself survives the class deletion.
	gotStudent, err := NewStudentRepository(store).GetByID(ctx, st.ID)
	require.NoError(t, err)
	require.NotNil(t, gotStudent)
}

func TestStudentRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	c, st, _, _ := seedClassWithAttendance(t, store)

	require.NoError(t, NewStudentRepository(store).Delete(ctx, st.ID))

	enrollments, err := NewEnrollmentRepository(store).ListByClassID(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, enrollments)

	records, err := NewAttendanceRepository(store).ListByStudentID(ctx, st.ID)
	require.NoError(t, err)
	assert.Empty(t, records)

	// The student number is free again after deletion.
	again, err := student.New("usr_owner", "STU001", "Ada", "Lovelace", "", "")
	require.NoError(t, err)
	assert.NoError(t, NewStudentRepository(store).Create(ctx, again))
}

func TestStudentRepository_StudentNumberUnique(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewStudentRepository(store)

	first, err := student.New("usr_a", "STU001", "Ada", "", "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	dup, err := student.New("usr_b", "STU001", "Grace", "", "", "")
	require.NoError(t, err)
	err = repo.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestEnrollmentRepository_EnrolledUnique(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	c, st, _, _ := seedClassWithAttendance(t, store)

	dup, err := enrollment.New(c.ID, st.ID)
	require.NoError(t, err)
	err = NewEnrollmentRepository(store).Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestUserRepository_UsernameUnique(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewUserRepository(store)

	alice, err := user.NewUser("alice", "salt:hash", "Alice", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, alice))

	dup, err := user.NewUser("alice", "salt:hash", "Other Alice", "")
	require.NoError(t, err)
	err = repo.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, alice.ID, got.ID)
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewSessionRepository(store)

	live, err := user.NewSession("usr_a", "hash-live", time.Hour)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, live))

	stale, err := user.NewSession("usr_a", "hash-stale", time.Hour)
	require.NoError(t, err)
	stale.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	require.NoError(t, repo.Create(ctx, stale))

	removed, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err := repo.GetByTokenHash(ctx, "hash-stale")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAttendanceRepository_DateRangeLexical(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewAttendanceRepository(store)

	for _, date := range []string{"2024-01-09", "2024-01-10", "2024-02-01"} {
		rec, err := attendance.New("usr_owner", "cls_x", "stu_x", date, attendance.StatusPresent)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, rec))
	}

	records, err := repo.ListByClassID(ctx, "cls_x", "2024-01-10", "2024-01-31")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-01-10", records[0].Date)

	// Open bounds return everything.
	records, err = repo.ListByClassID(ctx, "cls_x", "", "")
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestAttendanceRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewAttendanceRepository(store)

	rec, err := attendance.New("usr_owner", "cls_x", "stu_x", "2024-01-10", attendance.StatusPresent)
	require.NoError(t, err)
	rec.Location = &attendance.Geolocation{Latitude: 1, Longitude: 2, Accuracy: 5}
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	got.Status = attendance.StatusAbsent
	got.Location.Latitude = 99

	fresh, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, fresh.Status)
	assert.Equal(t, float64(1), fresh.Location.Latitude)
}
