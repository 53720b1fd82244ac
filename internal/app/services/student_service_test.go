package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/repositories/repotest"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

func newStudent(cn string) *models.Student {
	return &models.Student{
		ControlNumber:   cn,
		FirstName:       "Ana",
		PaternalSurname: "Lopez",
		MaternalSurname: "Diaz",
		Semester:        3,
	}
}

func TestStudentService_CreateThenGet(t *testing.T) {
	svc := NewStudentService(repotest.NewMemoryStudentRepository())
	ctx := context.Background()

	require.NoError(t, svc.CreateStudent(ctx, newStudent("C001")))

	got, err := svc.GetStudent(ctx, "C001")
	require.NoError(t, err)
	assert.Equal(t, newStudent("C001"), got)
}

func TestStudentService_DuplicateDoesNotOverwrite(t *testing.T) {
	svc := NewStudentService(repotest.NewMemoryStudentRepository())
	ctx := context.Background()

	require.NoError(t, svc.CreateStudent(ctx, newStudent("C001")))

	dup := newStudent("C001")
	dup.FirstName = "Other"
	err := svc.CreateStudent(ctx, dup)
	assert.ErrorIs(t, err, apperrors.ErrStudentAlreadyExists)
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)

	got, err := svc.GetStudent(ctx, "C001")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.FirstName)
}

func TestStudentService_GetMissing(t *testing.T) {
	svc := NewStudentService(repotest.NewMemoryStudentRepository())

	got, err := svc.GetStudent(context.Background(), "nope")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestStudentService_UpdateReplacesAllFields(t *testing.T) {
	svc := NewStudentService(repotest.NewMemoryStudentRepository())
	ctx := context.Background()
	require.NoError(t, svc.CreateStudent(ctx, newStudent("C001")))

	replacement := &models.Student{
		ControlNumber:   "C001",
		FirstName:       "Maria",
		PaternalSurname: "Garcia",
		MaternalSurname: "Soto",
		Semester:        7,
	}
	require.NoError(t, svc.UpdateStudent(ctx, replacement))

	got, err := svc.GetStudent(ctx, "C001")
	require.NoError(t, err)
	assert.Equal(t, replacement, got)
}

func TestStudentService_UpdateMissingDoesNotCreate(t *testing.T) {
	repo := repotest.NewMemoryStudentRepository()
	svc := NewStudentService(repo)

	err := svc.UpdateStudent(context.Background(), newStudent("ghost"))
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Equal(t, 0, repo.Len())
}

func TestStudentService_DeleteTwice(t *testing.T) {
	svc := NewStudentService(repotest.NewMemoryStudentRepository())
	ctx := context.Background()
	require.NoError(t, svc.CreateStudent(ctx, newStudent("C001")))

	require.NoError(t, svc.DeleteStudent(ctx, "C001"))
	assert.ErrorIs(t, svc.DeleteStudent(ctx, "C001"), apperrors.ErrStudentNotFound)

	_, err := svc.GetStudent(ctx, "C001")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentService_ListEmptyAndFull(t *testing.T) {
	svc := NewStudentService(repotest.NewMemoryStudentRepository())
	ctx := context.Background()

	empty, err := svc.GetAllStudents(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, cn := range []string{"C001", "C002", "C003"} {
		require.NoError(t, svc.CreateStudent(ctx, newStudent(cn)))
	}
	all, err := svc.GetAllStudents(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStudentService_BlankControlNumber(t *testing.T) {
	repo := repotest.NewMemoryStudentRepository()
	svc := NewStudentService(repo)
	ctx := context.Background()

	assert.ErrorIs(t, svc.CreateStudent(ctx, newStudent("  ")), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, svc.CreateStudent(ctx, nil), apperrors.ErrValidationFailed)
	assert.Equal(t, 0, repo.Len())
}

func TestStudentService_BlankLookupIsNotFound(t *testing.T) {
	repo := repotest.NewMemoryStudentRepository()
	svc := NewStudentService(repo)
	ctx := context.Background()

	_, err := svc.GetStudent(ctx, " ")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.ErrorIs(t, svc.UpdateStudent(ctx, newStudent("")), apperrors.ErrStudentNotFound)
	assert.ErrorIs(t, svc.DeleteStudent(ctx, ""), apperrors.ErrStudentNotFound)
	assert.Equal(t, 0, repo.Len())
}

func TestStudentService_StorageErrorsPropagate(t *testing.T) {
	repo := repotest.NewMemoryStudentRepository()
	repo.Err = errors.New("pool exhausted")
	svc := NewStudentService(repo)

	_, err := svc.GetAllStudents(context.Background())
	assert.ErrorIs(t, err, repo.Err)
	assert.NotErrorIs(t, err, apperrors.ErrResourceNotFound)
}
