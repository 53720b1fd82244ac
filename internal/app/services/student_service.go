package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/repositories"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// StudentRepository is the storage the student service depends on
type StudentRepository interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetStudentByControlNumber(ctx context.Context, controlNumber string) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, controlNumber string) error
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetStudent(ctx context.Context, controlNumber string) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, controlNumber string) error
}

type studentServiceImpl struct {
	studentRepo StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

func validateControlNumber(controlNumber string) error {
	if strings.TrimSpace(controlNumber) == "" {
		return fmt.Errorf("%w: control number cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// translate maps repository sentinels onto the application error taxonomy
func translate(err error, action string) error {
	switch {
	case errors.Is(err, repositories.ErrStudentNotFound):
		return apperrors.ErrStudentNotFound
	case errors.Is(err, repositories.ErrStudentAlreadyExists):
		return apperrors.ErrStudentAlreadyExists
	default:
		return fmt.Errorf("error %s student: %w", action, err)
	}
}

// CreateStudent stores a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}
	if err := validateControlNumber(student.ControlNumber); err != nil {
		return err
	}

	if err := s.studentRepo.CreateStudent(ctx, student); err != nil {
		return translate(err, "creating")
	}
	return nil
}

// GetStudent retrieves a student by control number. Blank keys are never
// stored, so they resolve to not found like any other unknown key.
func (s *studentServiceImpl) GetStudent(ctx context.Context, controlNumber string) (*models.Student, error) {
	student, err := s.studentRepo.GetStudentByControlNumber(ctx, controlNumber)
	if err != nil {
		return nil, translate(err, "retrieving")
	}
	return student, nil
}

// GetAllStudents retrieves all students
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAllStudents(ctx)
	if err != nil {
		return nil, translate(err, "listing")
	}
	if students == nil {
		students = []*models.Student{}
	}
	return students, nil
}

// UpdateStudent replaces every non-key field of an existing student
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	if err := s.studentRepo.UpdateStudent(ctx, student); err != nil {
		return translate(err, "updating")
	}
	return nil
}

// DeleteStudent removes a student by control number
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, controlNumber string) error {
	if err := s.studentRepo.DeleteStudent(ctx, controlNumber); err != nil {
		return translate(err, "deleting")
	}
	return nil
}
