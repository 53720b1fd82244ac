// Package repotest provides an in-memory student store with the same error
// contract as repositories.StudentRepository, for use in tests.
package repotest

import (
	"context"
	"sync"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/repositories"
)

// MemoryStudentRepository keeps students in a map guarded by a mutex.
// Stored values are copied in and out so callers cannot alias them.
type MemoryStudentRepository struct {
	mu       sync.Mutex
	students map[string]models.Student
	order    []string

	// Err, when set, is returned by every method.
	Err error
}

// NewMemoryStudentRepository creates an empty store
func NewMemoryStudentRepository() *MemoryStudentRepository {
	return &MemoryStudentRepository{students: make(map[string]models.Student)}
}

func (r *MemoryStudentRepository) CreateStudent(_ context.Context, student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.students[student.ControlNumber]; ok {
		return repositories.ErrStudentAlreadyExists
	}
	r.students[student.ControlNumber] = *student
	r.order = append(r.order, student.ControlNumber)
	return nil
}

func (r *MemoryStudentRepository) GetStudentByControlNumber(_ context.Context, controlNumber string) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	student, ok := r.students[controlNumber]
	if !ok {
		return nil, repositories.ErrStudentNotFound
	}
	return &student, nil
}

func (r *MemoryStudentRepository) GetAllStudents(_ context.Context) ([]*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	students := make([]*models.Student, 0, len(r.order))
	for _, cn := range r.order {
		student := r.students[cn]
		students = append(students, &student)
	}
	return students, nil
}

func (r *MemoryStudentRepository) UpdateStudent(_ context.Context, student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.students[student.ControlNumber]; !ok {
		return repositories.ErrStudentNotFound
	}
	r.students[student.ControlNumber] = *student
	return nil
}

func (r *MemoryStudentRepository) DeleteStudent(_ context.Context, controlNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.students[controlNumber]; !ok {
		return repositories.ErrStudentNotFound
	}
	delete(r.students, controlNumber)
	for i, cn := range r.order {
		if cn == controlNumber {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len reports how many students are stored
func (r *MemoryStudentRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.students)
}
