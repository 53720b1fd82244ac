package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/dberrors"
	"github.com/yigit/studentrecords/internal/pkg/logger"
)

const (
	studentsTable = "students"
	// studentsPrimaryKey is the constraint guarding control_number uniqueness.
	studentsPrimaryKey = "students_pkey"
)

var studentColumns = []string{"control_number", "first_name", "paternal_surname", "maternal_surname", "semester"}

// Student error types
var (
	// ErrStudentNotFound is returned when no row matches the control number.
	ErrStudentNotFound = ErrNotFound
	// ErrStudentAlreadyExists is returned when the control number is already taken.
	ErrStudentAlreadyExists = errors.New("student with this control number already exists")
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.ControlNumber,
		&student.FirstName,
		&student.PaternalSurname,
		&student.MaternalSurname,
		&student.Semester,
	)
	return student, err
}

// CreateStudent inserts a new student row
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert(studentsTable).
		Columns(studentColumns...).
		Values(student.ControlNumber, student.FirstName, student.PaternalSurname, student.MaternalSurname, student.Semester).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err = r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentsPrimaryKey) {
			logger.Warn().Str("controlNumber", student.ControlNumber).Msg("Attempted to create student with duplicate control number")
			return ErrStudentAlreadyExists
		}
		logger.Error().Err(err).Str("controlNumber", student.ControlNumber).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetStudentByControlNumber retrieves a student by exact control number
func (r *StudentRepository) GetStudentByControlNumber(ctx context.Context, controlNumber string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From(studentsTable).
		Where(squirrel.Eq{"control_number": controlNumber}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Str("controlNumber", controlNumber).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return student, nil
}

// GetAllStudents retrieves every student in storage order
func (r *StudentRepository) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From(studentsTable).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all students SQL")
		return nil, fmt.Errorf("failed to build get all students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row during get all")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// UpdateStudent overwrites the four non-key columns. It never inserts.
func (r *StudentRepository) UpdateStudent(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update(studentsTable).
		Set("first_name", student.FirstName).
		Set("paternal_surname", student.PaternalSurname).
		Set("maternal_surname", student.MaternalSurname).
		Set("semester", student.Semester).
		Where(squirrel.Eq{"control_number": student.ControlNumber}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("controlNumber", student.ControlNumber).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// DeleteStudent removes a student by control number
func (r *StudentRepository) DeleteStudent(ctx context.Context, controlNumber string) error {
	sql, args, err := r.sb.Delete(studentsTable).
		Where(squirrel.Eq{"control_number": controlNumber}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("controlNumber", controlNumber).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}
