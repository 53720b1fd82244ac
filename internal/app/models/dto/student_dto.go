package dto

import "github.com/yigit/studentrecords/internal/app/models"

// CreateStudentRequest represents student creation data. Pointer fields make "required"
// mean present and non-null, so an empty surname is still accepted.
type CreateStudentRequest struct {
	ControlNumber   string  `json:"control_number" binding:"required"`
	FirstName       *string `json:"first_name" binding:"required"`
	PaternalSurname *string `json:"paternal_surname" binding:"required"`
	MaternalSurname *string `json:"maternal_surname" binding:"required"`
	Semester        *int16  `json:"semester" binding:"required"`
}

// ToModel converts the request into a Student. Call only after binding succeeded.
func (r CreateStudentRequest) ToModel() *models.Student {
	return &models.Student{
		ControlNumber:   r.ControlNumber,
		FirstName:       *r.FirstName,
		PaternalSurname: *r.PaternalSurname,
		MaternalSurname: *r.MaternalSurname,
		Semester:        *r.Semester,
	}
}

// UpdateStudentRequest represents a full replacement of the non-key fields
type UpdateStudentRequest struct {
	FirstName       *string `json:"first_name" binding:"required"`
	PaternalSurname *string `json:"paternal_surname" binding:"required"`
	MaternalSurname *string `json:"maternal_surname" binding:"required"`
	Semester        *int16  `json:"semester" binding:"required"`
}

// ToModel converts the request into a Student keyed by controlNumber
func (r UpdateStudentRequest) ToModel(controlNumber string) *models.Student {
	return &models.Student{
		ControlNumber:   controlNumber,
		FirstName:       *r.FirstName,
		PaternalSurname: *r.PaternalSurname,
		MaternalSurname: *r.MaternalSurname,
		Semester:        *r.Semester,
	}
}
