package models

// Student defines the student model based on the 'students' table
type Student struct {
	ControlNumber   string `json:"control_number" db:"control_number"` // Primary key, immutable once created
	FirstName       string `json:"first_name" db:"first_name"`
	PaternalSurname string `json:"paternal_surname" db:"paternal_surname"`
	MaternalSurname string `json:"maternal_surname" db:"maternal_surname"`
	Semester        int16  `json:"semester" db:"semester"`
}
