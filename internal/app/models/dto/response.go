package dto

// MessageResponse is the body of every non-record response
type MessageResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}

// Fixed client-facing messages
const (
	MsgStudentCreated     = "Student created successfully"
	MsgStudentUpdated     = "Student updated successfully"
	MsgStudentDeleted     = "Student deleted successfully"
	MsgInvalidStudentData = "Invalid student data"
	MsgInternalError      = "Internal server error"
)
