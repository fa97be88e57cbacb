package model

// Appointment status values. Transitions are unrestricted: any status may
// move to any other.
const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// ValidStatus reports whether s is one of the three appointment statuses.
func ValidStatus(s string) bool {
	return s == StatusScheduled || s == StatusCompleted || s == StatusCancelled
}

// DateTimeLayout is the timestamp format used for appointmentDate and
// nextDate values.
const DateTimeLayout = "2006-01-02T15:04:05"

// Attachment describes a file attached to an appointment. File content is
// never inspected; this is a descriptor only.
type Attachment struct {
	Name string `json:"name" example:"xray.png"`
	URL  string `json:"url" example:"https://files.example.com/xray.png"`
	Size int64  `json:"size" example:"20480"`
}

// Appointment represents a scheduled or completed clinical encounter tied
// to one patient. Known as an "incident" in the persisted collection key.
type Appointment struct {
	ID              string       `json:"id"`
	PatientID       string       `json:"patientId"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Comments        string       `json:"comments,omitempty"`
	AppointmentDate string       `json:"appointmentDate"`
	Cost            *float64     `json:"cost,omitempty"`
	Treatment       string       `json:"treatment,omitempty"`
	Status          string       `json:"status"`
	NextDate        string       `json:"nextDate,omitempty"`
	Files           []Attachment `json:"files"`
}

// AppointmentDraft carries the fields a caller supplies when creating or
// editing an appointment. PatientID is only honored on create; updates keep
// the original reference.
type AppointmentDraft struct {
	PatientID       string       `json:"patientId" example:"p1"`
	Title           string       `json:"title" example:"Toothache"`
	Description     string       `json:"description" example:"Upper molar pain"`
	Comments        string       `json:"comments,omitempty" example:"Sensitive to cold drinks"`
	AppointmentDate string       `json:"appointmentDate" example:"2025-01-25T10:00:00"`
	Cost            *float64     `json:"cost,omitempty" example:"80"`
	Treatment       string       `json:"treatment,omitempty" example:"Root canal therapy"`
	Status          string       `json:"status,omitempty" example:"Scheduled"`
	NextDate        string       `json:"nextDate,omitempty" example:"2025-02-15T10:00:00"`
	Files           []Attachment `json:"files,omitempty"`
}
