package model

// Patient represents a care recipient record, independent of login identity.
type Patient struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DateOfBirth      string `json:"dob"`
	Contact          string `json:"contact"`
	Email            string `json:"email"`
	Address          string `json:"address"`
	HealthInfo       string `json:"healthInfo"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
}

// PatientDraft carries the mutable fields of a patient for create and
// update requests. The store assigns and preserves the record id itself.
type PatientDraft struct {
	Name             string `json:"name" example:"John Doe"`
	DateOfBirth      string `json:"dob" example:"1990-05-10"`
	Contact          string `json:"contact" example:"1234567890"`
	Email            string `json:"email" example:"john@entnt.in"`
	Address          string `json:"address" example:"123 Main St, New York, NY"`
	HealthInfo       string `json:"healthInfo" example:"No known allergies"`
	EmergencyContact string `json:"emergencyContact,omitempty" example:"Jane Doe - 0987654321"`
}

// DateLayout is the calendar-date format used for dateOfBirth values.
const DateLayout = "2006-01-02"
