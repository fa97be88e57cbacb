package model

// Role names carried by sessions.
const (
	RoleAdmin   = "Admin"
	RolePatient = "Patient"
)

// User is an entry in the fixed login directory. Password holds the
// HMAC-SHA256 digest of the user's password, never the plaintext.
type User struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	Name      string `json:"name"`
	PatientID string `json:"patientId,omitempty"`
}

// Session is the result of successful authentication. For Patient-role
// sessions PatientID links the login to exactly one patient record.
type Session struct {
	UserID    string `json:"user_id" example:"1"`
	Role      string `json:"role" example:"Admin"`
	Name      string `json:"name" example:"Dr. Sarah Johnson"`
	PatientID string `json:"patient_id,omitempty" example:"p1"`
}

// IsAdmin reports whether the session belongs to an administrator.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// IsPatient reports whether the session belongs to a patient login.
func (s Session) IsPatient() bool { return s.Role == RolePatient }
