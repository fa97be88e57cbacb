package model

func money(v float64) *float64 { return &v }

// SeedPatients returns the fixed initial patient dataset used when no
// persisted collection exists yet.
func SeedPatients() []Patient {
	return []Patient{
		{
			ID:               "p1",
			Name:             "John Doe",
			DateOfBirth:      "1990-05-10",
			Contact:          "1234567890",
			Email:            "john@entnt.in",
			Address:          "123 Main St, New York, NY",
			HealthInfo:       "No known allergies, diabetes type 2",
			EmergencyContact: "Jane Doe - 0987654321",
		},
		{
			ID:               "p2",
			Name:             "Jane Smith",
			DateOfBirth:      "1985-08-22",
			Contact:          "2345678901",
			Email:            "jane@entnt.in",
			Address:          "456 Oak Ave, Los Angeles, CA",
			HealthInfo:       "Allergic to penicillin",
			EmergencyContact: "Bob Smith - 1987654321",
		},
	}
}

// SeedAppointments returns the fixed initial appointment dataset. Every
// patientId here resolves to a record in SeedPatients.
func SeedAppointments() []Appointment {
	return []Appointment{
		{
			ID:              "i1",
			PatientID:       "p1",
			Title:           "Toothache",
			Description:     "Upper molar pain",
			Comments:        "Sensitive to cold drinks",
			AppointmentDate: "2025-01-25T10:00:00",
			Cost:            money(80),
			Treatment:       "Root canal therapy",
			Status:          StatusCompleted,
			NextDate:        "2025-02-15T10:00:00",
			Files:           []Attachment{},
		},
		{
			ID:              "i2",
			PatientID:       "p1",
			Title:           "Regular Checkup",
			Description:     "6-month routine dental examination",
			Comments:        "Good oral hygiene",
			AppointmentDate: "2025-01-30T14:00:00",
			Cost:            money(120),
			Treatment:       "Cleaning and examination",
			Status:          StatusScheduled,
			Files:           []Attachment{},
		},
		{
			ID:              "i3",
			PatientID:       "p2",
			Title:           "Teeth Whitening",
			Description:     "Professional teeth whitening treatment",
			Comments:        "Patient wants brighter smile",
			AppointmentDate: "2025-01-28T11:00:00",
			Cost:            money(200),
			Treatment:       "Professional whitening",
			Status:          StatusScheduled,
			Files:           []Attachment{},
		},
	}
}

// SeedCredential pairs a directory user with its plaintext password. The
// access gate digests the password at startup; the plaintext never leaves
// the seed.
type SeedCredential struct {
	User     User
	Password string
}

// SeedUsers returns the fixed login directory: one administrator and one
// patient login per seed patient.
func SeedUsers() []SeedCredential {
	return []SeedCredential{
		{
			User:     User{ID: "1", Role: RoleAdmin, Email: "admin@entnt.in", Name: "Dr. Sarah Johnson"},
			Password: "admin123",
		},
		{
			User:     User{ID: "2", Role: RolePatient, Email: "john@entnt.in", Name: "John Doe", PatientID: "p1"},
			Password: "patient123",
		},
		{
			User:     User{ID: "3", Role: RolePatient, Email: "jane@entnt.in", Name: "Jane Smith", PatientID: "p2"},
			Password: "patient123",
		},
	}
}
