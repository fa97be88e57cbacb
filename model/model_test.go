package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedDatasetIntegrity(t *testing.T) {
	patients := SeedPatients()
	assert.Len(t, patients, 2)
	assert.Equal(t, "p1", patients[0].ID)
	assert.Equal(t, "John Doe", patients[0].Name)
	assert.Equal(t, "p2", patients[1].ID)
	assert.Equal(t, "Jane Smith", patients[1].Name)

	appointments := SeedAppointments()
	assert.Len(t, appointments, 3)
	known := map[string]bool{"p1": true, "p2": true}
	for _, a := range appointments {
		assert.True(t, known[a.PatientID], "appointment %s references unknown patient %s", a.ID, a.PatientID)
		assert.True(t, ValidStatus(a.Status), "appointment %s has invalid status %s", a.ID, a.Status)
		assert.NotNil(t, a.Files)
	}

	users := SeedUsers()
	assert.Len(t, users, 3)
	assert.Equal(t, RoleAdmin, users[0].User.Role)
	for _, cred := range users[1:] {
		assert.Equal(t, RolePatient, cred.User.Role)
		assert.True(t, known[cred.User.PatientID])
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusScheduled))
	assert.True(t, ValidStatus(StatusCompleted))
	assert.True(t, ValidStatus(StatusCancelled))
	assert.False(t, ValidStatus("Done"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("scheduled"))
}

func TestAppointmentJSONShape(t *testing.T) {
	appointments := SeedAppointments()

	encoded, err := json.Marshal(appointments[0])
	assert.NoError(t, err)

	// The persisted shape keeps the original field names.
	var raw map[string]interface{}
	assert.NoError(t, json.Unmarshal(encoded, &raw))
	for _, field := range []string{"id", "patientId", "title", "appointmentDate", "cost", "status", "files"} {
		assert.Contains(t, raw, field)
	}

	var decoded Appointment
	assert.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, appointments[0], decoded)
}

func TestAppointmentOmitsAbsentCost(t *testing.T) {
	a := Appointment{ID: "i9", PatientID: "p1", Title: "X", Description: "Y", AppointmentDate: "2030-01-01T10:00:00", Status: StatusScheduled, Files: []Attachment{}}

	encoded, err := json.Marshal(a)
	assert.NoError(t, err)

	var raw map[string]interface{}
	assert.NoError(t, json.Unmarshal(encoded, &raw))
	assert.NotContains(t, raw, "cost")
	assert.NotContains(t, raw, "nextDate")
}
