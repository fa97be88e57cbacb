package endpoint

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dentalhub/dental-center-api/model"
)

type appointmentListData struct {
	Total        int                 `json:"total"`
	Appointments []model.Appointment `json:"appointments"`
}

func TestListAppointmentsReturnsSeed(t *testing.T) {
	r, _, _ := setupTestRouter(t)
	headers := loginAs(t, r, "admin@entnt.in", "admin123")

	rr := doRequest(r, requestParams{method: "GET", path: "/appointment", headers: headers})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var data appointmentListData
	decodeData(t, rr, &data)
	if data.Total != 3 {
		t.Fatalf("expected the three seed appointments, got %+v", data)
	}
	if data.Appointments[0].ID != "i1" || data.Appointments[0].Title != "Toothache" {
		t.Fatalf("unexpected first appointment: %+v", data.Appointments[0])
	}
}

func TestCreateAppointmentFlow(t *testing.T) {
	r, stores, _ := setupTestRouter(t)
	headers := loginAs(t, r, "admin@entnt.in", "admin123")

	body, _ := json.Marshal(model.AppointmentDraft{
		PatientID:       "p2",
		Title:           "Cleaning",
		Description:     "routine",
		AppointmentDate: "2030-06-01T09:00:00",
	})
	rr := doRequest(r, requestParams{method: "POST", path: "/appointment", body: body, headers: headers})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var created model.Appointment
	decodeData(t, rr, &created)
	if created.ID == "" || created.Status != model.StatusScheduled {
		t.Fatalf("unexpected created appointment: %+v", created)
	}
	if len(stores.Appointments.ListForPatient("p2")) != 2 {
		t.Fatal("appointment not added to store")
	}
}

func TestCreateAppointmentRejectsUnknownPatient(t *testing.T) {
	r, stores, _ := setupTestRouter(t)
	headers := loginAs(t, r, "admin@entnt.in", "admin123")

	body, _ := json.Marshal(model.AppointmentDraft{
		PatientID:       "p999",
		Title:           "Cleaning",
		Description:     "routine",
		AppointmentDate: "2030-06-01T09:00:00",
	})
	rr := doRequest(r, requestParams{method: "POST", path: "/appointment", body: body, headers: headers})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
	}
	if len(stores.Appointments.List()) != 3 {
		t.Fatal("rejected draft mutated the store")
	}
}

func TestUpdateAppointmentKeepsPatientReference(t *testing.T) {
	r, _, _ := setupTestRouter(t)
	headers := loginAs(t, r, "admin@entnt.in", "admin123")

	body, _ := json.Marshal(model.AppointmentDraft{
		PatientID:       "p1",
		Title:           "Teeth Whitening",
		Description:     "Professional teeth whitening treatment",
		AppointmentDate: "2025-01-28T11:00:00",
		Status:          model.StatusCompleted,
	})
	rr := doRequest(r, requestParams{method: "PATCH", path: "/appointment/i3", body: body, headers: headers})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var updated model.Appointment
	decodeData(t, rr, &updated)
	if updated.ID != "i3" || updated.PatientID != "p2" {
		t.Fatalf("id or patient reference not preserved: %+v", updated)
	}
	if updated.Status != model.StatusCompleted {
		t.Fatalf("status not updated: %+v", updated)
	}
}

func TestDeleteAppointment(t *testing.T) {
	r, stores, _ := setupTestRouter(t)
	headers := loginAs(t, r, "admin@entnt.in", "admin123")

	rr := doRequest(r, requestParams{method: "DELETE", path: "/appointment/i2", headers: headers})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if len(stores.Appointments.List()) != 2 {
		t.Fatal("appointment not removed")
	}

	rr = doRequest(r, requestParams{method: "DELETE", path: "/appointment/i999", headers: headers})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestUpcomingAppointmentsEndpoint(t *testing.T) {
	r, stores, _ := setupTestRouter(t)
	headers := loginAs(t, r, "admin@entnt.in", "admin123")

	// The seed dates are in the past relative to a live clock; add two
	// future entries to exercise filter and order.
	for _, date := range []string{"2035-03-02T10:00:00", "2035-03-01T10:00:00"} {
		_, err := stores.Appointments.Add(model.AppointmentDraft{
			PatientID:       "p1",
			Title:           "Follow-up",
			Description:     "check healing",
			AppointmentDate: date,
		})
		if err != nil {
			t.Fatalf("add appointment: %v", err)
		}
	}

	rr := doRequest(r, requestParams{method: "GET", path: "/appointment/upcoming", headers: headers})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var data appointmentListData
	decodeData(t, rr, &data)
	if data.Total != 2 {
		t.Fatalf("expected the two future appointments, got %+v", data)
	}
	if data.Appointments[0].AppointmentDate != "2035-03-01T10:00:00" {
		t.Fatalf("not sorted ascending: %+v", data.Appointments)
	}

	rr = doRequest(r, requestParams{method: "GET", path: "/appointment/upcoming?limit=1", headers: headers})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	decodeData(t, rr, &data)
	if data.Total != 1 {
		t.Fatalf("limit not honored: %+v", data)
	}
}
