package endpoint

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dentalhub/dental-center-api/model"
)

func TestListPatientsReturnsSeed(t *testing.T) {
	r, _, _ := setupTestRouter(t)
	headers := loginAs(t, r, "admin@entnt.in", "admin123")

	rr := doRequest(r, requestParams{method: "GET", path: "/patient", headers: headers})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var data struct {
		Total    int             `json:"total"`
		Patients []model.Patient `json:"patients"`
	}
	decodeData(t, rr, &data)
	if data.Total != 2 || len(data.Patients) != 2 {
		t.Fatalf("expected the two seed patients, got %+v", data)
	}
	if data.Patients[0].ID != "p1" || data.Patients[1].ID != "p2" {
		t.Fatalf("seed order not preserved: %+v", data.Patients)
	}
}

func TestCreatePatientFlow(t *testing.T) {
	r, stores, _ := setupTestRouter(t)
	headers := loginAs(t, r, "admin@entnt.in", "admin123")

	body, _ := json.Marshal(model.PatientDraft{
		Name:        "Alice   Wonder",
		DateOfBirth: "2000-01-01",
		Contact:     "555",
		Email:       "a@x.com",
		Address:     "X",
		HealthInfo:  "none",
	})
	rr := doRequest(r, requestParams{method: "POST", path: "/patient", body: body, headers: headers})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var created model.Patient
	decodeData(t, rr, &created)
	if created.ID == "" {
		t.Fatal("created patient has no id")
	}
	if created.Name != "Alice Wonder" {
		t.Fatalf("name not normalized: %q", created.Name)
	}
	if !stores.Patients.Exists(created.ID) {
		t.Fatal("created patient not in store")
	}
}

func TestCreatePatientValidationError(t *testing.T) {
	r, stores, _ := setupTestRouter(t)
	headers := loginAs(t, r, "admin@entnt.in", "admin123")

	body, _ := json.Marshal(model.PatientDraft{Name: "No Birthday"})
	rr := doRequest(r, requestParams{method: "POST", path: "/patient", body: body, headers: headers})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
	}
	if len(stores.Patients.List()) != 2 {
		t.Fatal("rejected draft mutated the store")
	}
}

func TestUpdatePatientPreservesID(t *testing.T) {
	r, _, _ := setupTestRouter(t)
	headers := loginAs(t, r, "admin@entnt.in", "admin123")

	body, _ := json.Marshal(model.PatientDraft{
		Name:        "John Doe Jr.",
		DateOfBirth: "1990-05-10",
		Contact:     "1234567890",
		Email:       "john@entnt.in",
		Address:     "123 Main St, New York, NY",
		HealthInfo:  "No known allergies",
	})
	rr := doRequest(r, requestParams{method: "PATCH", path: "/patient/p1", body: body, headers: headers})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var updated model.Patient
	decodeData(t, rr, &updated)
	if updated.ID != "p1" || updated.Name != "John Doe Jr." {
		t.Fatalf("unexpected update result: %+v", updated)
	}
}

func TestUpdatePatientNotFound(t *testing.T) {
	r, _, _ := setupTestRouter(t)
	headers := loginAs(t, r, "admin@entnt.in", "admin123")

	body, _ := json.Marshal(model.PatientDraft{
		Name:        "Ghost",
		DateOfBirth: "1990-05-10",
		Contact:     "1",
		Email:       "g@x.com",
		Address:     "X",
		HealthInfo:  "none",
	})
	rr := doRequest(r, requestParams{method: "PATCH", path: "/patient/p999", body: body, headers: headers})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestDeletePatientCascades(t *testing.T) {
	r, stores, _ := setupTestRouter(t)
	headers := loginAs(t, r, "admin@entnt.in", "admin123")

	rr := doRequest(r, requestParams{method: "DELETE", path: "/patient/p1", headers: headers})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	if stores.Patients.Exists("p1") {
		t.Fatal("patient still present after delete")
	}
	if len(stores.Appointments.ListForPatient("p1")) != 0 {
		t.Fatal("appointments not cascaded")
	}

	rr = doRequest(r, requestParams{method: "DELETE", path: "/patient/p1", headers: headers})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rr.Code)
	}
}

func TestPatientScopedToOwnRecord(t *testing.T) {
	r, _, _ := setupTestRouter(t)
	headers := loginAs(t, r, "john@entnt.in", "patient123")

	rr := doRequest(r, requestParams{method: "GET", path: "/patient/p1", headers: headers})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for own record, got %d: %s", rr.Code, rr.Body.String())
	}
	var own model.Patient
	decodeData(t, rr, &own)
	if own.ID != "p1" {
		t.Fatalf("unexpected record: %+v", own)
	}

	rr = doRequest(r, requestParams{method: "GET", path: "/patient/p2", headers: headers})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for someone else's record, got %d", rr.Code)
	}

	rr = doRequest(r, requestParams{method: "GET", path: "/patient/p1/appointments", headers: headers})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for own appointments, got %d: %s", rr.Code, rr.Body.String())
	}
	var data struct {
		Total        int                 `json:"total"`
		Appointments []model.Appointment `json:"appointments"`
	}
	decodeData(t, rr, &data)
	if data.Total != 2 {
		t.Fatalf("expected p1's two seed appointments, got %+v", data)
	}

	rr = doRequest(r, requestParams{method: "GET", path: "/patient/p2/appointments", headers: headers})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for someone else's appointments, got %d", rr.Code)
	}
}
