package endpoint

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/dentalhub/dental-center-api/model"
	"github.com/dentalhub/dental-center-api/util"
)

// ListPatients godoc
// @Summary      List all patients
// @Description  Get the full patient collection in insertion order
// @Tags         Patient
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse{data=object} "Patients retrieved"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient [get]
func ListPatients(c *gin.Context) {
	stores, ok := getStoresOrRespond(c)
	if !ok {
		return
	}

	patients := stores.Patients.List()
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patients retrieved",
		Data: map[string]interface{}{"total": len(patients), "patients": patients},
	})
}

// GetPatient godoc
// @Summary      Get a patient
// @Description  Fetch a single patient by id; patient logins may only fetch their own record
// @Tags         Patient
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Patient ID"
// @Success      200 {object} util.APIResponse{data=model.Patient} "Patient retrieved"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Router       /patient/{id} [get]
func GetPatient(c *gin.Context) {
	id := c.Param("id")
	if !sessionScopedToPatient(c, id) {
		util.CallUserNotAuthorized(c, util.APIErrorParams{
			Msg: "Not allowed to view this patient",
			Err: fmt.Errorf("session is not scoped to patient %s", id),
		})
		return
	}

	stores, ok := getStoresOrRespond(c)
	if !ok {
		return
	}

	patient, err := stores.Patients.GetByID(id)
	if err != nil {
		respondStoreError(c, "Failed to retrieve patient", err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Patient retrieved", Data: patient})
}

// CreatePatient godoc
// @Summary      Create a patient
// @Description  Register a new patient record; the store assigns the id
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.PatientDraft true "Patient fields"
// @Success      200 {object} util.APIResponse{data=model.Patient} "Patient created"
// @Failure      400 {object} util.APIResponse "Validation error"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Router       /patient [post]
func CreatePatient(c *gin.Context) {
	var draft model.PatientDraft
	if !bindJSONOrRespond(c, &draft, "Invalid request payload") {
		return
	}
	draft.Name = util.NormalizeName(draft.Name)

	stores, ok := getStoresOrRespond(c)
	if !ok {
		return
	}

	patient, err := stores.Patients.Add(draft)
	if err != nil {
		respondStoreError(c, "Failed to create patient", err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Patient created", Data: patient})
}

// UpdatePatient godoc
// @Summary      Update a patient
// @Description  Replace the mutable fields of a patient record; the id is preserved
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Patient ID"
// @Param        request body model.PatientDraft true "Patient fields"
// @Success      200 {object} util.APIResponse{data=model.Patient} "Patient updated"
// @Failure      400 {object} util.APIResponse "Validation error"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Router       /patient/{id} [patch]
func UpdatePatient(c *gin.Context) {
	var draft model.PatientDraft
	if !bindJSONOrRespond(c, &draft, "Invalid request payload") {
		return
	}
	draft.Name = util.NormalizeName(draft.Name)

	stores, ok := getStoresOrRespond(c)
	if !ok {
		return
	}

	patient, err := stores.Patients.Update(c.Param("id"), draft)
	if err != nil {
		respondStoreError(c, "Failed to update patient", err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Patient updated", Data: patient})
}

// DeletePatient godoc
// @Summary      Delete a patient
// @Description  Delete a patient and every appointment referencing it in one operation
// @Tags         Patient
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Patient ID"
// @Success      200 {object} util.APIResponse "Patient deleted"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Router       /patient/{id} [delete]
func DeletePatient(c *gin.Context) {
	stores, ok := getStoresOrRespond(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := stores.Patients.Remove(id); err != nil {
		respondStoreError(c, "Failed to delete patient", err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient deleted",
		Data: map[string]interface{}{"id": id},
	})
}

// ListPatientAppointments godoc
// @Summary      List a patient's appointments
// @Description  Appointments referencing the patient, in collection order; patient logins may only query their own id
// @Tags         Patient
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Patient ID"
// @Success      200 {object} util.APIResponse{data=object} "Appointments retrieved"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Router       /patient/{id}/appointments [get]
func ListPatientAppointments(c *gin.Context) {
	id := c.Param("id")
	if !sessionScopedToPatient(c, id) {
		util.CallUserNotAuthorized(c, util.APIErrorParams{
			Msg: "Not allowed to view appointments of this patient",
			Err: fmt.Errorf("session is not scoped to patient %s", id),
		})
		return
	}

	stores, ok := getStoresOrRespond(c)
	if !ok {
		return
	}

	appointments := stores.Appointments.ListForPatient(id)
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointments retrieved",
		Data: map[string]interface{}{"total": len(appointments), "appointments": appointments},
	})
}
