package endpoint

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dentalhub/dental-center-api/model"
	"github.com/dentalhub/dental-center-api/util"
)

// ListAppointments godoc
// @Summary      List all appointments
// @Description  Get the full appointment collection in insertion order
// @Tags         Appointment
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse{data=object} "Appointments retrieved"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Router       /appointment [get]
func ListAppointments(c *gin.Context) {
	stores, ok := getStoresOrRespond(c)
	if !ok {
		return
	}

	appointments := stores.Appointments.List()
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointments retrieved",
		Data: map[string]interface{}{"total": len(appointments), "appointments": appointments},
	})
}

// ListUpcomingAppointments godoc
// @Summary      List upcoming appointments
// @Description  Appointments at or after now that are not Completed, soonest first
// @Tags         Appointment
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Maximum entries to return (default 10)"
// @Success      200 {object} util.APIResponse{data=object} "Upcoming appointments retrieved"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Router       /appointment/upcoming [get]
func ListUpcomingAppointments(c *gin.Context) {
	stores, ok := getStoresOrRespond(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	upcoming := stores.Appointments.ListUpcoming(time.Now(), limit)
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Upcoming appointments retrieved",
		Data: map[string]interface{}{"total": len(upcoming), "appointments": upcoming},
	})
}

// CreateAppointment godoc
// @Summary      Create an appointment
// @Description  Schedule a new appointment for an existing patient; the store assigns the id
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.AppointmentDraft true "Appointment fields"
// @Success      200 {object} util.APIResponse{data=model.Appointment} "Appointment created"
// @Failure      400 {object} util.APIResponse "Validation error"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Router       /appointment [post]
func CreateAppointment(c *gin.Context) {
	var draft model.AppointmentDraft
	if !bindJSONOrRespond(c, &draft, "Invalid request payload") {
		return
	}

	stores, ok := getStoresOrRespond(c)
	if !ok {
		return
	}

	appointment, err := stores.Appointments.Add(draft)
	if err != nil {
		respondStoreError(c, "Failed to create appointment", err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Appointment created", Data: appointment})
}

// UpdateAppointment godoc
// @Summary      Update an appointment
// @Description  Replace the fields of an appointment; id and patient reference are preserved
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Appointment ID"
// @Param        request body model.AppointmentDraft true "Appointment fields"
// @Success      200 {object} util.APIResponse{data=model.Appointment} "Appointment updated"
// @Failure      400 {object} util.APIResponse "Validation error"
// @Failure      404 {object} util.APIResponse "Appointment not found"
// @Router       /appointment/{id} [patch]
func UpdateAppointment(c *gin.Context) {
	var draft model.AppointmentDraft
	if !bindJSONOrRespond(c, &draft, "Invalid request payload") {
		return
	}

	stores, ok := getStoresOrRespond(c)
	if !ok {
		return
	}

	appointment, err := stores.Appointments.Update(c.Param("id"), draft)
	if err != nil {
		respondStoreError(c, "Failed to update appointment", err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Appointment updated", Data: appointment})
}

// DeleteAppointment godoc
// @Summary      Delete an appointment
// @Description  Remove an appointment by id
// @Tags         Appointment
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Appointment ID"
// @Success      200 {object} util.APIResponse "Appointment deleted"
// @Failure      404 {object} util.APIResponse "Appointment not found"
// @Router       /appointment/{id} [delete]
func DeleteAppointment(c *gin.Context) {
	stores, ok := getStoresOrRespond(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := stores.Appointments.Remove(id); err != nil {
		respondStoreError(c, "Failed to delete appointment", err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointment deleted",
		Data: map[string]interface{}{"id": id},
	})
}
