package endpoint

import (
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dentalhub/dental-center-api/model"
	"github.com/dentalhub/dental-center-api/util"
)

// TopPatient is one entry of the most-visited ranking.
type TopPatient struct {
	PatientID    string `json:"patient_id" example:"p1"`
	Name         string `json:"name" example:"John Doe"`
	Appointments int    `json:"appointments" example:"2"`
}

// DashboardStats aggregates the figures the admin dashboard renders.
type DashboardStats struct {
	TotalPatients      int                `json:"total_patients" example:"2"`
	TotalAppointments  int                `json:"total_appointments" example:"3"`
	Upcoming           int                `json:"upcoming" example:"2"`
	TotalRevenue       float64            `json:"total_revenue" example:"80"`
	AvgAppointmentCost float64            `json:"avg_appointment_cost" example:"80"`
	StatusBreakdown    map[string]int     `json:"status_breakdown"`
	TopPatients        []TopPatient       `json:"top_patients"`
	MonthlyRevenue     map[string]float64 `json:"monthly_revenue"`
}

const topPatientCount = 3

// DashboardStatsHandler godoc
// @Summary      Dashboard statistics
// @Description  Aggregate counts, revenue over completed appointments, status breakdown, top patients and monthly revenue
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse{data=DashboardStats} "Statistics computed"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Router       /dashboard/stats [get]
func DashboardStatsHandler(c *gin.Context) {
	stores, ok := getStoresOrRespond(c)
	if !ok {
		return
	}

	patients := stores.Patients.List()
	appointments := stores.Appointments.List()

	stats := DashboardStats{
		TotalPatients:     len(patients),
		TotalAppointments: len(appointments),
		Upcoming:          len(stores.Appointments.ListUpcoming(time.Now(), len(appointments)+1)),
		StatusBreakdown:   map[string]int{},
		MonthlyRevenue:    map[string]float64{},
	}

	names := make(map[string]string, len(patients))
	for _, p := range patients {
		names[p.ID] = p.Name
	}

	completed := 0
	visits := map[string]int{}
	for _, a := range appointments {
		stats.StatusBreakdown[a.Status]++
		visits[a.PatientID]++
		if a.Status != model.StatusCompleted {
			continue
		}
		completed++
		if a.Cost != nil {
			stats.TotalRevenue += *a.Cost
			if t, err := time.Parse(model.DateTimeLayout, a.AppointmentDate); err == nil {
				stats.MonthlyRevenue[t.Format("2006-01")] += *a.Cost
			}
		}
	}
	if completed > 0 {
		stats.AvgAppointmentCost = stats.TotalRevenue / float64(completed)
	}

	ranking := make([]TopPatient, 0, len(visits))
	for id, n := range visits {
		ranking = append(ranking, TopPatient{PatientID: id, Name: names[id], Appointments: n})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Appointments != ranking[j].Appointments {
			return ranking[i].Appointments > ranking[j].Appointments
		}
		return ranking[i].PatientID < ranking[j].PatientID
	})
	if len(ranking) > topPatientCount {
		ranking = ranking[:topPatientCount]
	}
	stats.TopPatients = ranking

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Statistics computed", Data: stats})
}
