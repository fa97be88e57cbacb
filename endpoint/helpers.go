package endpoint

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/dentalhub/dental-center-api/middleware"
	"github.com/dentalhub/dental-center-api/store"
	"github.com/dentalhub/dental-center-api/util"
)

func bindJSONOrRespond(c *gin.Context, dst interface{}, msg string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: msg, Err: err})
		return false
	}
	return true
}

func getStoresOrRespond(c *gin.Context) (*store.Stores, bool) {
	stores := middleware.GetStores(c)
	if stores == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Record stores not available",
			Err: fmt.Errorf("stores are nil"),
		})
		return nil, false
	}
	return stores, true
}

// respondStoreError maps store sentinel errors onto the HTTP status the
// caller expects: validation 400, not found 404, everything else 500.
func respondStoreError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, store.ErrValidation):
		util.CallUserError(c, util.APIErrorParams{Msg: msg, Err: err})
	case errors.Is(err, store.ErrNotFound):
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: msg, Err: err})
	default:
		util.CallServerError(c, util.APIErrorParams{Msg: msg, Err: err})
	}
}

// sessionScopedToPatient reports whether the caller may read records of the
// given patient: administrators always, patient logins only for their own
// linked record. The stores themselves stay scope-agnostic.
func sessionScopedToPatient(c *gin.Context, patientID string) bool {
	session, ok := middleware.GetSession(c)
	if !ok {
		return false
	}
	if session.IsAdmin() {
		return true
	}
	return session.IsPatient() && session.PatientID == patientID
}
