package endpoint

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/dentalhub/dental-center-api/auth"
	"github.com/dentalhub/dental-center-api/middleware"
	"github.com/dentalhub/dental-center-api/util"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@entnt.in"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

type LoginResponse struct {
	Token     string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Role      string `json:"role" example:"Admin"`
	UserID    string `json:"user_id" example:"1"`
	Name      string `json:"name" example:"Dr. Sarah Johnson"`
	PatientID string `json:"patient_id,omitempty" example:"p1"`
}

// Login godoc
// @Summary      User login
// @Description  Authenticate user with email and password
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} util.APIResponse{data=LoginResponse} "Login successful"
// @Failure      400 {object} util.APIResponse "Invalid request payload or credentials"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /login [post]
func Login(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if !bindJSONOrRespond(c, &req, "Invalid request payload") {
			return
		}

		session, err := gate.Authenticate(req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				util.CallUserError(c, util.APIErrorParams{Msg: "Invalid email or password", Err: err})
				return
			}
			util.CallServerError(c, util.APIErrorParams{Msg: "Authentication failed", Err: err})
			return
		}

		token, err := gate.IssueToken(session)
		if err != nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "Failed to issue session token", Err: err})
			return
		}

		util.CallSuccessOK(c, util.APISuccessParams{
			Msg: "Login successful",
			Data: LoginResponse{
				Token:     token,
				Role:      session.Role,
				UserID:    session.UserID,
				Name:      session.Name,
				PatientID: session.PatientID,
			},
		})
	}
}

// Logout godoc
// @Summary      User logout
// @Description  End the current session; the client discards its token
// @Tags         Authentication
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse "Logout successful"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Router       /logout [post]
func Logout(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		util.CallUserNotAuthorized(c, util.APIErrorParams{
			Msg: "No active session",
			Err: fmt.Errorf("session missing from context"),
		})
		return
	}
	// Tokens are stateless; logout is an acknowledgment that the client
	// dropped its copy.
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Logout successful",
		Data: map[string]interface{}{"user_id": session.UserID},
	})
}

// ValidateToken godoc
// @Summary      Validate session token
// @Description  Validate if the session token is valid and not expired
// @Tags         Authentication
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse{data=model.Session} "Valid session token"
// @Failure      401 {object} util.APIResponse "Invalid or expired session token"
// @Router       /token/validate [get]
func ValidateToken(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		util.CallUserNotAuthorized(c, util.APIErrorParams{
			Msg: "Invalid session token",
			Err: fmt.Errorf("session missing from context"),
		})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Valid session token",
		Data: session,
	})
}
