package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dentalhub/dental-center-api/auth"
	"github.com/dentalhub/dental-center-api/model"
	"github.com/dentalhub/dental-center-api/store"
	"github.com/dentalhub/dental-center-api/util"
)

const (
	storesKey  = "stores"
	sessionKey = "session"
)

// CORSMiddleware configures CORS headers for incoming requests.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Content-Type", "application/json")

		// For preflight requests, respond with 204 and abort further processing.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// StoresMiddleware makes the opened record stores available to handlers.
func StoresMiddleware(stores *store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(storesKey, stores)
		c.Next()
	}
}

// GetStores returns the record stores set by StoresMiddleware, or nil.
func GetStores(c *gin.Context) *store.Stores {
	value, exists := c.Get(storesKey)
	if !exists {
		return nil
	}
	stores, ok := value.(*store.Stores)
	if !ok {
		return nil
	}
	return stores
}

// AuthRequired validates the bearer token on every request and stores the
// recovered session in the request context. Requests without a valid token
// are rejected with 401.
func AuthRequired(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Missing session token",
				Err: fmt.Errorf("authorization header is empty"),
			})
			c.Abort()
			return
		}

		session, err := gate.ParseSession(token)
		if err != nil {
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Invalid or expired session token",
				Err: err,
			})
			c.Abort()
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// AdminOnly rejects sessions that do not carry the Admin role. Must run
// after AuthRequired.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok || !session.IsAdmin() {
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Administrator role required",
				Err: fmt.Errorf("session role is not %s", model.RoleAdmin),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSession returns the session stored by AuthRequired.
func GetSession(c *gin.Context) (model.Session, bool) {
	value, exists := c.Get(sessionKey)
	if !exists {
		return model.Session{}, false
	}
	session, ok := value.(model.Session)
	return session, ok
}

// bearerToken extracts the token from the Authorization header, accepting
// the bare token in a session-token header as a fallback.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return c.GetHeader("session-token")
}
