// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/dentalhub/dental-center-api/auth"
	"github.com/dentalhub/dental-center-api/config"
	"github.com/dentalhub/dental-center-api/endpoint"
	"github.com/dentalhub/dental-center-api/middleware"
	"github.com/dentalhub/dental-center-api/model"
	"github.com/dentalhub/dental-center-api/persistence"
	"github.com/dentalhub/dental-center-api/store"
	"github.com/dentalhub/dental-center-api/util"
)

// openAdapter selects the persistence backend from configuration.
func openAdapter(cfg *config.Config) (persistence.Adapter, error) {
	switch cfg.Storage {
	case "memory":
		return persistence.NewMemory(), nil
	case "redis":
		client, err := config.ConnectRedis()
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return persistence.NewRedis(client), nil
	case "mysql":
		db, err := config.ConnectMySQL()
		if err != nil {
			return nil, fmt.Errorf("connect mysql: %w", err)
		}
		return persistence.NewGorm(db)
	case "bolt":
		db, err := config.OpenBolt()
		if err != nil {
			return nil, fmt.Errorf("open bolt file: %w", err)
		}
		return persistence.NewBolt(db)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

func setupRouter(cfg *config.Config, stores *store.Stores, gate *auth.Gate) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.StoresMiddleware(stores))
	router.Use(middleware.EndpointCallLogger())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})

	router.POST("/login", middleware.RateLimiter(middleware.RateLimitConfig{}), endpoint.Login(gate))

	authed := router.Group("/", middleware.AuthRequired(gate))
	authed.POST("/logout", endpoint.Logout)
	authed.GET("/token/validate", endpoint.ValidateToken)
	authed.GET("/patient/:id", endpoint.GetPatient)
	authed.GET("/patient/:id/appointments", endpoint.ListPatientAppointments)

	admin := authed.Group("/", middleware.AdminOnly())
	admin.GET("/patient", endpoint.ListPatients)
	admin.POST("/patient", endpoint.CreatePatient)
	admin.PATCH("/patient/:id", endpoint.UpdatePatient)
	admin.DELETE("/patient/:id", endpoint.DeletePatient)
	admin.GET("/appointment", endpoint.ListAppointments)
	admin.GET("/appointment/upcoming", endpoint.ListUpcomingAppointments)
	admin.POST("/appointment", endpoint.CreateAppointment)
	admin.PATCH("/appointment/:id", endpoint.UpdateAppointment)
	admin.DELETE("/appointment/:id", endpoint.DeleteAppointment)
	admin.GET("/dashboard/stats", endpoint.DashboardStatsHandler)

	return router
}

func main() {
	cfg := config.LoadConfig()

	// Pick up the secret after the .env file has been read.
	util.SetJWTSecret(os.Getenv("JWTSECRET"))

	adapter, err := openAdapter(cfg)
	if err != nil {
		log.Fatalf("error opening storage: %v", err)
	}

	stores, err := store.Open(adapter)
	if err != nil {
		log.Fatalf("error loading record stores: %v", err)
	}

	gate := auth.NewGate(model.SeedUsers())

	router := setupRouter(cfg, stores, gate)

	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
