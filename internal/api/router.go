package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mosaops/timesheet-backend-go/internal/handler"
	"github.com/mosaops/timesheet-backend-go/internal/middleware"
	"github.com/mosaops/timesheet-backend-go/internal/service"
)

// Handlers groups the handler set wired into the router.
type Handlers struct {
	Auth       *handler.AuthHandler
	Trip       *handler.TripHandler
	Wizard     *handler.WizardHandler
	Validation *handler.ValidationHandler
	History    *handler.HistoryHandler
}

// SetupRouter builds the gin engine with all routes and middleware.
func SetupRouter(auth *service.AuthService, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(300, time.Minute))

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Timesheet Backend API is running",
		})
	})

	// Public auth endpoints
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	// Everything else requires a valid token
	api := r.Group("/api")
	api.Use(middleware.Auth(auth))
	{
		api.GET("/trips", h.Trip.FetchTrips)

		timesheet := api.Group("/timesheet")
		{
			timesheet.POST("/add-trip", h.Trip.AddTrip)
			timesheet.POST("/delete-trip", h.Trip.DeleteTrip)
			timesheet.POST("/restore-trip", h.Trip.RestoreTrip)
			timesheet.POST("/update-trip", h.Trip.UpdateTrip)

			timesheet.GET("/step1", h.Wizard.GetStep1)
			timesheet.POST("/step1", h.Wizard.SaveStep1)
			timesheet.GET("/step2", h.Wizard.GetStep2)
			timesheet.POST("/step2", h.Wizard.SaveStep2)
			timesheet.POST("/clear", h.Wizard.Clear)

			timesheet.GET("/step3", h.Validation.Rows)
			timesheet.POST("/update-shift", h.Validation.UpdateShift)
			timesheet.POST("/update-prev-hm", h.Validation.UpdatePrevHM)
			timesheet.POST("/update-hm", h.Validation.UpdateHM)
			timesheet.POST("/update-next-hm", h.Validation.UpdateNextHM)
			timesheet.POST("/run-validation", h.Validation.RunAutofix)
			timesheet.GET("/validation-progress", h.Validation.AutofixProgress)

			timesheet.GET("/historical-login", h.History.ByUnit)
		}
	}

	return r
}
