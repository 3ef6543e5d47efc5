package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mediq/handlers"
)

// RegisterScheduleRoutes registers the administrative schedule endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedules")
	{
		api.POST("", hb.CreateDayHandler)
		api.GET("/doctor/:doctorId", hb.ListByDoctorHandler)
		api.GET("/doctor/:doctorId/day", hb.GetDayHandler)
		api.PATCH("/slots/:slotId", hb.ToggleSlotHandler)
		api.DELETE("/:entryId", hb.DeleteDayHandler)
	}
}

// RegisterAvailabilityRoutes registers the patient-facing resolvers.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/doctor/:doctorId", hb.GetDoctorAvailabilityHandler)
		api.GET("/specialty/:specialtyId", hb.GetSpecialtyAvailabilityHandler)
	}
}

// RegisterDoctorRoutes registers read-only directory lookups.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.GET("/:id", hb.GetDoctorByIDHandler)
		api.GET("/specialty/:specialtyId", hb.GetDoctorsBySpecialtyHandler)
	}
}

// RegisterRoutes wires the router: CORS, health, then the API groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", hb.HealthHandler)

	RegisterScheduleRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
}
