package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every route handler so route registration
// takes one value instead of a handler per package.
type HandlerBundle struct {
	// Schedule admin endpoints.
	CreateDayHandler    gin.HandlerFunc
	ListByDoctorHandler gin.HandlerFunc
	GetDayHandler       gin.HandlerFunc
	DeleteDayHandler    gin.HandlerFunc

	// Availability endpoints.
	GetDoctorAvailabilityHandler    gin.HandlerFunc
	GetSpecialtyAvailabilityHandler gin.HandlerFunc

	// Booking transition endpoint.
	ToggleSlotHandler gin.HandlerFunc

	// Doctor directory endpoints.
	GetDoctorByIDHandler         gin.HandlerFunc
	GetDoctorsBySpecialtyHandler gin.HandlerFunc

	// Health endpoint.
	HealthHandler gin.HandlerFunc
}
