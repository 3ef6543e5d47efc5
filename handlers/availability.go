package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mediq/models"
	"mediq/services/availability"
)

// AvailabilityHandler exposes the free-slot resolvers to patient-facing
// callers.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

func (h *AvailabilityHandler) GetDoctorAvailabilityHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")
	date := c.Query("date")
	shift := models.Shift(c.Query("shift"))
	if doctorID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing doctor id or date"})
		return
	}

	slots, err := h.Service.GetAvailable(c.Request.Context(), doctorID, date, shift)
	if err != nil {
		respondError(c, err, "Failed to resolve availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{"timeSlots": slots})
}

func (h *AvailabilityHandler) GetSpecialtyAvailabilityHandler(c *gin.Context) {
	specialtyID := c.Param("specialtyId")
	date := c.Query("date")
	shift := models.Shift(c.Query("shift"))
	if specialtyID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing specialty id or date"})
		return
	}

	slots, err := h.Service.GetAvailableBySpecialty(c.Request.Context(), specialtyID, date, shift)
	if err != nil {
		respondError(c, err, "Failed to resolve specialty availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{"timeSlots": slots})
}
