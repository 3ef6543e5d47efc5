package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mediq/models"
	"mediq/services/booking"
	"mediq/utils"
)

// BookingHandler exposes the slot toggle: the appointment workflow books
// and releases through it, and the admin grid blocks and unblocks through
// it. Same primitive either way.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) ToggleSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()

	slotID := c.Param("slotId")
	if slotID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing slot id"})
		return
	}

	var req models.ToggleSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid toggle slot request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if req.Source == "" {
		req.Source = models.TransitionSourceAdmin
	}

	var entry *models.ScheduleEntry
	var err error
	if req.IsBooked {
		entry, err = h.Service.Book(c.Request.Context(), slotID, req.Source)
	} else {
		entry, err = h.Service.Release(c.Request.Context(), slotID, req.Source)
	}
	if err != nil {
		if req.IsBooked && utils.IsConflict(err) {
			// The race loser gets an explicit retry-with-fresh-data answer,
			// not a generic failure.
			c.JSON(http.StatusConflict, gin.H{
				"error":   "This time is no longer available, please choose another",
				"message": err.Error(),
			})
			return
		}
		respondError(c, err, "Failed to update slot")
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": entry})
}
