package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mediq/models"
	"mediq/services/schedule"
	"mediq/utils"
)

// ScheduleHandler exposes the administrative schedule operations.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

func (h *ScheduleHandler) CreateDayHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CreateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid create day request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	entry, err := h.Service.CreateDay(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create schedule day")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"schedule": entry})
}

func (h *ScheduleHandler) ListByDoctorHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")
	if doctorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing doctor id"})
		return
	}

	entries, err := h.Service.ListByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		respondError(c, err, "Failed to list schedule days")
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedules": entries})
}

func (h *ScheduleHandler) GetDayHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")
	date := c.Query("date")
	if doctorID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing doctor id or date"})
		return
	}

	entry, err := h.Service.GetDay(c.Request.Context(), doctorID, date)
	if err != nil {
		respondError(c, err, "Failed to fetch schedule day")
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": entry})
}

func (h *ScheduleHandler) DeleteDayHandler(c *gin.Context) {
	entryID := c.Param("entryId")
	if entryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing schedule entry id"})
		return
	}
	force := c.Query("force") == "true"

	if err := h.Service.DeleteDay(c.Request.Context(), entryID, force); err != nil {
		respondError(c, err, "Failed to delete schedule day")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule day deleted"})
}
