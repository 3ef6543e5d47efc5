package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	doctorRepo "mediq/database/repository/doctor"
)

// DoctorHandler exposes read-only doctor directory lookups.
type DoctorHandler struct {
	Repo doctorRepo.DoctorRepository
}

// NewDoctorHandler constructs a DoctorHandler.
func NewDoctorHandler(repo doctorRepo.DoctorRepository) *DoctorHandler {
	return &DoctorHandler{Repo: repo}
}

func (h *DoctorHandler) GetDoctorByIDHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing doctor id"})
		return
	}

	doctor, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch doctor")
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctor": doctor})
}

func (h *DoctorHandler) GetDoctorsBySpecialtyHandler(c *gin.Context) {
	specialtyID := c.Param("specialtyId")
	if specialtyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing specialty id"})
		return
	}

	doctors, err := h.Repo.GetBySpecialty(c.Request.Context(), specialtyID)
	if err != nil {
		respondError(c, err, "Failed to fetch doctors")
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}
