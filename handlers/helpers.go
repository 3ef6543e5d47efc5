package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mediq/utils"
)

// respondError maps the engine's error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is an infrastructure failure and stays a
// 500 with a generic body.
func respondError(c *gin.Context, err error, message string) {
	switch {
	case utils.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, message, err.Error())
	case utils.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, message, err.Error())
	case utils.IsConflict(err):
		utils.JSONError(c, http.StatusConflict, message, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, message, err.Error())
	}
}
