package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"office-leasing-backend/services"
	"office-leasing-backend/utils"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// ValidationError 422, not found 404, everything else a logged 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found")
	case services.IsValidation(err):
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
