package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cargomatters/backend/internal/admins"
	"github.com/cargomatters/backend/internal/response"
	"github.com/cargomatters/backend/internal/transporters"
)

// respondError maps service errors onto the error taxonomy:
// validation -> 400, bad credentials -> 401, missing record -> 404,
// duplicate -> 409, everything else -> 500 (details logged, never returned).
func respondError(c *gin.Context, err error) {
	var ve transporters.ValidationError
	switch {
	case errors.As(err, &ve):
		response.Error(c, http.StatusBadRequest, ve.Error())
	case errors.Is(err, transporters.ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "invalid status")
	case errors.Is(err, transporters.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, transporters.ErrNotFound),
		errors.Is(err, transporters.ErrVehicleNotFound),
		errors.Is(err, admins.ErrNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, transporters.ErrEmailTaken),
		errors.Is(err, transporters.ErrDuplicateVehicle):
		response.Error(c, http.StatusConflict, err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "internal server error")
	}
}
