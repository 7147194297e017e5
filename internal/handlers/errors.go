package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"citysim/internal/city"
	"citysim/internal/repository"
	"citysim/internal/service"
)

const errInternal = "internal error"

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidArgument),
		errors.Is(err, city.ErrUnknownBuildingType),
		errors.Is(err, repository.ErrInvalidSlot):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, repository.ErrSaveNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrGameOver),
		errors.Is(err, repository.ErrMayorExists):
		return http.StatusConflict
	case errors.Is(err, repository.ErrCorruptSave):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err under logKey and writes it as JSON. Internal errors
// are logged in full but reported to the client generically.
func (h *Handler) respondError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	code := statusFor(err)
	fields := append([]interface{}{"err", err, "status", code}, kv...)
	if code == http.StatusInternalServerError {
		h.log.Errorw(logKey, fields...)
		c.JSON(code, gin.H{"error": errInternal})
		return
	}
	h.log.Infow(logKey, fields...)
	c.JSON(code, gin.H{"error": err.Error()})
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return false
	}
	return true
}
