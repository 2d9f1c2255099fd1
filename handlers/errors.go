package handlers

import (
	"net/http"
	"strconv"

	"quizboard/errors"

	"github.com/gin-gonic/gin"
)

// writeError maps a service error to an HTTP response. Lifecycle conflicts
// (wrong phase, invalid transition, duplicate resolution) map to 409 so
// clients can distinguish them from missing entities and malformed input.
func writeError(c *gin.Context, err error) {
	e, _ := errors.Cast(err)

	status := http.StatusInternalServerError
	switch e.Code {
	case errors.ErrNotFound:
		status = http.StatusNotFound
	case errors.ErrIllegalPhase, errors.ErrInvalidTransition, errors.ErrAlreadyAnswered:
		status = http.StatusConflict
	case errors.ErrBadRequest:
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{
		"error":   e.Message,
		"code":    e.Code,
		"details": e.Details,
	})
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
