package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/middleware"
	"github.com/lshigami/trivia/internal/service"
	"github.com/rs/zerolog/log"
)

var statusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "page not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
}

// abortWithStatus writes the error envelope for status.
func abortWithStatus(c *gin.Context, status int) {
	message, ok := statusMessages[status]
	if !ok {
		message = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Success: false, Error: status, Message: message})
}

// respondError maps a service error to 404 or 422. Anything that is not
// explicitly a not-found is reported as unprocessable.
func respondError(c *gin.Context, err error, op string) {
	status := http.StatusUnprocessableEntity
	if errors.Is(err, service.ErrNotFound) {
		status = http.StatusNotFound
	}
	log.Warn().
		Err(err).
		Str("op", op).
		Int("status", status).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Msg("Request failed")
	abortWithStatus(c, status)
}

// parseID reads a positive integer path parameter. A non-numeric id cannot name a
// resource, so the caller answers 404.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// NotFound handles unmatched routes.
func NotFound(c *gin.Context) {
	abortWithStatus(c, http.StatusNotFound)
}

// MethodNotAllowed handles a known path requested with the wrong verb.
func MethodNotAllowed(c *gin.Context) {
	abortWithStatus(c, http.StatusMethodNotAllowed)
}

// Recovery turns a panic into the 500 envelope.
func Recovery(c *gin.Context, recovered any) {
	log.Error().
		Interface("panic", recovered).
		Str("path", c.Request.URL.Path).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Msg("Recovered from panic")
	abortWithStatus(c, http.StatusInternalServerError)
}
