package handlers

import (
	"errors"
	"net/http"

	"github.com/lukhatek/Fsociety/internal/service"

	"github.com/gin-gonic/gin"
)

// User-facing messages. Login failures share one message on purpose.
const (
	msgDuplicateIdentity  = "username or email already exists"
	msgInvalidCredentials = "invalid credentials"
	msgUnauthenticated    = "could not validate credentials"
	msgPostNotFound       = "post not found"
	msgInternal           = "internal server error"
	errInvalidBodyPref    = "invalid body: "
)

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error" example:"invalid credentials"`
}

// respondError maps service errors to statuses. Unknown errors are logged
// under logKey and reported as 500.
func (h *Handler) respondError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrDuplicateIdentity):
		c.JSON(http.StatusConflict, errorResponse{Error: msgDuplicateIdentity})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: msgInvalidCredentials})
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: msgUnauthenticated})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: msgPostNotFound})
	case errors.Is(err, service.ErrInvalidPassword):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		if h.log != nil {
			fields := append([]interface{}{"err", err}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: msgInternal})
	}
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, errorResponse{Error: errInvalidBodyPref + err.Error()})
		return false
	}
	return true
}
