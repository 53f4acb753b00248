package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/lukhatek/Fsociety/internal/models"
	"github.com/lukhatek/Fsociety/internal/service"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// authMiddleware resolves the bearer token once and stores the user for the
// rest of the request.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{
			Error: "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{
			Error: "invalid Authorization header format",
		})
		return
	}

	user, err := h.services.Gate.Resolve(c.Request.Context(), strings.TrimSpace(parts[1]))
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{
				Error: "invalid or expired token",
			})
			return
		}
		h.respondError(c, err, "auth_resolve_failed")
		c.Abort()
		return
	}

	c.Set(currentUserKey, user)
	c.Next()
}

// currentUser returns the user stored by authMiddleware.
func currentUser(c *gin.Context) (models.UserView, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return models.UserView{}, false
	}
	u, ok := v.(models.UserView)
	return u, ok
}

// requestLogger writes one line per request.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	if h.log == nil {
		return
	}
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	h.log.Infow("http_request",
		"method", c.Request.Method,
		"route", route,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"client_ip", c.ClientIP(),
	)
}
