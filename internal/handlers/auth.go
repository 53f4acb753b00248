package handlers

import (
	"net/http"

	"github.com/lukhatek/Fsociety/internal/models"
	"github.com/lukhatek/Fsociety/internal/service"

	"github.com/gin-gonic/gin"
)

const tokenTypeBearer = "bearer"

// Fields are pointers so that "required" means the key is present; an
// empty string is a valid value.
type registerRequest struct {
	Username *string `json:"username" binding:"required" example:"neo"`
	Email    *string `json:"email" binding:"required" example:"neo@x.com"`
	Password *string `json:"password" binding:"required" example:"redpill"`
}

type loginRequest struct {
	Username *string `json:"username" binding:"required" example:"neo"`
	Password *string `json:"password" binding:"required" example:"redpill"`
}

type loginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type" example:"bearer"`
	User        models.UserView `json:"user"`
}

// @Summary      Register
// @Description  Creates an account. The password is never returned.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "new account"
// @Success      200   {object}  models.UserView
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.Identity.Register(c.Request.Context(), service.RegisterInput{
		Username: *input.Username,
		Email:    *input.Email,
		Password: *input.Password,
	})
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_register_failed", "username", *input.Username, "err", err)
		}
		h.respondError(c, err, "auth_register_error", "username", *input.Username)
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary      Login
// @Description  Exchanges a username and password for a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.Identity.Authenticate(c.Request.Context(), *input.Username, *input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_login_failed", "username", *input.Username, "err", err)
		}
		h.respondError(c, err, "auth_login_error", "username", *input.Username)
		return
	}

	token, err := h.services.Tokens.Issue(user.Username)
	if err != nil {
		h.respondError(c, err, "auth_issue_token_failed", "username", user.Username)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		User:        user,
	})
}

// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  models.UserView
// @Failure      401  {object}  errorResponse
// @Router       /api/me [get]
// @Security     BearerAuth
func (h *Handler) me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{Error: msgUnauthenticated})
		return
	}
	c.JSON(http.StatusOK, user)
}
