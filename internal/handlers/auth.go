package handlers

import (
	"net/http"

	"hydroponics/internal/service"

	"github.com/gin-gonic/gin"
)

// Single, shared credentials payload for registration and token requests.
// Blank values are reported by the service with field messages.
type authCredentials struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"s3cret-pass"`
}

// profileRequest is the body of PUT/PATCH /user/me/.
type profileRequest struct {
	Username *string `json:"username" binding:"omitempty,max=150" example:"alice"`
	Password *string `json:"password" example:"n3w-s3cret"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// @Summary      Register a user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      authCredentials  true  "Credentials"
// @Success      201   {object}  models.User
// @Failure      400   {object}  map[string]interface{}
// @Router       /user/create/ [post]
func (h *Handler) createUser(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.SignUp(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("user_create_failed", "username", input.Username, "err", err)
		}
		h.respondError(c, "user_create_failed", err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// @Summary      Obtain a token
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      authCredentials  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]interface{}
// @Router       /user/token/ [post]
func (h *Handler) obtainToken(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("user_token_failed", "username", input.Username, "err", err)
		}
		h.respondError(c, "user_token_failed", err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// @Summary      Current user
// @Tags         user
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Router       /user/me/ [get]
// @Security     BearerAuth
func (h *Handler) getMe(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		h.respondError(c, "user_me_failed", err)
		return
	}
	user, err := h.services.Me(c.Request.Context(), uid)
	if err != nil {
		h.respondError(c, "user_me_failed", err, "user_id", uid)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Update current user (partial)
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      profileRequest  true  "Fields to change"
// @Success      200   {object}  models.User
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Router       /user/me/ [patch]
// @Security     BearerAuth
func (h *Handler) patchMe(c *gin.Context) {
	h.updateMe(c, true)
}

// @Summary      Update current user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      profileRequest  true  "Username and password"
// @Success      200   {object}  models.User
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Router       /user/me/ [put]
// @Security     BearerAuth
func (h *Handler) putMe(c *gin.Context) {
	h.updateMe(c, false)
}

func (h *Handler) updateMe(c *gin.Context, partial bool) {
	uid, err := userID(c)
	if err != nil {
		h.respondError(c, "user_update_failed", err)
		return
	}
	var req profileRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	user, err := h.services.UpdateMe(c.Request.Context(), uid, service.ProfileInput{
		Username: req.Username,
		Password: req.Password,
	}, partial)
	if err != nil {
		h.respondError(c, "user_update_failed", err, "user_id", uid)
		return
	}
	c.JSON(http.StatusOK, user)
}
