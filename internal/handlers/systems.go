package handlers

import (
	"net/http"

	"hydroponics/internal/service"

	"github.com/gin-gonic/gin"
)

// SystemRequest is the create/update body. An owner ("user") in the body
// is not bound; the owner is always the caller.
type SystemRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=100" example:"Greenhouse A"`
	Location *string `json:"location" binding:"omitempty,max=100" example:"London"`
}

func (r SystemRequest) input() service.SystemInput {
	return service.SystemInput{Title: r.Title, Location: r.Location}
}

// @Summary      List systems
// @Description  Systems owned by the caller. Date bounds accept RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'; a date-only upper bound covers the whole day.
// @Tags         systems
// @Produce      json
// @Param        location     query  string  false  "Case-insensitive substring"  example(London)
// @Param        created_min  query  string  false  "Created at or after"
// @Param        created_max  query  string  false  "Created at or before"
// @Param        updated_min  query  string  false  "Updated at or after"
// @Param        updated_max  query  string  false  "Updated at or before"
// @Param        ordering     query  string  false  "created, updated; '-' for descending"  example(-created)
// @Success      200  {array}   models.System
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /systems/ [get]
// @Security     BearerAuth
func (h *Handler) listSystems(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		h.respondError(c, "systems_list_failed", err)
		return
	}
	f, err := parseSystemFilter(c)
	if err != nil {
		h.respondError(c, "systems_list_failed", err)
		return
	}
	systems, err := h.services.ListSystems(c.Request.Context(), uid, f)
	if err != nil {
		h.respondError(c, "systems_list_failed", err, "user_id", uid)
		return
	}
	c.JSON(http.StatusOK, systems)
}

// @Summary      Create system
// @Tags         systems
// @Accept       json
// @Produce      json
// @Param        body  body      SystemRequest  true  "System payload"
// @Success      201   {object}  models.System
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Router       /systems/ [post]
// @Security     BearerAuth
func (h *Handler) createSystem(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		h.respondError(c, "system_create_failed", err)
		return
	}
	var req SystemRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	s, err := h.services.CreateSystem(c.Request.Context(), uid, req.input())
	if err != nil {
		h.respondError(c, "system_create_failed", err, "user_id", uid)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// @Summary      Get system
// @Description  Includes the 10 most recent measurements, newest first.
// @Tags         systems
// @Produce      json
// @Param        id   path      int  true  "System id"
// @Success      200  {object}  models.SystemDetail
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /systems/{id}/ [get]
// @Security     BearerAuth
func (h *Handler) getSystem(c *gin.Context) {
	uid, id, ok := h.ownerAndID(c, "system_get_failed")
	if !ok {
		return
	}
	d, err := h.services.GetSystem(c.Request.Context(), uid, id)
	if err != nil {
		h.respondError(c, "system_get_failed", err, "user_id", uid, "system_id", id)
		return
	}
	c.JSON(http.StatusOK, d)
}

// @Summary      Update system (partial)
// @Tags         systems
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "System id"
// @Param        body  body      SystemRequest  true  "Fields to change"
// @Success      200   {object}  models.System
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /systems/{id}/ [patch]
// @Security     BearerAuth
func (h *Handler) patchSystem(c *gin.Context) {
	h.updateSystem(c, true)
}

// @Summary      Replace system
// @Tags         systems
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "System id"
// @Param        body  body      SystemRequest  true  "Title and location"
// @Success      200   {object}  models.System
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /systems/{id}/ [put]
// @Security     BearerAuth
func (h *Handler) putSystem(c *gin.Context) {
	h.updateSystem(c, false)
}

func (h *Handler) updateSystem(c *gin.Context, partial bool) {
	uid, id, ok := h.ownerAndID(c, "system_update_failed")
	if !ok {
		return
	}
	var req SystemRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	s, err := h.services.UpdateSystem(c.Request.Context(), uid, id, req.input(), partial)
	if err != nil {
		h.respondError(c, "system_update_failed", err, "user_id", uid, "system_id", id)
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary      Delete system
// @Description  Deletes the system and all of its measurements.
// @Tags         systems
// @Param        id   path  int  true  "System id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /systems/{id}/ [delete]
// @Security     BearerAuth
func (h *Handler) deleteSystem(c *gin.Context) {
	uid, id, ok := h.ownerAndID(c, "system_delete_failed")
	if !ok {
		return
	}
	if err := h.services.DeleteSystem(c.Request.Context(), uid, id); err != nil {
		h.respondError(c, "system_delete_failed", err, "user_id", uid, "system_id", id)
		return
	}
	c.Status(http.StatusNoContent)
}

// ownerAndID reads the caller and the :id parameter, writing the error
// response itself when either is missing.
func (h *Handler) ownerAndID(c *gin.Context, logKey string) (int64, int64, bool) {
	uid, err := userID(c)
	if err != nil {
		h.respondError(c, logKey, err)
		return 0, 0, false
	}
	id, err := pathID(c)
	if err != nil {
		h.respondError(c, logKey, err)
		return 0, 0, false
	}
	return uid, id, true
}
