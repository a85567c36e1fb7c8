package handlers

import (
	"net/http"

	"hydroponics/internal/models"
	"hydroponics/internal/service"

	"github.com/gin-gonic/gin"
)

// MeasurementRequest is the create/update body. Readings accept JSON
// numbers or strings; the timestamp is set by the server.
type MeasurementRequest struct {
	SystemID    *int64        `json:"hydroponic_system" example:"1"`
	PH          *models.Fixed `json:"ph" swaggertype:"string" example:"6.50"`
	Temperature *models.Fixed `json:"temperature" swaggertype:"string" example:"21.30"`
	TDS         *models.Fixed `json:"tds" swaggertype:"string" example:"410.00"`
}

func (r MeasurementRequest) input() service.MeasurementInput {
	return service.MeasurementInput{
		SystemID:    r.SystemID,
		PH:          r.PH,
		Temperature: r.Temperature,
		TDS:         r.TDS,
	}
}

// @Summary      List measurements
// @Description  Measurements of systems owned by the caller. Numeric bounds are inclusive.
// @Tags         measurements
// @Produce      json
// @Param        hydroponic_system  query  int     false  "Parent system id"
// @Param        start_date         query  string  false  "Taken at or after"  example(2025-08-01)
// @Param        end_date           query  string  false  "Taken at or before; date-only covers the day"  example(2025-08-31)
// @Param        ph_min             query  number  false  "Minimum pH"
// @Param        ph_max             query  number  false  "Maximum pH"
// @Param        temperature_min    query  number  false  "Minimum temperature"
// @Param        temperature_max    query  number  false  "Maximum temperature"
// @Param        tds_min            query  number  false  "Minimum TDS"
// @Param        tds_max            query  number  false  "Maximum TDS"
// @Param        ordering           query  string  false  "timestamp, ph, temperature, tds; '-' for descending"  example(-timestamp)
// @Success      200  {array}   models.Measurement
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /measurements/ [get]
// @Security     BearerAuth
func (h *Handler) listMeasurements(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		h.respondError(c, "measurements_list_failed", err)
		return
	}
	f, err := parseMeasurementFilter(c)
	if err != nil {
		h.respondError(c, "measurements_list_failed", err)
		return
	}
	list, err := h.services.ListMeasurements(c.Request.Context(), uid, f)
	if err != nil {
		h.respondError(c, "measurements_list_failed", err, "user_id", uid)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary      Create measurement
// @Description  The parent system must belong to the caller.
// @Tags         measurements
// @Accept       json
// @Produce      json
// @Param        body  body      MeasurementRequest  true  "Measurement payload"
// @Success      201   {object}  models.Measurement
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /measurements/ [post]
// @Security     BearerAuth
func (h *Handler) createMeasurement(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		h.respondError(c, "measurement_create_failed", err)
		return
	}
	var req MeasurementRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	m, err := h.services.CreateMeasurement(c.Request.Context(), uid, req.input())
	if err != nil {
		h.respondError(c, "measurement_create_failed", err, "user_id", uid)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// @Summary      Get measurement
// @Tags         measurements
// @Produce      json
// @Param        id   path      int  true  "Measurement id"
// @Success      200  {object}  models.Measurement
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /measurements/{id}/ [get]
// @Security     BearerAuth
func (h *Handler) getMeasurement(c *gin.Context) {
	uid, id, ok := h.ownerAndID(c, "measurement_get_failed")
	if !ok {
		return
	}
	m, err := h.services.GetMeasurement(c.Request.Context(), uid, id)
	if err != nil {
		h.respondError(c, "measurement_get_failed", err, "user_id", uid, "measurement_id", id)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary      Update measurement (partial)
// @Description  The parent system cannot be changed.
// @Tags         measurements
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Measurement id"
// @Param        body  body      MeasurementRequest  true  "Fields to change"
// @Success      200   {object}  models.Measurement
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /measurements/{id}/ [patch]
// @Security     BearerAuth
func (h *Handler) patchMeasurement(c *gin.Context) {
	h.updateMeasurement(c, true)
}

// @Summary      Replace measurement readings
// @Description  The parent system cannot be changed.
// @Tags         measurements
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Measurement id"
// @Param        body  body      MeasurementRequest  true  "All readings"
// @Success      200   {object}  models.Measurement
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /measurements/{id}/ [put]
// @Security     BearerAuth
func (h *Handler) putMeasurement(c *gin.Context) {
	h.updateMeasurement(c, false)
}

func (h *Handler) updateMeasurement(c *gin.Context, partial bool) {
	uid, id, ok := h.ownerAndID(c, "measurement_update_failed")
	if !ok {
		return
	}
	var req MeasurementRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	m, err := h.services.UpdateMeasurement(c.Request.Context(), uid, id, req.input(), partial)
	if err != nil {
		h.respondError(c, "measurement_update_failed", err, "user_id", uid, "measurement_id", id)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary      Delete measurement
// @Tags         measurements
// @Param        id   path  int  true  "Measurement id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /measurements/{id}/ [delete]
// @Security     BearerAuth
func (h *Handler) deleteMeasurement(c *gin.Context) {
	uid, id, ok := h.ownerAndID(c, "measurement_delete_failed")
	if !ok {
		return
	}
	if err := h.services.DeleteMeasurement(c.Request.Context(), uid, id); err != nil {
		h.respondError(c, "measurement_delete_failed", err, "user_id", uid, "measurement_id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
