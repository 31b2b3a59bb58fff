package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifelinehq/lifeline-backend/internal/common"
	"github.com/lifelinehq/lifeline-backend/internal/domain"
	"github.com/lifelinehq/lifeline-backend/internal/service"
	"github.com/lifelinehq/lifeline-backend/pkg/ginutil"
)

// EventHandler handles HTTP requests for timeline events
type EventHandler struct {
	service service.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// GetTimelineData godoc
// @Summary      Timeline feed
// @Description  Returns every event as a TimelineJS-compatible display projection, in chronological order
// @Tags         timeline
// @Produce      json
// @Success      200  {object}  domain.TimelineData
// @Failure      500  {object}  common.ErrorResult
// @Router       /api/data [get]
func (h *EventHandler) GetTimelineData(c *gin.Context) {
	data, err := h.service.GetTimeline(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, data)
}

// GetEvent godoc
// @Summary      Single event
// @Description  Returns the raw stored row for one event (used to prefill the edit form)
// @Tags         events
// @Produce      json
// @Param        id  path  int  true  "Event ID"
// @Success      200  {object}  domain.Event
// @Failure      400  {object}  common.ErrorResult
// @Failure      404  {object}  common.ErrorResult
// @Failure      500  {object}  common.ErrorResult
// @Router       /api/events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, common.ErrInvalidEventID.Error())
		return
	}

	event, err := h.service.GetEvent(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrEventNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, common.ErrEventNotFound.Error())
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, event)
}

// CreateEvent godoc
// @Summary      Add event
// @Description  Validates and inserts a new life event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body  domain.EventRequest  true  "Event fields"
// @Success      200  {object}  common.SuccessResult
// @Failure      400  {object}  common.ErrorResult
// @Failure      500  {object}  common.ErrorResult
// @Router       /api/events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req domain.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.CreateEvent(c.Request.Context(), &req); err != nil {
		if errors.Is(err, common.ErrMissingRequiredFields) {
			common.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	common.SuccessResponse(c, "event added successfully")
}

// UpdateEvent godoc
// @Summary      Update event
// @Description  Fully overwrites all mutable fields of the event; untouched fields must be resent
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id       path  int                  true  "Event ID"
// @Param        request  body  domain.EventRequest  true  "Event fields"
// @Success      200  {object}  common.SuccessResult
// @Failure      400  {object}  common.ErrorResult
// @Failure      404  {object}  common.ErrorResult
// @Failure      500  {object}  common.ErrorResult
// @Router       /api/events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, common.ErrInvalidEventID.Error())
		return
	}

	var req domain.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.UpdateEvent(c.Request.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, common.ErrMissingRequiredFields):
			common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, common.ErrEventNotFound):
			common.ErrorResponse(c, http.StatusNotFound, err.Error())
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	common.SuccessResponse(c, "event updated successfully")
}

// DeleteEvent godoc
// @Summary      Delete event
// @Description  Removes the event permanently
// @Tags         events
// @Produce      json
// @Param        id  path  int  true  "Event ID"
// @Success      200  {object}  common.SuccessResult
// @Failure      400  {object}  common.ErrorResult
// @Failure      404  {object}  common.ErrorResult
// @Failure      500  {object}  common.ErrorResult
// @Router       /api/events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, common.ErrInvalidEventID.Error())
		return
	}

	if err := h.service.DeleteEvent(c.Request.Context(), id); err != nil {
		if errors.Is(err, common.ErrEventNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	common.SuccessResponse(c, "event deleted successfully")
}

// GetMeta godoc
// @Summary      Display tables
// @Description  Emotion→emoji and event-type→color tables shared with the client
// @Tags         timeline
// @Produce      json
// @Success      200  {object}  map[string]map[string]string
// @Router       /api/meta [get]
func (h *EventHandler) GetMeta(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"emotion_emojis":    domain.EmotionEmojis(),
		"event_type_colors": domain.EventTypeColors(),
	})
}
