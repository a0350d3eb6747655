package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	"github.com/SemykinG/DigitalTwin-DigiSalama/pkg/response"
)

type eventLogService interface {
	List(ctx context.Context, filter models.EventLogFilter) ([]models.EventHistoryLog, *models.Pagination, error)
}

// EventHandler serves the event history.
type EventHandler struct {
	service eventLogService
}

// NewEventHandler constructs the handler.
func NewEventHandler(svc eventLogService) *EventHandler {
	return &EventHandler{service: svc}
}

// List godoc
// @Summary List event history
// @Description Committed mutations, newest first
// @Tags Events
// @Produce json
// @Param action query string false "Action prefix, e.g. delete"
// @Param who_did query string false "Actor email"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /api2/events [get]
func (h *EventHandler) List(c *gin.Context) {
	filter := models.EventLogFilter{
		ListFilter: listFilter(c),
		Action:     strings.TrimSpace(c.Query("action")),
		WhoDid:     strings.TrimSpace(c.Query("who_did")),
	}
	entries, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, pagination)
}
