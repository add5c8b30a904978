package handlers

import (
	"net/http"
	"strings"

	request "assistencia_tecnica/internal/adapter/http/dto/request"
	response "assistencia_tecnica/internal/adapter/http/dto/response"
	"assistencia_tecnica/internal/domain/views"
	"assistencia_tecnica/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceHandler serves equipment, tickets, quotes and the aggregator
// state.
type ServiceHandler struct {
	data usecase.IDataAggregator
}

func NewServiceHandler(data usecase.IDataAggregator) *ServiceHandler {
	return &ServiceHandler{data: data}
}

func (h *ServiceHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSnapshot(h.data.Snapshot()))
}

// Reload refetches every collection. A failed reload answers with the
// error and leaves the previous data in place.
func (h *ServiceHandler) Reload(c *gin.Context) {
	if err := h.data.ReloadAll(c.Request.Context()); err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(h.data.Snapshot()))
}

func (h *ServiceHandler) ListEquipment(c *gin.Context) {
	equipment := h.data.Snapshot().Equipment
	c.JSON(http.StatusOK, views.FilterBySubstring(equipment, c.Query("q"), views.EquipmentFields...))
}

func (h *ServiceHandler) CreateEquipment(c *gin.Context) {
	var payload request.EquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	id, err := h.data.CreateEquipment(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.JSON(http.StatusCreated, response.CreatedResponse{ID: id})
}

func (h *ServiceHandler) UpdateEquipment(c *gin.Context) {
	var payload request.EquipmentPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	if err := h.data.UpdateEquipment(c.Request.Context(), c.Param("id"), payload.ToPatch()); err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) DeleteEquipment(c *gin.Context) {
	if err := h.data.DeleteEquipment(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) ListTickets(c *gin.Context) {
	tickets := h.data.Snapshot().Tickets
	tickets = views.FilterBySubstring(tickets, c.Query("q"), views.TicketFields...)
	c.JSON(http.StatusOK, response.FromTickets(tickets))
}

func (h *ServiceHandler) CreateTicket(c *gin.Context) {
	var payload request.TicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	id, err := h.data.CreateTicket(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.JSON(http.StatusCreated, response.CreatedResponse{ID: id})
}

func (h *ServiceHandler) UpdateTicket(c *gin.Context) {
	var payload request.TicketPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	if err := h.data.UpdateTicket(c.Request.Context(), c.Param("id"), payload.ToPatch()); err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) DeleteTicket(c *gin.Context) {
	if err := h.data.DeleteTicket(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) ListQuotes(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromQuotes(h.data.Quotes(strings.TrimSpace(c.Query("q")))))
}

func (h *ServiceHandler) ApproveQuote(c *gin.Context) {
	if err := h.data.ApproveQuote(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) RejectQuote(c *gin.Context) {
	if err := h.data.RejectQuote(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
