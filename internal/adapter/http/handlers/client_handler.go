package handlers

import (
	"net/http"

	request "assistencia_tecnica/internal/adapter/http/dto/request"
	response "assistencia_tecnica/internal/adapter/http/dto/response"
	"assistencia_tecnica/internal/domain/views"
	"assistencia_tecnica/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ClientHandler serves the clients screen. Reads come from the aggregator
// snapshot; writes go through the aggregator so the snapshot is refreshed.
type ClientHandler struct {
	data usecase.IDataAggregator
}

func NewClientHandler(data usecase.IDataAggregator) *ClientHandler {
	return &ClientHandler{data: data}
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients := h.data.Snapshot().Clients
	c.JSON(http.StatusOK, views.FilterBySubstring(clients, c.Query("q"), views.ClientFields...))
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	client, ok := h.data.GetClientByID(c.Param("id"))
	if !ok {
		writeError(c, errNotFound)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) ListClientEquipment(c *gin.Context) {
	c.JSON(http.StatusOK, h.data.EquipmentByClient(c.Param("id")))
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	id, err := h.data.CreateClient(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.JSON(http.StatusCreated, response.CreatedResponse{ID: id})
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.ClientPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	if err := h.data.UpdateClient(c.Request.Context(), c.Param("id"), payload.ToPatch()); err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteClient also removes the client's equipment and tickets.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.data.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
