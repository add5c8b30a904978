package routes

import (
	"assistencia_tecnica/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathState     = "/state"
	PathClients   = "/clients"
	PathEquipment = "/equipment"
	PathTickets   = "/tickets"
	PathQuotes    = "/quotes"
)

func addDataRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler, serviceHandler *handlers.ServiceHandler) {
	state := rg.Group(PathState)
	{
		state.GET("", serviceHandler.GetState)
		state.POST("/reload", serviceHandler.Reload)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("", clientHandler.ListClients)
		clients.POST("", clientHandler.CreateClient)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PATCH("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
		clients.GET("/:id/equipment", clientHandler.ListClientEquipment)
	}

	equipment := rg.Group(PathEquipment)
	{
		equipment.GET("", serviceHandler.ListEquipment)
		equipment.POST("", serviceHandler.CreateEquipment)
		equipment.PATCH("/:id", serviceHandler.UpdateEquipment)
		equipment.DELETE("/:id", serviceHandler.DeleteEquipment)
	}

	tickets := rg.Group(PathTickets)
	{
		tickets.GET("", serviceHandler.ListTickets)
		tickets.POST("", serviceHandler.CreateTicket)
		tickets.PATCH("/:id", serviceHandler.UpdateTicket)
		tickets.DELETE("/:id", serviceHandler.DeleteTicket)
	}

	// Orçamentos são derivados dos atendimentos com valor.
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", serviceHandler.ListQuotes)
		quotes.PATCH("/:id/approve", serviceHandler.ApproveQuote)
		quotes.PATCH("/:id/reject", serviceHandler.RejectQuote)
	}
}
