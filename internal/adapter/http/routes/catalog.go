package routes

import (
	"assistencia_tecnica/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDescriptions = "/descriptions"
	PathProfile      = "/profile"
	PathUsers        = "/users"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	descriptions := rg.Group(PathDescriptions)
	{
		descriptions.GET("", h.ListDescriptions)
		descriptions.POST("", h.CreateDescription)
		descriptions.GET("/categories", h.ListCategories)
		descriptions.GET("/:id", h.GetDescription)
		descriptions.PATCH("/:id", h.UpdateDescription)
		descriptions.PATCH("/:id/active", h.SetDescriptionActive)
		descriptions.DELETE("/:id", h.DeleteDescription)
	}

	profile := rg.Group(PathProfile)
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.CreateProfile)
		profile.PATCH("", h.UpdateProfile)
	}

	users := rg.Group(PathUsers)
	{
		users.GET("", h.ListUsers)
		users.GET("/lookup", h.LookupUser)
	}
}
