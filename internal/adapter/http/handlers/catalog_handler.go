package handlers

import (
	"net/http"
	"strconv"
	"strings"

	request "assistencia_tecnica/internal/adapter/http/dto/request"
	response "assistencia_tecnica/internal/adapter/http/dto/response"
	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the service descriptions catalog and user
// profiles.
type CatalogHandler struct {
	catalog  usecase.IServiceCatalogUseCase
	profiles usecase.IUserProfileUseCase
}

func NewCatalogHandler(catalog usecase.IServiceCatalogUseCase, profiles usecase.IUserProfileUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, profiles: profiles}
}

// ListDescriptions picks one listing: q searches, category filters active
// entries of that category, active=true lists active entries, and no
// parameter lists everything.
func (h *CatalogHandler) ListDescriptions(c *gin.Context) {
	var (
		ds  []entities.ServiceDescription
		err error
	)
	ctx := c.Request.Context()
	switch {
	case c.Query("q") != "":
		ds, err = h.catalog.Search(ctx, c.Query("q"))
	case c.Query("category") != "":
		ds, err = h.catalog.ListByCategory(ctx, c.Query("category"))
	case c.Query("active") != "":
		active, perr := strconv.ParseBool(c.Query("active"))
		if perr != nil {
			writeError(c, errInvalidPayload)
			return
		}
		if active {
			ds, err = h.catalog.ListActive(ctx)
		} else {
			ds, err = h.catalog.List(ctx)
		}
	default:
		ds, err = h.catalog.List(ctx)
	}
	if err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDescriptions(ds))
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) GetDescription(c *gin.Context) {
	d, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDescription(d))
}

func (h *CatalogHandler) CreateDescription(c *gin.Context) {
	var payload request.DescriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	id, err := h.catalog.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.JSON(http.StatusCreated, response.CreatedResponse{ID: id})
}

func (h *CatalogHandler) UpdateDescription(c *gin.Context) {
	var payload request.DescriptionPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	if err := h.catalog.Update(c.Request.Context(), c.Param("id"), payload.ToPatch()); err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) SetDescriptionActive(c *gin.Context) {
	var payload request.SetActiveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	if err := h.catalog.SetActive(c.Request.Context(), c.Param("id"), *payload.Ativo); err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) DeleteDescription(c *gin.Context) {
	if err := h.catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) GetProfile(c *gin.Context) {
	p, err := h.profiles.Current(c.Request.Context())
	if err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *CatalogHandler) CreateProfile(c *gin.Context) {
	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	p, err := h.profiles.CreateCurrent(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *CatalogHandler) UpdateProfile(c *gin.Context) {
	var payload request.ProfilePatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	p, err := h.profiles.UpdateCurrent(c.Request.Context(), payload.ToPatch())
	if err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListUsers is admin only; kind=cliente restricts the list to clients.
func (h *CatalogHandler) ListUsers(c *gin.Context) {
	var (
		users []entities.UserProfile
		err   error
	)
	if entities.UserKind(c.Query("kind")) == entities.UserKindCliente {
		users, err = h.profiles.ListClients(c.Request.Context())
	} else {
		users, err = h.profiles.ListAll(c.Request.Context())
	}
	if err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.JSON(http.StatusOK, users)
}

// LookupUser finds a profile by ?email=. Admin only.
func (h *CatalogHandler) LookupUser(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		writeError(c, errInvalidPayload)
		return
	}

	p, err := h.profiles.FindByEmail(c.Request.Context(), email)
	if err != nil {
		writeError(c, mapDataError(err))
		return
	}
	c.JSON(http.StatusOK, p)
}
