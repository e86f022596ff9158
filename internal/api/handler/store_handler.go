package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"storehub/internal/api/dto"
	"storehub/internal/api/middleware"
	"storehub/internal/api/models"
	"storehub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	storeService service.StoreService
	logger       *slog.Logger
}

func NewStoreHandler(storeService service.StoreService, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{storeService: storeService, logger: logger}
}

// RegisterRoutes registers store routes. Listing is open to every
// authenticated identity; creation is admin-only.
func (h *StoreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stores := rg.Group("/stores")
	{
		stores.GET("", middleware.RequireRole(), h.List)
		stores.POST("", middleware.RequireRole(models.RoleAdmin), h.Create)
	}
}

// List returns stores with aggregate and the caller's own rating.
// GET /api/stores?search=&sortBy=&sortOrder=
func (h *StoreHandler) List(c *gin.Context) {
	viewerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	search := c.Query("search")
	sortBy := c.DefaultQuery("sortBy", "name")
	sortOrder := c.DefaultQuery("sortOrder", "asc")

	stores, err := h.storeService.List(viewerID, search, sortBy, sortOrder)
	if err != nil {
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, stores)
}

// Create adds a store, optionally bound to a STORE_OWNER.
// POST /api/stores
func (h *StoreHandler) Create(c *gin.Context) {
	var req dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	store, err := h.storeService.Create(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStoreEmailInUse):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Store with this email already exists"})
		case errors.Is(err, service.ErrInvalidOwner):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid store owner"})
		case errors.Is(err, service.ErrOwnerHasStore):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Store owner already has a store"})
		default:
			internalError(c, h.logger, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Store created successfully",
		"store":   store,
	})
}
