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

type RatingHandler struct {
	ratingService service.RatingService
	storeService  service.StoreService
	logger        *slog.Logger
}

func NewRatingHandler(ratingService service.RatingService, storeService service.StoreService, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
		storeService:  storeService,
		logger:        logger,
	}
}

// RegisterRoutes registers rating routes. Submitting is USER-only; the store
// dashboard is STORE_OWNER-only.
func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ratings := rg.Group("/ratings")
	{
		ratings.POST("", middleware.RequireRole(models.RoleUser), h.Submit)
		ratings.GET("/my-store", middleware.RequireRole(models.RoleStoreOwner), h.MyStore)
	}
}

// Submit creates or replaces the caller's rating for a store.
// POST /api/ratings
func (h *RatingHandler) Submit(c *gin.Context) {
	var req dto.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	rating, err := h.ratingService.Submit(userID, req.StoreID, req.Rating)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Store not found"})
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Rating submitted successfully",
		"rating":  rating,
	})
}

// MyStore returns the caller's store with all its ratings and the aggregate.
// GET /api/ratings/my-store
func (h *RatingHandler) MyStore(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	dashboard, err := h.storeService.OwnerDashboard(userID)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No store found for this owner"})
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
