package handler

import (
	"log/slog"
	"net/http"

	"storehub/internal/api/middleware"
	"storehub/internal/api/models"
	"storehub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *slog.Logger
}

func NewDashboardHandler(dashboardService service.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, logger: logger}
}

func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/admin", middleware.RequireRole(models.RoleAdmin), h.AdminSummary)
	}
}

// AdminSummary returns platform-wide totals.
// GET /api/dashboard/admin
func (h *DashboardHandler) AdminSummary(c *gin.Context) {
	summary, err := h.dashboardService.AdminSummary()
	if err != nil {
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
