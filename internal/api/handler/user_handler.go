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

type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

// RegisterRoutes registers user management routes. All of them are admin-only.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users", middleware.RequireRole(models.RoleAdmin))
	{
		users.GET("", h.List)
		users.POST("", h.Create)
		users.GET("/:id", h.Get)
	}
}

// List returns users filtered by search substring and role, sorted by a
// whitelisted key.
// GET /api/users?search=&role=&sortBy=&sortOrder=
func (h *UserHandler) List(c *gin.Context) {
	search := c.Query("search")
	role := c.Query("role")
	sortBy := c.DefaultQuery("sortBy", "name")
	sortOrder := c.DefaultQuery("sortOrder", "asc")

	users, err := h.userService.List(search, role, sortBy, sortOrder)
	if err != nil {
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// Create adds a user with an explicit role.
// POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	user, err := h.userService.Create(req)
	if err != nil {
		if errors.Is(err, service.ErrEmailInUse) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

// Get returns a single user with the derived rating for store owners.
// GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
