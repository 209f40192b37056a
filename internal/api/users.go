package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/somshrestha/inflo-tech-test/internal/users"
	"github.com/somshrestha/inflo-tech-test/internal/validation"
	"github.com/somshrestha/inflo-tech-test/internal/viewmodels"
)

// UserHandlers contains HTTP handlers for user operations
type UserHandlers struct {
	service   users.UserService
	validator validation.UserValidator
	mapper    viewmodels.Mapper
	logger    *zap.Logger
}

// NewUserHandlers creates a new user handlers instance
func NewUserHandlers(service users.UserService, validator validation.UserValidator, mapper viewmodels.Mapper, logger *zap.Logger) *UserHandlers {
	return &UserHandlers{
		service:   service,
		validator: validator,
		mapper:    mapper,
		logger:    logger,
	}
}

// RegisterRoutes registers user routes with the gin router
func (h *UserHandlers) RegisterRoutes(router *gin.RouterGroup) {
	usersGroup := router.Group("/users")
	{
		usersGroup.GET("", h.ListUsers)
		usersGroup.GET("/filter", h.FilterUsers)
		usersGroup.GET("/:id", h.GetUser)
		usersGroup.POST("", h.CreateUser)
		usersGroup.PUT("/:id", h.UpdateUser)
		usersGroup.DELETE("/:id", h.DeleteUser)
	}
}

// ListUsers handles GET /api/users
func (h *UserHandlers) ListUsers(c *gin.Context) {
	all, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, all)
}

// FilterUsers handles GET /api/users/filter?isActive=
func (h *UserHandlers) FilterUsers(c *gin.Context) {
	value, present, err := queryOptionalBool(c, "isActive")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var isActive *bool
	if present {
		isActive = &value
	}

	filtered, err := h.service.FilterByActive(c.Request.Context(), isActive)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, filtered)
}

// GetUser handles GET /api/users/:id
func (h *UserHandlers) GetUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /api/users
func (h *UserHandlers) CreateUser(c *gin.Context) {
	vm, err := h.bindUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	user := h.mapper.ToUser(vm)
	if err := h.service.Create(c.Request.Context(), user); err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%d", c.FullPath(), user.ID))
	c.JSON(http.StatusCreated, user)
}

// UpdateUser handles PUT /api/users/:id
func (h *UserHandlers) UpdateUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	vm, err := h.bindUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if vm.ID != id {
		_ = c.Error(badRequest("User ID in the body does not match the route."))
		return
	}

	if err := h.service.Update(c.Request.Context(), h.mapper.ToUser(vm)); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/users/:id
func (h *UserHandlers) DeleteUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), user); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandlers) bindUser(c *gin.Context) (viewmodels.UserViewModel, error) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid user payload", zap.Error(err))
		return viewmodels.UserViewModel{}, badRequest("Invalid request body.")
	}

	vm, err := req.toViewModel()
	if err != nil {
		return vm, err
	}
	if err := h.validator.Validate(&vm); err != nil {
		return vm, err
	}
	return vm, nil
}
