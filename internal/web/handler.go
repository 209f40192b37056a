package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	gomponents "maragu.dev/gomponents"

	"github.com/somshrestha/inflo-tech-test/internal/apperrors"
	"github.com/somshrestha/inflo-tech-test/internal/auditlogs"
	"github.com/somshrestha/inflo-tech-test/internal/users"
	"github.com/somshrestha/inflo-tech-test/internal/validation"
	"github.com/somshrestha/inflo-tech-test/internal/viewmodels"
)

// Messages shown when a page cannot be served
const (
	msgListUsersFailed     = "An error occurred while retrieving the user list."
	msgGetUserFailed       = "An error occurred while retrieving the user."
	msgCreateUserFailed    = "An error occurred while creating the user."
	msgUpdateUserFailed    = "An error occurred while updating the user. Please try again."
	msgDeleteUserFailed    = "An error occurred while deleting the user."
	msgListAuditLogsFailed = "An error occurred while retrieving audit logs."
	msgGetAuditLogFailed   = "An error occurred while retrieving the audit log."
)

// Handler serves the server-rendered pages
type Handler struct {
	users      users.UserService
	auditLogs  auditlogs.AuditLogService
	validator  validation.UserValidator
	mapper     viewmodels.Mapper
	logger     *zap.Logger
	production bool
}

// NewHandler creates the page handlers. production marks the CSRF cookie Secure.
func NewHandler(
	userService users.UserService,
	auditLogService auditlogs.AuditLogService,
	validator validation.UserValidator,
	mapper viewmodels.Mapper,
	logger *zap.Logger,
	production bool,
) *Handler {
	return &Handler{
		users:      userService,
		auditLogs:  auditLogService,
		validator:  validator,
		mapper:     mapper,
		logger:     logger,
		production: production,
	}
}

// RegisterRoutes registers the page routes. Every route on router gets the
// CSRF middleware.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.Use(h.EnsureCSRFToken(), h.RequireCSRF())

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/users")
	})

	usersGroup := router.Group("/users")
	{
		usersGroup.GET("", h.ListUsers)
		usersGroup.GET("/add", h.AddUserForm)
		usersGroup.POST("/add", h.AddUser)
		usersGroup.GET("/:id", h.ViewUser)
		usersGroup.GET("/edit/:id", h.EditUserForm)
		usersGroup.POST("/edit/:id", h.EditUser)
		usersGroup.GET("/delete/:id", h.DeleteUserConfirm)
		usersGroup.POST("/delete/:id", h.DeleteUser)
	}

	logs := router.Group("/auditlogs")
	{
		logs.GET("", h.ListAuditLogs)
		logs.GET("/:id", h.AuditLogDetails)
	}
}

func renderHTML(c *gin.Context, status int, node gomponents.Node) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := node.Render(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

func (h *Handler) renderServerError(c *gin.Context, err error, message string) {
	h.logger.Error("Page request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	renderHTML(c, http.StatusInternalServerError, errorPage("Error", message))
}

// renderLookupError answers 404 for NotFound and 500 with message otherwise
func (h *Handler) renderLookupError(c *gin.Context, err error, message string) {
	if apperrors.IsNotFound(err) {
		renderHTML(c, http.StatusNotFound, errorPage("Not Found", notFoundMessage(err)))
		return
	}
	h.renderServerError(c, err, message)
}

func notFoundMessage(err error) string {
	var nf *apperrors.NotFoundError
	if errors.As(err, &nf) {
		return nf.Message
	}
	return "The requested item could not be found."
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		renderHTML(c, http.StatusBadRequest, errorPage("Bad Request", "The value '"+c.Param("id")+"' is not a valid id."))
		return 0, false
	}
	return id, true
}
