package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somshrestha/inflo-tech-test/internal/auditlogs"
)

// AuditLogHandlers contains HTTP handlers for the audit trail
type AuditLogHandlers struct {
	service auditlogs.AuditLogService
}

// NewAuditLogHandlers creates a new audit log handlers instance
func NewAuditLogHandlers(service auditlogs.AuditLogService) *AuditLogHandlers {
	return &AuditLogHandlers{service: service}
}

// RegisterRoutes registers audit log routes with the gin router
func (h *AuditLogHandlers) RegisterRoutes(router *gin.RouterGroup) {
	logs := router.Group("/auditlogs")
	{
		logs.GET("", h.ListAuditLogs)
		logs.GET("/:id", h.GetAuditLog)
	}
}

// ListAuditLogs handles GET /api/auditlogs
func (h *AuditLogHandlers) ListAuditLogs(c *gin.Context) {
	req, err := listRequestFromQuery(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetAuditLog handles GET /api/auditlogs/:id
func (h *AuditLogHandlers) GetAuditLog(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	log, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, log)
}

// listRequestFromQuery reads page, pageSize, search, actionType and
// sortDescending with the defaults of the audit log list.
func listRequestFromQuery(c *gin.Context) (auditlogs.ListAuditLogsRequest, error) {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return auditlogs.ListAuditLogsRequest{}, err
	}
	pageSize, err := queryInt(c, "pageSize", auditlogs.DefaultPageSize)
	if err != nil {
		return auditlogs.ListAuditLogsRequest{}, err
	}
	sortDescending, err := queryBool(c, "sortDescending", true)
	if err != nil {
		return auditlogs.ListAuditLogsRequest{}, err
	}

	return auditlogs.ListAuditLogsRequest{
		Page:           page,
		PageSize:       pageSize,
		Search:         c.Query("search"),
		ActionType:     c.Query("actionType"),
		SortDescending: sortDescending,
	}, nil
}
