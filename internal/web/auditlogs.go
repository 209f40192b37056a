package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/somshrestha/inflo-tech-test/internal/auditlogs"
	"github.com/somshrestha/inflo-tech-test/internal/viewmodels"
)

// ListAuditLogs renders GET /auditlogs. Unparseable paging values fall back
// to their defaults.
func (h *Handler) ListAuditLogs(c *gin.Context) {
	req := auditlogs.ListAuditLogsRequest{
		Page:           queryInt(c, "page", 1),
		PageSize:       queryInt(c, "pageSize", auditlogs.DefaultPageSize),
		Search:         c.Query("search"),
		ActionType:     c.Query("actionType"),
		SortDescending: queryBool(c, "sortDescending", true),
	}

	result, err := h.auditLogs.List(c.Request.Context(), req)
	if err != nil {
		h.renderServerError(c, err, msgListAuditLogsFailed)
		return
	}

	renderHTML(c, http.StatusOK, auditLogsPage(viewmodels.AuditLogListViewModel{
		Items:            h.mapper.ToAuditLogViewModels(result.Logs),
		CurrentPage:      result.Page,
		PageSize:         result.PageSize,
		TotalItems:       result.Total,
		SearchQuery:      req.Search,
		ActionTypeFilter: req.ActionType,
		SortDescending:   req.SortDescending,
	}))
}

// AuditLogDetails renders GET /auditlogs/:id
func (h *Handler) AuditLogDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	log, err := h.auditLogs.GetByID(c.Request.Context(), id)
	if err != nil {
		h.renderLookupError(c, err, msgGetAuditLogFailed)
		return
	}

	renderHTML(c, http.StatusOK, auditLogDetailsPage(h.mapper.ToAuditLogViewModel(*log)))
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}

func queryBool(c *gin.Context, key string, fallback bool) bool {
	v, err := strconv.ParseBool(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}
