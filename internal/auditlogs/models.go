package auditlogs

import (
	"github.com/somshrestha/inflo-tech-test/internal/data"
)

// Paging defaults used when no configuration is supplied
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListAuditLogsRequest selects one page of the audit trail
type ListAuditLogsRequest struct {
	Page           int
	PageSize       int
	Search         string
	ActionType     string
	SortDescending bool
}

// ListAuditLogsResult is one page of the audit trail. Total counts every
// matching row, not just this page.
type ListAuditLogsResult struct {
	Logs     []data.AuditLog `json:"logs"`
	Total    int             `json:"total"`
	Page     int             `json:"-"`
	PageSize int             `json:"-"`
}

// PageOptions bounds the requested page size
type PageOptions struct {
	DefaultPageSize int
	MaxPageSize     int
}
