package auditlogs

import (
	"context"

	"github.com/somshrestha/inflo-tech-test/internal/data"
)

// AuditLogStore defines the audit trail queries the service needs.
// data.DataContext satisfies it.
type AuditLogStore interface {
	GetAuditLogByID(ctx context.Context, id int64) (*data.AuditLog, error)
	ListAuditLogs(ctx context.Context, query data.AuditLogQuery) ([]data.AuditLog, int, error)
}

// AuditLogService defines the interface for audit trail queries
type AuditLogService interface {
	List(ctx context.Context, req ListAuditLogsRequest) (*ListAuditLogsResult, error)
	GetByID(ctx context.Context, id int64) (*data.AuditLog, error)
}
