package auditlogs

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/somshrestha/inflo-tech-test/internal/data"
	"github.com/somshrestha/inflo-tech-test/internal/metrics"
)

// Service implements the AuditLogService interface
type Service struct {
	store   AuditLogStore
	paging  PageOptions
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewService creates a new audit log service. Zero paging values fall back
// to DefaultPageSize and MaxPageSize; m may be nil.
func NewService(store AuditLogStore, paging PageOptions, logger *zap.Logger, m *metrics.Metrics) *Service {
	if paging.DefaultPageSize <= 0 {
		paging.DefaultPageSize = DefaultPageSize
	}
	if paging.MaxPageSize < paging.DefaultPageSize {
		paging.MaxPageSize = max(MaxPageSize, paging.DefaultPageSize)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		store:   store,
		paging:  paging,
		logger:  logger,
		metrics: m,
	}
}

// List returns the requested page of the filtered audit trail ordered by
// timestamp, with ties broken by id in the same direction
func (s *Service) List(ctx context.Context, req ListAuditLogsRequest) (*ListAuditLogsResult, error) {
	page, pageSize := s.normalize(req.Page, req.PageSize)

	query := data.AuditLogQuery{
		Search:         searchTerm(req.Search),
		ActionType:     strings.TrimSpace(req.ActionType),
		SortDescending: req.SortDescending,
		Offset:         (page - 1) * pageSize,
		Limit:          pageSize,
	}

	logs, total, err := s.store.ListAuditLogs(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}

	s.metrics.IncrementAuditLogQueries()
	s.logger.Debug("Listed audit logs",
		zap.Int("page", page),
		zap.Int("page_size", pageSize),
		zap.Int("total", total))

	return &ListAuditLogsResult{
		Logs:     logs,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByID returns the audit row or a NotFound error
func (s *Service) GetByID(ctx context.Context, id int64) (*data.AuditLog, error) {
	return s.store.GetAuditLogByID(ctx, id)
}

func (s *Service) normalize(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = s.paging.DefaultPageSize
	}
	if pageSize > s.paging.MaxPageSize {
		pageSize = s.paging.MaxPageSize
	}
	// keeps (page-1)*pageSize from overflowing; such a page is past any real trail
	if lastPage := math.MaxInt / pageSize; page > lastPage {
		page = lastPage
	}
	return page, pageSize
}

// searchTerm drops whitespace-only input but otherwise matches the raw text
func searchTerm(search string) string {
	if strings.TrimSpace(search) == "" {
		return ""
	}
	return search
}
