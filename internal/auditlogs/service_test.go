package auditlogs_test

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks AuditLogStore,AuditLogService

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/somshrestha/inflo-tech-test/internal/apperrors"
	"github.com/somshrestha/inflo-tech-test/internal/auditlogs"
	"github.com/somshrestha/inflo-tech-test/internal/auditlogs/mocks"
	"github.com/somshrestha/inflo-tech-test/internal/data"
)

type AuditLogServiceSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	mockStore *mocks.MockAuditLogStore
	service   *auditlogs.Service
}

func TestAuditLogServiceSuite(t *testing.T) {
	suite.Run(t, new(AuditLogServiceSuite))
}

func (s *AuditLogServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = mocks.NewMockAuditLogStore(s.ctrl)
	s.service = auditlogs.NewService(s.mockStore, auditlogs.PageOptions{}, zap.NewNop(), nil)
}

func (s *AuditLogServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuditLogServiceSuite) TestListTranslatesPageToWindow() {
	s.mockStore.EXPECT().
		ListAuditLogs(gomock.Any(), data.AuditLogQuery{
			Search:         " Loew ",
			ActionType:     data.ActionUpdate,
			SortDescending: true,
			Offset:         20,
			Limit:          10,
		}).
		Return([]data.AuditLog{{ID: 3}}, 21, nil)

	result, err := s.service.List(s.ctx, auditlogs.ListAuditLogsRequest{
		Page:           3,
		PageSize:       10,
		Search:         " Loew ",
		ActionType:     data.ActionUpdate,
		SortDescending: true,
	})

	s.Require().NoError(err)
	s.Equal(21, result.Total)
	s.Len(result.Logs, 1)
	s.Equal(3, result.Page)
}

func (s *AuditLogServiceSuite) TestListNormalizesPaging() {
	tests := []struct {
		name       string
		page, size int
		wantOffset int
		wantLimit  int
	}{
		{name: "page below one", page: 0, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "size below one uses default", page: 2, size: 0, wantOffset: 10, wantLimit: 10},
		{name: "size above max is capped", page: 1, size: 5000, wantOffset: 0, wantLimit: 100},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockStore.EXPECT().
				ListAuditLogs(gomock.Any(), data.AuditLogQuery{Offset: tt.wantOffset, Limit: tt.wantLimit}).
				Return(nil, 0, nil)

			_, err := s.service.List(s.ctx, auditlogs.ListAuditLogsRequest{Page: tt.page, PageSize: tt.size})
			s.NoError(err)
		})
	}
}

func (s *AuditLogServiceSuite) TestListIgnoresWhitespaceOnlySearch() {
	s.mockStore.EXPECT().
		ListAuditLogs(gomock.Any(), data.AuditLogQuery{Offset: 0, Limit: 10}).
		Return(nil, 0, nil)

	_, err := s.service.List(s.ctx, auditlogs.ListAuditLogsRequest{Page: 1, PageSize: 10, Search: "   "})

	s.NoError(err)
}

func (s *AuditLogServiceSuite) TestListHugePageKeepsOffsetPositive() {
	s.mockStore.EXPECT().
		ListAuditLogs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query data.AuditLogQuery) ([]data.AuditLog, int, error) {
			s.Positive(query.Offset)
			s.Equal(10, query.Limit)
			return nil, 3, nil
		})

	result, err := s.service.List(s.ctx, auditlogs.ListAuditLogsRequest{Page: math.MaxInt, PageSize: 10})

	s.Require().NoError(err)
	s.Equal(3, result.Total)
	s.Empty(result.Logs)
}

func (s *AuditLogServiceSuite) TestListPropagatesStoreError() {
	storeErr := errors.New("timeout")
	s.mockStore.EXPECT().ListAuditLogs(gomock.Any(), gomock.Any()).Return(nil, 0, storeErr)

	_, err := s.service.List(s.ctx, auditlogs.ListAuditLogsRequest{Page: 1, PageSize: 10})

	s.ErrorIs(err, storeErr)
}

func (s *AuditLogServiceSuite) TestGetByIDNotFound() {
	s.mockStore.EXPECT().GetAuditLogByID(gomock.Any(), int64(5)).Return(nil, apperrors.NewNotFoundError("Audit log", 5))

	_, err := s.service.GetByID(s.ctx, 5)

	s.True(apperrors.IsNotFound(err))
}

// seedAuditTrail creates n users through a data context so the interceptor
// writes n Create rows, then updates and deletes one fixture user each.
func seedAuditTrail(t *testing.T, n int) *data.DataContextImpl {
	t.Helper()
	ctx := context.Background()

	base := time.Date(2025, time.May, 1, 8, 0, 0, 0, time.UTC)
	tick := 0
	clock := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	dc := data.NewDataContext(data.NewSeededMemoryStore(), zap.NewNop(), data.NewAuditInterceptor(data.WithClock(clock)))
	for i := 1; i <= n; i++ {
		user := &data.User{Forename: fmt.Sprintf("User%02d", i), Surname: "Paged", Email: fmt.Sprintf("paged%02d@example.com", i)}
		require.NoError(t, dc.CreateUser(ctx, user))
	}

	peter, err := dc.GetUserByID(ctx, 1)
	require.NoError(t, err)
	peter.Email = "peter.loew@example.com"
	require.NoError(t, dc.UpdateUser(ctx, peter))
	require.NoError(t, dc.DeleteUser(ctx, &data.User{ID: 2}))

	return dc
}

func TestListLastPageSize(t *testing.T) {
	dc := seedAuditTrail(t, 23)
	service := auditlogs.NewService(dc, auditlogs.PageOptions{}, zap.NewNop(), nil)
	ctx := context.Background()

	// 23 creates + 1 update + 1 delete
	const total = 25

	for _, pageSize := range []int{5, 7, 10, 25} {
		lastPage := (total + pageSize - 1) / pageSize
		wantRows := total % pageSize
		if wantRows == 0 {
			wantRows = pageSize
		}

		for page := 1; page <= lastPage; page++ {
			result, err := service.List(ctx, auditlogs.ListAuditLogsRequest{Page: page, PageSize: pageSize, SortDescending: true})
			require.NoError(t, err)
			assert.Equal(t, total, result.Total, "page %d size %d", page, pageSize)
			if page == lastPage {
				assert.Len(t, result.Logs, wantRows, "last page size %d", pageSize)
			}
		}
	}
}

func TestListPagePastOverflowIsEmpty(t *testing.T) {
	dc := seedAuditTrail(t, 3)
	service := auditlogs.NewService(dc, auditlogs.PageOptions{}, zap.NewNop(), nil)

	for _, page := range []int{math.MaxInt/10 + 2, math.MaxInt} {
		result, err := service.List(context.Background(), auditlogs.ListAuditLogsRequest{Page: page, PageSize: 10, SortDescending: true})
		require.NoError(t, err)
		assert.Equal(t, 5, result.Total)
		assert.Empty(t, result.Logs, "page %d", page)
	}
}

func TestListFilters(t *testing.T) {
	dc := seedAuditTrail(t, 3)
	service := auditlogs.NewService(dc, auditlogs.PageOptions{}, zap.NewNop(), nil)
	ctx := context.Background()

	creates, err := service.List(ctx, auditlogs.ListAuditLogsRequest{Page: 1, PageSize: 10, ActionType: data.ActionCreate, SortDescending: true})
	require.NoError(t, err)
	assert.Equal(t, 3, creates.Total)
	for _, log := range creates.Logs {
		assert.Equal(t, data.ActionCreate, log.ActionType)
	}

	updates, err := service.List(ctx, auditlogs.ListAuditLogsRequest{Page: 1, PageSize: 10, Search: "Email changed from", SortDescending: true})
	require.NoError(t, err)
	require.Equal(t, 1, updates.Total)
	assert.Equal(t,
		"User Peter Loew updated: Email changed from 'ploew@example.com' to 'peter.loew@example.com'",
		updates.Logs[0].Details)

	deletes, err := service.List(ctx, auditlogs.ListAuditLogsRequest{Page: 1, PageSize: 10, ActionType: data.ActionDelete, Search: "Gates", SortDescending: true})
	require.NoError(t, err)
	require.Equal(t, 1, deletes.Total)
	assert.Equal(t, int64(2), deletes.Logs[0].UserID)
}

func TestListOrdering(t *testing.T) {
	dc := seedAuditTrail(t, 3)
	service := auditlogs.NewService(dc, auditlogs.PageOptions{}, zap.NewNop(), nil)
	ctx := context.Background()

	desc, err := service.List(ctx, auditlogs.ListAuditLogsRequest{Page: 1, PageSize: 10, SortDescending: true})
	require.NoError(t, err)
	asc, err := service.List(ctx, auditlogs.ListAuditLogsRequest{Page: 1, PageSize: 10, SortDescending: false})
	require.NoError(t, err)

	require.Len(t, desc.Logs, 5)
	require.Len(t, asc.Logs, 5)
	assert.Equal(t, data.ActionDelete, desc.Logs[0].ActionType)
	assert.Equal(t, data.ActionCreate, asc.Logs[0].ActionType)
	for i := range desc.Logs {
		assert.Equal(t, desc.Logs[i].ID, asc.Logs[len(asc.Logs)-1-i].ID)
	}
}
