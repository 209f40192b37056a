package users

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/somshrestha/inflo-tech-test/internal/data"
	"github.com/somshrestha/inflo-tech-test/internal/metrics"
)

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	store   UserStore
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewUserService creates a new user service instance. m may be nil.
func NewUserService(store UserStore, logger *zap.Logger, m *metrics.Metrics) *UserServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserServiceImpl{
		store:   store,
		logger:  logger,
		metrics: m,
	}
}

// FilterByActive returns every user when isActive is nil, otherwise the users
// whose IsActive matches
func (s *UserServiceImpl) FilterByActive(ctx context.Context, isActive *bool) ([]data.User, error) {
	all, err := s.store.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	if isActive == nil {
		return all, nil
	}

	filtered := make([]data.User, 0, len(all))
	for _, u := range all {
		if u.IsActive == *isActive {
			filtered = append(filtered, u)
		}
	}
	return filtered, nil
}

// GetAll returns every user
func (s *UserServiceImpl) GetAll(ctx context.Context) ([]data.User, error) {
	return s.FilterByActive(ctx, nil)
}

// GetByID returns the user or a NotFound error
func (s *UserServiceImpl) GetByID(ctx context.Context, id int64) (*data.User, error) {
	return s.store.GetUserByID(ctx, id)
}

// Create persists a new user; user.ID is set on success
func (s *UserServiceImpl) Create(ctx context.Context, user *data.User) error {
	if user == nil {
		return fmt.Errorf("user is required")
	}

	user.ID = 0
	if err := s.store.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncrementUserMutation(data.ActionCreate)
	s.logger.Info("User created", zap.Int64("user_id", user.ID))
	return nil
}

// Update loads the stored user, copies the mutable fields of user onto it
// and persists the result
func (s *UserServiceImpl) Update(ctx context.Context, user *data.User) error {
	if user == nil {
		return fmt.Errorf("user is required")
	}

	stored, err := s.store.GetUserByID(ctx, user.ID)
	if err != nil {
		return err
	}

	stored.Forename = user.Forename
	stored.Surname = user.Surname
	stored.Email = user.Email
	stored.IsActive = user.IsActive
	stored.DateOfBirth = user.DateOfBirth

	if err := s.store.UpdateUser(ctx, stored); err != nil {
		return fmt.Errorf("failed to update user %d: %w", user.ID, err)
	}

	s.metrics.IncrementUserMutation(data.ActionUpdate)
	s.logger.Info("User updated", zap.Int64("user_id", user.ID))
	return nil
}

// Delete removes the user
func (s *UserServiceImpl) Delete(ctx context.Context, user *data.User) error {
	if user == nil {
		return fmt.Errorf("user is required")
	}

	if err := s.store.DeleteUser(ctx, user); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", user.ID, err)
	}

	s.metrics.IncrementUserMutation(data.ActionDelete)
	s.logger.Info("User deleted", zap.Int64("user_id", user.ID))
	return nil
}

// GetUserAuditLogs returns every audit row for the user, newest first
func (s *UserServiceImpl) GetUserAuditLogs(ctx context.Context, userID int64) ([]data.AuditLog, error) {
	logs, err := s.store.ListUserAuditLogs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs for user %d: %w", userID, err)
	}
	return logs, nil
}
