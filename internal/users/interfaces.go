package users

import (
	"context"

	"github.com/somshrestha/inflo-tech-test/internal/data"
)

// UserStore defines the persistence operations the user service needs.
// data.DataContext satisfies it.
type UserStore interface {
	GetAllUsers(ctx context.Context) ([]data.User, error)
	GetUserByID(ctx context.Context, id int64) (*data.User, error)
	CreateUser(ctx context.Context, user *data.User) error
	UpdateUser(ctx context.Context, user *data.User) error
	DeleteUser(ctx context.Context, user *data.User) error
	ListUserAuditLogs(ctx context.Context, userID int64) ([]data.AuditLog, error)
}

// UserService defines the interface for user service operations
type UserService interface {
	FilterByActive(ctx context.Context, isActive *bool) ([]data.User, error)
	GetAll(ctx context.Context) ([]data.User, error)
	GetByID(ctx context.Context, id int64) (*data.User, error)
	Create(ctx context.Context, user *data.User) error
	Update(ctx context.Context, user *data.User) error
	Delete(ctx context.Context, user *data.User) error
	GetUserAuditLogs(ctx context.Context, userID int64) ([]data.AuditLog, error)
}
