package data

import (
	"context"
)

// Reader defines the read-only queries against the users and audit_logs tables
type Reader interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	GetAuditLog(ctx context.Context, id int64) (*AuditLog, error)
	ListAuditLogs(ctx context.Context, query AuditLogQuery) ([]AuditLog, int, error)
	ListAuditLogsByUser(ctx context.Context, userID int64) ([]AuditLog, error)
}

// StoreTx defines the writes available inside one store transaction
type StoreTx interface {
	GetUser(ctx context.Context, id int64) (*User, error)
	InsertUser(ctx context.Context, user *User) error
	UpdateUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, id int64) error
	InsertAuditLogs(ctx context.Context, logs []*AuditLog) error
}

// Store defines the persistence backend behind a DataContext.
// RunInTx commits when fn returns nil and rolls back otherwise; fn must only
// use the StoreTx it is given.
type Store interface {
	Reader
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx StoreTx) error) error
	PingContext(ctx context.Context) error
	Close() error
}

// SaveChangesInterceptor observes a unit of work after its user writes and
// before its commit. Returning an error aborts the whole unit of work.
type SaveChangesInterceptor interface {
	SavingChanges(ctx context.Context, tracker *ChangeTracker) error
}

// DataContext defines the persistence gateway used by the services
type DataContext interface {
	GetAllUsers(ctx context.Context) ([]User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
	CreateUser(ctx context.Context, user *User) error
	UpdateUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, user *User) error

	GetAuditLogByID(ctx context.Context, id int64) (*AuditLog, error)
	ListAuditLogs(ctx context.Context, query AuditLogQuery) ([]AuditLog, int, error)
	ListUserAuditLogs(ctx context.Context, userID int64) ([]AuditLog, error)

	SaveChanges(ctx context.Context, tracker *ChangeTracker) error
}
