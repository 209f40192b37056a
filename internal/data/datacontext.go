package data

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// DataContextImpl implements the DataContext interface on top of a Store
type DataContextImpl struct {
	store        Store
	interceptors []SaveChangesInterceptor
	logger       *zap.Logger
}

// NewDataContext creates a data context. Interceptors run in the order given.
func NewDataContext(store Store, logger *zap.Logger, interceptors ...SaveChangesInterceptor) *DataContextImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataContextImpl{
		store:        store,
		interceptors: interceptors,
		logger:       logger,
	}
}

// GetAllUsers returns every user ordered by id
func (d *DataContextImpl) GetAllUsers(ctx context.Context) ([]User, error) {
	return d.store.ListUsers(ctx)
}

// GetUserByID returns the user or a NotFound error
func (d *DataContextImpl) GetUserByID(ctx context.Context, id int64) (*User, error) {
	return d.store.GetUser(ctx, id)
}

// CreateUser inserts the user and its Create audit row in one unit of work.
// The assigned id is written back to user.ID.
func (d *DataContextImpl) CreateUser(ctx context.Context, user *User) error {
	tracker := NewChangeTracker()
	tracker.Add(user)
	return d.SaveChanges(ctx, tracker)
}

// UpdateUser replaces the stored fields of user.ID and records the diff
func (d *DataContextImpl) UpdateUser(ctx context.Context, user *User) error {
	tracker := NewChangeTracker()
	tracker.Update(user)
	return d.SaveChanges(ctx, tracker)
}

// DeleteUser removes user.ID and records a Delete audit row
func (d *DataContextImpl) DeleteUser(ctx context.Context, user *User) error {
	tracker := NewChangeTracker()
	tracker.Remove(user)
	return d.SaveChanges(ctx, tracker)
}

// GetAuditLogByID returns the audit row or a NotFound error
func (d *DataContextImpl) GetAuditLogByID(ctx context.Context, id int64) (*AuditLog, error) {
	return d.store.GetAuditLog(ctx, id)
}

// ListAuditLogs returns one page of the filtered audit trail and the filtered total
func (d *DataContextImpl) ListAuditLogs(ctx context.Context, query AuditLogQuery) ([]AuditLog, int, error) {
	return d.store.ListAuditLogs(ctx, query)
}

// ListUserAuditLogs returns a user's audit rows, newest first
func (d *DataContextImpl) ListUserAuditLogs(ctx context.Context, userID int64) ([]AuditLog, error) {
	return d.store.ListAuditLogsByUser(ctx, userID)
}

// SaveChanges persists every tracked change plus the audit rows produced by
// the interceptors in a single transaction.
func (d *DataContextImpl) SaveChanges(ctx context.Context, tracker *ChangeTracker) error {
	if !tracker.HasChanges() {
		return nil
	}

	cp := tracker.checkpoint()
	err := d.store.RunInTx(ctx, func(ctx context.Context, tx StoreTx) error {
		// Snapshot stored rows before they are overwritten
		for _, entry := range tracker.Entries() {
			if entry.State != StateModified && entry.State != StateDeleted {
				continue
			}
			if entry.Original != nil {
				continue
			}
			original, err := tx.GetUser(ctx, entry.Current.ID)
			if err != nil {
				return err
			}
			entry.Original = original
		}

		for _, entry := range tracker.Entries() {
			var err error
			switch entry.State {
			case StateAdded:
				err = tx.InsertUser(ctx, entry.Current)
			case StateModified:
				err = tx.UpdateUser(ctx, entry.Current)
			case StateDeleted:
				err = tx.DeleteUser(ctx, entry.Current.ID)
			}
			if err != nil {
				return err
			}
		}

		for _, interceptor := range d.interceptors {
			if err := interceptor.SavingChanges(ctx, tracker); err != nil {
				return fmt.Errorf("save changes interceptor failed: %w", err)
			}
		}

		if logs := tracker.PendingAuditLogs(); len(logs) > 0 {
			if err := tx.InsertAuditLogs(ctx, logs); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		tracker.restore(cp)
		d.logger.Debug("unit of work rolled back",
			zap.Int("entries", len(tracker.Entries())),
			zap.Error(err))
		return err
	}

	d.logger.Debug("unit of work committed",
		zap.Int("entries", len(tracker.Entries())),
		zap.Int("audit_logs", len(tracker.PendingAuditLogs())))

	tracker.AcceptChanges()
	return nil
}
