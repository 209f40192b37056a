package data

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/somshrestha/inflo-tech-test/internal/apperrors"
)

// MemoryStore is an in-process Store. A transaction works on a copy of the
// tables which replaces the live copy only when the transaction succeeds.
type MemoryStore struct {
	mu    sync.RWMutex
	state memoryState
}

type memoryState struct {
	users          map[int64]User
	auditLogs      []AuditLog
	nextUserID     int64
	nextAuditLogID int64
}

func (s memoryState) clone() memoryState {
	users := make(map[int64]User, len(s.users))
	for id, u := range s.users {
		users[id] = *u.Clone()
	}
	return memoryState{
		users:          users,
		auditLogs:      append([]AuditLog(nil), s.auditLogs...),
		nextUserID:     s.nextUserID,
		nextAuditLogID: s.nextAuditLogID,
	}
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		state: memoryState{
			users:          make(map[int64]User),
			nextUserID:     1,
			nextAuditLogID: 1,
		},
	}
}

// NewSeededMemoryStore creates an in-memory store holding the fixture users
func NewSeededMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	s.Seed(SeedUsers()...)
	return s
}

// Seed inserts users with their ids as given, bypassing the audit trail
func (s *MemoryStore) Seed(users ...User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range users {
		s.state.users[u.ID] = *u.Clone()
		if u.ID >= s.state.nextUserID {
			s.state.nextUserID = u.ID + 1
		}
	}
}

// ListUsers returns every user ordered by id
func (s *MemoryStore) ListUsers(ctx context.Context) ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]User, 0, len(s.state.users))
	for _, u := range s.state.users {
		users = append(users, *u.Clone())
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// GetUser returns a copy of the user or a NotFound error
func (s *MemoryStore) GetUser(ctx context.Context, id int64) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.getUser(id)
}

func (s memoryState) getUser(id int64) (*User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("User", id)
	}
	return u.Clone(), nil
}

// GetAuditLog returns the audit row or a NotFound error
func (s *MemoryStore) GetAuditLog(ctx context.Context, id int64) (*AuditLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, log := range s.state.auditLogs {
		if log.ID == id {
			found := log
			return &found, nil
		}
	}
	return nil, apperrors.NewNotFoundError("Audit log", id)
}

// ListAuditLogs filters, orders and pages the audit trail
func (s *MemoryStore) ListAuditLogs(ctx context.Context, query AuditLogQuery) ([]AuditLog, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]AuditLog, 0, len(s.state.auditLogs))
	for _, log := range s.state.auditLogs {
		if query.ActionType != "" && log.ActionType != query.ActionType {
			continue
		}
		if query.Search != "" && !strings.Contains(log.Details, query.Search) {
			continue
		}
		matched = append(matched, log)
	}
	sortAuditLogs(matched, query.SortDescending)

	total := len(matched)
	start := min(max(query.Offset, 0), total)
	end := total
	if query.Limit > 0 {
		end = min(start+query.Limit, total)
	}
	return matched[start:end], total, nil
}

// ListAuditLogsByUser returns the user's audit rows, newest first
func (s *MemoryStore) ListAuditLogsByUser(ctx context.Context, userID int64) ([]AuditLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := make([]AuditLog, 0)
	for _, log := range s.state.auditLogs {
		if log.UserID == userID {
			logs = append(logs, log)
		}
	}
	sortAuditLogs(logs, true)
	return logs, nil
}

func sortAuditLogs(logs []AuditLog, descending bool) {
	sort.SliceStable(logs, func(i, j int) bool {
		a, b := logs[i], logs[j]
		if descending {
			a, b = b, a
		}
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.Before(b.Timestamp)
		}
		return a.ID < b.ID
	})
}

// RunInTx implements Store
func (s *MemoryStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx StoreTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryTx{state: s.state.clone()}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageCommitError("commit", "memory", err)
	}

	s.state = tx.state
	return nil
}

// PingContext implements Store; the memory store is always reachable
func (s *MemoryStore) PingContext(ctx context.Context) error {
	return nil
}

// Close implements Store
func (s *MemoryStore) Close() error {
	return nil
}

type memoryTx struct {
	state memoryState
}

func (tx *memoryTx) GetUser(ctx context.Context, id int64) (*User, error) {
	return tx.state.getUser(id)
}

func (tx *memoryTx) InsertUser(ctx context.Context, user *User) error {
	user.ID = tx.state.nextUserID
	tx.state.nextUserID++
	tx.state.users[user.ID] = *user.Clone()
	return nil
}

func (tx *memoryTx) UpdateUser(ctx context.Context, user *User) error {
	if _, ok := tx.state.users[user.ID]; !ok {
		return apperrors.NewNotFoundError("User", user.ID)
	}
	tx.state.users[user.ID] = *user.Clone()
	return nil
}

func (tx *memoryTx) DeleteUser(ctx context.Context, id int64) error {
	if _, ok := tx.state.users[id]; !ok {
		return apperrors.NewNotFoundError("User", id)
	}
	delete(tx.state.users, id)
	return nil
}

func (tx *memoryTx) InsertAuditLogs(ctx context.Context, logs []*AuditLog) error {
	for _, log := range logs {
		log.ID = tx.state.nextAuditLogID
		tx.state.nextAuditLogID++
		tx.state.auditLogs = append(tx.state.auditLogs, *log)
	}
	return nil
}
