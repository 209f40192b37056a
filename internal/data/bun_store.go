package data

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/uptrace/bun"

	"github.com/somshrestha/inflo-tech-test/internal/apperrors"
)

// BunStore implements Store on PostgreSQL or SQLite through bun
type BunStore struct {
	db *bun.DB
}

// NewBunStore creates a new bun-backed store
func NewBunStore(db *bun.DB) *BunStore {
	return &BunStore{
		db: db,
	}
}

// DB exposes the underlying connection for migrations and health checks
func (s *BunStore) DB() *bun.DB {
	return s.db
}

// ListUsers returns every user ordered by id
func (s *BunStore) ListUsers(ctx context.Context) ([]User, error) {
	var schemas []UserSchema
	err := s.db.NewSelect().
		Model(&schemas).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, apperrors.NewStorageQueryError("list", "users", err)
	}

	users := make([]User, 0, len(schemas))
	for _, schema := range schemas {
		users = append(users, *UserSchemaToUser(schema))
	}
	return users, nil
}

// GetUser returns the user or a NotFound error
func (s *BunStore) GetUser(ctx context.Context, id int64) (*User, error) {
	return getUser(ctx, s.db, id)
}

func getUser(ctx context.Context, db bun.IDB, id int64) (*User, error) {
	var schema UserSchema
	err := db.NewSelect().
		Model(&schema).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("User", id)
		}
		return nil, apperrors.NewStorageQueryError("get", "users", err)
	}

	return UserSchemaToUser(schema), nil
}

// GetAuditLog returns the audit row or a NotFound error
func (s *BunStore) GetAuditLog(ctx context.Context, id int64) (*AuditLog, error) {
	var schema AuditLogSchema
	err := s.db.NewSelect().
		Model(&schema).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("Audit log", id)
		}
		return nil, apperrors.NewStorageQueryError("get", "audit_logs", err)
	}

	log := AuditLogSchemaToAuditLog(schema)
	return &log, nil
}

// ListAuditLogs filters, orders and pages the audit trail
func (s *BunStore) ListAuditLogs(ctx context.Context, query AuditLogQuery) ([]AuditLog, int, error) {
	var schemas []AuditLogSchema
	q := s.db.NewSelect().Model(&schemas)

	if query.ActionType != "" {
		q = q.Where("action_type = ?", query.ActionType)
	}
	if query.Search != "" {
		q = q.Where(`details LIKE ? ESCAPE '\'`, "%"+escapeLike(query.Search)+"%")
	}

	q = orderAuditLogs(q, query.SortDescending)

	if query.Offset > 0 {
		q = q.Offset(query.Offset)
	}
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, apperrors.NewStorageQueryError("list", "audit_logs", err)
	}

	return toAuditLogs(schemas), total, nil
}

// ListAuditLogsByUser returns the user's audit rows, newest first
func (s *BunStore) ListAuditLogsByUser(ctx context.Context, userID int64) ([]AuditLog, error) {
	var schemas []AuditLogSchema
	q := s.db.NewSelect().
		Model(&schemas).
		Where("user_id = ?", userID)

	if err := orderAuditLogs(q, true).Scan(ctx); err != nil {
		return nil, apperrors.NewStorageQueryError("list", "audit_logs", err)
	}

	return toAuditLogs(schemas), nil
}

func orderAuditLogs(q *bun.SelectQuery, descending bool) *bun.SelectQuery {
	if descending {
		return q.OrderExpr("? DESC, ? DESC", bun.Ident("timestamp"), bun.Ident("id"))
	}
	return q.OrderExpr("? ASC, ? ASC", bun.Ident("timestamp"), bun.Ident("id"))
}

func toAuditLogs(schemas []AuditLogSchema) []AuditLog {
	logs := make([]AuditLog, 0, len(schemas))
	for _, schema := range schemas {
		logs = append(logs, AuditLogSchemaToAuditLog(schema))
	}
	return logs
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// RunInTx implements Store
func (s *BunStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx StoreTx) error) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, &bunTx{tx: tx})
	})
}

// PingContext implements Store
func (s *BunStore) PingContext(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close implements Store
func (s *BunStore) Close() error {
	return s.db.Close()
}

type bunTx struct {
	tx bun.Tx
}

func (t *bunTx) GetUser(ctx context.Context, id int64) (*User, error) {
	return getUser(ctx, t.tx, id)
}

func (t *bunTx) InsertUser(ctx context.Context, user *User) error {
	schema := UserToUserSchema(user)
	schema.ID = 0

	_, err := t.tx.NewInsert().
		Model(&schema).
		Exec(ctx)
	if err != nil {
		return apperrors.NewStorageQueryError("insert", "users", err)
	}

	user.ID = schema.ID
	return nil
}

func (t *bunTx) UpdateUser(ctx context.Context, user *User) error {
	schema := UserToUserSchema(user)

	res, err := t.tx.NewUpdate().
		Model(&schema).
		WherePK().
		Exec(ctx)
	if err != nil {
		return apperrors.NewStorageQueryError("update", "users", err)
	}

	return requireAffected(res, user.ID)
}

func (t *bunTx) DeleteUser(ctx context.Context, id int64) error {
	res, err := t.tx.NewDelete().
		Model((*UserSchema)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return apperrors.NewStorageQueryError("delete", "users", err)
	}

	return requireAffected(res, id)
}

func (t *bunTx) InsertAuditLogs(ctx context.Context, logs []*AuditLog) error {
	schemas := make([]AuditLogSchema, 0, len(logs))
	for _, log := range logs {
		schema := AuditLogToAuditLogSchema(log)
		schema.ID = 0
		schemas = append(schemas, schema)
	}

	_, err := t.tx.NewInsert().
		Model(&schemas).
		Exec(ctx)
	if err != nil {
		return apperrors.NewStorageQueryError("insert", "audit_logs", err)
	}

	for i := range logs {
		logs[i].ID = schemas[i].ID
	}
	return nil
}

func requireAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.NewStorageQueryError("rows affected", "users", err)
	}
	if n == 0 {
		return apperrors.NewNotFoundError("User", id)
	}
	return nil
}
