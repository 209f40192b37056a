package data

import (
	"time"

	"github.com/uptrace/bun"
)

// Audit action types
const (
	ActionCreate = "Create"
	ActionUpdate = "Update"
	ActionDelete = "Delete"
)

// User represents a person managed by the application
type User struct {
	ID          int64      `json:"id"`
	Forename    string     `json:"forename"`
	Surname     string     `json:"surname"`
	Email       string     `json:"email"`
	IsActive    bool       `json:"isActive"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
}

// Clone returns a deep copy so stored rows never alias caller values
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.DateOfBirth != nil {
		dob := *u.DateOfBirth
		c.DateOfBirth = &dob
	}
	return &c
}

// AuditLog is an append-only record describing one user mutation
type AuditLog struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	ActionType string    `json:"actionType"`
	Timestamp  time.Time `json:"timestamp"`
	Details    string    `json:"details,omitempty"`
}

// AuditLogQuery selects a window of the audit trail. Zero Limit means no limit.
type AuditLogQuery struct {
	Search         string
	ActionType     string
	SortDescending bool
	Offset         int
	Limit          int
}

// UserSchema represents the users table schema
type UserSchema struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID          int64      `bun:"id,pk,autoincrement"`
	Forename    string     `bun:"forename,notnull"`
	Surname     string     `bun:"surname,notnull"`
	Email       string     `bun:"email,notnull"`
	IsActive    bool       `bun:"is_active,notnull"`
	DateOfBirth *time.Time `bun:"date_of_birth"`
}

// AuditLogSchema represents the audit_logs table schema
type AuditLogSchema struct {
	bun.BaseModel `bun:"table:audit_logs,alias:al"`

	ID         int64     `bun:"id,pk,autoincrement"`
	UserID     int64     `bun:"user_id,notnull"`
	ActionType string    `bun:"action_type,notnull"`
	Timestamp  time.Time `bun:"timestamp,notnull"`
	Details    string    `bun:"details,nullzero"`
}

// Helper conversion functions
func UserSchemaToUser(schema UserSchema) *User {
	user := &User{
		ID:       schema.ID,
		Forename: schema.Forename,
		Surname:  schema.Surname,
		Email:    schema.Email,
		IsActive: schema.IsActive,
	}

	if schema.DateOfBirth != nil {
		dob := schema.DateOfBirth.UTC()
		user.DateOfBirth = &dob
	}

	return user
}

func UserToUserSchema(user *User) UserSchema {
	var dob *time.Time
	if user.DateOfBirth != nil {
		d := user.DateOfBirth.UTC()
		dob = &d
	}

	return UserSchema{
		ID:          user.ID,
		Forename:    user.Forename,
		Surname:     user.Surname,
		Email:       user.Email,
		IsActive:    user.IsActive,
		DateOfBirth: dob,
	}
}

func AuditLogSchemaToAuditLog(schema AuditLogSchema) AuditLog {
	return AuditLog{
		ID:         schema.ID,
		UserID:     schema.UserID,
		ActionType: schema.ActionType,
		Timestamp:  schema.Timestamp.UTC(),
		Details:    schema.Details,
	}
}

func AuditLogToAuditLogSchema(log *AuditLog) AuditLogSchema {
	return AuditLogSchema{
		ID:         log.ID,
		UserID:     log.UserID,
		ActionType: log.ActionType,
		Timestamp:  log.Timestamp.UTC(),
		Details:    log.Details,
	}
}
