package data

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// AuditInterceptor turns every Added, Modified and Deleted user entry into
// exactly one audit row queued on the same unit of work.
type AuditInterceptor struct {
	now func() time.Time
}

// AuditInterceptorOption configures an AuditInterceptor
type AuditInterceptorOption func(*AuditInterceptor)

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) AuditInterceptorOption {
	return func(i *AuditInterceptor) {
		i.now = now
	}
}

// NewAuditInterceptor creates the audit interceptor
func NewAuditInterceptor(opts ...AuditInterceptorOption) *AuditInterceptor {
	i := &AuditInterceptor{now: time.Now}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// SavingChanges implements SaveChangesInterceptor
func (i *AuditInterceptor) SavingChanges(ctx context.Context, tracker *ChangeTracker) error {
	var logs []*AuditLog

	for _, entry := range tracker.Entries() {
		var action, details string

		switch entry.State {
		case StateAdded:
			u := entry.Current
			action = ActionCreate
			details = fmt.Sprintf("User %s %s created with email %s", u.Forename, u.Surname, u.Email)

		case StateModified:
			if entry.Original == nil {
				return fmt.Errorf("modified user %d has no original values", entry.Current.ID)
			}
			u := entry.Current
			action = ActionUpdate
			changes := DiffUsers(entry.Original, u)
			if len(changes) == 0 {
				details = fmt.Sprintf("User %s %s updated with no changes detected", u.Forename, u.Surname)
			} else {
				details = fmt.Sprintf("User %s %s updated: %s", u.Forename, u.Surname, strings.Join(changes, ", "))
			}

		case StateDeleted:
			u := entry.Original
			if u == nil {
				u = entry.Current
			}
			action = ActionDelete
			details = fmt.Sprintf("User %s %s deleted with email %s", u.Forename, u.Surname, u.Email)

		default:
			continue
		}

		logs = append(logs, &AuditLog{
			UserID:     entry.Current.ID,
			ActionType: action,
			Timestamp:  i.now().UTC(),
			Details:    details,
		})
	}

	tracker.AddAuditLogs(logs...)
	return nil
}

// DiffUsers lists "Field changed from 'old' to 'new'" for every audited field whose
// rendered value differs, in declaration order.
func DiffUsers(original, current *User) []string {
	fields := []struct {
		name     string
		original string
		current  string
	}{
		{"Forename", original.Forename, current.Forename},
		{"Surname", original.Surname, current.Surname},
		{"Email", original.Email, current.Email},
		{"IsActive", formatBool(original.IsActive), formatBool(current.IsActive)},
		{"DateOfBirth", formatDate(original.DateOfBirth), formatDate(current.DateOfBirth)},
	}

	var changes []string
	for _, f := range fields {
		if f.original == f.current {
			continue
		}
		changes = append(changes, fmt.Sprintf("%s changed from '%s' to '%s'", f.name, f.original, f.current))
	}
	return changes
}

func formatBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "null"
	}
	return t.Format(dateLayout)
}
