package viewmodels

import (
	"time"
)

// UserViewModel is the editable form of a user. Validation tags are read by
// the validation package.
type UserViewModel struct {
	ID          int64      `json:"id"`
	Forename    string     `json:"forename" validate:"required,max=50"`
	Surname     string     `json:"surname" validate:"required,max=50"`
	Email       string     `json:"email" validate:"required,email,max=100"`
	IsActive    bool       `json:"isActive"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty" validate:"omitempty,pastdate"`
}

// UserListItemViewModel is one row of the users table
type UserListItemViewModel struct {
	ID          int64
	Forename    string
	Surname     string
	Email       string
	IsActive    bool
	DateOfBirth *time.Time
}

// UserListViewModel is the users page. IsActiveFilter is nil when every user is shown.
type UserListViewModel struct {
	Items          []UserListItemViewModel
	IsActiveFilter *bool
}

// AuditLogViewModel is one audit row as displayed
type AuditLogViewModel struct {
	ID         int64
	UserID     int64
	ActionType string
	Timestamp  time.Time
	Details    string
}

// AuditLogListViewModel is one page of the audit trail with its filters
type AuditLogListViewModel struct {
	Items            []AuditLogViewModel
	CurrentPage      int
	PageSize         int
	TotalItems       int
	SearchQuery      string
	ActionTypeFilter string
	SortDescending   bool
}

// TotalPages is ceil(TotalItems / PageSize)
func (m AuditLogListViewModel) TotalPages() int {
	if m.PageSize <= 0 {
		return 0
	}
	return (m.TotalItems + m.PageSize - 1) / m.PageSize
}

// HasPrevious reports whether a page exists before CurrentPage
func (m AuditLogListViewModel) HasPrevious() bool {
	return m.CurrentPage > 1
}

// HasNext reports whether a page exists after CurrentPage
func (m AuditLogListViewModel) HasNext() bool {
	return m.CurrentPage < m.TotalPages()
}

// UserWithAuditViewModel is the user details page
type UserWithAuditViewModel struct {
	User      UserViewModel
	AuditLogs []AuditLogViewModel
}
