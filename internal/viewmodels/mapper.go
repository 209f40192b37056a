package viewmodels

import (
	"github.com/somshrestha/inflo-tech-test/internal/data"
)

// Mapper converts between stored entities and view models
type Mapper interface {
	ToUserViewModel(user *data.User) UserViewModel
	ToUserListItem(user data.User) UserListItemViewModel
	ToUser(vm UserViewModel) *data.User
	ToAuditLogViewModel(log data.AuditLog) AuditLogViewModel
	ToAuditLogViewModels(logs []data.AuditLog) []AuditLogViewModel
}

// DefaultMapper implements Mapper with plain field copies
type DefaultMapper struct{}

// NewMapper creates the default mapper
func NewMapper() *DefaultMapper {
	return &DefaultMapper{}
}

func (DefaultMapper) ToUserViewModel(user *data.User) UserViewModel {
	u := user.Clone()
	return UserViewModel{
		ID:          u.ID,
		Forename:    u.Forename,
		Surname:     u.Surname,
		Email:       u.Email,
		IsActive:    u.IsActive,
		DateOfBirth: u.DateOfBirth,
	}
}

func (DefaultMapper) ToUserListItem(user data.User) UserListItemViewModel {
	u := user.Clone()
	return UserListItemViewModel{
		ID:          u.ID,
		Forename:    u.Forename,
		Surname:     u.Surname,
		Email:       u.Email,
		IsActive:    u.IsActive,
		DateOfBirth: u.DateOfBirth,
	}
}

func (m DefaultMapper) ToUser(vm UserViewModel) *data.User {
	user := &data.User{ID: vm.ID}
	m.MergeUser(vm, user)
	return user
}

// MergeUser copies the mutable fields of vm onto user; the id is kept
func (DefaultMapper) MergeUser(vm UserViewModel, user *data.User) {
	user.Forename = vm.Forename
	user.Surname = vm.Surname
	user.Email = vm.Email
	user.IsActive = vm.IsActive
	user.DateOfBirth = nil
	if vm.DateOfBirth != nil {
		dob := *vm.DateOfBirth
		user.DateOfBirth = &dob
	}
}

func (DefaultMapper) ToAuditLogViewModel(log data.AuditLog) AuditLogViewModel {
	return AuditLogViewModel{
		ID:         log.ID,
		UserID:     log.UserID,
		ActionType: log.ActionType,
		Timestamp:  log.Timestamp,
		Details:    log.Details,
	}
}

func (m DefaultMapper) ToAuditLogViewModels(logs []data.AuditLog) []AuditLogViewModel {
	out := make([]AuditLogViewModel, 0, len(logs))
	for _, log := range logs {
		out = append(out, m.ToAuditLogViewModel(log))
	}
	return out
}
