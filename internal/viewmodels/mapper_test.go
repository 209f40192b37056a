package viewmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/somshrestha/inflo-tech-test/internal/data"
)

func TestMergeUserKeepsID(t *testing.T) {
	dob := time.Date(1990, time.March, 28, 0, 0, 0, 0, time.UTC)
	stored := &data.User{ID: 10, Forename: "Johnny", Surname: "Blaze", Email: "jblaze@example.com", IsActive: true, DateOfBirth: &dob}

	NewMapper().MergeUser(UserViewModel{ID: 99, Forename: "John", Surname: "Blaze", Email: "john@example.com"}, stored)

	assert.Equal(t, int64(10), stored.ID)
	assert.Equal(t, "John", stored.Forename)
	assert.Equal(t, "john@example.com", stored.Email)
	assert.False(t, stored.IsActive)
	assert.Nil(t, stored.DateOfBirth)
}

func TestToUserViewModelDoesNotAlias(t *testing.T) {
	dob := time.Date(1990, time.March, 28, 0, 0, 0, 0, time.UTC)
	user := &data.User{ID: 10, Forename: "Johnny", DateOfBirth: &dob}

	vm := NewMapper().ToUserViewModel(user)
	*vm.DateOfBirth = vm.DateOfBirth.AddDate(1, 0, 0)

	assert.Equal(t, 1990, user.DateOfBirth.Year())
}

func TestAuditLogListTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{total: 0, size: 10, want: 0},
		{total: 10, size: 10, want: 1},
		{total: 23, size: 10, want: 3},
		{total: 5, size: 0, want: 0},
	}

	for _, tt := range tests {
		m := AuditLogListViewModel{TotalItems: tt.total, PageSize: tt.size, CurrentPage: 1}
		assert.Equal(t, tt.want, m.TotalPages())
	}

	m := AuditLogListViewModel{TotalItems: 23, PageSize: 10, CurrentPage: 2}
	assert.True(t, m.HasPrevious())
	assert.True(t, m.HasNext())
}
