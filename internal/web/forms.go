package web

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/somshrestha/inflo-tech-test/internal/apperrors"
	"github.com/somshrestha/inflo-tech-test/internal/validation"
	"github.com/somshrestha/inflo-tech-test/internal/viewmodels"
)

func formString(c *gin.Context, key string) string {
	return strings.TrimSpace(c.PostForm(key))
}

func formBool(c *gin.Context, key string) bool {
	switch strings.ToLower(formString(c, key)) {
	case "true", "on", "1":
		return true
	}
	return false
}

// userFromForm reads the posted user and returns it with its field errors.
// Field errors are keyed by view model field name.
func (h *Handler) userFromForm(c *gin.Context) (viewmodels.UserViewModel, map[string]string) {
	fields := map[string]string{}

	vm := viewmodels.UserViewModel{
		Forename: formString(c, "forename"),
		Surname:  formString(c, "surname"),
		Email:    formString(c, "email"),
		IsActive: formBool(c, "isActive"),
	}
	if raw := formString(c, "id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			vm.ID = id
		}
	}
	if raw := formString(c, "dateOfBirth"); raw != "" {
		dob, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			fields["DateOfBirth"] = validation.MsgInvalidDateOfBirth
		} else {
			vm.DateOfBirth = &dob
		}
	}

	if err := h.validator.Validate(&vm); err != nil {
		var invalid *apperrors.ValidationError
		if !errors.As(err, &invalid) {
			fields[""] = err.Error()
			return vm, fields
		}
		for field, msg := range invalid.Fields {
			if _, seen := fields[field]; !seen {
				fields[field] = msg
			}
		}
	}

	if len(fields) == 0 {
		return vm, nil
	}
	return vm, fields
}
