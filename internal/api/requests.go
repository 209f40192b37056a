package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/somshrestha/inflo-tech-test/internal/apperrors"
	"github.com/somshrestha/inflo-tech-test/internal/validation"
	"github.com/somshrestha/inflo-tech-test/internal/viewmodels"
)

// userRequest is the JSON body of create and update calls. DateOfBirth
// accepts yyyy-MM-dd or RFC 3339.
type userRequest struct {
	ID          int64   `json:"id"`
	Forename    string  `json:"forename"`
	Surname     string  `json:"surname"`
	Email       string  `json:"email"`
	IsActive    bool    `json:"isActive"`
	DateOfBirth *string `json:"dateOfBirth"`
}

func (r userRequest) toViewModel() (viewmodels.UserViewModel, error) {
	vm := viewmodels.UserViewModel{
		ID:       r.ID,
		Forename: strings.TrimSpace(r.Forename),
		Surname:  strings.TrimSpace(r.Surname),
		Email:    strings.TrimSpace(r.Email),
		IsActive: r.IsActive,
	}

	if r.DateOfBirth != nil && strings.TrimSpace(*r.DateOfBirth) != "" {
		dob, err := parseDate(strings.TrimSpace(*r.DateOfBirth))
		if err != nil {
			return vm, apperrors.NewValidationError("invalid user", map[string]string{
				"DateOfBirth": validation.MsgInvalidDateOfBirth,
			})
		}
		vm.DateOfBirth = &dob
	}

	return vm, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, badRequest("The value '%s' is not a valid id.", c.Param("id"))
	}
	return id, nil
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest("The value '%s' is not valid for %s.", raw, name)
	}
	return v, nil
}

func queryBool(c *gin.Context, name string, fallback bool) (bool, error) {
	v, present, err := queryOptionalBool(c, name)
	if err != nil || !present {
		return fallback, err
	}
	return v, nil
}

func queryOptionalBool(c *gin.Context, name string) (bool, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return false, false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false, badRequest("The value '%s' is not valid for %s.", raw, name)
	}
	return v, true, nil
}
