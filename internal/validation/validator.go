package validation

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/somshrestha/inflo-tech-test/internal/apperrors"
	"github.com/somshrestha/inflo-tech-test/internal/viewmodels"
)

// Date of birth messages
const (
	MsgDateOfBirthInFuture = "Date of Birth cannot be in the future."
	MsgInvalidDateOfBirth  = "Date of Birth must be a valid date."
)

// UserValidator defines the checks applied to user input
type UserValidator interface {
	Validate(user *viewmodels.UserViewModel) error
}

// Validator implements UserValidator on go-playground/validator
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// Option configures a Validator
type Option func(*Validator)

// WithClock overrides the source of "today"
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// New creates a user validator
func New(opts ...Option) *Validator {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}

	// Registration only fails for an empty tag or nil func
	_ = v.validate.RegisterValidation("pastdate", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		return v.IsValidDateOfBirth(&t)
	})

	return v
}

// IsValidDateOfBirth accepts no date or any date up to and including today
func (v *Validator) IsValidDateOfBirth(dob *time.Time) bool {
	if dob == nil {
		return true
	}
	today := truncateToDay(v.now())
	return !truncateToDay(*dob).After(today)
}

// Validate returns a *apperrors.ValidationError holding the first failing
// message per field, or nil.
func (v *Validator) Validate(user *viewmodels.UserViewModel) error {
	err := v.validate.Struct(user)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate user: %w", err)
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := fields[fe.StructField()]; seen {
			continue
		}
		fields[fe.StructField()] = message(fe)
	}
	return apperrors.NewValidationError("invalid user", fields)
}

func message(fe validator.FieldError) string {
	field := fe.StructField()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters.", field, fe.Param())
	case "email":
		return "Invalid email address."
	case "pastdate":
		return MsgDateOfBirthInFuture
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
