// Package validation checks command and query shapes before any store access.
//
// Rules are declared as `validate` struct tags on the port input types and
// evaluated with go-playground/validator. Each input type carries the rule set
// of its operation. Every violated rule becomes one line of the resulting
// domain.Error message, in struct-field order.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

// Validator evaluates struct-tag rules. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New creates a Validator. The now function is consulted on every `future`
// check, so deadlines are compared against the instant of validation.
// A nil now defaults to time.Now.
func New(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}

	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      now,
	}

	// Registration only fails for empty tags or nil funcs.
	_ = v.validate.RegisterValidation("notblank", validators.NotBlank)
	_ = v.validate.RegisterValidation("guid", isGUID)
	_ = v.validate.RegisterValidation("future", v.isFuture)

	return v
}

// Validate checks input against its rules. When any rule is violated it
// returns a "<operation>.Validation" error and false.
//
// Passing a non-struct input is a programming error and panics.
func (v *Validator) Validate(operation string, input any) (domain.Error, bool) {
	err := v.validate.Struct(input)
	if err == nil {
		return domain.None, true
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		panic(fmt.Sprintf("validation: %s: %v", operation, err))
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		panic(fmt.Sprintf("validation: %s: unexpected error %T", operation, err))
	}

	lines := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		lines = append(lines, message(fe))
	}

	return domain.Validation(operation+".Validation", strings.Join(lines, "\n")), false
}

func (v *Validator) isFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return t.After(v.now().UTC())
}

func isGUID(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := uuid.Parse(fl.Field().String())
	return err == nil
}

// message renders one violated rule as a sentence.
func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "notblank", "required":
		return fmt.Sprintf("'%s' must not be empty.", field)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The length of '%s' must be %s characters or fewer. You entered %d characters.",
				field, fe.Param(), runeCount(fe.Value()))
		}
		return fmt.Sprintf("'%s' must be at most %s.", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The length of '%s' must be at least %s characters. You entered %d characters.",
				field, fe.Param(), runeCount(fe.Value()))
		}
		return fmt.Sprintf("'%s' must be at least %s.", field, fe.Param())
	case "gt":
		return fmt.Sprintf("'%s' must be greater than '%s'.", field, fe.Param())
	case "lt":
		return fmt.Sprintf("'%s' must be less than '%s'.", field, fe.Param())
	case "email":
		return fmt.Sprintf("'%s' is not a valid email address.", field)
	case "guid":
		return fmt.Sprintf("'%s' has not correct format: expected a UUID.", field)
	case "future":
		return fmt.Sprintf("'%s' must be later than the current UTC time.", field)
	default:
		return fmt.Sprintf("'%s' failed the '%s' rule.", field, fe.Tag())
	}
}

func runeCount(v any) int {
	s, _ := v.(string)
	return utf8.RuneCountInString(s)
}
