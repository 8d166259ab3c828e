package domain

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields under their JSON names so the error map lines
// up with the form field names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate maps each empty required field of e to "<Label> is required".
// The map is empty when e is complete.
func Validate(e Employee) map[string]string {
	errs := map[string]string{}
	err := validate.Struct(e)
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs
	}
	for _, fe := range verrs {
		errs[fe.Field()] = FieldLabel(fe.Field()) + " is required"
	}
	return errs
}

// FieldLabel upper-cases the first letter of a field name
// ("dateOfBirth" -> "DateOfBirth").
func FieldLabel(field string) string {
	if field == "" {
		return ""
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

// ValidationError is returned when a record with missing required fields
// reaches the store.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return "invalid employee: " + strings.Join(msgs, ", ")
}

// Check wraps Validate, returning a *ValidationError when anything is
// missing.
func Check(e Employee) error {
	if errs := Validate(e); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
