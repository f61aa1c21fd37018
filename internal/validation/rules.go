package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/employee-portal/internal/domain"
)

// Tags registered on the struct validator.
const (
	TagNotBlank   = "not_blank"
	TagEmail      = "employee_email"
	TagPhone      = "employee_phone"
	TagDate       = "employee_date"
	TagNotFuture  = "not_future"
	TagDepartment = "department"
	TagPosition   = "position"
)

// NewValidator returns a struct validator that knows the employee rules.
// Department and position tags check membership in the given catalog.
func NewValidator(catalog domain.Catalog) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	mustRegister(v, TagNotBlank, func(fl validator.FieldLevel) bool {
		return IsRequired(fl.Field().String())
	})
	mustRegister(v, TagEmail, func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	mustRegister(v, TagPhone, func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	mustRegister(v, TagDate, func(fl validator.FieldLevel) bool {
		return IsValidDate(fl.Field().String())
	})
	mustRegister(v, TagNotFuture, func(fl validator.FieldLevel) bool {
		return IsNotFutureDate(fl.Field().String())
	})
	mustRegister(v, TagDepartment, func(fl validator.FieldLevel) bool {
		return catalog.HasDepartment(domain.Department(fl.Field().String()))
	})
	mustRegister(v, TagPosition, func(fl validator.FieldLevel) bool {
		return catalog.HasPosition(domain.Position(fl.Field().String()))
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("register validation " + tag + ": " + err.Error())
	}
}

// Details flattens validator errors into field -> failed tag.
func Details(err error) map[string]any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}
	return details
}
