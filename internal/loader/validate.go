package loader

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/napolitain/alchemy/internal/growth"
	"github.com/napolitain/alchemy/internal/models"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()

		// Report fields by their YAML names
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("color", validateColor)
		_ = v.RegisterValidation("vial", validateVial)
		_ = v.RegisterValidation("curve", validateCurve)

		validate = v
	})
	return validate
}

func validateColor(fl validator.FieldLevel) bool {
	_, ok := models.ParseColor(fl.Field().String())
	return ok
}

func validateVial(fl validator.FieldLevel) bool {
	_, ok := models.GetVial(fl.Field().String())
	return ok
}

func validateCurve(fl validator.FieldLevel) bool {
	return growth.ParseKind(fl.Field().String()) != growth.KindUnknown
}

// Validate checks a decoded profile. Failures wrap ErrInvalidProfile and list
// every offending field.
func Validate(raw *ProfileYAML) error {
	err := getValidator().Struct(raw)
	if err == nil {
		return nil
	}
	msgs := FormatValidationError(err)
	return fmt.Errorf("%w: %s", ErrInvalidProfile, strings.Join(msgs, "; "))
}

// FormatValidationError turns validator errors into one message per field
func FormatValidationError(err error) []string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}

		var msg string
		switch e.Tag() {
		case "required":
			msg = "is required"
		case "gte":
			msg = fmt.Sprintf("must be at least %s", e.Param())
		case "color":
			msg = fmt.Sprintf("unknown cauldron color %q", e.Value())
		case "vial":
			msg = fmt.Sprintf("unknown vial %q", e.Value())
		case "curve":
			msg = fmt.Sprintf("unknown growth curve %q", e.Value())
		default:
			msg = "is invalid"
		}
		msgs = append(msgs, field+" "+msg)
	}
	return msgs
}
