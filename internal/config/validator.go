package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/swatches/internal/colorkey"
	"github.com/alexisbeaulieu97/swatches/internal/swatch"
	swatcherrors "github.com/alexisbeaulieu97/swatches/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("color_token", func(fl validator.FieldLevel) bool {
			_, ok := colorkey.Parse(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// ValidateOptions checks field constraints and the colors input.
func ValidateOptions(opts *Options) error {
	if opts == nil {
		return swatcherrors.NewValidationError("options", "options are nil", nil)
	}

	if err := validatorInstance().Struct(opts); err != nil {
		return convertValidationError(err)
	}

	if opts.Colors.Input.Kind() == swatch.InputPreset {
		if err := validatorInstance().Struct(opts.Colors.Input.Definition().Layout); err != nil {
			return convertValidationError(err)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s (%s)", msg, ve.Param())
		}
		return swatcherrors.NewValidationError(field, msg, err)
	}

	return swatcherrors.NewValidationError("options", err.Error(), err)
}

func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	var kept []string
	for _, part := range parts[1:] {
		if part == "" || part == "Layout" {
			continue
		}
		kept = append(kept, part)
	}
	if len(kept) == 0 {
		return fe.Field()
	}
	return strings.Join(kept, ".")
}
