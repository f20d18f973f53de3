// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"newsroom/internal/slug"
)

// ErrValidation is wrapped by every error returned from Validate.
var ErrValidation = errors.New("validation failed")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slug.Valid(fl.Field().String())
	})
	return v
}

// Validate checks a Category or News value against its struct tags and
// returns a single readable error listing every failing field.
func Validate(v any) error {
	return explain(validate.Struct(v))
}

// ValidateExcept is Validate skipping the named fields, for input whose
// remaining fields are filled in later (such as IDs resolved from slugs).
func ValidateExcept(v any, fields ...string) error {
	return explain(validate.StructExcept(v, fields...))
}

func explain(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s is too long (max %s characters)", field, fe.Param())
	case "slug":
		return field + " may only contain lowercase letters, digits, hyphens and underscores"
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
