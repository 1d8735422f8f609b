// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package validation checks request shapes before any service is called.
// Rules are declared as `validate` struct tags on the request types in
// package models.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/quickly-vote/models"
)

// Result is the outcome of validating one request.
type Result struct {
	Valid  bool
	Errors []models.FieldError
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// Location only matters for parsing, not for well-formedness
	err := v.RegisterValidation("timestamp", func(fl validator.FieldLevel) bool {
		_, err := models.ParseTimestamp(fl.Field().String(), time.UTC)
		return err == nil
	})
	if err != nil {
		panic(err)
	}

	return v
}

// CreatePoll validates a poll creation request.
func CreatePoll(req models.CreatePollRequest) Result {
	return check(req)
}

// CreateChoice validates a choice creation request.
func CreateChoice(req models.CreateChoiceRequest) Result {
	return check(req)
}

func check(req any) Result {
	err := validate.Struct(req)
	if err == nil {
		return Result{Valid: true}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Result{Errors: []models.FieldError{{Message: err.Error()}}}
	}

	fields := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, models.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return Result{Errors: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "timestamp":
		return fe.Field() + " must be formatted as " + models.TimestampLayout
	default:
		return fe.Field() + " is invalid"
	}
}

// Summary joins field messages into one line for ErrorResponse.Message.
func (r Result) Summary() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, fe := range r.Errors {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}
