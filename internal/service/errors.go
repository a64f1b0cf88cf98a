// Package service provides business logic for the application.
package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Service errors.
var (
	ErrIncompleteQuote   = errors.New("not all calculator fields are filled in")
	ErrInvalidQuote      = errors.New("calculator input is invalid")
	ErrIncompleteContact = errors.New("required contact fields are missing")
)

// MissingFieldsError lists the required fields a visitor left empty.
type MissingFieldsError struct {
	Err    error
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return e.Err.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Unwrap() error {
	return e.Err
}

// MissingFields returns the empty fields carried by err, if any.
func MissingFields(err error) []string {
	var mfe *MissingFieldsError
	if errors.As(err, &mfe) {
		return mfe.Fields
	}
	return nil
}

// presence checks only that required fields are there; values are never judged.
var presence = newPresenceValidator()

func newPresenceValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// checkPresence returns a MissingFieldsError wrapping sentinel when v has empty required fields.
func checkPresence(v any, sentinel error) error {
	err := presence.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &MissingFieldsError{Err: sentinel, Fields: fields}
}
