// Package schema describes the request and response shapes of the API and
// validates incoming payloads against them.
package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"reflect"
	"sort"
	"strings"

	"github.com/KAsare1/donation-server/cmd/models"
	"github.com/go-playground/validator/v10"
)

// Validatable is implemented by payloads that cannot be described with
// validator tags alone, such as update payloads.
type Validatable interface {
	Validate() error
}

type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Error is returned for payloads that fail to decode or validate.
type Error struct {
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Error)
	}
	return e.Message + ": " + strings.Join(parts, ", ")
}

// Detail is the value placed under "detail" in the error response.
func (e *Error) Detail() interface{} {
	if len(e.Fields) > 0 {
		return e.Fields
	}
	return e.Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// a zero Date counts as missing for "required"
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(models.Date); ok && !d.IsZero() {
			return d.Time
		}
		return nil
	}, models.Date{})

	v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		return isMoney(fl.Field().Float())
	})

	return v
}

// isMoney reports whether v fits a decimal(14,2) column without rounding.
func isMoney(v float64) bool {
	cents := v * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}

// Decode reads a JSON body into payload and validates it.
func Decode(r *http.Request, payload interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return &Error{Message: "Invalid request body: " + err.Error()}
	}
	return Validate(payload)
}

func Validate(payload interface{}) error {
	var err error
	if v, ok := payload.(Validatable); ok {
		err = v.Validate()
	} else {
		err = validate.Struct(payload)
	}
	if err == nil {
		return nil
	}
	return toError(err)
}

func toError(err error) error {
	if e, ok := err.(*Error); ok {
		return e
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "money":
			msg = moneyError
		default:
			msg = fmt.Sprintf("failed %s validation", fe.Tag())
		}
		fields = append(fields, FieldError{Field: fe.Field(), Error: msg})
	}
	return &Error{Message: "Validation failed", Fields: fields}
}

const moneyError = "must have at most two decimal places"

// rejectNull fails validation for every non-nullable field that was sent as
// an explicit null.
func rejectNull(fields map[string]interface{ IsNull() bool }) error {
	return fieldErrors(nullFields(fields))
}

func nullFields(fields map[string]interface{ IsNull() bool }) []FieldError {
	var errs []FieldError
	for name, f := range fields {
		if f.IsNull() {
			errs = append(errs, FieldError{Field: name, Error: "may not be null"})
		}
	}
	return errs
}

// moneyFields reports supplied amounts that would be rounded by the store.
func moneyFields(fields map[string]Optional[float64]) []FieldError {
	var errs []FieldError
	for name, f := range fields {
		if f.Set && !f.Null && !isMoney(f.Value) {
			errs = append(errs, FieldError{Field: name, Error: moneyError})
		}
	}
	return errs
}

func fieldErrors(groups ...[]FieldError) error {
	var errs []FieldError
	for _, g := range groups {
		errs = append(errs, g...)
	}
	if len(errs) == 0 {
		return nil
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
	return &Error{Message: "Validation failed", Fields: errs}
}
