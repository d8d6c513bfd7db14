// Package validation checks decoded request bodies against their declared
// constraints and reports every failure as a FieldError.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"cgpa-calculator/internal/grading"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for an empty tag or nil func.
	if err := v.RegisterValidation("grade", func(fl validator.FieldLevel) bool {
		return grading.IsValidGrade(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// Struct validates s using its `validate` tags. It returns nil or *Errors.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate: %w", err)
	}

	out := &Errors{}
	for _, fe := range fieldErrs {
		out.add(translate(fe))
	}
	return out
}

func translate(fe validator.FieldError) FieldError {
	path := fieldPath(fe.Namespace())
	name := fe.Field()

	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.Slice {
			return emptyCollection(path, name)
		}
		return FieldError{Field: path, Code: CodeRequired, Message: fmt.Sprintf("%s is required", name)}
	case "min":
		if fe.Kind() == reflect.Slice {
			return emptyCollection(path, name)
		}
	case "gt":
		if name == "credits" {
			return FieldError{
				Field:   path,
				Code:    CodeInvalidCredits,
				Message: "Credits must be positive",
				err:     grading.ErrInvalidCredits,
			}
		}
	case "gte", "lte":
		if name == "gpa" {
			return FieldError{
				Field:   path,
				Code:    CodeGPAOutOfRange,
				Message: fmt.Sprintf("GPA must be between %d and %d", grading.MinPoints, grading.MaxPoints),
				err:     grading.ErrGPAOutOfRange,
			}
		}
	case "grade":
		return FieldError{
			Field:   path,
			Code:    CodeInvalidGrade,
			Message: grading.InvalidGradeMessage(),
			err:     grading.ErrInvalidGrade,
		}
	}

	return FieldError{
		Field:   path,
		Code:    CodeInvalid,
		Message: fmt.Sprintf("%s failed %s validation", name, fe.Tag()),
	}
}

func emptyCollection(path, name string) FieldError {
	return FieldError{
		Field:   path,
		Code:    CodeEmptyCollection,
		Message: fmt.Sprintf("%s list cannot be empty", capitalize(name)),
		err:     grading.ErrEmptyCollection,
	}
}

// fieldPath drops the root struct name from a validator namespace:
// "SemesterGPARequest.subjects[0].grade" becomes "subjects[0].grade".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// DecodeError converts a JSON decoding failure into *Errors.
func DecodeError(err error) *Errors {
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)

	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return &Errors{Fields: []FieldError{{
			Field:   field,
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("%s must be %s", field, jsonTypeName(typeErr.Type)),
		}}}
	case errors.As(err, &syntaxErr):
		return &Errors{Fields: []FieldError{{
			Field:   "body",
			Code:    CodeInvalidBody,
			Message: fmt.Sprintf("Malformed JSON at offset %d", syntaxErr.Offset),
		}}}
	case errors.Is(err, io.EOF):
		return &Errors{Fields: []FieldError{{
			Field:   "body",
			Code:    CodeInvalidBody,
			Message: "Request body is required",
		}}}
	case errors.Is(err, io.ErrUnexpectedEOF):
		return &Errors{Fields: []FieldError{{
			Field:   "body",
			Code:    CodeInvalidBody,
			Message: "Malformed JSON: unexpected end of input",
		}}}
	default:
		return &Errors{Fields: []FieldError{{
			Field:   "body",
			Code:    CodeInvalidBody,
			Message: "Invalid request body: " + err.Error(),
		}}}
	}
}

func jsonTypeName(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64, reflect.Int32:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Struct, reflect.Map:
		return "an object"
	case reflect.Bool:
		return "a boolean"
	default:
		return "a valid " + t.Kind().String()
	}
}
