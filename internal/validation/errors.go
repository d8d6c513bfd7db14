package validation

import (
	"errors"
	"strings"

	"cgpa-calculator/internal/grading"
)

// Field error codes. The grading kinds are reused so a field error and an
// engine error of the same nature carry the same code.
const (
	CodeInvalidBody     = "invalid_body"
	CodeInvalidType     = "invalid_type"
	CodeRequired        = "required"
	CodeEmptyCollection = string(grading.KindEmptyCollection)
	CodeInvalidCredits  = string(grading.KindInvalidCredits)
	CodeInvalidGrade    = string(grading.KindInvalidGrade)
	CodeGPAOutOfRange   = string(grading.KindGPAOutOfRange)
	CodeInvalid         = "invalid"
)

var ErrInvalidRequest = errors.New("invalid request")

// FieldError describes one rejected field, addressed by its JSON path.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`

	err error
}

// Errors is the list of everything wrong with a request. It unwraps to
// ErrInvalidRequest and to the grading sentinel of each field error.
type Errors struct {
	Fields []FieldError
}

func (e *Errors) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *Errors) Unwrap() []error {
	out := []error{ErrInvalidRequest}
	for _, f := range e.Fields {
		if f.err != nil {
			out = append(out, f.err)
		}
	}
	return out
}

// Detail is the human-readable summary: the first field's message.
func (e *Errors) Detail() string {
	if len(e.Fields) == 0 {
		return "Invalid request"
	}
	return e.Fields[0].Message
}

func (e *Errors) add(f FieldError) {
	e.Fields = append(e.Fields, f)
}
