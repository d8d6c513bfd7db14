package grading

import "errors"

// ZeroCreditsMessage is the client-facing detail for ErrZeroCredits.
const ZeroCreditsMessage = "Total credits cannot be zero"

var (
	ErrInvalidGrade    = errors.New("invalid grade")
	ErrInvalidCredits  = errors.New("credits must be positive")
	ErrEmptyCollection = errors.New("collection cannot be empty")
	ErrGPAOutOfRange   = errors.New("gpa must be between 0 and 10")
	ErrZeroCredits     = errors.New("total credits cannot be zero")
	ErrNonFiniteResult = errors.New("result is not a finite number")
)

// ErrorKind classifies failures for the transport layer.
type ErrorKind string

const (
	KindInvalidGrade    ErrorKind = "invalid_grade"
	KindInvalidCredits  ErrorKind = "invalid_credits"
	KindEmptyCollection ErrorKind = "empty_collection"
	KindGPAOutOfRange   ErrorKind = "gpa_out_of_range"
	KindZeroCredits     ErrorKind = "zero_credits"
	KindInternal        ErrorKind = "internal"
)

var kinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrInvalidGrade, KindInvalidGrade},
	{ErrInvalidCredits, KindInvalidCredits},
	{ErrEmptyCollection, KindEmptyCollection},
	{ErrGPAOutOfRange, KindGPAOutOfRange},
	{ErrZeroCredits, KindZeroCredits},
}

// KindOf maps err to its ErrorKind. Anything it does not recognise,
// ErrNonFiniteResult included, is KindInternal.
func KindOf(err error) ErrorKind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

// IsClientError reports whether err should be surfaced as a 4xx.
func IsClientError(err error) bool {
	return err != nil && KindOf(err) != KindInternal
}
