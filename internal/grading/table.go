package grading

import "strings"

// gradeOrder lists grade symbols from highest to lowest point value.
var gradeOrder = []string{"O", "A+", "A", "B+", "B", "C", "P", "F"}

var gradePoints = map[string]int{
	"O":  10,
	"A+": 9,
	"A":  8,
	"B+": 7,
	"B":  6,
	"C":  5,
	"P":  4,
	"F":  0,
}

// MinPoints and MaxPoints bound every grade point and every average.
const (
	MinPoints = 0
	MaxPoints = 10
)

// Points returns the grade point for a symbol.
func Points(grade string) (int, bool) {
	p, ok := gradePoints[grade]
	return p, ok
}

// IsValidGrade reports whether grade is a symbol in the table. Matching is
// case-sensitive.
func IsValidGrade(grade string) bool {
	_, ok := gradePoints[grade]
	return ok
}

// Grades returns a copy of the valid symbols, highest first.
func Grades() []string {
	out := make([]string, len(gradeOrder))
	copy(out, gradeOrder)
	return out
}

// InvalidGradeMessage is the client-facing text for an unknown grade symbol.
func InvalidGradeMessage() string {
	return "Invalid grade. Must be one of: " + strings.Join(gradeOrder, ", ")
}
