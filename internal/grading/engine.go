// Package grading computes credit-weighted grade averages against a fixed
// grade table. Every function here is pure and safe for concurrent use.
package grading

import (
	"fmt"
	"math"
	"strconv"
)

// Subject is one course entry of a semester.
type Subject struct {
	Credits float64
	Grade   string
}

// Semester is one past semester used for the cumulative average.
type Semester struct {
	GPA     float64
	Credits float64
}

// SemesterGPAResult is a semester average and its credit total, both rounded.
type SemesterGPAResult struct {
	GPA          float64
	TotalCredits float64
}

// CGPAResult is a cumulative average and its credit total, both rounded.
type CGPAResult struct {
	CGPA         float64
	TotalCredits float64
}

// SemesterGPA returns the credit-weighted average of grade points.
//
// Input is expected to be validated already. Grade membership and emptiness
// are re-checked because they are free; positivity of individual credits is
// not, leaving only the zero-total guard.
func SemesterGPA(subjects []Subject) (SemesterGPAResult, error) {
	if len(subjects) == 0 {
		return SemesterGPAResult{}, fmt.Errorf("subjects: %w", ErrEmptyCollection)
	}

	var totalPoints, totalCredits float64
	for i, s := range subjects {
		p, ok := Points(s.Grade)
		if !ok {
			return SemesterGPAResult{}, fmt.Errorf("subject %d grade %q: %w", i, s.Grade, ErrInvalidGrade)
		}
		totalPoints += s.Credits * float64(p)
		totalCredits += s.Credits
	}

	gpa, err := weightedAverage(totalPoints, totalCredits)
	if err != nil {
		return SemesterGPAResult{}, err
	}

	return SemesterGPAResult{
		GPA:          gpa,
		TotalCredits: Round2(totalCredits),
	}, nil
}

// CumulativeGPA weights each semester's GPA by its credits.
func CumulativeGPA(semesters []Semester) (CGPAResult, error) {
	if len(semesters) == 0 {
		return CGPAResult{}, fmt.Errorf("semesters: %w", ErrEmptyCollection)
	}

	var totalWeighted, totalCredits float64
	for _, s := range semesters {
		totalWeighted += s.GPA * s.Credits
		totalCredits += s.Credits
	}

	cgpa, err := weightedAverage(totalWeighted, totalCredits)
	if err != nil {
		return CGPAResult{}, err
	}

	return CGPAResult{
		CGPA:         cgpa,
		TotalCredits: Round2(totalCredits),
	}, nil
}

func weightedAverage(weighted, credits float64) (float64, error) {
	if credits == 0 {
		return 0, ErrZeroCredits
	}

	avg := weighted / credits
	if math.IsNaN(avg) || math.IsInf(avg, 0) || math.IsInf(credits, 0) {
		return 0, fmt.Errorf("weighted=%g credits=%g: %w", weighted, credits, ErrNonFiniteResult)
	}

	return Round2(avg), nil
}

// Round2 rounds x to two decimal places, half to even on the exact binary
// value. This matches Python's round(x, 2): 2.675 is stored as
// 2.67499999... and becomes 2.67, while 0.125 is exact and becomes 0.12.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	if err != nil {
		return x
	}
	return r
}
