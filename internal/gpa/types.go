package gpa

import "cgpa-calculator/internal/grading"

// SubjectInput is one course entry. Numeric fields are pointers so a missing
// field is reported as required rather than read as 0. Grade needs no
// required rule: an empty or absent symbol is just another invalid grade.
type SubjectInput struct {
	Credits *float64 `json:"credits" validate:"required,gt=0"`
	Grade   string   `json:"grade" validate:"grade"`
}

// SemesterGPARequest is the JSON body for POST /calculate/semester-gpa.
type SemesterGPARequest struct {
	Subjects []SubjectInput `json:"subjects" validate:"required,min=1,dive"`
}

// SemesterGPAResponse is the JSON response for POST /calculate/semester-gpa.
type SemesterGPAResponse struct {
	GPA          float64 `json:"gpa"`
	TotalCredits float64 `json:"total_credits"`
}

// SemesterInput is one past semester.
type SemesterInput struct {
	GPA     *float64 `json:"gpa" validate:"required,gte=0,lte=10"`
	Credits *float64 `json:"credits" validate:"required,gt=0"`
}

// CGPARequest is the JSON body for POST /calculate/cgpa.
type CGPARequest struct {
	Semesters []SemesterInput `json:"semesters" validate:"required,min=1,dive"`
}

// CGPAResponse is the JSON response for POST /calculate/cgpa.
type CGPAResponse struct {
	CGPA         float64 `json:"cgpa"`
	TotalCredits float64 `json:"total_credits"`
}

// IndexResponse is the JSON response for GET /.
type IndexResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

// toSubjects must only be called on a validated request.
func (r SemesterGPARequest) toSubjects() []grading.Subject {
	out := make([]grading.Subject, 0, len(r.Subjects))
	for _, s := range r.Subjects {
		out = append(out, grading.Subject{Credits: *s.Credits, Grade: s.Grade})
	}
	return out
}

// toSemesters must only be called on a validated request.
func (r CGPARequest) toSemesters() []grading.Semester {
	out := make([]grading.Semester, 0, len(r.Semesters))
	for _, s := range r.Semesters {
		out = append(out, grading.Semester{GPA: *s.GPA, Credits: *s.Credits})
	}
	return out
}
