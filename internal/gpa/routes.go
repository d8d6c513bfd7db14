package gpa

import "github.com/go-chi/chi/v5"

const (
	SemesterGPAPath = "/calculate/semester-gpa"
	CGPAPath        = "/calculate/cgpa"
)

// RegisterRoutes mounts the service index and both calculation endpoints.
func RegisterRoutes(r chi.Router) {
	r.Get("/", Index)
	r.Post(SemesterGPAPath, SemesterGPA)
	r.Post(CGPAPath, CGPA)
}
