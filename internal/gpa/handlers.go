package gpa

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cgpa-calculator/internal/grading"
	"cgpa-calculator/internal/handlers"
	"cgpa-calculator/internal/observability"
	"cgpa-calculator/internal/validation"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	opSemesterGPA = "semester_gpa"
	opCGPA        = "cgpa"
)

// tracer is the GPA domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("gpa")

// Index handles GET /
func Index(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, IndexResponse{
		Message:   "CGPA Calculator API",
		Endpoints: []string{SemesterGPAPath, CGPAPath},
	})
}

// SemesterGPA handles POST /calculate/semester-gpa
func SemesterGPA(w http.ResponseWriter, r *http.Request) {
	handleCalculation(w, r, opSemesterGPA, func(req *SemesterGPARequest) (outcome, error) {
		res, err := grading.SemesterGPA(req.toSubjects())
		if err != nil {
			return outcome{}, err
		}
		return outcome{
			value:   res.GPA,
			credits: res.TotalCredits,
			items:   len(req.Subjects),
			body:    SemesterGPAResponse{GPA: res.GPA, TotalCredits: res.TotalCredits},
		}, nil
	})
}

// CGPA handles POST /calculate/cgpa
func CGPA(w http.ResponseWriter, r *http.Request) {
	handleCalculation(w, r, opCGPA, func(req *CGPARequest) (outcome, error) {
		res, err := grading.CumulativeGPA(req.toSemesters())
		if err != nil {
			return outcome{}, err
		}
		return outcome{
			value:   res.CGPA,
			credits: res.TotalCredits,
			items:   len(req.Semesters),
			body:    CGPAResponse{CGPA: res.CGPA, TotalCredits: res.TotalCredits},
		}, nil
	})
}

// outcome is what a calculation hands back to handleCalculation.
type outcome struct {
	value   float64
	credits float64
	items   int
	body    any
}

// handleCalculation is the shared implementation for both endpoints:
// decode, validate, compute under a child span, then record metrics,
// log and respond. Nothing is computed unless the whole request is valid.
func handleCalculation[T any](w http.ResponseWriter, r *http.Request, opName string, compute func(*T) (outcome, error)) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("gpa.%s", opName),
		trace.WithAttributes(
			attribute.String("gpa.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req T
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		fail(ctx, span, logger, opName, err, w)
		return
	}

	if err := validation.Struct(&req); err != nil {
		fail(ctx, span, logger, opName, err, w)
		return
	}

	start := time.Now()
	out, err := compute(&req)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		fail(ctx, span, logger, opName, err, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", opName))
	calcCounter.Add(ctx, 1, attrs)
	calcHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, out.value, attrs)
	creditsHistogram.Record(ctx, out.credits, attrs)

	span.AddEvent("calculation.complete", trace.WithAttributes(
		attribute.Float64("result", out.value),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(
		attribute.Int("gpa.items", out.items),
		attribute.Float64("gpa.total_credits", out.credits),
		attribute.Float64("gpa.result", out.value),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("gpa calculation completed",
		zap.String("operation", opName),
		zap.Int("items", out.items),
		zap.Float64("total_credits", out.credits),
		zap.Float64("result", out.value),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, out.body)
}

// fail maps err onto the HTTP error contract: validation and grading
// errors are 400, anything else is 500.
func fail(ctx context.Context, span trace.Span, logger *zap.Logger, opName string, err error, w http.ResponseWriter) {
	rep := observability.ErrorReport{Operation: opName, Err: err}

	var verrs *validation.Errors
	switch {
	case errors.As(err, &verrs) && len(verrs.Fields) > 0:
		rep.Kind = verrs.Fields[0].Code
		rep.Status = http.StatusBadRequest
		rep.Body = handlers.NewValidationResponse(verrs)
	case grading.IsClientError(err):
		kind := grading.KindOf(err)
		rep.Kind = string(kind)
		rep.Status = http.StatusBadRequest
		rep.Body = handlers.ErrorResponse{Detail: clientDetail(kind, err)}
	default:
		rep.Kind = string(grading.KindInternal)
		rep.Status = http.StatusInternalServerError
		rep.Body = handlers.ErrorResponse{Detail: "Internal server error: " + internalDetail(err)}
	}

	observability.RecordError(ctx, span, logger, errorCounter, rep, w)
}

func clientDetail(kind grading.ErrorKind, err error) string {
	switch kind {
	case grading.KindZeroCredits:
		return grading.ZeroCreditsMessage
	case grading.KindInvalidGrade:
		return grading.InvalidGradeMessage()
	default:
		return err.Error()
	}
}

// internalDetail keeps operand values out of the response body.
func internalDetail(err error) string {
	if errors.Is(err, grading.ErrNonFiniteResult) {
		return grading.ErrNonFiniteResult.Error()
	}
	return err.Error()
}
