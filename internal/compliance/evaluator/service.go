// Package evaluator validates job listings against the youth-labor rule
// tables for one worker's age group.
//
// The service is pure and stateless: no I/O, no shared mutable state, safe to
// call concurrently without coordination. Compliance violations are data in
// the result, never errors — an illegal listing is an expected outcome, not
// an engine failure.
package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"workright/internal/compliance/metrics"
	"workright/internal/compliance/models"
	"workright/internal/compliance/rules"
)

// Service evaluates job listings. Construct with New.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(opts ...Option) *Service {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// ValidateJob validates one job listing against one worker's age group.
//
// Every check runs even after a violation so a single call surfaces every
// problem at once. Identical inputs always produce identical results; the
// Compliant flag is true iff no violation was appended. Warnings and
// suggestions never affect it.
func (s *Service) ValidateJob(ctx context.Context, job models.JobInput, worker models.WorkerAgeInfo) models.ComplianceResult {
	start := time.Now()

	result := models.NewComplianceResult()
	limits := rules.Limits(worker.AgeGroup, job.IsSchoolDay, job.IsSchoolHoliday)

	checkCategory(&result, job, worker.AgeGroup)
	checkHazards(&result, job, worker.AgeGroup)
	checkDailyHours(&result, job, limits)
	checkTimeWindow(&result, job, limits)
	checkWage(&result, job, limits)

	if worker.IsMinor && !job.IsSchoolDay && !job.IsSchoolHoliday {
		result.AddWarning(models.WarningSchoolContextUnset,
			"neither school day nor school holiday was specified; school-holiday limits were applied")
	}

	if s.logger != nil {
		s.logger.DebugContext(ctx, "job evaluated",
			"category", job.Category,
			"age_group", worker.AgeGroup,
			"compliant", result.Compliant,
			"violations", len(result.Violations),
			"warnings", len(result.Warnings),
		)
	}
	s.metrics.IncrementEvaluation(worker.AgeGroup.String(), result.Compliant)
	for _, v := range result.Violations {
		s.metrics.IncrementViolation(string(v.Code))
	}
	s.metrics.ObserveEvaluateLatency(time.Since(start))

	return result
}

// EligibleAgeGroups evaluates a job once per age bracket and returns the
// brackets with zero violations, in fixed bracket order. This replaces the
// caller-side "run the evaluator twice" loop so the per-bracket policy lives
// in one place.
func (s *Service) EligibleAgeGroups(ctx context.Context, job models.JobInput) []models.AgeGroup {
	eligible := []models.AgeGroup{}
	for _, group := range models.AllAgeGroups() {
		result := s.ValidateJob(ctx, job, RepresentativeWorker(group))
		if result.Compliant {
			eligible = append(eligible, group)
		}
	}
	return eligible
}

// RepresentativeWorker returns the WorkerAgeInfo used for per-bracket
// evaluation. Rules depend only on the bracket, so the youngest member of
// each bracket stands in for the whole bracket.
func RepresentativeWorker(group models.AgeGroup) models.WorkerAgeInfo {
	if group == models.AgeGroupMinor {
		return models.WorkerAgeInfo{Age: 15, AgeGroup: models.AgeGroupMinor, IsMinor: true}
	}
	return models.WorkerAgeInfo{Age: 18, AgeGroup: models.AgeGroupYoungAdult, IsMinor: false}
}

func groupLabel(group models.AgeGroup) string {
	if group == models.AgeGroupMinor {
		return "minors (15-17)"
	}
	return "young adults (18-20)"
}

// checkCategory enforces the age group's category allow-list.
func checkCategory(result *models.ComplianceResult, job models.JobInput, group models.AgeGroup) {
	if rules.IsCategoryAllowed(group, job.Category) {
		return
	}
	result.AddViolation(models.ViolationCategoryNotAllowed,
		fmt.Sprintf("category %q is not available to %s", job.Category, groupLabel(group)))

	allowed := rules.AllowedCategories(group)
	names := make([]string, len(allowed))
	for i, c := range allowed {
		names[i] = c.String()
	}
	result.AddSuggestion(fmt.Sprintf("Select a category from the approved list for %s: %s",
		groupLabel(group), strings.Join(names, ", ")))
}

// checkHazards enforces the deny-list independently of the allow-list.
func checkHazards(result *models.ComplianceResult, job models.JobInput, group models.AgeGroup) {
	hazards := rules.HazardousFor(group, job)
	if len(hazards) == 0 {
		return
	}
	for _, h := range hazards {
		result.AddViolation(models.ViolationHazardDisallowed,
			fmt.Sprintf("job involves a disallowed hazard for %s: %s", groupLabel(group), h))
	}
	result.AddSuggestion("Remove the hazardous conditions or restrict the listing to an older age group")
}

// checkDailyHours validates the single-job daily figure. Weekly-hour
// aggregation across a worker's jobs is a caller-enforced ceiling; see
// rules.Limits.
func checkDailyHours(result *models.ComplianceResult, job models.JobInput, limits models.HourLimits) {
	if job.DurationMinutes == nil {
		return
	}
	hours := float64(*job.DurationMinutes) / 60
	if hours <= limits.MaxDailyHours {
		return
	}
	result.AddViolation(models.ViolationExceedsDailyHours,
		fmt.Sprintf("duration of %.1f hours exceeds the daily maximum of %g hours", hours, limits.MaxDailyHours))
	result.AddSuggestion(fmt.Sprintf("Reduce the duration to at most %g hours for this age group and school context",
		limits.MaxDailyHours))
}

// checkTimeWindow validates declared start/end times against the allowed
// working window. An end before the start means an overnight span, which
// always leaves the window.
func checkTimeWindow(result *models.ComplianceResult, job models.JobInput, limits models.HourLimits) {
	earliest := limits.EarliestHour * 60
	latest := limits.LatestHour * 60

	outside := false
	if job.StartTime != nil && job.StartTime.Minutes() < earliest {
		outside = true
	}
	if job.EndTime != nil && job.EndTime.Minutes() > latest {
		outside = true
	}
	if job.StartTime != nil && job.EndTime != nil && job.EndTime.Minutes() < job.StartTime.Minutes() {
		outside = true
	}
	if !outside {
		return
	}
	result.AddViolation(models.ViolationOutsideAllowedHours,
		fmt.Sprintf("working time falls outside the allowed window of %02d:00-%02d:00",
			limits.EarliestHour, limits.LatestHour))
	result.AddSuggestion(fmt.Sprintf("Schedule the job between %02d:00 and %02d:00",
		limits.EarliestHour, limits.LatestHour))
}

// checkWage enforces the hourly wage floor. Fixed-price jobs are not hourly
// contracts, so an implied rate under the floor is a warning, not a
// violation — and only when a duration makes the rate derivable.
func checkWage(result *models.ComplianceResult, job models.JobInput, limits models.HourLimits) {
	switch job.PayType {
	case models.PayTypeHourly:
		if job.PayAmount >= limits.MinHourlyWage {
			return
		}
		result.AddViolation(models.ViolationBelowMinimumWage,
			fmt.Sprintf("hourly pay of %.2f is below the minimum wage of %.2f", job.PayAmount, limits.MinHourlyWage))
		result.AddSuggestion(fmt.Sprintf("Raise the hourly pay to at least %.2f", limits.MinHourlyWage))

	case models.PayTypeFixed:
		if job.DurationMinutes == nil || *job.DurationMinutes <= 0 {
			return
		}
		implied := job.PayAmount / (float64(*job.DurationMinutes) / 60)
		if implied >= limits.MinHourlyWage {
			return
		}
		result.AddWarning(models.WarningPossibleBelowMinimumWage,
			fmt.Sprintf("fixed pay of %.2f over %d minutes implies an hourly rate of %.2f, below the minimum wage of %.2f",
				job.PayAmount, *job.DurationMinutes, implied, limits.MinHourlyWage))
	}
}
