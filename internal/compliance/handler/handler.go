package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"workright/internal/compliance/age"
	"workright/internal/compliance/evaluator"
	"workright/internal/compliance/models"
	"workright/internal/compliance/rules"
	dErrors "workright/pkg/domain-errors"
	"workright/pkg/platform/httputil"
	"workright/pkg/requestcontext"
)

// Service defines the interface for compliance evaluation. The handler
// derives bracket eligibility from the two per-bracket results itself so each
// listing is evaluated exactly once per bracket.
type Service interface {
	ValidateJob(ctx context.Context, job models.JobInput, worker models.WorkerAgeInfo) models.ComplianceResult
}

// Handler wires compliance endpoints to the evaluator service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a compliance handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts compliance endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/compliance/validate", h.HandleValidate)
	r.Get("/compliance/rules", h.HandleRules)
}

// HandleValidate handles POST /compliance/validate requests.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	job := req.ParsedJob()
	minorResult := h.service.ValidateJob(ctx, job, evaluator.RepresentativeWorker(models.AgeGroupMinor))
	adultResult := h.service.ValidateJob(ctx, job, evaluator.RepresentativeWorker(models.AgeGroupYoungAdult))

	eligible := []models.AgeGroup{}
	if minorResult.Compliant {
		eligible = append(eligible, models.AgeGroupMinor)
	}
	if adultResult.Compliant {
		eligible = append(eligible, models.AgeGroupYoungAdult)
	}

	valid := len(eligible) > 0
	if worker := req.ParsedWorker(); worker != nil {
		if worker.IsMinor {
			valid = minorResult.Compliant
		} else {
			valid = adultResult.Compliant
		}
	}

	h.logger.InfoContext(ctx, "listing validated",
		"request_id", requestID,
		"category", job.Category,
		"valid", valid,
		"eligible_age_groups", len(eligible),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, &ValidateResponse{
		Valid:                 valid,
		EligibleAgeGroups:     eligible,
		ResultsForMinors:      minorResult,
		ResultsForYoungAdults: adultResult,
		Summary:               buildSummary(eligible),
	})
}

// HandleRules handles GET /compliance/rules requests.
func (h *Handler) HandleRules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	rawAge := r.URL.Query().Get("age")
	workerAge, err := strconv.Atoi(rawAge)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "age query parameter is required and must be an integer"))
		return
	}

	schoolDay := r.URL.Query().Get("school_day") == "true"
	schoolHoliday := r.URL.Query().Get("school_holiday") == "true"
	if schoolDay && schoolHoliday {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "school_day and school_holiday are mutually exclusive"))
		return
	}

	worker, err := age.Classify(workerAge)
	if err != nil {
		h.logger.WarnContext(ctx, "rules lookup rejected",
			"request_id", requestID,
			"age", workerAge,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	limits := rules.Limits(worker.AgeGroup, schoolDay, schoolHoliday)

	httputil.WriteJSON(w, http.StatusOK, &RulesResponse{
		AgeGroup:            worker.AgeGroup,
		AllowedCategories:   rules.AllowedCategories(worker.AgeGroup),
		MaxDailyHours:       limits.MaxDailyHours,
		MaxWeeklyHours:      limits.MaxWeeklyHours,
		WorkingHours:        formatWorkingHours(limits),
		MinHourlyWage:       limits.MinHourlyWage,
		RestBetweenShifts:   limits.RestHoursBetweenShifts,
		Restrictions:        rules.Restrictions(worker.AgeGroup),
		SchoolTermLimits:    rules.SchoolTermLimits(worker.AgeGroup),
		SchoolHolidayLimits: rules.SchoolHolidayLimits(worker.AgeGroup),
	})
}
