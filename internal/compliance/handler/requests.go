package handler

import (
	"strings"

	"workright/internal/compliance/age"
	"workright/internal/compliance/models"
	dErrors "workright/pkg/domain-errors"
)

// ValidateRequest is the HTTP request body for POST /compliance/validate.
type ValidateRequest struct {
	Title                string  `json:"title"`
	Category             string  `json:"category"`
	Description          string  `json:"description"`
	PayAmount            float64 `json:"pay_amount"`
	PayType              string  `json:"pay_type"`
	DurationMinutes      *int    `json:"duration_minutes,omitempty"`
	StartTime            string  `json:"start_time,omitempty"`
	EndTime              string  `json:"end_time,omitempty"`
	Location             string  `json:"location,omitempty"`
	IsSchoolDay          bool    `json:"is_school_day"`
	IsSchoolHoliday      bool    `json:"is_school_holiday"`
	RequiresWorkingAlone bool    `json:"requires_working_alone"`
	InvolvesPrivateHome  bool    `json:"involves_private_home"`

	// Age is optional: when present, the response's Valid flag reflects this
	// worker's bracket; when absent, Valid means at least one bracket may
	// see the listing.
	Age *int `json:"age,omitempty"`

	// Parsed values (populated by Validate)
	parsedJob    models.JobInput
	parsedWorker *models.WorkerAgeInfo
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}

	category, err := models.ParseCategory(r.Category)
	if err != nil {
		return err
	}

	payType, err := models.ParsePayType(r.PayType)
	if err != nil {
		return err
	}
	if r.PayAmount < 0 {
		return dErrors.New(dErrors.CodeValidation, "pay_amount cannot be negative")
	}

	if r.DurationMinutes != nil && *r.DurationMinutes <= 0 {
		return dErrors.New(dErrors.CodeValidation, "duration_minutes must be positive when provided")
	}

	if r.IsSchoolDay && r.IsSchoolHoliday {
		return dErrors.New(dErrors.CodeValidation, "is_school_day and is_school_holiday are mutually exclusive")
	}

	var startTime, endTime *models.TimeOfDay
	if r.StartTime != "" {
		t, err := models.ParseTimeOfDay(r.StartTime)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeValidation, "invalid start_time")
		}
		startTime = &t
	}
	if r.EndTime != "" {
		t, err := models.ParseTimeOfDay(r.EndTime)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeValidation, "invalid end_time")
		}
		endTime = &t
	}

	if r.Age != nil {
		worker, err := age.Classify(*r.Age)
		if err != nil {
			return err
		}
		r.parsedWorker = &worker
	}

	r.parsedJob = models.JobInput{
		Title:                r.Title,
		Category:             category,
		Description:          r.Description,
		PayAmount:            r.PayAmount,
		PayType:              payType,
		DurationMinutes:      r.DurationMinutes,
		StartTime:            startTime,
		EndTime:              endTime,
		Location:             r.Location,
		IsSchoolDay:          r.IsSchoolDay,
		IsSchoolHoliday:      r.IsSchoolHoliday,
		RequiresWorkingAlone: r.RequiresWorkingAlone,
		InvolvesPrivateHome:  r.InvolvesPrivateHome,
	}

	return nil
}

// ParsedJob returns the validated job input.
func (r *ValidateRequest) ParsedJob() models.JobInput {
	return r.parsedJob
}

// ParsedWorker returns the classified worker when an age was supplied.
func (r *ValidateRequest) ParsedWorker() *models.WorkerAgeInfo {
	return r.parsedWorker
}
