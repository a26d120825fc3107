package handler

import (
	"fmt"

	"workright/internal/compliance/models"
)

// ValidateResponse is the HTTP response for POST /compliance/validate.
type ValidateResponse struct {
	Valid                 bool                    `json:"valid"`
	EligibleAgeGroups     []models.AgeGroup       `json:"eligible_age_groups"`
	ResultsForMinors      models.ComplianceResult `json:"results_for_minors"`
	ResultsForYoungAdults models.ComplianceResult `json:"results_for_young_adults"`
	Summary               string                  `json:"summary"`
}

// RulesResponse is the HTTP response for GET /compliance/rules: a read-only
// dump of the rule tables resolved for the requested age and school context.
type RulesResponse struct {
	AgeGroup            models.AgeGroup   `json:"age_group"`
	AllowedCategories   []models.Category `json:"allowed_categories"`
	MaxDailyHours       float64           `json:"max_daily_hours"`
	MaxWeeklyHours      float64           `json:"max_weekly_hours"`
	WorkingHours        string            `json:"working_hours"`
	MinHourlyWage       float64           `json:"min_hourly_wage"`
	RestBetweenShifts   int               `json:"rest_between_shifts"`
	Restrictions        []string          `json:"restrictions"`
	SchoolTermLimits    models.HourLimits `json:"school_term_limits"`
	SchoolHolidayLimits models.HourLimits `json:"school_holiday_limits"`
}

// buildSummary renders the one-line outcome shown in posting UIs.
func buildSummary(eligible []models.AgeGroup) string {
	switch len(eligible) {
	case 0:
		return "This listing is not compliant for any youth age group."
	case 1:
		if eligible[0] == models.AgeGroupMinor {
			return "This listing may be shown to minors (15-17) only."
		}
		return "This listing may be shown to young adults (18-20) only."
	default:
		return "This listing may be shown to all workers aged 15-20."
	}
}

// formatWorkingHours renders the window as "06:00-20:00".
func formatWorkingHours(limits models.HourLimits) string {
	return fmt.Sprintf("%02d:00-%02d:00", limits.EarliestHour, limits.LatestHour)
}
