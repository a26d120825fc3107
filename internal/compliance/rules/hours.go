// Package rules holds the versioned youth-labor rule tables: wage-and-hours
// limits and category eligibility per age group.
//
// The tables are process-wide constant data, loaded at init and immutable for
// the process lifetime. If they are ever made reloadable, a reload must swap
// whole table values atomically so concurrent evaluators never observe a
// half-updated table.
package rules

import "workright/internal/compliance/models"

// Minimum hourly wage floors. Single source of truth for both the evaluator
// and the /compliance/rules dump.
const (
	MinorMinimumHourlyWage      = 129.69
	YoungAdultMinimumHourlyWage = 134.10
)

// Hour limit rows per age group and school context.
var (
	minorSchoolDayLimits = models.HourLimits{
		MaxDailyHours:          2,
		MaxWeeklyHours:         12,
		EarliestHour:           6,
		LatestHour:             20,
		MinHourlyWage:          MinorMinimumHourlyWage,
		RestHoursBetweenShifts: 14,
	}

	minorSchoolHolidayLimits = models.HourLimits{
		MaxDailyHours:          7,
		MaxWeeklyHours:         35,
		EarliestHour:           6,
		LatestHour:             20,
		MinHourlyWage:          MinorMinimumHourlyWage,
		RestHoursBetweenShifts: 14,
	}

	youngAdultLimits = models.HourLimits{
		MaxDailyHours:          8,
		MaxWeeklyHours:         40,
		EarliestHour:           6,
		LatestHour:             23,
		MinHourlyWage:          YoungAdultMinimumHourlyWage,
		RestHoursBetweenShifts: 11,
	}
)

// Limits resolves the wage-and-hours row for an age group and school context.
//
// The two school flags are mutually exclusive; the boundary rejects requests
// with both set before this table is consulted. When neither is set, minors
// get the school-holiday row — the documented default for "non-school,
// non-holiday" days. Young adults have no school-context distinction.
//
// MaxWeeklyHours is informational here: weekly aggregation across a worker's
// jobs requires state the engine does not own and stays a caller-enforced
// ceiling.
func Limits(group models.AgeGroup, schoolDay, schoolHoliday bool) models.HourLimits {
	if group != models.AgeGroupMinor {
		return youngAdultLimits
	}
	if schoolDay {
		return minorSchoolDayLimits
	}
	return minorSchoolHolidayLimits
}

// SchoolTermLimits returns the school-day row for an age group, for rule
// dumps that show both contexts side by side.
func SchoolTermLimits(group models.AgeGroup) models.HourLimits {
	return Limits(group, true, false)
}

// SchoolHolidayLimits returns the school-holiday row for an age group.
func SchoolHolidayLimits(group models.AgeGroup) models.HourLimits {
	return Limits(group, false, true)
}
