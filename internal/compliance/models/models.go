// Package models defines the value objects exchanged with the compliance
// engine. Everything here is plain data: no identity, no lifecycle, nothing
// persisted.
package models

import (
	"fmt"
	"strconv"
	"strings"

	dErrors "workright/pkg/domain-errors"
)

// AgeGroup buckets workers into the two youth-program brackets.
type AgeGroup string

const (
	// AgeGroupMinor covers workers aged 15-17, subject to the strict rule set.
	AgeGroupMinor AgeGroup = "MINOR_15_17"
	// AgeGroupYoungAdult covers workers aged 18-20, subject to the relaxed set.
	AgeGroupYoungAdult AgeGroup = "YOUNG_ADULT_18_20"
)

// IsValid checks if the age group is one of the supported enum values.
func (g AgeGroup) IsValid() bool {
	return g == AgeGroupMinor || g == AgeGroupYoungAdult
}

// String returns the string representation.
func (g AgeGroup) String() string {
	return string(g)
}

// AllAgeGroups returns the age groups in evaluation order. The order is fixed
// so per-bracket evaluation output stays deterministic.
func AllAgeGroups() []AgeGroup {
	return []AgeGroup{AgeGroupMinor, AgeGroupYoungAdult}
}

// WorkerAgeInfo is the classified age of one worker. Derived once per request
// from a birth date or raw age; immutable afterwards.
type WorkerAgeInfo struct {
	Age      int      `json:"age"`
	AgeGroup AgeGroup `json:"age_group"`
	IsMinor  bool     `json:"is_minor"`
}

// Category enumerates the job categories a listing can declare.
type Category string

const (
	// Low-risk categories open to minors.
	CategoryBabysitting Category = "babysitting"
	CategoryDogWalking  Category = "dog_walking"
	CategoryCleaning    Category = "cleaning"
	CategoryTutoring    Category = "tutoring"
	CategoryErrands     Category = "errands"
	CategoryTechHelp    Category = "tech_help"

	// Categories that unlock at 18.
	CategoryGardening    Category = "gardening"
	CategoryMovingHelp   Category = "moving_help"
	CategoryRetailAssist Category = "retail_assist"
	CategoryEventStaff   Category = "event_staff"
	CategoryDelivery     Category = "delivery"

	// Hazard-class categories. Listings can declare them but they are denied
	// outright for some or all age groups.
	CategoryConstruction       Category = "construction"
	CategoryHeavyMachinery     Category = "heavy_machinery"
	CategoryHazardousChemicals Category = "hazardous_chemicals"
	CategoryAlcoholVenue       Category = "alcohol_venue"
	CategoryPassengerTransport Category = "passenger_transport"
)

var allCategories = []Category{
	CategoryBabysitting,
	CategoryDogWalking,
	CategoryCleaning,
	CategoryTutoring,
	CategoryErrands,
	CategoryTechHelp,
	CategoryGardening,
	CategoryMovingHelp,
	CategoryRetailAssist,
	CategoryEventStaff,
	CategoryDelivery,
	CategoryConstruction,
	CategoryHeavyMachinery,
	CategoryHazardousChemicals,
	CategoryAlcoholVenue,
	CategoryPassengerTransport,
}

var knownCategories = func() map[Category]struct{} {
	set := make(map[Category]struct{}, len(allCategories))
	for _, c := range allCategories {
		set[c] = struct{}{}
	}
	return set
}()

// AllCategories returns every known category in declaration order.
func AllCategories() []Category {
	return allCategories
}

// ParseCategory creates a Category from a string, validating it.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeValidation, "category is required")
	}
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", dErrors.Newf(dErrors.CodeValidation, "unknown job category %q", s)
	}
	return c, nil
}

// IsValid checks if the category is one of the supported enum values.
func (c Category) IsValid() bool {
	_, ok := knownCategories[c]
	return ok
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// PayType distinguishes fixed-price listings from hourly ones.
type PayType string

const (
	PayTypeFixed  PayType = "FIXED"
	PayTypeHourly PayType = "HOURLY"
)

// ParsePayType creates a PayType from a string, validating it.
func ParsePayType(s string) (PayType, error) {
	t := PayType(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case PayTypeFixed, PayTypeHourly:
		return t, nil
	}
	return "", dErrors.Newf(dErrors.CodeValidation, "pay type must be FIXED or HOURLY, got %q", s)
}

// IsValid checks if the pay type is one of the supported enum values.
func (t PayType) IsValid() bool {
	return t == PayTypeFixed || t == PayTypeHourly
}

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses an "HH:MM" string into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, dErrors.Newf(dErrors.CodeValidation, "time must be in HH:MM format, got %q", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, dErrors.Newf(dErrors.CodeValidation, "time must have an hour between 00 and 23, got %q", s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, dErrors.Newf(dErrors.CodeValidation, "time must have a minute between 00 and 59, got %q", s)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// String returns the "HH:MM" representation.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// JobInput is one proposed listing as submitted for evaluation. A value
// object: supplied fresh on every call, never stored by the engine.
type JobInput struct {
	Title                string
	Category             Category
	Description          string
	PayAmount            float64
	PayType              PayType
	DurationMinutes      *int
	StartTime            *TimeOfDay
	EndTime              *TimeOfDay
	Location             string
	IsSchoolDay          bool
	IsSchoolHoliday      bool
	RequiresWorkingAlone bool
	InvolvesPrivateHome  bool
}

// HourLimits is the resolved wage-and-hours row for one age group and school
// context. MaxWeeklyHours is exposed for callers that aggregate across jobs;
// the evaluator itself only enforces the daily figure.
type HourLimits struct {
	MaxDailyHours          float64 `json:"max_daily_hours"`
	MaxWeeklyHours         float64 `json:"max_weekly_hours"`
	EarliestHour           int     `json:"earliest_hour"`
	LatestHour             int     `json:"latest_hour"`
	MinHourlyWage          float64 `json:"min_hourly_wage"`
	RestHoursBetweenShifts int     `json:"rest_hours_between_shifts"`
}
