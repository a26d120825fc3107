// Package age classifies workers into youth-program age groups.
//
// The platform-wide valid range is 15-20 inclusive. Ages outside it are a
// caller error: below 15 the worker may not use the platform at all, above 20
// the worker is outside the youth program. Neither case is ever silently
// clamped or reclassified.
package age

import (
	"time"

	"workright/internal/compliance/models"
	dErrors "workright/pkg/domain-errors"
)

const (
	// MinAge is the platform-wide minimum working age.
	MinAge = 15
	// MaxAge is the top of the youth program range.
	MaxAge = 20
	// adultAge is the boundary between the minor and young-adult brackets.
	adultAge = 18
)

// Classify derives a WorkerAgeInfo from a raw age in whole years.
func Classify(workerAge int) (models.WorkerAgeInfo, error) {
	if workerAge < MinAge || workerAge > MaxAge {
		return models.WorkerAgeInfo{}, dErrors.Newf(dErrors.CodeOutOfRange,
			"age must be between %d and %d, got %d", MinAge, MaxAge, workerAge)
	}

	group := models.AgeGroupYoungAdult
	if workerAge < adultAge {
		group = models.AgeGroupMinor
	}

	return models.WorkerAgeInfo{
		Age:      workerAge,
		AgeGroup: group,
		IsMinor:  workerAge < adultAge,
	}, nil
}

// ClassifyBirthDate computes whole years elapsed between birthDate and now,
// with a month/day correction (one year is subtracted when now's month/day
// precedes the birth month/day), then classifies the result.
func ClassifyBirthDate(birthDate, now time.Time) (models.WorkerAgeInfo, error) {
	years := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		years--
	}
	return Classify(years)
}
