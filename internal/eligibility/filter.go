// Package eligibility translates the rule tables into declarative query
// predicates for listing/search components: which jobs a worker may see now,
// and which unlock at the next age threshold.
//
// Like the evaluator, everything here is pure and stateless. The Filter is
// predicate data for an external query layer; it never touches storage.
package eligibility

import (
	"fmt"

	"workright/internal/compliance/age"
	"workright/internal/compliance/models"
	"workright/internal/compliance/rules"
)

// unlockThresholds is the fixed ascending list of ages at which additional
// listings become visible.
var unlockThresholds = []int{16, 18, 20}

// Filter is an opaque predicate an external query layer translates into a
// storage filter. Exactly one of MinimumAgeLTE / MinimumAgeExactly is set.
type Filter struct {
	// MinimumAgeLTE selects jobs whose declared minimum age is at most the
	// worker's age (current eligibility).
	MinimumAgeLTE *int `json:"minimum_age_lte,omitempty"`

	// MinimumAgeExactly selects jobs whose declared minimum age equals the
	// next unlock threshold (preview mode).
	MinimumAgeExactly *int `json:"minimum_age_exactly,omitempty"`

	// ExcludedCategories lists categories the worker's bracket may never
	// see regardless of a job's declared minimum age.
	ExcludedCategories []models.Category `json:"excluded_categories"`
}

// BuildFilter returns the eligibility predicate for a worker's current age,
// or, when forNextThreshold is set, for the jobs unlocking at the next age
// threshold. Ages outside the supported range fail exactly like the age
// classifier; the filter never silently clamps.
func BuildFilter(workerAge int, forNextThreshold bool) (Filter, error) {
	info, err := age.Classify(workerAge)
	if err != nil {
		return Filter{}, err
	}

	filter := Filter{
		ExcludedCategories: excludedCategories(info.AgeGroup),
	}

	if forNextThreshold {
		next := NextAgeUnlock(workerAge)
		if next == nil {
			// Top of range: nothing left to unlock, match no jobs.
			none := -1
			filter.MinimumAgeExactly = &none
			return filter, nil
		}
		filter.MinimumAgeExactly = next
		return filter, nil
	}

	current := workerAge
	filter.MinimumAgeLTE = &current
	return filter, nil
}

// NextAgeUnlock returns the smallest unlock threshold strictly greater than
// the given age, or nil when the worker is at or above the top threshold.
func NextAgeUnlock(workerAge int) *int {
	for _, threshold := range unlockThresholds {
		if threshold > workerAge {
			t := threshold
			return &t
		}
	}
	return nil
}

// UnlockMessage formats the human-readable "unlocks at age N" message for a
// job's minimum age. Pure formatting, no business logic.
func UnlockMessage(minimumAge, currentAge int) string {
	years := minimumAge - currentAge
	switch {
	case years <= 0:
		return "This job is already available to you."
	case years == 1:
		return fmt.Sprintf("This job unlocks at age %d — one year to go.", minimumAge)
	default:
		return fmt.Sprintf("This job unlocks at age %d — %d years to go.", minimumAge, years)
	}
}

// excludedCategories lists the known categories outside the bracket's
// allow-list, in the models' declaration order for deterministic output.
func excludedCategories(group models.AgeGroup) []models.Category {
	excluded := []models.Category{}
	for _, c := range models.AllCategories() {
		if !rules.IsCategoryAllowed(group, c) {
			excluded = append(excluded, c)
		}
	}
	return excluded
}
