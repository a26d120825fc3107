package rules

import "workright/internal/compliance/models"

// Unsupervised private-home work is denied for minors when it can touch the
// 22:00-06:00 window.
const (
	nightWindowStartMinute = 22 * 60
	nightWindowEndMinute   = 6 * 60
)

// minorAllowedCategories is the explicit allow-list of low-risk categories
// open to 15-17 year olds. Order is stable for deterministic output.
var minorAllowedCategories = []models.Category{
	models.CategoryBabysitting,
	models.CategoryDogWalking,
	models.CategoryCleaning,
	models.CategoryTutoring,
	models.CategoryErrands,
	models.CategoryTechHelp,
}

// youngAdultAllowedCategories is a superset of the minor list.
var youngAdultAllowedCategories = append(append([]models.Category{}, minorAllowedCategories...),
	models.CategoryGardening,
	models.CategoryMovingHelp,
	models.CategoryRetailAssist,
	models.CategoryEventStaff,
	models.CategoryDelivery,
)

// Deny-lists are evaluated independently of the allow-lists: a nominally
// allowed category is still rejected when a hazard condition matches.
var (
	minorDeniedCategories = map[models.Category]string{
		models.CategoryHeavyMachinery:     "operating heavy machinery",
		models.CategoryConstruction:       "construction and demolition work",
		models.CategoryHazardousChemicals: "handling hazardous chemicals",
		models.CategoryAlcoholVenue:       "work in alcohol-licensed venues",
		models.CategoryPassengerTransport: "transporting people",
	}

	youngAdultDeniedCategories = map[models.Category]string{
		models.CategoryHeavyMachinery:     "operating heavy machinery without supervision",
		models.CategoryHazardousChemicals: "handling hazardous chemicals without certification",
	}
)

var (
	minorAllowedSet      = toSet(minorAllowedCategories)
	youngAdultAllowedSet = toSet(youngAdultAllowedCategories)
)

func toSet(list []models.Category) map[models.Category]struct{} {
	set := make(map[models.Category]struct{}, len(list))
	for _, c := range list {
		set[c] = struct{}{}
	}
	return set
}

// AllowedCategories returns the category allow-list for an age group in
// stable order.
func AllowedCategories(group models.AgeGroup) []models.Category {
	if group == models.AgeGroupMinor {
		return minorAllowedCategories
	}
	return youngAdultAllowedCategories
}

// IsCategoryAllowed reports whether a category is on the age group's
// allow-list. The deny-list is a separate check; see HazardousFor.
func IsCategoryAllowed(group models.AgeGroup, cat models.Category) bool {
	set := youngAdultAllowedSet
	if group == models.AgeGroupMinor {
		set = minorAllowedSet
	}
	_, ok := set[cat]
	return ok
}

// HazardousFor evaluates the age group's deny-list against a job and returns
// the human-readable description of every matched hazard. Empty means no
// hazard applies.
//
// For minors, unsupervised private-home work is hazardous when the declared
// working time overlaps 22:00-06:00 — or when no time is declared, since the
// engine then cannot prove the job avoids the night window.
func HazardousFor(group models.AgeGroup, job models.JobInput) []string {
	var hazards []string

	denied := youngAdultDeniedCategories
	if group == models.AgeGroupMinor {
		denied = minorDeniedCategories
	}
	if desc, ok := denied[job.Category]; ok {
		hazards = append(hazards, desc)
	}

	if group == models.AgeGroupMinor && job.RequiresWorkingAlone && job.InvolvesPrivateHome {
		if overlapsNightWindow(job.StartTime, job.EndTime) {
			hazards = append(hazards, "unsupervised work alone in a private home between 22:00 and 06:00")
		}
	}

	return hazards
}

// overlapsNightWindow reports whether a [start, end] span can touch the
// 22:00-06:00 window. Unknown or inverted (overnight) spans count as
// overlapping.
func overlapsNightWindow(start, end *models.TimeOfDay) bool {
	if start == nil || end == nil {
		return true
	}
	if end.Minutes() < start.Minutes() {
		return true // crosses midnight
	}
	return start.Minutes() < nightWindowEndMinute || end.Minutes() > nightWindowStartMinute
}

// Restrictions returns the human-readable hazard descriptions that apply to
// an age group, in stable order, for rule dumps and client UIs.
func Restrictions(group models.AgeGroup) []string {
	if group == models.AgeGroupMinor {
		return []string{
			"no operating heavy machinery",
			"no construction or demolition work",
			"no handling of hazardous chemicals",
			"no work in alcohol-licensed venues",
			"no transporting of people",
			"no work carrying personal legal liability",
			"no unsupervised work alone in a private home between 22:00 and 06:00",
		}
	}
	return []string{
		"no operating heavy machinery without supervision",
		"no handling of hazardous chemicals without certification",
	}
}
