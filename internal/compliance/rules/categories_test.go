package rules_test

import (
	"testing"

	"workright/internal/compliance/models"
	"workright/internal/compliance/rules"
)

func timeOfDay(t *testing.T, s string) *models.TimeOfDay {
	t.Helper()
	tod, err := models.ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q): %v", s, err)
	}
	return &tod
}

// ── AllowedCategories ──────────────────────────────────────────────────────

func TestAllowedCategories_YoungAdultIsSuperset(t *testing.T) {
	adult := make(map[models.Category]struct{})
	for _, c := range rules.AllowedCategories(models.AgeGroupYoungAdult) {
		adult[c] = struct{}{}
	}
	for _, c := range rules.AllowedCategories(models.AgeGroupMinor) {
		if _, ok := adult[c]; !ok {
			t.Errorf("minor category %s missing from young adult allow-list", c)
		}
	}
	if len(adult) <= len(rules.AllowedCategories(models.AgeGroupMinor)) {
		t.Error("young adult allow-list should be strictly larger than the minor list")
	}
}

func TestIsCategoryAllowed(t *testing.T) {
	cases := []struct {
		group models.AgeGroup
		cat   models.Category
		want  bool
	}{
		{models.AgeGroupMinor, models.CategoryBabysitting, true},
		{models.AgeGroupMinor, models.CategoryDogWalking, true},
		{models.AgeGroupMinor, models.CategoryConstruction, false},
		{models.AgeGroupMinor, models.CategoryDelivery, false},
		{models.AgeGroupYoungAdult, models.CategoryDelivery, true},
		{models.AgeGroupYoungAdult, models.CategoryConstruction, false},
		{models.AgeGroupYoungAdult, models.CategoryHeavyMachinery, false},
	}
	for _, c := range cases {
		if got := rules.IsCategoryAllowed(c.group, c.cat); got != c.want {
			t.Errorf("IsCategoryAllowed(%s, %s) = %v, want %v", c.group, c.cat, got, c.want)
		}
	}
}

// ── HazardousFor ───────────────────────────────────────────────────────────

func TestHazardousFor_DeniedCategories(t *testing.T) {
	job := models.JobInput{Category: models.CategoryConstruction}
	if got := rules.HazardousFor(models.AgeGroupMinor, job); len(got) == 0 {
		t.Error("construction should be hazardous for minors")
	}
	// Construction is off the young adult allow-list but not on its deny-list.
	if got := rules.HazardousFor(models.AgeGroupYoungAdult, job); len(got) != 0 {
		t.Errorf("construction should not be deny-listed for young adults, got %v", got)
	}

	machinery := models.JobInput{Category: models.CategoryHeavyMachinery}
	if got := rules.HazardousFor(models.AgeGroupYoungAdult, machinery); len(got) == 0 {
		t.Error("heavy machinery should be hazardous for young adults too")
	}
}

func TestHazardousFor_PrivateHomeNightWork(t *testing.T) {
	base := models.JobInput{
		Category:             models.CategoryBabysitting,
		RequiresWorkingAlone: true,
		InvolvesPrivateHome:  true,
	}

	t.Run("daytime span is fine for minors", func(t *testing.T) {
		job := base
		job.StartTime = timeOfDay(t, "09:00")
		job.EndTime = timeOfDay(t, "12:00")
		if got := rules.HazardousFor(models.AgeGroupMinor, job); len(got) != 0 {
			t.Errorf("daytime private-home work flagged hazardous: %v", got)
		}
	})

	t.Run("evening span into the night window is hazardous", func(t *testing.T) {
		job := base
		job.StartTime = timeOfDay(t, "19:00")
		job.EndTime = timeOfDay(t, "23:00")
		if got := rules.HazardousFor(models.AgeGroupMinor, job); len(got) == 0 {
			t.Error("19:00-23:00 private-home work should be hazardous for minors")
		}
	})

	t.Run("overnight span is hazardous", func(t *testing.T) {
		job := base
		job.StartTime = timeOfDay(t, "21:00")
		job.EndTime = timeOfDay(t, "02:00")
		if got := rules.HazardousFor(models.AgeGroupMinor, job); len(got) == 0 {
			t.Error("overnight private-home work should be hazardous for minors")
		}
	})

	t.Run("undeclared times are treated as hazardous", func(t *testing.T) {
		if got := rules.HazardousFor(models.AgeGroupMinor, base); len(got) == 0 {
			t.Error("private-home work with no declared times should be hazardous for minors")
		}
	})

	t.Run("combination is not hazardous for young adults", func(t *testing.T) {
		if got := rules.HazardousFor(models.AgeGroupYoungAdult, base); len(got) != 0 {
			t.Errorf("private-home night rule should not apply to young adults, got %v", got)
		}
	})

	t.Run("alone without private home is fine", func(t *testing.T) {
		job := base
		job.InvolvesPrivateHome = false
		if got := rules.HazardousFor(models.AgeGroupMinor, job); len(got) != 0 {
			t.Errorf("working alone outside a private home flagged hazardous: %v", got)
		}
	})
}

// ── Restrictions ───────────────────────────────────────────────────────────

func TestRestrictions(t *testing.T) {
	minor := rules.Restrictions(models.AgeGroupMinor)
	adult := rules.Restrictions(models.AgeGroupYoungAdult)
	if len(minor) <= len(adult) {
		t.Errorf("minor restriction list (%d) should be longer than young adult list (%d)",
			len(minor), len(adult))
	}
	for _, list := range [][]string{minor, adult} {
		for _, r := range list {
			if r == "" {
				t.Error("restriction descriptions must be non-empty")
			}
		}
	}
}
