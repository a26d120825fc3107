package evaluator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"workright/internal/compliance/age"
	"workright/internal/compliance/models"
)

// =============================================================================
// Evaluator Service Test Suite
// =============================================================================
// Justification for unit tests: the evaluator is the legally-consequential
// core of the platform. Its ordering, determinism, and the
// compliant==no-violations invariant must hold for every input shape, which
// is far easier to pin down here than through the HTTP layer.

type EvaluatorSuite struct {
	suite.Suite
	service *Service
	ctx     context.Context
}

func TestEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(EvaluatorSuite))
}

func (s *EvaluatorSuite) SetupTest() {
	s.service = New()
	s.ctx = context.Background()
}

func (s *EvaluatorSuite) worker(workerAge int) models.WorkerAgeInfo {
	info, err := age.Classify(workerAge)
	s.Require().NoError(err)
	return info
}

func (s *EvaluatorSuite) timeOfDay(v string) *models.TimeOfDay {
	tod, err := models.ParseTimeOfDay(v)
	s.Require().NoError(err)
	return &tod
}

func intPtr(v int) *int { return &v }

// =============================================================================
// Scenario Tests
// =============================================================================

func (s *EvaluatorSuite) TestBabysittingFixedPayForMinorOnSchoolDay() {
	job := models.JobInput{
		Title:           "Babysit two kids",
		Category:        models.CategoryBabysitting,
		PayAmount:       300,
		PayType:         models.PayTypeFixed,
		DurationMinutes: intPtr(90),
		StartTime:       s.timeOfDay("16:00"),
		EndTime:         s.timeOfDay("17:30"),
		IsSchoolDay:     true,
	}

	result := s.service.ValidateJob(s.ctx, job, s.worker(16))

	s.True(result.Compliant)
	s.Empty(result.Violations)
}

func (s *EvaluatorSuite) TestConstructionHelperForMinor() {
	job := models.JobInput{
		Title:       "Construction helper",
		Category:    models.CategoryConstruction,
		PayAmount:   200,
		PayType:     models.PayTypeHourly,
		IsSchoolDay: true,
	}

	result := s.service.ValidateJob(s.ctx, job, s.worker(16))

	s.False(result.Compliant)
	s.True(result.HasViolation(models.ViolationCategoryNotAllowed))
	s.True(result.HasViolation(models.ViolationHazardDisallowed))
}

func (s *EvaluatorSuite) TestHourlyPayBelowYouthMinimumWage() {
	job := models.JobInput{
		Title:           "Tutoring",
		Category:        models.CategoryTutoring,
		PayAmount:       50,
		PayType:         models.PayTypeHourly,
		IsSchoolHoliday: true,
	}

	result := s.service.ValidateJob(s.ctx, job, s.worker(17))

	s.False(result.Compliant)
	s.True(result.HasViolation(models.ViolationBelowMinimumWage))
}

func (s *EvaluatorSuite) TestDogWalkingThreeHoursOnSchoolDay() {
	job := models.JobInput{
		Title:           "Walk our dogs",
		Category:        models.CategoryDogWalking,
		PayAmount:       150,
		PayType:         models.PayTypeHourly,
		DurationMinutes: intPtr(180),
		IsSchoolDay:     true,
	}

	result := s.service.ValidateJob(s.ctx, job, s.worker(16))

	s.False(result.Compliant)
	s.True(result.HasViolation(models.ViolationExceedsDailyHours))
	s.Require().NotEmpty(result.Suggestions)
	s.Contains(result.Suggestions[0], "at most 2 hours")
}

func (s *EvaluatorSuite) TestSameDogWalkingJobForYoungAdult() {
	job := models.JobInput{
		Title:           "Walk our dogs",
		Category:        models.CategoryDogWalking,
		PayAmount:       150,
		PayType:         models.PayTypeHourly,
		DurationMinutes: intPtr(180),
		IsSchoolDay:     true,
	}

	result := s.service.ValidateJob(s.ctx, job, s.worker(19))

	s.True(result.Compliant)
	s.Empty(result.Violations)
}

// =============================================================================
// Step Coverage
// =============================================================================

func (s *EvaluatorSuite) TestTimeWindowViolations() {
	s.Run("start before earliest hour", func() {
		job := models.JobInput{
			Category:    models.CategoryErrands,
			PayAmount:   150,
			PayType:     models.PayTypeHourly,
			StartTime:   s.timeOfDay("05:00"),
			EndTime:     s.timeOfDay("07:00"),
			IsSchoolDay: true,
		}
		result := s.service.ValidateJob(s.ctx, job, s.worker(16))
		s.True(result.HasViolation(models.ViolationOutsideAllowedHours))
	})

	s.Run("end after latest hour for a minor but fine for a young adult", func() {
		job := models.JobInput{
			Category:  models.CategoryCleaning,
			PayAmount: 150,
			PayType:   models.PayTypeHourly,
			StartTime: s.timeOfDay("19:00"),
			EndTime:   s.timeOfDay("21:00"),
		}
		minor := s.service.ValidateJob(s.ctx, job, s.worker(17))
		s.True(minor.HasViolation(models.ViolationOutsideAllowedHours))

		adult := s.service.ValidateJob(s.ctx, job, s.worker(18))
		s.False(adult.HasViolation(models.ViolationOutsideAllowedHours))
	})

	s.Run("overnight span is always outside the window", func() {
		job := models.JobInput{
			Category:  models.CategoryCleaning,
			PayAmount: 150,
			PayType:   models.PayTypeHourly,
			StartTime: s.timeOfDay("22:00"),
			EndTime:   s.timeOfDay("04:00"),
		}
		result := s.service.ValidateJob(s.ctx, job, s.worker(19))
		s.True(result.HasViolation(models.ViolationOutsideAllowedHours))
	})
}

func (s *EvaluatorSuite) TestFixedPayImpliedWage() {
	s.Run("low implied rate is a warning not a violation", func() {
		job := models.JobInput{
			Category:        models.CategoryErrands,
			PayAmount:       50,
			PayType:         models.PayTypeFixed,
			DurationMinutes: intPtr(120),
			IsSchoolHoliday: true,
		}
		result := s.service.ValidateJob(s.ctx, job, s.worker(16))
		s.True(result.Compliant)
		s.False(result.HasViolation(models.ViolationBelowMinimumWage))
		s.True(result.HasWarning(models.WarningPossibleBelowMinimumWage))
	})

	s.Run("fixed pay without duration raises nothing", func() {
		job := models.JobInput{
			Category:        models.CategoryErrands,
			PayAmount:       50,
			PayType:         models.PayTypeFixed,
			IsSchoolHoliday: true,
		}
		result := s.service.ValidateJob(s.ctx, job, s.worker(16))
		s.True(result.Compliant)
		s.False(result.HasWarning(models.WarningPossibleBelowMinimumWage))
	})
}

func (s *EvaluatorSuite) TestSchoolContextUnsetWarning() {
	job := models.JobInput{
		Category:  models.CategoryTutoring,
		PayAmount: 150,
		PayType:   models.PayTypeHourly,
	}

	minor := s.service.ValidateJob(s.ctx, job, s.worker(16))
	s.True(minor.Compliant)
	s.True(minor.HasWarning(models.WarningSchoolContextUnset))

	adult := s.service.ValidateJob(s.ctx, job, s.worker(19))
	s.False(adult.HasWarning(models.WarningSchoolContextUnset))
}

func (s *EvaluatorSuite) TestAllProblemsSurfacedInOneCall() {
	job := models.JobInput{
		Category:        models.CategoryConstruction,
		PayAmount:       40,
		PayType:         models.PayTypeHourly,
		DurationMinutes: intPtr(600),
		StartTime:       s.timeOfDay("05:00"),
		EndTime:         s.timeOfDay("23:30"),
		IsSchoolDay:     true,
	}

	result := s.service.ValidateJob(s.ctx, job, s.worker(15))

	s.False(result.Compliant)
	s.True(result.HasViolation(models.ViolationCategoryNotAllowed))
	s.True(result.HasViolation(models.ViolationHazardDisallowed))
	s.True(result.HasViolation(models.ViolationExceedsDailyHours))
	s.True(result.HasViolation(models.ViolationOutsideAllowedHours))
	s.True(result.HasViolation(models.ViolationBelowMinimumWage))
}

// =============================================================================
// Properties (Determinism, Idempotence, Invariant)
// =============================================================================

func (s *EvaluatorSuite) TestDeterminism() {
	job := models.JobInput{
		Category:        models.CategoryDogWalking,
		PayAmount:       150,
		PayType:         models.PayTypeHourly,
		DurationMinutes: intPtr(180),
		IsSchoolDay:     true,
	}
	worker := s.worker(16)

	first := s.service.ValidateJob(s.ctx, job, worker)
	second := s.service.ValidateJob(s.ctx, job, worker)
	s.Equal(first, second)
}

func (s *EvaluatorSuite) TestIdempotenceOfCompliantResult() {
	job := models.JobInput{
		Category:        models.CategoryBabysitting,
		PayAmount:       300,
		PayType:         models.PayTypeFixed,
		DurationMinutes: intPtr(90),
		IsSchoolDay:     true,
	}
	worker := s.worker(16)

	for i := 0; i < 3; i++ {
		result := s.service.ValidateJob(s.ctx, job, worker)
		s.Empty(result.Violations, "call %d leaked state", i)
		s.True(result.Compliant)
	}
}

func (s *EvaluatorSuite) TestCompliantIffNoViolations() {
	jobs := []models.JobInput{
		{Category: models.CategoryBabysitting, PayAmount: 300, PayType: models.PayTypeFixed, IsSchoolDay: true},
		{Category: models.CategoryConstruction, PayAmount: 40, PayType: models.PayTypeHourly, IsSchoolDay: true},
		{Category: models.CategoryDogWalking, PayAmount: 150, PayType: models.PayTypeHourly, DurationMinutes: intPtr(180), IsSchoolDay: true},
		{Category: models.CategoryTutoring, PayAmount: 150, PayType: models.PayTypeHourly},
	}
	for _, job := range jobs {
		for _, workerAge := range []int{15, 16, 17, 18, 19, 20} {
			result := s.service.ValidateJob(s.ctx, job, s.worker(workerAge))
			s.Equal(len(result.Violations) == 0, result.Compliant,
				"category=%s age=%d", job.Category, workerAge)
		}
	}
}

// =============================================================================
// EligibleAgeGroups
// =============================================================================

func (s *EvaluatorSuite) TestEligibleAgeGroups() {
	s.Run("low-risk job is visible to both brackets", func() {
		job := models.JobInput{
			Category:  models.CategoryBabysitting,
			PayAmount: 300,
			PayType:   models.PayTypeFixed,
		}
		groups := s.service.EligibleAgeGroups(s.ctx, job)
		s.Equal([]models.AgeGroup{models.AgeGroupMinor, models.AgeGroupYoungAdult}, groups)
	})

	s.Run("adult-only category excludes minors", func() {
		job := models.JobInput{
			Category:  models.CategoryDelivery,
			PayAmount: 150,
			PayType:   models.PayTypeHourly,
		}
		groups := s.service.EligibleAgeGroups(s.ctx, job)
		s.Equal([]models.AgeGroup{models.AgeGroupYoungAdult}, groups)
	})

	s.Run("heavy machinery excludes everyone", func() {
		job := models.JobInput{
			Category:  models.CategoryHeavyMachinery,
			PayAmount: 300,
			PayType:   models.PayTypeHourly,
		}
		groups := s.service.EligibleAgeGroups(s.ctx, job)
		s.Empty(groups)
	})
}
