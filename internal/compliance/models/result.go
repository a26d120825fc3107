package models

// ViolationCode is a machine-readable blocking compliance failure.
type ViolationCode string

const (
	ViolationCategoryNotAllowed  ViolationCode = "CATEGORY_NOT_ALLOWED"
	ViolationHazardDisallowed    ViolationCode = "HAZARD_DISALLOWED"
	ViolationExceedsDailyHours   ViolationCode = "EXCEEDS_DAILY_HOURS"
	ViolationOutsideAllowedHours ViolationCode = "OUTSIDE_ALLOWED_HOURS"
	ViolationBelowMinimumWage    ViolationCode = "BELOW_MINIMUM_WAGE"
)

// WarningCode is a machine-readable non-blocking compliance concern.
type WarningCode string

const (
	WarningPossibleBelowMinimumWage WarningCode = "POSSIBLE_BELOW_MINIMUM_WAGE"
	WarningSchoolContextUnset       WarningCode = "SCHOOL_CONTEXT_UNSET"
)

// Violation blocks a listing from being shown to an age group until fixed.
type Violation struct {
	Code    ViolationCode `json:"code"`
	Message string        `json:"message"`
}

// Warning is surfaced to the poster but never blocks.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// ComplianceResult is the full outcome of evaluating one job against one
// worker's age. Invariant: Compliant == (len(Violations) == 0).
type ComplianceResult struct {
	Compliant   bool        `json:"compliant"`
	Violations  []Violation `json:"violations"`
	Warnings    []Warning   `json:"warnings"`
	Suggestions []string    `json:"suggestions"`
}

// NewComplianceResult returns a compliant result with empty (non-nil) slices
// so JSON output is stable and deterministic.
func NewComplianceResult() ComplianceResult {
	return ComplianceResult{
		Compliant:   true,
		Violations:  []Violation{},
		Warnings:    []Warning{},
		Suggestions: []string{},
	}
}

// AddViolation appends a blocking violation and flips Compliant.
func (r *ComplianceResult) AddViolation(code ViolationCode, message string) {
	r.Violations = append(r.Violations, Violation{Code: code, Message: message})
	r.Compliant = false
}

// AddWarning appends a non-blocking warning.
func (r *ComplianceResult) AddWarning(code WarningCode, message string) {
	r.Warnings = append(r.Warnings, Warning{Code: code, Message: message})
}

// AddSuggestion appends an advisory suggestion string.
func (r *ComplianceResult) AddSuggestion(s string) {
	r.Suggestions = append(r.Suggestions, s)
}

// HasViolation reports whether a violation with the given code was recorded.
func (r *ComplianceResult) HasViolation(code ViolationCode) bool {
	for _, v := range r.Violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

// HasWarning reports whether a warning with the given code was recorded.
func (r *ComplianceResult) HasWarning(code WarningCode) bool {
	for _, w := range r.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
