package eligibility

// PreparationTips returns static advisory content for a worker's bracket.
// Not rule-derived; returned alongside eligibility data so clients render
// one payload.
func PreparationTips(workerAge int) []string {
	switch {
	case workerAge < 16:
		return []string{
			"Ask a parent or guardian to confirm your account so posters can verify supervision.",
			"Build a profile with school references — tutoring and babysitting posters read them first.",
			"Practice describing availability around school hours; school-day shifts are capped at 2 hours.",
		}
	case workerAge < 18:
		return []string{
			"Collect reviews from completed jobs now — they carry over when more categories unlock at 18.",
			"A first-aid certificate makes babysitting and care listings much easier to win.",
			"Plan around school terms: holiday weeks allow up to 7 working hours per day.",
		}
	default:
		return []string{
			"All youth-program categories are open to you, including delivery and event staffing.",
			"Longer evening shifts are allowed up to 23:00 — keep the 11-hour rest rule in mind when stacking jobs.",
			"Track your weekly hours across jobs yourself; the 40-hour ceiling spans all your listings.",
		}
	}
}
