package prediction

// LifestyleTips returns the static category-to-tips mapping. A fresh
// map is returned each call so callers cannot mutate the canonical
// content.
func LifestyleTips() map[string][]string {
	return map[string][]string{
		"nutrition": {
			"Eat 5 servings of fruits and vegetables daily",
			"Limit sugar to <25g per day",
			"Choose whole grains over refined carbs",
		},
		"exercise": {
			"Aim for 150 minutes of moderate aerobic activity weekly",
			"Include strength training 2 days per week",
			"Practice flexibility exercises",
		},
		"sleep": {
			"Maintain consistent sleep schedule (7-9 hours)",
			"Avoid screens 1 hour before bed",
			"Keep bedroom cool and dark",
		},
		"stress": {
			"Practice meditation or yoga",
			"Limit caffeine intake",
			"Spend time in nature",
		},
		"monitoring": {
			"Track vital signs regularly",
			"Keep health records updated",
			"Schedule annual health check-ups",
		},
	}
}
