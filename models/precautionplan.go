package models

// PrecautionPlan is a structured, multi-horizon set of precautions for
// a list of at-risk diseases. Monitoring always carries the standing
// check-up items regardless of input.
type PrecautionPlan struct {
	ImmediateActions    []string `json:"immediate_actions"`
	ShortTermChanges    []string `json:"short_term_changes"`
	LongTermLifestyle   []string `json:"long_term_lifestyle"`
	Monitoring          []string `json:"monitoring"`
	SpecialistReferrals []string `json:"specialist_referrals"`
}
