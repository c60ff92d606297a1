package advisor

// alternativeActivities maps a suggested rest type to user-facing guidance
// for what to do instead of the planned session.
var alternativeActivities = map[RestType]string{
	RestComplete:       "Take the day fully off. Gentle stretching, a short walk, and an early night.",
	RestActiveRecovery: "20-30 minutes of easy movement: walking, light cycling, mobility work, or an easy swim.",
	RestDeload:         "Run your planned session at roughly 60% of the usual load and stop well short of failure.",
	NormalTraining:     "",
}

// restPlans maps a rest type to the narrative plan shown when resting.
var restPlans = map[RestType]string{
	RestComplete:       "Today is a rest day. You've earned it; the adaptation happens while you recover, not while you grind.",
	RestActiveRecovery: "Skip the hard session today. Keep the body moving gently and let the nervous system settle.",
	RestDeload:         "Deload day: same movements, lighter weights, fewer sets. Leave the gym feeling fresher than when you walked in.",
}

// trainingPlans maps the user's current phase to the narrative plan shown
// when training normally. Phase flavors the wording only; it never changes
// the decision.
var trainingPlans = map[Phase]string{
	PhaseCutting:     "Green light to train. You're in a deficit, so prioritize compound lifts, keep the quality high, and don't chase extra volume.",
	PhaseRecomp:      "Green light to train. Push the progressive overload today; recomp rewards consistent hard sessions backed by good recovery.",
	PhaseMaintenance: "Green light to train. Stick to the plan and finish strong.",
}

// alternativeActivity returns the fixed guidance for a rest type.
func alternativeActivity(t RestType) string {
	return alternativeActivities[t]
}

// todaysPlan selects the narrative text for the recommendation. When
// resting, the template is keyed by rest type; otherwise by training phase,
// falling back to default phrasing when no profile was supplied.
func todaysPlan(shouldRest bool, restType RestType, profile *UserProfile) string {
	if shouldRest {
		if plan, ok := restPlans[restType]; ok {
			return plan
		}
		return restPlans[RestActiveRecovery]
	}

	phase := PhaseMaintenance
	if profile != nil {
		phase = profile.CurrentPhase
	}
	if plan, ok := trainingPlans[phase]; ok {
		return plan
	}
	return trainingPlans[PhaseMaintenance]
}
