// Package advisor decides, for a given day, whether to rest, deload, or
// train normally based on recent wellness self-reports and training volume.
// Every function in this package is pure: inputs are passed in (including
// the reference time) and nothing is read from the environment.
package advisor

import "time"

// Direction describes the trend of a recent metric series.
type Direction string

const (
	TrendDeclining Direction = "declining"
	TrendStable    Direction = "stable"
	TrendImproving Direction = "improving"
)

// StressBucket classifies recent average stress.
type StressBucket string

const (
	StressHigh     StressBucket = "high"
	StressModerate StressBucket = "moderate"
	StressLow      StressBucket = "low"
)

// RestType is the kind of day the engine suggests.
type RestType string

const (
	RestComplete       RestType = "complete"
	RestActiveRecovery RestType = "active_recovery"
	RestDeload         RestType = "deload"
	NormalTraining     RestType = "normal_training"
)

// Confidence expresses how strongly the matched rule holds.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Phase is the user's current training phase; it flavors narrative text
// only and never participates in the decision cascade.
type Phase string

const (
	PhaseCutting     Phase = "cutting"
	PhaseRecomp      Phase = "recomp"
	PhaseMaintenance Phase = "maintenance"
)

// ReasonKind tags a reason with its topic so supplementary reasons can be
// de-duplicated structurally instead of by substring matching on the
// rendered text.
type ReasonKind string

const (
	ReasonStreak      ReasonKind = "streak"
	ReasonRecoveryLow ReasonKind = "recovery_low"
	ReasonEnergyTrend ReasonKind = "energy_trend"
	ReasonSleepTrend  ReasonKind = "sleep_trend"
	ReasonVolumeSpike ReasonKind = "volume_spike"
	ReasonStressHigh  ReasonKind = "stress_high"
	ReasonAllClear    ReasonKind = "all_clear"
)

// Reason is one human-readable justification for the recommendation.
type Reason struct {
	Kind ReasonKind `json:"kind"`
	Text string     `json:"text"`
}

// DailyLog is one calendar day's wellness self-report. It is owned by the
// store; the advisor only reads it. Optional metrics are pointers so that
// "not reported" is distinguishable from zero.
type DailyLog struct {
	LogDate          time.Time `json:"log_date"`
	WorkoutCompleted bool      `json:"workout_completed"`
	EnergyLevel      *int      `json:"energy_level,omitempty"`  // 1-10
	SleepHours       *float64  `json:"sleep_hours,omitempty"`   // previous night
	SleepQuality     *int      `json:"sleep_quality,omitempty"` // 1-10
	StressLevel      *int      `json:"stress_level,omitempty"`  // 1-10
}

// ExerciseLog is one completed exercise entry.
type ExerciseLog struct {
	LogDate        time.Time `json:"log_date"`
	Exercise       string    `json:"exercise,omitempty"`
	CompletedSets  *int      `json:"completed_sets,omitempty"`
	PrescribedReps string    `json:"prescribed_reps,omitempty"` // e.g. "8-12"
}

// UserProfile carries the current training phase for narrative flavor.
type UserProfile struct {
	CurrentPhase Phase `json:"current_phase"`
}

// MetricsSnapshot is the computed state the recommendation was based on.
type MetricsSnapshot struct {
	ConsecutiveWorkoutDays int      `json:"consecutive_workout_days"`
	RecoveryScore          int      `json:"recovery_score"`
	AvgEnergy3d            *float64 `json:"avg_energy_3d,omitempty"`
	AvgSleepQuality3d      *float64 `json:"avg_sleep_quality_3d,omitempty"`
	AvgStress3d            *float64 `json:"avg_stress_3d,omitempty"`
	VolumeRatio            *float64 `json:"volume_ratio,omitempty"`
}

// Recommendation is the engine's single output record.
type Recommendation struct {
	ShouldRest          bool            `json:"should_rest"`
	SuggestedRestType   RestType        `json:"suggested_rest_type"`
	Confidence          Confidence      `json:"confidence"`
	Reasons             []Reason        `json:"reasons"`
	AlternativeActivity string          `json:"alternative_activity,omitempty"`
	TodaysPlan          string          `json:"todays_plan"`
	Metrics             MetricsSnapshot `json:"metrics"`
}
