package advisor

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// engineNow matches volumeNow so fixtures built around either clock agree
// on window boundaries.
var engineNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func day(daysAgo int) time.Time {
	return engineNow.AddDate(0, 0, -daysAgo)
}

func TestAdvise_FiveDayStreakForcesCompleteRest(t *testing.T) {
	// Five consecutive training days must win over everything else, even
	// with a volume spike and poor wellness alongside.
	var daily []DailyLog
	for i := 0; i < 5; i++ {
		daily = append(daily, DailyLog{
			LogDate:          day(i),
			WorkoutCompleted: true,
			EnergyLevel:      ip(2),
			SleepHours:       fp(4),
			SleepQuality:     ip(2),
			StressLevel:      ip(9),
		})
	}

	rec := Advise(daily, doubledWeek(), nil, engineNow)

	assert.True(t, rec.ShouldRest)
	assert.Equal(t, RestComplete, rec.SuggestedRestType)
	assert.Equal(t, ConfidenceHigh, rec.Confidence)
	assert.Equal(t, 5, rec.Metrics.ConsecutiveWorkoutDays)
	require.NotEmpty(t, rec.Reasons)
	assert.Equal(t, ReasonStreak, rec.Reasons[0].Kind)
	assert.NotEmpty(t, rec.AlternativeActivity)
}

func TestAdvise_PoorRecoveryForcesActiveRecovery(t *testing.T) {
	today := DailyLog{
		LogDate:          day(0),
		WorkoutCompleted: true,
		EnergyLevel:      ip(3),
		StressLevel:      ip(9),
	}
	yesterday := DailyLog{
		LogDate:          day(1),
		WorkoutCompleted: true,
		SleepHours:       fp(4),
		SleepQuality:     ip(3),
	}

	rec := Advise([]DailyLog{today, yesterday}, nil, nil, engineNow)

	assert.True(t, rec.ShouldRest)
	assert.Equal(t, RestActiveRecovery, rec.SuggestedRestType)
	assert.Equal(t, ConfidenceHigh, rec.Confidence)
	assert.Less(t, rec.Metrics.RecoveryScore, 40)
	assert.Equal(t, 2, rec.Metrics.ConsecutiveWorkoutDays)
}

func TestAdvise_VolumeSpikeTriggersDeload(t *testing.T) {
	// Benign wellness history so no earlier rule fires; exercise history
	// carries double the baseline weekly volume.
	rec := Advise(nil, doubledWeek(), nil, engineNow)

	assert.True(t, rec.ShouldRest)
	assert.Equal(t, RestDeload, rec.SuggestedRestType)
	assert.Equal(t, ConfidenceMedium, rec.Confidence)
	require.NotNil(t, rec.Metrics.VolumeRatio)
	assert.InDelta(t, 2.0, *rec.Metrics.VolumeRatio, 0.001)
}

func TestAdvise_HighStressTriggersActiveRecovery(t *testing.T) {
	var daily []DailyLog
	for i := 0; i < 3; i++ {
		daily = append(daily, DailyLog{
			LogDate:      day(i),
			EnergyLevel:  ip(8),
			SleepHours:   fp(8),
			SleepQuality: ip(8),
			StressLevel:  ip(9),
		})
	}

	rec := Advise(daily, nil, nil, engineNow)

	assert.True(t, rec.ShouldRest)
	assert.Equal(t, RestActiveRecovery, rec.SuggestedRestType)
	assert.Equal(t, ConfidenceMedium, rec.Confidence)
	assert.Equal(t, ReasonStressHigh, rec.Reasons[0].Kind)
}

func TestAdvise_FourDayStreakSuggestsEasyDay(t *testing.T) {
	var daily []DailyLog
	for i := 0; i < 4; i++ {
		daily = append(daily, DailyLog{
			LogDate:          day(i),
			WorkoutCompleted: true,
			EnergyLevel:      ip(8),
			SleepHours:       fp(8),
			SleepQuality:     ip(8),
			StressLevel:      ip(3),
		})
	}

	rec := Advise(daily, nil, nil, engineNow)

	assert.True(t, rec.ShouldRest)
	assert.Equal(t, RestActiveRecovery, rec.SuggestedRestType)
	assert.Equal(t, ConfidenceLow, rec.Confidence)
	assert.Equal(t, 4, rec.Metrics.ConsecutiveWorkoutDays)
}

func TestAdvise_MiddlingRecoveryIsAdvisoryOnly(t *testing.T) {
	// Recovery lands between 40 and 60 with only energy declining: no rule
	// forces rest, but the output carries a cautionary reason.
	energies := []int{3, 3, 8, 8, 8}
	var daily []DailyLog
	for i, e := range energies {
		l := DailyLog{
			LogDate:      day(i),
			EnergyLevel:  ip(e),
			SleepQuality: ip(8),
		}
		daily = append(daily, l)
	}
	daily[1].SleepHours = fp(5)
	daily[0].StressLevel = ip(6)

	rec := Advise(daily, nil, nil, engineNow)

	assert.False(t, rec.ShouldRest)
	assert.Equal(t, NormalTraining, rec.SuggestedRestType)
	assert.Equal(t, ConfidenceLow, rec.Confidence)
	assert.GreaterOrEqual(t, rec.Metrics.RecoveryScore, 40)
	assert.Less(t, rec.Metrics.RecoveryScore, 60)
	require.Len(t, rec.Reasons, 2)
	assert.Equal(t, ReasonRecoveryLow, rec.Reasons[0].Kind)
	assert.Equal(t, ReasonEnergyTrend, rec.Reasons[1].Kind)
}

func TestAdvise_EmptyInputsMeanNormalTraining(t *testing.T) {
	rec := Advise(nil, nil, nil, engineNow)

	assert.False(t, rec.ShouldRest)
	assert.Equal(t, NormalTraining, rec.SuggestedRestType)
	assert.Equal(t, ConfidenceLow, rec.Confidence)
	assert.Equal(t, 0, rec.Metrics.ConsecutiveWorkoutDays)
	assert.Equal(t, 63, rec.Metrics.RecoveryScore)
	assert.Nil(t, rec.Metrics.VolumeRatio)
	assert.Nil(t, rec.Metrics.AvgEnergy3d)
	assert.Nil(t, rec.Metrics.AvgSleepQuality3d)
	assert.Nil(t, rec.Metrics.AvgStress3d)
	assert.Empty(t, rec.AlternativeActivity)
}

func TestAdvise_SupplementaryReasonsDedupedByKind(t *testing.T) {
	// Energy and sleep quality both decline, so the double-decline rule
	// fires with an energy-tagged primary reason. The supplementary pass
	// must add recovery and sleep observations without repeating energy.
	energies := []int{3, 3, 8, 8, 8}
	qualities := []int{4, 4, 9, 9, 9}
	var daily []DailyLog
	for i := range energies {
		daily = append(daily, DailyLog{
			LogDate:      day(i),
			EnergyLevel:  ip(energies[i]),
			SleepQuality: ip(qualities[i]),
		})
	}
	daily[1].SleepHours = fp(7)
	daily[0].StressLevel = ip(5)

	rec := Advise(daily, nil, nil, engineNow)

	require.True(t, rec.ShouldRest)
	require.Len(t, rec.Reasons, 3)
	kinds := []ReasonKind{rec.Reasons[0].Kind, rec.Reasons[1].Kind, rec.Reasons[2].Kind}
	assert.Equal(t, []ReasonKind{ReasonEnergyTrend, ReasonRecoveryLow, ReasonSleepTrend}, kinds)
}

func TestAdvise_SnapshotRollingAverages(t *testing.T) {
	var daily []DailyLog
	levels := []int{6, 7, 9}
	for i, v := range levels {
		daily = append(daily, DailyLog{
			LogDate:      day(i),
			EnergyLevel:  ip(v),
			SleepQuality: ip(v),
			StressLevel:  ip(v - 4),
		})
	}

	rec := Advise(daily, nil, nil, engineNow)

	require.NotNil(t, rec.Metrics.AvgEnergy3d)
	assert.InDelta(t, 7.3, *rec.Metrics.AvgEnergy3d, 0.001)
	require.NotNil(t, rec.Metrics.AvgStress3d)
	assert.InDelta(t, 3.3, *rec.Metrics.AvgStress3d, 0.001)
}

func TestAdvise_Deterministic(t *testing.T) {
	var daily []DailyLog
	for i := 0; i < 7; i++ {
		daily = append(daily, DailyLog{
			LogDate:          day(i),
			WorkoutCompleted: i%2 == 0,
			EnergyLevel:      ip(5 + i%3),
			SleepHours:       fp(6.5),
			SleepQuality:     ip(6),
			StressLevel:      ip(4),
		})
	}
	profile := &UserProfile{CurrentPhase: PhaseCutting}

	first := Advise(daily, doubledWeek(), profile, engineNow)
	second := Advise(daily, doubledWeek(), profile, engineNow)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestAdvise_InputsNotMutated(t *testing.T) {
	daily := []DailyLog{
		{LogDate: day(2), WorkoutCompleted: true},
		{LogDate: day(0), WorkoutCompleted: true},
		{LogDate: day(1), WorkoutCompleted: true},
	}

	Advise(daily, nil, nil, engineNow)

	assert.Equal(t, day(2), daily[0].LogDate, "caller's slice order must survive")
	assert.Equal(t, day(0), daily[1].LogDate)
}
