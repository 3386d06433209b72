package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testToday = time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC)

func TestComputeScheduleNoEventDate(t *testing.T) {
	sched := ComputeSchedule(testToday, 14, nil)

	assert.Equal(t, PhaseMain, sched.Phase)
	assert.Equal(t, 1, sched.CurrentWeek)
	assert.Equal(t, 1, sched.CurrentDay)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), sched.StartDate)
}

func TestComputeScheduleDeterministic(t *testing.T) {
	event := testToday.AddDate(0, 0, 50)

	first := ComputeSchedule(testToday, 14, &event)
	second := ComputeSchedule(testToday, 14, &event)

	assert.Equal(t, first, second)
}

func TestComputeSchedulePastEvent(t *testing.T) {
	for _, weeks := range []int{1, 2, 14, 52} {
		event := testToday.AddDate(0, 0, -3)
		sched := ComputeSchedule(testToday, weeks, &event)

		assert.Equal(t, PhaseMaintenance, sched.Phase)
		assert.Equal(t, 1, sched.CurrentWeek)
		assert.Equal(t, 1, sched.CurrentDay)
	}
}

func TestComputeScheduleMidProgram(t *testing.T) {
	// 14 недель = 98 дней, до события 50 → прошло 48 дней программы
	event := testToday.AddDate(0, 0, 50)
	sched := ComputeSchedule(testToday, 14, &event)

	assert.Equal(t, PhaseMain, sched.Phase)
	assert.Equal(t, 7, sched.CurrentWeek)
	assert.Equal(t, 7, sched.CurrentDay)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -48), sched.StartDate)
}

func TestComputeScheduleFarEvent(t *testing.T) {
	// 2 недели = 14 дней, до события 30 → программа ещё не началась
	event := testToday.AddDate(0, 0, 30)
	sched := ComputeSchedule(testToday, 2, &event)

	assert.Equal(t, PhasePrep, sched.Phase)
	assert.Equal(t, 1, sched.CurrentWeek)
	assert.Equal(t, 1, sched.CurrentDay)
}

func TestComputeScheduleIgnoresTimeOfDay(t *testing.T) {
	event := time.Date(2026, 4, 21, 23, 59, 0, 0, time.UTC)

	morning := ComputeSchedule(time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC), 14, &event)
	evening := ComputeSchedule(time.Date(2026, 3, 2, 23, 58, 0, 0, time.UTC), 14, &event)

	assert.Equal(t, morning, evening)
}
